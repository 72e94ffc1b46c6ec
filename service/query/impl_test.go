package query

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/anft-xyz/goapi/base/ctx"
	"github.com/anft-xyz/goapi/base/database/mongoclient"
	"github.com/anft-xyz/goapi/base/metrics"
	"github.com/anft-xyz/goapi/domain"
)

var (
	mockCTX = ctx.Background()
)

const (
	mockTable = domain.TableFilterStates
)

type dummy struct {
	Key    string `bson:"key"`
	Update string `bson:"updatekey"`
}

func newImpl(mt *mtest.T) *impl {
	return &impl{
		client: &mongoclient.Client{DbName: mt.DB.Name(), Client: mt.Client},
		met:    metrics.New("mongo"),
	}
}

func TestQuery(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	ns := func(mt *mtest.T) string {
		return mt.DB.Name() + "." + string(mockTable)
	}

	mt.Run("find one", func(mt *mtest.T) {
		im := newImpl(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch, bson.D{
			{Key: "key", Value: "0xabc"},
			{Key: "updatekey", Value: "v1"},
		}))

		res := &dummy{}
		require.NoError(mt, im.FindOne(mockCTX, mockTable, bson.M{"key": "0xabc"}, res))
		require.Equal(mt, dummy{"0xabc", "v1"}, *res)
	})

	mt.Run("find one not found", func(mt *mtest.T) {
		im := newImpl(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch))

		require.Equal(mt, ErrNotFound, im.FindOne(mockCTX, mockTable, bson.M{"key": "0xdef"}, &dummy{}))
	})

	mt.Run("upsert", func(mt *mtest.T) {
		im := newImpl(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		require.NoError(mt, im.Upsert(mockCTX, mockTable, bson.M{"key": "0xabc"}, dummy{"0xabc", "v2"}))
	})

	mt.Run("upsert duplicate key", func(mt *mtest.T) {
		im := newImpl(mt)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		require.Equal(mt, ErrDuplicateKey, im.Upsert(mockCTX, mockTable, bson.M{"key": "0xabc"}, dummy{"0xabc", "v2"}))
	})

	mt.Run("remove", func(mt *mtest.T) {
		im := newImpl(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))
		require.NoError(mt, im.Remove(mockCTX, mockTable, bson.M{"key": "0xabc"}))

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		require.Equal(mt, ErrNotFound, im.Remove(mockCTX, mockTable, bson.M{"key": "0xabc"}))
	})

	mt.Run("ping", func(mt *mtest.T) {
		im := newImpl(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		require.NoError(mt, im.Ping(mockCTX))
	})
}
