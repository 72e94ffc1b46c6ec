package query

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/anft-xyz/goapi/base/ctx"
	"github.com/anft-xyz/goapi/base/database/mongoclient"
	"github.com/anft-xyz/goapi/base/log"
	"github.com/anft-xyz/goapi/base/metrics"
	"github.com/anft-xyz/goapi/domain"
)

const (
	queryMaxTime     = 20 * time.Second
	slowLogThreshold = 500 * time.Millisecond
)

var (
	timeNow = time.Now
)

type impl struct {
	client *mongoclient.Client
	met    metrics.Service
}

// New initializes an impl
func New(client *mongoclient.Client) Mongo {
	return &impl{
		client: client,
		met:    metrics.New("mongo"),
	}
}

func (im *impl) logerr(context ctx.Ctx, msg string, err error) {
	im.met.BumpSum("err", 1)
	context.WithFields(log.Fields{"err": err}).Error(msg)
}

func (im *impl) collection(table domain.Table) *mongo.Collection {
	return im.client.Database(im.client.DbName).Collection(string(table))
}

func (im *impl) FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error {
	defer im.met.BumpTime("time", "func", "findone", "table", string(table)).End()
	defer slowLog(context, string(table), "findone", query)()

	context = ctx.WithValues(context, map[string]interface{}{
		"table": table,
		"query": query,
	})

	findOneOpts := options.FindOne().SetMaxTime(queryMaxTime)
	res := im.collection(table).FindOne(context, query, findOneOpts)

	if err := res.Decode(result); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		im.logerr(context, "FindOne: FindOne error", err)
		return err
	}
	return nil
}

func (im *impl) Upsert(context ctx.Ctx, table domain.Table, selector, update interface{}) error {
	defer im.met.BumpTime("time", "func", "upsert", "table", string(table)).End()
	defer slowLog(context, string(table), "upsert", selector)()

	context = ctx.WithValues(context, map[string]interface{}{
		"table":    table,
		"selector": selector,
	})

	replaceOpts := options.Replace().SetUpsert(true)
	if _, err := im.collection(table).ReplaceOne(context, selector, update, replaceOpts); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		im.logerr(context, "Upsert: ReplaceOne failed", err)
		return err
	}
	return nil
}

func (im *impl) Remove(context ctx.Ctx, table domain.Table, selector interface{}) error {
	defer im.met.BumpTime("time", "func", "remove", "table", string(table)).End()
	defer slowLog(context, string(table), "remove", selector)()

	context = ctx.WithValues(context, map[string]interface{}{
		"table":    table,
		"selector": selector,
	})

	if deletedRes, err := im.collection(table).DeleteOne(context, selector); err != nil {
		im.logerr(context, "Remove: DeleteOne failed", err)
		return err
	} else if deletedRes.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (im *impl) Ping(context ctx.Ctx) error {
	defer im.met.BumpTime("time", "func", "ping").End()
	if err := im.client.Ping(context, readpref.Primary()); err != nil {
		im.logerr(context, "Ping failed", err)
		return err
	}
	return nil
}

func slowLog(context ctx.Ctx, table, action string, query interface{}) func() {
	start := timeNow()

	return func() {
		elapsed := time.Since(start)
		if elapsed >= slowLogThreshold {
			context.WithFields(log.Fields{
				"table":      table,
				"action":     action,
				"startTime":  start.Unix(),
				"durationMs": elapsed.Milliseconds(),
				"query":      query,
			}).Warn("mongo slowlog")
		}
	}
}
