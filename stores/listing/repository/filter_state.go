package repository

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/anft-xyz/goapi/base/ctx"
	"github.com/anft-xyz/goapi/base/log"
	"github.com/anft-xyz/goapi/domain"
	"github.com/anft-xyz/goapi/domain/listing"
	"github.com/anft-xyz/goapi/service/query"
)

var timeNow = time.Now

type filterState struct {
	Key       string         `bson:"key"`
	Filter    listing.Filter `bson:"filter"`
	UpdatedAt time.Time      `bson:"updatedAt"`
}

type filterStateRepo struct {
	q query.Mongo
}

func NewFilterStateRepo(q query.Mongo) listing.FilterStateRepo {
	return &filterStateRepo{q: q}
}

func (r *filterStateRepo) Save(c ctx.Ctx, key string, filter listing.Filter) error {
	if key == "" {
		return domain.ErrBadParamInput
	}
	doc := filterState{
		Key:       key,
		Filter:    filter,
		UpdatedAt: timeNow().UTC(),
	}
	if err := r.q.Upsert(c, domain.TableFilterStates, bson.M{"key": key}, doc); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"key": key,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (r *filterStateRepo) Get(c ctx.Ctx, key string) (*listing.Filter, error) {
	doc := filterState{}
	if err := r.q.FindOne(c, domain.TableFilterStates, bson.M{"key": key}, &doc); errors.Is(err, query.ErrNotFound) {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"key": key,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return &doc.Filter, nil
}

func (r *filterStateRepo) Remove(c ctx.Ctx, key string) error {
	if err := r.q.Remove(c, domain.TableFilterStates, bson.M{"key": key}); errors.Is(err, query.ErrNotFound) {
		return nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"key": key,
		}).Error("q.Remove failed")
		return err
	}
	return nil
}
