package mongo

import (
	"context"
	"time"

	"mango-alerts-srv/internal/alert/repository"
	"mango-alerts-srv/internal/model"

	"github.com/friendsofgo/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *implRepository) Create(ctx context.Context, a model.Alert) (model.Alert, error) {
	res, err := r.coll.InsertOne(ctx, a)
	if err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.mongo.Create.InsertOne: %v", err)
		return model.Alert{}, errors.Wrap(err, "insert alert")
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		a.ID = oid
	}
	return a, nil
}

func (r *implRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.mongo.Delete.DeleteOne: %v", err)
		return errors.Wrap(err, "delete alert")
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *implRepository) ListByAccount(ctx context.Context, accountPk string) ([]model.Alert, error) {
	projection := bson.M{
		"_id":                1,
		"health":             1,
		"alertProvider":      1,
		"open":               1,
		"timestamp":          1,
		"triggeredTimestamp": 1,
	}

	cur, err := r.coll.Find(ctx,
		bson.M{"mangoAccountPk": accountPk},
		options.Find().SetProjection(projection),
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.mongo.ListByAccount.Find: %v", err)
		return nil, errors.Wrap(err, "list alerts")
	}
	defer cur.Close(ctx)

	var alerts []model.Alert
	if err := cur.All(ctx, &alerts); err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.mongo.ListByAccount.All: %v", err)
		return nil, errors.Wrap(err, "decode alerts")
	}
	return alerts, nil
}

func (r *implRepository) ListOpen(ctx context.Context) ([]model.Alert, error) {
	cur, err := r.coll.Find(ctx, bson.M{"open": true})
	if err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.mongo.ListOpen.Find: %v", err)
		return nil, errors.Wrap(err, "list open alerts")
	}
	defer cur.Close(ctx)

	var alerts []model.Alert
	if err := cur.All(ctx, &alerts); err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.mongo.ListOpen.All: %v", err)
		return nil, errors.Wrap(err, "decode open alerts")
	}
	return alerts, nil
}

func (r *implRepository) Close(ctx context.Context, id primitive.ObjectID, triggeredAt time.Time) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"open":               false,
			"triggeredTimestamp": triggeredAt,
		}},
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.mongo.Close.UpdateOne: %v", err)
		return errors.Wrap(err, "close alert")
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
