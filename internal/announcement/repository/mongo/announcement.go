package mongo

import (
	"context"
	"time"

	"mango-alerts-srv/internal/announcement/repository"
	"mango-alerts-srv/internal/model"

	"github.com/friendsofgo/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *implRepository) Create(ctx context.Context, a model.Announcement) (model.Announcement, error) {
	res, err := r.coll.InsertOne(ctx, a)
	if err != nil {
		r.l.Errorf(ctx, "internal.announcement.repository.mongo.Create.InsertOne: %v", err)
		return model.Announcement{}, errors.Wrap(err, "insert announcement")
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		a.ID = oid
	}
	return a, nil
}

func (r *implRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.l.Errorf(ctx, "internal.announcement.repository.mongo.Delete.DeleteOne: %v", err)
		return errors.Wrap(err, "delete announcement")
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *implRepository) List(ctx context.Context) ([]model.Announcement, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"timestamp": -1}))
	if err != nil {
		r.l.Errorf(ctx, "internal.announcement.repository.mongo.List.Find: %v", err)
		return nil, errors.Wrap(err, "list announcements")
	}
	defer cur.Close(ctx)

	var anns []model.Announcement
	if err := cur.All(ctx, &anns); err != nil {
		r.l.Errorf(ctx, "internal.announcement.repository.mongo.List.All: %v", err)
		return nil, errors.Wrap(err, "decode announcements")
	}
	return anns, nil
}

func (r *implRepository) SetSeen(ctx context.Context, id primitive.ObjectID, seen bool) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"seen": seen}},
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.announcement.repository.mongo.SetSeen.UpdateOne: %v", err)
		return errors.Wrap(err, "set seen")
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *implRepository) SetCleared(ctx context.Context, ids []primitive.ObjectID) error {
	filter := bson.M{}
	if len(ids) > 0 {
		filter = bson.M{"_id": bson.M{"$in": ids}}
	}

	_, err := r.coll.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"cleared": true}})
	if err != nil {
		r.l.Errorf(ctx, "internal.announcement.repository.mongo.SetCleared.UpdateMany: %v", err)
		return errors.Wrap(err, "set cleared")
	}
	return nil
}

func (r *implRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"expiryDate": bson.M{"$lt": now}})
	if err != nil {
		r.l.Errorf(ctx, "internal.announcement.repository.mongo.DeleteExpired.DeleteMany: %v", err)
		return 0, errors.Wrap(err, "delete expired announcements")
	}
	return res.DeletedCount, nil
}
