package mongo

import (
	"mango-alerts-srv/internal/announcement/repository"
	pkgLog "mango-alerts-srv/pkg/log"

	"go.mongodb.org/mongo-driver/mongo"
)

const collectionName = "updates"

type implRepository struct {
	l    pkgLog.Logger
	coll *mongo.Collection
}

var _ repository.Repository = &implRepository{}

func New(l pkgLog.Logger, db *mongo.Database) *implRepository {
	return &implRepository{
		l:    l,
		coll: db.Collection(collectionName),
	}
}
