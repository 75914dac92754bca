// Package infostore manages the singleton school_info document, using the
// same key-guarded get-or-create as the home stats store.
package infostore

import (
	"context"
	"time"

	"github.com/oakhaven/schoolhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("school_info")}
}

// Get returns the singleton, creating it with defaults if absent.
func (s *Store) Get(ctx context.Context) (*models.SchoolInfo, error) {
	def := models.DefaultSchoolInfo()
	now := time.Now().UTC()

	var info models.SchoolInfo
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"key": models.SchoolInfoKey},
		bson.M{"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID(),
			"key":        def.Key,
			"name":       def.Name,
			"created_at": now,
			"updated_at": now,
		}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&info)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// Update applies a partial $set to the singleton, materializing it first if
// needed, and returns the updated document.
func (s *Store) Update(ctx context.Context, set bson.M) (*models.SchoolInfo, error) {
	if _, err := s.Get(ctx); err != nil {
		return nil, err
	}
	set["updated_at"] = time.Now().UTC()

	var info models.SchoolInfo
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"key": models.SchoolInfoKey},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&info)
	if err != nil {
		return nil, err
	}
	return &info, nil
}
