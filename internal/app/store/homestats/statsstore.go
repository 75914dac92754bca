// Package statsstore manages the singleton home_stats document. The first
// read or write materializes it; the unique index on the constant key keeps
// concurrent first reads from producing two documents.
package statsstore

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
	return &Store{c: db.Collection("home_stats")}
}

// Get returns the singleton, creating it with defaults if absent. Repeated
// calls always return the same document identifier.
func (s *Store) Get(ctx context.Context) (*models.HomeStats, error) {
	def := models.DefaultHomeStats()
	now := time.Now().UTC()

	var stats models.HomeStats
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"key": models.HomeStatsKey},
		bson.M{"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID(),
			"key":        def.Key,
			"students":   def.Students,
			"teachers":   def.Teachers,
			"classrooms": def.Classrooms,
			"awards":     def.Awards,
			"years":      def.Years,
			"created_at": now,
			"updated_at": now,
		}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&stats)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// Update applies a partial $set to the singleton, materializing it first if
// needed, and returns the updated document.
func (s *Store) Update(ctx context.Context, set bson.M) (*models.HomeStats, error) {
	if _, err := s.Get(ctx); err != nil {
		return nil, err
	}
	set["updated_at"] = time.Now().UTC()

	var stats models.HomeStats
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"key": models.HomeStatsKey},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&stats)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
