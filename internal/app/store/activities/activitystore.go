// Package activitystore adds the batch reorder operation on top of the
// generic activity collection.
package activitystore

import (
	"context"
	"time"

	"github.com/oakhaven/schoolhub/internal/app/system/crud"
	"github.com/oakhaven/schoolhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	*crud.Collection[models.Activity, *models.Activity]
	client *mongo.Client
}

func New(db *mongo.Database) *Store {
	return &Store{
		Collection: crud.NewCollection[models.Activity](db, "activities", crud.ByOrder()),
		client:     db.Client(),
	}
}

// OrderUpdate is one {id, order} pair of a reorder batch.
type OrderUpdate struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

// Reorder applies the order updates as independent point writes inside one
// transaction. If any item fails (including an identifier that resolves to
// nothing), every previously applied item rolls back and the batch fails as
// a unit. Items are not checked against any particular category; a batch
// may span categories.
func (s *Store) Reorder(ctx context.Context, updates []OrderUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	sess, err := s.client.StartSession()
	if err != nil {
		return err
	}
	defer sess.EndSession(ctx)

	now := time.Now().UTC()
	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		for _, u := range updates {
			id, err := primitive.ObjectIDFromHex(u.ID)
			if err != nil {
				return nil, crud.ErrNotFound
			}
			res, err := s.Mongo().UpdateByID(sc, id, bson.M{
				"$set": bson.M{"order": u.Order, "updated_at": now},
			})
			if err != nil {
				return nil, err
			}
			if res.MatchedCount == 0 {
				return nil, crud.ErrNotFound
			}
		}
		return nil, nil
	})
	return err
}
