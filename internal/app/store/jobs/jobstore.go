// Package jobstore wraps the jobs collection and owns deadline parsing, the
// one piece of job-specific input handling outside the generic contract.
package jobstore

import (
	"context"
	"time"

	"github.com/oakhaven/schoolhub/internal/app/system/crud"
	"github.com/oakhaven/schoolhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrInvalidDeadline is surfaced when caller input cannot be parsed into a
// date. It maps to a 400 with this exact message rather than a generic
// validation error.
var ErrInvalidDeadline = &crud.ValidationError{Msg: "invalid deadline"}

// deadlineFormats are tried in order against caller input.
var deadlineFormats = []string{
	time.RFC3339,
	"2006-01-02",
}

type Store struct {
	*crud.Collection[models.Job, *models.Job]
}

func New(db *mongo.Database) *Store {
	return &Store{
		Collection: crud.NewCollection[models.Job](db, "jobs", nil),
	}
}

// ParseDeadline converts caller-supplied deadline text into a date value.
func ParseDeadline(s string) (time.Time, error) {
	for _, layout := range deadlineFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDeadline
}

// ListActive returns the jobs shown on the public careers page.
func (s *Store) ListActive(ctx context.Context) ([]models.Job, error) {
	return s.List(ctx, bson.M{"active": true})
}
