// Package appstore manages job applications: creation with the job
// pre-checks, and reads that join selected fields of the referenced job.
package appstore

import (
	"context"
	"errors"
	"time"

	"github.com/oakhaven/schoolhub/internal/app/system/crud"
	"github.com/oakhaven/schoolhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Application pre-check failures, distinct by design so applicants see why
// they were turned away. Checked in this order at creation time only.
var (
	ErrJobNotFound    = errors.New("job not found")
	ErrJobInactive    = errors.New("job is not accepting applications")
	ErrDeadlinePassed = errors.New("application deadline has passed")
)

type Store struct {
	*crud.Collection[models.JobApplication, *models.JobApplication]
	jobs *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		Collection: crud.NewCollection[models.JobApplication](db, "job_applications", nil),
		jobs:       db.Collection("jobs"),
	}
}

// Create inserts an application after re-reading the referenced job and
// short-circuiting on: job missing, job inactive, deadline passed. The
// checks are not re-validated after creation.
func (s *Store) Create(ctx context.Context, app *models.JobApplication) error {
	var job models.Job
	if err := s.jobs.FindOne(ctx, bson.M{"_id": app.JobID}).Decode(&job); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrJobNotFound
		}
		return err
	}
	if !job.Active {
		return ErrJobInactive
	}
	if job.Deadline.Before(time.Now().UTC()) {
		return ErrDeadlinePassed
	}
	return s.Collection.Create(ctx, app)
}

// lookupStages joins the referenced job's title and department onto each
// application ("populate").
func lookupStages() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         "jobs",
			"localField":   "job_id",
			"foreignField": "_id",
			"as":           "job",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$job",
			"preserveNullAndEmptyArrays": true,
		}}},
	}
}

// ListWithJob returns applications matching filter (nil means all), newest
// first, each with the referenced job's summary joined in.
func (s *Store) ListWithJob(ctx context.Context, filter bson.M) ([]models.JobApplication, error) {
	if filter == nil {
		filter = bson.M{}
	}
	pipeline := []bson.D{
		{{Key: "$match", Value: filter}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
	}
	pipeline = append(pipeline, lookupStages()...)

	cur, err := s.Mongo().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.JobApplication{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetWithJob returns one application with its job summary joined in.
func (s *Store) GetWithJob(ctx context.Context, idHex string) (*models.JobApplication, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, crud.ErrNotFound
	}
	pipeline := append([]bson.D{
		{{Key: "$match", Value: bson.M{"_id": id}}},
	}, lookupStages()...)

	cur, err := s.Mongo().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.JobApplication
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, crud.ErrNotFound
	}
	return &out[0], nil
}
