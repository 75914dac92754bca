package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/oakhaven/schoolhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateAdmin creates a test admin account with the given credentials.
func (f *Fixtures) CreateAdmin(ctx context.Context, email, password, name string) models.Admin {
	f.t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		f.t.Fatalf("failed to hash test password: %v", err)
	}
	now := time.Now().UTC()
	admin := models.Admin{
		ID:           primitive.NewObjectID(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := f.db.Collection("admins").InsertOne(ctx, admin); err != nil {
		f.t.Fatalf("failed to create test admin: %v", err)
	}
	return admin
}

// CreateJob creates an active test job with a deadline in the future.
func (f *Fixtures) CreateJob(ctx context.Context, title string) models.Job {
	f.t.Helper()
	return f.insertJob(ctx, title, true, time.Now().UTC().Add(30*24*time.Hour))
}

// CreateInactiveJob creates a job that is not accepting applications.
func (f *Fixtures) CreateInactiveJob(ctx context.Context, title string) models.Job {
	f.t.Helper()
	return f.insertJob(ctx, title, false, time.Now().UTC().Add(30*24*time.Hour))
}

// CreateExpiredJob creates an active job whose deadline has passed.
func (f *Fixtures) CreateExpiredJob(ctx context.Context, title string) models.Job {
	f.t.Helper()
	return f.insertJob(ctx, title, true, time.Now().UTC().Add(-24*time.Hour))
}

func (f *Fixtures) insertJob(ctx context.Context, title string, active bool, deadline time.Time) models.Job {
	f.t.Helper()

	now := time.Now().UTC()
	job := models.Job{
		Title:       title,
		Department:  "Test Department",
		Type:        models.JobFullTime,
		Description: "Test job description",
		Deadline:    deadline,
		Active:      active,
	}
	job.SetID(primitive.NewObjectID())
	job.Stamp(now)

	if _, err := f.db.Collection("jobs").InsertOne(ctx, job); err != nil {
		f.t.Fatalf("failed to create test job: %v", err)
	}
	return job
}

// CreateActivity creates a test activity in the given category with the
// given order.
func (f *Fixtures) CreateActivity(ctx context.Context, title, category string, order int) models.Activity {
	f.t.Helper()

	act := models.Activity{
		Title:       title,
		Description: "Test activity description",
		Category:    category,
		Order:       order,
	}
	act.SetID(primitive.NewObjectID())
	act.Stamp(time.Now().UTC())

	if _, err := f.db.Collection("activities").InsertOne(ctx, act); err != nil {
		f.t.Fatalf("failed to create test activity: %v", err)
	}
	return act
}

// CreateEvent creates a test event on the given date.
func (f *Fixtures) CreateEvent(ctx context.Context, title string, date time.Time, highlight bool) models.Event {
	f.t.Helper()

	ev := models.Event{
		Title:       title,
		Description: "Test event description",
		Date:        date.UTC(),
		Highlight:   highlight,
	}
	ev.SetID(primitive.NewObjectID())
	ev.Stamp(time.Now().UTC())

	if _, err := f.db.Collection("events").InsertOne(ctx, ev); err != nil {
		f.t.Fatalf("failed to create test event: %v", err)
	}
	return ev
}

// CreateAdmission creates a test admission enquiry in status "new".
func (f *Fixtures) CreateAdmission(ctx context.Context, studentName string) models.Admission {
	f.t.Helper()

	adm := models.Admission{
		StudentName:   studentName,
		StudentNameCI: text.Fold(studentName),
		ParentName:    "Test Parent",
		Email:         "parent@example.com",
		Phone:         "5551234567",
		Grade:         "5",
		Status:        models.AdmissionNew,
	}
	adm.SetID(primitive.NewObjectID())
	adm.Stamp(time.Now().UTC())

	if _, err := f.db.Collection("admissions").InsertOne(ctx, adm); err != nil {
		f.t.Fatalf("failed to create test admission: %v", err)
	}
	return adm
}

// CreateContact creates a test contact message in status "new".
func (f *Fixtures) CreateContact(ctx context.Context, name string) models.Contact {
	f.t.Helper()

	msg := models.Contact{
		Name:    name,
		NameCI:  text.Fold(name),
		Email:   "visitor@example.com",
		Subject: "Test subject",
		Message: "Test message body",
		Status:  models.ContactNew,
	}
	msg.SetID(primitive.NewObjectID())
	msg.Stamp(time.Now().UTC())

	if _, err := f.db.Collection("contacts").InsertOne(ctx, msg); err != nil {
		f.t.Fatalf("failed to create test contact: %v", err)
	}
	return msg
}
