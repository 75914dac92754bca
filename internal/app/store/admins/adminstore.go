// Package adminstore manages the administrative account: seeding, credential
// verification, and credential updates.
package adminstore

import (
	"context"
	"errors"
	"time"

	"github.com/oakhaven/schoolhub/internal/app/system/normalize"
	"github.com/oakhaven/schoolhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is deliberately identical for an unknown email
	// and a wrong password so responses don't leak account existence.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrCurrentPassword is returned when a password change fails the
	// current-password re-check.
	ErrCurrentPassword = errors.New("current password incorrect")

	// ErrEmailInUse is returned when an email change collides with another
	// account.
	ErrEmailInUse = errors.New("email already in use")

	// ErrNothingToUpdate is returned when a credentials update supplies
	// neither email nor password.
	ErrNothingToUpdate = errors.New("email or password is required")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("admins")}
}

// GetByID loads an admin by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error) {
	var a models.Admin
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// GetByEmail looks up an admin by normalized email. Returns
// mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var a models.Admin
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Seed creates the default admin account if no account with the given email
// exists. Idempotent; invoked once at process startup.
func (s *Store) Seed(ctx context.Context, email, password, name string) (created bool, err error) {
	email = normalize.Email(email)
	err = s.c.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	now := time.Now().UTC()
	a := models.Admin{
		ID:           primitive.NewObjectID(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := s.c.InsertOne(ctx, a); err != nil {
		if wafflemongo.IsDup(err) {
			// Lost a startup race with another process; the account exists.
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Authenticate verifies email and password and returns the account.
// Unknown email and wrong password both fail with ErrInvalidCredentials.
func (s *Store) Authenticate(ctx context.Context, email, password string) (*models.Admin, error) {
	a, err := s.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return a, nil
}

// CredentialUpdate carries an admin's requested credential changes. At least
// one of Email/Password must be set.
type CredentialUpdate struct {
	Email           string
	Password        string
	CurrentPassword string
}

// UpdateCredentials changes the account's email and/or password. A password
// change re-verifies CurrentPassword against the stored hash first; an email
// change requires the new email be unused by a different account.
func (s *Store) UpdateCredentials(ctx context.Context, id primitive.ObjectID, upd CredentialUpdate) (*models.Admin, error) {
	if upd.Email == "" && upd.Password == "" {
		return nil, ErrNothingToUpdate
	}

	a, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now().UTC()}

	if upd.Password != "" {
		if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(upd.CurrentPassword)) != nil {
			return nil, ErrCurrentPassword
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(upd.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		set["password_hash"] = string(hash)
	}

	if upd.Email != "" {
		email := normalize.Email(upd.Email)
		taken, err := s.emailExistsForOther(ctx, email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailInUse
		}
		set["email"] = email
	}

	if _, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set}); err != nil {
		if wafflemongo.IsDup(err) {
			return nil, ErrEmailInUse
		}
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *Store) emailExistsForOther(ctx context.Context, email string, excludeID primitive.ObjectID) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{
		"email": email,
		"_id":   bson.M{"$ne": excludeID},
	}).Err()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return false, err
}
