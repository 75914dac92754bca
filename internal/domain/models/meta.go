package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Meta carries the identity and timestamp fields shared by every document.
// Embed it inline so the fields land at the top level of the stored record.
type Meta struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// SetID assigns the document identifier. Called by the store on insert.
func (m *Meta) SetID(id primitive.ObjectID) { m.ID = id }

// Stamp sets both timestamps. Called by the store on insert; updates only
// touch updated_at via $set.
func (m *Meta) Stamp(now time.Time) {
	m.CreatedAt = now
	m.UpdatedAt = now
}
