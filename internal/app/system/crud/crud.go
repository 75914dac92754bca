// Package crud implements the validated CRUD contract shared by every
// resource: list with an optional equality filter, get/update/delete by
// identifier, and create with model-level validation. Each resource
// instantiates one Collection instead of hand-writing the same five
// operations thirteen times.
package crud

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Doc is the pointer-side constraint every stored model satisfies through
// the embedded models.Meta plus its own Validate.
type Doc[T any] interface {
	*T
	SetID(primitive.ObjectID)
	Stamp(now time.Time)
	Validate() error
}

// Collection wraps one mongo collection with the generic operations.
type Collection[T any, P Doc[T]] struct {
	c    *mongo.Collection
	sort bson.D
}

// NewCollection creates a Collection over db.Collection(name). The sort
// order applies to List; pass nil for newest-first (created_at descending).
func NewCollection[T any, P Doc[T]](db *mongo.Database, name string, sort bson.D) *Collection[T, P] {
	if sort == nil {
		sort = bson.D{{Key: "created_at", Value: -1}}
	}
	return &Collection[T, P]{c: db.Collection(name), sort: sort}
}

// ByOrder is the sort key for resources with a caller-assigned display
// order. Ties break by creation time so the listing is stable.
func ByOrder() bson.D {
	return bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: 1}}
}

// Mongo exposes the underlying collection for resource-specific operations
// (toggles, transactions, aggregations) built alongside the generic ones.
func (col *Collection[T, P]) Mongo() *mongo.Collection { return col.c }

// List returns all documents matching filter (nil means all) in the
// collection's sort order.
func (col *Collection[T, P]) List(ctx context.Context, filter bson.M) ([]T, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cur, err := col.c.Find(ctx, filter, options.Find().SetSort(col.sort))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns the document with the given hex identifier. A malformed
// identifier is reported as ErrNotFound, not as a validation failure.
func (col *Collection[T, P]) GetByID(ctx context.Context, idHex string) (*T, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, ErrNotFound
	}
	var doc T
	if err := col.c.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// Create validates doc, assigns its identifier and timestamps, and inserts
// it. Validation failures surface verbatim as *ValidationError.
func (col *Collection[T, P]) Create(ctx context.Context, doc P) error {
	if err := doc.Validate(); err != nil {
		return &ValidationError{Msg: err.Error()}
	}
	doc.SetID(primitive.NewObjectID())
	doc.Stamp(time.Now().UTC())
	_, err := col.c.InsertOne(ctx, doc)
	return err
}

// Update applies set as a partial $set and returns the post-update
// document. Fields absent from set are left unchanged. Callers validate the
// changed fields before building set.
func (col *Collection[T, P]) Update(ctx context.Context, idHex string, set bson.M) (*T, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, ErrNotFound
	}
	set["updated_at"] = time.Now().UTC()

	var doc T
	res := col.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After))
	if err := res.Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// Delete permanently removes the document and returns its last known field
// values.
func (col *Collection[T, P]) Delete(ctx context.Context, idHex string) (*T, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, ErrNotFound
	}
	var doc T
	if err := col.c.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}
