package crud_test

import (
	"errors"
	"testing"

	"github.com/oakhaven/schoolhub/internal/app/system/crud"
	"github.com/oakhaven/schoolhub/internal/domain/models"
	"github.com/oakhaven/schoolhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func newTestCollection(t *testing.T) *crud.Collection[models.Academic, *models.Academic] {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return crud.NewCollection[models.Academic](db, "academics", crud.ByOrder())
}

func TestCreateAndGet(t *testing.T) {
	col := newTestCollection(t)
	ctx := testutil.TestContext(t)

	item := models.Academic{Title: "Primary Wing", Description: "Grades 1 to 5", Order: 1}
	if err := col.Create(ctx, &item); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if item.ID.IsZero() {
		t.Fatal("Create did not assign an identifier")
	}
	if item.CreatedAt.IsZero() || item.UpdatedAt.IsZero() {
		t.Error("Create did not stamp timestamps")
	}

	got, err := col.GetByID(ctx, item.ID.Hex())
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Title != "Primary Wing" {
		t.Errorf("Title = %q, want %q", got.Title, "Primary Wing")
	}
}

func TestCreateValidates(t *testing.T) {
	col := newTestCollection(t)
	ctx := testutil.TestContext(t)

	err := col.Create(ctx, &models.Academic{Description: "missing title"})
	if err == nil {
		t.Fatal("Create accepted an invalid document")
	}
	if !crud.IsValidation(err) {
		t.Errorf("Create error %v is not a validation error", err)
	}
	if err.Error() != "title is required" {
		t.Errorf("error = %q, want %q", err.Error(), "title is required")
	}
}

func TestGetByIDMalformedHex(t *testing.T) {
	col := newTestCollection(t)
	ctx := testutil.TestContext(t)

	if _, err := col.GetByID(ctx, "not-a-hex-id"); !errors.Is(err, crud.ErrNotFound) {
		t.Errorf("GetByID(malformed) = %v, want ErrNotFound", err)
	}
}

func TestGetByIDUnknown(t *testing.T) {
	col := newTestCollection(t)
	ctx := testutil.TestContext(t)

	if _, err := col.GetByID(ctx, "65f0c0ffee0000000000abcd"); !errors.Is(err, crud.ErrNotFound) {
		t.Errorf("GetByID(unknown) = %v, want ErrNotFound", err)
	}
}

func TestListSortsByOrder(t *testing.T) {
	col := newTestCollection(t)
	ctx := testutil.TestContext(t)

	for i, title := range []string{"Senior Wing", "Middle Wing", "Primary Wing"} {
		item := models.Academic{Title: title, Description: "d", Order: 3 - i}
		if err := col.Create(ctx, &item); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	items, err := col.List(ctx, nil)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("List returned %d items, want 3", len(items))
	}
	want := []string{"Primary Wing", "Middle Wing", "Senior Wing"}
	for i, w := range want {
		if items[i].Title != w {
			t.Errorf("items[%d].Title = %q, want %q", i, items[i].Title, w)
		}
	}
}

func TestUpdatePartial(t *testing.T) {
	col := newTestCollection(t)
	ctx := testutil.TestContext(t)

	item := models.Academic{Title: "Primary Wing", Description: "Grades 1 to 5", Order: 1}
	if err := col.Create(ctx, &item); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := col.Update(ctx, item.ID.Hex(), bson.M{"order": 7})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got.Order != 7 {
		t.Errorf("Order = %d, want 7", got.Order)
	}
	if got.Title != "Primary Wing" {
		t.Errorf("Title changed to %q on a partial update", got.Title)
	}
	if !got.UpdatedAt.After(got.CreatedAt) {
		t.Error("UpdatedAt was not advanced by Update")
	}
}

func TestDeleteReturnsLastValues(t *testing.T) {
	col := newTestCollection(t)
	ctx := testutil.TestContext(t)

	item := models.Academic{Title: "Primary Wing", Description: "Grades 1 to 5"}
	if err := col.Create(ctx, &item); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	deleted, err := col.Delete(ctx, item.ID.Hex())
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted.Title != "Primary Wing" {
		t.Errorf("deleted.Title = %q, want %q", deleted.Title, "Primary Wing")
	}

	if _, err := col.GetByID(ctx, item.ID.Hex()); !errors.Is(err, crud.ErrNotFound) {
		t.Errorf("GetByID after delete = %v, want ErrNotFound", err)
	}
	if _, err := col.Delete(ctx, item.ID.Hex()); !errors.Is(err, crud.ErrNotFound) {
		t.Errorf("second Delete = %v, want ErrNotFound", err)
	}
}
