package activitystore_test

import (
	"errors"
	"testing"

	"github.com/oakhaven/schoolhub/internal/app/store/activities"
	"github.com/oakhaven/schoolhub/internal/app/system/crud"
	"github.com/oakhaven/schoolhub/internal/app/system/txn"
	"github.com/oakhaven/schoolhub/internal/domain/models"
	"github.com/oakhaven/schoolhub/internal/testutil"
)

// reorderOrSkip runs a reorder and skips the test when the server does not
// support transactions (standalone mongod without a replica set).
func reorderOrSkip(t *testing.T, store *activitystore.Store, updates []activitystore.OrderUpdate) error {
	t.Helper()
	err := store.Reorder(testutil.TestContext(t), updates)
	if txn.IsNotSupported(err) {
		t.Skipf("transactions unsupported on test server: %v", err)
	}
	return err
}

func TestReorder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := activitystore.New(db)
	fx := testutil.NewFixtures(t, db)

	a := fx.CreateActivity(ctx, "Chess Club", models.CategoryExtraCurricular, 1)
	b := fx.CreateActivity(ctx, "Debate", models.CategoryCoCurricular, 2)

	if err := reorderOrSkip(t, store, []activitystore.OrderUpdate{
		{ID: a.ID.Hex(), Order: 2},
		{ID: b.ID.Hex(), Order: 1},
	}); err != nil {
		t.Fatalf("Reorder failed: %v", err)
	}

	items, err := store.List(ctx, nil)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("List returned %d items, want 2", len(items))
	}
	if items[0].Title != "Debate" || items[1].Title != "Chess Club" {
		t.Errorf("order after reorder = [%s, %s], want [Debate, Chess Club]",
			items[0].Title, items[1].Title)
	}
}

func TestReorderIsAllOrNothing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := activitystore.New(db)
	fx := testutil.NewFixtures(t, db)

	a := fx.CreateActivity(ctx, "Chess Club", models.CategoryExtraCurricular, 1)

	// Probe transaction support with a valid batch first.
	if err := reorderOrSkip(t, store, []activitystore.OrderUpdate{
		{ID: a.ID.Hex(), Order: 1},
	}); err != nil {
		t.Fatalf("probe Reorder failed: %v", err)
	}

	err := store.Reorder(ctx, []activitystore.OrderUpdate{
		{ID: a.ID.Hex(), Order: 9},
		{ID: "65f0c0ffee0000000000abcd", Order: 1}, // resolves to nothing
	})
	if !errors.Is(err, crud.ErrNotFound) {
		t.Fatalf("Reorder with an unknown item = %v, want ErrNotFound", err)
	}

	// The first item's write must have rolled back with the batch.
	got, err := store.GetByID(ctx, a.ID.Hex())
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Order != 1 {
		t.Errorf("Order = %d after failed batch, want 1 (rolled back)", got.Order)
	}
}

func TestReorderMalformedID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := activitystore.New(db)

	err := reorderOrSkip(t, store, []activitystore.OrderUpdate{
		{ID: "not-hex", Order: 1},
	})
	if !errors.Is(err, crud.ErrNotFound) {
		t.Errorf("Reorder with malformed id = %v, want ErrNotFound", err)
	}
}

func TestReorderEmptyBatch(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := activitystore.New(db)

	if err := store.Reorder(testutil.TestContext(t), nil); err != nil {
		t.Errorf("Reorder(empty) = %v, want nil", err)
	}
}
