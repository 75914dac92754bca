package events_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	eventsfeature "github.com/oakhaven/schoolhub/internal/app/features/events"
	sysauth "github.com/oakhaven/schoolhub/internal/app/system/auth"
	"github.com/oakhaven/schoolhub/internal/domain/models"
	"github.com/oakhaven/schoolhub/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) (chi.Router, *mongo.Database, string) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	tokens := sysauth.NewTokens("test-secret", time.Hour)
	h := eventsfeature.NewHandler(db, zap.NewNop())

	token, err := tokens.Issue("65f0c0ffee0000000000abcd", "admin@example.com")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	r := chi.NewRouter()
	r.Mount("/api/events", eventsfeature.Routes(h, tokens))
	return r, db, token
}

func TestCreateParsesPlainDate(t *testing.T) {
	router, _, token := newTestRouter(t)

	body := testutil.JSONBody(t, map[string]any{
		"title":       "Sports Day",
		"description": "Annual sports day",
		"date":        "2026-11-20",
	})
	req := httptest.NewRequest("POST", "/api/events/", body)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}
	var ev models.Event
	testutil.DecodeEnvelope(t, rec.Body.Bytes(), &ev)
	if ev.Date.IsZero() {
		t.Error("created event has a zero date")
	}
}

func TestCreateRejectsBadDate(t *testing.T) {
	router, _, token := newTestRouter(t)

	body := testutil.JSONBody(t, map[string]any{
		"title":       "Sports Day",
		"description": "Annual sports day",
		"date":        "next friday",
	})
	req := httptest.NewRequest("POST", "/api/events/", body)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCreateSanitizesDescription(t *testing.T) {
	router, _, token := newTestRouter(t)

	body := testutil.JSONBody(t, map[string]any{
		"title":       "Open House",
		"description": `<p>Visit us</p><script>alert("x")</script>`,
		"date":        "2026-11-20",
	})
	req := httptest.NewRequest("POST", "/api/events/", body)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}
	var ev models.Event
	testutil.DecodeEnvelope(t, rec.Body.Bytes(), &ev)
	if ev.Description != "<p>Visit us</p>" {
		t.Errorf("description = %q, want sanitized markup", ev.Description)
	}
}

func TestToggleHighlight(t *testing.T) {
	router, db, token := newTestRouter(t)
	fx := testutil.NewFixtures(t, db)
	ev := fx.CreateEvent(testutil.TestContext(t), "Sports Day", time.Now().Add(48*time.Hour), false)

	toggle := func() models.Event {
		req := httptest.NewRequest("PATCH", "/api/events/"+ev.ID.Hex()+"/highlight", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("toggle status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
		}
		var got models.Event
		testutil.DecodeEnvelope(t, rec.Body.Bytes(), &got)
		return got
	}

	if got := toggle(); !got.Highlight {
		t.Error("first toggle left highlight false")
	}
	if got := toggle(); got.Highlight {
		t.Error("second toggle left highlight true")
	}
}

func TestListHighlightedOnly(t *testing.T) {
	router, db, _ := newTestRouter(t)
	fx := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)

	fx.CreateEvent(ctx, "Sports Day", time.Now().Add(48*time.Hour), true)
	fx.CreateEvent(ctx, "Book Fair", time.Now().Add(96*time.Hour), false)

	req := httptest.NewRequest("GET", "/api/events/?highlight=true", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var items []models.Event
	testutil.DecodeEnvelope(t, rec.Body.Bytes(), &items)
	if len(items) != 1 {
		t.Fatalf("got %d events, want 1", len(items))
	}
	if items[0].Title != "Sports Day" {
		t.Errorf("Title = %q, want %q", items[0].Title, "Sports Day")
	}
}

func TestMutationsAreGated(t *testing.T) {
	router, _, _ := newTestRouter(t)

	body := testutil.JSONBody(t, map[string]any{
		"title": "Sports Day", "description": "d", "date": "2026-11-20",
	})
	req := httptest.NewRequest("POST", "/api/events/", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("ungated create status = %d, want 401", rec.Code)
	}
}
