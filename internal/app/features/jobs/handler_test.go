package jobs_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jobsfeature "github.com/oakhaven/schoolhub/internal/app/features/jobs"
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
	h := jobsfeature.NewHandler(db, zap.NewNop())

	token, err := tokens.Issue("65f0c0ffee0000000000abcd", "admin@example.com")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	r := chi.NewRouter()
	r.Mount("/api/jobs", jobsfeature.Routes(h, tokens))
	return r, db, token
}

func TestPublicListShowsOnlyActive(t *testing.T) {
	router, db, _ := newTestRouter(t)
	fx := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)

	fx.CreateJob(ctx, "Mathematics Teacher")
	fx.CreateInactiveJob(ctx, "Lab Assistant")

	req := httptest.NewRequest("GET", "/api/jobs/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var items []models.Job
	testutil.DecodeEnvelope(t, rec.Body.Bytes(), &items)
	if len(items) != 1 {
		t.Fatalf("public list returned %d jobs, want 1", len(items))
	}
	if items[0].Title != "Mathematics Teacher" {
		t.Errorf("Title = %q, want %q", items[0].Title, "Mathematics Teacher")
	}
}

func TestListAllIncludesInactive(t *testing.T) {
	router, db, _ := newTestRouter(t)
	fx := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)

	fx.CreateJob(ctx, "Mathematics Teacher")
	fx.CreateInactiveJob(ctx, "Lab Assistant")

	req := httptest.NewRequest("GET", "/api/jobs/?all=true", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var items []models.Job
	testutil.DecodeEnvelope(t, rec.Body.Bytes(), &items)
	if len(items) != 2 {
		t.Errorf("full list returned %d jobs, want 2", len(items))
	}
}

func TestCreate(t *testing.T) {
	router, _, token := newTestRouter(t)

	body := testutil.JSONBody(t, map[string]any{
		"title":        "Science Teacher",
		"department":   "Science",
		"type":         "full-time",
		"description":  "<p>Teach physics</p><script>x()</script>",
		"requirements": []string{"B.Ed", "3 years experience"},
		"deadline":     "2026-10-01",
	})
	req := httptest.NewRequest("POST", "/api/jobs/", body)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}
	var job models.Job
	testutil.DecodeEnvelope(t, rec.Body.Bytes(), &job)
	if !job.Active {
		t.Error("new job should default to active")
	}
	if job.Description != "<p>Teach physics</p>" {
		t.Errorf("description = %q, want sanitized markup", job.Description)
	}
	if len(job.Requirements) != 2 {
		t.Errorf("requirements = %v, want 2 entries", job.Requirements)
	}
	if job.Deadline.IsZero() {
		t.Error("deadline was not parsed")
	}
}

func TestCreateRejectsBadDeadline(t *testing.T) {
	router, _, token := newTestRouter(t)

	body := testutil.JSONBody(t, map[string]any{
		"title":       "Science Teacher",
		"department":  "Science",
		"description": "Teach physics",
		"deadline":    "whenever",
	})
	req := httptest.NewRequest("POST", "/api/jobs/", body)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	env := testutil.DecodeEnvelope(t, rec.Body.Bytes(), nil)
	if env.Message != "invalid deadline" {
		t.Errorf("message = %q, want %q", env.Message, "invalid deadline")
	}
}

func TestDeactivate(t *testing.T) {
	router, db, token := newTestRouter(t)
	fx := testutil.NewFixtures(t, db)
	job := fx.CreateJob(testutil.TestContext(t), "Mathematics Teacher")

	body := testutil.JSONBody(t, map[string]any{"active": false})
	req := httptest.NewRequest("PUT", "/api/jobs/"+job.ID.Hex(), body)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	var updated models.Job
	testutil.DecodeEnvelope(t, rec.Body.Bytes(), &updated)
	if updated.Active {
		t.Error("job still active after deactivation")
	}
}

func TestMutationsAreGated(t *testing.T) {
	router, _, _ := newTestRouter(t)

	body := testutil.JSONBody(t, map[string]any{
		"title": "X", "department": "Y", "description": "Z", "deadline": "2026-10-01",
	})
	req := httptest.NewRequest("POST", "/api/jobs/", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("ungated create status = %d, want 401", rec.Code)
	}
}
