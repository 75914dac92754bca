package admissions_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	admissionsfeature "github.com/oakhaven/schoolhub/internal/app/features/admissions"
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
	h := admissionsfeature.NewHandler(db, zap.NewNop())

	token, err := tokens.Issue("65f0c0ffee0000000000abcd", "admin@example.com")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	r := chi.NewRouter()
	r.Mount("/api/admissions", admissionsfeature.Routes(h, tokens))
	return r, db, token
}

func submitEnquiry(t *testing.T, router chi.Router) models.Admission {
	t.Helper()
	body := testutil.JSONBody(t, map[string]any{
		"student_name": "  Anika Rao ",
		"parent_name":  "Meera Rao",
		"email":        "Meera@Example.COM",
		"phone":        "555-123-4567",
		"grade":        "3",
	})
	req := httptest.NewRequest("POST", "/api/admissions/", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}
	var adm models.Admission
	testutil.DecodeEnvelope(t, rec.Body.Bytes(), &adm)
	return adm
}

func TestPublicCreateNormalizes(t *testing.T) {
	router, _, _ := newTestRouter(t)
	adm := submitEnquiry(t, router)

	if adm.StudentName != "Anika Rao" {
		t.Errorf("StudentName = %q, want trimmed %q", adm.StudentName, "Anika Rao")
	}
	if adm.Email != "meera@example.com" {
		t.Errorf("Email = %q, want normalized %q", adm.Email, "meera@example.com")
	}
	if adm.Phone != "5551234567" {
		t.Errorf("Phone = %q, want normalized %q", adm.Phone, "5551234567")
	}
	if adm.Status != models.AdmissionNew {
		t.Errorf("Status = %q, want %q", adm.Status, models.AdmissionNew)
	}
}

func TestCreateIgnoresCallerStatus(t *testing.T) {
	router, _, _ := newTestRouter(t)

	body := testutil.JSONBody(t, map[string]any{
		"student_name": "Anika Rao",
		"parent_name":  "Meera Rao",
		"email":        "meera@example.com",
		"phone":        "5551234567",
		"grade":        "3",
		"status":       "accepted",
	})
	req := httptest.NewRequest("POST", "/api/admissions/", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	var adm models.Admission
	testutil.DecodeEnvelope(t, rec.Body.Bytes(), &adm)
	if adm.Status != models.AdmissionNew {
		t.Errorf("Status = %q, public submissions must start %q", adm.Status, models.AdmissionNew)
	}
}

func TestReadsAreGated(t *testing.T) {
	router, _, _ := newTestRouter(t)
	adm := submitEnquiry(t, router)

	for _, target := range []string{"/api/admissions/", "/api/admissions/" + adm.ID.Hex()} {
		req := httptest.NewRequest("GET", target, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("GET %s without credential = %d, want 401", target, rec.Code)
		}
	}
}

func TestAdminLifecycle(t *testing.T) {
	router, _, token := newTestRouter(t)
	adm := submitEnquiry(t, router)

	do := func(method, target string, body map[string]any) *httptest.ResponseRecorder {
		var req *http.Request
		if body != nil {
			req = httptest.NewRequest(method, target, testutil.JSONBody(t, body))
		} else {
			req = httptest.NewRequest(method, target, nil)
		}
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	// List shows the submitted enquiry.
	rec := do("GET", "/api/admissions/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", rec.Code)
	}
	var items []models.Admission
	testutil.DecodeEnvelope(t, rec.Body.Bytes(), &items)
	if len(items) != 1 {
		t.Fatalf("list returned %d items, want 1", len(items))
	}

	// Move it to reviewed.
	rec = do("PUT", "/api/admissions/"+adm.ID.Hex(), map[string]any{"status": "reviewed"})
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	var updated models.Admission
	testutil.DecodeEnvelope(t, rec.Body.Bytes(), &updated)
	if updated.Status != models.AdmissionReviewed {
		t.Errorf("Status = %q, want %q", updated.Status, models.AdmissionReviewed)
	}

	// Filter by status.
	rec = do("GET", "/api/admissions/?status=reviewed", nil)
	testutil.DecodeEnvelope(t, rec.Body.Bytes(), &items)
	if len(items) != 1 {
		t.Errorf("status filter returned %d items, want 1", len(items))
	}
	rec = do("GET", "/api/admissions/?status=new", nil)
	testutil.DecodeEnvelope(t, rec.Body.Bytes(), &items)
	if len(items) != 0 {
		t.Errorf("stale status filter returned %d items, want 0", len(items))
	}

	// Delete returns the last known values, then the record is gone.
	rec = do("DELETE", "/api/admissions/"+adm.ID.Hex(), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d, want 200", rec.Code)
	}
	var deleted models.Admission
	testutil.DecodeEnvelope(t, rec.Body.Bytes(), &deleted)
	if deleted.StudentName != "Anika Rao" {
		t.Errorf("deleted.StudentName = %q, want %q", deleted.StudentName, "Anika Rao")
	}

	rec = do("GET", "/api/admissions/"+adm.ID.Hex(), nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete = %d, want 404", rec.Code)
	}
}

func TestRejectsUnknownStatusFilter(t *testing.T) {
	router, _, token := newTestRouter(t)

	req := httptest.NewRequest("GET", "/api/admissions/?status=archived", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
