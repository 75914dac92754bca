package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/oakhaven/schoolhub/internal/app/system/auth"
)

func gateHarness(t *testing.T, tokens *auth.Tokens) http.Handler {
	t.Helper()
	return tokens.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := auth.AdminClaims(r)
		if !ok {
			t.Error("gated handler ran without claims in context")
		}
		w.Header().Set("X-Admin", claims.Email)
		w.WriteHeader(http.StatusOK)
	}))
}

func TestRequireAdminMissingCredential(t *testing.T) {
	tokens := auth.NewTokens("test-secret", time.Hour)

	req := httptest.NewRequest("GET", "/api/admissions", nil)
	rec := httptest.NewRecorder()
	gateHarness(t, tokens).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	var env struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if env.Success {
		t.Error("success = true on a rejected request")
	}
	if env.Message != "missing credential" {
		t.Errorf("message = %q, want %q", env.Message, "missing credential")
	}
}

func TestRequireAdminInvalidCredential(t *testing.T) {
	tokens := auth.NewTokens("test-secret", time.Hour)

	req := httptest.NewRequest("GET", "/api/admissions", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	rec := httptest.NewRecorder()
	gateHarness(t, tokens).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireAdminBearerHeader(t *testing.T) {
	tokens := auth.NewTokens("test-secret", time.Hour)
	signed, err := tokens.Issue("65f0c0ffee0000000000abcd", "admin@example.com")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/admissions", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	gateHarness(t, tokens).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("X-Admin"); got != "admin@example.com" {
		t.Errorf("claims email = %q, want %q", got, "admin@example.com")
	}
}

func TestRequireAdminCookie(t *testing.T) {
	tokens := auth.NewTokens("test-secret", time.Hour)
	signed, err := tokens.Issue("65f0c0ffee0000000000abcd", "admin@example.com")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/admissions", nil)
	req.AddCookie(&http.Cookie{Name: auth.TokenCookie, Value: signed})
	rec := httptest.NewRecorder()
	gateHarness(t, tokens).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestSetAuthCookies(t *testing.T) {
	rec := httptest.NewRecorder()
	auth.SetAuthCookies(rec, "signed-token", time.Hour, auth.CookieOptions{})

	cookies := rec.Result().Cookies()
	var tokenCookie, stateCookie *http.Cookie
	for _, c := range cookies {
		switch c.Name {
		case auth.TokenCookie:
			tokenCookie = c
		case auth.StateCookie:
			stateCookie = c
		}
	}
	if tokenCookie == nil || stateCookie == nil {
		t.Fatalf("expected both auth cookies, got %d cookies", len(cookies))
	}
	if !tokenCookie.HttpOnly {
		t.Error("token cookie must be HTTP-only")
	}
	if stateCookie.HttpOnly {
		t.Error("state cookie must be readable by client scripts")
	}
	if tokenCookie.Value != "signed-token" {
		t.Errorf("token cookie value = %q, want %q", tokenCookie.Value, "signed-token")
	}
}

func TestClearAuthCookies(t *testing.T) {
	rec := httptest.NewRecorder()
	auth.ClearAuthCookies(rec, auth.CookieOptions{})

	for _, c := range rec.Result().Cookies() {
		if c.MaxAge >= 0 {
			t.Errorf("cookie %q not expired (MaxAge %d)", c.Name, c.MaxAge)
		}
	}
}
