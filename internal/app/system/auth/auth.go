// Package auth issues, transports, and verifies the admin credential, and
// provides the request gate in front of every protected endpoint.
package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/oakhaven/schoolhub/internal/app/system/webapi"
)

// Cookie names. TokenCookie is HTTP-only and carries the credential;
// StateCookie is readable by the SPA so client code can tell whether a
// session exists without being able to read the token itself.
const (
	TokenCookie = "auth_token"
	StateCookie = "auth_state"
)

type ctxKey string

const claimsKey ctxKey = "adminClaims"

// AdminClaims returns the verified claims attached by RequireAdmin.
func AdminClaims(r *http.Request) (*Claims, bool) {
	c, ok := r.Context().Value(claimsKey).(*Claims)
	return c, ok
}

// WithClaims attaches claims to the request context. Exported for tests that
// exercise gated handlers without running the middleware.
func WithClaims(r *http.Request, c *Claims) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), claimsKey, c))
}

// extractToken tries each credential source in order and stops at the first
// hit: the HTTP-only cookie, then the Authorization header.
func extractToken(r *http.Request) string {
	if c, err := r.Cookie(TokenCookie); err == nil && c.Value != "" {
		return c.Value
	}
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

// RequireAdmin gates a route subtree behind a valid admin credential. A
// missing credential and a failed verification are reported separately, both
// as 401; on success the decoded claims ride the request context.
func (t *Tokens) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			webapi.Fail(w, http.StatusUnauthorized, "missing credential")
			return
		}
		claims, err := t.Verify(token)
		if err != nil {
			webapi.Fail(w, http.StatusUnauthorized, "invalid credential")
			return
		}
		next.ServeHTTP(w, WithClaims(r, claims))
	})
}

// CookieOptions controls how the credential cookies are written.
type CookieOptions struct {
	Domain string
	Secure bool
}

// SetAuthCookies writes the HTTP-only token cookie and the SPA-visible state
// flag with a shared expiry.
func SetAuthCookies(w http.ResponseWriter, token string, ttl time.Duration, opts CookieOptions) {
	expires := time.Now().Add(ttl)
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Value:    token,
		Path:     "/",
		Domain:   opts.Domain,
		Expires:  expires,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     StateCookie,
		Value:    "1",
		Path:     "/",
		Domain:   opts.Domain,
		Expires:  expires,
		HttpOnly: false,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearAuthCookies expires both credential cookies.
func ClearAuthCookies(w http.ResponseWriter, opts CookieOptions) {
	for _, name := range []string{TokenCookie, StateCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			Domain:   opts.Domain,
			MaxAge:   -1,
			HttpOnly: name == TokenCookie,
			Secure:   opts.Secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
}
