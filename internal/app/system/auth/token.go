package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTTL is the credential validity window. There is no refresh flow; a
// new login is required after expiry.
const TokenTTL = 7 * 24 * time.Hour

// Claims carried by an admin credential.
type Claims struct {
	AdminID string `json:"admin_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies the signed, time-limited admin credentials.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

// NewTokens builds a token service around the shared HS256 secret.
func NewTokens(secret string, ttl time.Duration) *Tokens {
	if ttl <= 0 {
		ttl = TokenTTL
	}
	return &Tokens{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured validity window.
func (t *Tokens) TTL() time.Duration { return t.ttl }

// Issue signs a credential for the given admin identity.
func (t *Tokens) Issue(adminID, email string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		AdminID: adminID,
		Email:   email,
		Role:    "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify checks signature and expiry and returns the decoded claims. Any
// verification failure (expired, tampered, malformed) comes back as an
// error; nothing panics past this boundary.
func (t *Tokens) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
