// Package auth (feature) exposes the admin credential endpoints: login,
// logout, current identity, and credential updates.
package auth

import (
	"context"
	"errors"
	"net/http"

	adminstore "github.com/oakhaven/schoolhub/internal/app/store/admins"
	sysauth "github.com/oakhaven/schoolhub/internal/app/system/auth"
	"github.com/oakhaven/schoolhub/internal/app/system/timeouts"
	"github.com/oakhaven/schoolhub/internal/app/system/webapi"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Admins  *adminstore.Store
	Tokens  *sysauth.Tokens
	Cookies sysauth.CookieOptions
	Log     *zap.Logger
}

func NewHandler(db *mongo.Database, tokens *sysauth.Tokens, cookies sysauth.CookieOptions, logger *zap.Logger) *Handler {
	return &Handler{
		Admins:  adminstore.New(db),
		Tokens:  tokens,
		Cookies: cookies,
		Log:     logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Login handles POST /api/auth/login. Unknown email and wrong password fail
// with byte-identical responses.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := webapi.Decode(r, &req); err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	if req.Email == "" || req.Password == "" {
		webapi.Fail(w, http.StatusBadRequest, "email and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	admin, err := h.Admins.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, adminstore.ErrInvalidCredentials) {
			webapi.Fail(w, http.StatusUnauthorized, err.Error())
			return
		}
		webapi.Error(w, h.Log, err)
		return
	}

	token, err := h.Tokens.Issue(admin.ID.Hex(), admin.Email)
	if err != nil {
		webapi.Error(w, h.Log, err)
		return
	}

	sysauth.SetAuthCookies(w, token, h.Tokens.TTL(), h.Cookies)
	h.Log.Info("admin logged in", zap.String("email", admin.Email))
	webapi.OK(w, loginResponse{Token: token, Email: admin.Email, Name: admin.Name})
}

// Logout handles POST /api/auth/logout. It clears both credential cookies;
// the token itself simply ages out.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	sysauth.ClearAuthCookies(w, h.Cookies)
	webapi.OKMessage(w, nil, "logged out")
}

// Me handles GET /api/auth/me (gated). It returns the account behind the
// verified credential.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := sysauth.AdminClaims(r)
	if !ok {
		webapi.Fail(w, http.StatusUnauthorized, "missing credential")
		return
	}
	id, err := primitive.ObjectIDFromHex(claims.AdminID)
	if err != nil {
		webapi.Fail(w, http.StatusUnauthorized, "invalid credential")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	admin, err := h.Admins.GetByID(ctx, id)
	if err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.OK(w, admin)
}

type credentialsRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	CurrentPassword string `json:"current_password"`
}

// UpdateCredentials handles PUT /api/auth/credentials (gated). Changing the
// password requires the current password; changing email requires the new
// email be unused.
func (h *Handler) UpdateCredentials(w http.ResponseWriter, r *http.Request) {
	claims, ok := sysauth.AdminClaims(r)
	if !ok {
		webapi.Fail(w, http.StatusUnauthorized, "missing credential")
		return
	}
	id, err := primitive.ObjectIDFromHex(claims.AdminID)
	if err != nil {
		webapi.Fail(w, http.StatusUnauthorized, "invalid credential")
		return
	}

	var req credentialsRequest
	if err := webapi.Decode(r, &req); err != nil {
		webapi.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	admin, err := h.Admins.UpdateCredentials(ctx, id, adminstore.CredentialUpdate{
		Email:           req.Email,
		Password:        req.Password,
		CurrentPassword: req.CurrentPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, adminstore.ErrNothingToUpdate),
			errors.Is(err, adminstore.ErrEmailInUse):
			webapi.Fail(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, adminstore.ErrCurrentPassword):
			webapi.Fail(w, http.StatusUnauthorized, err.Error())
		default:
			webapi.Error(w, h.Log, err)
		}
		return
	}

	h.Log.Info("admin credentials updated", zap.String("admin_id", claims.AdminID))
	webapi.OKMessage(w, admin, "credentials updated")
}
