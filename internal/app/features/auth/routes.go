package auth

import (
	sysauth "github.com/oakhaven/schoolhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns the auth subrouter. Login and logout are public; the
// identity and credential endpoints sit behind the gate.
func Routes(h *Handler, tokens *sysauth.Tokens) chi.Router {
	r := chi.NewRouter()
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)

	r.Group(func(r chi.Router) {
		r.Use(tokens.RequireAdmin)
		r.Get("/me", h.Me)
		r.Put("/credentials", h.UpdateCredentials)
	})
	return r
}
