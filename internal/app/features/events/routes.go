package events

import (
	sysauth "github.com/oakhaven/schoolhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns the events subrouter. Reads are public; mutations and the
// highlight toggle sit behind the admin gate.
func Routes(h *Handler, tokens *sysauth.Tokens) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)

	r.Group(func(r chi.Router) {
		r.Use(tokens.RequireAdmin)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
		r.Patch("/{id}/highlight", h.ToggleHighlight)
	})
	return r
}
