package activities

import (
	sysauth "github.com/oakhaven/schoolhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns the activities subrouter. Reads are public; mutations and
// the reorder batch sit behind the admin gate. The reorder route is
// registered before the {id} routes so chi matches it first.
func Routes(h *Handler, tokens *sysauth.Tokens) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)

	r.Group(func(r chi.Router) {
		r.Use(tokens.RequireAdmin)
		r.Post("/", h.Create)
		r.Put("/reorder", h.Reorder)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
	return r
}
