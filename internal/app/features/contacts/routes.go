package contacts

import (
	"github.com/oakhaven/schoolhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, tokens *auth.Tokens) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Create)
	r.Group(func(r chi.Router) {
		r.Use(tokens.RequireAdmin)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
	return r
}
