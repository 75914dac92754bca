package schoolinfo

import (
	"github.com/oakhaven/schoolhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, tokens *auth.Tokens) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Get)
	r.Group(func(r chi.Router) {
		r.Use(tokens.RequireAdmin)
		r.Put("/", h.Update)
	})
	return r
}
