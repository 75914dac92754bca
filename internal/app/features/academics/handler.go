// Package academics serves the academics page content: CRUD over the
// academic entries, ordered by their display order.
package academics

import (
	"context"
	"net/http"

	"github.com/oakhaven/schoolhub/internal/app/system/crud"
	"github.com/oakhaven/schoolhub/internal/app/system/timeouts"
	"github.com/oakhaven/schoolhub/internal/app/system/webapi"
	"github.com/oakhaven/schoolhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Academics *crud.Collection[models.Academic, *models.Academic]
	Log       *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Academics: crud.NewCollection[models.Academic](db, "academics", crud.ByOrder()),
		Log:       logger,
	}
}

// List handles GET /api/academics (public).
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Academics.List(ctx, nil)
	if err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.OK(w, items)
}

// Get handles GET /api/academics/{id} (public).
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	item, err := h.Academics.GetByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.OK(w, item)
}

// Create handles POST /api/academics (gated).
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var item models.Academic
	if err := webapi.Decode(r, &item); err != nil {
		webapi.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Academics.Create(ctx, &item); err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.Created(w, item)
}

type updatePayload struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Order       *int    `json:"order"`
}

func (p *updatePayload) set() (bson.M, error) {
	set := bson.M{}
	if p.Title != nil {
		if *p.Title == "" {
			return nil, &crud.ValidationError{Msg: "title cannot be empty"}
		}
		set["title"] = *p.Title
	}
	if p.Description != nil {
		if *p.Description == "" {
			return nil, &crud.ValidationError{Msg: "description cannot be empty"}
		}
		set["description"] = *p.Description
	}
	if p.Icon != nil {
		set["icon"] = *p.Icon
	}
	if p.Order != nil {
		set["order"] = *p.Order
	}
	if len(set) == 0 {
		return nil, &crud.ValidationError{Msg: "no fields to update"}
	}
	return set, nil
}

// Update handles PUT /api/academics/{id} (gated). Only fields present in
// the payload change.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var p updatePayload
	if err := webapi.Decode(r, &p); err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	set, err := p.set()
	if err != nil {
		webapi.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	item, err := h.Academics.Update(ctx, chi.URLParam(r, "id"), set)
	if err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.OK(w, item)
}

// Delete handles DELETE /api/academics/{id} (gated). The response carries
// the removed record's last known field values.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	item, err := h.Academics.Delete(ctx, chi.URLParam(r, "id"))
	if err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.OKMessage(w, item, "deleted")
}
