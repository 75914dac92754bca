// Package activities serves the activities page: CRUD over activities plus
// the batch reorder used by the admin console's drag-and-drop.
package activities

import (
	"context"
	"net/http"
	"strings"

	activitystore "github.com/oakhaven/schoolhub/internal/app/store/activities"
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
	Activities *activitystore.Store
	Log        *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Activities: activitystore.New(db),
		Log:        logger,
	}
}

// List handles GET /api/activities (public). An optional ?category= query
// filters to one of the three categories.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var filter bson.M
	if cat := r.URL.Query().Get("category"); cat != "" {
		if !models.ValidActivityCategory(cat) {
			webapi.Fail(w, http.StatusBadRequest,
				`category must be "curricular", "co-curricular", or "extra-curricular"`)
			return
		}
		filter = bson.M{"category": strings.ToLower(strings.TrimSpace(cat))}
	}

	items, err := h.Activities.List(ctx, filter)
	if err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.OK(w, items)
}

// Get handles GET /api/activities/{id} (public).
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	item, err := h.Activities.GetByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.OK(w, item)
}

// Create handles POST /api/activities (gated).
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var item models.Activity
	if err := webapi.Decode(r, &item); err != nil {
		webapi.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Activities.Create(ctx, &item); err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.Created(w, item)
}

type updatePayload struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Image       *string `json:"image"`
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
	if p.Category != nil {
		if !models.ValidActivityCategory(*p.Category) {
			return nil, &crud.ValidationError{
				Msg: `category must be "curricular", "co-curricular", or "extra-curricular"`,
			}
		}
		set["category"] = strings.ToLower(strings.TrimSpace(*p.Category))
	}
	if p.Image != nil {
		set["image"] = *p.Image
	}
	if p.Order != nil {
		set["order"] = *p.Order
	}
	if len(set) == 0 {
		return nil, &crud.ValidationError{Msg: "no fields to update"}
	}
	return set, nil
}

// Update handles PUT /api/activities/{id} (gated).
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

	item, err := h.Activities.Update(ctx, chi.URLParam(r, "id"), set)
	if err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.OK(w, item)
}

// Delete handles DELETE /api/activities/{id} (gated).
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	item, err := h.Activities.Delete(ctx, chi.URLParam(r, "id"))
	if err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.OKMessage(w, item, "deleted")
}

type reorderRequest struct {
	Updates []activitystore.OrderUpdate `json:"updates"`
}

// Reorder handles PUT /api/activities/reorder (gated). The batch applies
// inside one transaction: one bad identifier rolls back every item.
func (h *Handler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if err := webapi.Decode(r, &req); err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	if len(req.Updates) == 0 {
		webapi.Fail(w, http.StatusBadRequest, "updates is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Activities.Reorder(ctx, req.Updates); err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.OKMessage(w, nil, "reordered")
}
