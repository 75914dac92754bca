// Package events serves the events page: CRUD over events plus the
// highlight toggle that promotes an event to the home page.
package events

import (
	"context"
	"net/http"
	"time"

	eventstore "github.com/oakhaven/schoolhub/internal/app/store/events"
	"github.com/oakhaven/schoolhub/internal/app/system/crud"
	"github.com/oakhaven/schoolhub/internal/app/system/htmlsanitize"
	"github.com/oakhaven/schoolhub/internal/app/system/timeouts"
	"github.com/oakhaven/schoolhub/internal/app/system/webapi"
	"github.com/oakhaven/schoolhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Events *eventstore.Store
	Log    *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Events: eventstore.New(db),
		Log:    logger,
	}
}

var dateFormats = []string{time.RFC3339, "2006-01-02"}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, &crud.ValidationError{Msg: "invalid date"}
}

// List handles GET /api/events (public). ?highlight=true narrows to the
// home-page highlights.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var filter bson.M
	if r.URL.Query().Get("highlight") == "true" {
		filter = bson.M{"highlight": true}
	}

	items, err := h.Events.List(ctx, filter)
	if err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.OK(w, items)
}

// Get handles GET /api/events/{id} (public).
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	item, err := h.Events.GetByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.OK(w, item)
}

type createPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Image       string `json:"image"`
	Highlight   bool   `json:"highlight"`
}

// Create handles POST /api/events (gated). The description is sanitized
// before storage; the date accepts RFC3339 or YYYY-MM-DD.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var p createPayload
	if err := webapi.Decode(r, &p); err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	if p.Date == "" {
		webapi.Fail(w, http.StatusBadRequest, "date is required")
		return
	}
	date, err := parseDate(p.Date)
	if err != nil {
		webapi.Error(w, h.Log, err)
		return
	}

	item := models.Event{
		Title:       p.Title,
		Description: htmlsanitize.Sanitize(p.Description),
		Date:        date,
		Time:        p.Time,
		Location:    p.Location,
		Image:       p.Image,
		Highlight:   p.Highlight,
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Events.Create(ctx, &item); err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.Created(w, item)
}

type updatePayload struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Location    *string `json:"location"`
	Image       *string `json:"image"`
	Highlight   *bool   `json:"highlight"`
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
		set["description"] = htmlsanitize.Sanitize(*p.Description)
	}
	if p.Date != nil {
		date, err := parseDate(*p.Date)
		if err != nil {
			return nil, err
		}
		set["date"] = date
	}
	if p.Time != nil {
		set["time"] = *p.Time
	}
	if p.Location != nil {
		set["location"] = *p.Location
	}
	if p.Image != nil {
		set["image"] = *p.Image
	}
	if p.Highlight != nil {
		set["highlight"] = *p.Highlight
	}
	if len(set) == 0 {
		return nil, &crud.ValidationError{Msg: "no fields to update"}
	}
	return set, nil
}

// Update handles PUT /api/events/{id} (gated).
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

	item, err := h.Events.Update(ctx, chi.URLParam(r, "id"), set)
	if err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.OK(w, item)
}

// Delete handles DELETE /api/events/{id} (gated).
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	item, err := h.Events.Delete(ctx, chi.URLParam(r, "id"))
	if err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.OKMessage(w, item, "deleted")
}

// ToggleHighlight handles PATCH /api/events/{id}/highlight (gated).
func (h *Handler) ToggleHighlight(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	item, err := h.Events.ToggleHighlight(ctx, chi.URLParam(r, "id"))
	if err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.OK(w, item)
}
