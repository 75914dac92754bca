// Package jobs serves the careers section: the public list of open positions
// and the admin CRUD behind it.
package jobs

import (
	"context"
	"net/http"

	"github.com/oakhaven/schoolhub/internal/app/store/jobs"
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
	Jobs *jobstore.Store
	Log  *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Jobs: jobstore.New(db),
		Log:  logger,
	}
}

// List handles GET /api/jobs. Public callers see only active positions;
// admins can pass ?all=true for the full set.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var (
		items []models.Job
		err   error
	)
	if r.URL.Query().Get("all") == "true" {
		items, err = h.Jobs.List(ctx, bson.M{})
	} else {
		items, err = h.Jobs.ListActive(ctx)
	}
	if err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.OK(w, items)
}

// Get handles GET /api/jobs/{id}. Public.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	item, err := h.Jobs.GetByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.OK(w, item)
}

// createPayload carries the deadline as text so callers can send either a
// full timestamp or a plain date.
type createPayload struct {
	Title        string   `json:"title"`
	Department   string   `json:"department"`
	Location     string   `json:"location"`
	Type         string   `json:"type"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Deadline     string   `json:"deadline"`
	Active       *bool    `json:"active"`
}

// Create handles POST /api/jobs (gated). New jobs default to active.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var p createPayload
	if err := webapi.Decode(r, &p); err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	if p.Deadline == "" {
		webapi.Error(w, h.Log, &crud.ValidationError{Msg: "deadline is required"})
		return
	}
	deadline, err := jobstore.ParseDeadline(p.Deadline)
	if err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	item := models.Job{
		Title:        p.Title,
		Department:   p.Department,
		Location:     p.Location,
		Type:         p.Type,
		Description:  htmlsanitize.Sanitize(p.Description),
		Requirements: p.Requirements,
		Deadline:     deadline,
		Active:       true,
	}
	if p.Active != nil {
		item.Active = *p.Active
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Jobs.Create(ctx, &item); err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.Created(w, item)
}

type updatePayload struct {
	Title        *string   `json:"title"`
	Department   *string   `json:"department"`
	Location     *string   `json:"location"`
	Type         *string   `json:"type"`
	Description  *string   `json:"description"`
	Requirements *[]string `json:"requirements"`
	Deadline     *string   `json:"deadline"`
	Active       *bool     `json:"active"`
}

func (p *updatePayload) set() (bson.M, error) {
	set := bson.M{}
	if p.Title != nil {
		if *p.Title == "" {
			return nil, &crud.ValidationError{Msg: "title cannot be empty"}
		}
		set["title"] = *p.Title
	}
	if p.Department != nil {
		if *p.Department == "" {
			return nil, &crud.ValidationError{Msg: "department cannot be empty"}
		}
		set["department"] = *p.Department
	}
	if p.Location != nil {
		set["location"] = *p.Location
	}
	if p.Type != nil {
		if !models.ValidJobType(*p.Type) {
			return nil, &crud.ValidationError{
				Msg: `type must be "full-time", "part-time", or "contract"`,
			}
		}
		set["type"] = *p.Type
	}
	if p.Description != nil {
		if *p.Description == "" {
			return nil, &crud.ValidationError{Msg: "description cannot be empty"}
		}
		set["description"] = htmlsanitize.Sanitize(*p.Description)
	}
	if p.Requirements != nil {
		set["requirements"] = *p.Requirements
	}
	if p.Deadline != nil {
		deadline, err := jobstore.ParseDeadline(*p.Deadline)
		if err != nil {
			return nil, err
		}
		set["deadline"] = deadline
	}
	if p.Active != nil {
		set["active"] = *p.Active
	}
	if len(set) == 0 {
		return nil, &crud.ValidationError{Msg: "no fields to update"}
	}
	return set, nil
}

// Update handles PUT /api/jobs/{id} (gated).
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

	item, err := h.Jobs.Update(ctx, chi.URLParam(r, "id"), set)
	if err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.OK(w, item)
}

// Delete handles DELETE /api/jobs/{id} (gated). Applications already filed
// against the job are kept; their job join comes back empty afterward.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	item, err := h.Jobs.Delete(ctx, chi.URLParam(r, "id"))
	if err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.OKMessage(w, item, "deleted")
}
