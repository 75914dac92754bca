// Package jobapplications accepts public applications against open jobs and
// gives the admin console its gated, job-joined view over them.
package jobapplications

import (
	"context"
	"errors"
	"net/http"

	"github.com/oakhaven/schoolhub/internal/app/store/jobapplications"
	"github.com/oakhaven/schoolhub/internal/app/system/crud"
	"github.com/oakhaven/schoolhub/internal/app/system/normalize"
	"github.com/oakhaven/schoolhub/internal/app/system/timeouts"
	"github.com/oakhaven/schoolhub/internal/app/system/webapi"
	"github.com/oakhaven/schoolhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Apps *appstore.Store
	Log  *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Apps: appstore.New(db),
		Log:  logger,
	}
}

// Create handles POST /api/job-applications. Public. A missing job is a 404;
// an inactive job or passed deadline is a 400, each with its own message.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var item models.JobApplication
	if err := webapi.Decode(r, &item); err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	item.Name = normalize.Name(item.Name)
	item.Email = normalize.Email(item.Email)
	item.Phone = normalize.Phone(item.Phone)
	item.Status = models.ApplicationPending
	item.Job = nil

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Apps.Create(ctx, &item); err != nil {
		switch {
		case errors.Is(err, appstore.ErrJobNotFound):
			webapi.Fail(w, http.StatusNotFound, err.Error())
		case errors.Is(err, appstore.ErrJobInactive),
			errors.Is(err, appstore.ErrDeadlinePassed):
			webapi.Fail(w, http.StatusBadRequest, err.Error())
		default:
			webapi.Error(w, h.Log, err)
		}
		return
	}
	h.Log.Info("job application received",
		zap.String("id", item.ID.Hex()),
		zap.String("job_id", item.JobID.Hex()))
	webapi.Created(w, item)
}

// List handles GET /api/job-applications (gated). Optional filters:
// ?job_id= and ?status=. Each row carries its job summary.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if jobHex := r.URL.Query().Get("job_id"); jobHex != "" {
		jobID, err := primitive.ObjectIDFromHex(jobHex)
		if err != nil {
			webapi.Fail(w, http.StatusBadRequest, "invalid job_id")
			return
		}
		filter["job_id"] = jobID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		if !models.ValidApplicationStatus(status) {
			webapi.Fail(w, http.StatusBadRequest,
				`status must be "Pending", "Under Review", "Shortlisted", "Rejected", or "Hired"`)
			return
		}
		filter["status"] = status
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Apps.ListWithJob(ctx, filter)
	if err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.OK(w, items)
}

// Get handles GET /api/job-applications/{id} (gated).
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	item, err := h.Apps.GetWithJob(ctx, chi.URLParam(r, "id"))
	if err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.OK(w, item)
}

// statusPayload is the only admin-editable part of an application.
type statusPayload struct {
	Status string `json:"status"`
}

// UpdateStatus handles PUT /api/job-applications/{id} (gated).
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var p statusPayload
	if err := webapi.Decode(r, &p); err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	if !models.ValidApplicationStatus(p.Status) {
		webapi.Error(w, h.Log, &crud.ValidationError{
			Msg: `status must be "Pending", "Under Review", "Shortlisted", "Rejected", or "Hired"`,
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	item, err := h.Apps.Update(ctx, chi.URLParam(r, "id"), bson.M{"status": p.Status})
	if err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.OK(w, item)
}

// Delete handles DELETE /api/job-applications/{id} (gated).
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	item, err := h.Apps.Delete(ctx, chi.URLParam(r, "id"))
	if err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.OKMessage(w, item, "deleted")
}
