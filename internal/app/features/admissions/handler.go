// Package admissions accepts public admission enquiries and gives the admin
// console its gated view over them.
package admissions

import (
	"context"
	"net/http"

	"github.com/oakhaven/schoolhub/internal/app/system/crud"
	"github.com/oakhaven/schoolhub/internal/app/system/normalize"
	"github.com/oakhaven/schoolhub/internal/app/system/timeouts"
	"github.com/oakhaven/schoolhub/internal/app/system/webapi"
	"github.com/oakhaven/schoolhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Admissions *crud.Collection[models.Admission, *models.Admission]
	Log        *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Admissions: crud.NewCollection[models.Admission](db, "admissions", nil),
		Log:        logger,
	}
}

// Create handles POST /api/admissions. This is a public submission; the
// record starts in status "new".
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var item models.Admission
	if err := webapi.Decode(r, &item); err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	item.StudentName = normalize.Name(item.StudentName)
	item.StudentNameCI = text.Fold(item.StudentName)
	item.ParentName = normalize.Name(item.ParentName)
	item.Email = normalize.Email(item.Email)
	item.Phone = normalize.Phone(item.Phone)
	item.Status = models.AdmissionNew

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Admissions.Create(ctx, &item); err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	h.Log.Info("admission enquiry received", zap.String("id", item.ID.Hex()))
	webapi.Created(w, item)
}

// List handles GET /api/admissions (gated). Optional filters: ?status= and
// ?q= (case-folded student name lookup). Newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" {
		if !models.ValidAdmissionStatus(status) {
			webapi.Fail(w, http.StatusBadRequest,
				`status must be "new", "reviewed", "accepted", or "rejected"`)
			return
		}
		filter["status"] = status
	}
	if q := r.URL.Query().Get("q"); q != "" {
		filter["student_name_ci"] = text.Fold(q)
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Admissions.List(ctx, filter)
	if err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.OK(w, items)
}

// Get handles GET /api/admissions/{id} (gated).
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	item, err := h.Admissions.GetByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.OK(w, item)
}

type updatePayload struct {
	StudentName    *string `json:"student_name"`
	ParentName     *string `json:"parent_name"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	Grade          *string `json:"grade"`
	Category       *string `json:"category"`
	PreviousSchool *string `json:"previous_school"`
	Message        *string `json:"message"`
	Status         *string `json:"status"`
}

func (p *updatePayload) set() (bson.M, error) {
	set := bson.M{}
	if p.StudentName != nil {
		name := normalize.Name(*p.StudentName)
		if name == "" {
			return nil, &crud.ValidationError{Msg: "student_name cannot be empty"}
		}
		set["student_name"] = name
		set["student_name_ci"] = text.Fold(name)
	}
	if p.ParentName != nil {
		name := normalize.Name(*p.ParentName)
		if name == "" {
			return nil, &crud.ValidationError{Msg: "parent_name cannot be empty"}
		}
		set["parent_name"] = name
	}
	if p.Email != nil {
		email := normalize.Email(*p.Email)
		if email == "" {
			return nil, &crud.ValidationError{Msg: "email cannot be empty"}
		}
		set["email"] = email
	}
	if p.Phone != nil {
		phone := normalize.Phone(*p.Phone)
		if phone == "" {
			return nil, &crud.ValidationError{Msg: "phone cannot be empty"}
		}
		set["phone"] = phone
	}
	if p.Grade != nil {
		if *p.Grade == "" {
			return nil, &crud.ValidationError{Msg: "grade cannot be empty"}
		}
		set["grade"] = *p.Grade
	}
	if p.Category != nil {
		set["category"] = *p.Category
	}
	if p.PreviousSchool != nil {
		set["previous_school"] = *p.PreviousSchool
	}
	if p.Message != nil {
		set["message"] = *p.Message
	}
	if p.Status != nil {
		if !models.ValidAdmissionStatus(*p.Status) {
			return nil, &crud.ValidationError{
				Msg: `status must be "new", "reviewed", "accepted", or "rejected"`,
			}
		}
		set["status"] = *p.Status
	}
	if len(set) == 0 {
		return nil, &crud.ValidationError{Msg: "no fields to update"}
	}
	return set, nil
}

// Update handles PUT /api/admissions/{id} (gated).
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

	item, err := h.Admissions.Update(ctx, chi.URLParam(r, "id"), set)
	if err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.OK(w, item)
}

// Delete handles DELETE /api/admissions/{id} (gated).
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	item, err := h.Admissions.Delete(ctx, chi.URLParam(r, "id"))
	if err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.OKMessage(w, item, "deleted")
}
