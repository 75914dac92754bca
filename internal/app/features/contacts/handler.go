// Package contacts accepts public contact-form messages and gives the admin
// console its gated view over them.
package contacts

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
	Contacts *crud.Collection[models.Contact, *models.Contact]
	Log      *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Contacts: crud.NewCollection[models.Contact](db, "contacts", nil),
		Log:      logger,
	}
}

// Create handles POST /api/contacts. Public; new messages start in status
// "new".
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var item models.Contact
	if err := webapi.Decode(r, &item); err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	item.Name = normalize.Name(item.Name)
	item.NameCI = text.Fold(item.Name)
	item.Email = normalize.Email(item.Email)
	item.Phone = normalize.Phone(item.Phone)
	item.Status = models.ContactNew

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Contacts.Create(ctx, &item); err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	h.Log.Info("contact message received", zap.String("id", item.ID.Hex()))
	webapi.Created(w, item)
}

// List handles GET /api/contacts (gated). Optional filters: ?status= and
// ?q= (case-folded name lookup). Newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" {
		if !models.ValidContactStatus(status) {
			webapi.Fail(w, http.StatusBadRequest,
				`status must be "new", "read", or "replied"`)
			return
		}
		filter["status"] = status
	}
	if q := r.URL.Query().Get("q"); q != "" {
		filter["name_ci"] = text.Fold(q)
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Contacts.List(ctx, filter)
	if err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.OK(w, items)
}

// Get handles GET /api/contacts/{id} (gated).
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	item, err := h.Contacts.GetByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.OK(w, item)
}

type updatePayload struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Subject *string `json:"subject"`
	Message *string `json:"message"`
	Status  *string `json:"status"`
}

func (p *updatePayload) set() (bson.M, error) {
	set := bson.M{}
	if p.Name != nil {
		name := normalize.Name(*p.Name)
		if name == "" {
			return nil, &crud.ValidationError{Msg: "name cannot be empty"}
		}
		set["name"] = name
		set["name_ci"] = text.Fold(name)
	}
	if p.Email != nil {
		email := normalize.Email(*p.Email)
		if email == "" {
			return nil, &crud.ValidationError{Msg: "email cannot be empty"}
		}
		set["email"] = email
	}
	if p.Phone != nil {
		set["phone"] = normalize.Phone(*p.Phone)
	}
	if p.Subject != nil {
		if *p.Subject == "" {
			return nil, &crud.ValidationError{Msg: "subject cannot be empty"}
		}
		set["subject"] = *p.Subject
	}
	if p.Message != nil {
		if *p.Message == "" {
			return nil, &crud.ValidationError{Msg: "message cannot be empty"}
		}
		set["message"] = *p.Message
	}
	if p.Status != nil {
		if !models.ValidContactStatus(*p.Status) {
			return nil, &crud.ValidationError{
				Msg: `status must be "new", "read", or "replied"`,
			}
		}
		set["status"] = *p.Status
	}
	if len(set) == 0 {
		return nil, &crud.ValidationError{Msg: "no fields to update"}
	}
	return set, nil
}

// Update handles PUT /api/contacts/{id} (gated). Typically used to move a
// message through new, read, replied.
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

	item, err := h.Contacts.Update(ctx, chi.URLParam(r, "id"), set)
	if err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.OK(w, item)
}

// Delete handles DELETE /api/contacts/{id} (gated).
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	item, err := h.Contacts.Delete(ctx, chi.URLParam(r, "id"))
	if err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.OKMessage(w, item, "deleted")
}
