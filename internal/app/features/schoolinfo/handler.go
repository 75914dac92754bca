// Package schoolinfo serves the school-wide identity and contact block.
package schoolinfo

import (
	"context"
	"net/http"

	"github.com/oakhaven/schoolhub/internal/app/store/schoolinfo"
	"github.com/oakhaven/schoolhub/internal/app/system/crud"
	"github.com/oakhaven/schoolhub/internal/app/system/htmlsanitize"
	"github.com/oakhaven/schoolhub/internal/app/system/normalize"
	"github.com/oakhaven/schoolhub/internal/app/system/timeouts"
	"github.com/oakhaven/schoolhub/internal/app/system/webapi"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Info *infostore.Store
	Log  *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Info: infostore.New(db),
		Log:  logger,
	}
}

// Get handles GET /api/school-info. Public; the first call materializes the
// document with default identity values.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	info, err := h.Info.Get(ctx)
	if err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.OK(w, info)
}

type updatePayload struct {
	Name      *string `json:"name"`
	Tagline   *string `json:"tagline"`
	About     *string `json:"about"`
	Address   *string `json:"address"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	Facebook  *string `json:"facebook"`
	Instagram *string `json:"instagram"`
	YouTube   *string `json:"youtube"`
	MapURL    *string `json:"map_url"`
}

func (p *updatePayload) set() (bson.M, error) {
	set := bson.M{}
	if p.Name != nil {
		name := normalize.Name(*p.Name)
		if name == "" {
			return nil, &crud.ValidationError{Msg: "name cannot be empty"}
		}
		set["name"] = name
	}
	if p.Tagline != nil {
		set["tagline"] = *p.Tagline
	}
	if p.About != nil {
		set["about"] = htmlsanitize.Sanitize(*p.About)
	}
	if p.Address != nil {
		set["address"] = *p.Address
	}
	if p.Phone != nil {
		set["phone"] = normalize.Phone(*p.Phone)
	}
	if p.Email != nil {
		set["email"] = normalize.Email(*p.Email)
	}
	if p.Facebook != nil {
		set["facebook"] = *p.Facebook
	}
	if p.Instagram != nil {
		set["instagram"] = *p.Instagram
	}
	if p.YouTube != nil {
		set["youtube"] = *p.YouTube
	}
	if p.MapURL != nil {
		set["map_url"] = *p.MapURL
	}
	if len(set) == 0 {
		return nil, &crud.ValidationError{Msg: "no fields to update"}
	}
	return set, nil
}

// Update handles PUT /api/school-info (gated). Partial updates are fine.
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

	info, err := h.Info.Update(ctx, set)
	if err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.OK(w, info)
}
