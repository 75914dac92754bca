// Package homestats serves the home-page counters block.
package homestats

import (
	"context"
	"net/http"

	"github.com/oakhaven/schoolhub/internal/app/store/homestats"
	"github.com/oakhaven/schoolhub/internal/app/system/crud"
	"github.com/oakhaven/schoolhub/internal/app/system/timeouts"
	"github.com/oakhaven/schoolhub/internal/app/system/webapi"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Stats *statsstore.Store
	Log   *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Stats: statsstore.New(db),
		Log:   logger,
	}
}

// Get handles GET /api/home-stats. Public; the first call materializes the
// document with zeroed counters.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	stats, err := h.Stats.Get(ctx)
	if err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.OK(w, stats)
}

type updatePayload struct {
	Students   *int `json:"students"`
	Teachers   *int `json:"teachers"`
	Classrooms *int `json:"classrooms"`
	Awards     *int `json:"awards"`
	Years      *int `json:"years"`
}

func (p *updatePayload) set() (bson.M, error) {
	set := bson.M{}
	put := func(field string, v *int) error {
		if v == nil {
			return nil
		}
		if *v < 0 {
			return &crud.ValidationError{Msg: field + " cannot be negative"}
		}
		set[field] = *v
		return nil
	}
	for field, v := range map[string]*int{
		"students":   p.Students,
		"teachers":   p.Teachers,
		"classrooms": p.Classrooms,
		"awards":     p.Awards,
		"years":      p.Years,
	} {
		if err := put(field, v); err != nil {
			return nil, err
		}
	}
	if len(set) == 0 {
		return nil, &crud.ValidationError{Msg: "no fields to update"}
	}
	return set, nil
}

// Update handles PUT /api/home-stats (gated). Partial updates are fine.
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

	stats, err := h.Stats.Update(ctx, set)
	if err != nil {
		webapi.Error(w, h.Log, err)
		return
	}
	webapi.OK(w, stats)
}
