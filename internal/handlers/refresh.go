package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=refresh.go -destination=mock_refresh.go -package=handlers

// Refresher refreshes rates from the focused field.
type Refresher interface {
	StateReader
	Tick(ctx context.Context)
}

// NewRefreshHandler refreshes rates on demand.
// @Summary Refresh rates
// @Description Fetches the latest rates and recomputes from the focused field; falls back to cached rates when offline
// @Tags converter
// @Produce json
// @Success 200 {object} models.StateResponse
// @Router /refresh [post]
func NewRefreshHandler(svc Refresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.Tick(r.Context())
		writeState(w, http.StatusOK, svc)
	}
}

// RegisterRefreshHandler registers the refresh route.
func RegisterRefreshHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/refresh", h)
}
