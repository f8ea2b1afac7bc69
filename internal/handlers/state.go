package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

//go:generate mockgen -source=state.go -destination=mock_state.go -package=handlers

// StateReader returns the calculator state and the focused field.
type StateReader interface {
	State() (models.ConversionState, models.Focus)
}

// NewGetStateHandler returns the current calculator state.
// @Summary Get state
// @Description Returns the amounts, currencies, offline flag and rates date
// @Tags converter
// @Produce json
// @Success 200 {object} models.StateResponse
// @Router /state [get]
func NewGetStateHandler(svc StateReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeState(w, http.StatusOK, svc)
	}
}

// RegisterGetStateHandler registers the state route.
func RegisterGetStateHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/state", h)
}
