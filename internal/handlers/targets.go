package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

//go:generate mockgen -source=targets.go -destination=mock_targets.go -package=handlers

// TargetEditor manages target rows.
type TargetEditor interface {
	StateReader
	AddTarget(ctx context.Context, code string) (models.Target, error)
	EditTarget(ctx context.Context, id uuid.UUID, text string) error
	SelectTarget(ctx context.Context, id uuid.UUID, code string) error
	RemoveTarget(id uuid.UUID) error
}

// NewAddTargetHandler adds a target currency.
// @Summary Add target
// @Description Appends a target currency, at most four
// @Tags targets
// @Accept json
// @Produce json
// @Param request body models.CurrencyRequest true "Currency code"
// @Success 201 {object} models.StateResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /targets [post]
func NewAddTargetHandler(svc TargetEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CurrencyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if _, err := svc.AddTarget(r.Context(), req.Code); err != nil {
			writeServiceError(w, err)
			return
		}
		writeState(w, http.StatusCreated, svc)
	}
}

// NewEditTargetHandler handles text typed into a target amount field.
// @Summary Edit target amount
// @Description Sets a target amount and converts the base and other targets from it
// @Tags targets
// @Accept json
// @Produce json
// @Param id path string true "Target ID"
// @Param request body models.AmountRequest true "Amount text"
// @Success 200 {object} models.StateResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /targets/{id} [put]
func NewEditTargetHandler(svc TargetEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := targetID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid target id")
			return
		}
		var req models.AmountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := svc.EditTarget(r.Context(), id, req.Amount); err != nil {
			writeServiceError(w, err)
			return
		}
		writeState(w, http.StatusOK, svc)
	}
}

// NewSelectTargetCurrencyHandler re-assigns a target currency.
// @Summary Select target currency
// @Description Changes the currency of a target and converts from the base amount
// @Tags targets
// @Accept json
// @Produce json
// @Param id path string true "Target ID"
// @Param request body models.CurrencyRequest true "Currency code"
// @Success 200 {object} models.StateResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /targets/{id}/currency [put]
func NewSelectTargetCurrencyHandler(svc TargetEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := targetID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid target id")
			return
		}
		var req models.CurrencyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := svc.SelectTarget(r.Context(), id, req.Code); err != nil {
			writeServiceError(w, err)
			return
		}
		writeState(w, http.StatusOK, svc)
	}
}

// NewRemoveTargetHandler removes a target.
// @Summary Remove target
// @Description Removes a target row; other amounts are kept as they are
// @Tags targets
// @Produce json
// @Param id path string true "Target ID"
// @Success 200 {object} models.StateResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /targets/{id} [delete]
func NewRemoveTargetHandler(svc TargetEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := targetID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid target id")
			return
		}

		if err := svc.RemoveTarget(id); err != nil {
			writeServiceError(w, err)
			return
		}
		writeState(w, http.StatusOK, svc)
	}
}

// RegisterTargetHandlers registers the target routes.
func RegisterTargetHandlers(r chi.Router, add, edit, selectCurrency, remove http.HandlerFunc) {
	r.Post("/targets", add)
	r.Put("/targets/{id}", edit)
	r.Put("/targets/{id}/currency", selectCurrency)
	r.Delete("/targets/{id}", remove)
}
