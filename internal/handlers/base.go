package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

//go:generate mockgen -source=base.go -destination=mock_base.go -package=handlers

// BaseEditor edits the base field and selects the base currency.
type BaseEditor interface {
	StateReader
	EditBase(ctx context.Context, text string)
	SelectBase(ctx context.Context, code string) error
}

// NewEditBaseHandler handles text typed into the base amount field.
// @Summary Edit base amount
// @Description Sets the base amount and converts every target from it
// @Tags converter
// @Accept json
// @Produce json
// @Param request body models.AmountRequest true "Amount text"
// @Success 200 {object} models.StateResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /base [put]
func NewEditBaseHandler(svc BaseEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.AmountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		svc.EditBase(r.Context(), req.Amount)
		writeState(w, http.StatusOK, svc)
	}
}

// NewSelectBaseCurrencyHandler handles a base currency selection.
// @Summary Select base currency
// @Description Sets the base currency and converts every target from the base amount
// @Tags converter
// @Accept json
// @Produce json
// @Param request body models.CurrencyRequest true "Currency code"
// @Success 200 {object} models.StateResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /base/currency [put]
func NewSelectBaseCurrencyHandler(svc BaseEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CurrencyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := svc.SelectBase(r.Context(), req.Code); err != nil {
			writeServiceError(w, err)
			return
		}
		writeState(w, http.StatusOK, svc)
	}
}

// RegisterBaseHandlers registers the base field routes.
func RegisterBaseHandlers(r chi.Router, edit, selectCurrency http.HandlerFunc) {
	r.Put("/base", edit)
	r.Put("/base/currency", selectCurrency)
}
