package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
)

//go:generate mockgen -source=currencies.go -destination=mock_currencies.go -package=handlers

// CurrencyLister exposes the known currencies.
type CurrencyLister interface {
	StateReader
	Currencies() models.CurrencyTable
}

// NewListCurrenciesHandler lists the currencies a picker offers.
// @Summary List currencies
// @Description Returns known currencies filtered for the given picker and search text
// @Tags currencies
// @Produce json
// @Param picker query string false "Picker mode" Enums(base, target, new)
// @Param target_id query string false "Target being re-assigned, for picker=target"
// @Param search query string false "Case-insensitive code or name filter"
// @Success 200 {object} models.CurrenciesResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /currencies [get]
func NewListCurrenciesHandler(svc CurrencyLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		mode := services.PickerMode(q.Get("picker"))
		switch mode {
		case services.PickerClosed, services.PickerBase, services.PickerTarget, services.PickerNewTarget:
		default:
			writeError(w, http.StatusBadRequest, "invalid picker")
			return
		}

		var editing uuid.UUID
		if mode == services.PickerTarget {
			id, err := uuid.Parse(q.Get("target_id"))
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid target id")
				return
			}
			editing = id
		}

		table := svc.Currencies()
		state, _ := svc.State()
		codes := services.FilterCodes(table, state, mode, editing, q.Get("search"))

		resp := models.CurrenciesResponse{Currencies: make([]models.CurrencyOption, 0, len(codes))}
		for _, code := range codes {
			resp.Currencies = append(resp.Currencies, models.CurrencyOption{Code: code, Name: table[code]})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// RegisterListCurrenciesHandler registers the currency list route.
func RegisterListCurrenciesHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/currencies", h)
}
