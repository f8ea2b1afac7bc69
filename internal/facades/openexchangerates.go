package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"golang.org/x/time/rate"
)

// DefaultOpenExchangeRatesURL is the public API root of openexchangerates.org.
const DefaultOpenExchangeRatesURL = "https://openexchangerates.org/api"

// latestResponse is the payload of latest.json.
type latestResponse struct {
	Timestamp int64              `json:"timestamp"`
	Base      string             `json:"base"`
	Rates     map[string]float64 `json:"rates"`
}

// OpenExchangeRatesFacade fetches currencies and rates from the
// openexchangerates.org HTTP API.
type OpenExchangeRatesFacade struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// NewOpenExchangeRatesFacade creates a facade. Every request waits on limiter
// first. A nil limiter disables throttling.
func NewOpenExchangeRatesFacade(baseURL string, client *http.Client, limiter *rate.Limiter) *OpenExchangeRatesFacade {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &OpenExchangeRatesFacade{
		baseURL: baseURL,
		client:  client,
		limiter: limiter,
	}
}

// FetchCurrencyTable fetches the code -> display name table.
func (f *OpenExchangeRatesFacade) FetchCurrencyTable(ctx context.Context) (models.CurrencyTable, error) {
	var table models.CurrencyTable
	if err := f.get(ctx, "/currencies.json", nil, &table); err != nil {
		logger.Log.Errorw("failed to fetch currencies", "error", err)
		return nil, err
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("%w: empty currency list", ErrDecode)
	}
	return table, nil
}

// FetchRates fetches the latest rates relative to the feed base. The pivot's
// own rate is returned as sent, if at all.
func (f *OpenExchangeRatesFacade) FetchRates(ctx context.Context, apiKey string) (*models.RatesSnapshot, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: api key is not configured", ErrAuth)
	}

	var resp latestResponse
	if err := f.get(ctx, "/latest.json", url.Values{"app_id": {apiKey}}, &resp); err != nil {
		logger.Log.Errorw("failed to fetch latest rates", "error", err)
		return nil, err
	}
	if resp.Rates == nil {
		return nil, fmt.Errorf("%w: response has no rates", ErrDecode)
	}

	snapshot := &models.RatesSnapshot{
		Rates: models.RateTable(resp.Rates),
		Date:  models.FormatRatesDate(time.Unix(resp.Timestamp, 0)),
	}
	logger.Log.Infow("fetched latest rates",
		"base", resp.Base,
		"date", snapshot.Date,
		"count", len(resp.Rates),
	)
	return snapshot, nil
}

func (f *OpenExchangeRatesFacade) get(ctx context.Context, path string, query url.Values, out any) error {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%w: %w", ErrNetwork, err)
		}
	}

	endpoint := f.baseURL + path
	target := endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %w", ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		// *url.Error repeats the full URL, credential included
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return fmt.Errorf("%w: %s: %w", ErrNetwork, path, err)
	}
	defer resp.Body.Close()

	// endpoint, not target: the query carries the credential
	logger.Log.Debugw("rate provider request",
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized,
		resp.StatusCode == http.StatusForbidden,
		resp.StatusCode == http.StatusTooManyRequests:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: status %d: %s", ErrAuth, resp.StatusCode, string(body))
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}
	return nil
}
