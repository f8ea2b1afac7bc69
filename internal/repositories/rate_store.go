package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// Keys of the persisted calculator state
const (
	CurrenciesKey = "savedCurrencies"
	RatesKey      = "savedRates"
	RatesDateKey  = "savedRatesDate"
	LastUpdateKey = "lastUpdateDate"
)

// ErrKeyNotFound is returned by a KeyValue backend for a key that was never written.
var ErrKeyNotFound = errors.New("key not found")

// KeyValue is a persistent key/value backend. Put writes all entries
// atomically.
type KeyValue interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, entries map[string][]byte) error
}

// RateStore keeps the last fetched snapshot and currency table in a single
// slot of a KeyValue backend.
type RateStore struct {
	kv  KeyValue
	now func() time.Time
}

// NewRateStore creates a store over the given backend.
func NewRateStore(kv KeyValue) *RateStore {
	return &RateStore{kv: kv, now: time.Now}
}

// SaveCurrencyTable overwrites the stored currency table.
func (s *RateStore) SaveCurrencyTable(ctx context.Context, table models.CurrencyTable) error {
	data, err := json.Marshal(table)
	if err != nil {
		return err
	}
	err = s.kv.Put(ctx, map[string][]byte{CurrenciesKey: data})
	logger.Log.Infow("save currency table",
		"key", CurrenciesKey,
		"count", len(table),
		"error", err,
	)
	return err
}

// LoadCurrencyTable returns the stored currency table, or the default set
// when nothing usable is stored.
func (s *RateStore) LoadCurrencyTable(ctx context.Context) models.CurrencyTable {
	data, err := s.kv.Get(ctx, CurrenciesKey)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			logger.Log.Warnw("failed to read currency table, using defaults", "error", err)
		}
		return models.DefaultCurrencies()
	}

	var table models.CurrencyTable
	if err := json.Unmarshal(data, &table); err != nil || len(table) == 0 {
		logger.Log.Warnw("stored currency table is unusable, using defaults", "error", err)
		return models.DefaultCurrencies()
	}
	return table
}

// SaveSnapshot overwrites the stored rates, their date and the last-update
// timestamp in one write.
func (s *RateStore) SaveSnapshot(ctx context.Context, snapshot models.RatesSnapshot) error {
	data, err := json.Marshal(snapshot.Rates)
	if err != nil {
		return err
	}
	stamp, err := s.now().UTC().MarshalText()
	if err != nil {
		return err
	}

	err = s.kv.Put(ctx, map[string][]byte{
		RatesKey:      data,
		RatesDateKey:  []byte(snapshot.Date),
		LastUpdateKey: stamp,
	})
	logger.Log.Infow("save rates snapshot",
		"date", snapshot.Date,
		"count", len(snapshot.Rates),
		"error", err,
	)
	return err
}

// LoadSnapshot returns the stored snapshot, or nil when none was saved or it
// cannot be decoded.
func (s *RateStore) LoadSnapshot(ctx context.Context) *models.RatesSnapshot {
	data, err := s.kv.Get(ctx, RatesKey)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			logger.Log.Warnw("failed to read rates", "error", err)
		}
		return nil
	}
	date, err := s.kv.Get(ctx, RatesDateKey)
	if err != nil {
		logger.Log.Warnw("rates saved without a date", "error", err)
		return nil
	}

	var rates models.RateTable
	if err := json.Unmarshal(data, &rates); err != nil || rates == nil {
		logger.Log.Warnw("stored rates are corrupt", "error", err)
		return nil
	}
	return &models.RatesSnapshot{Rates: rates, Date: string(date)}
}

// LastUpdate returns when a snapshot was last saved. Informational only.
func (s *RateStore) LastUpdate(ctx context.Context) (time.Time, bool) {
	data, err := s.kv.Get(ctx, LastUpdateKey)
	if err != nil {
		return time.Time{}, false
	}
	var ts time.Time
	if err := ts.UnmarshalText(data); err != nil {
		return time.Time{}, false
	}
	return ts, true
}
