package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenKeyValue fails every operation.
type brokenKeyValue struct{}

func (brokenKeyValue) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("disk on fire")
}

func (brokenKeyValue) Put(context.Context, map[string][]byte) error {
	return errors.New("disk on fire")
}

func TestRateStore_CurrencyTable(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults when nothing saved", func(t *testing.T) {
		store := NewRateStore(NewMemoryKeyValue())
		assert.Equal(t, models.DefaultCurrencies(), store.LoadCurrencyTable(ctx))
	})

	t.Run("round trip", func(t *testing.T) {
		store := NewRateStore(NewMemoryKeyValue())
		table := models.CurrencyTable{"USD": "US Dollar", "XAU": "Gold (troy ounce)"}

		require.NoError(t, store.SaveCurrencyTable(ctx, table))
		assert.Equal(t, table, store.LoadCurrencyTable(ctx))
	})

	t.Run("defaults when stored blob is corrupt", func(t *testing.T) {
		kv := NewMemoryKeyValue()
		require.NoError(t, kv.Put(ctx, map[string][]byte{CurrenciesKey: []byte("{not json")}))

		store := NewRateStore(kv)
		assert.Equal(t, models.DefaultCurrencies(), store.LoadCurrencyTable(ctx))
	})

	t.Run("defaults when backend fails", func(t *testing.T) {
		store := NewRateStore(brokenKeyValue{})
		assert.Equal(t, models.DefaultCurrencies(), store.LoadCurrencyTable(ctx))
		assert.Error(t, store.SaveCurrencyTable(ctx, models.CurrencyTable{"USD": "US Dollar"}))
	})
}

func TestRateStore_Snapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("nil when nothing saved", func(t *testing.T) {
		store := NewRateStore(NewMemoryKeyValue())
		assert.Nil(t, store.LoadSnapshot(ctx))

		_, ok := store.LastUpdate(ctx)
		assert.False(t, ok)
	})

	t.Run("save overwrites the single slot", func(t *testing.T) {
		store := NewRateStore(NewMemoryKeyValue())
		fixed := time.Date(2025, 10, 29, 12, 0, 0, 0, time.UTC)
		store.now = func() time.Time { return fixed }

		first := models.RatesSnapshot{Rates: models.RateTable{"USD": 1, "EUR": 0.9, "GBP": 0.8}, Date: "2025-10-28"}
		second := models.RatesSnapshot{Rates: models.RateTable{"USD": 1, "EUR": 0.92}, Date: "2025-10-29"}

		require.NoError(t, store.SaveSnapshot(ctx, first))
		require.NoError(t, store.SaveSnapshot(ctx, second))

		got := store.LoadSnapshot(ctx)
		require.NotNil(t, got)
		assert.Equal(t, second, *got)

		ts, ok := store.LastUpdate(ctx)
		assert.True(t, ok)
		assert.True(t, fixed.Equal(ts))
	})

	t.Run("nil when rates are corrupt", func(t *testing.T) {
		kv := NewMemoryKeyValue()
		require.NoError(t, kv.Put(ctx, map[string][]byte{
			RatesKey:     []byte(`{"EUR":"lots"}`),
			RatesDateKey: []byte("2025-10-29"),
		}))

		assert.Nil(t, NewRateStore(kv).LoadSnapshot(ctx))
	})

	t.Run("nil when date is missing", func(t *testing.T) {
		kv := NewMemoryKeyValue()
		require.NoError(t, kv.Put(ctx, map[string][]byte{RatesKey: []byte(`{"EUR":0.9}`)}))

		assert.Nil(t, NewRateStore(kv).LoadSnapshot(ctx))
	})

	t.Run("nil when backend fails", func(t *testing.T) {
		store := NewRateStore(brokenKeyValue{})
		assert.Nil(t, store.LoadSnapshot(ctx))
		assert.Error(t, store.SaveSnapshot(ctx, models.RatesSnapshot{Rates: models.RateTable{}, Date: "2025-10-29"}))
	})
}
