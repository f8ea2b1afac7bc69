package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=converter.go -destination=mock_converter.go -package=services

var (
	// ErrUnknownCurrency is returned when a code is not in the currency table.
	ErrUnknownCurrency = errors.New("unknown currency")
	// ErrTargetLimit is returned when adding a target beyond MaxTargets.
	ErrTargetLimit = errors.New("target limit reached")
	// ErrDuplicateCurrency is returned when a code is already shown.
	ErrDuplicateCurrency = errors.New("currency already shown")
	// ErrTargetNotFound is returned for an unknown target id.
	ErrTargetNotFound = errors.New("target not found")
)

// RateStore persists the last fetched snapshot and currency table.
type RateStore interface {
	SaveCurrencyTable(ctx context.Context, table models.CurrencyTable) error // Overwrites the stored currency table
	LoadCurrencyTable(ctx context.Context) models.CurrencyTable              // Stored table or the default set
	SaveSnapshot(ctx context.Context, snapshot models.RatesSnapshot) error   // Overwrites the stored snapshot
	LoadSnapshot(ctx context.Context) *models.RatesSnapshot                  // Stored snapshot or nil
}

// RateProvider fetches currencies and rates from a remote feed.
type RateProvider interface {
	FetchCurrencyTable(ctx context.Context) (models.CurrencyTable, error)         // Returns code -> display name
	FetchRates(ctx context.Context, apiKey string) (*models.RatesSnapshot, error) // Returns raw rates without the pivot
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
}

// ConverterOption configures a Converter.
type ConverterOption func(*Converter)

// WithAPIKey sets the rate feed credential. Without it the converter stays offline.
func WithAPIKey(key string) ConverterOption {
	return func(c *Converter) { c.apiKey = key }
}

// WithPublisher announces every adopted snapshot on Kafka.
func WithPublisher(w KafkaWriter) ConverterOption {
	return func(c *Converter) { c.kafkaWriter = w }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) ConverterOption {
	return func(c *Converter) { c.now = now }
}

// Converter owns the conversion state and the active rate table. It converts
// amounts through the pivot and falls back to the stored snapshot whenever the
// feed cannot be reached.
type Converter struct {
	store       RateStore
	provider    RateProvider
	apiKey      string
	kafkaWriter KafkaWriter
	now         func() time.Time

	mu         sync.Mutex
	state      models.ConversionState
	currencies models.CurrencyTable
	rates      models.RateTable
	ratesDate  string
	ratesGen   uint64 // generation the in-memory rates came from
	requested  uint64
	applied    uint64

	persistMu sync.Mutex
	persisted uint64 // generation of the stored snapshot

	subMu   sync.RWMutex
	subs    map[int]func(models.StateChange)
	nextSub int
}

// NewConverter creates a converter with the default state and the offline
// data found in store.
func NewConverter(store RateStore, provider RateProvider, opts ...ConverterOption) *Converter {
	c := &Converter{
		store:    store,
		provider: provider,
		now:      time.Now,
		state:    models.DefaultConversionState(),
		subs:     make(map[int]func(models.StateChange)),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.loadOfflineData(context.Background())
	return c
}

func (c *Converter) loadOfflineData(ctx context.Context) {
	c.currencies = c.store.LoadCurrencyTable(ctx)
	if saved := c.store.LoadSnapshot(ctx); saved != nil {
		c.rates = saved.Rates.WithPivot()
		c.ratesDate = saved.Date
		c.state.RatesDate = saved.Date
	}
	logger.Log.Infow("offline data loaded",
		"currencies", len(c.currencies),
		"rates", len(c.rates),
		"date", c.ratesDate,
	)
}

// State returns a copy of the current state.
func (c *Converter) State() models.ConversionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// Currencies returns a copy of the known currency table.
func (c *Converter) Currencies() models.CurrencyTable {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currencies.Clone()
}

// Subscribe registers fn for every state change. The returned func removes it.
func (c *Converter) Subscribe(fn func(models.StateChange)) (cancel func()) {
	c.subMu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.subMu.Unlock()

	return func() {
		c.subMu.Lock()
		delete(c.subs, id)
		c.subMu.Unlock()
	}
}

// commitLocked stamps the state with the next version and returns a copy for
// subscribers. Versions give published changes a total order. c.mu must be held.
func (c *Converter) commitLocked() models.ConversionState {
	c.state.Version++
	return c.state.Clone()
}

func (c *Converter) notify(state models.ConversionState, source models.Source) {
	c.subMu.RLock()
	fns := make([]func(models.StateChange), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.subMu.RUnlock()

	for _, fn := range fns {
		fn(models.StateChange{State: state.Clone(), Source: source})
	}
}

// Bootstrap fetches the currency table, then runs a base-driven refresh.
// Failures leave the offline defaults in place.
func (c *Converter) Bootstrap(ctx context.Context) {
	table, err := c.provider.FetchCurrencyTable(ctx)
	if err != nil {
		logger.Log.Warnw("failed to fetch currencies, keeping offline table", "error", err)
		c.Refresh(ctx, models.NoFocus)
		return
	}

	if err := c.store.SaveCurrencyTable(ctx, table); err != nil {
		logger.Log.Errorw("failed to save currency table", "error", err)
	}

	c.mu.Lock()
	c.currencies = table.Clone()
	if !c.currencies.Has(c.state.BaseCurrency) {
		c.state.BaseCurrency = models.USD
	}
	if len(c.state.Targets) == 0 {
		c.state.Targets = []models.Target{models.NewTarget(models.EUR)}
	}
	state := c.commitLocked()
	c.mu.Unlock()

	c.notify(state, models.SourceEngine)
	c.Refresh(ctx, models.NoFocus)
}

// Refresh fetches the latest rates and recomputes from the focused field.
// Any failure switches to offline mode and recomputes from the stored
// snapshot. A response older than the last applied one is dropped.
func (c *Converter) Refresh(ctx context.Context, focus models.Focus) {
	c.mu.Lock()
	c.requested++
	gen := c.requested
	c.mu.Unlock()

	if c.apiKey == "" {
		c.goOffline(ctx, gen, focus)
		return
	}

	fetched, err := c.provider.FetchRates(ctx, c.apiKey)
	if err != nil {
		logger.Log.Warnw("rate refresh failed, using cached rates", "error", err)
		c.goOffline(ctx, gen, focus)
		return
	}

	snapshot := models.RatesSnapshot{Rates: fetched.Rates.WithPivot(), Date: fetched.Date}

	c.mu.Lock()
	if gen < c.applied {
		applied := c.applied
		c.mu.Unlock()
		logger.Log.Infow("dropping stale rate response", "request", gen, "applied", applied)
		return
	}
	c.applied = gen
	c.rates = snapshot.Rates
	c.ratesDate = snapshot.Date
	c.ratesGen = gen
	c.state.IsOfflineMode = false
	c.mu.Unlock()

	c.persistSnapshot(ctx, gen, snapshot)
	c.publishSnapshot(ctx, snapshot)

	c.convert(focus)
}

// persistSnapshot writes snapshot unless a later generation is already stored.
// Saves are serialized so the store never goes back to an older snapshot.
func (c *Converter) persistSnapshot(ctx context.Context, gen uint64, snapshot models.RatesSnapshot) {
	c.persistMu.Lock()
	defer c.persistMu.Unlock()

	if gen < c.persisted {
		logger.Log.Infow("skipping stale snapshot save", "request", gen, "persisted", c.persisted)
		return
	}
	if err := c.store.SaveSnapshot(ctx, snapshot); err != nil {
		logger.Log.Errorw("failed to save rates snapshot", "date", snapshot.Date, "error", err)
		return
	}
	c.persisted = gen
}

func (c *Converter) goOffline(ctx context.Context, gen uint64, focus models.Focus) {
	c.persistMu.Lock()
	saved := c.store.LoadSnapshot(ctx)
	persisted := c.persisted
	c.persistMu.Unlock()

	c.mu.Lock()
	if gen < c.applied {
		c.mu.Unlock()
		logger.Log.Infow("dropping stale offline fallback", "request", gen)
		return
	}
	c.applied = gen
	c.state.IsOfflineMode = true
	// rates adopted online but not yet stored stay in use
	if saved != nil && persisted >= c.ratesGen {
		c.rates = saved.Rates.WithPivot()
		c.ratesDate = saved.Date
		c.ratesGen = persisted
	}
	c.mu.Unlock()

	c.convert(focus)
}

// publishSnapshot announces an adopted snapshot on Kafka.
func (c *Converter) publishSnapshot(ctx context.Context, snapshot models.RatesSnapshot) {
	if c.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "date", snapshot.Date)
		return
	}

	data, err := json.Marshal(models.SnapshotEvent{
		Date:      snapshot.Date,
		Base:      models.Pivot,
		Rates:     snapshot.Rates,
		FetchedAt: c.now().UTC(),
	})
	if err != nil {
		logger.Log.Errorw("Failed to marshal snapshot for Kafka", "date", snapshot.Date, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(snapshot.Date),
		Value: data,
	}

	if err := c.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish snapshot to Kafka", "date", snapshot.Date, "error", err)
	} else {
		logger.Log.Infow("Snapshot published to Kafka", "date", snapshot.Date, "count", len(snapshot.Rates))
	}
}

func (c *Converter) convert(focus models.Focus) {
	if focus.Kind == models.FocusTarget {
		c.ConvertFromTarget(focus.TargetID)
		return
	}
	c.ConvertFromBase()
}

// ConvertFromBase recomputes every target from the base amount.
func (c *Converter) ConvertFromBase() {
	c.mu.Lock()
	c.convertFromBase()
	state := c.commitLocked()
	c.mu.Unlock()

	c.notify(state, models.SourceEngine)
}

func (c *Converter) convertFromBase() {
	s := &c.state
	amount, ok := models.ParseAmount(s.BaseAmount)
	if !ok || s.BaseCurrency == "" {
		s.RatesDate = ""
		for i := range s.Targets {
			s.Targets[i].Amount = ""
		}
		return
	}

	s.RatesDate = c.ratesDate
	baseRate, baseOK := c.rates.Rate(s.BaseCurrency)
	for i, t := range s.Targets {
		if t.Code == s.BaseCurrency {
			s.Targets[i].Amount = models.FormatAmount(amount)
			continue
		}
		rate, ok := c.rates.Rate(t.Code)
		if !ok || !baseOK {
			s.Targets[i].Amount = ""
			continue
		}
		s.Targets[i].Amount = models.FormatAmount(amount * rate / baseRate)
	}
}

// ConvertFromTarget recomputes the base and the other targets from target id.
func (c *Converter) ConvertFromTarget(id uuid.UUID) {
	c.mu.Lock()
	c.convertFromTarget(id)
	state := c.commitLocked()
	c.mu.Unlock()

	c.notify(state, models.SourceEngine)
}

func (c *Converter) convertFromTarget(id uuid.UUID) {
	s := &c.state
	idx := s.TargetIndex(id)

	var amount float64
	ok := idx >= 0
	if ok {
		amount, ok = models.ParseAmount(s.Targets[idx].Amount)
	}
	if !ok {
		s.BaseAmount = ""
		for i := range s.Targets {
			if i != idx {
				s.Targets[i].Amount = ""
			}
		}
		return
	}

	s.RatesDate = c.ratesDate
	from := s.Targets[idx].Code
	fromRate, fromOK := c.rates.Rate(from)

	s.BaseAmount = c.convertAmount(amount, from, s.BaseCurrency, fromRate, fromOK)
	for i, t := range s.Targets {
		if i == idx {
			continue
		}
		s.Targets[i].Amount = c.convertAmount(amount, from, t.Code, fromRate, fromOK)
	}
}

func (c *Converter) convertAmount(amount float64, from, to string, fromRate float64, fromOK bool) string {
	if to == from {
		return models.FormatAmount(amount)
	}
	rate, ok := c.rates.Rate(to)
	if !ok || !fromOK {
		return ""
	}
	return models.FormatAmount(amount * rate / fromRate)
}

// SetBaseAmount stores the base amount text as typed.
func (c *Converter) SetBaseAmount(text string) {
	c.mu.Lock()
	c.state.BaseAmount = text
	state := c.commitLocked()
	c.mu.Unlock()

	c.notify(state, models.SourceUser)
}

// SetTargetAmount stores the amount text typed into target id.
func (c *Converter) SetTargetAmount(id uuid.UUID, text string) error {
	c.mu.Lock()
	idx := c.state.TargetIndex(id)
	if idx < 0 {
		c.mu.Unlock()
		return ErrTargetNotFound
	}
	c.state.Targets[idx].Amount = text
	state := c.commitLocked()
	c.mu.Unlock()

	c.notify(state, models.SourceUser)
	return nil
}

// SetBaseCurrency selects the base currency.
func (c *Converter) SetBaseCurrency(code string) error {
	c.mu.Lock()
	if !c.currencies.Has(code) {
		c.mu.Unlock()
		return ErrUnknownCurrency
	}
	c.state.BaseCurrency = code
	state := c.commitLocked()
	c.mu.Unlock()

	c.notify(state, models.SourceUser)
	return nil
}

// AddTarget appends a target row for code.
func (c *Converter) AddTarget(code string) (models.Target, error) {
	c.mu.Lock()
	if !c.currencies.Has(code) {
		c.mu.Unlock()
		return models.Target{}, ErrUnknownCurrency
	}
	if len(c.state.Targets) >= models.MaxTargets {
		c.mu.Unlock()
		return models.Target{}, ErrTargetLimit
	}
	if code == c.state.BaseCurrency || c.hasTargetCode(code) {
		c.mu.Unlock()
		return models.Target{}, ErrDuplicateCurrency
	}
	target := models.NewTarget(code)
	c.state.Targets = append(c.state.Targets, target)
	state := c.commitLocked()
	c.mu.Unlock()

	c.notify(state, models.SourceUser)
	return target, nil
}

func (c *Converter) hasTargetCode(code string) bool {
	for _, t := range c.state.Targets {
		if t.Code == code {
			return true
		}
	}
	return false
}

// SetTargetCode re-assigns the currency of target id.
func (c *Converter) SetTargetCode(id uuid.UUID, code string) error {
	c.mu.Lock()
	if !c.currencies.Has(code) {
		c.mu.Unlock()
		return ErrUnknownCurrency
	}
	idx := c.state.TargetIndex(id)
	if idx < 0 {
		c.mu.Unlock()
		return ErrTargetNotFound
	}
	c.state.Targets[idx].Code = code
	state := c.commitLocked()
	c.mu.Unlock()

	c.notify(state, models.SourceUser)
	return nil
}

// RemoveTarget deletes target id. Other fields keep their values.
func (c *Converter) RemoveTarget(id uuid.UUID) error {
	c.mu.Lock()
	idx := c.state.TargetIndex(id)
	if idx < 0 {
		c.mu.Unlock()
		return ErrTargetNotFound
	}
	c.state.Targets = append(c.state.Targets[:idx], c.state.Targets[idx+1:]...)
	state := c.commitLocked()
	c.mu.Unlock()

	c.notify(state, models.SourceUser)
	return nil
}
