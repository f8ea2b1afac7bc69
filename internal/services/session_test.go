package services

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_EditDispatchesByFocus(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := NewMockEngine(ctrl)
	session := NewSession(engine)
	id := uuid.New()

	gomock.InOrder(
		engine.EXPECT().SetBaseAmount("100"),
		engine.EXPECT().Refresh(ctx, models.BaseFocus),
		engine.EXPECT().SetTargetAmount(id, "92").Return(nil),
		engine.EXPECT().Refresh(ctx, models.TargetFocus(id)),
		engine.EXPECT().Refresh(ctx, models.TargetFocus(id)),
		engine.EXPECT().Refresh(ctx, models.NoFocus),
	)

	session.EditBase(ctx, "100")
	require.NoError(t, session.EditTarget(ctx, id, "92"))

	// a timer tick keeps the last focus
	session.Tick(ctx)

	session.Blur()
	session.Tick(ctx)
}

func TestSession_EditUnknownTarget(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := NewMockEngine(ctrl)
	session := NewSession(engine)
	id := uuid.New()

	engine.EXPECT().SetTargetAmount(id, "1").Return(ErrTargetNotFound)

	assert.ErrorIs(t, session.EditTarget(ctx, id, "1"), ErrTargetNotFound)
	_, focus := sessionState(engine, session)
	assert.Equal(t, models.NoFocus, focus)
}

func sessionState(engine *MockEngine, session *Session) (models.ConversionState, models.Focus) {
	engine.EXPECT().State().Return(models.ConversionState{})
	return session.State()
}

func TestSession_HandleFieldChange(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	tests := []struct {
		name      string
		change    models.FieldChange
		mockSetup func(engine *MockEngine)
	}{
		{
			name:   "user edit of base",
			change: models.FieldChange{Field: models.BaseFocus, Text: "5", Source: models.SourceUser},
			mockSetup: func(engine *MockEngine) {
				engine.EXPECT().SetBaseAmount("5")
				engine.EXPECT().Refresh(ctx, models.BaseFocus)
			},
		},
		{
			name:   "user edit of target",
			change: models.FieldChange{Field: models.TargetFocus(id), Text: "7", Source: models.SourceUser},
			mockSetup: func(engine *MockEngine) {
				engine.EXPECT().SetTargetAmount(id, "7").Return(nil)
				engine.EXPECT().Refresh(ctx, models.TargetFocus(id))
			},
		},
		{
			name:      "engine write to base is ignored",
			change:    models.FieldChange{Field: models.BaseFocus, Text: "5.00", Source: models.SourceEngine},
			mockSetup: func(engine *MockEngine) {},
		},
		{
			name:      "engine write to target is ignored",
			change:    models.FieldChange{Field: models.TargetFocus(id), Text: "7.00", Source: models.SourceEngine},
			mockSetup: func(engine *MockEngine) {},
		},
		{
			name:      "no field",
			change:    models.FieldChange{Field: models.NoFocus, Source: models.SourceUser},
			mockSetup: func(engine *MockEngine) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			engine := NewMockEngine(ctrl)
			tt.mockSetup(engine)

			assert.NoError(t, NewSession(engine).HandleFieldChange(ctx, tt.change))
		})
	}
}

func TestSession_EngineWritesNeverLoop(t *testing.T) {
	ctx := context.Background()

	fetches := 0
	provider := staticRates("2025-10-29", feed)
	inner := provider.rates
	provider.rates = func(ctx context.Context, key string) (*models.RatesSnapshot, error) {
		fetches++
		return inner(ctx, key)
	}

	c := NewConverter(memoryStore(), provider, WithAPIKey("key"))
	session := NewSession(c)

	// a front end reports every changed target field back as a field change
	seen := make(map[uuid.UUID]string)
	cancel := session.Subscribe(func(ch models.StateChange) {
		for _, tg := range ch.State.Targets {
			if seen[tg.ID] == tg.Amount {
				continue
			}
			seen[tg.ID] = tg.Amount
			_ = session.HandleFieldChange(ctx, models.FieldChange{
				Field:  models.TargetFocus(tg.ID),
				Text:   tg.Amount,
				Source: ch.Source,
			})
		}
	})
	defer cancel()

	session.EditBase(ctx, "100")

	assert.Equal(t, 1, fetches)
	assert.Equal(t, "92.00", c.State().Targets[0].Amount)
}

func TestSession_Pickers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := NewMockEngine(ctrl)
	session := NewSession(engine)
	target := models.NewTarget("EUR")
	state := models.ConversionState{BaseCurrency: "USD", Targets: []models.Target{target}}
	engine.EXPECT().State().Return(state).AnyTimes()

	mode, _ := session.Picker()
	assert.Equal(t, PickerClosed, mode)

	session.OpenBasePicker()
	mode, _ = session.Picker()
	assert.Equal(t, PickerBase, mode)

	assert.ErrorIs(t, session.OpenTargetPicker(uuid.New()), ErrTargetNotFound)
	require.NoError(t, session.OpenTargetPicker(target.ID))
	mode, editing := session.Picker()
	assert.Equal(t, PickerTarget, mode)
	assert.Equal(t, target.ID, editing)

	session.SetSearch("eu")
	require.NoError(t, session.OpenNewTargetPicker())
	mode, editing = session.Picker()
	assert.Equal(t, PickerNewTarget, mode)
	assert.Equal(t, uuid.Nil, editing)
	assert.Empty(t, session.search, "opening a picker clears the search")

	session.ClosePicker()
	mode, _ = session.Picker()
	assert.Equal(t, PickerClosed, mode)
}

func TestSession_NewTargetPickerAtLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := NewMockEngine(ctrl)
	state := models.ConversionState{BaseCurrency: "USD"}
	for _, code := range []string{"EUR", "GBP", "JPY", "CHF"} {
		state.Targets = append(state.Targets, models.NewTarget(code))
	}
	engine.EXPECT().State().Return(state)

	session := NewSession(engine)
	assert.ErrorIs(t, session.OpenNewTargetPicker(), ErrTargetLimit)
	mode, _ := session.Picker()
	assert.Equal(t, PickerClosed, mode)
}

func TestFilterCodes(t *testing.T) {
	table := models.CurrencyTable{
		"USD": "US Dollar",
		"EUR": "Euro",
		"GBP": "British Pound",
		"JPY": "Japanese Yen",
		"SEK": "Swedish Krona",
		"NOK": "Norwegian Krone",
	}
	eur := models.NewTarget("EUR")
	gbp := models.NewTarget("GBP")
	state := models.ConversionState{BaseCurrency: "USD", Targets: []models.Target{eur, gbp}}

	tests := []struct {
		name    string
		mode    PickerMode
		editing uuid.UUID
		search  string
		want    []string
	}{
		{
			name: "base picker hides targets",
			mode: PickerBase,
			want: []string{"JPY", "NOK", "SEK", "USD"},
		},
		{
			name:    "target picker hides base and other targets",
			mode:    PickerTarget,
			editing: gbp.ID,
			want:    []string{"GBP", "JPY", "NOK", "SEK"},
		},
		{
			name: "new target picker hides base and all targets",
			mode: PickerNewTarget,
			want: []string{"JPY", "NOK", "SEK"},
		},
		{
			name:   "closed picker offers everything",
			mode:   PickerClosed,
			search: "",
			want:   []string{"EUR", "GBP", "JPY", "NOK", "SEK", "USD"},
		},
		{
			name:   "search matches name case-insensitively",
			mode:   PickerNewTarget,
			search: "  KRON ",
			want:   []string{"NOK", "SEK"},
		},
		{
			name:   "search matches code",
			mode:   PickerBase,
			search: "jp",
			want:   []string{"JPY"},
		},
		{
			name:   "no match",
			mode:   PickerBase,
			search: "bitcoin",
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterCodes(table, state, tt.mode, tt.editing, tt.search))
		})
	}
}

func TestSession_FilteredCodes(t *testing.T) {
	c := NewConverter(memoryStore(), funcProvider{})
	session := NewSession(c)

	require.NoError(t, session.OpenNewTargetPicker())
	session.SetSearch("dollar")

	assert.Equal(t, []string{"AUD", "CAD", "HKD", "NZD", "SGD"}, session.FilteredCodes())
}

func TestSession_ApplySelection(t *testing.T) {
	ctx := context.Background()
	c := NewConverter(memoryStore(), staticRates("2025-10-29", feed), WithAPIKey("key"))
	session := NewSession(c)
	session.EditBase(ctx, "100")

	assert.ErrorIs(t, session.ApplySelection(ctx, "GBP"), ErrPickerClosed)

	t.Run("new target", func(t *testing.T) {
		require.NoError(t, session.OpenNewTargetPicker())
		require.NoError(t, session.ApplySelection(ctx, "GBP"))

		mode, _ := session.Picker()
		assert.Equal(t, PickerClosed, mode)
		assert.Equal(t, map[string]string{"EUR": "92.00", "GBP": "79.00"}, targetAmounts(c.State()))
	})

	t.Run("duplicate keeps the picker open", func(t *testing.T) {
		require.NoError(t, session.OpenNewTargetPicker())
		assert.ErrorIs(t, session.ApplySelection(ctx, "EUR"), ErrDuplicateCurrency)

		mode, _ := session.Picker()
		assert.Equal(t, PickerNewTarget, mode)
		session.ClosePicker()
	})

	t.Run("re-assign target", func(t *testing.T) {
		eur := c.State().Targets[0]
		require.NoError(t, session.OpenTargetPicker(eur.ID))
		require.NoError(t, session.ApplySelection(ctx, "JPY"))

		assert.Equal(t, map[string]string{"JPY": "15000.00", "GBP": "79.00"}, targetAmounts(c.State()))
	})

	t.Run("base", func(t *testing.T) {
		session.OpenBasePicker()
		require.NoError(t, session.ApplySelection(ctx, "EUR"))

		s := c.State()
		assert.Equal(t, "EUR", s.BaseCurrency)
		assert.Equal(t, "100", s.BaseAmount)
		assert.Equal(t, "85.87", targetAmounts(s)["GBP"])
	})

	t.Run("selection runs base-driven after a target edit", func(t *testing.T) {
		gbp := c.State().Targets[1]
		require.NoError(t, session.EditTarget(ctx, gbp.ID, "79"))
		assert.Equal(t, "92.00", c.State().BaseAmount)

		require.NoError(t, session.SelectBase(ctx, "USD"))
		s := c.State()
		assert.Equal(t, "92.00", s.BaseAmount)
		assert.Equal(t, "72.68", targetAmounts(s)["GBP"])
	})
}

func TestSession_SelectAndAdd(t *testing.T) {
	ctx := context.Background()
	c := NewConverter(memoryStore(), staticRates("2025-10-29", feed), WithAPIKey("key"))
	session := NewSession(c)

	target, err := session.AddTarget(ctx, "GBP")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"EUR": "0.92", "GBP": "0.79"}, targetAmounts(c.State()))

	_, err = session.AddTarget(ctx, "XYZ")
	assert.ErrorIs(t, err, ErrUnknownCurrency)

	require.NoError(t, session.SelectTarget(ctx, target.ID, "JPY"))
	assert.Equal(t, map[string]string{"EUR": "0.92", "JPY": "150.00"}, targetAmounts(c.State()))
	assert.ErrorIs(t, session.SelectTarget(ctx, uuid.New(), "JPY"), ErrTargetNotFound)
	assert.ErrorIs(t, session.SelectBase(ctx, "XYZ"), ErrUnknownCurrency)
}

func TestSession_RemoveTarget(t *testing.T) {
	ctx := context.Background()
	c := NewConverter(memoryStore(), staticRates("2025-10-29", feed), WithAPIKey("key"))
	session := NewSession(c)

	gbp, err := session.AddTarget(ctx, "GBP")
	require.NoError(t, err)
	require.NoError(t, session.EditTarget(ctx, gbp.ID, "79"))
	require.NoError(t, session.OpenTargetPicker(gbp.ID))

	require.NoError(t, session.RemoveTarget(gbp.ID))

	s, focus := session.State()
	assert.Equal(t, models.NoFocus, focus)
	assert.Equal(t, "100.00", s.BaseAmount)
	assert.Equal(t, map[string]string{"EUR": "92.00"}, targetAmounts(s))
	mode, _ := session.Picker()
	assert.Equal(t, PickerClosed, mode)

	assert.ErrorIs(t, session.RemoveTarget(gbp.ID), ErrTargetNotFound)
}
