package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

//go:generate mockgen -source=session.go -destination=mock_session.go -package=services

// ErrPickerClosed is returned by ApplySelection when no picker is open.
var ErrPickerClosed = errors.New("currency picker is not open")

// Engine is the conversion engine driven by a Session.
type Engine interface {
	State() models.ConversionState                         // Copy of the current state
	Currencies() models.CurrencyTable                      // Copy of the known currency table
	Refresh(ctx context.Context, focus models.Focus)       // Fetch rates and recompute from focus
	SetBaseAmount(text string)                             // User write to the base field
	SetTargetAmount(id uuid.UUID, text string) error       // User write to a target field
	SetBaseCurrency(code string) error                     // Select the base currency
	AddTarget(code string) (models.Target, error)          // Append a target row
	SetTargetCode(id uuid.UUID, code string) error         // Re-assign a target currency
	RemoveTarget(id uuid.UUID) error                       // Delete a target row
	Subscribe(fn func(models.StateChange)) (cancel func()) // Observe state changes
}

// PickerMode tells what a currency selection applies to.
type PickerMode string

const (
	PickerClosed    PickerMode = ""
	PickerBase      PickerMode = "base"
	PickerTarget    PickerMode = "target"
	PickerNewTarget PickerMode = "new"
)

// Session is the selection and presentation state of one front end: focus,
// picker and search. It decides which conversion direction runs.
type Session struct {
	engine Engine

	mu            sync.Mutex
	focus         models.Focus
	picker        PickerMode
	editingTarget uuid.UUID
	search        string
}

// NewSession creates a session with nothing focused and the picker closed.
func NewSession(engine Engine) *Session {
	return &Session{
		engine: engine,
		focus:  models.NoFocus,
	}
}

// State returns the engine state together with the current focus.
func (s *Session) State() (models.ConversionState, models.Focus) {
	s.mu.Lock()
	focus := s.focus
	s.mu.Unlock()
	return s.engine.State(), focus
}

// Currencies returns the known currency table.
func (s *Session) Currencies() models.CurrencyTable {
	return s.engine.Currencies()
}

// Subscribe observes every state change of the underlying engine.
func (s *Session) Subscribe(fn func(models.StateChange)) (cancel func()) {
	return s.engine.Subscribe(fn)
}

func (s *Session) setFocus(focus models.Focus) {
	s.mu.Lock()
	s.focus = focus
	s.mu.Unlock()
}

func (s *Session) currentFocus() models.Focus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.focus
}

// EditBase handles text typed into the base field.
func (s *Session) EditBase(ctx context.Context, text string) {
	s.setFocus(models.BaseFocus)
	s.engine.SetBaseAmount(text)
	s.engine.Refresh(ctx, models.BaseFocus)
}

// EditTarget handles text typed into the field of target id.
func (s *Session) EditTarget(ctx context.Context, id uuid.UUID, text string) error {
	if err := s.engine.SetTargetAmount(id, text); err != nil {
		return err
	}
	focus := models.TargetFocus(id)
	s.setFocus(focus)
	s.engine.Refresh(ctx, focus)
	return nil
}

// HandleFieldChange is the entry point for field observers. Values written by
// a conversion step are ignored so they never trigger another conversion.
func (s *Session) HandleFieldChange(ctx context.Context, change models.FieldChange) error {
	if change.Source == models.SourceEngine {
		return nil
	}
	switch change.Field.Kind {
	case models.FocusBase:
		s.EditBase(ctx, change.Text)
		return nil
	case models.FocusTarget:
		return s.EditTarget(ctx, change.Field.TargetID, change.Text)
	default:
		return nil
	}
}

// Blur clears the focus.
func (s *Session) Blur() {
	s.setFocus(models.NoFocus)
}

// Picker returns the picker mode and, for PickerTarget, the target being
// re-assigned.
func (s *Session) Picker() (PickerMode, uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.picker, s.editingTarget
}

func (s *Session) openPicker(mode PickerMode, id uuid.UUID) {
	s.mu.Lock()
	s.picker = mode
	s.editingTarget = id
	s.search = ""
	s.mu.Unlock()
}

// OpenBasePicker opens the picker for the base currency.
func (s *Session) OpenBasePicker() {
	s.openPicker(PickerBase, uuid.Nil)
}

// OpenTargetPicker opens the picker to re-assign target id.
func (s *Session) OpenTargetPicker(id uuid.UUID) error {
	if s.engine.State().TargetIndex(id) < 0 {
		return ErrTargetNotFound
	}
	s.openPicker(PickerTarget, id)
	return nil
}

// OpenNewTargetPicker opens the picker to add a target.
func (s *Session) OpenNewTargetPicker() error {
	if len(s.engine.State().Targets) >= models.MaxTargets {
		return ErrTargetLimit
	}
	s.openPicker(PickerNewTarget, uuid.Nil)
	return nil
}

// ClosePicker closes the picker without a selection.
func (s *Session) ClosePicker() {
	s.openPicker(PickerClosed, uuid.Nil)
}

// SetSearch sets the picker's search text.
func (s *Session) SetSearch(text string) {
	s.mu.Lock()
	s.search = text
	s.mu.Unlock()
}

// FilteredCodes lists the codes the open picker offers, sorted.
func (s *Session) FilteredCodes() []string {
	s.mu.Lock()
	mode, editing, search := s.picker, s.editingTarget, s.search
	s.mu.Unlock()

	return FilterCodes(s.engine.Currencies(), s.engine.State(), mode, editing, search)
}

// FilterCodes lists the codes of table a picker in the given mode offers:
// the base picker hides every target code, the target picker hides the base
// and the other targets, the new-target picker hides the base and every
// target. The remaining codes are matched case-insensitively against search
// by code or by name.
func FilterCodes(table models.CurrencyTable, state models.ConversionState, mode PickerMode, editing uuid.UUID, search string) []string {
	hidden := make(map[string]bool, len(state.Targets)+1)
	switch mode {
	case PickerBase:
		for _, t := range state.Targets {
			hidden[t.Code] = true
		}
	case PickerTarget, PickerNewTarget:
		hidden[state.BaseCurrency] = true
		for _, t := range state.Targets {
			hidden[t.Code] = true
		}
	}

	// the re-assigned target's own code stays selectable
	if mode == PickerTarget {
		if idx := state.TargetIndex(editing); idx >= 0 {
			delete(hidden, state.Targets[idx].Code)
		}
	}

	q := strings.ToLower(strings.TrimSpace(search))
	codes := make([]string, 0, len(table))
	for code, name := range table {
		if hidden[code] {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(code), q) && !strings.Contains(strings.ToLower(name), q) {
			continue
		}
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// ApplySelection applies code to whatever the open picker selects, closes the
// picker and recomputes from the base.
func (s *Session) ApplySelection(ctx context.Context, code string) error {
	s.mu.Lock()
	mode, editing := s.picker, s.editingTarget
	s.mu.Unlock()

	var err error
	switch mode {
	case PickerBase:
		err = s.engine.SetBaseCurrency(code)
	case PickerTarget:
		err = s.engine.SetTargetCode(editing, code)
	case PickerNewTarget:
		_, err = s.engine.AddTarget(code)
	default:
		return ErrPickerClosed
	}
	if err != nil {
		logger.Log.Warnw("currency selection rejected", "picker", mode, "code", code, "error", err)
		return err
	}

	s.ClosePicker()
	s.engine.Refresh(ctx, models.NoFocus)
	return nil
}

// SelectBase selects the base currency and recomputes from the base. It is
// ApplySelection for a front end without picker state.
func (s *Session) SelectBase(ctx context.Context, code string) error {
	if err := s.engine.SetBaseCurrency(code); err != nil {
		return err
	}
	s.engine.Refresh(ctx, models.NoFocus)
	return nil
}

// SelectTarget re-assigns target id to code and recomputes from the base.
func (s *Session) SelectTarget(ctx context.Context, id uuid.UUID, code string) error {
	if err := s.engine.SetTargetCode(id, code); err != nil {
		return err
	}
	s.engine.Refresh(ctx, models.NoFocus)
	return nil
}

// AddTarget appends a target for code and recomputes from the base.
func (s *Session) AddTarget(ctx context.Context, code string) (models.Target, error) {
	target, err := s.engine.AddTarget(code)
	if err != nil {
		return models.Target{}, err
	}
	s.engine.Refresh(ctx, models.NoFocus)
	return target, nil
}

// RemoveTarget deletes target id without recomputing the other fields.
func (s *Session) RemoveTarget(id uuid.UUID) error {
	if err := s.engine.RemoveTarget(id); err != nil {
		return err
	}

	s.mu.Lock()
	if s.focus.Kind == models.FocusTarget && s.focus.TargetID == id {
		s.focus = models.NoFocus
	}
	if s.picker == PickerTarget && s.editingTarget == id {
		s.picker = PickerClosed
		s.editingTarget = uuid.Nil
	}
	s.mu.Unlock()
	return nil
}

// Tick refreshes from the currently focused field. Used by periodic refresh.
func (s *Session) Tick(ctx context.Context) {
	s.engine.Refresh(ctx, s.currentFocus())
}
