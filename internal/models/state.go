package models

import "github.com/google/uuid"

// MaxTargets caps the number of target currencies shown next to the base.
const MaxTargets = 4

// Target is one output currency row.
type Target struct {
	ID     uuid.UUID `json:"id"`     // Stable row identity, never reused
	Code   string    `json:"code"`   // Currency code
	Amount string    `json:"amount"` // Displayed amount text, empty when unknown
}

// NewTarget creates a target row with a fresh identity and an empty amount.
func NewTarget(code string) Target {
	return Target{ID: uuid.New(), Code: code}
}

// ConversionState is the calculator state rendered by every front end.
type ConversionState struct {
	BaseAmount    string   `json:"base_amount"`
	BaseCurrency  string   `json:"base_currency"`
	Targets       []Target `json:"targets"`
	IsOfflineMode bool     `json:"is_offline_mode"`
	RatesDate     string   `json:"rates_date"`
	Version       uint64   `json:"version"` // Bumped by every published change
}

// DefaultConversionState is the state a new session starts from.
func DefaultConversionState() ConversionState {
	return ConversionState{
		BaseAmount:   "1",
		BaseCurrency: USD,
		Targets:      []Target{NewTarget(EUR)},
	}
}

// Clone returns a copy that shares no slice memory with s.
func (s ConversionState) Clone() ConversionState {
	out := s
	out.Targets = make([]Target, len(s.Targets))
	copy(out.Targets, s.Targets)
	return out
}

// TargetIndex returns the position of the target with the given id, or -1.
func (s ConversionState) TargetIndex(id uuid.UUID) int {
	for i, t := range s.Targets {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// FocusKind tells which field currently has input focus.
type FocusKind string

const (
	FocusNone   FocusKind = "none"
	FocusBase   FocusKind = "base"
	FocusTarget FocusKind = "target"
)

// Focus identifies the field that is the source of truth for a conversion step.
type Focus struct {
	Kind     FocusKind `json:"kind"`
	TargetID uuid.UUID `json:"target_id,omitempty"`
}

// NoFocus is the focus used for selector changes and timer refreshes.
var NoFocus = Focus{Kind: FocusNone}

// BaseFocus focuses the base amount field.
var BaseFocus = Focus{Kind: FocusBase}

// TargetFocus focuses the amount field of target id.
func TargetFocus(id uuid.UUID) Focus {
	return Focus{Kind: FocusTarget, TargetID: id}
}

// Source tags where a field change came from.
type Source string

const (
	SourceUser   Source = "user"   // typed or selected by the user
	SourceEngine Source = "engine" // computed by a conversion step
)

// StateChange is published after every mutation of the conversion state.
type StateChange struct {
	State  ConversionState `json:"state"`
	Source Source          `json:"source"`
}

// FieldChange is a change-notification for a single amount field, as emitted
// by a front end's field observer.
type FieldChange struct {
	Field  Focus  `json:"field"`
	Text   string `json:"text"`
	Source Source `json:"source"`
}
