package skilltree

import (
	"context"
	"encoding/json"

	"github.com/KirkDiggler/rpg-skilltrees/internal/errors"
)

// EffectType is the discriminator tag persisted with every learn effect.
type EffectType string

// Effect types
const (
	EffectVariable EffectType = "variable"
	EffectEvent    EffectType = "event"
)

// Effect is a side effect fired after a node gains a level.
type Effect interface {
	Type() EffectType
	Apply(ctx context.Context, l *Learner, t *Tree) error
	clone() Effect
}

// AdjustPersistentVariable adds an increment to a game variable.
type AdjustPersistentVariable struct {
	variableID int
	increment  int
}

// NewAdjustPersistentVariable creates a variable effect. A zero increment
// defaults to 1.
func NewAdjustPersistentVariable(variableID, increment int) (*AdjustPersistentVariable, error) {
	if variableID < 1 {
		return nil, errors.InvalidArgumentf("variable id must be positive, got %d", variableID)
	}
	if increment == 0 {
		increment = 1
	}
	return &AdjustPersistentVariable{variableID: variableID, increment: increment}, nil
}

// VariableID returns the adjusted variable.
func (e *AdjustPersistentVariable) VariableID() int { return e.variableID }

// Increment returns the amount added.
func (e *AdjustPersistentVariable) Increment() int { return e.increment }

// Type implements Effect.
func (e *AdjustPersistentVariable) Type() EffectType { return EffectVariable }

// Apply implements Effect.
func (e *AdjustPersistentVariable) Apply(_ context.Context, l *Learner, _ *Tree) error {
	if l.State == nil {
		return errors.FailedPrecondition("no global state to adjust")
	}
	l.State.SetVariable(e.variableID, l.State.Variable(e.variableID)+e.increment)
	return nil
}

func (e *AdjustPersistentVariable) clone() Effect {
	c := *e
	return &c
}

type variableEffectWire struct {
	Type       EffectType `json:"type"`
	VariableID int        `json:"variableId"`
	Increment  int        `json:"increment"`
}

// MarshalJSON implements json.Marshaler.
func (e *AdjustPersistentVariable) MarshalJSON() ([]byte, error) {
	return json.Marshal(variableEffectWire{Type: e.Type(), VariableID: e.variableID, Increment: e.increment})
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *AdjustPersistentVariable) UnmarshalJSON(data []byte) error {
	var w variableEffectWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	built, err := NewAdjustPersistentVariable(w.VariableID, w.Increment)
	if err != nil {
		return err
	}
	*e = *built
	return nil
}

// InvokeScriptedEvent hands a scripted event to the event interpreter. The
// call is fire-and-forget: the engine does not wait for the event and does
// not roll the level back if it fails later.
type InvokeScriptedEvent struct {
	eventID int
}

// NewInvokeScriptedEvent creates an event effect.
func NewInvokeScriptedEvent(eventID int) (*InvokeScriptedEvent, error) {
	if eventID < 1 {
		return nil, errors.InvalidArgumentf("event id must be positive, got %d", eventID)
	}
	return &InvokeScriptedEvent{eventID: eventID}, nil
}

// EventID returns the scripted event id.
func (e *InvokeScriptedEvent) EventID() int { return e.eventID }

// Type implements Effect.
func (e *InvokeScriptedEvent) Type() EffectType { return EffectEvent }

// Apply implements Effect.
func (e *InvokeScriptedEvent) Apply(ctx context.Context, l *Learner, _ *Tree) error {
	if l.Events == nil {
		return errors.FailedPrecondition("no event interpreter")
	}
	return l.Events.Run(ctx, e.eventID)
}

func (e *InvokeScriptedEvent) clone() Effect {
	c := *e
	return &c
}

type eventEffectWire struct {
	Type    EffectType `json:"type"`
	EventID int        `json:"eventId"`
}

// MarshalJSON implements json.Marshaler.
func (e *InvokeScriptedEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(eventEffectWire{Type: e.Type(), EventID: e.eventID})
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *InvokeScriptedEvent) UnmarshalJSON(data []byte) error {
	var w eventEffectWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	built, err := NewInvokeScriptedEvent(w.EventID)
	if err != nil {
		return err
	}
	*e = *built
	return nil
}
