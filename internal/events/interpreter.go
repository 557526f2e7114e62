// Package events runs scripted events by publishing them on an rpg-toolkit
// event bus. Game code subscribes to EventTypeScripted to react.
package events

import (
	"context"
	"strconv"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-skilltrees/internal/errors"
	"github.com/KirkDiggler/rpg-skilltrees/internal/skilltree"
)

const (
	// EventTypeScripted is the bus event type of a scripted event run.
	EventTypeScripted = "skilltree.scripted_event"

	// KeyEventID is the event context key holding the scripted event id.
	KeyEventID = "event_id"
)

// Config holds the dependencies of an Interpreter.
type Config struct {
	Bus events.EventBus
}

// Validate validates the config
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.Bus == nil {
		return errors.InvalidArgument("event bus is required")
	}
	return nil
}

// Interpreter implements skilltree.EventInterpreter. Run publishes and
// returns; handlers decide when the event actually plays out.
type Interpreter struct {
	bus    events.EventBus
	source core.Entity
}

// NewInterpreter creates an interpreter publishing on cfg.Bus.
func NewInterpreter(cfg *Config) (*Interpreter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Interpreter{bus: cfg.Bus}, nil
}

// ForActor returns an interpreter whose events carry actor as their source.
func (i *Interpreter) ForActor(actor skilltree.Actor) *Interpreter {
	c := *i
	if actor != nil {
		c.source = &ActorEntity{Actor: actor}
	}
	return &c
}

// Run implements skilltree.EventInterpreter.
func (i *Interpreter) Run(ctx context.Context, eventID int) error {
	if eventID < 1 {
		return errors.InvalidArgumentf("event id must be positive, got %d", eventID)
	}
	e := events.NewGameEvent(EventTypeScripted, i.source, nil)
	e.Context().Set(KeyEventID, eventID)
	if err := i.bus.Publish(ctx, e); err != nil {
		return errors.Wrapf(err, "failed to publish scripted event %d", eventID)
	}
	return nil
}

// HandlerFunc reacts to one scripted event. source is nil when the event was
// not run on behalf of a character.
type HandlerFunc func(ctx context.Context, eventID int, source core.Entity) error

// Subscribe registers fn for scripted events and returns the subscription id.
func Subscribe(bus events.EventBus, priority int, fn HandlerFunc) string {
	return bus.SubscribeFunc(EventTypeScripted, priority, func(ctx context.Context, e events.Event) error {
		raw, ok := e.Context().Get(KeyEventID)
		if !ok {
			return errors.InvalidArgument("scripted event without an event id")
		}
		eventID, ok := raw.(int)
		if !ok {
			return errors.InvalidArgumentf("scripted event id has type %T", raw)
		}
		return fn(ctx, eventID, e.Source())
	})
}

// ActorEntity exposes a skill tree actor as an rpg-toolkit entity.
type ActorEntity struct {
	skilltree.Actor
}

// GetID returns the actor id.
func (a *ActorEntity) GetID() string {
	return strconv.Itoa(a.ID())
}

// GetType returns the entity type for rpg-toolkit
func (a *ActorEntity) GetType() string {
	return "character"
}

var (
	_ core.Entity                = (*ActorEntity)(nil)
	_ skilltree.EventInterpreter = (*Interpreter)(nil)
)
