package events_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/core"
	toolkitevents "github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-skilltrees/internal/errors"
	"github.com/KirkDiggler/rpg-skilltrees/internal/events"
	"github.com/KirkDiggler/rpg-skilltrees/internal/skilltree"
)

type ranEvent struct {
	eventID  int
	sourceID string
}

type InterpreterTestSuite struct {
	suite.Suite
	ctx         context.Context
	bus         *toolkitevents.Bus
	interpreter *events.Interpreter
	ran         []ranEvent
}

func TestInterpreterSuite(t *testing.T) {
	suite.Run(t, new(InterpreterTestSuite))
}

func (s *InterpreterTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.bus = toolkitevents.NewBus()
	s.ran = nil

	interpreter, err := events.NewInterpreter(&events.Config{Bus: s.bus})
	s.Require().NoError(err)
	s.interpreter = interpreter

	events.Subscribe(s.bus, 100, func(_ context.Context, eventID int, source core.Entity) error {
		run := ranEvent{eventID: eventID}
		if source != nil {
			run.sourceID = source.GetID()
		}
		s.ran = append(s.ran, run)
		return nil
	})
}

func (s *InterpreterTestSuite) TestRunPublishes() {
	s.Require().NoError(s.interpreter.Run(s.ctx, 7))
	s.Equal([]ranEvent{{eventID: 7}}, s.ran)
}

func (s *InterpreterTestSuite) TestRunCarriesActor() {
	actor := &stubActor{id: 3}
	s.Require().NoError(s.interpreter.ForActor(actor).Run(s.ctx, 9))
	s.Equal([]ranEvent{{eventID: 9, sourceID: "3"}}, s.ran)

	s.Require().NoError(s.interpreter.Run(s.ctx, 1))
	s.Equal("", s.ran[1].sourceID, "ForActor does not change the receiver")
}

func (s *InterpreterTestSuite) TestRunRejectsInvalidID() {
	err := s.interpreter.Run(s.ctx, 0)
	s.True(errors.IsInvalidArgument(err))
	s.Empty(s.ran)
}

func (s *InterpreterTestSuite) TestEventEffectRunsThroughBus() {
	effect, err := skilltree.NewInvokeScriptedEvent(7)
	s.Require().NoError(err)

	l := &skilltree.Learner{Events: s.interpreter}
	s.Require().NoError(effect.Apply(s.ctx, l, nil))
	s.Equal([]ranEvent{{eventID: 7}}, s.ran)
}

func TestConfigValidate(t *testing.T) {
	_, err := events.NewInterpreter(nil)
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	_, err = events.NewInterpreter(&events.Config{})
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

type stubActor struct {
	id int
}

func (a *stubActor) ID() int { return a.id }
func (a *stubActor) ClassID() int { return 0 }
func (a *stubActor) Level() int { return 1 }
func (a *stubActor) Stat(skilltree.Stat) int { return 0 }
func (a *stubActor) HasAbility(skilltree.AbilityID) bool { return false }
func (a *stubActor) GrantAbility(skilltree.AbilityID) {}
func (a *stubActor) RevokeAbility(skilltree.AbilityID) {}
func (a *stubActor) Refresh() {}
