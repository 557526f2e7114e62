package skilltree_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-skilltrees/internal/errors"
	"github.com/KirkDiggler/rpg-skilltrees/internal/skilltree"
)

type NodeTestSuite struct {
	suite.Suite
	ctx     context.Context
	actor   *fakeActor
	points  *fakePoints
	party   *fakeParty
	state   *fakeState
	learner *skilltree.Learner
}

func TestNodeSuite(t *testing.T) {
	suite.Run(t, new(NodeTestSuite))
}

func (s *NodeTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.actor = newFakeActor()
	s.points = newFakePoints(55)
	s.party = newFakeParty()
	s.state = newFakeState()
	s.learner = &skilltree.Learner{
		Actor:  s.actor,
		Points: s.points,
		Party:  s.party,
		State:  s.state,
	}
}

func (s *NodeTestSuite) treeWith(slots ...skilltree.Slot) *skilltree.Tree {
	return mustTree(skilltree.TreeConfig{Name: "Warrior", Key: "warrior", Slots: slots})
}

func (s *NodeTestSuite) TestLearnSingleLevelNode() {
	tree := s.treeWith(costNode("guard", 10, 1))
	guard, ok := tree.Node("guard")
	s.Require().True(ok)

	s.Equal(skilltree.NodeAvailable, guard.State(s.learner, tree))
	s.Require().NoError(guard.Learn(s.ctx, s.learner, tree))

	s.Equal(54, s.points.balances[0])
	s.Equal(1, tree.SpentPoints())
	s.Equal(1, guard.CurrentLevel())
	s.Equal(skilltree.NodeMaxed, guard.State(s.learner, tree))
	s.True(s.actor.HasAbility(10))
}

func (s *NodeTestSuite) TestLearnEachLevelSwapsAbility() {
	tree := s.treeWith(costNode("combat_reflexes", 20, 1, 1, 1))
	node, _ := tree.Node("combat_reflexes")

	for level := 1; level <= 3; level++ {
		s.Require().True(node.IsAvailableToLearn(s.learner, tree))
		s.Require().NoError(node.Learn(s.ctx, s.learner, tree))

		s.Equal(level, node.CurrentLevel())
		s.Equal(55-level, s.points.balances[0])
		s.Equal([]skilltree.AbilityID{skilltree.AbilityID(19 + level)}, s.actor.held())
	}
	s.Equal(skilltree.NodeMaxed, node.State(s.learner, tree))
	s.False(node.IsAvailableToLearn(s.learner, tree))
	s.Nil(node.RequirementsForNextLevel())
}

func (s *NodeTestSuite) TestLearnMaxedNodeFails() {
	tree := s.treeWith(costNode("guard", 10, 1))
	guard, _ := tree.Node("guard")
	s.Require().NoError(guard.Learn(s.ctx, s.learner, tree))

	err := guard.Learn(s.ctx, s.learner, tree)
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal(54, s.points.balances[0])
}

func (s *NodeTestSuite) TestPrerequisiteLevel() {
	a := costNode("dual_attack", 30, 1, 1)
	prereq, err := skilltree.NewPrerequisiteSkillLevel(a, 2)
	s.Require().NoError(err)
	b := mustNode(skilltree.NodeConfig{
		Key:          "double_attack",
		Abilities:    []skilltree.AbilityID{40},
		Requirements: [][]skilltree.Requirement{{prereq}},
	})
	tree := s.treeWith(a, b)
	a, _ = tree.Node("dual_attack")
	b, _ = tree.Node("double_attack")

	s.Require().NoError(a.Learn(s.ctx, s.learner, tree))
	s.False(b.IsAvailableToLearn(s.learner, tree))
	s.Equal(skilltree.NodeLocked, b.State(s.learner, tree))

	s.Require().NoError(a.Learn(s.ctx, s.learner, tree))
	s.True(b.IsAvailableToLearn(s.learner, tree))
	s.Equal("dual_attack level 2 learned", prereq.Describe())
}

func (s *NodeTestSuite) TestPrerequisiteToleratesSkippedLevels() {
	prereq, err := skilltree.NewPrerequisiteFromAbilities([]skilltree.AbilityID{1, 2, 3}, 2, "reflexes")
	s.Require().NoError(err)

	s.actor.GrantAbility(3)
	s.True(prereq.Meets(s.learner, nil))

	s.actor.RevokeAbility(3)
	s.actor.GrantAbility(1)
	s.False(prereq.Meets(s.learner, nil))
}

func (s *NodeTestSuite) TestAvailabilityIsLogicalAnd() {
	level, err := skilltree.NewCharacterLevel(99)
	s.Require().NoError(err)
	flag, err := skilltree.NewPersistentFlagState(4, true)
	s.Require().NoError(err)
	s.state.SetSwitch(4, true)

	node := mustNode(skilltree.NodeConfig{
		Key:          "rampage",
		Abilities:    []skilltree.AbilityID{50},
		Requirements: [][]skilltree.Requirement{{mustCost(1), level, flag}},
	})
	tree := s.treeWith(node)
	node, _ = tree.Node("rampage")

	s.False(node.IsAvailableToLearn(s.learner, tree))
	s.False(node.IsEnabled(s.learner, tree))

	s.actor.level = 99
	s.True(node.IsAvailableToLearn(s.learner, tree))
	s.True(node.IsEnabled(s.learner, tree))
}

func (s *NodeTestSuite) TestItemRequirementConsumesItems() {
	potion, err := skilltree.NewItemPossession(skilltree.ItemKindWeapon, 7, 2)
	s.Require().NoError(err)
	node := mustNode(skilltree.NodeConfig{
		Key:          "armor_break",
		Abilities:    []skilltree.AbilityID{60},
		Requirements: [][]skilltree.Requirement{{potion}},
	})
	tree := s.treeWith(node)
	node, _ = tree.Node("armor_break")

	s.party.give(skilltree.ItemKindItem, 7, 5)
	s.False(node.IsAvailableToLearn(s.learner, tree), "item table must not satisfy a weapon requirement")

	s.party.give(skilltree.ItemKindWeapon, 7, 3)
	s.Require().NoError(node.Learn(s.ctx, s.learner, tree))
	s.Equal(1, s.party.ItemCount(skilltree.ItemKindWeapon, 7))
	s.Equal(5, s.party.ItemCount(skilltree.ItemKindItem, 7))
}

func (s *NodeTestSuite) TestMissingCollaboratorIsNeverMet() {
	threshold, err := skilltree.NewPersistentVariableThreshold(3, 1)
	s.Require().NoError(err)
	learner := &skilltree.Learner{Actor: s.actor}

	s.False(threshold.Meets(learner, nil))
	s.False(mustCost(1).Meets(learner, nil))
}

func (s *NodeTestSuite) TestTreePointThresholdReadsSpentPoints() {
	threshold, err := skilltree.NewTreePointThreshold(2)
	s.Require().NoError(err)
	gated := mustNode(skilltree.NodeConfig{
		Key:          "berserker_dance",
		Abilities:    []skilltree.AbilityID{70},
		Requirements: [][]skilltree.Requirement{{threshold}},
	})
	tree := s.treeWith(costNode("guard", 10, 2), gated)
	guard, _ := tree.Node("guard")
	gated, _ = tree.Node("berserker_dance")

	s.False(gated.IsAvailableToLearn(s.learner, tree))
	s.Require().NoError(guard.Learn(s.ctx, s.learner, tree))
	s.True(gated.IsAvailableToLearn(s.learner, tree))
}

func (s *NodeTestSuite) TestEffectsRunAfterLevelStep() {
	variable, err := skilltree.NewAdjustPersistentVariable(5, 0)
	s.Require().NoError(err)
	event, err := skilltree.NewInvokeScriptedEvent(12)
	s.Require().NoError(err)

	node := mustNode(skilltree.NodeConfig{
		Key:          "guard",
		Abilities:    []skilltree.AbilityID{10, 11},
		Requirements: [][]skilltree.Requirement{{mustCost(1)}, {mustCost(1)}},
		Effects:      [][]skilltree.Effect{{variable, event}},
	})
	tree := s.treeWith(node)
	node, _ = tree.Node("guard")

	var ran []int
	s.learner.Events = eventFunc(func(_ context.Context, eventID int) error {
		s.Equal(1, node.CurrentLevel(), "effects see the new level")
		ran = append(ran, eventID)
		return nil
	})

	s.Require().NoError(node.Learn(s.ctx, s.learner, tree))
	s.Equal(1, s.state.Variable(5))
	s.Equal([]int{12}, ran)

	s.Require().NoError(node.Learn(s.ctx, s.learner, tree))
	s.Equal(1, s.state.Variable(5), "second level has no effects")
}

func (s *NodeTestSuite) TestEffectErrorPropagates() {
	event, err := skilltree.NewInvokeScriptedEvent(3)
	s.Require().NoError(err)
	node := mustNode(skilltree.NodeConfig{
		Key:          "guard",
		Abilities:    []skilltree.AbilityID{10},
		Requirements: [][]skilltree.Requirement{{mustCost(1)}},
		Effects:      [][]skilltree.Effect{{event}},
	})
	tree := s.treeWith(node)
	node, _ = tree.Node("guard")
	s.learner.Events = eventFunc(func(context.Context, int) error {
		return errors.Internal("interpreter busy")
	})

	err = node.Learn(s.ctx, s.learner, tree)
	s.Require().Error(err)
	s.Equal(errors.CodeInternal, errors.GetCode(err))
	s.Equal(1, node.CurrentLevel(), "a failed effect does not roll the level back")
}

func (s *NodeTestSuite) TestLearnFromOwnEffectIsRejected() {
	event, err := skilltree.NewInvokeScriptedEvent(1)
	s.Require().NoError(err)
	node := mustNode(skilltree.NodeConfig{
		Key:          "rampage",
		Abilities:    []skilltree.AbilityID{1, 2, 3},
		Requirements: [][]skilltree.Requirement{{mustCost(1)}, {mustCost(1)}, {mustCost(1)}},
		Effects:      [][]skilltree.Effect{{event}},
	})
	tree := s.treeWith(node)
	node, _ = tree.Node("rampage")

	var nested error
	s.learner.Events = eventFunc(func(ctx context.Context, _ int) error {
		nested = node.Learn(ctx, s.learner, tree)
		return nil
	})

	s.Require().NoError(node.Learn(s.ctx, s.learner, tree))
	s.Require().Error(nested)
	s.True(errors.IsFailedPrecondition(nested))
	s.Equal(1, node.CurrentLevel())
}

func (s *NodeTestSuite) TestForceLevelUpClampsAndSkipsRequirements() {
	tree := s.treeWith(costNode("combat_reflexes", 20, 1, 1, 1))
	node, _ := tree.Node("combat_reflexes")

	s.Equal(3, node.ForceLevelUp(s.actor, 10))
	s.Equal(3, node.CurrentLevel())
	s.Equal(55, s.points.balances[0])
	s.Equal([]skilltree.AbilityID{22}, s.actor.held())
	s.Equal(0, node.ForceLevelUp(s.actor, 1))
}

func (s *NodeTestSuite) TestForgetRelearnKeepsLevel() {
	tree := s.treeWith(costNode("combat_reflexes", 20, 1, 1, 1))
	node, _ := tree.Node("combat_reflexes")
	node.ForceLevelUp(s.actor, 2)
	before := s.actor.held()

	node.Forget(s.actor)
	s.Empty(s.actor.held())
	s.Equal(2, node.CurrentLevel())

	node.Relearn(s.actor)
	s.Equal(before, s.actor.held())
	s.Equal(2, node.CurrentLevel())
}

func (s *NodeTestSuite) TestRefundSumsTakenLevels() {
	tree := s.treeWith(costNode("rampage", 80, 1, 2, 4))
	node, _ := tree.Node("rampage")
	s.Equal(0, node.Refund())

	s.Require().NoError(node.Learn(s.ctx, s.learner, tree))
	s.Require().NoError(node.Learn(s.ctx, s.learner, tree))
	s.Equal(3, node.Refund())
}

func (s *NodeTestSuite) TestLearnForcedOnlyLevelFails() {
	node := mustNode(skilltree.NodeConfig{
		Key:          "guard",
		Abilities:    []skilltree.AbilityID{10, 11},
		Requirements: [][]skilltree.Requirement{{mustCost(1)}},
	})
	tree := s.treeWith(node)
	node, _ = tree.Node("guard")
	s.Require().NoError(node.Learn(s.ctx, s.learner, tree))

	s.Nil(node.RequirementsForNextLevel())
	err := node.Learn(s.ctx, s.learner, tree)
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal(1, node.CurrentLevel())
	s.Equal(54, s.points.balances[0])

	s.Equal(1, node.ForceLevelUp(s.actor, 1))
	s.True(s.actor.HasAbility(11))
}

func (s *NodeTestSuite) TestNodeValidation() {
	_, err := skilltree.NewNode(skilltree.NodeConfig{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = skilltree.NewNode(skilltree.NodeConfig{
		Key:          "guard",
		Abilities:    []skilltree.AbilityID{1},
		Requirements: [][]skilltree.Requirement{{mustCost(1)}, {mustCost(1)}},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *NodeTestSuite) TestRequirementConstructorsFailFast() {
	_, err := skilltree.NewPointCost(0)
	s.True(errors.IsInvalidArgument(err))
	_, err = skilltree.NewCharacterLevel(1)
	s.True(errors.IsInvalidArgument(err))
	_, err = skilltree.NewItemPossession("shield", 1, 1)
	s.True(errors.IsInvalidArgument(err))
	_, err = skilltree.NewStatThreshold("charisma", 10)
	s.True(errors.IsInvalidArgument(err))
	_, err = skilltree.NewPrerequisiteFromAbilities([]skilltree.AbilityID{1}, 2, "guard")
	s.True(errors.IsInvalidArgument(err))
}

func (s *NodeTestSuite) TestConnector() {
	c := skilltree.NewConnector(28)
	s.Equal(skilltree.SlotConnector, c.Kind())
	s.Equal(28, c.IconRef())
	s.True(c.IsEnabled(s.learner, nil))
}

func TestRequirementMeets(t *testing.T) {
	mustReq := func(r skilltree.Requirement, err error) skilltree.Requirement {
		require.NoError(t, err)
		return r
	}

	testCases := []struct {
		name  string
		req   skilltree.Requirement
		setup func(actor *fakeActor, state *fakeState, currency *fakeCurrency)
		met   bool
	}{
		{
			name: "character level reached",
			req:  mustReq(skilltree.NewCharacterLevel(5)),
			setup: func(actor *fakeActor, _ *fakeState, _ *fakeCurrency) {
				actor.level = 5
			},
			met: true,
		},
		{
			name:  "character level too low",
			req:   mustReq(skilltree.NewCharacterLevel(5)),
			setup: func(actor *fakeActor, _ *fakeState, _ *fakeCurrency) { actor.level = 4 },
		},
		{
			name: "stat at threshold",
			req:  mustReq(skilltree.NewStatThreshold(skilltree.StatAttack, 30)),
			setup: func(actor *fakeActor, _ *fakeState, _ *fakeCurrency) {
				actor.stats[skilltree.StatAttack] = 30
			},
			met: true,
		},
		{
			name: "stat below threshold",
			req:  mustReq(skilltree.NewStatThreshold(skilltree.StatAttack, 30)),
			setup: func(actor *fakeActor, _ *fakeState, _ *fakeCurrency) {
				actor.stats[skilltree.StatAttack] = 29
			},
		},
		{
			name:  "switch on when on is wanted",
			req:   mustReq(skilltree.NewPersistentFlagState(4, true)),
			setup: func(_ *fakeActor, state *fakeState, _ *fakeCurrency) { state.SetSwitch(4, true) },
			met:   true,
		},
		{
			name:  "switch off when on is wanted",
			req:   mustReq(skilltree.NewPersistentFlagState(4, true)),
			setup: func(*fakeActor, *fakeState, *fakeCurrency) {},
		},
		{
			name:  "switch off when off is wanted",
			req:   mustReq(skilltree.NewPersistentFlagState(4, false)),
			setup: func(*fakeActor, *fakeState, *fakeCurrency) {},
			met:   true,
		},
		{
			name:  "switch on when off is wanted",
			req:   mustReq(skilltree.NewPersistentFlagState(4, false)),
			setup: func(_ *fakeActor, state *fakeState, _ *fakeCurrency) { state.SetSwitch(4, true) },
		},
		{
			name:  "external currency covers the price",
			req:   mustReq(skilltree.NewExternalCurrencyCost(3)),
			setup: func(_ *fakeActor, _ *fakeState, currency *fakeCurrency) { currency.balances[1] = 3 },
			met:   true,
		},
		{
			name: "external currency of another class",
			req:  mustReq(skilltree.NewExternalCurrencyCost(3)),
			setup: func(_ *fakeActor, _ *fakeState, currency *fakeCurrency) {
				currency.balances[1] = 2
				currency.balances[2] = 10
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actor := newFakeActor()
			state := newFakeState()
			currency := &fakeCurrency{balances: make(map[int]int)}
			tc.setup(actor, state, currency)
			l := &skilltree.Learner{Actor: actor, State: state, Currency: currency}
			tree := mustTree(skilltree.TreeConfig{Name: "Warrior", Key: "warrior"})

			assert.Equal(t, tc.met, tc.req.Meets(l, tree))
			assert.NoError(t, tc.req.Use(l, tree))
			assert.NotEmpty(t, tc.req.Describe())
		})
	}
}

func TestExternalCurrencyCostUse(t *testing.T) {
	cost, err := skilltree.NewExternalCurrencyCost(3)
	require.NoError(t, err)
	actor := newFakeActor()
	currency := &fakeCurrency{balances: map[int]int{1: 4}}
	tree := mustTree(skilltree.TreeConfig{Name: "Warrior", Key: "warrior"})

	require.NoError(t, cost.Use(&skilltree.Learner{Actor: actor, Currency: currency}, tree))
	assert.Equal(t, 1, currency.balances[1])
	assert.Equal(t, 0, tree.SpentPoints())

	err = cost.Use(&skilltree.Learner{Actor: actor, Currency: currency}, tree)
	require.Error(t, err)
	assert.True(t, errors.IsFailedPrecondition(err))
	assert.Equal(t, 1, currency.balances[1])

	missing := &skilltree.Learner{Actor: actor}
	assert.False(t, cost.Meets(missing, tree))
	assert.True(t, errors.IsFailedPrecondition(cost.Use(missing, tree)))
}
