package skilltree_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-skilltrees/internal/errors"
	"github.com/KirkDiggler/rpg-skilltrees/internal/skilltree"
)

type TreeTestSuite struct {
	suite.Suite
	ctx     context.Context
	actor   *fakeActor
	points  *fakePoints
	learner *skilltree.Learner
	tree    *skilltree.Tree
}

func TestTreeSuite(t *testing.T) {
	suite.Run(t, new(TreeTestSuite))
}

func (s *TreeTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.actor = newFakeActor()
	s.points = newFakePoints(20)
	s.learner = &skilltree.Learner{Actor: s.actor, Points: s.points}
	s.tree = mustTree(skilltree.TreeConfig{
		Name:    "Warrior",
		Key:     "warrior",
		Columns: 3,
		Slots: []skilltree.Slot{
			costNode("combat_reflexes", 20, 1, 1, 1), skilltree.NewConnector(30), costNode("armor_break", 40, 3),
			nil, skilltree.NewConnector(28),
		},
	})
}

func (s *TreeTestSuite) learn(key string, times int) {
	node, ok := s.tree.Node(key)
	s.Require().True(ok)
	for i := 0; i < times; i++ {
		s.Require().NoError(node.Learn(s.ctx, s.learner, s.tree))
	}
}

func (s *TreeTestSuite) TestLayout() {
	s.Equal(2, s.tree.Rows())
	s.Equal(skilltree.ScopeGlobal, s.tree.Scope())
	slots := s.tree.Slots()
	s.Len(slots, 5)
	s.Nil(slots[3])
	s.Equal(skilltree.SlotConnector, slots[4].Kind())
	s.Len(s.tree.Nodes(), 2)
}

func (s *TreeTestSuite) TestResetRefundsHistoricalSpend() {
	s.learn("combat_reflexes", 3)
	s.learn("armor_break", 1)
	s.Equal(6, s.tree.SpentPoints())
	s.Equal(14, s.points.balances[0])

	refund := s.tree.Reset(s.actor)

	s.Equal(6, refund)
	s.Equal(0, s.tree.SpentPoints())
	for _, node := range s.tree.Nodes() {
		s.Equal(0, node.CurrentLevel())
	}
	s.Empty(s.actor.held())
}

func (s *TreeTestSuite) TestResetUntouchedTreeRefundsNothing() {
	s.Equal(0, s.tree.Reset(s.actor))
	s.Equal(0, s.tree.SpentPoints())
}

func (s *TreeTestSuite) TestResetNodeClampsSpentPoints() {
	s.learn("armor_break", 1)
	node, _ := s.tree.Node("combat_reflexes")
	node.ForceLevelUp(s.actor, 3)

	refund, err := s.tree.ResetNode(s.actor, "combat_reflexes")
	s.Require().NoError(err)
	s.Equal(3, refund)
	s.Equal(0, s.tree.SpentPoints())

	_, err = s.tree.ResetNode(s.actor, "missing")
	s.True(errors.IsNotFound(err))
}

func (s *TreeTestSuite) TestResetAfterUnlockRefundsOnlyPaidPoints() {
	s.Equal(4, s.tree.UnlockAll(s.actor))
	s.Equal(0, s.tree.Reset(s.actor))
	s.Equal(20, s.points.balances[0])

	s.learn("combat_reflexes", 1)
	node, _ := s.tree.Node("combat_reflexes")
	node.ForceLevelUp(s.actor, 2)
	s.Equal(1, s.tree.SpentPoints())

	s.Equal(1, s.tree.Reset(s.actor))
	s.Equal(0, s.tree.SpentPoints())
}

func (s *TreeTestSuite) TestResetNodeIsCappedBySpentPoints() {
	node, _ := s.tree.Node("combat_reflexes")
	node.ForceLevelUp(s.actor, 3)

	refund, err := s.tree.ResetNode(s.actor, "combat_reflexes")
	s.Require().NoError(err)
	s.Equal(0, refund)
	s.Equal(0, node.CurrentLevel())
}

func (s *TreeTestSuite) TestForgetRelearnTree() {
	s.learn("combat_reflexes", 2)
	s.learn("armor_break", 1)

	s.tree.Forget(s.actor)
	s.Empty(s.actor.held())
	s.Equal(4, s.tree.SpentPoints())

	s.tree.Relearn(s.actor)
	s.ElementsMatch([]skilltree.AbilityID{21, 40}, s.actor.held())
}

func (s *TreeTestSuite) TestUnlockAll() {
	s.Equal(4, s.tree.UnlockAll(s.actor))
	s.Equal(20, s.points.balances[0])
	s.ElementsMatch([]skilltree.AbilityID{22, 40}, s.actor.held())
}

func (s *TreeTestSuite) TestCloneIsIndependent() {
	s.learn("combat_reflexes", 1)
	clone := s.tree.Clone()

	node, _ := clone.Node("combat_reflexes")
	node.ForceLevelUp(s.actor, 2)
	clone.SetVisible(false)

	original, _ := s.tree.Node("combat_reflexes")
	s.Equal(1, original.CurrentLevel())
	s.True(s.tree.Visible())
	s.Equal(1, clone.SpentPoints())
	s.Nil(clone.Slots()[3])
}

func (s *TreeTestSuite) TestRoundTrip() {
	s.learn("combat_reflexes", 2)
	s.tree.SetVisible(false)

	data, err := json.Marshal(s.tree)
	s.Require().NoError(err)

	restored := &skilltree.Tree{}
	s.Require().NoError(json.Unmarshal(data, restored))

	s.Equal("warrior", restored.Key())
	s.Equal("Warrior", restored.Name())
	s.Equal(3, restored.Columns())
	s.Equal(2, restored.SpentPoints())
	s.False(restored.Visible())
	s.Len(restored.Slots(), 5)
	s.Nil(restored.Slots()[3])
	s.Equal(28, restored.Slots()[4].IconRef())

	node, ok := restored.Node("combat_reflexes")
	s.Require().True(ok)
	s.Equal(2, node.CurrentLevel())
	s.Require().Len(node.RequirementsForNextLevel(), 1)
	s.Equal(skilltree.RequirementPoints, node.RequirementsForNextLevel()[0].Type())

	again, err := json.Marshal(restored)
	s.Require().NoError(err)
	s.JSONEq(string(data), string(again))
}

func TestTreeValidation(t *testing.T) {
	_, err := skilltree.NewTree(skilltree.TreeConfig{Name: "Both", Key: "both", ClassID: 1, CharacterID: 2})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = skilltree.NewTree(skilltree.TreeConfig{
		Name:  "Dupes",
		Key:   "dupes",
		Slots: []skilltree.Slot{costNode("guard", 1, 1), costNode("guard", 2, 1)},
	})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	tree, err := skilltree.NewTree(skilltree.TreeConfig{Name: "Knight", Key: "knight", ClassID: 3})
	require.NoError(t, err)
	assert.Equal(t, skilltree.ScopeClass, tree.Scope())
	assert.Equal(t, skilltree.DefaultColumns, tree.Columns())
}

func TestDecodeRequirement(t *testing.T) {
	testCases := []struct {
		name     string
		data     string
		wantType skilltree.RequirementType
		wantCode errors.Code
	}{
		{
			name:     "point cost",
			data:     `{"type":"points","price":3}`,
			wantType: skilltree.RequirementPoints,
		},
		{
			name:     "prerequisite",
			data:     `{"type":"tree_skill_level","abilityLevels":[4,5],"level":2,"name":"dual"}`,
			wantType: skilltree.RequirementSkillLevel,
		},
		{
			name:     "item",
			data:     `{"type":"item","kind":"armor","itemId":2,"amount":1}`,
			wantType: skilltree.RequirementItem,
		},
		{
			name:     "switch",
			data:     `{"type":"switch","switchId":9,"value":false}`,
			wantType: skilltree.RequirementSwitch,
		},
		{
			name:     "stat",
			data:     `{"type":"stat","stat":"atk","value":30}`,
			wantType: skilltree.RequirementStat,
		},
		{
			name:     "unknown tag",
			data:     `{"type":"gold","amount":100}`,
			wantCode: errors.CodeDataLoss,
		},
		{
			name:     "invalid fields",
			data:     `{"type":"points","price":0}`,
			wantCode: errors.CodeDataLoss,
		},
		{
			name:     "not an object",
			data:     `[1,2]`,
			wantCode: errors.CodeDataLoss,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := skilltree.DecodeRequirement([]byte(tc.data))
			if tc.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tc.wantCode, errors.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantType, req.Type())

			data, err := json.Marshal(req)
			require.NoError(t, err)
			assert.JSONEq(t, tc.data, string(data))
		})
	}
}

func TestDecodeEffect(t *testing.T) {
	eff, err := skilltree.DecodeEffect([]byte(`{"type":"variable","variableId":4,"increment":2}`))
	require.NoError(t, err)
	variable, ok := eff.(*skilltree.AdjustPersistentVariable)
	require.True(t, ok)
	assert.Equal(t, 4, variable.VariableID())
	assert.Equal(t, 2, variable.Increment())

	_, err = skilltree.DecodeEffect([]byte(`{"type":"teleport"}`))
	require.Error(t, err)
	assert.True(t, errors.IsDataLoss(err))
}

func TestTreeUnmarshalUnknownRequirementFails(t *testing.T) {
	data := `{
		"name": "Warrior", "key": "warrior", "scopeClassId": 0, "scopeCharacterId": 0,
		"columns": 7, "points": 0, "visible": true,
		"nodes": [
			{"key": "guard", "type": "node", "abilityLevels": [1], "currentLevel": 0,
			 "requirementsPerLevel": [[{"type": "mystery"}]], "effectsPerLevel": []},
			null
		]
	}`

	err := json.Unmarshal([]byte(data), &skilltree.Tree{})
	require.Error(t, err)
	assert.True(t, errors.IsDataLoss(err))
}

func TestTreeUnmarshalLevelOutOfRangeFails(t *testing.T) {
	data := `{"name": "W", "key": "w", "nodes": [
		{"key": "guard", "type": "node", "abilityLevels": [1], "currentLevel": 4}
	]}`

	err := json.Unmarshal([]byte(data), &skilltree.Tree{})
	require.Error(t, err)
	assert.True(t, errors.IsDataLoss(err))
}
