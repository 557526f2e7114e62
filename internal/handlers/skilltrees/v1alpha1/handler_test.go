package v1alpha1_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	skilltreesv1alpha1 "github.com/KirkDiggler/rpg-skilltrees/gen/go/skilltrees/v1alpha1"
	"github.com/KirkDiggler/rpg-skilltrees/internal/errors"
	"github.com/KirkDiggler/rpg-skilltrees/internal/handlers/skilltrees/v1alpha1"
	"github.com/KirkDiggler/rpg-skilltrees/internal/ledger"
	"github.com/KirkDiggler/rpg-skilltrees/internal/orchestrators/progression"
	progressionmock "github.com/KirkDiggler/rpg-skilltrees/internal/orchestrators/progression/mock"
	"github.com/KirkDiggler/rpg-skilltrees/internal/skilltree"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *progressionmock.MockService
	handler     *v1alpha1.Handler
	ctx         context.Context
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = progressionmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		ProgressionService: s.mockService,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) summary() *progression.CharacterSummary {
	return &progression.CharacterSummary{
		ID:        1,
		Name:      "Harold",
		ClassID:   2,
		Level:     5,
		Abilities: []skilltree.AbilityID{2, 11},
		Balances:  map[ledger.Key]int{"0": 53},
		Trees:     []string{"berserk_tree", "knight_tree"},
	}
}

func (s *HandlerTestSuite) requireCode(err error, code codes.Code) {
	s.Require().Error(err)
	st, ok := status.FromError(err)
	s.Require().True(ok, "expected a status error, got %v", err)
	s.Equal(code, st.Code())
}

func (s *HandlerTestSuite) TestNewHandlerRequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestCreateSave() {
	s.mockService.EXPECT().
		CreateSave(s.ctx, &progression.CreateSaveInput{
			Characters: []progression.CharacterSeed{{
				ID:      1,
				Name:    "Harold",
				ClassID: 2,
				Level:   5,
				Stats:   map[skilltree.Stat]int{skilltree.StatMaxHP: 450},
			}},
			Items:    []progression.ItemStack{{Kind: skilltree.ItemKindWeapon, ID: 4, Amount: 1}},
			Currency: map[int]int{2: 100},
		}).
		Return(&progression.CreateSaveOutput{
			SaveID:     "save-1",
			Characters: []*progression.CharacterSummary{s.summary()},
		}, nil)

	resp, err := s.handler.CreateSave(s.ctx, &skilltreesv1alpha1.CreateSaveRequest{
		Characters: []*skilltreesv1alpha1.CharacterSeed{{
			Id:      1,
			Name:    "Harold",
			ClassId: 2,
			Level:   5,
			Stats:   map[string]int32{"mhp": 450},
		}},
		Items:    []*skilltreesv1alpha1.ItemStack{{Kind: "weapon", Id: 4, Amount: 1}},
		Currency: map[int32]int32{2: 100},
	})
	s.Require().NoError(err)
	s.Equal("save-1", resp.SaveId)
	s.Require().Len(resp.Characters, 1)
	s.Equal([]int32{2, 11}, resp.Characters[0].Abilities)
	s.Equal(map[string]int32{"0": 53}, resp.Characters[0].Balances)
}

func (s *HandlerTestSuite) TestCreateSaveRequiresCharacters() {
	_, err := s.handler.CreateSave(s.ctx, &skilltreesv1alpha1.CreateSaveRequest{})
	s.requireCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestGetSave() {
	updated := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.mockService.EXPECT().
		GetSave(s.ctx, &progression.GetSaveInput{SaveID: "save-1"}).
		Return(&progression.GetSaveOutput{
			SaveID:     "save-1",
			Version:    3,
			UpdatedAt:  updated,
			Characters: []*progression.CharacterSummary{s.summary()},
			Variables:  map[int]int{1: 2},
		}, nil)

	resp, err := s.handler.GetSave(s.ctx, &skilltreesv1alpha1.GetSaveRequest{SaveId: "save-1"})
	s.Require().NoError(err)
	s.Equal(int64(3), resp.Version)
	s.Equal(updated.Unix(), resp.UpdatedAt)
	s.Equal(map[int32]int32{1: 2}, resp.Variables)
}

func (s *HandlerTestSuite) TestGetSaveNotFound() {
	s.mockService.EXPECT().
		GetSave(s.ctx, &progression.GetSaveInput{SaveID: "missing"}).
		Return(nil, errors.NotFound("save not found"))

	_, err := s.handler.GetSave(s.ctx, &skilltreesv1alpha1.GetSaveRequest{SaveId: "missing"})
	s.requireCode(err, codes.NotFound)
}

func (s *HandlerTestSuite) TestRequestValidation() {
	testCases := []struct {
		name string
		call func() error
	}{
		{
			name: "get save without id",
			call: func() error {
				_, err := s.handler.GetSave(s.ctx, &skilltreesv1alpha1.GetSaveRequest{})
				return err
			},
		},
		{
			name: "delete save without id",
			call: func() error {
				_, err := s.handler.DeleteSave(s.ctx, nil)
				return err
			},
		},
		{
			name: "list trees without character",
			call: func() error {
				_, err := s.handler.ListTrees(s.ctx, &skilltreesv1alpha1.ListTreesRequest{SaveId: "save-1"})
				return err
			},
		},
		{
			name: "learn without node",
			call: func() error {
				_, err := s.handler.LearnSkill(s.ctx, &skilltreesv1alpha1.LearnSkillRequest{
					SaveId: "save-1", CharacterId: 1, TreeKey: "berserk_tree",
				})
				return err
			},
		},
		{
			name: "force learn without levels",
			call: func() error {
				_, err := s.handler.ForceLearn(s.ctx, &skilltreesv1alpha1.ForceLearnRequest{
					SaveId: "save-1", CharacterId: 1, TreeKey: "berserk_tree", NodeKey: "guard",
				})
				return err
			},
		},
		{
			name: "reset with unknown scope",
			call: func() error {
				_, err := s.handler.ResetTrees(s.ctx, &skilltreesv1alpha1.ResetTreesRequest{
					SaveId: "save-1", CharacterId: 1, Scope: "everything",
				})
				return err
			},
		},
		{
			name: "reset tree scope without tree",
			call: func() error {
				_, err := s.handler.ResetTrees(s.ctx, &skilltreesv1alpha1.ResetTreesRequest{
					SaveId: "save-1", CharacterId: 1, Scope: "tree",
				})
				return err
			},
		},
		{
			name: "grant without pool",
			call: func() error {
				_, err := s.handler.GrantPoints(s.ctx, &skilltreesv1alpha1.GrantPointsRequest{
					SaveId: "save-1", CharacterId: 1, Points: 3,
				})
				return err
			},
		},
		{
			name: "change class to zero",
			call: func() error {
				_, err := s.handler.ChangeClass(s.ctx, &skilltreesv1alpha1.ChangeClassRequest{
					SaveId: "save-1", CharacterId: 1,
				})
				return err
			},
		},
		{
			name: "level up by zero",
			call: func() error {
				_, err := s.handler.LevelUp(s.ctx, &skilltreesv1alpha1.LevelUpRequest{
					SaveId: "save-1", CharacterId: 1,
				})
				return err
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.requireCode(tc.call(), codes.InvalidArgument)
		})
	}
}

func (s *HandlerTestSuite) TestLearnSkill() {
	ref := progression.CharacterRef{SaveID: "save-1", CharacterID: 1}
	s.mockService.EXPECT().
		LearnSkill(s.ctx, &progression.LearnSkillInput{
			CharacterRef: ref,
			TreeKey:      "berserk_tree",
			NodeKey:      "guard",
		}).
		Return(&progression.LearnSkillOutput{
			Node: &progression.NodeView{
				Key:      "guard",
				Name:     "Guard",
				Level:    1,
				MaxLevel: 1,
				State:    "maxed",
				Ability:  2,
				Refund:   1,
			},
			Character: s.summary(),
		}, nil)

	resp, err := s.handler.LearnSkill(s.ctx, &skilltreesv1alpha1.LearnSkillRequest{
		SaveId:      "save-1",
		CharacterId: 1,
		TreeKey:     "berserk_tree",
		NodeKey:     "guard",
	})
	s.Require().NoError(err)
	s.Equal("maxed", resp.Node.State)
	s.Equal(int32(2), resp.Node.Ability)
	s.Equal(int32(1), resp.Character.Id)
}

func (s *HandlerTestSuite) TestLearnSkillUnavailable() {
	s.mockService.EXPECT().
		LearnSkill(s.ctx, gomock.Any()).
		Return(nil, errors.FailedPrecondition("requirements not met"))

	_, err := s.handler.LearnSkill(s.ctx, &skilltreesv1alpha1.LearnSkillRequest{
		SaveId:      "save-1",
		CharacterId: 1,
		TreeKey:     "berserk_tree",
		NodeKey:     "rampage",
	})
	s.requireCode(err, codes.FailedPrecondition)
}

func (s *HandlerTestSuite) TestListTreesKeepsEmptySlots() {
	s.mockService.EXPECT().
		ListTrees(s.ctx, &progression.ListTreesInput{
			CharacterRef:  progression.CharacterRef{SaveID: "save-1", CharacterID: 1},
			IncludeHidden: true,
		}).
		Return(&progression.ListTreesOutput{
			Character: s.summary(),
			Trees: []*progression.TreeView{{
				Key:     "knight_tree",
				Name:    "Knight",
				Scope:   skilltree.ScopeClass,
				Visible: true,
				Columns: 2,
				Rows:    1,
				Balance: 5,
				Slots: []*progression.SlotView{
					{},
					{Kind: skilltree.SlotConnector, Icon: 30, Enabled: true},
				},
			}},
		}, nil)

	resp, err := s.handler.ListTrees(s.ctx, &skilltreesv1alpha1.ListTreesRequest{
		SaveId:        "save-1",
		CharacterId:   1,
		IncludeHidden: true,
	})
	s.Require().NoError(err)
	s.Require().Len(resp.Trees, 1)
	tree := resp.Trees[0]
	s.Equal("class", tree.Scope)
	s.Require().Len(tree.Slots, 2)
	s.Empty(tree.Slots[0].Kind)
	s.Equal("connector", tree.Slots[1].Kind)
	s.Equal(int32(30), tree.Slots[1].Icon)
}

func (s *HandlerTestSuite) TestResetTrees() {
	s.mockService.EXPECT().
		ResetTrees(s.ctx, &progression.ResetTreesInput{
			CharacterRef: progression.CharacterRef{SaveID: "save-1", CharacterID: 1},
			Scope:        progression.ResetScopeClass,
			ClassID:      2,
		}).
		Return(&progression.ResetTreesOutput{
			Refunded: 4,
			Balances: map[ledger.Key]int{"2": 9},
		}, nil)

	resp, err := s.handler.ResetTrees(s.ctx, &skilltreesv1alpha1.ResetTreesRequest{
		SaveId:      "save-1",
		CharacterId: 1,
		Scope:       "class",
		ClassId:     2,
	})
	s.Require().NoError(err)
	s.Equal(int32(4), resp.Refunded)
	s.Equal(map[string]int32{"2": 9}, resp.Balances)
}

func (s *HandlerTestSuite) TestChangeClass() {
	s.mockService.EXPECT().
		ChangeClass(s.ctx, &progression.ChangeClassInput{
			CharacterRef: progression.CharacterRef{SaveID: "save-1", CharacterID: 1},
			ClassID:      3,
		}).
		Return(&progression.ChangeClassOutput{
			PreviousClassID: 2,
			Character:       s.summary(),
		}, nil)

	resp, err := s.handler.ChangeClass(s.ctx, &skilltreesv1alpha1.ChangeClassRequest{
		SaveId:      "save-1",
		CharacterId: 1,
		ClassId:     3,
	})
	s.Require().NoError(err)
	s.Equal(int32(2), resp.PreviousClassId)
}

func (s *HandlerTestSuite) TestLevelUp() {
	s.mockService.EXPECT().
		LevelUp(s.ctx, &progression.LevelUpInput{
			CharacterRef: progression.CharacterRef{SaveID: "save-1", CharacterID: 1},
			Levels:       2,
		}).
		Return(&progression.LevelUpOutput{
			PointsGranted: 2,
			Character:     s.summary(),
		}, nil)

	resp, err := s.handler.LevelUp(s.ctx, &skilltreesv1alpha1.LevelUpRequest{
		SaveId:      "save-1",
		CharacterId: 1,
		Levels:      2,
	})
	s.Require().NoError(err)
	s.Equal(int32(2), resp.PointsGranted)
}

func (s *HandlerTestSuite) TestInternalErrorsBecomeInternal() {
	s.mockService.EXPECT().
		DeleteSave(s.ctx, &progression.DeleteSaveInput{SaveID: "save-1"}).
		Return(nil, errors.Internal("redis is down"))

	_, err := s.handler.DeleteSave(s.ctx, &skilltreesv1alpha1.DeleteSaveRequest{SaveId: "save-1"})
	s.requireCode(err, codes.Internal)
}
