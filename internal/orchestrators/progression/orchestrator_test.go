package progression_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/core"
	toolkitevents "github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-skilltrees/internal/catalog"
	"github.com/KirkDiggler/rpg-skilltrees/internal/entities"
	"github.com/KirkDiggler/rpg-skilltrees/internal/errors"
	"github.com/KirkDiggler/rpg-skilltrees/internal/events"
	"github.com/KirkDiggler/rpg-skilltrees/internal/ledger"
	"github.com/KirkDiggler/rpg-skilltrees/internal/orchestrators/progression"
	"github.com/KirkDiggler/rpg-skilltrees/internal/pkg/idgen"
	idgenmock "github.com/KirkDiggler/rpg-skilltrees/internal/pkg/idgen/mock"
	"github.com/KirkDiggler/rpg-skilltrees/internal/repositories/save"
	savemock "github.com/KirkDiggler/rpg-skilltrees/internal/repositories/save/mock"
	"github.com/KirkDiggler/rpg-skilltrees/internal/skilltree"
	"github.com/KirkDiggler/rpg-skilltrees/internal/testutils"
	"github.com/KirkDiggler/rpg-skilltrees/internal/testutils/builders"
	"github.com/KirkDiggler/rpg-skilltrees/internal/testutils/mocks"
)

const catalogPath = "../../../configs/skilltrees.yaml"

type OrchestratorTestSuite struct {
	suite.Suite
	ctx     context.Context
	catalog *catalog.Catalog
	repo    save.Repository
	service progression.Service
	ran     []int
	saveID  string
	hero    progression.CharacterRef
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ran = nil

	c, err := catalog.Load(catalogPath)
	s.Require().NoError(err)
	s.catalog = c

	client, _ := testutils.CreateTestRedisClient(s.T())
	repo, err := save.NewRedis(&save.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo

	bus := toolkitevents.NewBus()
	events.Subscribe(bus, 0, func(_ context.Context, eventID int, _ core.Entity) error {
		s.ran = append(s.ran, eventID)
		return nil
	})
	interpreter, err := events.NewInterpreter(&events.Config{Bus: bus})
	s.Require().NoError(err)

	service, err := progression.NewOrchestrator(&progression.Config{
		SaveRepo:    repo,
		Catalog:     c,
		IDGenerator: idgen.NewSequential("save"),
		Events:      interpreter,
	})
	s.Require().NoError(err)
	s.service = service

	out, err := s.service.CreateSave(s.ctx, &progression.CreateSaveInput{
		Characters: []progression.CharacterSeed{
			{ID: 1, Name: "Harold", ClassID: 2, Level: 5},
			{ID: 2, Name: "Therese", ClassID: 1, Level: 1},
		},
		Items: []progression.ItemStack{{Kind: skilltree.ItemKindWeapon, ID: 4, Amount: 1}},
	})
	s.Require().NoError(err)
	s.saveID = out.SaveID
	s.hero = progression.CharacterRef{SaveID: out.SaveID, CharacterID: 1}
}

func (s *OrchestratorTestSuite) balance() int {
	out, err := s.service.GetSave(s.ctx, &progression.GetSaveInput{SaveID: s.saveID})
	s.Require().NoError(err)
	return out.Characters[0].Balances[ledger.DefaultKey]
}

func (s *OrchestratorTestSuite) TestCreateSave() {
	s.Equal("save_1", s.saveID)

	out, err := s.service.GetSave(s.ctx, &progression.GetSaveInput{SaveID: s.saveID})
	s.Require().NoError(err)
	s.Equal(int64(1), out.Version)
	s.Require().Len(out.Characters, 2)

	hero := out.Characters[0]
	s.Equal("Harold", hero.Name)
	s.Equal([]string{"berserk_tree", "second_tree", "third_tree", "knight_tree"}, hero.Trees)
	s.Equal(map[ledger.Key]int{"0": 60}, hero.Balances)

	s.Empty(out.Characters[1].Trees)
}

func (s *OrchestratorTestSuite) TestCreateSaveValidation() {
	_, err := s.service.CreateSave(s.ctx, &progression.CreateSaveInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.service.CreateSave(s.ctx, &progression.CreateSaveInput{
		Characters: []progression.CharacterSeed{
			{ID: 1, Name: "Harold", Level: 1},
			{ID: 1, Name: "Twin", Level: 1},
			{ID: 2, Level: 1},
		},
		Items: []progression.ItemStack{{Kind: "shield", ID: 1, Amount: 1}},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Require().True(ok)
	s.Contains(fields, "characters[1]")
	s.Contains(fields, "characters[2].Name")
	s.Contains(fields, "items[0]")
}

func (s *OrchestratorTestSuite) TestListTrees() {
	out, err := s.service.ListTrees(s.ctx, &progression.ListTreesInput{CharacterRef: s.hero})
	s.Require().NoError(err)
	s.Require().Len(out.Trees, 4)

	berserk := out.Trees[0]
	s.Equal("berserk_tree", berserk.Key)
	s.Equal(skilltree.ScopeCharacter, berserk.Scope)
	s.Equal(60, berserk.Balance)
	s.Len(berserk.Slots, 63)
	s.Empty(berserk.Slots[0].Kind)

	guard := berserk.Slots[5]
	s.Equal(skilltree.SlotNode, guard.Kind)
	s.True(guard.Enabled)
	s.Equal("available", guard.Node.State)
	s.Equal(skilltree.AbilityID(2), guard.Node.NextAbility)
	s.Require().Len(guard.Node.Requirements, 1)
	s.True(guard.Node.Requirements[0].Met)

	connector := berserk.Slots[9]
	s.Equal(skilltree.SlotConnector, connector.Kind)
	s.Equal(29, connector.Icon)
	s.True(connector.Enabled)
	s.Nil(connector.Node)

	rampage := berserk.Slots[59]
	s.Require().NotNil(rampage.Node)
	s.Equal("rampage", rampage.Node.Key)
	s.Equal("locked", rampage.Node.State)
	s.False(rampage.Enabled)
	s.Require().Len(rampage.Node.Requirements, 4)
	s.Equal("Combat Reflexes level 3 learned", rampage.Node.Requirements[1].Description)
	s.False(rampage.Node.Requirements[1].Met)
}

func (s *OrchestratorTestSuite) TestLearnSkillPersists() {
	out, err := s.service.LearnSkill(s.ctx, &progression.LearnSkillInput{
		CharacterRef: s.hero,
		TreeKey:      "berserk_tree",
		NodeKey:      "guard",
	})
	s.Require().NoError(err)
	s.Equal(1, out.Node.Level)
	s.Equal("maxed", out.Node.State)
	s.Equal(1, out.Node.Refund)
	s.Contains(out.Character.Abilities, skilltree.AbilityID(2))
	s.Equal(59, s.balance())

	saved, err := s.repo.Get(s.ctx, save.GetInput{ID: s.saveID})
	s.Require().NoError(err)
	s.Equal(int64(2), saved.Save.Version)
	s.True(saved.Save.Characters[1].HasAbility(2))
}

func (s *OrchestratorTestSuite) TestLearnSkillUnavailableChangesNothing() {
	_, err := s.service.LearnSkill(s.ctx, &progression.LearnSkillInput{
		CharacterRef: s.hero,
		TreeKey:      "berserk_tree",
		NodeKey:      "rampage",
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))

	saved, err := s.repo.Get(s.ctx, save.GetInput{ID: s.saveID})
	s.Require().NoError(err)
	s.Equal(int64(1), saved.Save.Version)
}

func (s *OrchestratorTestSuite) TestItemRequirementAndEvent() {
	forced, err := s.service.ForceLearn(s.ctx, &progression.ForceLearnInput{
		CharacterRef: s.hero,
		TreeKey:      "berserk_tree",
		NodeKey:      "armor_break",
		Levels:       2,
	})
	s.Require().NoError(err)
	s.Equal(2, forced.LevelsGained)
	s.Equal(skilltree.AbilityID(17), forced.Node.Ability)

	out, err := s.service.LearnSkill(s.ctx, &progression.LearnSkillInput{
		CharacterRef: s.hero,
		TreeKey:      "berserk_tree",
		NodeKey:      "armor_break",
	})
	s.Require().NoError(err)
	s.Equal(3, out.Node.Level)
	s.Equal([]int{7}, s.ran)
	s.Equal(57, s.balance())

	saved, err := s.repo.Get(s.ctx, save.GetInput{ID: s.saveID})
	s.Require().NoError(err)
	s.Equal(0, saved.Save.World.ItemCount(skilltree.ItemKindWeapon, 4))
	s.True(saved.Save.Characters[1].HasAbility(18))
	s.False(saved.Save.Characters[1].HasAbility(17))
}

func (s *OrchestratorTestSuite) TestResetTrees() {
	for _, node := range []string{"guard", "combat_reflexes", "combat_reflexes"} {
		_, err := s.service.LearnSkill(s.ctx, &progression.LearnSkillInput{
			CharacterRef: s.hero,
			TreeKey:      "berserk_tree",
			NodeKey:      node,
		})
		s.Require().NoError(err)
	}
	_, err := s.service.LearnSkill(s.ctx, &progression.LearnSkillInput{
		CharacterRef: s.hero,
		TreeKey:      "knight_tree",
		NodeKey:      "guard",
	})
	s.Require().NoError(err)
	s.Equal(56, s.balance())

	out, err := s.service.ResetTrees(s.ctx, &progression.ResetTreesInput{
		CharacterRef: s.hero,
		Scope:        progression.ResetScopeClass,
	})
	s.Require().NoError(err)
	s.Equal(1, out.Refunded)
	s.Equal(57, out.Balances[ledger.DefaultKey])

	out, err = s.service.ResetTrees(s.ctx, &progression.ResetTreesInput{
		CharacterRef: s.hero,
		Scope:        progression.ResetScopeTree,
		TreeKey:      "berserk_tree",
	})
	s.Require().NoError(err)
	s.Equal(3, out.Refunded)
	s.Equal(60, s.balance())

	_, err = s.service.ResetTrees(s.ctx, &progression.ResetTreesInput{CharacterRef: s.hero, Scope: "party"})
	s.True(errors.IsInvalidArgument(err))
	_, err = s.service.ResetTrees(s.ctx, &progression.ResetTreesInput{CharacterRef: s.hero, Scope: progression.ResetScopeTree})
	s.True(errors.IsInvalidArgument(err))

	out, err = s.service.ResetTrees(s.ctx, &progression.ResetTreesInput{CharacterRef: s.hero, Scope: progression.ResetScopeAll})
	s.Require().NoError(err)
	s.Equal(0, out.Refunded)
}

func (s *OrchestratorTestSuite) TestChangeClass() {
	_, err := s.service.LearnSkill(s.ctx, &progression.LearnSkillInput{
		CharacterRef: s.hero,
		TreeKey:      "knight_tree",
		NodeKey:      "combat_reflexes",
	})
	s.Require().NoError(err)

	out, err := s.service.ChangeClass(s.ctx, &progression.ChangeClassInput{CharacterRef: s.hero, ClassID: 3})
	s.Require().NoError(err)
	s.Equal(2, out.PreviousClassID)
	s.NotContains(out.Character.Trees, "knight_tree")
	s.NotContains(out.Character.Abilities, skilltree.AbilityID(11))

	hidden, err := s.service.ListTrees(s.ctx, &progression.ListTreesInput{CharacterRef: s.hero, IncludeHidden: true})
	s.Require().NoError(err)
	s.Len(hidden.Trees, 4)
	s.False(hidden.Trees[3].Visible)

	out, err = s.service.ChangeClass(s.ctx, &progression.ChangeClassInput{CharacterRef: s.hero, ClassID: 2})
	s.Require().NoError(err)
	s.Contains(out.Character.Trees, "knight_tree")
	s.Contains(out.Character.Abilities, skilltree.AbilityID(11))
	s.Equal(map[ledger.Key]int{"0": 59}, out.Character.Balances)
}

func (s *OrchestratorTestSuite) TestLevelUpAndGrantPoints() {
	out, err := s.service.LevelUp(s.ctx, &progression.LevelUpInput{CharacterRef: s.hero, Levels: 2})
	s.Require().NoError(err)
	s.Equal(2, out.PointsGranted)
	s.Equal(7, out.Character.Level)

	granted, err := s.service.GrantPoints(s.ctx, &progression.GrantPointsInput{
		CharacterRef: s.hero,
		Pool:         "0",
		Points:       3,
	})
	s.Require().NoError(err)
	s.Equal(65, granted.Balances[ledger.DefaultKey])

	_, err = s.service.GrantPoints(s.ctx, &progression.GrantPointsInput{CharacterRef: s.hero, Pool: "0"})
	s.True(errors.IsInvalidArgument(err))
	_, err = s.service.LevelUp(s.ctx, &progression.LevelUpInput{CharacterRef: s.hero})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestDetachAndAttach() {
	_, err := s.service.LearnSkill(s.ctx, &progression.LearnSkillInput{
		CharacterRef: s.hero,
		TreeKey:      "third_tree",
		NodeKey:      "guard",
	})
	s.Require().NoError(err)

	detached, err := s.service.DetachTree(s.ctx, &progression.DetachTreeInput{
		CharacterRef: s.hero,
		TreeKey:      "third_tree",
		Preserve:     true,
	})
	s.Require().NoError(err)
	s.Equal([]string{"third_tree"}, detached.Character.Suspended)
	s.NotContains(detached.Character.Abilities, skilltree.AbilityID(2))

	attached, err := s.service.AttachTree(s.ctx, &progression.AttachTreeInput{
		CharacterRef: s.hero,
		TreeKey:      "third_tree",
	})
	s.Require().NoError(err)
	s.Equal(1, attached.Tree.SpentPoints)

	_, err = s.service.AttachTree(s.ctx, &progression.AttachTreeInput{CharacterRef: s.hero, TreeKey: "second_tree"})
	s.True(errors.IsAlreadyExists(err))
}

func (s *OrchestratorTestSuite) TestLookupErrors() {
	_, err := s.service.ListTrees(s.ctx, &progression.ListTreesInput{
		CharacterRef: progression.CharacterRef{SaveID: "missing", CharacterID: 1},
	})
	s.True(errors.IsNotFound(err))

	_, err = s.service.ListTrees(s.ctx, &progression.ListTreesInput{
		CharacterRef: progression.CharacterRef{SaveID: s.saveID, CharacterID: 9},
	})
	s.True(errors.IsNotFound(err))

	_, err = s.service.ListTrees(s.ctx, &progression.ListTreesInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.service.DeleteSave(s.ctx, &progression.DeleteSaveInput{SaveID: s.saveID})
	s.Require().NoError(err)
	_, err = s.service.GetSave(s.ctx, &progression.GetSaveInput{SaveID: s.saveID})
	s.True(errors.IsNotFound(err))
}

type OrchestratorMockTestSuite struct {
	suite.Suite
	ctx      context.Context
	ctrl     *gomock.Controller
	mockRepo *savemock.MockRepository
	service  progression.Service
}

func TestOrchestratorMockSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorMockTestSuite))
}

func (s *OrchestratorMockTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = savemock.NewMockRepository(s.ctrl)

	c, err := catalog.Load(catalogPath)
	s.Require().NoError(err)
	interpreter, err := events.NewInterpreter(&events.Config{Bus: toolkitevents.NewBus()})
	s.Require().NoError(err)

	service, err := progression.NewOrchestrator(&progression.Config{
		SaveRepo:    s.mockRepo,
		Catalog:     c,
		IDGenerator: idgen.NewSequential("save"),
		Events:      interpreter,
	})
	s.Require().NoError(err)
	s.service = service
}

func (s *OrchestratorMockTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorMockTestSuite) TestCreateSaveRepositoryError() {
	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		Return(nil, errors.AlreadyExists("save with ID save_1 already exists"))

	_, err := s.service.CreateSave(s.ctx, &progression.CreateSaveInput{
		Characters: []progression.CharacterSeed{{ID: 1, Name: "Harold", Level: 1}},
	})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *OrchestratorMockTestSuite) TestUpdateConflictSurfaces() {
	var stored *save.Save
	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input save.CreateInput) (*save.CreateOutput, error) {
			stored = input.Save
			return &save.CreateOutput{Save: input.Save}, nil
		})
	_, err := s.service.CreateSave(s.ctx, &progression.CreateSaveInput{
		Characters: []progression.CharacterSeed{{ID: 1, Name: "Harold", Level: 1}},
	})
	s.Require().NoError(err)

	s.mockRepo.EXPECT().
		Get(s.ctx, save.GetInput{ID: "save_1"}).
		Return(&save.GetOutput{Save: stored}, nil)
	s.mockRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		Return(nil, errors.New(errors.CodeAborted, "save save_1 changed during update"))

	_, err = s.service.LearnSkill(s.ctx, &progression.LearnSkillInput{
		CharacterRef: progression.CharacterRef{SaveID: "save_1", CharacterID: 1},
		TreeKey:      "berserk_tree",
		NodeKey:      "guard",
	})
	s.Require().Error(err)
	s.Equal(errors.CodeAborted, errors.GetCode(err))
}

func (s *OrchestratorMockTestSuite) TestConfigValidation() {
	_, err := progression.NewOrchestrator(&progression.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = progression.NewOrchestrator(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorMockTestSuite) TestLearnSkillOnStoredSave() {
	stored, err := testutils.CreateTestSave("save-42")
	s.Require().NoError(err)

	mocks.ExpectSaveGet(s.ctx, s.mockRepo, "save-42", stored, nil)
	mocks.ExpectSaveUpdate(s.ctx, s.mockRepo)

	out, err := s.service.LearnSkill(s.ctx, &progression.LearnSkillInput{
		CharacterRef: progression.CharacterRef{SaveID: "save-42", CharacterID: testutils.TestCharacterID},
		TreeKey:      "berserk_tree",
		NodeKey:      "guard",
	})
	s.Require().NoError(err)
	s.Equal(1, out.Node.Level)
	s.Contains(out.Character.Abilities, skilltree.AbilityID(2))

	raw, ok := stored.Profiles[testutils.TestCharacterID]
	s.Require().True(ok, "profile should be written back before the update")
	s.True(json.Valid(raw))
}

func (s *OrchestratorMockTestSuite) TestGetSaveCorruptProfile() {
	stored, err := builders.NewSaveBuilder().
		WithID("save-7").
		WithCharacter(entities.CharacterConfig{ID: 1, Name: testutils.TestCharacterName, Level: 1}).
		WithProfile(1, json.RawMessage(`{"trees": 5}`)).
		Build()
	s.Require().NoError(err)

	mocks.ExpectSaveGet(s.ctx, s.mockRepo, "save-7", stored, nil)

	_, err = s.service.GetSave(s.ctx, &progression.GetSaveInput{SaveID: "save-7"})
	s.Require().Error(err)
	s.True(errors.IsDataLoss(err))
}

func (s *OrchestratorMockTestSuite) TestDeleteSaveNotFound() {
	mocks.ExpectSaveDelete(s.ctx, s.mockRepo, "gone", errors.NotFound("save gone not found"))

	_, err := s.service.DeleteSave(s.ctx, &progression.DeleteSaveInput{SaveID: "gone"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorMockTestSuite) TestCreateSaveUsesGeneratedID() {
	mockIDs := idgenmock.NewMockGenerator(s.ctrl)
	mockIDs.EXPECT().Generate().Return("save-fixed")

	c, err := catalog.Load(catalogPath)
	s.Require().NoError(err)
	interpreter, err := events.NewInterpreter(&events.Config{Bus: toolkitevents.NewBus()})
	s.Require().NoError(err)
	service, err := progression.NewOrchestrator(&progression.Config{
		SaveRepo:    s.mockRepo,
		Catalog:     c,
		IDGenerator: mockIDs,
		Events:      interpreter,
	})
	s.Require().NoError(err)

	mocks.ExpectSaveCreate(s.ctx, s.mockRepo)

	out, err := service.CreateSave(s.ctx, &progression.CreateSaveInput{
		Characters: []progression.CharacterSeed{{ID: 1, Name: testutils.TestCharacterName, ClassID: 2, Level: 1}},
	})
	s.Require().NoError(err)
	s.Equal("save-fixed", out.SaveID)
}
