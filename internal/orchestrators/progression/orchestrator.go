// Package progression implements the skill progression use cases on top of
// stored saves
package progression

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/KirkDiggler/rpg-skilltrees/internal/catalog"
	"github.com/KirkDiggler/rpg-skilltrees/internal/entities"
	"github.com/KirkDiggler/rpg-skilltrees/internal/errors"
	"github.com/KirkDiggler/rpg-skilltrees/internal/events"
	"github.com/KirkDiggler/rpg-skilltrees/internal/ledger"
	"github.com/KirkDiggler/rpg-skilltrees/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-skilltrees/internal/profile"
	"github.com/KirkDiggler/rpg-skilltrees/internal/repositories/save"
	"github.com/KirkDiggler/rpg-skilltrees/internal/skilltree"
)

// Config holds the dependencies for the progression orchestrator
type Config struct {
	SaveRepo    save.Repository
	Catalog     *catalog.Catalog
	IDGenerator idgen.Generator
	Events      *events.Interpreter
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SaveRepo == nil {
		vb.RequiredField("SaveRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Events == nil {
		vb.RequiredField("Events")
	}

	return vb.Build()
}

type orchestrator struct {
	saveRepo save.Repository
	catalog  *catalog.Catalog
	idGen    idgen.Generator
	events   *events.Interpreter
}

// NewOrchestrator creates a new progression orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		saveRepo: cfg.SaveRepo,
		catalog:  cfg.Catalog,
		idGen:    cfg.IDGenerator,
		events:   cfg.Events,
	}, nil
}

// session is one character of a loaded save with its restored profile.
type session struct {
	save      *save.Save
	character *entities.Character
	profile   *profile.Profile
}

func (o *orchestrator) profileConfig(world *entities.World) *profile.Config {
	return &profile.Config{Catalog: o.catalog, Currency: world}
}

func validateRef(ref CharacterRef) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("save_id", ref.SaveID, vb)
	errors.ValidatePositive("character_id", ref.CharacterID, 1, vb)
	return vb.Build()
}

func (o *orchestrator) load(ctx context.Context, ref CharacterRef) (*session, error) {
	if err := validateRef(ref); err != nil {
		return nil, err
	}

	out, err := o.saveRepo.Get(ctx, save.GetInput{ID: ref.SaveID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get save %s", ref.SaveID)
	}
	return o.open(out.Save, ref.CharacterID)
}

// open restores the profile of one character of a loaded save. A character
// without a stored profile gets a fresh one.
func (o *orchestrator) open(s *save.Save, characterID int) (*session, error) {
	if s.World == nil {
		s.World = entities.NewWorld()
	}

	character, ok := s.Characters[characterID]
	if !ok {
		return nil, errors.NotFoundf("character %d not found in save %s", characterID, s.ID).
			WithMeta("save_id", s.ID).
			WithMeta("character_id", characterID)
	}

	var (
		p   *profile.Profile
		err error
	)
	if raw, ok := s.Profiles[characterID]; ok {
		p, err = profile.Restore(o.profileConfig(s.World), raw)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to restore profile of character %d", characterID)
		}
	} else {
		p, err = profile.New(o.profileConfig(s.World), character)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create profile of character %d", characterID)
		}
	}

	return &session{save: s, character: character, profile: p}, nil
}

func (o *orchestrator) persist(ctx context.Context, s *session) error {
	raw, err := json.Marshal(s.profile)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal profile of character %d", s.character.ID())
	}
	if s.save.Profiles == nil {
		s.save.Profiles = make(map[int]json.RawMessage)
	}
	s.save.Profiles[s.character.ID()] = raw

	out, err := o.saveRepo.Update(ctx, save.UpdateInput{Save: s.save})
	if err != nil {
		return errors.Wrapf(err, "failed to update save %s", s.save.ID)
	}
	s.save = out.Save
	return nil
}

func (o *orchestrator) learner(s *session) *skilltree.Learner {
	return s.profile.Learner(skilltree.Learner{
		Actor:    s.character,
		Party:    s.save.World,
		State:    s.save.World,
		Events:   o.events.ForActor(s.character),
		Currency: s.save.World,
	})
}

// CreateSave creates a world, its characters and their starting profiles
func (o *orchestrator) CreateSave(ctx context.Context, input *CreateSaveInput) (*CreateSaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if len(input.Characters) == 0 {
		return nil, errors.InvalidArgument("at least one character is required")
	}

	vb := errors.NewValidationBuilder()
	world := entities.NewWorld()
	for i, stack := range input.Items {
		vb.Merge(indexed("items", i), world.GainItem(stack.Kind, stack.ID, stack.Amount))
	}
	for classID, amount := range input.Currency {
		vb.Merge("currency", world.Deposit(classID, amount))
	}

	s := &save.Save{
		ID:         o.idGen.Generate(),
		World:      world,
		Characters: make(map[int]*entities.Character, len(input.Characters)),
		Profiles:   make(map[int]json.RawMessage, len(input.Characters)),
	}
	for i, seed := range input.Characters {
		field := indexed("characters", i)
		if _, dup := s.Characters[seed.ID]; dup {
			vb.Fieldf(field, "duplicate character id %d", seed.ID)
			continue
		}
		character, err := entities.NewCharacter(entities.CharacterConfig{
			ID:      seed.ID,
			Name:    seed.Name,
			ClassID: seed.ClassID,
			Level:   seed.Level,
			Stats:   seed.Stats,
		})
		if err != nil {
			vb.Merge(field, err)
			continue
		}
		s.Characters[seed.ID] = character
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	summaries := make([]*CharacterSummary, 0, len(input.Characters))
	for _, seed := range input.Characters {
		character := s.Characters[seed.ID]
		p, err := profile.New(o.profileConfig(world), character)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create profile of character %d", seed.ID)
		}
		raw, err := json.Marshal(p)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal profile of character %d", seed.ID)
		}
		s.Profiles[seed.ID] = raw
		summaries = append(summaries, summarize(character, p))
	}

	out, err := o.saveRepo.Create(ctx, save.CreateInput{Save: s})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create save")
	}

	slog.InfoContext(ctx, "save created",
		"save_id", out.Save.ID,
		"characters", len(summaries))

	return &CreateSaveOutput{SaveID: out.Save.ID, Characters: summaries}, nil
}

// GetSave summarizes every character of a save
func (o *orchestrator) GetSave(ctx context.Context, input *GetSaveInput) (*GetSaveOutput, error) {
	if input == nil || input.SaveID == "" {
		return nil, errors.InvalidArgument("save ID is required")
	}

	out, err := o.saveRepo.Get(ctx, save.GetInput{ID: input.SaveID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get save %s", input.SaveID)
	}
	s := out.Save

	result := &GetSaveOutput{
		SaveID:    s.ID,
		Version:   s.Version,
		UpdatedAt: s.UpdatedAt,
	}
	if s.World != nil {
		result.Variables = s.World.Variables
	}
	for _, id := range sortedIDs(s.Characters) {
		sess, err := o.open(s, id)
		if err != nil {
			return nil, err
		}
		result.Characters = append(result.Characters, summarize(sess.character, sess.profile))
	}
	return result, nil
}

// DeleteSave removes a save
func (o *orchestrator) DeleteSave(ctx context.Context, input *DeleteSaveInput) (*DeleteSaveOutput, error) {
	if input == nil || input.SaveID == "" {
		return nil, errors.InvalidArgument("save ID is required")
	}
	if _, err := o.saveRepo.Delete(ctx, save.DeleteInput{ID: input.SaveID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete save %s", input.SaveID)
	}
	return &DeleteSaveOutput{}, nil
}

// ListTrees renders the skill tree scene of one character
func (o *orchestrator) ListTrees(ctx context.Context, input *ListTreesInput) (*ListTreesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	s, err := o.load(ctx, input.CharacterRef)
	if err != nil {
		return nil, err
	}

	trees := s.profile.VisibleTrees()
	if input.IncludeHidden {
		trees = s.profile.Trees()
	}
	l := o.learner(s)
	views := make([]*TreeView, 0, len(trees))
	for _, t := range trees {
		views = append(views, treeView(l, t))
	}

	return &ListTreesOutput{
		Character: summarize(s.character, s.profile),
		Trees:     views,
	}, nil
}

// LearnSkill learns the next level of a node. Nothing is persisted when a
// requirement or effect fails.
func (o *orchestrator) LearnSkill(ctx context.Context, input *LearnSkillInput) (*LearnSkillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.TreeKey == "" || input.NodeKey == "" {
		return nil, errors.InvalidArgument("tree key and node key are required")
	}
	s, err := o.load(ctx, input.CharacterRef)
	if err != nil {
		return nil, err
	}

	l := o.learner(s)
	if err := s.profile.Learn(ctx, *l, input.TreeKey, input.NodeKey); err != nil {
		return nil, errors.Wrapf(err, "failed to learn %s", input.NodeKey)
	}
	if err := o.persist(ctx, s); err != nil {
		return nil, err
	}

	t, _ := s.profile.Tree(input.TreeKey)
	n, _ := t.Node(input.NodeKey)
	slog.InfoContext(ctx, "skill learned",
		"save_id", input.SaveID,
		"character_id", input.CharacterID,
		"tree", input.TreeKey,
		"node", input.NodeKey,
		"level", n.CurrentLevel())

	return &LearnSkillOutput{
		Node:      nodeView(l, t, n),
		Character: summarize(s.character, s.profile),
	}, nil
}

// ForceLearn raises a node without checking or using requirements
func (o *orchestrator) ForceLearn(ctx context.Context, input *ForceLearnInput) (*ForceLearnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	s, err := o.load(ctx, input.CharacterRef)
	if err != nil {
		return nil, err
	}

	gained, err := s.profile.ForceLearn(s.character, input.TreeKey, input.NodeKey, input.Levels)
	if err != nil {
		return nil, err
	}
	if err := o.persist(ctx, s); err != nil {
		return nil, err
	}

	t, _ := s.profile.Tree(input.TreeKey)
	n, _ := t.Node(input.NodeKey)
	return &ForceLearnOutput{LevelsGained: gained, Node: nodeView(o.learner(s), t, n)}, nil
}

// UnlockTree maxes every node of a tree
func (o *orchestrator) UnlockTree(ctx context.Context, input *UnlockTreeInput) (*UnlockTreeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	s, err := o.load(ctx, input.CharacterRef)
	if err != nil {
		return nil, err
	}

	gained, err := s.profile.UnlockTree(s.character, input.TreeKey)
	if err != nil {
		return nil, err
	}
	if err := o.persist(ctx, s); err != nil {
		return nil, err
	}
	return &UnlockTreeOutput{LevelsGained: gained}, nil
}

// ResetTrees resets the trees of a scope and refunds their points
func (o *orchestrator) ResetTrees(ctx context.Context, input *ResetTreesInput) (*ResetTreesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	s, err := o.load(ctx, input.CharacterRef)
	if err != nil {
		return nil, err
	}

	var refunded int
	switch input.Scope {
	case ResetScopeTree:
		if input.TreeKey == "" {
			return nil, errors.InvalidArgument("tree key is required for a tree reset")
		}
		refunded, err = s.profile.ResetTree(s.character, input.TreeKey)
	case ResetScopeClass:
		classID := input.ClassID
		if classID == 0 {
			classID = s.character.ClassID()
		}
		refunded, err = s.profile.ResetClass(s.character, classID)
	case ResetScopeOwn:
		refunded, err = s.profile.ResetOwn(s.character)
	case ResetScopeAll:
		refunded, err = s.profile.ResetAll(s.character)
	default:
		return nil, errors.InvalidArgumentf("unknown reset scope %q", input.Scope)
	}
	if err != nil {
		return nil, err
	}
	if err := o.persist(ctx, s); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "trees reset",
		"save_id", input.SaveID,
		"character_id", input.CharacterID,
		"scope", input.Scope,
		"refunded", refunded)

	return &ResetTreesOutput{Refunded: refunded, Balances: s.profile.Balances()}, nil
}

// GrantPoints adds skill points to a pool
func (o *orchestrator) GrantPoints(ctx context.Context, input *GrantPointsInput) (*GrantPointsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Pool == "" {
		return nil, errors.InvalidArgument("pool is required")
	}
	s, err := o.load(ctx, input.CharacterRef)
	if err != nil {
		return nil, err
	}

	if err := s.profile.GrantPoints(ledger.Key(input.Pool), input.Points); err != nil {
		return nil, err
	}
	if err := o.persist(ctx, s); err != nil {
		return nil, err
	}
	return &GrantPointsOutput{Balances: s.profile.Balances()}, nil
}

// AttachTree attaches a standalone tree or restores a suspended one
func (o *orchestrator) AttachTree(ctx context.Context, input *AttachTreeInput) (*AttachTreeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	s, err := o.load(ctx, input.CharacterRef)
	if err != nil {
		return nil, err
	}

	t, err := s.profile.AttachTree(s.character, input.TreeKey)
	if err != nil {
		return nil, err
	}
	if err := o.persist(ctx, s); err != nil {
		return nil, err
	}
	return &AttachTreeOutput{Tree: treeView(o.learner(s), t)}, nil
}

// DetachTree removes a tree, optionally keeping its progress
func (o *orchestrator) DetachTree(ctx context.Context, input *DetachTreeInput) (*DetachTreeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	s, err := o.load(ctx, input.CharacterRef)
	if err != nil {
		return nil, err
	}

	if err := s.profile.DetachTree(s.character, input.TreeKey, input.Preserve); err != nil {
		return nil, err
	}
	if err := o.persist(ctx, s); err != nil {
		return nil, err
	}
	return &DetachTreeOutput{Character: summarize(s.character, s.profile)}, nil
}

// ChangeClass switches the character's class and swaps the class trees
func (o *orchestrator) ChangeClass(ctx context.Context, input *ChangeClassInput) (*ChangeClassOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	s, err := o.load(ctx, input.CharacterRef)
	if err != nil {
		return nil, err
	}

	previous, err := s.character.ChangeClass(input.ClassID)
	if err != nil {
		return nil, err
	}
	if previous != input.ClassID {
		if err := s.profile.SwitchClass(s.character, previous, input.ClassID); err != nil {
			return nil, errors.Wrapf(err, "failed to switch class %d to %d", previous, input.ClassID)
		}
		if err := o.persist(ctx, s); err != nil {
			return nil, err
		}
		slog.InfoContext(ctx, "class changed",
			"save_id", input.SaveID,
			"character_id", input.CharacterID,
			"from", previous,
			"to", input.ClassID)
	}

	return &ChangeClassOutput{
		PreviousClassID: previous,
		Character:       summarize(s.character, s.profile),
	}, nil
}

// LevelUp raises the character level and grants the per-level points
func (o *orchestrator) LevelUp(ctx context.Context, input *LevelUpInput) (*LevelUpOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	s, err := o.load(ctx, input.CharacterRef)
	if err != nil {
		return nil, err
	}

	if err := s.character.LevelUp(input.Levels); err != nil {
		return nil, err
	}
	granted, err := s.profile.OnLevelUp(s.character, input.Levels)
	if err != nil {
		return nil, err
	}
	if err := o.persist(ctx, s); err != nil {
		return nil, err
	}

	return &LevelUpOutput{
		PointsGranted: granted,
		Character:     summarize(s.character, s.profile),
	}, nil
}
