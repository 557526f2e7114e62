// Package v1alpha1 handles the skill progression grpc service interface
package v1alpha1

import (
	"context"

	skilltreesv1alpha1 "github.com/KirkDiggler/rpg-skilltrees/gen/go/skilltrees/v1alpha1"
	"github.com/KirkDiggler/rpg-skilltrees/internal/errors"
	"github.com/KirkDiggler/rpg-skilltrees/internal/ledger"
	"github.com/KirkDiggler/rpg-skilltrees/internal/orchestrators/progression"
	"github.com/KirkDiggler/rpg-skilltrees/internal/skilltree"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	ProgressionService progression.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.ProgressionService == nil {
		return errors.InvalidArgument("progression service is required")
	}
	return nil
}

// Handler implements the skill progression gRPC service
type Handler struct {
	skilltreesv1alpha1.UnimplementedProgressionServiceServer
	progressionService progression.Service
}

var _ skilltreesv1alpha1.ProgressionServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		progressionService: cfg.ProgressionService,
	}, nil
}

type characterRequest interface {
	GetSaveId() string
	GetCharacterId() int32
}

func toRef(req characterRequest) (progression.CharacterRef, error) {
	if req.GetSaveId() == "" {
		return progression.CharacterRef{}, errors.InvalidArgument("save_id is required")
	}
	if req.GetCharacterId() <= 0 {
		return progression.CharacterRef{}, errors.InvalidArgument("character_id must be positive")
	}
	return progression.CharacterRef{
		SaveID:      req.GetSaveId(),
		CharacterID: int(req.GetCharacterId()),
	}, nil
}

// CreateSave starts a new save from a party definition
func (h *Handler) CreateSave(
	ctx context.Context,
	req *skilltreesv1alpha1.CreateSaveRequest,
) (*skilltreesv1alpha1.CreateSaveResponse, error) {
	if len(req.GetCharacters()) == 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("characters are required"))
	}

	input := &progression.CreateSaveInput{
		Characters: make([]progression.CharacterSeed, 0, len(req.GetCharacters())),
	}
	for _, seed := range req.GetCharacters() {
		if seed == nil {
			return nil, errors.ToGRPCError(errors.InvalidArgument("characters must not contain empty entries"))
		}
		var stats map[skilltree.Stat]int
		if len(seed.Stats) > 0 {
			stats = make(map[skilltree.Stat]int, len(seed.Stats))
			for stat, value := range seed.Stats {
				stats[skilltree.Stat(stat)] = int(value)
			}
		}
		input.Characters = append(input.Characters, progression.CharacterSeed{
			ID:      int(seed.Id),
			Name:    seed.Name,
			ClassID: int(seed.ClassId),
			Level:   int(seed.Level),
			Stats:   stats,
		})
	}
	for _, item := range req.GetItems() {
		if item == nil {
			continue
		}
		input.Items = append(input.Items, progression.ItemStack{
			Kind:   skilltree.ItemKind(item.Kind),
			ID:     int(item.Id),
			Amount: int(item.Amount),
		})
	}
	if len(req.GetCurrency()) > 0 {
		input.Currency = make(map[int]int, len(req.GetCurrency()))
		for classID, amount := range req.GetCurrency() {
			input.Currency[int(classID)] = int(amount)
		}
	}

	output, err := h.progressionService.CreateSave(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &skilltreesv1alpha1.CreateSaveResponse{
		SaveId:     output.SaveID,
		Characters: convertCharacters(output.Characters),
	}, nil
}

// GetSave returns the progression summary of every character in a save
func (h *Handler) GetSave(
	ctx context.Context,
	req *skilltreesv1alpha1.GetSaveRequest,
) (*skilltreesv1alpha1.GetSaveResponse, error) {
	if req.GetSaveId() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("save_id is required"))
	}

	output, err := h.progressionService.GetSave(ctx, &progression.GetSaveInput{
		SaveID: req.GetSaveId(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &skilltreesv1alpha1.GetSaveResponse{
		SaveId:     output.SaveID,
		Version:    output.Version,
		UpdatedAt:  output.UpdatedAt.Unix(),
		Characters: convertCharacters(output.Characters),
	}
	if len(output.Variables) > 0 {
		resp.Variables = make(map[int32]int32, len(output.Variables))
		for id, value := range output.Variables {
			resp.Variables[int32(id)] = int32(value)
		}
	}
	return resp, nil
}

// DeleteSave removes a save
func (h *Handler) DeleteSave(
	ctx context.Context,
	req *skilltreesv1alpha1.DeleteSaveRequest,
) (*skilltreesv1alpha1.DeleteSaveResponse, error) {
	if req.GetSaveId() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("save_id is required"))
	}

	if _, err := h.progressionService.DeleteSave(ctx, &progression.DeleteSaveInput{
		SaveID: req.GetSaveId(),
	}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &skilltreesv1alpha1.DeleteSaveResponse{}, nil
}

// ListTrees renders the skill tree scene of a character
func (h *Handler) ListTrees(
	ctx context.Context,
	req *skilltreesv1alpha1.ListTreesRequest,
) (*skilltreesv1alpha1.ListTreesResponse, error) {
	ref, err := toRef(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.progressionService.ListTrees(ctx, &progression.ListTreesInput{
		CharacterRef:  ref,
		IncludeHidden: req.GetIncludeHidden(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	trees := make([]*skilltreesv1alpha1.Tree, 0, len(output.Trees))
	for _, tree := range output.Trees {
		trees = append(trees, convertTree(tree))
	}

	return &skilltreesv1alpha1.ListTreesResponse{
		Character: convertCharacter(output.Character),
		Trees:     trees,
	}, nil
}

// LearnSkill buys the next level of a node
func (h *Handler) LearnSkill(
	ctx context.Context,
	req *skilltreesv1alpha1.LearnSkillRequest,
) (*skilltreesv1alpha1.LearnSkillResponse, error) {
	ref, err := toRef(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.GetTreeKey() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("tree_key is required"))
	}
	if req.GetNodeKey() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("node_key is required"))
	}

	output, err := h.progressionService.LearnSkill(ctx, &progression.LearnSkillInput{
		CharacterRef: ref,
		TreeKey:      req.GetTreeKey(),
		NodeKey:      req.GetNodeKey(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &skilltreesv1alpha1.LearnSkillResponse{
		Node:      convertNode(output.Node),
		Character: convertCharacter(output.Character),
	}, nil
}

// ForceLearn raises a node without checking or paying requirements
func (h *Handler) ForceLearn(
	ctx context.Context,
	req *skilltreesv1alpha1.ForceLearnRequest,
) (*skilltreesv1alpha1.ForceLearnResponse, error) {
	ref, err := toRef(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.GetTreeKey() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("tree_key is required"))
	}
	if req.GetNodeKey() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("node_key is required"))
	}
	if req.GetLevels() <= 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("levels must be positive"))
	}

	output, err := h.progressionService.ForceLearn(ctx, &progression.ForceLearnInput{
		CharacterRef: ref,
		TreeKey:      req.GetTreeKey(),
		NodeKey:      req.GetNodeKey(),
		Levels:       int(req.GetLevels()),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &skilltreesv1alpha1.ForceLearnResponse{
		LevelsGained: int32(output.LevelsGained),
		Node:         convertNode(output.Node),
	}, nil
}

// UnlockTree raises every node of a tree to its maximum level
func (h *Handler) UnlockTree(
	ctx context.Context,
	req *skilltreesv1alpha1.UnlockTreeRequest,
) (*skilltreesv1alpha1.UnlockTreeResponse, error) {
	ref, err := toRef(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.GetTreeKey() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("tree_key is required"))
	}

	output, err := h.progressionService.UnlockTree(ctx, &progression.UnlockTreeInput{
		CharacterRef: ref,
		TreeKey:      req.GetTreeKey(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &skilltreesv1alpha1.UnlockTreeResponse{LevelsGained: int32(output.LevelsGained)}, nil
}

// ResetTrees refunds and clears the trees of the requested scope
func (h *Handler) ResetTrees(
	ctx context.Context,
	req *skilltreesv1alpha1.ResetTreesRequest,
) (*skilltreesv1alpha1.ResetTreesResponse, error) {
	ref, err := toRef(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	scope := progression.ResetScope(req.GetScope())
	switch scope {
	case progression.ResetScopeTree:
		if req.GetTreeKey() == "" {
			return nil, errors.ToGRPCError(errors.InvalidArgument("tree_key is required for the tree scope"))
		}
	case progression.ResetScopeClass, progression.ResetScopeOwn, progression.ResetScopeAll:
	case "":
		return nil, errors.ToGRPCError(errors.InvalidArgument("scope is required"))
	default:
		return nil, errors.ToGRPCError(errors.InvalidArgumentf("unknown scope %q", req.GetScope()))
	}

	output, err := h.progressionService.ResetTrees(ctx, &progression.ResetTreesInput{
		CharacterRef: ref,
		Scope:        scope,
		TreeKey:      req.GetTreeKey(),
		ClassID:      int(req.GetClassId()),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &skilltreesv1alpha1.ResetTreesResponse{
		Refunded: int32(output.Refunded),
		Balances: convertBalances(output.Balances),
	}, nil
}

// GrantPoints adds skill points to a pool
func (h *Handler) GrantPoints(
	ctx context.Context,
	req *skilltreesv1alpha1.GrantPointsRequest,
) (*skilltreesv1alpha1.GrantPointsResponse, error) {
	ref, err := toRef(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.GetPool() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("pool is required"))
	}

	output, err := h.progressionService.GrantPoints(ctx, &progression.GrantPointsInput{
		CharacterRef: ref,
		Pool:         req.GetPool(),
		Points:       int(req.GetPoints()),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &skilltreesv1alpha1.GrantPointsResponse{Balances: convertBalances(output.Balances)}, nil
}

// AttachTree adds a standalone or suspended tree to a character
func (h *Handler) AttachTree(
	ctx context.Context,
	req *skilltreesv1alpha1.AttachTreeRequest,
) (*skilltreesv1alpha1.AttachTreeResponse, error) {
	ref, err := toRef(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.GetTreeKey() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("tree_key is required"))
	}

	output, err := h.progressionService.AttachTree(ctx, &progression.AttachTreeInput{
		CharacterRef: ref,
		TreeKey:      req.GetTreeKey(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &skilltreesv1alpha1.AttachTreeResponse{Tree: convertTree(output.Tree)}, nil
}

// DetachTree removes a tree from a character
func (h *Handler) DetachTree(
	ctx context.Context,
	req *skilltreesv1alpha1.DetachTreeRequest,
) (*skilltreesv1alpha1.DetachTreeResponse, error) {
	ref, err := toRef(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.GetTreeKey() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("tree_key is required"))
	}

	output, err := h.progressionService.DetachTree(ctx, &progression.DetachTreeInput{
		CharacterRef: ref,
		TreeKey:      req.GetTreeKey(),
		Preserve:     req.GetPreserve(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &skilltreesv1alpha1.DetachTreeResponse{Character: convertCharacter(output.Character)}, nil
}

// ChangeClass moves a character to another class
func (h *Handler) ChangeClass(
	ctx context.Context,
	req *skilltreesv1alpha1.ChangeClassRequest,
) (*skilltreesv1alpha1.ChangeClassResponse, error) {
	ref, err := toRef(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.GetClassId() <= 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("class_id must be positive"))
	}

	output, err := h.progressionService.ChangeClass(ctx, &progression.ChangeClassInput{
		CharacterRef: ref,
		ClassID:      int(req.GetClassId()),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &skilltreesv1alpha1.ChangeClassResponse{
		PreviousClassId: int32(output.PreviousClassID),
		Character:       convertCharacter(output.Character),
	}, nil
}

// LevelUp raises a character's level and grants the level-up points
func (h *Handler) LevelUp(
	ctx context.Context,
	req *skilltreesv1alpha1.LevelUpRequest,
) (*skilltreesv1alpha1.LevelUpResponse, error) {
	ref, err := toRef(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.GetLevels() <= 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("levels must be positive"))
	}

	output, err := h.progressionService.LevelUp(ctx, &progression.LevelUpInput{
		CharacterRef: ref,
		Levels:       int(req.GetLevels()),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &skilltreesv1alpha1.LevelUpResponse{
		PointsGranted: int32(output.PointsGranted),
		Character:     convertCharacter(output.Character),
	}, nil
}

func convertCharacters(summaries []*progression.CharacterSummary) []*skilltreesv1alpha1.Character {
	characters := make([]*skilltreesv1alpha1.Character, 0, len(summaries))
	for _, summary := range summaries {
		characters = append(characters, convertCharacter(summary))
	}
	return characters
}

func convertCharacter(summary *progression.CharacterSummary) *skilltreesv1alpha1.Character {
	if summary == nil {
		return nil
	}

	abilities := make([]int32, 0, len(summary.Abilities))
	for _, ability := range summary.Abilities {
		abilities = append(abilities, int32(ability))
	}

	return &skilltreesv1alpha1.Character{
		Id:        int32(summary.ID),
		Name:      summary.Name,
		ClassId:   int32(summary.ClassID),
		Level:     int32(summary.Level),
		Abilities: abilities,
		Balances:  convertBalances(summary.Balances),
		Trees:     summary.Trees,
		Suspended: summary.Suspended,
	}
}

func convertBalances(balances map[ledger.Key]int) map[string]int32 {
	if balances == nil {
		return nil
	}
	out := make(map[string]int32, len(balances))
	for key, balance := range balances {
		out[string(key)] = int32(balance)
	}
	return out
}

func convertTree(view *progression.TreeView) *skilltreesv1alpha1.Tree {
	if view == nil {
		return nil
	}

	slots := make([]*skilltreesv1alpha1.Slot, 0, len(view.Slots))
	for _, slot := range view.Slots {
		if slot == nil {
			slots = append(slots, &skilltreesv1alpha1.Slot{})
			continue
		}
		slots = append(slots, &skilltreesv1alpha1.Slot{
			Kind:    string(slot.Kind),
			Icon:    int32(slot.Icon),
			Enabled: slot.Enabled,
			Node:    convertNode(slot.Node),
		})
	}

	return &skilltreesv1alpha1.Tree{
		Key:         view.Key,
		Name:        view.Name,
		Scope:       string(view.Scope),
		Visible:     view.Visible,
		Columns:     int32(view.Columns),
		Rows:        int32(view.Rows),
		SpentPoints: int32(view.SpentPoints),
		Balance:     int32(view.Balance),
		Slots:       slots,
	}
}

func convertNode(view *progression.NodeView) *skilltreesv1alpha1.Node {
	if view == nil {
		return nil
	}

	var requirements []*skilltreesv1alpha1.Requirement
	for _, req := range view.Requirements {
		requirements = append(requirements, &skilltreesv1alpha1.Requirement{
			Type:        string(req.Type),
			Description: req.Description,
			Met:         req.Met,
		})
	}

	return &skilltreesv1alpha1.Node{
		Key:          view.Key,
		Name:         view.Name,
		Level:        int32(view.Level),
		MaxLevel:     int32(view.MaxLevel),
		State:        view.State,
		Ability:      int32(view.Ability),
		NextAbility:  int32(view.NextAbility),
		Refund:       int32(view.Refund),
		Requirements: requirements,
	}
}
