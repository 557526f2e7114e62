package progression

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-skilltrees/internal/ledger"
	"github.com/KirkDiggler/rpg-skilltrees/internal/skilltree"
)

//go:generate mockgen -destination=mock/mock_service.go -package=progressionmock github.com/KirkDiggler/rpg-skilltrees/internal/orchestrators/progression Service

// Service defines the skill progression use cases. Every call that mutates
// loads the save, applies the change to one character and persists the save.
type Service interface {
	// Save lifecycle
	CreateSave(ctx context.Context, input *CreateSaveInput) (*CreateSaveOutput, error)
	GetSave(ctx context.Context, input *GetSaveInput) (*GetSaveOutput, error)
	DeleteSave(ctx context.Context, input *DeleteSaveInput) (*DeleteSaveOutput, error)

	// Skill tree scene
	ListTrees(ctx context.Context, input *ListTreesInput) (*ListTreesOutput, error)
	LearnSkill(ctx context.Context, input *LearnSkillInput) (*LearnSkillOutput, error)

	// Script commands
	ForceLearn(ctx context.Context, input *ForceLearnInput) (*ForceLearnOutput, error)
	UnlockTree(ctx context.Context, input *UnlockTreeInput) (*UnlockTreeOutput, error)
	ResetTrees(ctx context.Context, input *ResetTreesInput) (*ResetTreesOutput, error)
	GrantPoints(ctx context.Context, input *GrantPointsInput) (*GrantPointsOutput, error)
	AttachTree(ctx context.Context, input *AttachTreeInput) (*AttachTreeOutput, error)
	DetachTree(ctx context.Context, input *DetachTreeInput) (*DetachTreeOutput, error)

	// Character hooks
	ChangeClass(ctx context.Context, input *ChangeClassInput) (*ChangeClassOutput, error)
	LevelUp(ctx context.Context, input *LevelUpInput) (*LevelUpOutput, error)
}

// CharacterSeed describes a character of a new save.
type CharacterSeed struct {
	ID      int                    `json:"id"`
	Name    string                 `json:"name"`
	ClassID int                    `json:"classId"`
	Level   int                    `json:"level"`
	Stats   map[skilltree.Stat]int `json:"stats,omitempty"`
}

// ItemStack is an amount of one inventory item.
type ItemStack struct {
	Kind   skilltree.ItemKind `json:"kind"`
	ID     int                `json:"id"`
	Amount int                `json:"amount"`
}

// CreateSaveInput defines the input for creating a save
type CreateSaveInput struct {
	Characters []CharacterSeed `json:"characters"`
	Items      []ItemStack     `json:"items,omitempty"`
	// Currency seeds the per-class external currency.
	Currency map[int]int `json:"currency,omitempty"`
}

// CreateSaveOutput defines the output for creating a save
type CreateSaveOutput struct {
	SaveID     string              `json:"saveId"`
	Characters []*CharacterSummary `json:"characters"`
}

// GetSaveInput defines the input for reading a save
type GetSaveInput struct {
	SaveID string `json:"saveId"`
}

// GetSaveOutput defines the output for reading a save
type GetSaveOutput struct {
	SaveID     string              `json:"saveId"`
	Version    int64               `json:"version"`
	UpdatedAt  time.Time           `json:"updatedAt"`
	Characters []*CharacterSummary `json:"characters"`
	Variables  map[int]int         `json:"variables,omitempty"`
}

// DeleteSaveInput defines the input for deleting a save
type DeleteSaveInput struct {
	SaveID string `json:"saveId"`
}

// DeleteSaveOutput defines the output for deleting a save
type DeleteSaveOutput struct{}

// CharacterSummary is the progression summary of one character.
type CharacterSummary struct {
	ID        int                   `json:"id"`
	Name      string                `json:"name"`
	ClassID   int                   `json:"classId"`
	Level     int                   `json:"level"`
	Abilities []skilltree.AbilityID `json:"abilities"`
	Balances  map[ledger.Key]int    `json:"balances"`
	Trees     []string              `json:"trees"`
	Suspended []string              `json:"suspended,omitempty"`
}

// CharacterRef addresses one character of a save.
type CharacterRef struct {
	SaveID      string `json:"saveId"`
	CharacterID int    `json:"characterId"`
}

// ListTreesInput defines the input for rendering the skill tree scene
type ListTreesInput struct {
	CharacterRef
	IncludeHidden bool `json:"includeHidden,omitempty"`
}

// ListTreesOutput defines the output for rendering the skill tree scene
type ListTreesOutput struct {
	Character *CharacterSummary `json:"character"`
	Trees     []*TreeView       `json:"trees"`
}

// TreeView is a tree as the scene draws it.
type TreeView struct {
	Key         string              `json:"key"`
	Name        string              `json:"name"`
	Scope       skilltree.ScopeKind `json:"scope"`
	Visible     bool                `json:"visible"`
	Columns     int                 `json:"columns"`
	Rows        int                 `json:"rows"`
	SpentPoints int                 `json:"spentPoints"`
	// Balance is what the tree's pool can still spend, -1 when the pool
	// cannot be resolved.
	Balance int         `json:"balance"`
	Slots   []*SlotView `json:"slots"`
}

// SlotView is one grid cell. Empty cells have an empty Kind.
type SlotView struct {
	Kind    skilltree.SlotKind `json:"kind,omitempty"`
	Icon    int                `json:"icon,omitempty"`
	Enabled bool               `json:"enabled,omitempty"`
	Node    *NodeView          `json:"node,omitempty"`
}

// NodeView is the detail panel of a node.
type NodeView struct {
	Key          string              `json:"key"`
	Name         string              `json:"name"`
	Level        int                 `json:"level"`
	MaxLevel     int                 `json:"maxLevel"`
	State        string              `json:"state"`
	Ability      skilltree.AbilityID `json:"ability,omitempty"`
	NextAbility  skilltree.AbilityID `json:"nextAbility,omitempty"`
	Refund       int                 `json:"refund"`
	Requirements []*RequirementView  `json:"requirements,omitempty"`
}

// RequirementView is one line of the requirement list.
type RequirementView struct {
	Type        skilltree.RequirementType `json:"type"`
	Description string                    `json:"description"`
	Met         bool                      `json:"met"`
}

// LearnSkillInput defines the input for learning one node level
type LearnSkillInput struct {
	CharacterRef
	TreeKey string `json:"treeKey"`
	NodeKey string `json:"nodeKey"`
}

// LearnSkillOutput defines the output for learning one node level
type LearnSkillOutput struct {
	Node      *NodeView         `json:"node"`
	Character *CharacterSummary `json:"character"`
}

// ForceLearnInput defines the input for raising a node without requirements
type ForceLearnInput struct {
	CharacterRef
	TreeKey string `json:"treeKey"`
	NodeKey string `json:"nodeKey"`
	Levels  int    `json:"levels"`
}

// ForceLearnOutput defines the output for raising a node without requirements
type ForceLearnOutput struct {
	LevelsGained int       `json:"levelsGained"`
	Node         *NodeView `json:"node"`
}

// UnlockTreeInput defines the input for maxing a whole tree
type UnlockTreeInput struct {
	CharacterRef
	TreeKey string `json:"treeKey"`
}

// UnlockTreeOutput defines the output for maxing a whole tree
type UnlockTreeOutput struct {
	LevelsGained int `json:"levelsGained"`
}

// ResetScope selects the trees a reset covers.
type ResetScope string

// Reset scopes
const (
	ResetScopeTree  ResetScope = "tree"
	ResetScopeClass ResetScope = "class"
	ResetScopeOwn   ResetScope = "own"
	ResetScopeAll   ResetScope = "all"
)

// ResetTreesInput defines the input for resetting trees. TreeKey is used by
// the tree scope and ClassID by the class scope; ClassID 0 means the
// character's current class.
type ResetTreesInput struct {
	CharacterRef
	Scope   ResetScope `json:"scope"`
	TreeKey string     `json:"treeKey,omitempty"`
	ClassID int        `json:"classId,omitempty"`
}

// ResetTreesOutput defines the output for resetting trees
type ResetTreesOutput struct {
	Refunded int                `json:"refunded"`
	Balances map[ledger.Key]int `json:"balances"`
}

// GrantPointsInput defines the input for granting skill points. Pool is a
// pool key: "0", a class id or a tree key.
type GrantPointsInput struct {
	CharacterRef
	Pool   string `json:"pool"`
	Points int    `json:"points"`
}

// GrantPointsOutput defines the output for granting skill points
type GrantPointsOutput struct {
	Balances map[ledger.Key]int `json:"balances"`
}

// AttachTreeInput defines the input for attaching a standalone or suspended tree
type AttachTreeInput struct {
	CharacterRef
	TreeKey string `json:"treeKey"`
}

// AttachTreeOutput defines the output for attaching a tree
type AttachTreeOutput struct {
	Tree *TreeView `json:"tree"`
}

// DetachTreeInput defines the input for detaching a tree
type DetachTreeInput struct {
	CharacterRef
	TreeKey string `json:"treeKey"`
	// Preserve keeps the tree's progress for a later attach.
	Preserve bool `json:"preserve,omitempty"`
}

// DetachTreeOutput defines the output for detaching a tree
type DetachTreeOutput struct {
	Character *CharacterSummary `json:"character"`
}

// ChangeClassInput defines the input for a class change
type ChangeClassInput struct {
	CharacterRef
	ClassID int `json:"classId"`
}

// ChangeClassOutput defines the output for a class change
type ChangeClassOutput struct {
	PreviousClassID int               `json:"previousClassId"`
	Character       *CharacterSummary `json:"character"`
}

// LevelUpInput defines the input for a character level-up
type LevelUpInput struct {
	CharacterRef
	Levels int `json:"levels"`
}

// LevelUpOutput defines the output for a character level-up
type LevelUpOutput struct {
	PointsGranted int               `json:"pointsGranted"`
	Character     *CharacterSummary `json:"character"`
}
