package skilltree

import (
	"github.com/KirkDiggler/rpg-skilltrees/internal/errors"
)

// DefaultColumns is the grid width used when a tree does not set one.
const DefaultColumns = 7

// ScopeKind says who a tree belongs to.
type ScopeKind string

// Tree scopes
const (
	ScopeGlobal    ScopeKind = "global"
	ScopeClass     ScopeKind = "class"
	ScopeCharacter ScopeKind = "character"
)

// TreeConfig defines a tree template.
type TreeConfig struct {
	Name        string
	Key         string
	ClassID     int
	CharacterID int
	Columns     int
	// Slots is the grid in row-major order; nil entries are empty cells.
	Slots []Slot
}

// Tree is a named grid of nodes and connectors with its own spent points
// counter.
type Tree struct {
	name        string
	key         string
	classID     int
	characterID int
	columns     int
	visible     bool
	slots       []Slot
	spent       int
}

// NewTree validates cfg and creates a visible tree with no points spent.
func NewTree(cfg TreeConfig) (*Tree, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("key", cfg.Key, vb)
	errors.ValidateRequired("name", cfg.Name, vb)
	if cfg.ClassID < 0 || cfg.CharacterID < 0 {
		vb.Field("scope", "ids cannot be negative")
	}
	if cfg.ClassID != 0 && cfg.CharacterID != 0 {
		vb.Field("scope", "a tree can be bound to a class or a character, not both")
	}
	if cfg.Columns < 0 {
		vb.Fieldf("columns", "must be positive, got %d", cfg.Columns)
	}
	seen := make(map[string]bool)
	for _, slot := range cfg.Slots {
		node, ok := slot.(*Node)
		if !ok {
			continue
		}
		if seen[node.key] {
			vb.Fieldf("slots", "node %s appears twice", node.key)
		}
		seen[node.key] = true
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	columns := cfg.Columns
	if columns == 0 {
		columns = DefaultColumns
	}

	t := &Tree{
		name:        cfg.Name,
		key:         cfg.Key,
		classID:     cfg.ClassID,
		characterID: cfg.CharacterID,
		columns:     columns,
		visible:     true,
		slots:       make([]Slot, len(cfg.Slots)),
	}
	for i, slot := range cfg.Slots {
		if slot != nil {
			t.slots[i] = slot.cloneSlot()
		}
	}
	return t, nil
}

// Name returns the display name.
func (t *Tree) Name() string { return t.name }

// Key returns the stable symbolic key.
func (t *Tree) Key() string { return t.key }

// ClassID returns the bound class, 0 when not class bound.
func (t *Tree) ClassID() int { return t.classID }

// CharacterID returns the bound character, 0 when not character bound.
func (t *Tree) CharacterID() int { return t.characterID }

// Scope reports who the tree belongs to.
func (t *Tree) Scope() ScopeKind {
	switch {
	case t.classID != 0:
		return ScopeClass
	case t.characterID != 0:
		return ScopeCharacter
	default:
		return ScopeGlobal
	}
}

// Columns returns the grid width.
func (t *Tree) Columns() int { return t.columns }

// Rows returns the number of grid rows, counting a partial last row.
func (t *Tree) Rows() int {
	return (len(t.slots) + t.columns - 1) / t.columns
}

// Visible reports whether the tree is shown.
func (t *Tree) Visible() bool { return t.visible }

// SetVisible shows or hides the tree.
func (t *Tree) SetVisible(visible bool) { t.visible = visible }

// SpentPoints returns the points spent inside this tree.
func (t *Tree) SpentPoints() int { return t.spent }

// Slots returns the grid. The slice is a copy; the slots are live.
func (t *Tree) Slots() []Slot {
	return append([]Slot(nil), t.slots...)
}

// Nodes returns every node in grid order.
func (t *Tree) Nodes() []*Node {
	var nodes []*Node
	for _, slot := range t.slots {
		if node, ok := slot.(*Node); ok {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

// Node finds a node by key.
func (t *Tree) Node(key string) (*Node, bool) {
	for _, node := range t.Nodes() {
		if node.key == key {
			return node, true
		}
	}
	return nil, false
}

// Forget revokes every held ability, keeping levels and spent points.
func (t *Tree) Forget(actor Actor) {
	for _, node := range t.Nodes() {
		node.Forget(actor)
	}
}

// Relearn grants every held ability again.
func (t *Tree) Relearn(actor Actor) {
	for _, node := range t.Nodes() {
		node.Relearn(actor)
	}
}

// UnlockAll raises every node to its max level without requirements.
func (t *Tree) UnlockAll(actor Actor) int {
	gained := 0
	for _, node := range t.Nodes() {
		gained += node.ForceLevelUp(actor, node.MaxLevel())
	}
	return gained
}

// Reset drops every node to level 0, zeroes the spent points and returns the
// total refund. The refund never exceeds the spent points, so forced levels
// give nothing back. An untouched tree refunds 0.
func (t *Tree) Reset(actor Actor) int {
	refund := 0
	for _, node := range t.Nodes() {
		if node.level > 0 {
			refund += node.Reset(actor)
		}
	}
	refund = min(refund, t.spent)
	t.spent = 0
	return refund
}

// ResetNode drops one node to level 0 and returns its refund, capped at the
// tree's spent points. Spent points go down by the refund.
func (t *Tree) ResetNode(actor Actor, key string) (int, error) {
	node, ok := t.Node(key)
	if !ok {
		return 0, errors.NotFoundf("node %s not found in tree %s", key, t.key)
	}
	refund := min(node.Reset(actor), t.spent)
	t.spent -= refund
	return refund, nil
}

// Clone returns a deep copy of the tree, its nodes and their definitions.
func (t *Tree) Clone() *Tree {
	c := *t
	c.slots = make([]Slot, len(t.slots))
	for i, slot := range t.slots {
		if slot != nil {
			c.slots[i] = slot.cloneSlot()
		}
	}
	return &c
}
