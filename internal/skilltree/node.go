package skilltree

import (
	"context"

	"github.com/KirkDiggler/rpg-skilltrees/internal/errors"
)

// SlotKind is the discriminator of a grid slot.
type SlotKind string

// Slot kinds
const (
	SlotNode      SlotKind = "node"
	SlotConnector SlotKind = "connector"
)

// Slot is one occupied cell of a tree grid. Empty cells are nil.
type Slot interface {
	Kind() SlotKind
	IconRef() int
	IsEnabled(l *Learner, t *Tree) bool
	cloneSlot() Slot
}

// NodeState is the derived progression state of a node.
type NodeState int

// Node states
const (
	NodeLocked NodeState = iota
	NodeAvailable
	NodePartial
	NodeMaxed
)

// String returns the state name.
func (s NodeState) String() string {
	switch s {
	case NodeAvailable:
		return "available"
	case NodePartial:
		return "partial"
	case NodeMaxed:
		return "maxed"
	default:
		return "locked"
	}
}

// NodeConfig defines a node template.
type NodeConfig struct {
	Key  string
	Name string
	Icon int
	// Abilities holds one ability per level.
	Abilities []AbilityID
	// Requirements[i] gates the step from level i to level i+1. Levels past
	// the end of the slice have no requirement set and can only be forced.
	Requirements [][]Requirement
	// Effects[i] fires after the step from level i to level i+1.
	Effects [][]Effect
}

// Node is one progression unit. Its level is per-character state; templates
// are cloned before use.
type Node struct {
	key          string
	name         string
	icon         int
	abilities    []AbilityID
	requirements [][]Requirement
	effects      [][]Effect

	level    int
	learning bool
}

// NewNode validates cfg and creates a node at level 0.
func NewNode(cfg NodeConfig) (*Node, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("key", cfg.Key, vb)
	if len(cfg.Abilities) == 0 {
		vb.Field("abilities", "must have at least one level")
	}
	for i, id := range cfg.Abilities {
		if id < 1 {
			vb.Fieldf("abilities", "level %d has invalid ability %d", i+1, id)
		}
	}
	if len(cfg.Requirements) > len(cfg.Abilities) {
		vb.Fieldf("requirements", "has %d levels but the node has %d", len(cfg.Requirements), len(cfg.Abilities))
	}
	if len(cfg.Effects) > len(cfg.Abilities) {
		vb.Fieldf("effects", "has %d levels but the node has %d", len(cfg.Effects), len(cfg.Abilities))
	}
	for i, set := range cfg.Requirements {
		for _, req := range set {
			if req == nil {
				vb.Fieldf("requirements", "level %d has a nil requirement", i+1)
			}
		}
	}
	for i, set := range cfg.Effects {
		for _, eff := range set {
			if eff == nil {
				vb.Fieldf("effects", "level %d has a nil effect", i+1)
			}
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	n := &Node{
		key:       cfg.Key,
		name:      cfg.Name,
		icon:      cfg.Icon,
		abilities: append([]AbilityID(nil), cfg.Abilities...),
	}
	n.requirements = cloneRequirementSets(cfg.Requirements)
	n.effects = cloneEffectSets(cfg.Effects)
	return n, nil
}

// Key returns the stable symbolic key.
func (n *Node) Key() string { return n.key }

// Name returns the display name, falling back to the key.
func (n *Node) Name() string {
	if n.name == "" {
		return n.key
	}
	return n.name
}

// Kind implements Slot.
func (n *Node) Kind() SlotKind { return SlotNode }

// IconRef implements Slot.
func (n *Node) IconRef() int { return n.icon }

// Abilities returns a copy of the ability levels.
func (n *Node) Abilities() []AbilityID {
	return append([]AbilityID(nil), n.abilities...)
}

// CurrentLevel returns the level reached, 0 when not learned.
func (n *Node) CurrentLevel() int { return n.level }

// MaxLevel returns the number of levels.
func (n *Node) MaxLevel() int { return len(n.abilities) }

// IsMaxed reports whether the node cannot gain another level.
func (n *Node) IsMaxed() bool { return n.level >= len(n.abilities) }

// CurrentAbility returns the ability held at the current level.
func (n *Node) CurrentAbility() (AbilityID, bool) {
	if n.level == 0 {
		return 0, false
	}
	return n.abilities[n.level-1], true
}

// RequirementsForNextLevel returns the requirement set gating the next level,
// or nil when the node is maxed or the level has no set.
func (n *Node) RequirementsForNextLevel() []Requirement {
	if n.IsMaxed() || n.level >= len(n.requirements) {
		return nil
	}
	return n.requirements[n.level]
}

// EffectsForNextLevel returns the effects fired by the next level, or nil.
func (n *Node) EffectsForNextLevel() []Effect {
	if n.IsMaxed() || n.level >= len(n.effects) {
		return nil
	}
	return n.effects[n.level]
}

// IsAvailableToLearn reports whether every requirement of the next level is
// met. Every requirement is evaluated; none of them commits anything.
func (n *Node) IsAvailableToLearn(l *Learner, t *Tree) bool {
	if n.IsMaxed() || n.level >= len(n.requirements) {
		return false
	}
	met := true
	for _, req := range n.requirements[n.level] {
		if !req.Meets(l, t) {
			met = false
		}
	}
	return met
}

// IsEnabled implements Slot.
func (n *Node) IsEnabled(l *Learner, t *Tree) bool {
	return n.level > 0 || n.IsAvailableToLearn(l, t)
}

// State derives the node state for l.
func (n *Node) State(l *Learner, t *Tree) NodeState {
	switch {
	case n.IsMaxed():
		return NodeMaxed
	case n.level > 0:
		return NodePartial
	case n.IsAvailableToLearn(l, t):
		return NodeAvailable
	default:
		return NodeLocked
	}
}

// Learn commits one level: every requirement of the next level is used in
// order, the ability is swapped for the next one, then the level's effects
// run in order. Requirements are not re-checked; callers check
// IsAvailableToLearn first unless they mean to override.
func (n *Node) Learn(ctx context.Context, l *Learner, t *Tree) error {
	if n.learning {
		return errors.FailedPreconditionf("node %s is already being learned", n.key)
	}
	if n.IsMaxed() {
		return errors.FailedPreconditionf("node %s is already at max level %d", n.key, n.MaxLevel()).
			WithMeta("node", n.key)
	}
	if n.level >= len(n.requirements) {
		return errors.FailedPreconditionf("level %d of node %s can only be forced", n.level+1, n.key).
			WithMeta("node", n.key)
	}

	n.learning = true
	defer func() { n.learning = false }()

	requirements := n.RequirementsForNextLevel()
	effects := n.EffectsForNextLevel()

	for _, req := range requirements {
		if err := req.Use(l, t); err != nil {
			return errors.Wrapf(err, "failed to use %s requirement of %s", req.Type(), n.key)
		}
	}

	n.step(l.Actor, 1)

	for _, eff := range effects {
		if err := eff.Apply(ctx, l, t); err != nil {
			return errors.Wrapf(err, "failed to apply %s effect of %s", eff.Type(), n.key)
		}
	}
	return nil
}

// ForceLevelUp advances up to levels without checking or using requirements
// and returns the number of levels gained.
func (n *Node) ForceLevelUp(actor Actor, levels int) int {
	if levels <= 0 {
		return 0
	}
	before := n.level
	n.step(actor, levels)
	return n.level - before
}

func (n *Node) step(actor Actor, levels int) {
	target := min(n.level+levels, len(n.abilities))
	if target == n.level {
		return
	}
	if n.level > 0 {
		actor.RevokeAbility(n.abilities[n.level-1])
	}
	n.level = target
	actor.GrantAbility(n.abilities[n.level-1])
	actor.Refresh()
}

// Forget revokes the held ability without touching the level.
func (n *Node) Forget(actor Actor) {
	if id, ok := n.CurrentAbility(); ok {
		actor.RevokeAbility(id)
		actor.Refresh()
	}
}

// Relearn grants the held ability again without touching the level.
func (n *Node) Relearn(actor Actor) {
	if id, ok := n.CurrentAbility(); ok {
		actor.GrantAbility(id)
		actor.Refresh()
	}
}

// Refund sums the point costs of every level taken so far.
func (n *Node) Refund() int {
	total := 0
	for i := 0; i < n.level && i < len(n.requirements); i++ {
		for _, req := range n.requirements[i] {
			if cost, ok := req.(*PointCost); ok {
				total += cost.price
			}
		}
	}
	return total
}

// Reset forgets the held ability, drops the node to level 0 and returns the
// refund owed.
func (n *Node) Reset(actor Actor) int {
	refund := n.Refund()
	n.Forget(actor)
	n.level = 0
	return refund
}

// Clone returns a deep copy including requirement and effect definitions.
func (n *Node) Clone() *Node {
	c := *n
	c.abilities = append([]AbilityID(nil), n.abilities...)
	c.requirements = cloneRequirementSets(n.requirements)
	c.effects = cloneEffectSets(n.effects)
	c.learning = false
	return &c
}

func (n *Node) cloneSlot() Slot { return n.Clone() }

// Connector is a decorative grid cell joining nodes. It is always enabled and
// never learnable.
type Connector struct {
	icon int
}

// NewConnector creates a connector drawn with icon.
func NewConnector(icon int) *Connector {
	return &Connector{icon: icon}
}

// Kind implements Slot.
func (c *Connector) Kind() SlotKind { return SlotConnector }

// IconRef implements Slot.
func (c *Connector) IconRef() int { return c.icon }

// IsEnabled implements Slot.
func (c *Connector) IsEnabled(_ *Learner, _ *Tree) bool { return true }

func (c *Connector) cloneSlot() Slot {
	cc := *c
	return &cc
}

func cloneRequirementSets(sets [][]Requirement) [][]Requirement {
	if sets == nil {
		return nil
	}
	out := make([][]Requirement, len(sets))
	for i, set := range sets {
		out[i] = make([]Requirement, len(set))
		for j, req := range set {
			out[i][j] = req.clone()
		}
	}
	return out
}

func cloneEffectSets(sets [][]Effect) [][]Effect {
	if sets == nil {
		return nil
	}
	out := make([][]Effect, len(sets))
	for i, set := range sets {
		out[i] = make([]Effect, len(set))
		for j, eff := range set {
			out[i][j] = eff.clone()
		}
	}
	return out
}
