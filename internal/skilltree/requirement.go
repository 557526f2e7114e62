package skilltree

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-skilltrees/internal/errors"
)

// RequirementType is the discriminator tag persisted with every requirement.
type RequirementType string

// Requirement types
const (
	RequirementPoints         RequirementType = "points"
	RequirementTreePoints     RequirementType = "tree_points"
	RequirementSkillLevel     RequirementType = "tree_skill_level"
	RequirementItem           RequirementType = "item"
	RequirementActorLevel     RequirementType = "actor_level"
	RequirementVariable       RequirementType = "variable"
	RequirementSwitch         RequirementType = "switch"
	RequirementStat           RequirementType = "stat"
	RequirementExternalPoints RequirementType = "external_points"
)

// Requirement gates one level of a node. Meets is a pure check; Use commits
// whatever the requirement consumes and runs only after every requirement of
// the level was met.
type Requirement interface {
	Type() RequirementType
	Meets(l *Learner, t *Tree) bool
	Use(l *Learner, t *Tree) error
	Describe() string
	clone() Requirement
}

// PointCost spends skill points from the pool the tree resolves to and adds
// them to the tree's spent points.
type PointCost struct {
	price int
}

// NewPointCost creates a point cost requirement.
func NewPointCost(price int) (*PointCost, error) {
	if price < 1 {
		return nil, errors.InvalidArgumentf("point cost must be positive, got %d", price)
	}
	return &PointCost{price: price}, nil
}

// Price returns the number of points spent.
func (r *PointCost) Price() int { return r.price }

// Type implements Requirement.
func (r *PointCost) Type() RequirementType { return RequirementPoints }

// Meets implements Requirement.
func (r *PointCost) Meets(l *Learner, t *Tree) bool {
	if l.Points == nil {
		return false
	}
	balance, err := l.Points.Balance(t)
	if err != nil {
		return false
	}
	return balance >= r.price
}

// Use implements Requirement.
func (r *PointCost) Use(l *Learner, t *Tree) error {
	if l.Points == nil {
		return errors.FailedPrecondition("no point pool to spend from")
	}
	if err := l.Points.Spend(t, r.price); err != nil {
		return err
	}
	t.spent += r.price
	return nil
}

// Describe implements Requirement.
func (r *PointCost) Describe() string {
	return fmt.Sprintf("%d skill points", r.price)
}

func (r *PointCost) clone() Requirement {
	c := *r
	return &c
}

type pointCostWire struct {
	Type  RequirementType `json:"type"`
	Price int             `json:"price"`
}

// MarshalJSON implements json.Marshaler.
func (r *PointCost) MarshalJSON() ([]byte, error) {
	return json.Marshal(pointCostWire{Type: r.Type(), Price: r.price})
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *PointCost) UnmarshalJSON(data []byte) error {
	var w pointCostWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	built, err := NewPointCost(w.Price)
	if err != nil {
		return err
	}
	*r = *built
	return nil
}

// TreePointThreshold requires a number of points already spent in the tree.
type TreePointThreshold struct {
	points int
}

// NewTreePointThreshold creates a tree points requirement.
func NewTreePointThreshold(points int) (*TreePointThreshold, error) {
	if points < 1 {
		return nil, errors.InvalidArgumentf("tree points must be positive, got %d", points)
	}
	return &TreePointThreshold{points: points}, nil
}

// Points returns the spent points threshold.
func (r *TreePointThreshold) Points() int { return r.points }

// Type implements Requirement.
func (r *TreePointThreshold) Type() RequirementType { return RequirementTreePoints }

// Meets implements Requirement.
func (r *TreePointThreshold) Meets(_ *Learner, t *Tree) bool {
	return t.spent >= r.points
}

// Use implements Requirement.
func (r *TreePointThreshold) Use(_ *Learner, _ *Tree) error { return nil }

// Describe implements Requirement.
func (r *TreePointThreshold) Describe() string {
	return fmt.Sprintf("%d tree points", r.points)
}

func (r *TreePointThreshold) clone() Requirement {
	c := *r
	return &c
}

type treePointsWire struct {
	Type   RequirementType `json:"type"`
	Points int             `json:"points"`
}

// MarshalJSON implements json.Marshaler.
func (r *TreePointThreshold) MarshalJSON() ([]byte, error) {
	return json.Marshal(treePointsWire{Type: r.Type(), Points: r.points})
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *TreePointThreshold) UnmarshalJSON(data []byte) error {
	var w treePointsWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	built, err := NewTreePointThreshold(w.Points)
	if err != nil {
		return err
	}
	*r = *built
	return nil
}

// PrerequisiteSkillLevel requires another node at a minimum level. It keeps a
// copy of the target's ability list instead of a reference to the node, so
// the check reads the actor's abilities and tolerates skipped levels.
type PrerequisiteSkillLevel struct {
	abilities []AbilityID
	level     int
	name      string
}

// NewPrerequisiteSkillLevel creates a prerequisite on target reaching level.
func NewPrerequisiteSkillLevel(target *Node, level int) (*PrerequisiteSkillLevel, error) {
	if target == nil {
		return nil, errors.InvalidArgument("prerequisite target node is required")
	}
	return NewPrerequisiteFromAbilities(target.abilities, level, target.Name())
}

// NewPrerequisiteFromAbilities creates a prerequisite from a copied ability list.
func NewPrerequisiteFromAbilities(abilities []AbilityID, level int, name string) (*PrerequisiteSkillLevel, error) {
	if len(abilities) == 0 {
		return nil, errors.InvalidArgument("prerequisite needs at least one ability level")
	}
	if level < 1 || level > len(abilities) {
		return nil, errors.InvalidArgumentf("prerequisite level must be between 1 and %d, got %d", len(abilities), level)
	}
	return &PrerequisiteSkillLevel{
		abilities: append([]AbilityID(nil), abilities...),
		level:     level,
		name:      name,
	}, nil
}

// Level returns the required level.
func (r *PrerequisiteSkillLevel) Level() int { return r.level }

// Abilities returns a copy of the target's ability levels.
func (r *PrerequisiteSkillLevel) Abilities() []AbilityID {
	return append([]AbilityID(nil), r.abilities...)
}

// Type implements Requirement.
func (r *PrerequisiteSkillLevel) Type() RequirementType { return RequirementSkillLevel }

// Meets implements Requirement.
func (r *PrerequisiteSkillLevel) Meets(l *Learner, _ *Tree) bool {
	met := false
	for _, id := range r.abilities[r.level-1:] {
		met = met || l.Actor.HasAbility(id)
	}
	return met
}

// Use implements Requirement.
func (r *PrerequisiteSkillLevel) Use(_ *Learner, _ *Tree) error { return nil }

// Describe implements Requirement.
func (r *PrerequisiteSkillLevel) Describe() string {
	name := r.name
	if name == "" {
		name = fmt.Sprintf("ability %d", r.abilities[r.level-1])
	}
	if len(r.abilities) == 1 {
		return name + " learned"
	}
	return fmt.Sprintf("%s level %d learned", name, r.level)
}

func (r *PrerequisiteSkillLevel) clone() Requirement {
	c := *r
	c.abilities = append([]AbilityID(nil), r.abilities...)
	return &c
}

type prerequisiteWire struct {
	Type          RequirementType `json:"type"`
	AbilityLevels []AbilityID     `json:"abilityLevels"`
	Level         int             `json:"level"`
	Name          string          `json:"name,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (r *PrerequisiteSkillLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(prerequisiteWire{
		Type:          r.Type(),
		AbilityLevels: r.abilities,
		Level:         r.level,
		Name:          r.name,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *PrerequisiteSkillLevel) UnmarshalJSON(data []byte) error {
	var w prerequisiteWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	built, err := NewPrerequisiteFromAbilities(w.AbilityLevels, w.Level, w.Name)
	if err != nil {
		return err
	}
	*r = *built
	return nil
}

// ItemPossession requires the party to hold an item and consumes it.
type ItemPossession struct {
	kind   ItemKind
	itemID int
	amount int
}

// NewItemPossession creates an item requirement.
func NewItemPossession(kind ItemKind, itemID, amount int) (*ItemPossession, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("kind", string(kind),
		[]string{string(ItemKindItem), string(ItemKindWeapon), string(ItemKindArmor)}, vb)
	errors.ValidatePositive("itemId", itemID, 1, vb)
	errors.ValidatePositive("amount", amount, 1, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}
	return &ItemPossession{kind: kind, itemID: itemID, amount: amount}, nil
}

// Kind returns the inventory table.
func (r *ItemPossession) Kind() ItemKind { return r.kind }

// ItemID returns the item id.
func (r *ItemPossession) ItemID() int { return r.itemID }

// Amount returns the number of items consumed.
func (r *ItemPossession) Amount() int { return r.amount }

// Type implements Requirement.
func (r *ItemPossession) Type() RequirementType { return RequirementItem }

// Meets implements Requirement.
func (r *ItemPossession) Meets(l *Learner, _ *Tree) bool {
	if l.Party == nil {
		return false
	}
	return l.Party.ItemCount(r.kind, r.itemID) >= r.amount
}

// Use implements Requirement.
func (r *ItemPossession) Use(l *Learner, _ *Tree) error {
	if l.Party == nil {
		return errors.FailedPrecondition("no party inventory to consume from")
	}
	return l.Party.ConsumeItem(r.kind, r.itemID, r.amount)
}

// Describe implements Requirement.
func (r *ItemPossession) Describe() string {
	return fmt.Sprintf("%d x %s #%d", r.amount, r.kind, r.itemID)
}

func (r *ItemPossession) clone() Requirement {
	c := *r
	return &c
}

type itemWire struct {
	Type   RequirementType `json:"type"`
	Kind   ItemKind        `json:"kind"`
	ItemID int             `json:"itemId"`
	Amount int             `json:"amount"`
}

// MarshalJSON implements json.Marshaler.
func (r *ItemPossession) MarshalJSON() ([]byte, error) {
	return json.Marshal(itemWire{Type: r.Type(), Kind: r.kind, ItemID: r.itemID, Amount: r.amount})
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *ItemPossession) UnmarshalJSON(data []byte) error {
	var w itemWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	built, err := NewItemPossession(w.Kind, w.ItemID, w.Amount)
	if err != nil {
		return err
	}
	*r = *built
	return nil
}

// CharacterLevel requires a minimum character level.
type CharacterLevel struct {
	level int
}

// NewCharacterLevel creates a character level requirement. Level 1 is always
// met, so the minimum is 2.
func NewCharacterLevel(level int) (*CharacterLevel, error) {
	if level < 2 {
		return nil, errors.InvalidArgumentf("character level requirement must be at least 2, got %d", level)
	}
	return &CharacterLevel{level: level}, nil
}

// Level returns the required character level.
func (r *CharacterLevel) Level() int { return r.level }

// Type implements Requirement.
func (r *CharacterLevel) Type() RequirementType { return RequirementActorLevel }

// Meets implements Requirement.
func (r *CharacterLevel) Meets(l *Learner, _ *Tree) bool {
	return l.Actor.Level() >= r.level
}

// Use implements Requirement.
func (r *CharacterLevel) Use(_ *Learner, _ *Tree) error { return nil }

// Describe implements Requirement.
func (r *CharacterLevel) Describe() string {
	return fmt.Sprintf("character level %d", r.level)
}

func (r *CharacterLevel) clone() Requirement {
	c := *r
	return &c
}

type levelWire struct {
	Type  RequirementType `json:"type"`
	Level int             `json:"level"`
}

// MarshalJSON implements json.Marshaler.
func (r *CharacterLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(levelWire{Type: r.Type(), Level: r.level})
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *CharacterLevel) UnmarshalJSON(data []byte) error {
	var w levelWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	built, err := NewCharacterLevel(w.Level)
	if err != nil {
		return err
	}
	*r = *built
	return nil
}

// PersistentVariableThreshold requires a game variable at or above a value.
type PersistentVariableThreshold struct {
	variableID int
	value      int
}

// NewPersistentVariableThreshold creates a variable requirement.
func NewPersistentVariableThreshold(variableID, value int) (*PersistentVariableThreshold, error) {
	if variableID < 1 {
		return nil, errors.InvalidArgumentf("variable id must be positive, got %d", variableID)
	}
	return &PersistentVariableThreshold{variableID: variableID, value: value}, nil
}

// VariableID returns the checked variable.
func (r *PersistentVariableThreshold) VariableID() int { return r.variableID }

// Value returns the threshold.
func (r *PersistentVariableThreshold) Value() int { return r.value }

// Type implements Requirement.
func (r *PersistentVariableThreshold) Type() RequirementType { return RequirementVariable }

// Meets implements Requirement.
func (r *PersistentVariableThreshold) Meets(l *Learner, _ *Tree) bool {
	if l.State == nil {
		return false
	}
	return l.State.Variable(r.variableID) >= r.value
}

// Use implements Requirement.
func (r *PersistentVariableThreshold) Use(_ *Learner, _ *Tree) error { return nil }

// Describe implements Requirement.
func (r *PersistentVariableThreshold) Describe() string {
	return fmt.Sprintf("variable #%d at least %d", r.variableID, r.value)
}

func (r *PersistentVariableThreshold) clone() Requirement {
	c := *r
	return &c
}

type variableWire struct {
	Type       RequirementType `json:"type"`
	VariableID int             `json:"variableId"`
	Value      int             `json:"value"`
}

// MarshalJSON implements json.Marshaler.
func (r *PersistentVariableThreshold) MarshalJSON() ([]byte, error) {
	return json.Marshal(variableWire{Type: r.Type(), VariableID: r.variableID, Value: r.value})
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *PersistentVariableThreshold) UnmarshalJSON(data []byte) error {
	var w variableWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	built, err := NewPersistentVariableThreshold(w.VariableID, w.Value)
	if err != nil {
		return err
	}
	*r = *built
	return nil
}

// PersistentFlagState requires a game switch in a given position.
type PersistentFlagState struct {
	switchID int
	desired  bool
}

// NewPersistentFlagState creates a switch requirement.
func NewPersistentFlagState(switchID int, desired bool) (*PersistentFlagState, error) {
	if switchID < 1 {
		return nil, errors.InvalidArgumentf("switch id must be positive, got %d", switchID)
	}
	return &PersistentFlagState{switchID: switchID, desired: desired}, nil
}

// SwitchID returns the checked switch.
func (r *PersistentFlagState) SwitchID() int { return r.switchID }

// Desired returns the required switch position.
func (r *PersistentFlagState) Desired() bool { return r.desired }

// Type implements Requirement.
func (r *PersistentFlagState) Type() RequirementType { return RequirementSwitch }

// Meets implements Requirement.
func (r *PersistentFlagState) Meets(l *Learner, _ *Tree) bool {
	if l.State == nil {
		return false
	}
	return l.State.Switch(r.switchID) == r.desired
}

// Use implements Requirement.
func (r *PersistentFlagState) Use(_ *Learner, _ *Tree) error { return nil }

// Describe implements Requirement.
func (r *PersistentFlagState) Describe() string {
	state := "OFF"
	if r.desired {
		state = "ON"
	}
	return fmt.Sprintf("switch #%d is %s", r.switchID, state)
}

func (r *PersistentFlagState) clone() Requirement {
	c := *r
	return &c
}

type switchWire struct {
	Type     RequirementType `json:"type"`
	SwitchID int             `json:"switchId"`
	Value    bool            `json:"value"`
}

// MarshalJSON implements json.Marshaler.
func (r *PersistentFlagState) MarshalJSON() ([]byte, error) {
	return json.Marshal(switchWire{Type: r.Type(), SwitchID: r.switchID, Value: r.desired})
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *PersistentFlagState) UnmarshalJSON(data []byte) error {
	var w switchWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	built, err := NewPersistentFlagState(w.SwitchID, w.Value)
	if err != nil {
		return err
	}
	*r = *built
	return nil
}

// StatThreshold requires a computed character stat at or above a value.
type StatThreshold struct {
	stat  Stat
	value int
}

// NewStatThreshold creates a stat requirement.
func NewStatThreshold(stat Stat, value int) (*StatThreshold, error) {
	parsed, err := ParseStat(string(stat))
	if err != nil {
		return nil, err
	}
	if value < 1 {
		return nil, errors.InvalidArgumentf("stat threshold must be positive, got %d", value)
	}
	return &StatThreshold{stat: parsed, value: value}, nil
}

// Stat returns the checked stat.
func (r *StatThreshold) Stat() Stat { return r.stat }

// Value returns the threshold.
func (r *StatThreshold) Value() int { return r.value }

// Type implements Requirement.
func (r *StatThreshold) Type() RequirementType { return RequirementStat }

// Meets implements Requirement.
func (r *StatThreshold) Meets(l *Learner, _ *Tree) bool {
	return l.Actor.Stat(r.stat) >= r.value
}

// Use implements Requirement.
func (r *StatThreshold) Use(_ *Learner, _ *Tree) error { return nil }

// Describe implements Requirement.
func (r *StatThreshold) Describe() string {
	return fmt.Sprintf("%s %d", strings.ToUpper(string(r.stat)), r.value)
}

func (r *StatThreshold) clone() Requirement {
	c := *r
	return &c
}

type statWire struct {
	Type  RequirementType `json:"type"`
	Stat  Stat            `json:"stat"`
	Value int             `json:"value"`
}

// MarshalJSON implements json.Marshaler.
func (r *StatThreshold) MarshalJSON() ([]byte, error) {
	return json.Marshal(statWire{Type: r.Type(), Stat: r.stat, Value: r.value})
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *StatThreshold) UnmarshalJSON(data []byte) error {
	var w statWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	built, err := NewStatThreshold(w.Stat, w.Value)
	if err != nil {
		return err
	}
	*r = *built
	return nil
}

// ExternalCurrencyCost spends an external per-class currency. It only makes
// sense when the ledger runs in external mode; the catalog enforces that.
type ExternalCurrencyCost struct {
	price int
}

// NewExternalCurrencyCost creates an external currency requirement.
func NewExternalCurrencyCost(price int) (*ExternalCurrencyCost, error) {
	if price < 1 {
		return nil, errors.InvalidArgumentf("external cost must be positive, got %d", price)
	}
	return &ExternalCurrencyCost{price: price}, nil
}

// Price returns the amount deducted.
func (r *ExternalCurrencyCost) Price() int { return r.price }

// Type implements Requirement.
func (r *ExternalCurrencyCost) Type() RequirementType { return RequirementExternalPoints }

// Meets implements Requirement.
func (r *ExternalCurrencyCost) Meets(l *Learner, _ *Tree) bool {
	if l.Currency == nil {
		return false
	}
	return l.Currency.Balance(l.Actor.ClassID()) >= r.price
}

// Use implements Requirement.
func (r *ExternalCurrencyCost) Use(l *Learner, _ *Tree) error {
	if l.Currency == nil {
		return errors.FailedPrecondition("no external currency source")
	}
	return l.Currency.Deduct(l.Actor.ClassID(), r.price)
}

// Describe implements Requirement.
func (r *ExternalCurrencyCost) Describe() string {
	return fmt.Sprintf("%d class points", r.price)
}

func (r *ExternalCurrencyCost) clone() Requirement {
	c := *r
	return &c
}

// MarshalJSON implements json.Marshaler.
func (r *ExternalCurrencyCost) MarshalJSON() ([]byte, error) {
	return json.Marshal(pointCostWire{Type: r.Type(), Price: r.price})
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *ExternalCurrencyCost) UnmarshalJSON(data []byte) error {
	var w pointCostWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	built, err := NewExternalCurrencyCost(w.Price)
	if err != nil {
		return err
	}
	*r = *built
	return nil
}
