package skilltree

import (
	"bytes"
	"encoding/json"

	"github.com/KirkDiggler/rpg-skilltrees/internal/errors"
)

var requirementRegistry = map[RequirementType]func() Requirement{
	RequirementPoints:         func() Requirement { return &PointCost{} },
	RequirementTreePoints:     func() Requirement { return &TreePointThreshold{} },
	RequirementSkillLevel:     func() Requirement { return &PrerequisiteSkillLevel{} },
	RequirementItem:           func() Requirement { return &ItemPossession{} },
	RequirementActorLevel:     func() Requirement { return &CharacterLevel{} },
	RequirementVariable:       func() Requirement { return &PersistentVariableThreshold{} },
	RequirementSwitch:         func() Requirement { return &PersistentFlagState{} },
	RequirementStat:           func() Requirement { return &StatThreshold{} },
	RequirementExternalPoints: func() Requirement { return &ExternalCurrencyCost{} },
}

var effectRegistry = map[EffectType]func() Effect{
	EffectVariable: func() Effect { return &AdjustPersistentVariable{} },
	EffectEvent:    func() Effect { return &InvokeScriptedEvent{} },
}

type tagged struct {
	Type string `json:"type"`
}

func peekType(data []byte) (string, error) {
	var t tagged
	if err := json.Unmarshal(data, &t); err != nil {
		return "", errors.WrapWithCode(err, errors.CodeDataLoss, "malformed tagged object")
	}
	return t.Type, nil
}

// DecodeRequirement rebuilds a requirement from its tagged JSON form. An
// unknown tag is a DataLoss error.
func DecodeRequirement(data []byte) (Requirement, error) {
	tag, err := peekType(data)
	if err != nil {
		return nil, err
	}
	factory, ok := requirementRegistry[RequirementType(tag)]
	if !ok {
		return nil, errors.DataLossf("unknown requirement type %q", tag).WithMeta("type", tag)
	}
	req := factory()
	if err := json.Unmarshal(data, req); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "invalid "+tag+" requirement")
	}
	return req, nil
}

// DecodeEffect rebuilds a learn effect from its tagged JSON form. An unknown
// tag is a DataLoss error.
func DecodeEffect(data []byte) (Effect, error) {
	tag, err := peekType(data)
	if err != nil {
		return nil, err
	}
	factory, ok := effectRegistry[EffectType(tag)]
	if !ok {
		return nil, errors.DataLossf("unknown effect type %q", tag).WithMeta("type", tag)
	}
	eff := factory()
	if err := json.Unmarshal(data, eff); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "invalid "+tag+" effect")
	}
	return eff, nil
}

type nodeWire struct {
	Key                  string              `json:"key"`
	Type                 SlotKind            `json:"type"`
	Name                 string              `json:"name,omitempty"`
	Icon                 int                 `json:"icon,omitempty"`
	AbilityLevels        []AbilityID         `json:"abilityLevels"`
	CurrentLevel         int                 `json:"currentLevel"`
	RequirementsPerLevel [][]json.RawMessage `json:"requirementsPerLevel"`
	EffectsPerLevel      [][]json.RawMessage `json:"effectsPerLevel"`
}

// MarshalJSON implements json.Marshaler.
func (n *Node) MarshalJSON() ([]byte, error) {
	w := nodeWire{
		Key:                  n.key,
		Type:                 SlotNode,
		Name:                 n.name,
		Icon:                 n.icon,
		AbilityLevels:        n.abilities,
		CurrentLevel:         n.level,
		RequirementsPerLevel: make([][]json.RawMessage, len(n.requirements)),
		EffectsPerLevel:      make([][]json.RawMessage, len(n.effects)),
	}
	for i, set := range n.requirements {
		w.RequirementsPerLevel[i] = make([]json.RawMessage, len(set))
		for j, req := range set {
			data, err := json.Marshal(req)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to encode requirement of %s", n.key)
			}
			w.RequirementsPerLevel[i][j] = data
		}
	}
	for i, set := range n.effects {
		w.EffectsPerLevel[i] = make([]json.RawMessage, len(set))
		for j, eff := range set {
			data, err := json.Marshal(eff)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to encode effect of %s", n.key)
			}
			w.EffectsPerLevel[i][j] = data
		}
	}
	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Node) UnmarshalJSON(data []byte) error {
	var w nodeWire
	if err := json.Unmarshal(data, &w); err != nil {
		return errors.WrapWithCode(err, errors.CodeDataLoss, "malformed node")
	}
	if w.Type != SlotNode {
		return errors.DataLossf("expected node, got %q", w.Type)
	}

	cfg := NodeConfig{
		Key:          w.Key,
		Name:         w.Name,
		Icon:         w.Icon,
		Abilities:    w.AbilityLevels,
		Requirements: make([][]Requirement, len(w.RequirementsPerLevel)),
		Effects:      make([][]Effect, len(w.EffectsPerLevel)),
	}
	for i, set := range w.RequirementsPerLevel {
		cfg.Requirements[i] = make([]Requirement, 0, len(set))
		for _, raw := range set {
			req, err := DecodeRequirement(raw)
			if err != nil {
				return errors.Wrapf(err, "node %s level %d", w.Key, i+1)
			}
			cfg.Requirements[i] = append(cfg.Requirements[i], req)
		}
	}
	for i, set := range w.EffectsPerLevel {
		cfg.Effects[i] = make([]Effect, 0, len(set))
		for _, raw := range set {
			eff, err := DecodeEffect(raw)
			if err != nil {
				return errors.Wrapf(err, "node %s level %d", w.Key, i+1)
			}
			cfg.Effects[i] = append(cfg.Effects[i], eff)
		}
	}

	built, err := NewNode(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeDataLoss, "invalid node "+w.Key)
	}
	if w.CurrentLevel < 0 || w.CurrentLevel > built.MaxLevel() {
		return errors.DataLossf("node %s has level %d outside 0..%d", w.Key, w.CurrentLevel, built.MaxLevel())
	}
	built.level = w.CurrentLevel
	*n = *built
	return nil
}

type connectorWire struct {
	Type    SlotKind `json:"type"`
	IconRef int      `json:"iconRef"`
}

// MarshalJSON implements json.Marshaler.
func (c *Connector) MarshalJSON() ([]byte, error) {
	return json.Marshal(connectorWire{Type: SlotConnector, IconRef: c.icon})
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Connector) UnmarshalJSON(data []byte) error {
	var w connectorWire
	if err := json.Unmarshal(data, &w); err != nil {
		return errors.WrapWithCode(err, errors.CodeDataLoss, "malformed connector")
	}
	c.icon = w.IconRef
	return nil
}

// DecodeSlot rebuilds a grid cell. JSON null decodes to an empty cell.
func DecodeSlot(data []byte) (Slot, error) {
	if len(bytes.TrimSpace(data)) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, nil
	}
	tag, err := peekType(data)
	if err != nil {
		return nil, err
	}
	switch SlotKind(tag) {
	case SlotNode:
		n := &Node{}
		if err := json.Unmarshal(data, n); err != nil {
			return nil, err
		}
		return n, nil
	case SlotConnector:
		c := &Connector{}
		if err := json.Unmarshal(data, c); err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, errors.DataLossf("unknown slot type %q", tag).WithMeta("type", tag)
	}
}

type treeWire struct {
	Name             string            `json:"name"`
	Key              string            `json:"key"`
	ScopeClassID     int               `json:"scopeClassId"`
	ScopeCharacterID int               `json:"scopeCharacterId"`
	Columns          int               `json:"columns"`
	Points           int               `json:"points"`
	Visible          bool              `json:"visible"`
	Nodes            []json.RawMessage `json:"nodes"`
}

// MarshalJSON implements json.Marshaler.
func (t *Tree) MarshalJSON() ([]byte, error) {
	w := treeWire{
		Name:             t.name,
		Key:              t.key,
		ScopeClassID:     t.classID,
		ScopeCharacterID: t.characterID,
		Columns:          t.columns,
		Points:           t.spent,
		Visible:          t.visible,
		Nodes:            make([]json.RawMessage, len(t.slots)),
	}
	for i, slot := range t.slots {
		if slot == nil {
			w.Nodes[i] = json.RawMessage("null")
			continue
		}
		data, err := json.Marshal(slot)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode slot %d of %s", i, t.key)
		}
		w.Nodes[i] = data
	}
	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Tree) UnmarshalJSON(data []byte) error {
	var w treeWire
	if err := json.Unmarshal(data, &w); err != nil {
		return errors.WrapWithCode(err, errors.CodeDataLoss, "malformed tree")
	}
	slots := make([]Slot, len(w.Nodes))
	for i, raw := range w.Nodes {
		slot, err := DecodeSlot(raw)
		if err != nil {
			return errors.Wrapf(err, "tree %s slot %d", w.Key, i)
		}
		slots[i] = slot
	}
	built, err := NewTree(TreeConfig{
		Name:        w.Name,
		Key:         w.Key,
		ClassID:     w.ScopeClassID,
		CharacterID: w.ScopeCharacterID,
		Columns:     w.Columns,
		Slots:       slots,
	})
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeDataLoss, "invalid tree "+w.Key)
	}
	if w.Points < 0 {
		return errors.DataLossf("tree %s has negative spent points %d", w.Key, w.Points)
	}
	built.spent = w.Points
	built.visible = w.Visible
	*t = *built
	return nil
}
