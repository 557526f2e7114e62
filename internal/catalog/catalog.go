// Package catalog holds the immutable registry of skill tree templates built
// once at startup from a YAML definition.
package catalog

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/KirkDiggler/rpg-skilltrees/internal/errors"
	"github.com/KirkDiggler/rpg-skilltrees/internal/ledger"
	"github.com/KirkDiggler/rpg-skilltrees/internal/skilltree"
)

// Settings are the process-wide progression settings.
type Settings struct {
	Policy         ledger.Policy
	PointsPerLevel int
	Columns        int
}

// Grant is what a character or class receives: fresh tree instances and the
// points credited once to every pool those trees resolve to.
type Grant struct {
	InitialPoints int
	Trees         []*skilltree.Tree
}

type registration struct {
	initialPoints int
	trees         []*skilltree.Tree
}

func (r *registration) grant() *Grant {
	g := &Grant{InitialPoints: r.initialPoints, Trees: make([]*skilltree.Tree, len(r.trees))}
	for i, t := range r.trees {
		g.Trees[i] = t.Clone()
	}
	return g
}

// Catalog is the template registry. It is never mutated after New; every
// tree it hands out is a deep clone.
type Catalog struct {
	settings   Settings
	templates  map[string]*skilltree.Tree
	characters map[int]*registration
	classes    map[int]*registration
	standalone []string
}

// New validates def and builds the catalog. Every configuration error is
// reported at once.
func New(def *Definition) (*Catalog, error) {
	if def == nil {
		return nil, errors.InvalidArgument("catalog definition is required")
	}
	b := newBuilder(def)
	c, err := b.build()
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Settings returns the progression settings.
func (c *Catalog) Settings() Settings { return c.settings }

// Has reports whether a tree with key is defined.
func (c *Catalog) Has(key string) bool {
	_, ok := c.templates[key]
	return ok
}

// TreeKeys lists every defined tree key in sorted order.
func (c *Catalog) TreeKeys() []string {
	keys := make([]string, 0, len(c.templates))
	for k := range c.templates {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Instantiate returns an unscoped deep clone of a tree template.
func (c *Catalog) Instantiate(key string) (*skilltree.Tree, error) {
	t, ok := c.templates[key]
	if !ok {
		return nil, errors.NotFoundf("tree %s not found", key).WithMeta("tree", key)
	}
	return t.Clone(), nil
}

// ForCharacter returns the character-bound trees of a character.
func (c *Catalog) ForCharacter(characterID int) (*Grant, bool) {
	r, ok := c.characters[characterID]
	if !ok {
		return nil, false
	}
	return r.grant(), true
}

// ForClass returns the class-bound trees of a class.
func (c *Catalog) ForClass(classID int) (*Grant, bool) {
	r, ok := c.classes[classID]
	if !ok {
		return nil, false
	}
	return r.grant(), true
}

// Standalone lists the keys of trees that may be attached to anyone.
func (c *Catalog) Standalone() []string {
	return append([]string(nil), c.standalone...)
}

// IsStandalone reports whether key is a standalone tree.
func (c *Catalog) IsStandalone(key string) bool {
	for _, k := range c.standalone {
		if k == key {
			return true
		}
	}
	return false
}

type builder struct {
	def       *Definition
	vb        *errors.ValidationBuilder
	settings  Settings
	nodes     map[string]*skilltree.Node
	abilities map[string][]skilltree.AbilityID
	templates map[string]*skilltree.Tree
}

func newBuilder(def *Definition) *builder {
	return &builder{
		def:       def,
		vb:        errors.NewValidationBuilder(),
		nodes:     make(map[string]*skilltree.Node),
		abilities: make(map[string][]skilltree.AbilityID),
		templates: make(map[string]*skilltree.Tree),
	}
}

func (b *builder) build() (*Catalog, error) {
	b.buildSettings()
	if b.vb.HasErrors() {
		return nil, b.vb.Build()
	}
	b.collectAbilities()
	b.buildNodes()
	b.buildTemplates()

	c := &Catalog{
		settings:   b.settings,
		templates:  b.templates,
		characters: b.buildRegistrations("characters", b.def.Characters, true),
		classes:    b.buildRegistrations("classes", b.def.Classes, false),
	}
	c.standalone = b.buildStandalone()
	b.checkClassTreesExclusive()

	if err := b.vb.Build(); err != nil {
		return nil, err
	}
	return c, nil
}

func (b *builder) buildSettings() {
	s := b.def.Settings
	policy := s.PoolPolicy
	if policy == "" {
		policy = string(ledger.PolicySingle)
	}
	parsed, err := ledger.ParsePolicy(policy)
	if err != nil {
		b.vb.Merge("settings.pool_policy", err)
	}
	errors.ValidatePositive("settings.points_per_level", s.PointsPerLevel, 0, b.vb)
	columns := s.Columns
	if columns == 0 {
		columns = skilltree.DefaultColumns
	}
	errors.ValidatePositive("settings.columns", columns, 1, b.vb)
	b.settings = Settings{Policy: parsed, PointsPerLevel: s.PointsPerLevel, Columns: columns}
}

func (b *builder) collectAbilities() {
	for key, nd := range b.def.Nodes {
		ids := make([]skilltree.AbilityID, len(nd.Levels))
		for i, lvl := range nd.Levels {
			ids[i] = skilltree.AbilityID(lvl.Ability)
		}
		b.abilities[key] = ids
	}
}

func (b *builder) buildNodes() {
	keys := make([]string, 0, len(b.def.Nodes))
	for key := range b.def.Nodes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		nd := b.def.Nodes[key]
		field := "nodes." + key
		if _, clash := b.def.Connectors[key]; clash {
			b.vb.Field(field, "key is also a connector")
		}

		cfg := skilltree.NodeConfig{
			Key:       key,
			Name:      nd.Name,
			Icon:      nd.Icon,
			Abilities: b.abilities[key],
		}
		lastReq := -1
		for i, lvl := range nd.Levels {
			if !lvl.Forced {
				lastReq = i
			}
		}
		for i, lvl := range nd.Levels {
			levelField := fmt.Sprintf("%s.levels[%d]", field, i)
			if i <= lastReq {
				set := make([]skilltree.Requirement, 0, len(lvl.Requirements))
				for j, rd := range lvl.Requirements {
					req, err := b.requirement(rd)
					if err != nil {
						b.vb.Merge(fmt.Sprintf("%s.requirements[%d]", levelField, j), err)
						continue
					}
					set = append(set, req)
				}
				cfg.Requirements = append(cfg.Requirements, set)
			} else if len(lvl.Requirements) > 0 {
				b.vb.Field(levelField, "a forced level cannot have requirements")
			}
			effects := make([]skilltree.Effect, 0, len(lvl.Effects))
			for j, ed := range lvl.Effects {
				eff, err := effect(ed)
				if err != nil {
					b.vb.Merge(fmt.Sprintf("%s.effects[%d]", levelField, j), err)
					continue
				}
				effects = append(effects, eff)
			}
			cfg.Effects = append(cfg.Effects, effects)
		}
		for i, lvl := range nd.Levels {
			if lvl.Forced && i < lastReq {
				b.vb.Field(fmt.Sprintf("%s.levels[%d]", field, i), "only trailing levels can be forced")
			}
		}

		node, err := skilltree.NewNode(cfg)
		if err != nil {
			b.vb.Merge(field, err)
			continue
		}
		b.nodes[key] = node
	}
}

func (b *builder) requirement(rd RequirementDef) (skilltree.Requirement, error) {
	switch skilltree.RequirementType(rd.Type) {
	case skilltree.RequirementPoints:
		return skilltree.NewPointCost(rd.Price)
	case skilltree.RequirementTreePoints:
		return skilltree.NewTreePointThreshold(rd.Points)
	case skilltree.RequirementSkillLevel:
		abilities, ok := b.abilities[rd.Node]
		if !ok {
			if _, isConnector := b.def.Connectors[rd.Node]; isConnector {
				return nil, errors.InvalidArgumentf("prerequisite %q is a connector, not a node", rd.Node)
			}
			return nil, errors.InvalidArgumentf("prerequisite node %q is not defined", rd.Node)
		}
		level := rd.Level
		if level == 0 {
			level = 1
		}
		name := b.def.Nodes[rd.Node].Name
		if name == "" {
			name = rd.Node
		}
		return skilltree.NewPrerequisiteFromAbilities(abilities, level, name)
	case skilltree.RequirementItem:
		kind, err := skilltree.ParseItemKind(rd.Kind)
		if err != nil {
			return nil, err
		}
		return skilltree.NewItemPossession(kind, rd.ItemID, rd.Amount)
	case skilltree.RequirementActorLevel:
		return skilltree.NewCharacterLevel(rd.Level)
	case skilltree.RequirementVariable:
		return skilltree.NewPersistentVariableThreshold(rd.VariableID, rd.Value)
	case skilltree.RequirementSwitch:
		on := true
		if rd.On != nil {
			on = *rd.On
		}
		return skilltree.NewPersistentFlagState(rd.SwitchID, on)
	case skilltree.RequirementStat:
		return skilltree.NewStatThreshold(skilltree.Stat(rd.Stat), rd.Value)
	case skilltree.RequirementExternalPoints:
		if b.settings.Policy != ledger.PolicyExternal {
			return nil, errors.InvalidArgumentf("external_points needs the %s pool policy", ledger.PolicyExternal)
		}
		return skilltree.NewExternalCurrencyCost(rd.Price)
	default:
		return nil, errors.InvalidArgumentf("unknown requirement type %q", rd.Type)
	}
}

func effect(ed EffectDef) (skilltree.Effect, error) {
	switch skilltree.EffectType(ed.Type) {
	case skilltree.EffectVariable:
		return skilltree.NewAdjustPersistentVariable(ed.VariableID, ed.Increment)
	case skilltree.EffectEvent:
		return skilltree.NewInvokeScriptedEvent(ed.EventID)
	default:
		return nil, errors.InvalidArgumentf("unknown effect type %q", ed.Type)
	}
}

func (b *builder) buildTemplates() {
	for i, td := range b.def.Trees {
		field := fmt.Sprintf("trees[%d]", i)
		if td.Key != "" {
			field = "trees." + td.Key
		}
		if _, err := strconv.Atoi(td.Key); err == nil {
			b.vb.Field(field, "key cannot be numeric")
			continue
		}
		if _, dup := b.templates[td.Key]; dup {
			b.vb.Field(field, "tree is defined twice")
			continue
		}

		columns := td.Columns
		if columns == 0 {
			columns = b.settings.Columns
		}
		var slots []skilltree.Slot
		for r, row := range td.Grid {
			if len(row) > columns {
				b.vb.Fieldf(field, "row %d has %d cells, the grid is %d wide", r, len(row), columns)
				continue
			}
			cells := make([]skilltree.Slot, columns)
			for col, key := range row {
				slot, err := b.slot(key)
				if err != nil {
					b.vb.Fieldf(field, "row %d column %d: %s", r, col, errors.GetMessage(err))
					continue
				}
				cells[col] = slot
			}
			slots = append(slots, cells...)
		}

		tree, err := skilltree.NewTree(skilltree.TreeConfig{
			Name:    td.Name,
			Key:     td.Key,
			Columns: columns,
			Slots:   slots,
		})
		if err != nil {
			b.vb.Merge(field, err)
			continue
		}
		b.templates[td.Key] = tree
	}
}

func (b *builder) slot(key string) (skilltree.Slot, error) {
	if key == "" {
		return nil, nil
	}
	if node, ok := b.nodes[key]; ok {
		return node, nil
	}
	if icon, ok := b.def.Connectors[key]; ok {
		return skilltree.NewConnector(icon), nil
	}
	if _, ok := b.def.Nodes[key]; ok {
		return nil, errors.InvalidArgumentf("node %q is invalid", key)
	}
	return nil, errors.InvalidArgumentf("%q is neither a node nor a connector", key)
}

// scoped rebuilds a template bound to a class or a character.
func (b *builder) scoped(key string, classID, characterID int) (*skilltree.Tree, error) {
	t := b.templates[key]
	return skilltree.NewTree(skilltree.TreeConfig{
		Name:        t.Name(),
		Key:         t.Key(),
		ClassID:     classID,
		CharacterID: characterID,
		Columns:     t.Columns(),
		Slots:       t.Slots(),
	})
}

func (b *builder) buildRegistrations(section string, defs []RegistrationDef, character bool) map[int]*registration {
	out := make(map[int]*registration)
	for i, rd := range defs {
		field := fmt.Sprintf("%s[%d]", section, i)
		if rd.ID < 1 {
			b.vb.Fieldf(field, "id must be positive, got %d", rd.ID)
			continue
		}
		if _, dup := out[rd.ID]; dup {
			b.vb.Fieldf(field, "id %d is registered twice", rd.ID)
			continue
		}
		errors.ValidatePositive(field+".initial_points", rd.InitialPoints, 0, b.vb)

		reg := &registration{initialPoints: rd.InitialPoints}
		seen := make(map[string]bool)
		for _, key := range rd.Trees {
			if _, ok := b.templates[key]; !ok {
				b.vb.Fieldf(field, "tree %q is not defined", key)
				continue
			}
			if seen[key] {
				b.vb.Fieldf(field, "tree %q is listed twice", key)
				continue
			}
			seen[key] = true

			classID, characterID := rd.ID, 0
			if character {
				classID, characterID = 0, rd.ID
			}
			t, err := b.scoped(key, classID, characterID)
			if err != nil {
				b.vb.Merge(field, err)
				continue
			}
			reg.trees = append(reg.trees, t)
		}
		out[rd.ID] = reg
	}
	return out
}

func (b *builder) buildStandalone() []string {
	var keys []string
	seen := make(map[string]bool)
	for i, key := range b.def.Standalone {
		if _, ok := b.templates[key]; !ok {
			b.vb.Fieldf(fmt.Sprintf("standalone[%d]", i), "tree %q is not defined", key)
			continue
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}
	return keys
}

// checkClassTreesExclusive rejects class trees shared with another class, a
// character or the standalone list, since a profile could then hold the same
// tree twice.
func (b *builder) checkClassTreesExclusive() {
	owners := make(map[string]int)
	for _, rd := range b.def.Classes {
		for _, key := range rd.Trees {
			owners[key]++
		}
	}
	others := make(map[string]bool)
	for _, rd := range b.def.Characters {
		for _, key := range rd.Trees {
			others[key] = true
		}
	}
	for _, key := range b.def.Standalone {
		others[key] = true
	}

	keys := make([]string, 0, len(owners))
	for key := range owners {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if owners[key] > 1 || others[key] {
			b.vb.Fieldf("classes", "tree %q is bound to a class and used elsewhere", key)
		}
	}
}
