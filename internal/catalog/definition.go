package catalog

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-skilltrees/internal/errors"
)

// Definition is the on-disk form of a catalog.
type Definition struct {
	Settings   SettingsDef        `yaml:"settings"`
	Connectors map[string]int     `yaml:"connectors"`
	Nodes      map[string]NodeDef `yaml:"nodes"`
	Trees      []TreeDef          `yaml:"trees"`
	Characters []RegistrationDef  `yaml:"characters"`
	Classes    []RegistrationDef  `yaml:"classes"`
	Standalone []string           `yaml:"standalone"`
}

// SettingsDef holds the process-wide progression settings.
type SettingsDef struct {
	PoolPolicy     string `yaml:"pool_policy"`
	PointsPerLevel int    `yaml:"points_per_level"`
	Columns        int    `yaml:"columns"`
}

// NodeDef defines a skill node. Each level grants one ability.
type NodeDef struct {
	Name   string     `yaml:"name"`
	Icon   int        `yaml:"icon"`
	Levels []LevelDef `yaml:"levels"`
}

// LevelDef is one level of a node.
type LevelDef struct {
	Ability      int              `yaml:"ability"`
	Requirements []RequirementDef `yaml:"requirements"`
	Effects      []EffectDef      `yaml:"effects"`

	// Forced marks a level with no requirement set; it can only be forced.
	Forced bool `yaml:"forced"`
}

// RequirementDef is a tagged requirement. Only the fields of its type are
// read.
type RequirementDef struct {
	Type       string `yaml:"type"`
	Price      int    `yaml:"price"`
	Points     int    `yaml:"points"`
	Node       string `yaml:"node"`
	Level      int    `yaml:"level"`
	Kind       string `yaml:"kind"`
	ItemID     int    `yaml:"item_id"`
	Amount     int    `yaml:"amount"`
	VariableID int    `yaml:"variable_id"`
	SwitchID   int    `yaml:"switch_id"`
	On         *bool  `yaml:"on"`
	Stat       string `yaml:"stat"`
	Value      int    `yaml:"value"`
}

// EffectDef is a tagged learn effect.
type EffectDef struct {
	Type       string `yaml:"type"`
	VariableID int    `yaml:"variable_id"`
	Increment  int    `yaml:"increment"`
	EventID    int    `yaml:"event_id"`
}

// TreeDef lays node and connector keys out on a grid. An empty key is an
// empty cell.
type TreeDef struct {
	Key     string     `yaml:"key"`
	Name    string     `yaml:"name"`
	Columns int        `yaml:"columns"`
	Grid    [][]string `yaml:"grid"`
}

// RegistrationDef hands trees to a character or a class.
type RegistrationDef struct {
	ID            int      `yaml:"id"`
	InitialPoints int      `yaml:"initial_points"`
	Trees         []string `yaml:"trees"`
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse catalog")
	}
	return New(&def)
}

// Load reads a YAML catalog from path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog %s", path)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid catalog %s", path)
	}
	return c, nil
}
