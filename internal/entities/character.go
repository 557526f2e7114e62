// Package entities holds the host-side game records the progression engine
// reads and mutates: characters and the shared world state.
package entities

import (
	"encoding/json"
	"sort"

	"github.com/KirkDiggler/rpg-skilltrees/internal/errors"
	"github.com/KirkDiggler/rpg-skilltrees/internal/skilltree"
)

// Character is a playable character. It implements skilltree.Actor.
type Character struct {
	id        int
	name      string
	classID   int
	level     int
	stats     map[skilltree.Stat]int
	abilities map[skilltree.AbilityID]bool
	hp        int
	mp        int
}

// CharacterConfig describes a new character.
type CharacterConfig struct {
	ID      int
	Name    string
	ClassID int
	Level   int
	Stats   map[skilltree.Stat]int
}

// Validate validates the config
func (c *CharacterConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidatePositive("ID", c.ID, 1, vb)
	errors.ValidateRequired("Name", c.Name, vb)
	if c.ClassID < 0 {
		vb.InvalidField("ClassID", "must not be negative")
	}
	errors.ValidatePositive("Level", c.Level, 1, vb)
	for stat := range c.Stats {
		if _, err := skilltree.ParseStat(string(stat)); err != nil {
			vb.Merge("Stats", err)
		}
	}
	return vb.Build()
}

// NewCharacter creates a character at full HP and MP.
func NewCharacter(cfg CharacterConfig) (*Character, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Character{
		id:        cfg.ID,
		name:      cfg.Name,
		classID:   cfg.ClassID,
		level:     cfg.Level,
		stats:     make(map[skilltree.Stat]int, len(cfg.Stats)),
		abilities: make(map[skilltree.AbilityID]bool),
	}
	for stat, v := range cfg.Stats {
		c.stats[stat] = v
	}
	c.hp = c.stats[skilltree.StatMaxHP]
	c.mp = c.stats[skilltree.StatMaxMP]
	return c, nil
}

// ID implements skilltree.Actor.
func (c *Character) ID() int { return c.id }

// Name returns the display name.
func (c *Character) Name() string { return c.name }

// ClassID implements skilltree.Actor.
func (c *Character) ClassID() int { return c.classID }

// Level implements skilltree.Actor.
func (c *Character) Level() int { return c.level }

// Stat implements skilltree.Actor.
func (c *Character) Stat(stat skilltree.Stat) int { return c.stats[stat] }

// SetStat overwrites a stat and clamps HP and MP to the new maximums.
func (c *Character) SetStat(stat skilltree.Stat, value int) {
	c.stats[stat] = value
	c.Refresh()
}

// HP returns the current hit points.
func (c *Character) HP() int { return c.hp }

// MP returns the current magic points.
func (c *Character) MP() int { return c.mp }

// HasAbility implements skilltree.Actor.
func (c *Character) HasAbility(id skilltree.AbilityID) bool { return c.abilities[id] }

// GrantAbility implements skilltree.Actor.
func (c *Character) GrantAbility(id skilltree.AbilityID) { c.abilities[id] = true }

// RevokeAbility implements skilltree.Actor.
func (c *Character) RevokeAbility(id skilltree.AbilityID) { delete(c.abilities, id) }

// Abilities returns the held abilities in ascending order.
func (c *Character) Abilities() []skilltree.AbilityID {
	out := make([]skilltree.AbilityID, 0, len(c.abilities))
	for id := range c.abilities {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Refresh implements skilltree.Actor. HP and MP never exceed their maximums.
func (c *Character) Refresh() {
	c.hp = min(c.hp, c.stats[skilltree.StatMaxHP])
	c.mp = min(c.mp, c.stats[skilltree.StatMaxMP])
}

// ChangeClass switches the class and returns the previous one.
func (c *Character) ChangeClass(classID int) (int, error) {
	if classID < 0 {
		return 0, errors.InvalidArgumentf("class id must not be negative, got %d", classID)
	}
	old := c.classID
	c.classID = classID
	return old, nil
}

// LevelUp raises the character level.
func (c *Character) LevelUp(levels int) error {
	if levels < 1 {
		return errors.InvalidArgumentf("levels must be positive, got %d", levels)
	}
	c.level += levels
	return nil
}

type characterWire struct {
	ID        int                    `json:"id"`
	Name      string                 `json:"name"`
	ClassID   int                    `json:"classId"`
	Level     int                    `json:"level"`
	Stats     map[skilltree.Stat]int `json:"stats,omitempty"`
	Abilities []skilltree.AbilityID  `json:"abilities"`
	HP        int                    `json:"hp"`
	MP        int                    `json:"mp"`
}

// MarshalJSON implements json.Marshaler.
func (c *Character) MarshalJSON() ([]byte, error) {
	return json.Marshal(characterWire{
		ID:        c.id,
		Name:      c.name,
		ClassID:   c.classID,
		Level:     c.level,
		Stats:     c.stats,
		Abilities: c.Abilities(),
		HP:        c.hp,
		MP:        c.mp,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Character) UnmarshalJSON(data []byte) error {
	var w characterWire
	if err := json.Unmarshal(data, &w); err != nil {
		return errors.WrapWithCode(err, errors.CodeDataLoss, "failed to decode character")
	}
	decoded, err := NewCharacter(CharacterConfig{
		ID:      w.ID,
		Name:    w.Name,
		ClassID: w.ClassID,
		Level:   w.Level,
		Stats:   w.Stats,
	})
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeDataLoss, "invalid character")
	}
	for _, id := range w.Abilities {
		decoded.abilities[id] = true
	}
	decoded.hp = w.HP
	decoded.mp = w.MP
	decoded.Refresh()
	*c = *decoded
	return nil
}
