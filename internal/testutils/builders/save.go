// Package builders provides test data builders for creating test fixtures
package builders

import (
	"encoding/json"
	"time"

	"github.com/KirkDiggler/rpg-skilltrees/internal/entities"
	"github.com/KirkDiggler/rpg-skilltrees/internal/repositories/save"
	"github.com/KirkDiggler/rpg-skilltrees/internal/skilltree"
)

// SaveBuilder provides a fluent interface for building test Save instances
type SaveBuilder struct {
	save *save.Save
	err  error
}

// NewSaveBuilder creates a new builder with minimal defaults: an empty world,
// no characters and version 1.
func NewSaveBuilder() *SaveBuilder {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return &SaveBuilder{
		save: &save.Save{
			ID:         "save-test-123",
			World:      entities.NewWorld(),
			Characters: make(map[int]*entities.Character),
			Profiles:   make(map[int]json.RawMessage),
			Version:    1,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}
}

// WithID sets the save ID
func (b *SaveBuilder) WithID(id string) *SaveBuilder {
	b.save.ID = id
	return b
}

// WithVersion sets the stored version
func (b *SaveBuilder) WithVersion(version int64) *SaveBuilder {
	b.save.Version = version
	return b
}

// WithCharacter adds a character built from cfg
func (b *SaveBuilder) WithCharacter(cfg entities.CharacterConfig) *SaveBuilder {
	if b.err != nil {
		return b
	}
	character, err := entities.NewCharacter(cfg)
	if err != nil {
		b.err = err
		return b
	}
	b.save.Characters[cfg.ID] = character
	return b
}

// WithProfile stores a serialized progression profile for a character
func (b *SaveBuilder) WithProfile(characterID int, data json.RawMessage) *SaveBuilder {
	b.save.Profiles[characterID] = data
	return b
}

// WithItem puts items into the party inventory
func (b *SaveBuilder) WithItem(kind skilltree.ItemKind, id, amount int) *SaveBuilder {
	if b.err != nil {
		return b
	}
	b.err = b.save.World.GainItem(kind, id, amount)
	return b
}

// WithVariable sets a persistent variable
func (b *SaveBuilder) WithVariable(id, value int) *SaveBuilder {
	b.save.World.SetVariable(id, value)
	return b
}

// WithSwitch sets a persistent switch
func (b *SaveBuilder) WithSwitch(id int, on bool) *SaveBuilder {
	b.save.World.SetSwitch(id, on)
	return b
}

// WithCurrency deposits external currency for a class
func (b *SaveBuilder) WithCurrency(classID, amount int) *SaveBuilder {
	if b.err != nil {
		return b
	}
	b.err = b.save.World.Deposit(classID, amount)
	return b
}

// Build returns the save, or the first error a With call ran into
func (b *SaveBuilder) Build() (*save.Save, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.save, nil
}
