package testutils

import (
	"github.com/KirkDiggler/rpg-skilltrees/internal/entities"
	"github.com/KirkDiggler/rpg-skilltrees/internal/repositories/save"
	"github.com/KirkDiggler/rpg-skilltrees/internal/skilltree"
	"github.com/KirkDiggler/rpg-skilltrees/internal/testutils/builders"
)

const (
	// TestCharacterName is the default character name for test fixtures
	TestCharacterName = "Harold"

	// TestCharacterID is the character registered for its own trees in the
	// sample catalog
	TestCharacterID = 1

	// TestClassID is the class registered for the knight tree in the sample
	// catalog
	TestClassID = 2
)

// CreateTestSave creates a save with one level 5 character of the test class
// and a weapon in the party inventory
func CreateTestSave(id string) (*save.Save, error) {
	return builders.NewSaveBuilder().
		WithID(id).
		WithCharacter(entities.CharacterConfig{
			ID:      TestCharacterID,
			Name:    TestCharacterName,
			ClassID: TestClassID,
			Level:   5,
			Stats: map[skilltree.Stat]int{
				skilltree.StatMaxHP: 450,
				skilltree.StatMaxMP: 90,
			},
		}).
		WithItem(skilltree.ItemKindWeapon, 4, 1).
		Build()
}
