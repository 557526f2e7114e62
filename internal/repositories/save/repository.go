// Package save provides the interface for save game persistence
package save

//go:generate mockgen -destination=mock/mock_repository.go -package=savemock github.com/KirkDiggler/rpg-skilltrees/internal/repositories/save Repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KirkDiggler/rpg-skilltrees/internal/entities"
)

// Save is one game save: the shared world, its characters and the
// serialized progression profile of each character.
type Save struct {
	ID         string                      `json:"id"`
	World      *entities.World             `json:"world"`
	Characters map[int]*entities.Character `json:"characters"`
	Profiles   map[int]json.RawMessage     `json:"profiles"`
	// Version increases on every update and guards concurrent writers.
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Repository defines the interface for save persistence
type Repository interface {
	// Create stores a new save
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a save with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a save by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the save doesn't exist
	// Returns errors.DataLoss if the stored record cannot be decoded
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing save
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the save doesn't exist
	// Returns errors.Aborted if the save changed since it was read
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete deletes a save by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the save doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns the IDs of every stored save, sorted
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a save
type CreateInput struct {
	Save *Save
}

// CreateOutput defines the output for creating a save
type CreateOutput struct {
	Save *Save
}

// GetInput defines the input for getting a save
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a save
type GetOutput struct {
	Save *Save
}

// UpdateInput defines the input for updating a save. Save.Version must be
// the version that was read.
type UpdateInput struct {
	Save *Save
}

// UpdateOutput defines the output for updating a save
type UpdateOutput struct {
	Save *Save
}

// DeleteInput defines the input for deleting a save
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a save
type DeleteOutput struct{}

// ListInput defines the input for listing saves
type ListInput struct{}

// ListOutput defines the output for listing saves
type ListOutput struct {
	IDs []string
}
