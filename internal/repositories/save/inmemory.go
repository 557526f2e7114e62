package save

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/KirkDiggler/rpg-skilltrees/internal/errors"
	"github.com/KirkDiggler/rpg-skilltrees/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage. Saves
// are kept encoded so callers never share state with the store.
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string][]byte
}

// NewInMemory creates a new in-memory repository
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock: c,
		store: make(map[string][]byte),
	}
}

// Create stores a new save
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateSave(input.Save); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Save.ID]; exists {
		return nil, errors.AlreadyExistsf("save with ID %s already exists", input.Save.ID)
	}

	created := *input.Save
	now := r.clock.Now()
	created.Version = 1
	created.CreatedAt = now
	created.UpdatedAt = now

	if err := r.put(&created); err != nil {
		return nil, err
	}
	out, err := decode(string(r.store[created.ID]))
	if err != nil {
		return nil, err
	}
	return &CreateOutput{Save: out}, nil
}

// Get retrieves a save by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSaveIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("save with ID %s not found", input.ID)
	}
	s, err := decode(string(data))
	if err != nil {
		return nil, err
	}
	return &GetOutput{Save: s}, nil
}

// Update replaces an existing save when its version still matches
func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateSave(input.Save); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	data, exists := r.store[input.Save.ID]
	if !exists {
		return nil, errors.NotFoundf("save with ID %s not found", input.Save.ID)
	}
	existing, err := decode(string(data))
	if err != nil {
		return nil, err
	}
	if existing.Version != input.Save.Version {
		return nil, errors.Newf(errors.CodeAborted, "save %s changed: version %d, have %d",
			input.Save.ID, existing.Version, input.Save.Version)
	}

	updated := *input.Save
	updated.Version++
	updated.UpdatedAt = r.clock.Now()
	if err := r.put(&updated); err != nil {
		return nil, err
	}

	out, err := decode(string(r.store[updated.ID]))
	if err != nil {
		return nil, err
	}
	return &UpdateOutput{Save: out}, nil
}

// Delete removes a save
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSaveIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFoundf("save with ID %s not found", input.ID)
	}
	delete(r.store, input.ID)
	return &DeleteOutput{}, nil
}

// List returns the IDs of every stored save, sorted
func (r *InMemoryRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.store))
	for id := range r.store {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return &ListOutput{IDs: ids}, nil
}

func (r *InMemoryRepository) put(s *Save) error {
	data, err := json.Marshal(s)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal save")
	}
	r.store[s.ID] = data
	return nil
}

var _ Repository = (*InMemoryRepository)(nil)
