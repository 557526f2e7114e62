// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-skilltrees/internal/repositories/save"
	savemock "github.com/KirkDiggler/rpg-skilltrees/internal/repositories/save/mock"
)

// ExpectSaveGet sets up a mock expectation for getting a save from repository
func ExpectSaveGet(
	ctx context.Context, mockRepo *savemock.MockRepository,
	saveID string, stored *save.Save, err error,
) *gomock.Call {
	var out *save.GetOutput
	if err == nil {
		out = &save.GetOutput{Save: stored}
	}
	return mockRepo.EXPECT().
		Get(ctx, save.GetInput{ID: saveID}).
		Return(out, err)
}

// ExpectSaveCreate sets up a mock expectation for creating a save
func ExpectSaveCreate(ctx context.Context, mockRepo *savemock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input save.CreateInput) (*save.CreateOutput, error) {
			// Simulate repository behavior - it would set version and timestamps
			stored := *input.Save
			stored.Version = 1
			stored.CreatedAt = clock.Now()
			stored.UpdatedAt = stored.CreatedAt
			return &save.CreateOutput{Save: &stored}, nil
		})
}

// ExpectSaveUpdate sets up a mock expectation for updating a save
func ExpectSaveUpdate(ctx context.Context, mockRepo *savemock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input save.UpdateInput) (*save.UpdateOutput, error) {
			// Simulate repository behavior - it would bump the version
			stored := *input.Save
			stored.Version++
			stored.UpdatedAt = clock.Now()
			return &save.UpdateOutput{Save: &stored}, nil
		})
}

// ExpectSaveDelete sets up a mock expectation for deleting a save
func ExpectSaveDelete(ctx context.Context, mockRepo *savemock.MockRepository, saveID string, err error) {
	var out *save.DeleteOutput
	if err == nil {
		out = &save.DeleteOutput{}
	}
	mockRepo.EXPECT().
		Delete(ctx, save.DeleteInput{ID: saveID}).
		Return(out, err)
}

var clock = &testClock{}

type testClock struct{}

func (c *testClock) Now() time.Time {
	return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}
