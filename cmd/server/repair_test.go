package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-skilltrees/internal/errors"
	"github.com/KirkDiggler/rpg-skilltrees/internal/orchestrators/progression"
	progressionmock "github.com/KirkDiggler/rpg-skilltrees/internal/orchestrators/progression/mock"
	"github.com/KirkDiggler/rpg-skilltrees/internal/repositories/save"
	savemock "github.com/KirkDiggler/rpg-skilltrees/internal/repositories/save/mock"
)

func TestFindBrokenSaves(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockRepo := savemock.NewMockRepository(ctrl)
	mockService := progressionmock.NewMockService(ctrl)

	mockRepo.EXPECT().
		List(ctx, save.ListInput{}).
		Return(&save.ListOutput{IDs: []string{"fine", "gone", "stale"}}, nil)
	mockService.EXPECT().
		GetSave(ctx, &progression.GetSaveInput{SaveID: "fine"}).
		Return(&progression.GetSaveOutput{SaveID: "fine"}, nil)
	mockService.EXPECT().
		GetSave(ctx, &progression.GetSaveInput{SaveID: "gone"}).
		Return(nil, errors.NotFound("save gone not found"))
	mockService.EXPECT().
		GetSave(ctx, &progression.GetSaveInput{SaveID: "stale"}).
		Return(nil, errors.DataLoss("tree ghost is not in the catalog"))

	broken, checked, err := findBrokenSaves(ctx, mockRepo, mockService)
	require.NoError(t, err)
	assert.Equal(t, 2, checked)
	require.Len(t, broken, 1)
	assert.Equal(t, "stale", broken[0].ID)
	assert.Contains(t, broken[0].Reason, "ghost")
}

func TestFindBrokenSavesStopsOnStorageErrors(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockRepo := savemock.NewMockRepository(ctrl)
	mockService := progressionmock.NewMockService(ctrl)

	mockRepo.EXPECT().
		List(ctx, save.ListInput{}).
		Return(&save.ListOutput{IDs: []string{"a"}}, nil)
	mockService.EXPECT().
		GetSave(ctx, gomock.Any()).
		Return(nil, errors.Internal("connection reset"))

	_, _, err := findBrokenSaves(ctx, mockRepo, mockService)
	require.Error(t, err)
	assert.Equal(t, errors.CodeInternal, errors.GetCode(err))
}

func TestDeleteBrokenSaves(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockService := progressionmock.NewMockService(ctrl)

	mockService.EXPECT().
		DeleteSave(ctx, &progression.DeleteSaveInput{SaveID: "a"}).
		Return(&progression.DeleteSaveOutput{}, nil)
	mockService.EXPECT().
		DeleteSave(ctx, &progression.DeleteSaveInput{SaveID: "b"}).
		Return(nil, errors.NotFound("save b not found"))

	var out bytes.Buffer
	deleteBrokenSaves(ctx, mockService, []brokenSave{{ID: "a"}, {ID: "b"}}, &out)
	assert.Contains(t, out.String(), "Deleted a")
	assert.Contains(t, out.String(), "Failed to delete b")
}

func TestConfirm(t *testing.T) {
	var out bytes.Buffer
	assert.True(t, confirm(strings.NewReader("yes\n"), &out))
	assert.False(t, confirm(strings.NewReader("no\n"), &out))
	assert.False(t, confirm(strings.NewReader(""), &out))
}
