package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/flashmark/internal/application/usecase"
	"github.com/bnema/flashmark/internal/domain/entity"
	repomocks "github.com/bnema/flashmark/internal/domain/repository/mocks"
	"github.com/bnema/flashmark/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func TestManageSettingsUseCase_Get_FallsBackToDefaults(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)
	repo.EXPECT().GetAll(mock.Anything).Return(map[string]string{}, nil)

	uc := usecase.NewManageSettingsUseCase(repo, "duckduckgo", "")

	got, err := uc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.Settings{SearchEngine: "duckduckgo", ResetURL: entity.DefaultResetURL}, got)
}

func TestManageSettingsUseCase_Get_StoredValuesWin(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)
	repo.EXPECT().GetAll(mock.Anything).Return(map[string]string{
		entity.SettingSearchEngine: "claude",
		entity.SettingResetURL:     "https://start.example",
	}, nil)

	uc := usecase.NewManageSettingsUseCase(repo, "google", "")

	got, err := uc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "claude", got.SearchEngine)
	assert.Equal(t, "https://start.example", got.ResetURL)
}

func TestManageSettingsUseCase_Get_IgnoresUnknownStoredEngine(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)
	repo.EXPECT().GetAll(mock.Anything).Return(map[string]string{entity.SettingSearchEngine: "altavista"}, nil)

	uc := usecase.NewManageSettingsUseCase(repo, "", "")

	template, err := uc.SearchTemplate(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://www.google.com/search?q=", template)
}

func TestManageSettingsUseCase_Get_WrapsRepositoryError(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)
	boom := errors.New("disk gone")
	repo.EXPECT().GetAll(mock.Anything).Return(nil, boom)

	_, err := usecase.NewManageSettingsUseCase(repo, "", "").Get(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestManageSettingsUseCase_SetSearchEngine(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)
	repo.EXPECT().Set(mock.Anything, entity.SettingSearchEngine, "brave").Return(nil).Once()

	uc := usecase.NewManageSettingsUseCase(repo, "", "")

	require.NoError(t, uc.SetSearchEngine(ctx, " brave "))

	err := uc.SetSearchEngine(ctx, "altavista")
	assert.ErrorIs(t, err, usecase.ErrUnknownEngine)
}

func TestManageSettingsUseCase_SetResetURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "blank restores default", input: "  ", want: entity.DefaultResetURL},
		{name: "explicit url kept", input: "chrome://newtab", want: "chrome://newtab"},
		{name: "bare domain normalized", input: "start.example.com", want: "https://start.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			repo := repomocks.NewMockSettingsRepository(t)
			repo.EXPECT().Set(mock.Anything, entity.SettingResetURL, tt.want).Return(nil).Once()

			got, err := usecase.NewManageSettingsUseCase(repo, "", "").SetResetURL(ctx, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
