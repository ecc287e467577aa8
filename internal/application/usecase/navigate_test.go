package usecase_test

import (
	"testing"

	portmocks "github.com/bnema/flashmark/internal/application/port/mocks"
	"github.com/bnema/flashmark/internal/application/usecase"
	"github.com/bnema/flashmark/internal/domain/entity"
	repomocks "github.com/bnema/flashmark/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNavigateOrSearchUseCase_Execute(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		engine string
		want   string
	}{
		{name: "domain", query: "example.com", engine: "google", want: "https://example.com"},
		{name: "localhost", query: "localhost:3000/api", engine: "google", want: "http://localhost:3000/api"},
		{name: "search", query: "how to cook rice", engine: "duckduckgo", want: "https://duckduckgo.com/?q=how%20to%20cook%20rice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			repo := repomocks.NewMockSettingsRepository(t)
			controller := portmocks.NewMockTabController(t)

			repo.EXPECT().GetAll(mock.Anything).Return(map[string]string{entity.SettingSearchEngine: tt.engine}, nil)
			controller.EXPECT().Create(mock.Anything, tt.want).Return(nil).Once()

			uc := usecase.NewNavigateOrSearchUseCase(usecase.NewManageSettingsUseCase(repo, "", ""), controller)

			got, err := uc.Execute(ctx, tt.query)
			require.NoError(t, err)
			assert.True(t, got.Success)
			assert.Equal(t, tt.want, got.URL)
		})
	}
}

func TestNavigateOrSearchUseCase_EmptyQuery(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)
	controller := portmocks.NewMockTabController(t)

	uc := usecase.NewNavigateOrSearchUseCase(usecase.NewManageSettingsUseCase(repo, "", ""), controller)

	got, err := uc.Execute(ctx, "   ")
	require.NoError(t, err)
	assert.False(t, got.Success)
}

func TestNavigateOrSearchUseCase_Resolve(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)
	repo.EXPECT().GetAll(mock.Anything).Return(map[string]string{}, nil)

	uc := usecase.NewNavigateOrSearchUseCase(usecase.NewManageSettingsUseCase(repo, "bing", ""), nil)

	target, isURL, err := uc.Resolve(ctx, "golang generics")
	require.NoError(t, err)
	assert.False(t, isURL)
	assert.Equal(t, "https://www.bing.com/search?q=golang%20generics", target)
}
