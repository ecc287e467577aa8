package usecase_test

import (
	"errors"
	"testing"

	"github.com/bnema/flashmark/internal/application/port"
	portmocks "github.com/bnema/flashmark/internal/application/port/mocks"
	"github.com/bnema/flashmark/internal/application/usecase"
	"github.com/bnema/flashmark/internal/domain/entity"
	repomocks "github.com/bnema/flashmark/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type actionFixture struct {
	tabs       *portmocks.MockTabSource
	bookmarks  *portmocks.MockBookmarkSource
	controller *portmocks.MockTabController
	settings   *repomocks.MockSettingsRepository
	uc         *usecase.ExecuteActionUseCase
}

func newActionFixture(t *testing.T) actionFixture {
	t.Helper()
	f := actionFixture{
		tabs:       portmocks.NewMockTabSource(t),
		bookmarks:  portmocks.NewMockBookmarkSource(t),
		controller: portmocks.NewMockTabController(t),
		settings:   repomocks.NewMockSettingsRepository(t),
	}
	settings := usecase.NewManageSettingsUseCase(f.settings, "", "")
	f.uc = usecase.NewExecuteActionUseCase(f.tabs, f.bookmarks, f.controller, settings)
	return f
}

func TestExecuteActionUseCase_Cleanup(t *testing.T) {
	ctx := testContext()
	f := newActionFixture(t)

	f.tabs.EXPECT().Tabs(mock.Anything).Return([]entity.Tab{
		{ID: 1, URL: "https://a.com/x"},
		{ID: 2, URL: "https://a.com/y"},
		{ID: 3, URL: "https://b.com"},
	}, nil)
	f.bookmarks.EXPECT().Bookmarks(mock.Anything).Return([]entity.Bookmark{{ID: "1", URL: "https://a.com"}}, nil)
	f.controller.EXPECT().Remove(mock.Anything, []entity.TabID{2, 3}).Return(nil).Once()

	got, err := f.uc.Execute(ctx, entity.ActionCleanup, false)
	require.NoError(t, err)
	assert.True(t, got.Success)
	assert.Equal(t, 2, got.Closed)
	assert.Equal(t, 1, got.Kept)
}

func TestExecuteActionUseCase_CleanupNothingToClose(t *testing.T) {
	ctx := testContext()
	f := newActionFixture(t)

	f.tabs.EXPECT().Tabs(mock.Anything).Return([]entity.Tab{{ID: 1, URL: "chrome://newtab"}}, nil)
	f.bookmarks.EXPECT().Bookmarks(mock.Anything).Return(nil, nil)

	got, err := f.uc.Execute(ctx, entity.ActionCleanup, false)
	require.NoError(t, err)
	assert.True(t, got.Success)
	assert.Zero(t, got.Closed)
	f.controller.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}

func TestExecuteActionUseCase_ResetClosesSnapshotOnly(t *testing.T) {
	ctx := testContext()
	f := newActionFixture(t)

	f.settings.EXPECT().GetAll(mock.Anything).Return(map[string]string{entity.SettingResetURL: "https://home.example"}, nil)
	f.tabs.EXPECT().Tabs(mock.Anything).Return([]entity.Tab{{ID: 1}, {ID: 2}}, nil).Once()
	createCall := f.controller.EXPECT().Create(mock.Anything, "https://home.example").Return(nil).Once()
	f.controller.EXPECT().Remove(mock.Anything, []entity.TabID{1, 2}).Return(nil).Once().NotBefore(createCall)

	got, err := f.uc.Execute(ctx, entity.ActionReset, false)
	require.NoError(t, err)
	assert.Equal(t, entity.ActionResult{
		Success: true,
		Message: "Closed 2 tabs",
		URL:     "https://home.example",
		Closed:  2,
	}, got)
}

func TestExecuteActionUseCase_BrowserPage(t *testing.T) {
	ctx := testContext()
	f := newActionFixture(t)
	f.controller.EXPECT().Create(mock.Anything, "chrome://history").Return(nil).Once()

	got, err := f.uc.Execute(ctx, entity.ActionOpenHistory, false)
	require.NoError(t, err)
	assert.True(t, got.Success)
	assert.Equal(t, "Opened Open History", got.Message)
}

func TestExecuteActionUseCase_OpenSettings(t *testing.T) {
	ctx := testContext()
	f := newActionFixture(t)
	f.controller.EXPECT().OpenSettingsPage(mock.Anything).Return(nil).Once()

	got, err := f.uc.Execute(ctx, entity.ActionReset, true)
	require.NoError(t, err)
	assert.Equal(t, entity.ActionResult{Success: true, Message: "Opened settings"}, got)
}

func TestExecuteActionUseCase_SettingsAndReload(t *testing.T) {
	ctx := testContext()
	f := newActionFixture(t)
	f.controller.EXPECT().ReloadExtension(mock.Anything).Return(nil).Once()

	got, err := f.uc.Execute(ctx, entity.ActionSettings, false)
	require.NoError(t, err)
	assert.Equal(t, "Settings handled inline", got.Message)

	got, err = f.uc.Execute(ctx, entity.ActionReloadExtension, false)
	require.NoError(t, err)
	assert.True(t, got.Success)
}

func TestExecuteActionUseCase_UnknownAction(t *testing.T) {
	ctx := testContext()
	f := newActionFixture(t)

	got, err := f.uc.Execute(ctx, entity.ActionID("teleport"), false)
	require.NoError(t, err)
	assert.Equal(t, entity.ActionResult{Success: false, Error: "unknown action"}, got)
}

func TestExecuteActionUseCase_HostErrorsPropagate(t *testing.T) {
	ctx := testContext()
	f := newActionFixture(t)
	f.controller.EXPECT().Create(mock.Anything, mock.Anything).Return(port.ErrNotConnected)

	_, err := f.uc.Execute(ctx, entity.ActionOpenDownloads, false)
	assert.ErrorIs(t, err, port.ErrNotConnected)

	f.tabs.EXPECT().Tabs(mock.Anything).Return(nil, errors.New("boom"))
	_, err = f.uc.Execute(ctx, entity.ActionCleanup, false)
	assert.Error(t, err)
}

func TestExecuteActionUseCase_GetActionMeta(t *testing.T) {
	f := newActionFixture(t)

	meta := f.uc.GetActionMeta(entity.ActionReset)
	require.NotNil(t, meta)
	assert.True(t, meta.HasSettings)

	assert.Nil(t, f.uc.GetActionMeta("nope"))
}
