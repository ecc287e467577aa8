package usecase_test

import (
	"testing"

	"github.com/bnema/flashmark/internal/application/port"
	portmocks "github.com/bnema/flashmark/internal/application/port/mocks"
	"github.com/bnema/flashmark/internal/application/usecase"
	"github.com/bnema/flashmark/internal/domain/entity"
	"github.com/bnema/flashmark/internal/domain/mru"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func threeTabs() []entity.Tab {
	return []entity.Tab{
		{ID: 1, Title: "One", URL: "https://one.example"},
		{ID: 2, Title: "", URL: "https://two.example"},
		{ID: 3, Title: "Three", URL: "https://three.example"},
	}
}

func TestQuickSwitchUseCase_MRUTabs(t *testing.T) {
	ctx := testContext()
	tabs := portmocks.NewMockTabSource(t)
	tabs.EXPECT().Tabs(mock.Anything).Return(threeTabs(), nil)

	tracker := mru.NewTracker()
	tracker.Initialize([]entity.TabID{1, 2, 3}, 2)
	tracker.Activate(3)

	uc := usecase.NewQuickSwitchUseCase(tracker, tabs, nil, nil)

	got, err := uc.MRUTabs(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"3", "2", "1"}, []string{got[0].ID, got[1].ID, got[2].ID})
	assert.Equal(t, entity.UntitledTitle, got[1].Title)
	assert.Equal(t, "two.example", got[1].Subtitle)
}

func TestQuickSwitchUseCase_SwitchToPrevious(t *testing.T) {
	ctx := testContext()
	controller := portmocks.NewMockTabController(t)
	controller.EXPECT().Activate(mock.Anything, entity.TabID(2)).Return(nil).Once()

	tracker := mru.NewTracker()
	tracker.Initialize([]entity.TabID{1, 2, 3}, 2)
	tracker.Activate(3)

	uc := usecase.NewQuickSwitchUseCase(tracker, nil, controller, nil)

	id, switched, err := uc.SwitchToPrevious(ctx)
	require.NoError(t, err)
	assert.True(t, switched)
	assert.Equal(t, entity.TabID(2), id)
}

func TestQuickSwitchUseCase_SwitchToPrevious_SingleTab(t *testing.T) {
	ctx := testContext()
	controller := portmocks.NewMockTabController(t)

	tracker := mru.NewTracker()
	tracker.Initialize([]entity.TabID{1}, 1)

	_, switched, err := usecase.NewQuickSwitchUseCase(tracker, nil, controller, nil).SwitchToPrevious(ctx)
	require.NoError(t, err)
	assert.False(t, switched)
}

func TestQuickSwitchUseCase_SwitchTo_WithoutController(t *testing.T) {
	err := usecase.NewQuickSwitchUseCase(mru.NewTracker(), nil, nil, nil).SwitchTo(testContext(), 1)
	assert.ErrorIs(t, err, port.ErrNotConnected)
}
