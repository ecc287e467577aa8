package snapshot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/flashmark/internal/domain/entity"
	"github.com/bnema/flashmark/internal/domain/mru"
	repomocks "github.com/bnema/flashmark/internal/domain/repository/mocks"
	mock_snapshot "github.com/bnema/flashmark/internal/infrastructure/snapshot/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var openTabs = []entity.Tab{
	{ID: 1, URL: "https://a.example", Index: 0},
	{ID: 2, URL: "https://b.example", Index: 1},
}

func TestService_SaveNow_PersistsMRUOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock_snapshot.NewMockTabProvider(ctrl)
	provider.EXPECT().Synced().Return(true)
	provider.EXPECT().Tabs(gomock.Any()).Return(openTabs, nil)

	tracker := mru.NewTracker()
	tracker.Initialize([]entity.TabID{1, 2}, 2)

	repo := repomocks.NewMockTabSnapshotRepository(t)
	repo.EXPECT().
		Replace(mock.Anything, []entity.Tab{openTabs[1], openTabs[0]}).
		Return(nil)

	svc := NewService(provider, tracker, repo, time.Hour)
	svc.dirty = true

	require.NoError(t, svc.SaveNow(context.Background()))
	assert.False(t, svc.Dirty())
}

func TestService_SaveNow_NotDirtyIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock_snapshot.NewMockTabProvider(ctrl)
	order := mock_snapshot.NewMockOrderer(ctrl)
	repo := repomocks.NewMockTabSnapshotRepository(t)

	svc := NewService(provider, order, repo, time.Hour)
	require.NoError(t, svc.SaveNow(context.Background()))
}

func TestService_SaveSnapshot_WaitsForSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock_snapshot.NewMockTabProvider(ctrl)
	provider.EXPECT().Synced().Return(false)
	order := mock_snapshot.NewMockOrderer(ctrl)
	repo := repomocks.NewMockTabSnapshotRepository(t)

	svc := NewService(provider, order, repo, time.Hour)
	svc.dirty = true

	require.NoError(t, svc.SaveNow(context.Background()))
	assert.True(t, svc.Dirty(), "pending save is kept until the host syncs")
}

func TestService_SaveSnapshot_RetriesBusyAndSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock_snapshot.NewMockTabProvider(ctrl)
	provider.EXPECT().Synced().Return(true)
	provider.EXPECT().Tabs(gomock.Any()).Return(openTabs, nil)
	order := mock_snapshot.NewMockOrderer(ctrl)
	order.EXPECT().Snapshot(openTabs).Return(openTabs)

	repo := repomocks.NewMockTabSnapshotRepository(t)
	calls := 0
	repo.EXPECT().
		Replace(mock.Anything, openTabs).
		RunAndReturn(func(_ context.Context, _ []entity.Tab) error {
			calls++
			if calls == 1 {
				return errors.New("sqlite3: database is locked")
			}
			return nil
		})

	svc := NewService(provider, order, repo, time.Hour)
	svc.retryDelay = time.Millisecond
	svc.dirty = true

	require.NoError(t, svc.saveSnapshot(context.Background()))
	assert.Equal(t, 2, calls)
	assert.False(t, svc.Dirty())
}

func TestService_SaveSnapshot_RetriesBusyAndFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock_snapshot.NewMockTabProvider(ctrl)
	provider.EXPECT().Synced().Return(true)
	provider.EXPECT().Tabs(gomock.Any()).Return(openTabs, nil)
	order := mock_snapshot.NewMockOrderer(ctrl)
	order.EXPECT().Snapshot(gomock.Any()).Return(openTabs)

	busy := errors.New("SQLITE_BUSY")
	repo := repomocks.NewMockTabSnapshotRepository(t)
	calls := 0
	repo.EXPECT().
		Replace(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ []entity.Tab) error {
			calls++
			return busy
		})

	svc := NewService(provider, order, repo, time.Hour)
	svc.retryDelay = time.Millisecond
	svc.dirty = true

	err := svc.saveSnapshot(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, busy)
	assert.Equal(t, svc.retries+1, calls)
	assert.True(t, svc.Dirty())
}

func TestService_SaveSnapshot_DoesNotRetryOtherErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock_snapshot.NewMockTabProvider(ctrl)
	provider.EXPECT().Synced().Return(true)
	provider.EXPECT().Tabs(gomock.Any()).Return(openTabs, nil)
	order := mock_snapshot.NewMockOrderer(ctrl)
	order.EXPECT().Snapshot(gomock.Any()).Return(openTabs)

	readOnly := errors.New("attempt to write a readonly database")
	repo := repomocks.NewMockTabSnapshotRepository(t)
	repo.EXPECT().Replace(mock.Anything, mock.Anything).Return(readOnly).Once()

	svc := NewService(provider, order, repo, time.Hour)
	svc.retryDelay = time.Millisecond
	svc.dirty = true

	err := svc.saveSnapshot(context.Background())
	require.ErrorIs(t, err, readOnly)
	assert.True(t, svc.Dirty())
}

func TestService_MarkDirtyDebounces(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock_snapshot.NewMockTabProvider(ctrl)
	provider.EXPECT().Synced().Return(true)
	provider.EXPECT().Tabs(gomock.Any()).Return(openTabs, nil)
	order := mock_snapshot.NewMockOrderer(ctrl)
	order.EXPECT().Snapshot(gomock.Any()).Return(openTabs)

	saved := make(chan struct{})
	repo := repomocks.NewMockTabSnapshotRepository(t)
	repo.EXPECT().
		Replace(mock.Anything, openTabs).
		RunAndReturn(func(_ context.Context, _ []entity.Tab) error {
			close(saved)
			return nil
		}).Once()

	svc := NewService(provider, order, repo, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc.Start(ctx)

	for range 5 {
		svc.MarkDirty()
	}

	select {
	case <-saved:
	case <-time.After(2 * time.Second):
		t.Fatal("snapshot was never saved")
	}
	require.NoError(t, svc.Stop(context.Background()))
}

func TestNewService_DefaultInterval(t *testing.T) {
	svc := NewService(nil, nil, nil, 0)
	assert.Equal(t, defaultInterval, svc.interval)

	svc.SetInterval(time.Second)
	assert.Equal(t, time.Second, svc.interval)
}
