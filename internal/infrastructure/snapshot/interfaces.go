package snapshot

import (
	"context"

	"github.com/bnema/flashmark/internal/domain/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_snapshot.go -package=mock_snapshot

// TabProvider exposes the live tab mirror.
type TabProvider interface {
	Tabs(ctx context.Context) ([]entity.Tab, error)
	// Synced reports whether the host has sent a full snapshot yet.
	Synced() bool
}

// Orderer ranks open tabs most recent first.
type Orderer interface {
	Snapshot(open []entity.Tab) []entity.Tab
}
