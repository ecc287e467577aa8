package bridge

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/flashmark/internal/application/port"
	"github.com/bnema/flashmark/internal/domain/entity"
	"github.com/bnema/flashmark/internal/logging"
)

var _ port.TabController = (*Controller)(nil)

// commandSender delivers a command envelope to one extension connection.
type commandSender interface {
	ID() string
	SendCommand(cmd CommandPayload) error
}

// Controller sends browser commands to the most recently connected
// extension.
type Controller struct {
	mu    sync.RWMutex
	conns []commandSender
}

// NewController creates a controller with no connections.
func NewController() *Controller {
	return &Controller{}
}

// Connected reports whether any extension is attached.
func (c *Controller) Connected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.conns) > 0
}

func (c *Controller) attach(conn commandSender) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conns = append(c.conns, conn)
}

func (c *Controller) detach(conn commandSender) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, existing := range c.conns {
		if existing == conn {
			c.conns = append(c.conns[:i], c.conns[i+1:]...)
			return
		}
	}
}

func (c *Controller) latest() (commandSender, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.conns) == 0 {
		return nil, false
	}
	return c.conns[len(c.conns)-1], true
}

func (c *Controller) send(ctx context.Context, cmd CommandPayload) error {
	conn, ok := c.latest()
	if !ok {
		return port.ErrNotConnected
	}
	logging.FromContext(ctx).Debug().
		Str("command", cmd.Name).
		Str("conn_id", conn.ID()).
		Msg("sending command")
	if err := conn.SendCommand(cmd); err != nil {
		return fmt.Errorf("failed to send %s: %w", cmd.Name, err)
	}
	return nil
}

// Activate focuses a tab.
func (c *Controller) Activate(ctx context.Context, id entity.TabID) error {
	return c.send(ctx, CommandPayload{Name: CommandTabsActivate, TabID: id})
}

// Create opens url in a new tab.
func (c *Controller) Create(ctx context.Context, url string) error {
	return c.send(ctx, CommandPayload{Name: CommandTabsCreate, URL: url})
}

// Remove closes tabs. An empty list sends nothing.
func (c *Controller) Remove(ctx context.Context, ids []entity.TabID) error {
	if len(ids) == 0 {
		return nil
	}
	return c.send(ctx, CommandPayload{Name: CommandTabsRemove, TabIDs: ids})
}

// OpenSettingsPage opens the extension options page.
func (c *Controller) OpenSettingsPage(ctx context.Context) error {
	return c.send(ctx, CommandPayload{Name: CommandOpenOptionsPage})
}

// ReloadExtension asks the extension to reload itself.
func (c *Controller) ReloadExtension(ctx context.Context) error {
	return c.send(ctx, CommandPayload{Name: CommandReloadExtension})
}
