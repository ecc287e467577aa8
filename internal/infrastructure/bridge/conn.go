package bridge

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/flashmark/internal/application/usecase"
	"github.com/bnema/flashmark/internal/infrastructure/debounce"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

const writeTimeout = 10 * time.Second

// conn is one extension connection. Writes are serialized; reads happen
// only in the server's message loop.
type conn struct {
	id      string
	ws      *websocket.Conn
	limiter *rate.Limiter
	search  *debounce.Scheduler[*usecase.SearchOutput]

	mu sync.Mutex
}

func newConn(id string, ws *websocket.Conn, limiter *rate.Limiter, search *debounce.Scheduler[*usecase.SearchOutput]) *conn {
	return &conn{id: id, ws: ws, limiter: limiter, search: search}
}

// ID returns the connection identifier used in logs.
func (c *conn) ID() string {
	return c.id
}

func (c *conn) writeEnvelope(env Envelope) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.ws.WriteJSON(env)
}

// SendCommand writes a command envelope.
func (c *conn) SendCommand(cmd CommandPayload) error {
	env, err := newEnvelope(TypeCommand, "", cmd)
	if err != nil {
		return err
	}
	return c.writeEnvelope(env)
}

func (c *conn) respond(id string, data any, err error) error {
	payload := ResponsePayload{OK: err == nil, Data: data}
	if err != nil {
		payload.Data = nil
		payload.Error = err.Error()
	}
	env, encErr := newEnvelope(TypeResponse, id, payload)
	if encErr != nil {
		return encErr
	}
	return c.writeEnvelope(env)
}

func (c *conn) respondError(id, message string) error {
	env, err := newEnvelope(TypeResponse, id, ResponsePayload{OK: false, Error: message})
	if err != nil {
		return err
	}
	return c.writeEnvelope(env)
}

// wait blocks until the limiter admits one more inbound message.
func (c *conn) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

func (c *conn) close() {
	if c.search != nil {
		c.search.Close()
	}
	_ = c.ws.Close()
}
