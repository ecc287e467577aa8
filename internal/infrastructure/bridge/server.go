package bridge

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/bnema/flashmark/internal/application/port"
	"github.com/bnema/flashmark/internal/application/usecase"
	"github.com/bnema/flashmark/internal/domain/entity"
	"github.com/bnema/flashmark/internal/infrastructure/debounce"
	"github.com/bnema/flashmark/internal/logging"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

const (
	defaultListenAddr = "127.0.0.1:7797"
	// WSPath is where the extension connects.
	WSPath = "/ws"
)

// extension origins accepted when no allow-list is configured.
var extensionSchemes = []string{"chrome-extension://", "moz-extension://"}

// Config holds the transport settings.
type Config struct {
	ListenAddr     string
	Token          string
	AllowedOrigins []string
	RateLimit      float64
	RateBurst      int
	SearchDebounce time.Duration
}

// Services are the use cases the bridge dispatches to.
type Services struct {
	Events   port.HostEvents
	Search   *usecase.SearchPaletteUseCase
	Open     *usecase.OpenResultUseCase
	Actions  *usecase.ExecuteActionUseCase
	Switch   *usecase.QuickSwitchUseCase
	Navigate *usecase.NavigateOrSearchUseCase
	Settings *usecase.ManageSettingsUseCase
}

// Server accepts extension connections and runs one message loop each.
type Server struct {
	cfg        Config
	state      *State
	controller *Controller
	svc        Services

	upgrader   websocket.Upgrader
	httpServer *http.Server
	baseCtx    context.Context
	cancelBase context.CancelFunc

	mu       sync.RWMutex
	debounce time.Duration
}

// NewServer wires the HTTP handler. ctx carries the logger and bounds
// every connection.
func NewServer(ctx context.Context, cfg Config, state *State, controller *Controller, svc Services) *Server {
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = defaultListenAddr
	}

	s := &Server{
		cfg:        cfg,
		state:      state,
		controller: controller,
		svc:        svc,
		debounce:   cfg.SearchDebounce,
	}
	s.baseCtx, s.cancelBase = context.WithCancel(ctx)
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin:     s.allowOrigin,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc(WSPath, s.handleWS)

	s.httpServer = &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		BaseContext:       func(_ net.Listener) context.Context { return s.baseCtx },
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Handler returns the HTTP handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// SetSearchDebounce changes the debounce delay for new connections.
func (s *Server) SetSearchDebounce(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debounce = d
}

// Start listens until Shutdown is called.
func (s *Server) Start() error {
	logging.FromContext(s.baseCtx).Info().Str("addr", s.cfg.ListenAddr).Msg("bridge listening")
	err := s.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown closes the listener and every open connection.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.cancelBase != nil {
		s.cancelBase()
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	resp := map[string]any{
		"ok":        true,
		"connected": s.controller.Connected(),
		"synced":    s.state.Synced(),
		"tabs":      s.state.Len(),
		"time":      time.Now().UTC().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (s *Server) allowOrigin(r *http.Request) bool {
	origin := strings.TrimRight(strings.TrimSpace(r.Header.Get("Origin")), "/")
	if origin == "" {
		// Native clients (CLI, tests) send no Origin.
		return true
	}

	if len(s.cfg.AllowedOrigins) > 0 {
		for _, allowed := range s.cfg.AllowedOrigins {
			if strings.EqualFold(origin, allowed) {
				return true
			}
		}
		return false
	}

	for _, scheme := range extensionSchemes {
		if strings.HasPrefix(origin, scheme) {
			return true
		}
	}

	originURL, err := url.Parse(origin)
	if err != nil || originURL.Host == "" {
		return false
	}
	return strings.EqualFold(originURL.Host, r.Host)
}

func (s *Server) authorizeRequest(r *http.Request) bool {
	if s.cfg.Token == "" {
		return true
	}

	if queryToken := strings.TrimSpace(r.URL.Query().Get("token")); queryToken != "" && secureEqual(queryToken, s.cfg.Token) {
		return true
	}

	headerToken := bearerToken(r.Header.Get("Authorization"))
	return headerToken != "" && secureEqual(headerToken, s.cfg.Token)
}

func bearerToken(authHeader string) string {
	const bearerPrefix = "Bearer "
	authHeader = strings.TrimSpace(authHeader)
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
}

func secureEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func (s *Server) newLimiter() *rate.Limiter {
	if s.cfg.RateLimit <= 0 {
		return nil
	}
	burst := s.cfg.RateBurst
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(s.cfg.RateLimit), burst)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !s.authorizeRequest(r) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		return
	}

	connID := logging.GenerateConnID()
	ctx := logging.WithConnID(r.Context(), connID)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	log := logging.FromContext(ctx)

	s.mu.RLock()
	delay := s.debounce
	s.mu.RUnlock()

	c := newConn(connID, ws, s.newLimiter(), debounce.NewScheduler(delay, s.runSearch))
	s.controller.attach(c)
	log.Info().Str("remote", r.RemoteAddr).Msg("extension connected")

	defer func() {
		s.controller.detach(c)
		c.close()
		log.Info().Msg("extension disconnected")
	}()

	// Unblock ReadMessage on shutdown.
	go func() {
		<-ctx.Done()
		_ = ws.Close()
	}()

	s.readLoop(ctx, c)
}

func (s *Server) readLoop(ctx context.Context, c *conn) {
	log := logging.FromContext(ctx)
	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(
				err,
				websocket.CloseNormalClosure,
				websocket.CloseGoingAway,
				websocket.CloseNoStatusReceived,
			) && ctx.Err() == nil {
				log.Warn().Err(err).Msg("websocket closed unexpectedly")
			}
			return
		}

		if err := c.wait(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			_ = c.respondError("", ErrCodeRateLimited)
			continue
		}

		var env Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			log.Debug().Err(err).Msg("invalid frame")
			_ = c.respondError("", ErrCodeInvalidPayload)
			continue
		}

		if err := s.dispatch(ctx, c, env); err != nil {
			log.Warn().Err(err).Str("type", env.Type).Msg("failed to write response")
		}
	}
}

// dispatch handles one envelope. The returned error is a write failure;
// handler failures are reported to the extension in the response.
func (s *Server) dispatch(ctx context.Context, c *conn, env Envelope) error {
	log := logging.FromContext(ctx)
	log.Trace().Str("type", env.Type).Str("id", env.ID).Msg("message received")

	switch env.Type {
	case EventTabsSnapshot, EventTabCreated, EventTabUpdated, EventTabActivated, EventTabRemoved, EventBookmarks:
		err := s.handleEvent(ctx, env)
		if err != nil {
			log.Warn().Err(err).Str("type", env.Type).Msg("event handling failed")
		}
		if env.ID == "" {
			return nil
		}
		return c.respond(env.ID, nil, err)

	case RequestSearch:
		var p QueryPayload
		if err := decodePayload(env, &p); err != nil {
			return c.respondError(env.ID, ErrCodeInvalidPayload)
		}
		go s.awaitSearch(ctx, c, env.ID, c.search.Submit(ctx, p.Query))
		return nil

	case RequestPing:
		return c.respond(env.ID, "pong", nil)
	}

	data, known, err := s.handleRequest(ctx, env)
	if !known {
		return c.respondError(env.ID, fmt.Sprintf("%s: %s", ErrCodeUnsupported, env.Type))
	}
	if errors.Is(err, errInvalidPayload) {
		return c.respondError(env.ID, ErrCodeInvalidPayload)
	}
	if err != nil {
		log.Warn().Err(err).Str("type", env.Type).Msg("request failed")
	}
	return c.respond(env.ID, data, err)
}

func (s *Server) runSearch(ctx context.Context, query string) (*usecase.SearchOutput, error) {
	return s.svc.Search.Search(ctx, usecase.SearchInput{Query: query})
}

func (s *Server) awaitSearch(ctx context.Context, c *conn, id string, results <-chan debounce.Result[*usecase.SearchOutput]) {
	var res debounce.Result[*usecase.SearchOutput]
	select {
	case res = <-results:
	case <-ctx.Done():
		return
	}

	var err error
	switch {
	case res.Superseded():
		err = c.respondError(id, ErrCodeSuperseded)
	default:
		err = c.respond(id, res.Value, res.Err)
	}
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("failed to write search response")
	}
}

var errInvalidPayload = errors.New(ErrCodeInvalidPayload)

func (s *Server) handleEvent(ctx context.Context, env Envelope) error {
	events := s.svc.Events
	switch env.Type {
	case EventTabsSnapshot:
		var p TabsSnapshotPayload
		if err := decodePayload(env, &p); err != nil {
			return errInvalidPayload
		}
		s.state.ApplySnapshot(p.Tabs, p.ActiveTabID)
		tabs, _ := s.state.Tabs(ctx)
		return events.OnSnapshot(ctx, tabs, p.ActiveTabID)

	case EventTabCreated:
		var p TabPayload
		if err := decodePayload(env, &p); err != nil {
			return errInvalidPayload
		}
		if !s.state.Create(p.Tab) {
			logging.FromContext(ctx).Trace().Int64("window_id", p.Tab.WindowID).Msg("ignoring tab of another window")
			return nil
		}
		return events.OnCreated(logging.WithTabID(ctx, int64(p.Tab.ID)), p.Tab)

	case EventTabUpdated:
		var p TabUpdatedPayload
		if err := decodePayload(env, &p); err != nil {
			return errInvalidPayload
		}
		tabCtx := logging.WithTabID(ctx, int64(p.Tab.ID))
		kept, left := s.state.Update(p.Tab)
		switch {
		case left:
			return events.OnRemoved(tabCtx, p.Tab.ID)
		case !kept:
			return nil
		}
		return events.OnUpdated(tabCtx, p.Tab, p.FaviconChanged)

	case EventTabActivated:
		var p TabIDPayload
		if err := decodePayload(env, &p); err != nil {
			return errInvalidPayload
		}
		if !s.state.SetActive(p.TabID) {
			return nil
		}
		return events.OnActivated(logging.WithTabID(ctx, int64(p.TabID)), p.TabID)

	case EventTabRemoved:
		var p TabIDPayload
		if err := decodePayload(env, &p); err != nil {
			return errInvalidPayload
		}
		s.state.Remove(p.TabID)
		return events.OnRemoved(logging.WithTabID(ctx, int64(p.TabID)), p.TabID)

	case EventBookmarks:
		var p BookmarksPayload
		if err := decodePayload(env, &p); err != nil {
			return errInvalidPayload
		}
		s.state.SetBookmarks(entity.FlattenBookmarks(p.Nodes))
		return events.OnBookmarks(ctx, p.Nodes)
	}
	return nil
}

// handleRequest runs a non-search request. known is false for unsupported types.
func (s *Server) handleRequest(ctx context.Context, env Envelope) (data any, known bool, err error) {
	switch env.Type {
	case RequestOpenResult:
		var p OpenResultPayload
		if err := decodePayload(env, &p); err != nil {
			return nil, true, errInvalidPayload
		}
		res, err := s.svc.Open.Open(ctx, p.Result)
		return res, true, err

	case RequestExecuteAction:
		var p ExecuteActionPayload
		if err := decodePayload(env, &p); err != nil {
			return nil, true, errInvalidPayload
		}
		res, err := s.svc.Actions.Execute(ctx, p.ActionID, p.OpenSettings)
		return res, true, err

	case RequestGetActionMeta:
		var p ActionIDPayload
		if err := decodePayload(env, &p); err != nil {
			return nil, true, errInvalidPayload
		}
		return s.svc.Actions.GetActionMeta(p.ActionID), true, nil

	case RequestGetMRUTabs:
		res, err := s.svc.Switch.MRUTabs(ctx)
		return res, true, err

	case RequestSwitchToTab:
		var p TabIDPayload
		if err := decodePayload(env, &p); err != nil {
			return nil, true, errInvalidPayload
		}
		return nil, true, s.svc.Switch.SwitchTo(ctx, p.TabID)

	case RequestSwitchToPrevious:
		id, switched, err := s.svc.Switch.SwitchToPrevious(ctx)
		return SwitchResult{TabID: id, Switched: switched}, true, err

	case RequestNavigateOrSearch:
		var p QueryPayload
		if err := decodePayload(env, &p); err != nil {
			return nil, true, errInvalidPayload
		}
		res, err := s.svc.Navigate.Execute(ctx, p.Query)
		return res, true, err

	case RequestSettingsGet:
		view, err := s.settingsView(ctx)
		return view, true, err

	case RequestSettingsSet:
		var p SettingsSetPayload
		if err := decodePayload(env, &p); err != nil {
			return nil, true, errInvalidPayload
		}
		if p.SearchEngine != nil {
			if err := s.svc.Settings.SetSearchEngine(ctx, *p.SearchEngine); err != nil {
				return nil, true, err
			}
		}
		if p.ResetURL != nil {
			if _, err := s.svc.Settings.SetResetURL(ctx, *p.ResetURL); err != nil {
				return nil, true, err
			}
		}
		view, err := s.settingsView(ctx)
		return view, true, err
	}
	return nil, false, nil
}

func (s *Server) settingsView(ctx context.Context) (SettingsView, error) {
	settings, err := s.svc.Settings.Get(ctx)
	if err != nil {
		return SettingsView{}, err
	}
	return SettingsView{Settings: settings, Engines: s.svc.Settings.Engines()}, nil
}
