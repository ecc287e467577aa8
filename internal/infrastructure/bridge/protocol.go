// Package bridge is the websocket endpoint the browser extension talks to.
//
// The extension pushes tab and bookmark events, sends palette requests and
// receives commands (create, remove, activate tabs) to run with its own
// browser APIs. Every frame is a JSON Envelope.
package bridge

import (
	"encoding/json"

	"github.com/bnema/flashmark/internal/application/usecase"
	"github.com/bnema/flashmark/internal/domain/entity"
)

// Message types sent by the extension.
const (
	EventTabsSnapshot = "tabs.snapshot"
	EventTabCreated   = "tab.created"
	EventTabUpdated   = "tab.updated"
	EventTabActivated = "tab.activated"
	EventTabRemoved   = "tab.removed"
	EventBookmarks    = "bookmarks.tree"

	RequestSearch           = "search"
	RequestOpenResult       = "openResult"
	RequestExecuteAction    = "executeAction"
	RequestGetActionMeta    = "getActionMeta"
	RequestGetMRUTabs       = "getMruTabs"
	RequestSwitchToTab      = "switchToTab"
	RequestSwitchToPrevious = "switchToPrevious"
	RequestNavigateOrSearch = "navigateOrSearch"
	RequestSettingsGet      = "settings.get"
	RequestSettingsSet      = "settings.set"
	RequestPing             = "ping"
)

// Message types sent by the daemon.
const (
	TypeResponse = "response"
	TypeCommand  = "command"
)

// Command names understood by the extension.
const (
	CommandTabsCreate      = "tabs.create"
	CommandTabsRemove      = "tabs.remove"
	CommandTabsActivate    = "tabs.activate"
	CommandOpenOptionsPage = "runtime.openOptionsPage"
	CommandReloadExtension = "runtime.reload"
)

// Error strings carried in ResponsePayload.Error.
const (
	ErrCodeSuperseded     = "superseded"
	ErrCodeInvalidPayload = "invalid payload"
	ErrCodeUnsupported    = "unsupported message type"
	ErrCodeRateLimited    = "rate limited"
)

// Envelope wraps every frame in both directions. ID correlates a request
// with its response; events and commands leave it empty.
type Envelope struct {
	Type    string          `json:"type"`
	ID      string          `json:"id,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty" jsonschema:"type=object"`
}

// TabsSnapshotPayload is the full tab list of the current window.
type TabsSnapshotPayload struct {
	Tabs        []entity.Tab `json:"tabs"`
	ActiveTabID entity.TabID `json:"activeTabId"`
}

// TabPayload carries one tab.
type TabPayload struct {
	Tab entity.Tab `json:"tab"`
}

// TabUpdatedPayload carries a changed tab.
type TabUpdatedPayload struct {
	Tab            entity.Tab `json:"tab"`
	FaviconChanged bool       `json:"faviconChanged,omitempty"`
}

// TabIDPayload names one tab.
type TabIDPayload struct {
	TabID entity.TabID `json:"tabId"`
}

// BookmarksPayload is the bookmark tree as returned by the browser.
type BookmarksPayload struct {
	Nodes []*entity.BookmarkNode `json:"nodes"`
}

// QueryPayload carries palette input.
type QueryPayload struct {
	Query string `json:"query"`
}

// OpenResultPayload carries a previously returned result.
type OpenResultPayload struct {
	Result entity.Result `json:"result"`
}

// ExecuteActionPayload runs an action or opens its settings.
type ExecuteActionPayload struct {
	ActionID     entity.ActionID `json:"actionId"`
	OpenSettings bool            `json:"openSettings,omitempty"`
}

// ActionIDPayload names one action.
type ActionIDPayload struct {
	ActionID entity.ActionID `json:"actionId"`
}

// SettingsSetPayload updates the fields that are present.
type SettingsSetPayload struct {
	SearchEngine *string `json:"searchEngine,omitempty"`
	ResetURL     *string `json:"resetUrl,omitempty"`
}

// ResponsePayload answers a request.
type ResponsePayload struct {
	OK    bool   `json:"ok"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// CommandPayload asks the extension to act on the browser.
type CommandPayload struct {
	Name   string         `json:"name"`
	TabIDs []entity.TabID `json:"tabIds,omitempty"`
	TabID  entity.TabID   `json:"tabId,omitempty"`
	URL    string         `json:"url,omitempty"`
}

// SwitchResult answers switchToPrevious.
type SwitchResult struct {
	TabID    entity.TabID `json:"tabId,omitempty"`
	Switched bool         `json:"switched"`
}

// SettingsView answers settings.get and settings.set.
type SettingsView struct {
	Settings entity.Settings       `json:"settings"`
	Engines  []entity.SearchEngine `json:"engines"`
}

// PayloadTypes maps each message type to a zero value of its payload,
// nil for messages without one. Used for schema export.
func PayloadTypes() map[string]any {
	return map[string]any{
		EventTabsSnapshot:       &TabsSnapshotPayload{},
		EventTabCreated:         &TabPayload{},
		EventTabUpdated:         &TabUpdatedPayload{},
		EventTabActivated:       &TabIDPayload{},
		EventTabRemoved:         &TabIDPayload{},
		EventBookmarks:          &BookmarksPayload{},
		RequestSearch:           &QueryPayload{},
		RequestOpenResult:       &OpenResultPayload{},
		RequestExecuteAction:    &ExecuteActionPayload{},
		RequestGetActionMeta:    &ActionIDPayload{},
		RequestGetMRUTabs:       nil,
		RequestSwitchToTab:      &TabIDPayload{},
		RequestSwitchToPrevious: nil,
		RequestNavigateOrSearch: &QueryPayload{},
		RequestSettingsGet:      nil,
		RequestSettingsSet:      &SettingsSetPayload{},
		RequestPing:             nil,
		TypeResponse:            &ResponsePayload{},
		TypeCommand:             &CommandPayload{},
		"search.result":         &usecase.SearchOutput{},
	}
}

func newEnvelope(typ, id string, payload any) (Envelope, error) {
	env := Envelope{Type: typ, ID: id}
	if payload == nil {
		return env, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}
	env.Payload = raw
	return env, nil
}

// decodePayload unmarshals the envelope payload into v. A missing payload
// leaves v at its zero value.
func decodePayload(env Envelope, v any) error {
	if len(env.Payload) == 0 || string(env.Payload) == "null" {
		return nil
	}
	return json.Unmarshal(env.Payload, v)
}
