package entity

// ActionID identifies a built-in palette action.
type ActionID string

// Built-in action identifiers.
const (
	ActionCleanup            ActionID = "cleanup"
	ActionReset              ActionID = "reset"
	ActionSettings           ActionID = "settings"
	ActionOpenBookmarks      ActionID = "open-bookmarks"
	ActionOpenExtensions     ActionID = "open-extensions"
	ActionOpenHistory        ActionID = "open-history"
	ActionOpenDownloads      ActionID = "open-downloads"
	ActionOpenChromeSettings ActionID = "open-chrome-settings"
	ActionOpenPasswords      ActionID = "open-passwords"
	ActionReloadExtension    ActionID = "reload-extension"
)

// Action is a static catalog entry exposed alongside search results.
type Action struct {
	ID          ActionID `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Keywords    []string `json:"keywords"`
	HasSettings bool     `json:"hasSettings"`
	// BrowserURL is a direct navigation target (e.g. chrome://history).
	BrowserURL string `json:"chromeUrl,omitempty"`
}

var defaultActions = []Action{
	{
		ID:          ActionCleanup,
		Title:       "Cleanup",
		Description: "Close tabs without matching bookmarks, keep one per domain",
		Icon:        "✨",
		Keywords:    []string{"cleanup", "clean", "tidy", "organize", "dedupe"},
	},
	{
		ID:          ActionReset,
		Title:       "Reset",
		Description: "Close all tabs and open home page",
		Icon:        "💫",
		Keywords:    []string{"reset", "close all", "fresh", "clear", "new", "start over", "home"},
		HasSettings: true,
	},
	{
		ID:          ActionSettings,
		Title:       "Settings",
		Description: "Configure palette preferences",
		Icon:        "⚙️",
		Keywords:    []string{"settings", "config", "configure", "preferences", "options", "search engine"},
		HasSettings: true,
	},
	{
		ID:          ActionOpenBookmarks,
		Title:       "Open Bookmarks",
		Description: "Open Chrome bookmarks manager",
		Icon:        "📚",
		Keywords:    []string{"open", "bookmarks", "bookmark manager", "chrome"},
		BrowserURL:  "chrome://bookmarks",
	},
	{
		ID:          ActionOpenExtensions,
		Title:       "Open Extensions",
		Description: "Open Chrome extensions page",
		Icon:        "🧩",
		Keywords:    []string{"open", "extensions", "plugins", "addons", "chrome"},
		BrowserURL:  "chrome://extensions",
	},
	{
		ID:          ActionOpenHistory,
		Title:       "Open History",
		Description: "Open Chrome browsing history",
		Icon:        "🕐",
		Keywords:    []string{"open", "history", "past", "visited", "chrome"},
		BrowserURL:  "chrome://history",
	},
	{
		ID:          ActionOpenDownloads,
		Title:       "Open Downloads",
		Description: "Open Chrome downloads page",
		Icon:        "📥",
		Keywords:    []string{"open", "downloads", "files", "chrome"},
		BrowserURL:  "chrome://downloads",
	},
	{
		ID:          ActionOpenChromeSettings,
		Title:       "Open Chrome Settings",
		Description: "Open Chrome settings page",
		Icon:        "🔧",
		Keywords:    []string{"open", "chrome settings", "preferences", "chrome"},
		BrowserURL:  "chrome://settings",
	},
	{
		ID:          ActionOpenPasswords,
		Title:       "Open Passwords",
		Description: "Open Chrome password manager",
		Icon:        "🔑",
		Keywords:    []string{"open", "passwords", "password manager", "keys", "chrome"},
		BrowserURL:  "chrome://settings/passwords",
	},
	{
		ID:          ActionReloadExtension,
		Title:       "Reload Extension",
		Description: "Reload the browser extension (dev mode)",
		Icon:        "🔄",
		Keywords:    []string{"reload", "refresh", "restart", "dev", "extension", "update"},
	},
}

// DefaultActions returns a copy of the built-in action catalog.
// The catalog itself is never mutated.
func DefaultActions() []Action {
	out := make([]Action, len(defaultActions))
	for i, a := range defaultActions {
		a.Keywords = append([]string(nil), a.Keywords...)
		out[i] = a
	}
	return out
}

// FindAction looks up an action by ID in a catalog.
func FindAction(actions []Action, id ActionID) (Action, bool) {
	for _, a := range actions {
		if a.ID == id {
			return a, true
		}
	}
	return Action{}, false
}

// ActionResult is the structured outcome of dispatching an action.
// Unknown actions are reported here with Success=false rather than as a Go error.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	URL     string `json:"url,omitempty"`
	Closed  int    `json:"closed,omitempty"`
	Kept    int    `json:"kept,omitempty"`
}
