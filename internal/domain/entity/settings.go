package entity

// Settings keys in the key/value settings store.
const (
	SettingSearchEngine = "search_engine"
	SettingResetURL     = "reset_url"
)

// DefaultResetURL is opened by the reset action when nothing is configured.
const DefaultResetURL = "chrome://newtab"

// SearchEngine is a free-text search target.
type SearchEngine struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Template string `json:"template"`
}

// Settings holds the two user settings read at the edge of the core.
type Settings struct {
	SearchEngine string `json:"searchEngine"`
	ResetURL     string `json:"resetUrl"`
}
