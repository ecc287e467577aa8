package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/flashmark/internal/domain/palette"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every XDG dir at a temp dir and returns the config path.
func isolate(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return filepath.Join(root, "config", appName, configName)
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "bookmarks-first", mgr.viper.GetString("palette.merge_order"))
	assert.Equal(t, 10, mgr.viper.GetInt("palette.tab_limit"))
	assert.Equal(t, 50, mgr.viper.GetInt("palette.debounce_ms"))
	assert.Equal(t, "google", mgr.viper.GetString("search.default_engine"))
	assert.Equal(t, "chrome://newtab", mgr.viper.GetString("reset.default_url"))
}

func TestManager_LoadCreatesDefaultFile(t *testing.T) {
	path := isolate(t)

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	_, err = os.Stat(path)
	require.NoError(t, err, "default config should be written")

	cfg := mgr.Get()
	dataDir, err := GetDataDir()
	require.NoError(t, err)
	logDir, err := GetLogDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dataDir, databaseName), cfg.Database.Path)
	assert.Equal(t, logDir, cfg.Logging.LogDir)
	assert.Equal(t, palette.DefaultPolicy(), cfg.PalettePolicy())
	assert.Equal(t, 50*time.Millisecond, cfg.DebounceDelay())
	assert.Equal(t, 2*time.Second, cfg.SnapshotInterval())
	assert.Equal(t, defaultListenAddr, cfg.Bridge.ListenAddr)
	assert.Empty(t, cfg.Bridge.AllowedOrigins)
}

func TestManager_LoadSearchPathCreatesFileInConfigDir(t *testing.T) {
	path := isolate(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.Equal(t, path, mgr.GetConfigFile())
}

func TestManager_LoadFileValues(t *testing.T) {
	path := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), dirPerm))
	require.NoError(t, os.WriteFile(path, []byte(`
[palette]
merge_order = "Tabs-First"
tab_limit = 3

[search]
default_engine = "DuckDuckGo"

[bridge]
listen_addr = "127.0.0.1:9000"
allowed_origins = ["chrome-extension://abc/", " "]
`), filePerm))

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, palette.MergeTabsFirst, cfg.PalettePolicy().Order)
	assert.Equal(t, 3, cfg.Palette.TabLimit)
	assert.Equal(t, palette.DefaultBookmarkLimit, cfg.Palette.BookmarkLimit)
	assert.Equal(t, "duckduckgo", cfg.Search.DefaultEngine)
	assert.Equal(t, "127.0.0.1:9000", cfg.Bridge.ListenAddr)
	assert.Equal(t, []string{"chrome-extension://abc"}, cfg.Bridge.AllowedOrigins)
}

func TestManager_EnvOverrides(t *testing.T) {
	path := isolate(t)
	t.Setenv("FLASHMARK_LOG_LEVEL", "debug")
	t.Setenv("FLASHMARK_BRIDGE_TOKEN", "s3cret")
	t.Setenv("FLASHMARK_PALETTE_ACTION_LIMIT", "2")

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "s3cret", cfg.Bridge.Token)
	assert.Equal(t, 2, cfg.Palette.ActionLimit)
}

func TestManager_LoadRejectsInvalidValues(t *testing.T) {
	path := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), dirPerm))
	require.NoError(t, os.WriteFile(path, []byte(`
[palette]
merge_order = "random"
`), filePerm))

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "palette.merge_order")
}

func TestManager_LoadRejectsBrokenTOML(t *testing.T) {
	path := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), dirPerm))
	require.NoError(t, os.WriteFile(path, []byte("[palette\n"), filePerm))

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestManager_ReloadNotifiesCallbacks(t *testing.T) {
	path := isolate(t)

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var got *Config
	mgr.OnConfigChange(func(c *Config) { got = c })

	require.NoError(t, os.WriteFile(path, []byte("[palette]\nmerge_order = \"actions-first\"\n"), filePerm))
	require.NoError(t, mgr.Reload())

	require.NotNil(t, got)
	assert.Equal(t, palette.MergeActionsFirst, got.PalettePolicy().Order)
	assert.Equal(t, "actions-first", mgr.Get().Palette.MergeOrder)
}

func TestManager_ReloadKeepsPreviousOnError(t *testing.T) {
	path := isolate(t)

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	require.NoError(t, os.WriteFile(path, []byte("[bridge]\nrate_burst = 0\n"), filePerm))
	require.Error(t, mgr.Reload())

	assert.Equal(t, defaultRateBurst, mgr.Get().Bridge.RateBurst)
}

func TestManager_GetBeforeLoad(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	assert.Equal(t, DefaultConfig(), mgr.Get())
}

func TestNewManagerForFile_EmptyPath(t *testing.T) {
	_, err := NewManagerForFile(" ")
	require.Error(t, err)
}

func TestWriteDefaultConfig_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", configName)
	require.NoError(t, WriteDefaultConfig(path))
	require.Error(t, WriteDefaultConfig(path))
}

func TestGetXDGDirs_DevMode(t *testing.T) {
	t.Setenv("ENV", "dev")
	cwd, err := os.Getwd()
	require.NoError(t, err)

	dirs, err := GetXDGDirs()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, ".dev", appName), dirs.ConfigHome)
	assert.Equal(t, dirs.ConfigHome, dirs.DataHome)
	assert.Equal(t, dirs.ConfigHome, dirs.StateHome)
}

func TestLockAndLogPaths(t *testing.T) {
	isolate(t)
	state, err := GetStateDir()
	require.NoError(t, err)

	lock, err := GetLockFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(state, lockName), lock)

	logs, err := GetLogDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(state, "logs"), logs)
}

func TestGetManDir(t *testing.T) {
	isolate(t)
	man, err := GetManDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(os.Getenv("XDG_DATA_HOME"), "man", "man1"), man)
}
