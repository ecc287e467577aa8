package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/flashmark/internal/domain/build"
	"github.com/bnema/flashmark/internal/domain/entity"
	"github.com/bnema/flashmark/internal/domain/tabops"
	"github.com/bnema/flashmark/internal/infrastructure/config"
	"github.com/bnema/flashmark/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/flashmark/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// isolate points every XDG directory at a temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

// seed writes a tab snapshot (MRU order: github, example, go.dev) and one
// bookmark to the default database.
func seed(t *testing.T) {
	t.Helper()
	ctx := testContext()

	require.NoError(t, config.EnsureDirectories())
	path, err := config.GetDatabaseFile()
	require.NoError(t, err)

	db, err := sqlite.NewConnection(ctx, path)
	require.NoError(t, err)
	defer func() { _ = sqlite.Close(db) }()

	tabs := []entity.Tab{
		{ID: 1, Title: "GitHub", URL: "https://github.com/bnema", Active: true, Index: 0},
		{ID: 3, Title: "Example", URL: "https://example.com/docs", Index: 2},
		{ID: 2, Title: "The Go Programming Language", URL: "https://go.dev/", Index: 1},
	}
	require.NoError(t, sqlite.NewTabSnapshotRepository(db).Replace(ctx, tabs))
	require.NoError(t, sqlite.NewBookmarkRepository(db).ReplaceAll(ctx, []entity.Bookmark{
		{ID: "b1", Title: "GitHub home", URL: "https://github.com/"},
	}))
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	configFile = ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
		configFile = ""
	})

	err := rootCmd.ExecuteContext(context.Background())

	// PersistentPostRun is skipped when RunE fails.
	if app != nil {
		_ = app.Close()
		app = nil
	}
	return out.String(), err
}

func TestConfigPath_UsesFlag(t *testing.T) {
	root := isolate(t)
	path := filepath.Join(root, "custom.toml")

	out, err := execute(t, "config", "path", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, path, strings.TrimSpace(out))
}

func TestConfigInit(t *testing.T) {
	root := isolate(t)
	path := filepath.Join(root, "config", "flashmark", "config.toml")

	out, err := execute(t, "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.FileExists(t, path)
	assert.FileExists(t, filepath.Join(filepath.Dir(path), "config.schema.json"))

	_, err = execute(t, "config", "init", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "config", "init", "--config", path, "--force")
	require.NoError(t, err)
}

func TestConfigShow_MasksToken(t *testing.T) {
	root := isolate(t)
	path := filepath.Join(root, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[bridge]\ntoken = \"secret\"\n"), 0o600))

	out, err := execute(t, "config", "show", "--config", path)
	require.NoError(t, err)
	assert.NotContains(t, out, "secret")
	assert.Contains(t, out, "********")
}

func TestProtocolSchema(t *testing.T) {
	isolate(t)

	out, err := execute(t, "protocol", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, `"tabs.snapshot"`)
	assert.Contains(t, out, `"navigateOrSearch"`)
}

func TestSearch_JSON(t *testing.T) {
	isolate(t)
	seed(t)

	out, err := execute(t, "search", "--json", "github")
	require.NoError(t, err)
	assert.Contains(t, out, "https://github.com/bnema")
	assert.Contains(t, out, "GitHub home")
	assert.NotContains(t, out, "go.dev")
}

func TestSearch_Text(t *testing.T) {
	isolate(t)
	seed(t)

	out, err := execute(t, "search", "nothing-matches-this")
	require.NoError(t, err)
	assert.Contains(t, out, "No results")
}

func TestMRU_JSONKeepsStoredOrder(t *testing.T) {
	isolate(t)
	seed(t)

	out, err := execute(t, "mru", "--json")
	require.NoError(t, err)

	var results []entity.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	urls := make([]string, 0, len(results))
	for _, r := range results {
		urls = append(urls, r.URL)
	}
	assert.Equal(t, []string{"https://github.com/bnema", "https://example.com/docs", "https://go.dev/"}, urls)
}

func TestCleanup(t *testing.T) {
	isolate(t)
	seed(t)

	out, err := execute(t, "cleanup", "--json")
	require.NoError(t, err)

	var plan tabops.CleanupPlan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	assert.ElementsMatch(t, []entity.TabID{2, 3}, plan.Close)

	_, err = execute(t, "cleanup", "--dry-run=false")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connected browser")
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		want  string
		isURL bool
	}{
		{name: "search terms", args: []string{"golang", "generics"}, want: "https://www.google.com/search?q=golang%20generics"},
		{name: "bare domain", args: []string{"example.com"}, want: "https://example.com", isURL: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)

			out, err := execute(t, append([]string{"resolve", "--json"}, tt.args...)...)
			require.NoError(t, err)

			var got resolveOutput
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			assert.Equal(t, tt.want, got.Target)
			assert.Equal(t, tt.isURL, got.IsURL)
		})
	}
}

func TestSettings_SetEngine(t *testing.T) {
	isolate(t)

	_, err := execute(t, "settings", "set-engine", "duckduckgo")
	require.NoError(t, err)

	out, err := execute(t, "settings", "get", "--json")
	require.NoError(t, err)

	var got struct {
		Settings entity.Settings `json:"settings"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "duckduckgo", got.Settings.SearchEngine)

	out, err = execute(t, "resolve", "flashmark")
	require.NoError(t, err)
	assert.Equal(t, "https://duckduckgo.com/?q=flashmark", strings.TrimSpace(out))

	_, err = execute(t, "settings", "set-engine", "bogus")
	require.Error(t, err)
}

func TestAbout(t *testing.T) {
	isolate(t)
	SetBuildInfo(build.Info{Version: "1.2.3", Commit: "abc123", BuildDate: "2026-01-01"})
	t.Cleanup(func() { buildInfo = build.Info{} })

	out, err := execute(t, "about")
	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3")
	assert.Contains(t, out, "abc123")
	assert.Nil(t, app)
}
