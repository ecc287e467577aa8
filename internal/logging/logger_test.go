package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{" warn ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewFromConfigValues(t *testing.T) {
	logger := NewFromConfigValues("debug", "json")
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("FLASHMARK_LOG_LEVEL", "error")
	t.Setenv("FLASHMARK_LOG_FORMAT", "json")

	logger := NewFromEnv()
	assert.Equal(t, zerolog.ErrorLevel, logger.GetLevel())
}

func TestNewWithFile_WritesJSONToFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	cfg := DefaultConfig()
	cfg.Format = "json"
	logger, cleanup, err := NewWithFile(cfg, FileConfig{Enabled: true, LogDir: dir, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1})
	require.NoError(t, err)

	logger.Info().Str("query", "git").Msg("search")
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"query":"git"`)
	assert.Contains(t, string(data), `"message":"search"`)
}

func TestNewWithFile_DisabledFallsBackToStderr(t *testing.T) {
	dir := t.TempDir()
	_, cleanup, err := NewWithFile(DefaultConfig(), FileConfig{Enabled: false, LogDir: dir})
	require.NoError(t, err)
	cleanup()

	_, statErr := os.Stat(filepath.Join(dir, LogFileName))
	assert.True(t, os.IsNotExist(statErr))
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), zerolog.New(&buf).Level(zerolog.InfoLevel))
	ctx = WithComponent(ctx, "bridge")
	ctx = WithConnID(ctx, "205106_a7b3")
	ctx = WithTabID(ctx, 42)

	log := FromContext(ctx)
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
	log.Info().Msg("tagged")

	var event map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "bridge", event["component"])
	assert.Equal(t, "205106_a7b3", event["conn_id"])
	assert.EqualValues(t, 42, event["tab_id"])
}

func TestFromContext_WithoutLoggerIsDisabled(t *testing.T) {
	assert.Equal(t, zerolog.Disabled, FromContext(context.Background()).GetLevel())
}

func TestGenerateConnID(t *testing.T) {
	id := GenerateConnID()
	assert.Regexp(t, `^\d{6}_[0-9a-f]{4}$`, id)
}
