package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFileName is the daemon log file inside the log directory.
const LogFileName = "flashmark.log"

// FileConfig configures the rotating log file.
type FileConfig struct {
	Enabled       bool
	LogDir        string
	MaxSizeMB     int
	MaxBackups    int
	MaxAgeDays    int
	Compress      bool
	WriteToStderr bool
}

// NewWithFile creates a logger that writes to a rotating file and, when
// requested, to stderr. The returned cleanup closes the file.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	noop := func() {}
	if !fileCfg.Enabled || fileCfg.LogDir == "" {
		return New(cfg), noop, nil
	}
	if err := os.MkdirAll(fileCfg.LogDir, 0o755); err != nil {
		return zerolog.Nop(), noop, fmt.Errorf("failed to create log directory: %w", err)
	}

	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(fileCfg.LogDir, LogFileName),
		MaxSize:    fileCfg.MaxSizeMB,
		MaxBackups: fileCfg.MaxBackups,
		MaxAge:     fileCfg.MaxAgeDays,
		Compress:   fileCfg.Compress,
	}

	// The file receives raw JSON; only stderr is pretty-printed.
	var w io.Writer = rotator
	if fileCfg.WriteToStderr {
		w = io.MultiWriter(consoleOrJSON(cfg, os.Stderr), rotator)
	}

	cleanup := func() {
		_ = rotator.Close()
	}
	return newWithWriter(cfg, w), cleanup, nil
}
