// Package clipboard copies palette selections using wl-clipboard (Wayland)
// with an X11 fallback.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/bnema/flashmark/internal/logging"
)

// ErrUnavailable is returned when no clipboard tool was found.
var ErrUnavailable = errors.New("no clipboard tool available (install wl-clipboard or xclip)")

// tool is one copy command and its arguments.
type tool struct {
	name string
	args []string
	env  string
}

// Tools in lookup order. env names the display variable that must be set.
var tools = []tool{
	{name: "wl-copy", env: "WAYLAND_DISPLAY"},
	{name: "xclip", args: []string{"-selection", "clipboard"}, env: "DISPLAY"},
	{name: "xsel", args: []string{"--clipboard", "--input"}, env: "DISPLAY"},
}

// Writer copies text to the system clipboard.
type Writer struct {
	path string
	args []string

	// lookPath and getenv are swapped in tests.
	lookPath func(string) (string, error)
	getenv   func(string) string
}

// New detects the clipboard tool for the current session.
func New() *Writer {
	w := &Writer{lookPath: exec.LookPath, getenv: os.Getenv}
	w.detect()
	return w
}

func (w *Writer) detect() {
	for _, t := range tools {
		if w.getenv(t.env) == "" {
			continue
		}
		if path, err := w.lookPath(t.name); err == nil {
			w.path, w.args = path, t.args
			return
		}
	}
}

// Available reports whether a clipboard tool was found.
func (w *Writer) Available() bool {
	return w.path != ""
}

// Tool returns the detected command path, empty when none.
func (w *Writer) Tool() string {
	return w.path
}

// WriteText copies text to the clipboard.
func (w *Writer) WriteText(ctx context.Context, text string) error {
	log := logging.FromContext(ctx)

	if w.path == "" {
		return ErrUnavailable
	}

	cmd := exec.CommandContext(ctx, w.path, w.args...)
	cmd.Stdin = strings.NewReader(text)
	if out, err := cmd.CombinedOutput(); err != nil {
		log.Error().Err(err).Str("tool", w.path).Str("output", strings.TrimSpace(string(out))).Msg("clipboard write failed")
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	log.Debug().Str("tool", w.path).Int("len", len(text)).Msg("clipboard write success")
	return nil
}
