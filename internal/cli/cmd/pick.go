package cmd

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/flashmark/internal/cli/model"
	"github.com/bnema/flashmark/internal/infrastructure/clipboard"
)

var pickCopy bool

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Interactive palette over the last tab snapshot",
	Long: `Open the palette in the terminal. Results come from the last persisted
tab snapshot and the bookmark mirror.

Enter prints the selected URL on stdout and exits, so the command composes
with launchers: xdg-open "$(flashmark pick)". When nothing matches, Enter
prints the navigate-or-search target for the typed text. With --copy the
target also goes to the clipboard (wl-copy, xclip or xsel).`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)
	pickCmd.Flags().BoolVarP(&pickCopy, "copy", "c", false, "copy the selection to the clipboard")
}

func runPick(cmd *cobra.Command, _ []string) error {
	a, svc, err := requireServices()
	if err != nil {
		return err
	}

	m := model.NewPaletteModel(a.Ctx(), a.Theme, svc.SearchUC, svc.NavigateUC, a.Config.DebounceDelay())

	// The TUI draws on stderr so stdout carries only the selection.
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run palette: %w", err)
	}

	pm, ok := final.(model.PaletteModel)
	if !ok {
		return fmt.Errorf("unexpected model type")
	}
	sel := pm.Selection()
	if sel == nil {
		return nil
	}
	if pickCopy && !strings.HasPrefix(sel.Target, model.ActionTargetPrefix) {
		if err := clipboard.New().WriteText(a.Ctx(), sel.Target); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), sel.Target)
	return err
}
