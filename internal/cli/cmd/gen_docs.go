package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/flashmark/internal/infrastructure/config"
)

const docsDirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate man pages or markdown from the command tree",
	Long: `Generate documentation from the command definitions.

Supported formats:
  man       Unix manual pages (groff format)
  markdown  Markdown files

By default, man pages are installed to ~/.local/share/man/man1/.

Examples:
  flashmark gen-docs                       # Install man pages
  flashmark gen-docs --format markdown     # Markdown into ./docs
  flashmark gen-docs --output ./man        # Man pages into ./man`,
	Args: cobra.NoArgs,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "output directory")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "output format: man, markdown")
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	outputDir := genDocsOutputDir
	if outputDir == "" {
		switch genDocsFormat {
		case "man":
			manDir, err := config.GetManDir()
			if err != nil {
				return fmt.Errorf("resolve man directory: %w", err)
			}
			outputDir = manDir
		case "markdown":
			outputDir = "./docs"
		}
	}

	if err := os.MkdirAll(outputDir, docsDirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// No timestamp footer, for reproducible output.
	rootCmd.DisableAutoGenTag = true

	var (
		ext string
		err error
	)
	switch genDocsFormat {
	case "man":
		ext = ".1"
		err = doc.GenManTree(rootCmd, &doc.GenManHeader{
			Title:   "FLASHMARK",
			Section: "1",
			Source:  "flashmark " + buildInfo.Version,
			Manual:  "flashmark manual",
			Date:    func() *time.Time { t := time.Now(); return &t }(),
		}, outputDir)
	case "markdown":
		ext = ".md"
		err = doc.GenMarkdownTree(rootCmd, outputDir)
	default:
		return fmt.Errorf("unsupported format %q (use: man, markdown)", genDocsFormat)
	}
	if err != nil {
		return fmt.Errorf("generate %s docs: %w", genDocsFormat, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Generated %s docs in %s\n", genDocsFormat, outputDir)
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return nil
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ext {
			fmt.Fprintf(out, "  - %s\n", e.Name())
		}
	}
	return nil
}
