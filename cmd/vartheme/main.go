// Command vartheme inspects the vartheme palettes from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	applog "vartheme/internal/log"
	"vartheme/internal/theme"
)

// Build-time variables (set via ldflags)
var (
	version = "dev"
	commit  = "unknown"
)

type rootOptions struct {
	verbose bool
	mode    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "vartheme",
		Short: "Inspect and export vartheme palettes",
		Long: `vartheme prints the five built-in palettes, converts colors between
hex and HSL, exports the catalog for other tools and extracts brand
colors from style guides.`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				return applog.SetLevel("debug")
			}
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVarP(&opts.mode, "mode", "m", string(theme.DefaultMode), "Palette variant (light or dark)")

	root.AddCommand(
		newPalettesCmd(opts),
		newShowCmd(opts),
		newHSLCmd(),
		newHexCmd(),
		newExportCmd(opts),
		newExtractCmd(),
		newPrefsCmd(),
	)
	return root
}

// selectedMode validates the --mode flag.
func (o *rootOptions) selectedMode() (theme.Mode, error) {
	mode, ok := theme.ParseMode(o.mode)
	if !ok {
		return "", fmt.Errorf("unknown mode %q (want light or dark)", o.mode)
	}
	return mode, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
