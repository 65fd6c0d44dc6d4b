package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vartheme/internal/theme"
)

func newPalettesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "palettes",
		Short: "List the built-in palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := opts.selectedMode()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range theme.Palettes() {
				colors := p.Colors(mode)
				fmt.Fprintf(out, "%-8s %s  %s\n",
					p.Name,
					swatch(colors.Primary),
					mutedStyle.Render(colors.Background+" / "+colors.Text),
				)
			}
			return nil
		},
	}
}

func newShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print every color of a palette",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := opts.selectedMode()
			if err != nil {
				return err
			}
			name, ok := theme.ParseName(args[0])
			if !ok || name == theme.NameCustom {
				return fmt.Errorf("unknown palette %q", args[0])
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%s (%s)", theme.Label(name), mode)))
			writeColorSet(out, theme.Resolve(name, mode))
			return nil
		},
	}
}
