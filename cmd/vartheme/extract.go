package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vartheme/internal/brand"
	"vartheme/internal/theme"
)

func newExtractCmd() *cobra.Command {
	var presetName string

	cmd := &cobra.Command{
		Use:   "extract <file>",
		Short: "Suggest a primary and accent from a brand guide",
		Long: `Scan a PDF or text brand guide for hex colors, suggest a primary and
an accent, and print the provider code for a custom theme built on the
chosen generator preset.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			preset, ok := theme.LookupPreset(presetName)
			if !ok {
				return fmt.Errorf("unknown preset %q", presetName)
			}

			info, err := os.Stat(args[0])
			if err != nil {
				return err
			}
			if info.Size() > brand.MaxUploadSize {
				return fmt.Errorf("%s is larger than %d bytes", args[0], brand.MaxUploadSize)
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			suggestion, err := brand.Scan(data, brand.MimeTypeFromName(args[0]))
			if err != nil {
				return fmt.Errorf("scan %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Found %d colors", len(suggestion.Found))))
			for _, hex := range suggestion.Found {
				fmt.Fprintf(out, "  %s\n", swatch(hex))
			}
			fmt.Fprintln(out)
			fmt.Fprintf(out, "primary  %s\n", swatch(suggestion.Primary))
			fmt.Fprintf(out, "accent   %s\n", swatch(suggestion.Accent))
			fmt.Fprintln(out)
			fmt.Fprintln(out, theme.ProviderSnippet(brand.Apply(preset, suggestion)))
			return nil
		},
	}

	cmd.Flags().StringVar(&presetName, "preset", theme.DefaultPreset().Name, "Generator preset supplying the non-brand colors")
	return cmd
}
