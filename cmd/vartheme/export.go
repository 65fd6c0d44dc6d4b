package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"vartheme/internal/theme"
)

// Export formats.
const (
	formatCSS  = "css"
	formatJSON = "json"
	formatYAML = "yaml"
	formatTOML = "toml"
)

type exportOptions struct {
	format   string
	palette  string
	allModes bool
}

// catalogExport is the serialized catalog: palette name, then mode.
type catalogExport map[string]map[string]theme.ColorSet

func newExportCmd(root *rootOptions) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export palettes as CSS variables, JSON, YAML or TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			modes := []theme.Mode{theme.ModeLight, theme.ModeDark}
			if !opts.allModes {
				mode, err := root.selectedMode()
				if err != nil {
					return err
				}
				modes = []theme.Mode{mode}
			}

			palettes := theme.Palettes()
			if opts.palette != "" {
				name, ok := theme.ParseName(opts.palette)
				p, found := theme.Lookup(name)
				if !ok || !found {
					return fmt.Errorf("unknown palette %q", opts.palette)
				}
				palettes = []theme.Palette{p}
			}

			return writeExport(cmd.OutOrStdout(), strings.ToLower(opts.format), palettes, modes)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatCSS, "Output format (css, json, yaml, toml)")
	cmd.Flags().StringVarP(&opts.palette, "palette", "p", "", "Export a single palette")
	cmd.Flags().BoolVar(&opts.allModes, "all-modes", false, "Export both light and dark variants")
	return cmd
}

func writeExport(w io.Writer, format string, palettes []theme.Palette, modes []theme.Mode) error {
	if format == formatCSS {
		return writeCSS(w, palettes, modes)
	}

	catalog := make(catalogExport, len(palettes))
	for _, p := range palettes {
		variants := make(map[string]theme.ColorSet, len(modes))
		for _, mode := range modes {
			variants[string(mode)] = p.Colors(mode)
		}
		catalog[string(p.Name)] = variants
	}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(catalog)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(catalog); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case formatTOML:
		data, err := toml.Marshal(catalog)
		if err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		_, err = w.Write(data)
		return err
	}
	return fmt.Errorf("unknown format %q (want css, json, yaml or toml)", format)
}

// writeCSS emits one rule per palette and mode, keyed by the data-theme and
// data-mode attributes the site sets on its root element.
func writeCSS(w io.Writer, palettes []theme.Palette, modes []theme.Mode) error {
	for _, p := range palettes {
		for _, mode := range modes {
			id := theme.Identity{Name: p.Name, Mode: mode}
			update := theme.UpdateFor(id, p.Colors(mode))

			if _, err := fmt.Fprintf(w, "[data-theme=%q][data-mode=%q] {\n", p.Name, mode); err != nil {
				return err
			}
			for _, v := range theme.Variables {
				fmt.Fprintf(w, "  --%s: %s;\n", v, update.Values[v])
			}
			fmt.Fprintf(w, "  color-scheme: %s;\n}\n", mode)
		}
	}
	return nil
}
