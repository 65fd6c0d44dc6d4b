package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"vartheme/internal/color"
)

func newHSLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hsl <hue> <saturation> <lightness>",
		Short: "Convert HSL to hex",
		Long: `Convert an HSL triple to an uppercase hex color. Hue is in degrees,
saturation and lightness in percent. Out of range values are clamped.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]int, 3)
			for i, arg := range args {
				v, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid number %q", arg)
				}
				values[i] = v
			}
			fmt.Fprintln(cmd.OutOrStdout(), color.HSLToHex(values[0], values[1], values[2]))
			return nil
		},
	}
}

func newHexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hex <#RRGGBB>",
		Short: "Convert hex to HSL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hsl, err := color.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hsl.String())
			return nil
		},
	}
}
