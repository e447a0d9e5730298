package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/matzehuels/canvasballoon/pkg/balloon"
	"github.com/matzehuels/canvasballoon/pkg/color"
	"github.com/matzehuels/canvasballoon/pkg/errors"
)

// shade is one row of the color command's output.
type shade struct {
	name  string
	color color.Color
}

// colorCommand creates the color command.
func (c *CLI) colorCommand() *cobra.Command {
	factor := balloon.DefaultConfig().GradientFactor

	cmd := &cobra.Command{
		Use:   "color <rgb(r,g,b)|#rrggbb>",
		Short: "Show the gradient shades derived from a balloon color",
		Long: `Show the base color of a balloon together with the light and dark shades
its gradient runs between.

Examples:
  canvasballoon color "rgb(229,45,45)"
  canvasballoon color "#2d89e5" --factor 0.5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shades, err := deriveShades(args[0], factor)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("derived shades", "base", shades[0].color, "factor", factor)

			fmt.Println(StyleTitle.Render(shades[0].color.String()))
			for _, s := range shades {
				fmt.Printf("%s %s %s\n", swatch(s.color.Hex()), StyleDim.Render(fmt.Sprintf("%-5s", s.name)), StyleValue.Render(fmt.Sprintf("%-18s %s", s.color, s.color.Hex())))
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&factor, "factor", factor, "lighten/darken factor in [0,1]")

	return cmd
}

// deriveShades parses spec and returns the base, light, and dark shades.
func deriveShades(spec string, factor float64) ([]shade, error) {
	if math.IsNaN(factor) || factor < 0 || factor > 1 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "factor %v out of range [0,1]", factor)
	}
	base, err := color.Parse(spec)
	if err != nil {
		return nil, err
	}
	return []shade{
		{"base", base},
		{"light", base.Lighten(factor)},
		{"dark", base.Darken(factor)},
	}, nil
}
