package main

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/willbeason/mirage/pkg/edit"
	"github.com/willbeason/mirage/pkg/imageio"
)

const defaultGenerateSize = 256

func generateCmd(opts *options) *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "generate OUTFILE COLOR",
		Short: "Generate a solid-color image in outfile",
		Long: `Generate a solid-color image in outfile.

COLOR is 0xRRGGBB, #RRGGBB, or the same value in decimal.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true

			if width <= 0 || height <= 0 {
				return fmt.Errorf("width and height must be positive, got %dx%d", width, height)
			}

			c, err := parseColor(args[1])
			if err != nil {
				return err
			}

			opts.logf(cmd, "generate: f:%s, color:#%02x%02x%02x, w:%d, h:%d",
				args[0], c.R, c.G, c.B, width, height)

			return imageio.Save(edit.Fill(width, height, c), args[0])
		},
	}

	cmd.Flags().IntVar(&width, "width", defaultGenerateSize, "image width in pixels")
	cmd.Flags().IntVar(&height, "height", defaultGenerateSize, "image height in pixels")

	return cmd
}

// parseColor reads a packed 24-bit RGB value.
func parseColor(s string) (color.NRGBA, error) {
	var v uint64
	var err error
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		v, err = strconv.ParseUint(hex, 16, 32)
	} else {
		v, err = strconv.ParseUint(s, 0, 32)
	}
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if v > 0xffffff {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: more than 24 bits", s)
	}

	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
