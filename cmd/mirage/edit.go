package main

import (
	"image"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/willbeason/mirage/pkg/edit"
	"github.com/willbeason/mirage/pkg/imageio"
)

// editFunc builds an edit from the arguments following INFILE and OUTFILE.
// The source image is passed for edits that depend on its bounds.
type editFunc func(src image.Image, args []string) (edit.Edit, error)

func editCmd(opts *options, use, short string, nArgs int, build editFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2 + nArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, opts, args, build)
		},
	}

	return cmd
}

func runEdit(cmd *cobra.Command, opts *options, args []string, build editFunc) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	infile, outfile := args[0], args[1]

	src, err := imageio.Load(infile)
	if err != nil {
		return err
	}

	e, err := build(src, args[2:])
	if err != nil {
		return err
	}

	opts.logf(cmd, "%s: %s -> %s", cmd.Name(), infile, outfile)
	return imageio.Save(e.Apply(src), outfile)
}

func blurCmd(opts *options) *cobra.Command {
	return editCmd(opts, "blur INFILE OUTFILE PERCENT", "Blur an image by a given percentage", 1,
		func(_ image.Image, args []string) (edit.Edit, error) {
			percent, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return edit.Edit{}, err
			}
			return edit.Blur(percent)
		})
}

func brightenCmd(opts *options) *cobra.Command {
	return editCmd(opts, "brighten INFILE OUTFILE AMOUNT", "Brighten an image by a given amount; negative amounts darken", 1,
		func(_ image.Image, args []string) (edit.Edit, error) {
			amount, err := parseInt("amount", args[0])
			if err != nil {
				return edit.Edit{}, err
			}
			return edit.Brighten(amount), nil
		})
}

func cropCmd(opts *options) *cobra.Command {
	return editCmd(opts, "crop INFILE OUTFILE X Y WIDTH HEIGHT", "Crop an image to x, y, width, height", 4,
		func(src image.Image, args []string) (edit.Edit, error) {
			var v [4]int
			for i, name := range []string{"x", "y", "width", "height"} {
				var err error
				v[i], err = parseUint(name, args[i])
				if err != nil {
					return edit.Edit{}, err
				}
			}
			return edit.Crop(src.Bounds(), v[0], v[1], v[2], v[3])
		})
}

func rotateCmd(opts *options) *cobra.Command {
	return editCmd(opts, "rotate INFILE OUTFILE DEGREES", "Rotate an image clockwise by 90, 180, or 270 degrees", 1,
		func(_ image.Image, args []string) (edit.Edit, error) {
			degrees, err := parseInt("degrees", args[0])
			if err != nil {
				return edit.Edit{}, err
			}
			return edit.Rotate(degrees)
		})
}

func hueRotateCmd(opts *options) *cobra.Command {
	return editCmd(opts, "huerotate INFILE OUTFILE DEGREES", "Shift the hue of an image by -180 to 180 degrees", 1,
		func(_ image.Image, args []string) (edit.Edit, error) {
			degrees, err := parseInt("degrees", args[0])
			if err != nil {
				return edit.Edit{}, err
			}
			return edit.HueRotate(degrees)
		})
}

func invertCmd(opts *options) *cobra.Command {
	return editCmd(opts, "invert INFILE OUTFILE", "Invert an image from infile to outfile", 0,
		func(image.Image, []string) (edit.Edit, error) {
			return edit.Invert(), nil
		})
}

func grayscaleCmd(opts *options) *cobra.Command {
	return editCmd(opts, "grayscale INFILE OUTFILE", "Convert an image to grayscale", 0,
		func(image.Image, []string) (edit.Edit, error) {
			return edit.Grayscale(), nil
		})
}
