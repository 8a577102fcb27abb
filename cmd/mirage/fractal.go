package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/willbeason/mirage/pkg/fractal"
)

func fractalCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fractal OUTFILE WIDTH HEIGHT",
		Short: "Generate a fractal image in the file provided",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFractal(cmd, opts, args)
		},
	}

	return cmd
}

func runFractal(cmd *cobra.Command, opts *options, args []string) error {
	outfile := args[0]

	width, err := parseUint("width", args[1])
	if err != nil {
		return err
	}
	height, err := parseUint("height", args[2])
	if err != nil {
		return err
	}

	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	opts.logf(cmd, "fractal: f:%s, w:%d, h:%d", outfile, width, height)
	start := time.Now()

	r := fractal.Renderer{Workers: opts.Workers}
	err = r.RenderFile(cmd.Context(), outfile, width, height)
	if err != nil {
		return err
	}

	opts.logf(cmd, "wrote %s in %v", outfile, time.Since(start).Round(time.Millisecond))
	return nil
}
