package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

type options struct {
	// Workers is the number of goroutines used for rendering.
	Workers int
	Quiet   bool
}

func (o *options) logf(cmd *cobra.Command, format string, args ...interface{}) {
	if o.Quiet {
		return
	}
	cmd.Printf(format+"\n", args...)
}

func mainCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "mirage",
		Short: "Generate fractal images and apply simple edits to images",
		Long: `Generate fractal images and apply simple edits to images.

The output format is chosen from the output file's extension:
png, jpg/jpeg, gif, tif/tiff, or bmp.`,
		Args: cobra.NoArgs,
	}

	cmd.PersistentFlags().IntVar(&opts.Workers, "workers", 0,
		"number of rows to render concurrently; 0 uses every CPU")
	cmd.PersistentFlags().BoolVarP(&opts.Quiet, "quiet", "q", false,
		"do not print progress")

	cmd.AddCommand(
		blurCmd(opts),
		brightenCmd(opts),
		cropCmd(opts),
		rotateCmd(opts),
		hueRotateCmd(opts),
		invertCmd(opts),
		grayscaleCmd(opts),
		fractalCmd(opts),
		generateCmd(opts),
	)

	return cmd
}

func parseInt(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return v, nil
}

func parseUint(name, s string) (int, error) {
	v, err := strconv.ParseUint(s, 10, 31)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return int(v), nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
