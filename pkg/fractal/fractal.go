// Package fractal renders the Julia-set image: red and blue form a gradient
// over the pixel coordinates, green is the escape time of z -> z*z + c.
package fractal

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/willbeason/mirage/pkg/imageio"
	"github.com/willbeason/mirage/pkg/transforms"
	"golang.org/x/sync/errgroup"
)

const (
	// ViewSize is the width and height of the viewed region of the complex plane.
	ViewSize = 3.0
	// ViewOffset shifts the view so it is centered on the origin.
	ViewOffset = 1.5

	// GradientScale converts a pixel coordinate to a background channel value.
	GradientScale = 0.3

	Bailout       = 2.0
	MaxIterations = 255
)

// C is the Julia-set parameter.
var C complex64 = complex(-0.4, 0.6)

var ErrInvalidDimensions = errors.New("invalid dimensions")

func invalidDimensions(width, height int) error {
	return fmt.Errorf("%w: %dx%d, width and height must be positive", ErrInvalidDimensions, width, height)
}

type Renderer struct {
	// Workers is the number of rows rendered concurrently.
	// Zero or less means runtime.NumCPU().
	Workers int
}

// Render computes a width x height Raster.
//
// Rows are rendered in parallel; Render returns only once every pixel is
// written. If ctx is cancelled first, Render returns ctx.Err() and no Raster.
func (r Renderer) Render(ctx context.Context, width, height int) (*Raster, error) {
	raster, err := NewRaster(width, height)
	if err != nil {
		return nil, err
	}

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	scaleX := float32(ViewSize) / float32(width)
	scaleY := float32(ViewSize) / float32(height)
	j := transforms.Julia2{C: C}

	var g errgroup.Group
	g.SetLimit(workers)

	for y := 0; y < height; y++ {
		if ctx.Err() != nil {
			break
		}

		y := y
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			renderRow(raster.Row(y), y, scaleX, scaleY, j)
			return nil
		})
	}

	// Rows skipped after cancellation leave no error in the group.
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return raster, nil
}

// renderRow fills row y. The real part of each point comes from y and the
// imaginary part from x.
func renderRow(row []uint8, y int, scaleX, scaleY float32, j transforms.Julia2) {
	blue := Gradient(y)
	cx := float32(float32(y)*scaleX) - ViewOffset

	for x := 0; x*BytesPerPixel < len(row); x++ {
		cy := float32(float32(x)*scaleY) - ViewOffset

		green := transforms.Escape(j, complex(cx, cy), Bailout, MaxIterations)

		p := row[x*BytesPerPixel : (x+1)*BytesPerPixel]
		p[0] = Gradient(x)
		p[1] = uint8(green)
		p[2] = blue
	}
}

// Gradient is the background channel value for a pixel coordinate. Values past
// 255 wrap around modulo 256.
func Gradient(coordinate int) uint8 {
	return uint8(uint32(float32(GradientScale) * float32(coordinate)))
}

// RenderFile renders a width x height image and saves it to path. The format
// is chosen from the path's extension.
func (r Renderer) RenderFile(ctx context.Context, path string, width, height int) error {
	raster, err := r.Render(ctx, width, height)
	if err != nil {
		return err
	}

	return imageio.Save(raster, path)
}
