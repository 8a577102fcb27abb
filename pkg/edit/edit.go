// Package edit builds the image transforms offered by mirage on top of gift
// filters. Each constructor validates its parameters before any pixels move.
package edit

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/gift"
	"github.com/disintegration/imaging"
)

var (
	ErrBlurRange  = errors.New("blur must be between 0 and 100")
	ErrRotation   = errors.New("rotation must be 90, 180, or 270 degrees")
	ErrHueRange   = errors.New("hue shift must be between -180 and 180 degrees")
	ErrCropBounds = errors.New("crop rectangle must be non-empty and inside the image")
)

// An Edit is a validated chain of filters.
type Edit struct {
	g *gift.GIFT
}

func newEdit(filters ...gift.Filter) Edit {
	return Edit{g: gift.New(filters...)}
}

// Apply runs the edit on src, returning a new image.
func (e Edit) Apply(src image.Image) *image.NRGBA {
	dst := image.NewNRGBA(e.g.Bounds(src.Bounds()))
	e.g.Draw(dst, src)
	return dst
}

// Blur applies a Gaussian blur with standard deviation percent, in pixels.
func Blur(percent float64) (Edit, error) {
	if percent < 0 || percent > 100 {
		return Edit{}, fmt.Errorf("%w: got %v", ErrBlurRange, percent)
	}

	return newEdit(gift.GaussianBlur(float32(percent))), nil
}

// Brighten adds amount to the red, green, and blue channels on an 8-bit scale,
// clamping to [0, 255]. Negative amounts darken.
func Brighten(amount int) Edit {
	delta := float32(amount) / 0xff

	return newEdit(gift.ColorFunc(func(r0, g0, b0, a0 float32) (r, g, b, a float32) {
		return clamp(r0 + delta), clamp(g0 + delta), clamp(b0 + delta), a0
	}))
}

func clamp(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// Crop keeps the width x height rectangle whose top-left corner is (x, y),
// relative to the bounds of the image it is applied to.
func Crop(bounds image.Rectangle, x, y, width, height int) (Edit, error) {
	if width <= 0 || height <= 0 || x < 0 || y < 0 {
		return Edit{}, fmt.Errorf("%w: %dx%d at (%d, %d)", ErrCropBounds, width, height, x, y)
	}

	rect := image.Rect(x, y, x+width, y+height).Add(bounds.Min)
	if !rect.In(bounds) {
		return Edit{}, fmt.Errorf("%w: %v not within %v", ErrCropBounds, rect, bounds)
	}

	return newEdit(gift.Crop(rect)), nil
}

// Rotate turns the image clockwise by 90, 180, or 270 degrees.
func Rotate(degrees int) (Edit, error) {
	// gift rotates counter-clockwise.
	switch degrees {
	case 90:
		return newEdit(gift.Rotate270()), nil
	case 180:
		return newEdit(gift.Rotate180()), nil
	case 270:
		return newEdit(gift.Rotate90()), nil
	default:
		return Edit{}, fmt.Errorf("%w: got %d", ErrRotation, degrees)
	}
}

// HueRotate shifts the hue of every pixel by degrees.
func HueRotate(degrees int) (Edit, error) {
	if degrees < -180 || degrees > 180 {
		return Edit{}, fmt.Errorf("%w: got %d", ErrHueRange, degrees)
	}

	return newEdit(gift.Hue(float32(degrees))), nil
}

func Invert() Edit {
	return newEdit(gift.Invert())
}

func Grayscale() Edit {
	return newEdit(gift.Grayscale())
}

// Fill returns a width x height image of a single color.
func Fill(width, height int, c color.Color) *image.NRGBA {
	return imaging.New(width, height, c)
}
