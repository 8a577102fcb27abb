package fractal

import (
	"image"
	"image/color"
)

// BytesPerPixel is the size of one RGB8 pixel in a Raster.
const BytesPerPixel = 3

// A Raster is a row-major grid of 8-bit RGB pixels with no alpha channel.
//
// Raster implements image.Image, reporting every pixel as opaque, so it can be
// handed directly to any encoder.
type Raster struct {
	Width, Height int

	// Pix holds R, G, B for each pixel; the pixel at (x, y) starts at
	// Pix[(y*Width+x)*BytesPerPixel].
	Pix []uint8
}

// NewRaster allocates a zeroed width x height Raster.
func NewRaster(width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, invalidDimensions(width, height)
	}

	return &Raster{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*BytesPerPixel),
	}, nil
}

func (r *Raster) offset(x, y int) int {
	return (y*r.Width + x) * BytesPerPixel
}

// Row returns the pixels of row y. Rows never overlap, so distinct rows may be
// written concurrently.
func (r *Raster) Row(y int) []uint8 {
	start := r.offset(0, y)
	return r.Pix[start : start+r.Width*BytesPerPixel]
}

// SetRGB stores the pixel at (x, y).
func (r *Raster) SetRGB(x, y int, red, green, blue uint8) {
	i := r.offset(x, y)
	r.Pix[i] = red
	r.Pix[i+1] = green
	r.Pix[i+2] = blue
}

// RGB returns the channels of the pixel at (x, y).
func (r *Raster) RGB(x, y int) (red, green, blue uint8) {
	i := r.offset(x, y)
	return r.Pix[i], r.Pix[i+1], r.Pix[i+2]
}

func (r *Raster) ColorModel() color.Model {
	return color.RGBAModel
}

func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.Width, r.Height)
}

func (r *Raster) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(r.Bounds())) {
		return color.RGBA{}
	}

	red, green, blue := r.RGB(x, y)
	return color.RGBA{R: red, G: green, B: blue, A: 0xff}
}

// Opaque reports that the Raster has no transparent pixels. Encoders such as
// image/png use this to write RGB without an alpha channel.
func (r *Raster) Opaque() bool {
	return true
}

var _ image.Image = (*Raster)(nil)
