package edit

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stripes is a 4x2 image whose columns are distinct shades of red.
func stripes() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 60), G: 100, B: 200, A: 0xff})
		}
	}
	return img
}

func variance(img *image.NRGBA) float64 {
	var sum, sumSq float64
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			v := (float64(c.R) + float64(c.G) + float64(c.B)) / 3
			sum += v
			sumSq += v * v
			n++
		}
	}
	mean := sum / float64(n)
	return sumSq/float64(n) - mean*mean
}

func TestBlur(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if (x/2+y/2)%2 == 0 {
				src.SetNRGBA(x, y, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
			} else {
				src.SetNRGBA(x, y, color.NRGBA{A: 0xff})
			}
		}
	}

	e, err := Blur(5)
	require.NoError(t, err)

	dst := e.Apply(src)
	assert.Equal(t, src.Bounds(), dst.Bounds())
	assert.Less(t, variance(dst), variance(src))
}

func TestBlur_Range(t *testing.T) {
	for _, v := range []float64{-10, 100.5, 150} {
		_, err := Blur(v)
		assert.ErrorIs(t, err, ErrBlurRange, "blur %v", v)
	}

	for _, v := range []float64{0, 25, 100} {
		_, err := Blur(v)
		assert.NoError(t, err, "blur %v", v)
	}
}

func TestBrighten(t *testing.T) {
	src := stripes()

	dst := Brighten(30).Apply(src)
	assert.Equal(t, color.NRGBA{R: 30, G: 130, B: 230, A: 0xff}, dst.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 210, G: 130, B: 230, A: 0xff}, dst.NRGBAAt(3, 1))

	// Channels saturate rather than wrap.
	dst = Brighten(80).Apply(src)
	assert.Equal(t, color.NRGBA{R: 0xff, G: 180, B: 0xff, A: 0xff}, dst.NRGBAAt(3, 1))

	dst = Brighten(-120).Apply(src)
	assert.Equal(t, color.NRGBA{R: 0, G: 0, B: 80, A: 0xff}, dst.NRGBAAt(0, 0))
}

func TestCrop(t *testing.T) {
	src := stripes()

	e, err := Crop(src.Bounds(), 1, 0, 2, 2)
	require.NoError(t, err)

	dst := e.Apply(src)
	assert.Equal(t, image.Rect(0, 0, 2, 2), dst.Bounds())
	assert.Equal(t, src.NRGBAAt(1, 0), dst.NRGBAAt(0, 0))
	assert.Equal(t, src.NRGBAAt(2, 1), dst.NRGBAAt(1, 1))
}

func TestCrop_Bounds(t *testing.T) {
	b := stripes().Bounds()

	tcs := []struct {
		name                string
		x, y, width, height int
	}{
		{name: "empty", x: 0, y: 0, width: 0, height: 1},
		{name: "negative origin", x: -1, y: 0, width: 1, height: 1},
		{name: "too wide", x: 2, y: 0, width: 3, height: 1},
		{name: "too tall", x: 0, y: 1, width: 1, height: 2},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Crop(b, tc.x, tc.y, tc.width, tc.height)
			assert.ErrorIs(t, err, ErrCropBounds)
		})
	}
}

func TestRotate(t *testing.T) {
	src := stripes()

	cw, err := Rotate(90)
	require.NoError(t, err)
	dst := cw.Apply(src)
	assert.Equal(t, image.Rect(0, 0, 2, 4), dst.Bounds())
	// Clockwise: the top-left pixel moves to the top-right.
	assert.Equal(t, src.NRGBAAt(0, 0), dst.NRGBAAt(1, 0))
	assert.Equal(t, src.NRGBAAt(3, 0), dst.NRGBAAt(1, 3))

	half, err := Rotate(180)
	require.NoError(t, err)
	dst = half.Apply(src)
	assert.Equal(t, src.Bounds(), dst.Bounds())
	assert.Equal(t, src.NRGBAAt(0, 0), dst.NRGBAAt(3, 1))

	ccw, err := Rotate(270)
	require.NoError(t, err)
	dst = ccw.Apply(src)
	assert.Equal(t, image.Rect(0, 0, 2, 4), dst.Bounds())
	assert.Equal(t, src.NRGBAAt(0, 0), dst.NRGBAAt(0, 3))

	// Four quarter turns restore the original.
	dst = src
	for i := 0; i < 4; i++ {
		dst = cw.Apply(dst)
	}
	assert.Equal(t, src.Pix, dst.Pix)
}

func TestRotate_Invalid(t *testing.T) {
	for _, d := range []int{0, 45, 360, -90} {
		_, err := Rotate(d)
		assert.ErrorIs(t, err, ErrRotation, "rotate %d", d)
	}
}

func TestHueRotate(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 0xff, A: 0xff})

	e, err := HueRotate(120)
	require.NoError(t, err)

	c := e.Apply(src).NRGBAAt(0, 0)
	assert.Greater(t, c.G, c.R)
	assert.Greater(t, c.G, c.B)

	_, err = HueRotate(200)
	assert.ErrorIs(t, err, ErrHueRange)
}

func TestInvert(t *testing.T) {
	src := stripes()

	dst := Invert().Apply(src)
	assert.Equal(t, color.NRGBA{R: 0xff - 60, G: 155, B: 55, A: 0xff}, dst.NRGBAAt(1, 0))

	assert.Equal(t, src.Pix, Invert().Apply(dst).Pix)
}

func TestGrayscale(t *testing.T) {
	dst := Grayscale().Apply(stripes())

	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := dst.NRGBAAt(x, y)
			assert.Equal(t, c.R, c.G)
			assert.Equal(t, c.G, c.B)
		}
	}
}

func TestFill(t *testing.T) {
	c := color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff}

	img := Fill(3, 2, c)
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
	assert.Equal(t, c, img.NRGBAAt(0, 0))
	assert.Equal(t, c, img.NRGBAAt(2, 1))
}
