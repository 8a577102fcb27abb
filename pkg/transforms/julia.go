package transforms

type Julia2 struct {
	C complex64
}

// Next computes z*z + C one rounded float32 operation at a time. The explicit
// conversions keep the compiler from fusing multiply-adds, so results match
// across architectures.
func (j Julia2) Next(z complex64) complex64 {
	re, im := real(z), imag(z)

	re2 := float32(re * re)
	im2 := float32(im * im)
	reIm := float32(re * im)
	imRe := float32(im * re)

	return complex(float32(re2-im2)+real(j.C), float32(reIm+imRe)+imag(j.C))
}

var _ Transform = Julia2{}
