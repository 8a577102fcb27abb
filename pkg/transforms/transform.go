package transforms

import "math"

// A Transform iterates a passed point.
type Transform interface {
	Next(complex64) complex64
}

// Abs is the Euclidean norm of z, rounded to single precision.
func Abs(z complex64) float32 {
	return float32(math.Hypot(float64(real(z)), float64(imag(z))))
}

// Escape counts how many times t can be applied to z before |z| exceeds bailout,
// giving up after maxIterations.
func Escape(t Transform, z complex64, bailout float32, maxIterations int) int {
	iterations := 0
	for iterations < maxIterations && Abs(z) <= bailout {
		z = t.Next(z)
		iterations++
	}

	return iterations
}
