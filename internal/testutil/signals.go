package testutil

import (
	"math"
	"math/rand"
)

// DeterministicTone generates an analytic complex tone
// amplitude*e^(j*2*pi*f*n/fs).
func DeterministicTone(freqHz, sampleRate, amplitude float64, length int) []complex64 {
	out := make([]complex64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		s, c := math.Sincos(step * float64(i))
		out[i] = complex(float32(amplitude*c), float32(amplitude*s))
	}
	return out
}

// DeterministicNoise generates complex white noise with a fixed seed for
// reproducibility. Real and imaginary parts are uniform in
// [-amplitude, amplitude).
func DeterministicNoise(seed int64, amplitude float64, length int) []complex64 {
	out := make([]complex64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		re := (rng.Float64()*2 - 1) * amplitude
		im := (rng.Float64()*2 - 1) * amplitude
		out[i] = complex(float32(re), float32(im))
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []complex64 {
	out := make([]complex64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Scale returns c*x for every element of x.
func Scale(x []complex64, c complex64) []complex64 {
	out := make([]complex64, len(x))
	for i, v := range x {
		out[i] = c * v
	}
	return out
}
