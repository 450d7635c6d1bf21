package iir4

import (
	"math"
	"math/cmplx"
)

// Response computes the complex frequency response
//
//	H(e^jw) = gain / (1 - pole*e^-jw)^4
//
// of the channel at the given frequency (Hz) and sample rate (Hz).
func (c Channel) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	d := 1 - complex128(c.Pole)*cmplx.Exp(complex(0, -w))
	d2 := d * d
	return complex128(c.Gain) / (d2 * d2)
}

// MagnitudeDB returns 20*log10(|H(f)|).
func (c Channel) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz, sampleRate)))
}

// Phase returns the phase response in radians at the given frequency.
func (c Channel) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}

// ImpulseResponse returns n samples of the fully corrected impulse response
// h[k] = gain * C(k+3, 3) * pole^k. It runs the bank kernel on an impulse at
// row 4 with three rows of tail so that every returned sample is final.
func (c Channel) ImpulseResponse(n int) []complex64 {
	if n <= 0 {
		return nil
	}

	m := n + 7
	input := make([]complex64, m)
	input[4] = 1

	col := make([]complex64, m)
	ProcessColumn(c, input, col)

	ir := make([]complex64, n)
	copy(ir, col[4:4+n])
	return ir
}
