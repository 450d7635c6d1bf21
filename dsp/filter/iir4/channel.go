package iir4

import "math/cmplx"

// Channel is one filter parameterization of the bank.
type Channel struct {
	Gain complex64 // feed-forward gain/phase applied to the raw input
	Pole complex64 // feedback coefficient, applied four times
}

// Channels zips parallel gain and pole vectors into channel records. The
// result preserves index order, so Channels(g, p)[j] drives output column j.
func Channels(gain, pole []complex64) ([]Channel, error) {
	if err := validateCoefficients(gain, pole); err != nil {
		return nil, err
	}

	channels := make([]Channel, len(gain))
	for j := range gain {
		channels[j] = Channel{Gain: gain[j], Pole: pole[j]}
	}
	return channels, nil
}

// Stable reports whether the pole lies strictly inside the unit circle.
// The bank does not enforce this.
func (c Channel) Stable() bool {
	return cmplx.Abs(complex128(c.Pole)) < 1
}
