package bankstat

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-iir4/dsp/filter/iir4"
)

var errSpectrumSize = errors.New("spectrum size must be a power of two >= 2")

func validateSize(size int) error {
	if size < 2 || size&(size-1) != 0 {
		return fmt.Errorf("%w: %d", errSpectrumSize, size)
	}
	return nil
}

// Spectrum returns the size-point FFT of col. col is zero-padded or
// truncated to size samples.
func Spectrum(col []complex64, size int) ([]complex64, error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}

	in := make([]complex64, size)
	copy(in, col)

	plan, err := algofft.NewPlan32(size)
	if err != nil {
		return nil, fmt.Errorf("bankstat: fft plan: %w", err)
	}

	out := make([]complex64, size)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("bankstat: forward fft: %w", err)
	}
	return out, nil
}

// FrequencyResponse measures a channel's response on size uniformly spaced
// bins by transforming size samples of its impulse response. Bin k lies at
// [BinFrequency](k, size, sampleRate).
func FrequencyResponse(ch iir4.Channel, size int) ([]complex64, error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}
	return Spectrum(ch.ImpulseResponse(size), size)
}

// BinFrequency returns the frequency in Hz of FFT bin k.
func BinFrequency(k, size int, sampleRate float64) float64 {
	return float64(k) * sampleRate / float64(size)
}
