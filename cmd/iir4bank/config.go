package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// config holds the command-line parameters of one run.
type config struct {
	gains      []complex64
	poles      []complex64
	inPath     string
	outPath    string
	impulseLen int
	sampleRate float64
	freqHz     float64
	workers    int
}

func defaultConfig() config {
	return config{
		gains:      []complex64{1},
		poles:      []complex64{0.5},
		impulseLen: 64,
		sampleRate: 48000,
		freqHz:     1000,
		workers:    1,
	}
}

var errNoInput = errors.New("either -in or a positive -impulse length is required")

func (c config) validate() error {
	if c.inPath == "" && c.impulseLen <= 0 {
		return errNoInput
	}
	if c.sampleRate <= 0 {
		return fmt.Errorf("sample rate must be > 0: %g", c.sampleRate)
	}
	return nil
}

// parseComplexList parses a comma separated list such as "1, 0.5+0.2i, (0-1i)".
func parseComplexList(s string) ([]complex64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	fields := strings.Split(s, ",")
	out := make([]complex64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseComplex(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d %q: %w", i, f, err)
		}
		out[i] = complex64(v)
	}
	return out, nil
}
