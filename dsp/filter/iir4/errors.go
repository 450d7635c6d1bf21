package iir4

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports a violated precondition such as gain and pole
// vectors of different length.
var ErrInvalidArgument = errors.New("iir4: invalid argument")

func validateCoefficients(gain, pole []complex64) error {
	if len(gain) != len(pole) {
		return fmt.Errorf("%w: %d gains but %d poles", ErrInvalidArgument, len(gain), len(pole))
	}
	return nil
}

func validateShape(out *Output, rows, cols int) error {
	if out == nil {
		return fmt.Errorf("%w: nil output", ErrInvalidArgument)
	}
	if out.rows != rows || out.cols != cols {
		return fmt.Errorf("%w: output is %dx%d, want %dx%d",
			ErrInvalidArgument, out.rows, out.cols, rows, cols)
	}
	return nil
}
