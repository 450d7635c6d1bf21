//go:build arm64 && !purego

package iir4

import (
	_ "github.com/cwbudde/algo-iir4/dsp/filter/iir4/internal/arch/arm64/neon"
	_ "github.com/cwbudde/algo-iir4/dsp/filter/iir4/internal/arch/generic"
	_ "github.com/cwbudde/algo-iir4/dsp/filter/iir4/internal/arch/registry"
)
