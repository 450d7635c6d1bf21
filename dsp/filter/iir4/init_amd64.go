//go:build amd64 && !purego

package iir4

import (
	_ "github.com/cwbudde/algo-iir4/dsp/filter/iir4/internal/arch/amd64/sse2" // register SSE2 backend
	_ "github.com/cwbudde/algo-iir4/dsp/filter/iir4/internal/arch/generic"    // register generic backend
	_ "github.com/cwbudde/algo-iir4/dsp/filter/iir4/internal/arch/registry"   // initialize backend registry
)
