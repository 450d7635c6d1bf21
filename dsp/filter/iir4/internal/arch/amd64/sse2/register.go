//go:build amd64 && !purego

package sse2

import (
	"github.com/cwbudde/algo-iir4/dsp/filter/iir4/internal/arch/registry"
	"github.com/cwbudde/algo-iir4/dsp/filter/iir4/internal/arch/windowed"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// The register-carried scalar kernel is selected on SSE2 CPUs.
// TODO: vectorize across channels (four columns per XMM pair).
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:          "sse2",
		SIMDLevel:     cpu.SIMDSSE2,
		Priority:      10,
		ProcessColumn: windowed.ProcessColumn,
	})
}
