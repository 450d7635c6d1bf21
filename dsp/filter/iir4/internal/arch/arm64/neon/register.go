//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/algo-iir4/dsp/filter/iir4/internal/arch/registry"
	"github.com/cwbudde/algo-iir4/dsp/filter/iir4/internal/arch/windowed"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:          "neon",
		SIMDLevel:     cpu.SIMDNEON,
		Priority:      10,
		ProcessColumn: windowed.ProcessColumn,
	})
}
