package generic

import (
	"github.com/cwbudde/algo-iir4/dsp/filter/iir4/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:          "generic",
		SIMDLevel:     cpu.SIMDNone,
		Priority:      0,
		ProcessColumn: ProcessColumn,
	})
}

// ProcessColumn mutates the trailing window of out in place. Cell n is
// corrected at i = n, n+1, n+2, n+3 and never touched again.
func ProcessColumn(gain, pole complex64, input, out []complex64) {
	m := len(input)
	if m < 4 {
		return
	}
	_ = out[m-1] // bounds check hint

	for i := 4; i < m; i++ {
		out[i] = gain * input[i]
		for l := range 4 {
			target := i - l
			out[target] += pole * out[target-1]
		}
	}
}
