package iir4

import (
	"sync"

	"github.com/cwbudde/algo-iir4/dsp/filter/iir4/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

var (
	defaultKernel     *registry.OpEntry
	defaultKernelOnce sync.Once
)

func initDefaultKernel() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("iir4: no column kernel registered (missing generic fallback?)")
	}

	if entry.ProcessColumn == nil {
		panic("iir4: selected kernel missing ProcessColumn")
	}

	defaultKernel = entry
}

func selectKernel() *registry.OpEntry {
	defaultKernelOnce.Do(initDefaultKernel)
	return defaultKernel
}

// KernelName returns the name of the column kernel selected for this CPU.
func KernelName() string {
	return selectKernel().Name
}

// Kernels lists the names of all registered column kernels, highest
// priority first.
func Kernels() []string {
	entries := registry.Global.ListEntries()
	names := make([]string, len(entries))
	for i := range entries {
		names[i] = entries[i].Name
	}
	return names
}

// ProcessColumn filters input through one channel into out. out must have
// the same length as input and be zero on entry; input is not modified.
func ProcessColumn(ch Channel, input, out []complex64) {
	if len(input) == 0 {
		return
	}
	_ = out[len(input)-1] // bounds check hint
	selectKernel().ProcessColumn(ch.Gain, ch.Pole, input, out[:len(input)])
}
