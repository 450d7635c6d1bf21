package bankstat

import (
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"
	"github.com/meko-christian/algo-approx"

	"github.com/cwbudde/algo-iir4/dsp/filter/iir4"
)

const ln10 = 2.302585092994045684017991454684

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

func unpack(col []complex64, re, im []float64) {
	for i, c := range col {
		re[i] = float64(real(c))
		im[i] = float64(imag(c))
	}
}

// Envelope returns |y[n]| for each sample of a channel column.
func Envelope(col []complex64) []float64 {
	if len(col) == 0 {
		return nil
	}

	out := make([]float64, len(col))
	re, im, buf := getScratch(len(col))
	unpack(col, re, im)
	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Power returns |y[n]|^2 for each sample of a channel column.
func Power(col []complex64) []float64 {
	if len(col) == 0 {
		return nil
	}

	out := make([]float64, len(col))
	re, im, buf := getScratch(len(col))
	unpack(col, re, im)
	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// Energy returns the sum of |y[n]|^2.
func Energy(col []complex64) float64 {
	sum := 0.0
	for _, p := range Power(col) {
		sum += p
	}
	return sum
}

// LevelDB returns the mean power of col in dB (10*log10). An empty or
// silent column yields -Inf; a column holding Inf or NaN samples (a
// diverged channel) yields +Inf.
func LevelDB(col []complex64) float64 {
	if len(col) == 0 {
		return math.Inf(-1)
	}
	mean := Energy(col) / float64(len(col))
	switch {
	case math.IsNaN(mean) || math.IsInf(mean, 1):
		return math.Inf(1)
	case mean <= 0:
		return math.Inf(-1)
	}
	return 10 * approx.FastLog(mean) / ln10
}

// Peak returns the index and magnitude of the largest sample. An empty
// column yields (-1, 0).
func Peak(col []complex64) (int, float64) {
	idx, peak := -1, 0.0
	for i, v := range Envelope(col) {
		if idx < 0 || v > peak {
			idx, peak = i, v
		}
	}
	return idx, peak
}

// ChannelStats summarizes one output column.
type ChannelStats struct {
	Channel   int
	PeakIndex int
	Peak      float64
	Energy    float64
	LevelDB   float64
}

// Summarize computes [ChannelStats] for every column of out.
func Summarize(out *iir4.Output) []ChannelStats {
	stats := make([]ChannelStats, out.Cols())
	for j := range stats {
		col := out.Column(j)
		idx, peak := Peak(col)
		stats[j] = ChannelStats{
			Channel:   j,
			PeakIndex: idx,
			Peak:      peak,
			Energy:    Energy(col),
			LevelDB:   LevelDB(col),
		}
	}
	return stats
}

// Envelopes returns the envelope of every column of out.
func Envelopes(out *iir4.Output) [][]float64 {
	env := make([][]float64, out.Cols())
	for j := range env {
		env[j] = Envelope(out.Column(j))
	}
	return env
}
