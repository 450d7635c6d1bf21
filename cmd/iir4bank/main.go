// Command iir4bank runs a complex fourth-order recursive filter bank over a
// signal and prints per-channel statistics.
//
// Usage:
//
//	iir4bank [flags]
//
// The input is either the first channel of a WAV file (-in) or a unit
// impulse at sample 4 (-impulse N). Every channel is given by one entry of
// -gains and -poles.
//
// Examples:
//
//	iir4bank -gains 1 -poles 0.5 -impulse 32
//	iir4bank -gains "0.1,0.1i" -poles "0.9+0.1i,0.9-0.1i" -in speech.wav
//	iir4bank -gains 0.05 -poles 0.95 -in speech.wav -out env.wav -workers 4
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/cmplx"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/cwbudde/algo-iir4/dsp/filter/iir4"
	"github.com/cwbudde/algo-iir4/measure/bankstat"
)

func main() {
	cfg := defaultConfig()

	gains := flag.String("gains", "1", "comma separated complex channel gains, e.g. \"1,0.5+0.2i\"")
	poles := flag.String("poles", "0.5", "comma separated complex channel poles, one per gain")
	flag.StringVar(&cfg.inPath, "in", "", "input WAV file (first channel is used)")
	flag.StringVar(&cfg.outPath, "out", "", "write per-channel envelopes to this WAV file")
	flag.IntVar(&cfg.impulseLen, "impulse", cfg.impulseLen, "impulse input length when -in is not given")
	flag.Float64Var(&cfg.sampleRate, "rate", cfg.sampleRate, "sample rate in Hz for impulse input")
	flag.Float64Var(&cfg.freqHz, "freq", cfg.freqHz, "frequency in Hz at which |H| is reported")
	flag.IntVar(&cfg.workers, "workers", cfg.workers, "channels filtered concurrently")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: iir4bank [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Runs a complex fourth-order recursive filter bank and prints channel statistics.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  iir4bank -gains 1 -poles 0.5 -impulse 32\n")
		fmt.Fprintf(os.Stderr, "  iir4bank -gains \"0.1,0.1i\" -poles \"0.9+0.1i,0.9-0.1i\" -in speech.wav\n")
	}
	flag.Parse()

	var err error
	if cfg.gains, err = parseComplexList(*gains); err != nil {
		fmt.Fprintf(os.Stderr, "error: -gains: %v\n", err)
		os.Exit(2)
	}
	if cfg.poles, err = parseComplexList(*poles); err != nil {
		fmt.Fprintf(os.Stderr, "error: -poles: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, w io.Writer) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	channels, err := iir4.Channels(cfg.gains, cfg.poles)
	if err != nil {
		return err
	}

	input, sampleRate, err := loadInput(cfg)
	if err != nil {
		return err
	}

	bank := iir4.New(channels, iir4.WithWorkers(cfg.workers))
	out, err := bank.ApplyContext(ctx, input)
	if err != nil {
		return err
	}

	if err := printStats(w, bank, out, sampleRate, cfg.freqHz); err != nil {
		return err
	}

	if cfg.outPath != "" {
		if err := writeEnvelopes(cfg.outPath, bankstat.Envelopes(out), int(sampleRate)); err != nil {
			return err
		}
	}
	return nil
}

func loadInput(cfg config) ([]complex64, float64, error) {
	if cfg.inPath != "" {
		input, rate, err := readWAV(cfg.inPath)
		if err != nil {
			return nil, 0, err
		}
		return input, float64(rate), nil
	}

	input := make([]complex64, cfg.impulseLen)
	if len(input) > 4 {
		input[4] = 1
	}
	return input, cfg.sampleRate, nil
}

func printStats(w io.Writer, bank *iir4.Bank, out *iir4.Output, sampleRate, freqHz float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "# %d samples x %d channels, kernel %s\n", out.Rows(), out.Cols(), bank.Kernel())
	fmt.Fprintf(tw, "Ch\tGain\tPole\t|Pole|\tStable\tPeak\tPeak@\tLevel [dB]\t|H(%g Hz)| [dB]\n", freqHz)
	fmt.Fprintf(tw, "--\t----\t----\t------\t------\t----\t-----\t----------\t--------------\n")

	stats := bankstat.Summarize(out)
	for j, ch := range bank.Channels() {
		s := stats[j]
		fmt.Fprintf(tw, "%d\t%v\t%v\t%.4f\t%v\t%.6g\t%d\t%.2f\t%.2f\n",
			j,
			ch.Gain,
			ch.Pole,
			cmplx.Abs(complex128(ch.Pole)),
			ch.Stable(),
			s.Peak,
			s.PeakIndex,
			s.LevelDB,
			ch.MagnitudeDB(freqHz, sampleRate),
		)
	}
	return tw.Flush()
}
