package iir4

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-iir4/dsp/filter/iir4/internal/arch/registry"
)

// Bank evaluates a fixed set of channels against complete input signals.
// A Bank holds no signal state and may be used from several goroutines.
type Bank struct {
	channels []Channel
	workers  int
	kernel   registry.OpEntry
}

type bankConfig struct {
	workers int
	kernel  string
}

func defaultBankConfig() bankConfig {
	return bankConfig{workers: 1}
}

// Option configures a Bank.
type Option func(*bankConfig)

// WithWorkers sets how many channels are filtered concurrently. Values
// below 1 are ignored; the default of 1 runs channels sequentially.
func WithWorkers(n int) Option {
	return func(cfg *bankConfig) {
		if n >= 1 {
			cfg.workers = n
		}
	}
}

// WithKernel forces a registered column kernel by name (see [Kernels]).
// Unknown names are ignored and the CPU-selected kernel is used.
func WithKernel(name string) Option {
	return func(cfg *bankConfig) {
		cfg.kernel = name
	}
}

// New returns a bank over a copy of channels.
func New(channels []Channel, opts ...Option) *Bank {
	cfg := defaultBankConfig()
	for _, o := range opts {
		o(&cfg)
	}

	kernel := *selectKernel()
	if cfg.kernel != "" {
		if entry := registry.Global.ByName(cfg.kernel); entry != nil && entry.ProcessColumn != nil {
			kernel = *entry
		}
	}

	return &Bank{
		channels: append([]Channel(nil), channels...),
		workers:  cfg.workers,
		kernel:   kernel,
	}
}

// Apply filters input through the parallel gain and pole vectors and
// returns a len(input) x len(gain) output. It fails with
// [ErrInvalidArgument] before any computation when the vectors differ in
// length.
func Apply(gain, pole, input []complex64) (*Output, error) {
	channels, err := Channels(gain, pole)
	if err != nil {
		return nil, err
	}
	return New(channels).Apply(input), nil
}

// Channels returns the bank's channels in column order.
func (b *Bank) Channels() []Channel { return b.channels }

// NumChannels returns the number of channels (output columns).
func (b *Bank) NumChannels() int { return len(b.channels) }

// Workers returns the configured channel concurrency.
func (b *Bank) Workers() int { return b.workers }

// Kernel returns the name of the column kernel used by the bank.
func (b *Bank) Kernel() string { return b.kernel.Name }

// Apply filters input through every channel and returns the
// len(input) x NumChannels output.
func (b *Bank) Apply(input []complex64) *Output {
	out := NewOutput(len(input), len(b.channels))
	b.runAll(input, out)
	return out
}

// ApplyTo filters input into dst, which must be len(input) x NumChannels.
// dst is zeroed before filtering.
func (b *Bank) ApplyTo(dst *Output, input []complex64) error {
	if err := validateShape(dst, len(input), len(b.channels)); err != nil {
		return err
	}
	dst.Reset()
	b.runAll(input, dst)
	return nil
}

// ApplyContext is like Apply but stops starting new channels once ctx is
// done and then returns ctx's error. A channel already in progress always
// completes.
func (b *Bank) ApplyContext(ctx context.Context, input []complex64) (*Output, error) {
	out := NewOutput(len(input), len(b.channels))
	if err := b.run(ctx, input, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *Bank) run(ctx context.Context, input []complex64, out *Output) error {
	if len(input) == 0 || len(b.channels) == 0 {
		return ctx.Err()
	}

	if b.workers <= 1 || len(b.channels) == 1 {
		for j := range b.channels {
			if err := ctx.Err(); err != nil {
				return err
			}
			b.processChannel(j, input, out)
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)
	stopped := false
	for j := range b.channels {
		if gctx.Err() != nil {
			stopped = true
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			b.processChannel(j, input, out)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if stopped {
		return ctx.Err()
	}
	return nil
}

// runAll filters every channel. With several workers, worker w takes
// channels w, w+workers, w+2*workers and so on.
func (b *Bank) runAll(input []complex64, out *Output) {
	if len(input) == 0 || len(b.channels) == 0 {
		return
	}

	workers := min(b.workers, len(b.channels))
	if workers <= 1 {
		for j := range b.channels {
			b.processChannel(j, input, out)
		}
		return
	}

	var wg sync.WaitGroup
	for w := range workers {
		wg.Go(func() {
			for j := w; j < len(b.channels); j += workers {
				b.processChannel(j, input, out)
			}
		})
	}
	wg.Wait()
}

func (b *Bank) processChannel(j int, input []complex64, out *Output) {
	ch := b.channels[j]
	b.kernel.ProcessColumn(ch.Gain, ch.Pole, input, out.Column(j))
}
