package iir4

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-iir4/internal/testutil"
)

var testChannels = []Channel{
	{Gain: 1, Pole: 0.5},
	{Gain: 0.3 - 0.8i, Pole: 0.6 + 0.3i},
	{Gain: 1i, Pole: -0.4 + 0.55i},
	{Gain: 2 + 1i, Pole: 0.75 - 0.2i},
}

func TestApply_WorkedExample(t *testing.T) {
	input := []complex64{1, 0, 0, 0, 2, 0}

	out, err := Apply([]complex64{1}, []complex64{0.5}, input)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if out.Rows() != 6 || out.Cols() != 1 {
		t.Fatalf("shape = %dx%d, want 6x1", out.Rows(), out.Cols())
	}

	want := []complex64{0, 0, 0, 0, 2, 1}
	for i, w := range want {
		if got := out.At(i, 0); got != w {
			t.Errorf("out[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestApply_MismatchedCoefficients(t *testing.T) {
	out, err := Apply([]complex64{1, 2}, []complex64{0.5}, make([]complex64, 16))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
	if out != nil {
		t.Fatal("expected nil output on precondition failure")
	}
}

func TestApply_ShortInputIsZero(t *testing.T) {
	gains, poles := splitChannels(testChannels)
	for m := range 4 {
		input := testutil.DeterministicNoise(int64(m), 1, m)

		out, err := Apply(gains, poles, input)
		if err != nil {
			t.Fatalf("M=%d: %v", m, err)
		}
		if out.Rows() != m || out.Cols() != len(testChannels) {
			t.Fatalf("M=%d: shape %dx%d", m, out.Rows(), out.Cols())
		}
		testutil.RequireZero(t, out.Data())
	}
}

func TestApply_LeadingRowsZero(t *testing.T) {
	input := testutil.DeterministicNoise(3, 1, 64)
	out := New(testChannels).Apply(input)

	for j := range testChannels {
		testutil.RequireZero(t, out.Column(j)[:4])
	}
}

func TestApply_ZeroChannels(t *testing.T) {
	out, err := Apply(nil, nil, testutil.DeterministicNoise(1, 1, 32))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out.Rows() != 32 || out.Cols() != 0 || len(out.Data()) != 0 {
		t.Fatalf("shape = %dx%d, data %d", out.Rows(), out.Cols(), len(out.Data()))
	}
}

func TestApply_PassThrough(t *testing.T) {
	input := testutil.DeterministicNoise(11, 1, 100)
	out, err := Apply([]complex64{1}, []complex64{0}, input)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	for i, x := range input {
		want := x
		if i < 4 {
			want = 0
		}
		if got := out.At(i, 0); got != want {
			t.Fatalf("out[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestApply_MatchesFourStageCascade(t *testing.T) {
	for _, m := range []int{5, 6, 7, 8, 9, 64, 1000} {
		input := testutil.DeterministicNoise(int64(m), 1, m)
		out := New(testChannels).Apply(input)

		for j, ch := range testChannels {
			col := out.Column(j)
			full := Cascade(ch, input, 4)
			eps := 1e-3 * max(1, testutil.PeakAbs(full))

			settled := max(m-3, 4)
			testutil.RequireComplexNearlyEqual(t, col[:settled], full[:settled], eps)

			// Trailing rows carry one, two and three stages.
			for k := 1; k <= 3; k++ {
				n := m - k
				if n < 4 {
					continue
				}
				partial := Cascade(ch, input, k)
				testutil.RequireComplexNearlyEqual(t, col[n:n+1], partial[n:n+1], eps)
			}
		}
	}
}

func TestApply_Linearity(t *testing.T) {
	input := testutil.DeterministicNoise(5, 1, 256)
	bank := New(testChannels)
	base := bank.Apply(input)

	for _, c := range []complex64{2, -0.5, 1i, 0.6 - 0.8i} {
		scaled := bank.Apply(testutil.Scale(input, c))
		for j := range testChannels {
			want := testutil.Scale(base.Column(j), c)
			eps := 1e-3 * max(1, testutil.PeakAbs(want))
			testutil.RequireComplexNearlyEqual(t, scaled.Column(j), want, eps)
		}
	}
}

func TestApply_ChannelIndependence(t *testing.T) {
	input := testutil.DeterministicNoise(9, 1, 128)
	base := New(testChannels).Apply(input)

	changed := append([]Channel(nil), testChannels...)
	changed[2] = Channel{Gain: -3 + 2i, Pole: 0.1 - 0.9i}
	out := New(changed).Apply(input)

	for j := range testChannels {
		if j == 2 {
			continue
		}
		testutil.RequireComplexEqual(t, out.Column(j), base.Column(j))
	}
}

func TestApply_Deterministic(t *testing.T) {
	input := testutil.DeterministicNoise(21, 1, 500)
	bank := New(testChannels)

	a := bank.Apply(input)
	b := bank.Apply(input)
	testutil.RequireComplexEqual(t, a.Data(), b.Data())
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	input := testutil.DeterministicNoise(13, 1, 64)
	orig := append([]complex64(nil), input...)

	New(testChannels).Apply(input)
	testutil.RequireComplexEqual(t, input, orig)
}

func TestApply_UnstablePoleDiverges(t *testing.T) {
	ch := Channel{Gain: 1, Pole: 1.5}
	if ch.Stable() {
		t.Fatal("pole 1.5 reported stable")
	}

	out := New([]Channel{ch}).Apply(testutil.Impulse(40, 4))
	col := out.Column(0)
	if testutil.PeakAbs(col[30:31]) <= testutil.PeakAbs(col[4:5]) {
		t.Fatalf("expected growth: |y[30]| = %v, |y[4]| = %v", col[30], col[4])
	}
}

func TestBank_ApplyContextMatchesApply(t *testing.T) {
	input := testutil.DeterministicNoise(17, 1, 300)
	want := New(testChannels).Apply(input)

	for _, workers := range []int{1, 2, 3, 8} {
		bank := New(testChannels, WithWorkers(workers))
		got, err := bank.ApplyContext(context.Background(), input)
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		testutil.RequireComplexEqual(t, got.Data(), want.Data())

		testutil.RequireComplexEqual(t, bank.Apply(input).Data(), want.Data())

		dst := NewOutput(len(input), len(testChannels))
		if err := bank.ApplyTo(dst, input); err != nil {
			t.Fatalf("workers=%d: ApplyTo: %v", workers, err)
		}
		testutil.RequireComplexEqual(t, dst.Data(), want.Data())
	}
}

func TestBank_ApplyContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		bank := New(testChannels, WithWorkers(workers))
		out, err := bank.ApplyContext(ctx, testutil.DeterministicNoise(1, 1, 64))
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("workers=%d: err = %v, want context.Canceled", workers, err)
		}
		if out != nil {
			t.Fatalf("workers=%d: expected nil output", workers)
		}
	}
}

func TestBank_ApplyTo(t *testing.T) {
	input := testutil.DeterministicNoise(23, 1, 50)
	bank := New(testChannels)
	want := bank.Apply(input)

	dst := NewOutput(50, len(testChannels))
	for i := range dst.Data() {
		dst.Data()[i] = 99
	}

	if err := bank.ApplyTo(dst, input); err != nil {
		t.Fatalf("ApplyTo: %v", err)
	}
	testutil.RequireComplexEqual(t, dst.Data(), want.Data())
}

func TestBank_ApplyToShapeMismatch(t *testing.T) {
	bank := New(testChannels)
	input := make([]complex64, 10)

	tests := []struct {
		name string
		dst  *Output
	}{
		{"nil", nil},
		{"rows", NewOutput(9, len(testChannels))},
		{"cols", NewOutput(10, len(testChannels)+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := bank.ApplyTo(tt.dst, input); !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("err = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestBank_Options(t *testing.T) {
	bank := New(testChannels, WithWorkers(0), WithKernel("no-such-kernel"))
	if bank.Workers() != 1 {
		t.Errorf("Workers = %d, want 1", bank.Workers())
	}
	if bank.Kernel() != KernelName() {
		t.Errorf("Kernel = %q, want default %q", bank.Kernel(), KernelName())
	}
	if bank.NumChannels() != len(testChannels) {
		t.Errorf("NumChannels = %d", bank.NumChannels())
	}

	bank = New(testChannels, WithKernel("generic"), WithWorkers(4))
	if bank.Kernel() != "generic" || bank.Workers() != 4 {
		t.Errorf("got kernel %q workers %d", bank.Kernel(), bank.Workers())
	}
}

func TestBank_CopiesChannels(t *testing.T) {
	chs := append([]Channel(nil), testChannels...)
	bank := New(chs)
	chs[0].Pole = 0.99

	if bank.Channels()[0].Pole != testChannels[0].Pole {
		t.Fatal("bank shares the caller's channel slice")
	}
}

func TestKernels_Agree(t *testing.T) {
	input := testutil.DeterministicNoise(31, 1, 777)
	ref := New(testChannels, WithKernel("generic")).Apply(input)

	names := Kernels()
	if len(names) == 0 {
		t.Fatal("no kernels registered")
	}

	for _, name := range names {
		bank := New(testChannels, WithKernel(name))
		if bank.Kernel() != name {
			t.Fatalf("WithKernel(%q) selected %q", name, bank.Kernel())
		}

		got := bank.Apply(input)
		for j := range testChannels {
			eps := 1e-4 * max(1, testutil.PeakAbs(ref.Column(j)))
			testutil.RequireComplexNearlyEqual(t, got.Column(j), ref.Column(j), eps)
		}
	}
}

func TestKernels_NonFinitePoles(t *testing.T) {
	inf := float32(math.Inf(1))
	nan := float32(math.NaN())

	tests := []struct {
		name string
		ch   Channel
	}{
		{"positive infinity", Channel{Gain: 1, Pole: complex(inf, 0)}},
		{"negative infinity", Channel{Gain: 1, Pole: complex(-inf, 0)}},
		{"imaginary infinity", Channel{Gain: 1, Pole: complex(0, inf)}},
		{"nan", Channel{Gain: 1, Pole: complex(nan, 0)}},
		{"nan gain", Channel{Gain: complex(nan, 0), Pole: 0.5}},
	}

	input := testutil.DeterministicNoise(5, 1, 16)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := New([]Channel{tt.ch}, WithKernel("generic")).Apply(input).Column(0)
			if ref[0] != 0 {
				t.Fatalf("row 0 = %v, want 0", ref[0])
			}

			for _, name := range Kernels() {
				got := New([]Channel{tt.ch}, WithKernel(name)).Apply(input).Column(0)
				if got[0] != 0 {
					t.Fatalf("%s: row 0 = %v, want 0", name, got[0])
				}
				for i := range ref {
					if isNaN64(got[i]) != isNaN64(ref[i]) {
						t.Fatalf("%s: row %d = %v, generic has %v", name, i, got[i], ref[i])
					}
				}
			}
		})
	}
}

func TestChannels(t *testing.T) {
	gains, poles := splitChannels(testChannels)
	chs, err := Channels(gains, poles)
	if err != nil {
		t.Fatalf("Channels: %v", err)
	}
	for j := range chs {
		if chs[j] != testChannels[j] {
			t.Fatalf("channel %d = %+v, want %+v", j, chs[j], testChannels[j])
		}
	}

	if _, err := Channels(gains[:1], poles); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
}

func splitChannels(chs []Channel) (gains, poles []complex64) {
	gains = make([]complex64, len(chs))
	poles = make([]complex64, len(chs))
	for j, ch := range chs {
		gains[j] = ch.Gain
		poles[j] = ch.Pole
	}
	return gains, poles
}

func isNaN64(c complex64) bool {
	return math.IsNaN(float64(real(c))) || math.IsNaN(float64(imag(c)))
}
