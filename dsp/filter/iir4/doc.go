// Package iir4 provides a bank of complex fourth-order recursive sections
// evaluated in parallel against one shared complex input signal.
//
// Each [Channel] carries a complex feed-forward gain and a complex pole. The
// pole is applied with multiplicity four, so every channel realizes
//
//	H(z) = gain / (1 - pole*z^-1)^4
//
// The four cascaded one-pole stages are fused into a single pass over a
// trailing window of the output: for every time index i >= 4 the new sample
// gain*x[i] is stored and then the cells i, i-1, i-2, i-3 each receive one
// correction pole*out[cell-1]. A cell is final after its fourth correction,
// so rows 0..3 of every column stay zero and the last three rows carry one,
// two and three stages respectively.
//
// The bank works on a fully materialized signal and returns an M x N
// [Output] whose column j is channel j's signal:
//
//	out, err := iir4.Apply(gains, poles, input)
//	if err != nil {
//	    return err // gains and poles differ in length
//	}
//	col := out.Column(0)
//
// Channels share no state, so [Bank.ApplyContext] may spread them across
// goroutines ([WithWorkers]). Within a channel the time loop is sequential.
//
// Coefficient design is not part of this package; gains and poles are used
// as given and unstable poles (|pole| >= 1) simply diverge.
package iir4
