// Package bankstat summarizes the columns of an [iir4.Output].
//
// Envelopes and power use the SIMD kernels of algo-vecmath on split
// real/imaginary scratch buffers. Spectra are computed with single-precision
// algo-fft plans so a channel's measured response can be compared with its
// analytic [iir4.Channel.Response].
package bankstat
