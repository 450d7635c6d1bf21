package iir4

// Cascade runs stages explicit one-pole recursions
//
//	s[n] = pole*s[n-1] + x[n]
//
// in series, feeding each stage's output sequence into the next, with
// x[n] = gain*input[n] for n >= 4 and x[n] = 0 before. Arithmetic is carried
// in complex128 and rounded once at the end, so the result serves as a
// reference for the fused bank.
//
// For 4 <= n < len(input)-3 the bank output equals Cascade(ch, input, 4)[n].
// The last three samples of a bank column have only seen the corrections
// applied so far: sample len(input)-k equals Cascade(ch, input, k) there.
func Cascade(ch Channel, input []complex64, stages int) []complex64 {
	m := len(input)
	out := make([]complex64, m)
	if m <= 4 {
		return out
	}

	g := complex128(ch.Gain)
	p := complex128(ch.Pole)

	s := make([]complex128, m)
	for n := 4; n < m; n++ {
		s[n] = g * complex128(input[n])
	}

	for range stages {
		var prev complex128
		for n := 4; n < m; n++ {
			s[n] += p * prev
			prev = s[n]
		}
	}

	for n := range s {
		out[n] = complex64(s[n])
	}
	return out
}
