// Package windowed holds the register-carried column kernel shared by the
// architecture backends.
package windowed

// ProcessColumn keeps the four trailing output cells in locals and stores
// each cell once it is final. The arithmetic is done on split float32
// real/imaginary parts in the same order as the indexed update, so the
// stored values match a float32 evaluation of that update.
func ProcessColumn(gain, pole complex64, input, out []complex64) {
	m := len(input)
	if m < 4 {
		return
	}
	_ = out[m-1] // bounds check hint

	gr, gi := real(gain), imag(gain)
	pr, pi := real(pole), imag(pole)

	// w1 is cell i-1, w4 is cell i-4. Rows 0..3 are zero.
	var w1r, w1i, w2r, w2i, w3r, w3i, w4r, w4i float32

	for i := 4; i < m; i++ {
		xr, xi := real(input[i]), imag(input[i])

		yr := gr*xr - gi*xi
		yi := gi*xr + gr*xi

		yr += pr*w1r - pi*w1i
		yi += pi*w1r + pr*w1i

		w1r, w1i = w1r+(pr*w2r-pi*w2i), w1i+(pi*w2r+pr*w2i)
		w2r, w2i = w2r+(pr*w3r-pi*w3i), w2i+(pi*w3r+pr*w3i)
		w3r, w3i = w3r+(pr*w4r-pi*w4i), w3i+(pi*w4r+pr*w4i)

		out[i-3] = complex(w3r, w3i)

		w4r, w4i = w3r, w3i
		w3r, w3i = w2r, w2i
		w2r, w2i = w1r, w1i
		w1r, w1i = yr, yi
	}

	out[m-1] = complex(w1r, w1i)
	out[m-2] = complex(w2r, w2i)
	out[m-3] = complex(w3r, w3i)
}
