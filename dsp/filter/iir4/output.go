package iir4

// Output is an M x N complex matrix holding one channel per column.
//
// Storage is column-major, so every column is a contiguous channel signal.
type Output struct {
	rows, cols int
	data       []complex64
}

// NewOutput allocates a zeroed rows x cols output. Negative dimensions are
// treated as zero.
func NewOutput(rows, cols int) *Output {
	rows = max(rows, 0)
	cols = max(cols, 0)
	return &Output{
		rows: rows,
		cols: cols,
		data: make([]complex64, rows*cols),
	}
}

// Rows returns the number of samples per channel (M).
func (o *Output) Rows() int { return o.rows }

// Cols returns the number of channels (N).
func (o *Output) Cols() int { return o.cols }

// At returns the sample at row i of column j.
func (o *Output) At(i, j int) complex64 {
	return o.data[j*o.rows+i]
}

// Column returns channel j's signal. The slice aliases the output storage.
func (o *Output) Column(j int) []complex64 {
	start := j * o.rows
	return o.data[start : start+o.rows : start+o.rows]
}

// Columns returns all channel signals as views into the output storage.
func (o *Output) Columns() [][]complex64 {
	cols := make([][]complex64, o.cols)
	for j := range cols {
		cols[j] = o.Column(j)
	}
	return cols
}

// Row returns a copy of time step i across all channels.
func (o *Output) Row(i int) []complex64 {
	row := make([]complex64, o.cols)
	for j := range row {
		row[j] = o.data[j*o.rows+i]
	}
	return row
}

// Data returns the column-major backing slice.
func (o *Output) Data() []complex64 { return o.data }

// Reset zeroes every sample.
func (o *Output) Reset() {
	clear(o.data)
}
