package resample

// Bank owns N polyphase FIR sub-filters sharing a single prototype tap set.
//
// Row i holds taps[i], taps[i+N], taps[i+2*N], ... — the column-major slice
// of the prototype the polyphase decomposition requires: streaming the
// input by one sample advances every sub-filter by exactly one tap of its
// own impulse response. Reversing this layout would invert the filter's
// group delay.
type Bank struct {
	n    int
	k    int
	rows []float32 // n*k, row-major: rows[i*k+j] == taps[i][j]
}

// newBank builds a bank of n sub-filters from prototype.
func newBank(n int, prototype []float32) *Bank {
	b := &Bank{n: n}
	b.setTaps(prototype)
	return b
}

// setTaps recomputes K and repopulates every row atomically: a caller never
// observes a bank with some rows from the old tap set and some from the new.
func (b *Bank) setTaps(prototype []float32) {
	n := b.n
	k := (len(prototype) + n - 1) / n
	if k == 0 {
		k = 1
	}

	padded := make([]float32, n*k)
	copy(padded, prototype)

	rows := make([]float32, n*k)
	for i := range n {
		for j := range k {
			rows[i*k+j] = padded[i+j*n]
		}
	}

	b.k = k
	b.rows = rows
}

// filterCount returns N, the number of polyphase sub-filters.
func (b *Bank) filterCount() int { return b.n }

// tapsPerFilter returns K, the per-sub-filter tap count.
func (b *Bank) tapsPerFilter() int { return b.k }

// row returns sub-filter i's tap vector as a read-only view into the bank.
func (b *Bank) row(i int) []float32 {
	return b.rows[i*b.k : (i+1)*b.k]
}

// tapRows returns a copy of the tap matrix, one slice per sub-filter, for
// debugging and introspection.
func (b *Bank) tapRows() [][]float32 {
	rows := make([][]float32, b.n)
	for i := range rows {
		r := make([]float32, b.k)
		copy(r, b.row(i))
		rows[i] = r
	}
	return rows
}

// filter computes sub-filter i's dot product against view, a contiguous
// window of at least tapsPerFilter() complex samples starting at the
// current read cursor. view is not mutated, and the call does not allocate.
func (b *Bank) filter(i int, view []complex64) complex64 {
	taps := b.row(i)
	var accRe, accIm float32
	for j, c := range taps {
		s := view[j]
		accRe += c * real(s)
		accIm += c * imag(s)
	}
	return complex(accRe, accIm)
}
