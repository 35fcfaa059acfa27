package spnbox

import "fmt"

// SBox is a substitution box: a table-driven, invertible transform mapping
// one fixed-width bit group to another. The input is split into an outer
// part addressing the table row and a middle part addressing the column;
// the looked-up entry, re-encoded at the same width, is the output.
//
// An SBox is immutable after construction and safe for concurrent use.
type SBox struct {
	table        [][]uint32
	inverseTable [][]uint32
	rowBits      int // bits consumed by the row address
	colBits      int // bits consumed by the column address
}

// NewSBox creates an SBox from a rectangular table of non-negative entries.
// The row count n and column count m must each be nonzero powers of two,
// and the widest table entry must need exactly ceil(log2(n))+ceil(log2(m))
// bits, so that the output width matches the table's addressable domain.
// Violations are reported as errors wrapping ErrInvalidTable.
//
// The table, viewed as a function on its full bit-width input, must be a
// bijection. This is not checked: a non-bijective table produces an SBox
// whose Decrypt is not the inverse of Encrypt, without any error being
// reported.
func NewSBox(table [][]uint32) (*SBox, error) {
	n := len(table)
	if n == 0 || n != 1<<ceilLog(n) {
		return nil, fmt.Errorf("%w: row count %d is not a nonzero power of two", ErrInvalidTable, n)
	}

	m := len(table[0])
	if m == 0 || m != 1<<ceilLog(m) {
		return nil, fmt.Errorf("%w: column count %d is not a nonzero power of two", ErrInvalidTable, m)
	}
	for i, row := range table {
		if len(row) != m {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrInvalidTable, i, len(row), m)
		}
	}

	rowBits := ceilLog(n)
	colBits := ceilLog(m)
	if w := maxEntryBits(table); w != rowBits+colBits {
		return nil, fmt.Errorf("%w: entries span %d bits, want exactly %d", ErrInvalidTable, w, rowBits+colBits)
	}

	owned := make([][]uint32, n)
	for i, row := range table {
		owned[i] = append([]uint32(nil), row...)
	}

	return &SBox{
		table:        owned,
		inverseTable: invertTable(owned, rowBits, colBits),
		rowBits:      rowBits,
		colBits:      colBits,
	}, nil
}

// maxEntryBits returns the largest number of bits needed to address any
// table entry.
func maxEntryBits(table [][]uint32) int {
	w := 0
	for _, row := range table {
		for _, el := range row {
			if b := ceilLog(int(el)); b > w {
				w = b
			}
		}
	}
	return w
}

// invertTable derives the inverse lookup table: for every address (i, j),
// the forward entry's bits select the inverse cell that receives the
// encoded address (i<<colBits)|j. Correct only for bijective tables; a
// non-bijective table silently overwrites cells and leaves gaps.
func invertTable(table [][]uint32, rowBits, colBits int) [][]uint32 {
	n := len(table)
	m := len(table[0])

	inverse := make([][]uint32, n)
	for i := range inverse {
		inverse[i] = make([]uint32, m)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			bits := NumToBits(table[i][j], rowBits+colBits)
			outer := BitsToNum(bits[:rowBits])
			middle := BitsToNum(bits[rowBits:])
			inverse[outer][middle] = uint32(i)<<colBits | uint32(j)
		}
	}
	return inverse
}

// BlockSize returns the exact bit length Encrypt and Decrypt require and
// produce: ceil(log2(n)) + ceil(log2(m)) for an n-by-m table.
func (s *SBox) BlockSize() int {
	return s.rowBits + s.colBits
}

// Encrypt substitutes the input bit group through the forward table. The
// input must be exactly BlockSize bits long; the result is a freshly
// allocated vector of the same length.
func (s *SBox) Encrypt(bits []bool) ([]bool, error) {
	return s.transform(bits, s.table)
}

// Decrypt substitutes the input bit group through the inverse table,
// undoing Encrypt for any valid (bijective) table. The input must be
// exactly BlockSize bits long.
func (s *SBox) Decrypt(bits []bool) ([]bool, error) {
	return s.transform(bits, s.inverseTable)
}

func (s *SBox) transform(bits []bool, table [][]uint32) ([]bool, error) {
	b := s.rowBits + s.colBits
	if len(bits) != b {
		return nil, fmt.Errorf("%w: got %d bits, want %d", ErrInvalidInputLength, len(bits), b)
	}

	outer := BitsToNum(bits[:s.rowBits])
	middle := BitsToNum(bits[s.rowBits:])

	return NumToBits(table[outer][middle], b), nil
}
