package spnbox

import "fmt"

// PBox is a permutation box: an invertible transform that reorders the
// individual bits of its input according to a fixed 1-based permutation.
// Bit i of the input moves to position permutation[i]-1 of the output.
//
// A PBox is immutable after construction and safe for concurrent use.
type PBox struct {
	permutation        []uint32
	inversePermutation []uint32
}

// NewPBox creates a PBox from a sequence of 1-based target positions. The
// sequence must have between 1 and MaxPermutationSize entries and be a
// bijection on {1, ..., n}: no zeros, no entry greater than n, no
// duplicates. Violations are reported as errors wrapping
// ErrInvalidPermutation.
func NewPBox(permutation []uint32) (*PBox, error) {
	n := len(permutation)
	if n == 0 || n > MaxPermutationSize {
		return nil, fmt.Errorf("%w: length %d is outside 1..%d", ErrInvalidPermutation, n, MaxPermutationSize)
	}

	var used uint32
	for _, pos := range permutation {
		if pos == 0 || pos > uint32(n) {
			return nil, fmt.Errorf("%w: position %d is outside 1..%d", ErrInvalidPermutation, pos, n)
		}
		bit := uint32(1) << (pos - 1)
		if used&bit != 0 {
			return nil, fmt.Errorf("%w: position %d appears more than once", ErrInvalidPermutation, pos)
		}
		used |= bit
	}

	owned := append([]uint32(nil), permutation...)

	inverse := make([]uint32, n)
	for i, pos := range owned {
		inverse[pos-1] = uint32(i) + 1
	}

	return &PBox{
		permutation:        owned,
		inversePermutation: inverse,
	}, nil
}

// Size returns the number of bits the PBox permutes, which is the exact
// input and output length of Encrypt and Decrypt.
func (p *PBox) Size() int {
	return len(p.permutation)
}

// Encrypt scatters the input bits through the forward permutation. The
// input must be exactly Size bits long; the result is a freshly allocated
// vector of the same length.
func (p *PBox) Encrypt(bits []bool) ([]bool, error) {
	return p.transform(bits, p.permutation)
}

// Decrypt scatters the input bits through the inverse permutation, undoing
// Encrypt. The input must be exactly Size bits long.
func (p *PBox) Decrypt(bits []bool) ([]bool, error) {
	return p.transform(bits, p.inversePermutation)
}

func (p *PBox) transform(bits []bool, permutation []uint32) ([]bool, error) {
	if len(bits) != len(permutation) {
		return nil, fmt.Errorf("%w: got %d bits, want %d", ErrInvalidInputLength, len(bits), len(permutation))
	}

	result := make([]bool, len(bits))
	for i, bit := range bits {
		result[permutation[i]-1] = bit
	}
	return result, nil
}
