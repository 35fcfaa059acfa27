package spnbox

import "errors"

var (
	// ErrInvalidTable is returned when an S-box table has a row or column
	// count that is not a nonzero power of two, rows of differing lengths,
	// or entries whose maximum bit-width does not exactly match the width
	// derived from the table dimensions.
	ErrInvalidTable = errors.New("spnbox: invalid substitution table")

	// ErrInvalidPermutation is returned when a P-box permutation is empty,
	// longer than 32 positions, or is not a bijection on {1, ..., n}.
	ErrInvalidPermutation = errors.New("spnbox: invalid permutation")

	// ErrInvalidInputLength is returned by Encrypt and Decrypt when the
	// input bit vector's length does not match the instance's block size.
	ErrInvalidInputLength = errors.New("spnbox: invalid input length")
)

// MaxPermutationSize is the maximum number of positions a P-box permutation
// may have. Validation tracks used positions in a 32-bit mask.
const MaxPermutationSize = 32
