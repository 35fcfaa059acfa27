// Package spnbox provides the two layer primitives of substitution-
// permutation network (SPN) ciphers: substitution boxes (S-boxes) driven by
// an arbitrary lookup table, and permutation boxes (P-boxes) that reorder
// individual bits.
//
// Both primitives are invertible. A validating factory checks the raw
// table or permutation, derives its inverse once, and returns an immutable
// instance; after that, Encrypt and Decrypt are pure O(1) lookups over bit
// vectors. The package supplies the layer primitives only, not a full
// cipher: key scheduling, round composition, and modes of operation are out
// of scope.
//
// # Features
//
//   - Invertible: Decrypt(Encrypt(v)) == v for every valid instance
//   - Validated construction: a factory returns either a fully valid
//     instance or a descriptive error, never a partially valid one
//   - Precomputed inverses: the inverse table or permutation is derived
//     once at construction, so repeated transforms cost one lookup
//   - Strict input contracts: transforms reject wrong-length inputs with
//     ErrInvalidInputLength instead of indexing out of bounds
//
// # Bit vectors
//
// Transforms operate on []bool bit vectors, interpreted most-significant-
// bit-first when converted to and from integers. BitsToNum and NumToBits
// convert between the two representations at a caller-chosen width:
//
//	bits := spnbox.NumToBits(0b1100_1010, 8)
//	num := spnbox.BitsToNum(bits) // 0xCA
//
// # Basic Usage
//
//	sbox, err := spnbox.NewSBox(table) // e.g. a 16x16 byte substitution
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ciphertext, err := sbox.Encrypt(spnbox.NumToBits(0xCA, sbox.BlockSize()))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	plaintext, err := sbox.Decrypt(ciphertext)
//
// P-boxes work the same way, from a 1-based permutation of up to 32
// positions:
//
//	pbox, err := spnbox.NewPBox([]uint32{4, 2, 7, 1, 3, 8, 5, 6})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	shuffled, err := pbox.Encrypt(bits)
//
// # S-box bijectivity
//
// NewSBox verifies the table's shape and entry widths but not that the
// table is a bijection over its full input width. A non-bijective table
// yields an SBox whose Decrypt is not the true inverse of Encrypt, with no
// error reported at any point; upholding bijectivity is the caller's
// responsibility.
//
// # Thread Safety
//
// SBox and PBox instances are immutable after construction. Any number of
// goroutines may call Encrypt and Decrypt on a shared instance
// concurrently without synchronization.
package spnbox
