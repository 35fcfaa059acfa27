package spnbox

// BitsToNum interprets bits as a most-significant-bit-first binary number
// and returns the corresponding unsigned integer. An empty slice yields 0.
func BitsToNum(bits []bool) uint32 {
	var result uint32
	for _, bit := range bits {
		result <<= 1
		if bit {
			result |= 1
		}
	}
	return result
}

// NumToBits returns exactly bitCount bits representing num in
// most-significant-bit-first order. High-order bits of num that do not fit
// in bitCount bits are truncated; the low-order bits are kept.
func NumToBits(num uint32, bitCount int) []bool {
	result := make([]bool, 0, bitCount)
	for i := 0; i < bitCount; i++ {
		result = append(result, num&1 == 1)
		num >>= 1
	}

	// Bits were extracted least-significant-first; reverse into MSB-first.
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return result
}

// ceilLog returns the minimal c >= 0 such that 2^c >= n, i.e. the number of
// bits needed to address n distinct values. ceilLog(1) is 0. The n == 0
// case degenerates to 0 without complaint; callers must reject zero inputs
// where that matters.
func ceilLog(n int) int {
	c := 0
	for n > 1 {
		c++
		n = n>>1 + n&1
	}
	return c
}
