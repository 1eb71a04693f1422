package coding

import (
	"math/bits"
)

// DecodeDouble splits n into (x, y) such that n = 2^x·(2y+1).
//
// Zero has no one bit to anchor the odd part on, and is rejected with
// ErrInvalidInput.
func DecodeDouble(n uint64) (x, y uint64, err error) {
	if n == 0 {
		err = ErrInvalidInput
		return
	}

	x = uint64(bits.TrailingZeros64(n))
	y = ((n >> x) - 1) / 2
	return
}

// EncodeDouble returns 2^x·(2y+1).
func EncodeDouble(x, y uint64) (n uint64, err error) {
	odd, err := oddOf(y)
	if err != nil {
		return
	}

	return shiftOdd(odd, x)
}
