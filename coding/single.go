package coding

import (
	"math"
	"math/bits"
)

// DecodeSingle splits n into (x, y) such that n = 2^x·(2y+1) − 1.
//
// x is the length of the run of one bits at the bottom of n.
func DecodeSingle(n uint64) (x, y uint64) {
	x = uint64(bits.TrailingZeros64(^n))
	if x == 64 {
		return
	}

	y = (n >> x) / 2
	return
}

// EncodeSingle returns 2^x·(2y+1) − 1.
func EncodeSingle(x, y uint64) (n uint64, err error) {
	odd, err := oddOf(y)
	if err != nil {
		return
	}

	// All ones is the only value whose shifted odd part does not fit.
	if x == 64 && odd == 1 {
		n = math.MaxUint64
		return
	}

	n, err = shiftOdd(odd, x)
	if err != nil {
		return
	}

	n--
	return
}

// oddOf returns 2y+1.
func oddOf(y uint64) (odd uint64, err error) {
	if y > (math.MaxUint64-1)/2 {
		err = ErrOverflow
		return
	}

	odd = 2*y + 1
	return
}

// shiftOdd returns odd·2^x.
func shiftOdd(odd uint64, x uint64) (n uint64, err error) {
	if x >= 64 || odd > (math.MaxUint64>>x) {
		err = ErrOverflow
		return
	}

	n = odd << x
	return
}
