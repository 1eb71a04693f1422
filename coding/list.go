package coding

import (
	"math/bits"
)

// DecodeList splits n into the ordered sequence of zero-run lengths that
// precede each of its one bits, scanning from the least significant bit.
//
// Zero decodes to the empty sequence.
func DecodeList(n uint64) (list []uint64) {
	list = []uint64{}
	for n != 0 {
		k := uint64(bits.TrailingZeros64(n))
		list = append(list, k)
		// A shift of 64 clears n, which ends the scan.
		n >>= k + 1
	}

	return
}

// EncodeList packs each element k as k zero bits followed by a one bit,
// the first element occupying the least significant bits.
func EncodeList(list []uint64) (n uint64, err error) {
	var offset uint64
	for _, k := range list {
		if k >= 64 || offset+k >= 64 {
			err = ErrOverflow
			return
		}
		offset += k
		n |= 1 << offset
		offset++
	}

	return
}
