package coding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestList(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		n    uint64
		list []uint64
	}){
		{0, []uint64{}},
		{1, []uint64{0}},
		{2, []uint64{1}},
		{3, []uint64{0, 0}},
		{0b1010, []uint64{1, 1}},
		{0b1000_0100, []uint64{2, 4}},
		{786432, []uint64{18, 0}},
		{1 << 63, []uint64{63}},
		{math.MaxUint64, make([]uint64, 64)},
	}

	for _, entry := range table {
		list := DecodeList(entry.n)
		assert.Equal(entry.list, list, "decode %v", entry.n)

		n, err := EncodeList(entry.list)
		assert.NoError(err, "encode %v", entry.list)
		assert.Equal(entry.n, n, "encode %v", entry.list)
	}
}

func TestList_Nil(t *testing.T) {
	assert := assert.New(t)

	n, err := EncodeList(nil)
	assert.NoError(err)
	assert.Equal(uint64(0), n)
}

func TestList_Overflow(t *testing.T) {
	assert := assert.New(t)

	table := [][]uint64{
		{64},
		{math.MaxUint64},
		{63, 0},
		{30, 30, 2},
		make([]uint64, 65),
	}

	for _, list := range table {
		_, err := EncodeList(list)
		assert.ErrorIs(err, ErrOverflow, "%v", list)
	}
}

func FuzzList(f *testing.F) {
	for _, n := range []uint64{0, 1, 786432, 0xdead_beef, math.MaxUint64} {
		f.Add(n)
	}

	f.Fuzz(func(t *testing.T, n uint64) {
		assert := assert.New(t)

		list := DecodeList(n)
		back, err := EncodeList(list)
		assert.NoError(err)
		assert.Equal(n, back)
	})
}

func FuzzList_Sequence(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{18, 0})
	f.Add([]byte{1, 2, 3, 4, 5})

	f.Fuzz(func(t *testing.T, data []byte) {
		assert := assert.New(t)

		list := make([]uint64, len(data))
		for n, b := range data {
			list[n] = uint64(b & 0x3f)
		}

		n, err := EncodeList(list)
		if err != nil {
			assert.ErrorIs(err, ErrOverflow)
			return
		}

		assert.Equal(list, DecodeList(n))
	})
}
