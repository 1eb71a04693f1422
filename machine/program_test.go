package machine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/minsky/coding"
)

// Sample program: drain R0, then halt.
const sampleNumber = 786432

func TestProgram_Decode(t *testing.T) {
	assert := assert.New(t)

	prog, err := Decode(sampleNumber)
	assert.NoError(err)
	if err != nil {
		t.FailNow()
	}

	assert.Equal(2, prog.Len())
	assert.Equal([]Instruction{
		Decrement{Register: 0, Dec: 0, Zero: 2},
		Halt{},
	}, prog.Instructions)

	number, err := prog.Encode()
	assert.NoError(err)
	assert.Equal(uint64(sampleNumber), number)
}

func TestProgram_Decode_Empty(t *testing.T) {
	assert := assert.New(t)

	prog, err := Decode(0)
	assert.NoError(err)
	assert.Equal(0, prog.Len())
	assert.Equal("", prog.String())

	number, err := prog.Encode()
	assert.NoError(err)
	assert.Equal(uint64(0), number)
}

func TestProgram_Encode(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Instructions: []Instruction{
			Increment{Register: 0, Next: 1},
			Halt{},
		},
	}

	slots, err := prog.Slots()
	assert.NoError(err)
	assert.Equal([]uint64{3, 0}, slots)

	number, err := prog.Encode()
	assert.NoError(err)
	// 3 is three zero bits then a one bit, 0 is a lone one bit.
	assert.Equal(uint64(0b1_1000), number)

	decoded, err := Decode(number)
	assert.NoError(err)
	assert.Equal(prog, decoded)
}

func TestProgram_Encode_Overflow(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Instructions: []Instruction{
			Halt{},
			Increment{Register: 40, Next: 0},
		},
	}

	_, err := prog.Encode()
	assert.ErrorIs(err, coding.ErrOverflow)

	var slot *ErrSlot
	assert.True(errors.As(err, &slot))
	assert.Equal(Label(1), slot.Label)

	prog = &Program{
		Instructions: []Instruction{
			Increment{Register: 0, Next: 40},
			Increment{Register: 0, Next: 40},
		},
	}
	_, err = prog.Encode()
	assert.ErrorIs(err, coding.ErrOverflow)
}

func TestProgram_At(t *testing.T) {
	assert := assert.New(t)

	prog, err := Decode(sampleNumber)
	assert.NoError(err)

	inst, ok := prog.At(1)
	assert.True(ok)
	assert.Equal(Halt{}, inst)

	inst, ok = prog.At(2)
	assert.False(ok)
	assert.Nil(inst)
}

func TestProgram_String(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Instructions: []Instruction{
			Decrement{Register: 1, Dec: 1, Zero: 2},
			Increment{Register: 0, Next: 0},
			Halt{},
		},
	}

	assert.Equal("0: DEC R1 -> 1, 2\n1: INC R0 -> 0\n2: HALT\n", prog.String())
}

func TestProgram_Registers(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Instructions: []Instruction{
			Decrement{Register: 3, Dec: 1, Zero: 2},
			Increment{Register: 1, Next: 0},
			Increment{Register: 3, Next: 0},
			Halt{},
		},
	}

	assert.Equal([]Reg{1, 3}, prog.Registers())
	assert.Empty((&Program{}).Registers())
}

func TestProgram_Listing(t *testing.T) {
	assert := assert.New(t)

	prog, err := Decode(sampleNumber)
	assert.NoError(err)

	var labels []Label
	for label := range prog.Listing() {
		labels = append(labels, label)
		break
	}
	assert.Equal([]Label{0}, labels)
}

func FuzzProgram(f *testing.F) {
	for _, number := range []uint64{0, 1, sampleNumber, 0b1_1000, 0xdead_beef} {
		f.Add(number)
	}

	f.Fuzz(func(t *testing.T, number uint64) {
		assert := assert.New(t)

		prog, err := Decode(number)
		assert.NoError(err)
		assert.Equal(len(coding.DecodeList(number)), prog.Len())

		back, err := prog.Encode()
		assert.NoError(err)
		assert.Equal(number, back)
	})
}
