package machine

import (
	"fmt"

	"github.com/ezrec/minsky/coding"
)

// Reg is a register index.
type Reg uint64

// Label is a program position. Labels at or past the end of a program halt it.
type Label uint64

// Instruction is one of Halt, Increment or Decrement.
type Instruction interface {
	Opcode() Opcode
	String() string

	instruction()
}

// Halt stops the machine.
type Halt struct{}

// Increment adds one to Register and continues at Next.
type Increment struct {
	Register Reg
	Next     Label
}

// Decrement subtracts one from a non-zero Register and continues at Dec, or
// continues at Zero when the register is already zero.
type Decrement struct {
	Register Reg
	Dec      Label
	Zero     Label
}

func (Halt) instruction()      {}
func (Increment) instruction() {}
func (Decrement) instruction() {}

func (Halt) Opcode() Opcode      { return OP_HALT }
func (Increment) Opcode() Opcode { return OP_INC }
func (Decrement) Opcode() Opcode { return OP_DEC }

func (Halt) String() string {
	return OP_HALT.String()
}

func (inst Increment) String() string {
	return fmt.Sprintf("%v R%d -> %d", OP_INC, inst.Register, inst.Next)
}

func (inst Decrement) String() string {
	return fmt.Sprintf("%v R%d -> %d, %d", OP_DEC, inst.Register, inst.Dec, inst.Zero)
}

// DecodeInstruction decodes a single program slot value.
func DecodeInstruction(value uint64) (inst Instruction, err error) {
	if value == 0 {
		inst = Halt{}
		return
	}

	x, y, err := coding.DecodeDouble(value)
	if err != nil {
		return
	}

	if x%2 == 0 {
		inst = Increment{Register: Reg(x / 2), Next: Label(y)}
		return
	}

	dec, zero := coding.DecodeSingle(y)
	inst = Decrement{Register: Reg((x - 1) / 2), Dec: Label(dec), Zero: Label(zero)}
	return
}

// EncodeInstruction returns the program slot value of an instruction.
func EncodeInstruction(inst Instruction) (value uint64, err error) {
	switch inst := inst.(type) {
	case Halt:
		value = 0
	case Increment:
		if inst.Register >= 1<<63 {
			err = coding.ErrOverflow
			return
		}
		value, err = coding.EncodeDouble(2*uint64(inst.Register), uint64(inst.Next))
	case Decrement:
		if inst.Register >= 1<<63 {
			err = coding.ErrOverflow
			return
		}
		var labels uint64
		labels, err = coding.EncodeSingle(uint64(inst.Dec), uint64(inst.Zero))
		if err != nil {
			return
		}
		value, err = coding.EncodeDouble(2*uint64(inst.Register)+1, labels)
	default:
		err = ErrInstruction
	}

	return
}
