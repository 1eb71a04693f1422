package machine

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/ezrec/minsky/coding"
)

// Program is a label-indexed sequence of instructions.
type Program struct {
	Instructions []Instruction
}

// Decode a program number into a Program.
func Decode(number uint64) (prog *Program, err error) {
	slots := coding.DecodeList(number)

	prog = &Program{
		Instructions: make([]Instruction, 0, len(slots)),
	}

	for n, value := range slots {
		var inst Instruction
		inst, err = DecodeInstruction(value)
		if err != nil {
			err = &ErrSlot{Label: Label(n), Err: err}
			prog = nil
			return
		}
		prog.Instructions = append(prog.Instructions, inst)
	}

	return
}

// Slots returns the slot value of every label.
func (prog *Program) Slots() (slots []uint64, err error) {
	slots = make([]uint64, 0, len(prog.Instructions))
	for n, inst := range prog.Instructions {
		var value uint64
		value, err = EncodeInstruction(inst)
		if err != nil {
			err = &ErrSlot{Label: Label(n), Err: err}
			slots = nil
			return
		}
		slots = append(slots, value)
	}

	return
}

// Encode returns the program number of the Program.
func (prog *Program) Encode() (number uint64, err error) {
	slots, err := prog.Slots()
	if err != nil {
		return
	}

	return coding.EncodeList(slots)
}

// Len returns the number of labels in the program.
func (prog *Program) Len() int {
	return len(prog.Instructions)
}

// At returns the instruction at a label, or false when the label is past
// the end of the program.
func (prog *Program) At(label Label) (inst Instruction, ok bool) {
	if label >= Label(len(prog.Instructions)) {
		return
	}

	return prog.Instructions[label], true
}

// Listing iterates over the program in label order.
func (prog *Program) Listing() iter.Seq2[Label, Instruction] {
	return func(yield func(label Label, inst Instruction) bool) {
		for n, inst := range prog.Instructions {
			if !yield(Label(n), inst) {
				return
			}
		}
	}
}

// Registers returns the sorted set of registers the program refers to.
func (prog *Program) Registers() []Reg {
	seen := map[Reg]bool{}
	for _, inst := range prog.Instructions {
		switch inst := inst.(type) {
		case Increment:
			seen[inst.Register] = true
		case Decrement:
			seen[inst.Register] = true
		}
	}

	return slices.Sorted(maps.Keys(seen))
}

// String returns the program listing, one "label: instruction" line per label.
func (prog *Program) String() string {
	var text strings.Builder
	for label, inst := range prog.Listing() {
		fmt.Fprintf(&text, "%d: %v\n", label, inst)
	}

	return text.String()
}
