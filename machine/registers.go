package machine

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Registers is a sparse register file. Registers never written read as zero.
type Registers map[Reg]uint64

// Get returns the value of a register.
func (regs Registers) Get(reg Reg) uint64 {
	return regs[reg]
}

// Set the value of a register.
func (regs Registers) Set(reg Reg, value uint64) {
	regs[reg] = value
}

// Increment adds one to a register.
func (regs Registers) Increment(reg Reg) {
	regs[reg]++
}

// Decrement subtracts one from a register, returning false and leaving the
// register alone if it is already zero.
func (regs Registers) Decrement(reg Reg) bool {
	if regs[reg] == 0 {
		return false
	}

	regs[reg]--
	return true
}

// Clone returns an independent copy. A nil register file clones to an empty one.
func (regs Registers) Clone() Registers {
	clone := make(Registers, len(regs))
	maps.Copy(clone, regs)
	return clone
}

// Equal compares register contents, treating absent registers as zero.
func (regs Registers) Equal(other Registers) bool {
	for reg, value := range regs {
		if other[reg] != value {
			return false
		}
	}
	for reg, value := range other {
		if regs[reg] != value {
			return false
		}
	}

	return true
}

// String lists the registers in index order, as "R0=1 R3=2".
func (regs Registers) String() string {
	words := make([]string, 0, len(regs))
	for _, reg := range slices.Sorted(maps.Keys(regs)) {
		words = append(words, fmt.Sprintf("R%d=%d", reg, regs[reg]))
	}

	return strings.Join(words, " ")
}
