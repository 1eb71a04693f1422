package machine

import (
	"fmt"
	"iter"
	"log"
)

// Step is a snapshot of the machine after one transition.
type Step struct {
	Count       int         // Transitions taken, including this one.
	Label       Label       // Label of the executed instruction.
	Instruction Instruction // Executed instruction.
	Next        Label       // Label the machine continues at.
	Registers   Registers   // Register file after the transition.
}

// Machine is the interpreter state for a Program.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Program *Program // Program being executed.

	Ip       Label     // Current instruction pointer.
	Register Registers // Register file.

	Steps int // Transitions since the last reset.
}

// NewMachine creates a machine for a program, reset with empty registers.
func NewMachine(prog *Program) (m *Machine) {
	m = &Machine{
		Program: prog,
	}

	m.Reset(nil)

	return
}

// Reset the machine to label 0 with a copy of the initial registers.
func (m *Machine) Reset(initial Registers) {
	if m.Verbose {
		log.Print(f("machine: reset %v", initial.String()))
	}

	m.Ip = 0
	m.Steps = 0
	m.Register = initial.Clone()
}

// String returns the current machine state.
func (m *Machine) String() string {
	return fmt.Sprintf("ip: %d steps: %d regs: [%v]", m.Ip, m.Steps, m.Register)
}

// Halted returns true if the machine is in a terminal state.
func (m *Machine) Halted() bool {
	_, err := m.Fetch()
	return err != nil
}

// Fetch returns the instruction at the instruction pointer.
// ErrHalted is returned at a HALT or past the end of the program.
func (m *Machine) Fetch() (inst Instruction, err error) {
	inst, ok := m.Program.At(m.Ip)
	if !ok {
		err = ErrHalted
		return
	}

	if _, halt := inst.(Halt); halt {
		err = ErrHalted
		return
	}

	return
}

// Execute a single instruction against the register file.
func (m *Machine) Execute(inst Instruction) (err error) {
	if m.Verbose {
		log.Print(f("%d: %v", uint64(m.Ip), inst))
	}

	switch inst := inst.(type) {
	case Halt:
		err = ErrHalted
	case Increment:
		m.Register.Increment(inst.Register)
		m.Ip = inst.Next
	case Decrement:
		if m.Register.Decrement(inst.Register) {
			m.Ip = inst.Dec
		} else {
			m.Ip = inst.Zero
		}
	default:
		err = ErrInstruction
	}

	return
}

// Tick performs a single transition.
func (m *Machine) Tick() (err error) {
	inst, err := m.Fetch()
	if err != nil {
		return
	}

	err = m.Execute(inst)
	if err != nil {
		return
	}

	m.Steps++

	return
}

// Run the machine until it halts, returning the final registers.
// There is no step limit.
func (m *Machine) Run() Registers {
	for m.Tick() == nil {
	}

	return m.Register
}

// Trace runs the machine, yielding a snapshot after every transition until
// the machine halts or the consumer stops.
func (m *Machine) Trace() iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for {
			label := m.Ip
			inst, err := m.Fetch()
			if err != nil {
				return
			}

			if m.Tick() != nil {
				return
			}

			step := Step{
				Count:       m.Steps,
				Label:       label,
				Instruction: inst,
				Next:        m.Ip,
				Registers:   m.Register.Clone(),
			}
			if !yield(step) {
				return
			}
		}
	}
}
