// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs decoded register machine programs under a caller
// chosen policy: an optional step budget and context cancellation.
package emulator

import (
	"context"
	"iter"
	"log"

	"github.com/ezrec/minsky/machine"
)

// Emulator state. Machine + run policy.
type Emulator struct {
	Verbose          bool // If set, enables verbose logging.
	*machine.Machine      // Reference to the machine simulation.

	Budget int // Maximum transitions per run. Zero is unbounded.
}

// NewEmulator creates an emulator for a program number.
func NewEmulator(number uint64) (emu *Emulator, err error) {
	prog, err := machine.Decode(number)
	if err != nil {
		return
	}

	emu = &Emulator{
		Machine: machine.NewMachine(prog),
	}

	return
}

// Reset the machine to label 0 with a copy of the initial registers.
func (emu *Emulator) Reset(initial machine.Registers) {
	emu.Machine.Verbose = emu.Verbose
	emu.Machine.Reset(initial)
}

// Ip returns current instruction pointer.
func (emu *Emulator) Ip() int {
	return int(emu.Machine.Ip)
}

// Tick performs a single transition of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set machine verbosity
	emu.Machine.Verbose = emu.Verbose

	label := emu.Ip()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Label: label, Steps: emu.Machine.Steps, Err: err}
		}
	}()

	if emu.Machine.Halted() {
		done = true
		return
	}

	if emu.Budget > 0 && emu.Machine.Steps >= emu.Budget {
		err = ErrBudget
		return
	}

	err = emu.Machine.Tick()

	return
}

// Run the program until it halts, the budget is exhausted, or the context
// is cancelled. The registers reached so far are returned in every case.
func (emu *Emulator) Run(ctx context.Context) (regs machine.Registers, err error) {
	for {
		select {
		case <-ctx.Done():
			err = &ErrRuntime{Label: emu.Ip(), Steps: emu.Machine.Steps, Err: ctx.Err()}
		default:
		}
		if err != nil {
			break
		}

		var done bool
		done, err = emu.Tick()
		if done || err != nil {
			break
		}
	}

	if emu.Verbose {
		log.Print(f("emulator: %v", emu.Machine.String()))
	}

	regs = emu.Machine.Register
	return
}

// Steps runs the program like Run, yielding a snapshot after every
// transition. A run stopped by the budget or the context ends with a final
// zero Step and the error.
func (emu *Emulator) Steps(ctx context.Context) iter.Seq2[machine.Step, error] {
	return func(yield func(machine.Step, error) bool) {
		for {
			if err := ctx.Err(); err != nil {
				yield(machine.Step{}, &ErrRuntime{Label: emu.Ip(), Steps: emu.Machine.Steps, Err: err})
				return
			}

			label := emu.Machine.Ip
			inst, _ := emu.Machine.Fetch()

			done, err := emu.Tick()
			if err != nil {
				yield(machine.Step{}, err)
				return
			}
			if done {
				return
			}

			step := machine.Step{
				Count:       emu.Machine.Steps,
				Label:       label,
				Instruction: inst,
				Next:        emu.Machine.Ip,
				Registers:   emu.Machine.Register.Clone(),
			}
			if !yield(step, nil) {
				return
			}
		}
	}
}
