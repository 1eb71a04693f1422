// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/tebeka/atexit"
	"golang.org/x/term"

	"github.com/ezrec/minsky/emulator"
	"github.com/ezrec/minsky/internal/expr"
	"github.com/ezrec/minsky/machine"
	"github.com/ezrec/minsky/report"
)

// SAMPLE_PROGRAM drains R0: "0: DEC R0 -> 0, 2", "1: HALT".
const SAMPLE_PROGRAM = "786432"

func main() {
	var number string
	var registers string
	var listOnly bool
	var trace bool
	var budget int
	var timeout time.Duration
	var verbose bool

	flag.StringVar(&number, "n", SAMPLE_PROGRAM, "Program number expression")
	flag.StringVar(&registers, "r", "", "Initial registers, as a dict expression")
	flag.BoolVar(&listOnly, "l", false, "List the program, do not execute")
	flag.BoolVar(&trace, "t", false, "Trace every step")
	flag.IntVar(&budget, "b", 0, "Step budget, 0 for none")
	flag.DurationVar(&timeout, "timeout", 0, "Wall clock limit, 0 for none")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		atexit.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	style := report.StyleFor(term.IsTerminal(int(os.Stdout.Fd())))

	value, err := expr.Number(number)
	if err != nil {
		atexit.Fatalf("%v: %v", number, err)
	}

	emu, err := emulator.NewEmulator(value)
	if err != nil {
		atexit.Fatalf("%v: %v", value, err)
	}
	emu.Verbose = verbose
	emu.Budget = budget

	report.Listing(os.Stdout, emu.Program, value, style)
	if listOnly {
		atexit.Exit(0)
	}

	initial, err := expr.Registers(registers)
	if err != nil {
		atexit.Fatalf("%v: %v", registers, err)
	}

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		atexit.Register(cancel)
	}

	emu.Reset(initial)

	var regs machine.Registers
	if trace {
		steps := func(yield func(machine.Step) bool) {
			for step, serr := range emu.Steps(ctx) {
				if serr != nil {
					err = serr
					return
				}
				if !yield(step) {
					return
				}
			}
		}
		report.Trace(os.Stdout, steps, report.Columns(emu.Program, initial), style)
		regs = emu.Machine.Register
	} else {
		regs, err = emu.Run(ctx)
	}

	fmt.Println()
	report.Registers(os.Stdout, regs, style)
	if err != nil {
		log.Print(err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
