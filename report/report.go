// Package report renders programs, execution traces and register files as
// text tables.
package report

import (
	"fmt"
	"io"
	"iter"
	"maps"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ezrec/minsky/machine"
)

// StyleFor returns the table style for an output device.
func StyleFor(isTerminal bool) table.Style {
	if isTerminal {
		return table.StyleColoredDark
	}

	return table.StyleLight
}

func newWriter(w io.Writer, style table.Style) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(style)
	return tw
}

func regHeader(regs []machine.Reg) (row table.Row) {
	for _, reg := range regs {
		row = append(row, fmt.Sprintf("R%d", reg))
	}

	return
}

// Listing renders a program, one row per label.
func Listing(w io.Writer, prog *machine.Program, number uint64, style table.Style) {
	tw := newWriter(w, style)
	tw.SetTitle(fmt.Sprintf("program %d", number))
	tw.AppendHeader(table.Row{"label", "op", "instruction"})

	for label, inst := range prog.Listing() {
		tw.AppendRow(table.Row{label, inst.Opcode(), inst})
	}
	tw.AppendFooter(table.Row{"", "", fmt.Sprintf("%d labels", prog.Len())})

	tw.Render()
}

// Trace renders every step of an execution, with one column per register
// in regs. It returns the number of steps rendered.
func Trace(w io.Writer, steps iter.Seq[machine.Step], regs []machine.Reg, style table.Style) (count int) {
	tw := newWriter(w, style)
	tw.AppendHeader(append(table.Row{"step", "label", "instruction", "next"}, regHeader(regs)...))

	for step := range steps {
		row := table.Row{step.Count, step.Label, step.Instruction, step.Next}
		for _, reg := range regs {
			row = append(row, step.Registers.Get(reg))
		}
		tw.AppendRow(row)
		count++
	}

	tw.Render()

	return
}

// Registers renders a register file in register order.
func Registers(w io.Writer, regs machine.Registers, style table.Style) {
	tw := newWriter(w, style)
	tw.AppendHeader(table.Row{"register", "value"})

	for _, reg := range slices.Sorted(maps.Keys(regs)) {
		tw.AppendRow(table.Row{fmt.Sprintf("R%d", reg), regs[reg]})
	}

	tw.Render()
}

// Columns returns the registers worth a trace column: those the program
// refers to, and those given an initial value.
func Columns(prog *machine.Program, initial machine.Registers) []machine.Reg {
	regs := prog.Registers()
	for reg := range initial {
		if !slices.Contains(regs, reg) {
			regs = append(regs, reg)
		}
	}
	slices.Sort(regs)

	return regs
}
