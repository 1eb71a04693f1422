// Package machine implements the unbounded register machine: its instruction
// set, the decoding of a program number into a Program, and the interpreter
// that runs a Program against a register file.
//
// A program number is the list coding of one slot value per label. Slot value
// zero is HALT. Any other value v is split by the double coding into (x, y):
// an even x is INC R(x/2) -> y, an odd x is DEC R((x-1)/2) -> L1, L2 where
// (L1, L2) is the single coding of y.
//
// The interpreter starts at label 0 and stops on HALT or on a jump past the
// end of the program. It never bounds the number of steps; a divergent
// program runs forever.
package machine
