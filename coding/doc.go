// Package coding implements the three bijections between the natural numbers
// and structured values that underlie the numbering of register machine
// programs.
//
// The single coding maps a pair (x, y) to 2^x·(2y+1) − 1 and is total over
// every natural. The double coding maps (x, y) to 2^x·(2y+1) and is defined
// for every natural except zero. The list coding maps an ordered sequence of
// naturals to a natural by writing each element k as a run of k zero bits
// closed by a one bit, packed from the least significant bit upward.
//
// Every function is pure. Decoders are total over their domains; encoders
// fail only when the result cannot be represented in 64 bits.
package coding
