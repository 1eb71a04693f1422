package machine

// Opcode identifies the kind of an Instruction.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_HALT = Opcode(0) // HALT
	OP_INC  = Opcode(1) // INC
	OP_DEC  = Opcode(2) // DEC
)
