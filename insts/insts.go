// Package insts provides LC-3 instruction decoding: the opcode space and
// the Instruction representation produced by Decode.
//
// Usage:
//
//	inst := insts.Decode(0x1261) // ADD R1, R1, #1
//	fmt.Printf("Op: %v, DR: %d, SR1: %d, Imm5: %d\n", inst.Op, inst.DR, inst.SR1, inst.Imm5)
package insts

// Op represents an LC-3 opcode, the 4-bit field in bits 15..12 of an
// instruction word.
type Op uint8

// LC-3 opcodes, numbered per the architecture's fixed encoding.
const (
	OpBR   Op = 0b0000 // branch
	OpADD  Op = 0b0001 // add
	OpLD   Op = 0b0010 // load
	OpST   Op = 0b0011 // store
	OpJSR  Op = 0b0100 // jump to subroutine / jump register
	OpAND  Op = 0b0101 // bitwise and
	OpLDR  Op = 0b0110 // load register
	OpSTR  Op = 0b0111 // store register
	OpRTI  Op = 0b1000 // return from interrupt (unimplemented)
	OpNOT  Op = 0b1001 // bitwise not
	OpLDI  Op = 0b1010 // load indirect
	OpSTI  Op = 0b1011 // store indirect
	OpJMP  Op = 0b1100 // jump / return
	OpRES  Op = 0b1101 // reserved (unimplemented)
	OpLEA  Op = 0b1110 // load effective address
	OpTRAP Op = 0b1111 // system trap
)
