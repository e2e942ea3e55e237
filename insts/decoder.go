package insts

// Instruction is a decoded LC-3 instruction word. Every decode populates
// Op and Raw; the remaining fields carry whichever operands that opcode
// uses (unused fields are left zero). Decoding is total: every 16-bit
// pattern resolves to exactly one Op.
type Instruction struct {
	// Raw is the original 16-bit instruction word.
	Raw uint16

	// Op is the 4-bit opcode, bits 15..12.
	Op Op

	// DR is the destination register field, bits 11..9. Also doubles as
	// the source register field (SR) for ST/STI/STR.
	DR uint16

	// SR1 is the first source / base register field, bits 8..6.
	SR1 uint16

	// SR2 is the second source register field, bits 2..0 (ADD/AND register
	// mode only).
	SR2 uint16

	// ImmFlag is bit 5 of ADD/AND: true selects immediate mode.
	ImmFlag bool

	// Imm5 is the sign-extended 5-bit immediate, bits 4..0 (ADD/AND
	// immediate mode).
	Imm5 uint16

	// Offset6 is the sign-extended 6-bit offset, bits 5..0 (LDR/STR).
	Offset6 uint16

	// PCOffset9 is the sign-extended 9-bit PC-relative offset, bits 8..0
	// (BR, LD, LDI, ST, STI, LEA).
	PCOffset9 uint16

	// PCOffset11 is the sign-extended 11-bit PC-relative offset, bits
	// 10..0 (JSR).
	PCOffset11 uint16

	// NZP is the branch condition mask, bits 11..9 (BR).
	NZP uint16

	// JSRMode is bit 11 of the JSR/JSRR instruction: true selects JSR
	// (PC-relative), false selects JSRR (register-indirect).
	JSRMode bool

	// TrapVect8 is the 8-bit trap vector, bits 7..0 (TRAP).
	TrapVect8 uint16
}

// Decode extracts the opcode and every operand field from a 16-bit
// instruction word. The caller reads only the fields relevant to the
// returned Op.
func Decode(word uint16) Instruction {
	return Instruction{
		Raw:        word,
		Op:         Op(word >> 12),
		DR:         (word >> 9) & 0x7,
		SR1:        (word >> 6) & 0x7,
		SR2:        word & 0x7,
		ImmFlag:    (word>>5)&0x1 == 1,
		Imm5:       signExtend(word&0x1F, 5),
		Offset6:    signExtend(word&0x3F, 6),
		PCOffset9:  signExtend(word&0x1FF, 9),
		PCOffset11: signExtend(word&0x7FF, 11),
		NZP:        (word >> 9) & 0x7,
		JSRMode:    (word>>11)&0x1 == 1,
		TrapVect8:  word & 0xFF,
	}
}

// signExtend replicates bit n-1 of x into bits n..15. Duplicated here
// (rather than imported from vm) to keep insts dependency-free of the
// execution package; vm.SignExtend implements the identical rule and is
// exercised by the same invariant (SPEC_FULL.md §8, invariant 3).
func signExtend(x uint16, n uint) uint16 {
	if (x>>(n-1))&1 == 1 {
		return x | (0xFFFF << n)
	}
	return x
}
