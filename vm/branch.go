package vm

// BranchUnit implements the LC-3's control-transfer instructions: BR,
// JSR/JSRR, JMP/RET. None of these update condition flags.
type BranchUnit struct {
	regFile *RegFile
}

// NewBranchUnit creates a BranchUnit bound to the given register file.
func NewBranchUnit(regFile *RegFile) *BranchUnit {
	return &BranchUnit{regFile: regFile}
}

// BR transfers control to PC + pcOffset9 if nzp & COND is nonzero.
// PC is expected to already hold the post-fetch-increment value.
func (b *BranchUnit) BR(nzp uint16, pcOffset9 uint16) {
	if nzp&b.regFile.COND != 0 {
		b.regFile.PC += pcOffset9
	}
}

// JSR transfers control to PC + pcOffset11, saving the return address
// (the post-increment PC) in R7.
func (b *BranchUnit) JSR(pcOffset11 uint16) {
	b.regFile.R[7] = b.regFile.PC
	b.regFile.PC += pcOffset11
}

// JSRR transfers control to R[baseR], saving the return address (the
// post-increment PC) in R7.
func (b *BranchUnit) JSRR(baseR uint16) {
	b.regFile.R[7] = b.regFile.PC
	b.regFile.PC = b.regFile.Read(baseR)
}

// JMP transfers control to R[baseR]. RET is the special case baseR == 7.
func (b *BranchUnit) JMP(baseR uint16) {
	b.regFile.PC = b.regFile.Read(baseR)
}
