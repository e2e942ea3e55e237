// Package vm implements the LC-3 instruction set architecture: the
// register file, memory, decoding, execution units, trap handlers, and the
// fetch-decode-execute loop that ties them together.
package vm

// Condition flags. COND holds exactly one of these at any instant.
const (
	FlagPOS uint16 = 1 << 0
	FlagZRO uint16 = 1 << 1
	FlagNEG uint16 = 1 << 2
)

// PCStart is the conventional address at which user programs begin.
const PCStart uint16 = 0x3000

// RegFile holds the LC-3 register file: eight general-purpose registers,
// the program counter, and the condition register.
type RegFile struct {
	// R holds general-purpose registers R0-R7.
	R [8]uint16

	// PC is the program counter: the address of the next instruction to
	// fetch.
	PC uint16

	// COND holds exactly one of FlagPOS, FlagZRO, FlagNEG.
	COND uint16
}

// NewRegFile returns a register file in its post-reset state: all
// general-purpose registers zero, PC at PCStart, COND set to FlagZRO.
func NewRegFile() *RegFile {
	return &RegFile{
		PC:   PCStart,
		COND: FlagZRO,
	}
}

// Read returns the value of general-purpose register r (0-7).
func (f *RegFile) Read(r uint16) uint16 {
	return f.R[r&0x7]
}

// Write sets general-purpose register r (0-7) to value.
func (f *RegFile) Write(r uint16, value uint16) {
	f.R[r&0x7] = value
}

// UpdateFlags inspects register r and sets COND to reflect its sign:
// ZRO if zero, NEG if bit 15 is set, POS otherwise.
func (f *RegFile) UpdateFlags(r uint16) {
	v := f.R[r&0x7]
	switch {
	case v == 0:
		f.COND = FlagZRO
	case v>>15 == 1:
		f.COND = FlagNEG
	default:
		f.COND = FlagPOS
	}
}
