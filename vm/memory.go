package vm

// Memory-mapped I/O addresses.
const (
	// KBSR is the keyboard status register. Bit 15 is set iff a key is
	// ready.
	KBSR uint16 = 0xFE00

	// KBDR is the keyboard data register. Its low 8 bits carry the last
	// key read.
	KBDR uint16 = 0xFE02
)

// Keyboard abstracts the host keyboard for the KBSR/KBDR side effect and
// for the GETC/IN traps, so tests can substitute a scripted keyboard
// instead of a real terminal.
type Keyboard interface {
	// KeyReady reports whether a key is available without blocking.
	KeyReady() bool

	// ReadChar blocks until a key is available and returns its byte value.
	ReadChar() uint16
}

// Memory is the LC-3's 65536-word address space. Reads of KBSR poll the
// host keyboard as a side effect; every other address behaves as plain
// storage.
type Memory struct {
	cell     [65536]uint16
	keyboard Keyboard
}

// NewMemory returns a zero-initialized memory bound to keyboard for the
// KBSR polling side effect. keyboard may be nil if the guest program never
// touches KBSR (e.g. in tests that don't exercise keyboard I/O).
func NewMemory(keyboard Keyboard) *Memory {
	return &Memory{keyboard: keyboard}
}

// Read returns memory[addr]. Reading KBSR first polls the host keyboard,
// setting memory[KBSR] to 0x8000 and memory[KBDR] to the read character if
// one is ready, or memory[KBSR] to 0 otherwise.
func (m *Memory) Read(addr uint16) uint16 {
	if addr == KBSR {
		if m.keyboard != nil && m.keyboard.KeyReady() {
			m.cell[KBSR] = 0x8000
			m.cell[KBDR] = m.keyboard.ReadChar()
		} else {
			m.cell[KBSR] = 0
		}
	}
	return m.cell[addr]
}

// Write unconditionally sets memory[addr] = val. Writes to KBSR/KBDR are
// permitted but have no special hardware effect.
func (m *Memory) Write(addr uint16, val uint16) {
	m.cell[addr] = val
}
