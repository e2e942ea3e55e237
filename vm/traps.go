package vm

import (
	"bufio"
	"io"
)

// Trap service vectors (TRAP instruction's trapvect8 field).
const (
	TrapGETC  uint16 = 0x20
	TrapOUT   uint16 = 0x21
	TrapPUTS  uint16 = 0x22
	TrapIN    uint16 = 0x23
	TrapPUTSP uint16 = 0x24
	TrapHALT  uint16 = 0x25
)

// TrapResult reports the effect of a trap on execution.
type TrapResult struct {
	// Halted is true if the trap should stop the executive loop.
	Halted bool
}

// TrapHandler services the six LC-3 trap vectors. Unknown vectors are
// no-ops, per the ISA's error-handling design.
type TrapHandler interface {
	Handle(vector uint16) TrapResult
}

// DefaultTrapHandler implements the six standard LC-3 traps against a
// register file, memory, and host I/O.
type DefaultTrapHandler struct {
	regFile  *RegFile
	memory   *Memory
	keyboard Keyboard
	stdout   *bufio.Writer
}

// NewDefaultTrapHandler creates a DefaultTrapHandler bound to the given
// register file, memory, keyboard, and output writer.
func NewDefaultTrapHandler(regFile *RegFile, memory *Memory, keyboard Keyboard, stdout io.Writer) *DefaultTrapHandler {
	return &DefaultTrapHandler{
		regFile:  regFile,
		memory:   memory,
		keyboard: keyboard,
		stdout:   bufio.NewWriter(stdout),
	}
}

// Handle dispatches on the trap vector.
func (h *DefaultTrapHandler) Handle(vector uint16) TrapResult {
	switch vector {
	case TrapGETC:
		return h.getc()
	case TrapOUT:
		return h.out()
	case TrapPUTS:
		return h.puts()
	case TrapIN:
		return h.in()
	case TrapPUTSP:
		return h.putsp()
	case TrapHALT:
		return h.halt()
	default:
		return TrapResult{}
	}
}

// getc implements TRAP GETC (0x20): R0 <- blocking read of one character.
func (h *DefaultTrapHandler) getc() TrapResult {
	h.regFile.Write(0, h.keyboard.ReadChar())
	h.regFile.UpdateFlags(0)
	return TrapResult{}
}

// out implements TRAP OUT (0x21): write the low byte of R0.
func (h *DefaultTrapHandler) out() TrapResult {
	_ = h.stdout.WriteByte(byte(h.regFile.Read(0)))
	_ = h.stdout.Flush()
	return TrapResult{}
}

// puts implements TRAP PUTS (0x22): write one character per word starting
// at mem[R0] until a zero word is found.
func (h *DefaultTrapHandler) puts() TrapResult {
	addr := h.regFile.Read(0)
	for {
		word := h.memory.Read(addr)
		if word == 0 {
			break
		}
		_ = h.stdout.WriteByte(byte(word))
		addr++
	}
	_ = h.stdout.Flush()
	return TrapResult{}
}

// in implements TRAP IN (0x23): prompt, read one character, echo it, and
// store it in R0. The original LC-3 reference implementation assigns R0
// from a stale variable here; this assigns R0 from the character just
// read.
func (h *DefaultTrapHandler) in() TrapResult {
	_, _ = h.stdout.WriteString("Enter a character: ")
	_ = h.stdout.Flush()

	c := h.keyboard.ReadChar()

	_ = h.stdout.WriteByte(byte(c))
	_ = h.stdout.Flush()

	h.regFile.Write(0, c)
	h.regFile.UpdateFlags(0)
	return TrapResult{}
}

// putsp implements TRAP PUTSP (0x24): write one or two bytes per word
// (low byte, then high byte if nonzero) starting at mem[R0] until a zero
// word is found.
func (h *DefaultTrapHandler) putsp() TrapResult {
	addr := h.regFile.Read(0)
	for {
		word := h.memory.Read(addr)
		if word == 0 {
			break
		}
		_ = h.stdout.WriteByte(byte(word & 0xFF))
		if hi := byte(word >> 8); hi != 0 {
			_ = h.stdout.WriteByte(hi)
		}
		addr++
	}
	_ = h.stdout.Flush()
	return TrapResult{}
}

// halt implements TRAP HALT (0x25): print "HALT\n" and stop the loop.
func (h *DefaultTrapHandler) halt() TrapResult {
	_, _ = h.stdout.WriteString("HALT\n")
	_ = h.stdout.Flush()
	return TrapResult{Halted: true}
}
