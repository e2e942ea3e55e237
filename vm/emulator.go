package vm

import (
	"fmt"
	"io"
	"os"

	"github.com/go-lc3/lc3/insts"
)

// StepResult reports the outcome of executing a single instruction.
type StepResult struct {
	// Halted is true if the instruction was TRAP HALT.
	Halted bool

	// Err is set if execution cannot continue (currently only the
	// instruction-count budget being exhausted).
	Err error
}

// Emulator wires together the register file, memory, decoder, execution
// units, and trap handler, and drives the fetch-decode-execute loop.
type Emulator struct {
	regFile *RegFile
	memory  *Memory

	alu         *ALU
	branchUnit  *BranchUnit
	loadStore   *LoadStoreUnit
	trapHandler TrapHandler

	instructionCount uint64
	maxInstructions  uint64 // 0 means unlimited
}

// Option configures an Emulator at construction time.
type Option func(*Emulator)

// WithMaxInstructions bounds the number of instructions Run/Step will
// execute before returning an error. 0 (the default) means unlimited.
func WithMaxInstructions(max uint64) Option {
	return func(e *Emulator) {
		e.maxInstructions = max
	}
}

// WithTrapHandler overrides the default trap handler, e.g. to capture
// trap I/O in a test buffer.
func WithTrapHandler(h TrapHandler) Option {
	return func(e *Emulator) {
		e.trapHandler = h
	}
}

// NewEmulator creates an Emulator with memory bound to keyboard and trap
// output written to stdout. keyboard may be nil only if the guest program
// never executes GETC/IN; with a nil keyboard, KBSR reads report no key
// ready.
func NewEmulator(keyboard Keyboard, stdout io.Writer, opts ...Option) *Emulator {
	regFile := NewRegFile()
	memory := NewMemory(keyboard)

	e := &Emulator{
		regFile: regFile,
		memory:  memory,
	}

	e.alu = NewALU(regFile)
	e.branchUnit = NewBranchUnit(regFile)
	e.loadStore = NewLoadStoreUnit(regFile, memory)
	e.trapHandler = NewDefaultTrapHandler(regFile, memory, keyboard, stdout)

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// RegFile returns the emulator's register file.
func (e *Emulator) RegFile() *RegFile {
	return e.regFile
}

// Memory returns the emulator's memory.
func (e *Emulator) Memory() *Memory {
	return e.memory
}

// InstructionCount returns the number of instructions executed so far.
func (e *Emulator) InstructionCount() uint64 {
	return e.instructionCount
}

// Step fetches, decodes, and executes the instruction at PC, advancing PC
// by one word before dispatch (per the ISA, any use of PC within a
// handler observes the post-increment value).
func (e *Emulator) Step() StepResult {
	if e.maxInstructions > 0 && e.instructionCount >= e.maxInstructions {
		return StepResult{Err: fmt.Errorf("instruction budget of %d exceeded", e.maxInstructions)}
	}

	word := e.memory.Read(e.regFile.PC)
	e.regFile.PC++

	inst := insts.Decode(word)
	result := e.execute(inst)

	e.instructionCount++
	return result
}

// Run executes instructions until TRAP HALT or an error, returning the
// process exit code: 0 on clean halt, 1 on any other error.
func (e *Emulator) Run() int {
	for {
		result := e.Step()
		if result.Err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "lc3: %v\n", result.Err)
			return 1
		}
		if result.Halted {
			return 0
		}
	}
}

// execute dispatches a decoded instruction to its owning execution unit.
// This is the single exhaustive switch over the 16-value opcode space
// that SPEC_FULL.md §4.6 calls for.
func (e *Emulator) execute(inst insts.Instruction) StepResult {
	switch inst.Op {
	case insts.OpBR:
		e.branchUnit.BR(inst.NZP, inst.PCOffset9)

	case insts.OpADD:
		if inst.ImmFlag {
			e.alu.ADDImm(inst.DR, inst.SR1, inst.Imm5)
		} else {
			e.alu.ADDReg(inst.DR, inst.SR1, inst.SR2)
		}

	case insts.OpLD:
		e.loadStore.LD(inst.DR, inst.PCOffset9)

	case insts.OpST:
		e.loadStore.ST(inst.DR, inst.PCOffset9)

	case insts.OpJSR:
		if inst.JSRMode {
			e.branchUnit.JSR(inst.PCOffset11)
		} else {
			e.branchUnit.JSRR(inst.SR1)
		}

	case insts.OpAND:
		if inst.ImmFlag {
			e.alu.ANDImm(inst.DR, inst.SR1, inst.Imm5)
		} else {
			e.alu.ANDReg(inst.DR, inst.SR1, inst.SR2)
		}

	case insts.OpLDR:
		e.loadStore.LDR(inst.DR, inst.SR1, inst.Offset6)

	case insts.OpSTR:
		e.loadStore.STR(inst.DR, inst.SR1, inst.Offset6)

	case insts.OpRTI:
		// Unimplemented: supervisor mode is out of scope. No-op.

	case insts.OpNOT:
		e.alu.NOT(inst.DR, inst.SR1)

	case insts.OpLDI:
		e.loadStore.LDI(inst.DR, inst.PCOffset9)

	case insts.OpSTI:
		e.loadStore.STI(inst.DR, inst.PCOffset9)

	case insts.OpJMP:
		e.branchUnit.JMP(inst.SR1)

	case insts.OpRES:
		// Reserved: no-op.

	case insts.OpLEA:
		e.loadStore.LEA(inst.DR, inst.PCOffset9)

	case insts.OpTRAP:
		e.regFile.R[7] = e.regFile.PC
		trapResult := e.trapHandler.Handle(inst.TrapVect8)
		return StepResult{Halted: trapResult.Halted}
	}

	return StepResult{}
}
