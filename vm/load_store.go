package vm

// LoadStoreUnit implements the LC-3's load and store instructions: LD, ST,
// LDR, STR, LDI, STI, LEA.
type LoadStoreUnit struct {
	regFile *RegFile
	memory  *Memory
}

// NewLoadStoreUnit creates a LoadStoreUnit connected to the given register
// file and memory.
func NewLoadStoreUnit(regFile *RegFile, memory *Memory) *LoadStoreUnit {
	return &LoadStoreUnit{regFile: regFile, memory: memory}
}

// LD performs DR <- mem[PC + pcOffset9] and updates flags on DR. PC is
// expected to already hold the post-fetch-increment value.
func (l *LoadStoreUnit) LD(dr uint16, pcOffset9 uint16) {
	l.regFile.Write(dr, l.memory.Read(l.regFile.PC+pcOffset9))
	l.regFile.UpdateFlags(dr)
}

// LDI performs DR <- mem[mem[PC + pcOffset9]] and updates flags on DR.
func (l *LoadStoreUnit) LDI(dr uint16, pcOffset9 uint16) {
	addr := l.memory.Read(l.regFile.PC + pcOffset9)
	l.regFile.Write(dr, l.memory.Read(addr))
	l.regFile.UpdateFlags(dr)
}

// LDR performs DR <- mem[R[baseR] + offset6] and updates flags on DR.
func (l *LoadStoreUnit) LDR(dr, baseR uint16, offset6 uint16) {
	l.regFile.Write(dr, l.memory.Read(l.regFile.Read(baseR)+offset6))
	l.regFile.UpdateFlags(dr)
}

// LEA performs DR <- PC + pcOffset9 and updates flags on DR.
func (l *LoadStoreUnit) LEA(dr uint16, pcOffset9 uint16) {
	l.regFile.Write(dr, l.regFile.PC+pcOffset9)
	l.regFile.UpdateFlags(dr)
}

// ST performs mem[PC + pcOffset9] <- R[sr].
func (l *LoadStoreUnit) ST(sr uint16, pcOffset9 uint16) {
	l.memory.Write(l.regFile.PC+pcOffset9, l.regFile.Read(sr))
}

// STI performs mem[mem[PC + pcOffset9]] <- R[sr].
func (l *LoadStoreUnit) STI(sr uint16, pcOffset9 uint16) {
	addr := l.memory.Read(l.regFile.PC + pcOffset9)
	l.memory.Write(addr, l.regFile.Read(sr))
}

// STR performs mem[R[baseR] + offset6] <- R[sr].
func (l *LoadStoreUnit) STR(sr, baseR uint16, offset6 uint16) {
	l.memory.Write(l.regFile.Read(baseR)+offset6, l.regFile.Read(sr))
}
