package vm_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/go-lc3/lc3/vm"
)

var _ = Describe("LoadStoreUnit", func() {
	var (
		f  *vm.RegFile
		m  *vm.Memory
		ls *vm.LoadStoreUnit
	)

	BeforeEach(func() {
		f = vm.NewRegFile()
		m = vm.NewMemory(nil)
		ls = vm.NewLoadStoreUnit(f, m)
	})

	It("LD loads mem[PC+offset] and sets flags", func() {
		f.PC = 0x3001
		m.Write(0x3002, 0x00FF)
		ls.LD(0, 1)
		Expect(f.Read(0)).To(Equal(uint16(0x00FF)))
		Expect(f.COND).To(Equal(vm.FlagPOS))
	})

	It("LDI loads through a pointer stored at mem[PC+offset]", func() {
		f.PC = 0x3001
		m.Write(0x3002, 0x4000)
		m.Write(0x4000, 0x0007)
		ls.LDI(0, 1)
		Expect(f.Read(0)).To(Equal(uint16(0x0007)))
	})

	It("LDR loads mem[base+offset]", func() {
		f.Write(1, 0x4000)
		m.Write(0x4003, 0x0042)
		ls.LDR(0, 1, 3)
		Expect(f.Read(0)).To(Equal(uint16(0x0042)))
	})

	It("LEA computes PC+offset without touching memory", func() {
		f.PC = 0x3001
		ls.LEA(0, 2)
		Expect(f.Read(0)).To(Equal(uint16(0x3003)))
	})

	It("ST stores R[sr] at mem[PC+offset]", func() {
		f.PC = 0x3001
		f.Write(2, 0xBEEF)
		ls.ST(2, 1)
		Expect(m.Read(0x3002)).To(Equal(uint16(0xBEEF)))
	})

	It("STI stores through a pointer stored at mem[PC+offset]", func() {
		f.PC = 0x3001
		m.Write(0x3002, 0x4000)
		f.Write(2, 0xCAFE)
		ls.STI(2, 1)
		Expect(m.Read(0x4000)).To(Equal(uint16(0xCAFE)))
	})

	It("STR stores R[sr] at mem[base+offset]", func() {
		f.Write(1, 0x4000)
		f.Write(2, 0x0102)
		ls.STR(2, 1, 4)
		Expect(m.Read(0x4004)).To(Equal(uint16(0x0102)))
	})
})
