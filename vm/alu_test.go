package vm_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/go-lc3/lc3/vm"
)

var _ = Describe("ALU", func() {
	var (
		f   *vm.RegFile
		alu *vm.ALU
	)

	BeforeEach(func() {
		f = vm.NewRegFile()
		alu = vm.NewALU(f)
	})

	It("ADDReg adds two registers and sets flags", func() {
		f.Write(1, 2)
		f.Write(2, 3)
		alu.ADDReg(0, 1, 2)
		Expect(f.Read(0)).To(Equal(uint16(5)))
		Expect(f.COND).To(Equal(vm.FlagPOS))
	})

	It("ADDImm adds a positive immediate and sets POS", func() {
		f.Write(1, 5)
		alu.ADDImm(1, 1, 1)
		Expect(f.Read(1)).To(Equal(uint16(6)))
		Expect(f.COND).To(Equal(vm.FlagPOS))
	})

	It("ADDImm with a negative immediate (#-1) decrements and can hit NEG", func() {
		f.Write(1, 0)
		alu.ADDImm(1, 1, 0xFFFF) // sign-extended #-1
		Expect(f.Read(1)).To(Equal(uint16(0xFFFF)))
		Expect(f.COND).To(Equal(vm.FlagNEG))
	})

	It("ANDImm with #0 zeroes the destination and sets ZRO", func() {
		f.Write(0, 0x1234)
		alu.ANDImm(0, 0, 0)
		Expect(f.Read(0)).To(Equal(uint16(0)))
		Expect(f.COND).To(Equal(vm.FlagZRO))
	})

	It("ANDReg masks bits", func() {
		f.Write(1, 0xFF00)
		f.Write(2, 0x0FF0)
		alu.ANDReg(0, 1, 2)
		Expect(f.Read(0)).To(Equal(uint16(0x0F00)))
	})

	It("NOT complements every bit and sets flags", func() {
		f.Write(1, 0x0000)
		alu.NOT(0, 1)
		Expect(f.Read(0)).To(Equal(uint16(0xFFFF)))
		Expect(f.COND).To(Equal(vm.FlagNEG))
	})
})
