package vm_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/go-lc3/lc3/vm"
)

var _ = Describe("BranchUnit", func() {
	var (
		f  *vm.RegFile
		bu *vm.BranchUnit
	)

	BeforeEach(func() {
		f = vm.NewRegFile()
		bu = vm.NewBranchUnit(f)
	})

	Describe("BR", func() {
		It("takes the branch when nzp matches COND", func() {
			f.COND = vm.FlagPOS
			f.PC = 0x3001
			bu.BR(vm.FlagPOS, 5)
			Expect(f.PC).To(Equal(uint16(0x3006)))
		})

		It("does not take the branch when nzp does not match COND", func() {
			f.COND = vm.FlagNEG
			f.PC = 0x3001
			bu.BR(vm.FlagPOS, 5)
			Expect(f.PC).To(Equal(uint16(0x3001)))
		})

		It("takes an always-branch (n|z|p) regardless of COND", func() {
			f.COND = vm.FlagZRO
			f.PC = 0x3001
			bu.BR(vm.FlagPOS|vm.FlagZRO|vm.FlagNEG, 1)
			Expect(f.PC).To(Equal(uint16(0x3002)))
		})
	})

	It("JSR saves the return address in R7 and jumps PC-relative", func() {
		f.PC = 0x3001
		bu.JSR(2)
		Expect(f.R[7]).To(Equal(uint16(0x3001)))
		Expect(f.PC).To(Equal(uint16(0x3003)))
	})

	It("JSRR saves the return address in R7 and jumps to the base register", func() {
		f.PC = 0x3001
		f.Write(3, 0x4000)
		bu.JSRR(3)
		Expect(f.R[7]).To(Equal(uint16(0x3001)))
		Expect(f.PC).To(Equal(uint16(0x4000)))
	})

	It("JMP transfers control to the base register (RET is baseR=7)", func() {
		f.Write(7, 0x3001)
		bu.JMP(7)
		Expect(f.PC).To(Equal(uint16(0x3001)))
	})
})
