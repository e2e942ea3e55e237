package vm_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/go-lc3/lc3/vm"
)

var _ = Describe("RegFile", func() {
	var f *vm.RegFile

	BeforeEach(func() {
		f = vm.NewRegFile()
	})

	It("starts at PCStart with COND set to ZRO", func() {
		Expect(f.PC).To(Equal(vm.PCStart))
		Expect(f.COND).To(Equal(vm.FlagZRO))
	})

	It("starts with all general-purpose registers zero", func() {
		for r := uint16(0); r < 8; r++ {
			Expect(f.Read(r)).To(Equal(uint16(0)))
		}
	})

	It("wraps register numbers to 3 bits", func() {
		f.Write(1, 42)
		Expect(f.Read(0x9)).To(Equal(uint16(42))) // 0x9 & 0x7 == 1
	})

	DescribeTable("UpdateFlags sets COND from the register's sign",
		func(value uint16, want uint16) {
			f.Write(3, value)
			f.UpdateFlags(3)
			Expect(f.COND).To(Equal(want))
		},
		Entry("zero -> ZRO", uint16(0), vm.FlagZRO),
		Entry("positive -> POS", uint16(1), vm.FlagPOS),
		Entry("max positive -> POS", uint16(0x7FFF), vm.FlagPOS),
		Entry("negative (high bit set) -> NEG", uint16(0x8000), vm.FlagNEG),
		Entry("-1 -> NEG", uint16(0xFFFF), vm.FlagNEG),
	)
})
