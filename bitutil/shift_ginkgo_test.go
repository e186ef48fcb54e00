package bitutil_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/a64kit/a64toolchain/bitutil"
)

var _ = Describe("Shifts", func() {
	Describe("Lsl", func() {
		It("shifts zero-fills from the right within a 32-bit width", func() {
			Expect(bitutil.Lsl(0xF, 4, bitutil.Width32)).To(Equal(uint64(0xF0)))
		})

		It("discards bits shifted out past bit 31", func() {
			Expect(bitutil.Lsl(0xFFFFFFFF, 4, bitutil.Width32)).To(Equal(uint64(0xFFFFFFF0)))
		})
	})

	Describe("Lsr", func() {
		It("shifts zero-fills from the left", func() {
			Expect(bitutil.Lsr(0xF0, 4, bitutil.Width32)).To(Equal(uint64(0xF)))
		})
	})

	Describe("Ror", func() {
		It("wraps bits around within a 64-bit width", func() {
			Expect(bitutil.Ror(1, 1, bitutil.Width64)).To(Equal(uint64(1) << 63))
		})

		It("is a no-op for a zero amount", func() {
			Expect(bitutil.Ror(0x1234, 0, bitutil.Width32)).To(Equal(uint64(0x1234)))
		})
	})

	Describe("PCAddOffset", func() {
		It("scales the offset by 4 and sign-extends it", func() {
			Expect(bitutil.PCAddOffset(0x8000, 2, 26)).To(Equal(uint64(0x8008)))
		})
	})
})
