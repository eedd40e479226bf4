package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/chippie-emu/chippie/emu"
)

var _ = Describe("Interpreter control flow", func() {
	Describe("Jumps", func() {
		It("should jump to an absolute address", func() {
			in := loadProgram([]uint8{0x12, 0x08}) // Jump 0208

			stepN(in, 1)

			Expect(in.State().PC).To(Equal(uint16(0x208)))
		})

		It("should jump relative to V0", func() {
			in := loadProgram([]uint8{
				0x60, 0x04, // V0 := 4
				0xB3, 0x00, // Jump 0300 + V0
			})

			stepN(in, 2)

			Expect(in.State().PC).To(Equal(uint16(0x304)))
		})

		It("should reject a relative jump past the end of memory", func() {
			in := loadProgram([]uint8{
				0x60, 0xFF, // V0 := 255
				0xBF, 0xFF, // Jump 0fff + V0
			})
			stepN(in, 1)

			err := in.Step()

			Expect(err).To(MatchError(emu.ErrMemoryAccess))
		})
	})

	Describe("Calls and returns", func() {
		It("should push the address of the next instruction", func() {
			in := loadProgram([]uint8{
				0x22, 0x04, // Call 0204
				0x00, 0x00,
				0x00, 0xEE, // Return
			})

			stepN(in, 1)

			Expect(in.State().PC).To(Equal(uint16(0x204)))
			Expect(in.State().SP).To(Equal(1))
			Expect(in.State().Stack[0]).To(Equal(uint16(0x202)))
		})

		It("should return to the pushed address", func() {
			in := loadProgram([]uint8{
				0x22, 0x04, // Call 0204
				0x00, 0x00,
				0x00, 0xEE, // Return
			})

			stepN(in, 2)

			Expect(in.State().PC).To(Equal(uint16(0x202)))
			Expect(in.State().SP).To(Equal(0))
		})

		It("should fail a call past the maximum depth", func() {
			in := loadProgram([]uint8{
				0x22, 0x02, // Call 0202
				0x22, 0x02, // Call 0202
			})

			stepN(in, emu.StackSize)
			Expect(in.State().SP).To(Equal(emu.StackSize))

			err := in.Step()

			Expect(err).To(MatchError(emu.ErrCallStackDepthExceeded))
		})

		It("should fail a return on an empty stack", func() {
			in := loadProgram([]uint8{0x00, 0xEE})

			err := in.Step()

			Expect(err).To(MatchError(emu.ErrCallStackEmpty))
		})
	})

	Describe("Skips", func() {
		run := func(rom []uint8, steps int) uint16 {
			in := loadProgram(rom)
			stepN(in, steps)
			return in.State().PC
		}

		It("should take value skips only when the comparison holds", func() {
			Expect(run([]uint8{0x60, 0x07, 0x30, 0x07}, 2)).To(Equal(uint16(0x206)))
			Expect(run([]uint8{0x60, 0x07, 0x30, 0x08}, 2)).To(Equal(uint16(0x204)))
			Expect(run([]uint8{0x60, 0x07, 0x40, 0x08}, 2)).To(Equal(uint16(0x206)))
			Expect(run([]uint8{0x60, 0x07, 0x40, 0x07}, 2)).To(Equal(uint16(0x204)))
		})

		It("should take register skips only when the comparison holds", func() {
			Expect(run([]uint8{0x60, 0x05, 0x61, 0x05, 0x50, 0x10}, 3)).To(Equal(uint16(0x208)))
			Expect(run([]uint8{0x60, 0x05, 0x61, 0x06, 0x50, 0x10}, 3)).To(Equal(uint16(0x206)))
			Expect(run([]uint8{0x60, 0x05, 0x61, 0x06, 0x90, 0x10}, 3)).To(Equal(uint16(0x208)))
			Expect(run([]uint8{0x60, 0x05, 0x61, 0x05, 0x90, 0x10}, 3)).To(Equal(uint16(0x206)))
		})
	})
})
