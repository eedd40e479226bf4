package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/chippie-emu/chippie/emu"
)

var _ = Describe("Interpreter ALU", func() {
	flag := func(in *emu.Interpreter) uint8 {
		return in.State().Registers[15]
	}

	Describe("Immediate add", func() {
		It("should clear the flag on overflow", func() {
			in := loadProgram([]uint8{
				0x60, 0xC8, // V0 := 200
				0x70, 0x64, // V0 += 100
			})

			stepN(in, 2)

			Expect(in.State().Registers[0]).To(Equal(uint8(44)))
			Expect(flag(in)).To(Equal(uint8(0)))
		})

		It("should set the flag when no overflow occurred", func() {
			in := loadProgram([]uint8{
				0x60, 0x01, // V0 := 1
				0x70, 0x01, // V0 += 1
			})

			stepN(in, 2)

			Expect(in.State().Registers[0]).To(Equal(uint8(2)))
			Expect(flag(in)).To(Equal(uint8(1)))
		})
	})

	Describe("Register add", func() {
		It("should set the flag on carry", func() {
			in := loadProgram([]uint8{
				0x6A, 0xC8, // Va := 200
				0x6B, 0x64, // Vb := 100
				0x8A, 0xB4, // Va += Vb
			})

			stepN(in, 3)

			Expect(in.State().Registers[0xA]).To(Equal(uint8(44)))
			Expect(flag(in)).To(Equal(uint8(1)))
		})

		It("should clear the flag without carry", func() {
			in := loadProgram([]uint8{
				0x6A, 0x01, // Va := 1
				0x6B, 0x02, // Vb := 2
				0x8A, 0xB4, // Va += Vb
			})

			stepN(in, 3)

			Expect(in.State().Registers[0xA]).To(Equal(uint8(3)))
			Expect(flag(in)).To(Equal(uint8(0)))
		})
	})

	Describe("Subtraction", func() {
		It("should wrap Vx - Vy and clear the flag on borrow", func() {
			in := loadProgram([]uint8{
				0x61, 0x05, // V1 := 5
				0x62, 0x0A, // V2 := 10
				0x81, 0x25, // V1 := V1 - V2
			})

			stepN(in, 3)

			Expect(in.State().Registers[1]).To(Equal(uint8(251)))
			Expect(flag(in)).To(Equal(uint8(0)))
		})

		It("should set the flag when Vx - Vy does not borrow", func() {
			in := loadProgram([]uint8{
				0x61, 0x0A, // V1 := 10
				0x62, 0x05, // V2 := 5
				0x81, 0x25, // V1 := V1 - V2
			})

			stepN(in, 3)

			Expect(in.State().Registers[1]).To(Equal(uint8(5)))
			Expect(flag(in)).To(Equal(uint8(1)))
		})

		It("should compute the reversed form Vy - Vx", func() {
			in := loadProgram([]uint8{
				0x61, 0x0A, // V1 := 10
				0x62, 0x03, // V2 := 3
				0x81, 0x27, // V1 := V2 - V1
			})

			stepN(in, 3)

			Expect(in.State().Registers[1]).To(Equal(uint8(249)))
			Expect(flag(in)).To(Equal(uint8(0)))
		})

		It("should set the flag when Vy - Vx does not borrow", func() {
			in := loadProgram([]uint8{
				0x61, 0x03, // V1 := 3
				0x62, 0x0A, // V2 := 10
				0x81, 0x27, // V1 := V2 - V1
			})

			stepN(in, 3)

			Expect(in.State().Registers[1]).To(Equal(uint8(7)))
			Expect(flag(in)).To(Equal(uint8(1)))
		})
	})

	Describe("Logic", func() {
		setup := []uint8{
			0x61, 0x0C, // V1 := 0x0c
			0x62, 0x0A, // V2 := 0x0a
		}

		It("should copy", func() {
			in := loadProgram(append(setup, 0x81, 0x20))
			stepN(in, 3)
			Expect(in.State().Registers[1]).To(Equal(uint8(0x0A)))
		})

		It("should or", func() {
			in := loadProgram(append(setup, 0x81, 0x21))
			stepN(in, 3)
			Expect(in.State().Registers[1]).To(Equal(uint8(0x0E)))
		})

		It("should and", func() {
			in := loadProgram(append(setup, 0x81, 0x22))
			stepN(in, 3)
			Expect(in.State().Registers[1]).To(Equal(uint8(0x08)))
		})

		It("should xor", func() {
			in := loadProgram(append(setup, 0x81, 0x23))
			stepN(in, 3)
			Expect(in.State().Registers[1]).To(Equal(uint8(0x06)))
		})
	})

	Describe("Shifts", func() {
		It("should shift right and capture the outgoing bit", func() {
			in := loadProgram([]uint8{
				0x61, 0x05, // V1 := 5
				0x81, 0x26, // V1 := V1 >> 1
			})

			stepN(in, 2)

			Expect(in.State().Registers[1]).To(Equal(uint8(2)))
			Expect(flag(in)).To(Equal(uint8(1)))
		})

		It("should shift left and capture the outgoing bit", func() {
			in := loadProgram([]uint8{
				0x61, 0x81, // V1 := 0x81
				0x81, 0x2E, // V1 := V1 << 1
			})

			stepN(in, 2)

			Expect(in.State().Registers[1]).To(Equal(uint8(2)))
			Expect(flag(in)).To(Equal(uint8(1)))
		})

		It("should ignore the second register operand", func() {
			in := loadProgram([]uint8{
				0x61, 0x04, // V1 := 4
				0x62, 0xFF, // V2 := 0xff
				0x81, 0x26, // V1 := V1 >> 1
			})

			stepN(in, 3)

			Expect(in.State().Registers[1]).To(Equal(uint8(2)))
			Expect(in.State().Registers[2]).To(Equal(uint8(0xFF)))
			Expect(flag(in)).To(Equal(uint8(0)))
		})
	})
})
