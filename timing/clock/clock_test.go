package clock_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/chippie-emu/chippie/emu"
	"github.com/chippie-emu/chippie/insts"
	"github.com/chippie-emu/chippie/loader"
	"github.com/chippie-emu/chippie/timing/clock"
)

var _ = Describe("Runner", func() {
	It("should retire one instruction per cycle at the nominal rate", func() {
		rom, ok := loader.Builtin("glyphs")
		Expect(ok).To(BeTrue())

		interp := emu.NewInterpreter()
		Expect(interp.LoadROM(rom.Data)).To(Succeed())

		runner := clock.NewRunner(interp, clock.WithMaxCycles(100))
		stats, err := runner.Run()

		Expect(err).ToNot(HaveOccurred())
		Expect(stats.Cycles).To(Equal(uint64(100)))
		Expect(stats.Instructions).To(Equal(uint64(100)))
		Expect(float64(stats.SimulatedTime)).
			To(BeNumerically("~", 100.0/float64(emu.TicksPerSecond), 1e-9))
	})

	It("should honor an overridden instruction rate", func() {
		interp := emu.NewInterpreter()
		Expect(interp.LoadROM([]byte{0x12, 0x00})).To(Succeed()) // Jump 0200

		runner := clock.NewRunner(interp,
			clock.WithMaxCycles(100),
			clock.WithTicksPerSecond(1000))
		stats, err := runner.Run()

		Expect(err).ToNot(HaveOccurred())
		Expect(float64(stats.SimulatedTime)).To(BeNumerically("~", 0.1, 1e-9))
	})

	It("should burn cycles without retiring while waiting for a key", func() {
		interp := emu.NewInterpreter()
		Expect(interp.LoadROM([]byte{0xF0, 0x0A})).To(Succeed()) // WaitForKey

		runner := clock.NewRunner(interp, clock.WithMaxCycles(10))
		stats, err := runner.Run()

		Expect(err).ToNot(HaveOccurred())
		Expect(stats.Cycles).To(Equal(uint64(10)))
		Expect(stats.Instructions).To(Equal(uint64(0)))
		Expect(interp.State().PC).To(Equal(emu.BaseAddress))
	})

	It("should stop on the first step failure", func() {
		interp := emu.NewInterpreter()
		Expect(interp.LoadROM([]byte{0x8F, 0xF8})).To(Succeed())

		runner := clock.NewRunner(interp)
		stats, err := runner.Run()

		Expect(err).To(Equal(insts.InvalidInstructionError{Opcode: 0x8FF8}))
		Expect(stats.Cycles).To(Equal(uint64(0)))
	})

	It("should run an empty machine off the end of memory", func() {
		interp := emu.NewInterpreter()

		runner := clock.NewRunner(interp)
		stats, err := runner.Run()

		Expect(err).To(Equal(
			emu.ProgramCounterOutOfBoundsError{Address: emu.MemorySize}))
		Expect(stats.Cycles).To(Equal(
			uint64(emu.MemorySize-emu.BaseAddress) / 2))
	})
})
