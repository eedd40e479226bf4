// Package emu provides the CHIP-8 machine engine.
package emu

// Machine geometry.
const (
	// BaseAddress is where program bytes are loaded and where execution
	// begins after a reset.
	BaseAddress uint16 = 0x200

	// MemorySize is the size of the addressable memory in bytes.
	MemorySize uint16 = 4096

	// StackSize is the number of return-address slots on the call stack.
	StackSize = 32

	// RegisterCount is the number of general-purpose registers.
	RegisterCount = 16

	// ScreenWidth and ScreenHeight are the framebuffer dimensions in pixels.
	ScreenWidth  = 64
	ScreenHeight = 32

	// MaxROMSize is the largest ROM image that fits above BaseAddress.
	MaxROMSize = int(MemorySize - BaseAddress)
)

// Timing.
const (
	// TicksPerSecond is the nominal instruction rate.
	TicksPerSecond = 500

	// TimerFrequency is the fixed decrement rate of the delay and sound
	// timers in Hz.
	TimerFrequency = 60

	timerTickInterval = TicksPerSecond / TimerFrequency
)

// flagRegister is register 15, reused as the arithmetic carry/borrow flag
// and the sprite collision flag.
const flagRegister = 15

// State is the entire emulated machine: registers, call stack, memory,
// framebuffer, input bitmask, index register, timers, program counter and
// stack pointer.
//
// State has value semantics; copying it produces an independent snapshot.
type State struct {
	// Registers are the 16 general-purpose 8-bit registers V0-VF.
	Registers [RegisterCount]uint8

	// Stack holds subroutine return addresses. SP indexes the next free
	// slot; 0 means the stack is empty.
	Stack [StackSize]uint16

	// Memory is the 4KB address space. The font sprite table occupies the
	// first bytes; program bytes start at BaseAddress.
	Memory [MemorySize]uint8

	// Screen is the 64x32 monochrome framebuffer, row-major, one byte per
	// pixel holding 0 or 1. Both axes wrap.
	Screen [ScreenHeight][ScreenWidth]uint8

	// InputKeys is the currently-held key bitmask: bit n set means logical
	// key n (0x0-0xF) is held.
	InputKeys uint32

	// I is the index register used by memory, sprite and register-block
	// instructions.
	I uint16

	// ST and DT are the sound and delay timers, decremented at
	// TimerFrequency and floored at zero.
	ST uint8
	DT uint8

	// PC is the program counter, pointing at the next instruction to fetch.
	PC uint16

	// SP is the stack pointer.
	SP int
}

// newState returns the lifecycle start state: everything zeroed, the font
// table seeded, and the program counter at BaseAddress.
func newState() State {
	s := State{PC: BaseAddress}
	copy(s.Memory[:len(fontROM)], fontROM[:])
	return s
}
