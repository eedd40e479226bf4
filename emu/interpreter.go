package emu

import (
	"fmt"
	"math/rand/v2"

	"github.com/chippie-emu/chippie/insts"
)

// Interpreter executes CHIP-8 programs one instruction per step.
//
// The interpreter exclusively owns its State. It is single-threaded and
// synchronous: Step runs to completion or fails, never yielding
// mid-instruction. Callers drive it from their own timing loop and refresh
// the input bitmask between steps.
type Interpreter struct {
	state   State
	decoder *insts.Decoder

	randByte func() uint8

	// timerCounter tracks cycles since the last 60Hz timer tick.
	timerCounter int
}

// InterpreterOption is a functional option for configuring the Interpreter.
type InterpreterOption func(*Interpreter)

// WithRandSource sets a custom random byte source, used by the Random
// instruction. The default draws from math/rand/v2.
func WithRandSource(f func() uint8) InterpreterOption {
	return func(in *Interpreter) {
		in.randByte = f
	}
}

// NewInterpreter creates a new interpreter in its reset state.
func NewInterpreter(opts ...InterpreterOption) *Interpreter {
	in := &Interpreter{
		decoder: insts.NewDecoder(),
		randByte: func() uint8 {
			return uint8(rand.UintN(256))
		},
	}

	for _, opt := range opts {
		opt(in)
	}

	in.Reset()
	return in
}

// State returns the interpreter's machine state for inspection. Callers
// must treat it as read-only; all mutation goes through Reset, LoadROM,
// SetInputKeys and Step.
func (in *Interpreter) State() *State {
	return &in.state
}

// Reset reinitializes the machine: registers, stack, screen and timers
// cleared, the font table re-seeded, and the program counter at
// BaseAddress. Reset is idempotent and cannot fail.
func (in *Interpreter) Reset() {
	in.state = newState()
	in.timerCounter = 0
}

// LoadROM copies a raw ROM image into memory starting at BaseAddress.
// Memory below BaseAddress and above the image is left untouched; callers
// needing a clean slate must Reset first. Images larger than MaxROMSize are
// rejected with ErrROMTooLarge.
func (in *Interpreter) LoadROM(rom []byte) error {
	if len(rom) > MaxROMSize {
		return ErrROMTooLarge
	}

	copy(in.state.Memory[int(BaseAddress):int(BaseAddress)+len(rom)], rom)
	return nil
}

// SetInputKeys overwrites the held-key bitmask. Bit n set means logical key
// n (0x0-0xF) is currently held.
func (in *Interpreter) SetInputKeys(keys uint32) {
	in.state.InputKeys = keys
}

// SoundActive reports whether a tone should currently be playing.
func (in *Interpreter) SoundActive() bool {
	return in.state.ST > 1
}

// PeekInstruction decodes the two bytes at address without mutating any
// state. It is intended for diagnostic disassembly.
func (in *Interpreter) PeekInstruction(address uint16) (insts.Instruction, error) {
	if int(address) >= int(MemorySize)-2 {
		return insts.Instruction{}, ErrMemoryAccess
	}
	return in.decoder.Decode(in.fetch(address))
}

// fetch reads the big-endian opcode word at address.
func (in *Interpreter) fetch(address uint16) uint16 {
	return uint16(in.state.Memory[address])<<8 | uint16(in.state.Memory[address+1])
}

// Step executes exactly one emulated cycle: fetch, decode, execute, update
// timers.
//
// A wait-for-key instruction with no key held returns successfully without
// advancing the program counter or touching any other state; the
// instruction re-executes on the next step until a key is available. For
// all other instructions the program counter advances by 2 before the
// instruction's effect is applied, so instructions that write the program
// counter themselves are not double-advanced.
//
// On failure the state keeps whatever mutations happened before the
// failure; callers must treat a failed step as terminal for the run.
func (in *Interpreter) Step() error {
	if int(in.state.PC)+1 >= int(MemorySize) {
		return ProgramCounterOutOfBoundsError{Address: in.state.PC}
	}

	inst, err := in.decoder.Decode(in.fetch(in.state.PC))
	if err != nil {
		return err
	}

	if inst.Op == insts.OpWaitForKey && in.state.InputKeys == 0 {
		return nil
	}

	in.state.PC += 2
	if err := in.Execute(inst); err != nil {
		return err
	}

	in.updateTimers()
	return nil
}

// Execute applies the effect of a single decoded instruction. Most callers
// should use Step, which also handles fetching, program counter advancement
// and timers.
func (in *Interpreter) Execute(inst insts.Instruction) error {
	switch inst.Op {
	case insts.OpNoOperation:
		return nil

	case insts.OpJump:
		return in.execJump(inst)
	case insts.OpJumpRelative:
		return in.execJumpRelative(inst)
	case insts.OpCall:
		return in.execCall(inst)
	case insts.OpReturn:
		return in.execReturn(inst)
	case insts.OpSkipIfEqualValue:
		return in.execSkipIfEqualValue(inst)
	case insts.OpSkipIfNotEqualValue:
		return in.execSkipIfNotEqualValue(inst)
	case insts.OpSkipIfEqualRegister:
		return in.execSkipIfEqualRegister(inst)
	case insts.OpSkipIfNotEqualRegister:
		return in.execSkipIfNotEqualRegister(inst)

	case insts.OpLoadValue:
		return in.execLoadValue(inst)
	case insts.OpAddValue:
		return in.execAddValue(inst)
	case insts.OpCopy:
		return in.execCopy(inst)
	case insts.OpOr:
		return in.execOr(inst)
	case insts.OpAnd:
		return in.execAnd(inst)
	case insts.OpXor:
		return in.execXor(inst)
	case insts.OpAddRegister:
		return in.execAddRegister(inst)
	case insts.OpSubtractVxVy:
		return in.execSubtractVxVy(inst)
	case insts.OpSubtractVyVx:
		return in.execSubtractVyVx(inst)
	case insts.OpShiftRight:
		return in.execShiftRight(inst)
	case insts.OpShiftLeft:
		return in.execShiftLeft(inst)
	case insts.OpRandom:
		return in.execRandom(inst)

	case insts.OpSetIndex:
		return in.execSetIndex(inst)
	case insts.OpAddIndex:
		return in.execAddIndex(inst)
	case insts.OpSelectCharacter:
		return in.execSelectCharacter(inst)
	case insts.OpStoreBCD:
		return in.execStoreBCD(inst)
	case insts.OpStoreRegisters:
		return in.execStoreRegisters(inst)
	case insts.OpLoadRegisters:
		return in.execLoadRegisters(inst)

	case insts.OpClearScreen:
		return in.execClearScreen(inst)
	case insts.OpDraw:
		return in.execDraw(inst)

	case insts.OpSkipIfKeyPressed:
		return in.execSkipIfKeyPressed(inst)
	case insts.OpSkipIfKeyNotPressed:
		return in.execSkipIfKeyNotPressed(inst)
	case insts.OpWaitForKey:
		return in.execWaitForKey(inst)

	case insts.OpReadDelayTimer:
		return in.execReadDelayTimer(inst)
	case insts.OpSetDelayTimer:
		return in.execSetDelayTimer(inst)
	case insts.OpSetSoundTimer:
		return in.execSetSoundTimer(inst)

	default:
		return fmt.Errorf("unhandled operation %d", inst.Op)
	}
}

// setFlag writes the carry/borrow/collision flag register.
func (in *Interpreter) setFlag(v uint8) {
	in.state.Registers[flagRegister] = v
}
