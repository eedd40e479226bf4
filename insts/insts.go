package insts

import "fmt"

// Op identifies a CHIP-8 operation.
type Op uint8

// CHIP-8 operations.
const (
	OpNoOperation Op = iota

	// Flow control
	OpJump
	OpJumpRelative
	OpCall
	OpReturn
	OpSkipIfEqualValue
	OpSkipIfNotEqualValue
	OpSkipIfEqualRegister
	OpSkipIfNotEqualRegister

	// Register loads and arithmetic
	OpLoadValue
	OpAddValue
	OpCopy
	OpOr
	OpAnd
	OpXor
	OpAddRegister
	OpSubtractVxVy
	OpSubtractVyVx
	OpShiftRight
	OpShiftLeft
	OpRandom

	// Index register and memory
	OpSetIndex
	OpAddIndex
	OpSelectCharacter
	OpStoreBCD
	OpStoreRegisters
	OpLoadRegisters

	// Display
	OpClearScreen
	OpDraw

	// Input
	OpSkipIfKeyPressed
	OpSkipIfKeyNotPressed
	OpWaitForKey

	// Timers
	OpReadDelayTimer
	OpSetDelayTimer
	OpSetSoundTimer
)

// Instruction represents a decoded CHIP-8 instruction.
//
// Instructions are immutable value objects. Only the fields relevant to the
// operation are populated; the rest are zero.
type Instruction struct {
	Op Op // Operation code

	// X and Y are register operand indices (0-15).
	X uint8
	Y uint8

	// Value is an 8-bit immediate operand (also the mask for OpRandom).
	Value uint8

	// Address is a 12-bit address operand.
	Address uint16

	// Len is the sprite length in rows for OpDraw (0-15).
	Len uint8

	// Count is the number of registers transferred by OpStoreRegisters and
	// OpLoadRegisters (registers 0..Count-1).
	Count uint8
}

// String renders the instruction in the pseudo-assembly form used by the
// disassembly views.
func (i Instruction) String() string {
	switch i.Op {
	case OpNoOperation:
		return "NoOp"
	case OpJump:
		return fmt.Sprintf("Jump %04x", i.Address)
	case OpJumpRelative:
		return fmt.Sprintf("Jump %04x + V0", i.Address)
	case OpCall:
		return fmt.Sprintf("Call %04x", i.Address)
	case OpReturn:
		return "Return"
	case OpSkipIfEqualValue:
		return fmt.Sprintf("SkipNext if V%x == %d", i.X, i.Value)
	case OpSkipIfNotEqualValue:
		return fmt.Sprintf("SkipNext if V%x != %d", i.X, i.Value)
	case OpSkipIfEqualRegister:
		return fmt.Sprintf("SkipNext if V%x == V%x", i.X, i.Y)
	case OpSkipIfNotEqualRegister:
		return fmt.Sprintf("SkipNext if V%x != V%x", i.X, i.Y)
	case OpLoadValue:
		return fmt.Sprintf("V%x := %d", i.X, i.Value)
	case OpAddValue:
		return fmt.Sprintf("V%x += %d", i.X, i.Value)
	case OpCopy:
		return fmt.Sprintf("V%x := V%x", i.X, i.Y)
	case OpOr:
		return fmt.Sprintf("V%x := V%x | V%x", i.X, i.X, i.Y)
	case OpAnd:
		return fmt.Sprintf("V%x := V%x & V%x", i.X, i.X, i.Y)
	case OpXor:
		return fmt.Sprintf("V%x := V%x ^ V%x", i.X, i.X, i.Y)
	case OpAddRegister:
		return fmt.Sprintf("V%x += V%x", i.X, i.Y)
	case OpSubtractVxVy:
		return fmt.Sprintf("V%x := V%x - V%x", i.X, i.X, i.Y)
	case OpSubtractVyVx:
		return fmt.Sprintf("V%x := V%x - V%x", i.X, i.Y, i.X)
	case OpShiftRight:
		return fmt.Sprintf("V%x := V%x >> 1", i.X, i.Y)
	case OpShiftLeft:
		return fmt.Sprintf("V%x := V%x << 1", i.X, i.Y)
	case OpRandom:
		return fmt.Sprintf("V%x := random & 0x%02x", i.X, i.Value)
	case OpSetIndex:
		return fmt.Sprintf("I := %04x", i.Address)
	case OpAddIndex:
		return fmt.Sprintf("I += V%x", i.X)
	case OpSelectCharacter:
		return fmt.Sprintf("SelectCharacter(V%x)", i.X)
	case OpStoreBCD:
		return fmt.Sprintf("StoreBcd(V%x)", i.X)
	case OpStoreRegisters:
		return fmt.Sprintf("StoreRegisters(%d)", i.Count)
	case OpLoadRegisters:
		return fmt.Sprintf("LoadRegisters(%d)", i.Count)
	case OpClearScreen:
		return "ClearScreen"
	case OpDraw:
		return fmt.Sprintf("Draw(x: %d, y: %d, length: %d)", i.X, i.Y, i.Len)
	case OpSkipIfKeyPressed:
		return fmt.Sprintf("SkipNext if Key[V%x] == Pressed", i.X)
	case OpSkipIfKeyNotPressed:
		return fmt.Sprintf("SkipNext if Key[V%x] != Pressed", i.X)
	case OpWaitForKey:
		return fmt.Sprintf("WaitForKey; V%x = Key", i.X)
	case OpReadDelayTimer:
		return fmt.Sprintf("V%x := DT", i.X)
	case OpSetDelayTimer:
		return fmt.Sprintf("DT := V%x", i.X)
	case OpSetSoundTimer:
		return fmt.Sprintf("ST := V%x", i.X)
	default:
		return fmt.Sprintf("Unknown(op=%d)", i.Op)
	}
}
