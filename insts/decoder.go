package insts

import "fmt"

// InvalidInstructionError reports an opcode with no defined mapping.
type InvalidInstructionError struct {
	Opcode uint16
}

func (e InvalidInstructionError) Error() string {
	return fmt.Sprintf("invalid instruction 0x%04x", e.Opcode)
}

// Decoder decodes raw 16-bit opcode words into instructions.
type Decoder struct{}

// NewDecoder creates a new CHIP-8 instruction decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode decodes a 16-bit opcode word.
//
// Dispatch is on the high nibble first; classes 0, 8, E and F dispatch
// further on the low byte or low nibble. Opcodes with no defined mapping
// return an InvalidInstructionError carrying the raw opcode. Class-0 opcodes
// other than the exact clear-screen and return forms decode as a no-op, not
// an error.
func (d *Decoder) Decode(opcode uint16) (Instruction, error) {
	switch opcode >> 12 {
	case 0x0:
		switch opcode {
		case 0x00E0:
			return Instruction{Op: OpClearScreen}, nil
		case 0x00EE:
			return Instruction{Op: OpReturn}, nil
		default:
			// Historical 0nnn machine-code syscall; treated as a no-op.
			return Instruction{Op: OpNoOperation}, nil
		}
	case 0x1:
		return Instruction{Op: OpJump, Address: addr(opcode)}, nil
	case 0x2:
		return Instruction{Op: OpCall, Address: addr(opcode)}, nil
	case 0x3:
		return Instruction{Op: OpSkipIfEqualValue, X: regX(opcode), Value: imm(opcode)}, nil
	case 0x4:
		return Instruction{Op: OpSkipIfNotEqualValue, X: regX(opcode), Value: imm(opcode)}, nil
	case 0x5:
		// The low nibble is ignored, mirroring class 9.
		return Instruction{Op: OpSkipIfEqualRegister, X: regX(opcode), Y: regY(opcode)}, nil
	case 0x6:
		return Instruction{Op: OpLoadValue, X: regX(opcode), Value: imm(opcode)}, nil
	case 0x7:
		return Instruction{Op: OpAddValue, X: regX(opcode), Value: imm(opcode)}, nil
	case 0x8:
		return d.decodeALU(opcode)
	case 0x9:
		return Instruction{Op: OpSkipIfNotEqualRegister, X: regX(opcode), Y: regY(opcode)}, nil
	case 0xA:
		return Instruction{Op: OpSetIndex, Address: addr(opcode)}, nil
	case 0xB:
		return Instruction{Op: OpJumpRelative, Address: addr(opcode)}, nil
	case 0xC:
		return Instruction{Op: OpRandom, X: regX(opcode), Value: imm(opcode)}, nil
	case 0xD:
		return Instruction{Op: OpDraw, X: regX(opcode), Y: regY(opcode), Len: nibble(opcode)}, nil
	case 0xE:
		return d.decodeKey(opcode)
	default: // 0xF
		return d.decodeMisc(opcode)
	}
}

// decodeALU decodes the class-8 register ALU group, selected by low nibble.
func (d *Decoder) decodeALU(opcode uint16) (Instruction, error) {
	x, y := regX(opcode), regY(opcode)

	switch opcode & 0x000F {
	case 0x0:
		return Instruction{Op: OpCopy, X: x, Y: y}, nil
	case 0x1:
		return Instruction{Op: OpOr, X: x, Y: y}, nil
	case 0x2:
		return Instruction{Op: OpAnd, X: x, Y: y}, nil
	case 0x3:
		return Instruction{Op: OpXor, X: x, Y: y}, nil
	case 0x4:
		return Instruction{Op: OpAddRegister, X: x, Y: y}, nil
	case 0x5:
		return Instruction{Op: OpSubtractVxVy, X: x, Y: y}, nil
	case 0x6:
		return Instruction{Op: OpShiftRight, X: x, Y: y}, nil
	case 0x7:
		return Instruction{Op: OpSubtractVyVx, X: x, Y: y}, nil
	case 0xE:
		return Instruction{Op: OpShiftLeft, X: x, Y: y}, nil
	default:
		return Instruction{}, InvalidInstructionError{Opcode: opcode}
	}
}

// decodeKey decodes the class-E key-conditioned skips, selected by low byte.
func (d *Decoder) decodeKey(opcode uint16) (Instruction, error) {
	switch opcode & 0x00FF {
	case 0x9E:
		return Instruction{Op: OpSkipIfKeyPressed, X: regX(opcode)}, nil
	case 0xA1:
		return Instruction{Op: OpSkipIfKeyNotPressed, X: regX(opcode)}, nil
	default:
		return Instruction{}, InvalidInstructionError{Opcode: opcode}
	}
}

// decodeMisc decodes the class-F timer/memory group, selected by low byte.
func (d *Decoder) decodeMisc(opcode uint16) (Instruction, error) {
	x := regX(opcode)

	switch opcode & 0x00FF {
	case 0x07:
		return Instruction{Op: OpReadDelayTimer, X: x}, nil
	case 0x0A:
		return Instruction{Op: OpWaitForKey, X: x}, nil
	case 0x15:
		return Instruction{Op: OpSetDelayTimer, X: x}, nil
	case 0x18:
		return Instruction{Op: OpSetSoundTimer, X: x}, nil
	case 0x1E:
		return Instruction{Op: OpAddIndex, X: x}, nil
	case 0x29:
		return Instruction{Op: OpSelectCharacter, X: x}, nil
	case 0x33:
		return Instruction{Op: OpStoreBCD, X: x}, nil
	case 0x55:
		return Instruction{Op: OpStoreRegisters, X: x, Count: x + 1}, nil
	case 0x65:
		return Instruction{Op: OpLoadRegisters, X: x, Count: x + 1}, nil
	default:
		return Instruction{}, InvalidInstructionError{Opcode: opcode}
	}
}

// regX extracts the "x" register operand from bits 8-11.
func regX(opcode uint16) uint8 {
	return uint8(opcode>>8) & 0x0F
}

// regY extracts the "y" register operand from bits 4-7.
func regY(opcode uint16) uint8 {
	return uint8(opcode>>4) & 0x0F
}

// imm extracts the 8-bit immediate from the low byte.
func imm(opcode uint16) uint8 {
	return uint8(opcode)
}

// addr extracts the 12-bit address from the low 12 bits.
func addr(opcode uint16) uint16 {
	return opcode & 0x0FFF
}

// nibble extracts the low 4 bits.
func nibble(opcode uint16) uint8 {
	return uint8(opcode) & 0x0F
}
