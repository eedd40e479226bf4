package emu

import "github.com/chippie-emu/chippie/insts"

// Key-conditioned skips and the wait-for-key instruction.

func (in *Interpreter) execSkipIfKeyPressed(inst insts.Instruction) error {
	key := in.state.Registers[inst.X]
	if key > 15 {
		return InvalidInputKeyError{Key: key}
	}

	if in.state.InputKeys&(1<<key) != 0 {
		in.state.PC += 2
	}
	return nil
}

func (in *Interpreter) execSkipIfKeyNotPressed(inst insts.Instruction) error {
	key := in.state.Registers[inst.X]
	if key > 15 {
		return InvalidInputKeyError{Key: key}
	}

	if in.state.InputKeys&(1<<key) == 0 {
		in.state.PC += 2
	}
	return nil
}

// execWaitForKey stores the lowest held key index in the register. With no
// key held it fails with ErrExpectingInputKey; Step guards the precondition
// and re-executes the instruction instead of surfacing the error.
func (in *Interpreter) execWaitForKey(inst insts.Instruction) error {
	if in.state.InputKeys == 0 {
		return ErrExpectingInputKey
	}

	for k := uint8(0); k < 16; k++ {
		if in.state.InputKeys&(1<<k) != 0 {
			in.state.Registers[inst.X] = k
			break
		}
	}
	return nil
}
