package emu

import "github.com/chippie-emu/chippie/insts"

// Jumps, subroutine calls and conditional skips. The program counter has
// already been advanced past the current instruction when these run, so a
// skip is a further advance by 2 and a call pushes the address of the next
// instruction.

func (in *Interpreter) execJump(inst insts.Instruction) error {
	in.state.PC = inst.Address
	return nil
}

func (in *Interpreter) execJumpRelative(inst insts.Instruction) error {
	target := uint16(in.state.Registers[0]) + inst.Address
	if target > MemorySize-1 {
		return ErrMemoryAccess
	}

	in.state.PC = target
	return nil
}

func (in *Interpreter) execCall(inst insts.Instruction) error {
	if in.state.SP > StackSize-1 {
		return ErrCallStackDepthExceeded
	}

	in.state.Stack[in.state.SP] = in.state.PC
	in.state.SP++
	in.state.PC = inst.Address
	return nil
}

func (in *Interpreter) execReturn(insts.Instruction) error {
	if in.state.SP == 0 {
		return ErrCallStackEmpty
	}

	in.state.SP--
	in.state.PC = in.state.Stack[in.state.SP]
	return nil
}

func (in *Interpreter) execSkipIfEqualValue(inst insts.Instruction) error {
	if in.state.Registers[inst.X] == inst.Value {
		in.state.PC += 2
	}
	return nil
}

func (in *Interpreter) execSkipIfNotEqualValue(inst insts.Instruction) error {
	if in.state.Registers[inst.X] != inst.Value {
		in.state.PC += 2
	}
	return nil
}

func (in *Interpreter) execSkipIfEqualRegister(inst insts.Instruction) error {
	if in.state.Registers[inst.X] == in.state.Registers[inst.Y] {
		in.state.PC += 2
	}
	return nil
}

func (in *Interpreter) execSkipIfNotEqualRegister(inst insts.Instruction) error {
	if in.state.Registers[inst.X] != in.state.Registers[inst.Y] {
		in.state.PC += 2
	}
	return nil
}
