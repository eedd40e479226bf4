package emu

import "github.com/chippie-emu/chippie/insts"

// Register loads, arithmetic, logic and shifts.
//
// Flag conventions: AddRegister sets the flag to 1 on carry; both subtract
// forms set it to 1 when no borrow occurred; shifts set it to the
// shifted-out bit. AddValue sets the flag to 1 when NOT carrying, matching
// the machine being emulated rather than the common CHIP-8 convention.

func (in *Interpreter) execLoadValue(inst insts.Instruction) error {
	in.state.Registers[inst.X] = inst.Value
	return nil
}

func (in *Interpreter) execAddValue(inst insts.Instruction) error {
	sum := in.state.Registers[inst.X] + inst.Value
	carry := sum < in.state.Registers[inst.X]
	in.state.Registers[inst.X] = sum

	if carry {
		in.setFlag(0)
	} else {
		in.setFlag(1)
	}
	return nil
}

func (in *Interpreter) execCopy(inst insts.Instruction) error {
	in.state.Registers[inst.X] = in.state.Registers[inst.Y]
	return nil
}

func (in *Interpreter) execOr(inst insts.Instruction) error {
	in.state.Registers[inst.X] |= in.state.Registers[inst.Y]
	return nil
}

func (in *Interpreter) execAnd(inst insts.Instruction) error {
	in.state.Registers[inst.X] &= in.state.Registers[inst.Y]
	return nil
}

func (in *Interpreter) execXor(inst insts.Instruction) error {
	in.state.Registers[inst.X] ^= in.state.Registers[inst.Y]
	return nil
}

func (in *Interpreter) execAddRegister(inst insts.Instruction) error {
	sum := in.state.Registers[inst.X] + in.state.Registers[inst.Y]
	carry := sum < in.state.Registers[inst.X]
	in.state.Registers[inst.X] = sum

	if carry {
		in.setFlag(1)
	} else {
		in.setFlag(0)
	}
	return nil
}

func (in *Interpreter) execSubtractVxVy(inst insts.Instruction) error {
	x, y := in.state.Registers[inst.X], in.state.Registers[inst.Y]
	in.state.Registers[inst.X] = x - y

	if y > x {
		in.setFlag(0) // borrow
	} else {
		in.setFlag(1)
	}
	return nil
}

func (in *Interpreter) execSubtractVyVx(inst insts.Instruction) error {
	x, y := in.state.Registers[inst.X], in.state.Registers[inst.Y]
	in.state.Registers[inst.X] = y - x

	if x > y {
		in.setFlag(0) // borrow
	} else {
		in.setFlag(1)
	}
	return nil
}

func (in *Interpreter) execShiftRight(inst insts.Instruction) error {
	carry := in.state.Registers[inst.X] & 1
	in.state.Registers[inst.X] >>= 1
	in.setFlag(carry)
	return nil
}

func (in *Interpreter) execShiftLeft(inst insts.Instruction) error {
	carry := in.state.Registers[inst.X] >> 7
	in.state.Registers[inst.X] <<= 1
	in.setFlag(carry)
	return nil
}

func (in *Interpreter) execRandom(inst insts.Instruction) error {
	in.state.Registers[inst.X] = in.randByte() & inst.Value
	return nil
}
