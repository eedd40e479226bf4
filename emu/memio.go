package emu

import "github.com/chippie-emu/chippie/insts"

// Index register and memory-block operations. Every computed span is
// validated against the end of memory before any byte moves.

func (in *Interpreter) execSetIndex(inst insts.Instruction) error {
	in.state.I = inst.Address
	return nil
}

func (in *Interpreter) execAddIndex(inst insts.Instruction) error {
	// Wraps at 16 bits; the next access through I validates bounds.
	in.state.I += uint16(in.state.Registers[inst.X])
	return nil
}

func (in *Interpreter) execSelectCharacter(inst insts.Instruction) error {
	// Glyphs live at the bottom of memory, 5 bytes apiece. The register
	// value is at most 255, so the result never leaves the font area's
	// address space.
	in.state.I = uint16(in.state.Registers[inst.X]) * fontGlyphSize
	return nil
}

func (in *Interpreter) execStoreBCD(inst insts.Instruction) error {
	if int(in.state.I)+3 > int(MemorySize) {
		return ErrMemoryAccess
	}

	v := in.state.Registers[inst.X]
	in.state.Memory[in.state.I] = v / 100
	in.state.Memory[in.state.I+1] = (v / 10) % 10
	in.state.Memory[in.state.I+2] = v % 10
	return nil
}

func (in *Interpreter) execStoreRegisters(inst insts.Instruction) error {
	cursor := int(in.state.I)
	if cursor+int(inst.Count) > int(MemorySize) {
		return ErrMemoryAccess
	}

	for r := 0; r < int(inst.Count); r++ {
		in.state.Memory[cursor+r] = in.state.Registers[r]
	}
	return nil
}

func (in *Interpreter) execLoadRegisters(inst insts.Instruction) error {
	cursor := int(in.state.I)
	if cursor+int(inst.Count) > int(MemorySize) {
		return ErrMemoryAccess
	}

	for r := 0; r < int(inst.Count); r++ {
		in.state.Registers[r] = in.state.Memory[cursor+r]
	}
	return nil
}
