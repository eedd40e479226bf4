package emu

import "github.com/chippie-emu/chippie/insts"

// Delay and sound timer instructions and the 60Hz decay driven by the
// master instruction clock.

func (in *Interpreter) execReadDelayTimer(inst insts.Instruction) error {
	in.state.Registers[inst.X] = in.state.DT
	return nil
}

func (in *Interpreter) execSetDelayTimer(inst insts.Instruction) error {
	in.state.DT = in.state.Registers[inst.X]
	return nil
}

func (in *Interpreter) execSetSoundTimer(inst insts.Instruction) error {
	in.state.ST = in.state.Registers[inst.X]
	return nil
}

// updateTimers decrements both timers once per timerTickInterval successful
// steps, flooring at zero.
func (in *Interpreter) updateTimers() {
	in.timerCounter++
	if in.timerCounter < timerTickInterval {
		return
	}
	in.timerCounter = 0

	if in.state.ST > 0 {
		in.state.ST--
	}
	if in.state.DT > 0 {
		in.state.DT--
	}
}
