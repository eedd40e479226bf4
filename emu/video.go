package emu

import "github.com/chippie-emu/chippie/insts"

// Framebuffer operations.

func (in *Interpreter) execClearScreen(insts.Instruction) error {
	in.state.Screen = [ScreenHeight][ScreenWidth]uint8{}
	return nil
}

// execDraw XORs a sprite of Len rows, read from memory at the index
// register, into the screen at (Vx, Vy). Bit 7 of each row lands at x, bit
// 0 at x+7, and both axes wrap. The flag register is set to 1 if any pixel
// transitioned from set to unset, 0 otherwise.
func (in *Interpreter) execDraw(inst insts.Instruction) error {
	if int(in.state.I)+int(inst.Len) > int(MemorySize) {
		return ErrMemoryAccess
	}

	posX := int(in.state.Registers[inst.X])
	posY := int(in.state.Registers[inst.Y])

	collision := false
	for row := 0; row < int(inst.Len); row++ {
		spriteRow := in.state.Memory[int(in.state.I)+row]
		y := (posY + row) % ScreenHeight

		for bit := 0; bit < 8; bit++ {
			x := (posX + 7 - bit) % ScreenWidth
			old := in.state.Screen[y][x]
			in.state.Screen[y][x] ^= (spriteRow >> bit) & 1

			if old > 0 && in.state.Screen[y][x] == 0 {
				collision = true
			}
		}
	}

	if collision {
		in.setFlag(1)
	} else {
		in.setFlag(0)
	}
	return nil
}
