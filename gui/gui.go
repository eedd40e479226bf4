// Package gui provides the SDL2 front end for the machine engine.
//
// The front end consumes the engine through its narrow surface only: it
// renders State().Screen, feeds SetInputKeys from the host keyboard, and
// drives Step from its own frame loop. Emulation correctness never depends
// on anything in this package.
package gui

import (
	"context"
	"fmt"
	"runtime"

	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/chippie-emu/chippie/emu"
)

// ticksPerFrame is how many instructions run per rendered frame so that a
// 60fps frame loop sustains the nominal instruction rate.
const ticksPerFrame = emu.TicksPerSecond / 60

// keypad maps host scancodes to logical key indices, mirroring the classic
// 4x4 layout on the left of a QWERTY board:
//
//	1 2 3 4      1 2 3 C
//	q w e r  ->  4 5 6 D
//	a s d f      7 8 9 E
//	z x c v      A 0 B F
var keypad = map[sdl.Scancode]uint8{
	sdl.SCANCODE_1: 0x1, sdl.SCANCODE_2: 0x2, sdl.SCANCODE_3: 0x3, sdl.SCANCODE_4: 0xC,
	sdl.SCANCODE_Q: 0x4, sdl.SCANCODE_W: 0x5, sdl.SCANCODE_E: 0x6, sdl.SCANCODE_R: 0xD,
	sdl.SCANCODE_A: 0x7, sdl.SCANCODE_S: 0x8, sdl.SCANCODE_D: 0x9, sdl.SCANCODE_F: 0xE,
	sdl.SCANCODE_Z: 0xA, sdl.SCANCODE_X: 0x0, sdl.SCANCODE_C: 0xB, sdl.SCANCODE_V: 0xF,
}

// Window is the emulator front end: one SDL window showing the scaled
// framebuffer.
type Window struct {
	interp *emu.Interpreter
	logger *log.Logger

	window   *sdl.Window
	renderer *sdl.Renderer
	scale    int32
	title    string

	running bool
}

// New creates the front end window. Must be called from the main thread.
func New(interp *emu.Interpreter, logger *log.Logger, title string, scale int) (*Window, error) {
	runtime.LockOSThread()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("initializing sdl: %w", err)
	}

	w := &Window{
		interp: interp,
		logger: logger,
		scale:  int32(scale),
		title:  title,
	}

	var err error
	w.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		emu.ScreenWidth*w.scale, emu.ScreenHeight*w.scale,
		sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("creating window: %w", err)
	}

	w.renderer, err = sdl.CreateRenderer(w.window, -1,
		sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		w.window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	return w, nil
}

// Destroy releases the SDL resources. Must be called from the main thread.
func (w *Window) Destroy() {
	w.renderer.Destroy()
	w.window.Destroy()
	sdl.Quit()
}

// Run drives the frame loop until the window closes or ctx is cancelled.
//
// Controls: space toggles run/pause, n single-steps while paused,
// backspace resets the machine, escape quits.
func (w *Window) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		quit, err := w.handleEvents()
		if err != nil {
			return err
		}
		if quit {
			return nil
		}

		if w.running {
			w.setInputKeys()
			for i := 0; i < ticksPerFrame; i++ {
				if err := w.interp.Step(); err != nil {
					w.logger.Error("Emulation stopped", log.Err(err))
					w.running = false
					break
				}
			}
		}

		if err := w.render(); err != nil {
			return err
		}
		w.updateTitle()

		// PRESENTVSYNC normally paces the loop; the delay caps the rate on
		// drivers that ignore vsync.
		sdl.Delay(1000 / 60)
	}
}

// handleEvents drains the SDL event queue. Returns true when the front end
// should shut down.
func (w *Window) handleEvents() (bool, error) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			return true, nil

		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
				continue
			}

			switch ev.Keysym.Sym {
			case sdl.K_ESCAPE:
				return true, nil
			case sdl.K_SPACE:
				w.running = !w.running
			case sdl.K_n:
				if !w.running {
					w.setInputKeys()
					if err := w.interp.Step(); err != nil {
						w.logger.Error("Step failed", log.Err(err))
					}
				}
			case sdl.K_BACKSPACE:
				w.interp.Reset()
				w.running = false
			}
		}
	}

	return false, nil
}

// setInputKeys rebuilds the held-key bitmask from the host keyboard.
func (w *Window) setInputKeys() {
	pressed := sdl.GetKeyboardState()

	var keys uint32
	for scancode, key := range keypad {
		if pressed[scancode] != 0 {
			keys |= 1 << key
		}
	}

	w.interp.SetInputKeys(keys)
}

// render draws the framebuffer scaled into the window.
func (w *Window) render() error {
	if err := w.renderer.SetDrawColor(0, 0, 0, 255); err != nil {
		return err
	}
	if err := w.renderer.Clear(); err != nil {
		return err
	}

	if err := w.renderer.SetDrawColor(235, 235, 235, 255); err != nil {
		return err
	}

	state := w.interp.State()
	for y := int32(0); y < emu.ScreenHeight; y++ {
		for x := int32(0); x < emu.ScreenWidth; x++ {
			if state.Screen[y][x] == 0 {
				continue
			}

			rect := sdl.Rect{X: x * w.scale, Y: y * w.scale, W: w.scale, H: w.scale}
			if err := w.renderer.FillRect(&rect); err != nil {
				return err
			}
		}
	}

	w.renderer.Present()
	return nil
}

// updateTitle reflects pause and sound state in the window title.
func (w *Window) updateTitle() {
	title := w.title
	if !w.running {
		title += " [paused]"
	}
	if w.interp.SoundActive() {
		title += " [beep]"
	}
	w.window.SetTitle(title)
}
