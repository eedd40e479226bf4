package emu

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the engine. All errors are terminal for the
// triggering call; the engine never retries or recovers internally.
var (
	// ErrROMTooLarge is returned by LoadROM when the image does not fit
	// above BaseAddress.
	ErrROMTooLarge = errors.New("rom image is too large to load")

	// ErrCallStackDepthExceeded is returned by a call at full stack depth.
	ErrCallStackDepthExceeded = errors.New("call stack depth exceeded")

	// ErrCallStackEmpty is returned by a return with an empty stack.
	ErrCallStackEmpty = errors.New("call stack is empty")

	// ErrMemoryAccess is returned when a computed memory span leaves the
	// address space.
	ErrMemoryAccess = errors.New("memory access out of bounds")

	// ErrExpectingInputKey is returned by directly executing a wait-for-key
	// with no key held. Step handles the condition by early return instead,
	// so Step never surfaces it.
	ErrExpectingInputKey = errors.New("expecting input key")
)

// ProgramCounterOutOfBoundsError reports a fetch attempted past the end of
// memory.
type ProgramCounterOutOfBoundsError struct {
	Address uint16
}

func (e ProgramCounterOutOfBoundsError) Error() string {
	return fmt.Sprintf("program counter out of bounds at 0x%04x", e.Address)
}

// InvalidInputKeyError reports a key-conditioned skip naming a register
// whose value is outside the logical key range 0x0-0xF.
type InvalidInputKeyError struct {
	Key uint8
}

func (e InvalidInputKeyError) Error() string {
	return fmt.Sprintf("invalid input key %d", e.Key)
}
