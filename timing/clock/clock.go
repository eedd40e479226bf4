// Package clock provides a paced headless runner for the machine engine.
//
// The runner drives the interpreter in virtual time on the akita event
// engine: one cycle event per instruction at the nominal instruction rate.
// The 60Hz timer decay falls out of the engine's own cycle counting, so the
// runner only has to keep the instruction cadence.
package clock

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/chippie-emu/chippie/emu"
	"github.com/chippie-emu/chippie/insts"
)

// Stats holds the result of a clocked run.
type Stats struct {
	// Cycles is the number of cycle events handled.
	Cycles uint64

	// Instructions is the number of instructions retired. Cycles spent
	// polling for a key retire nothing.
	Instructions uint64

	// SimulatedTime is the virtual time consumed by the run.
	SimulatedTime sim.VTimeInSec
}

// Runner paces an interpreter on a simulation engine.
type Runner struct {
	engine sim.Engine
	interp *emu.Interpreter

	period    sim.VTimeInSec
	maxCycles uint64

	stats   Stats
	stepErr error
}

// RunnerOption is a functional option for configuring the Runner.
type RunnerOption func(*Runner)

// WithMaxCycles bounds the run to the given number of cycles. A value of 0
// means no bound; an unbounded run only ends on a step error.
func WithMaxCycles(n uint64) RunnerOption {
	return func(r *Runner) {
		r.maxCycles = n
	}
}

// WithTicksPerSecond overrides the nominal instruction rate.
func WithTicksPerSecond(tps float64) RunnerOption {
	return func(r *Runner) {
		r.period = sim.VTimeInSec(1.0 / tps)
	}
}

// NewRunner creates a runner for the given interpreter.
func NewRunner(interp *emu.Interpreter, opts ...RunnerOption) *Runner {
	r := &Runner{
		engine: sim.NewSerialEngine(),
		interp: interp,
		period: sim.VTimeInSec(1.0 / float64(emu.TicksPerSecond)),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// cycleEvent is one interpreter step in virtual time.
type cycleEvent struct {
	*sim.EventBase
}

// Run executes the interpreter until the cycle budget is exhausted or a
// step fails. The step error, if any, is returned alongside the stats for
// the cycles that completed.
func (r *Runner) Run() (Stats, error) {
	r.stats = Stats{}
	r.stepErr = nil

	r.engine.Schedule(cycleEvent{sim.NewEventBase(r.period, r)})
	if err := r.engine.Run(); err != nil {
		return r.stats, err
	}

	r.stats.SimulatedTime = r.engine.CurrentTime()
	return r.stats, r.stepErr
}

// Handle executes one cycle and schedules the next. It implements
// sim.Handler.
func (r *Runner) Handle(e sim.Event) error {
	stalled := r.waitingForKey()

	if err := r.interp.Step(); err != nil {
		r.stepErr = err
		return nil
	}

	r.stats.Cycles++
	if !stalled {
		r.stats.Instructions++
	}

	if r.maxCycles > 0 && r.stats.Cycles >= r.maxCycles {
		return nil
	}

	r.engine.Schedule(cycleEvent{sim.NewEventBase(e.Time()+r.period, r)})
	return nil
}

// waitingForKey reports whether the next step will poll for input instead
// of retiring an instruction.
func (r *Runner) waitingForKey() bool {
	state := r.interp.State()
	if state.InputKeys != 0 {
		return false
	}

	inst, err := r.interp.PeekInstruction(state.PC)
	if err != nil {
		return false
	}
	return inst.Op == insts.OpWaitForKey
}
