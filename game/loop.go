package game

import (
	"github.com/pkg/errors"
)

// Scheduler requests a callback for the next display frame. The browser
// host wraps requestAnimationFrame; other hosts drive frames themselves.
type Scheduler interface {
	RequestFrame(fn func(now float64))
}

// InputSource yields the input for one tick.
type InputSource interface {
	Sample() Input
}

// frameSlack is the share of FrameDuration a frame may arrive early and
// still tick. Browsers coarsen frame timestamps and tickers jitter, so a
// display refresh can measure slightly under one step.
const frameSlack = 0.1

// Runner drives a Game from a Scheduler with a fixed timestep. Frames
// arriving more than frameSlack of a step early are skipped, so one
// display refresh at the nominal rate yields one tick.
type Runner struct {
	Game  *Game
	Input InputSource

	// FrameDuration is the nominal ms between ticks.
	FrameDuration float64
	// OnFrame is called on every scheduled frame, ticked or not.
	OnFrame func(now float64)
	// OnEnd is called once when the session leaves the playing phase.
	OnEnd func(phase Phase, err error)

	sched     Scheduler
	running   bool
	gen       int
	lastFrame float64
	started   bool
}

// NewRunner creates a stopped runner.
func NewRunner(g *Game, in InputSource, sched Scheduler) *Runner {
	return &Runner{
		Game:          g,
		Input:         in,
		FrameDuration: FrameDuration,
		sched:         sched,
	}
}

// Running reports whether the loop is scheduling frames.
func (r *Runner) Running() bool { return r.running }

// Start begins scheduling frames. Calling Start while running is a no-op.
func (r *Runner) Start() {
	if r.running {
		return
	}
	r.running = true
	r.started = false
	r.gen++
	r.schedule()
}

// Stop halts the loop after the current frame. A frame already requested
// from the scheduler is dropped when it arrives.
func (r *Runner) Stop() {
	r.running = false
}

// Restart begins a new session and starts the loop.
func (r *Runner) Restart(opts Options) error {
	if err := r.Game.Start(opts); err != nil {
		return errors.Wrap(err, "restart")
	}
	r.Start()
	return nil
}

func (r *Runner) schedule() {
	gen := r.gen
	r.sched.RequestFrame(func(now float64) {
		r.frame(gen, now)
	})
}

func (r *Runner) frame(gen int, now float64) {
	if !r.running || gen != r.gen {
		return
	}

	if r.OnFrame != nil {
		r.OnFrame(now)
	}

	// Fixed timestep
	if r.started && now-r.lastFrame < r.FrameDuration*(1-frameSlack) {
		r.schedule()
		return
	}
	r.started = true
	r.lastFrame = now

	var in Input
	if r.Input != nil {
		in = r.Input.Sample()
	}
	err := r.Game.Tick(in)

	if r.Game.Phase() != PhasePlaying {
		r.running = false
		if r.OnEnd != nil {
			r.OnEnd(r.Game.Phase(), err)
		}
		return
	}
	if r.running {
		r.schedule()
	}
}

// ManualScheduler queues frame callbacks until Advance runs them. Headless
// hosts and tests use it to step the loop deterministically.
type ManualScheduler struct {
	pending []func(now float64)
	now     float64
}

// RequestFrame queues fn.
func (m *ManualScheduler) RequestFrame(fn func(now float64)) {
	m.pending = append(m.pending, fn)
}

// Pending returns the number of queued callbacks.
func (m *ManualScheduler) Pending() int { return len(m.pending) }

// Now returns the timestamp of the last frame delivered.
func (m *ManualScheduler) Now() float64 { return m.now }

// Advance moves the clock by dt ms and runs the callbacks queued so far.
// Callbacks requested while running wait for the next Advance.
func (m *ManualScheduler) Advance(dt float64) {
	m.now += dt
	batch := m.pending
	m.pending = nil
	for _, fn := range batch {
		fn(m.now)
	}
}
