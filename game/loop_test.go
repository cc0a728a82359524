package game

import "testing"

func newTestRunner(t *testing.T) (*Runner, *ManualScheduler, *InputState) {
	t.Helper()
	sched := &ManualScheduler{}
	in := &InputState{}
	r := NewRunner(NewGame(), in, sched)
	if err := r.Restart(Options{Mode: ModeArena, Seed: 5}); err != nil {
		t.Fatalf("Restart failed: %v", err)
	}
	r.Game.director = idleDirector{}
	r.Game.Combatants = nil
	return r, sched, in
}

// TestRunner_FixedStep tests that early frames are skipped
func TestRunner_FixedStep(t *testing.T) {
	r, sched, _ := newTestRunner(t)

	sched.Advance(FrameDuration)
	if r.Game.Ticks() != 1 {
		t.Fatalf("Expected first frame to tick, got %d ticks", r.Game.Ticks())
	}

	sched.Advance(5)
	if r.Game.Ticks() != 1 {
		t.Errorf("Expected early frame skipped, got %d ticks", r.Game.Ticks())
	}
	if sched.Pending() != 1 {
		t.Errorf("Expected skipped frame to reschedule, got %d pending", sched.Pending())
	}

	sched.Advance(12)
	if r.Game.Ticks() != 2 {
		t.Errorf("Expected second tick after a full step, got %d", r.Game.Ticks())
	}
}

// TestRunner_CoarseTimestamps tests one tick per refresh when frame
// timestamps are rounded to whole milliseconds
func TestRunner_CoarseTimestamps(t *testing.T) {
	r, sched, _ := newTestRunner(t)

	last := 0.0
	for i := 1; i <= 60; i++ {
		now := float64(i * 1000 / 60)
		sched.Advance(now - last)
		last = now
	}
	if r.Game.Ticks() != 60 {
		t.Errorf("Expected 60 ticks for 60 refreshes, got %d", r.Game.Ticks())
	}
}

// TestRunner_JitteredTicker tests alternating 16 and 17ms deltas
func TestRunner_JitteredTicker(t *testing.T) {
	r, sched, _ := newTestRunner(t)

	for i := 0; i < 30; i++ {
		sched.Advance(16)
		sched.Advance(17)
	}
	if r.Game.Ticks() != 60 {
		t.Errorf("Expected 60 ticks, got %d", r.Game.Ticks())
	}

	sched.Advance(8)
	if r.Game.Ticks() != 60 {
		t.Errorf("Expected a half-step frame skipped, got %d ticks", r.Game.Ticks())
	}
}

// TestRunner_Stop tests that a stopped runner drops its pending frame
func TestRunner_Stop(t *testing.T) {
	r, sched, _ := newTestRunner(t)

	r.Stop()
	sched.Advance(FrameDuration)

	if r.Game.Ticks() != 0 {
		t.Errorf("Expected no tick after Stop, got %d", r.Game.Ticks())
	}
	if sched.Pending() != 0 {
		t.Errorf("Expected nothing rescheduled, got %d", sched.Pending())
	}
}

// TestRunner_StartIdempotent tests that Start while running does not
// schedule a second chain
func TestRunner_StartIdempotent(t *testing.T) {
	r, sched, _ := newTestRunner(t)
	r.Start()
	if sched.Pending() != 1 {
		t.Errorf("Expected 1 pending frame, got %d", sched.Pending())
	}
}

// TestRunner_StopStartDropsStaleFrame tests that a frame requested before
// a Stop does not tick alongside the new chain
func TestRunner_StopStartDropsStaleFrame(t *testing.T) {
	r, sched, _ := newTestRunner(t)
	r.Stop()
	r.Start()

	sched.Advance(FrameDuration)

	if r.Game.Ticks() != 1 {
		t.Errorf("Expected exactly 1 tick, got %d", r.Game.Ticks())
	}
	if sched.Pending() != 1 {
		t.Errorf("Expected a single chain, got %d pending", sched.Pending())
	}
}

// TestRunner_StopsOnTerminal tests the loop ends with the session
func TestRunner_StopsOnTerminal(t *testing.T) {
	r, sched, _ := newTestRunner(t)
	var ended Phase
	calls := 0
	r.OnEnd = func(p Phase, err error) {
		ended = p
		calls++
	}

	r.Game.Player.Health = 5
	addShot(r.Game, r.Game.Player.Pos, FactionHostile, 15)
	sched.Advance(FrameDuration)

	if r.Running() || calls != 1 || ended != PhaseGameOver {
		t.Errorf("Expected loop stopped on game over, running=%v calls=%d phase=%s", r.Running(), calls, ended)
	}
	if sched.Pending() != 0 {
		t.Errorf("Expected no frame after game over, got %d", sched.Pending())
	}
}

// TestRunner_StopsOnHalt tests that a faulting tick stops the loop
func TestRunner_StopsOnHalt(t *testing.T) {
	r, sched, _ := newTestRunner(t)
	var gotErr error
	r.OnEnd = func(p Phase, err error) { gotErr = err }
	r.Game.SetRenderer(RendererFunc(func(*Snapshot) { panic("render failed") }))

	sched.Advance(FrameDuration)

	if r.Running() || r.Game.Phase() != PhaseHalted {
		t.Errorf("Expected halted and stopped, phase %s running %v", r.Game.Phase(), r.Running())
	}
	if gotErr == nil {
		t.Error("Expected OnEnd to receive the halt error")
	}
}

// TestRunner_SamplesInput tests that input reaches the tick
func TestRunner_SamplesInput(t *testing.T) {
	r, sched, in := newTestRunner(t)
	start := r.Game.Player.Pos.X

	in.KeyDown(68) // D
	sched.Advance(FrameDuration)

	if r.Game.Player.Pos.X <= start {
		t.Errorf("Expected player to move right from %f, got %f", start, r.Game.Player.Pos.X)
	}
}
