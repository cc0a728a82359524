package game

import (
	"math"
	"testing"
)

func TestTranslateKeyCode_MapsAlternatives(t *testing.T) {
	cases := map[int]Control{
		87: ControlUp,    // W
		83: ControlDown,  // S
		65: ControlLeft,  // A
		68: ControlRight, // D
		38: ControlUp,    // Up arrow
		32: ControlSpecial,
		27: ControlPause,
		13: ControlStart,
	}
	for code, want := range cases {
		got, ok := TranslateKeyCode(code)
		if !ok || got != want {
			t.Errorf("Key %d: expected %d, got %d (ok=%v)", code, want, got, ok)
		}
	}
}

func TestTranslateKeyCode_UnmappedKey(t *testing.T) {
	if _, ok := TranslateKeyCode(112); ok {
		t.Error("Expected F1 to be unmapped")
	}
}

func TestInputState_HeldKeys(t *testing.T) {
	var s InputState
	s.KeyDown(87)
	s.KeyDown(39)

	in := s.Sample()
	if !in.Up || !in.Right || in.Down || in.Left {
		t.Errorf("Expected up+right held, got %+v", in)
	}

	s.KeyUp(87)
	if in = s.Sample(); in.Up {
		t.Error("Expected up released")
	}
}

// TestInputState_ClickEdge tests that a click fires once and a held
// button keeps auto-fire on
func TestInputState_ClickEdge(t *testing.T) {
	var s InputState
	s.PointerDown()

	in := s.Sample()
	if !in.Fire || !in.FireHeld {
		t.Errorf("Expected click and hold, got %+v", in)
	}
	in = s.Sample()
	if in.Fire || !in.FireHeld {
		t.Errorf("Expected click consumed and hold kept, got %+v", in)
	}

	s.PointerUp()
	if in = s.Sample(); in.FireHeld {
		t.Error("Expected hold released")
	}
}

// TestInputState_SpecialLatched tests that a tap between ticks is kept
func TestInputState_SpecialLatched(t *testing.T) {
	var s InputState
	s.KeyDown(32)
	s.KeyUp(32)

	if in := s.Sample(); !in.Special {
		t.Error("Expected latched special")
	}
	if in := s.Sample(); in.Special {
		t.Error("Expected special consumed")
	}
}

func TestInputState_StartAndPause(t *testing.T) {
	var s InputState
	s.KeyDown(13)
	s.KeyDown(80)

	if !s.ConsumeStart() || s.ConsumeStart() {
		t.Error("Expected a single start request")
	}
	if !s.ConsumePause() || s.ConsumePause() {
		t.Error("Expected a single pause toggle")
	}
}

func TestInputState_LookClampsPitch(t *testing.T) {
	var s InputState
	s.Look(100, -100000, LookSensitivity)

	yaw, pitch := s.View()
	if !approx(yaw, 0.2) {
		t.Errorf("Expected yaw 0.2, got %f", yaw)
	}
	if pitch != MaxPitch {
		t.Errorf("Expected pitch clamped to %f, got %f", MaxPitch, pitch)
	}
	if in := s.Sample(); in.Yaw != yaw || math.Abs(in.Pitch) > MaxPitch {
		t.Errorf("Expected sample to carry the view, got %+v", in)
	}
}

func TestInputState_ResetKeepsView(t *testing.T) {
	var s InputState
	s.SetView(1, 0.5)
	s.KeyDown(87)
	s.PointerDown()
	s.Reset()

	in := s.Sample()
	if in.Up || in.Fire || in.FireHeld {
		t.Errorf("Expected controls cleared, got %+v", in)
	}
	if in.Yaw != 1 || in.Pitch != 0.5 {
		t.Errorf("Expected view preserved, got yaw %f pitch %f", in.Yaw, in.Pitch)
	}
}
