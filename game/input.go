package game

import "math"

// Control is a canonical game control a host key maps to.
type Control int

const (
	ControlNone Control = iota
	ControlUp
	ControlDown
	ControlLeft
	ControlRight
	ControlFire
	ControlSpecial
	ControlPause
	ControlStart
	controlCount
)

// KeyMap maps browser key codes to controls.
var KeyMap = map[int]Control{
	13: ControlStart,   // Enter
	27: ControlPause,   // Esc
	32: ControlSpecial, // Space
	37: ControlLeft,    // Left arrow
	38: ControlUp,      // Up arrow
	39: ControlRight,   // Right arrow
	40: ControlDown,    // Down arrow
	50: ControlDown,    // 2
	52: ControlLeft,    // 4
	54: ControlRight,   // 6
	56: ControlUp,      // 8
	65: ControlLeft,    // A
	68: ControlRight,   // D
	69: ControlSpecial, // E
	73: ControlUp,      // I
	74: ControlLeft,    // J
	75: ControlDown,    // K
	76: ControlRight,   // L
	80: ControlPause,   // P
	82: ControlStart,   // R
	83: ControlDown,    // S
	87: ControlUp,      // W
	88: ControlFire,    // X
	90: ControlFire,    // Z
}

// TranslateKeyCode converts a key code to its control.
func TranslateKeyCode(keyCode int) (Control, bool) {
	c, ok := KeyMap[keyCode]
	return c, ok
}

// Input is the snapshot of player intent consumed by one tick.
type Input struct {
	Up, Down, Left, Right bool

	// FireHeld requests auto-fire; Fire is a single click edge.
	FireHeld bool
	Fire     bool
	Special  bool

	// AimX, AimY are the pointer position in arena coordinates.
	AimX, AimY float64
	// Yaw, Pitch are the survival view angles in radians.
	Yaw, Pitch float64
}

// InputState accumulates host events between ticks. Hosts call the event
// methods from their callbacks and the loop calls Sample once per tick.
type InputState struct {
	held [controlCount]bool

	aimX, aimY float64
	yaw, pitch float64

	pointerDown bool
	clicks      int
	specials    int
	starts      int
	pauses      int
}

// Press marks control c as held. Special, start and pause are latched as
// edges so a tap between two ticks is not lost.
func (s *InputState) Press(c Control) {
	if c <= ControlNone || c >= controlCount {
		return
	}
	if !s.held[c] {
		switch c {
		case ControlSpecial:
			s.specials++
		case ControlStart:
			s.starts++
		case ControlPause:
			s.pauses++
		}
	}
	s.held[c] = true
}

// Release clears control c.
func (s *InputState) Release(c Control) {
	if c <= ControlNone || c >= controlCount {
		return
	}
	s.held[c] = false
}

// Held reports whether control c is down.
func (s *InputState) Held(c Control) bool {
	if c <= ControlNone || c >= controlCount {
		return false
	}
	return s.held[c]
}

// KeyDown translates and presses a key code. Returns false for unmapped keys.
func (s *InputState) KeyDown(keyCode int) bool {
	c, ok := TranslateKeyCode(keyCode)
	if ok {
		s.Press(c)
	}
	return ok
}

// KeyUp translates and releases a key code.
func (s *InputState) KeyUp(keyCode int) bool {
	c, ok := TranslateKeyCode(keyCode)
	if ok {
		s.Release(c)
	}
	return ok
}

// SetPointer records the aim point in arena coordinates.
func (s *InputState) SetPointer(x, y float64) {
	s.aimX, s.aimY = x, y
}

// PointerDown starts a click and holds fire until PointerUp.
func (s *InputState) PointerDown() {
	s.pointerDown = true
	s.clicks++
}

// PointerUp releases the held fire.
func (s *InputState) PointerUp() {
	s.pointerDown = false
}

// Look turns the survival view by a pointer-lock movement delta. Moving
// right turns toward the strafe-right direction; moving up looks up.
func (s *InputState) Look(dx, dy, sensitivity float64) {
	s.yaw += dx * sensitivity
	s.pitch -= dy * sensitivity
	s.pitch = math.Max(-MaxPitch, math.Min(MaxPitch, s.pitch))
}

// SetView sets the survival view angles directly.
func (s *InputState) SetView(yaw, pitch float64) {
	s.yaw = yaw
	s.pitch = math.Max(-MaxPitch, math.Min(MaxPitch, pitch))
}

// View returns the current survival view angles.
func (s *InputState) View() (yaw, pitch float64) {
	return s.yaw, s.pitch
}

// ConsumeStart reports and clears a pending start request.
func (s *InputState) ConsumeStart() bool {
	if s.starts == 0 {
		return false
	}
	s.starts = 0
	return true
}

// ConsumePause reports and clears a pending pause toggle.
func (s *InputState) ConsumePause() bool {
	if s.pauses == 0 {
		return false
	}
	s.pauses = 0
	return true
}

// Reset drops every held control and pending edge.
func (s *InputState) Reset() {
	yaw, pitch := s.yaw, s.pitch
	*s = InputState{yaw: yaw, pitch: pitch}
}

// Sample returns the input for one tick and consumes the click and special
// edges.
func (s *InputState) Sample() Input {
	in := Input{
		Up:       s.held[ControlUp],
		Down:     s.held[ControlDown],
		Left:     s.held[ControlLeft],
		Right:    s.held[ControlRight],
		FireHeld: s.pointerDown || s.held[ControlFire],
		Fire:     s.clicks > 0,
		Special:  s.specials > 0,
		AimX:     s.aimX,
		AimY:     s.aimY,
		Yaw:      s.yaw,
		Pitch:    s.pitch,
	}
	s.clicks = 0
	s.specials = 0
	return in
}
