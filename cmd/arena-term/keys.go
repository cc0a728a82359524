package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/simukka/arena-blaster/game"
)

// holdTime is how long a key counts as held after its last press.
// Terminals report repeats but never releases.
const holdTime = 150 * time.Millisecond

// Browser key codes for tcell special keys.
var specialKeyCodes = map[tcell.Key]int{
	tcell.KeyEnter:  13,
	tcell.KeyEscape: 27,
	tcell.KeyLeft:   37,
	tcell.KeyUp:     38,
	tcell.KeyRight:  39,
	tcell.KeyDown:   40,
}

// keyCode converts a tcell key event to the browser key code game.KeyMap
// understands. Letters map to their upper-case code.
func keyCode(ev *tcell.EventKey) (int, bool) {
	if ev.Key() != tcell.KeyRune {
		code, ok := specialKeyCodes[ev.Key()]
		return code, ok
	}
	r := ev.Rune()
	switch {
	case r >= 'a' && r <= 'z':
		return int(r - 'a' + 'A'), true
	case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == ' ':
		return int(r), true
	}
	return 0, false
}

// holdTracker releases controls whose key has not repeated recently.
type holdTracker struct {
	input   *game.InputState
	expires map[game.Control]time.Time
}

func newHoldTracker(in *game.InputState) *holdTracker {
	return &holdTracker{input: in, expires: make(map[game.Control]time.Time)}
}

// Press presses the control for code and extends its hold.
func (h *holdTracker) Press(code int, now time.Time) (game.Control, bool) {
	c, ok := game.TranslateKeyCode(code)
	if !ok {
		return game.ControlNone, false
	}
	h.input.Press(c)
	h.expires[c] = now.Add(holdTime)
	return c, true
}

// Expire releases every control not pressed within holdTime of now.
func (h *holdTracker) Expire(now time.Time) {
	for c, at := range h.expires {
		if !now.Before(at) {
			h.input.Release(c)
			delete(h.expires, c)
		}
	}
}

// Reset drops all holds.
func (h *holdTracker) Reset() {
	h.input.Reset()
	clear(h.expires)
}
