//go:build js
// +build js

package web

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/arena-blaster/game"
)

// Raw key codes handled by the host itself.
const (
	keyFullscreen = 70  // F
	keyStats      = 121 // F10
)

// BindInput routes document and canvas events into the app's input state.
func (a *App) BindInput() {
	doc := js.Global.Get("document")

	doc.Call("addEventListener", "keydown", func(event *js.Object) {
		raw := event.Get("keyCode").Int()

		// Stats overlay toggle
		if raw == keyStats {
			a.Overlay.Toggle()
			event.Call("preventDefault")
			return
		}
		if raw == keyFullscreen {
			requestFullscreen(a.Canvas)
			return
		}

		if !a.Input.KeyDown(raw) {
			return
		}
		// Keep arrows and space from scrolling the page
		if c, _ := game.TranslateKeyCode(raw); c != game.ControlStart {
			event.Call("preventDefault")
		}
		a.handleEdges()
	})

	doc.Call("addEventListener", "keyup", func(event *js.Object) {
		a.Input.KeyUp(event.Get("keyCode").Int())
	})

	a.Canvas.Call("addEventListener", "mousemove", func(event *js.Object) {
		if a.pointerLocked() {
			a.Input.Look(event.Get("movementX").Float(), event.Get("movementY").Float(), game.LookSensitivity)
			return
		}
		x, y := a.canvasPoint(event)
		a.Input.SetPointer(x, y)
	})

	a.Canvas.Call("addEventListener", "mousedown", func(event *js.Object) {
		if a.Game.Phase().Terminal() {
			a.Restart()
			return
		}
		if a.mode == game.ModeSurvival && !a.pointerLocked() {
			a.Canvas.Call("requestPointerLock")
			return
		}
		x, y := a.canvasPoint(event)
		a.Input.SetPointer(x, y)
		a.Input.PointerDown()
	})

	doc.Call("addEventListener", "mouseup", func(*js.Object) {
		a.Input.PointerUp()
	})

	// Dropping focus releases every held control
	js.Global.Call("addEventListener", "blur", func(*js.Object) {
		a.Input.Reset()
	})
}

// handleEdges applies pause and restart requests, which act even while
// the loop is stopped.
func (a *App) handleEdges() {
	if a.Input.ConsumeStart() {
		if ph := a.Game.Phase(); ph.Terminal() || ph == game.PhaseMenu {
			a.Restart()
		}
	}
	if a.Input.ConsumePause() && a.Game.Phase() == game.PhasePlaying {
		a.TogglePause()
	}
}

// canvasPoint converts a mouse event to canvas coordinates.
func (a *App) canvasPoint(event *js.Object) (float64, float64) {
	rect := a.Canvas.Call("getBoundingClientRect")
	w := rect.Get("width").Float()
	h := rect.Get("height").Float()
	if w == 0 || h == 0 {
		return 0, 0
	}
	x := (event.Get("clientX").Float() - rect.Get("left").Float()) * a.Canvas.Get("width").Float() / w
	y := (event.Get("clientY").Float() - rect.Get("top").Float()) * a.Canvas.Get("height").Float() / h
	return x, y
}

func (a *App) pointerLocked() bool {
	el := js.Global.Get("document").Get("pointerLockElement")
	return el != nil && el != js.Undefined && el == a.Canvas
}

func requestFullscreen(canvas *js.Object) {
	for _, fn := range []string{"requestFullscreen", "webkitRequestFullscreen", "mozRequestFullScreen"} {
		if f := canvas.Get(fn); f != nil && f != js.Undefined {
			canvas.Call(fn)
			return
		}
	}
}
