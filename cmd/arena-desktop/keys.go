package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/simukka/arena-blaster/game"
)

// keyCodes maps ebiten keys to the browser key codes game.KeyMap uses.
var keyCodes = map[ebiten.Key]int{
	ebiten.KeyEnter:      13,
	ebiten.KeyEscape:     27,
	ebiten.KeySpace:      32,
	ebiten.KeyArrowLeft:  37,
	ebiten.KeyArrowUp:    38,
	ebiten.KeyArrowRight: 39,
	ebiten.KeyArrowDown:  40,
	ebiten.Key2:          50,
	ebiten.Key4:          52,
	ebiten.Key6:          54,
	ebiten.Key8:          56,
	ebiten.KeyA:          65,
	ebiten.KeyD:          68,
	ebiten.KeyE:          69,
	ebiten.KeyI:          73,
	ebiten.KeyJ:          74,
	ebiten.KeyK:          75,
	ebiten.KeyL:          76,
	ebiten.KeyP:          80,
	ebiten.KeyR:          82,
	ebiten.KeyS:          83,
	ebiten.KeyW:          87,
	ebiten.KeyX:          88,
	ebiten.KeyZ:          90,
}

// pollKeys forwards this frame's key edges to in.
func pollKeys(in *game.InputState) {
	for k, code := range keyCodes {
		if inpututil.IsKeyJustPressed(k) {
			in.KeyDown(code)
		}
		if inpututil.IsKeyJustReleased(k) {
			in.KeyUp(code)
		}
	}
}

// pollPointer forwards the cursor and left button to in, using proj to map
// the cursor into world space.
func pollPointer(in *game.InputState, proj projector) game.Vec {
	cx, cy := ebiten.CursorPosition()
	p := proj.world(float64(cx), float64(cy))
	in.SetPointer(p.X, p.Y)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.PointerDown()
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		in.PointerUp()
	}
	return p
}
