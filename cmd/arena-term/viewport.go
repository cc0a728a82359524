package main

import (
	"math"

	"github.com/simukka/arena-blaster/game"
)

// hudRows is the number of screen rows above the play field.
const hudRows = 1

// viewport maps a mode's bounds onto the terminal cells below the HUD.
// Survival is drawn top-down with +Z toward the top of the screen.
type viewport struct {
	bounds game.Bounds
	plane  game.Plane
	cols   int
	rows   int
}

func newViewport(b game.Bounds, plane game.Plane, width, height int) viewport {
	return viewport{
		bounds: b,
		plane:  plane,
		cols:   max(1, width-2),
		rows:   max(1, height-hudRows-2),
	}
}

func (v viewport) axes(p game.Vec) (u, w float64) {
	if v.plane == game.PlaneXZ {
		return (p.X - v.bounds.Min.X) / (v.bounds.Max.X - v.bounds.Min.X),
			(v.bounds.Max.Z - p.Z) / (v.bounds.Max.Z - v.bounds.Min.Z)
	}
	return (p.X - v.bounds.Min.X) / (v.bounds.Max.X - v.bounds.Min.X),
		(p.Y - v.bounds.Min.Y) / (v.bounds.Max.Y - v.bounds.Min.Y)
}

// cell returns the screen cell for p. ok is false outside the field.
func (v viewport) cell(p game.Vec) (col, row int, ok bool) {
	u, w := v.axes(p)
	if u < 0 || u > 1 || w < 0 || w > 1 {
		return 0, 0, false
	}
	col = 1 + min(v.cols-1, int(u*float64(v.cols)))
	row = hudRows + 1 + min(v.rows-1, int(w*float64(v.rows)))
	return col, row, true
}

// world returns the center of screen cell col,row in world space.
func (v viewport) world(col, row int) game.Vec {
	u := (float64(col-1) + 0.5) / float64(v.cols)
	w := (float64(row-hudRows-1) + 0.5) / float64(v.rows)
	u = math.Max(0, math.Min(1, u))
	w = math.Max(0, math.Min(1, w))

	b := v.bounds
	x := b.Min.X + u*(b.Max.X-b.Min.X)
	if v.plane == game.PlaneXZ {
		return game.Vec{X: x, Z: b.Max.Z - w*(b.Max.Z-b.Min.Z)}
	}
	return game.Vec{X: x, Y: b.Min.Y + w*(b.Max.Y-b.Min.Y)}
}

// cellsPer is how many columns one world unit spans.
func (v viewport) cellsPer() float64 {
	return float64(v.cols) / (v.bounds.Max.X - v.bounds.Min.X)
}

// facingGlyph picks an arrow for a heading in the viewport's screen space.
func (v viewport) facingGlyph(angle float64) rune {
	var dx, dy float64
	if v.plane == game.PlaneXZ {
		// Yaw 0 looks down +Z, which is up on screen
		dx, dy = math.Sin(angle), -math.Cos(angle)
	} else {
		dx, dy = math.Cos(angle), math.Sin(angle)
	}
	if math.Abs(dx) >= math.Abs(dy) {
		if dx >= 0 {
			return '>'
		}
		return '<'
	}
	if dy >= 0 {
		return 'v'
	}
	return '^'
}
