package fx

import (
	"math"

	"github.com/simukka/arena-blaster/game"
)

// NearPlane is the closest view depth that is still projected.
const NearPlane = 0.1

// Camera is a first-person pinhole projection of survival space onto a
// width x height surface, looking along game.ViewDir(Yaw, Pitch).
type Camera struct {
	Pos    game.Vec
	Yaw    float64
	Pitch  float64
	Width  float64
	Height float64
	Focal  float64
}

// NewCamera builds a camera with a vertical field of view in degrees.
func NewCamera(width, height, fovDeg float64) *Camera {
	return &Camera{
		Width:  width,
		Height: height,
		Focal:  height / (2 * math.Tan(fovDeg*math.Pi/360)),
	}
}

// View converts p into camera space: x right, y up, z forward.
func (c *Camera) View(p game.Vec) (x, y, z float64) {
	rel := p.Sub(c.Pos)
	sy, cy := math.Sincos(c.Yaw)
	x = rel.X*cy - rel.Z*sy
	fwd := rel.X*sy + rel.Z*cy

	sp, cp := math.Sincos(c.Pitch)
	z = fwd*cp + rel.Y*sp
	y = rel.Y*cp - fwd*sp
	return x, y, z
}

// Project maps p to screen coordinates. ok is false behind the near plane.
func (c *Camera) Project(p game.Vec) (sx, sy, depth float64, ok bool) {
	x, y, z := c.View(p)
	if z < NearPlane {
		return 0, 0, z, false
	}
	return c.Width/2 + c.Focal*x/z, c.Height/2 - c.Focal*y/z, z, true
}

// Scale is the on-screen size of one world unit at depth.
func (c *Camera) Scale(depth float64) float64 {
	return c.Focal / depth
}

// Horizon is the screen row of the ground plane's vanishing line.
func (c *Camera) Horizon() float64 {
	return c.Height/2 + c.Focal*math.Tan(c.Pitch)
}

// Segment projects the world segment a-b, clipped to the near plane.
func (c *Camera) Segment(a, b game.Vec) (x0, y0, x1, y1 float64, ok bool) {
	ax, ay, az := c.View(a)
	bx, by, bz := c.View(b)
	if az < NearPlane && bz < NearPlane {
		return 0, 0, 0, 0, false
	}
	if az < NearPlane {
		t := (NearPlane - az) / (bz - az)
		ax, ay, az = ax+(bx-ax)*t, ay+(by-ay)*t, NearPlane
	} else if bz < NearPlane {
		t := (NearPlane - bz) / (az - bz)
		bx, by, bz = bx+(ax-bx)*t, by+(ay-by)*t, NearPlane
	}
	x0 = c.Width/2 + c.Focal*ax/az
	y0 = c.Height/2 - c.Focal*ay/az
	x1 = c.Width/2 + c.Focal*bx/bz
	y1 = c.Height/2 - c.Focal*by/bz
	return x0, y0, x1, y1, true
}

// FogAlpha fades objects linearly between near and far distances.
func FogAlpha(dist, near, far float64) float64 {
	if dist <= near {
		return 1
	}
	if dist >= far {
		return 0
	}
	return 1 - (dist-near)/(far-near)
}
