package game

import "math"

// Bounds is an axis-aligned box. An axis whose Min equals Max is unbounded.
type Bounds struct {
	Min, Max Vec
}

// Rect returns Arena bounds spanning [0,w] x [0,h].
func Rect(w, h float64) Bounds {
	return Bounds{Max: Vec{X: w, Y: h}}
}

// Square returns Survival bounds spanning [-half,half] on X and Z.
func Square(half float64) Bounds {
	return Bounds{
		Min: Vec{X: -half, Z: -half},
		Max: Vec{X: half, Z: half},
	}
}

// Contains reports whether p lies inside every bounded axis, inclusive.
func (b Bounds) Contains(p Vec) bool {
	return inAxis(p.X, b.Min.X, b.Max.X) &&
		inAxis(p.Y, b.Min.Y, b.Max.Y) &&
		inAxis(p.Z, b.Min.Z, b.Max.Z)
}

// Clamp pulls p inside the bounds shrunk by inset on every bounded axis.
func (b Bounds) Clamp(p Vec, inset float64) Vec {
	p.X = clampAxis(p.X, b.Min.X, b.Max.X, inset)
	p.Y = clampAxis(p.Y, b.Min.Y, b.Max.Y, inset)
	p.Z = clampAxis(p.Z, b.Min.Z, b.Max.Z, inset)
	return p
}

// Reflect mirrors heading against every violated axis of the plane and
// clamps p back inside. The first planar axis maps a to π-a, the second
// maps a to -a. The returned bool reports whether any axis was violated.
func (b Bounds) Reflect(plane Plane, p Vec, heading, inset float64) (Vec, float64, bool) {
	bounced := false
	if outAxis(p.X, b.Min.X, b.Max.X, inset) {
		heading = math.Pi - heading
		bounced = true
	}

	second, lo, hi := p.Y, b.Min.Y, b.Max.Y
	if plane == PlaneXZ {
		second, lo, hi = p.Z, b.Min.Z, b.Max.Z
	}
	if outAxis(second, lo, hi, inset) {
		heading = -heading
		bounced = true
	}

	return b.Clamp(p, inset), heading, bounced
}

func inAxis(v, lo, hi float64) bool {
	if lo == hi {
		return true
	}
	return v >= lo && v <= hi
}

func outAxis(v, lo, hi, inset float64) bool {
	if lo == hi {
		return false
	}
	return v < lo+inset || v > hi-inset
}

func clampAxis(v, lo, hi, inset float64) float64 {
	if lo == hi {
		return v
	}
	return math.Max(lo+inset, math.Min(hi-inset, v))
}
