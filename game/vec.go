package game

import "math"

// Vec is a point or direction. Arena entities live on X/Y with Z = 0.
// Survival entities live on the X/Z ground plane with Y as height.
type Vec struct {
	X, Y, Z float64
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec) Scale(f float64) Vec { return Vec{v.X * f, v.Y * f, v.Z * f} }

// Len returns the Euclidean length.
func (v Vec) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Dist returns the Euclidean distance between two points.
func (v Vec) Dist(o Vec) float64 {
	return v.Sub(o).Len()
}

// DistSq returns the squared distance, for comparisons that skip the sqrt.
func (v Vec) DistSq(o Vec) float64 {
	d := v.Sub(o)
	return d.X*d.X + d.Y*d.Y + d.Z*d.Z
}

// Normalize returns the unit vector in the same direction.
// The zero vector stays zero.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return v.Scale(1 / l)
}

// Plane selects the two axes headings and planar distances are measured on.
type Plane int

const (
	// PlaneXY is the Arena canvas plane: +X right, +Y down.
	PlaneXY Plane = iota
	// PlaneXZ is the Survival ground plane: Y is height.
	PlaneXZ
)

// Dir returns the unit vector for a heading angle in the plane.
func (p Plane) Dir(angle float64) Vec {
	c, s := math.Cos(angle), math.Sin(angle)
	if p == PlaneXZ {
		return Vec{X: c, Z: s}
	}
	return Vec{X: c, Y: s}
}

// Angle returns the heading angle of v projected onto the plane.
func (p Plane) Angle(v Vec) float64 {
	if p == PlaneXZ {
		return math.Atan2(v.Z, v.X)
	}
	return math.Atan2(v.Y, v.X)
}

// Flatten drops the axis perpendicular to the plane.
func (p Plane) Flatten(v Vec) Vec {
	if p == PlaneXZ {
		v.Y = 0
	} else {
		v.Z = 0
	}
	return v
}

// PlanarDist is the distance between a and b ignoring the perpendicular axis.
func (p Plane) PlanarDist(a, b Vec) float64 {
	return p.Flatten(a.Sub(b)).Len()
}

// ViewDir converts a yaw/pitch view into a unit direction in Survival space.
// Yaw 0 looks down +Z; positive pitch looks up.
func ViewDir(yaw, pitch float64) Vec {
	cp := math.Cos(pitch)
	return Vec{
		X: math.Sin(yaw) * cp,
		Y: math.Sin(pitch),
		Z: math.Cos(yaw) * cp,
	}
}
