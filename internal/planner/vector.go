package planner

import "math"

// Vec2 is a 2D point or direction on the table plane, in millimetres.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Plus(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Minus(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Times(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the signed z-component of the 2D cross product.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

func (v Vec2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vec2) Normalize() Vec2 {
	m := v.Magnitude()
	if m == 0 {
		return Vec2{}
	}
	return v.Times(1.0 / m)
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// IsEqualTo compares coordinates exactly. Obstruction checks rely on exact
// equality to skip a path's own endpoints; near-coincident points must NOT
// be treated as equal.
func (v Vec2) IsEqualTo(o Vec2) bool {
	return v.X == o.X && v.Y == o.Y
}

// PerpDistance returns the signed distance from point p to the infinite line
// through origin with direction dir. Callers compare the absolute value
// against the clearance radius. A zero-length dir yields 0.
func PerpDistance(dir, origin, p Vec2) float64 {
	m := dir.Magnitude()
	if m == 0 {
		return 0
	}
	return dir.Cross(p.Minus(origin)) / m
}

// CosAngle returns the cosine of the angle between a and b. ok is false when
// either vector has zero length; the angle is undefined then and the caller
// must drop the candidate rather than compare the value.
func CosAngle(a, b Vec2) (cos float64, ok bool) {
	denom := a.Magnitude() * b.Magnitude()
	if denom == 0 {
		return 0, false
	}
	cos = a.Dot(b) / denom
	// Clamp to [-1, 1] to avoid NaN from acos
	if cos > 1 {
		cos = 1
	}
	if cos < -1 {
		cos = -1
	}
	return cos, true
}
