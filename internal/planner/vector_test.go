package planner

import (
	"math"
	"testing"
)

func TestMagnitude(t *testing.T) {
	if got := NewVec2(3, 4).Magnitude(); got != 5 {
		t.Errorf("|(3,4)| = %.4f, want 5", got)
	}
	if got := (Vec2{}).Magnitude(); got != 0 {
		t.Errorf("|(0,0)| = %.4f, want 0", got)
	}
}

func TestPerpDistanceSigned(t *testing.T) {
	dir := NewVec2(1, 0)
	origin := NewVec2(0, 0)

	if got := PerpDistance(dir, origin, NewVec2(50, 10)); math.Abs(got-10) > 1e-9 {
		t.Errorf("point above the x-axis: got %.4f, want 10", got)
	}
	if got := PerpDistance(dir, origin, NewVec2(50, -10)); math.Abs(got+10) > 1e-9 {
		t.Errorf("point below the x-axis: got %.4f, want -10", got)
	}
	// Zero-length direction degenerates to 0.
	if got := PerpDistance(Vec2{}, origin, NewVec2(50, 10)); got != 0 {
		t.Errorf("degenerate line: got %.4f, want 0", got)
	}
}

func TestCosAngle(t *testing.T) {
	cos, ok := CosAngle(NewVec2(1, 0), NewVec2(0, 1))
	if !ok || math.Abs(cos) > 1e-9 {
		t.Errorf("perpendicular vectors: cos=%.4f ok=%v", cos, ok)
	}

	cos, ok = CosAngle(NewVec2(2, 0), NewVec2(5, 0))
	if !ok || math.Abs(cos-1) > 1e-9 {
		t.Errorf("parallel vectors: cos=%.4f ok=%v", cos, ok)
	}

	if _, ok := CosAngle(Vec2{}, NewVec2(1, 0)); ok {
		t.Error("zero-length input must report an undefined angle")
	}
}
