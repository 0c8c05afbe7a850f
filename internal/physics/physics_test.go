package physics

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	got := Distance(Vec2{X: 0, Y: 0}, Vec2{X: 3, Y: 4})
	if got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestVec2_AddSub(t *testing.T) {
	a, b := Vec2{X: 5, Y: -2}, Vec2{X: 1, Y: 3}
	if got := a.Sub(b); got != (Vec2{X: 4, Y: -5}) {
		t.Errorf("Sub = %v, want {4 -5}", got)
	}
	if got := a.Sub(b).Add(b); got != a {
		t.Errorf("Sub then Add = %v, want %v", got, a)
	}
}

func TestPointInCircle_Boundary(t *testing.T) {
	center := Vec2{X: 100, Y: 100}
	const radius = 60.0
	const eps = 1e-6

	if !PointInCircle(Vec2{X: 100 + radius - eps, Y: 100}, center, radius) {
		t.Error("point just inside radius should hit")
	}
	if !PointInCircle(Vec2{X: 100, Y: 100 + radius}, center, radius) {
		t.Error("point exactly on radius should hit")
	}
	if PointInCircle(Vec2{X: 100 + radius + eps, Y: 100}, center, radius) {
		t.Error("point just outside radius should miss")
	}
}

func TestReflect_InsideIsUntouched(t *testing.T) {
	pos, vel := Reflect(50, 2, 10, 100)
	if pos != 50 || vel != 2 {
		t.Errorf("Reflect = (%v, %v), want (50, 2)", pos, vel)
	}
}

func TestReflect_Walls(t *testing.T) {
	tests := []struct {
		name     string
		pos, vel float64
		wantPos  float64
		wantVel  float64
	}{
		{"past left wall", -3, -2, 0, 2},
		{"touching left wall", 0, -1.5, 0, 1.5},
		{"past right wall", 95, 2, 90, -2},
		{"touching right wall", 90, 1, 90, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, vel := Reflect(tt.pos, tt.vel, 10, 100)
			if pos != tt.wantPos || vel != tt.wantVel {
				t.Errorf("Reflect = (%v, %v), want (%v, %v)", pos, vel, tt.wantPos, tt.wantVel)
			}
		})
	}
}

func TestReflect_AlwaysInBounds(t *testing.T) {
	for pos := -50.0; pos <= 150; pos += 7.5 {
		for _, vel := range []float64{-2, -0.5, 0.5, 2} {
			got, gotVel := Reflect(pos, vel, 10, 100)
			if got < 0 || got > 90 {
				t.Errorf("Reflect(%v, %v) pos = %v, out of [0, 90]", pos, vel, got)
			}
			exceeded := pos <= 0 || pos+10 >= 100
			if exceeded && math.Signbit(gotVel) == math.Signbit(vel) {
				t.Errorf("Reflect(%v, %v) vel = %v, want sign flip", pos, vel, gotVel)
			}
		}
	}
}

func TestClamp_InvertedRange(t *testing.T) {
	if got := Clamp(5, 0, -10); got != 0 {
		t.Errorf("Clamp = %v, want 0", got)
	}
}
