package common

import (
	"math"
	"testing"
)

func TestMoveToward(t *testing.T) {
	cases := []struct {
		name          string
		x, y, tx, ty  float64
		step          float64
		wantX, wantY  float64
		wantRemaining float64
	}{
		{"partial_step", 0, 0, 10, 0, 4, 4, 0, 6},
		{"overshoot_snaps", 0, 0, 3, 0, 10, 3, 0, 0},
		{"already_there", 5, 5, 5, 5, 2, 5, 5, 0},
		{"diagonal", 0, 0, 3, 4, 5, 3, 4, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			gx, gy, rem := MoveToward(c.x, c.y, c.tx, c.ty, c.step)
			if math.Abs(gx-c.wantX) > 1e-9 || math.Abs(gy-c.wantY) > 1e-9 {
				t.Fatalf("pos = (%v, %v), want (%v, %v)", gx, gy, c.wantX, c.wantY)
			}
			if math.Abs(rem-c.wantRemaining) > 1e-9 {
				t.Fatalf("remaining = %v, want %v", rem, c.wantRemaining)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Fatalf("Clamp(-1) = %v", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Fatalf("Clamp(11) = %v", got)
	}
	if got := Clamp(5, 0, 10); got != 5 {
		t.Fatalf("Clamp(5) = %v", got)
	}
}
