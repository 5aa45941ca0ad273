package obj

import (
	"image/color"
	"testing"
)

func hitTank(positions ...[2]float64) (*HitWorld, []*Critter) {
	hw := NewHitWorld()
	var critters []*Critter
	for _, p := range positions {
		c := NewCritter("c", p[0], p[1], 15, 2, color.NRGBA{A: 0xff}, "", CritterConfig{Hits: hw})
		critters = append(critters, c)
	}
	return hw, critters
}

func TestHitWorldPointQuery(t *testing.T) {
	hw, critters := hitTank([2]float64{100, 100}, [2]float64{300, 100})

	cases := []struct {
		name string
		x, y float64
		want *Critter
	}{
		{"center_first", 100, 100, critters[0]},
		{"center_second", 300, 100, critters[1]},
		{"edge_within_slop", 100 + 15 + 3, 100, critters[0]},
		{"beyond_slop", 100 + 15 + 10, 100, nil},
		{"open_water", 200, 400, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := hw.CritterAt(c.x, c.y); got != c.want {
				t.Fatalf("CritterAt(%v, %v) = %v, want %v", c.x, c.y, got, c.want)
			}
		})
	}
}

func TestHitWorldSyncFollowsCritter(t *testing.T) {
	hw, critters := hitTank([2]float64{100, 100})
	c := critters[0]

	c.X, c.Y = 250, 180
	hw.Sync(c)

	if hw.CritterAt(100, 100) != nil {
		t.Fatalf("stale position still hit-testable after Sync")
	}
	if hw.CritterAt(250, 180) != c {
		t.Fatalf("new position not hit-testable after Sync")
	}
}

func TestHitWorldRemove(t *testing.T) {
	hw, critters := hitTank([2]float64{100, 100})
	hw.Remove(critters[0])
	if hw.CritterAt(100, 100) != nil {
		t.Fatalf("removed critter still hit-testable")
	}
	// Removing twice is a no-op.
	hw.Remove(critters[0])
}
