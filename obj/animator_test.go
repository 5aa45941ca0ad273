package obj

import "testing"

func TestAnimatorTrigger(t *testing.T) {
	cases := []struct {
		name        string
		trigger     string
		wantPlaying bool
	}{
		{"known_clip", "focus", true},
		{"other_known_clip", "reveal", true},
		{"unknown_clip_ignored", "explode", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := NewAnimator()
			a.Trigger(c.trigger)
			if a.Playing != c.wantPlaying {
				t.Fatalf("Playing = %v, want %v", a.Playing, c.wantPlaying)
			}
		})
	}
}

func TestAnimatorHoldsLastFrame(t *testing.T) {
	a := NewAnimator()
	a.Trigger("focus")

	def := a.Clips["focus"]
	// Run well past the clip's natural length.
	for i := 0; i < def.FrameCount*10; i++ {
		a.Update()
	}
	if a.Playing {
		t.Fatalf("non-looping clip should stop")
	}
	if a.Frame != def.FrameCount-1 {
		t.Fatalf("Frame = %d, want held at %d", a.Frame, def.FrameCount-1)
	}
	if a.Scale() != 1 {
		t.Fatalf("stopped animator scale = %v, want 1", a.Scale())
	}
	if a.RingRadius() != 0 {
		t.Fatalf("stopped animator ring = %v, want 0", a.RingRadius())
	}
}

func TestAnimatorPulsePeaksMidClip(t *testing.T) {
	a := NewAnimator()
	a.Trigger("focus")

	def := a.Clips["focus"]
	maxScale := 1.0
	for i := 0; i < def.FrameCount*10 && a.Playing; i++ {
		if s := a.Scale(); s > maxScale {
			maxScale = s
		}
		a.Update()
	}
	want := 1 + def.PulseAmp
	if maxScale < want-0.05 {
		t.Fatalf("peak scale = %v, want about %v", maxScale, want)
	}
}

func TestAnimatorRetrigger(t *testing.T) {
	a := NewAnimator()
	a.Trigger("focus")
	for i := 0; i < 30; i++ {
		a.Update()
	}
	a.Trigger("reveal")
	if a.Current != "reveal" || a.Frame != 0 || !a.Playing {
		t.Fatalf("retrigger should restart on the new clip: %+v", a)
	}
}
