package obj

// Clip is one named animation: a frame count, playback rate, and loop flag.
// Frames map to a procedural pulse (body scale) and ripple (expanding ring)
// rather than sprite sheet cells.
type Clip struct {
	Name       string
	FrameCount int
	FPS        float64
	Loop       bool
	// PulseAmp scales the body: scale = 1 + PulseAmp*sin(progress*pi).
	PulseAmp float64
	// RippleTo is the ring radius reached at the clip's end; 0 disables it.
	RippleTo float64
}

// Animator plays named clips triggered fire-and-forget. Unknown trigger
// names are ignored. A non-looping clip holds its last frame and stops.
type Animator struct {
	Clips   map[string]Clip
	Current string
	Frame   int
	Playing bool

	frameTimer int
}

func NewAnimator() *Animator {
	return &Animator{Clips: defaultClips()}
}

func defaultClips() map[string]Clip {
	return map[string]Clip{
		"focus":  {Name: "focus", FrameCount: 18, FPS: 30, PulseAmp: 0.25, RippleTo: 26},
		"reveal": {Name: "reveal", FrameCount: 24, FPS: 24, PulseAmp: 0.1},
	}
}

// Trigger starts the named clip from frame zero. Fire-and-forget: callers
// never wait on clip completion.
func (a *Animator) Trigger(name string) {
	if _, ok := a.Clips[name]; !ok {
		return
	}
	a.Current = name
	a.Frame = 0
	a.frameTimer = 0
	a.Playing = true
}

// Update advances the current clip. Frame rate converts from the clip FPS
// against the 60 TPS update loop.
func (a *Animator) Update() {
	if !a.Playing {
		return
	}
	def, ok := a.Clips[a.Current]
	if !ok || def.FrameCount <= 0 {
		a.Playing = false
		return
	}

	ticksPerFrame := int(60.0 / def.FPS)
	if ticksPerFrame < 1 {
		ticksPerFrame = 1
	}

	a.frameTimer++
	if a.frameTimer < ticksPerFrame {
		return
	}
	a.frameTimer = 0
	a.Frame++
	if a.Frame >= def.FrameCount {
		if def.Loop {
			a.Frame = 0
		} else {
			a.Frame = def.FrameCount - 1
			a.Playing = false
		}
	}
}

// Scale returns the body scale factor for the current frame (1 when idle).
func (a *Animator) Scale() float64 {
	if !a.Playing {
		return 1
	}
	def, ok := a.Clips[a.Current]
	if !ok || def.FrameCount <= 1 || def.PulseAmp == 0 {
		return 1
	}
	p := float64(a.Frame) / float64(def.FrameCount-1)
	// half sine: swells then settles back over the clip
	return 1 + def.PulseAmp*halfSine(p)
}

// RingRadius returns the ripple ring radius for the current frame, 0 if the
// clip has no ripple or nothing is playing.
func (a *Animator) RingRadius() float64 {
	if !a.Playing {
		return 0
	}
	def, ok := a.Clips[a.Current]
	if !ok || def.FrameCount <= 1 || def.RippleTo <= 0 {
		return 0
	}
	p := float64(a.Frame) / float64(def.FrameCount-1)
	return def.RippleTo * p
}

// halfSine is the parabola with the same endpoints and peak as sin(pi*p).
func halfSine(p float64) float64 {
	return 4 * p * (1 - p)
}
