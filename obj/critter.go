package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hollowmoss/terrarium/common"
	"github.com/hollowmoss/terrarium/interaction"
)

// Critter is one tappable inhabitant of the tank. It wanders while idle;
// when a tap on it is admitted by the gate it runs its interaction sequence:
// drift to the spotlight, then reveal its nameplate. While pending or
// mid-sequence it is locally disabled and physically un-hit-testable.
type Critter struct {
	Name  string
	X, Y  float64
	HomeX float64
	HomeY float64
	// Radius is the tappable surface radius in world pixels.
	Radius float64
	// Speed is the movement budget in pixels per tick.
	Speed float64
	Color color.NRGBA

	// Plate is the nameplate text shown by the reveal.
	Plate string

	enabled bool

	gate   *interaction.Gate
	hits   *HitWorld
	wander *Wander
	anim   *Animator
	seq    *interaction.Sequence

	boundsW float64
	boundsH float64
}

// CritterConfig carries everything a critter needs beyond its spec fields.
type CritterConfig struct {
	Gate      *interaction.Gate
	Hits      *HitWorld
	Overlay   interaction.Overlay
	Reveal    interaction.Revealer
	WanderSrc []byte

	// Spotlight target and sequencing tunables, shared scene-wide.
	TargetX, TargetY  float64
	ArriveThreshold   float64
	RevealDelayFrames int

	BoundsW, BoundsH float64
}

// NewCritter wires a critter into the scene: hit world registration, wander
// behavior, animator, and its interaction sequence.
func NewCritter(name string, x, y, radius, speed float64, clr color.NRGBA, plate string, cfg CritterConfig) *Critter {
	c := &Critter{
		Name:    name,
		X:       x,
		Y:       y,
		HomeX:   x,
		HomeY:   y,
		Radius:  radius,
		Speed:   speed,
		Color:   clr,
		Plate:   plate,
		enabled: true,
		gate:    cfg.Gate,
		hits:    cfg.Hits,
		boundsW: cfg.BoundsW,
		boundsH: cfg.BoundsH,
	}
	c.wander = NewWander(c, cfg.WanderSrc)
	c.anim = NewAnimator()
	c.seq = &interaction.Sequence{
		Anim:              c.anim,
		Motion:            c.wander,
		Overlay:           cfg.Overlay,
		Mover:             c,
		Reveal:            cfg.Reveal,
		FocusClip:         "focus",
		TargetX:           cfg.TargetX,
		TargetY:           cfg.TargetY,
		ArriveThreshold:   cfg.ArriveThreshold,
		RevealDelayFrames: cfg.RevealDelayFrames,
		RevealX:           cfg.TargetX,
		RevealY:           cfg.TargetY - radius - 18,
	}
	if cfg.Hits != nil {
		cfg.Hits.Add(c)
	}
	return c
}

// Enabled reports whether the critter is currently tappable (local flag).
func (c *Critter) Enabled() bool {
	return c.enabled
}

// OnTap is the gesture entry point for a tap at a world coordinate. The
// checks run in strict order: local guard, global gate guard, hit test, then
// admission. Ineligible taps are dropped silently.
func (c *Critter) OnTap(worldX, worldY float64) {
	if !c.enabled {
		return
	}
	if c.gate != nil && c.gate.Busy() {
		return
	}
	if c.hits != nil && c.hits.CritterAt(worldX, worldY) != c {
		return
	}
	if c.gate != nil {
		c.gate.Request(c)
	}
}

// SetInteractionState flips the local enable flag and toggles the tappable
// surface in the hit world to match. Removing the surface keeps stale taps
// from resolving to this critter even before the flag is consulted.
func (c *Critter) SetInteractionState(active bool) {
	c.enabled = !active
	if c.hits != nil {
		c.hits.SetTappable(c, !active)
	}
}

// BeginSequence starts the interaction sequence's synchronous prefix.
func (c *Critter) BeginSequence() {
	c.seq.Begin()
}

// StepSequence advances the sequence one tick. On completion the critter
// resets its own interaction state; the gate repeats the reset, which is
// harmless.
func (c *Critter) StepSequence() bool {
	done := c.seq.Step()
	if done {
		c.SetInteractionState(false)
	}
	return done
}

// StepToward moves the critter one tick toward a point at its own speed and
// returns the remaining distance. Used as the sequence's approach mover.
func (c *Critter) StepToward(x, y float64) float64 {
	var remaining float64
	c.X, c.Y, remaining = common.MoveToward(c.X, c.Y, x, y, c.Speed)
	if c.hits != nil {
		c.hits.Sync(c)
	}
	return remaining
}

// Update is the ambient per-tick work: wander drift, hit-surface sync, and
// the animator's frame advance. The gate drives the sequence separately.
func (c *Critter) Update() {
	c.wander.Update()
	if c.hits != nil {
		c.hits.Sync(c)
	}
	c.anim.Update()
}

// Draw renders the critter body plus any running clip effect.
func (c *Critter) Draw(screen *ebiten.Image, camX, camY, zoom float64) {
	sx := float32((c.X - camX) * zoom)
	sy := float32((c.Y - camY) * zoom)
	r := float32(c.Radius * zoom * c.anim.Scale())

	vector.FillCircle(screen, sx, sy, r, c.Color, true)
	if ring := c.anim.RingRadius(); ring > 0 {
		ringColor := c.Color
		ringColor.A = 120
		vector.StrokeCircle(screen, sx, sy, float32(ring*zoom), 2, ringColor, true)
	}
}

func (c *Critter) clampToBounds() {
	if c.boundsW <= 0 || c.boundsH <= 0 {
		return
	}
	c.X = common.Clamp(c.X, c.Radius, c.boundsW-c.Radius)
	c.Y = common.Clamp(c.Y, c.Radius, c.boundsH-c.Radius)
}
