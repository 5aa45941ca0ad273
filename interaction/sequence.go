package interaction

// Collaborator surfaces the sequence drives. All of these are one-way: the
// sequence never waits on them except for Mover convergence.

// Animator starts a named clip. Unknown names are ignored by implementations.
type Animator interface {
	Trigger(name string)
}

// MotionBehavior is an object's ambient drift controller.
type MotionBehavior interface {
	ForceStop()
	Enable(enabled bool)
	ResetPhase()
}

// Overlay hides the shared intro text when any interaction starts.
type Overlay interface {
	HideIntroText()
}

// Mover advances the object one tick toward a point and returns the distance
// still remaining.
type Mover interface {
	StepToward(x, y float64) float64
}

// Revealer positions and starts the secondary reveal presentation.
type Revealer interface {
	RevealAt(x, y float64)
}

type seqPhase int

const (
	phaseIdle seqPhase = iota
	phaseApproach
	phaseDelay
	phaseDone
)

// Sequence is the frame-ticked interaction sequence of a single object:
// halt ambient motion, trigger the focus clip, hide the intro text, approach
// the spotlight until convergence, restore ambient motion, wait out the
// reveal delay, then fire the reveal. Begin runs the synchronous prefix;
// Step advances one tick and reports completion.
type Sequence struct {
	Anim    Animator
	Motion  MotionBehavior
	Overlay Overlay
	Mover   Mover
	Reveal  Revealer

	// FocusClip is the animator trigger fired when the sequence begins.
	FocusClip string
	// TargetX/Y is the spotlight position approached during the sequence.
	TargetX, TargetY float64
	// ArriveThreshold is the remaining distance below which the approach
	// counts as converged.
	ArriveThreshold float64
	// RevealDelayFrames is the pause between convergence and the reveal.
	RevealDelayFrames int
	// RevealX/Y is where the reveal presentation is positioned.
	RevealX, RevealY float64

	phase seqPhase
	timer int
}

// Begin resets the sequence and runs everything up to the first suspension
// point: stop + disable ambient motion, fire the focus clip, hide the intro
// text. Side effects here are fire-and-forget.
func (s *Sequence) Begin() {
	s.phase = phaseApproach
	s.timer = 0
	if s.Motion != nil {
		s.Motion.ForceStop()
		s.Motion.Enable(false)
	}
	if s.Anim != nil && s.FocusClip != "" {
		s.Anim.Trigger(s.FocusClip)
	}
	if s.Overlay != nil {
		s.Overlay.HideIntroText()
	}
}

// Step advances one tick. It returns true once the reveal has fired; the
// gate's drain loop waits on exactly this signal.
func (s *Sequence) Step() bool {
	switch s.phase {
	case phaseApproach:
		remaining := 0.0
		if s.Mover != nil {
			remaining = s.Mover.StepToward(s.TargetX, s.TargetY)
		}
		if remaining <= s.ArriveThreshold {
			if s.Motion != nil {
				s.Motion.Enable(true)
				s.Motion.ResetPhase()
			}
			s.timer = s.RevealDelayFrames
			s.phase = phaseDelay
		}
	case phaseDelay:
		if s.timer > 0 {
			s.timer--
			return false
		}
		if s.Reveal != nil {
			s.Reveal.RevealAt(s.RevealX, s.RevealY)
		}
		s.phase = phaseDone
		return true
	case phaseDone:
		return true
	}
	return false
}

// Running reports whether the sequence has begun and not yet completed.
func (s *Sequence) Running() bool {
	return s.phase == phaseApproach || s.phase == phaseDelay
}
