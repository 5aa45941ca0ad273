package interaction

// Interactable is one tappable scene object the gate can admit. Admission
// toggles the object's local interaction state; the gate then drives the
// object's sequence one tick at a time until it reports done.
type Interactable interface {
	// SetInteractionState flips the object's local enable flag; active=true
	// means the object is pending or mid-sequence and must ignore taps.
	SetInteractionState(active bool)
	// BeginSequence runs the synchronous prefix of the object's sequence.
	BeginSequence()
	// StepSequence advances the sequence one tick and reports completion.
	StepSequence() bool
}

// Policy selects how Request treats candidates while the gate is busy.
type Policy int

const (
	// DropWhenBusy silently discards any candidate that arrives while the
	// gate is busy. Taps during another object's sequence are lost, not
	// buffered. This is the default.
	DropWhenBusy Policy = iota
	// BufferAll enqueues candidates in arrival order and drains them one at
	// a time. Duplicates (already pending or active) are still dropped.
	BufferAll
)

// Gate serializes interaction sequences: at most one Interactable is ever
// mid-sequence, and further requests are dropped or queued per Policy.
//
// The gate is driven by the host update loop. Request runs synchronously
// inside the tap handler; Update performs one tick of the drain loop. All
// calls must come from the same goroutine as the game's Update, so no
// locking is needed.
type Gate struct {
	Policy Policy

	pending  []Interactable
	active   Interactable
	draining bool
}

func NewGate() *Gate {
	return &Gate{}
}

// Busy reports whether the gate is draining or has queued requests. This is
// the global lock signal: true for the whole window from admission to
// sequence completion.
func (g *Gate) Busy() bool {
	return g.draining || len(g.pending) > 0
}

// Request asks for admission. Under DropWhenBusy any request while Busy is a
// no-op. Under BufferAll only duplicates are refused. An admitted candidate
// is immediately marked active-state so it cannot be re-admitted while it
// waits. Returns whether the candidate was enqueued.
func (g *Gate) Request(c Interactable) bool {
	if c == nil {
		return false
	}
	switch g.Policy {
	case BufferAll:
		if g.contains(c) {
			return false
		}
	default:
		if g.Busy() {
			return false
		}
	}
	g.pending = append(g.pending, c)
	c.SetInteractionState(true)
	return true
}

// Update runs one tick of the drain loop: start the front pending entry if
// idle, advance the active sequence, and release the gate when the active
// sequence completes and nothing is queued.
func (g *Gate) Update() {
	if g.active == nil && len(g.pending) > 0 {
		g.draining = true
		g.active = g.pending[0]
		g.pending = g.pending[1:]
		g.active.BeginSequence()
	}

	if g.active == nil {
		return
	}

	if g.active.StepSequence() {
		g.active.SetInteractionState(false)
		g.active = nil
		if len(g.pending) == 0 {
			g.draining = false
		}
	}
}

// Active returns the Interactable currently mid-sequence, or nil.
func (g *Gate) Active() Interactable {
	return g.active
}

// PendingCount returns the number of queued (not yet started) requests.
func (g *Gate) PendingCount() int {
	return len(g.pending)
}

func (g *Gate) contains(c Interactable) bool {
	if g.active == c {
		return true
	}
	for _, p := range g.pending {
		if p == c {
			return true
		}
	}
	return false
}
