package interaction

import "testing"

// fakeRunner is a minimal Interactable whose sequence finishes after a fixed
// number of Step calls.
type fakeRunner struct {
	stepsNeeded int

	enabled bool
	begins  int
	steps   int
	running bool
}

func newFakeRunner(steps int) *fakeRunner {
	return &fakeRunner{stepsNeeded: steps, enabled: true}
}

func (f *fakeRunner) SetInteractionState(active bool) {
	f.enabled = !active
}

func (f *fakeRunner) BeginSequence() {
	f.begins++
	f.steps = 0
	f.running = true
}

func (f *fakeRunner) StepSequence() bool {
	f.steps++
	if f.steps >= f.stepsNeeded {
		f.running = false
		return true
	}
	return false
}

func TestGateAdmission(t *testing.T) {
	cases := []struct {
		name        string
		policy      Policy
		runnerSteps []int
		// requests maps tick -> runner indexes requesting before that tick
		requests    map[int][]int
		ticks       int
		wantBegins  []int
		wantPending int
		wantBusy    bool
	}{
		{
			name:        "single_request_runs_to_completion",
			runnerSteps: []int{3},
			requests:    map[int][]int{0: {0}},
			ticks:       5,
			wantBegins:  []int{1},
			wantBusy:    false,
		},
		{
			name:        "drop_while_active",
			runnerSteps: []int{4, 4},
			requests:    map[int][]int{0: {0}, 2: {1}},
			ticks:       10,
			wantBegins:  []int{1, 0},
			wantBusy:    false,
		},
		{
			name:        "drop_same_instant_second_request",
			runnerSteps: []int{4, 4},
			requests:    map[int][]int{0: {0, 1}},
			ticks:       10,
			wantBegins:  []int{1, 0},
			wantBusy:    false,
		},
		{
			name:        "duplicate_request_same_runner",
			runnerSteps: []int{4},
			requests:    map[int][]int{0: {0, 0}, 1: {0}},
			ticks:       10,
			wantBegins:  []int{1},
			wantBusy:    false,
		},
		{
			name:        "buffer_all_runs_both_in_order",
			policy:      BufferAll,
			runnerSteps: []int{3, 3},
			requests:    map[int][]int{0: {0, 1}},
			ticks:       10,
			wantBegins:  []int{1, 1},
			wantBusy:    false,
		},
		{
			name:        "buffer_all_still_drops_duplicates",
			policy:      BufferAll,
			runnerSteps: []int{3, 3},
			requests:    map[int][]int{0: {0, 0, 1, 1}},
			ticks:       10,
			wantBegins:  []int{1, 1},
			wantBusy:    false,
		},
		{
			name:        "still_busy_mid_sequence",
			runnerSteps: []int{10},
			requests:    map[int][]int{0: {0}},
			ticks:       3,
			wantBusy:    true,
			wantBegins:  []int{1},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := NewGate()
			g.Policy = c.policy

			runners := make([]*fakeRunner, len(c.runnerSteps))
			for i, n := range c.runnerSteps {
				runners[i] = newFakeRunner(n)
			}

			for tick := 0; tick < c.ticks; tick++ {
				for _, ri := range c.requests[tick] {
					g.Request(runners[ri])
				}
				g.Update()
			}

			for i, want := range c.wantBegins {
				if runners[i].begins != want {
					t.Errorf("runner %d: begins = %d, want %d", i, runners[i].begins, want)
				}
			}
			if g.Busy() != c.wantBusy {
				t.Errorf("Busy() = %v, want %v", g.Busy(), c.wantBusy)
			}
			if g.PendingCount() != c.wantPending {
				t.Errorf("PendingCount() = %d, want %d", g.PendingCount(), c.wantPending)
			}
		})
	}
}

func TestGateMutualExclusion(t *testing.T) {
	// Under BufferAll every runner gets admitted, but never two at once.
	g := NewGate()
	g.Policy = BufferAll

	runners := make([]*fakeRunner, 5)
	for i := range runners {
		runners[i] = newFakeRunner(3)
		if !g.Request(runners[i]) {
			t.Fatalf("runner %d not enqueued", i)
		}
	}

	for tick := 0; tick < 40 && g.Busy(); tick++ {
		g.Update()
		running := 0
		for _, r := range runners {
			if r.running {
				running++
			}
		}
		if running > 1 {
			t.Fatalf("tick %d: %d sequences mid-execution at once", tick, running)
		}
	}

	if g.Busy() {
		t.Fatalf("gate still busy after draining all runners")
	}
	for i, r := range runners {
		if r.begins != 1 {
			t.Errorf("runner %d begins = %d, want 1", i, r.begins)
		}
	}
}

func TestGateDropWhenBusyLeavesSingleSlot(t *testing.T) {
	g := NewGate()
	a := newFakeRunner(5)
	b := newFakeRunner(5)

	if !g.Request(a) {
		t.Fatalf("first request should be admitted")
	}
	// The instant the first entry is queued, the gate is busy: the pending
	// queue never observably holds more than one entry.
	if g.PendingCount() != 1 {
		t.Fatalf("PendingCount = %d, want 1", g.PendingCount())
	}
	if g.Request(b) {
		t.Fatalf("second request should be dropped while busy")
	}
	if g.PendingCount() != 1 {
		t.Fatalf("PendingCount after drop = %d, want 1", g.PendingCount())
	}
	if !b.enabled {
		t.Fatalf("dropped candidate must not be marked active")
	}
}

func TestGateEventualRelease(t *testing.T) {
	g := NewGate()
	a := newFakeRunner(2)
	g.Request(a)

	for i := 0; i < 4; i++ {
		g.Update()
	}
	if g.Busy() {
		t.Fatalf("gate should be released after sequence completion")
	}
	if !a.enabled {
		t.Fatalf("runner should be re-enabled after completion")
	}

	b := newFakeRunner(2)
	if !g.Request(b) {
		t.Fatalf("request after release should be admitted")
	}
}

func TestGateAdmissionDisablesCandidate(t *testing.T) {
	g := NewGate()
	a := newFakeRunner(2)
	g.Request(a)
	if a.enabled {
		t.Fatalf("admitted candidate must be disabled before the drain starts")
	}
}
