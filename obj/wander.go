package obj

import (
	"fmt"
	"log"
	"math"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Wander drives a critter's ambient drift. Steering comes from an embedded
// Tengo script when one is configured; otherwise a built-in sinusoidal drift
// around the critter's home point is used. The interaction sequence controls
// it through ForceStop/Enable/ResetPhase.
type Wander struct {
	critter *Critter

	enabled bool
	phase   int

	heading float64
	speed   float64

	compiled  *tengo.Compiled
	stateData *tengo.Map
}

const wanderDispatchScript = `
if __phase == "update" {
	update(__engine, __state)
} else if __phase == "reset" {
	onReset(__engine, __state)
}
`

// NewWander builds a wander behavior for a critter. src is the Tengo steering
// script source; empty means the built-in drift. A script that fails to
// compile is logged and the behavior falls back to the built-in drift.
func NewWander(c *Critter, src []byte) *Wander {
	w := &Wander{critter: c, enabled: true}
	if len(src) == 0 {
		return w
	}

	full := string(src) + "\n" + wanderDispatchScript
	script := tengo.NewScript([]byte(full))
	_ = script.Add("__phase", "")
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		log.Printf("wander: critter=%s script compile error: %v", c.Name, err)
		return w
	}

	w.compiled = compiled
	w.stateData = &tengo.Map{Value: map[string]tengo.Object{}}
	return w
}

// ForceStop zeroes the current drift velocity without disabling the behavior.
func (w *Wander) ForceStop() {
	w.speed = 0
}

// Enable turns the behavior on or off. While disabled, Update is a no-op.
func (w *Wander) Enable(enabled bool) {
	w.enabled = enabled
}

// ResetPhase restarts the drift cycle and clears any script state.
func (w *Wander) ResetPhase() {
	w.phase = 0
	if w.stateData != nil {
		w.stateData.Value = map[string]tengo.Object{}
	}
	if w.compiled != nil {
		if err := w.runPhase("reset"); err != nil {
			log.Printf("wander: critter=%s script onReset error: %v", w.critter.Name, err)
		}
	}
}

// Update advances the drift one tick and moves the critter, keeping it
// inside the tank bounds.
func (w *Wander) Update() {
	if !w.enabled || w.critter == nil {
		return
	}
	w.phase++

	if w.compiled != nil {
		if err := w.runPhase("update"); err != nil {
			log.Printf("wander: critter=%s script update error: %v", w.critter.Name, err)
			w.compiled = nil // fall back to built-in drift from here on
		}
	}
	if w.compiled == nil {
		w.builtinDrift()
	}

	w.critter.X += math.Cos(w.heading) * w.speed
	w.critter.Y += math.Sin(w.heading) * w.speed
	w.critter.clampToBounds()
}

// builtinDrift is a slow figure-of-eight around the home point.
func (w *Wander) builtinDrift() {
	c := w.critter
	t := float64(w.phase) / 60.0
	tx := c.HomeX + math.Sin(t*0.7)*40
	ty := c.HomeY + math.Sin(t*1.4)*18
	dx, dy := tx-c.X, ty-c.Y
	dist := math.Hypot(dx, dy)
	if dist < 0.5 {
		w.speed = 0
		return
	}
	w.heading = math.Atan2(dy, dx)
	w.speed = math.Min(c.Speed*0.35, dist)
}

func (w *Wander) runPhase(phase string) error {
	if w.compiled == nil {
		return fmt.Errorf("nil wander script")
	}
	if err := w.compiled.Set("__phase", phase); err != nil {
		return err
	}
	if err := w.compiled.Set("__engine", w.buildEngine()); err != nil {
		return err
	}
	if err := w.compiled.Set("__state", w.stateData); err != nil {
		return err
	}
	return w.compiled.Run()
}

// buildEngine exposes the critter to the steering script: position/home/phase
// reads and a single set_course(heading, speed) write.
func (w *Wander) buildEngine() *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["get_position"] = &tengo.UserFunction{Name: "get_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Array{Value: []tengo.Object{
			&tengo.Float{Value: w.critter.X},
			&tengo.Float{Value: w.critter.Y},
		}}, nil
	}}

	values["get_home"] = &tengo.UserFunction{Name: "get_home", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Array{Value: []tengo.Object{
			&tengo.Float{Value: w.critter.HomeX},
			&tengo.Float{Value: w.critter.HomeY},
		}}, nil
	}}

	values["get_phase"] = &tengo.UserFunction{Name: "get_phase", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Int{Value: int64(w.phase)}, nil
	}}

	values["get_speed_limit"] = &tengo.UserFunction{Name: "get_speed_limit", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: w.critter.Speed}, nil
	}}

	values["set_course"] = &tengo.UserFunction{Name: "set_course", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 2 {
			return tengo.FalseValue, nil
		}
		heading, ok1 := objectAsFloat(args[0])
		speed, ok2 := objectAsFloat(args[1])
		if !ok1 || !ok2 {
			return tengo.FalseValue, nil
		}
		w.heading = heading
		w.speed = math.Min(math.Abs(speed), w.critter.Speed)
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func objectAsFloat(o tengo.Object) (float64, bool) {
	switch v := o.(type) {
	case *tengo.Float:
		return v.Value, true
	case *tengo.Int:
		return float64(v.Value), true
	}
	return 0, false
}
