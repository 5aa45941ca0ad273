package obj

import (
	cp "github.com/jakecoffman/cp/v2"
)

const (
	categoryTappable uint = 1 << iota
)

// tapSlop is the extra pick distance in world pixels around a critter's
// shape that still counts as a hit.
const tapSlop = 4.0

var tappableFilter = cp.NewShapeFilter(cp.NO_GROUP, categoryTappable, categoryTappable)
var untappableFilter = cp.NewShapeFilter(cp.NO_GROUP, 0, 0)

// HitWorld owns the Chipmunk space used for tap hit-testing. Each critter
// gets a kinematic body with a circle shape; taps resolve through a nearest
// point query filtered to the tappable category. Disabling a critter swaps
// its shape filter so the query cannot see it at all, independent of the
// critter's own enable flag.
type HitWorld struct {
	space  *cp.Space
	shapes map[*Critter]*cp.Shape
}

func NewHitWorld() *HitWorld {
	space := cp.NewSpace()
	return &HitWorld{
		space:  space,
		shapes: make(map[*Critter]*cp.Shape),
	}
}

// Add registers a critter's tappable surface.
func (hw *HitWorld) Add(c *Critter) {
	if hw == nil || c == nil {
		return
	}
	if _, ok := hw.shapes[c]; ok {
		return
	}
	body := hw.space.AddBody(cp.NewKinematicBody())
	body.SetPosition(cp.Vector{X: c.X, Y: c.Y})
	shape := hw.space.AddShape(cp.NewCircle(body, c.Radius, cp.Vector{}))
	shape.SetSensor(true)
	shape.SetFilter(tappableFilter)
	shape.UserData = c
	hw.shapes[c] = shape
}

// Remove drops a critter's surface from the space.
func (hw *HitWorld) Remove(c *Critter) {
	shape, ok := hw.shapes[c]
	if !ok {
		return
	}
	hw.space.RemoveShape(shape)
	hw.space.RemoveBody(shape.Body())
	delete(hw.shapes, c)
}

// Sync moves a critter's body to its current position. Call once per tick
// after the critter moves.
func (hw *HitWorld) Sync(c *Critter) {
	shape, ok := hw.shapes[c]
	if !ok {
		return
	}
	shape.Body().SetPosition(cp.Vector{X: c.X, Y: c.Y})
	hw.space.ReindexShape(shape)
}

// SetTappable toggles whether a critter's surface is visible to hit queries.
func (hw *HitWorld) SetTappable(c *Critter, tappable bool) {
	shape, ok := hw.shapes[c]
	if !ok {
		return
	}
	if tappable {
		shape.SetFilter(tappableFilter)
	} else {
		shape.SetFilter(untappableFilter)
	}
}

// CritterAt returns the topmost tappable critter within tapSlop of the world
// point, or nil when the tap hits nothing.
func (hw *HitWorld) CritterAt(x, y float64) *Critter {
	if hw == nil {
		return nil
	}
	info := hw.space.PointQueryNearest(cp.Vector{X: x, Y: y}, tapSlop, tappableFilter)
	if info.Shape == nil {
		return nil
	}
	c, _ := info.Shape.UserData.(*Critter)
	return c
}
