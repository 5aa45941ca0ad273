package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const nameplateFadeFrames = 20

// Nameplate is the reveal presentation: a text label that fades in at the
// spotlight once an interaction sequence reaches its reveal step. RevealAt
// positions it and starts the fade; the text is set beforehand by whoever
// owns the active sequence.
type Nameplate struct {
	Text string

	x, y    float64
	visible bool
	fade    int

	face ebtext.Face
}

func NewNameplate() *Nameplate {
	return &Nameplate{
		face: ebtext.NewGoXFace(basicfont.Face7x13),
	}
}

// RevealAt positions the plate and starts the fade-in. Fire-and-forget.
func (n *Nameplate) RevealAt(x, y float64) {
	n.x = x
	n.y = y
	n.visible = true
	n.fade = 0
}

// Hide clears the plate, typically when the next interaction begins.
func (n *Nameplate) Hide() {
	n.visible = false
	n.fade = 0
}

// Visible reports whether the plate is currently shown.
func (n *Nameplate) Visible() bool {
	return n.visible
}

// Update advances the fade-in.
func (n *Nameplate) Update() {
	if n.visible && n.fade < nameplateFadeFrames {
		n.fade++
	}
}

// For returns a revealer that stamps the given text onto the shared plate
// before revealing it. Each critter gets one bound to its own plate text.
func (n *Nameplate) For(text string) *PlateRevealer {
	return &PlateRevealer{plate: n, text: text}
}

// PlateRevealer binds one critter's text to the shared nameplate.
type PlateRevealer struct {
	plate *Nameplate
	text  string
}

func (r *PlateRevealer) RevealAt(x, y float64) {
	r.plate.Text = r.text
	r.plate.RevealAt(x, y)
}

// Draw renders the plate text centered on its reveal position.
func (n *Nameplate) Draw(screen *ebiten.Image, camX, camY, zoom float64) {
	if !n.visible || n.Text == "" || n.face == nil {
		return
	}
	alpha := float64(n.fade) / float64(nameplateFadeFrames)

	op := &ebtext.DrawOptions{}
	w, h := ebtext.Measure(n.Text, n.face, 0)
	op.GeoM.Translate((n.x-camX)*zoom-w/2, (n.y-camY)*zoom-h/2)
	op.ColorScale.ScaleWithColor(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	op.ColorScale.ScaleAlpha(float32(alpha))
	ebtext.Draw(screen, n.Text, n.face, op)
}
