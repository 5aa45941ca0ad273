package main

import (
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// IntroOverlay is the shared text overlay shown until the first interaction
// begins. Sequences hide it through the interaction.Overlay interface; hiding
// is idempotent and never comes back for the life of the scene.
type IntroOverlay struct {
	ui     *ebitenui.UI
	hidden bool
}

// NewIntroOverlay builds a bottom-centered banner with the scene's intro
// text, using colored nine-slices and the built-in basic font so no theme
// fonts need loading.
func NewIntroOverlay(text string) *IntroOverlay {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 170})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	label := widget.NewText(
		widget.TextOpts.Text(text, &face, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 24, Right: 24}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	panel.AddChild(label)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&widget.Insets{Bottom: 40}),
		)),
	)
	root.AddChild(panel)

	return &IntroOverlay{ui: &ebitenui.UI{Container: root}}
}

// HideIntroText hides the banner. Safe to call repeatedly.
func (o *IntroOverlay) HideIntroText() {
	o.hidden = true
}

func (o *IntroOverlay) Update() {
	if o == nil || o.hidden {
		return
	}
	o.ui.Update()
}

func (o *IntroOverlay) Draw(screen *ebiten.Image) {
	if o == nil || o.hidden {
		return
	}
	o.ui.Draw(screen)
}
