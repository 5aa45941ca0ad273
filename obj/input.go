package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input polls the cursor and tap state once per frame. A "tap" is the frame
// the left mouse button (or first touch) goes down; inpututil's just-pressed
// edge guarantees exactly one signal per physical press.
type Input struct {
	// TapJustPressed is true only on the frame the tap began.
	TapJustPressed bool
	// TapWorldX/Y are the tap position in world coordinates (pixels).
	TapWorldX float64
	TapWorldY float64

	camera   *Camera
	touchIDs []ebiten.TouchID
}

func NewInput(camera *Camera) *Input {
	return &Input{camera: camera}
}

// Update polls the mouse and touch state and maps it through the camera.
func (i *Input) Update() {
	i.TapJustPressed = false

	cx, cy := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		i.TapJustPressed = true
	}

	i.touchIDs = inpututil.AppendJustPressedTouchIDs(i.touchIDs[:0])
	if len(i.touchIDs) > 0 {
		cx, cy = ebiten.TouchPosition(i.touchIDs[0])
		i.TapJustPressed = true
	}

	vx, vy := i.camera.ViewTopLeft()
	i.TapWorldX = vx + float64(cx)/i.camera.Zoom()
	i.TapWorldY = vy + float64(cy)/i.camera.Zoom()
}
