package obj

// Camera maps between screen and world space for a fixed-size scene. The
// terrarium view is static: centered on the tank, zoomed to fit the window.
type Camera struct {
	PosX float64
	PosY float64

	screenW int
	screenH int
	zoom    float64
}

// NewCamera creates a camera centered on a world rectangle of the given size.
func NewCamera(screenW, screenH int, worldW, worldH float64) *Camera {
	c := &Camera{screenW: screenW, screenH: screenH, zoom: 1}
	c.PosX = worldW / 2.0
	c.PosY = worldH / 2.0
	c.FitTo(worldW, worldH)
	return c
}

// FitTo picks the largest zoom that shows the whole world rectangle.
func (c *Camera) FitTo(worldW, worldH float64) {
	if worldW <= 0 || worldH <= 0 {
		return
	}
	zx := float64(c.screenW) / worldW
	zy := float64(c.screenH) / worldH
	if zx < zy {
		c.zoom = zx
	} else {
		c.zoom = zy
	}
}

// SetScreenSize updates the logical screen size used by the camera.
func (c *Camera) SetScreenSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.screenW = w
	c.screenH = h
}

// ViewTopLeft returns the world-space top-left of the current view.
func (c *Camera) ViewTopLeft() (float64, float64) {
	if c.zoom == 0 {
		return c.PosX, c.PosY
	}
	viewW := float64(c.screenW) / c.zoom
	viewH := float64(c.screenH) / c.zoom
	return c.PosX - viewW/2.0, c.PosY - viewH/2.0
}

// Zoom returns the current camera zoom.
func (c *Camera) Zoom() float64 {
	return c.zoom
}
