package main

import (
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/hollowmoss/terrarium/common"
	"github.com/hollowmoss/terrarium/interaction"
	"github.com/hollowmoss/terrarium/obj"
	"github.com/hollowmoss/terrarium/prefabs"
)

type Game struct {
	frames int
	debug  bool

	sceneName string
	spec      *prefabs.SceneSpec

	camera    *obj.Camera
	input     *obj.Input
	gate      *interaction.Gate
	hits      *obj.HitWorld
	critters  []*obj.Critter
	nameplate *obj.Nameplate
	overlay   *IntroOverlay

	watcher  *prefabs.Watcher
	prevBusy bool
}

func NewGame(sceneName string, debug, watch bool) (*Game, error) {
	spec, err := prefabs.LoadSceneSpec(sceneName)
	if err != nil {
		return nil, err
	}

	g := &Game{
		sceneName: sceneName,
		debug:     debug,
	}
	g.buildScene(spec)

	if watch {
		g.watcher = newPrefabWatcher()
	}
	return g, nil
}

// buildScene wires a fresh scene from a spec. Any in-flight interaction or
// queue state from a previous scene is discarded.
func (g *Game) buildScene(spec *prefabs.SceneSpec) {
	g.spec = spec
	g.camera = obj.NewCamera(common.BaseWidth, common.BaseHeight, spec.Tank.Width, spec.Tank.Height)
	g.input = obj.NewInput(g.camera)
	g.gate = interaction.NewGate()
	g.hits = obj.NewHitWorld()
	g.nameplate = obj.NewNameplate()
	g.overlay = NewIntroOverlay(spec.Intro)
	g.prevBusy = false

	g.critters = g.critters[:0]
	for _, cs := range spec.Critters {
		var src []byte
		if cs.Script != "" {
			data, err := prefabs.LoadScript(cs.Script)
			if err != nil {
				log.Printf("game: critter %s: load script %s: %v", cs.Name, cs.Script, err)
			} else {
				src = data
			}
		}

		c := obj.NewCritter(cs.Name, cs.X, cs.Y, cs.Radius, cs.Speed, prefabs.ParseColor(cs.Color), cs.Plate, obj.CritterConfig{
			Gate:              g.gate,
			Hits:              g.hits,
			Overlay:           g.overlay,
			Reveal:            g.nameplate.For(cs.Plate),
			WanderSrc:         src,
			TargetX:           spec.Spotlight.X,
			TargetY:           spec.Spotlight.Y,
			ArriveThreshold:   spec.Spotlight.ArriveThreshold,
			RevealDelayFrames: spec.Spotlight.RevealDelayFrames,
			BoundsW:           spec.Tank.Width,
			BoundsH:           spec.Tank.Height,
		})
		g.critters = append(g.critters, c)
	}
}

func (g *Game) Update() error {
	g.frames++

	g.pollWatcher()

	g.input.Update()
	if g.input.TapJustPressed {
		// Fan the tap out; each critter's own eligibility checks decide
		// whether it claims the interaction.
		for _, c := range g.critters {
			c.OnTap(g.input.TapWorldX, g.input.TapWorldY)
		}
	}

	for _, c := range g.critters {
		c.Update()
	}

	busyBefore := g.gate.Busy()
	if busyBefore && !g.prevBusy {
		// A new interaction claimed the spotlight; drop the previous plate.
		g.nameplate.Hide()
	}
	g.prevBusy = busyBefore

	g.gate.Update()
	g.nameplate.Update()
	g.overlay.Update()

	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("game: prefab changed: %s", name)
			reload = true
			continue
		case err, ok := <-g.watcher.Errors:
			if ok && err != nil {
				log.Printf("game: watcher error: %v", err)
				continue
			}
		default:
		}
		break
	}
	if !reload {
		return
	}
	spec, err := prefabs.LoadSceneSpec(g.sceneName)
	if err != nil {
		log.Printf("game: scene reload failed, keeping current scene: %v", err)
		return
	}
	g.buildScene(spec)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkslategray)

	camX, camY := g.camera.ViewTopLeft()
	zoom := g.camera.Zoom()

	// tank water
	vector.FillRect(screen,
		float32(-camX*zoom), float32(-camY*zoom),
		float32(g.spec.Tank.Width*zoom), float32(g.spec.Tank.Height*zoom),
		color.NRGBA{R: 0x12, G: 0x33, B: 0x44, A: 0xff}, false)

	// spotlight pool
	sx := float32((g.spec.Spotlight.X - camX) * zoom)
	sy := float32((g.spec.Spotlight.Y - camY) * zoom)
	vector.FillCircle(screen, sx, sy, float32(44*zoom), color.NRGBA{R: 0xff, G: 0xf4, B: 0xc0, A: 0x30}, true)
	vector.StrokeCircle(screen, sx, sy, float32(44*zoom), 1.5, color.NRGBA{R: 0xff, G: 0xf4, B: 0xc0, A: 0x70}, true)

	for _, c := range g.critters {
		c.Draw(screen, camX, camY, zoom)
	}

	g.nameplate.Draw(screen, camX, camY, zoom)
	g.overlay.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"Frames: %d    FPS: %.2f    busy: %v    pending: %d",
			g.frames, ebiten.ActualFPS(), g.gate.Busy(), g.gate.PendingCount()))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func newPrefabWatcher() *prefabs.Watcher {
	dirs := make([]string, 0, 2)
	for _, d := range []string{"prefabs", "prefabs/scripts"} {
		if info, err := os.Stat(d); err == nil && info.IsDir() {
			dirs = append(dirs, d)
		}
	}
	if len(dirs) == 0 {
		log.Printf("game: no prefab dirs on disk, watch disabled")
		return nil
	}
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		log.Printf("game: watch disabled: %v", err)
		return nil
	}
	return w
}
