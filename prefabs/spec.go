package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// SceneSpec is a whole terrarium: tank dimensions, the spotlight the admitted
// critter approaches, sequencing tunables, and the critter roster.
type SceneSpec struct {
	Name      string        `yaml:"name"`
	Tank      TankSpec      `yaml:"tank"`
	Spotlight SpotlightSpec `yaml:"spotlight"`
	Intro     string        `yaml:"intro"`
	Critters  []CritterSpec `yaml:"critters"`
}

type TankSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type SpotlightSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	// ArriveThreshold is the remaining approach distance that counts as
	// converged, in pixels.
	ArriveThreshold float64 `yaml:"arrive_threshold"`
	// RevealDelayFrames is the pause between arrival and the nameplate
	// reveal, in update ticks.
	RevealDelayFrames int `yaml:"reveal_delay_frames"`
}

type CritterSpec struct {
	Name   string  `yaml:"name"`
	Plate  string  `yaml:"plate"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
	Color  string  `yaml:"color"`
	Script string  `yaml:"script"`
}

// LoadSpec decodes a prefab yaml file into the given spec type.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadSceneSpec loads and validates a scene file (basename, .yaml optional).
func LoadSceneSpec(name string) (*SceneSpec, error) {
	if name == "" {
		name = "scene"
	}
	if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
		name += ".yaml"
	}
	spec, err := LoadSpec[SceneSpec](name)
	if err != nil {
		return nil, err
	}
	if err := spec.validate(); err != nil {
		return nil, fmt.Errorf("prefabs: scene %s: %w", name, err)
	}
	return &spec, nil
}

func (s *SceneSpec) validate() error {
	if s.Tank.Width <= 0 || s.Tank.Height <= 0 {
		return fmt.Errorf("tank dimensions must be positive, got %gx%g", s.Tank.Width, s.Tank.Height)
	}
	if len(s.Critters) == 0 {
		return fmt.Errorf("scene has no critters")
	}
	for i, c := range s.Critters {
		if c.Name == "" {
			return fmt.Errorf("critter %d has no name", i)
		}
		if c.Radius <= 0 {
			return fmt.Errorf("critter %q radius must be positive", c.Name)
		}
	}
	return nil
}

// ParseColor turns a "#rrggbb" or "#rrggbbaa" string into a color. Empty or
// malformed strings fall back to an opaque grey.
func ParseColor(s string) color.NRGBA {
	fallback := color.NRGBA{R: 0x9e, G: 0x9e, B: 0x9e, A: 0xff}
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return fallback
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return fallback
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
}
