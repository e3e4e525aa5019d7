package prefabs

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/platformer/camera"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/physics"
)

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

type VecSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v VecSpec) Vec() common.Vec {
	return common.Vec{X: v.X, Y: v.Y}
}

type BoxSpec struct {
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

type SizeSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// AnimationDefSpec is one entry of the read-only clip table.
type AnimationDefSpec struct {
	FrameCount  int `yaml:"frame_count"`
	FrameBuffer int `yaml:"frame_buffer"`
}

type PlayerSpec struct {
	Name            string                      `yaml:"name"`
	Position        VecSpec                     `yaml:"position"`
	InitialVelocity VecSpec                     `yaml:"initial_velocity"`
	Gravity         float64                     `yaml:"gravity"`
	MoveSpeed       float64                     `yaml:"move_speed"`
	JumpVelocity    float64                     `yaml:"jump_velocity"`
	Hitbox          BoxSpec                     `yaml:"hitbox"`
	Sprite          SizeSpec                    `yaml:"sprite"`
	Color           *YAMLColor                  `yaml:"color"`
	Animations      map[string]AnimationDefSpec `yaml:"animations"`
	Idle            string                      `yaml:"idle"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// ActorConfig converts the player tunables into a physics config.
func (s *PlayerSpec) ActorConfig(phys *PhysicsSpec) physics.Config {
	eps := physics.DefaultEpsilon
	if phys != nil && phys.Epsilon > 0 {
		eps = phys.Epsilon
	}
	return physics.Config{
		Gravity: s.Gravity,
		Epsilon: eps,
		Hitbox: physics.HitboxShape{
			OffsetX: s.Hitbox.OffsetX,
			OffsetY: s.Hitbox.OffsetY,
			Width:   s.Hitbox.Width,
			Height:  s.Hitbox.Height,
		},
		InitialVelocity: s.InitialVelocity.Vec(),
	}
}

// AnimationNames returns the clip names in a stable order.
func (s *PlayerSpec) AnimationNames() []string {
	names := make([]string, 0, len(s.Animations))
	for name := range s.Animations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *PlayerSpec) Validate() error {
	if s == nil {
		return fmt.Errorf("prefabs: nil player spec")
	}
	if s.MoveSpeed < 0 {
		return fmt.Errorf("prefabs: player move_speed must not be negative, got %g", s.MoveSpeed)
	}
	for name, def := range s.Animations {
		if def.FrameCount <= 0 || def.FrameBuffer <= 0 {
			return fmt.Errorf("prefabs: animation %q needs positive frame_count and frame_buffer", name)
		}
	}
	if s.Idle != "" {
		if _, ok := s.Animations[s.Idle]; !ok {
			return fmt.Errorf("prefabs: idle animation %q not in table", s.Idle)
		}
	}
	return s.ActorConfig(nil).Validate()
}

type CameraSpec struct {
	Name     string   `yaml:"name"`
	Viewport SizeSpec `yaml:"viewport"`
	Zoom     float64  `yaml:"zoom"`
	Tracking BoxSpec  `yaml:"tracking"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Config binds the camera tunables to a level of the given size.
func (s *CameraSpec) Config(levelWidth, levelHeight float64) camera.Config {
	return camera.Config{
		Tracking: camera.TrackingBox{
			OffsetX: s.Tracking.OffsetX,
			OffsetY: s.Tracking.OffsetY,
			Width:   s.Tracking.Width,
			Height:  s.Tracking.Height,
		},
		ViewportWidth:  s.Viewport.Width,
		ViewportHeight: s.Viewport.Height,
		Zoom:           s.Zoom,
		LevelWidth:     levelWidth,
		LevelHeight:    levelHeight,
	}
}

type PhysicsSpec struct {
	Epsilon      float64 `yaml:"epsilon"`
	ClampToLevel bool    `yaml:"clamp_to_level"`
}

func LoadPhysicsSpec() (*PhysicsSpec, error) {
	spec, err := LoadSpec[PhysicsSpec]("physics.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Epsilon == 0 {
		spec.Epsilon = physics.DefaultEpsilon
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
