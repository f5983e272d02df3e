package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/cameraman/follow"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
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

type CameraSpec struct {
	Name              string        `yaml:"name"`
	Transform         TransformSpec `yaml:"transform"`
	Target            string        `yaml:"target"`
	DeadZone          *Vec2Spec     `yaml:"dead_zone,omitempty"`
	AheadFactor       *Vec3Spec     `yaml:"ahead_factor,omitempty"`
	SettleDelay       *float64      `yaml:"settle_delay,omitempty"`
	Lerp              float64       `yaml:"lerp"`
	CenteredThreshold *float64      `yaml:"centered_threshold,omitempty"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Params converts the spec into follow tuning. Absent fields fall back to
// the follow defaults; an explicit zero is kept. Lerp has no valid zero, so
// 0 means absent.
func (s *CameraSpec) Params() (follow.Params, error) {
	p := follow.DefaultParams()
	if s == nil {
		return p, nil
	}
	if s.DeadZone != nil {
		p.DeadZone = s.DeadZone.Vec()
	}
	if s.AheadFactor != nil {
		p.AheadFactor = s.AheadFactor.Vec()
	}
	if s.SettleDelay != nil {
		p.SettleDelay = *s.SettleDelay
	}
	if s.Lerp != 0 {
		p.Lerp = s.Lerp
	}
	if s.CenteredThreshold != nil {
		p.CenteredThreshold = *s.CenteredThreshold
	}
	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("prefabs: camera %q: %w", s.Name, err)
	}
	return p, nil
}

// CameraSpecFromParams is the inverse of Params, used to export live tuning.
func CameraSpecFromParams(name, target string, p follow.Params) CameraSpec {
	deadZone := Vec2Spec{X: p.DeadZone.X, Y: p.DeadZone.Y}
	ahead := Vec3Spec{X: p.AheadFactor.X, Y: p.AheadFactor.Y, Z: p.AheadFactor.Z}
	settle, threshold := p.SettleDelay, p.CenteredThreshold
	return CameraSpec{
		Name:              name,
		Target:            target,
		DeadZone:          &deadZone,
		AheadFactor:       &ahead,
		SettleDelay:       &settle,
		Lerp:              p.Lerp,
		CenteredThreshold: &threshold,
	}
}

func (s CameraSpec) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("prefabs: marshal camera %q: %w", s.Name, err)
	}
	return data, nil
}

type TargetSpec struct {
	Name      string        `yaml:"name"`
	Transform TransformSpec `yaml:"transform"`
	Radius    float64       `yaml:"radius"`
	Speed     float64       `yaml:"speed"`
	Color     YAMLColor     `yaml:"color"`
	Script    string        `yaml:"script"`
}

func LoadTargetSpec() (*TargetSpec, error) {
	spec, err := LoadSpec[TargetSpec]("target.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type SceneSpec struct {
	Bounds  BoundsSpec   `yaml:"bounds"`
	Circles []CircleSpec `yaml:"circles"`
}

type BoundsSpec struct {
	MinX float64 `yaml:"min_x"`
	MinY float64 `yaml:"min_y"`
	MaxX float64 `yaml:"max_x"`
	MaxY float64 `yaml:"max_y"`
}

type CircleSpec struct {
	X      float64   `yaml:"x"`
	Y      float64   `yaml:"y"`
	Radius float64   `yaml:"radius"`
	Color  YAMLColor `yaml:"color"`
}

func LoadSceneSpec() (*SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec]("scene.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Z        float64 `yaml:"z"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type Vec2Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v Vec2Spec) Vec() r2.Vec {
	return r2.Vec{X: v.X, Y: v.Y}
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3Spec) Vec() r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

type YAMLColor struct {
	color.RGBA
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

	c.RGBA = color.RGBA{R: r, G: g, B: b, A: a}
	return nil
}
