package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/cameraman/ecs"
	"github.com/milk9111/cameraman/ecs/component"
	"github.com/milk9111/cameraman/prefabs"
)

var defaultTargetColor = color.RGBA{R: 204, G: 77, B: 77, A: 255}

// TargetMode selects how a target is moved each frame.
type TargetMode int

const (
	// TargetStatic is only moved by whoever writes its transform.
	TargetStatic TargetMode = iota
	// TargetPlayer is moved by keyboard/gamepad input through the physics
	// space.
	TargetPlayer
	// TargetScripted follows TargetSpec.Script.
	TargetScripted
)

// NewTarget creates a followable entity from spec.
func NewTarget(w *ecs.World, spec *prefabs.TargetSpec, mode TargetMode) (ecs.Entity, error) {
	if spec == nil {
		spec = &prefabs.TargetSpec{}
	}

	target := ecs.CreateEntity(w)
	if err := ecs.Add(w, target, component.TargetTagComponent.Kind(), &component.TargetTag{}); err != nil {
		return 0, fmt.Errorf("target: add target tag: %w", err)
	}
	if err := ecs.Add(w, target, component.TransformComponent.Kind(), &component.Transform{
		X:      spec.Transform.X,
		Y:      spec.Transform.Y,
		Z:      spec.Transform.Z,
		ScaleX: 1,
		ScaleY: 1,
	}); err != nil {
		return 0, fmt.Errorf("target: add transform: %w", err)
	}

	radius := spec.Radius
	if radius <= 0 {
		radius = 30
	}
	clr := spec.Color.RGBA
	if clr.A == 0 {
		clr = defaultTargetColor
	}
	if err := ecs.Add(w, target, component.CircleComponent.Kind(), &component.Circle{Radius: radius, Color: clr}); err != nil {
		return 0, fmt.Errorf("target: add circle: %w", err)
	}
	if err := ecs.Add(w, target, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: 1}); err != nil {
		return 0, fmt.Errorf("target: add render layer: %w", err)
	}

	switch mode {
	case TargetPlayer:
		speed := spec.Speed
		if speed <= 0 {
			speed = 200
		}
		if err := ecs.Add(w, target, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
			return 0, fmt.Errorf("target: add player tag: %w", err)
		}
		if err := ecs.Add(w, target, component.InputComponent.Kind(), &component.Input{}); err != nil {
			return 0, fmt.Errorf("target: add input: %w", err)
		}
		if err := ecs.Add(w, target, component.MoverComponent.Kind(), &component.Mover{Speed: speed}); err != nil {
			return 0, fmt.Errorf("target: add mover: %w", err)
		}
		if err := ecs.Add(w, target, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Radius: radius}); err != nil {
			return 0, fmt.Errorf("target: add physics body: %w", err)
		}
	case TargetScripted:
		if spec.Script == "" {
			return 0, fmt.Errorf("target: %q has no script", spec.Name)
		}
		if err := ecs.Add(w, target, component.MotionScriptComponent.Kind(), &component.MotionScript{Path: spec.Script}); err != nil {
			return 0, fmt.Errorf("target: add motion script: %w", err)
		}
	}

	return target, nil
}
