package entity

import (
	"fmt"

	"github.com/milk9111/cameraman/ecs"
	"github.com/milk9111/cameraman/ecs/component"
	"github.com/milk9111/cameraman/prefabs"
)

// NewScenery spawns the level bounds and static circles of spec and
// registers them with the physics world when one is attached. The bounds
// entity, if any, comes first in the returned slice.
func NewScenery(w *ecs.World, spec *prefabs.SceneSpec) ([]ecs.Entity, error) {
	if spec == nil {
		return nil, nil
	}
	pw := w.PhysicsWorld()
	b := spec.Bounds
	out := make([]ecs.Entity, 0, len(spec.Circles)+1)

	if b.MaxX > b.MinX && b.MaxY > b.MinY {
		bounds := ecs.CreateEntity(w)
		if err := ecs.Add(w, bounds, component.LevelBoundsComponent.Kind(), &component.LevelBounds{MinX: b.MinX, MinY: b.MinY, MaxX: b.MaxX, MaxY: b.MaxY}); err != nil {
			return nil, fmt.Errorf("scenery: add bounds: %w", err)
		}
		pw.AddBounds(b.MinX, b.MinY, b.MaxX, b.MaxY)
		out = append(out, bounds)
	}

	for i, c := range spec.Circles {
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.SceneryTagComponent.Kind(), &component.SceneryTag{}); err != nil {
			return nil, fmt.Errorf("scenery %d: add tag: %w", i, err)
		}
		if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: c.X, Y: c.Y, ScaleX: 1, ScaleY: 1}); err != nil {
			return nil, fmt.Errorf("scenery %d: add transform: %w", i, err)
		}
		if err := ecs.Add(w, e, component.CircleComponent.Kind(), &component.Circle{Radius: c.Radius, Color: c.Color.RGBA}); err != nil {
			return nil, fmt.Errorf("scenery %d: add circle: %w", i, err)
		}
		pw.AddStaticCircle(c.X, c.Y, c.Radius)
		out = append(out, e)
	}
	return out, nil
}
