package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/cameraman/ecs"
	"github.com/milk9111/cameraman/ecs/component"
)

// PhysicsSystem turns movement input into body velocity, steps the Chipmunk
// space and copies body positions back into transforms.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (p *PhysicsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, t *component.Transform) {
		if body.Body == nil {
			body.Body = pw.EnsureBody(e, t.X, t.Y, body.Radius)
		}
		if body.Body == nil || body.Static {
			return
		}
		body.Body.SetVelocityVector(desiredVelocity(w, e))
	})

	pw.Step(w.DeltaTime())

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, body *component.PhysicsBody, t *component.Transform) {
		if body.Body == nil || body.Static {
			return
		}
		pos := body.Body.Position()
		t.X = pos.X
		t.Y = pos.Y
	})
}

func desiredVelocity(w *ecs.World, e ecs.Entity) cp.Vector {
	input, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok {
		return cp.Vector{}
	}
	mover, ok := ecs.Get(w, e, component.MoverComponent.Kind())
	if !ok {
		return cp.Vector{}
	}
	x, y := input.MoveX, input.MoveY
	// Diagonals are as fast as straight lines, so a held diagonal covers
	// less ground per axis than a demo that applies full speed to each axis.
	if n := math.Hypot(x, y); n > 1 {
		x, y = x/n, y/n
	}
	return cp.Vector{X: x * mover.Speed, Y: y * mover.Speed}
}
