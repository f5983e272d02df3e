package ecs

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeTarget
)

// PhysicsWorld owns the Chipmunk space, the static scenery and one kinematic
// body per tracked entity.
type PhysicsWorld struct {
	space  *cp.Space
	bodies map[Entity]*cp.Body
	shapes map[Entity]*cp.Shape
}

// NewPhysicsWorld creates a top-down space with no gravity.
func NewPhysicsWorld() *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})
	return &PhysicsWorld{
		space:  space,
		bodies: make(map[Entity]*cp.Body),
		shapes: make(map[Entity]*cp.Shape),
	}
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// AddStaticCircle places a solid circle in the scenery.
func (pw *PhysicsWorld) AddStaticCircle(x, y, radius float64) {
	if pw == nil || radius <= 0 {
		return
	}
	shape := cp.NewCircle(pw.space.StaticBody, radius, cp.Vector{X: x, Y: y})
	shape.SetFriction(0)
	shape.SetCollisionType(collisionTypeSolid)
	pw.space.AddShape(shape)
}

// AddBounds encloses the play area in four static segments.
func (pw *PhysicsWorld) AddBounds(minX, minY, maxX, maxY float64) {
	if pw == nil || maxX <= minX || maxY <= minY {
		return
	}
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: minX, Y: minY}, b: cp.Vector{X: maxX, Y: minY}},
		{a: cp.Vector{X: minX, Y: maxY}, b: cp.Vector{X: maxX, Y: maxY}},
		{a: cp.Vector{X: minX, Y: minY}, b: cp.Vector{X: minX, Y: maxY}},
		{a: cp.Vector{X: maxX, Y: minY}, b: cp.Vector{X: maxX, Y: maxY}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(pw.space.StaticBody, seg.a, seg.b, 1)
		shape.SetFriction(0)
		shape.SetCollisionType(collisionTypeSolid)
		pw.space.AddShape(shape)
	}
}

// EnsureBody creates a circular body for e if needed and returns it.
func (pw *PhysicsWorld) EnsureBody(e Entity, x, y, radius float64) *cp.Body {
	if pw == nil || !e.Valid() {
		return nil
	}
	if body, ok := pw.bodies[e]; ok {
		return body
	}
	if radius <= 0 {
		radius = 1
	}

	mass := 1.0
	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(cp.Vector{X: x, Y: y})
	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetFriction(0)
	shape.SetCollisionType(collisionTypeTarget)

	pw.space.AddBody(body)
	pw.space.AddShape(shape)
	pw.bodies[e] = body
	pw.shapes[e] = shape
	log.Printf("PhysicsWorld: EnsureBody entity=%s radius=%.1f", e, radius)
	return body
}

// Body returns the body owned by e, if any.
func (pw *PhysicsWorld) Body(e Entity) (*cp.Body, bool) {
	if pw == nil {
		return nil, false
	}
	body, ok := pw.bodies[e]
	return body, ok
}

// RemoveBody detaches e's body and shape from the space.
func (pw *PhysicsWorld) RemoveBody(e Entity) {
	if pw == nil {
		return
	}
	if shape, ok := pw.shapes[e]; ok {
		pw.space.RemoveShape(shape)
		delete(pw.shapes, e)
	}
	if body, ok := pw.bodies[e]; ok {
		pw.space.RemoveBody(body)
		delete(pw.bodies, e)
	}
}

// Step advances the physics simulation.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil || dt <= 0 {
		return
	}
	pw.space.Step(dt)
}
