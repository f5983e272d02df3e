package ecs

import "github.com/milk9111/cameraman/ecs/component"

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// World owns entities, component stores, the frame clock and system order.
type World struct {
	entities  entityStore
	stores    map[component.ComponentID]*SparseSet
	scheduler Scheduler
	events    EventQueue

	dt    float64
	frame uint64

	physicsWorld *PhysicsWorld
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	w.scheduler.Add(s)
}

// Update advances the clock by dt seconds and runs all systems once.
func (w *World) Update(dt float64) {
	if w == nil {
		return
	}
	w.dt = dt
	w.frame++
	w.scheduler.Update(w)
	w.events.flush()
}

// DeltaTime returns the seconds elapsed for the frame being updated.
func (w *World) DeltaTime() float64 {
	if w == nil {
		return 0
	}
	return w.dt
}

// Frame returns the number of completed or in-progress updates.
func (w *World) Frame() uint64 {
	if w == nil {
		return 0
	}
	return w.frame
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// SetPhysicsWorld attaches a physics world to this ECS world.
func (w *World) SetPhysicsWorld(pw *PhysicsWorld) {
	if w == nil {
		return
	}
	w.physicsWorld = pw
}

// PhysicsWorld returns the attached physics world, if any.
func (w *World) PhysicsWorld() *PhysicsWorld {
	if w == nil {
		return nil
	}
	return w.physicsWorld
}

// First returns the first live entity holding a component of kind k.
func (w *World) First(k component.Kind) (Entity, bool) {
	set := w.store(k.ID(), false)
	for _, e := range set.Entities() {
		if w.entities.isAlive(e) {
			return e, true
		}
	}
	return 0, false
}

// Count returns the number of entities holding a component of kind k.
func (w *World) Count(k component.Kind) int {
	return w.store(k.ID(), false).Len()
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w == nil {
		return nil
	}
	if s, ok := w.stores[id]; ok {
		return s
	}
	if !create {
		return nil
	}
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s := &SparseSet{}
	w.stores[id] = s
	return s
}

func (w *World) addComponent(e Entity, k component.Kind, value any) error {
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	if k == nil || !k.Valid() {
		return component.ErrInvalidComponentKind
	}
	w.store(k.ID(), true).Set(e, value)
	return nil
}

func (w *World) getComponent(e Entity, k component.Kind) (any, bool) {
	if w == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	set := w.store(k.ID(), false)
	if !set.Has(e) {
		return nil, false
	}
	return set.Get(e), true
}

func (w *World) removeComponent(e Entity, k component.Kind) bool {
	return w.store(k.ID(), false).Remove(e)
}

func (w *World) destroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	if w.physicsWorld != nil {
		w.physicsWorld.RemoveBody(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return IsAlive(w, e)
}

// Query returns the live entities holding every listed kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		sets = append(sets, w.store(k.ID(), false))
	}
	return IntersectEntities(sets...)
}
