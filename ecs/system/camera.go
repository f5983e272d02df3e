package system

import (
	"github.com/milk9111/cameraman/ecs"
	"github.com/milk9111/cameraman/ecs/component"
	"github.com/milk9111/cameraman/follow"
	"gonum.org/v1/gonum/spatial/r3"
)

// CameraSystem moves every camera toward its target once per frame. It must
// run after anything that moves targets.
type CameraSystem struct {
	lost map[ecs.Entity]bool
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{lost: map[ecs.Entity]bool{}}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaTime()
	seen := make(map[ecs.Entity]bool, len(cs.lost))

	ecs.ForEach2(w, component.CameraComponent.Kind(), component.TransformComponent.Kind(), func(cam ecs.Entity, camComp *component.Camera, camTransform *component.Transform) {
		seen[cam] = true
		if camComp.Follow == nil || ecs.Has(w, cam, component.CameraCenterRequestComponent.Kind()) {
			return
		}

		targetPos, ok := resolveTarget(w, camComp.Follow.Target())
		if !ok {
			if !cs.lost[cam] {
				cs.lost[cam] = true
				pushCameraEvent(w, cam, ecs.CameraEventTargetLost)
			}
			return
		}
		delete(cs.lost, cam)

		state := camComp.Follow
		wasTraveling := state.Traveling()
		wasSettled := state.Settle().Finished()

		next, _ := follow.Step(state, camTransform.Position(), targetPos, dt)
		camTransform.SetPosition(next)

		switch {
		case !wasTraveling && state.Traveling():
			pushCameraEvent(w, cam, ecs.CameraEventTravelStarted)
		case wasTraveling && !state.Traveling():
			pushCameraEvent(w, cam, ecs.CameraEventArrived)
		}
		if !wasSettled && state.Settle().Finished() {
			pushCameraEvent(w, cam, ecs.CameraEventSettleFired)
		}
	})

	// Destroyed cameras never resolve again.
	for cam := range cs.lost {
		if !seen[cam] {
			delete(cs.lost, cam)
		}
	}
}

// resolveTarget looks the target up by id. Only live entities tagged as
// targets with a transform resolve.
func resolveTarget(w *ecs.World, ref follow.TargetRef) (r3.Vec, bool) {
	target := ecs.Entity(ref)
	if !w.IsAlive(target) || !ecs.Has(w, target, component.TargetTagComponent.Kind()) {
		return r3.Vec{}, false
	}
	t, ok := ecs.Get(w, target, component.TransformComponent.Kind())
	if !ok {
		return r3.Vec{}, false
	}
	return t.Position(), true
}

func pushCameraEvent(w *ecs.World, cam ecs.Entity, kind ecs.CameraEventKind) {
	w.Events().Push(ecs.Event{
		Type: ecs.CameraEventType,
		Data: ecs.CameraEvent{Camera: cam, Kind: kind},
	})
}

// TargetEntity returns the entity a camera follows.
func TargetEntity(camComp *component.Camera) ecs.Entity {
	if camComp == nil || camComp.Follow == nil {
		return 0
	}
	return ecs.Entity(camComp.Follow.Target())
}
