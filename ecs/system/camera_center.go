package system

import (
	"log"

	"github.com/milk9111/cameraman/ecs"
	"github.com/milk9111/cameraman/ecs/component"
)

// CameraCenterSystem performs the one-time snap of a freshly bound camera
// onto its target. Requests stay queued until the target resolves.
type CameraCenterSystem struct{}

func NewCameraCenterSystem() *CameraCenterSystem {
	return &CameraCenterSystem{}
}

func (s *CameraCenterSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.CameraCenterRequestComponent.Kind(), func(cam ecs.Entity, _ *component.CameraCenterRequest) {
		camComp, ok := ecs.Get(w, cam, component.CameraComponent.Kind())
		if !ok || camComp.Follow == nil {
			return
		}
		camTransform, ok := ecs.Get(w, cam, component.TransformComponent.Kind())
		if !ok {
			return
		}
		targetPos, ok := resolveTarget(w, camComp.Follow.Target())
		if !ok {
			return
		}

		camTransform.SetPosition(camComp.Follow.Center(camTransform.Position(), targetPos))
		ecs.Remove(w, cam, component.CameraCenterRequestComponent.Kind())
		log.Printf("camera: centered entity=%s on target=%s at (%.1f, %.1f)", cam, TargetEntity(camComp), targetPos.X, targetPos.Y)
	})
}
