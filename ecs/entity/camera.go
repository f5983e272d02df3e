package entity

import (
	"fmt"
	"log"

	"github.com/milk9111/cameraman/ecs"
	"github.com/milk9111/cameraman/ecs/component"
	"github.com/milk9111/cameraman/follow"
	"github.com/milk9111/cameraman/prefabs"
)

// NewCamera builds a camera entity following target with the tuning of
// spec. The camera is snapped onto the target by CameraCenterSystem.
func NewCamera(w *ecs.World, target ecs.Entity, spec *prefabs.CameraSpec) (ecs.Entity, error) {
	if spec == nil {
		spec = &prefabs.CameraSpec{}
	}
	params, err := spec.Params()
	if err != nil {
		return 0, fmt.Errorf("camera: %w", err)
	}
	state, err := follow.BindParams(follow.TargetRef(target), params)
	if err != nil {
		return 0, fmt.Errorf("camera: %w", err)
	}
	return newCamera(w, spec, state)
}

// NewDefaultCamera follows target with the default dead zone, ahead factor
// and settle delay.
func NewDefaultCamera(w *ecs.World, target ecs.Entity) (ecs.Entity, error) {
	return newCamera(w, &prefabs.CameraSpec{}, follow.BindDefault(follow.TargetRef(target)))
}

// NewCameraFromPrefab loads camera.yaml and binds to target.
func NewCameraFromPrefab(w *ecs.World, target ecs.Entity) (ecs.Entity, error) {
	spec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return 0, fmt.Errorf("camera: load spec: %w", err)
	}
	return NewCamera(w, target, spec)
}

func newCamera(w *ecs.World, spec *prefabs.CameraSpec, state *follow.State) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}

	scaleX, scaleY := spec.Transform.ScaleX, spec.Transform.ScaleY
	if scaleX == 0 {
		scaleX = 1
	}
	if scaleY == 0 {
		scaleY = 1
	}
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.Transform.X,
		Y:        spec.Transform.Y,
		Z:        spec.Transform.Z,
		ScaleX:   scaleX,
		ScaleY:   scaleY,
		Rotation: spec.Transform.Rotation,
	}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		TargetName: spec.Target,
		Follow:     state,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	if err := ecs.Add(w, camera, component.CameraCenterRequestComponent.Kind(), &component.CameraCenterRequest{}); err != nil {
		return 0, fmt.Errorf("camera: add center request: %w", err)
	}

	dz := state.DeadZone()
	log.Printf("camera: bound entity=%s target=%d dead_zone=(%.1f, %.1f)", camera, state.Target(), dz.X, dz.Y)
	return camera, nil
}

// NewCameraDebugMarker creates the marker drawn at camera's look-at point.
func NewCameraDebugMarker(w *ecs.World, camera ecs.Entity) (ecs.Entity, error) {
	if !w.IsAlive(camera) || !ecs.Has(w, camera, component.CameraComponent.Kind()) {
		return 0, fmt.Errorf("camera debug: %w", component.ErrEntityNotAlive)
	}
	marker := ecs.CreateEntity(w)
	if err := ecs.Add(w, marker, component.CameraDebugMarkerComponent.Kind(), &component.CameraDebugMarker{Camera: uint64(camera)}); err != nil {
		return 0, fmt.Errorf("camera debug: add marker: %w", err)
	}
	if err := ecs.Add(w, marker, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("camera debug: add transform: %w", err)
	}
	return marker, nil
}
