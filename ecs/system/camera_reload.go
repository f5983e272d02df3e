package system

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/milk9111/cameraman/ecs"
	"github.com/milk9111/cameraman/ecs/component"
	"github.com/milk9111/cameraman/prefabs"
)

// CameraConfigReloadSystem applies edited prefab files on the frame
// goroutine: camera.yaml retunes every camera, tengo scripts are recompiled.
// Broken edits are logged and the previous tuning is kept.
type CameraConfigReloadSystem struct {
	watcher *prefabs.Watcher
	motion  *MotionScriptSystem
	pending []string
}

func NewCameraConfigReloadSystem(watcher *prefabs.Watcher, motion *MotionScriptSystem) *CameraConfigReloadSystem {
	return &CameraConfigReloadSystem{watcher: watcher, motion: motion}
}

// Notify queues a changed file as if the watcher had reported it.
func (s *CameraConfigReloadSystem) Notify(path string) {
	s.pending = append(s.pending, path)
}

func (s *CameraConfigReloadSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	names, err := s.watcher.Poll()
	if err != nil {
		log.Printf("reload: watcher: %v", err)
	}
	names = append(s.pending, names...)
	s.pending = nil

	cameraChanged := false
	for _, name := range names {
		switch {
		case prefabs.IsCameraSpec(name):
			cameraChanged = true
		case strings.EqualFold(filepath.Ext(name), ".tengo") && s.motion != nil:
			s.motion.Invalidate(name)
			log.Printf("reload: script %s", filepath.Base(name))
		}
	}
	if cameraChanged {
		s.reloadCameras(w)
	}
}

func (s *CameraConfigReloadSystem) reloadCameras(w *ecs.World) {
	spec, err := prefabs.LoadCameraSpec()
	if err != nil {
		log.Printf("reload: %v", err)
		return
	}
	params, err := spec.Params()
	if err != nil {
		log.Printf("reload: %v", err)
		return
	}

	count := 0
	ecs.ForEach(w, component.CameraComponent.Kind(), func(cam ecs.Entity, camComp *component.Camera) {
		if camComp.Follow == nil {
			return
		}
		if err := camComp.Follow.Retune(params); err != nil {
			log.Printf("reload: camera=%s: %v", cam, err)
			return
		}
		count++
	})
	log.Printf("reload: camera.yaml applied to %d camera(s) dead_zone=(%.1f, %.1f) lerp=%.3f", count, params.DeadZone.X, params.DeadZone.Y, params.Lerp)
}
