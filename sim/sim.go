// Package sim runs the camera follow pipeline headless: a scripted target is
// stepped at a fixed dt and every frame of the camera's response is recorded.
package sim

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/milk9111/cameraman/ecs"
	"github.com/milk9111/cameraman/ecs/component"
	"github.com/milk9111/cameraman/ecs/entity"
	"github.com/milk9111/cameraman/ecs/system"
	"github.com/milk9111/cameraman/follow"
	"github.com/milk9111/cameraman/prefabs"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	DefaultFrames = 600
	DefaultDT     = 1.0 / 60.0
)

var ErrInvalidConfig = errors.New("sim: invalid config")

// Config describes one simulation run.
type Config struct {
	// Script is the tengo motion script driving the target, resolved through
	// prefabs.LoadScript.
	Script string
	Frames int
	DT     float64
	// Camera overrides camera.yaml when set.
	Camera *prefabs.CameraSpec
}

func (c Config) withDefaults() Config {
	if c.Frames == 0 {
		c.Frames = DefaultFrames
	}
	if c.DT == 0 {
		c.DT = DefaultDT
	}
	return c
}

func (c Config) validate() error {
	if c.Script == "" {
		return fmt.Errorf("%w: no motion script", ErrInvalidConfig)
	}
	if c.Frames < 0 {
		return fmt.Errorf("%w: frames=%d", ErrInvalidConfig, c.Frames)
	}
	if c.DT < 0 {
		return fmt.Errorf("%w: dt=%v", ErrInvalidConfig, c.DT)
	}
	return nil
}

// Sample is the observed state after one frame.
type Sample struct {
	Frame  int
	T      float64
	Target r3.Vec
	Camera r3.Vec
	LookAt r3.Vec
	Phase  follow.Phase
}

// Trace is the result of a run.
type Trace struct {
	Script  string
	DT      float64
	Params  follow.Params
	Samples []Sample
	Events  map[ecs.CameraEventKind]int
}

// Last returns the final sample.
func (t *Trace) Last() (Sample, bool) {
	if t == nil || len(t.Samples) == 0 {
		return Sample{}, false
	}
	return t.Samples[len(t.Samples)-1], true
}

// Run steps the world cfg.Frames times. The target is created at the script's
// position for t=0, but frame 1 moves it to pos(dt) before the camera snaps,
// so the first sample has the camera centered on the frame 1 position.
func Run(ctx context.Context, cfg Config) (*Trace, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	script, err := system.LoadMotionScript(cfg.Script)
	if err != nil {
		return nil, err
	}
	startX, startY, err := script.Position(0, cfg.DT)
	if err != nil {
		return nil, err
	}

	camSpec := cfg.Camera
	if camSpec == nil {
		camSpec, err = prefabs.LoadCameraSpec()
		if err != nil {
			return nil, err
		}
	}

	w := ecs.NewWorld()
	events := system.NewCameraEventLogSystem(false)
	w.AddSystem(system.NewMotionScriptSystem())
	w.AddSystem(system.NewCameraCenterSystem())
	w.AddSystem(system.NewCameraSystem())
	w.AddSystem(events)

	target, err := entity.NewTarget(w, &prefabs.TargetSpec{
		Name:      "sim",
		Transform: prefabs.TransformSpec{X: startX, Y: startY},
		Script:    cfg.Script,
	}, entity.TargetScripted)
	if err != nil {
		return nil, err
	}
	camera, err := entity.NewCamera(w, target, camSpec)
	if err != nil {
		return nil, err
	}

	camComp, _ := ecs.Get(w, camera, component.CameraComponent.Kind())
	camTransform, _ := ecs.Get(w, camera, component.TransformComponent.Kind())
	targetTransform, _ := ecs.Get(w, target, component.TransformComponent.Kind())

	trace := &Trace{
		Script:  cfg.Script,
		DT:      cfg.DT,
		Params:  camComp.Follow.Params(),
		Samples: make([]Sample, 0, cfg.Frames),
	}

	for i := 1; i <= cfg.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return trace, err
		}
		w.Update(cfg.DT)
		trace.Samples = append(trace.Samples, Sample{
			Frame:  i,
			T:      float64(i) * cfg.DT,
			Target: targetTransform.Position(),
			Camera: camTransform.Position(),
			LookAt: camComp.Follow.LookAt(),
			Phase:  camComp.Follow.Phase(),
		})
	}

	trace.Events = map[ecs.CameraEventKind]int{}
	for _, kind := range []ecs.CameraEventKind{
		ecs.CameraEventTravelStarted,
		ecs.CameraEventArrived,
		ecs.CameraEventSettleFired,
		ecs.CameraEventTargetLost,
	} {
		if n := events.Count(kind); n > 0 {
			trace.Events[kind] = n
		}
	}

	log.Printf("sim: %s frames=%d dt=%.4f events=%v", cfg.Script, cfg.Frames, cfg.DT, trace.Events)
	return trace, nil
}
