package system

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/cameraman/ecs"
	"github.com/milk9111/cameraman/ecs/component"
	"github.com/milk9111/cameraman/ecs/entity"
	"github.com/milk9111/cameraman/follow"
	"github.com/milk9111/cameraman/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

const frameDT = 1.0 / 60.0

type fixture struct {
	w      *ecs.World
	target ecs.Entity
	camera ecs.Entity
	events *CameraEventLogSystem
}

func newFixture(t *testing.T, targetX, targetY float64) *fixture {
	t.Helper()
	w := ecs.NewWorld()
	events := NewCameraEventLogSystem(false)
	w.AddSystem(NewCameraCenterSystem())
	w.AddSystem(NewCameraSystem())
	w.AddSystem(NewCameraDebugMarkerSystem())
	w.AddSystem(events)

	target, err := entity.NewTarget(w, &prefabs.TargetSpec{Transform: prefabs.TransformSpec{X: targetX, Y: targetY}}, entity.TargetStatic)
	require.NoError(t, err)
	camera, err := entity.NewDefaultCamera(w, target)
	require.NoError(t, err)
	return &fixture{w: w, target: target, camera: camera, events: events}
}

func (f *fixture) camTransform(t *testing.T) *component.Transform {
	t.Helper()
	ct, ok := ecs.Get(f.w, f.camera, component.TransformComponent.Kind())
	require.True(t, ok)
	return ct
}

func (f *fixture) camState(t *testing.T) *follow.State {
	t.Helper()
	cc, ok := ecs.Get(f.w, f.camera, component.CameraComponent.Kind())
	require.True(t, ok)
	return cc.Follow
}

func (f *fixture) moveTarget(t *testing.T, x, y float64) {
	t.Helper()
	tt, ok := ecs.Get(f.w, f.target, component.TransformComponent.Kind())
	require.True(t, ok)
	tt.X, tt.Y = x, y
}

func TestCameraCentersOnSpawn(t *testing.T) {
	f := newFixture(t, -150, 40)
	f.camTransform(t).Z = 1000

	f.w.Update(frameDT)

	ct := f.camTransform(t)
	assert.Equal(t, -150.0, ct.X)
	assert.Equal(t, 40.0, ct.Y)
	assert.Equal(t, 1000.0, ct.Z)
	assert.False(t, ecs.Has(f.w, f.camera, component.CameraCenterRequestComponent.Kind()))
	assert.False(t, f.camState(t).Traveling())
	assert.Equal(t, 0, f.events.Count(ecs.CameraEventTravelStarted))
}

func TestCameraFollowsTargetStep(t *testing.T) {
	f := newFixture(t, 0, 0)
	f.w.Update(frameDT)

	f.moveTarget(t, 100, 0)
	f.w.Update(1.0)

	ct := f.camTransform(t)
	assert.InDelta(t, 4.0, ct.X, 1e-9)
	assert.InDelta(t, 0.0, ct.Y, 1e-9)
	assert.True(t, f.camState(t).Traveling())
	assert.Equal(t, 1, f.events.Count(ecs.CameraEventTravelStarted))

	for i := 0; i < 5000 && f.camState(t).Traveling(); i++ {
		f.w.Update(frameDT)
	}
	assert.False(t, f.camState(t).Traveling())
	assert.Equal(t, 1, f.events.Count(ecs.CameraEventArrived))
	assert.Less(t, math.Abs(f.camTransform(t).X-100), follow.DefaultCenteredThreshold)
}

func TestCameraSettleFiresInsideDeadZone(t *testing.T) {
	f := newFixture(t, 0, 0)
	f.w.Update(frameDT)
	f.moveTarget(t, 20, 10)

	for i := 0; i < 20; i++ {
		f.w.Update(frameDT)
	}
	assert.Equal(t, 0.0, f.camTransform(t).X)
	assert.Equal(t, follow.PhaseSettling, f.camState(t).Phase())

	for i := 0; i < 30; i++ {
		f.w.Update(frameDT)
	}
	assert.Equal(t, 1, f.events.Count(ecs.CameraEventSettleFired))
	assert.Greater(t, f.camTransform(t).X, 0.0)
	assert.Equal(t, 0, f.events.Count(ecs.CameraEventTravelStarted))
}

func TestCameraSkipsUnresolvedTarget(t *testing.T) {
	f := newFixture(t, 10, 10)
	f.w.Update(frameDT)
	before := *f.camTransform(t)
	state := f.camState(t)
	prev := state.PrevTargetPosition()

	require.True(t, ecs.DestroyEntity(f.w, f.target))
	for i := 0; i < 10; i++ {
		f.w.Update(frameDT)
	}

	assert.Equal(t, before, *f.camTransform(t))
	assert.Equal(t, prev, state.PrevTargetPosition())
	assert.Equal(t, 1, f.events.Count(ecs.CameraEventTargetLost))
}

func TestCameraForgetsLostTargetOfDestroyedCamera(t *testing.T) {
	w := ecs.NewWorld()
	cameras := NewCameraSystem()
	w.AddSystem(NewCameraCenterSystem())
	w.AddSystem(cameras)

	target, err := entity.NewTarget(w, nil, entity.TargetStatic)
	require.NoError(t, err)
	camera, err := entity.NewDefaultCamera(w, target)
	require.NoError(t, err)
	w.Update(frameDT)

	require.True(t, ecs.DestroyEntity(w, target))
	w.Update(frameDT)
	assert.True(t, cameras.lost[camera])

	require.True(t, ecs.DestroyEntity(w, camera))
	w.Update(frameDT)
	assert.Empty(t, cameras.lost)
}

func TestCameraRequiresTargetTag(t *testing.T) {
	w := ecs.NewWorld()
	w.AddSystem(NewCameraCenterSystem())
	w.AddSystem(NewCameraSystem())

	plain := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, plain, component.TransformComponent.Kind(), &component.Transform{X: 50, Y: 50}))
	camera, err := entity.NewDefaultCamera(w, plain)
	require.NoError(t, err)

	w.Update(frameDT)
	ct, _ := ecs.Get(w, camera, component.TransformComponent.Kind())
	assert.Equal(t, 0.0, ct.X)
	assert.True(t, ecs.Has(w, camera, component.CameraCenterRequestComponent.Kind()))

	require.NoError(t, ecs.Add(w, plain, component.TargetTagComponent.Kind(), &component.TargetTag{}))
	w.Update(frameDT)
	assert.Equal(t, 50.0, ct.X)
	assert.Equal(t, 50.0, ct.Y)
	assert.False(t, ecs.Has(w, camera, component.CameraCenterRequestComponent.Kind()))
}

func TestNewCameraRejectsInvalidSpec(t *testing.T) {
	w := ecs.NewWorld()
	target, err := entity.NewTarget(w, nil, entity.TargetStatic)
	require.NoError(t, err)

	_, err = entity.NewCamera(w, target, &prefabs.CameraSpec{Lerp: 3})
	assert.ErrorIs(t, err, follow.ErrInvalidParams)
}

func TestCameraDebugMarkerTracksLookAt(t *testing.T) {
	f := newFixture(t, 0, 0)
	marker, err := entity.NewCameraDebugMarker(f.w, f.camera)
	require.NoError(t, err)

	f.w.Update(frameDT)
	f.moveTarget(t, 100, 0)
	f.w.Update(1.0)

	mt, ok := ecs.Get(f.w, marker, component.TransformComponent.Kind())
	require.True(t, ok)
	assert.InDelta(t, 200, mt.X, 1e-9)
	assert.Equal(t, float64(debugMarkerZ), mt.Z)

	require.True(t, ecs.DestroyEntity(f.w, f.camera))
	f.w.Update(frameDT)
	assert.False(t, f.w.IsAlive(marker))

	_, err = entity.NewCameraDebugMarker(f.w, f.camera)
	assert.ErrorIs(t, err, component.ErrEntityNotAlive)
}

func TestCameraConfigReload(t *testing.T) {
	dir := t.TempDir()
	prev := prefabs.Dir
	prefabs.Dir = dir
	t.Cleanup(func() { prefabs.Dir = prev })

	f := newFixture(t, 0, 0)
	reload := NewCameraConfigReloadSystem(nil, nil)
	f.w.AddSystem(reload)

	path := filepath.Join(dir, "camera.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dead_zone: {x: 80, y: 40}\nlerp: 0.05\n"), 0o644))
	reload.Notify(path)
	f.w.Update(frameDT)

	state := f.camState(t)
	assert.Equal(t, r2.Vec{X: 80, Y: 40}, state.DeadZone())
	assert.Equal(t, 0.05, state.Params().Lerp)
	assert.Equal(t, follow.TargetRef(f.target), state.Target())

	require.NoError(t, os.WriteFile(path, []byte("lerp: 7\n"), 0o644))
	reload.Notify(path)
	f.w.Update(frameDT)
	assert.Equal(t, 0.05, state.Params().Lerp)

	require.NoError(t, os.WriteFile(path, []byte("dead_zone: [oops\n"), 0o644))
	reload.Notify(path)
	f.w.Update(frameDT)
	assert.Equal(t, r2.Vec{X: 80, Y: 40}, state.DeadZone())
}

func TestViewportToScreen(t *testing.T) {
	v := Viewport{CamX: 100, CamY: 50, Zoom: 2, Width: 800, Height: 600}
	x, y := v.ToScreen(100, 50)
	assert.Equal(t, float32(400), x)
	assert.Equal(t, float32(300), y)

	x, y = v.ToScreen(110, 40)
	assert.Equal(t, float32(420), x)
	assert.Equal(t, float32(280), y)
}

func TestViewportBounds(t *testing.T) {
	v := Viewport{CamX: 100, CamY: 50, Zoom: 2, Width: 800, Height: 600}
	b := v.Bounds()
	assert.Equal(t, -100.0, b.X)
	assert.Equal(t, -100.0, b.Y)
	assert.Equal(t, 400.0, b.Width)
	assert.Equal(t, 300.0, b.Height)
}
