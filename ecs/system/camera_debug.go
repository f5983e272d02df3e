package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/cameraman/ecs"
	"github.com/milk9111/cameraman/ecs/component"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	debugMarkerRadius = 2
	debugLineWidth    = 1
	debugMarkerZ      = 100
)

var debugFace = text.NewGoXFace(basicfont.Face7x13)

// CameraDebugMarkerSystem keeps each debug marker on its camera's look-at
// point and destroys markers whose camera is gone.
type CameraDebugMarkerSystem struct{}

func NewCameraDebugMarkerSystem() *CameraDebugMarkerSystem {
	return &CameraDebugMarkerSystem{}
}

func (s *CameraDebugMarkerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.CameraDebugMarkerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, marker *component.CameraDebugMarker, t *component.Transform) {
		cam := ecs.Entity(marker.Camera)
		camComp, ok := ecs.Get(w, cam, component.CameraComponent.Kind())
		if !ok || camComp.Follow == nil {
			ecs.DestroyEntity(w, e)
			return
		}
		lookAt := camComp.Follow.LookAt()
		t.X = lookAt.X
		t.Y = lookAt.Y
		t.Z = debugMarkerZ
	})
}

// DrawCameraDebug draws, for every camera, its dead zone, the line from the
// target to the look-at point and the look-at marker. It only reads state
// and should run after the camera system.
func DrawCameraDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	view, ok := NewViewport(w, screen)
	if !ok {
		return
	}

	ecs.ForEach2(w, component.CameraComponent.Kind(), component.TransformComponent.Kind(), func(cam ecs.Entity, camComp *component.Camera, camTransform *component.Transform) {
		state := camComp.Follow
		if state == nil {
			return
		}

		dz := state.DeadZone()
		x, y := view.ToScreen(camTransform.X-dz.X, camTransform.Y-dz.Y)
		vector.StrokeRect(screen, x, y, float32(dz.X*2*view.Zoom), float32(dz.Y*2*view.Zoom), debugLineWidth, colornames.Red, false)

		lookAt := state.LookAt()
		if targetPos, ok := resolveTarget(w, state.Target()); ok {
			tx, ty := view.ToScreen(targetPos.X, targetPos.Y)
			lx, ly := view.ToScreen(lookAt.X, lookAt.Y)
			vector.StrokeLine(screen, tx, ty, lx, ly, debugLineWidth, colornames.Lime, true)
		}

		label := fmt.Sprintf("cam %s  %s  settle %.2f/%.2f", cam, state.Phase(), state.Settle().Elapsed(), state.Settle().Duration())
		drawDebugText(screen, label, float64(x), float64(y)-16, colornames.White)
	})

	ecs.ForEach2(w, component.CameraDebugMarkerComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.CameraDebugMarker, t *component.Transform) {
		mx, my := view.ToScreen(t.X, t.Y)
		vector.DrawFilledCircle(screen, mx, my, debugMarkerRadius, colornames.Lime, true)
	})
}

func drawDebugText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, debugFace, op)
}
