package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/cameraman/common"
	"github.com/milk9111/cameraman/ecs"
	"github.com/milk9111/cameraman/ecs/component"
)

// Viewport maps world coordinates to screen pixels. The camera position is
// the centre of the screen.
type Viewport struct {
	CamX, CamY float64
	Zoom       float64
	Width      float64
	Height     float64
}

// NewViewport builds a viewport from the first camera in the world.
func NewViewport(w *ecs.World, screen *ebiten.Image) (Viewport, bool) {
	if w == nil || screen == nil {
		return Viewport{}, false
	}
	cam, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return Viewport{}, false
	}
	t, ok := ecs.Get(w, cam, component.TransformComponent.Kind())
	if !ok {
		return Viewport{}, false
	}
	zoom := t.ScaleX
	if zoom <= 0 {
		zoom = 1
	}
	b := screen.Bounds()
	return Viewport{CamX: t.X, CamY: t.Y, Zoom: zoom, Width: float64(b.Dx()), Height: float64(b.Dy())}, true
}

// Bounds returns the visible world rectangle.
func (v Viewport) Bounds() common.Rect {
	w := v.Width / v.Zoom
	h := v.Height / v.Zoom
	return common.Rect{X: v.CamX - w/2, Y: v.CamY - h/2, Width: w, Height: h}
}

func (v Viewport) ToScreen(x, y float64) (float32, float32) {
	sx := (x-v.CamX)*v.Zoom + v.Width/2
	sy := (y-v.CamY)*v.Zoom + v.Height/2
	return float32(sx), float32(sy)
}

var boundsColor = color.RGBA{R: 0x40, G: 0x44, B: 0x55, A: 0xff}

type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil {
		return
	}
	view, ok := NewViewport(w, screen)
	if !ok {
		return
	}

	ecs.ForEach(w, component.LevelBoundsComponent.Kind(), func(_ ecs.Entity, b *component.LevelBounds) {
		x, y := view.ToScreen(b.MinX, b.MinY)
		vector.StrokeRect(screen, x, y, float32(b.Width()*view.Zoom), float32(b.Height()*view.Zoom), 2, boundsColor, false)
	})

	entities := w.Query(component.TransformComponent.Kind(), component.CircleComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := renderLayer(w, entities[i]), renderLayer(w, entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	visible := view.Bounds()
	for _, e := range entities {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		c, ok := ecs.Get(w, e, component.CircleComponent.Kind())
		if !ok || c.Radius <= 0 {
			continue
		}
		if !visible.Intersects(common.RectAround(t.X, t.Y, c.Radius)) {
			continue
		}
		x, y := view.ToScreen(t.X, t.Y)
		vector.DrawFilledCircle(screen, x, y, float32(c.Radius*view.Zoom), c.Color, true)
	}
}

func renderLayer(w *ecs.World, e ecs.Entity) int {
	if l, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		return l.Index
	}
	return 0
}
