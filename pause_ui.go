package main

import (
	"fmt"
	"image/color"

	"github.com/milk9111/cameraman/common"
	"github.com/milk9111/cameraman/ecs"
	"github.com/milk9111/cameraman/ecs/component"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

var pauseTextColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// pauseReadout holds the text widgets that show the live follow state while
// the demo is paused.
type pauseReadout struct {
	phase  *widget.Text
	lookAt *widget.Text
	tuning *widget.Text
}

func newPauseReadout() *pauseReadout {
	return &pauseReadout{}
}

func (r *pauseReadout) refresh(w *ecs.World, camera ecs.Entity) {
	if r == nil || r.phase == nil {
		return
	}
	camComp, ok := ecs.Get(w, camera, component.CameraComponent.Kind())
	if !ok || camComp.Follow == nil {
		r.phase.Label = "camera: none"
		return
	}
	state := camComp.Follow
	settle := state.Settle()
	r.phase.Label = fmt.Sprintf("phase: %s   settle %.2f / %.2f", state.Phase(), settle.Elapsed(), settle.Duration())
	lookAt := state.LookAt()
	r.lookAt.Label = fmt.Sprintf("look at: (%.1f, %.1f)", lookAt.X, lookAt.Y)
	p := state.Params()
	r.tuning.Label = fmt.Sprintf("dead zone (%.0f, %.0f)  ahead (%.2f, %.2f)  lerp %.3f", p.DeadZone.X, p.DeadZone.Y, p.AheadFactor.X, p.AheadFactor.Y, p.Lerp)
}

// NewPauseUI builds a centered pause panel with the camera readout and
// Resume and Copy Tuning buttons.
func NewPauseUI(g *Game) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{Idle: pauseTextColor}
	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	newLabel := func(s string) *widget.Text {
		return widget.NewText(
			widget.TextOpts.Text(s, &face, pauseTextColor),
			widget.TextOpts.WidgetOpts(centered),
		)
	}

	title := newLabel("Paused")
	g.readout.phase = newLabel("")
	g.readout.lookAt = newLabel("")
	g.readout.tuning = newLabel("")

	resumeBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Resume", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(centered),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.paused = false
		}),
	)

	copyBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Copy Tuning", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(centered),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.copyTuning()
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(g.readout.phase)
	panel.AddChild(g.readout.lookAt)
	panel.AddChild(g.readout.tuning)
	panel.AddChild(resumeBtn)
	panel.AddChild(copyBtn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}
