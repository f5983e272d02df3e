package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/cameraman/common"
	"github.com/milk9111/cameraman/ecs"
	"github.com/milk9111/cameraman/ecs/component"
	"github.com/milk9111/cameraman/ecs/entity"
	"github.com/milk9111/cameraman/ecs/system"
	"github.com/milk9111/cameraman/prefabs"
	"golang.design/x/clipboard"
)

var backgroundColor = color.RGBA{R: 0x12, G: 0x14, B: 0x1c, A: 0xff}

type Game struct {
	frames int

	world   *ecs.World
	render  *system.RenderSystem
	events  *system.CameraEventLogSystem
	watcher *prefabs.Watcher

	camera ecs.Entity
	target ecs.Entity
	marker ecs.Entity

	debug        bool
	paused       bool
	pauseFade    float64
	pauseUI      *ebitenui.UI
	readout      *pauseReadout
	clipboardOK  bool
	statusText   string
	statusFrames int
}

func NewGame(debug bool, scriptPath string) (*Game, error) {
	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld())

	scene, err := prefabs.LoadSceneSpec()
	if err != nil {
		return nil, err
	}
	if _, err := entity.NewScenery(w, scene); err != nil {
		return nil, err
	}

	targetSpec, err := prefabs.LoadTargetSpec()
	if err != nil {
		return nil, err
	}
	mode := entity.TargetPlayer
	if scriptPath != "" {
		targetSpec.Script = scriptPath
		mode = entity.TargetScripted
	}
	target, err := entity.NewTarget(w, targetSpec, mode)
	if err != nil {
		return nil, err
	}

	camera, err := entity.NewCameraFromPrefab(w, target)
	if err != nil {
		return nil, err
	}

	g := &Game{
		world:  w,
		render: system.NewRenderSystem(),
		events: system.NewCameraEventLogSystem(debug),
		camera: camera,
		target: target,
		debug:  debug,
	}
	if debug {
		if err := g.addDebugMarker(); err != nil {
			return nil, err
		}
	}

	watcher, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
	if err != nil {
		log.Printf("game: hot reload disabled: %v", err)
		watcher = nil
	}
	g.watcher = watcher

	motion := system.NewMotionScriptSystem()
	w.AddSystem(system.NewInputSystem())
	w.AddSystem(motion)
	w.AddSystem(system.NewPhysicsSystem())
	w.AddSystem(system.NewCameraConfigReloadSystem(watcher, motion))
	w.AddSystem(system.NewCameraCenterSystem())
	w.AddSystem(system.NewCameraSystem())
	w.AddSystem(system.NewCameraDebugMarkerSystem())
	w.AddSystem(g.events)

	if err := clipboard.Init(); err != nil {
		log.Printf("game: clipboard unavailable: %v", err)
	} else {
		g.clipboardOK = true
	}

	g.readout = newPauseReadout()
	g.pauseUI = NewPauseUI(g)
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("game: close watcher: %v", err)
		}
	}
}

func (g *Game) Update() error {
	g.frames++
	if g.statusFrames > 0 {
		g.statusFrames--
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.toggleDebug()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyTuning()
	}

	if g.paused {
		g.pauseFade = common.Lerp(g.pauseFade, 1, 0.2)
		g.readout.refresh(g.world, g.camera)
		g.pauseUI.Update()
		return nil
	}
	g.pauseFade = 0

	g.world.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.render.Draw(g.world, screen)
	if g.debug {
		system.DrawPhysicsDebug(g.world, screen)
		system.DrawCameraDebug(g.world, screen)
	}

	status := fmt.Sprintf("Frames: %d    FPS: %.2f    [P] pause  [F1] debug  [C] copy tuning", g.frames, ebiten.ActualFPS())
	if g.statusFrames > 0 {
		status += "\n" + g.statusText
	}
	ebitenutil.DebugPrint(screen, status)

	if g.paused {
		shade := color.RGBA{A: uint8(g.pauseFade * 160)}
		vector.FillRect(screen, 0, 0, common.BaseWidth, common.BaseHeight, shade, false)
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) toggleDebug() {
	g.debug = !g.debug
	g.events.Verbose = g.debug
	if g.debug {
		if err := g.addDebugMarker(); err != nil {
			log.Printf("game: %v", err)
		}
		return
	}
	if g.marker != 0 {
		ecs.DestroyEntity(g.world, g.marker)
		g.marker = 0
	}
}

func (g *Game) addDebugMarker() error {
	marker, err := entity.NewCameraDebugMarker(g.world, g.camera)
	if err != nil {
		return err
	}
	g.marker = marker
	return nil
}

// copyTuning puts the live camera tuning on the clipboard as camera.yaml.
func (g *Game) copyTuning() {
	camComp, ok := ecs.Get(g.world, g.camera, component.CameraComponent.Kind())
	if !ok || camComp.Follow == nil {
		return
	}
	spec := prefabs.CameraSpecFromParams("camera", camComp.TargetName, camComp.Follow.Params())
	data, err := spec.Marshal()
	if err != nil {
		log.Printf("game: marshal camera tuning: %v", err)
		return
	}
	if !g.clipboardOK {
		log.Printf("game: camera tuning\n%s", data)
		g.setStatus("clipboard unavailable, tuning written to log")
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	g.setStatus("camera tuning copied")
}

func (g *Game) setStatus(s string) {
	g.statusText = s
	g.statusFrames = 2 * common.TPS
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
