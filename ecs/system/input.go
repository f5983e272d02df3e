package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/cameraman/ecs"
	"github.com/milk9111/cameraman/ecs/component"
)

const stickDeadzone = 0.1

type InputSystem struct{}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	up := ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	down := ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)

	moveX, moveY := 0.0, 0.0
	if left {
		moveX -= 1
	}
	if right {
		moveX += 1
	}
	// Screen space: y grows downward.
	if up {
		moveY -= 1
	}
	if down {
		moveY += 1
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		sx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		sy := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(sx) > stickDeadzone {
			moveX = sx
		}
		if math.Abs(sy) > stickDeadzone {
			moveY = sy
		}
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		if !ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
			return
		}
		input.MoveX = moveX
		input.MoveY = moveY
	})
}
