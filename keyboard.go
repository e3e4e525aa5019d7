package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/platformer/input"
)

// keyboardSource reads the held keys each frame. The jump press edge is
// derived downstream, so holding W only jumps once.
type keyboardSource struct{}

func (keyboardSource) Poll(int) input.Snapshot {
	return input.Snapshot{
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jump:  ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
	}
}
