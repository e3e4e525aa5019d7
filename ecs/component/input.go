package component

import "github.com/milk9111/platformer/input"

// Input stores per-frame input state for an entity.
type Input struct {
	input.Snapshot
	// JumpPressed is true only on the first frame Jump is held.
	JumpPressed bool
	prevJump    bool
}

// Apply records a new snapshot and derives the press edge.
func (i *Input) Apply(s input.Snapshot) {
	i.Snapshot = s
	i.JumpPressed = s.Jump && !i.prevJump
	i.prevJump = s.Jump
}

var InputComponent = NewComponent[Input]()
