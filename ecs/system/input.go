package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/input"
)

// InputSystem samples its source once per tick and hands the snapshot to
// every entity with an Input component.
type InputSystem struct {
	source input.Source
	frame  int
}

func NewInputSystem(source input.Source) *InputSystem {
	if source == nil {
		source = input.Idle
	}
	return &InputSystem{source: source}
}

// SetSource swaps the input source without resetting the frame counter.
func (i *InputSystem) SetSource(source input.Source) {
	if i == nil || source == nil {
		return
	}
	i.source = source
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil {
		return
	}

	snap := i.source.Poll(i.frame)
	i.frame++

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, in *component.Input) {
		in.Apply(snap)
	})
}
