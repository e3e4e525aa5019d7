package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/platformer/input"
)

// holdFrames is how long a direction stays held after its last key event.
// Terminals only report presses and auto-repeat, never releases.
const holdFrames = 12

// heldKeys turns terminal key presses into per-frame snapshots.
type heldKeys struct {
	leftUntil  int
	rightUntil int
	jumpAt     int
}

func newHeldKeys() *heldKeys {
	return &heldKeys{leftUntil: -1, rightUntil: -1, jumpAt: -1}
}

// press records a key seen while frame is the next frame to be simulated.
func (k *heldKeys) press(ev *tcell.EventKey, frame int) {
	switch {
	case ev.Key() == tcell.KeyLeft || isRune(ev, 'a'):
		k.leftUntil = frame + holdFrames
		k.rightUntil = -1
	case ev.Key() == tcell.KeyRight || isRune(ev, 'd'):
		k.rightUntil = frame + holdFrames
		k.leftUntil = -1
	case ev.Key() == tcell.KeyUp || isRune(ev, 'w') || isRune(ev, ' '):
		k.jumpAt = frame
	}
}

func (k *heldKeys) Poll(frame int) input.Snapshot {
	return input.Snapshot{
		Left:  frame <= k.leftUntil,
		Right: frame <= k.rightUntil,
		Jump:  frame == k.jumpAt,
	}
}

func isRune(ev *tcell.EventKey, r rune) bool {
	if ev.Key() != tcell.KeyRune {
		return false
	}
	c := ev.Rune()
	return c == r || c == r-'a'+'A'
}
