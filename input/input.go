// Package input defines the per-frame control snapshot and the sources that
// produce it.
package input

// Snapshot is the control state sampled once per frame.
type Snapshot struct {
	Left  bool
	Right bool
	Jump  bool
}

// Horizontal returns -1, 0 or 1. Pressing both directions cancels out.
func (s Snapshot) Horizontal() int {
	switch {
	case s.Left && !s.Right:
		return -1
	case s.Right && !s.Left:
		return 1
	default:
		return 0
	}
}

// Source produces the snapshot for a frame. Frames are numbered from zero.
type Source interface {
	Poll(frame int) Snapshot
}

// SourceFunc adapts a function to Source.
type SourceFunc func(frame int) Snapshot

func (f SourceFunc) Poll(frame int) Snapshot {
	if f == nil {
		return Snapshot{}
	}
	return f(frame)
}

// Idle never presses anything.
var Idle Source = SourceFunc(func(int) Snapshot { return Snapshot{} })

// Replay plays back a recorded sequence; frames past the end are idle.
type Replay []Snapshot

func (r Replay) Poll(frame int) Snapshot {
	if frame < 0 || frame >= len(r) {
		return Snapshot{}
	}
	return r[frame]
}

// Repeat builds a replay holding s for n frames.
func Repeat(s Snapshot, n int) Replay {
	out := make(Replay, n)
	for i := range out {
		out[i] = s
	}
	return out
}

// Concat joins replays end to end.
func Concat(parts ...Replay) Replay {
	var out Replay
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
