package component

// AnimationDef is one read-only clip: FrameCount frames, each held for
// FrameBuffer ticks.
type AnimationDef struct {
	FrameCount  int
	FrameBuffer int
}

type Animation struct {
	Defs    map[string]AnimationDef
	Current string
	Frame   int
	Elapsed int
}

// Play switches clips. Switching to the current clip is a no-op; switching
// to an unknown clip is ignored.
func (a *Animation) Play(name string) {
	if a == nil || name == a.Current {
		return
	}
	if _, ok := a.Defs[name]; !ok {
		return
	}
	a.Current = name
	a.Frame = 0
}

var AnimationComponent = NewComponent[Animation]()
