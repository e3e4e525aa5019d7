package input

import (
	"fmt"
	"log/slog"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Script drives input from a tengo program. Before each run the script sees
// the globals `frame` (int) and `state` (a map kept across frames); afterwards
// the globals `left`, `right` and `jump` are read back as booleans.
type Script struct {
	name     string
	compiled *tengo.Compiled
	state    *tengo.Map
	logger   *slog.Logger
	err      error
}

// NewScript compiles src once. The standard tengo modules are importable.
func NewScript(name string, src []byte, logger *slog.Logger) (*Script, error) {
	if logger == nil {
		logger = slog.Default()
	}
	script := tengo.NewScript(src)
	if err := script.Add("frame", 0); err != nil {
		return nil, fmt.Errorf("input: declare frame in %s: %w", name, err)
	}
	if err := script.Add("state", map[string]any{}); err != nil {
		return nil, fmt.Errorf("input: declare state in %s: %w", name, err)
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("input: compile %s: %w", name, err)
	}
	return &Script{
		name:     name,
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
		logger:   logger,
	}, nil
}

// Poll runs the script for frame. A failing run yields an idle snapshot and
// the error is kept for Err; later frames still run.
func (s *Script) Poll(frame int) Snapshot {
	if s == nil || s.compiled == nil {
		return Snapshot{}
	}
	if err := s.run(frame); err != nil {
		if s.err == nil {
			s.logger.Warn("input script failed", "script", s.name, "frame", frame, "err", err)
		}
		s.err = err
		return Snapshot{}
	}
	return Snapshot{
		Left:  s.flag("left"),
		Right: s.flag("right"),
		Jump:  s.flag("jump"),
	}
}

// Err returns the most recent run error, if any.
func (s *Script) Err() error {
	if s == nil {
		return nil
	}
	return s.err
}

// run converts panics raised inside the VM, such as integer division by
// zero, into errors.
func (s *Script) run(frame int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("input: run %s: %v", s.name, r)
		}
	}()

	if err := s.compiled.Set("frame", frame); err != nil {
		return err
	}
	if err := s.compiled.Set("state", s.state); err != nil {
		return err
	}
	if err := s.compiled.Run(); err != nil {
		return fmt.Errorf("input: run %s: %w", s.name, err)
	}
	return nil
}

func (s *Script) flag(name string) bool {
	if !s.compiled.IsDefined(name) {
		return false
	}
	return !s.compiled.Get(name).Object().IsFalsy()
}
