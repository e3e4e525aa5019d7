package system

import (
	"log/slog"

	"github.com/milk9111/platformer/ecs"
)

// EventLogSystem writes this tick's events to the logger at debug level. It
// must run last so it sees every event before the world clears them.
type EventLogSystem struct {
	logger *slog.Logger
	seen   map[string]int
}

func NewEventLogSystem(logger *slog.Logger) *EventLogSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventLogSystem{logger: logger, seen: map[string]int{}}
}

func (s *EventLogSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	for _, evt := range w.Events().Pending() {
		s.seen[evt.Type]++
		s.logger.Debug("physics event", "type", evt.Type, "entity", evt.Entity.String(), "tick", w.Tick(), "data", evt.Data)
	}
}

// Count returns how many events of the given type have been logged.
func (s *EventLogSystem) Count(eventType string) int {
	if s == nil {
		return 0
	}
	return s.seen[eventType]
}
