package testutil

import (
	"sync"

	"github.com/yungbote/agroregistry-backend/internal/data/aggregates"
)

// HooksRecorder keeps every registry write event for assertions.
type HooksRecorder struct {
	mu     sync.Mutex
	events []aggregates.WriteEvent
}

var _ aggregates.Hooks = (*HooksRecorder)(nil)

func (h *HooksRecorder) WriteFinished(ev aggregates.WriteEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, ev)
}

func (h *HooksRecorder) Events() []aggregates.WriteEvent {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]aggregates.WriteEvent(nil), h.events...)
}

// Last returns the most recent event, or a zero event when none was seen.
func (h *HooksRecorder) Last() aggregates.WriteEvent {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.events) == 0 {
		return aggregates.WriteEvent{}
	}
	return h.events[len(h.events)-1]
}

// Conflicts lists the ops rejected as duplicates or still-referenced rows.
func (h *HooksRecorder) Conflicts() []string {
	return h.ops(aggregates.WriteEvent.Rejected)
}

func (h *HooksRecorder) Retries() []string {
	return h.ops(aggregates.WriteEvent.Retryable)
}

func (h *HooksRecorder) ops(match func(aggregates.WriteEvent) bool) []string {
	var out []string
	for _, ev := range h.Events() {
		if match(ev) {
			out = append(out, ev.Op)
		}
	}
	return out
}
