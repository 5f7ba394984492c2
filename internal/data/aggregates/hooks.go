package aggregates

import (
	"strings"
	"time"

	domainagg "github.com/yungbote/agroregistry-backend/internal/domain/aggregates"
	"github.com/yungbote/agroregistry-backend/internal/observability"
)

// WriteEvent is one finished registry write as ExecuteWrite saw it.
type WriteEvent struct {
	// Op is "<kind>.<action>", e.g. "rural_property.update".
	Op string
	// Status is "success" or the registry error code.
	Status   string
	Duration time.Duration
}

// Kind is the entity part of Op.
func (e WriteEvent) Kind() string {
	kind, _, _ := strings.Cut(e.Op, ".")
	return kind
}

// Rejected reports a write refused because the row collides with or is still
// referenced by another row.
func (e WriteEvent) Rejected() bool {
	return e.Status == string(domainagg.CodeDuplicateName) || e.Status == string(domainagg.CodeConflict)
}

func (e WriteEvent) Retryable() bool {
	return e.Status == string(domainagg.CodeRetryable)
}

// Hooks receives every finished registry write.
type Hooks interface {
	WriteFinished(ev WriteEvent)
}

// HooksFunc adapts a plain function to Hooks.
type HooksFunc func(ev WriteEvent)

func (f HooksFunc) WriteFinished(ev WriteEvent) {
	if f != nil {
		f(ev)
	}
}

var noopHooks = HooksFunc(nil)

// MetricsHooks feeds write latency, rejections and retries into metrics.
// A nil metrics set yields nil so BaseDeps falls back to no hooks.
func MetricsHooks(metrics *observability.Metrics) Hooks {
	if metrics == nil {
		return nil
	}
	return HooksFunc(func(ev WriteEvent) {
		metrics.ObserveWriteOperation(ev.Op, ev.Status, ev.Duration)
		switch {
		case ev.Rejected():
			metrics.IncWriteConflict(ev.Op)
		case ev.Retryable():
			metrics.IncWriteRetry(ev.Op)
		}
	})
}
