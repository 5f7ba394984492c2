package aggregates

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"

	domainagg "github.com/yungbote/agroregistry-backend/internal/domain/aggregates"
	"github.com/yungbote/agroregistry-backend/internal/platform/ctxutil"
	"github.com/yungbote/agroregistry-backend/internal/platform/dbctx"
	"github.com/yungbote/agroregistry-backend/internal/platform/logger"
)

const tracerName = "github.com/yungbote/agroregistry-backend/internal/data/aggregates"

type BaseDeps struct {
	DB     *gorm.DB
	Log    *logger.Logger
	Runner TxRunner
	Hooks  Hooks
}

func (d BaseDeps) withDefaults() BaseDeps {
	if d.Runner == nil {
		d.Runner = NewGormTxRunner(d.DB)
	}
	if d.Hooks == nil {
		d.Hooks = noopHooks
	}
	return d
}

// ExecuteWrite runs fn inside one transaction and maps whatever it returns
// into a registry error. Every call is traced and reported to the hooks.
func ExecuteWrite(ctx context.Context, deps BaseDeps, op string, fn func(dbc dbctx.Context) error) error {
	start := time.Now()
	deps = deps.withDefaults()
	op = strings.TrimSpace(op)
	if op == "" {
		op = "registry.write"
	}
	ctx, span := otel.Tracer(tracerName).Start(ctxutil.Default(ctx), op)
	defer span.End()

	err := deps.Runner.InTx(ctx, fn)
	mapped := MapError(op, err)

	status := writeErrorStatus(mapped)
	if mapped != nil {
		span.SetStatus(codes.Error, status)
		span.RecordError(mapped)
		if deps.Log != nil && (status == string(domainagg.CodeInternal) || status == string(domainagg.CodeRetryable)) {
			fields := append([]interface{}{"op", op, "status", status, "error", mapped}, ctxutil.LogFields(ctx)...)
			deps.Log.Error("registry write failed", fields...)
		}
	}
	span.SetAttributes(attribute.String("registry.status", status))
	deps.Hooks.WriteFinished(WriteEvent{Op: op, Status: status, Duration: time.Since(start)})
	return mapped
}

func writeErrorStatus(err error) string {
	if err == nil {
		return "success"
	}
	code := strings.TrimSpace(string(domainagg.CodeOf(err)))
	if code == "" {
		code = strings.TrimSpace(string(domainagg.CodeOf(MapError("registry.status", err))))
	}
	if code == "" {
		return "failure"
	}
	return code
}
