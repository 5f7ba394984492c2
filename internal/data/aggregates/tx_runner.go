package aggregates

import (
	"context"

	"gorm.io/gorm"

	domainagg "github.com/yungbote/agroregistry-backend/internal/domain/aggregates"
	"github.com/yungbote/agroregistry-backend/internal/platform/dbctx"
)

// TxRunner is the transaction boundary of one registry write. Everything fn
// does through dbc commits together or not at all.
type TxRunner interface {
	InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error
}

type storeTxRunner struct {
	db *gorm.DB
}

func NewGormTxRunner(db *gorm.DB) TxRunner {
	return storeTxRunner{db: db}
}

// InTx does not open a transaction for a request that is already cancelled.
func (r storeTxRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	if r.db == nil {
		return domainagg.NewError(domainagg.CodeInternal, "registry.tx", "registry store is not configured", nil)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if fn == nil {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(dbctx.Context{Ctx: ctx, Tx: tx})
	})
}
