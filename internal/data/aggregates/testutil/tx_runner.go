package testutil

import (
	"context"
	"sync"

	"gorm.io/gorm"

	"github.com/yungbote/agroregistry-backend/internal/data/aggregates"
	"github.com/yungbote/agroregistry-backend/internal/platform/dbctx"
)

// InjectedTxRunner runs registry writes with scripted failures.
//
// With DB set the body runs inside a real transaction and FailCommit is
// returned from it after the body succeeds, so every row the body wrote is
// rolled back by the store. Without DB the body gets no Tx and repos fall
// back to their own handle, which suits in-memory fakes.
type InjectedTxRunner struct {
	DB         *gorm.DB
	FailBegin  error
	FailCommit error

	mu                         sync.Mutex
	begins, commits, rollbacks int
}

var _ aggregates.TxRunner = (*InjectedTxRunner)(nil)

func (r *InjectedTxRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	r.bump(&r.begins)
	if r.FailBegin != nil {
		return r.FailBegin
	}
	body := func(dbc dbctx.Context) error {
		if fn != nil {
			if err := fn(dbc); err != nil {
				return err
			}
		}
		return r.FailCommit
	}

	var err error
	if r.DB != nil {
		err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return body(dbctx.Context{Ctx: ctx, Tx: tx})
		})
	} else {
		err = body(dbctx.Context{Ctx: ctx})
	}
	if err != nil {
		r.bump(&r.rollbacks)
		return err
	}
	r.bump(&r.commits)
	return nil
}

// Counts reports how many transactions began, committed and rolled back.
func (r *InjectedTxRunner) Counts() (begins, commits, rollbacks int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.begins, r.commits, r.rollbacks
}

func (r *InjectedTxRunner) bump(n *int) {
	r.mu.Lock()
	*n++
	r.mu.Unlock()
}
