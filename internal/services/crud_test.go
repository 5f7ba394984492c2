package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"gorm.io/gorm"

	"github.com/yungbote/agroregistry-backend/internal/data/aggregates"
	"github.com/yungbote/agroregistry-backend/internal/data/aggregates/testutil"
	types "github.com/yungbote/agroregistry-backend/internal/domain"
	domainagg "github.com/yungbote/agroregistry-backend/internal/domain/aggregates"
	"github.com/yungbote/agroregistry-backend/internal/platform/dbctx"
	"github.com/yungbote/agroregistry-backend/internal/validation"
)

// memStateRepo is an in-memory StateRepo whose Create can be made to fail.
type memStateRepo struct {
	rows      map[uint]*types.State
	nextID    uint
	createErr error
}

func newMemStateRepo() *memStateRepo {
	return &memStateRepo{rows: map[uint]*types.State{}}
}

func (r *memStateRepo) GetByID(_ dbctx.Context, id uint) (*types.State, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *row
	return &cp, nil
}

func (r *memStateRepo) List(dbctx.Context) ([]*types.State, error) {
	out := []*types.State{}
	for _, row := range r.rows {
		cp := *row
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memStateRepo) CountWhere(_ dbctx.Context, column string, value any) (int64, error) {
	var n int64
	for _, row := range r.rows {
		if column == "name" && row.Name == value {
			n++
		}
	}
	return n, nil
}

func (r *memStateRepo) Create(_ dbctx.Context, row *types.State) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	row.ID = r.nextID
	cp := *row
	r.rows[row.ID] = &cp
	return nil
}

func (r *memStateRepo) Save(_ dbctx.Context, row *types.State) error {
	cp := *row
	r.rows[row.ID] = &cp
	return nil
}

func (r *memStateRepo) DeleteByID(_ dbctx.Context, id uint) (int64, error) {
	if _, ok := r.rows[id]; !ok {
		return 0, nil
	}
	delete(r.rows, id)
	return 1, nil
}

func newMemStateService(repo *memStateRepo, runner aggregates.TxRunner, hooks aggregates.Hooks) StateService {
	deps := aggregates.BaseDeps{Runner: runner, Hooks: hooks}
	return NewStateService(deps, repo, validation.NewStateValidator(repo), nil)
}

func TestCreateMapsRacedUniqueViolation(t *testing.T) {
	repo := newMemStateRepo()
	repo.createErr = gorm.ErrDuplicatedKey
	hooks := &testutil.HooksRecorder{}
	svc := newMemStateService(repo, &testutil.InjectedTxRunner{}, hooks)

	_, err := svc.Create(context.Background(), StateInput{UF: "SP", Name: "Sao Paulo"}, 0)
	if !domainagg.IsCode(err, domainagg.CodeDuplicateName) {
		t.Fatalf("Create: expected duplicate_name from store race, got %v", err)
	}
	if domainagg.DetailsOf(err)["name"] != "Sao Paulo" {
		t.Fatalf("Create: unexpected details %+v", domainagg.DetailsOf(err))
	}
	var regErr *domainagg.Error
	if !errors.As(err, &regErr) || regErr.Op != "state.create" {
		t.Fatalf("Create: expected op state.create, got %+v", regErr)
	}
	if c := hooks.Conflicts(); len(c) != 1 {
		t.Fatalf("hooks: expected one conflict, got %+v", c)
	}
}

func TestCreateRollsBackOnCommitFailure(t *testing.T) {
	repo := newMemStateRepo()
	runner := &testutil.InjectedTxRunner{FailCommit: errors.New("database is locked")}
	hooks := &testutil.HooksRecorder{}
	svc := newMemStateService(repo, runner, hooks)

	_, err := svc.Create(context.Background(), StateInput{UF: "SP", Name: "Sao Paulo"}, 0)
	if !domainagg.IsCode(err, domainagg.CodeRetryable) {
		t.Fatalf("Create: expected retryable, got %v", err)
	}
	if begins, commits, rollbacks := runner.Counts(); rollbacks != 1 || commits != 0 {
		t.Fatalf("runner: expected one rollback, got begin=%d commit=%d rollback=%d", begins, commits, rollbacks)
	}
	if r := hooks.Retries(); len(r) != 1 || r[0] != "state.create" {
		t.Fatalf("hooks: expected one retry, got %+v", r)
	}
}

func TestUpdateAndRemoveOverFakeStore(t *testing.T) {
	repo := newMemStateRepo()
	runner := &testutil.InjectedTxRunner{}
	svc := newMemStateService(repo, runner, nil)
	ctx := context.Background()

	s, err := svc.Create(ctx, StateInput{UF: "sp", Name: "Sao Paulo"}, 0)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if s.CreatedAt.IsZero() || !s.CreatedAt.Equal(s.UpdatedAt) {
		t.Fatalf("Create: expected equal stamps, got %+v", s.Model)
	}
	up, err := svc.Update(ctx, s.ID, StatePatch{UF: ptr("SP")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if up.Name != "Sao Paulo" || up.UpdatedAt.Before(up.CreatedAt) {
		t.Fatalf("Update: unexpected row %+v", up)
	}
	if err := svc.Remove(ctx, s.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := svc.Remove(ctx, s.ID); !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("Remove (again): expected NotFound, got %v", err)
	}
	if _, commits, _ := runner.Counts(); commits != 3 {
		t.Fatalf("runner: expected 3 commits, got %d", commits)
	}
}

func TestConcurrentCreatesKeepNamesUnique(t *testing.T) {
	h := newHarness(t)
	const workers = 8

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		dups      int
		others    []error
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := h.reg.Harvests.Create(h.ctx, NameInput{Name: "Safra 2024"}, h.actor.ID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case domainagg.IsCode(err, domainagg.CodeDuplicateName):
				dups++
			default:
				others = append(others, err)
			}
		}()
	}
	wg.Wait()

	if len(others) > 0 {
		t.Fatalf("Harvests.Create: unexpected errors %v", others)
	}
	if successes != 1 || dups != workers-1 {
		t.Fatalf("Harvests.Create: expected 1 success and %d duplicates, got %d/%d", workers-1, successes, dups)
	}
	if n := h.count(t, &types.Harvest{}); n != 1 {
		t.Fatalf("harvests: expected 1 row, got %d", n)
	}
}
