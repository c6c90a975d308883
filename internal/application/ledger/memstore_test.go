package ledger_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sorawitt/spareparts-api/internal/domain"
	"github.com/sorawitt/spareparts-api/internal/domain/entity"
	"github.com/sorawitt/spareparts-api/internal/domain/repository"
)

// memStore backs the in-memory repositories used by the application-layer
// tests. Its tx runner holds the store lock for the whole unit of work and
// restores a snapshot on error, giving the tests the same atomicity and
// per-part serialization contract the postgres TxRunner provides.
type memStore struct {
	mu    sync.Mutex
	parts map[string]*entity.Part
	txs   []*entity.StockTransaction

	failAppend bool // fault injection for the rollback test
}

func newMemStore(parts ...*entity.Part) *memStore {
	s := &memStore{parts: make(map[string]*entity.Part)}
	for _, p := range parts {
		cp := *p
		s.parts[p.ID] = &cp
	}
	return s
}

type memPartRepo struct{ s *memStore }

func (r *memPartRepo) List(context.Context) ([]*entity.Part, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Part, 0, len(r.s.parts))
	for _, p := range r.s.parts {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r *memPartRepo) GetByID(_ context.Context, id string) (*entity.Part, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.get(id), nil
}

// get returns a copy without locking; callers hold the store lock or accept
// the tx runner's serialization.
func (r *memPartRepo) get(id string) *entity.Part {
	p, ok := r.s.parts[id]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

func (r *memPartRepo) GetByCode(_ context.Context, code string) (*entity.Part, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.parts {
		if p.Code == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memPartRepo) Create(_ context.Context, part *entity.Part) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *part
	r.s.parts[part.ID] = &cp
	return nil
}

func (r *memPartRepo) Update(_ context.Context, part *entity.Part) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.parts[part.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *part
	r.s.parts[part.ID] = &cp
	return nil
}

func (r *memPartRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.parts, id)
	return nil
}

func (r *memPartRepo) SetQuantity(_ context.Context, id string, quantity int) (*entity.Part, error) {
	if quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	p, ok := r.s.parts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.QuantityInStock = quantity
	p.UpdatedAt = time.Now()
	cp := *p
	return &cp, nil
}

func (r *memPartRepo) GetForUpdate(_ context.Context, id string) (*entity.Part, error) {
	return r.get(id), nil
}

type memTxRepo struct{ s *memStore }

func (r *memTxRepo) Append(_ context.Context, tx *entity.StockTransaction) error {
	if r.s.failAppend {
		return errors.New("ledger append failed")
	}
	cp := *tx
	if cp.ID == "" {
		cp.ID = uuid.New().String()
	}
	r.s.txs = append(r.s.txs, &cp)
	return nil
}

func (r *memTxRepo) Query(_ context.Context, direction string, from, to time.Time) ([]*entity.StockTransaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.StockTransaction
	for _, tx := range r.s.txs {
		if tx.Direction != direction {
			continue
		}
		if tx.CreatedAt.Before(from) || tx.CreatedAt.After(to) {
			continue
		}
		cp := *tx
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memTxRepo) SumDeltas(_ context.Context, partID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sum := 0
	for _, tx := range r.s.txs {
		if tx.PartID == partID {
			sum += tx.Delta()
		}
	}
	return sum, nil
}

type memTxRunner struct{ s *memStore }

func (r *memTxRunner) Run(_ context.Context, fn func(
	parts repository.PartRepository,
	transactions repository.StockTransactionRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// Snapshot for rollback.
	quantities := make(map[string]int, len(r.s.parts))
	for id, p := range r.s.parts {
		quantities[id] = p.QuantityInStock
	}
	txCount := len(r.s.txs)

	if err := fn(&memPartRepo{s: r.s}, &memTxRepo{s: r.s}); err != nil {
		for id, q := range quantities {
			if p, ok := r.s.parts[id]; ok {
				p.QuantityInStock = q
			}
		}
		r.s.txs = r.s.txs[:txCount]
		return err
	}
	return nil
}
