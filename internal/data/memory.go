package data

import (
	"context"
	"sync"

	"shipcatalog/internal/biz"
)

// memoryShipRepo keeps ships in-process. Queries run through biz.ApplyQuery.
type memoryShipRepo struct {
	mu     sync.RWMutex
	ships  map[int64]biz.Ship
	nextID int64
}

func newMemoryShipRepo() *memoryShipRepo {
	return &memoryShipRepo{ships: make(map[int64]biz.Ship)}
}

func (r *memoryShipRepo) Save(_ context.Context, s *biz.Ship) (*biz.Ship, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	saved := *s
	if saved.ID == 0 {
		r.nextID++
		saved.ID = r.nextID
	} else if _, ok := r.ships[saved.ID]; !ok {
		return nil, biz.ErrShipNotFound
	}
	r.ships[saved.ID] = saved
	out := saved
	return &out, nil
}

func (r *memoryShipRepo) FindByID(_ context.Context, id int64) (*biz.Ship, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.ships[id]
	if !ok {
		return nil, biz.ErrShipNotFound
	}
	return &s, nil
}

func (r *memoryShipRepo) Delete(_ context.Context, s *biz.Ship) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ships[s.ID]; !ok {
		return biz.ErrShipNotFound
	}
	delete(r.ships, s.ID)
	return nil
}

func (r *memoryShipRepo) Query(_ context.Context, q *biz.ShipQuery) ([]*biz.Ship, error) {
	return biz.ApplyQuery(r.snapshot(), q), nil
}

func (r *memoryShipRepo) Count(_ context.Context, f *biz.ShipFilter) (int64, error) {
	return biz.CountMatching(r.snapshot(), f), nil
}

// snapshot copies the stored ships so callers never alias repository state.
func (r *memoryShipRepo) snapshot() []*biz.Ship {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*biz.Ship, 0, len(r.ships))
	for _, s := range r.ships {
		c := s
		out = append(out, &c)
	}
	return out
}
