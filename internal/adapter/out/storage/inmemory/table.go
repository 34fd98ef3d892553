package inmemory

import (
	"postboard/internal/adapter/out/storage"
	"postboard/internal/service"
	"slices"
	"sync"
)

// table keeps rows in id order. Ids are assigned from a counter and never
// reused, so appending keeps the id slice sorted.
type table[T any] struct {
	mu     sync.RWMutex
	lastID int64
	ids    []int64
	byID   map[int64]T
}

func newTable[T any]() *table[T] {
	return &table[T]{
		byID: make(map[int64]T),
	}
}

func (t *table[T]) insert(build func(id int64) T) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.lastID++
	row := build(t.lastID)
	t.ids = append(t.ids, t.lastID)
	t.byID[t.lastID] = row
	return row
}

func (t *table[T]) get(id int64) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.byID[id]
	if !ok {
		var zero T
		return zero, service.ErrNotFound
	}
	return row, nil
}

func (t *table[T]) update(id int64, apply func(row T) T) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.byID[id]
	if !ok {
		var zero T
		return zero, service.ErrNotFound
	}
	row = apply(row)
	t.byID[id] = row
	return row, nil
}

func (t *table[T]) delete(id int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.byID[id]; !ok {
		return service.ErrNotFound
	}
	delete(t.byID, id)
	if i, found := slices.BinarySearch(t.ids, id); found {
		t.ids = slices.Delete(t.ids, i, i+1)
	}
	return nil
}

func (t *table[T]) list(params storage.ListParams) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	from, to := storage.Window(t.ids, params)
	out := make([]T, 0, to-from)
	for _, id := range t.ids[from:to] {
		out = append(out, t.byID[id])
	}
	return out
}
