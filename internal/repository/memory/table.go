package memory

import (
	"fmt"
	"sync"

	"github.com/spec-kit/schedule-service/internal/repository"
)

// table keeps rows in insertion order.
type table[T any] struct {
	mu    sync.RWMutex
	order []string
	rows  map[string]T
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]T)}
}

func (t *table[T]) insert(id string, row T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.rows[id]; exists {
		return fmt.Errorf("duplicate key %q", id)
	}
	t.order = append(t.order, id)
	t.rows[id] = row
	return nil
}

func (t *table[T]) upsert(id string, row T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.rows[id]; !exists {
		t.order = append(t.order, id)
	}
	t.rows[id] = row
}

func (t *table[T]) replace(id string, row T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.rows[id]; !exists {
		return repository.ErrNotFound
	}
	t.rows[id] = row
	return nil
}

func (t *table[T]) get(id string) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, repository.ErrNotFound
	}
	return row, nil
}

func (t *table[T]) remove(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.rows[id]; !exists {
		return repository.ErrNotFound
	}
	delete(t.rows, id)
	for i, key := range t.order {
		if key == id {
			t.order = append(t.order[:i:i], t.order[i+1:]...)
			break
		}
	}
	return nil
}

func (t *table[T]) all(keep func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	result := make([]T, 0, len(t.order))
	for _, id := range t.order {
		row := t.rows[id]
		if keep == nil || keep(row) {
			result = append(result, row)
		}
	}
	return result
}

func (t *table[T]) find(match func(T) bool) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, id := range t.order {
		if row := t.rows[id]; match(row) {
			return row, nil
		}
	}
	var zero T
	return zero, repository.ErrNotFound
}
