// Package optimistic keeps the per-resource item cache that mutations are
// applied to before server confirmation. The store only holds state and
// enforces the per-entity mutation lock; the operation protocol (apply,
// confirm, roll back) lives in the service layer.
package optimistic

import (
	"errors"
	"sync"

	"github.com/eventdesk/admin-ui/internal/domain/model"
)

var (
	// ErrPendingEntity means a mutation targeted an entity that has not been
	// confirmed by the server yet. Such mutations must stay local.
	ErrPendingEntity = errors.New("entity is pending server confirmation")
	// ErrMutationInFlight means the entity already has an unsettled mutation.
	ErrMutationInFlight = errors.New("entity already has a mutation in flight")
	// ErrNotFound means the entity is not in the cache.
	ErrNotFound = errors.New("entity not found in cache")
)

// Entity is anything the store can hold. Entities are value types; a value
// copy is a complete snapshot.
type Entity interface {
	EntityRef() model.EntityRef
}

// Store is the shared in-memory list state for one resource. All access is
// serialized by a single mutex, so every read-modify-write of the list is
// atomic with respect to concurrent operation handlers.
type Store[T Entity] struct {
	mu       sync.Mutex
	items    []T
	meta     model.ListMeta
	loading  bool
	lastErr  error
	inflight map[string]struct{}
}

// NewStore constructs an empty Store.
func NewStore[T Entity]() *Store[T] {
	return &Store[T]{inflight: make(map[string]struct{})}
}

// Items returns a copy of the current item list.
func (s *Store[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the current item count.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Meta returns the pagination meta from the last fetch.
func (s *Store[T]) Meta() model.ListMeta {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meta
}

// IsLoading reports whether a fetch is in progress.
func (s *Store[T]) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last fetch error, if any.
func (s *Store[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// SetLoading flips the loading flag.
func (s *Store[T]) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}

// SetItems replaces the list and meta after a successful fetch and clears
// the loading flag and last error.
func (s *Store[T]) SetItems(items []T, meta model.ListMeta) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make([]T, len(items))
	copy(s.items, items)
	s.meta = meta
	s.loading = false
	s.lastErr = nil
}

// SetError records a fetch failure and clears the loading flag.
func (s *Store[T]) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.lastErr = err
}

// Get returns a snapshot of the entity with the given ref.
func (s *Store[T]) Get(ref model.EntityRef) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.EntityRef().Equal(ref) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Acquire registers an in-flight mutation for the entity. A second mutation
// against the same entity is rejected until Release is called.
func (s *Store[T]) Acquire(ref model.EntityRef) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := ref.String()
	if _, taken := s.inflight[key]; taken {
		return ErrMutationInFlight
	}
	s.inflight[key] = struct{}{}
	return nil
}

// Release settles the in-flight mutation for the entity.
func (s *Store[T]) Release(ref model.EntityRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, ref.String())
}

// Insert adds the entity to the head of the list, where newly created rows
// appear in the UI.
func (s *Store[T]) Insert(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]T{item}, s.items...)
}

// Replace swaps the entity with the given ref for item, preserving its list
// position. It reports whether the ref was found.
func (s *Store[T]) Replace(ref model.EntityRef, item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].EntityRef().Equal(ref) {
			s.items[i] = item
			return true
		}
	}
	return false
}

// Remove deletes the entity with the given ref and returns the removed
// value and its former index, for possible re-insertion on rollback.
func (s *Store[T]) Remove(ref model.EntityRef) (T, int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].EntityRef().Equal(ref) {
			removed := s.items[i]
			s.items = append(s.items[:i], s.items[i+1:]...)
			return removed, i, true
		}
	}
	var zero T
	return zero, 0, false
}

// ReinsertAt puts a removed entity back, as close to its former position as
// the current list allows. Position is best effort; rollback only promises
// the entity is present again.
func (s *Store[T]) ReinsertAt(item T, idx int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx < 0 {
		idx = 0
	}
	if idx > len(s.items) {
		idx = len(s.items)
	}
	s.items = append(s.items[:idx], append([]T{item}, s.items[idx:]...)...)
}
