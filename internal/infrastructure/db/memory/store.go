// Package memory implements ports.RecordStore on an ordered slice held in
// process memory. Contents are lost on restart.
package memory

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/voluntariados/backend/internal/core/domain"
)

// Store keeps records in insertion order. All operations hold a single
// mutex, so the existence check and the append of Insert are one atomic step.
type Store[T any] struct {
	mu      sync.RWMutex
	records []T
	key     func(T) string
	assign  func(*T, string)
	seq     int
}

// Option configures a Store.
type Option[T any] func(*Store[T])

// WithKeyAssigner makes Insert generate a key for records that arrive with
// an empty one. Generated keys are decimal sequence numbers.
func WithKeyAssigner[T any](assign func(*T, string)) Option[T] {
	return func(s *Store[T]) { s.assign = assign }
}

// New returns an empty Store indexed by key.
func New[T any](key func(T) string, opts ...Option[T]) *Store[T] {
	s := &Store[T]{
		records: make([]T, 0),
		key:     key,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewUsuarioStore returns a Store for usuarios keyed by email.
func NewUsuarioStore() *Store[domain.Usuario] {
	return New(domain.UsuarioKey)
}

// NewVoluntariadoStore returns a Store for voluntariados keyed by id, which
// assigns sequential ids to postings inserted without one.
func NewVoluntariadoStore() *Store[domain.Voluntariado] {
	return New(domain.VoluntariadoKey, WithKeyAssigner(func(v *domain.Voluntariado, id string) {
		v.ID = id
	}))
}

func (s *Store[T]) List(_ context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *Store[T]) FindByKey(_ context.Context, key string) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(key)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, key)
	}
	rec := s.records[i]
	return &rec, nil
}

func (s *Store[T]) Insert(_ context.Context, rec *T) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := *rec
	key := s.key(r)
	if key == "" && s.assign != nil {
		key = s.nextKey()
		s.assign(&r, key)
	}
	if s.indexOf(key) >= 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrAlreadyExists, key)
	}

	s.records = append(s.records, r)
	return &r, nil
}

func (s *Store[T]) DeleteByKey(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(key)
	if i < 0 {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, key)
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	return nil
}

// Len reports how many records are held.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// indexOf must be called with mu held.
func (s *Store[T]) indexOf(key string) int {
	for i, r := range s.records {
		if s.key(r) == key {
			return i
		}
	}
	return -1
}

// nextKey returns the next free sequence number. The sequence never goes
// below the current length, and never goes backwards after deletes.
// Must be called with mu held.
func (s *Store[T]) nextKey() string {
	if s.seq < len(s.records) {
		s.seq = len(s.records)
	}
	for {
		s.seq++
		key := strconv.Itoa(s.seq)
		if s.indexOf(key) < 0 {
			return key
		}
	}
}
