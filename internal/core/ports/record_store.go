package ports

import (
	"context"
)

// RecordStore is a key-indexed collection of records of one kind.
//
// Implementations must make Insert atomic with respect to the key: two
// concurrent inserts with the same key store at most one record, and the
// loser gets an error wrapping domain.ErrAlreadyExists.
type RecordStore[T any] interface {
	// List returns every record in the store's natural order. An empty store
	// yields an empty, non-nil slice.
	List(ctx context.Context) ([]T, error)
	// FindByKey returns the record whose identity key equals key, or an error
	// wrapping domain.ErrNotFound.
	FindByKey(ctx context.Context, key string) (*T, error)
	// Insert stores rec if no record with the same key exists. The returned
	// record carries any key assigned by the store.
	Insert(ctx context.Context, rec *T) (*T, error)
	// DeleteByKey removes the record with the given key, or returns an error
	// wrapping domain.ErrNotFound.
	DeleteByKey(ctx context.Context, key string) error
}

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
