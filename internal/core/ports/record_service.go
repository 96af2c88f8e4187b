package ports

import (
	"context"
)

// RecordService is the use-case layer the REST and GraphQL adapters call.
// Errors are domain.EntityError values for known conditions; anything else
// is a backend failure.
type RecordService[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, key string) (*T, error)
	Create(ctx context.Context, rec T) (*T, error)
	Delete(ctx context.Context, key string) error
}
