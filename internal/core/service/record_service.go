package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/voluntariados/backend/internal/api/metrics"
	"github.com/voluntariados/backend/internal/core/domain"
	"github.com/voluntariados/backend/internal/core/ports"
)

const (
	CollectionUsuarios      = "usuarios"
	CollectionVoluntariados = "voluntariados"
)

// RecordsConfig describes one collection to the generic service.
type RecordsConfig[T any] struct {
	Collection string
	Key        func(T) string
	// RequireKey rejects creates whose key is empty instead of letting the
	// store assign one.
	RequireKey bool

	NotFound   *domain.EntityError
	Exists     *domain.EntityError
	InvalidKey *domain.EntityError
}

// Records implements ports.RecordService on top of any ports.RecordStore.
type Records[T any] struct {
	store ports.RecordStore[T]
	cfg   RecordsConfig[T]
	log   zerolog.Logger
}

func NewRecords[T any](store ports.RecordStore[T], cfg RecordsConfig[T], log zerolog.Logger) *Records[T] {
	return &Records[T]{
		store: store,
		cfg:   cfg,
		log:   log.With().Str("collection", cfg.Collection).Logger(),
	}
}

// NewUsuarioService returns the service for the usuarios collection.
func NewUsuarioService(store ports.RecordStore[domain.Usuario], log zerolog.Logger) *Records[domain.Usuario] {
	return NewRecords(store, RecordsConfig[domain.Usuario]{
		Collection: CollectionUsuarios,
		Key:        domain.UsuarioKey,
		RequireKey: true,
		NotFound:   domain.ErrUsuarioNotFound,
		Exists:     domain.ErrUsuarioExists,
		InvalidKey: domain.ErrUsuarioInvalidEmail,
	}, log)
}

// NewVoluntariadoService returns the service for the voluntariados collection.
func NewVoluntariadoService(store ports.RecordStore[domain.Voluntariado], log zerolog.Logger) *Records[domain.Voluntariado] {
	return NewRecords(store, RecordsConfig[domain.Voluntariado]{
		Collection: CollectionVoluntariados,
		Key:        domain.VoluntariadoKey,
		NotFound:   domain.ErrVoluntariadoNotFound,
		Exists:     domain.ErrVoluntariadoExists,
		InvalidKey: domain.ErrVoluntariadoInvalidID,
	}, log)
}

// List returns every record of the collection.
func (s *Records[T]) List(ctx context.Context) ([]T, error) {
	recs, err := s.store.List(ctx)
	if err != nil {
		return nil, s.backendFailure("list", err)
	}

	s.log.Info().Int("count", len(recs)).Msg("records listed")
	return recs, nil
}

// Get returns the record stored under key.
func (s *Records[T]) Get(ctx context.Context, key string) (*T, error) {
	rec, err := s.store.FindByKey(ctx, key)
	if err != nil {
		return nil, s.translate("get", err)
	}
	return rec, nil
}

// Create stores rec unless its key is already taken.
//
// The existence check runs first so duplicates are reported without touching
// the write path. The store still guards the insert itself, and a duplicate
// it reports (a concurrent create won the race) maps to the same error.
func (s *Records[T]) Create(ctx context.Context, rec T) (*T, error) {
	key := s.cfg.Key(rec)
	if key == "" && s.cfg.RequireKey {
		return nil, s.cfg.InvalidKey
	}

	if key != "" {
		_, err := s.store.FindByKey(ctx, key)
		switch {
		case err == nil:
			return nil, s.duplicate(key)
		case errors.Is(err, domain.ErrNotFound):
		default:
			return nil, s.translate("create", err)
		}
	}

	created, err := s.store.Insert(ctx, &rec)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, s.duplicate(key)
		}
		return nil, s.translate("create", err)
	}

	metrics.RecordsCreatedTotal.WithLabelValues(s.cfg.Collection).Inc()
	s.log.Info().Str("key", s.cfg.Key(*created)).Msg("record created")
	return created, nil
}

// Delete removes the record stored under key.
func (s *Records[T]) Delete(ctx context.Context, key string) error {
	if err := s.store.DeleteByKey(ctx, key); err != nil {
		return s.translate("delete", err)
	}

	metrics.RecordsDeletedTotal.WithLabelValues(s.cfg.Collection).Inc()
	s.log.Info().Str("key", key).Msg("record deleted")
	return nil
}

func (s *Records[T]) duplicate(key string) error {
	metrics.DuplicateInsertsTotal.WithLabelValues(s.cfg.Collection).Inc()
	s.log.Warn().Str("key", key).Msg("record already exists")
	return s.cfg.Exists
}

// translate maps store error kinds to this collection's entity errors.
func (s *Records[T]) translate(op string, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return s.cfg.NotFound
	case errors.Is(err, domain.ErrAlreadyExists):
		return s.cfg.Exists
	case errors.Is(err, domain.ErrInvalidKey) && s.cfg.InvalidKey != nil:
		return s.cfg.InvalidKey
	}
	return s.backendFailure(op, err)
}

func (s *Records[T]) backendFailure(op string, err error) error {
	metrics.StoreErrorsTotal.WithLabelValues(s.cfg.Collection, op).Inc()
	s.log.Error().Err(err).Str("op", op).Msg("record store failure")
	return fmt.Errorf("%s %s: %w", op, s.cfg.Collection, err)
}
