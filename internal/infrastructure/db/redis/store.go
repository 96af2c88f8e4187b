package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/voluntariados/backend/internal/core/domain"
)

// Store keeps one collection in Redis.
//
// Keys:
//
//	<prefix>:<collection>        hash  identity key -> JSON record
//	<prefix>:<collection>:order  zset  identity key scored by insertion sequence
//	<prefix>:<collection>:seq    counter feeding scores and generated ids
//
// Insert and delete run as Lua scripts touching the hash and the order zset
// together, so a record is either in both or in neither.
type Store[T any] struct {
	client redis.Cmdable
	hash   string
	order  string
	seq    string
	key    func(T) string
	assign func(*T, string)
}

// insertScript stores ARGV[2] under field ARGV[1] unless it exists and
// orders it with score ARGV[3]. Returns 1 when stored, 0 when taken. The zset
// is written first so a failure there leaves nothing behind.
var insertScript = redis.NewScript(`
if redis.call('HEXISTS', KEYS[1], ARGV[1]) == 1 then
	return 0
end
redis.call('ZADD', KEYS[2], ARGV[3], ARGV[1])
redis.call('HSET', KEYS[1], ARGV[1], ARGV[2])
return 1
`)

// deleteScript removes field ARGV[1] from the hash and the order zset.
// Returns 1 when removed, 0 when absent.
var deleteScript = redis.NewScript(`
if redis.call('HEXISTS', KEYS[1], ARGV[1]) == 0 then
	return 0
end
redis.call('ZREM', KEYS[2], ARGV[1])
redis.call('HDEL', KEYS[1], ARGV[1])
return 1
`)

// Option configures a Store.
type Option[T any] func(*Store[T])

// WithKeyAssigner makes Insert generate a key from the sequence counter for
// records that arrive with an empty one.
func WithKeyAssigner[T any](assign func(*T, string)) Option[T] {
	return func(s *Store[T]) { s.assign = assign }
}

// New returns a Store for collection under prefix.
func New[T any](client redis.Cmdable, prefix, collection string, key func(T) string, opts ...Option[T]) *Store[T] {
	base := prefix + ":" + collection
	s := &Store[T]{
		client: client,
		hash:   base,
		order:  base + ":order",
		seq:    base + ":seq",
		key:    key,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewUsuarioStore returns a Store for usuarios keyed by email.
func NewUsuarioStore(client redis.Cmdable, prefix string) *Store[domain.Usuario] {
	return New(client, prefix, "usuarios", domain.UsuarioKey)
}

// NewVoluntariadoStore returns a Store for voluntariados keyed by id, which
// assigns ids from the collection counter when none is given.
func NewVoluntariadoStore(client redis.Cmdable, prefix string) *Store[domain.Voluntariado] {
	return New(client, prefix, "voluntariados", domain.VoluntariadoKey,
		WithKeyAssigner(func(v *domain.Voluntariado, id string) { v.ID = id }))
}

// List returns every record in insertion order.
func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	keys, err := s.client.ZRange(ctx, s.order, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list %s order: %w", s.hash, err)
	}

	out := make([]T, 0, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	vals, err := s.client.HMGet(ctx, s.hash, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.hash, err)
	}
	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			// deleted between ZRANGE and HMGET
			continue
		}
		var rec T
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, fmt.Errorf("decode %s %s: %w", s.hash, keys[i], err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *Store[T]) FindByKey(ctx context.Context, key string) (*T, error) {
	raw, err := s.client.HGet(ctx, s.hash, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, key)
		}
		return nil, fmt.Errorf("get %s %s: %w", s.hash, key, err)
	}

	var rec T
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("decode %s %s: %w", s.hash, key, err)
	}
	return &rec, nil
}

func (s *Store[T]) Insert(ctx context.Context, rec *T) (*T, error) {
	r := *rec
	key := s.key(r)
	generated := key == "" && s.assign != nil

	for {
		n, err := s.client.Incr(ctx, s.seq).Result()
		if err != nil {
			return nil, fmt.Errorf("next %s sequence: %w", s.hash, err)
		}
		if generated {
			key = strconv.FormatInt(n, 10)
			s.assign(&r, key)
		}

		data, err := json.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", s.hash, key, err)
		}

		stored, err := insertScript.Run(ctx, s.client, []string{s.hash, s.order}, key, data, n).Int()
		if err != nil {
			return nil, fmt.Errorf("insert %s %s: %w", s.hash, key, err)
		}
		if stored == 0 {
			if generated {
				// a caller-supplied id already holds this number
				continue
			}
			return nil, fmt.Errorf("%w: %s", domain.ErrAlreadyExists, key)
		}
		return &r, nil
	}
}

func (s *Store[T]) DeleteByKey(ctx context.Context, key string) error {
	removed, err := deleteScript.Run(ctx, s.client, []string{s.hash, s.order}, key).Int()
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", s.hash, key, err)
	}
	if removed == 0 {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, key)
	}
	return nil
}
