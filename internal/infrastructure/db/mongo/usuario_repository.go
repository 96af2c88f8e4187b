package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/voluntariados/backend/internal/core/domain"
)

const collectionUsuarios = "usuarios"

// UsuarioRepository stores usuarios in the "usuarios" collection, one
// document per email.
type UsuarioRepository struct {
	col *mongo.Collection
}

func NewUsuarioRepository(db *mongo.Database) *UsuarioRepository {
	return &UsuarioRepository{col: db.Collection(collectionUsuarios)}
}

// EnsureIndexes declares the unique index on email. With it in place a
// concurrent duplicate insert fails in the database instead of slipping past
// the service's existence check.
func (r *UsuarioRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := opContext(ctx)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("create usuarios indexes: %w", err)
	}
	return nil
}

// List returns every usuario in database order.
func (r *UsuarioRepository) List(ctx context.Context) ([]domain.Usuario, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find usuarios: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]domain.Usuario, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode usuarios: %w", err)
	}
	return out, nil
}

func (r *UsuarioRepository) FindByKey(ctx context.Context, email string) (*domain.Usuario, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()

	var u domain.Usuario
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, email)
		}
		return nil, fmt.Errorf("find usuario: %w", err)
	}
	return &u, nil
}

func (r *UsuarioRepository) Insert(ctx context.Context, u *domain.Usuario) (*domain.Usuario, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrAlreadyExists, u.Email)
		}
		return nil, fmt.Errorf("insert usuario: %w", err)
	}

	created := *u
	return &created, nil
}

func (r *UsuarioRepository) DeleteByKey(ctx context.Context, email string) error {
	ctx, cancel := opContext(ctx)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, email)
	}
	return nil
}
