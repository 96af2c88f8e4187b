package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/voluntariados/backend/internal/core/domain"
)

const collectionVoluntariados = "voluntariados"

// VoluntariadoRepository stores postings in the "voluntariados" collection.
// The posting id is the document's native ObjectID in hex form.
type VoluntariadoRepository struct {
	col *mongo.Collection
}

func NewVoluntariadoRepository(db *mongo.Database) *VoluntariadoRepository {
	return &VoluntariadoRepository{col: db.Collection(collectionVoluntariados)}
}

type mongoVoluntariado struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Titulo      string             `bson:"titulo"`
	Usuario     string             `bson:"usuario"`
	Fecha       string             `bson:"fecha"`
	Descripcion string             `bson:"descripcion"`
	Tipo        string             `bson:"tipo"`
	Email       string             `bson:"email"`
}

func toMongoVoluntariado(v *domain.Voluntariado, id primitive.ObjectID) mongoVoluntariado {
	return mongoVoluntariado{
		ID:          id,
		Titulo:      v.Titulo,
		Usuario:     v.Usuario,
		Fecha:       v.Fecha,
		Descripcion: v.Descripcion,
		Tipo:        string(v.Tipo),
		Email:       v.Email,
	}
}

func (m mongoVoluntariado) toDomain() domain.Voluntariado {
	return domain.Voluntariado{
		ID:          m.ID.Hex(),
		Titulo:      m.Titulo,
		Usuario:     m.Usuario,
		Fecha:       m.Fecha,
		Descripcion: m.Descripcion,
		Tipo:        domain.TipoVoluntariado(m.Tipo),
		Email:       m.Email,
	}
}

// List returns every posting in database order.
func (r *VoluntariadoRepository) List(ctx context.Context) ([]domain.Voluntariado, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find voluntariados: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoVoluntariado
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode voluntariados: %w", err)
	}

	out := make([]domain.Voluntariado, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

// FindByKey looks a posting up by its hex id. Ids that are not valid
// ObjectIDs cannot match any document and report not found.
func (r *VoluntariadoRepository) FindByKey(ctx context.Context, id string) (*domain.Voluntariado, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}

	ctx, cancel := opContext(ctx)
	defer cancel()

	var doc mongoVoluntariado
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("find voluntariado: %w", err)
	}

	v := doc.toDomain()
	return &v, nil
}

// Insert stores v. An empty id gets a fresh ObjectID; a supplied id must be
// a valid ObjectID hex string.
func (r *VoluntariadoRepository) Insert(ctx context.Context, v *domain.Voluntariado) (*domain.Voluntariado, error) {
	oid := primitive.NewObjectID()
	if v.ID != "" {
		parsed, err := primitive.ObjectIDFromHex(v.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidKey, v.ID)
		}
		oid = parsed
	}

	ctx, cancel := opContext(ctx)
	defer cancel()

	doc := toMongoVoluntariado(v, oid)
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrAlreadyExists, oid.Hex())
		}
		return nil, fmt.Errorf("insert voluntariado: %w", err)
	}

	created := doc.toDomain()
	return &created, nil
}

func (r *VoluntariadoRepository) DeleteByKey(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}

	ctx, cancel := opContext(ctx)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete voluntariado: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	return nil
}
