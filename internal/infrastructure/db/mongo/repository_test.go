package mongo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/voluntariados/backend/internal/core/domain"
)

func usuarioDoc(email, nombre string) bson.D {
	return bson.D{
		{Key: "_id", Value: primitive.NewObjectID()},
		{Key: "user", Value: "a"},
		{Key: "email", Value: email},
		{Key: "password", Value: "p"},
		{Key: "nombre", Value: nombre},
		{Key: "tipo", Value: "voluntario"},
	}
}

func TestUsuarioRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("ensure indexes declares unique email", func(mt *mtest.T) {
		repo := NewUsuarioRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		require.NoError(mt, repo.EnsureIndexes(ctx))

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "createIndexes", evt.CommandName)
		assert.Equal(mt, "usuarios", evt.Command.Lookup("createIndexes").StringValue())

		index := evt.Command.Lookup("indexes", "0")
		assert.Equal(mt, "email_unique", index.Document().Lookup("name").StringValue())
		assert.True(mt, index.Document().Lookup("unique").Boolean())
		assert.EqualValues(mt, 1, index.Document().Lookup("key", "email").AsInt64())
	})

	mt.Run("ensure indexes failure", func(mt *mtest.T) {
		repo := NewUsuarioRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    85,
			Message: "Index already exists with a different name",
			Name:    "IndexOptionsConflict",
		}))

		err := repo.EnsureIndexes(ctx)
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "create usuarios indexes")
	})

	mt.Run("insert", func(mt *mtest.T) {
		repo := NewUsuarioRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		u := domain.Usuario{User: "a", Email: "a@x.com", Password: "p", Nombre: "A", Tipo: "voluntario"}
		created, err := repo.Insert(ctx, &u)
		require.NoError(mt, err)
		assert.Equal(mt, u, *created)
	})

	mt.Run("insert duplicate", func(mt *mtest.T) {
		repo := NewUsuarioRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: test.usuarios index: email_unique",
		}))

		_, err := repo.Insert(ctx, &domain.Usuario{Email: "a@x.com"})
		assert.ErrorIs(mt, err, domain.ErrAlreadyExists)
	})

	mt.Run("find", func(mt *mtest.T) {
		repo := NewUsuarioRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.usuarios", mtest.FirstBatch, usuarioDoc("a@x.com", "A")))

		u, err := repo.FindByKey(ctx, "a@x.com")
		require.NoError(mt, err)
		assert.Equal(mt, domain.Usuario{User: "a", Email: "a@x.com", Password: "p", Nombre: "A", Tipo: "voluntario"}, *u)
	})

	mt.Run("find missing", func(mt *mtest.T) {
		repo := NewUsuarioRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.usuarios", mtest.FirstBatch))

		_, err := repo.FindByKey(ctx, "missing@x.com")
		assert.ErrorIs(mt, err, domain.ErrNotFound)
	})

	mt.Run("list", func(mt *mtest.T) {
		repo := NewUsuarioRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.usuarios", mtest.FirstBatch,
			usuarioDoc("a@x.com", "A"),
			usuarioDoc("b@x.com", "B"),
		))

		recs, err := repo.List(ctx)
		require.NoError(mt, err)
		require.Len(mt, recs, 2)
		assert.Equal(mt, "a@x.com", recs[0].Email)
		assert.Equal(mt, "B", recs[1].Nombre)
	})

	mt.Run("list empty", func(mt *mtest.T) {
		repo := NewUsuarioRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.usuarios", mtest.FirstBatch))

		recs, err := repo.List(ctx)
		require.NoError(mt, err)
		assert.NotNil(mt, recs)
		assert.Empty(mt, recs)
	})

	mt.Run("delete", func(mt *mtest.T) {
		repo := NewUsuarioRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		assert.NoError(mt, repo.DeleteByKey(ctx, "a@x.com"))
	})

	mt.Run("delete missing", func(mt *mtest.T) {
		repo := NewUsuarioRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		assert.ErrorIs(mt, repo.DeleteByKey(ctx, "missing@x.com"), domain.ErrNotFound)
	})

	mt.Run("backend failure", func(mt *mtest.T) {
		repo := NewUsuarioRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "bad value",
			Name:    "BadValue",
		}))

		_, err := repo.FindByKey(ctx, "a@x.com")
		require.Error(mt, err)
		assert.NotErrorIs(mt, err, domain.ErrNotFound)
	})
}

func TestVoluntariadoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("insert assigns object id", func(mt *mtest.T) {
		repo := NewVoluntariadoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		created, err := repo.Insert(ctx, &domain.Voluntariado{Titulo: "Huerta", Tipo: domain.TipoOferta})
		require.NoError(mt, err)
		assert.True(mt, primitive.IsValidObjectID(created.ID))
		assert.Equal(mt, "Huerta", created.Titulo)
		assert.Equal(mt, domain.TipoOferta, created.Tipo)
	})

	mt.Run("insert keeps supplied hex id", func(mt *mtest.T) {
		repo := NewVoluntariadoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		id := primitive.NewObjectID().Hex()

		created, err := repo.Insert(ctx, &domain.Voluntariado{ID: id})
		require.NoError(mt, err)
		assert.Equal(mt, id, created.ID)
	})

	mt.Run("insert rejects malformed id", func(mt *mtest.T) {
		repo := NewVoluntariadoRepository(mt.DB)

		_, err := repo.Insert(ctx, &domain.Voluntariado{ID: "1"})
		assert.ErrorIs(mt, err, domain.ErrInvalidKey)
	})

	mt.Run("find malformed id is not found", func(mt *mtest.T) {
		repo := NewVoluntariadoRepository(mt.DB)

		_, err := repo.FindByKey(ctx, "not-an-object-id")
		assert.ErrorIs(mt, err, domain.ErrNotFound)
	})

	mt.Run("find", func(mt *mtest.T) {
		repo := NewVoluntariadoRepository(mt.DB)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.voluntariados", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "titulo", Value: "Huerta"},
			{Key: "tipo", Value: "Peticion"},
		}))

		v, err := repo.FindByKey(ctx, oid.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, oid.Hex(), v.ID)
		assert.Equal(mt, domain.TipoPeticion, v.Tipo)
	})

	mt.Run("list", func(mt *mtest.T) {
		repo := NewVoluntariadoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.voluntariados", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "titulo", Value: "uno"}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "titulo", Value: "dos"}},
		))

		recs, err := repo.List(ctx)
		require.NoError(mt, err)
		require.Len(mt, recs, 2)
		assert.Equal(mt, "uno", recs[0].Titulo)
	})

	mt.Run("delete missing", func(mt *mtest.T) {
		repo := NewVoluntariadoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := repo.DeleteByKey(ctx, primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, domain.ErrNotFound)
	})
}
