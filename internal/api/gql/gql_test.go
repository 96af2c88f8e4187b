package gql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voluntariados/backend/internal/api"
	"github.com/voluntariados/backend/internal/core/domain"
	"github.com/voluntariados/backend/internal/core/service"
	"github.com/voluntariados/backend/internal/infrastructure/db/memory"
)

type fixture struct {
	usuarios      *service.Records[domain.Usuario]
	voluntariados *service.Records[domain.Voluntariado]
	server        *httptest.Server
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := zerolog.Nop()
	f := &fixture{
		usuarios:      service.NewUsuarioService(memory.NewUsuarioStore(), log),
		voluntariados: service.NewVoluntariadoService(memory.NewVoluntariadoStore(), log),
	}

	reg := prometheus.NewRegistry()
	e, err := NewRouter(api.Deps{
		Usuarios:      f.usuarios,
		Voluntariados: f.voluntariados,
		Logger:        log,
		Registerer:    reg,
		Gatherer:      reg,
	})
	require.NoError(t, err)

	f.server = httptest.NewServer(e)
	t.Cleanup(f.server.Close)
	return f
}

type gqlError struct {
	Message    string         `json:"message"`
	Extensions map[string]any `json:"extensions"`
}

type gqlResponse struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []gqlError                 `json:"errors"`
}

func (f *fixture) do(t *testing.T, query string, vars map[string]any) gqlResponse {
	t.Helper()
	body, err := json.Marshal(map[string]any{"query": query, "variables": vars})
	require.NoError(t, err)

	resp, err := http.Post(f.server.URL+"/graphql", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out gqlResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestCrearUsuarioThenQuery(t *testing.T) {
	f := newFixture(t)

	res := f.do(t, `mutation($email: String!) {
		crearUsuario(user: "a", email: $email, password: "p", nombre: "A", tipo: "voluntario") { email nombre }
	}`, map[string]any{"email": "a@x.com"})
	require.Empty(t, res.Errors)
	assert.JSONEq(t, `{"email":"a@x.com","nombre":"A"}`, string(res.Data["crearUsuario"]))

	res = f.do(t, `{ usuario(email: "a@x.com") { user email password nombre tipo } }`, nil)
	require.Empty(t, res.Errors)
	assert.JSONEq(t,
		`{"user":"a","email":"a@x.com","password":"p","nombre":"A","tipo":"voluntario"}`,
		string(res.Data["usuario"]))

	res = f.do(t, `{ usuarios { email } }`, nil)
	require.Empty(t, res.Errors)
	assert.JSONEq(t, `[{"email":"a@x.com"}]`, string(res.Data["usuarios"]))
}

func TestCrearUsuario_Duplicate(t *testing.T) {
	f := newFixture(t)
	_, err := f.usuarios.Create(context.Background(), domain.Usuario{Email: "a@x.com"})
	require.NoError(t, err)

	res := f.do(t, `mutation { crearUsuario(email: "a@x.com") { email } }`, nil)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "Usuario ya existe", res.Errors[0].Message)
	assert.EqualValues(t, http.StatusConflict, res.Errors[0].Extensions["status"])
}

func TestUsuario_MissingIsNull(t *testing.T) {
	f := newFixture(t)

	res := f.do(t, `{ usuario(email: "missing@x.com") { email } }`, nil)
	require.Empty(t, res.Errors)
	assert.Equal(t, "null", string(res.Data["usuario"]))
}

func TestEliminarUsuario(t *testing.T) {
	f := newFixture(t)
	_, err := f.usuarios.Create(context.Background(), domain.Usuario{Email: "a@x.com"})
	require.NoError(t, err)

	res := f.do(t, `mutation { eliminarUsuario(email: "a@x.com") }`, nil)
	require.Empty(t, res.Errors)
	assert.Equal(t, `"Usuario eliminado con éxito"`, string(res.Data["eliminarUsuario"]))

	res = f.do(t, `mutation { eliminarUsuario(email: "a@x.com") }`, nil)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "Usuario no encontrado", res.Errors[0].Message)
}

func TestCrearVoluntariado(t *testing.T) {
	f := newFixture(t)

	res := f.do(t, `mutation {
		crearVoluntariado(titulo: "Huerta", usuario: "a", fecha: "2024-05-01", descripcion: "riego", tipo: Oferta, email: "a@x.com") {
			id titulo tipo
		}
	}`, nil)
	require.Empty(t, res.Errors)
	assert.JSONEq(t, `{"id":"1","titulo":"Huerta","tipo":"Oferta"}`, string(res.Data["crearVoluntariado"]))

	res = f.do(t, `{ voluntariados { id tipo } }`, nil)
	require.Empty(t, res.Errors)
	assert.JSONEq(t, `[{"id":"1","tipo":"Oferta"}]`, string(res.Data["voluntariados"]))

	res = f.do(t, `{ voluntariado(id: "1") { titulo descripcion } }`, nil)
	require.Empty(t, res.Errors)
	assert.JSONEq(t, `{"titulo":"Huerta","descripcion":"riego"}`, string(res.Data["voluntariado"]))
}

func TestEliminarVoluntariado_NotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.voluntariados.Create(ctx, domain.Voluntariado{ID: "2", Titulo: "dos"})
	require.NoError(t, err)

	res := f.do(t, `mutation { eliminarVoluntariado(id: "1") }`, nil)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "Voluntariado no encontrado", res.Errors[0].Message)

	recs, err := f.voluntariados.List(ctx)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestGetRequest(t *testing.T) {
	f := newFixture(t)

	q := url.Values{"query": {`{ usuarios { email } }`}}
	resp, err := http.Get(f.server.URL + "/graphql?" + q.Encode())
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out gqlResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "[]", string(out.Data["usuarios"]))
}

func TestMalformedRequest(t *testing.T) {
	f := newFixture(t)

	resp, err := http.Post(f.server.URL+"/graphql", "application/json", bytes.NewBufferString(`{"query":`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Post(f.server.URL+"/graphql", "application/json", bytes.NewBufferString(`{}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

type failingService[T any] struct{}

func (failingService[T]) List(context.Context) ([]T, error) { return nil, errors.New("connection reset") }

func (failingService[T]) Get(context.Context, string) (*T, error) {
	return nil, errors.New("connection reset")
}

func (failingService[T]) Create(context.Context, T) (*T, error) {
	return nil, errors.New("connection reset")
}

func (failingService[T]) Delete(context.Context, string) error { return errors.New("connection reset") }

func TestBackendFailureIsGeneric(t *testing.T) {
	schema, err := NewSchema(NewResolver(
		failingService[domain.Usuario]{},
		failingService[domain.Voluntariado]{},
		zerolog.Nop(),
	))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/graphql",
		bytes.NewBufferString(`{"query":"{ usuarios { email } }"}`))
	rec := httptest.NewRecorder()
	require.NoError(t, NewHandler(schema).Serve(echo.New().NewContext(req, rec)))

	var out gqlResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Errors, 1)
	assert.Equal(t, "error interno del servidor", out.Errors[0].Message)
	assert.EqualValues(t, http.StatusInternalServerError, out.Errors[0].Extensions["status"])
}
