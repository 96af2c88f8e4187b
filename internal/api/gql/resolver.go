package gql

import (
	"errors"

	"github.com/graphql-go/graphql"
	"github.com/rs/zerolog"

	"github.com/voluntariados/backend/internal/api/apierr"
	"github.com/voluntariados/backend/internal/core/domain"
	"github.com/voluntariados/backend/internal/core/ports"
)

// Resolver holds the services behind the schema's root fields.
type Resolver struct {
	usuarioSvc      ports.RecordService[domain.Usuario]
	voluntariadoSvc ports.RecordService[domain.Voluntariado]
	log             zerolog.Logger
}

func NewResolver(
	usuarios ports.RecordService[domain.Usuario],
	voluntariados ports.RecordService[domain.Voluntariado],
	log zerolog.Logger,
) *Resolver {
	return &Resolver{usuarioSvc: usuarios, voluntariadoSvc: voluntariados, log: log}
}

// resolverError is what clients see in the "errors" array. Status mirrors
// the HTTP status REST would answer with.
type resolverError struct {
	msg    string
	status int
}

func (e *resolverError) Error() string { return e.msg }

func (e *resolverError) Extensions() map[string]interface{} {
	return map[string]interface{}{"status": e.status}
}

func (r *Resolver) fail(field string, err error) error {
	status, msg, known := apierr.Resolve(err)
	if !known {
		r.log.Error().Err(err).Str("field", field).Msg("unhandled error")
	}
	return &resolverError{msg: msg, status: status}
}

// --- Queries ---

func (r *Resolver) usuarios(p graphql.ResolveParams) (interface{}, error) {
	recs, err := r.usuarioSvc.List(p.Context)
	if err != nil {
		return nil, r.fail("usuarios", err)
	}
	return recs, nil
}

func (r *Resolver) usuario(p graphql.ResolveParams) (interface{}, error) {
	u, err := r.usuarioSvc.Get(p.Context, stringArg(p, "email"))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, r.fail("usuario", err)
	}
	return u, nil
}

func (r *Resolver) voluntariados(p graphql.ResolveParams) (interface{}, error) {
	recs, err := r.voluntariadoSvc.List(p.Context)
	if err != nil {
		return nil, r.fail("voluntariados", err)
	}
	return recs, nil
}

func (r *Resolver) voluntariado(p graphql.ResolveParams) (interface{}, error) {
	v, err := r.voluntariadoSvc.Get(p.Context, stringArg(p, "id"))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, r.fail("voluntariado", err)
	}
	return v, nil
}

// --- Mutations ---

func (r *Resolver) crearUsuario(p graphql.ResolveParams) (interface{}, error) {
	u, err := r.usuarioSvc.Create(p.Context, domain.Usuario{
		User:     stringArg(p, "user"),
		Email:    stringArg(p, "email"),
		Password: stringArg(p, "password"),
		Nombre:   stringArg(p, "nombre"),
		Tipo:     stringArg(p, "tipo"),
	})
	if err != nil {
		return nil, r.fail("crearUsuario", err)
	}
	return u, nil
}

func (r *Resolver) eliminarUsuario(p graphql.ResolveParams) (interface{}, error) {
	if err := r.usuarioSvc.Delete(p.Context, stringArg(p, "email")); err != nil {
		return nil, r.fail("eliminarUsuario", err)
	}
	return domain.MsgUsuarioEliminado, nil
}

func (r *Resolver) crearVoluntariado(p graphql.ResolveParams) (interface{}, error) {
	tipo, _ := p.Args["tipo"].(domain.TipoVoluntariado)
	v, err := r.voluntariadoSvc.Create(p.Context, domain.Voluntariado{
		ID:          stringArg(p, "id"),
		Titulo:      stringArg(p, "titulo"),
		Usuario:     stringArg(p, "usuario"),
		Fecha:       stringArg(p, "fecha"),
		Descripcion: stringArg(p, "descripcion"),
		Tipo:        tipo,
		Email:       stringArg(p, "email"),
	})
	if err != nil {
		return nil, r.fail("crearVoluntariado", err)
	}
	return v, nil
}

func (r *Resolver) eliminarVoluntariado(p graphql.ResolveParams) (interface{}, error) {
	if err := r.voluntariadoSvc.Delete(p.Context, stringArg(p, "id")); err != nil {
		return nil, r.fail("eliminarVoluntariado", err)
	}
	return domain.MsgVoluntariadoEliminado, nil
}

// stringArg returns the named argument, or "" when it was omitted.
func stringArg(p graphql.ResolveParams, name string) string {
	s, _ := p.Args[name].(string)
	return s
}
