// Package gql exposes the record services through a GraphQL schema built with
// graphql-go. It shares service instances and error mapping with the REST
// API, so both transports observe the same data and the same messages.
package gql

import (
	"github.com/graphql-go/graphql"

	"github.com/voluntariados/backend/internal/core/domain"
)

var tipoVoluntariadoEnum = graphql.NewEnum(graphql.EnumConfig{
	Name:        "TipoVoluntariado",
	Description: "Whether a posting offers help or asks for it.",
	Values: graphql.EnumValueConfigMap{
		"Oferta":   &graphql.EnumValueConfig{Value: domain.TipoOferta},
		"Peticion": &graphql.EnumValueConfig{Value: domain.TipoPeticion},
	},
})

// Fields resolve through graphql.DefaultResolveFn, which matches the domain
// structs by field name.
var usuarioType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Usuario",
	Fields: graphql.Fields{
		"user":     &graphql.Field{Type: graphql.String},
		"email":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"password": &graphql.Field{Type: graphql.String},
		"nombre":   &graphql.Field{Type: graphql.String},
		"tipo":     &graphql.Field{Type: graphql.String},
	},
})

var voluntariadoType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Voluntariado",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"titulo":      &graphql.Field{Type: graphql.String},
		"usuario":     &graphql.Field{Type: graphql.String},
		"fecha":       &graphql.Field{Type: graphql.String},
		"descripcion": &graphql.Field{Type: graphql.String},
		"tipo":        &graphql.Field{Type: tipoVoluntariadoEnum},
		"email":       &graphql.Field{Type: graphql.String},
	},
})

// NewSchema builds the schema with r's resolvers.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"usuarios": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(usuarioType))),
				Resolve: r.usuarios,
			},
			"usuario": &graphql.Field{
				Type: usuarioType,
				Args: graphql.FieldConfigArgument{
					"email": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.usuario,
			},
			"voluntariados": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(voluntariadoType))),
				Resolve: r.voluntariados,
			},
			"voluntariado": &graphql.Field{
				Type: voluntariadoType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.voluntariado,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"crearUsuario": &graphql.Field{
				Type: usuarioType,
				Args: graphql.FieldConfigArgument{
					"user":     &graphql.ArgumentConfig{Type: graphql.String},
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.String},
					"nombre":   &graphql.ArgumentConfig{Type: graphql.String},
					"tipo":     &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.crearUsuario,
			},
			"eliminarUsuario": &graphql.Field{
				Type: graphql.String,
				Args: graphql.FieldConfigArgument{
					"email": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.eliminarUsuario,
			},
			"crearVoluntariado": &graphql.Field{
				Type: voluntariadoType,
				Args: graphql.FieldConfigArgument{
					"id":          &graphql.ArgumentConfig{Type: graphql.ID},
					"titulo":      &graphql.ArgumentConfig{Type: graphql.String},
					"usuario":     &graphql.ArgumentConfig{Type: graphql.String},
					"fecha":       &graphql.ArgumentConfig{Type: graphql.String},
					"descripcion": &graphql.ArgumentConfig{Type: graphql.String},
					"tipo":        &graphql.ArgumentConfig{Type: tipoVoluntariadoEnum},
					"email":       &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.crearVoluntariado,
			},
			"eliminarVoluntariado": &graphql.Field{
				Type: graphql.String,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.eliminarVoluntariado,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}
