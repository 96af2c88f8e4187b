package gql

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/voluntariados/backend/internal/api"
)

// NewRouter builds the GraphQL server. It carries the same middleware stack
// as the REST server and serves the schema at /graphql.
func NewRouter(deps api.Deps) (*echo.Echo, error) {
	schema, err := NewSchema(NewResolver(deps.Usuarios, deps.Voluntariados, deps.Logger))
	if err != nil {
		return nil, fmt.Errorf("gql: build schema: %w", err)
	}

	e, err := api.NewEcho(deps, "graphql")
	if err != nil {
		return nil, err
	}

	h := NewHandler(schema)
	e.POST("/graphql", h.Serve)
	e.GET("/graphql", h.Serve)

	return e, nil
}
