package gql

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/labstack/echo/v4"
)

// request is the standard GraphQL-over-HTTP body.
type request struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

// Handler executes GraphQL requests against a schema.
type Handler struct {
	schema graphql.Schema
}

func NewHandler(schema graphql.Schema) *Handler {
	return &Handler{schema: schema}
}

// Serve handles POST /graphql with a JSON body and GET /graphql with the
// query, variables and operationName query parameters. Execution errors are
// reported inside the result with status 200; only malformed requests get a
// 400.
func (h *Handler) Serve(c echo.Context) error {
	req, err := decodeRequest(c)
	if err != nil {
		return err
	}
	if req.Query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "la consulta es obligatoria")
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        c.Request().Context(),
	})
	return c.JSON(http.StatusOK, result)
}

func decodeRequest(c echo.Context) (request, error) {
	var req request
	if c.Request().Method == http.MethodGet {
		req.Query = c.QueryParam("query")
		req.OperationName = c.QueryParam("operationName")
		if vars := c.QueryParam("variables"); vars != "" {
			if err := json.Unmarshal([]byte(vars), &req.Variables); err != nil {
				return req, echo.NewHTTPError(http.StatusBadRequest, "variables inválidas").SetInternal(err)
			}
		}
		return req, nil
	}

	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "cuerpo de la petición inválido").SetInternal(err)
	}
	return req, nil
}
