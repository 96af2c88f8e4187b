package handler

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/voluntariados/backend/internal/core/domain"
	"github.com/voluntariados/backend/internal/core/ports"
)

// UsuarioHandler serves the /usuarios routes. Failures are returned to Echo
// and rendered by the API error handler.
type UsuarioHandler struct {
	service ports.RecordService[domain.Usuario]
}

func NewUsuarioHandler(service ports.RecordService[domain.Usuario]) *UsuarioHandler {
	return &UsuarioHandler{service: service}
}

// List handles GET /usuarios.
//
// @Summary      List usuarios
// @Tags         usuarios
// @Produce      json
// @Success      200  {array}   domain.Usuario
// @Failure      500  {object}  messageResponse
// @Router       /usuarios [get]
func (h *UsuarioHandler) List(c echo.Context) error {
	usuarios, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, usuarios)
}

// Get handles GET /usuarios/:email.
//
// @Summary      Get a usuario by email
// @Tags         usuarios
// @Produce      json
// @Param        email  path      string  true  "Email"
// @Success      200    {object}  domain.Usuario
// @Failure      404    {object}  messageResponse
// @Failure      500    {object}  messageResponse
// @Router       /usuarios/{email} [get]
func (h *UsuarioHandler) Get(c echo.Context) error {
	email, err := pathParam(c, "email")
	if err != nil {
		return err
	}

	usuario, err := h.service.Get(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, usuario)
}

// Create handles POST /usuarios.
//
// @Summary      Create a usuario
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body      usuarioRequest  true  "Usuario"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /usuarios [post]
func (h *UsuarioHandler) Create(c echo.Context) error {
	var req usuarioRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cuerpo de la petición inválido").SetInternal(err)
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.service.Create(c.Request().Context(), toUsuario(req)); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, messageResponse{Message: domain.MsgUsuarioCreado})
}

// Delete handles DELETE /usuarios/:email.
//
// @Summary      Delete a usuario
// @Tags         usuarios
// @Produce      json
// @Param        email  path      string  true  "Email"
// @Success      200    {object}  messageResponse
// @Failure      404    {object}  messageResponse
// @Failure      500    {object}  messageResponse
// @Router       /usuarios/{email} [delete]
func (h *UsuarioHandler) Delete(c echo.Context) error {
	email, err := pathParam(c, "email")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), email); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: domain.MsgUsuarioEliminado})
}

// pathParam returns the unescaped value of a path parameter, so that
// "a%40x.com" and "a@x.com" address the same record.
func pathParam(c echo.Context, name string) (string, error) {
	v, err := url.PathUnescape(c.Param(name))
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "parámetro "+name+" inválido").SetInternal(err)
	}
	return v, nil
}
