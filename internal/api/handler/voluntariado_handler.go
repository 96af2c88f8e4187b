package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/voluntariados/backend/internal/core/domain"
	"github.com/voluntariados/backend/internal/core/ports"
)

// VoluntariadoHandler serves the /voluntariados routes.
type VoluntariadoHandler struct {
	service ports.RecordService[domain.Voluntariado]
}

func NewVoluntariadoHandler(service ports.RecordService[domain.Voluntariado]) *VoluntariadoHandler {
	return &VoluntariadoHandler{service: service}
}

// List handles GET /voluntariados.
//
// @Summary      List voluntariados
// @Tags         voluntariados
// @Produce      json
// @Success      200  {array}   domain.Voluntariado
// @Failure      500  {object}  messageResponse
// @Router       /voluntariados [get]
func (h *VoluntariadoHandler) List(c echo.Context) error {
	voluntariados, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, voluntariados)
}

// Get handles GET /voluntariados/:id.
//
// @Summary      Get a voluntariado by id
// @Tags         voluntariados
// @Produce      json
// @Param        id   path      string  true  "Voluntariado id"
// @Success      200  {object}  domain.Voluntariado
// @Failure      404  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /voluntariados/{id} [get]
func (h *VoluntariadoHandler) Get(c echo.Context) error {
	id, err := pathParam(c, "id")
	if err != nil {
		return err
	}

	v, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, v)
}

// Create handles POST /voluntariados. The id is optional; the store assigns
// one when it is missing.
//
// @Summary      Create a voluntariado
// @Tags         voluntariados
// @Accept       json
// @Produce      json
// @Param        body  body      voluntariadoRequest  true  "Voluntariado"
// @Success      201   {object}  createdVoluntariadoResponse
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /voluntariados [post]
func (h *VoluntariadoHandler) Create(c echo.Context) error {
	var req voluntariadoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cuerpo de la petición inválido").SetInternal(err)
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), toVoluntariado(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdVoluntariadoResponse{
		Message: domain.MsgVoluntariadoCreado,
		ID:      created.ID,
	})
}

// Delete handles DELETE /voluntariados/:id.
//
// @Summary      Delete a voluntariado
// @Tags         voluntariados
// @Produce      json
// @Param        id   path      string  true  "Voluntariado id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /voluntariados/{id} [delete]
func (h *VoluntariadoHandler) Delete(c echo.Context) error {
	id, err := pathParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: domain.MsgVoluntariadoEliminado})
}
