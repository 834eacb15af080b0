package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "agenda_tecnica/internal/adapter/http/dto/request"
	response "agenda_tecnica/internal/adapter/http/dto/response"
	"agenda_tecnica/internal/usecase"
	"agenda_tecnica/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidActividadPayload = pkg.NewDomainErrorSimple("INVALID_ACTIVIDAD_INPUT", "Invalid actividad payload", http.StatusBadRequest)
	errInvalidQuery            = pkg.NewDomainErrorSimple("INVALID_QUERY", "Invalid query parameters", http.StatusBadRequest)
)

// ActividadHandler serves the JSON API of the agenda.
type ActividadHandler struct {
	usecase usecase.IActividadUseCase
}

func NewActividadHandler(uc usecase.IActividadUseCase) *ActividadHandler {
	return &ActividadHandler{usecase: uc}
}

// ListActividades godoc
// @Summary      List actividades
// @Description  Lists activities for a fecha (today by default, "all" for every date), newest first.
// @Tags         actividades
// @Produce      json
// @Param        fecha        query  string  false  "YYYY-MM-DD, hoy or all"
// @Param        assigned_to  query  string  false  "technician name or Por Asignar"
// @Param        created_by   query  string  false  "office agent"
// @Success      200  {array}   response.ActividadResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /actividades [get]
func (h *ActividadHandler) List(c *gin.Context) {
	var q request.ListActividadesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidQuery.HTTPStatus, errInvalidQuery.ToHTTPError())
		return
	}

	items, err := h.usecase.List(c.Request.Context(), q.ToFilter())
	if err != nil {
		appErr := mapActividadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromActividades(items))
}

// Resumen godoc
// @Summary      Dashboard counters
// @Tags         actividades
// @Produce      json
// @Param        fecha  query  string  false  "YYYY-MM-DD, hoy or all"
// @Success      200  {object}  response.ResumenResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /actividades/resumen [get]
func (h *ActividadHandler) Resumen(c *gin.Context) {
	r, err := h.usecase.Resumen(c.Request.Context(), c.Query("fecha"))
	if err != nil {
		appErr := mapActividadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromResumen(r))
}

// GetActividad godoc
// @Summary      Get an actividad
// @Tags         actividades
// @Produce      json
// @Param        id  path  string  true  "actividad id"
// @Success      200  {object}  response.ActividadResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /actividades/{id} [get]
func (h *ActividadHandler) GetByID(c *gin.Context) {
	a, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapActividadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromActividad(a))
}

// CreateActividad godoc
// @Summary      Create an actividad
// @Description  Missing fields take the agenda defaults (SOPORTE, PENDIENTE, Por Asignar, OFICINA, today).
// @Tags         actividades
// @Accept       json
// @Produce      json
// @Param        body  body  request.CreateActividadRequest  true  "actividad"
// @Success      201  {object}  response.ActividadResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /actividades [post]
func (h *ActividadHandler) Create(c *gin.Context) {
	var payload request.CreateActividadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidActividadPayload.HTTPStatus, errInvalidActividadPayload.ToHTTPError())
		return
	}

	a, err := h.usecase.Create(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapActividadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromActividad(a))
}

// UpdateActividad godoc
// @Summary      Update an actividad
// @Description  Partial update: only the fields present in the body change.
// @Tags         actividades
// @Accept       json
// @Produce      json
// @Param        id    path  string                          true  "actividad id"
// @Param        body  body  request.UpdateActividadRequest  true  "fields to change"
// @Success      200  {object}  response.ActividadResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /actividades/{id} [put]
func (h *ActividadHandler) Update(c *gin.Context) {
	var payload request.UpdateActividadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidActividadPayload.HTTPStatus, errInvalidActividadPayload.ToHTTPError())
		return
	}

	a, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapActividadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromActividad(a))
}

// UpdateEstado godoc
// @Summary      Change the estado of an actividad
// @Tags         actividades
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "actividad id"
// @Param        body  body  request.UpdateEstadoRequest  true  "new estado"
// @Success      200  {object}  response.ActividadResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /actividades/{id}/estado [patch]
func (h *ActividadHandler) UpdateEstado(c *gin.Context) {
	var payload request.UpdateEstadoRequest
	if err := c.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.Estado) == "" {
		c.JSON(errInvalidActividadPayload.HTTPStatus, errInvalidActividadPayload.ToHTTPError())
		return
	}

	a, err := h.usecase.UpdateEstado(c.Request.Context(), c.Param("id"), payload.Estado)
	if err != nil {
		appErr := mapActividadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromActividad(a))
}

// DeleteActividad godoc
// @Summary      Delete an actividad
// @Tags         actividades
// @Produce      json
// @Param        id  path  string  true  "actividad id"
// @Success      200  {object}  response.DeleteActividadResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /actividades/{id} [delete]
func (h *ActividadHandler) Delete(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := h.usecase.Remove(c.Request.Context(), id); err != nil {
		appErr := mapActividadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.DeleteActividadResponse{Message: "Actividad eliminada", ID: id})
}

func mapActividadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidActividadID):
		return pkg.NewDomainErrorSimple("INVALID_ACTIVIDAD_ID", "Invalid actividad id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidActividad):
		return pkg.NewDomainError("INVALID_ACTIVIDAD", validationMessage(err), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrActividadNotFound):
		return pkg.NewDomainErrorSimple("ACTIVIDAD_NOT_FOUND", "Actividad not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStoreUnavailable):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Activity store is unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// validationMessage strips the sentinel prefix so clients see only the
// field problems.
func validationMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), usecase.ErrInvalidActividad.Error()+": ")
	if msg == "" || msg == usecase.ErrInvalidActividad.Error() {
		return "Invalid actividad"
	}
	return msg
}
