package handlers

import (
	"errors"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strings"

	request "agenda_tecnica/internal/adapter/http/dto/request"
	"agenda_tecnica/internal/domain/entities"
	"agenda_tecnica/internal/usecase"

	"github.com/gin-gonic/gin"
)

const notFoundNotice = "Actividad no encontrada"

// ViewHandler renders the HTML pages. It calls the activity service
// in-process and uses the JSON API only for report downloads.
type ViewHandler struct {
	usecase usecase.IActividadUseCase
	agentes []string
}

func NewViewHandler(uc usecase.IActividadUseCase, agentes []string) *ViewHandler {
	if len(agentes) == 0 {
		agentes = entities.DefaultAgentes
	}
	return &ViewHandler{usecase: uc, agentes: agentes}
}

func (h *ViewHandler) Dashboard(c *gin.Context) {
	fecha, err := h.usecase.ResolveFecha(c.Query("fecha"))
	if err != nil {
		c.HTML(mapActividadError(err).HTTPStatus, "dashboard.html", gin.H{
			"Titulo": "Dashboard", "Fecha": h.usecase.Today(), "Resumen": entities.Resumen{}, "Items": []entities.Actividad{},
			"Banner": viewErrorMessage(err),
		})
		return
	}
	data := gin.H{"Titulo": "Dashboard", "Fecha": fecha, "Resumen": entities.Resumen{}, "Items": []entities.Actividad{}}

	items, err := h.usecase.List(c.Request.Context(), entities.ListFilter{Fecha: fecha})
	if err != nil {
		data["Banner"] = viewErrorMessage(err)
		c.HTML(mapActividadError(err).HTTPStatus, "dashboard.html", data)
		return
	}
	data["Resumen"] = usecase.Summarize(fecha, items)
	data["Items"] = items
	c.HTML(http.StatusOK, "dashboard.html", data)
}

func (h *ViewHandler) Agenda(c *gin.Context) {
	filter := entities.ListFilter{AssignedTo: strings.TrimSpace(c.Query("tecnico"))}
	fecha, err := h.usecase.ResolveFecha(c.Query("fecha"))
	if err != nil {
		filter.Fecha = h.usecase.Today()
		h.renderList(c, "agenda.html", "Agenda diaria", filter, viewErrorMessage(err), mapActividadError(err).HTTPStatus)
		return
	}
	filter.Fecha = fecha
	h.renderList(c, "agenda.html", "Agenda diaria", filter, "", http.StatusOK)
}

// Soporte is the agent history: every fecha, optionally one agent.
func (h *ViewHandler) Soporte(c *gin.Context) {
	h.renderList(c, "soporte.html", "Bitácora de soporte", entities.ListFilter{
		Fecha:     entities.FechaTodas,
		CreatedBy: strings.TrimSpace(c.Query("agente")),
	}, "", http.StatusOK)
}

func (h *ViewHandler) renderList(c *gin.Context, page, titulo string, filter entities.ListFilter, banner string, status int) {
	data := gin.H{
		"Titulo":   titulo,
		"Fecha":    filter.Fecha,
		"Tecnico":  filter.AssignedTo,
		"Agente":   filter.CreatedBy,
		"Tecnicos":   h.usecase.Tecnicos(),
		"PorAsignar": entities.PorAsignar,
		"Agentes":    h.agentes,
		"Items":      []entities.Actividad{},
		"Banner":     banner,
	}
	if filter.AssignedTo != "" || filter.CreatedBy != "" {
		data["ExportPDF"] = exportURL(filter, "pdf")
		data["ExportJPG"] = exportURL(filter, "jpeg")
	}

	items, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		data["Banner"] = viewErrorMessage(err)
		status = mapActividadError(err).HTTPStatus
	} else {
		data["Items"] = items
	}
	c.HTML(status, page, data)
}

func (h *ViewHandler) NewForm(c *gin.Context) {
	form := request.ActividadForm{
		Tipo:       string(entities.TipoSoporte),
		Estado:     string(entities.EstadoPendiente),
		AssignedTo: entities.PorAsignar,
		CreatedBy:  entities.CreadoPorOficina,
		Fecha:      h.usecase.Today(),
	}
	h.renderForm(c, http.StatusOK, "Nueva actividad", "/app/actividades", form, nil)
}

func (h *ViewHandler) EditForm(c *gin.Context) {
	a, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderMissing(c, err)
		return
	}
	h.renderForm(c, http.StatusOK, "Editar actividad", "/app/actividades/"+url.PathEscape(a.ID), request.FormFromActividad(a), nil)
}

func (h *ViewHandler) Create(c *gin.Context) {
	var form request.ActividadForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusBadRequest, "Nueva actividad", "/app/actividades", form, map[string]string{"form": "Formulario inválido"})
		return
	}
	if errs := form.Validate(); len(errs) > 0 {
		h.renderForm(c, http.StatusBadRequest, "Nueva actividad", "/app/actividades", form, errs)
		return
	}

	a, err := h.usecase.Create(c.Request.Context(), form.ToCommand())
	if err != nil {
		h.renderForm(c, mapActividadError(err).HTTPStatus, "Nueva actividad", "/app/actividades", form, map[string]string{"form": viewErrorMessage(err)})
		return
	}
	c.Redirect(http.StatusSeeOther, agendaURL(a))
}

func (h *ViewHandler) Update(c *gin.Context) {
	id := c.Param("id")
	action := "/app/actividades/" + url.PathEscape(id)

	var form request.ActividadForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusBadRequest, "Editar actividad", action, form, map[string]string{"form": "Formulario inválido"})
		return
	}
	if errs := form.Validate(); len(errs) > 0 {
		h.renderForm(c, http.StatusBadRequest, "Editar actividad", action, form, errs)
		return
	}

	a, err := h.usecase.Update(c.Request.Context(), id, form.ToPatch())
	if err != nil {
		if errors.Is(err, usecase.ErrActividadNotFound) {
			h.renderMissing(c, err)
			return
		}
		h.renderForm(c, mapActividadError(err).HTTPStatus, "Editar actividad", action, form, map[string]string{"form": viewErrorMessage(err)})
		return
	}
	c.Redirect(http.StatusSeeOther, agendaURL(a))
}

// UpdateEstado backs the inline estado selector of the tables.
func (h *ViewHandler) UpdateEstado(c *gin.Context) {
	a, err := h.usecase.UpdateEstado(c.Request.Context(), c.Param("id"), c.PostForm("estado"))
	if err != nil {
		h.renderListError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, backURL(c, agendaURL(a)))
}

func (h *ViewHandler) Delete(c *gin.Context) {
	if err := h.usecase.Remove(c.Request.Context(), c.Param("id")); err != nil {
		h.renderListError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, backURL(c, "/app/agenda"))
}

func (h *ViewHandler) renderListError(c *gin.Context, err error) {
	log.Printf("[actividad][view] action failed id=%s err=%v", c.Param("id"), err)
	h.renderList(c, "agenda.html", "Agenda diaria", entities.ListFilter{Fecha: h.usecase.Today()}, viewErrorMessage(err), mapActividadError(err).HTTPStatus)
}

func (h *ViewHandler) renderForm(c *gin.Context, status int, titulo, action string, form request.ActividadForm, errs map[string]string) {
	if errs == nil {
		errs = map[string]string{}
	}
	c.HTML(status, "form.html", gin.H{
		"Titulo":   titulo,
		"Action":   action,
		"Form":     form,
		"Errors":   errs,
		"Tecnicos": withCurrent(h.usecase.Tecnicos(), form.AssignedTo, entities.PorAsignar),
		"Agentes":  withCurrent(h.agentes, form.CreatedBy, ""),
	})
}

func (h *ViewHandler) renderMissing(c *gin.Context, err error) {
	status := mapActividadError(err).HTTPStatus
	notice, banner := "", ""
	if errors.Is(err, usecase.ErrActividadNotFound) || errors.Is(err, usecase.ErrInvalidActividadID) {
		notice = notFoundNotice
	} else {
		banner = viewErrorMessage(err)
	}
	c.HTML(status, "form.html", gin.H{
		"Titulo":  "Editar actividad",
		"Missing": true,
		"Notice":  notice,
		"Banner":  banner,
	})
}

func viewErrorMessage(err error) string {
	switch {
	case errors.Is(err, usecase.ErrActividadNotFound):
		return notFoundNotice
	case errors.Is(err, usecase.ErrInvalidActividad):
		return validationMessage(err)
	case errors.Is(err, usecase.ErrStoreUnavailable):
		return "No se pudo contactar el almacén de actividades. Intenta de nuevo."
	default:
		return "Ocurrió un error inesperado"
	}
}

// withCurrent keeps a value that left the roster selectable so editing a
// record does not silently reassign it.
func withCurrent(options []string, current, implicit string) []string {
	if current == "" || current == implicit {
		return options
	}
	for _, o := range options {
		if o == current {
			return options
		}
	}
	return append(append([]string{}, options...), current)
}

func agendaURL(a entities.Actividad) string {
	q := url.Values{}
	q.Set("fecha", a.Fecha)
	if a.AssignedTo != "" && a.AssignedTo != entities.PorAsignar {
		q.Set("tecnico", a.AssignedTo)
	}
	return "/app/agenda?" + q.Encode()
}

// backURL returns to the page that posted the form when it is one of ours.
func backURL(c *gin.Context, fallback string) string {
	ref, err := url.Parse(c.Request.Referer())
	if err != nil || ref.Path == "" || !strings.HasPrefix(ref.Path, "/app") || (ref.Host != "" && ref.Host != c.Request.Host) {
		return fallback
	}
	return ref.RequestURI()
}

func exportURL(filter entities.ListFilter, formato string) template.URL {
	q := url.Values{}
	q.Set("fecha", filter.Fecha)
	if filter.AssignedTo != "" {
		q.Set("assigned_to", filter.AssignedTo)
	}
	if filter.CreatedBy != "" {
		q.Set("created_by", filter.CreatedBy)
	}
	q.Set("formato", formato)
	return template.URL("/v1/reportes/ruta?" + q.Encode())
}
