package request

import (
	"bytes"
	"encoding/json"
	"strings"

	"agenda_tecnica/internal/domain/entities"
	"agenda_tecnica/internal/usecase"
)

// Amount is a costo as sent by clients: older screens post it as a JSON
// number, newer ones as text. Both decode to the text form.
type Amount string

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*a = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*a = Amount(n.String())
	return nil
}

type CreateActividadRequest struct {
	Tipo       string `json:"tipo" example:"SOPORTE"`
	Cliente    string `json:"cliente" binding:"required" example:"Acme"`
	Horario    string `json:"horario" example:"09:00 - 11:00"`
	Servicio   string `json:"servicio"`
	Direccion  string `json:"direccion" example:"1 Main St"`
	Telefono   string `json:"telefono"`
	Costo      Amount `json:"costo" swaggertype:"string" example:"500"`
	Estado     string `json:"estado" example:"PENDIENTE"`
	AssignedTo string `json:"assigned_to" example:"Por Asignar"`
	CreatedBy  string `json:"created_by" example:"OFICINA"`
	Fecha      string `json:"fecha" example:"2026-10-14"`
	Notas      string `json:"notas"`
}

func (r CreateActividadRequest) ToCommand() usecase.NewActividad {
	return usecase.NewActividad{
		Tipo:       r.Tipo,
		Cliente:    r.Cliente,
		Horario:    r.Horario,
		Servicio:   r.Servicio,
		Direccion:  r.Direccion,
		Telefono:   r.Telefono,
		Costo:      string(r.Costo),
		Estado:     r.Estado,
		AssignedTo: r.AssignedTo,
		CreatedBy:  r.CreatedBy,
		Fecha:      r.Fecha,
		Notas:      r.Notas,
	}
}

// UpdateActividadRequest is a partial update: absent fields are kept.
type UpdateActividadRequest struct {
	Tipo       *string `json:"tipo"`
	Cliente    *string `json:"cliente"`
	Horario    *string `json:"horario"`
	Servicio   *string `json:"servicio"`
	Direccion  *string `json:"direccion"`
	Telefono   *string `json:"telefono"`
	Costo      *Amount `json:"costo" swaggertype:"string"`
	Estado     *string `json:"estado"`
	AssignedTo *string `json:"assigned_to"`
	CreatedBy  *string `json:"created_by"`
	Fecha      *string `json:"fecha"`
	Notas      *string `json:"notas"`
}

func (r UpdateActividadRequest) ToPatch() entities.ActividadPatch {
	p := entities.ActividadPatch{
		Tipo:       r.Tipo,
		Cliente:    r.Cliente,
		Horario:    r.Horario,
		Servicio:   r.Servicio,
		Direccion:  r.Direccion,
		Telefono:   r.Telefono,
		Estado:     r.Estado,
		AssignedTo: r.AssignedTo,
		CreatedBy:  r.CreatedBy,
		Fecha:      r.Fecha,
		Notas:      r.Notas,
	}
	if r.Costo != nil {
		c := string(*r.Costo)
		p.Costo = &c
	}
	return p
}

type UpdateEstadoRequest struct {
	Estado string `json:"estado" binding:"required" example:"EN_RUTA"`
}

// ListActividadesQuery is bound from the query string of list and report
// endpoints.
type ListActividadesQuery struct {
	Fecha      string `form:"fecha"`
	AssignedTo string `form:"assigned_to"`
	CreatedBy  string `form:"created_by"`
}

func (q ListActividadesQuery) ToFilter() entities.ListFilter {
	return entities.ListFilter{
		Fecha:      strings.TrimSpace(q.Fecha),
		AssignedTo: strings.TrimSpace(q.AssignedTo),
		CreatedBy:  strings.TrimSpace(q.CreatedBy),
	}
}

type ReportQuery struct {
	ListActividadesQuery
	Formato string `form:"formato"`
}
