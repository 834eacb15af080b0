package response

import (
	"time"

	"agenda_tecnica/internal/domain/entities"
	"agenda_tecnica/internal/usecase"
)

type ActividadResponse struct {
	ID         string    `json:"id"`
	Tipo       string    `json:"tipo"`
	Cliente    string    `json:"cliente"`
	Horario    string    `json:"horario"`
	Servicio   string    `json:"servicio"`
	Direccion  string    `json:"direccion"`
	Telefono   string    `json:"telefono"`
	Costo      string    `json:"costo"`
	Estado     string    `json:"estado"`
	AssignedTo string    `json:"assigned_to"`
	CreatedBy  string    `json:"created_by"`
	Fecha      string    `json:"fecha"`
	Notas      string    `json:"notas,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromActividad(a entities.Actividad) ActividadResponse {
	return ActividadResponse{
		ID:         a.ID,
		Tipo:       string(a.Tipo),
		Cliente:    a.Cliente,
		Horario:    a.Horario,
		Servicio:   a.Servicio,
		Direccion:  a.Direccion,
		Telefono:   a.Telefono,
		Costo:      a.Costo,
		Estado:     string(a.Estado),
		AssignedTo: a.AssignedTo,
		CreatedBy:  a.CreatedBy,
		Fecha:      a.Fecha,
		Notas:      a.Notas,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// FromActividades never returns nil so an empty agenda encodes as [].
func FromActividades(items []entities.Actividad) []ActividadResponse {
	out := make([]ActividadResponse, 0, len(items))
	for _, a := range items {
		out = append(out, FromActividad(a))
	}
	return out
}

type DeleteActividadResponse struct {
	Message string `json:"message" example:"Actividad eliminada"`
	ID      string `json:"id"`
}

type ResumenResponse struct {
	Fecha       string         `json:"fecha"`
	Total       int            `json:"total"`
	Pendientes  int            `json:"pendientes"`
	Finalizados int            `json:"finalizados"`
	Eficiencia  int            `json:"eficiencia"`
	PorEstado   map[string]int `json:"por_estado"`
	PorTecnico  map[string]int `json:"por_tecnico"`
}

func FromResumen(r entities.Resumen) ResumenResponse {
	porEstado := make(map[string]int, len(entities.Estados))
	for _, e := range entities.Estados {
		porEstado[string(e)] = r.PorEstado[e]
	}
	porTecnico := make(map[string]int, len(r.PorTecnico))
	for k, v := range r.PorTecnico {
		porTecnico[k] = v
	}
	return ResumenResponse{
		Fecha:       r.Fecha,
		Total:       r.Total,
		Pendientes:  r.Pendientes,
		Finalizados: r.Finalizados,
		Eficiencia:  r.Eficiencia,
		PorEstado:   porEstado,
		PorTecnico:  porTecnico,
	}
}

type SharedReportResponse struct {
	URL       string    `json:"url"`
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expires_at"`
}

func FromSharedReport(s usecase.SharedReport) SharedReportResponse {
	return SharedReportResponse{URL: s.URL, Key: s.Key, ExpiresAt: s.ExpiresAt}
}
