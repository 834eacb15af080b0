package entities

import (
	"strings"
	"time"
)

// Tipo is the service category of an activity.

type Tipo string

const (
	TipoInstalacion Tipo = "INSTALACION"
	TipoSoporte     Tipo = "SOPORTE"
	TipoMigracion   Tipo = "MIGRACION"
	TipoFibra       Tipo = "FIBRA"
	TipoAntena      Tipo = "ANTENA"
)

// Tipos lists the canonical categories in display order.
var Tipos = []Tipo{TipoSoporte, TipoInstalacion, TipoMigracion, TipoFibra, TipoAntena}

func (t Tipo) Valid() bool {
	for _, v := range Tipos {
		if t == v {
			return true
		}
	}
	return false
}

// Estado represents the lifecycle status of an activity.
//
// Transitions are unconstrained: any estado may be set from any other.
// Older documents used TERMINADO for finished visits; NormalizeEstado maps it
// to FINALIZADO so a single value is used everywhere.

type Estado string

const (
	EstadoPendiente  Estado = "PENDIENTE"
	EstadoEnRuta     Estado = "EN_RUTA"
	EstadoFinalizado Estado = "FINALIZADO"
	EstadoValidando  Estado = "VALIDANDO"
	EstadoCancelado  Estado = "CANCELADO"

	estadoTerminadoLegacy Estado = "TERMINADO"
)

var Estados = []Estado{EstadoPendiente, EstadoEnRuta, EstadoFinalizado, EstadoValidando, EstadoCancelado}

func (e Estado) Valid() bool {
	for _, v := range Estados {
		if e == v {
			return true
		}
	}
	return false
}

// NormalizeEstado upper-cases the value and maps legacy spellings.
func NormalizeEstado(s string) Estado {
	e := Estado(strings.ToUpper(strings.TrimSpace(s)))
	if e == estadoTerminadoLegacy {
		return EstadoFinalizado
	}
	return e
}

const (
	PorAsignar       = "Por Asignar"
	CreadoPorOficina = "OFICINA"
)

// DefaultTecnicos is the technician roster used when none is configured.
var DefaultTecnicos = []string{"Jairo", "Armando"}

// DefaultAgentes are the office agents offered by the support log views.
var DefaultAgentes = []string{"Dina", "Luz", "Brayan", CreadoPorOficina}

// Actividad is one scheduled or logged service ticket.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (fecha-index): fecha
//
// Storage model (MongoDB):
//   - _id: ObjectID, exposed as its hex string
//
// Fecha is always an ISO calendar date (YYYY-MM-DD). Locale formatting only
// happens when rendering.
type Actividad struct {
	ID         string    `json:"id"`
	Tipo       Tipo      `json:"tipo"`
	Cliente    string    `json:"cliente"`
	Horario    string    `json:"horario"`
	Servicio   string    `json:"servicio"`
	Direccion  string    `json:"direccion"`
	Telefono   string    `json:"telefono"`
	Costo      string    `json:"costo"`
	Estado     Estado    `json:"estado"`
	AssignedTo string    `json:"assigned_to"`
	CreatedBy  string    `json:"created_by"`
	Fecha      string    `json:"fecha"`
	Notas      string    `json:"notas,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ActividadPatch carries the fields of a partial update. Nil means "keep".
type ActividadPatch struct {
	Tipo       *string
	Cliente    *string
	Horario    *string
	Servicio   *string
	Direccion  *string
	Telefono   *string
	Costo      *string
	Estado     *string
	AssignedTo *string
	CreatedBy  *string
	Fecha      *string
	Notas      *string
}

// IsEmpty reports whether the patch would not change anything.
func (p ActividadPatch) IsEmpty() bool {
	return p.Tipo == nil && p.Cliente == nil && p.Horario == nil && p.Servicio == nil &&
		p.Direccion == nil && p.Telefono == nil && p.Costo == nil && p.Estado == nil &&
		p.AssignedTo == nil && p.CreatedBy == nil && p.Fecha == nil && p.Notas == nil
}

// Apply merges the provided fields into a copy of a. Values are trimmed;
// enum fields are normalized but not validated.
func (p ActividadPatch) Apply(a Actividad) Actividad {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	if p.Tipo != nil {
		a.Tipo = Tipo(strings.ToUpper(strings.TrimSpace(*p.Tipo)))
	}
	if p.Estado != nil {
		a.Estado = NormalizeEstado(*p.Estado)
	}
	set(&a.Cliente, p.Cliente)
	set(&a.Horario, p.Horario)
	set(&a.Servicio, p.Servicio)
	set(&a.Direccion, p.Direccion)
	set(&a.Telefono, p.Telefono)
	set(&a.Costo, p.Costo)
	set(&a.AssignedTo, p.AssignedTo)
	set(&a.CreatedBy, p.CreatedBy)
	set(&a.Fecha, p.Fecha)
	set(&a.Notas, p.Notas)
	return a
}

// ListFilter selects activities. Fecha is either FechaTodas, an ISO date, or
// empty (meaning today, resolved by the use case).
type ListFilter struct {
	Fecha      string
	AssignedTo string
	CreatedBy  string
}

const FechaTodas = "all"

// Resumen aggregates the activities of a filter for the dashboard.
type Resumen struct {
	Fecha       string         `json:"fecha"`
	Total       int            `json:"total"`
	Pendientes  int            `json:"pendientes"`
	Finalizados int            `json:"finalizados"`
	Eficiencia  int            `json:"eficiencia"`
	PorEstado   map[Estado]int `json:"por_estado"`
	PorTecnico  map[string]int `json:"por_tecnico"`
}
