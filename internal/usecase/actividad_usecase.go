package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"
	"time"

	"agenda_tecnica/internal/domain/entities"
	"agenda_tecnica/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidActividad   = errors.New("invalid actividad")
	ErrInvalidActividadID = errors.New("invalid actividad id")
	ErrActividadNotFound  = errors.New("actividad not found")
	ErrStoreUnavailable   = errors.New("store unavailable")
)

// NewActividad is the create command. Empty fields take the defaults of the
// agenda: SOPORTE, PENDIENTE, Por Asignar, OFICINA and today's fecha.
type NewActividad struct {
	Tipo       string
	Cliente    string
	Horario    string
	Servicio   string
	Direccion  string
	Telefono   string
	Costo      string
	Estado     string
	AssignedTo string
	CreatedBy  string
	Fecha      string
	Notas      string
}

// IActividadUseCase exposes the agenda operations used by the API and the
// HTML views.
type IActividadUseCase interface {
	List(ctx context.Context, filter entities.ListFilter) ([]entities.Actividad, error)
	GetByID(ctx context.Context, id string) (entities.Actividad, error)
	Create(ctx context.Context, in NewActividad) (entities.Actividad, error)
	Update(ctx context.Context, id string, patch entities.ActividadPatch) (entities.Actividad, error)
	UpdateEstado(ctx context.Context, id string, estado string) (entities.Actividad, error)
	Remove(ctx context.Context, id string) error
	Resumen(ctx context.Context, fecha string) (entities.Resumen, error)
	Today() string
	ResolveFecha(fecha string) (string, error)
	Tecnicos() []string
}

type ActividadUseCase struct {
	repo     interfaces.IActividadRepository
	cache    interfaces.IActividadListCache
	loc      *time.Location
	tecnicos []string
	now      func() time.Time
}

var _ IActividadUseCase = (*ActividadUseCase)(nil)

// NewActividadUseCase builds the service. cache may be nil. An empty roster
// falls back to entities.DefaultTecnicos.
func NewActividadUseCase(repo interfaces.IActividadRepository, cache interfaces.IActividadListCache, loc *time.Location, tecnicos []string) *ActividadUseCase {
	if loc == nil {
		loc = entities.LoadLocation("")
	}
	if len(tecnicos) == 0 {
		tecnicos = entities.DefaultTecnicos
	}
	return &ActividadUseCase{
		repo:     repo,
		cache:    cache,
		loc:      loc,
		tecnicos: tecnicos,
		now:      time.Now,
	}
}

// Today is the default fecha: the current calendar date in the configured
// timezone.
func (u *ActividadUseCase) Today() string {
	return entities.FechaDe(u.now(), u.loc)
}

func (u *ActividadUseCase) Tecnicos() []string {
	out := make([]string, len(u.tecnicos))
	copy(out, u.tecnicos)
	return out
}

// ResolveFecha is the single default-date policy: "", "hoy" and "today" map
// to today, FechaTodas is kept and any other value must be a date.
func (u *ActividadUseCase) ResolveFecha(fecha string) (string, error) {
	fecha = strings.TrimSpace(fecha)
	switch strings.ToLower(fecha) {
	case "", "hoy", "today":
		return u.Today(), nil
	case entities.FechaTodas:
		return entities.FechaTodas, nil
	}
	iso, err := entities.ParseFecha(entities.NormalizeLegacyFecha(fecha))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidActividad, err)
	}
	return iso, nil
}

func (u *ActividadUseCase) List(ctx context.Context, filter entities.ListFilter) ([]entities.Actividad, error) {
	fecha, err := u.ResolveFecha(filter.Fecha)
	if err != nil {
		return nil, err
	}
	filter = entities.ListFilter{
		Fecha:      fecha,
		AssignedTo: strings.TrimSpace(filter.AssignedTo),
		CreatedBy:  strings.TrimSpace(filter.CreatedBy),
	}

	var token string
	if u.cache != nil {
		items, hit, tok, err := u.cache.Lookup(ctx, filter)
		switch {
		case err != nil:
			log.Printf("[actividad][usecase] cache lookup failed fecha=%s err=%v", filter.Fecha, err)
		case hit:
			return items, nil
		default:
			token = tok
		}
	}

	items, err := u.repo.List(ctx, filter)
	if err != nil {
		log.Printf("[actividad][usecase] list failed fecha=%s assigned_to=%q created_by=%q err=%v", filter.Fecha, filter.AssignedTo, filter.CreatedBy, err)
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if items == nil {
		items = []entities.Actividad{}
	}
	sortNewestFirst(items)

	if token != "" {
		if err := u.cache.Store(ctx, token, items); err != nil {
			log.Printf("[actividad][usecase] cache store failed fecha=%s err=%v", filter.Fecha, err)
		}
	}
	return items, nil
}

func (u *ActividadUseCase) GetByID(ctx context.Context, id string) (entities.Actividad, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Actividad{}, ErrInvalidActividadID
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Actividad{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if a.ID == "" {
		return entities.Actividad{}, ErrActividadNotFound
	}
	return a, nil
}

func (u *ActividadUseCase) Create(ctx context.Context, in NewActividad) (entities.Actividad, error) {
	now := u.now()
	a := entities.Actividad{
		Tipo:       entities.Tipo(strings.ToUpper(strings.TrimSpace(in.Tipo))),
		Cliente:    strings.TrimSpace(in.Cliente),
		Horario:    strings.TrimSpace(in.Horario),
		Servicio:   strings.TrimSpace(in.Servicio),
		Direccion:  strings.TrimSpace(in.Direccion),
		Telefono:   strings.TrimSpace(in.Telefono),
		Costo:      strings.TrimSpace(in.Costo),
		Estado:     entities.NormalizeEstado(in.Estado),
		AssignedTo: strings.TrimSpace(in.AssignedTo),
		CreatedBy:  strings.TrimSpace(in.CreatedBy),
		Fecha:      strings.TrimSpace(in.Fecha),
		Notas:      strings.TrimSpace(in.Notas),
		CreatedAt:  now.UTC(),
		UpdatedAt:  now.UTC(),
	}
	if a.Tipo == "" {
		a.Tipo = entities.TipoSoporte
	}
	if a.Estado == "" {
		a.Estado = entities.EstadoPendiente
	}
	if a.AssignedTo == "" {
		a.AssignedTo = entities.PorAsignar
	}
	if a.CreatedBy == "" {
		a.CreatedBy = entities.CreadoPorOficina
	}
	if a.Fecha == "" {
		a.Fecha = entities.FechaDe(now, u.loc)
	} else {
		a.Fecha = entities.NormalizeLegacyFecha(a.Fecha)
	}

	if err := u.validate(a, true); err != nil {
		log.Printf("[actividad][usecase] create rejected cliente=%q err=%v", a.Cliente, err)
		return entities.Actividad{}, err
	}

	created, err := u.repo.Create(ctx, a)
	if err != nil {
		log.Printf("[actividad][usecase] create failed cliente=%q err=%v", a.Cliente, err)
		return entities.Actividad{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	log.Printf("[actividad][usecase] created id=%s fecha=%s assigned_to=%q", created.ID, created.Fecha, created.AssignedTo)
	u.invalidate(ctx)
	return created, nil
}

// Update merges the provided fields into the stored record and writes it
// back whole. Concurrent updates are last-write-wins.
func (u *ActividadUseCase) Update(ctx context.Context, id string, patch entities.ActividadPatch) (entities.Actividad, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Actividad{}, err
	}
	if patch.IsEmpty() {
		return current, nil
	}

	merged := patch.Apply(current)
	merged.ID = current.ID
	merged.CreatedAt = current.CreatedAt
	merged.UpdatedAt = u.now().UTC()
	if patch.Fecha != nil {
		merged.Fecha = entities.NormalizeLegacyFecha(merged.Fecha)
	}

	// Records assigned to someone who left the roster stay editable.
	if err := u.validate(merged, merged.AssignedTo != current.AssignedTo); err != nil {
		log.Printf("[actividad][usecase] update rejected id=%s err=%v", current.ID, err)
		return entities.Actividad{}, err
	}

	updated, err := u.repo.Replace(ctx, merged)
	if err != nil {
		log.Printf("[actividad][usecase] update failed id=%s err=%v", current.ID, err)
		return entities.Actividad{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if updated.ID == "" {
		return entities.Actividad{}, ErrActividadNotFound
	}
	log.Printf("[actividad][usecase] updated id=%s estado=%s", updated.ID, updated.Estado)
	u.invalidate(ctx)
	return updated, nil
}

func (u *ActividadUseCase) UpdateEstado(ctx context.Context, id string, estado string) (entities.Actividad, error) {
	if strings.TrimSpace(estado) == "" {
		return entities.Actividad{}, fmt.Errorf("%w: estado is required", ErrInvalidActividad)
	}
	return u.Update(ctx, id, entities.ActividadPatch{Estado: &estado})
}

func (u *ActividadUseCase) Remove(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidActividadID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		log.Printf("[actividad][usecase] delete failed id=%s err=%v", id, err)
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if !deleted {
		return ErrActividadNotFound
	}
	log.Printf("[actividad][usecase] deleted id=%s", id)
	u.invalidate(ctx)
	return nil
}

// Resumen computes the dashboard counters for a fecha filter.
func (u *ActividadUseCase) Resumen(ctx context.Context, fecha string) (entities.Resumen, error) {
	resolved, err := u.ResolveFecha(fecha)
	if err != nil {
		return entities.Resumen{}, err
	}
	items, err := u.List(ctx, entities.ListFilter{Fecha: resolved})
	if err != nil {
		return entities.Resumen{}, err
	}
	return Summarize(resolved, items), nil
}

// Summarize counts items by estado and technician. Eficiencia is the share
// of finished activities, as a rounded percentage.
func Summarize(fecha string, items []entities.Actividad) entities.Resumen {
	r := entities.Resumen{
		Fecha:      fecha,
		Total:      len(items),
		PorEstado:  map[entities.Estado]int{},
		PorTecnico: map[string]int{},
	}
	for _, a := range items {
		estado := entities.NormalizeEstado(string(a.Estado))
		r.PorEstado[estado]++
		r.PorTecnico[a.AssignedTo]++
		switch estado {
		case entities.EstadoPendiente:
			r.Pendientes++
		case entities.EstadoFinalizado:
			r.Finalizados++
		}
	}
	if r.Total > 0 {
		r.Eficiencia = int(math.Round(float64(r.Finalizados) * 100 / float64(r.Total)))
	}
	return r
}

func (u *ActividadUseCase) validate(a entities.Actividad, checkAssignee bool) error {
	var problems []string
	if a.Cliente == "" {
		problems = append(problems, "cliente is required")
	}
	if !a.Tipo.Valid() {
		problems = append(problems, fmt.Sprintf("tipo %q is not one of %v", a.Tipo, entities.Tipos))
	}
	if !a.Estado.Valid() {
		problems = append(problems, fmt.Sprintf("estado %q is not one of %v", a.Estado, entities.Estados))
	}
	if _, err := entities.ParseFecha(a.Fecha); err != nil {
		problems = append(problems, "fecha must be YYYY-MM-DD")
	}
	if a.Costo != "" {
		if _, err := ParseCosto(a.Costo); err != nil {
			problems = append(problems, err.Error())
		}
	}
	if checkAssignee && !u.isAssignable(a.AssignedTo) {
		problems = append(problems, fmt.Sprintf("assigned_to %q is not a known technician", a.AssignedTo))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidActividad, strings.Join(problems, "; "))
	}
	return nil
}

func (u *ActividadUseCase) isAssignable(name string) bool {
	if name == entities.PorAsignar {
		return true
	}
	for _, t := range u.tecnicos {
		if t == name {
			return true
		}
	}
	return false
}

// ParseCosto accepts plain amounts with an optional "$" and thousands
// separators. Negative amounts are rejected.
func ParseCosto(s string) (decimal.Decimal, error) {
	c := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	v, err := decimal.NewFromString(strings.ReplaceAll(c, ",", ""))
	if err != nil {
		return decimal.Zero, fmt.Errorf("costo %q is not a number", s)
	}
	if v.IsNegative() {
		return decimal.Zero, fmt.Errorf("costo %q must not be negative", s)
	}
	return v, nil
}

func (u *ActividadUseCase) invalidate(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Invalidate(ctx); err != nil {
		log.Printf("[actividad][usecase] cache invalidate failed err=%v", err)
	}
}

func sortNewestFirst(items []entities.Actividad) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID > items[j].ID
	})
}
