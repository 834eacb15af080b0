package request

import (
	"strings"

	"agenda_tecnica/internal/domain/entities"
	"agenda_tecnica/internal/usecase"
)

// ActividadForm is the HTML form posted by the create and edit views.
type ActividadForm struct {
	Tipo       string `form:"tipo"`
	Cliente    string `form:"cliente"`
	Horario    string `form:"horario"`
	Servicio   string `form:"servicio"`
	Direccion  string `form:"direccion"`
	Telefono   string `form:"telefono"`
	Costo      string `form:"costo"`
	Estado     string `form:"estado"`
	AssignedTo string `form:"assigned_to"`
	CreatedBy  string `form:"created_by"`
	Fecha      string `form:"fecha"`
	Notas      string `form:"notas"`
}

// FormFromActividad pre-fills the edit form.
func FormFromActividad(a entities.Actividad) ActividadForm {
	return ActividadForm{
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
	}
}

// Validate returns the problems keyed by field name. The views are stricter
// than the API: direccion and costo are mandatory here.
func (f ActividadForm) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(f.Cliente) == "" {
		errs["cliente"] = "El cliente es obligatorio"
	}
	if strings.TrimSpace(f.Direccion) == "" {
		errs["direccion"] = "La dirección es obligatoria"
	}
	switch {
	case strings.TrimSpace(f.Costo) == "":
		errs["costo"] = "El costo es obligatorio"
	default:
		if _, err := usecase.ParseCosto(f.Costo); err != nil {
			errs["costo"] = "El costo debe ser un número mayor o igual a 0"
		}
	}
	return errs
}

func (f ActividadForm) ToCommand() usecase.NewActividad {
	return usecase.NewActividad{
		Tipo:       f.Tipo,
		Cliente:    f.Cliente,
		Horario:    f.Horario,
		Servicio:   f.Servicio,
		Direccion:  f.Direccion,
		Telefono:   f.Telefono,
		Costo:      f.Costo,
		Estado:     f.Estado,
		AssignedTo: f.AssignedTo,
		CreatedBy:  f.CreatedBy,
		Fecha:      f.Fecha,
		Notas:      f.Notas,
	}
}

// ToPatch sends every form field: the edit form always posts the whole
// record.
func (f ActividadForm) ToPatch() entities.ActividadPatch {
	p := entities.ActividadPatch{
		Tipo:       &f.Tipo,
		Cliente:    &f.Cliente,
		Horario:    &f.Horario,
		Servicio:   &f.Servicio,
		Direccion:  &f.Direccion,
		Telefono:   &f.Telefono,
		Costo:      &f.Costo,
		Estado:     &f.Estado,
		AssignedTo: &f.AssignedTo,
		CreatedBy:  &f.CreatedBy,
		Fecha:      &f.Fecha,
		Notas:      &f.Notas,
	}
	// Blank selects keep the stored value instead of failing enum checks.
	for _, fld := range []**string{&p.Tipo, &p.Estado, &p.AssignedTo, &p.CreatedBy, &p.Fecha} {
		if strings.TrimSpace(**fld) == "" {
			*fld = nil
		}
	}
	return p
}
