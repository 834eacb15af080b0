package request

import "testing"

func TestActividadForm_Validate(t *testing.T) {
	valid := ActividadForm{Cliente: "Acme", Direccion: "1 Main St", Costo: "$1,200"}
	if errs := valid.Validate(); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}

	errs := ActividadForm{Costo: " "}.Validate()
	for _, field := range []string{"cliente", "direccion", "costo"} {
		if errs[field] == "" {
			t.Fatalf("expected error for %s, got %v", field, errs)
		}
	}

	for _, costo := range []string{"-5", "abc"} {
		f := valid
		f.Costo = costo
		if f.Validate()["costo"] == "" {
			t.Fatalf("expected costo %q to be rejected", costo)
		}
	}
}

func TestActividadForm_ToPatch(t *testing.T) {
	p := ActividadForm{Cliente: "Acme", Estado: "EN_RUTA", Notas: ""}.ToPatch()
	if p.Cliente == nil || *p.Cliente != "Acme" || p.Estado == nil || *p.Estado != "EN_RUTA" {
		t.Fatalf("unexpected patch %+v", p)
	}
	if p.Notas == nil {
		t.Fatalf("text fields must be sent so they can be cleared")
	}
	if p.Tipo != nil || p.AssignedTo != nil || p.Fecha != nil {
		t.Fatalf("blank selects must keep the stored value")
	}
}
