package request

import (
	"encoding/json"
	"testing"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		in   string
		want Amount
	}{
		{`{"costo":"500"}`, "500"},
		{`{"costo":1250.5}`, "1250.5"},
		{`{"costo":null}`, ""},
		{`{"costo":"$1,200"}`, "$1,200"},
		{`{"cliente":"Acme"}`, ""},
	}
	for _, tc := range cases {
		var r CreateActividadRequest
		if err := json.Unmarshal([]byte(tc.in), &r); err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.in, err)
		}
		if r.Costo != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.in, tc.want, r.Costo)
		}
	}

	var r CreateActividadRequest
	if err := json.Unmarshal([]byte(`{"costo":true}`), &r); err == nil {
		t.Fatalf("expected error for boolean costo")
	}
}

func TestUpdateActividadRequest_ToPatch(t *testing.T) {
	var r UpdateActividadRequest
	if err := json.Unmarshal([]byte(`{"estado":"FINALIZADO","costo":300}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := r.ToPatch()
	if p.Estado == nil || *p.Estado != "FINALIZADO" || p.Costo == nil || *p.Costo != "300" {
		t.Fatalf("unexpected patch %+v", p)
	}
	if p.Cliente != nil || p.Fecha != nil {
		t.Fatalf("absent fields must stay nil")
	}

	if !(UpdateActividadRequest{}).ToPatch().IsEmpty() {
		t.Fatalf("expected empty patch")
	}
}

func TestCreateActividadRequest_ToCommand(t *testing.T) {
	r := CreateActividadRequest{Cliente: "Acme", Costo: "500", AssignedTo: "Jairo"}
	cmd := r.ToCommand()
	if cmd.Cliente != "Acme" || cmd.Costo != "500" || cmd.AssignedTo != "Jairo" {
		t.Fatalf("unexpected command %+v", cmd)
	}
}

func TestListActividadesQuery_ToFilter(t *testing.T) {
	f := ListActividadesQuery{Fecha: " all ", AssignedTo: " Jairo"}.ToFilter()
	if f.Fecha != "all" || f.AssignedTo != "Jairo" || f.CreatedBy != "" {
		t.Fatalf("unexpected filter %+v", f)
	}
}
