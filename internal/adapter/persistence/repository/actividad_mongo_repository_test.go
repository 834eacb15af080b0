package repository

import (
	"testing"
	"time"

	"agenda_tecnica/internal/domain/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFromActividadDocument_Legacy(t *testing.T) {
	raw, err := bson.Marshal(bson.M{
		"_id":       primitive.NewObjectIDFromTimestamp(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)),
		"tipo":      "Instalación",
		"cliente":   "Acme",
		"direccion": "1 Main St",
		"costo":     "500",
		"estado":    "TERMINADO",
		"fecha":     "1/3/2025",
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var doc actividadDocument
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	a := fromActividadDocument(doc)
	if a.ID != doc.ID.Hex() || len(a.ID) != 24 {
		t.Fatalf("unexpected id %q", a.ID)
	}
	if a.Tipo != entities.TipoInstalacion || a.Estado != entities.EstadoFinalizado || a.Fecha != "2025-03-01" {
		t.Fatalf("unexpected normalization %+v", a)
	}
	if a.AssignedTo != entities.PorAsignar || a.CreatedBy != entities.CreadoPorOficina {
		t.Fatalf("unexpected defaults %+v", a)
	}
	if !a.CreatedAt.Equal(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected created_at from the object id, got %v", a.CreatedAt)
	}
}

func TestToActividadDocument_RoundTrip(t *testing.T) {
	now := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	in := entities.Actividad{
		ID:         primitive.NewObjectID().Hex(),
		Tipo:       entities.TipoAntena,
		Cliente:    "Acme",
		Estado:     entities.EstadoValidando,
		AssignedTo: "Armando",
		CreatedBy:  "Luz",
		Fecha:      "2026-10-14",
		Notas:      "Llamar antes",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	doc := toActividadDocument(in)
	doc.ID, _ = primitive.ObjectIDFromHex(in.ID)

	raw, err := bson.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back actividadDocument
	if err := bson.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got := fromActividadDocument(back)
	if got.ID != in.ID || got.AssignedTo != "Armando" || got.CreatedBy != "Luz" || got.Notas != "Llamar antes" || !got.CreatedAt.Equal(now) {
		t.Fatalf("unexpected round trip %+v", got)
	}
}

func TestBuildMongoFilter(t *testing.T) {
	q := buildMongoFilter(entities.ListFilter{Fecha: "2026-02-03", AssignedTo: "Jairo", CreatedBy: "Dina"})
	fecha, ok := q["fecha"].(bson.M)
	if !ok {
		t.Fatalf("expected fecha filter, got %v", q)
	}
	in := fecha["$in"].(bson.A)
	if len(in) != 2 || in[0] != "2026-02-03" || in[1] != "3/2/2026" {
		t.Fatalf("unexpected fecha filter %v", in)
	}
	if q["assigned_to"] != "Jairo" || q["created_by"] != "Dina" {
		t.Fatalf("unexpected filter %v", q)
	}

	if q := buildMongoFilter(entities.ListFilter{Fecha: entities.FechaTodas}); len(q) != 0 {
		t.Fatalf("expected empty filter, got %v", q)
	}
	if q := buildMongoFilter(entities.ListFilter{AssignedTo: entities.PorAsignar}); q["$or"] == nil {
		t.Fatalf("expected unassigned documents to match, got %v", q)
	}
}
