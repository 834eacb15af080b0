package report

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"regexp"
	"strconv"
	"testing"
	"time"

	"agenda_tecnica/internal/domain/entities"
)

func sampleDocument() Document {
	return Document{
		Fecha:      "2026-10-14",
		Tecnico:    "Jairo",
		GeneradoEn: time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC),
		Filas: []Row{
			{Horario: "09:00", Tecnico: "Jairo", Tipo: "INSTALACION", Cliente: "Acme", Direccion: "1 Main St", Costo: "500", Estado: "PENDIENTE"},
			{Horario: "11:00", Tecnico: "Jairo", Tipo: "FIBRA", Cliente: "Peña Nieto Ñandú", Direccion: "Calle Álamo 12, Colonia Centro", Costo: "$1,250.50", Estado: "FINALIZADO", Notas: "Llevar escalera"},
			{Horario: "13:00", Tecnico: "Jairo", Tipo: "SOPORTE", Cliente: "Sin costo", Costo: "a convenir", Estado: "EN_RUTA"},
		},
	}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{"": FormatPDF, "PDF": FormatPDF, "png": FormatPNG, "jpg": FormatJPEG, "jpeg": FormatJPEG, "webp": FormatWebP}
	for in, want := range cases {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("gif"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if FormatJPEG.Ext() != "jpg" || FormatJPEG.ContentType() != "image/jpeg" || FormatPDF.ContentType() != "application/pdf" {
		t.Fatalf("unexpected format metadata")
	}
}

func TestFilename(t *testing.T) {
	cases := []struct {
		name string
		doc  Document
		f    Format
		want string
	}{
		{"technician route", Document{Fecha: "2026-10-14", Tecnico: "Jairo"}, FormatJPEG, "Ruta_Jairo_2026-10-14.jpg"},
		{"all technicians", Document{Fecha: "2026-10-14"}, FormatPDF, "Ruta_Todos_2026-10-14.pdf"},
		{"agent log", Document{Fecha: "all", Agente: "Luz"}, FormatPNG, "Bitacora_Luz_all.png"},
		{"unsafe characters", Document{Fecha: "2026-10-14", Tecnico: "Por Asignar/x"}, FormatPDF, "Ruta_Por-Asignarx_2026-10-14.pdf"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Filename(tc.doc, tc.f); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestDocumentTotalAndHeading(t *testing.T) {
	doc := sampleDocument()
	if got := doc.Total().StringFixed(2); got != "1750.50" {
		t.Fatalf("expected 1750.50, got %s", got)
	}
	if got := doc.Heading(); got != "Ruta - Jairo - 14/10/2026" {
		t.Fatalf("unexpected heading %q", got)
	}
	agent := Document{Fecha: "all", Agente: "Dina"}
	if got := agent.Heading(); got != "Bitácora de soporte - Dina - Todas las fechas" {
		t.Fatalf("unexpected heading %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("  uno   dos  ", 20); got != "uno dos" {
		t.Fatalf("unexpected %q", got)
	}
	if got := truncate("Dirección muy larga", 10); got != "Direcci..." {
		t.Fatalf("unexpected %q", got)
	}
}

func TestRenderer_PDF(t *testing.T) {
	out, err := NewRenderer().Render(sampleDocument(), FormatPDF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("expected pdf header, got %q", out[:8])
	}
}

func TestRenderer_PDFPaginates(t *testing.T) {
	doc := sampleDocument()
	for i := 0; i < 120; i++ {
		doc.Filas = append(doc.Filas, Row{Horario: "10:00", Cliente: "Cliente", Costo: "1", Estado: "PENDIENTE"})
	}
	out, err := NewRenderer().Render(doc, FormatPDF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := regexp.MustCompile(`/Count (\d+)`).FindSubmatch(out)
	if m == nil {
		t.Fatalf("page tree not found")
	}
	if n, _ := strconv.Atoi(string(m[1])); n < 2 {
		t.Fatalf("expected more than one page, got %d", n)
	}
}

func TestRenderer_Images(t *testing.T) {
	r := NewRenderer()

	t.Run("png", func(t *testing.T) {
		out, err := r.Render(sampleDocument(), FormatPNG)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		img, err := png.Decode(bytes.NewReader(out))
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		assertScaled(t, img)
	})

	t.Run("jpeg", func(t *testing.T) {
		out, err := r.Render(sampleDocument(), FormatJPEG)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		img, err := jpeg.Decode(bytes.NewReader(out))
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		assertScaled(t, img)
	})

	t.Run("unsupported", func(t *testing.T) {
		if _, err := r.Render(sampleDocument(), Format("gif")); !errors.Is(err, ErrUnsupportedFormat) {
			t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
		}
	})
}

func assertScaled(t *testing.T, img image.Image) {
	t.Helper()
	b := img.Bounds()
	if b.Dx()%imageScale != 0 || b.Dy()%imageScale != 0 {
		t.Fatalf("expected dimensions scaled by %d, got %v", imageScale, b)
	}
	// header, subtitle, blank, column header, 3 rows, total
	minHeight := (imagePadding*2 + 9*imageLineHeight) * imageScale
	if b.Dy() < minHeight {
		t.Fatalf("expected height >= %d, got %d", minHeight, b.Dy())
	}
}

func TestASCIIFold(t *testing.T) {
	if got := asciiFold("Peña Álamo Teléfono"); got != "Pena Alamo Telefono" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument("2026-10-14", "Jairo", "", []entities.Actividad{
		{Horario: "15:00", Cliente: "B", AssignedTo: "Jairo", Tipo: entities.TipoFibra, Estado: "TERMINADO"},
		{Horario: "09:00", Cliente: "A", AssignedTo: "Jairo", Tipo: entities.TipoSoporte, Estado: entities.EstadoPendiente},
	})
	if len(doc.Filas) != 2 || doc.Filas[0].Cliente != "A" || doc.Filas[1].Estado != "FINALIZADO" {
		t.Fatalf("unexpected rows %+v", doc.Filas)
	}
	if Filename(doc, FormatJPEG) != "Ruta_Jairo_2026-10-14.jpg" {
		t.Fatalf("unexpected filename %s", Filename(doc, FormatJPEG))
	}
}
