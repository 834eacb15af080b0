// Package report renders the daily route / support log of a filtered
// activity list as a paginated PDF or a shareable raster image.
package report

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"agenda_tecnica/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrUnsupportedFormat = errors.New("unsupported report format")

type Format string

const (
	FormatPDF  Format = "pdf"
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatWebP Format = "webp"
)

// ParseFormat accepts the format names used by the export links. An empty
// value selects PDF.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pdf":
		return FormatPDF, nil
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "webp":
		return FormatWebP, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

func (f Format) ContentType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatJPEG:
		return "image/jpeg"
	case FormatWebP:
		return "image/webp"
	default:
		return "application/pdf"
	}
}

func (f Format) Ext() string {
	if f == FormatJPEG {
		return "jpg"
	}
	return string(f)
}

// Row is one activity as printed in the report.
type Row struct {
	Horario   string
	Tecnico   string
	Tipo      string
	Cliente   string
	Direccion string
	Telefono  string
	Costo     string
	Estado    string
	Notas     string
}

// Document is the already-filtered content of a report.
//
// Fecha is the ISO date of the filter or "all". Tecnico and Agente are the
// selected technician / agent, empty when the list is not filtered by them.
type Document struct {
	Titulo     string
	Fecha      string
	Tecnico    string
	Agente     string
	Filas      []Row
	GeneradoEn time.Time
}

// Total sums the costo column. Amounts that are not numbers are skipped.
func (d Document) Total() decimal.Decimal {
	total := decimal.Zero
	for _, r := range d.Filas {
		c := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(r.Costo), "$"))
		if c == "" {
			continue
		}
		v, err := decimal.NewFromString(strings.ReplaceAll(c, ",", ""))
		if err != nil {
			log.Printf("[report] skipping non numeric costo=%q cliente=%q", r.Costo, r.Cliente)
			continue
		}
		total = total.Add(v)
	}
	return total
}

// Heading is the title line printed at the top of the report.
func (d Document) Heading() string {
	titulo := d.Titulo
	if titulo == "" {
		titulo = "Ruta"
		if d.Agente != "" && d.Tecnico == "" {
			titulo = "Bitácora de soporte"
		}
	}
	parts := []string{titulo}
	if d.Tecnico != "" {
		parts = append(parts, d.Tecnico)
	}
	if d.Agente != "" {
		parts = append(parts, d.Agente)
	}
	parts = append(parts, fechaLabel(d.Fecha))
	return strings.Join(parts, " - ")
}

// Filename embeds the date filter and the selected technician or agent,
// e.g. Ruta_Jairo_2026-10-14.pdf or Bitacora_Luz_all.jpg.
func Filename(d Document, f Format) string {
	prefix, who := "Ruta", "Todos"
	switch {
	case d.Tecnico != "":
		who = d.Tecnico
	case d.Agente != "":
		prefix, who = "Bitacora", d.Agente
	}
	fecha := d.Fecha
	if fecha == "" {
		fecha = "hoy"
	}
	return fmt.Sprintf("%s_%s_%s.%s", prefix, safeName(who), safeName(fecha), f.Ext())
}

func safeName(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r == ' ':
			b.WriteRune('-')
		case r == '/', r == '\\', r == ':', r == '"', r == '*', r == '?', r == '<', r == '>', r == '|':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func fechaLabel(fecha string) string {
	switch fecha {
	case "":
		return "Hoy"
	case entities.FechaTodas:
		return "Todas las fechas"
	}
	return entities.FormatFechaLocale(fecha)
}

func truncate(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	if max <= 3 {
		return string([]rune(s)[:max])
	}
	return string([]rune(s)[:max-3]) + "..."
}

func formatMoney(v decimal.Decimal) string {
	return "$" + v.StringFixed(2)
}

// NewDocument builds a report from a filtered list. Rows are ordered by
// horario so a route reads in visiting order.
func NewDocument(fecha, tecnico, agente string, items []entities.Actividad) Document {
	rows := make([]Row, 0, len(items))
	for _, a := range items {
		rows = append(rows, Row{
			Horario:   a.Horario,
			Tecnico:   a.AssignedTo,
			Tipo:      string(a.Tipo),
			Cliente:   a.Cliente,
			Direccion: a.Direccion,
			Telefono:  a.Telefono,
			Costo:     a.Costo,
			Estado:    string(entities.NormalizeEstado(string(a.Estado))),
			Notas:     a.Notas,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Horario < rows[j].Horario })
	return Document{Fecha: fecha, Tecnico: tecnico, Agente: agente, Filas: rows}
}
