// Package views holds the server-rendered pages of the agenda.
package views

import (
	"embed"
	"html/template"
	"strings"

	"agenda_tecnica/internal/domain/entities"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses every page with the helpers the pages use. It panics on a
// broken template since the files are compiled into the binary.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(Funcs()).ParseFS(files, "templates/*.html"))
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"formatFecha": formatFecha,
		"estadoClass": estadoClass,
		"estados":     func() []entities.Estado { return entities.Estados },
		"tipos":       func() []entities.Tipo { return entities.Tipos },
		"isTodas":     func(fecha string) bool { return fecha == entities.FechaTodas },
	}
}

func formatFecha(fecha string) string {
	if fecha == "" || fecha == entities.FechaTodas {
		return "Todas"
	}
	return entities.FormatFechaLocale(fecha)
}

func estadoClass(e entities.Estado) string {
	return "estado-" + strings.ToLower(strings.ReplaceAll(string(entities.NormalizeEstado(string(e))), "_", "-"))
}
