package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"agenda_tecnica/internal/domain/entities"

	"github.com/charmbracelet/lipgloss"
)

var estadoStyles = map[entities.Estado]lipgloss.Style{
	entities.EstadoPendiente:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	entities.EstadoEnRuta:     lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	entities.EstadoFinalizado: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	entities.EstadoValidando:  lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	entities.EstadoCancelado:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Strikethrough(true),
}

var labelStyle = lipgloss.NewStyle().Bold(true)

func estadoLabel(e entities.Estado) string {
	e = entities.NormalizeEstado(string(e))
	if style, ok := estadoStyles[e]; ok {
		return style.Render(string(e))
	}
	return string(e)
}

// printActividadTable keeps the styled estado in the last column so escape
// codes do not break the tabwriter alignment.
func printActividadTable(out io.Writer, items []entities.Actividad) {
	if len(items) == 0 {
		fmt.Fprintln(out, "No actividades found.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFECHA\tHORARIO\tTIPO\tCLIENTE\tTECNICO\tCOSTO\tESTADO")
	for _, a := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			a.ID,
			entities.FormatFechaLocale(a.Fecha),
			dash(a.Horario),
			a.Tipo,
			a.Cliente,
			a.AssignedTo,
			dash(a.Costo),
			estadoLabel(a.Estado),
		)
	}
	_ = w.Flush()
}

func printActividadDetail(out io.Writer, a entities.Actividad) {
	fields := []struct{ label, value string }{
		{"ID", a.ID},
		{"Tipo", string(a.Tipo)},
		{"Cliente", a.Cliente},
		{"Fecha", entities.FormatFechaLocale(a.Fecha)},
		{"Horario", dash(a.Horario)},
		{"Servicio", dash(a.Servicio)},
		{"Dirección", dash(a.Direccion)},
		{"Teléfono", dash(a.Telefono)},
		{"Costo", dash(a.Costo)},
		{"Técnico", a.AssignedTo},
		{"Registrado por", a.CreatedBy},
		{"Notas", dash(a.Notas)},
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, f := range fields {
		fmt.Fprintf(w, "%s:\t%s\n", f.label, f.value)
	}
	_ = w.Flush()
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Estado:"), estadoLabel(a.Estado))
}

func printResumen(out io.Writer, r entities.Resumen) {
	fecha := r.Fecha
	if fecha != entities.FechaTodas {
		fecha = entities.FormatFechaLocale(fecha)
	}
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Fecha:"), fecha)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Total\t%d\n", r.Total)
	fmt.Fprintf(w, "Pendientes\t%d\n", r.Pendientes)
	fmt.Fprintf(w, "Finalizados\t%d\n", r.Finalizados)
	fmt.Fprintf(w, "Eficiencia\t%d%%\n", r.Eficiencia)
	_ = w.Flush()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
