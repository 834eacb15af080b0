package main

import (
	"fmt"
	"os"

	"agenda_tecnica/internal/domain/entities"
	"agenda_tecnica/internal/infrastructure/report"

	"github.com/spf13/cobra"
)

var reporteCmd = &cobra.Command{
	Use:   "reporte",
	Short: "Render a route or support report to a file",
	Long: `Fetch the filtered actividades and render them locally as PDF or image.

The file name defaults to the one the web export uses, e.g.
Ruta_Jairo_2026-10-14.pdf.`,
	Args: cobra.NoArgs,
	RunE: runReporte,
}

var (
	reporteFecha   string
	reporteTecnico string
	reporteAgente  string
	reporteFormato string
	reporteOut     string
)

func init() {
	rootCmd.AddCommand(reporteCmd)

	reporteCmd.Flags().StringVar(&reporteFecha, "fecha", "", "Fecha (YYYY-MM-DD, hoy or all)")
	reporteCmd.Flags().StringVar(&reporteTecnico, "tecnico", "", "Route of one technician")
	reporteCmd.Flags().StringVar(&reporteAgente, "agente", "", "Support log of one office agent")
	reporteCmd.Flags().StringVar(&reporteFormato, "formato", "pdf", "pdf, png, jpg or webp")
	reporteCmd.Flags().StringVarP(&reporteOut, "out", "o", "", "Output path (defaults to the report file name)")
}

func runReporte(cmd *cobra.Command, args []string) error {
	format, err := report.ParseFormat(reporteFormato)
	if err != nil {
		return err
	}
	c, err := newClient()
	if err != nil {
		return err
	}

	items, err := c.List(cmd.Context(), entities.ListFilter{Fecha: reporteFecha, AssignedTo: reporteTecnico, CreatedBy: reporteAgente})
	if err != nil {
		return err
	}
	doc := report.NewDocument(reporteFecha, reporteTecnico, reporteAgente, items)
	data, err := report.NewRenderer().Render(doc, format)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	out := reporteOut
	if out == "" {
		out = report.Filename(doc, format)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d actividades)\n", out, len(items))
	return nil
}
