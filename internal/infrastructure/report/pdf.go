package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

type pdfColumn struct {
	title string
	width float64
	chars int
	value func(Row) string
}

var pdfColumns = []pdfColumn{
	{"Horario", 22, 12, func(r Row) string { return r.Horario }},
	{"Técnico", 26, 14, func(r Row) string { return r.Tecnico }},
	{"Tipo", 26, 12, func(r Row) string { return r.Tipo }},
	{"Cliente", 45, 26, func(r Row) string { return r.Cliente }},
	{"Dirección", 62, 38, func(r Row) string { return r.Direccion }},
	{"Teléfono", 28, 15, func(r Row) string { return r.Telefono }},
	{"Costo", 22, 11, func(r Row) string { return r.Costo }},
	{"Estado", 25, 12, func(r Row) string { return r.Estado }},
}

const (
	pdfRowHeight    = 7.0
	pdfHeaderHeight = 8.0
	pdfBottomMargin = 15.0
)

func renderPDF(doc Document) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(doc.Heading(), true)
	pdf.SetCreator("agenda_tecnica", true)
	pdf.SetAutoPageBreak(false, pdfBottomMargin)
	pdf.AliasNbPages("")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("Generado %s - Página %d/{nb}", doc.GeneradoEn.Format("02/01/2006 15:04"), pdf.PageNo())), "", 0, "C", false, 0, "")
	})

	header := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(37, 99, 235)
		pdf.SetTextColor(255, 255, 255)
		for _, c := range pdfColumns {
			pdf.CellFormat(c.width, pdfHeaderHeight, tr(c.title), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(20, 20, 20)
	}

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(0, 10, tr(doc.Heading()), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("%d actividades", len(doc.Filas))), "", 1, "L", false, 0, "")
	pdf.Ln(2)
	header()

	_, pageH := pdf.GetPageSize()
	for i, r := range doc.Filas {
		if pdf.GetY()+pdfRowHeight > pageH-pdfBottomMargin {
			pdf.AddPage()
			header()
		}
		fill := i%2 == 1
		pdf.SetFillColor(241, 245, 249)
		for _, c := range pdfColumns {
			align := "L"
			if c.title == "Costo" {
				align = "R"
			}
			pdf.CellFormat(c.width, pdfRowHeight, tr(truncate(c.value(r), c.chars)), "1", 0, align, fill, 0, "")
		}
		pdf.Ln(-1)
		if r.Notas != "" {
			if pdf.GetY()+pdfRowHeight > pageH-pdfBottomMargin {
				pdf.AddPage()
				header()
			}
			pdf.SetFont("Helvetica", "I", 7)
			pdf.CellFormat(totalPDFWidth(), pdfRowHeight-1, tr("Notas: "+truncate(r.Notas, 160)), "LRB", 1, "L", fill, 0, "")
			pdf.SetFont("Helvetica", "", 8)
		}
	}

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 7, tr("Total: "+formatMoney(doc.Total())), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func totalPDFWidth() float64 {
	w := 0.0
	for _, c := range pdfColumns {
		w += c.width
	}
	return w
}
