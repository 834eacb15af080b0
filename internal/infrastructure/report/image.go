package report

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strconv"
	"unicode"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Raster layout is in pixels at 1x; the canvas is upscaled by imageScale
// before encoding so text stays readable on phones.
const (
	imageScale      = 2
	imagePadding    = 16
	imageLineHeight = 20
	imageCharWidth  = 7
	imageMaxRows    = 200
)

type imageColumn struct {
	title string
	chars int
	value func(Row) string
}

var imageColumns = []imageColumn{
	{"Horario", 10, func(r Row) string { return r.Horario }},
	{"Tipo", 11, func(r Row) string { return r.Tipo }},
	{"Cliente", 22, func(r Row) string { return r.Cliente }},
	{"Dirección", 32, func(r Row) string { return r.Direccion }},
	{"Teléfono", 13, func(r Row) string { return r.Telefono }},
	{"Costo", 9, func(r Row) string { return r.Costo }},
	{"Estado", 11, func(r Row) string { return r.Estado }},
}

var (
	colorBackground = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorHeaderBand = color.RGBA{0x25, 0x63, 0xeb, 0xff}
	colorStripe     = color.RGBA{0xf1, 0xf5, 0xf9, 0xff}
	colorText       = color.RGBA{0x14, 0x14, 0x14, 0xff}
	colorMuted      = color.RGBA{0x64, 0x74, 0x8b, 0xff}
	colorWhite      = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

var estadoColors = map[string]color.RGBA{
	"FINALIZADO": {0x16, 0xa3, 0x4a, 0xff},
	"EN_RUTA":    {0x25, 0x63, 0xeb, 0xff},
	"VALIDANDO":  {0x93, 0x33, 0xea, 0xff},
	"PENDIENTE":  {0xdc, 0x26, 0x26, 0xff},
	"CANCELADO":  {0x64, 0x74, 0x8b, 0xff},
}

func renderImage(doc Document, format Format) ([]byte, error) {
	img := drawReport(doc)

	var buf bytes.Buffer
	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(&buf, img)
	case FormatJPEG:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	case FormatWebP:
		err = webp.Encode(&buf, img, &webp.Options{Quality: 90})
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawReport(doc Document) image.Image {
	rows := doc.Filas
	truncated := 0
	if len(rows) > imageMaxRows {
		truncated = len(rows) - imageMaxRows
		rows = rows[:imageMaxRows]
	}

	tableChars := 0
	for _, c := range imageColumns {
		tableChars += c.chars + 1
	}
	width := imagePadding*2 + tableChars*imageCharWidth
	// title, subtitle, blank, header, rows, total (+ overflow note)
	lines := 4 + len(rows) + 2
	if truncated > 0 {
		lines++
	}
	height := imagePadding*2 + lines*imageLineHeight

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	fill(canvas, canvas.Bounds(), colorBackground)

	y := imagePadding
	text(canvas, imagePadding, y, doc.Heading(), colorText)
	y += imageLineHeight
	text(canvas, imagePadding, y, strconv.Itoa(len(doc.Filas))+" actividades", colorMuted)
	y += imageLineHeight * 2

	fill(canvas, image.Rect(imagePadding/2, y-4, width-imagePadding/2, y+imageLineHeight-4), colorHeaderBand)
	x := imagePadding
	for _, c := range imageColumns {
		text(canvas, x, y, c.title, colorWhite)
		x += (c.chars + 1) * imageCharWidth
	}
	y += imageLineHeight

	for i, r := range rows {
		if i%2 == 1 {
			fill(canvas, image.Rect(imagePadding/2, y-4, width-imagePadding/2, y+imageLineHeight-4), colorStripe)
		}
		x = imagePadding
		for _, c := range imageColumns {
			fg := colorText
			v := c.value(r)
			if c.title == "Estado" {
				if ec, ok := estadoColors[v]; ok {
					fg = ec
				}
			}
			text(canvas, x, y, truncate(v, c.chars), fg)
			x += (c.chars + 1) * imageCharWidth
		}
		y += imageLineHeight
	}
	if truncated > 0 {
		text(canvas, imagePadding, y, "... y "+strconv.Itoa(truncated)+" actividades más", colorMuted)
		y += imageLineHeight
	}
	y += imageLineHeight / 2
	text(canvas, imagePadding, y, "Total: "+formatMoney(doc.Total()), colorText)

	out := image.NewRGBA(image.Rect(0, 0, width*imageScale, height*imageScale))
	xdraw.ApproxBiLinear.Scale(out, out.Bounds(), canvas, canvas.Bounds(), xdraw.Src, nil)
	return out
}

func fill(dst *image.RGBA, r image.Rectangle, c color.Color) {
	xdraw.Draw(dst, r, image.NewUniform(c), image.Point{}, xdraw.Src)
}

// text draws s with its top-left corner at (x, y).
func text(dst *image.RGBA, x, y int, s string, c color.Color) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y+face.Ascent),
	}
	d.DrawString(asciiFold(s))
}

// asciiFold strips diacritics; basicfont only carries ASCII glyphs.
func asciiFold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
