package report

import (
	"log"
	"time"
)

// Renderer produces report files. It holds no state and is safe for
// concurrent use.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Render(doc Document, format Format) ([]byte, error) {
	if doc.GeneradoEn.IsZero() {
		doc.GeneradoEn = time.Now()
	}
	var (
		out []byte
		err error
	)
	switch format {
	case FormatPDF:
		out, err = renderPDF(doc)
	case FormatPNG, FormatJPEG, FormatWebP:
		out, err = renderImage(doc, format)
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		log.Printf("[report] render failed format=%s rows=%d err=%v", format, len(doc.Filas), err)
		return nil, err
	}
	log.Printf("[report] rendered format=%s rows=%d bytes=%d", format, len(doc.Filas), len(out))
	return out, nil
}
