package interfaces

import (
	"context"
	"time"

	"agenda_tecnica/internal/infrastructure/report"
)

// IReportRenderer turns a report document into a downloadable file.
type IReportRenderer interface {
	Render(doc report.Document, format report.Format) ([]byte, error)
}

// IReportStorage publishes rendered reports so they can be shared by link.
type IReportStorage interface {
	Put(ctx context.Context, key, contentType string, body []byte) error
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}
