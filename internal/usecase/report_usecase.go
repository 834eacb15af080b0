package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"agenda_tecnica/internal/domain/entities"
	"agenda_tecnica/internal/infrastructure/report"
	"agenda_tecnica/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrReportSharingDisabled = errors.New("report sharing is not configured")
	ErrInvalidReportFormat   = errors.New("invalid report format")
)

type RenderedReport struct {
	Filename    string
	ContentType string
	Body        []byte
}

type SharedReport struct {
	URL       string    `json:"url"`
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IReportUseCase exports the route / support log of a filtered list.
type IReportUseCase interface {
	Render(ctx context.Context, filter entities.ListFilter, format report.Format) (RenderedReport, error)
	Share(ctx context.Context, filter entities.ListFilter, format report.Format) (SharedReport, error)
}

type ReportUseCase struct {
	actividades IActividadUseCase
	renderer    interfaces.IReportRenderer
	storage     interfaces.IReportStorage
	urlTTL      time.Duration
	now         func() time.Time
}

var _ IReportUseCase = (*ReportUseCase)(nil)

// NewReportUseCase wires the exporter. storage may be nil, which disables
// Share.
func NewReportUseCase(actividades IActividadUseCase, renderer interfaces.IReportRenderer, storage interfaces.IReportStorage, urlTTL time.Duration) *ReportUseCase {
	if urlTTL <= 0 {
		urlTTL = 15 * time.Minute
	}
	return &ReportUseCase{
		actividades: actividades,
		renderer:    renderer,
		storage:     storage,
		urlTTL:      urlTTL,
		now:         time.Now,
	}
}

func (u *ReportUseCase) Render(ctx context.Context, filter entities.ListFilter, format report.Format) (RenderedReport, error) {
	doc, err := u.document(ctx, filter)
	if err != nil {
		return RenderedReport{}, err
	}
	body, err := u.renderer.Render(doc, format)
	if err != nil {
		if errors.Is(err, report.ErrUnsupportedFormat) {
			return RenderedReport{}, fmt.Errorf("%w: %w", ErrInvalidReportFormat, err)
		}
		return RenderedReport{}, err
	}
	return RenderedReport{
		Filename:    report.Filename(doc, format),
		ContentType: format.ContentType(),
		Body:        body,
	}, nil
}

// Share renders the report, uploads it and returns a time-limited link.
func (u *ReportUseCase) Share(ctx context.Context, filter entities.ListFilter, format report.Format) (SharedReport, error) {
	if u.storage == nil {
		return SharedReport{}, ErrReportSharingDisabled
	}
	rendered, err := u.Render(ctx, filter, format)
	if err != nil {
		return SharedReport{}, err
	}

	key := fmt.Sprintf("reportes/%s/%s", u.now().UTC().Format("2006/01/02"), uuid.NewString()+"-"+rendered.Filename)
	if err := u.storage.Put(ctx, key, rendered.ContentType, rendered.Body); err != nil {
		log.Printf("[report][usecase] upload failed key=%s err=%v", key, err)
		return SharedReport{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	url, err := u.storage.PresignGet(ctx, key, u.urlTTL)
	if err != nil {
		log.Printf("[report][usecase] presign failed key=%s err=%v", key, err)
		return SharedReport{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	log.Printf("[report][usecase] shared key=%s bytes=%d", key, len(rendered.Body))
	return SharedReport{URL: url, Key: key, ExpiresAt: u.now().Add(u.urlTTL).UTC()}, nil
}

func (u *ReportUseCase) document(ctx context.Context, filter entities.ListFilter) (report.Document, error) {
	fecha, err := u.actividades.ResolveFecha(filter.Fecha)
	if err != nil {
		return report.Document{}, err
	}
	filter.Fecha = fecha

	items, err := u.actividades.List(ctx, filter)
	if err != nil {
		return report.Document{}, err
	}
	return report.NewDocument(fecha, strings.TrimSpace(filter.AssignedTo), strings.TrimSpace(filter.CreatedBy), items), nil
}
