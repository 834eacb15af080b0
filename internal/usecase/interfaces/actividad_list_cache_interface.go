package interfaces

import (
	"context"

	"agenda_tecnica/internal/domain/entities"
)

// IActividadListCache caches List results keyed by every filter dimension.
//
// Lookup returns a token identifying the cache slot for the current
// generation. Store must be called with that token, so a result read before
// an Invalidate lands in a slot nobody reads anymore.

type IActividadListCache interface {
	Lookup(ctx context.Context, filter entities.ListFilter) (items []entities.Actividad, hit bool, token string, err error)
	Store(ctx context.Context, token string, items []entities.Actividad) error
	Invalidate(ctx context.Context) error
}
