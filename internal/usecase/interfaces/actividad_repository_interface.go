package interfaces

import (
	"context"

	"agenda_tecnica/internal/domain/entities"
)

// IActividadRepository abstracts the document store holding activities.
//
// Every operation is atomic at the single-document level. Implementations
// must:
//   - assign the id on Create
//   - return a zero Actividad (ID == "") when an id does not resolve
//   - apply ListFilter fields as exact matches; Fecha == FechaTodas or ""
//     means no date restriction (the use case resolves "today" beforehand)

type IActividadRepository interface {
	Create(ctx context.Context, a entities.Actividad) (entities.Actividad, error)
	GetByID(ctx context.Context, id string) (entities.Actividad, error)
	List(ctx context.Context, filter entities.ListFilter) ([]entities.Actividad, error)
	Replace(ctx context.Context, a entities.Actividad) (entities.Actividad, error)
	Delete(ctx context.Context, id string) (bool, error)
}
