package repository

import (
	"context"
	"errors"
	"time"

	"agenda_tecnica/internal/domain/entities"
	"agenda_tecnica/internal/usecase/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// actividadDocument matches the collection written by earlier versions of
// the agenda: no timestamps, free-form tipo and D/M/YYYY fechas. Missing
// fields are filled on read.
type actividadDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Tipo       string             `bson:"tipo"`
	Cliente    string             `bson:"cliente"`
	Horario    string             `bson:"horario"`
	Servicio   string             `bson:"servicio"`
	Direccion  string             `bson:"direccion"`
	Telefono   string             `bson:"telefono"`
	Costo      string             `bson:"costo"`
	Estado     string             `bson:"estado"`
	AssignedTo string             `bson:"assigned_to,omitempty"`
	CreatedBy  string             `bson:"created_by,omitempty"`
	Fecha      string             `bson:"fecha"`
	Notas      string             `bson:"notas,omitempty"`
	CreatedAt  time.Time          `bson:"created_at,omitempty"`
	UpdatedAt  time.Time          `bson:"updated_at,omitempty"`
}

// ActividadMongoRepository persists activities in a MongoDB collection.
// Ids are ObjectIDs exposed as hex strings.
type ActividadMongoRepository struct {
	coll *mongo.Collection
}

var _ interfaces.IActividadRepository = (*ActividadMongoRepository)(nil)

func NewActividadMongoRepository(coll *mongo.Collection) *ActividadMongoRepository {
	return &ActividadMongoRepository{coll: coll}
}

func (r *ActividadMongoRepository) Create(ctx context.Context, a entities.Actividad) (entities.Actividad, error) {
	doc := toActividadDocument(a)
	doc.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return entities.Actividad{}, err
	}
	a.ID = doc.ID.Hex()
	return a, nil
}

func (r *ActividadMongoRepository) GetByID(ctx context.Context, id string) (entities.Actividad, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return entities.Actividad{}, nil
	}

	var doc actividadDocument
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entities.Actividad{}, nil
	}
	if err != nil {
		return entities.Actividad{}, err
	}
	return fromActividadDocument(doc), nil
}

func (r *ActividadMongoRepository) List(ctx context.Context, filter entities.ListFilter) ([]entities.Actividad, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := r.coll.Find(ctx, buildMongoFilter(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []actividadDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]entities.Actividad, 0, len(docs))
	for _, d := range docs {
		out = append(out, fromActividadDocument(d))
	}
	return out, nil
}

func (r *ActividadMongoRepository) Replace(ctx context.Context, a entities.Actividad) (entities.Actividad, error) {
	oid, err := primitive.ObjectIDFromHex(a.ID)
	if err != nil {
		return entities.Actividad{}, nil
	}
	doc := toActividadDocument(a)
	doc.ID = oid

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return entities.Actividad{}, err
	}
	if res.MatchedCount == 0 {
		return entities.Actividad{}, nil
	}
	return a, nil
}

func (r *ActividadMongoRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func buildMongoFilter(filter entities.ListFilter) bson.M {
	q := bson.M{}
	if fecha := filter.Fecha; fecha != "" && fecha != entities.FechaTodas {
		q["fecha"] = bson.M{"$in": bson.A{fecha, entities.LegacyFecha(fecha)}}
	}
	if filter.AssignedTo != "" {
		if filter.AssignedTo == entities.PorAsignar {
			// Old documents have no assigned_to at all.
			q["$or"] = bson.A{
				bson.M{"assigned_to": entities.PorAsignar},
				bson.M{"assigned_to": bson.M{"$exists": false}},
			}
		} else {
			q["assigned_to"] = filter.AssignedTo
		}
	}
	if filter.CreatedBy != "" {
		q["created_by"] = filter.CreatedBy
	}
	return q
}

func toActividadDocument(a entities.Actividad) actividadDocument {
	return actividadDocument{
		Tipo:       string(a.Tipo),
		Cliente:    a.Cliente,
		Horario:    a.Horario,
		Servicio:   a.Servicio,
		Direccion:  a.Direccion,
		Telefono:   a.Telefono,
		Costo:      a.Costo,
		Estado:     string(a.Estado),
		AssignedTo: a.AssignedTo,
		CreatedBy:  a.CreatedBy,
		Fecha:      a.Fecha,
		Notas:      a.Notas,
		CreatedAt:  a.CreatedAt.UTC(),
		UpdatedAt:  a.UpdatedAt.UTC(),
	}
}

func fromActividadDocument(d actividadDocument) entities.Actividad {
	createdAt := d.CreatedAt
	if createdAt.IsZero() && !d.ID.IsZero() {
		createdAt = d.ID.Timestamp()
	}
	updatedAt := d.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}
	return entities.Actividad{
		ID:         d.ID.Hex(),
		Tipo:       normalizeTipo(d.Tipo),
		Cliente:    d.Cliente,
		Horario:    d.Horario,
		Servicio:   d.Servicio,
		Direccion:  d.Direccion,
		Telefono:   d.Telefono,
		Costo:      d.Costo,
		Estado:     normalizeEstado(d.Estado),
		AssignedTo: defaultString(d.AssignedTo, entities.PorAsignar),
		CreatedBy:  defaultString(d.CreatedBy, entities.CreadoPorOficina),
		Fecha:      entities.NormalizeLegacyFecha(d.Fecha),
		Notas:      d.Notas,
		CreatedAt:  createdAt.UTC(),
		UpdatedAt:  updatedAt.UTC(),
	}
}
