package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"agenda_tecnica/internal/domain/entities"
	"agenda_tecnica/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const DefaultActividadesTableName = "actividades"

// DynamoAPI is the subset of *dynamodb.Client used by the repository.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

type actividadItem struct {
	ID         string `dynamodbav:"id"`
	Tipo       string `dynamodbav:"tipo"`
	Cliente    string `dynamodbav:"cliente"`
	Horario    string `dynamodbav:"horario"`
	Servicio   string `dynamodbav:"servicio"`
	Direccion  string `dynamodbav:"direccion"`
	Telefono   string `dynamodbav:"telefono"`
	Costo      string `dynamodbav:"costo"`
	Estado     string `dynamodbav:"estado"`
	AssignedTo string `dynamodbav:"assigned_to"`
	CreatedBy  string `dynamodbav:"created_by"`
	Fecha      string `dynamodbav:"fecha"`
	Notas      string `dynamodbav:"notas,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// ActividadDynamoRepository persists activities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// List scans with a filter expression. Agendas are small and date matches
// must also hit rows written with the legacy D/M/YYYY fecha, which a
// fecha-keyed index would miss.

type ActividadDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IActividadRepository = (*ActividadDynamoRepository)(nil)

func NewActividadDynamoRepository(ddb DynamoAPI, tableName string) *ActividadDynamoRepository {
	if tableName == "" {
		tableName = DefaultActividadesTableName
	}
	return &ActividadDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ActividadDynamoRepository) Create(ctx context.Context, a entities.Actividad) (entities.Actividad, error) {
	a.ID = uuid.NewString()
	av, err := attributevalue.MarshalMap(toActividadItem(a))
	if err != nil {
		return entities.Actividad{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Actividad{}, err
	}
	return a, nil
}

func (r *ActividadDynamoRepository) GetByID(ctx context.Context, id string) (entities.Actividad, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Actividad{}, err
	}
	if len(out.Item) == 0 {
		return entities.Actividad{}, nil
	}

	var it actividadItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Actividad{}, err
	}
	return fromActividadItem(it), nil
}

func (r *ActividadDynamoRepository) List(ctx context.Context, filter entities.ListFilter) ([]entities.Actividad, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if expr, names, values := buildListFilter(filter); expr != "" {
		input.FilterExpression = aws.String(expr)
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	out := []entities.Actividad{}
	for {
		page, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		var items []actividadItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromActividadItem(it))
		}
		if len(page.LastEvaluatedKey) == 0 {
			return out, nil
		}
		input.ExclusiveStartKey = page.LastEvaluatedKey
	}
}

// Replace overwrites an existing record. A missing record yields a zero
// Actividad.
func (r *ActividadDynamoRepository) Replace(ctx context.Context, a entities.Actividad) (entities.Actividad, error) {
	av, err := attributevalue.MarshalMap(toActividadItem(a))
	if err != nil {
		return entities.Actividad{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Actividad{}, nil
		}
		return entities.Actividad{}, err
	}
	return a, nil
}

func (r *ActividadDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          idKey(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func buildListFilter(filter entities.ListFilter) (string, map[string]string, map[string]types.AttributeValue) {
	var conds []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}

	if fecha := filter.Fecha; fecha != "" && fecha != entities.FechaTodas {
		conds = append(conds, "(#fecha = :fecha OR #fecha = :fecha_legacy)")
		names["#fecha"] = "fecha"
		values[":fecha"] = &types.AttributeValueMemberS{Value: fecha}
		values[":fecha_legacy"] = &types.AttributeValueMemberS{Value: entities.LegacyFecha(fecha)}
	}
	if filter.AssignedTo != "" {
		cond := "#assigned_to = :assigned_to"
		if filter.AssignedTo == entities.PorAsignar {
			cond = "(#assigned_to = :assigned_to OR attribute_not_exists(#assigned_to))"
		}
		conds = append(conds, cond)
		names = mergeNames(names, map[string]string{"#assigned_to": "assigned_to"})
		values[":assigned_to"] = &types.AttributeValueMemberS{Value: filter.AssignedTo}
	}
	if filter.CreatedBy != "" {
		conds = append(conds, "#created_by = :created_by")
		names = mergeNames(names, map[string]string{"#created_by": "created_by"})
		values[":created_by"] = &types.AttributeValueMemberS{Value: filter.CreatedBy}
	}
	if len(conds) == 0 {
		return "", nil, nil
	}
	return strings.Join(conds, " AND "), names, values
}

func toActividadItem(a entities.Actividad) actividadItem {
	return actividadItem{
		ID:         a.ID,
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
		CreatedAt:  formatTimestamp(a.CreatedAt),
		UpdatedAt:  formatTimestamp(a.UpdatedAt),
	}
}

func fromActividadItem(it actividadItem) entities.Actividad {
	createdAt := parseTimestamp(it.CreatedAt)
	updatedAt := parseTimestamp(it.UpdatedAt)
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}
	return entities.Actividad{
		ID:         it.ID,
		Tipo:       normalizeTipo(it.Tipo),
		Cliente:    it.Cliente,
		Horario:    it.Horario,
		Servicio:   it.Servicio,
		Direccion:  it.Direccion,
		Telefono:   it.Telefono,
		Costo:      it.Costo,
		Estado:     normalizeEstado(it.Estado),
		AssignedTo: defaultString(it.AssignedTo, entities.PorAsignar),
		CreatedBy:  defaultString(it.CreatedBy, entities.CreadoPorOficina),
		Fecha:      entities.NormalizeLegacyFecha(it.Fecha),
		Notas:      it.Notas,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTimestamp(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
