package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"lista_presentes/internal/domain/entities"
	"lista_presentes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultGiftsTableName = "gifts"

type giftItem struct {
	ID            string `dynamodbav:"id"`
	Nome          string `dynamodbav:"nome"`
	Categoria     string `dynamodbav:"categoria"`
	PrecoEstimado string `dynamodbav:"preco_estimado"`
	FaixaPreco    string `dynamodbav:"faixa_preco"`
	ImageURL      string `dynamodbav:"image_url,omitempty"`
	Ativo         bool   `dynamodbav:"ativo"`
	Status        string `dynamodbav:"status"`
	CompradoPor   string `dynamodbav:"comprado_por,omitempty"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// GiftDynamoRepository persists Gift entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Status writes go through UpdateItem with a ConditionExpression on the
// current status. Two concurrent reservations both read disponivel, but
// only one conditional update lands; the other surfaces ErrStatusConflict.

type GiftDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IGiftRepository = (*GiftDynamoRepository)(nil)

func NewGiftDynamoRepository(ddb *dynamodb.Client) *GiftDynamoRepository {
	return &GiftDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("GIFTS_TABLE", defaultGiftsTableName),
	}
}

func (r *GiftDynamoRepository) GetByID(ctx context.Context, id string) (entities.Gift, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Gift{}, err
	}
	if len(out.Item) == 0 {
		return entities.Gift{}, nil
	}

	var it giftItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Gift{}, err
	}
	return fromGiftItem(it), nil
}

func (r *GiftDynamoRepository) List(ctx context.Context) ([]entities.Gift, error) {
	var gifts []entities.Gift
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it giftItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			gifts = append(gifts, fromGiftItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return gifts, nil
}

func (r *GiftDynamoRepository) Save(ctx context.Context, g entities.Gift) (entities.Gift, error) {
	av, err := attributevalue.MarshalMap(toGiftItem(g))
	if err != nil {
		return entities.Gift{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Gift{}, err
	}
	return g, nil
}

// UpdateStatusIf is the conditional status swap every state machine
// transition rides on. The buyer sub-record is written (or removed) in the
// same UpdateItem so status and comprado_por can never drift apart.
func (r *GiftDynamoRepository) UpdateStatusIf(ctx context.Context, id string, expected, next entities.GiftStatus, buyer *entities.PurchaseInfo) (entities.Gift, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #status = :next, #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":next":       &types.AttributeValueMemberS{Value: string(next)},
		":expected":   &types.AttributeValueMemberS{Value: string(expected)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}

	if buyer != nil {
		b, err := json.Marshal(buyer)
		if err != nil {
			return entities.Gift{}, err
		}
		expr += ", #comprado_por = :comprado_por"
		values[":comprado_por"] = &types.AttributeValueMemberS{Value: string(b)}
		names["#comprado_por"] = "comprado_por"
	} else {
		expr += " REMOVE #comprado_por"
		names["#comprado_por"] = "comprado_por"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Gift{}, interfaces.ErrStatusConflict
		}
		return entities.Gift{}, err
	}

	var it giftItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Gift{}, err
	}
	return fromGiftItem(it), nil
}

func (r *GiftDynamoRepository) SetActive(ctx context.Context, id string, active bool) (entities.Gift, error) {
	return r.update(ctx, id, "SET #ativo = :ativo, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":ativo": &types.AttributeValueMemberBOOL{Value: active},
		},
		map[string]string{"#ativo": "ativo"},
	)
}

func (r *GiftDynamoRepository) SetReceived(ctx context.Context, id string, received bool) (entities.Gift, error) {
	g, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Gift{}, err
	}
	if g.ID == "" || g.CompradoPor == nil {
		return entities.Gift{}, nil
	}

	info := *g.CompradoPor
	info.RecebidoConfirmado = received
	b, err := json.Marshal(info)
	if err != nil {
		return entities.Gift{}, err
	}

	return r.update(ctx, id, "SET #comprado_por = :comprado_por, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":comprado_por": &types.AttributeValueMemberS{Value: string(b)},
		},
		map[string]string{"#comprado_por": "comprado_por"},
	)
}

func (r *GiftDynamoRepository) ReplaceAll(ctx context.Context, gifts []entities.Gift) error {
	existing, err := r.List(ctx)
	if err != nil {
		return err
	}
	for _, g := range existing {
		if err := r.Delete(ctx, g.ID); err != nil {
			return err
		}
	}
	for _, g := range gifts {
		if _, err := r.Save(ctx, g); err != nil {
			return err
		}
	}
	return nil
}

func (r *GiftDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *GiftDynamoRepository) update(ctx context.Context, id, updateExpr string, values map[string]types.AttributeValue, names map[string]string) (entities.Gift, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	values[":updated_at"] = &types.AttributeValueMemberS{Value: now}
	names = mergeNames(names, map[string]string{"#id": "id", "#updated_at": "updated_at"})

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Gift{}, nil
		}
		return entities.Gift{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Gift{}, nil
	}

	var it giftItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Gift{}, err
	}
	return fromGiftItem(it), nil
}

func toGiftItem(g entities.Gift) giftItem {
	it := giftItem{
		ID:            g.ID,
		Nome:          g.Nome,
		Categoria:     g.Categoria,
		PrecoEstimado: g.PrecoEstimado,
		FaixaPreco:    string(g.FaixaPreco),
		ImageURL:      g.ImageURL,
		Ativo:         g.Ativo,
		Status:        string(g.Status),
		UpdatedAt:     g.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if g.CompradoPor != nil {
		if b, err := json.Marshal(g.CompradoPor); err == nil {
			it.CompradoPor = string(b)
		}
	}
	return it
}

func fromGiftItem(it giftItem) entities.Gift {
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	g := entities.Gift{
		ID:            it.ID,
		Nome:          it.Nome,
		Categoria:     it.Categoria,
		PrecoEstimado: it.PrecoEstimado,
		FaixaPreco:    entities.PriceTier(it.FaixaPreco),
		ImageURL:      it.ImageURL,
		Ativo:         it.Ativo,
		Status:        entities.GiftStatus(it.Status),
		UpdatedAt:     updatedAt,
	}
	if it.CompradoPor != "" {
		var info entities.PurchaseInfo
		if err := json.Unmarshal([]byte(it.CompradoPor), &info); err == nil {
			g.CompradoPor = &info
		}
	}
	return g
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
