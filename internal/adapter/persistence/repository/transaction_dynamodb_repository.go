package repository

import (
	"context"
	"errors"
	"time"

	"lista_presentes/internal/domain/entities"
	"lista_presentes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTransactionsTableName = "transactions"
	giftIDIndexName              = "gift_id-index"

	// createdAtLayout pads nanoseconds to a fixed width so lexicographic
	// order on the stored strings equals time order. RFC3339Nano drops
	// trailing fractional zeros, which breaks that within one second.
	createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

type transactionItem struct {
	ID              string `dynamodbav:"id"`
	TransactionCode string `dynamodbav:"transaction_code"`
	OrderID         string `dynamodbav:"order_id,omitempty"`
	ChargeID        string `dynamodbav:"charge_id,omitempty"`
	GiftID          string `dynamodbav:"gift_id"`
	Amount          int64  `dynamodbav:"amount"`
	BuyerName       string `dynamodbav:"buyer_name"`
	BuyerEmail      string `dynamodbav:"buyer_email,omitempty"`
	PaymentMethod   string `dynamodbav:"payment_method,omitempty"`
	Status          string `dynamodbav:"status"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// TransactionDynamoRepository persists the payment attempt ledger in
// DynamoDB, keyed by the gateway checkout id with a gift_id GSI for the
// latest-attempt lookup.
type TransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *TransactionDynamoRepository) Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error) {
	av, err := attributevalue.MarshalMap(toTransactionItem(t))
	if err != nil {
		return entities.Transaction{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(transaction_code)"),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// Same checkout registered twice; the first row wins.
			return r.GetByCode(ctx, t.TransactionCode)
		}
		return entities.Transaction{}, err
	}
	return t, nil
}

func (r *TransactionDynamoRepository) GetByCode(ctx context.Context, code string) (entities.Transaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"transaction_code": &types.AttributeValueMemberS{Value: code},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.Transaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

func (r *TransactionDynamoRepository) LatestByGiftID(ctx context.Context, giftID string) (entities.Transaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(giftIDIndexName),
		KeyConditionExpression: aws.String("#gift_id = :gift_id"),
		ExpressionAttributeNames: map[string]string{
			"#gift_id": "gift_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":gift_id": &types.AttributeValueMemberS{Value: giftID},
		},
	})
	if err != nil {
		return entities.Transaction{}, err
	}

	var latest entities.Transaction
	for _, raw := range out.Items {
		var it transactionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return entities.Transaction{}, err
		}
		t := fromTransactionItem(it)
		if t.CreatedAt.After(latest.CreatedAt) {
			latest = t
		}
	}
	return latest, nil
}

func (r *TransactionDynamoRepository) List(ctx context.Context) ([]entities.Transaction, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
}

func (r *TransactionDynamoRepository) ListProcessing(ctx context.Context) ([]entities.Transaction, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(entities.TransactionStatusProcessing)},
		},
	})
}

// ListStale relies on created_at being stored in the fixed-width
// createdAtLayout in UTC, which makes the lexicographic comparison below
// equivalent to a time comparison.
func (r *TransactionDynamoRepository) ListStale(ctx context.Context, olderThan time.Time) ([]entities.Transaction, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#status = :status AND #created_at < :cutoff"),
		ExpressionAttributeNames: map[string]string{
			"#status":     "status",
			"#created_at": "created_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(entities.TransactionStatusProcessing)},
			":cutoff": &types.AttributeValueMemberS{Value: olderThan.UTC().Format(createdAtLayout)},
		},
	})
}

func (r *TransactionDynamoRepository) UpdateByCode(ctx context.Context, code string, upd interfaces.TransactionUpdate) (entities.Transaction, error) {
	now := time.Now().UTC().Format(createdAtLayout)

	expr := "SET #status = :status, #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(upd.Status)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	if upd.OrderID != "" {
		expr += ", #order_id = :order_id"
		values[":order_id"] = &types.AttributeValueMemberS{Value: upd.OrderID}
		names["#order_id"] = "order_id"
	}
	if upd.ChargeID != "" {
		expr += ", #charge_id = :charge_id"
		values[":charge_id"] = &types.AttributeValueMemberS{Value: upd.ChargeID}
		names["#charge_id"] = "charge_id"
	}
	if upd.PaymentMethod != "" {
		expr += ", #payment_method = :payment_method"
		values[":payment_method"] = &types.AttributeValueMemberS{Value: upd.PaymentMethod}
		names["#payment_method"] = "payment_method"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"transaction_code": &types.AttributeValueMemberS{Value: code},
		},
		ConditionExpression:       aws.String("attribute_exists(transaction_code)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Transaction{}, nil
		}
		return entities.Transaction{}, err
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

func (r *TransactionDynamoRepository) DeleteByCode(ctx context.Context, code string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"transaction_code": &types.AttributeValueMemberS{Value: code},
		},
	})
	return err
}

func (r *TransactionDynamoRepository) scan(ctx context.Context, input *dynamodb.ScanInput) ([]entities.Transaction, error) {
	var transactions []entities.Transaction
	var startKey map[string]types.AttributeValue

	for {
		input.ExclusiveStartKey = startKey
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it transactionItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			transactions = append(transactions, fromTransactionItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return transactions, nil
}

func toTransactionItem(t entities.Transaction) transactionItem {
	return transactionItem{
		ID:              t.ID,
		TransactionCode: t.TransactionCode,
		OrderID:         t.OrderID,
		ChargeID:        t.ChargeID,
		GiftID:          t.GiftID,
		Amount:          t.Amount,
		BuyerName:       t.BuyerName,
		BuyerEmail:      t.BuyerEmail,
		PaymentMethod:   t.PaymentMethod,
		Status:          string(t.Status),
		CreatedAt:       t.CreatedAt.UTC().Format(createdAtLayout),
		UpdatedAt:       t.UpdatedAt.UTC().Format(createdAtLayout),
	}
}

func fromTransactionItem(it transactionItem) entities.Transaction {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Transaction{
		ID:              it.ID,
		TransactionCode: it.TransactionCode,
		OrderID:         it.OrderID,
		ChargeID:        it.ChargeID,
		GiftID:          it.GiftID,
		Amount:          it.Amount,
		BuyerName:       it.BuyerName,
		BuyerEmail:      it.BuyerEmail,
		PaymentMethod:   it.PaymentMethod,
		Status:          entities.TransactionStatus(it.Status),
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
