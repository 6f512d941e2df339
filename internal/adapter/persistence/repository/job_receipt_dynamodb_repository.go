package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"locksmith_invoicing/internal/domain/entities"
	"locksmith_invoicing/internal/infrastructure/database"
	"locksmith_invoicing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultJobReceiptsTableName = "job_receipts"
	// JobReceiptRetention bounds how long a key deduplicates retries.
	JobReceiptRetention = 24 * time.Hour
)

type jobReceiptItem struct {
	ID          string `dynamodbav:"id"`
	Status      string `dynamodbav:"status"`
	InvoiceID   string `dynamodbav:"invoice_id,omitempty"`
	DocNumber   string `dynamodbav:"doc_number,omitempty"`
	CustomerRef string `dynamodbav:"customer_ref,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	CompletedAt string `dynamodbav:"completed_at,omitempty"`
	// epoch seconds, for the table TTL setting
	ExpiresAt int64 `dynamodbav:"expires_at"`
}

// JobReceiptDynamoRepository persists job idempotency receipts in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - TTL attribute: expires_at (optional)
type JobReceiptDynamoRepository struct {
	ddb       database.DynamoDBAPI
	tableName string
}

var _ interfaces.IJobReceiptRepository = (*JobReceiptDynamoRepository)(nil)

func NewJobReceiptDynamoRepository(ddb database.DynamoDBAPI) *JobReceiptDynamoRepository {
	return &JobReceiptDynamoRepository{
		ddb:       ddb,
		tableName: JobReceiptsTableName(),
	}
}

// JobReceiptsTableName honors JOB_RECEIPTS_TABLE.
func JobReceiptsTableName() string {
	return getenvDefault("JOB_RECEIPTS_TABLE", defaultJobReceiptsTableName)
}

func (r *JobReceiptDynamoRepository) Reserve(ctx context.Context, rec entities.JobReceipt) (entities.JobReceipt, error) {
	rec.Status = entities.JobReceiptPending
	av, err := attributevalue.MarshalMap(toJobReceiptItem(rec))
	if err != nil {
		return entities.JobReceipt{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id) OR #expires_at < :now"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#expires_at": "expires_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":now": &types.AttributeValueMemberN{Value: strconv.FormatInt(time.Now().Unix(), 10)},
		},
	})
	if err == nil {
		return rec, nil
	}
	if !isConditionFailed(err) {
		return entities.JobReceipt{}, err
	}

	existing, err := r.get(ctx, rec.ID)
	if err != nil {
		return entities.JobReceipt{}, err
	}
	return existing, fmt.Errorf("%w: %s", interfaces.ErrJobReceiptExists, rec.ID)
}

func (r *JobReceiptDynamoRepository) Complete(ctx context.Context, rec entities.JobReceipt) (entities.JobReceipt, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: rec.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #invoice_id = :invoice_id, #doc_number = :doc_number, #completed_at = :completed_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":       &types.AttributeValueMemberS{Value: string(entities.JobReceiptCompleted)},
			":invoice_id":   &types.AttributeValueMemberS{Value: rec.InvoiceID},
			":doc_number":   &types.AttributeValueMemberS{Value: rec.DocNumber},
			":completed_at": &types.AttributeValueMemberS{Value: formatTime(rec.CompletedAt)},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":       "status",
			"#invoice_id":   "invoice_id",
			"#doc_number":   "doc_number",
			"#completed_at": "completed_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.JobReceipt{}, nil
		}
		return entities.JobReceipt{}, err
	}
	var it jobReceiptItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.JobReceipt{}, err
	}
	return fromJobReceiptItem(it), nil
}

// Release drops a pending receipt; completed receipts are kept.
func (r *JobReceiptDynamoRepository) Release(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:      aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{"#status": "status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.JobReceiptPending)},
		},
	})
	if err != nil && !isConditionFailed(err) {
		return err
	}
	return nil
}

func (r *JobReceiptDynamoRepository) get(ctx context.Context, id string) (entities.JobReceipt, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.JobReceipt{}, err
	}
	if len(out.Item) == 0 {
		return entities.JobReceipt{}, nil
	}
	var it jobReceiptItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.JobReceipt{}, err
	}
	return fromJobReceiptItem(it), nil
}

func toJobReceiptItem(rec entities.JobReceipt) jobReceiptItem {
	created := rec.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	return jobReceiptItem{
		ID:          rec.ID,
		Status:      string(rec.Status),
		InvoiceID:   rec.InvoiceID,
		DocNumber:   rec.DocNumber,
		CustomerRef: rec.CustomerRef,
		CreatedAt:   formatTime(created),
		CompletedAt: formatTime(rec.CompletedAt),
		ExpiresAt:   created.Add(JobReceiptRetention).Unix(),
	}
}

func fromJobReceiptItem(it jobReceiptItem) entities.JobReceipt {
	return entities.JobReceipt{
		ID:          it.ID,
		Status:      entities.JobReceiptStatus(it.Status),
		InvoiceID:   it.InvoiceID,
		DocNumber:   it.DocNumber,
		CustomerRef: it.CustomerRef,
		CreatedAt:   parseTime(it.CreatedAt),
		CompletedAt: parseTime(it.CompletedAt),
	}
}
