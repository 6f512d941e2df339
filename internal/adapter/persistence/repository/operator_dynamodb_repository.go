package repository

import (
	"context"
	"time"

	"locksmith_invoicing/internal/domain/entities"
	"locksmith_invoicing/internal/infrastructure/database"
	"locksmith_invoicing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOperatorsTableName = "operators"

type operatorItem struct {
	Email        string `dynamodbav:"email"`
	PasswordHash string `dynamodbav:"password_hash"`
	FirstName    string `dynamodbav:"first_name,omitempty"`
	LastName     string `dynamodbav:"last_name,omitempty"`
	Role         string `dynamodbav:"role"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// OperatorDynamoRepository persists operators in DynamoDB.
//
// Table requirements:
//   - PK: email (string, lower-cased)
type OperatorDynamoRepository struct {
	ddb       database.DynamoDBAPI
	tableName string
}

var _ interfaces.IOperatorRepository = (*OperatorDynamoRepository)(nil)

func NewOperatorDynamoRepository(ddb database.DynamoDBAPI) *OperatorDynamoRepository {
	return &OperatorDynamoRepository{
		ddb:       ddb,
		tableName: OperatorsTableName(),
	}
}

// OperatorsTableName honors OPERATORS_TABLE.
func OperatorsTableName() string {
	return getenvDefault("OPERATORS_TABLE", defaultOperatorsTableName)
}

func (r *OperatorDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Operator, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: normalizeEmail(email)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Operator{}, err
	}
	if len(out.Item) == 0 {
		return entities.Operator{}, nil
	}

	var it operatorItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Operator{}, err
	}
	return fromOperatorItem(it), nil
}

func (r *OperatorDynamoRepository) Upsert(ctx context.Context, op entities.Operator) (entities.Operator, error) {
	op.Email = normalizeEmail(op.Email)
	av, err := attributevalue.MarshalMap(toOperatorItem(op, time.Now()))
	if err != nil {
		return entities.Operator{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return entities.Operator{}, err
	}
	return op, nil
}

// UpdatePasswordHash returns a zero Operator when the email is unknown.
func (r *OperatorDynamoRepository) UpdatePasswordHash(ctx context.Context, email, hash string) (entities.Operator, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: normalizeEmail(email)},
		},
		ConditionExpression: aws.String("attribute_exists(#email)"),
		UpdateExpression:    aws.String("SET #password_hash = :hash, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":hash":       &types.AttributeValueMemberS{Value: hash},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ExpressionAttributeNames: map[string]string{
			"#email":         "email",
			"#password_hash": "password_hash",
			"#updated_at":    "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Operator{}, nil
		}
		return entities.Operator{}, err
	}
	var it operatorItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Operator{}, err
	}
	return fromOperatorItem(it), nil
}

func toOperatorItem(op entities.Operator, now time.Time) operatorItem {
	return operatorItem{
		Email:        op.Email,
		PasswordHash: op.PasswordHash,
		FirstName:    op.FirstName,
		LastName:     op.LastName,
		Role:         string(op.Role),
		UpdatedAt:    formatTime(now),
	}
}

func fromOperatorItem(it operatorItem) entities.Operator {
	return entities.Operator{
		Email:        it.Email,
		PasswordHash: it.PasswordHash,
		FirstName:    it.FirstName,
		LastName:     it.LastName,
		Role:         entities.OperatorRole(it.Role),
	}
}
