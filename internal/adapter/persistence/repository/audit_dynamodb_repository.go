package repository

import (
	"context"
	"fmt"
	"time"

	"renova_contracts/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAuditTableName = "contract_audit"

type auditItem struct {
	ContractID string `dynamodbav:"contract_id"`
	// EntryKey is "performedAt#auditID": range queries come back in time
	// order, the id suffix keeps same-instant entries distinct.
	EntryKey    string            `dynamodbav:"entry_key"`
	ID          string            `dynamodbav:"id"`
	Action      string            `dynamodbav:"action"`
	Detail      string            `dynamodbav:"detail,omitempty"`
	PerformedBy string            `dynamodbav:"performed_by"`
	PerformedAt string            `dynamodbav:"performed_at"`
	Metadata    map[string]string `dynamodbav:"metadata,omitempty"`
}

// AuditDynamoRepository persists AuditEntry records in DynamoDB.
//
// Table requirements:
//   - PK: contract_id (string)
//   - SK: entry_key (string)
//
// Entries are append-only: the conditional insert refuses to overwrite an
// existing key, so a written entry is immutable.

type AuditDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

func NewAuditDynamoRepository(ddb dynamoAPI) *AuditDynamoRepository {
	return &AuditDynamoRepository{
		ddb:       ddb,
		tableName: tableName("CONTRACT_AUDIT_TABLE", defaultAuditTableName),
	}
}

func (r *AuditDynamoRepository) Append(ctx context.Context, e entities.AuditEntry) error {
	it := auditItem{
		ContractID:  e.ContractID,
		EntryKey:    e.PerformedAt.UTC().Format(time.RFC3339Nano) + "#" + e.ID,
		ID:          e.ID,
		Action:      e.Action,
		Detail:      e.Detail,
		PerformedBy: e.PerformedBy,
		PerformedAt: e.PerformedAt.UTC().Format(time.RFC3339Nano),
		Metadata:    e.Metadata,
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return fmt.Errorf("append audit entry: marshal: %w", err)
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#sk)"),
		ExpressionAttributeNames: map[string]string{
			"#sk": "entry_key",
		},
	})
	if err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}
	return nil
}

// List returns a contract's audit trail, newest first.
func (r *AuditDynamoRepository) List(ctx context.Context, contractID string, limit int32) ([]entities.AuditEntry, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("contract_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: contractID},
		},
		ScanIndexForward: aws.Bool(false),
	}
	if limit > 0 {
		in.Limit = aws.Int32(limit)
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}

	entries := make([]entities.AuditEntry, 0, len(out.Items))
	for _, raw := range out.Items {
		var it auditItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, fmt.Errorf("list audit entries: unmarshal: %w", err)
		}
		performedAt, _ := time.Parse(time.RFC3339Nano, it.PerformedAt)
		entries = append(entries, entities.AuditEntry{
			ID:          it.ID,
			ContractID:  it.ContractID,
			Action:      it.Action,
			Detail:      it.Detail,
			PerformedBy: it.PerformedBy,
			PerformedAt: performedAt,
			Metadata:    it.Metadata,
		})
	}
	return entries, nil
}
