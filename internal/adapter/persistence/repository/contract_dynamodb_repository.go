package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"renova_contracts/internal/domain/entities"
	"renova_contracts/internal/usecase"
	"renova_contracts/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	defaultContractsTableName = "contracts"
	homeownerStatusIndex      = "homeowner-status-index"
	contractorStatusIndex     = "contractor-status-index"

	// How many read-modify-write cycles to attempt before giving up on a
	// version conflict.
	updateAttempts = 5
)

type contractItem struct {
	ID            string `dynamodbav:"id"`
	ProjectID     string `dynamodbav:"project_id"`
	ScopeOfWorkID string `dynamodbav:"scope_of_work_id"`
	QuoteID       string `dynamodbav:"quote_id"`
	HomeownerID   string `dynamodbav:"homeowner_id"`
	ContractorID  string `dynamodbav:"contractor_id"`

	// Party-index sort keys, "status#timestamp". Recomputed whenever the
	// status changes so the GSIs stay ordered by status then recency.
	HomeownerSort  string `dynamodbav:"homeowner_sort"`
	ContractorSort string `dynamodbav:"contractor_sort"`

	ContractNumber string `dynamodbav:"contract_number"`
	Version        int64  `dynamodbav:"version"`
	Status         string `dynamodbav:"status"`
	VariationSeq   int    `dynamodbav:"variation_seq"`

	Terms      entities.ContractTerms      `dynamodbav:"terms"`
	Signatures []entities.Signature        `dynamodbav:"signatures"`
	Milestones []entities.Milestone        `dynamodbav:"milestones"`
	Variations []entities.Variation        `dynamodbav:"variations"`
	Payments   []entities.Payment          `dynamodbav:"payments"`
	Documents  []entities.ContractDocument `dynamodbav:"documents,omitempty"`

	CreatedAt    string  `dynamodbav:"created_at"`
	UpdatedAt    string  `dynamodbav:"updated_at"`
	SignedAt     *string `dynamodbav:"signed_at,omitempty"`
	TerminatedAt *string `dynamodbav:"terminated_at,omitempty"`
}

// ContractDynamoRepository persists Contract entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: homeowner-status-index (PK: homeowner_id, SK: homeowner_sort)
//   - GSI: contractor-status-index (PK: contractor_id, SK: contractor_sort)
//
// Every write is conditional: Create on the id not existing yet, Update on
// the stored version still being the one that was read. Lost updates from
// concurrent read-modify-write cycles surface as conditional-check failures
// and are retried from a fresh read.

type ContractDynamoRepository struct {
	ddb       dynamoAPI
	audit     interfaces.IAuditRecorder
	tableName string
	now       func() time.Time
}

var _ interfaces.IContractRepository = (*ContractDynamoRepository)(nil)

func NewContractDynamoRepository(ddb dynamoAPI, audit interfaces.IAuditRecorder) *ContractDynamoRepository {
	return &ContractDynamoRepository{
		ddb:       ddb,
		audit:     audit,
		tableName: tableName("CONTRACTS_TABLE", defaultContractsTableName),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source. Test hook.
func (r *ContractDynamoRepository) WithClock(now func() time.Time) *ContractDynamoRepository {
	r.now = now
	return r
}

func (r *ContractDynamoRepository) Create(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	if c.Version == 0 {
		c.Version = 1
	}
	av, err := attributevalue.MarshalMap(toContractItem(c))
	if err != nil {
		return entities.Contract{}, fmt.Errorf("create contract: marshal: %w", err)
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Contract{}, usecase.ErrContractExists
		}
		return entities.Contract{}, fmt.Errorf("create contract: %w", err)
	}
	return c, nil
}

func (r *ContractDynamoRepository) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	it, found, err := r.getItem(ctx, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if !found {
		return entities.Contract{}, nil
	}
	return fromContractItem(it), nil
}

func (r *ContractDynamoRepository) getItem(ctx context.Context, id string) (contractItem, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return contractItem{}, false, fmt.Errorf("get contract: %w", err)
	}
	if len(out.Item) == 0 {
		return contractItem{}, false, nil
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return contractItem{}, false, fmt.Errorf("get contract: unmarshal: %w", err)
	}
	return it, true, nil
}

// Update runs a version-checked read-modify-write cycle. The mutation
// closure sees the freshly read contract; a status change it makes is
// validated against the state machine before anything is written. One
// best-effort audit entry records the transition when the status changed.
func (r *ContractDynamoRepository) Update(ctx context.Context, id, actor string, mutate func(*entities.Contract) error) (entities.Contract, error) {
	var lastErr error
	for attempt := 0; attempt < updateAttempts; attempt++ {
		prev, found, err := r.getItem(ctx, id)
		if err != nil {
			return entities.Contract{}, err
		}
		if !found {
			return entities.Contract{}, usecase.ErrContractNotFound
		}
		current := fromContractItem(prev)

		next := current
		// The closure gets its own copies of the collections so a retry
		// never sees a half-applied mutation.
		next.Signatures = append([]entities.Signature(nil), current.Signatures...)
		next.Milestones = append([]entities.Milestone(nil), current.Milestones...)
		next.Variations = append([]entities.Variation(nil), current.Variations...)
		next.Payments = append([]entities.Payment(nil), current.Payments...)
		next.Documents = append([]entities.ContractDocument(nil), current.Documents...)

		if err := mutate(&next); err != nil {
			return entities.Contract{}, err
		}

		statusChanged := next.Status != current.Status
		if statusChanged && !entities.CanTransition(current.Status, next.Status) {
			return entities.Contract{}, fmt.Errorf("%w: %s -> %s", usecase.ErrInvalidTransition, current.Status, next.Status)
		}

		next.Version = current.Version + 1
		next.UpdatedAt = r.now()

		item := toContractItem(next)
		if !statusChanged {
			// Non-status writes must not shift the status#timestamp
			// ordering of the party indexes.
			item.HomeownerSort = prev.HomeownerSort
			item.ContractorSort = prev.ContractorSort
		}
		av, err := attributevalue.MarshalMap(item)
		if err != nil {
			return entities.Contract{}, fmt.Errorf("update contract: marshal: %w", err)
		}

		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("#version = :expected"),
			ExpressionAttributeNames: map[string]string{
				"#version": "version",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":expected": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", current.Version)},
			},
		})
		if err != nil {
			var cfe *types.ConditionalCheckFailedException
			if errors.As(err, &cfe) {
				lastErr = err
				log.Printf("[contract][repo] version conflict contract_id=%s attempt=%d", id, attempt+1)
				continue
			}
			return entities.Contract{}, fmt.Errorf("update contract: %w", err)
		}

		if statusChanged && r.audit != nil {
			r.audit.Record(ctx, entities.AuditEntry{
				ID:          uuid.NewString(),
				ContractID:  next.ID,
				Action:      "contract.status-changed",
				Detail:      fmt.Sprintf("status %s -> %s", current.Status, next.Status),
				PerformedBy: actor,
				PerformedAt: next.UpdatedAt,
			})
		}
		return next, nil
	}
	return entities.Contract{}, fmt.Errorf("update contract %s: too many version conflicts: %w", id, lastErr)
}

func (r *ContractDynamoRepository) ListByParty(ctx context.Context, partyID string, role entities.PartyRole, statusPrefix string) ([]entities.Contract, error) {
	index, pkAttr, sortAttr := homeownerStatusIndex, "homeowner_id", "homeowner_sort"
	if role == entities.PartyRoleContractor {
		index, pkAttr, sortAttr = contractorStatusIndex, "contractor_id", "contractor_sort"
	}

	keyCond := "#pk = :pid"
	names := map[string]string{"#pk": pkAttr}
	values := map[string]types.AttributeValue{
		":pid": &types.AttributeValueMemberS{Value: partyID},
	}
	if statusPrefix != "" {
		keyCond += " AND begins_with(#sk, :prefix)"
		names["#sk"] = sortAttr
		values[":prefix"] = &types.AttributeValueMemberS{Value: statusPrefix}
	}

	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(index),
		KeyConditionExpression:    aws.String(keyCond),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ScanIndexForward:          aws.Bool(false),
	})
	if err != nil {
		return nil, fmt.Errorf("list contracts by party: %w", err)
	}

	contracts := make([]entities.Contract, 0, len(out.Items))
	for _, raw := range out.Items {
		var it contractItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, fmt.Errorf("list contracts by party: unmarshal: %w", err)
		}
		contracts = append(contracts, fromContractItem(it))
	}
	return contracts, nil
}

// ListByStatuses scans for contracts in any of the given statuses. Only the
// background signature sweep uses it; the hot paths go through the GSIs.
func (r *ContractDynamoRepository) ListByStatuses(ctx context.Context, statuses []entities.ContractStatus) ([]entities.Contract, error) {
	if len(statuses) == 0 {
		return nil, nil
	}

	filter := "#status IN ("
	values := map[string]types.AttributeValue{}
	for i, s := range statuses {
		key := fmt.Sprintf(":s%d", i)
		if i > 0 {
			filter += ", "
		}
		filter += key
		values[key] = &types.AttributeValueMemberS{Value: string(s)}
	}
	filter += ")"

	var contracts []entities.Contract
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(r.tableName),
			FilterExpression:          aws.String(filter),
			ExpressionAttributeNames:  map[string]string{"#status": "status"},
			ExpressionAttributeValues: values,
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("list contracts by status: %w", err)
		}
		for _, raw := range out.Items {
			var it contractItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, fmt.Errorf("list contracts by status: unmarshal: %w", err)
			}
			contracts = append(contracts, fromContractItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return contracts, nil
}

func partySortKey(status entities.ContractStatus, at time.Time) string {
	return string(status) + "#" + at.UTC().Format(time.RFC3339Nano)
}

func toContractItem(c entities.Contract) contractItem {
	// The sort-key timestamp tracks when the contract entered its current
	// status, which is UpdatedAt on every status-changing write.
	sort := partySortKey(c.Status, c.UpdatedAt)
	return contractItem{
		ID:             c.ID,
		ProjectID:      c.ProjectID,
		ScopeOfWorkID:  c.ScopeOfWorkID,
		QuoteID:        c.QuoteID,
		HomeownerID:    c.HomeownerID,
		ContractorID:   c.ContractorID,
		HomeownerSort:  sort,
		ContractorSort: sort,
		ContractNumber: c.ContractNumber,
		Version:        c.Version,
		Status:         string(c.Status),
		VariationSeq:   c.VariationSeq,
		Terms:          c.Terms,
		Signatures:     c.Signatures,
		Milestones:     c.Milestones,
		Variations:     c.Variations,
		Payments:       c.Payments,
		Documents:      c.Documents,
		CreatedAt:      c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      c.UpdatedAt.UTC().Format(time.RFC3339Nano),
		SignedAt:       timeToString(c.SignedAt),
		TerminatedAt:   timeToString(c.TerminatedAt),
	}
}

func fromContractItem(it contractItem) entities.Contract {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Contract{
		ID:             it.ID,
		ProjectID:      it.ProjectID,
		ScopeOfWorkID:  it.ScopeOfWorkID,
		QuoteID:        it.QuoteID,
		HomeownerID:    it.HomeownerID,
		ContractorID:   it.ContractorID,
		ContractNumber: it.ContractNumber,
		Version:        it.Version,
		Status:         entities.ContractStatus(it.Status),
		VariationSeq:   it.VariationSeq,
		Terms:          it.Terms,
		Signatures:     it.Signatures,
		Milestones:     it.Milestones,
		Variations:     it.Variations,
		Payments:       it.Payments,
		Documents:      it.Documents,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
		SignedAt:       stringToTime(it.SignedAt),
		TerminatedAt:   stringToTime(it.TerminatedAt),
	}
}

func timeToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339Nano)
	return &s
}

func stringToTime(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, *s)
	if err != nil {
		return nil
	}
	return &t
}
