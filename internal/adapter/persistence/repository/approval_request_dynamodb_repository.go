package repository

import (
	"context"
	"errors"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultApprovalsTableName  = "approval_requests"
	approvalsJobOrderIDIndex   = "job_order_id-index"
	approvalsPendingStatusName = string(entities.ApprovalStatusPending)
)

type approvalRequestItem struct {
	ID            string `dynamodbav:"id"`
	JobOrderID    string `dynamodbav:"job_order_id"`
	ServiceLineID string `dynamodbav:"service_line_id"`

	ServiceName     string `dynamodbav:"service_name"`
	ServicePrice    string `dynamodbav:"service_price"`
	RequestedAction string `dynamodbav:"requested_action"`

	RequestedBy string `dynamodbav:"requested_by"`
	RequestedAt string `dynamodbav:"requested_at"`

	Status       string `dynamodbav:"status"`
	DecidedBy    string `dynamodbav:"decided_by,omitempty"`
	DecidedAt    string `dynamodbav:"decided_at,omitempty"`
	DecisionNote string `dynamodbav:"decision_note,omitempty"`
}

// ApprovalRequestDynamoRepository persists ApprovalRequest entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_order_id-index (PK: job_order_id)
//
// UpdateDecision is conditional on the request still being pending, making
// concurrent decisions race-safe at the storage layer.

type ApprovalRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IApprovalRequestRepository = (*ApprovalRequestDynamoRepository)(nil)

func NewApprovalRequestDynamoRepository(ddb *dynamodb.Client) *ApprovalRequestDynamoRepository {
	return &ApprovalRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("APPROVAL_REQUESTS_TABLE", defaultApprovalsTableName),
	}
}

func (r *ApprovalRequestDynamoRepository) Create(ctx context.Context, req entities.ApprovalRequest) (entities.ApprovalRequest, error) {
	it := toApprovalRequestItem(req)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ApprovalRequest{}, err
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
		return entities.ApprovalRequest{}, err
	}
	return req, nil
}

func (r *ApprovalRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.ApprovalRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ApprovalRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.ApprovalRequest{}, nil
	}

	var it approvalRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ApprovalRequest{}, err
	}
	return fromApprovalRequestItem(it), nil
}

func (r *ApprovalRequestDynamoRepository) ListByJobOrderID(ctx context.Context, jobOrderID string) ([]entities.ApprovalRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(approvalsJobOrderIDIndex),
		KeyConditionExpression: aws.String("job_order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: jobOrderID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalApprovalRequests(out.Items)
}

func (r *ApprovalRequestDynamoRepository) ListPending(ctx context.Context, limit int) ([]entities.ApprovalRequest, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	requests := make([]entities.ApprovalRequest, 0)
	var lastKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#status = :pending"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pending": &types.AttributeValueMemberS{Value: approvalsPendingStatusName},
			},
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}
		batch, err := unmarshalApprovalRequests(out.Items)
		if err != nil {
			return nil, err
		}
		for _, req := range batch {
			requests = append(requests, req)
			if limit > 0 && len(requests) >= limit {
				return requests, nil
			}
		}
		if len(out.LastEvaluatedKey) == 0 {
			return requests, nil
		}
		lastKey = out.LastEvaluatedKey
	}
}

func (r *ApprovalRequestDynamoRepository) UpdateDecision(ctx context.Context, id string, status entities.ApprovalStatus, decidedBy, note string, decidedAt time.Time) (entities.ApprovalRequest, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :status, #decided_by = :decided_by, #decided_at = :decided_at, #decision_note = :decision_note"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":       &types.AttributeValueMemberS{Value: approvalsPendingStatusName},
			":status":        &types.AttributeValueMemberS{Value: string(status)},
			":decided_by":    &types.AttributeValueMemberS{Value: decidedBy},
			":decided_at":    &types.AttributeValueMemberS{Value: decidedAt.UTC().Format(time.RFC3339Nano)},
			":decision_note": &types.AttributeValueMemberS{Value: note},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":        "status",
			"#decided_by":    "decided_by",
			"#decided_at":    "decided_at",
			"#decision_note": "decision_note",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ApprovalRequest{}, nil
		}
		return entities.ApprovalRequest{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ApprovalRequest{}, nil
	}
	var it approvalRequestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ApprovalRequest{}, err
	}
	return fromApprovalRequestItem(it), nil
}

func unmarshalApprovalRequests(raw []map[string]types.AttributeValue) ([]entities.ApprovalRequest, error) {
	requests := make([]entities.ApprovalRequest, 0, len(raw))
	for _, item := range raw {
		var it approvalRequestItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		requests = append(requests, fromApprovalRequestItem(it))
	}
	return requests, nil
}

func toApprovalRequestItem(req entities.ApprovalRequest) approvalRequestItem {
	return approvalRequestItem{
		ID:              req.ID,
		JobOrderID:      req.JobOrderID,
		ServiceLineID:   req.ServiceLineID,
		ServiceName:     req.ServiceName,
		ServicePrice:    floatToString(req.ServicePrice),
		RequestedAction: req.RequestedAction,
		RequestedBy:     req.RequestedBy,
		RequestedAt:     req.RequestedAt.UTC().Format(time.RFC3339Nano),
		Status:          string(req.Status),
		DecidedBy:       req.DecidedBy,
		DecidedAt:       formatTimePtr(req.DecidedAt),
		DecisionNote:    req.DecisionNote,
	}
}

func fromApprovalRequestItem(it approvalRequestItem) entities.ApprovalRequest {
	requestedAt, _ := time.Parse(time.RFC3339Nano, it.RequestedAt)
	return entities.ApprovalRequest{
		ID:              it.ID,
		JobOrderID:      it.JobOrderID,
		ServiceLineID:   it.ServiceLineID,
		ServiceName:     it.ServiceName,
		ServicePrice:    stringToFloat(it.ServicePrice),
		RequestedAction: it.RequestedAction,
		RequestedBy:     it.RequestedBy,
		RequestedAt:     requestedAt,
		Status:          entities.ApprovalStatus(it.Status),
		DecidedBy:       it.DecidedBy,
		DecidedAt:       parseTimePtr(it.DecidedAt),
		DecisionNote:    it.DecisionNote,
	}
}
