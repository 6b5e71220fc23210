package repository

import (
	"context"
	"strings"
	"time"

	"oficina_xpto/internal/domain/billing"
	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/domain/status"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultJobOrdersTableName = "job_orders"
	jobOrdersOrderNumberIndex = "order_number-index"

	// Listings without an explicit limit are capped here.
	defaultListLimit = 100
)

type serviceLineItemRecord struct {
	ID              string   `dynamodbav:"id"`
	DisplayOrder    int      `dynamodbav:"display_order"`
	Name            string   `dynamodbav:"name"`
	Price           string   `dynamodbav:"price"`
	Status          string   `dynamodbav:"status"`
	AssignedTo      string   `dynamodbav:"assigned_to,omitempty"`
	Technicians     []string `dynamodbav:"technicians,omitempty"`
	StartTime       string   `dynamodbav:"start_time,omitempty"`
	EndTime         string   `dynamodbav:"end_time,omitempty"`
	RequestedAction string   `dynamodbav:"requested_action,omitempty"`
	ApprovalStatus  string   `dynamodbav:"approval_status,omitempty"`
}

type roadmapStepRecord struct {
	Stage            string `dynamodbav:"stage"`
	Status           string `dynamodbav:"status"`
	StartedAt        string `dynamodbav:"started_at,omitempty"`
	EndedAt          string `dynamodbav:"ended_at,omitempty"`
	ResponsibleActor string `dynamodbav:"responsible_actor,omitempty"`
}

type exitPermitRecord struct {
	PermitID          string `dynamodbav:"permit_id"`
	CollectedByName   string `dynamodbav:"collected_by_name"`
	CollectedByMobile string `dynamodbav:"collected_by_mobile,omitempty"`
	NextServiceDate   string `dynamodbav:"next_service_date,omitempty"`
	IssuedBy          string `dynamodbav:"issued_by,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
}

type jobOrderItem struct {
	ID          string `dynamodbav:"id"`
	OrderNumber string `dynamodbav:"order_number"`
	OrderType   string `dynamodbav:"order_type,omitempty"`
	CustomerRef string `dynamodbav:"customer_ref,omitempty"`
	VehicleRef  string `dynamodbav:"vehicle_ref,omitempty"`
	PlateNumber string `dynamodbav:"plate_number,omitempty"`

	WorkStatus         string `dynamodbav:"work_status"`
	WorkStatusLabel    string `dynamodbav:"work_status_label,omitempty"`
	PaymentStatus      string `dynamodbav:"payment_status"`
	PaymentStatusLabel string `dynamodbav:"payment_status_label,omitempty"`

	TotalAmount   string `dynamodbav:"total_amount"`
	Discount      string `dynamodbav:"discount"`
	NetAmount     string `dynamodbav:"net_amount"`
	AmountPaid    string `dynamodbav:"amount_paid"`
	BalanceDue    string `dynamodbav:"balance_due"`
	PaymentMethod string `dynamodbav:"payment_method,omitempty"`
	BillID        string `dynamodbav:"bill_id,omitempty"`

	Services  []serviceLineItemRecord `dynamodbav:"services"`
	Roadmap   []roadmapStepRecord     `dynamodbav:"roadmap"`
	Documents []string                `dynamodbav:"documents,omitempty"`

	ExitPermit *exitPermitRecord `dynamodbav:"exit_permit,omitempty"`

	CustomerNotes string `dynamodbav:"customer_notes,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// JobOrderDynamoRepository persists JobOrder aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_number-index (PK: order_number)
//
// The whole aggregate is written as one item. Monetary fields are stored as
// strings so no float drift sneaks in through the wire encoding.

type JobOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobOrderRepository = (*JobOrderDynamoRepository)(nil)

func NewJobOrderDynamoRepository(ddb *dynamodb.Client) *JobOrderDynamoRepository {
	return &JobOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOB_ORDERS_TABLE", defaultJobOrdersTableName),
	}
}

// Upsert writes the full aggregate after re-applying the monetary invariants.
// Stored legacy data is healed here: an out-of-ceiling discount is clamped,
// never rejected, and a missing enum is recovered from the display label.
func (r *JobOrderDynamoRepository) Upsert(ctx context.Context, o entities.JobOrder) (entities.JobOrder, error) {
	if o.WorkStatus == "" && o.WorkStatusLabel != "" {
		o.WorkStatus = status.WorkStatusFromDisplay(o.WorkStatusLabel)
	}
	billing.ApplyInvariants(&o, 100)

	it := toJobOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.JobOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.JobOrder{}, err
	}
	return o, nil
}

func (r *JobOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.JobOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.JobOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.JobOrder{}, nil
	}

	var it jobOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.JobOrder{}, err
	}
	return fromJobOrderItem(it), nil
}

// GetByOrderNumber resolves the human order number through progressively
// wider lookups: GSI query, exact filtered scan, direct id get, then a
// case-insensitive scan. Old records predate the index and some were keyed
// by the order number itself, so each fallback still earns its keep.
func (r *JobOrderDynamoRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (entities.JobOrder, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return entities.JobOrder{}, nil
	}

	if o, err := r.queryByOrderNumber(ctx, orderNumber); err == nil && o.ID != "" {
		return o, nil
	}

	if o, err := r.scanByOrderNumber(ctx, orderNumber); err != nil || o.ID != "" {
		return o, err
	}

	if o, err := r.GetByID(ctx, orderNumber); err != nil || o.ID != "" {
		return o, err
	}

	return r.scanByOrderNumberFold(ctx, orderNumber)
}

func (r *JobOrderDynamoRepository) queryByOrderNumber(ctx context.Context, orderNumber string) (entities.JobOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(jobOrdersOrderNumberIndex),
		KeyConditionExpression: aws.String("order_number = :on"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":on": &types.AttributeValueMemberS{Value: orderNumber},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.JobOrder{}, err
	}
	if len(out.Items) == 0 {
		return entities.JobOrder{}, nil
	}
	var it jobOrderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.JobOrder{}, err
	}
	return fromJobOrderItem(it), nil
}

func (r *JobOrderDynamoRepository) scanByOrderNumber(ctx context.Context, orderNumber string) (entities.JobOrder, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("order_number = :on"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":on": &types.AttributeValueMemberS{Value: orderNumber},
		},
	})
	if err != nil {
		return entities.JobOrder{}, err
	}
	if len(out.Items) == 0 {
		return entities.JobOrder{}, nil
	}
	var it jobOrderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.JobOrder{}, err
	}
	return fromJobOrderItem(it), nil
}

func (r *JobOrderDynamoRepository) scanByOrderNumberFold(ctx context.Context, orderNumber string) (entities.JobOrder, error) {
	var lastKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return entities.JobOrder{}, err
		}
		for _, raw := range out.Items {
			var it jobOrderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return entities.JobOrder{}, err
			}
			if strings.EqualFold(strings.TrimSpace(it.OrderNumber), orderNumber) {
				return fromJobOrderItem(it), nil
			}
		}
		if len(out.LastEvaluatedKey) == 0 {
			return entities.JobOrder{}, nil
		}
		lastKey = out.LastEvaluatedKey
	}
}

func (r *JobOrderDynamoRepository) ListByStatusClass(ctx context.Context, workStatus entities.WorkStatus, limit int) ([]entities.JobOrder, error) {
	in := &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("work_status = :ws"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ws": &types.AttributeValueMemberS{Value: string(workStatus)},
		},
	}
	return r.scanOrders(ctx, in, limit)
}

func (r *JobOrderDynamoRepository) ListByPlateNumber(ctx context.Context, plateNumber string, limit int) ([]entities.JobOrder, error) {
	in := &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("plate_number = :pn"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pn": &types.AttributeValueMemberS{Value: strings.TrimSpace(plateNumber)},
		},
	}
	return r.scanOrders(ctx, in, limit)
}

func (r *JobOrderDynamoRepository) scanOrders(ctx context.Context, in *dynamodb.ScanInput, limit int) ([]entities.JobOrder, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	orders := make([]entities.JobOrder, 0)
	var lastKey map[string]types.AttributeValue
	for {
		in.ExclusiveStartKey = lastKey
		out, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it jobOrderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromJobOrderItem(it))
			if limit > 0 && len(orders) >= limit {
				return orders, nil
			}
		}
		if len(out.LastEvaluatedKey) == 0 {
			return orders, nil
		}
		lastKey = out.LastEvaluatedKey
	}
}

func toJobOrderItem(o entities.JobOrder) jobOrderItem {
	services := make([]serviceLineItemRecord, 0, len(o.Services))
	for _, s := range o.Services {
		services = append(services, serviceLineItemRecord{
			ID:              s.ID,
			DisplayOrder:    s.DisplayOrder,
			Name:            s.Name,
			Price:           floatToString(s.Price),
			Status:          string(s.Status),
			AssignedTo:      s.AssignedTo,
			Technicians:     s.Technicians,
			StartTime:       formatTimePtr(s.StartTime),
			EndTime:         formatTimePtr(s.EndTime),
			RequestedAction: s.RequestedAction,
			ApprovalStatus:  s.ApprovalStatus,
		})
	}

	roadmap := make([]roadmapStepRecord, 0, len(o.Roadmap))
	for _, s := range o.Roadmap {
		roadmap = append(roadmap, roadmapStepRecord{
			Stage:            s.Stage,
			Status:           string(s.Status),
			StartedAt:        formatTimePtr(s.StartedAt),
			EndedAt:          formatTimePtr(s.EndedAt),
			ResponsibleActor: s.ResponsibleActor,
		})
	}

	var permit *exitPermitRecord
	if o.ExitPermit != nil {
		permit = &exitPermitRecord{
			PermitID:          o.ExitPermit.PermitID,
			CollectedByName:   o.ExitPermit.CollectedByName,
			CollectedByMobile: o.ExitPermit.CollectedByMobile,
			NextServiceDate:   formatTimePtr(o.ExitPermit.NextServiceDate),
			IssuedBy:          o.ExitPermit.IssuedBy,
			CreatedAt:         o.ExitPermit.CreatedAt.UTC().Format(time.RFC3339Nano),
		}
	}

	return jobOrderItem{
		ID:                 o.ID,
		OrderNumber:        o.OrderNumber,
		OrderType:          o.OrderType,
		CustomerRef:        o.CustomerRef,
		VehicleRef:         o.VehicleRef,
		PlateNumber:        o.PlateNumber,
		WorkStatus:         string(o.WorkStatus),
		WorkStatusLabel:    o.WorkStatusLabel,
		PaymentStatus:      string(o.PaymentStatus),
		PaymentStatusLabel: o.PaymentStatusLabel,
		TotalAmount:        floatToString(o.TotalAmount),
		Discount:           floatToString(o.Discount),
		NetAmount:          floatToString(o.NetAmount),
		AmountPaid:         floatToString(o.AmountPaid),
		BalanceDue:         floatToString(o.BalanceDue),
		PaymentMethod:      o.PaymentMethod,
		BillID:             o.BillID,
		Services:           services,
		Roadmap:            roadmap,
		Documents:          o.Documents,
		ExitPermit:         permit,
		CustomerNotes:      o.CustomerNotes,
		CreatedAt:          o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// fromJobOrderItem goes through the RawRecord normalization boundary so every
// read applies the same defensive defaults, whatever schema generation wrote
// the item.
func fromJobOrderItem(it jobOrderItem) entities.JobOrder {
	raw := status.RawRecord{
		ID:          &it.ID,
		OrderNumber: &it.OrderNumber,
		OrderType:   &it.OrderType,
		CustomerRef: &it.CustomerRef,
		VehicleRef:  &it.VehicleRef,
		PlateNumber: &it.PlateNumber,

		WorkStatus:         &it.WorkStatus,
		WorkStatusLabel:    &it.WorkStatusLabel,
		PaymentStatus:      &it.PaymentStatus,
		PaymentStatusLabel: &it.PaymentStatusLabel,

		TotalAmount: floatPtr(it.TotalAmount),
		Discount:    floatPtr(it.Discount),
		NetAmount:   floatPtr(it.NetAmount),
		AmountPaid:  floatPtr(it.AmountPaid),
		BalanceDue:  floatPtr(it.BalanceDue),

		PaymentMethod: &it.PaymentMethod,
		BillID:        &it.BillID,
		Documents:     it.Documents,
		CustomerNotes: &it.CustomerNotes,

		CreatedAt: parseTimePtr(it.CreatedAt),
		UpdatedAt: parseTimePtr(it.UpdatedAt),
	}

	for i := range it.Services {
		s := &it.Services[i]
		raw.Services = append(raw.Services, status.RawServiceLine{
			ID:              &s.ID,
			DisplayOrder:    &s.DisplayOrder,
			Name:            &s.Name,
			Price:           floatPtr(s.Price),
			Status:          &s.Status,
			AssignedTo:      &s.AssignedTo,
			Technicians:     s.Technicians,
			StartTime:       parseTimePtr(s.StartTime),
			EndTime:         parseTimePtr(s.EndTime),
			RequestedAction: &s.RequestedAction,
			ApprovalStatus:  &s.ApprovalStatus,
		})
	}

	for i := range it.Roadmap {
		s := &it.Roadmap[i]
		raw.Roadmap = append(raw.Roadmap, status.RawRoadmapStep{
			Stage:            &s.Stage,
			Status:           &s.Status,
			StartedAt:        parseTimePtr(s.StartedAt),
			EndedAt:          parseTimePtr(s.EndedAt),
			ResponsibleActor: &s.ResponsibleActor,
		})
	}

	if it.ExitPermit != nil {
		createdAt, _ := time.Parse(time.RFC3339Nano, it.ExitPermit.CreatedAt)
		raw.ExitPermit = &entities.ExitPermit{
			PermitID:          it.ExitPermit.PermitID,
			CollectedByName:   it.ExitPermit.CollectedByName,
			CollectedByMobile: it.ExitPermit.CollectedByMobile,
			NextServiceDate:   parseTimePtr(it.ExitPermit.NextServiceDate),
			IssuedBy:          it.ExitPermit.IssuedBy,
			CreatedAt:         createdAt,
		}
	}

	return raw.Normalize()
}

func floatPtr(s string) *float64 {
	v := stringToFloat(s)
	return &v
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}
