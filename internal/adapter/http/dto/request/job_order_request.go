package request

import (
	"strings"
	"time"

	"oficina_xpto/internal/domain/entities"
)

type ServiceLineRequest struct {
	ID          string     `json:"id"`
	Name        string     `json:"name" binding:"required"`
	Price       float64    `json:"price"`
	Status      string     `json:"status"`
	AssignedTo  string     `json:"assigned_to"`
	Technicians []string   `json:"technicians"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
}

type RoadmapStepRequest struct {
	Stage            string     `json:"stage" binding:"required"`
	Status           string     `json:"status"`
	StartedAt        *time.Time `json:"started_at"`
	EndedAt          *time.Time `json:"ended_at"`
	ResponsibleActor string     `json:"responsible_actor"`
}

// BillingRequest is the nested money block. Net amount is recomputed from
// total and discount on the way out, so only the inputs are accepted here.
type BillingRequest struct {
	TotalAmount   float64 `json:"total_amount"`
	Discount      float64 `json:"discount"`
	PaymentMethod string  `json:"payment_method"`
	BillID        string  `json:"bill_id"`
}

// JobOrderUpsertRequest is the full-aggregate payload: the same body creates
// and updates. Presence of `id` decides which. Money may arrive either as the
// flattened top-level fields or as the nested `billing` block; the block wins
// when both are present.
type JobOrderUpsertRequest struct {
	ID              string               `json:"id"`
	OrderNumber     string               `json:"order_number" binding:"required"`
	OrderType       string               `json:"order_type"`
	CustomerRef     string               `json:"customer_ref"`
	VehicleRef      string               `json:"vehicle_ref"`
	PlateNumber     string               `json:"plate_number"`
	WorkStatus      string               `json:"work_status"`
	WorkStatusLabel string               `json:"work_status_label"`
	TotalAmount     float64              `json:"total_amount"`
	Discount        float64              `json:"discount"`
	PaymentMethod   string               `json:"payment_method"`
	Billing         *BillingRequest      `json:"billing"`
	CustomerNotes   string               `json:"customer_notes"`
	Services        []ServiceLineRequest `json:"services" binding:"required"`
	Roadmap         []RoadmapStepRequest `json:"roadmap"`
	Documents       []string             `json:"documents"`
}

func (r JobOrderUpsertRequest) ToEntity() entities.JobOrder {
	services := make([]entities.ServiceLineItem, 0, len(r.Services))
	for _, s := range r.Services {
		services = append(services, entities.ServiceLineItem{
			ID:          strings.TrimSpace(s.ID),
			Name:        s.Name,
			Price:       s.Price,
			Status:      entities.ServiceLineStatus(strings.ToLower(strings.TrimSpace(s.Status))),
			AssignedTo:  strings.TrimSpace(s.AssignedTo),
			Technicians: s.Technicians,
			StartTime:   s.StartTime,
			EndTime:     s.EndTime,
		})
	}

	var steps []entities.RoadmapStep
	for _, s := range r.Roadmap {
		steps = append(steps, entities.RoadmapStep{
			Stage:            strings.TrimSpace(s.Stage),
			Status:           entities.StepStatus(strings.ToLower(strings.TrimSpace(s.Status))),
			StartedAt:        s.StartedAt,
			EndedAt:          s.EndedAt,
			ResponsibleActor: strings.TrimSpace(s.ResponsibleActor),
		})
	}

	totalAmount := r.TotalAmount
	discount := r.Discount
	paymentMethod := r.PaymentMethod
	billID := ""
	if r.Billing != nil {
		totalAmount = r.Billing.TotalAmount
		discount = r.Billing.Discount
		paymentMethod = r.Billing.PaymentMethod
		billID = r.Billing.BillID
	}

	return entities.JobOrder{
		ID:              strings.TrimSpace(r.ID),
		OrderNumber:     r.OrderNumber,
		OrderType:       strings.TrimSpace(r.OrderType),
		CustomerRef:     strings.TrimSpace(r.CustomerRef),
		VehicleRef:      strings.TrimSpace(r.VehicleRef),
		PlateNumber:     strings.TrimSpace(r.PlateNumber),
		WorkStatus:      entities.WorkStatus(strings.ToLower(strings.TrimSpace(r.WorkStatus))),
		WorkStatusLabel: strings.TrimSpace(r.WorkStatusLabel),
		TotalAmount:     totalAmount,
		Discount:        discount,
		PaymentMethod:   strings.TrimSpace(paymentMethod),
		BillID:          strings.TrimSpace(billID),
		CustomerNotes:   r.CustomerNotes,
		Services:        services,
		Roadmap:         steps,
		Documents:       r.Documents,
	}
}

type AdvanceStageRequest struct {
	Stage string `json:"stage" binding:"required"`
	Actor string `json:"actor"`
}

type QualityDecisionRequest struct {
	Approve *bool  `json:"approve" binding:"required"`
	Actor   string `json:"actor"`
}

type CancelOrderRequest struct {
	Actor string `json:"actor"`
}
