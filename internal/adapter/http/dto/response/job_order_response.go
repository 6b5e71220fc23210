package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/domain/status"
)

type ServiceLineResponse struct {
	ID              string     `json:"id"`
	DisplayOrder    int        `json:"display_order"`
	Name            string     `json:"name"`
	Price           float64    `json:"price"`
	Status          string     `json:"status"`
	AssignedTo      string     `json:"assigned_to,omitempty"`
	Technicians     []string   `json:"technicians,omitempty"`
	StartTime       *time.Time `json:"start_time,omitempty"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	RequestedAction string     `json:"requested_action,omitempty"`
	ApprovalStatus  string     `json:"approval_status,omitempty"`
}

type RoadmapStepResponse struct {
	Stage            string     `json:"stage"`
	Status           string     `json:"status"`
	StartedAt        *time.Time `json:"started_at,omitempty"`
	EndedAt          *time.Time `json:"ended_at,omitempty"`
	ResponsibleActor string     `json:"responsible_actor,omitempty"`
}

type ExitPermitResponse struct {
	PermitID          string     `json:"permit_id"`
	CollectedByName   string     `json:"collected_by_name"`
	CollectedByMobile string     `json:"collected_by_mobile,omitempty"`
	NextServiceDate   *time.Time `json:"next_service_date,omitempty"`
	IssuedBy          string     `json:"issued_by,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// JobOrderResponse is the read model. WorkStatus and PaymentStatus are the
// normalized display values; the raw persisted enum rides along for clients
// that filter on it.
type JobOrderResponse struct {
	ID          string `json:"id"`
	OrderNumber string `json:"order_number"`
	OrderType   string `json:"order_type,omitempty"`
	CustomerRef string `json:"customer_ref,omitempty"`
	VehicleRef  string `json:"vehicle_ref,omitempty"`
	PlateNumber string `json:"plate_number,omitempty"`

	WorkStatus        string `json:"work_status"`
	WorkStatusEnum    string `json:"work_status_enum"`
	PaymentStatus     string `json:"payment_status"`
	PaymentStatusEnum string `json:"payment_status_enum"`

	TotalAmount   float64 `json:"total_amount"`
	Discount      float64 `json:"discount"`
	NetAmount     float64 `json:"net_amount"`
	AmountPaid    float64 `json:"amount_paid"`
	BalanceDue    float64 `json:"balance_due"`
	PaymentMethod string  `json:"payment_method,omitempty"`

	Services  []ServiceLineResponse `json:"services"`
	Roadmap   []RoadmapStepResponse `json:"roadmap"`
	Documents []string              `json:"documents,omitempty"`

	ExitPermit *ExitPermitResponse `json:"exit_permit,omitempty"`

	ActorNames map[string]string `json:"actor_names,omitempty"`

	CustomerNotes string    `json:"customer_notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromJobOrder(o entities.JobOrder, actorNames map[string]string) JobOrderResponse {
	services := make([]ServiceLineResponse, 0, len(o.Services))
	for _, s := range o.Services {
		services = append(services, ServiceLineResponse{
			ID:              s.ID,
			DisplayOrder:    s.DisplayOrder,
			Name:            s.Name,
			Price:           s.Price,
			Status:          string(s.Status),
			AssignedTo:      s.AssignedTo,
			Technicians:     s.Technicians,
			StartTime:       s.StartTime,
			EndTime:         s.EndTime,
			RequestedAction: s.RequestedAction,
			ApprovalStatus:  s.ApprovalStatus,
		})
	}

	roadmap := make([]RoadmapStepResponse, 0, len(o.Roadmap))
	for _, s := range o.Roadmap {
		roadmap = append(roadmap, RoadmapStepResponse{
			Stage:            s.Stage,
			Status:           string(s.Status),
			StartedAt:        s.StartedAt,
			EndedAt:          s.EndedAt,
			ResponsibleActor: s.ResponsibleActor,
		})
	}

	var permit *ExitPermitResponse
	if o.ExitPermit != nil {
		permit = &ExitPermitResponse{
			PermitID:          o.ExitPermit.PermitID,
			CollectedByName:   o.ExitPermit.CollectedByName,
			CollectedByMobile: o.ExitPermit.CollectedByMobile,
			NextServiceDate:   o.ExitPermit.NextServiceDate,
			IssuedBy:          o.ExitPermit.IssuedBy,
			CreatedAt:         o.ExitPermit.CreatedAt,
		}
	}

	return JobOrderResponse{
		ID:             o.ID,
		OrderNumber:    o.OrderNumber,
		OrderType:      o.OrderType,
		CustomerRef:    o.CustomerRef,
		VehicleRef:     o.VehicleRef,
		PlateNumber:    o.PlateNumber,
		WorkStatus:     status.DeriveWorkStatus(o.WorkStatus, o.WorkStatusLabel),
		WorkStatusEnum: string(o.WorkStatus),
		PaymentStatus: status.DerivePaymentStatus(o.PaymentStatus, o.PaymentStatusLabel, status.Totals{
			Total:   o.NetAmount,
			Paid:    o.AmountPaid,
			Balance: o.BalanceDue,
		}),
		PaymentStatusEnum: string(o.PaymentStatus),
		TotalAmount:       o.TotalAmount,
		Discount:          o.Discount,
		NetAmount:         o.NetAmount,
		AmountPaid:        o.AmountPaid,
		BalanceDue:        o.BalanceDue,
		PaymentMethod:     o.PaymentMethod,
		Services:          services,
		Roadmap:           roadmap,
		Documents:         o.Documents,
		ExitPermit:        permit,
		ActorNames:        actorNames,
		CustomerNotes:     o.CustomerNotes,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

func FromJobOrders(orders []entities.JobOrder) []JobOrderResponse {
	out := make([]JobOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromJobOrder(o, nil))
	}
	return out
}
