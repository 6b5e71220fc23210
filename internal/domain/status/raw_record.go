package status

import (
	"strings"
	"time"

	"oficina_xpto/internal/domain/entities"
)

// RawRecord is a job-order record as it may come back from the store: every
// field optional, shapes accumulated over several schema generations. It is
// converted to a JobOrder exactly once, here, with defensive defaults.
type RawRecord struct {
	ID          *string
	OrderNumber *string
	OrderType   *string
	CustomerRef *string
	VehicleRef  *string
	PlateNumber *string

	WorkStatus         *string
	WorkStatusLabel    *string
	PaymentStatus      *string
	PaymentStatusLabel *string

	TotalAmount   *float64
	Discount      *float64
	NetAmount     *float64
	AmountPaid    *float64
	BalanceDue    *float64
	PaymentMethod *string
	BillID        *string

	Services  []RawServiceLine
	Roadmap   []RawRoadmapStep
	Documents []string

	ExitPermit *entities.ExitPermit

	CustomerNotes *string

	CreatedAt *time.Time
	UpdatedAt *time.Time
}

type RawServiceLine struct {
	ID              *string
	DisplayOrder    *int
	Name            *string
	Price           *float64
	Status          *string
	AssignedTo      *string
	Technicians     []string
	StartTime       *time.Time
	EndTime         *time.Time
	RequestedAction *string
	ApprovalStatus  *string
}

type RawRoadmapStep struct {
	Stage            *string
	Status           *string
	StartedAt        *time.Time
	EndedAt          *time.Time
	ResponsibleActor *string
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

func num(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// Normalize reconstitutes a JobOrder from a raw record, applying the same
// fallback defaults everywhere: missing enums default through the display
// derivations, missing line statuses default to pending, and absent money
// fields default to zero (the billing ledger re-derives net/balance).
func (r RawRecord) Normalize() entities.JobOrder {
	o := entities.JobOrder{
		ID:          str(r.ID),
		OrderNumber: str(r.OrderNumber),
		OrderType:   str(r.OrderType),
		CustomerRef: str(r.CustomerRef),
		VehicleRef:  str(r.VehicleRef),
		PlateNumber: str(r.PlateNumber),

		WorkStatus:         entities.WorkStatus(str(r.WorkStatus)),
		WorkStatusLabel:    str(r.WorkStatusLabel),
		PaymentStatus:      entities.PaymentStatus(str(r.PaymentStatus)),
		PaymentStatusLabel: str(r.PaymentStatusLabel),

		TotalAmount:   num(r.TotalAmount),
		Discount:      num(r.Discount),
		NetAmount:     num(r.NetAmount),
		AmountPaid:    num(r.AmountPaid),
		BalanceDue:    num(r.BalanceDue),
		PaymentMethod: str(r.PaymentMethod),
		BillID:        str(r.BillID),

		Documents:     r.Documents,
		ExitPermit:    r.ExitPermit,
		CustomerNotes: str(r.CustomerNotes),
	}

	if o.WorkStatus == "" {
		o.WorkStatus = WorkStatusFromDisplay(o.WorkStatusLabel)
	}

	if r.CreatedAt != nil {
		o.CreatedAt = *r.CreatedAt
	}
	if r.UpdatedAt != nil {
		o.UpdatedAt = *r.UpdatedAt
	}

	o.Services = make([]entities.ServiceLineItem, 0, len(r.Services))
	for i, s := range r.Services {
		line := entities.ServiceLineItem{
			ID:              str(s.ID),
			DisplayOrder:    i,
			Name:            str(s.Name),
			Price:           num(s.Price),
			Status:          entities.ServiceLineStatus(str(s.Status)),
			AssignedTo:      str(s.AssignedTo),
			Technicians:     s.Technicians,
			StartTime:       s.StartTime,
			EndTime:         s.EndTime,
			RequestedAction: str(s.RequestedAction),
			ApprovalStatus:  str(s.ApprovalStatus),
		}
		if s.DisplayOrder != nil {
			line.DisplayOrder = *s.DisplayOrder
		}
		if line.Status == "" {
			line.Status = entities.ServiceLineStatusPending
		}
		o.Services = append(o.Services, line)
	}

	o.Roadmap = make([]entities.RoadmapStep, 0, len(r.Roadmap))
	for _, s := range r.Roadmap {
		step := entities.RoadmapStep{
			Stage:            str(s.Stage),
			Status:           entities.StepStatus(str(s.Status)),
			StartedAt:        s.StartedAt,
			EndedAt:          s.EndedAt,
			ResponsibleActor: str(s.ResponsibleActor),
		}
		if step.Status == "" {
			step.Status = entities.StepStatusUpcoming
		}
		o.Roadmap = append(o.Roadmap, step)
	}

	return o
}
