package entities

import "time"

// WorkStatus is the persisted lifecycle enum of a job order.
//
// Domain notes:
//   - The job-order service is the source of truth for order/payment state.
//   - Display values shown to garage staff are derived by the status
//     normalizer; the enum and the free-text label can each be stale, so
//     nothing outside the normalizer should compare display strings.

type WorkStatus string

const (
	WorkStatusDraft      WorkStatus = "draft"
	WorkStatusOpen       WorkStatus = "open"
	WorkStatusInProgress WorkStatus = "in_progress"
	WorkStatusReady      WorkStatus = "ready"
	WorkStatusCompleted  WorkStatus = "completed"
	WorkStatusCancelled  WorkStatus = "cancelled"
)

// Terminal reports whether the work status admits no further stage transition.
func (s WorkStatus) Terminal() bool {
	return s == WorkStatusCompleted || s == WorkStatusCancelled
}

// PaymentStatus is the persisted payment enum. Like WorkStatus it may lag
// behind the monetary fields; derivation from amounts is the fallback.

type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// JobOrder is one vehicle-service engagement persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_number-index): order_number
//
// The whole aggregate (services, roadmap, documents, billing, exit permit) is
// written as a single item; nested collections are not separately normalized
// in the canonical write path.
//
// Monetary invariants, enforced on every write:
//   - NetAmount = TotalAmount - Discount
//   - BalanceDue = max(0, NetAmount - AmountPaid)
//   - Discount never exceeds the role discount ceiling.
type JobOrder struct {
	ID          string `json:"id"`
	OrderNumber string `json:"order_number"`
	OrderType   string `json:"order_type,omitempty"`
	CustomerRef string `json:"customer_ref,omitempty"`
	VehicleRef  string `json:"vehicle_ref,omitempty"`
	PlateNumber string `json:"plate_number,omitempty"`

	WorkStatus         WorkStatus    `json:"work_status"`
	WorkStatusLabel    string        `json:"work_status_label,omitempty"`
	PaymentStatus      PaymentStatus `json:"payment_status"`
	PaymentStatusLabel string        `json:"payment_status_label,omitempty"`

	TotalAmount   float64 `json:"total_amount"`
	Discount      float64 `json:"discount"`
	NetAmount     float64 `json:"net_amount"`
	AmountPaid    float64 `json:"amount_paid"`
	BalanceDue    float64 `json:"balance_due"`
	PaymentMethod string  `json:"payment_method,omitempty"`
	BillID        string  `json:"bill_id,omitempty"`

	Services  []ServiceLineItem `json:"services"`
	Roadmap   []RoadmapStep     `json:"roadmap"`
	Documents []string          `json:"documents,omitempty"`

	ExitPermit *ExitPermit `json:"exit_permit,omitempty"`

	CustomerNotes string `json:"customer_notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
