package entities

import "time"

// ApprovalStatus is the state of a supervisory approval request.

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// ApprovalRequest gates a disruptive service-line change (postpone/cancel)
// or the addition of a new costed line behind a supervisory decision.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_order_id-index): job_order_id
//
// ServiceName/ServicePrice snapshot the line at request time. Once decided,
// only the decision fields ever change.
type ApprovalRequest struct {
	ID            string `json:"id"`
	JobOrderID    string `json:"job_order_id"`
	ServiceLineID string `json:"service_line_id"`

	ServiceName     string  `json:"service_name"`
	ServicePrice    float64 `json:"service_price"`
	RequestedAction string  `json:"requested_action"`

	RequestedBy string    `json:"requested_by"`
	RequestedAt time.Time `json:"requested_at"`

	Status       ApprovalStatus `json:"status"`
	DecidedBy    string         `json:"decided_by,omitempty"`
	DecidedAt    *time.Time     `json:"decided_at,omitempty"`
	DecisionNote string         `json:"decision_note,omitempty"`
}
