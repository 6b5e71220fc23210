package entities

import "time"

// PaymentRecord is one append-only ledger entry for a JobOrder.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_order_id-index): job_order_id
//
// Refunds consume existing records newest-first (reduce or delete); a record
// never carries a negative amount.
type PaymentRecord struct {
	ID         string    `json:"id"`
	JobOrderID string    `json:"job_order_id"`
	Amount     float64   `json:"amount"`
	Method     string    `json:"method"`
	Reference  string    `json:"reference,omitempty"`
	PaidAt     time.Time `json:"paid_at"`
	RecordedBy string    `json:"recorded_by,omitempty"`
}
