package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
)

type PaymentRecordResponse struct {
	ID         string    `json:"id"`
	JobOrderID string    `json:"job_order_id"`
	Amount     float64   `json:"amount"`
	Method     string    `json:"method"`
	Reference  string    `json:"reference,omitempty"`
	PaidAt     time.Time `json:"paid_at"`
	RecordedBy string    `json:"recorded_by,omitempty"`
}

func FromPaymentRecord(p entities.PaymentRecord) PaymentRecordResponse {
	return PaymentRecordResponse{
		ID:         p.ID,
		JobOrderID: p.JobOrderID,
		Amount:     p.Amount,
		Method:     p.Method,
		Reference:  p.Reference,
		PaidAt:     p.PaidAt,
		RecordedBy: p.RecordedBy,
	}
}

func FromPaymentRecords(records []entities.PaymentRecord) []PaymentRecordResponse {
	out := make([]PaymentRecordResponse, 0, len(records))
	for _, p := range records {
		out = append(out, FromPaymentRecord(p))
	}
	return out
}
