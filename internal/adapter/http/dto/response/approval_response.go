package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
)

type ApprovalRequestResponse struct {
	ID            string `json:"id"`
	JobOrderID    string `json:"job_order_id"`
	ServiceLineID string `json:"service_line_id"`

	ServiceName     string  `json:"service_name"`
	ServicePrice    float64 `json:"service_price"`
	RequestedAction string  `json:"requested_action"`

	RequestedBy string    `json:"requested_by"`
	RequestedAt time.Time `json:"requested_at"`

	Status       string     `json:"status"`
	DecidedBy    string     `json:"decided_by,omitempty"`
	DecidedAt    *time.Time `json:"decided_at,omitempty"`
	DecisionNote string     `json:"decision_note,omitempty"`
}

func FromApprovalRequest(r entities.ApprovalRequest) ApprovalRequestResponse {
	return ApprovalRequestResponse{
		ID:              r.ID,
		JobOrderID:      r.JobOrderID,
		ServiceLineID:   r.ServiceLineID,
		ServiceName:     r.ServiceName,
		ServicePrice:    r.ServicePrice,
		RequestedAction: r.RequestedAction,
		RequestedBy:     r.RequestedBy,
		RequestedAt:     r.RequestedAt,
		Status:          string(r.Status),
		DecidedBy:       r.DecidedBy,
		DecidedAt:       r.DecidedAt,
		DecisionNote:    r.DecisionNote,
	}
}

func FromApprovalRequests(requests []entities.ApprovalRequest) []ApprovalRequestResponse {
	out := make([]ApprovalRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, FromApprovalRequest(r))
	}
	return out
}
