package entities

import "time"

// ServiceLineStatus is the per-item execution status.

type ServiceLineStatus string

const (
	ServiceLineStatusPending         ServiceLineStatus = "pending"
	ServiceLineStatusInProgress      ServiceLineStatus = "in_progress"
	ServiceLineStatusCompleted       ServiceLineStatus = "completed"
	ServiceLineStatusPostponed       ServiceLineStatus = "postponed"
	ServiceLineStatusCancelled       ServiceLineStatus = "cancelled"
	ServiceLineStatusPendingApproval ServiceLineStatus = "pending_approval"
)

// TerminalForExecution reports whether the item no longer blocks quality check.
func (s ServiceLineStatus) TerminalForExecution() bool {
	switch s {
	case ServiceLineStatusCompleted, ServiceLineStatusCancelled, ServiceLineStatusPostponed:
		return true
	}
	return false
}

// ServiceLineItem belongs to exactly one JobOrder.
//
// ID is stable: when the caller supplies none it is derived deterministically
// from name+position so it survives reordering of the slice.
type ServiceLineItem struct {
	ID           string            `json:"id"`
	DisplayOrder int               `json:"display_order"`
	Name         string            `json:"name"`
	Price        float64           `json:"price"`
	Status       ServiceLineStatus `json:"status"`
	AssignedTo   string            `json:"assigned_to,omitempty"`
	Technicians  []string          `json:"technicians,omitempty"`
	StartTime    *time.Time        `json:"start_time,omitempty"`
	EndTime      *time.Time        `json:"end_time,omitempty"`

	// Set while a postpone/cancel request is awaiting supervisory decision.
	RequestedAction string `json:"requested_action,omitempty"`
	ApprovalStatus  string `json:"approval_status,omitempty"`
}
