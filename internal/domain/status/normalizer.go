// Package status derives canonical display statuses from partially-populated,
// sometimes-stale persisted fields. It is the single normalization boundary:
// raw store records pass through here before any other component sees them,
// so field optionality never leaks further up.
package status

import (
	"strings"

	"oficina_xpto/internal/domain/entities"
)

// EpsilonCurrency guards float noise when comparing monetary amounts.
const EpsilonCurrency = 0.01

// Canonical work-status display values.
const (
	WorkNewRequest = "New Request"
	WorkInprogress = "Inprogress"
	WorkReady      = "Ready"
	WorkCompleted  = "Completed"
	WorkCancelled  = "Cancelled"
	WorkDraft      = "Draft"
)

// Canonical payment-status display values.
const (
	PaymentFullyPaid     = "Fully Paid"
	PaymentPartiallyPaid = "Partially Paid"
	PaymentUnpaid        = "Unpaid"
	PaymentFullyRefunded = "Fully Refunded"
)

var workStatusDisplay = map[entities.WorkStatus]string{
	entities.WorkStatusOpen:       WorkNewRequest,
	entities.WorkStatusInProgress: WorkInprogress,
	entities.WorkStatusReady:      WorkReady,
	entities.WorkStatusCompleted:  WorkCompleted,
	entities.WorkStatusCancelled:  WorkCancelled,
	entities.WorkStatusDraft:      WorkDraft,
}

var workStatusFromDisplay = map[string]entities.WorkStatus{
	strings.ToLower(WorkNewRequest): entities.WorkStatusOpen,
	strings.ToLower(WorkInprogress): entities.WorkStatusInProgress,
	strings.ToLower(WorkReady):      entities.WorkStatusReady,
	strings.ToLower(WorkCompleted):  entities.WorkStatusCompleted,
	strings.ToLower(WorkCancelled):  entities.WorkStatusCancelled,
	strings.ToLower(WorkDraft):      entities.WorkStatusDraft,
}

// DeriveWorkStatus returns the display work status. A non-empty human label
// wins over the enum: labels are considered more current during migration
// windows. An unmapped enum degrades to "Inprogress", never an error.
func DeriveWorkStatus(enum entities.WorkStatus, label string) string {
	if l := strings.TrimSpace(label); l != "" {
		return l
	}
	if v, ok := workStatusDisplay[enum]; ok {
		return v
	}
	return WorkInprogress
}

// WorkStatusFromDisplay maps a display value back to the persisted enum, the
// fixed inverse table used by the aggregate repository on write. Unknown
// values map to in_progress, mirroring DeriveWorkStatus's fallback.
func WorkStatusFromDisplay(display string) entities.WorkStatus {
	if v, ok := workStatusFromDisplay[strings.ToLower(strings.TrimSpace(display))]; ok {
		return v
	}
	return entities.WorkStatusInProgress
}

// Totals carries the monetary fields DerivePaymentStatus may need when both
// the enum and the label are stale or missing.
type Totals struct {
	Total   float64
	Paid    float64
	Balance float64
}

// DerivePaymentStatus returns the display payment status.
//
// Precedence:
//  1. a label containing "refund" means the order was fully refunded;
//  2. a known enum value maps directly;
//  3. otherwise the amounts decide (with EpsilonCurrency tolerance);
//  4. final fallback is any non-empty label, else "Unpaid".
//
// The amounts tier only fires when total or paid is positive. An all-zero
// record carries no billing data at all, and a zero balance there reflects
// nothing ever being owed rather than a settled bill, so it falls through to
// the label tier and ultimately reads "Unpaid" instead of "Fully Paid".
//
// The enum and label can each independently be stale or absent; this function
// never fails, it only degrades.
func DerivePaymentStatus(enum entities.PaymentStatus, label string, t Totals) string {
	trimmed := strings.TrimSpace(label)
	if strings.Contains(strings.ToLower(trimmed), "refund") {
		return PaymentFullyRefunded
	}

	switch enum {
	case entities.PaymentStatusPaid:
		return PaymentFullyPaid
	case entities.PaymentStatusPartial:
		return PaymentPartiallyPaid
	case entities.PaymentStatusUnpaid:
		return PaymentUnpaid
	}

	if t.Total > 0 || t.Paid > 0 {
		if t.Balance <= EpsilonCurrency || t.Paid >= t.Total-EpsilonCurrency {
			return PaymentFullyPaid
		}
		if t.Paid > EpsilonCurrency {
			return PaymentPartiallyPaid
		}
		return PaymentUnpaid
	}

	if trimmed != "" {
		return trimmed
	}
	return PaymentUnpaid
}

// IsRefunded reports whether a payment display status denotes a refund.
func IsRefunded(paymentStatus string) bool {
	return strings.Contains(strings.ToLower(paymentStatus), "refund")
}
