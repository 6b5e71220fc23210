// Package eligibility holds the pure predicates gating sensitive actions.
// Inputs are the display statuses produced by the status normalizer, so the
// gates stay correct even over stale persisted enums.
package eligibility

import (
	"strings"

	"oficina_xpto/internal/domain/status"
)

func is(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), b)
}

// ExitPermitEligible reports whether an exit permit may be issued.
// A permit is issued once per order, for a ready-and-paid order or for a
// cancelled order that owes nothing (never paid, or fully refunded).
func ExitPermitEligible(workStatus, paymentStatus string, alreadyCreated bool) bool {
	if alreadyCreated {
		return false
	}
	if is(workStatus, status.WorkReady) && is(paymentStatus, status.PaymentFullyPaid) {
		return true
	}
	if is(workStatus, status.WorkCancelled) &&
		(is(paymentStatus, status.PaymentUnpaid) || status.IsRefunded(paymentStatus)) {
		return true
	}
	return false
}

// RefundEligible: only cancelled orders with money actually collected.
func RefundEligible(workStatus string, paymentsTotal float64) bool {
	return is(workStatus, status.WorkCancelled) && paymentsTotal > 0
}

// CancelEligible: cancellation is the one transition allowed from any
// non-terminal state.
func CancelEligible(workStatus string) bool {
	return !is(workStatus, status.WorkCompleted) && !is(workStatus, status.WorkCancelled)
}
