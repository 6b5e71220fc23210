// Package billing holds the pure money arithmetic of a job order: the
// total/discount/net/paid/balance invariants, the role discount ceiling and
// the refund plan over payment records. It performs no I/O; the usecases
// execute its plans through the payment-record primitives.
package billing

import (
	"errors"
	"fmt"
	"sort"

	"oficina_xpto/internal/domain/entities"
)

// DefaultDiscountCeilingPercent applies when no per-role ceiling is
// configured.
const DefaultDiscountCeilingPercent = 10.0

// RefundTolerance is the residue below which a refund counts as fully
// consumed.
const RefundTolerance = 0.00001

var (
	ErrInvalidPaymentAmount   = errors.New("payment amount must be greater than zero")
	ErrDiscountExceedsCeiling = errors.New("discount exceeds role ceiling")
	ErrNegativeAmount         = errors.New("monetary amounts must be non-negative")
	ErrRefundExceedsPayments  = errors.New("refund exceeds total of recorded payments")
)

// MaxDiscount returns the largest discount a role may grant on the given
// total: min(total, total*ceilingPercent/100).
func MaxDiscount(total, ceilingPercent float64) float64 {
	if ceilingPercent <= 0 {
		ceilingPercent = DefaultDiscountCeilingPercent
	}
	if ceilingPercent > 100 {
		ceilingPercent = 100
	}
	capped := total * ceilingPercent / 100
	if capped > total {
		capped = total
	}
	if capped < 0 {
		capped = 0
	}
	return capped
}

// ValidateDiscount is the hard-reject policy applied to explicit discount
// input (payment-entry flow): overshoot is an eligibility violation, never
// silently reduced.
func ValidateDiscount(total, discount, ceilingPercent float64) error {
	if discount < 0 || total < 0 {
		return ErrNegativeAmount
	}
	if max := MaxDiscount(total, ceilingPercent); discount > max {
		return fmt.Errorf("%w: %.2f > %.2f", ErrDiscountExceedsCeiling, discount, max)
	}
	return nil
}

// ApplyInvariants normalizes the monetary fields of an order in place. This
// is the clamp policy: it heals already-persisted data on the write path
// (legacy overshoot is reduced to the ceiling rather than rejected) and
// re-derives net and balance. New discount input must go through
// ValidateDiscount first.
func ApplyInvariants(o *entities.JobOrder, ceilingPercent float64) {
	if o.TotalAmount < 0 {
		o.TotalAmount = 0
	}
	if o.Discount < 0 {
		o.Discount = 0
	}
	if o.AmountPaid < 0 {
		o.AmountPaid = 0
	}
	if max := MaxDiscount(o.TotalAmount, ceilingPercent); o.Discount > max {
		o.Discount = max
	}
	o.NetAmount = o.TotalAmount - o.Discount
	o.BalanceDue = o.NetAmount - o.AmountPaid
	if o.BalanceDue < 0 {
		o.BalanceDue = 0
	}
}

// ServicesTotal sums the prices of lines that still count towards the bill.
// Cancelled lines and lines still awaiting approval do not price.
func ServicesTotal(services []entities.ServiceLineItem) float64 {
	total := 0.0
	for _, s := range services {
		switch s.Status {
		case entities.ServiceLineStatusCancelled, entities.ServiceLineStatusPendingApproval:
			continue
		}
		if s.Price > 0 {
			total += s.Price
		}
	}
	return total
}

// SumPayments totals recorded payments.
func SumPayments(payments []entities.PaymentRecord) float64 {
	sum := 0.0
	for _, p := range payments {
		sum += p.Amount
	}
	return sum
}

// RefundStep is one mutation of the refund plan: either reduce a record to
// NewAmount or delete it outright. Applied is the portion of the refund the
// step consumes.
type RefundStep struct {
	PaymentID string
	Delete    bool
	NewAmount float64
	Applied   float64
}

// PlanRefund computes the full consumption plan before any write happens.
// Records are consumed newest-first; a record larger than the remainder is
// reduced, smaller ones are deleted. The plan fails up front when the
// requested amount exceeds the sum of payments, so an infeasible refund
// never mutates anything.
func PlanRefund(payments []entities.PaymentRecord, amount float64) ([]RefundStep, error) {
	if amount <= 0 {
		return nil, ErrInvalidPaymentAmount
	}
	if amount > SumPayments(payments)+RefundTolerance {
		return nil, ErrRefundExceedsPayments
	}

	sorted := make([]entities.PaymentRecord, len(payments))
	copy(sorted, payments)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].PaidAt.After(sorted[j].PaidAt)
	})

	remaining := amount
	steps := make([]RefundStep, 0, len(sorted))
	for _, p := range sorted {
		if remaining <= RefundTolerance {
			break
		}
		if remaining < p.Amount {
			if p.Amount-remaining <= RefundTolerance {
				// Float residue: a record reduced to ~zero is just deleted.
				steps = append(steps, RefundStep{PaymentID: p.ID, Delete: true, Applied: p.Amount})
			} else {
				steps = append(steps, RefundStep{
					PaymentID: p.ID,
					NewAmount: p.Amount - remaining,
					Applied:   remaining,
				})
			}
			remaining = 0
			break
		}
		steps = append(steps, RefundStep{PaymentID: p.ID, Delete: true, Applied: p.Amount})
		remaining -= p.Amount
	}

	if remaining > RefundTolerance {
		return nil, ErrRefundExceedsPayments
	}
	return steps, nil
}
