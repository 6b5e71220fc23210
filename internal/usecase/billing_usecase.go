package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"oficina_xpto/internal/domain/billing"
	"oficina_xpto/internal/domain/eligibility"
	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/domain/status"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound        = errors.New("payment record not found")
	ErrRefundNotEligible      = errors.New("order not eligible for refund")
	ErrRefundPartiallyApplied = errors.New("refund partially applied")
)

// IBillingUseCase covers the financial operations of a job order: payment
// recording (optionally captured through an external gateway), the per-role
// discount ceiling, and the refund algorithm expressed over the
// payment-record primitives.

type IBillingUseCase interface {
	RecordPayment(ctx context.Context, orderNumber string, amount float64, method, reference string, paidAt time.Time, actor string) (entities.PaymentRecord, error)
	AdjustPayment(ctx context.Context, paymentID string, newAmount float64) (entities.PaymentRecord, error)
	DeletePayment(ctx context.Context, paymentID string) error
	ListPayments(ctx context.Context, orderNumber string) ([]entities.PaymentRecord, error)
	SetDiscount(ctx context.Context, orderNumber string, discount float64, role string) (entities.JobOrder, error)
	Refund(ctx context.Context, orderNumber string, amount float64, actor string) (entities.JobOrder, error)
}

type BillingUseCase struct {
	orders   interfaces.IJobOrderRepository
	payments interfaces.IPaymentRecordRepository
	gateway  interfaces.IPaymentGateway
}

var _ IBillingUseCase = (*BillingUseCase)(nil)

func NewBillingUseCase(orders interfaces.IJobOrderRepository, payments interfaces.IPaymentRecordRepository, gateway interfaces.IPaymentGateway) *BillingUseCase {
	return &BillingUseCase{orders: orders, payments: payments, gateway: gateway}
}

// DiscountCeilingForRole resolves the configured ceiling percent for a role
// from DISCOUNT_CEILING_<ROLE>, defaulting when unset or malformed.
func DiscountCeilingForRole(role string) float64 {
	role = strings.ToUpper(strings.TrimSpace(role))
	if role == "" {
		return billing.DefaultDiscountCeilingPercent
	}
	raw := os.Getenv("DISCOUNT_CEILING_" + strings.ReplaceAll(role, " ", "_"))
	if raw == "" {
		return billing.DefaultDiscountCeilingPercent
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v <= 0 || v > 100 {
		return billing.DefaultDiscountCeilingPercent
	}
	return v
}

func gatewayMethod(method string) bool {
	switch strings.ToLower(strings.TrimSpace(method)) {
	case "card", "pix":
		return true
	}
	return false
}

// RecordPayment appends a ledger entry and rolls the order's paid/balance
// fields forward. Card and pix payments are captured through the provider
// first when a gateway is configured; the provider payment id becomes the
// record reference.
func (u *BillingUseCase) RecordPayment(ctx context.Context, orderNumber string, amount float64, method, reference string, paidAt time.Time, actor string) (entities.PaymentRecord, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return entities.PaymentRecord{}, ErrInvalidOrderNumber
	}
	if amount <= 0 {
		return entities.PaymentRecord{}, billing.ErrInvalidPaymentAmount
	}

	o, err := u.orders.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if o.ID == "" {
		return entities.PaymentRecord{}, ErrJobOrderNotFound
	}

	if u.gateway != nil && gatewayMethod(method) {
		providerID, providerStatus, _, err := u.gateway.Charge(ctx, amount, method, fmt.Sprintf("Job order %s", o.OrderNumber))
		if err != nil {
			log.Printf("[billing][usecase] gateway charge failed order_number=%s err=%v", orderNumber, err)
			return entities.PaymentRecord{}, err
		}
		log.Printf("[billing][usecase] gateway charge ok order_number=%s provider_payment_id=%s status=%s", orderNumber, providerID, providerStatus)
		if strings.TrimSpace(reference) == "" {
			reference = providerID
		}
	}

	if paidAt.IsZero() {
		paidAt = time.Now().UTC()
	}
	p := entities.PaymentRecord{
		ID:         uuid.NewString(),
		JobOrderID: o.ID,
		Amount:     amount,
		Method:     strings.ToLower(strings.TrimSpace(method)),
		Reference:  strings.TrimSpace(reference),
		PaidAt:     paidAt,
		RecordedBy: strings.TrimSpace(actor),
	}

	created, err := u.payments.Create(ctx, p)
	if err != nil {
		return entities.PaymentRecord{}, err
	}

	o.AmountPaid += amount
	u.rollPaymentStatus(&o)
	if _, err := u.orders.Upsert(ctx, o); err != nil {
		// The ledger entry exists; the aggregate mirror heals on the next write.
		log.Printf("[billing][usecase] aggregate update failed after payment order_number=%s payment_id=%s err=%v", orderNumber, created.ID, err)
		return created, err
	}

	log.Printf("[billing][usecase] payment recorded order_number=%s payment_id=%s amount=%.2f", orderNumber, created.ID, amount)
	return created, nil
}

// rollPaymentStatus re-applies the monetary invariants and refreshes the
// persisted payment enum (and clears a stale label) from the amounts.
func (u *BillingUseCase) rollPaymentStatus(o *entities.JobOrder) {
	billing.ApplyInvariants(o, 100)
	switch {
	case o.BalanceDue <= status.EpsilonCurrency && o.AmountPaid > status.EpsilonCurrency:
		o.PaymentStatus = entities.PaymentStatusPaid
	case o.AmountPaid > status.EpsilonCurrency:
		o.PaymentStatus = entities.PaymentStatusPartial
	default:
		o.PaymentStatus = entities.PaymentStatusUnpaid
	}
	o.PaymentStatusLabel = ""
}

func (u *BillingUseCase) AdjustPayment(ctx context.Context, paymentID string, newAmount float64) (entities.PaymentRecord, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.PaymentRecord{}, ErrPaymentNotFound
	}
	if newAmount <= 0 {
		return entities.PaymentRecord{}, billing.ErrInvalidPaymentAmount
	}
	p, err := u.payments.UpdateAmount(ctx, paymentID, newAmount)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if p.ID == "" {
		return entities.PaymentRecord{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *BillingUseCase) DeletePayment(ctx context.Context, paymentID string) error {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return ErrPaymentNotFound
	}
	return u.payments.Delete(ctx, paymentID)
}

func (u *BillingUseCase) ListPayments(ctx context.Context, orderNumber string) ([]entities.PaymentRecord, error) {
	o, err := u.orders.GetByOrderNumber(ctx, strings.TrimSpace(orderNumber))
	if err != nil {
		return nil, err
	}
	if o.ID == "" {
		return nil, ErrJobOrderNotFound
	}
	return u.payments.ListByJobOrderID(ctx, o.ID)
}

// SetDiscount applies a discount under the caller's role ceiling. Explicit
// input over the ceiling is rejected outright, never clamped; only stored
// legacy data is healed by clamping (in the aggregate write path).
func (u *BillingUseCase) SetDiscount(ctx context.Context, orderNumber string, discount float64, role string) (entities.JobOrder, error) {
	o, err := u.orders.GetByOrderNumber(ctx, strings.TrimSpace(orderNumber))
	if err != nil {
		return entities.JobOrder{}, err
	}
	if o.ID == "" {
		return entities.JobOrder{}, ErrJobOrderNotFound
	}

	ceiling := DiscountCeilingForRole(role)
	if err := billing.ValidateDiscount(o.TotalAmount, discount, ceiling); err != nil {
		return entities.JobOrder{}, err
	}

	o.Discount = discount
	u.rollPaymentStatus(&o)

	log.Printf("[billing][usecase] discount set order_number=%s discount=%.2f role=%s ceiling=%.1f%%", orderNumber, discount, role, ceiling)
	return u.orders.Upsert(ctx, o)
}

// Refund gives money back on a cancelled order by consuming payment records
// newest-first through the adjust/delete primitives. The full plan is
// computed before the first write, so an infeasible request mutates nothing;
// a storage failure mid-plan is reported as a partial apply with the amounts
// needed for manual reconciliation. There is no compensating rollback.
func (u *BillingUseCase) Refund(ctx context.Context, orderNumber string, amount float64, actor string) (entities.JobOrder, error) {
	o, err := u.orders.GetByOrderNumber(ctx, strings.TrimSpace(orderNumber))
	if err != nil {
		return entities.JobOrder{}, err
	}
	if o.ID == "" {
		return entities.JobOrder{}, ErrJobOrderNotFound
	}

	records, err := u.payments.ListByJobOrderID(ctx, o.ID)
	if err != nil {
		return entities.JobOrder{}, err
	}

	workStatus := status.DeriveWorkStatus(o.WorkStatus, o.WorkStatusLabel)
	if !eligibility.RefundEligible(workStatus, billing.SumPayments(records)) {
		return entities.JobOrder{}, ErrRefundNotEligible
	}

	plan, err := billing.PlanRefund(records, amount)
	if err != nil {
		return entities.JobOrder{}, err
	}

	applied := 0.0
	for _, step := range plan {
		if step.Delete {
			err = u.payments.Delete(ctx, step.PaymentID)
		} else {
			_, err = u.payments.UpdateAmount(ctx, step.PaymentID, step.NewAmount)
		}
		if err != nil {
			return entities.JobOrder{}, fmt.Errorf("%w: applied %.2f of %.2f: %v", ErrRefundPartiallyApplied, applied, amount, err)
		}
		applied += step.Applied
	}

	o.AmountPaid -= applied
	if o.AmountPaid < 0 {
		o.AmountPaid = 0
	}
	u.rollPaymentStatus(&o)
	if o.AmountPaid <= status.EpsilonCurrency {
		o.PaymentStatus = entities.PaymentStatusUnpaid
		o.PaymentStatusLabel = status.PaymentFullyRefunded
	}

	log.Printf("[billing][usecase] refund applied order_number=%s amount=%.2f actor=%s", orderNumber, applied, actor)
	return u.orders.Upsert(ctx, o)
}
