package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"oficina_xpto/internal/domain/eligibility"
	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/domain/status"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrExitPermitNotEligible = errors.New("order not eligible for exit permit")
	ErrExitPermitNotFound    = errors.New("exit permit not found")
	ErrMissingCollector      = errors.New("collected-by name is required")
	ErrMissingNextService    = errors.New("next service date is required unless the order was cancelled")
)

// IExitPermitUseCase issues the vehicle-release permit, the once-only
// authorization gated on the computed eligibility of work and payment status.

type IExitPermitUseCase interface {
	Issue(ctx context.Context, orderNumber, collectedByName, collectedByMobile string, nextServiceDate *time.Time, actor string) (entities.JobOrder, error)
	Get(ctx context.Context, orderNumber string) (entities.JobOrder, error)
}

type ExitPermitUseCase struct {
	orders interfaces.IJobOrderRepository
}

var _ IExitPermitUseCase = (*ExitPermitUseCase)(nil)

func NewExitPermitUseCase(orders interfaces.IJobOrderRepository) *ExitPermitUseCase {
	return &ExitPermitUseCase{orders: orders}
}

// Issue creates the permit when the eligibility gate holds. Once created the
// order is permanently ineligible for a second permit.
func (u *ExitPermitUseCase) Issue(ctx context.Context, orderNumber, collectedByName, collectedByMobile string, nextServiceDate *time.Time, actor string) (entities.JobOrder, error) {
	collectedByName = strings.TrimSpace(collectedByName)
	if collectedByName == "" {
		return entities.JobOrder{}, ErrMissingCollector
	}

	o, err := u.orders.GetByOrderNumber(ctx, strings.TrimSpace(orderNumber))
	if err != nil {
		return entities.JobOrder{}, err
	}
	if o.ID == "" {
		return entities.JobOrder{}, ErrJobOrderNotFound
	}

	workStatus := status.DeriveWorkStatus(o.WorkStatus, o.WorkStatusLabel)
	paymentStatus := status.DerivePaymentStatus(o.PaymentStatus, o.PaymentStatusLabel, status.Totals{
		Total:   o.NetAmount,
		Paid:    o.AmountPaid,
		Balance: o.BalanceDue,
	})
	if !eligibility.ExitPermitEligible(workStatus, paymentStatus, o.ExitPermit != nil) {
		return entities.JobOrder{}, ErrExitPermitNotEligible
	}

	cancelled := strings.EqualFold(workStatus, status.WorkCancelled)
	if nextServiceDate == nil && !cancelled {
		return entities.JobOrder{}, ErrMissingNextService
	}

	now := time.Now().UTC()
	o.ExitPermit = &entities.ExitPermit{
		PermitID:          uuid.NewString(),
		CollectedByName:   collectedByName,
		CollectedByMobile: strings.TrimSpace(collectedByMobile),
		NextServiceDate:   nextServiceDate,
		IssuedBy:          strings.TrimSpace(actor),
		CreatedAt:         now,
	}

	log.Printf("[exitpermit][usecase] issued order_number=%s permit_id=%s collected_by=%s", o.OrderNumber, o.ExitPermit.PermitID, collectedByName)
	return u.orders.Upsert(ctx, o)
}

// Get returns the order carrying its permit, for slip rendering.
func (u *ExitPermitUseCase) Get(ctx context.Context, orderNumber string) (entities.JobOrder, error) {
	o, err := u.orders.GetByOrderNumber(ctx, strings.TrimSpace(orderNumber))
	if err != nil {
		return entities.JobOrder{}, err
	}
	if o.ID == "" {
		return entities.JobOrder{}, ErrJobOrderNotFound
	}
	if o.ExitPermit == nil {
		return entities.JobOrder{}, ErrExitPermitNotFound
	}
	return o, nil
}
