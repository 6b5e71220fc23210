package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrApprovalNotFound       = errors.New("approval request not found")
	ErrApprovalAlreadyDecided = errors.New("approval request already decided")
	ErrServiceLineNotFound    = errors.New("service line not found")
	ErrInvalidRequestedAction = errors.New("requested action must be postpone or cancel")
	ErrActionAlreadyApplied   = errors.New("service line already in the requested status")
)

// Requested actions a service line can be asked to take through the approval
// sub-workflow.
const (
	ActionPostpone = "postpone"
	ActionCancel   = "cancel"
)

// IApprovalUseCase runs the per-service-line request/decision lifecycle.
// Disruptive changes (postpone/cancel) and brand-new costed lines pass
// through a pending request before taking effect; the decision itself only
// records the outcome, applying it to the line is the caller's move.

type IApprovalUseCase interface {
	RequestServiceAction(ctx context.Context, orderNumber, serviceLineID, action, actor string) (entities.ApprovalRequest, error)
	RequestNewServiceLine(ctx context.Context, orderNumber, name string, price float64, actor string) (entities.ApprovalRequest, error)
	Decide(ctx context.Context, requestID string, approve bool, actor, note string) (entities.ApprovalRequest, error)
	ListByOrder(ctx context.Context, orderNumber string) ([]entities.ApprovalRequest, error)
	ListPending(ctx context.Context, limit int) ([]entities.ApprovalRequest, error)
}

type ApprovalUseCase struct {
	approvals interfaces.IApprovalRequestRepository
	orders    interfaces.IJobOrderRepository
}

var _ IApprovalUseCase = (*ApprovalUseCase)(nil)

func NewApprovalUseCase(approvals interfaces.IApprovalRequestRepository, orders interfaces.IJobOrderRepository) *ApprovalUseCase {
	return &ApprovalUseCase{approvals: approvals, orders: orders}
}

func targetStatusForAction(action string) (entities.ServiceLineStatus, error) {
	switch strings.ToLower(strings.TrimSpace(action)) {
	case ActionPostpone:
		return entities.ServiceLineStatusPostponed, nil
	case ActionCancel:
		return entities.ServiceLineStatusCancelled, nil
	default:
		return "", ErrInvalidRequestedAction
	}
}

// RequestServiceAction opens a pending request to postpone or cancel a line.
// The line snapshot (name/price) is taken at request time and the line is
// parked in pending_approval until the decision lands.
func (u *ApprovalUseCase) RequestServiceAction(ctx context.Context, orderNumber, serviceLineID, action, actor string) (entities.ApprovalRequest, error) {
	target, err := targetStatusForAction(action)
	if err != nil {
		return entities.ApprovalRequest{}, err
	}

	o, err := u.orders.GetByOrderNumber(ctx, strings.TrimSpace(orderNumber))
	if err != nil {
		return entities.ApprovalRequest{}, err
	}
	if o.ID == "" {
		return entities.ApprovalRequest{}, ErrJobOrderNotFound
	}

	idx := -1
	for i, s := range o.Services {
		if strings.EqualFold(s.ID, strings.TrimSpace(serviceLineID)) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entities.ApprovalRequest{}, ErrServiceLineNotFound
	}
	if o.Services[idx].Status == target {
		return entities.ApprovalRequest{}, ErrActionAlreadyApplied
	}

	now := time.Now().UTC()
	req := entities.ApprovalRequest{
		ID:              uuid.NewString(),
		JobOrderID:      o.ID,
		ServiceLineID:   o.Services[idx].ID,
		ServiceName:     o.Services[idx].Name,
		ServicePrice:    o.Services[idx].Price,
		RequestedAction: strings.ToLower(strings.TrimSpace(action)),
		RequestedBy:     strings.TrimSpace(actor),
		RequestedAt:     now,
		Status:          entities.ApprovalStatusPending,
	}

	created, err := u.approvals.Create(ctx, req)
	if err != nil {
		return entities.ApprovalRequest{}, err
	}

	o.Services[idx].Status = entities.ServiceLineStatusPendingApproval
	o.Services[idx].RequestedAction = req.RequestedAction
	o.Services[idx].ApprovalStatus = string(entities.ApprovalStatusPending)
	if _, err := u.orders.Upsert(ctx, o); err != nil {
		log.Printf("[approval][usecase] line flag write failed order_number=%s request_id=%s err=%v", orderNumber, created.ID, err)
		return created, err
	}

	log.Printf("[approval][usecase] action requested order_number=%s line=%s action=%s request_id=%s", orderNumber, req.ServiceLineID, req.RequestedAction, created.ID)
	return created, nil
}

// RequestNewServiceLine appends a new costed line in pending_approval and
// opens the matching request: new costs need the same supervisory sign-off
// as disruptive changes, and the line does not price until approved.
func (u *ApprovalUseCase) RequestNewServiceLine(ctx context.Context, orderNumber, name string, price float64, actor string) (entities.ApprovalRequest, error) {
	name = strings.TrimSpace(name)
	if name == "" || price < 0 {
		return entities.ApprovalRequest{}, errors.New("invalid service line")
	}

	o, err := u.orders.GetByOrderNumber(ctx, strings.TrimSpace(orderNumber))
	if err != nil {
		return entities.ApprovalRequest{}, err
	}
	if o.ID == "" {
		return entities.ApprovalRequest{}, ErrJobOrderNotFound
	}

	now := time.Now().UTC()
	line := entities.ServiceLineItem{
		ID:              serviceLineID(name, len(o.Services)),
		DisplayOrder:    len(o.Services),
		Name:            name,
		Price:           price,
		Status:          entities.ServiceLineStatusPendingApproval,
		RequestedAction: "add",
		ApprovalStatus:  string(entities.ApprovalStatusPending),
	}
	o.Services = append(o.Services, line)

	req := entities.ApprovalRequest{
		ID:              uuid.NewString(),
		JobOrderID:      o.ID,
		ServiceLineID:   line.ID,
		ServiceName:     name,
		ServicePrice:    price,
		RequestedAction: "add",
		RequestedBy:     strings.TrimSpace(actor),
		RequestedAt:     now,
		Status:          entities.ApprovalStatusPending,
	}

	created, err := u.approvals.Create(ctx, req)
	if err != nil {
		return entities.ApprovalRequest{}, err
	}
	if _, err := u.orders.Upsert(ctx, o); err != nil {
		return created, err
	}

	log.Printf("[approval][usecase] new line requested order_number=%s line=%s price=%.2f request_id=%s", orderNumber, line.ID, price, created.ID)
	return created, nil
}

// Decide records the decision of record. It does not touch the service line:
// applying an approved postpone/cancel to the line is the decision screen's
// follow-up through the aggregate upsert.
func (u *ApprovalUseCase) Decide(ctx context.Context, requestID string, approve bool, actor, note string) (entities.ApprovalRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.ApprovalRequest{}, ErrApprovalNotFound
	}

	existing, err := u.approvals.GetByID(ctx, requestID)
	if err != nil {
		return entities.ApprovalRequest{}, err
	}
	if existing.ID == "" {
		return entities.ApprovalRequest{}, ErrApprovalNotFound
	}
	if existing.Status != entities.ApprovalStatusPending {
		return entities.ApprovalRequest{}, ErrApprovalAlreadyDecided
	}

	decision := entities.ApprovalStatusApproved
	if !approve {
		decision = entities.ApprovalStatusRejected
	}

	updated, err := u.approvals.UpdateDecision(ctx, requestID, decision, strings.TrimSpace(actor), strings.TrimSpace(note), time.Now().UTC())
	if err != nil {
		return entities.ApprovalRequest{}, err
	}

	log.Printf("[approval][usecase] decided request_id=%s status=%s actor=%s", requestID, decision, actor)
	return updated, nil
}

func (u *ApprovalUseCase) ListByOrder(ctx context.Context, orderNumber string) ([]entities.ApprovalRequest, error) {
	o, err := u.orders.GetByOrderNumber(ctx, strings.TrimSpace(orderNumber))
	if err != nil {
		return nil, err
	}
	if o.ID == "" {
		return nil, ErrJobOrderNotFound
	}
	return u.approvals.ListByJobOrderID(ctx, o.ID)
}

func (u *ApprovalUseCase) ListPending(ctx context.Context, limit int) ([]entities.ApprovalRequest, error) {
	return u.approvals.ListPending(ctx, limit)
}
