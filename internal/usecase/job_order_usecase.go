package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"oficina_xpto/internal/domain/billing"
	"oficina_xpto/internal/domain/eligibility"
	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/domain/roadmap"
	"oficina_xpto/internal/domain/status"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrJobOrderNotFound        = errors.New("job order not found")
	ErrInvalidOrderNumber      = errors.New("invalid order number")
	ErrNoServiceLines          = errors.New("job order requires at least one service line")
	ErrInvalidMonetaryInput    = errors.New("monetary fields must be non-negative")
	ErrOrderAlreadyTerminal    = errors.New("job order already in a terminal status")
	ErrServiceLinesNotTerminal = errors.New("all service lines must be finished before quality check")
)

// IJobOrderUseCase exposes the job-order lifecycle operations: the idempotent
// aggregate upsert, order-number lookup with timeline inference, stage
// transitions, quality decisions and cancellation.

type IJobOrderUseCase interface {
	Upsert(ctx context.Context, o entities.JobOrder) (entities.JobOrder, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (entities.JobOrder, error)
	ListByStatusClass(ctx context.Context, statusClass string, limit int) ([]entities.JobOrder, error)
	ListByPlateNumber(ctx context.Context, plateNumber string, limit int) ([]entities.JobOrder, error)
	AdvanceStage(ctx context.Context, orderNumber, stage, actor string) (entities.JobOrder, error)
	QualityDecision(ctx context.Context, orderNumber string, approve bool, actor string) (entities.JobOrder, error)
	Cancel(ctx context.Context, orderNumber, actor string) (entities.JobOrder, error)
	ActorNames(ctx context.Context, o entities.JobOrder) map[string]string
}

type JobOrderUseCase struct {
	repo      interfaces.IJobOrderRepository
	directory interfaces.IActorDirectory
}

var _ IJobOrderUseCase = (*JobOrderUseCase)(nil)

func NewJobOrderUseCase(repo interfaces.IJobOrderRepository, directory interfaces.IActorDirectory) *JobOrderUseCase {
	return &JobOrderUseCase{repo: repo, directory: directory}
}

// Upsert validates and persists the whole aggregate. Absence of an id means
// create; presence means update-in-place. Applied twice the operation is
// idempotent: the second write produces no observable field differences.
func (u *JobOrderUseCase) Upsert(ctx context.Context, o entities.JobOrder) (entities.JobOrder, error) {
	o.OrderNumber = strings.TrimSpace(o.OrderNumber)
	if o.OrderNumber == "" {
		return entities.JobOrder{}, ErrInvalidOrderNumber
	}
	if len(o.Services) == 0 {
		return entities.JobOrder{}, ErrNoServiceLines
	}
	if o.TotalAmount < 0 || o.Discount < 0 || o.AmountPaid < 0 {
		return entities.JobOrder{}, ErrInvalidMonetaryInput
	}

	now := time.Now().UTC()
	creating := strings.TrimSpace(o.ID) == ""
	if creating {
		o.ID = uuid.NewString()
		o.CreatedAt = now
		if o.WorkStatus == "" && o.WorkStatusLabel == "" {
			o.WorkStatus = entities.WorkStatusOpen
		}
	}
	o.UpdatedAt = now

	for i := range o.Services {
		o.Services[i].Name = strings.TrimSpace(o.Services[i].Name)
		o.Services[i].DisplayOrder = i
		if o.Services[i].Status == "" {
			o.Services[i].Status = entities.ServiceLineStatusPending
		}
		if strings.TrimSpace(o.Services[i].ID) == "" {
			o.Services[i].ID = serviceLineID(o.Services[i].Name, i)
		}
	}

	if o.TotalAmount == 0 {
		o.TotalAmount = billing.ServicesTotal(o.Services)
	}

	o.Roadmap = roadmap.EnsureSteps(o.Roadmap)
	if creating && roadmap.ActiveStage(o.Roadmap) == "" && roadmap.TerminalStage(o.Roadmap) == "" {
		var err error
		o.Roadmap, err = roadmap.Advance(o.Roadmap, roadmap.StageNewRequest, "", now)
		if err != nil {
			return entities.JobOrder{}, err
		}
	}

	log.Printf("[joborder][usecase] upsert order_number=%s id=%s creating=%v services=%d", o.OrderNumber, o.ID, creating, len(o.Services))
	return u.repo.Upsert(ctx, o)
}

// serviceLineID derives a stable identifier from name+position so a line
// keeps its identity across aggregate rewrites even when the caller supplies
// none.
func serviceLineID(name string, position int) string {
	slug := strings.Builder{}
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			slug.WriteRune(r)
		case slug.Len() > 0 && !strings.HasSuffix(slug.String(), "-"):
			slug.WriteRune('-')
		}
	}
	s := strings.Trim(slug.String(), "-")
	if s == "" {
		s = "service"
	}
	return fmt.Sprintf("%s-%d", s, position)
}

// GetByOrderNumber returns the aggregate with the roadmap timeline completed
// by best-effort start-time inference.
func (u *JobOrderUseCase) GetByOrderNumber(ctx context.Context, orderNumber string) (entities.JobOrder, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return entities.JobOrder{}, ErrInvalidOrderNumber
	}

	o, err := u.repo.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		return entities.JobOrder{}, err
	}
	if o.ID == "" {
		return entities.JobOrder{}, ErrJobOrderNotFound
	}

	o.Roadmap = roadmap.InferStartTimes(roadmap.EnsureSteps(o.Roadmap), o.CreatedAt, o.UpdatedAt)
	return o, nil
}

func (u *JobOrderUseCase) ListByStatusClass(ctx context.Context, statusClass string, limit int) ([]entities.JobOrder, error) {
	enum := status.WorkStatusFromDisplay(statusClass)
	return u.repo.ListByStatusClass(ctx, enum, limit)
}

func (u *JobOrderUseCase) ListByPlateNumber(ctx context.Context, plateNumber string, limit int) ([]entities.JobOrder, error) {
	plateNumber = strings.TrimSpace(plateNumber)
	if plateNumber == "" {
		return nil, errors.New("invalid plate number")
	}
	return u.repo.ListByPlateNumber(ctx, plateNumber, limit)
}

// AdvanceStage moves the order to the given stage. A completed or cancelled
// order rejects every transition. Entering Quality Check additionally
// requires every service line to be finished (completed/cancelled/postponed),
// a contract the state machine itself does not re-validate.
func (u *JobOrderUseCase) AdvanceStage(ctx context.Context, orderNumber, stage, actor string) (entities.JobOrder, error) {
	o, err := u.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		return entities.JobOrder{}, err
	}

	workStatus := status.DeriveWorkStatus(o.WorkStatus, o.WorkStatusLabel)
	if !eligibility.CancelEligible(workStatus) || roadmap.TerminalStage(o.Roadmap) != "" {
		return entities.JobOrder{}, ErrOrderAlreadyTerminal
	}

	if strings.EqualFold(stage, roadmap.StageQualityCheck) {
		for _, s := range o.Services {
			if !s.Status.TerminalForExecution() {
				return entities.JobOrder{}, fmt.Errorf("%w: %q is %s", ErrServiceLinesNotTerminal, s.Name, s.Status)
			}
		}
	}

	now := time.Now().UTC()
	steps, err := roadmap.Advance(o.Roadmap, stage, actor, now)
	if err != nil {
		return entities.JobOrder{}, err
	}

	display := roadmap.WorkStatusForStage(stage)
	o.Roadmap = steps
	o.WorkStatus = status.WorkStatusFromDisplay(display)
	o.WorkStatusLabel = display

	log.Printf("[joborder][usecase] stage advanced order_number=%s stage=%s actor=%s", o.OrderNumber, stage, actor)
	return u.repo.Upsert(ctx, o)
}

// QualityDecision closes the quality-check step: approve releases the order
// to Ready, reject sends it back to service operation.
func (u *JobOrderUseCase) QualityDecision(ctx context.Context, orderNumber string, approve bool, actor string) (entities.JobOrder, error) {
	o, err := u.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		return entities.JobOrder{}, err
	}

	now := time.Now().UTC()
	steps, display, err := roadmap.ApplyQualityDecision(o.Roadmap, approve, actor, now)
	if err != nil {
		return entities.JobOrder{}, err
	}

	o.Roadmap = steps
	o.WorkStatus = status.WorkStatusFromDisplay(display)
	o.WorkStatusLabel = display

	log.Printf("[joborder][usecase] quality decision order_number=%s approve=%v actor=%s", o.OrderNumber, approve, actor)
	return u.repo.Upsert(ctx, o)
}

// Cancel terminates the order from any non-terminal state. Cancellation is a
// terminal status, never a physical delete.
func (u *JobOrderUseCase) Cancel(ctx context.Context, orderNumber, actor string) (entities.JobOrder, error) {
	o, err := u.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		return entities.JobOrder{}, err
	}

	workStatus := status.DeriveWorkStatus(o.WorkStatus, o.WorkStatusLabel)
	if !eligibility.CancelEligible(workStatus) {
		return entities.JobOrder{}, ErrOrderAlreadyTerminal
	}

	now := time.Now().UTC()
	steps, err := roadmap.Advance(o.Roadmap, roadmap.StageCancelled, actor, now)
	if err != nil {
		return entities.JobOrder{}, err
	}

	o.Roadmap = steps
	o.WorkStatus = entities.WorkStatusCancelled
	o.WorkStatusLabel = status.WorkCancelled

	log.Printf("[joborder][usecase] cancelled order_number=%s actor=%s", o.OrderNumber, actor)
	return u.repo.Upsert(ctx, o)
}

// ActorNames resolves every actor referenced by the aggregate to a display
// name through the injected directory. Failures degrade to the raw identity;
// the map never misses a referenced actor.
func (u *JobOrderUseCase) ActorNames(ctx context.Context, o entities.JobOrder) map[string]string {
	names := make(map[string]string)
	add := func(id string) {
		id = strings.TrimSpace(id)
		if id == "" {
			return
		}
		key := strings.ToLower(id)
		if _, ok := names[key]; ok {
			return
		}
		names[key] = id
		if u.directory == nil {
			return
		}
		if name, err := u.directory.DisplayName(ctx, id); err == nil && strings.TrimSpace(name) != "" {
			names[key] = name
		}
	}

	for _, s := range o.Roadmap {
		add(s.ResponsibleActor)
	}
	for _, s := range o.Services {
		add(s.AssignedTo)
		for _, t := range s.Technicians {
			add(t)
		}
	}
	if o.ExitPermit != nil {
		add(o.ExitPermit.IssuedBy)
	}
	return names
}
