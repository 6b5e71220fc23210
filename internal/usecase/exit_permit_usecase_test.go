package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/domain/status"
	mock_interfaces "oficina_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func settledReadyOrder() entities.JobOrder {
	return entities.JobOrder{
		ID:              "id-4",
		OrderNumber:     "JO-4001",
		WorkStatus:      entities.WorkStatusReady,
		WorkStatusLabel: status.WorkReady,
		PaymentStatus:   entities.PaymentStatusPaid,
		TotalAmount:     800,
		NetAmount:       800,
		AmountPaid:      800,
		Services:        []entities.ServiceLineItem{{ID: "svc-0", Name: "Suspension", Price: 800, Status: entities.ServiceLineStatusCompleted}},
	}
}

func TestExitPermitUseCase_Issue(t *testing.T) {
	next := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)

	t.Run("ready and fully paid gets a permit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIJobOrderRepository(ctrl)
		uc := NewExitPermitUseCase(orders)

		orders.EXPECT().GetByOrderNumber(gomock.Any(), "JO-4001").Return(settledReadyOrder(), nil)
		orders.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.JobOrder) (entities.JobOrder, error) {
				if o.ExitPermit == nil || o.ExitPermit.PermitID == "" {
					t.Fatal("permit not attached")
				}
				if o.ExitPermit.CollectedByName != "Maria Lima" || o.ExitPermit.IssuedBy != "gatekeeper" {
					t.Fatalf("permit fields wrong: %+v", o.ExitPermit)
				}
				if o.ExitPermit.NextServiceDate == nil || !o.ExitPermit.NextServiceDate.Equal(next) {
					t.Fatal("next service date not carried")
				}
				return o, nil
			})

		if _, err := uc.Issue(context.Background(), "JO-4001", "Maria Lima", "+55 11 98888-0000", &next, "gatekeeper"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unpaid order refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIJobOrderRepository(ctrl)
		uc := NewExitPermitUseCase(orders)

		o := settledReadyOrder()
		o.PaymentStatus = entities.PaymentStatusPartial
		o.AmountPaid = 300
		o.BalanceDue = 500
		orders.EXPECT().GetByOrderNumber(gomock.Any(), "JO-4001").Return(o, nil)

		_, err := uc.Issue(context.Background(), "JO-4001", "Maria Lima", "", &next, "gatekeeper")
		if !errors.Is(err, ErrExitPermitNotEligible) {
			t.Fatalf("expected ErrExitPermitNotEligible, got %v", err)
		}
	})

	t.Run("second permit refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIJobOrderRepository(ctrl)
		uc := NewExitPermitUseCase(orders)

		o := settledReadyOrder()
		o.ExitPermit = &entities.ExitPermit{PermitID: "already"}
		orders.EXPECT().GetByOrderNumber(gomock.Any(), "JO-4001").Return(o, nil)

		_, err := uc.Issue(context.Background(), "JO-4001", "Maria Lima", "", &next, "gatekeeper")
		if !errors.Is(err, ErrExitPermitNotEligible) {
			t.Fatalf("expected ErrExitPermitNotEligible, got %v", err)
		}
	})

	t.Run("cancelled order needs no next service date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIJobOrderRepository(ctrl)
		uc := NewExitPermitUseCase(orders)

		o := settledReadyOrder()
		o.WorkStatus = entities.WorkStatusCancelled
		o.WorkStatusLabel = status.WorkCancelled
		o.PaymentStatus = entities.PaymentStatusUnpaid
		o.AmountPaid = 0
		o.PaymentStatusLabel = status.PaymentFullyRefunded
		orders.EXPECT().GetByOrderNumber(gomock.Any(), "JO-4001").Return(o, nil)
		orders.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, got entities.JobOrder) (entities.JobOrder, error) {
				if got.ExitPermit == nil || got.ExitPermit.NextServiceDate != nil {
					t.Fatalf("unexpected permit: %+v", got.ExitPermit)
				}
				return got, nil
			})

		if _, err := uc.Issue(context.Background(), "JO-4001", "Maria Lima", "", nil, "gatekeeper"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("ready order requires the next service date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIJobOrderRepository(ctrl)
		uc := NewExitPermitUseCase(orders)

		orders.EXPECT().GetByOrderNumber(gomock.Any(), "JO-4001").Return(settledReadyOrder(), nil)

		_, err := uc.Issue(context.Background(), "JO-4001", "Maria Lima", "", nil, "gatekeeper")
		if !errors.Is(err, ErrMissingNextService) {
			t.Fatalf("expected ErrMissingNextService, got %v", err)
		}
	})

	t.Run("collector name required", func(t *testing.T) {
		uc := NewExitPermitUseCase(nil)
		if _, err := uc.Issue(context.Background(), "JO-4001", "  ", "", &next, "g"); !errors.Is(err, ErrMissingCollector) {
			t.Fatalf("expected ErrMissingCollector, got %v", err)
		}
	})
}

func TestExitPermitUseCase_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mock_interfaces.NewMockIJobOrderRepository(ctrl)
	uc := NewExitPermitUseCase(orders)

	orders.EXPECT().GetByOrderNumber(gomock.Any(), "JO-4001").Return(settledReadyOrder(), nil)

	if _, err := uc.Get(context.Background(), "JO-4001"); !errors.Is(err, ErrExitPermitNotFound) {
		t.Fatalf("expected ErrExitPermitNotFound, got %v", err)
	}
}
