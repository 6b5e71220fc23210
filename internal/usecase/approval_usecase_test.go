package usecase

import (
	"context"
	"errors"
	"testing"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/domain/status"
	mock_interfaces "oficina_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func orderWithLines() entities.JobOrder {
	return entities.JobOrder{
		ID:              "id-3",
		OrderNumber:     "JO-3001",
		WorkStatus:      entities.WorkStatusInProgress,
		WorkStatusLabel: status.WorkInprogress,
		Services: []entities.ServiceLineItem{
			{ID: "brake-pads-0", Name: "Brake Pads", Price: 450, Status: entities.ServiceLineStatusInProgress},
			{ID: "oil-change-1", Name: "Oil Change", Price: 150, Status: entities.ServiceLineStatusPending},
		},
	}
}

func TestApprovalUseCase_RequestServiceAction(t *testing.T) {
	t.Run("postpone parks the line and opens one pending request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		approvals := mock_interfaces.NewMockIApprovalRequestRepository(ctrl)
		orders := mock_interfaces.NewMockIJobOrderRepository(ctrl)
		uc := NewApprovalUseCase(approvals, orders)

		orders.EXPECT().GetByOrderNumber(gomock.Any(), "JO-3001").Return(orderWithLines(), nil)
		approvals.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.ApprovalRequest) (entities.ApprovalRequest, error) {
				if r.Status != entities.ApprovalStatusPending {
					t.Fatalf("request must open pending, got %q", r.Status)
				}
				if r.ServiceLineID != "brake-pads-0" || r.ServiceName != "Brake Pads" || r.ServicePrice != 450 {
					t.Fatalf("snapshot wrong: %+v", r)
				}
				if r.RequestedAction != ActionPostpone {
					t.Fatalf("expected postpone, got %q", r.RequestedAction)
				}
				return r, nil
			})
		orders.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.JobOrder) (entities.JobOrder, error) {
				line := o.Services[0]
				if line.Status != entities.ServiceLineStatusPendingApproval {
					t.Fatalf("line not parked, got %q", line.Status)
				}
				if line.RequestedAction != ActionPostpone || line.ApprovalStatus != string(entities.ApprovalStatusPending) {
					t.Fatalf("line flags wrong: %+v", line)
				}
				if o.Services[1].Status != entities.ServiceLineStatusPending {
					t.Fatalf("untouched line changed: %q", o.Services[1].Status)
				}
				return o, nil
			})

		req, err := uc.RequestServiceAction(context.Background(), "JO-3001", "brake-pads-0", "Postpone", "advisor")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.ID == "" {
			t.Fatal("request id not generated")
		}
	})

	t.Run("unknown action", func(t *testing.T) {
		uc := NewApprovalUseCase(nil, nil)
		_, err := uc.RequestServiceAction(context.Background(), "JO-3001", "brake-pads-0", "delete", "advisor")
		if !errors.Is(err, ErrInvalidRequestedAction) {
			t.Fatalf("expected ErrInvalidRequestedAction, got %v", err)
		}
	})

	t.Run("unknown line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIJobOrderRepository(ctrl)
		uc := NewApprovalUseCase(nil, orders)

		orders.EXPECT().GetByOrderNumber(gomock.Any(), "JO-3001").Return(orderWithLines(), nil)

		_, err := uc.RequestServiceAction(context.Background(), "JO-3001", "no-such-line", ActionCancel, "advisor")
		if !errors.Is(err, ErrServiceLineNotFound) {
			t.Fatalf("expected ErrServiceLineNotFound, got %v", err)
		}
	})

	t.Run("already in the requested status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIJobOrderRepository(ctrl)
		uc := NewApprovalUseCase(nil, orders)

		o := orderWithLines()
		o.Services[0].Status = entities.ServiceLineStatusPostponed
		orders.EXPECT().GetByOrderNumber(gomock.Any(), "JO-3001").Return(o, nil)

		_, err := uc.RequestServiceAction(context.Background(), "JO-3001", "brake-pads-0", ActionPostpone, "advisor")
		if !errors.Is(err, ErrActionAlreadyApplied) {
			t.Fatalf("expected ErrActionAlreadyApplied, got %v", err)
		}
	})
}

func TestApprovalUseCase_RequestNewServiceLine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	approvals := mock_interfaces.NewMockIApprovalRequestRepository(ctrl)
	orders := mock_interfaces.NewMockIJobOrderRepository(ctrl)
	uc := NewApprovalUseCase(approvals, orders)

	orders.EXPECT().GetByOrderNumber(gomock.Any(), "JO-3001").Return(orderWithLines(), nil)
	approvals.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r entities.ApprovalRequest) (entities.ApprovalRequest, error) {
			if r.RequestedAction != "add" || r.ServicePrice != 890 {
				t.Fatalf("unexpected request: %+v", r)
			}
			return r, nil
		})
	orders.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o entities.JobOrder) (entities.JobOrder, error) {
			if len(o.Services) != 3 {
				t.Fatalf("line not appended, have %d", len(o.Services))
			}
			added := o.Services[2]
			if added.Status != entities.ServiceLineStatusPendingApproval {
				t.Fatalf("new line must wait for approval, got %q", added.Status)
			}
			if added.ID != "timing-belt-2" {
				t.Fatalf("derived id wrong: %q", added.ID)
			}
			return o, nil
		})

	if _, err := uc.RequestNewServiceLine(context.Background(), "JO-3001", "Timing Belt", 890, "advisor"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestApprovalUseCase_Decide(t *testing.T) {
	t.Run("approve a pending request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		approvals := mock_interfaces.NewMockIApprovalRequestRepository(ctrl)
		uc := NewApprovalUseCase(approvals, nil)

		approvals.EXPECT().GetByID(gomock.Any(), "req-1").Return(
			entities.ApprovalRequest{ID: "req-1", Status: entities.ApprovalStatusPending}, nil)
		approvals.EXPECT().UpdateDecision(gomock.Any(), "req-1", entities.ApprovalStatusApproved, "supervisor", "ok", gomock.Any()).Return(
			entities.ApprovalRequest{ID: "req-1", Status: entities.ApprovalStatusApproved}, nil)

		got, err := uc.Decide(context.Background(), "req-1", true, "supervisor", "ok")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.ApprovalStatusApproved {
			t.Fatalf("expected approved, got %q", got.Status)
		}
	})

	t.Run("second decision refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		approvals := mock_interfaces.NewMockIApprovalRequestRepository(ctrl)
		uc := NewApprovalUseCase(approvals, nil)

		approvals.EXPECT().GetByID(gomock.Any(), "req-1").Return(
			entities.ApprovalRequest{ID: "req-1", Status: entities.ApprovalStatusRejected}, nil)

		_, err := uc.Decide(context.Background(), "req-1", true, "supervisor", "")
		if !errors.Is(err, ErrApprovalAlreadyDecided) {
			t.Fatalf("expected ErrApprovalAlreadyDecided, got %v", err)
		}
	})

	t.Run("missing request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		approvals := mock_interfaces.NewMockIApprovalRequestRepository(ctrl)
		uc := NewApprovalUseCase(approvals, nil)

		approvals.EXPECT().GetByID(gomock.Any(), "req-404").Return(entities.ApprovalRequest{}, nil)

		if _, err := uc.Decide(context.Background(), "req-404", false, "supervisor", ""); !errors.Is(err, ErrApprovalNotFound) {
			t.Fatalf("expected ErrApprovalNotFound, got %v", err)
		}
	})
}
