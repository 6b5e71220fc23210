package interfaces

import (
	"context"
	"time"

	"oficina_xpto/internal/domain/entities"
)

// IApprovalRequestRepository abstracts DynamoDB persistence for
// ApprovalRequest. Decisions only ever touch the decision fields.

type IApprovalRequestRepository interface {
	Create(ctx context.Context, r entities.ApprovalRequest) (entities.ApprovalRequest, error)
	GetByID(ctx context.Context, id string) (entities.ApprovalRequest, error)
	ListByJobOrderID(ctx context.Context, jobOrderID string) ([]entities.ApprovalRequest, error)
	ListPending(ctx context.Context, limit int) ([]entities.ApprovalRequest, error)
	UpdateDecision(ctx context.Context, id string, status entities.ApprovalStatus, decidedBy, note string, decidedAt time.Time) (entities.ApprovalRequest, error)
}
