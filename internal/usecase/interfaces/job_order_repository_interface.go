package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
)

// IJobOrderRepository abstracts DynamoDB persistence for the JobOrder
// aggregate.
//
// Upsert writes the whole aggregate as a single payload; GetByOrderNumber
// resolves the human order number through progressively wider lookups (index,
// filtered scan, direct id, case-insensitive scan).

type IJobOrderRepository interface {
	Upsert(ctx context.Context, o entities.JobOrder) (entities.JobOrder, error)
	GetByID(ctx context.Context, id string) (entities.JobOrder, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (entities.JobOrder, error)
	ListByStatusClass(ctx context.Context, workStatus entities.WorkStatus, limit int) ([]entities.JobOrder, error)
	ListByPlateNumber(ctx context.Context, plateNumber string, limit int) ([]entities.JobOrder, error)
}
