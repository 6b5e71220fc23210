package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
)

// IPaymentRecordRepository abstracts DynamoDB persistence for PaymentRecord.
//
// The refund algorithm is expressed purely over these primitives: Create,
// UpdateAmount and Delete.

type IPaymentRecordRepository interface {
	Create(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error)
	GetByID(ctx context.Context, id string) (entities.PaymentRecord, error)
	ListByJobOrderID(ctx context.Context, jobOrderID string) ([]entities.PaymentRecord, error)
	UpdateAmount(ctx context.Context, id string, newAmount float64) (entities.PaymentRecord, error)
	Delete(ctx context.Context, id string) error
}
