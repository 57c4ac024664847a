package interfaces

import (
	"context"

	"fundilink/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for the payment
// ledger.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.Payment, error)
}
