package interfaces

import (
	"context"

	"fundilink/internal/domain/entities"
)

// IPayoutMethodRepository abstracts DynamoDB persistence for provider
// payout methods.
//
// At most one method per provider is the default; callers clear existing
// defaults before creating a new one.
type IPayoutMethodRepository interface {
	Create(ctx context.Context, m entities.PayoutMethod) (entities.PayoutMethod, error)
	ListByProviderID(ctx context.Context, providerID string) ([]entities.PayoutMethod, error)
	GetDefaultByProviderID(ctx context.Context, providerID string) (entities.PayoutMethod, error)
	UnsetDefaults(ctx context.Context, providerID string) error
	SetSubaccount(ctx context.Context, id, subaccountCode string) (entities.PayoutMethod, error)
}
