package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"fundilink/internal/domain/entities"
	"fundilink/internal/usecase/interfaces"
	"fundilink/pkg/phone"

	"github.com/google/uuid"
)

var (
	ErrInvalidPayoutType    = errors.New("invalid payout method type")
	ErrInvalidAccountNumber = errors.New("invalid account number")
)

type AddPayoutMethodCommand struct {
	ProviderID    string
	Type          entities.PayoutMethodType
	AccountNumber string
	BankCode      string
	AccountName   string
	MakeDefault   bool
}

// IPayoutMethodUseCase manages provider payout methods. Subaccount
// provisioning is best-effort: a gateway failure leaves the method
// without a routing target (payments proceed unsplit) and is logged as a
// warning, never rolled back.

type IPayoutMethodUseCase interface {
	AddPayoutMethod(ctx context.Context, cmd AddPayoutMethodCommand) (entities.PayoutMethod, error)
	ListPayoutMethods(ctx context.Context, providerID string) ([]entities.PayoutMethod, error)
}

type PayoutMethodUseCase struct {
	repo              interfaces.IPayoutMethodRepository
	gateway           interfaces.IPaymentGateway
	commissionPercent float64
}

var _ IPayoutMethodUseCase = (*PayoutMethodUseCase)(nil)

func NewPayoutMethodUseCase(repo interfaces.IPayoutMethodRepository, gateway interfaces.IPaymentGateway, commissionPercent float64) *PayoutMethodUseCase {
	return &PayoutMethodUseCase{repo: repo, gateway: gateway, commissionPercent: commissionPercent}
}

func (u *PayoutMethodUseCase) AddPayoutMethod(ctx context.Context, cmd AddPayoutMethodCommand) (entities.PayoutMethod, error) {
	providerID := strings.TrimSpace(cmd.ProviderID)
	if providerID == "" {
		return entities.PayoutMethod{}, ErrInvalidActorID
	}
	if !entities.ValidPayoutMethodType(cmd.Type) {
		return entities.PayoutMethod{}, ErrInvalidPayoutType
	}

	account := strings.TrimSpace(cmd.AccountNumber)
	if account == "" {
		return entities.PayoutMethod{}, ErrInvalidAccountNumber
	}
	if cmd.Type == entities.PayoutMethodMpesa || cmd.Type == entities.PayoutMethodMobileMoney {
		norm, err := phone.NormalizeKenyan(account)
		if err != nil {
			return entities.PayoutMethod{}, ErrInvalidAccountNumber
		}
		account = norm
	}

	existing, err := u.repo.ListByProviderID(ctx, providerID)
	if err != nil {
		return entities.PayoutMethod{}, err
	}
	makeDefault := cmd.MakeDefault || len(existing) == 0
	if makeDefault && len(existing) > 0 {
		if err := u.repo.UnsetDefaults(ctx, providerID); err != nil {
			return entities.PayoutMethod{}, err
		}
	}

	now := time.Now().UTC()
	m := entities.PayoutMethod{
		ID:            uuid.NewString(),
		ProviderID:    providerID,
		Type:          cmd.Type,
		AccountNumber: account,
		BankCode:      strings.TrimSpace(cmd.BankCode),
		AccountName:   strings.TrimSpace(cmd.AccountName),
		IsDefault:     makeDefault,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := u.repo.Create(ctx, m)
	if err != nil {
		return entities.PayoutMethod{}, err
	}
	log.Printf("[payout][usecase] method created provider_id=%s type=%s default=%t", providerID, m.Type, makeDefault)

	// Best-effort subaccount provisioning for commission routing. The
	// method is already persisted; failure here is a warning only.
	if u.gateway != nil {
		business := created.AccountName
		if business == "" {
			business = providerID
		}
		sub, err := u.gateway.CreateSubaccount(ctx, interfaces.CreateSubaccountRequest{
			BusinessName:     business,
			BankCode:         created.BankCode,
			AccountNumber:    created.AccountNumber,
			PercentageCharge: u.commissionPercent,
		})
		if err != nil {
			log.Printf("[payout][usecase] warn: subaccount provisioning failed provider_id=%s method_id=%s err=%v", providerID, created.ID, err)
			return created, nil
		}
		updated, err := u.repo.SetSubaccount(ctx, created.ID, sub.SubaccountCode)
		if err != nil {
			log.Printf("[payout][usecase] warn: subaccount attach failed provider_id=%s method_id=%s err=%v", providerID, created.ID, err)
			return created, nil
		}
		if updated.ID != "" {
			created = updated
		}
		log.Printf("[payout][usecase] subaccount attached provider_id=%s subaccount=%s", providerID, sub.SubaccountCode)
	}

	return created, nil
}

func (u *PayoutMethodUseCase) ListPayoutMethods(ctx context.Context, providerID string) ([]entities.PayoutMethod, error) {
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return nil, ErrInvalidActorID
	}
	return u.repo.ListByProviderID(ctx, providerID)
}
