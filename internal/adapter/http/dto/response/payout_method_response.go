package response

import (
	"time"

	"fundilink/internal/domain/entities"
)

type PayoutMethodResponse struct {
	ID                   string    `json:"id"`
	ProviderID           string    `json:"provider_id"`
	Type                 string    `json:"type"`
	AccountNumber        string    `json:"account_number"`
	BankCode             string    `json:"bank_code,omitempty"`
	AccountName          string    `json:"account_name,omitempty"`
	IsDefault            bool      `json:"is_default"`
	PaystackSubaccountID string    `json:"paystack_subaccount_id,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

func FromPayoutMethod(m entities.PayoutMethod) PayoutMethodResponse {
	return PayoutMethodResponse{
		ID:                   m.ID,
		ProviderID:           m.ProviderID,
		Type:                 string(m.Type),
		AccountNumber:        m.AccountNumber,
		BankCode:             m.BankCode,
		AccountName:          m.AccountName,
		IsDefault:            m.IsDefault,
		PaystackSubaccountID: m.PaystackSubaccountID,
		CreatedAt:            m.CreatedAt,
	}
}

type PayoutMethodListResponse struct {
	OK            bool                   `json:"ok"`
	PayoutMethods []PayoutMethodResponse `json:"payout_methods"`
}

func FromPayoutMethods(methods []entities.PayoutMethod) PayoutMethodListResponse {
	items := make([]PayoutMethodResponse, 0, len(methods))
	for _, m := range methods {
		items = append(items, FromPayoutMethod(m))
	}
	return PayoutMethodListResponse{OK: true, PayoutMethods: items}
}
