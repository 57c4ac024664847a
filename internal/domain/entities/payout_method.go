package entities

import "time"

type PayoutMethodType string

const (
	PayoutMethodBank        PayoutMethodType = "bank"
	PayoutMethodMpesa       PayoutMethodType = "mpesa"
	PayoutMethodMobileMoney PayoutMethodType = "mobile_money"
	PayoutMethodOther       PayoutMethodType = "other"
)

// PayoutMethod is how a provider receives their share of a payment.
//
// Storage model (DynamoDB):
//   - PK: id (string)
//   - GSI: provider_id-index (PK: provider_id)
//
// PaystackSubaccountID stays empty until a subaccount is provisioned;
// payment routing treats its absence as non-fatal and charges unsplit.
// At most one method per provider is the default.

type PayoutMethod struct {
	ID                   string           `json:"id"`
	ProviderID           string           `json:"provider_id"`
	Type                 PayoutMethodType `json:"type"`
	AccountNumber        string           `json:"account_number"`
	BankCode             string           `json:"bank_code,omitempty"`
	AccountName          string           `json:"account_name,omitempty"`
	IsDefault            bool             `json:"is_default"`
	PaystackSubaccountID string           `json:"paystack_subaccount_id,omitempty"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}

func ValidPayoutMethodType(t PayoutMethodType) bool {
	switch t {
	case PayoutMethodBank, PayoutMethodMpesa, PayoutMethodMobileMoney, PayoutMethodOther:
		return true
	}
	return false
}
