package entities

import "time"

// Payment is the ledger row created at initiation time.
//
// Storage model (DynamoDB):
//   - PK: id (string, snowflake)
//   - GSI: job_id-index (PK: job_id)
//
// A row is written with status pending only after the gateway accepted
// the charge; webhook reconciliation (out of scope here) moves it to
// completed/failed. Metadata keeps the gateway response envelope for
// traceability.

type Payment struct {
	ID                   string        `json:"id"`
	JobID                string        `json:"job_id"`
	CustomerID           string        `json:"customer_id"`
	ProviderID           string        `json:"provider_id"`
	Amount               float64       `json:"amount"`
	Currency             string        `json:"currency"`
	Status               PaymentStatus `json:"status"`
	PaymentMethod        PaymentMethod `json:"payment_method"`
	PaymentProvider      string        `json:"payment_provider"`
	Reference            string        `json:"reference"`
	ProviderReference    string        `json:"provider_reference,omitempty"`
	PaystackSubaccountID string        `json:"paystack_subaccount_id,omitempty"`
	IdempotencyKey       string        `json:"idempotency_key"`

	Metadata map[string]interface{} `json:"metadata,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
