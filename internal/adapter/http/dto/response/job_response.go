package response

import (
	"time"

	"fundilink/internal/domain/entities"
)

// JobResponse is the party-facing job view. Code plaintext and hashes
// never leave the entity (json:"-"); everything else is safe to echo to
// either party.
type JobResponse struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	ProviderID string `json:"provider_id"`
	Service    string `json:"service,omitempty"`
	Status     string `json:"status"`

	QuoteTotal       float64 `json:"quote_total"`
	QuoteLabor       float64 `json:"quote_labor"`
	QuoteMaterials   float64 `json:"quote_materials"`
	QuoteBreakdown   string  `json:"quote_breakdown,omitempty"`
	QuoteSubmittedAt string  `json:"quote_submitted_at,omitempty"`
	QuoteAccepted    bool    `json:"quote_accepted"`
	QuoteAcceptedAt  string  `json:"quote_accepted_at,omitempty"`
	QuoteLocked      bool    `json:"quote_locked"`

	StartCodeUsed bool   `json:"start_code_used"`
	EndCodeUsed   bool   `json:"end_code_used"`
	JobStartTime  string `json:"job_start_time,omitempty"`
	JobEndTime    string `json:"job_end_time,omitempty"`

	PaymentAmount        float64 `json:"payment_amount"`
	PaymentTip           float64 `json:"payment_tip"`
	PaymentTotal         float64 `json:"payment_total"`
	PaymentMethod        string  `json:"payment_method,omitempty"`
	PaymentStatus        string  `json:"payment_status,omitempty"`
	PaymentReference     string  `json:"payment_reference,omitempty"`
	IsPartialPayment     bool    `json:"is_partial_payment"`
	PartialPaymentReason string  `json:"partial_payment_reason,omitempty"`

	PlatformCommissionPercent float64 `json:"platform_commission_percent"`
	PlatformCommissionAmount  float64 `json:"platform_commission_amount"`
	ProviderPayout            float64 `json:"provider_payout"`
	ProviderPayoutStatus      string  `json:"provider_payout_status,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromJob(j entities.Job) JobResponse {
	return JobResponse{
		ID:         j.ID,
		CustomerID: j.CustomerID,
		ProviderID: j.ProviderID,
		Service:    j.Service,
		Status:     string(j.Status),

		QuoteTotal:       j.QuoteTotal,
		QuoteLabor:       j.QuoteLabor,
		QuoteMaterials:   j.QuoteMaterials,
		QuoteBreakdown:   j.QuoteBreakdown,
		QuoteSubmittedAt: timeOrEmpty(j.QuoteSubmittedAt),
		QuoteAccepted:    j.QuoteAccepted,
		QuoteAcceptedAt:  timeOrEmpty(j.QuoteAcceptedAt),
		QuoteLocked:      j.QuoteLocked,

		StartCodeUsed: j.StartCodeUsed,
		EndCodeUsed:   j.EndCodeUsed,
		JobStartTime:  timeOrEmpty(j.JobStartTime),
		JobEndTime:    timeOrEmpty(j.JobEndTime),

		PaymentAmount:        j.PaymentAmount,
		PaymentTip:           j.PaymentTip,
		PaymentTotal:         j.PaymentTotal,
		PaymentMethod:        string(j.PaymentMethod),
		PaymentStatus:        string(j.PaymentStatus),
		PaymentReference:     j.PaymentReference,
		IsPartialPayment:     j.IsPartialPayment,
		PartialPaymentReason: j.PartialPaymentReason,

		PlatformCommissionPercent: j.PlatformCommissionPercent,
		PlatformCommissionAmount:  j.PlatformCommissionAmount,
		ProviderPayout:            j.ProviderPayout,
		ProviderPayoutStatus:      j.ProviderPayoutStatus,

		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
	}
}

func timeOrEmpty(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
