package response

import (
	"time"

	"fundilink/internal/domain/entities"
	"fundilink/internal/usecase"
)

type PaymentResponse struct {
	ID              string    `json:"id"`
	JobID           string    `json:"job_id"`
	Amount          float64   `json:"amount"`
	Currency        string    `json:"currency"`
	Status          string    `json:"status"`
	PaymentMethod   string    `json:"payment_method"`
	PaymentProvider string    `json:"payment_provider"`
	Reference       string    `json:"reference"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:              p.ID,
		JobID:           p.JobID,
		Amount:          p.Amount,
		Currency:        p.Currency,
		Status:          string(p.Status),
		PaymentMethod:   string(p.PaymentMethod),
		PaymentProvider: p.PaymentProvider,
		Reference:       p.Reference,
		CreatedAt:       p.CreatedAt,
	}
}

type PaymentListResponse struct {
	OK       bool              `json:"ok"`
	JobID    string            `json:"job_id"`
	Payments []PaymentResponse `json:"payments"`
}

func FromPayments(jobID string, payments []entities.Payment) PaymentListResponse {
	items := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		items = append(items, FromPayment(p))
	}
	return PaymentListResponse{OK: true, JobID: jobID, Payments: items}
}

// PaymentInitiationResponse is the success shape of an initiation: a
// redirect URL for the card flow or an STK charge status for mobile
// money, never both.
type PaymentInitiationResponse struct {
	OK                bool            `json:"ok"`
	Reference         string          `json:"reference"`
	PaymentMethod     string          `json:"payment_method"`
	SubaccountRouting string          `json:"subaccount_routing,omitempty"`
	AuthorizationURL  string          `json:"authorization_url,omitempty"`
	Status            string          `json:"status,omitempty"`
	DisplayText       string          `json:"display_text,omitempty"`
	Payment           PaymentResponse `json:"payment"`
}

func FromPaymentInitiation(pi usecase.PaymentInitiation) PaymentInitiationResponse {
	return PaymentInitiationResponse{
		OK:                true,
		Reference:         pi.Reference,
		PaymentMethod:     string(pi.PaymentMethod),
		SubaccountRouting: pi.SubaccountRouting,
		AuthorizationURL:  pi.AuthorizationURL,
		Status:            pi.Status,
		DisplayText:       pi.DisplayText,
		Payment:           FromPayment(pi.Payment),
	}
}
