package interfaces

import (
	"context"
	"time"

	"fundilink/internal/domain/entities"
)

// CodeSlot selects which handshake code pair a repository call targets.
type CodeSlot string

const (
	CodeSlotStart CodeSlot = "start"
	CodeSlotEnd   CodeSlot = "end"
)

// QuoteLock carries the provider's locked price submission.
type QuoteLock struct {
	Labor       float64
	Materials   float64
	Total       float64
	Breakdown   string
	SubmittedAt time.Time
}

// PaymentInit carries the job-side fields written once the gateway
// accepted a charge.
type PaymentInit struct {
	Amount               float64
	Tip                  float64
	Total                float64
	Method               entities.PaymentMethod
	Reference            string
	InitiatedAt          time.Time
	IsPartial            bool
	PartialReason        string
	CommissionPercent    float64
	CommissionAmount     float64
	ProviderPayout       float64
	ProviderPayoutStatus string
}

// IJobRepository abstracts DynamoDB persistence for Job.
//
// Mutating methods are conditional writes: a zero-value Job return with a
// nil error means the condition failed (row missing, quote already
// locked, code already used, payment already completed). Callers decide
// which typed error that maps to.
type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)

	// LockQuote writes the quote fields and flips quote_locked to true,
	// conditioned on quote_locked being false. The first concurrent
	// writer wins; later writers get the zero value.
	LockQuote(ctx context.Context, jobID string, q QuoteLock) (entities.Job, error)

	// SetQuoteResponse records the customer's decision: accept confirms
	// the job and stamps quote_accepted_at, reject cancels it.
	// Conditioned on a locked, unanswered quote.
	SetQuoteResponse(ctx context.Context, jobID string, accepted bool, respondedAt time.Time) (entities.Job, error)

	// WriteCode persists a code hash, plaintext and expiry. With
	// overwrite false the write is conditioned on no hash existing yet
	// (first issuance); with overwrite true it is the regeneration path,
	// conditioned only on the code being unused.
	WriteCode(ctx context.Context, jobID string, slot CodeSlot, plaintext, hash string, expiresAt time.Time, overwrite bool) (entities.Job, error)

	// RefreshCodeExpiry backfills an expiry on a legacy row without
	// touching hash or plaintext. Conditioned on the code being unused.
	RefreshCodeExpiry(ctx context.Context, jobID string, slot CodeSlot, expiresAt time.Time) (entities.Job, error)

	// ConsumeCode marks a code used exactly once and advances the job:
	// start -> in_progress (records job_start_time), end ->
	// awaiting_payment (records job_end_time). Conditioned on the code
	// being unused and the status precondition for the slot.
	ConsumeCode(ctx context.Context, jobID string, slot CodeSlot, usedAt time.Time) (entities.Job, error)

	// SetPaymentInitiated writes the payment field group, conditioned on
	// payment_status not being completed.
	SetPaymentInitiated(ctx context.Context, jobID string, p PaymentInit) (entities.Job, error)
}
