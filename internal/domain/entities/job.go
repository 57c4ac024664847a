package entities

import "time"

// JobStatus is the canonical lifecycle state of a job.
//
// Main path: pending -> confirmed -> in_progress -> awaiting_payment ->
// completed. Side branches: cancelled (quote rejected or booking dropped)
// and disputed.

type JobStatus string

const (
	JobStatusPending         JobStatus = "pending"
	JobStatusConfirmed       JobStatus = "confirmed"
	JobStatusInProgress      JobStatus = "in_progress"
	JobStatusCompleted       JobStatus = "completed"
	JobStatusCancelled       JobStatus = "cancelled"
	JobStatusAwaitingPayment JobStatus = "awaiting_payment"
	JobStatusDisputed        JobStatus = "disputed"
)

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusPartial    PaymentStatus = "partial"
	PaymentStatusDisputed   PaymentStatus = "disputed"
)

type PaymentMethod string

const (
	PaymentMethodMpesa PaymentMethod = "mpesa"
	PaymentMethodCard  PaymentMethod = "card"
	PaymentMethodCash  PaymentMethod = "cash"
)

// Domain limits shared by the quote and payment use cases.
const (
	// QuoteCeiling is the sanity ceiling on a submitted quote total.
	QuoteCeiling = 1_000_000.0
	// MaxPaymentAmount bounds a single initiation request.
	MaxPaymentAmount = 10_000_000.0
	// ToleranceMin / ToleranceMax bound an accepted payment relative to
	// the locked quote total (partial payments and tips).
	ToleranceMin = 0.5
	ToleranceMax = 1.5
)

// Job is the central entity persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id (string)
//
// Field groups are mutated by disjoint subsystems: quote_* by the quote
// use case, *_code_* by the handshake use case, payment_*/commission by
// the payment use case. Ownership (customer_id/provider_id) is
// re-verified on every mutating call.
//
// StartCode/EndCode hold the plaintext only for one-time display; every
// verification re-hashes the candidate against the stored hash.

type Job struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	ProviderID string    `json:"provider_id"`
	Service    string    `json:"service"`
	Status     JobStatus `json:"status"`

	QuoteTotal       float64   `json:"quote_total"`
	QuoteLabor       float64   `json:"quote_labor"`
	QuoteMaterials   float64   `json:"quote_materials"`
	QuoteBreakdown   string    `json:"quote_breakdown,omitempty"`
	QuoteSubmittedAt time.Time `json:"quote_submitted_at,omitempty"`
	QuoteAccepted    bool      `json:"quote_accepted"`
	QuoteAcceptedAt  time.Time `json:"quote_accepted_at,omitempty"`
	QuoteLocked      bool      `json:"quote_locked"`

	StartCode             string    `json:"-"`
	StartCodeHash         string    `json:"-"`
	StartCodeUsed         bool      `json:"start_code_used"`
	StartCodeUsedAt       time.Time `json:"start_code_used_at,omitempty"`
	CustomerCodeExpiresAt time.Time `json:"customer_code_expires_at,omitempty"`
	EndCode               string    `json:"-"`
	EndCodeHash           string    `json:"-"`
	EndCodeUsed           bool      `json:"end_code_used"`
	EndCodeUsedAt         time.Time `json:"end_code_used_at,omitempty"`
	ProviderCodeExpiresAt time.Time `json:"provider_code_expires_at,omitempty"`
	JobStartTime          time.Time `json:"job_start_time,omitempty"`
	JobEndTime            time.Time `json:"job_end_time,omitempty"`

	PaymentAmount        float64       `json:"payment_amount"`
	PaymentTip           float64       `json:"payment_tip"`
	PaymentTotal         float64       `json:"payment_total"`
	PaymentMethod        PaymentMethod `json:"payment_method,omitempty"`
	PaymentStatus        PaymentStatus `json:"payment_status,omitempty"`
	PaymentReference     string        `json:"payment_reference,omitempty"`
	PaymentInitiatedAt   time.Time     `json:"payment_initiated_at,omitempty"`
	PaymentCompletedAt   time.Time     `json:"payment_completed_at,omitempty"`
	IsPartialPayment     bool          `json:"is_partial_payment"`
	PartialPaymentReason string        `json:"partial_payment_reason,omitempty"`

	PlatformCommissionPercent float64 `json:"platform_commission_percent"`
	PlatformCommissionAmount  float64 `json:"platform_commission_amount"`
	ProviderPayout            float64 `json:"provider_payout"`
	ProviderPayoutStatus      string  `json:"provider_payout_status,omitempty"`

	DisputeFlagged    bool      `json:"dispute_flagged"`
	DisputeReason     string    `json:"dispute_reason,omitempty"`
	DisputeFlaggedAt  time.Time `json:"dispute_flagged_at,omitempty"`
	DisputeResolved   bool      `json:"dispute_resolved"`
	DisputeResolution string    `json:"dispute_resolution,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (j Job) IsCustomer(actorID string) bool { return actorID != "" && j.CustomerID == actorID }
func (j Job) IsProvider(actorID string) bool { return actorID != "" && j.ProviderID == actorID }
func (j Job) IsParty(actorID string) bool    { return j.IsCustomer(actorID) || j.IsProvider(actorID) }

// HasQuote reports whether a quote was ever submitted.
func (j Job) HasQuote() bool { return j.QuoteLocked || !j.QuoteSubmittedAt.IsZero() }

func (j Job) CanSubmitQuote() bool {
	return (j.Status == JobStatusPending || j.Status == JobStatusConfirmed) && !j.QuoteLocked
}

// Start codes bridge booking to the provider physically arriving: the
// customer generates, the provider verifies.
func (j Job) CanGenerateStartCode() bool {
	return j.Status == JobStatusPending || j.Status == JobStatusConfirmed
}

func (j Job) CanVerifyStartCode() bool { return j.CanGenerateStartCode() }

// End codes require work to be underway; the provider generates, the
// customer verifies, and success unlocks payment.
func (j Job) CanGenerateEndCode() bool { return j.Status == JobStatusInProgress }

func (j Job) CanVerifyEndCode() bool { return j.Status == JobStatusInProgress }

// PaymentEligible reports whether the lifecycle state permits initiating
// a payment. Quote acceptance and payment_status are checked separately
// so callers can return distinct errors.
func (j Job) PaymentEligible() bool {
	switch j.Status {
	case JobStatusCompleted, JobStatusInProgress, JobStatusAwaitingPayment:
		return true
	}
	return false
}

// ToleranceBand returns the accepted [min, max] payment amounts for the
// locked quote.
func (j Job) ToleranceBand() (float64, float64) {
	return j.QuoteTotal * ToleranceMin, j.QuoteTotal * ToleranceMax
}

func (j Job) WithinToleranceBand(amount float64) bool {
	min, max := j.ToleranceBand()
	return j.QuoteTotal > 0 && amount >= min && amount <= max
}
