package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"fundilink/internal/domain/entities"
	"fundilink/internal/usecase/interfaces"
)

var (
	ErrInvalidQuoteAmount   = errors.New("invalid quote amount")
	ErrQuoteTooLarge        = errors.New("quote total exceeds ceiling")
	ErrQuoteAlreadyLocked   = errors.New("quote already submitted and locked")
	ErrJobNotQuotable       = errors.New("job status does not allow quote submission")
	ErrNoQuote              = errors.New("no quote submitted for this job")
	ErrQuoteAlreadyAnswered = errors.New("quote already answered")
)

// IQuoteUseCase covers the quote negotiation step: the provider submits
// a locked quote, the customer accepts or rejects it.

type IQuoteUseCase interface {
	SubmitQuote(ctx context.Context, jobID, actorID string, labor, materials float64, breakdown string) (entities.Job, error)
	RespondToQuote(ctx context.Context, jobID, actorID string, accepted bool) (entities.Job, error)
}

type QuoteUseCase struct {
	repo interfaces.IJobRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IJobRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo}
}

// SubmitQuote locks the provider's price submission. The quote_locked
// flag is a compare-and-set guard at the storage layer: the first writer
// wins, every later submission fails with ErrQuoteAlreadyLocked.
func (u *QuoteUseCase) SubmitQuote(ctx context.Context, jobID, actorID string, labor, materials float64, breakdown string) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	if labor <= 0 || materials < 0 {
		return entities.Job{}, ErrInvalidQuoteAmount
	}
	total := labor + materials
	if total > entities.QuoteCeiling {
		return entities.Job{}, ErrQuoteTooLarge
	}

	j, err := u.repo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	if !j.IsProvider(actorID) {
		return entities.Job{}, ErrNotJobProvider
	}
	if j.QuoteLocked {
		return entities.Job{}, ErrQuoteAlreadyLocked
	}
	if !j.CanSubmitQuote() {
		return entities.Job{}, ErrJobNotQuotable
	}

	updated, err := u.repo.LockQuote(ctx, jobID, interfaces.QuoteLock{
		Labor:       labor,
		Materials:   materials,
		Total:       total,
		Breakdown:   strings.TrimSpace(breakdown),
		SubmittedAt: time.Now().UTC(),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if updated.ID == "" {
		// Lost the compare-and-set to a concurrent submission.
		log.Printf("[quote][usecase] lock race lost job_id=%s actor_id=%s", jobID, actorID)
		return entities.Job{}, ErrQuoteAlreadyLocked
	}
	log.Printf("[quote][usecase] quote locked job_id=%s total=%.2f", jobID, total)
	return updated, nil
}

// RespondToQuote records the customer's decision. Accepting confirms the
// job and unlocks start-code issuance; rejecting cancels the job and
// permanently stops handshake and payment eligibility.
func (u *QuoteUseCase) RespondToQuote(ctx context.Context, jobID, actorID string, accepted bool) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}

	j, err := u.repo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	if !j.IsCustomer(actorID) {
		return entities.Job{}, ErrNotJobCustomer
	}
	if !j.HasQuote() {
		return entities.Job{}, ErrNoQuote
	}
	if j.QuoteAccepted || j.Status == entities.JobStatusCancelled {
		return entities.Job{}, ErrQuoteAlreadyAnswered
	}

	updated, err := u.repo.SetQuoteResponse(ctx, jobID, accepted, time.Now().UTC())
	if err != nil {
		return entities.Job{}, err
	}
	if updated.ID == "" {
		return entities.Job{}, ErrQuoteAlreadyAnswered
	}
	log.Printf("[quote][usecase] quote response job_id=%s accepted=%t status=%s", jobID, accepted, updated.Status)
	return updated, nil
}
