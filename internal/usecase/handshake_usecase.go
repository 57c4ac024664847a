package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"fundilink/internal/domain/entities"
	"fundilink/internal/usecase/interfaces"
	"fundilink/pkg/codes"
)

var (
	ErrCodeAlreadyUsed    = errors.New("handshake code already used")
	ErrInvalidCode        = errors.New("invalid or expired code")
	ErrJobNotAwaitingCode = errors.New("job status does not allow this handshake step")
)

// DefaultCodeTTL is how long an issued handshake code stays valid.
const DefaultCodeTTL = 10 * time.Minute

// IssuedCode is what a generate call returns: the plaintext for one-time
// display plus its expiry. The plaintext is never logged.
type IssuedCode struct {
	JobID     string
	Code      string
	ExpiresAt time.Time
}

// IHandshakeUseCase issues and verifies the codes bridging the digital
// job record to in-person events. The customer generates the start code
// and the provider verifies it on arrival; roles invert for the end
// code. Codes are single-use, time-boxed, and verified only against
// their stored hash.

type IHandshakeUseCase interface {
	GenerateStartCode(ctx context.Context, jobID, actorID string) (IssuedCode, error)
	VerifyStartCode(ctx context.Context, jobID, actorID, candidate string) (entities.Job, error)
	GenerateEndCode(ctx context.Context, jobID, actorID string) (IssuedCode, error)
	VerifyEndCode(ctx context.Context, jobID, actorID, candidate string) (entities.Job, error)
}

type HandshakeUseCase struct {
	repo    interfaces.IJobRepository
	codeTTL time.Duration
	now     func() time.Time
}

var _ IHandshakeUseCase = (*HandshakeUseCase)(nil)

func NewHandshakeUseCase(repo interfaces.IJobRepository, codeTTL time.Duration) *HandshakeUseCase {
	if codeTTL <= 0 {
		codeTTL = DefaultCodeTTL
	}
	return &HandshakeUseCase{repo: repo, codeTTL: codeTTL, now: time.Now}
}

// codeView flattens the per-slot fields so generate/verify logic is
// written once for both code pairs.
type codeView struct {
	slot      interfaces.CodeSlot
	plaintext string
	hash      string
	used      bool
	expiresAt time.Time
	length    int
}

func startView(j entities.Job) codeView {
	return codeView{
		slot:      interfaces.CodeSlotStart,
		plaintext: j.StartCode,
		hash:      j.StartCodeHash,
		used:      j.StartCodeUsed,
		expiresAt: j.CustomerCodeExpiresAt,
		length:    codes.StartCodeLength,
	}
}

func endView(j entities.Job) codeView {
	return codeView{
		slot:      interfaces.CodeSlotEnd,
		plaintext: j.EndCode,
		hash:      j.EndCodeHash,
		used:      j.EndCodeUsed,
		expiresAt: j.ProviderCodeExpiresAt,
		length:    codes.EndCodeLength,
	}
}

func (u *HandshakeUseCase) GenerateStartCode(ctx context.Context, jobID, actorID string) (IssuedCode, error) {
	return u.generate(ctx, jobID, actorID, func(j entities.Job) (codeView, error) {
		if !j.IsCustomer(actorID) {
			return codeView{}, ErrNotJobCustomer
		}
		if !j.CanGenerateStartCode() {
			return codeView{}, ErrJobNotAwaitingCode
		}
		return startView(j), nil
	})
}

func (u *HandshakeUseCase) GenerateEndCode(ctx context.Context, jobID, actorID string) (IssuedCode, error) {
	return u.generate(ctx, jobID, actorID, func(j entities.Job) (codeView, error) {
		if !j.IsProvider(actorID) {
			return codeView{}, ErrNotJobProvider
		}
		if !j.CanGenerateEndCode() {
			return codeView{}, ErrJobNotAwaitingCode
		}
		return endView(j), nil
	})
}

func (u *HandshakeUseCase) generate(ctx context.Context, jobID, actorID string, guard func(entities.Job) (codeView, error)) (IssuedCode, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return IssuedCode{}, ErrInvalidJobID
	}

	j, err := u.repo.GetByID(ctx, jobID)
	if err != nil {
		return IssuedCode{}, err
	}
	if j.ID == "" {
		return IssuedCode{}, ErrJobNotFound
	}

	v, err := guard(j)
	if err != nil {
		return IssuedCode{}, err
	}
	if v.used {
		return IssuedCode{}, ErrCodeAlreadyUsed
	}

	now := u.now().UTC()

	if v.hash == "" {
		return u.issueFresh(ctx, jobID, v, false, now)
	}

	// A hash exists. Re-hash the stored pending-display plaintext and
	// compare; verification never trusts plaintext on its own.
	if v.plaintext != "" && codes.Verify(v.hash, v.plaintext) {
		if v.expiresAt.IsZero() {
			// Legacy row issued before expiries existed: treat it as
			// valid once and backfill a fresh expiry.
			expiresAt := now.Add(u.codeTTL)
			updated, err := u.repo.RefreshCodeExpiry(ctx, jobID, v.slot, expiresAt)
			if err != nil {
				return IssuedCode{}, err
			}
			if updated.ID == "" {
				return IssuedCode{}, ErrCodeAlreadyUsed
			}
			log.Printf("[handshake][usecase] legacy code expiry backfilled job_id=%s slot=%s", jobID, v.slot)
			return IssuedCode{JobID: jobID, Code: v.plaintext, ExpiresAt: expiresAt}, nil
		}
		if now.Before(v.expiresAt) {
			return IssuedCode{JobID: jobID, Code: v.plaintext, ExpiresAt: v.expiresAt}, nil
		}
		// Expired and unused: silent regeneration.
		return u.issueFresh(ctx, jobID, v, true, now)
	}

	// Hash present but no plaintext matches it. Could be a legacy row
	// whose plaintext column was cleared, or corruption; regeneration
	// recovers either way but the anomaly is worth surfacing.
	log.Printf("[handshake][usecase] warn: stored hash has no matching plaintext, regenerating job_id=%s slot=%s", jobID, v.slot)
	return u.issueFresh(ctx, jobID, v, true, now)
}

func (u *HandshakeUseCase) issueFresh(ctx context.Context, jobID string, v codeView, overwrite bool, now time.Time) (IssuedCode, error) {
	code, err := codes.Generate(v.length)
	if err != nil {
		return IssuedCode{}, err
	}
	expiresAt := now.Add(u.codeTTL)

	updated, err := u.repo.WriteCode(ctx, jobID, v.slot, code, codes.Hash(code), expiresAt, overwrite)
	if err != nil {
		return IssuedCode{}, err
	}
	if updated.ID == "" {
		if overwrite {
			// Regeneration is conditioned on the code being unused.
			return IssuedCode{}, ErrCodeAlreadyUsed
		}
		// First-write race: another generation call got there first.
		// Reload and return what it wrote.
		j, err := u.repo.GetByID(ctx, jobID)
		if err != nil {
			return IssuedCode{}, err
		}
		fresh := startView(j)
		if v.slot == interfaces.CodeSlotEnd {
			fresh = endView(j)
		}
		if fresh.plaintext == "" || !codes.Verify(fresh.hash, fresh.plaintext) {
			return IssuedCode{}, ErrCodeAlreadyUsed
		}
		return IssuedCode{JobID: jobID, Code: fresh.plaintext, ExpiresAt: fresh.expiresAt}, nil
	}
	log.Printf("[handshake][usecase] code issued job_id=%s slot=%s expires_at=%s", jobID, v.slot, expiresAt.Format(time.RFC3339))
	return IssuedCode{JobID: jobID, Code: code, ExpiresAt: expiresAt}, nil
}

func (u *HandshakeUseCase) VerifyStartCode(ctx context.Context, jobID, actorID, candidate string) (entities.Job, error) {
	return u.verify(ctx, jobID, candidate, func(j entities.Job) (codeView, error) {
		if !j.IsProvider(actorID) {
			return codeView{}, ErrNotJobProvider
		}
		if !j.CanVerifyStartCode() {
			return codeView{}, ErrJobNotAwaitingCode
		}
		return startView(j), nil
	})
}

func (u *HandshakeUseCase) VerifyEndCode(ctx context.Context, jobID, actorID, candidate string) (entities.Job, error) {
	return u.verify(ctx, jobID, candidate, func(j entities.Job) (codeView, error) {
		if !j.IsCustomer(actorID) {
			return codeView{}, ErrNotJobCustomer
		}
		if !j.CanVerifyEndCode() {
			return codeView{}, ErrJobNotAwaitingCode
		}
		return endView(j), nil
	})
}

func (u *HandshakeUseCase) verify(ctx context.Context, jobID, candidate string, guard func(entities.Job) (codeView, error)) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	candidate = strings.ToUpper(strings.TrimSpace(candidate))
	if candidate == "" {
		return entities.Job{}, ErrInvalidCode
	}

	j, err := u.repo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}

	v, err := guard(j)
	if err != nil {
		return entities.Job{}, err
	}
	if v.used || v.hash == "" {
		return entities.Job{}, ErrInvalidCode
	}
	now := u.now().UTC()
	if !v.expiresAt.IsZero() && now.After(v.expiresAt) {
		return entities.Job{}, ErrInvalidCode
	}
	if !codes.Verify(v.hash, candidate) {
		return entities.Job{}, ErrInvalidCode
	}

	updated, err := u.repo.ConsumeCode(ctx, jobID, v.slot, now)
	if err != nil {
		return entities.Job{}, err
	}
	if updated.ID == "" {
		// Raced with another verification; the code is single-use.
		return entities.Job{}, ErrInvalidCode
	}
	log.Printf("[handshake][usecase] code verified job_id=%s slot=%s status=%s", jobID, v.slot, updated.Status)
	return updated, nil
}
