package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"fundilink/internal/domain/entities"
	"fundilink/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound       = errors.New("job not found")
	ErrInvalidJobID      = errors.New("invalid job_id")
	ErrInvalidActorID    = errors.New("invalid actor id")
	ErrNotJobCustomer    = errors.New("actor is not the job's customer")
	ErrNotJobProvider    = errors.New("actor is not the job's provider")
	ErrNotJobParty       = errors.New("actor is not a party to this job")
	ErrInvalidProviderID = errors.New("invalid provider_id")
)

// IJobUseCase exposes the booking surface that feeds the lifecycle:
// creating a pending job and party-only reads.

type IJobUseCase interface {
	CreateJob(ctx context.Context, customerID, providerID, service string) (entities.Job, error)
	GetJob(ctx context.Context, jobID, actorID string) (entities.Job, error)
}

type JobUseCase struct {
	repo interfaces.IJobRepository
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(repo interfaces.IJobRepository) *JobUseCase {
	return &JobUseCase{repo: repo}
}

func (u *JobUseCase) CreateJob(ctx context.Context, customerID, providerID, service string) (entities.Job, error) {
	customerID = strings.TrimSpace(customerID)
	providerID = strings.TrimSpace(providerID)
	if customerID == "" {
		return entities.Job{}, ErrInvalidActorID
	}
	if providerID == "" || providerID == customerID {
		return entities.Job{}, ErrInvalidProviderID
	}

	now := time.Now().UTC()
	j := entities.Job{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		ProviderID: providerID,
		Service:    strings.TrimSpace(service),
		Status:     entities.JobStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return u.repo.Create(ctx, j)
}

func (u *JobUseCase) GetJob(ctx context.Context, jobID, actorID string) (entities.Job, error) {
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
	if !j.IsParty(actorID) {
		return entities.Job{}, ErrNotJobParty
	}
	return j, nil
}
