package usecase

import (
	"context"
	"errors"
	"testing"

	"fundilink/internal/domain/entities"
	mock_interfaces "fundilink/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestJobUseCase_CreateJob(t *testing.T) {
	t.Run("missing customer", func(t *testing.T) {
		uc := NewJobUseCase(nil)
		_, err := uc.CreateJob(context.Background(), "  ", "prov-1", "plumbing")
		if !errors.Is(err, ErrInvalidActorID) {
			t.Fatalf("expected ErrInvalidActorID, got %v", err)
		}
	})

	t.Run("provider equals customer", func(t *testing.T) {
		uc := NewJobUseCase(nil)
		_, err := uc.CreateJob(context.Background(), "u-1", "u-1", "plumbing")
		if !errors.Is(err, ErrInvalidProviderID) {
			t.Fatalf("expected ErrInvalidProviderID, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.ID == "" || j.CustomerID != "cust-1" || j.ProviderID != "prov-1" {
					t.Fatalf("unexpected job: %+v", j)
				}
				if j.Status != entities.JobStatusPending {
					t.Fatalf("expected pending status, got %s", j.Status)
				}
				if j.CreatedAt.IsZero() || j.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return j, nil
			},
		)

		j, err := uc.CreateJob(context.Background(), " cust-1 ", " prov-1 ", " plumbing ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if j.Service != "plumbing" {
			t.Fatalf("expected trimmed service, got %q", j.Service)
		}
	})
}

func TestJobUseCase_GetJob(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{}, nil)

		_, err := uc.GetJob(context.Background(), "job-1", "cust-1")
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", CustomerID: "cust-1", ProviderID: "prov-1"}, nil)

		_, err := uc.GetJob(context.Background(), "job-1", "stranger")
		if !errors.Is(err, ErrNotJobParty) {
			t.Fatalf("expected ErrNotJobParty, got %v", err)
		}
	})

	t.Run("either party can read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo)

		stored := entities.Job{ID: "job-1", CustomerID: "cust-1", ProviderID: "prov-1"}
		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(stored, nil).Times(2)

		for _, actor := range []string{"cust-1", "prov-1"} {
			j, err := uc.GetJob(context.Background(), "job-1", actor)
			if err != nil {
				t.Fatalf("unexpected error for %s: %v", actor, err)
			}
			if j.ID != "job-1" {
				t.Fatalf("unexpected job: %+v", j)
			}
		}
	})
}
