package usecase

import (
	"context"
	"errors"
	"testing"

	"fundilink/internal/domain/entities"
	"fundilink/internal/usecase/interfaces"
	mock_interfaces "fundilink/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestQuoteUseCase_SubmitQuote(t *testing.T) {
	quotable := entities.Job{ID: "job-1", CustomerID: "cust-1", ProviderID: "prov-1", Status: entities.JobStatusPending}

	t.Run("invalid amounts", func(t *testing.T) {
		uc := NewQuoteUseCase(nil)
		if _, err := uc.SubmitQuote(context.Background(), "job-1", "prov-1", 0, 10, ""); !errors.Is(err, ErrInvalidQuoteAmount) {
			t.Fatalf("expected ErrInvalidQuoteAmount for zero labor, got %v", err)
		}
		if _, err := uc.SubmitQuote(context.Background(), "job-1", "prov-1", 100, -1, ""); !errors.Is(err, ErrInvalidQuoteAmount) {
			t.Fatalf("expected ErrInvalidQuoteAmount for negative materials, got %v", err)
		}
	})

	t.Run("total over ceiling", func(t *testing.T) {
		uc := NewQuoteUseCase(nil)
		_, err := uc.SubmitQuote(context.Background(), "job-1", "prov-1", entities.QuoteCeiling, 1, "")
		if !errors.Is(err, ErrQuoteTooLarge) {
			t.Fatalf("expected ErrQuoteTooLarge, got %v", err)
		}
	})

	t.Run("customer cannot quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(quotable, nil)

		_, err := uc.SubmitQuote(context.Background(), "job-1", "cust-1", 100, 50, "")
		if !errors.Is(err, ErrNotJobProvider) {
			t.Fatalf("expected ErrNotJobProvider, got %v", err)
		}
	})

	t.Run("already locked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		locked := quotable
		locked.QuoteLocked = true
		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(locked, nil)

		_, err := uc.SubmitQuote(context.Background(), "job-1", "prov-1", 100, 50, "")
		if !errors.Is(err, ErrQuoteAlreadyLocked) {
			t.Fatalf("expected ErrQuoteAlreadyLocked, got %v", err)
		}
	})

	t.Run("lost the lock race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(quotable, nil)
		repo.EXPECT().LockQuote(gomock.Any(), "job-1", gomock.Any()).Return(entities.Job{}, nil)

		_, err := uc.SubmitQuote(context.Background(), "job-1", "prov-1", 100, 50, "")
		if !errors.Is(err, ErrQuoteAlreadyLocked) {
			t.Fatalf("expected ErrQuoteAlreadyLocked after lost CAS, got %v", err)
		}
	})

	t.Run("submit success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(quotable, nil)
		repo.EXPECT().LockQuote(gomock.Any(), "job-1", gomock.AssignableToTypeOf(interfaces.QuoteLock{})).DoAndReturn(
			func(_ context.Context, _ string, q interfaces.QuoteLock) (entities.Job, error) {
				if q.Labor != 1200 || q.Materials != 300 || q.Total != 1500 {
					t.Fatalf("unexpected quote lock: %+v", q)
				}
				if q.Breakdown != "labor + pipes" {
					t.Fatalf("expected trimmed breakdown, got %q", q.Breakdown)
				}
				if q.SubmittedAt.IsZero() {
					t.Fatalf("expected submission timestamp")
				}
				out := quotable
				out.QuoteLocked = true
				out.QuoteTotal = q.Total
				return out, nil
			},
		)

		j, err := uc.SubmitQuote(context.Background(), "job-1", "prov-1", 1200, 300, " labor + pipes ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !j.QuoteLocked || j.QuoteTotal != 1500 {
			t.Fatalf("unexpected job: %+v", j)
		}
	})
}

func TestQuoteUseCase_RespondToQuote(t *testing.T) {
	withQuote := entities.Job{
		ID: "job-1", CustomerID: "cust-1", ProviderID: "prov-1",
		Status: entities.JobStatusPending, QuoteLocked: true, QuoteTotal: 1500,
	}

	t.Run("provider cannot respond", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(withQuote, nil)

		_, err := uc.RespondToQuote(context.Background(), "job-1", "prov-1", true)
		if !errors.Is(err, ErrNotJobCustomer) {
			t.Fatalf("expected ErrNotJobCustomer, got %v", err)
		}
	})

	t.Run("no quote yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		bare := entities.Job{ID: "job-1", CustomerID: "cust-1", ProviderID: "prov-1", Status: entities.JobStatusPending}
		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(bare, nil)

		_, err := uc.RespondToQuote(context.Background(), "job-1", "cust-1", true)
		if !errors.Is(err, ErrNoQuote) {
			t.Fatalf("expected ErrNoQuote, got %v", err)
		}
	})

	t.Run("already answered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		answered := withQuote
		answered.QuoteAccepted = true
		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(answered, nil)

		_, err := uc.RespondToQuote(context.Background(), "job-1", "cust-1", false)
		if !errors.Is(err, ErrQuoteAlreadyAnswered) {
			t.Fatalf("expected ErrQuoteAlreadyAnswered, got %v", err)
		}
	})

	t.Run("accept confirms the job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		confirmed := withQuote
		confirmed.QuoteAccepted = true
		confirmed.Status = entities.JobStatusConfirmed
		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(withQuote, nil)
		repo.EXPECT().SetQuoteResponse(gomock.Any(), "job-1", true, gomock.Any()).Return(confirmed, nil)

		j, err := uc.RespondToQuote(context.Background(), "job-1", "cust-1", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if j.Status != entities.JobStatusConfirmed || !j.QuoteAccepted {
			t.Fatalf("unexpected job: %+v", j)
		}
	})

	t.Run("reject cancels the job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		cancelled := withQuote
		cancelled.Status = entities.JobStatusCancelled
		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(withQuote, nil)
		repo.EXPECT().SetQuoteResponse(gomock.Any(), "job-1", false, gomock.Any()).Return(cancelled, nil)

		j, err := uc.RespondToQuote(context.Background(), "job-1", "cust-1", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if j.Status != entities.JobStatusCancelled {
			t.Fatalf("expected cancelled, got %s", j.Status)
		}
	})
}
