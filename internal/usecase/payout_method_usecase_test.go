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

func TestPayoutMethodUseCase_AddPayoutMethod(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc := NewPayoutMethodUseCase(nil, nil, 10)

		if _, err := uc.AddPayoutMethod(context.Background(), AddPayoutMethodCommand{Type: entities.PayoutMethodMpesa, AccountNumber: "0712345678"}); !errors.Is(err, ErrInvalidActorID) {
			t.Fatalf("expected ErrInvalidActorID, got %v", err)
		}
		if _, err := uc.AddPayoutMethod(context.Background(), AddPayoutMethodCommand{ProviderID: "prov-1", Type: "cheque", AccountNumber: "123"}); !errors.Is(err, ErrInvalidPayoutType) {
			t.Fatalf("expected ErrInvalidPayoutType, got %v", err)
		}
		if _, err := uc.AddPayoutMethod(context.Background(), AddPayoutMethodCommand{ProviderID: "prov-1", Type: entities.PayoutMethodMpesa, AccountNumber: "12345"}); !errors.Is(err, ErrInvalidAccountNumber) {
			t.Fatalf("expected ErrInvalidAccountNumber for bad msisdn, got %v", err)
		}
	})

	t.Run("first method becomes the default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPayoutMethodRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPayoutMethodUseCase(repo, gateway, 10)

		repo.EXPECT().ListByProviderID(gomock.Any(), "prov-1").Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.PayoutMethod{})).DoAndReturn(
			func(_ context.Context, m entities.PayoutMethod) (entities.PayoutMethod, error) {
				if !m.IsDefault {
					t.Fatalf("first method must default: %+v", m)
				}
				if m.AccountNumber != "254712345678" {
					t.Fatalf("expected normalized msisdn, got %q", m.AccountNumber)
				}
				return m, nil
			},
		)
		gateway.EXPECT().CreateSubaccount(gomock.Any(), gomock.AssignableToTypeOf(interfaces.CreateSubaccountRequest{})).DoAndReturn(
			func(_ context.Context, req interfaces.CreateSubaccountRequest) (interfaces.Subaccount, error) {
				if req.PercentageCharge != 10 {
					t.Fatalf("expected commission percentage, got %v", req.PercentageCharge)
				}
				return interfaces.Subaccount{SubaccountCode: "ACCT_new"}, nil
			},
		)
		repo.EXPECT().SetSubaccount(gomock.Any(), gomock.Any(), "ACCT_new").DoAndReturn(
			func(_ context.Context, id, code string) (entities.PayoutMethod, error) {
				return entities.PayoutMethod{ID: id, ProviderID: "prov-1", PaystackSubaccountID: code, IsDefault: true}, nil
			},
		)

		m, err := uc.AddPayoutMethod(context.Background(), AddPayoutMethodCommand{
			ProviderID:    "prov-1",
			Type:          entities.PayoutMethodMpesa,
			AccountNumber: " 0712345678 ",
			AccountName:   "Juma Plumbing",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.PaystackSubaccountID != "ACCT_new" {
			t.Fatalf("expected attached subaccount, got %+v", m)
		}
	})

	t.Run("make default unsets the previous one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPayoutMethodRepository(ctrl)
		uc := NewPayoutMethodUseCase(repo, nil, 10)

		repo.EXPECT().ListByProviderID(gomock.Any(), "prov-1").Return([]entities.PayoutMethod{{ID: "pm-old", IsDefault: true}}, nil)
		repo.EXPECT().UnsetDefaults(gomock.Any(), "prov-1").Return(nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m entities.PayoutMethod) (entities.PayoutMethod, error) {
				if !m.IsDefault {
					t.Fatalf("expected new default: %+v", m)
				}
				return m, nil
			},
		)

		_, err := uc.AddPayoutMethod(context.Background(), AddPayoutMethodCommand{
			ProviderID:    "prov-1",
			Type:          entities.PayoutMethodBank,
			AccountNumber: "0100200300",
			BankCode:      "063",
			MakeDefault:   true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("second method stays non-default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPayoutMethodRepository(ctrl)
		uc := NewPayoutMethodUseCase(repo, nil, 10)

		repo.EXPECT().ListByProviderID(gomock.Any(), "prov-1").Return([]entities.PayoutMethod{{ID: "pm-old", IsDefault: true}}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m entities.PayoutMethod) (entities.PayoutMethod, error) {
				if m.IsDefault {
					t.Fatalf("second method must not steal the default: %+v", m)
				}
				return m, nil
			},
		)

		_, err := uc.AddPayoutMethod(context.Background(), AddPayoutMethodCommand{
			ProviderID:    "prov-1",
			Type:          entities.PayoutMethodBank,
			AccountNumber: "0100200300",
			BankCode:      "063",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("subaccount failure keeps the persisted method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPayoutMethodRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPayoutMethodUseCase(repo, gateway, 10)

		repo.EXPECT().ListByProviderID(gomock.Any(), "prov-1").Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m entities.PayoutMethod) (entities.PayoutMethod, error) { return m, nil },
		)
		gateway.EXPECT().CreateSubaccount(gomock.Any(), gomock.Any()).Return(
			interfaces.Subaccount{},
			&interfaces.GatewayError{StatusCode: 503, Message: "down"},
		)

		m, err := uc.AddPayoutMethod(context.Background(), AddPayoutMethodCommand{
			ProviderID:    "prov-1",
			Type:          entities.PayoutMethodMpesa,
			AccountNumber: "0712345678",
		})
		if err != nil {
			t.Fatalf("provisioning failure must not fail the add: %v", err)
		}
		if m.ID == "" || m.PaystackSubaccountID != "" {
			t.Fatalf("expected persisted method without routing, got %+v", m)
		}
	})
}

func TestPayoutMethodUseCase_ListPayoutMethods(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPayoutMethodRepository(ctrl)
	uc := NewPayoutMethodUseCase(repo, nil, 10)

	if _, err := uc.ListPayoutMethods(context.Background(), " "); !errors.Is(err, ErrInvalidActorID) {
		t.Fatalf("expected ErrInvalidActorID, got %v", err)
	}

	repo.EXPECT().ListByProviderID(gomock.Any(), "prov-1").Return([]entities.PayoutMethod{{ID: "pm-1"}}, nil)
	methods, err := uc.ListPayoutMethods(context.Background(), "prov-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(methods) != 1 || methods[0].ID != "pm-1" {
		t.Fatalf("unexpected methods: %+v", methods)
	}
}
