package usecase

import (
	"context"
	"errors"
	"testing"

	"fundilink/internal/usecase/interfaces"
	mock_interfaces "fundilink/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSplitUseCase_CreateSplitGroup(t *testing.T) {
	valid := SplitGroupCommand{
		Name: "Plumbing commission",
		Type: "percentage",
		Splits: []interfaces.SplitShare{
			{Subaccount: "ACCT_abc", Share: 90},
		},
	}

	t.Run("validation", func(t *testing.T) {
		uc := NewSplitUseCase(mock_interfaces.NewMockIPaymentGateway(gomock.NewController(t)), "KES")

		cases := []struct {
			name    string
			mutate  func(*SplitGroupCommand)
			wantErr error
		}{
			{"missing name", func(c *SplitGroupCommand) { c.Name = "  " }, ErrInvalidSplitName},
			{"bad type", func(c *SplitGroupCommand) { c.Type = "ratio" }, ErrInvalidSplitType},
			{"bad bearer", func(c *SplitGroupCommand) { c.BearerType = "customer" }, ErrInvalidBearerType},
			{"no shares", func(c *SplitGroupCommand) { c.Splits = nil }, ErrInvalidSplitShares},
			{"zero share", func(c *SplitGroupCommand) { c.Splits[0].Share = 0 }, ErrInvalidSplitShares},
			{"bad currency", func(c *SplitGroupCommand) { c.Currency = "EUR" }, ErrUnsupportedCurrency},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				cmd := valid
				cmd.Splits = append([]interfaces.SplitShare(nil), valid.Splits...)
				tc.mutate(&cmd)
				if _, err := uc.CreateSplitGroup(context.Background(), cmd); !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
			})
		}
	})

	t.Run("defaults fill in and the gateway owns the group", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewSplitUseCase(gateway, "KES")

		gateway.EXPECT().CreateSplitGroup(gomock.Any(), gomock.AssignableToTypeOf(interfaces.SplitGroupRequest{})).DoAndReturn(
			func(_ context.Context, req interfaces.SplitGroupRequest) (interfaces.SplitGroup, error) {
				if req.Currency != "KES" || req.BearerType != "account" {
					t.Fatalf("expected defaulted currency and bearer, got %+v", req)
				}
				return interfaces.SplitGroup{SplitCode: "SPL_x1", Name: req.Name, Type: req.Type, Currency: req.Currency, Active: true}, nil
			},
		)

		group, err := uc.CreateSplitGroup(context.Background(), valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if group.SplitCode != "SPL_x1" || !group.Active {
			t.Fatalf("unexpected group: %+v", group)
		}
	})

	t.Run("gateway rejection carries the message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewSplitUseCase(gateway, "KES")

		gateway.EXPECT().CreateSplitGroup(gomock.Any(), gomock.Any()).Return(
			interfaces.SplitGroup{},
			&interfaces.GatewayError{StatusCode: 400, Code: "invalid_subaccount", Message: "subaccount not found"},
		)

		_, err := uc.CreateSplitGroup(context.Background(), valid)
		if !errors.Is(err, ErrGatewayRejected) {
			t.Fatalf("expected ErrGatewayRejected, got %v", err)
		}
	})

	t.Run("gateway outage maps to unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewSplitUseCase(gateway, "KES")

		gateway.EXPECT().CreateSplitGroup(gomock.Any(), gomock.Any()).Return(
			interfaces.SplitGroup{},
			&interfaces.GatewayError{StatusCode: 0, Message: "connection refused"},
		)

		_, err := uc.CreateSplitGroup(context.Background(), valid)
		if !errors.Is(err, ErrUpstreamUnavailable) {
			t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
		}
	})
}

func TestSplitUseCase_ListSplitGroups(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewSplitUseCase(gateway, "KES")

	gateway.EXPECT().ListSplitGroups(gomock.Any()).Return([]interfaces.SplitGroup{
		{SplitCode: "SPL_x1"}, {SplitCode: "SPL_x2"},
	}, nil)

	groups, err := uc.ListSplitGroups(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
}
