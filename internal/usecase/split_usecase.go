package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"fundilink/internal/usecase/interfaces"
)

var (
	ErrInvalidSplitName   = errors.New("split name is required")
	ErrInvalidSplitType   = errors.New("split type must be percentage or flat")
	ErrInvalidSplitShares = errors.New("at least one split with subaccount and share is required")
	ErrInvalidBearerType  = errors.New("invalid bearer type")
)

var validBearerTypes = map[string]bool{
	"all": true, "all-proportional": true, "account": true, "subaccount": true,
}

type SplitGroupCommand struct {
	Name             string
	Type             string
	Currency         string
	BearerType       string
	BearerSubaccount string
	Splits           []interfaces.SplitShare
}

// ISplitUseCase is a thin validated proxy over the gateway's
// transaction-split API. Nothing is persisted locally; the gateway owns
// split groups, and their codes feed payment routing.

type ISplitUseCase interface {
	CreateSplitGroup(ctx context.Context, cmd SplitGroupCommand) (interfaces.SplitGroup, error)
	ListSplitGroups(ctx context.Context) ([]interfaces.SplitGroup, error)
}

type SplitUseCase struct {
	gateway         interfaces.IPaymentGateway
	defaultCurrency string
}

var _ ISplitUseCase = (*SplitUseCase)(nil)

func NewSplitUseCase(gateway interfaces.IPaymentGateway, defaultCurrency string) *SplitUseCase {
	defaultCurrency = strings.ToUpper(strings.TrimSpace(defaultCurrency))
	if defaultCurrency == "" {
		defaultCurrency = defaultLimitCurrency
	}
	return &SplitUseCase{gateway: gateway, defaultCurrency: defaultCurrency}
}

func (u *SplitUseCase) CreateSplitGroup(ctx context.Context, cmd SplitGroupCommand) (interfaces.SplitGroup, error) {
	if u.gateway == nil {
		return interfaces.SplitGroup{}, errors.New("payment gateway not configured")
	}

	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return interfaces.SplitGroup{}, ErrInvalidSplitName
	}
	splitType := strings.ToLower(strings.TrimSpace(cmd.Type))
	if splitType != "percentage" && splitType != "flat" {
		return interfaces.SplitGroup{}, ErrInvalidSplitType
	}
	bearerType := strings.ToLower(strings.TrimSpace(cmd.BearerType))
	if bearerType == "" {
		bearerType = "account"
	}
	if !validBearerTypes[bearerType] {
		return interfaces.SplitGroup{}, ErrInvalidBearerType
	}
	if len(cmd.Splits) == 0 {
		return interfaces.SplitGroup{}, ErrInvalidSplitShares
	}
	for _, s := range cmd.Splits {
		if strings.TrimSpace(s.Subaccount) == "" || s.Share <= 0 {
			return interfaces.SplitGroup{}, ErrInvalidSplitShares
		}
	}
	currency := strings.ToUpper(strings.TrimSpace(cmd.Currency))
	if currency == "" {
		currency = u.defaultCurrency
	}
	if !supportedCurrencies[currency] {
		return interfaces.SplitGroup{}, ErrUnsupportedCurrency
	}

	group, err := u.gateway.CreateSplitGroup(ctx, interfaces.SplitGroupRequest{
		Name:             name,
		Type:             splitType,
		Currency:         currency,
		BearerType:       bearerType,
		BearerSubaccount: strings.TrimSpace(cmd.BearerSubaccount),
		Splits:           cmd.Splits,
	})
	if err != nil {
		return interfaces.SplitGroup{}, mapSplitGatewayError(err)
	}
	log.Printf("[split][usecase] split group created split_code=%s type=%s", group.SplitCode, group.Type)
	return group, nil
}

func (u *SplitUseCase) ListSplitGroups(ctx context.Context) ([]interfaces.SplitGroup, error) {
	if u.gateway == nil {
		return nil, errors.New("payment gateway not configured")
	}
	groups, err := u.gateway.ListSplitGroups(ctx)
	if err != nil {
		return nil, mapSplitGatewayError(err)
	}
	return groups, nil
}

func mapSplitGatewayError(err error) error {
	var ge *interfaces.GatewayError
	if errors.As(err, &ge) {
		if ge.Temporary() {
			log.Printf("[split][usecase] gateway unavailable status=%d code=%s message=%s", ge.StatusCode, ge.Code, ge.Message)
			return ErrUpstreamUnavailable
		}
		return fmt.Errorf("%w: %s", ErrGatewayRejected, ge.Message)
	}
	log.Printf("[split][usecase] gateway call failed err=%v", err)
	return ErrUpstreamUnavailable
}
