package interfaces

import (
	"context"
	"encoding/json"
	"fmt"
)

// IPaymentGateway abstracts the external charge service (Paystack).
//
// The adapter parses the upstream response envelope at the boundary and
// returns either typed values or a *GatewayError; the untyped upstream
// shape never crosses this interface.
type IPaymentGateway interface {
	// InitializeTransaction starts a redirect/authorization-url flow.
	InitializeTransaction(ctx context.Context, req InitializeTransactionRequest) (InitializeTransactionResponse, error)

	// ChargeMobileMoney starts a direct STK-style mobile-money charge.
	ChargeMobileMoney(ctx context.Context, req ChargeMobileMoneyRequest) (ChargeResponse, error)

	// CreateSubaccount provisions a payout subaccount for commission
	// routing.
	CreateSubaccount(ctx context.Context, req CreateSubaccountRequest) (Subaccount, error)

	// CreateSplitGroup and ListSplitGroups proxy the gateway's
	// transaction-split API; split groups are not persisted locally.
	CreateSplitGroup(ctx context.Context, req SplitGroupRequest) (SplitGroup, error)
	ListSplitGroups(ctx context.Context) ([]SplitGroup, error)
}

// InitializeTransactionRequest uses the gateway's minor currency units
// (AmountMinor = amount * 100).
type InitializeTransactionRequest struct {
	Email          string
	AmountMinor    int64
	Currency       string
	Reference      string
	SubaccountCode string
	IdempotencyKey string
	Metadata       map[string]interface{}
}

type InitializeTransactionResponse struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
}

type ChargeMobileMoneyRequest struct {
	Email          string
	AmountMinor    int64
	Currency       string
	Phone          string
	ProviderCode   string
	Reference      string
	SubaccountCode string
	IdempotencyKey string
	Metadata       map[string]interface{}
}

// ChargeResponse reports the state of a direct charge. Status is the
// gateway's charge status (e.g. "pay_offline" / "send_otp" /
// "success"); DisplayText is safe to show to the payer.
type ChargeResponse struct {
	Status            string
	DisplayText       string
	Reference         string
	ProviderReference string
	Raw               json.RawMessage
}

type CreateSubaccountRequest struct {
	BusinessName     string
	BankCode         string
	AccountNumber    string
	PercentageCharge float64
}

type Subaccount struct {
	SubaccountCode string
	BusinessName   string
	AccountNumber  string
}

type SplitShare struct {
	Subaccount string  `json:"subaccount"`
	Share      float64 `json:"share"`
}

type SplitGroupRequest struct {
	Name             string
	Type             string
	Currency         string
	BearerType       string
	BearerSubaccount string
	Splits           []SplitShare
}

type SplitGroup struct {
	SplitCode        string       `json:"split_code"`
	Name             string       `json:"name"`
	Type             string       `json:"type"`
	Currency         string       `json:"currency"`
	BearerType       string       `json:"bearer_type"`
	BearerSubaccount string       `json:"bearer_subaccount,omitempty"`
	Active           bool         `json:"active"`
	Splits           []SplitShare `json:"splits"`
}

// GatewayError is the closed error shape produced at the gateway
// boundary. StatusCode 0 means the gateway was unreachable.
type GatewayError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway error status=%d code=%s message=%s", e.StatusCode, e.Code, e.Message)
}

// Temporary reports whether the failure is on the gateway side (5xx or
// network) rather than caused by the request.
func (e *GatewayError) Temporary() bool {
	return e.StatusCode == 0 || e.StatusCode >= 500
}
