package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"fundilink/internal/domain/entities"
	"fundilink/internal/usecase/interfaces"
	"fundilink/pkg/phone"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
)

var (
	ErrInvalidAmount           = errors.New("invalid payment amount")
	ErrUnsupportedCurrency     = errors.New("unsupported currency")
	ErrInvalidPhone            = errors.New("invalid phone number for mobile money")
	ErrJobNotPayable           = errors.New("job status does not allow payment")
	ErrPaymentAlreadyCompleted = errors.New("payment already completed for this job")
	ErrQuoteNotAccepted        = errors.New("quote not accepted")
	ErrAmountOutsideBand       = errors.New("amount outside quote tolerance band")
	ErrGatewayRejected         = errors.New("payment gateway rejected the charge")
	ErrUpstreamUnavailable     = errors.New("payment service temporarily unavailable")
)

const (
	referencePrefix      = "FLK"
	mobileMoneyCurrency  = "KES"
	mpesaProviderCode    = "mpesa"
	channelMobileMoney   = "mobile_money"
	defaultLimitCurrency = "KES"
	paymentProviderName  = "paystack"
)

var supportedCurrencies = map[string]bool{
	"NGN": true, "GHS": true, "ZAR": true, "USD": true, "KES": true,
}

// InitiatePaymentCommand is the validated request for one charge
// attempt. ActorID/ActorEmail come from the verified bearer token, never
// from the request body.
type InitiatePaymentCommand struct {
	JobID         string
	ActorID       string
	ActorEmail    string
	Amount        float64
	Tip           float64
	Currency      string
	Phone         string
	Channel       string
	PartialReason string
}

// PaymentInitiation is the success payload: the reference plus either a
// redirect URL (card flow) or the STK charge status (mobile money).
type PaymentInitiation struct {
	Reference         string
	PaymentMethod     entities.PaymentMethod
	SubaccountRouting string
	AuthorizationURL  string
	Status            string
	DisplayText       string
	Payment           entities.Payment
}

// IPaymentUseCase owns payment initiation and ledger reads.

type IPaymentUseCase interface {
	InitiatePayment(ctx context.Context, cmd InitiatePaymentCommand) (PaymentInitiation, error)
	ListByJobID(ctx context.Context, jobID, actorID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	jobs     interfaces.IJobRepository
	payments interfaces.IPaymentRepository
	payouts  interfaces.IPayoutMethodRepository
	gateway  interfaces.IPaymentGateway

	node              *snowflake.Node
	defaultCurrency   string
	commissionPercent float64
	now               func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	jobs interfaces.IJobRepository,
	payments interfaces.IPaymentRepository,
	payouts interfaces.IPayoutMethodRepository,
	gateway interfaces.IPaymentGateway,
	node *snowflake.Node,
	defaultCurrency string,
	commissionPercent float64,
) *PaymentUseCase {
	defaultCurrency = strings.ToUpper(strings.TrimSpace(defaultCurrency))
	if defaultCurrency == "" {
		defaultCurrency = defaultLimitCurrency
	}
	return &PaymentUseCase{
		jobs:              jobs,
		payments:          payments,
		payouts:           payouts,
		gateway:           gateway,
		node:              node,
		defaultCurrency:   defaultCurrency,
		commissionPercent: commissionPercent,
		now:               time.Now,
	}
}

// InitiatePayment performs the strictly ordered flow:
// validation -> external gateway call -> persistence. Nothing is written
// before the gateway accepts, so a failed call never records a payment
// attempt. Exactly one outbound request is made per invocation; retries
// are the caller's responsibility via the idempotency key.
func (u *PaymentUseCase) InitiatePayment(ctx context.Context, cmd InitiatePaymentCommand) (PaymentInitiation, error) {
	jobID := strings.TrimSpace(cmd.JobID)
	if jobID == "" {
		return PaymentInitiation{}, ErrInvalidJobID
	}
	if cmd.Amount <= 0 || cmd.Amount > entities.MaxPaymentAmount {
		return PaymentInitiation{}, ErrInvalidAmount
	}

	currency := strings.ToUpper(strings.TrimSpace(cmd.Currency))
	if currency == "" {
		currency = u.defaultCurrency
	}
	if !supportedCurrencies[currency] {
		return PaymentInitiation{}, ErrUnsupportedCurrency
	}

	channel := strings.ToLower(strings.TrimSpace(cmd.Channel))
	normalizedPhone := ""
	if p := strings.TrimSpace(cmd.Phone); p != "" {
		norm, err := phone.NormalizeKenyan(p)
		if err != nil {
			// A malformed phone only blocks the request when mobile
			// money was the intent; a card flow just ignores it.
			if channel == channelMobileMoney || currency == mobileMoneyCurrency {
				return PaymentInitiation{}, ErrInvalidPhone
			}
		} else {
			normalizedPhone = norm
		}
	}
	if channel == channelMobileMoney && normalizedPhone == "" {
		return PaymentInitiation{}, ErrInvalidPhone
	}

	if u.gateway == nil {
		return PaymentInitiation{}, errors.New("payment gateway not configured")
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return PaymentInitiation{}, err
	}
	if j.ID == "" {
		return PaymentInitiation{}, ErrJobNotFound
	}
	if !j.IsCustomer(cmd.ActorID) {
		return PaymentInitiation{}, ErrNotJobCustomer
	}
	if !j.PaymentEligible() {
		return PaymentInitiation{}, ErrJobNotPayable
	}
	if j.PaymentStatus == entities.PaymentStatusCompleted {
		return PaymentInitiation{}, ErrPaymentAlreadyCompleted
	}
	if !j.QuoteAccepted {
		return PaymentInitiation{}, ErrQuoteNotAccepted
	}
	if !j.WithinToleranceBand(cmd.Amount) {
		min, max := j.ToleranceBand()
		return PaymentInitiation{}, fmt.Errorf("%w: allowed range is %.2f to %.2f %s", ErrAmountOutsideBand, min, max, currency)
	}

	// Routing is best-effort: a provider without a provisioned
	// subaccount still gets paid, just unsplit.
	subaccount := ""
	if u.payouts != nil {
		if m, err := u.payouts.GetDefaultByProviderID(ctx, j.ProviderID); err != nil {
			log.Printf("[payment][usecase] warn: payout method lookup failed job_id=%s provider_id=%s err=%v", jobID, j.ProviderID, err)
		} else {
			subaccount = m.PaystackSubaccountID
		}
	}

	useMobileMoney := normalizedPhone != "" && (currency == mobileMoneyCurrency || channel == channelMobileMoney)

	now := u.now().UTC()
	reference := fmt.Sprintf("%s-%d-%s", referencePrefix, now.Unix(), strings.ToUpper(uuid.NewString()[:8]))
	idempotencyKey := jobID + "-" + reference
	amountMinor := int64(math.Round(cmd.Amount * 100))
	metadata := map[string]interface{}{
		"job_id":      j.ID,
		"customer_id": j.CustomerID,
		"provider_id": j.ProviderID,
	}

	var (
		method      entities.PaymentMethod
		authURL     string
		status      string
		displayText string
		providerRef string
	)
	if useMobileMoney {
		method = entities.PaymentMethodMpesa
		log.Printf("[payment][usecase] charging mobile money job_id=%s reference=%s currency=%s", jobID, reference, currency)
		resp, err := u.gateway.ChargeMobileMoney(ctx, interfaces.ChargeMobileMoneyRequest{
			Email:          cmd.ActorEmail,
			AmountMinor:    amountMinor,
			Currency:       currency,
			Phone:          normalizedPhone,
			ProviderCode:   mpesaProviderCode,
			Reference:      reference,
			SubaccountCode: subaccount,
			IdempotencyKey: idempotencyKey,
			Metadata:       metadata,
		})
		if err != nil {
			return PaymentInitiation{}, u.mapGatewayError(jobID, err)
		}
		status = resp.Status
		displayText = resp.DisplayText
		providerRef = resp.ProviderReference
	} else {
		method = entities.PaymentMethodCard
		log.Printf("[payment][usecase] initializing transaction job_id=%s reference=%s currency=%s", jobID, reference, currency)
		resp, err := u.gateway.InitializeTransaction(ctx, interfaces.InitializeTransactionRequest{
			Email:          cmd.ActorEmail,
			AmountMinor:    amountMinor,
			Currency:       currency,
			Reference:      reference,
			SubaccountCode: subaccount,
			IdempotencyKey: idempotencyKey,
			Metadata:       metadata,
		})
		if err != nil {
			return PaymentInitiation{}, u.mapGatewayError(jobID, err)
		}
		authURL = resp.AuthorizationURL
	}

	commissionAmount := round2(cmd.Amount * u.commissionPercent / 100)
	providerPayout := round2(cmd.Amount - commissionAmount)
	isPartial := cmd.Amount < j.QuoteTotal

	ledger := entities.Payment{
		ID:                   u.node.Generate().String(),
		JobID:                j.ID,
		CustomerID:           j.CustomerID,
		ProviderID:           j.ProviderID,
		Amount:               cmd.Amount,
		Currency:             currency,
		Status:               entities.PaymentStatusPending,
		PaymentMethod:        method,
		PaymentProvider:      paymentProviderName,
		Reference:            reference,
		ProviderReference:    providerRef,
		PaystackSubaccountID: subaccount,
		IdempotencyKey:       idempotencyKey,
		Metadata:             metadata,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	created, err := u.payments.Create(ctx, ledger)
	if err != nil {
		// The gateway already accepted the charge; losing the ledger row
		// here must be loud so reconciliation can pick it up.
		log.Printf("[payment][usecase] ledger create failed after gateway success job_id=%s reference=%s err=%v", jobID, reference, err)
		return PaymentInitiation{}, err
	}

	updated, err := u.jobs.SetPaymentInitiated(ctx, jobID, interfaces.PaymentInit{
		Amount:               cmd.Amount,
		Tip:                  cmd.Tip,
		Total:                cmd.Amount,
		Method:               method,
		Reference:            reference,
		InitiatedAt:          now,
		IsPartial:            isPartial,
		PartialReason:        strings.TrimSpace(cmd.PartialReason),
		CommissionPercent:    u.commissionPercent,
		CommissionAmount:     commissionAmount,
		ProviderPayout:       providerPayout,
		ProviderPayoutStatus: "pending",
	})
	if err != nil {
		return PaymentInitiation{}, err
	}
	if updated.ID == "" {
		return PaymentInitiation{}, ErrPaymentAlreadyCompleted
	}
	log.Printf("[payment][usecase] initiation success job_id=%s reference=%s method=%s split=%t", jobID, reference, method, subaccount != "")

	return PaymentInitiation{
		Reference:         reference,
		PaymentMethod:     method,
		SubaccountRouting: subaccount,
		AuthorizationURL:  authURL,
		Status:            status,
		DisplayText:       displayText,
		Payment:           created,
	}, nil
}

func (u *PaymentUseCase) ListByJobID(ctx context.Context, jobID, actorID string) ([]entities.Payment, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidJobID
	}
	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if j.ID == "" {
		return nil, ErrJobNotFound
	}
	if !j.IsParty(actorID) {
		return nil, ErrNotJobParty
	}
	return u.payments.ListByJobID(ctx, jobID)
}

// mapGatewayError folds the adapter's typed error into the caller-facing
// taxonomy: request-caused failures surface the gateway's message (it is
// validated upstream input, e.g. "test phone number used with live
// key"); gateway-side failures become a generic unavailable error with
// the detail kept server-side.
func (u *PaymentUseCase) mapGatewayError(jobID string, err error) error {
	var ge *interfaces.GatewayError
	if errors.As(err, &ge) {
		if ge.Temporary() {
			log.Printf("[payment][usecase] gateway unavailable job_id=%s status=%d code=%s message=%s", jobID, ge.StatusCode, ge.Code, ge.Message)
			return ErrUpstreamUnavailable
		}
		log.Printf("[payment][usecase] gateway rejected job_id=%s status=%d code=%s", jobID, ge.StatusCode, ge.Code)
		return fmt.Errorf("%w: %s", ErrGatewayRejected, ge.Message)
	}
	log.Printf("[payment][usecase] gateway call failed job_id=%s err=%v", jobID, err)
	return ErrUpstreamUnavailable
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
