package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"fundilink/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrMissingPaystackSecretKey = errors.New("missing PAYSTACK_SECRET_KEY")

const defaultPaystackBaseURL = "https://api.paystack.co"

// PaystackGateway talks to the Paystack REST API over plain HTTP. Every
// response goes through the {status, message, data} envelope; anything
// other than a 2xx with status=true becomes a *interfaces.GatewayError.
//
// Mock mode (PAYMENT_GATEWAY_MOCK) returns canned successful responses
// so the whole flow runs without upstream credentials.

type PaystackGateway struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
	mockMode   bool
}

var _ interfaces.IPaymentGateway = (*PaystackGateway)(nil)

func NewPaystackGateway(secretKey string) (*PaystackGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &PaystackGateway{mockMode: true}, nil
	}

	if secretKey == "" {
		log.Printf("[payment][gateway] missing PAYSTACK_SECRET_KEY")
		return nil, ErrMissingPaystackSecretKey
	}

	baseURL := strings.TrimRight(getenvDefault("PAYSTACK_BASE_URL", defaultPaystackBaseURL), "/")
	log.Printf("[payment][gateway] paystack client initialized base_url=%s", baseURL)

	return &PaystackGateway{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		secretKey:  secretKey,
	}, nil
}

// envelope is Paystack's uniform response wrapper.
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Code    string          `json:"code"`
	Data    json.RawMessage `json:"data"`
}

func (g *PaystackGateway) InitializeTransaction(ctx context.Context, req interfaces.InitializeTransactionRequest) (interfaces.InitializeTransactionResponse, error) {
	if g.mockMode {
		log.Printf("[payment][gateway] mock initialize reference=%s amount_minor=%d currency=%s", req.Reference, req.AmountMinor, req.Currency)
		return interfaces.InitializeTransactionResponse{
			AuthorizationURL: "https://checkout.example.test/" + req.Reference,
			AccessCode:       uuid.NewString(),
			Reference:        req.Reference,
		}, nil
	}

	body := map[string]interface{}{
		"email":     req.Email,
		"amount":    req.AmountMinor,
		"currency":  req.Currency,
		"reference": req.Reference,
	}
	if req.SubaccountCode != "" {
		body["subaccount"] = req.SubaccountCode
	}
	if len(req.Metadata) > 0 {
		body["metadata"] = req.Metadata
	}

	var data struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	}
	if _, err := g.post(ctx, "/transaction/initialize", body, req.IdempotencyKey, &data); err != nil {
		return interfaces.InitializeTransactionResponse{}, err
	}

	log.Printf("[payment][gateway] initialize success reference=%s", data.Reference)
	return interfaces.InitializeTransactionResponse{
		AuthorizationURL: data.AuthorizationURL,
		AccessCode:       data.AccessCode,
		Reference:        data.Reference,
	}, nil
}

func (g *PaystackGateway) ChargeMobileMoney(ctx context.Context, req interfaces.ChargeMobileMoneyRequest) (interfaces.ChargeResponse, error) {
	if g.mockMode {
		log.Printf("[payment][gateway] mock charge reference=%s phone=%s", req.Reference, req.Phone)
		raw, _ := json.Marshal(map[string]string{"status": "pay_offline", "reference": req.Reference})
		return interfaces.ChargeResponse{
			Status:            "pay_offline",
			DisplayText:       "Check your phone to authorize the payment",
			Reference:         req.Reference,
			ProviderReference: uuid.NewString(),
			Raw:               raw,
		}, nil
	}

	body := map[string]interface{}{
		"email":     req.Email,
		"amount":    req.AmountMinor,
		"currency":  req.Currency,
		"reference": req.Reference,
		"mobile_money": map[string]string{
			"phone":    req.Phone,
			"provider": req.ProviderCode,
		},
	}
	if req.SubaccountCode != "" {
		body["subaccount"] = req.SubaccountCode
	}
	if len(req.Metadata) > 0 {
		body["metadata"] = req.Metadata
	}

	var data struct {
		Status      string `json:"status"`
		DisplayText string `json:"display_text"`
		Reference   string `json:"reference"`
		ID          int64  `json:"id"`
	}
	raw, err := g.post(ctx, "/charge", body, req.IdempotencyKey, &data)
	if err != nil {
		return interfaces.ChargeResponse{}, err
	}

	log.Printf("[payment][gateway] charge accepted reference=%s charge_status=%s", data.Reference, data.Status)
	return interfaces.ChargeResponse{
		Status:            data.Status,
		DisplayText:       data.DisplayText,
		Reference:         data.Reference,
		ProviderReference: fmt.Sprintf("%d", data.ID),
		Raw:               raw,
	}, nil
}

func (g *PaystackGateway) CreateSubaccount(ctx context.Context, req interfaces.CreateSubaccountRequest) (interfaces.Subaccount, error) {
	if g.mockMode {
		code := "ACCT_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		log.Printf("[payment][gateway] mock subaccount business_name=%s code=%s", req.BusinessName, code)
		return interfaces.Subaccount{
			SubaccountCode: code,
			BusinessName:   req.BusinessName,
			AccountNumber:  req.AccountNumber,
		}, nil
	}

	body := map[string]interface{}{
		"business_name":     req.BusinessName,
		"settlement_bank":   req.BankCode,
		"account_number":    req.AccountNumber,
		"percentage_charge": req.PercentageCharge,
	}

	var data struct {
		SubaccountCode string `json:"subaccount_code"`
		BusinessName   string `json:"business_name"`
		AccountNumber  string `json:"account_number"`
	}
	if _, err := g.post(ctx, "/subaccount", body, "", &data); err != nil {
		return interfaces.Subaccount{}, err
	}

	log.Printf("[payment][gateway] subaccount created code=%s", data.SubaccountCode)
	return interfaces.Subaccount{
		SubaccountCode: data.SubaccountCode,
		BusinessName:   data.BusinessName,
		AccountNumber:  data.AccountNumber,
	}, nil
}

func (g *PaystackGateway) CreateSplitGroup(ctx context.Context, req interfaces.SplitGroupRequest) (interfaces.SplitGroup, error) {
	if g.mockMode {
		code := "SPL_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
		log.Printf("[payment][gateway] mock split group name=%s code=%s", req.Name, code)
		return interfaces.SplitGroup{
			SplitCode:        code,
			Name:             req.Name,
			Type:             req.Type,
			Currency:         req.Currency,
			BearerType:       req.BearerType,
			BearerSubaccount: req.BearerSubaccount,
			Active:           true,
			Splits:           req.Splits,
		}, nil
	}

	subaccounts := make([]map[string]interface{}, 0, len(req.Splits))
	for _, s := range req.Splits {
		subaccounts = append(subaccounts, map[string]interface{}{
			"subaccount": s.Subaccount,
			"share":      s.Share,
		})
	}
	body := map[string]interface{}{
		"name":        req.Name,
		"type":        req.Type,
		"currency":    req.Currency,
		"bearer_type": req.BearerType,
		"subaccounts": subaccounts,
	}
	if req.BearerSubaccount != "" {
		body["bearer_subaccount"] = req.BearerSubaccount
	}

	var data splitGroupData
	if _, err := g.post(ctx, "/split", body, "", &data); err != nil {
		return interfaces.SplitGroup{}, err
	}

	log.Printf("[payment][gateway] split group created split_code=%s", data.SplitCode)
	return data.toSplitGroup(), nil
}

func (g *PaystackGateway) ListSplitGroups(ctx context.Context) ([]interfaces.SplitGroup, error) {
	if g.mockMode {
		return []interfaces.SplitGroup{}, nil
	}

	var data []splitGroupData
	if _, err := g.get(ctx, "/split", &data); err != nil {
		return nil, err
	}

	groups := make([]interfaces.SplitGroup, 0, len(data))
	for _, d := range data {
		groups = append(groups, d.toSplitGroup())
	}
	return groups, nil
}

type splitGroupData struct {
	SplitCode        string `json:"split_code"`
	Name             string `json:"name"`
	Type             string `json:"type"`
	Currency         string `json:"currency"`
	BearerType       string `json:"bearer_type"`
	BearerSubaccount string `json:"bearer_subaccount"`
	Active           bool   `json:"active"`

	Subaccounts []struct {
		Subaccount struct {
			SubaccountCode string `json:"subaccount_code"`
		} `json:"subaccount"`
		Share float64 `json:"share"`
	} `json:"subaccounts"`
}

func (d splitGroupData) toSplitGroup() interfaces.SplitGroup {
	splits := make([]interfaces.SplitShare, 0, len(d.Subaccounts))
	for _, s := range d.Subaccounts {
		splits = append(splits, interfaces.SplitShare{
			Subaccount: s.Subaccount.SubaccountCode,
			Share:      s.Share,
		})
	}
	return interfaces.SplitGroup{
		SplitCode:        d.SplitCode,
		Name:             d.Name,
		Type:             d.Type,
		Currency:         d.Currency,
		BearerType:       d.BearerType,
		BearerSubaccount: d.BearerSubaccount,
		Active:           d.Active,
		Splits:           splits,
	}
}

func (g *PaystackGateway) post(ctx context.Context, path string, body interface{}, idempotencyKey string, out interface{}) (json.RawMessage, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &interfaces.GatewayError{Message: fmt.Sprintf("encode request: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, &interfaces.GatewayError{Message: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	return g.do(req, out)
}

func (g *PaystackGateway) get(ctx context.Context, path string, out interface{}) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, nil)
	if err != nil {
		return nil, &interfaces.GatewayError{Message: fmt.Sprintf("build request: %v", err)}
	}
	return g.do(req, out)
}

func (g *PaystackGateway) do(req *http.Request, out interface{}) (json.RawMessage, error) {
	req.Header.Set("Authorization", "Bearer "+g.secretKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("[payment][gateway] request failed path=%s err=%v", req.URL.Path, err)
		return nil, &interfaces.GatewayError{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		log.Printf("[payment][gateway] read body failed path=%s err=%v", req.URL.Path, err)
		return nil, &interfaces.GatewayError{Message: err.Error()}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		log.Printf("[payment][gateway] malformed envelope path=%s http_status=%d", req.URL.Path, resp.StatusCode)
		return nil, &interfaces.GatewayError{StatusCode: resp.StatusCode, Message: "malformed gateway response"}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Status {
		status := resp.StatusCode
		if status >= 200 && status < 300 {
			// status=false inside a 2xx still means the request was declined.
			status = http.StatusBadRequest
		}
		log.Printf("[payment][gateway] upstream rejected path=%s http_status=%d code=%s message=%s", req.URL.Path, resp.StatusCode, env.Code, env.Message)
		return nil, &interfaces.GatewayError{StatusCode: status, Code: env.Code, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			log.Printf("[payment][gateway] decode data failed path=%s err=%v", req.URL.Path, err)
			return nil, &interfaces.GatewayError{StatusCode: resp.StatusCode, Message: "malformed gateway response data"}
		}
	}
	return env.Data, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "PAYSTACK_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
