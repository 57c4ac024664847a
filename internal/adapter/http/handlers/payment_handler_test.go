package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"fundilink/internal/adapter/http/handlers/mocks"
	"fundilink/internal/domain/entities"
	"fundilink/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_InitiatePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := authedRouter("cust-1", "cust@example.com")
		r.POST("/v1/payments/initiate", h.InitiatePayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/initiate", bytes.NewBufferString(`{"job_id":"job-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for missing amount, got %d", w.Code)
		}
	})

	t.Run("actor identity comes from the token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := authedRouter("cust-1", "cust@example.com")
		r.POST("/v1/payments/initiate", h.InitiatePayment)

		uc.EXPECT().InitiatePayment(gomock.Any(), gomock.AssignableToTypeOf(usecase.InitiatePaymentCommand{})).DoAndReturn(
			func(_ context.Context, cmd usecase.InitiatePaymentCommand) (usecase.PaymentInitiation, error) {
				if cmd.ActorID != "cust-1" || cmd.ActorEmail != "cust@example.com" {
					t.Fatalf("actor must come from the token, got %+v", cmd)
				}
				return usecase.PaymentInitiation{
					Reference:     "FLK-1-ABCDEF12",
					PaymentMethod: entities.PaymentMethodMpesa,
					Status:        "pay_offline",
					DisplayText:   "Check your phone",
					Payment:       entities.Payment{ID: "p-1", JobID: cmd.JobID, Amount: cmd.Amount, Currency: "KES"},
				}, nil
			},
		)

		body := `{"job_id":"job-1","amount":1000,"phone":"0712345678"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/initiate", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if resp["ok"] != true || resp["payment_method"] != "mpesa" || resp["status"] != "pay_offline" {
			t.Fatalf("unexpected body: %v", resp)
		}
		if _, present := resp["authorization_url"]; present {
			t.Fatalf("mobile money must not carry a redirect url: %v", resp)
		}
	})

	t.Run("error mapping", func(t *testing.T) {
		cases := []struct {
			name       string
			err        error
			wantStatus int
			wantCode   string
		}{
			{"outside band", fmt.Errorf("%w: allowed range is 500.00 to 1500.00 KES", usecase.ErrAmountOutsideBand), http.StatusBadRequest, "AMOUNT_OUTSIDE_BAND"},
			{"quote not accepted", usecase.ErrQuoteNotAccepted, http.StatusConflict, "QUOTE_NOT_ACCEPTED"},
			{"not payable", usecase.ErrJobNotPayable, http.StatusConflict, "JOB_NOT_PAYABLE"},
			{"already paid", usecase.ErrPaymentAlreadyCompleted, http.StatusConflict, "PAYMENT_ALREADY_COMPLETED"},
			{"gateway rejected", fmt.Errorf("%w: card declined", usecase.ErrGatewayRejected), http.StatusBadRequest, "GATEWAY_REJECTED"},
			{"gateway down", usecase.ErrUpstreamUnavailable, http.StatusBadGateway, "UPSTREAM_UNAVAILABLE"},
			{"not the customer", usecase.ErrNotJobCustomer, http.StatusForbidden, "FORBIDDEN"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockIPaymentUseCase(ctrl)
				h := NewPaymentHandler(uc)

				r := authedRouter("cust-1", "cust@example.com")
				r.POST("/v1/payments/initiate", h.InitiatePayment)

				uc.EXPECT().InitiatePayment(gomock.Any(), gomock.Any()).Return(usecase.PaymentInitiation{}, tc.err)

				req := httptest.NewRequest(http.MethodPost, "/v1/payments/initiate", bytes.NewBufferString(`{"job_id":"job-1","amount":1000}`))
				req.Header.Set("Content-Type", "application/json")
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)

				if w.Code != tc.wantStatus {
					t.Fatalf("expected %d, got %d", tc.wantStatus, w.Code)
				}
				var resp map[string]any
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("invalid body: %v", err)
				}
				if resp["ok"] != false || resp["error"] != tc.wantCode {
					t.Fatalf("unexpected body: %v", resp)
				}
			})
		}
	})
}

func TestPaymentHandler_ListJobPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := authedRouter("prov-1", "")
		r.GET("/v1/jobs/:job_id/payments", h.ListJobPayments)

		uc.EXPECT().ListByJobID(gomock.Any(), "job-1", "prov-1").Return([]entities.Payment{
			{ID: "p-1", JobID: "job-1", Amount: 500, Currency: "KES"},
			{ID: "p-2", JobID: "job-1", Amount: 500, Currency: "KES"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			OK       bool `json:"ok"`
			Payments []struct {
				ID string `json:"id"`
			} `json:"payments"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if !resp.OK || len(resp.Payments) != 2 {
			t.Fatalf("unexpected body: %+v", resp)
		}
	})

	t.Run("forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := authedRouter("stranger", "")
		r.GET("/v1/jobs/:job_id/payments", h.ListJobPayments)

		uc.EXPECT().ListByJobID(gomock.Any(), "job-1", "stranger").Return(nil, usecase.ErrNotJobParty)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}
