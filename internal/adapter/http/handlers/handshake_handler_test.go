package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fundilink/internal/adapter/http/handlers/mocks"
	"fundilink/internal/domain/entities"
	"fundilink/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestHandshakeHandler_GenerateCode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIHandshakeUseCase(ctrl)
		h := NewHandshakeHandler(uc)

		r := authedRouter("cust-1", "")
		r.POST("/v1/job-codes", h.GenerateCode)

		req := httptest.NewRequest(http.MethodPost, "/v1/job-codes", bytes.NewBufferString(`{"job_id":"job-1","role":"admin"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("customer role issues the start code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIHandshakeUseCase(ctrl)
		h := NewHandshakeHandler(uc)

		r := authedRouter("cust-1", "")
		r.POST("/v1/job-codes", h.GenerateCode)

		expires := time.Date(2025, 6, 1, 12, 10, 0, 0, time.UTC)
		uc.EXPECT().GenerateStartCode(gomock.Any(), "job-1", "cust-1").Return(
			usecase.IssuedCode{JobID: "job-1", Code: "ABCD2345", ExpiresAt: expires}, nil,
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/job-codes", bytes.NewBufferString(`{"job_id":"job-1","role":"customer"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["ok"] != true || body["code"] != "ABCD2345" || body["role"] != "customer" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("provider role issues the end code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIHandshakeUseCase(ctrl)
		h := NewHandshakeHandler(uc)

		r := authedRouter("prov-1", "")
		r.POST("/v1/job-codes", h.GenerateCode)

		uc.EXPECT().GenerateEndCode(gomock.Any(), "job-1", "prov-1").Return(
			usecase.IssuedCode{JobID: "job-1", Code: "WXY234", ExpiresAt: time.Now().Add(10 * time.Minute)}, nil,
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/job-codes", bytes.NewBufferString(`{"job_id":"job-1","role":"provider"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("used code conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIHandshakeUseCase(ctrl)
		h := NewHandshakeHandler(uc)

		r := authedRouter("cust-1", "")
		r.POST("/v1/job-codes", h.GenerateCode)

		uc.EXPECT().GenerateStartCode(gomock.Any(), "job-1", "cust-1").Return(usecase.IssuedCode{}, usecase.ErrCodeAlreadyUsed)

		req := httptest.NewRequest(http.MethodPost, "/v1/job-codes", bytes.NewBufferString(`{"job_id":"job-1","role":"customer"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestHandshakeHandler_VerifyCode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIHandshakeUseCase(ctrl)
		h := NewHandshakeHandler(uc)

		r := authedRouter("prov-1", "")
		r.POST("/v1/job-codes/verify", h.VerifyCode)

		uc.EXPECT().VerifyStartCode(gomock.Any(), "job-1", "prov-1", "WRONG123").Return(entities.Job{}, usecase.ErrInvalidCode)

		req := httptest.NewRequest(http.MethodPost, "/v1/job-codes/verify", bytes.NewBufferString(`{"job_id":"job-1","role":"customer","code":"WRONG123"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["error"] != "INVALID_CODE" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("end verification completes the handshake", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIHandshakeUseCase(ctrl)
		h := NewHandshakeHandler(uc)

		r := authedRouter("cust-1", "")
		r.POST("/v1/job-codes/verify", h.VerifyCode)

		ended := time.Date(2025, 6, 1, 17, 30, 0, 0, time.UTC)
		uc.EXPECT().VerifyEndCode(gomock.Any(), "job-1", "cust-1", "WXY234").Return(entities.Job{
			ID: "job-1", CustomerID: "cust-1", ProviderID: "prov-1",
			Status: entities.JobStatusAwaitingPayment, JobEndTime: ended,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/job-codes/verify", bytes.NewBufferString(`{"job_id":"job-1","role":"provider","code":"WXY234"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			OK         bool   `json:"ok"`
			JobEndTime string `json:"job_end_time"`
			Job        struct {
				Status string `json:"status"`
			} `json:"job"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if !body.OK || body.Job.Status != "awaiting_payment" || body.JobEndTime != "2025-06-01T17:30:00Z" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}
