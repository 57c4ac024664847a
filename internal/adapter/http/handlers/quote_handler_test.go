package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fundilink/internal/adapter/http/handlers/mocks"
	"fundilink/internal/domain/entities"
	"fundilink/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_SubmitQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("duplicate submission conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := authedRouter("prov-1", "")
		r.POST("/v1/jobs/:job_id/quote", h.SubmitQuote)

		uc.EXPECT().SubmitQuote(gomock.Any(), "job-1", "prov-1", 1200.0, 300.0, "").Return(entities.Job{}, usecase.ErrQuoteAlreadyLocked)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/quote", bytes.NewBufferString(`{"labor":1200,"materials":300}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["error"] != "QUOTE_ALREADY_LOCKED" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := authedRouter("prov-1", "")
		r.POST("/v1/jobs/:job_id/quote", h.SubmitQuote)

		uc.EXPECT().SubmitQuote(gomock.Any(), "job-1", "prov-1", 1200.0, 300.0, "labor + pipes").Return(entities.Job{
			ID: "job-1", QuoteLocked: true, QuoteTotal: 1500, Status: entities.JobStatusPending,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/quote", bytes.NewBufferString(`{"labor":1200,"materials":300,"breakdown":"labor + pipes"}`))
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
		if body["quote_locked"] != true || body["quote_total"] != 1500.0 {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestQuoteHandler_RespondToQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown response word", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := authedRouter("cust-1", "")
		r.POST("/v1/jobs/:job_id/quote/response", h.RespondToQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/quote/response", bytes.NewBufferString(`{"response":"maybe"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("accept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := authedRouter("cust-1", "")
		r.POST("/v1/jobs/:job_id/quote/response", h.RespondToQuote)

		uc.EXPECT().RespondToQuote(gomock.Any(), "job-1", "cust-1", true).Return(entities.Job{
			ID: "job-1", Status: entities.JobStatusConfirmed, QuoteAccepted: true,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/quote/response", bytes.NewBufferString(`{"response":"accept"}`))
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
		if body["status"] != "confirmed" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
