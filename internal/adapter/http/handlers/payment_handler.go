package handlers

import (
	"errors"
	"log"
	"net/http"

	request "fundilink/internal/adapter/http/dto/request"
	response "fundilink/internal/adapter/http/dto/response"
	"fundilink/internal/adapter/http/middleware"
	"fundilink/internal/usecase"
	"fundilink/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler handles payment initiation and the per-job ledger read.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

func (h *PaymentHandler) InitiatePayment(c *gin.Context) {
	var payload request.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	actorID := middleware.ActorID(c)
	log.Printf("[payment][handler] initiate start job_id=%s customer_id=%s amount=%.2f", payload.JobID, actorID, payload.Amount)

	result, err := h.usecase.InitiatePayment(c.Request.Context(), usecase.InitiatePaymentCommand{
		JobID:         payload.JobID,
		ActorID:       actorID,
		ActorEmail:    middleware.ActorEmail(c),
		Amount:        payload.Amount,
		Tip:           payload.Tip,
		Currency:      payload.Currency,
		Phone:         payload.Phone,
		Channel:       payload.Channel,
		PartialReason: payload.PartialReason,
	})
	if err != nil {
		log.Printf("[payment][handler] initiate failed job_id=%s err=%v", payload.JobID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] initiate success job_id=%s reference=%s method=%s", payload.JobID, result.Reference, result.PaymentMethod)

	c.JSON(http.StatusOK, response.FromPaymentInitiation(result))
}

func (h *PaymentHandler) ListJobPayments(c *gin.Context) {
	jobID := c.Param("job_id")
	actorID := middleware.ActorID(c)

	payments, err := h.usecase.ListByJobID(c.Request.Context(), jobID, actorID)
	if err != nil {
		log.Printf("[payment][handler] list failed job_id=%s err=%v", jobID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(jobID, payments))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrUnsupportedCurrency),
		errors.Is(err, usecase.ErrInvalidPhone):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT", "Invalid payment request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAmountOutsideBand):
		// The band bounds are derived from the quote and safe to echo.
		return pkg.NewDomainError("AMOUNT_OUTSIDE_BAND", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotAccepted):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_ACCEPTED", "The quote must be accepted before paying", http.StatusConflict)
	case errors.Is(err, usecase.ErrJobNotPayable):
		return pkg.NewDomainErrorSimple("JOB_NOT_PAYABLE", "The job is not in a payable state", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentAlreadyCompleted):
		return pkg.NewDomainErrorSimple("PAYMENT_ALREADY_COMPLETED", "The job is already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayRejected):
		return pkg.NewDomainError("GATEWAY_REJECTED", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUpstreamUnavailable):
		return pkg.NewDomainErrorSimple("UPSTREAM_UNAVAILABLE", "The payment provider is unavailable, try again later", http.StatusBadGateway)
	}
	if appErr := mapCommonJobError(err); appErr != nil {
		return appErr
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
