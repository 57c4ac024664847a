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

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles quote submission and the customer's response.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	jobID := c.Param("job_id")

	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	actorID := middleware.ActorID(c)
	log.Printf("[quote][handler] submit start job_id=%s provider_id=%s", jobID, actorID)

	job, err := h.usecase.SubmitQuote(c.Request.Context(), jobID, actorID, payload.Labor, payload.Materials, payload.Breakdown)
	if err != nil {
		log.Printf("[quote][handler] submit failed job_id=%s err=%v", jobID, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] submit success job_id=%s quote_total=%.2f", job.ID, job.QuoteTotal)

	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *QuoteHandler) RespondToQuote(c *gin.Context) {
	jobID := c.Param("job_id")

	var payload request.QuoteResponseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	accepted, err := payload.ResolveAccepted()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	actorID := middleware.ActorID(c)
	log.Printf("[quote][handler] respond start job_id=%s customer_id=%s accepted=%t", jobID, actorID, accepted)

	job, err := h.usecase.RespondToQuote(c.Request.Context(), jobID, actorID, accepted)
	if err != nil {
		log.Printf("[quote][handler] respond failed job_id=%s err=%v", jobID, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] respond success job_id=%s status=%s", job.ID, job.Status)

	c.JSON(http.StatusOK, response.FromJob(job))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteAmount), errors.Is(err, usecase.ErrQuoteTooLarge):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE", "Invalid quote amounts", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteAlreadyLocked):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_LOCKED", "A quote was already submitted for this job", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteAlreadyAnswered):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_ANSWERED", "The quote was already accepted or rejected", http.StatusConflict)
	case errors.Is(err, usecase.ErrJobNotQuotable):
		return pkg.NewDomainErrorSimple("JOB_NOT_QUOTABLE", "The job does not accept a quote in its current state", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoQuote):
		return pkg.NewDomainErrorSimple("NO_QUOTE", "No quote was submitted for this job", http.StatusConflict)
	}
	if appErr := mapCommonJobError(err); appErr != nil {
		return appErr
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
