package handlers

import (
	"errors"
	"log"
	"net/http"

	request "fundilink/internal/adapter/http/dto/request"
	response "fundilink/internal/adapter/http/dto/response"
	"fundilink/internal/adapter/http/middleware"
	"fundilink/internal/domain/entities"
	"fundilink/internal/usecase"
	"fundilink/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCodePayload = pkg.NewDomainErrorSimple("INVALID_CODE_INPUT", "Invalid code payload", http.StatusBadRequest)

// HandshakeHandler issues and verifies the in-person job codes. The
// role field selects the slot: customer = start code, provider = end
// code. Code plaintext is never logged.

type HandshakeHandler struct {
	usecase usecase.IHandshakeUseCase
}

func NewHandshakeHandler(uc usecase.IHandshakeUseCase) *HandshakeHandler {
	return &HandshakeHandler{usecase: uc}
}

func (h *HandshakeHandler) GenerateCode(c *gin.Context) {
	var payload request.JobCodeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCodePayload.HTTPStatus, errInvalidCodePayload.ToHTTPError())
		return
	}

	role, err := payload.ResolveRole()
	if err != nil {
		c.JSON(errInvalidCodePayload.HTTPStatus, errInvalidCodePayload.ToHTTPError())
		return
	}

	actorID := middleware.ActorID(c)
	log.Printf("[handshake][handler] generate start job_id=%s role=%s actor=%s", payload.JobID, role, actorID)

	var issued usecase.IssuedCode
	if role == request.CodeRoleCustomer {
		issued, err = h.usecase.GenerateStartCode(c.Request.Context(), payload.JobID, actorID)
	} else {
		issued, err = h.usecase.GenerateEndCode(c.Request.Context(), payload.JobID, actorID)
	}
	if err != nil {
		log.Printf("[handshake][handler] generate failed job_id=%s role=%s err=%v", payload.JobID, role, err)
		appErr := mapHandshakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[handshake][handler] generate success job_id=%s role=%s expires_at=%s", issued.JobID, role, issued.ExpiresAt.Format("15:04:05"))

	c.JSON(http.StatusOK, response.FromIssuedCode(issued, role))
}

func (h *HandshakeHandler) VerifyCode(c *gin.Context) {
	var payload request.JobCodeVerifyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCodePayload.HTTPStatus, errInvalidCodePayload.ToHTTPError())
		return
	}

	role, err := payload.ResolveRole()
	if err != nil {
		c.JSON(errInvalidCodePayload.HTTPStatus, errInvalidCodePayload.ToHTTPError())
		return
	}

	actorID := middleware.ActorID(c)
	log.Printf("[handshake][handler] verify start job_id=%s role=%s actor=%s", payload.JobID, role, actorID)

	var job entities.Job
	if role == request.CodeRoleCustomer {
		job, err = h.usecase.VerifyStartCode(c.Request.Context(), payload.JobID, actorID, payload.Code)
	} else {
		job, err = h.usecase.VerifyEndCode(c.Request.Context(), payload.JobID, actorID, payload.Code)
	}
	if err != nil {
		log.Printf("[handshake][handler] verify failed job_id=%s role=%s err=%v", payload.JobID, role, err)
		appErr := mapHandshakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[handshake][handler] verify success job_id=%s status=%s", job.ID, job.Status)

	c.JSON(http.StatusOK, response.FromVerifiedJob(job))
}

func mapHandshakeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCode):
		return pkg.NewDomainErrorSimple("INVALID_CODE", "The code is invalid or expired", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCodeAlreadyUsed):
		return pkg.NewDomainErrorSimple("CODE_ALREADY_USED", "The code was already used", http.StatusConflict)
	case errors.Is(err, usecase.ErrJobNotAwaitingCode):
		return pkg.NewDomainErrorSimple("JOB_NOT_AWAITING_CODE", "The job does not accept this code in its current state", http.StatusConflict)
	}
	if appErr := mapCommonJobError(err); appErr != nil {
		return appErr
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
