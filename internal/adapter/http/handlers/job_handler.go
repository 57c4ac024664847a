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

var errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_JOB_INPUT", "Invalid job payload", http.StatusBadRequest)

// JobHandler handles booking creation and party-only job reads.

type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	var payload request.CreateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	actorID := middleware.ActorID(c)
	log.Printf("[job][handler] create start customer_id=%s provider_id=%s", actorID, payload.ResolveProviderID())

	job, err := h.usecase.CreateJob(c.Request.Context(), actorID, payload.ResolveProviderID(), payload.Service)
	if err != nil {
		log.Printf("[job][handler] create failed customer_id=%s err=%v", actorID, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[job][handler] create success job_id=%s", job.ID)

	c.JSON(http.StatusCreated, response.FromJob(job))
}

func (h *JobHandler) GetJob(c *gin.Context) {
	jobID := c.Param("job_id")
	actorID := middleware.ActorID(c)

	job, err := h.usecase.GetJob(c.Request.Context(), jobID, actorID)
	if err != nil {
		log.Printf("[job][handler] get failed job_id=%s actor=%s err=%v", jobID, actorID, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

func mapJobError(err error) *pkg.AppError {
	if appErr := mapCommonJobError(err); appErr != nil {
		return appErr
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

// mapCommonJobError covers the sentinels shared by every job-scoped
// operation; it returns nil when err is specific to one subsystem.
func mapCommonJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID),
		errors.Is(err, usecase.ErrInvalidActorID),
		errors.Is(err, usecase.ErrInvalidProviderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotJobCustomer),
		errors.Is(err, usecase.ErrNotJobProvider),
		errors.Is(err, usecase.ErrNotJobParty):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "You are not a party to this job", http.StatusForbidden)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	}
	return nil
}
