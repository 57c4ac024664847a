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

var errInvalidPayoutPayload = pkg.NewDomainErrorSimple("INVALID_PAYOUT_INPUT", "Invalid payout method payload", http.StatusBadRequest)

// PayoutMethodHandler manages the authenticated provider's payout
// methods.

type PayoutMethodHandler struct {
	usecase usecase.IPayoutMethodUseCase
}

func NewPayoutMethodHandler(uc usecase.IPayoutMethodUseCase) *PayoutMethodHandler {
	return &PayoutMethodHandler{usecase: uc}
}

func (h *PayoutMethodHandler) AddPayoutMethod(c *gin.Context) {
	var payload request.PayoutMethodRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayoutPayload.HTTPStatus, errInvalidPayoutPayload.ToHTTPError())
		return
	}

	actorID := middleware.ActorID(c)
	log.Printf("[payout][handler] add start provider_id=%s type=%s", actorID, payload.Type)

	method, err := h.usecase.AddPayoutMethod(c.Request.Context(), usecase.AddPayoutMethodCommand{
		ProviderID:    actorID,
		Type:          entities.PayoutMethodType(payload.Type),
		AccountNumber: payload.AccountNumber,
		BankCode:      payload.BankCode,
		AccountName:   payload.AccountName,
		MakeDefault:   payload.MakeDefault,
	})
	if err != nil {
		log.Printf("[payout][handler] add failed provider_id=%s err=%v", actorID, err)
		appErr := mapPayoutMethodError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payout][handler] add success provider_id=%s method_id=%s default=%t", actorID, method.ID, method.IsDefault)

	c.JSON(http.StatusCreated, response.FromPayoutMethod(method))
}

func (h *PayoutMethodHandler) ListPayoutMethods(c *gin.Context) {
	actorID := middleware.ActorID(c)

	methods, err := h.usecase.ListPayoutMethods(c.Request.Context(), actorID)
	if err != nil {
		log.Printf("[payout][handler] list failed provider_id=%s err=%v", actorID, err)
		appErr := mapPayoutMethodError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayoutMethods(methods))
}

func mapPayoutMethodError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPayoutType),
		errors.Is(err, usecase.ErrInvalidAccountNumber),
		errors.Is(err, usecase.ErrInvalidActorID):
		return pkg.NewDomainErrorSimple("INVALID_PAYOUT_METHOD", "Invalid payout method", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
