package handlers

import (
	"errors"
	"log"
	"net/http"

	request "fundilink/internal/adapter/http/dto/request"
	response "fundilink/internal/adapter/http/dto/response"
	"fundilink/internal/usecase"
	"fundilink/internal/usecase/interfaces"
	"fundilink/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSplitPayload = pkg.NewDomainErrorSimple("INVALID_SPLIT_INPUT", "Invalid split group payload", http.StatusBadRequest)

// SplitHandler proxies the gateway's transaction-split API.

type SplitHandler struct {
	usecase usecase.ISplitUseCase
}

func NewSplitHandler(uc usecase.ISplitUseCase) *SplitHandler {
	return &SplitHandler{usecase: uc}
}

func (h *SplitHandler) CreateSplitGroup(c *gin.Context) {
	var payload request.SplitGroupRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSplitPayload.HTTPStatus, errInvalidSplitPayload.ToHTTPError())
		return
	}

	shares := make([]interfaces.SplitShare, 0, len(payload.Subaccounts))
	for _, s := range payload.Subaccounts {
		shares = append(shares, interfaces.SplitShare{Subaccount: s.Subaccount, Share: s.Share})
	}

	log.Printf("[split][handler] create start name=%s type=%s shares=%d", payload.Name, payload.Type, len(shares))

	group, err := h.usecase.CreateSplitGroup(c.Request.Context(), usecase.SplitGroupCommand{
		Name:             payload.Name,
		Type:             payload.Type,
		Currency:         payload.Currency,
		BearerType:       payload.BearerType,
		BearerSubaccount: payload.BearerSubaccount,
		Splits:           shares,
	})
	if err != nil {
		log.Printf("[split][handler] create failed name=%s err=%v", payload.Name, err)
		appErr := mapSplitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[split][handler] create success split_code=%s", group.SplitCode)

	c.JSON(http.StatusCreated, response.FromSplitGroup(group))
}

func (h *SplitHandler) ListSplitGroups(c *gin.Context) {
	groups, err := h.usecase.ListSplitGroups(c.Request.Context())
	if err != nil {
		log.Printf("[split][handler] list failed err=%v", err)
		appErr := mapSplitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSplitGroups(groups))
}

func mapSplitError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSplitName),
		errors.Is(err, usecase.ErrInvalidSplitType),
		errors.Is(err, usecase.ErrInvalidSplitShares),
		errors.Is(err, usecase.ErrInvalidBearerType):
		return pkg.NewDomainErrorSimple("INVALID_SPLIT_GROUP", "Invalid split group", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayRejected):
		return pkg.NewDomainError("GATEWAY_REJECTED", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUpstreamUnavailable):
		return pkg.NewDomainErrorSimple("UPSTREAM_UNAVAILABLE", "The payment provider is unavailable, try again later", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
