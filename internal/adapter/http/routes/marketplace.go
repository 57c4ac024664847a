package routes

import (
	"fundilink/internal/adapter/http/handlers"
	"fundilink/internal/adapter/http/middleware"
	"fundilink/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs          = "/jobs"
	PathJobCodes      = "/job-codes"
	PathPayments      = "/payments"
	PathPayoutMethods = "/payout-methods"
	PathSplits        = "/splits"
)

type marketplaceHandlers struct {
	jobs          *handlers.JobHandler
	quotes        *handlers.QuoteHandler
	handshake     *handlers.HandshakeHandler
	payments      *handlers.PaymentHandler
	payoutMethods *handlers.PayoutMethodHandler
	splits        *handlers.SplitHandler
}

func addMarketplaceRoutes(rg *gin.RouterGroup, h marketplaceHandlers, paymentLimiter ratelimit.Limiter) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", h.jobs.CreateJob)
		jobs.GET("/:job_id", h.jobs.GetJob)
		jobs.POST("/:job_id/quote", h.quotes.SubmitQuote)
		jobs.POST("/:job_id/quote/response", h.quotes.RespondToQuote)
		jobs.GET("/:job_id/payments", h.payments.ListJobPayments)
	}

	codes := rg.Group(PathJobCodes)
	{
		codes.POST("", h.handshake.GenerateCode)
		codes.POST("/verify", h.handshake.VerifyCode)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/initiate", middleware.RateLimit(paymentLimiter), h.payments.InitiatePayment)
	}

	payoutMethods := rg.Group(PathPayoutMethods)
	{
		payoutMethods.POST("", h.payoutMethods.AddPayoutMethod)
		payoutMethods.GET("", h.payoutMethods.ListPayoutMethods)
	}

	splits := rg.Group(PathSplits)
	{
		splits.POST("", h.splits.CreateSplitGroup)
		splits.GET("", h.splits.ListSplitGroups)
	}
}
