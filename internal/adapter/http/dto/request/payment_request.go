package request

type InitiatePaymentRequest struct {
	JobID         string  `json:"job_id" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	Tip           float64 `json:"tip"`
	Currency      string  `json:"currency"`
	Phone         string  `json:"phone"`
	Channel       string  `json:"channel"`
	PartialReason string  `json:"partial_reason"`
}
