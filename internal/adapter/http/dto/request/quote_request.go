package request

import (
	"errors"
	"strings"
)

var ErrInvalidQuoteResponse = errors.New("invalid quote response")

type QuoteRequest struct {
	Labor     float64 `json:"labor" binding:"required"`
	Materials float64 `json:"materials"`
	Breakdown string  `json:"breakdown"`
}

// QuoteResponseRequest carries the customer's decision as the literal
// strings "accept" or "reject".
type QuoteResponseRequest struct {
	Response string `json:"response" binding:"required"`
}

func (r QuoteResponseRequest) ResolveAccepted() (bool, error) {
	switch strings.ToLower(strings.TrimSpace(r.Response)) {
	case "accept", "accepted":
		return true, nil
	case "reject", "rejected":
		return false, nil
	}
	return false, ErrInvalidQuoteResponse
}
