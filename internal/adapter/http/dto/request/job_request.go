package request

import "strings"

// CreateJobRequest books a provider. The customer id comes from the
// bearer token, never from the body.
type CreateJobRequest struct {
	ProviderID string `json:"provider_id" binding:"required"`
	Service    string `json:"service"`
}

func (r CreateJobRequest) ResolveProviderID() string {
	return strings.TrimSpace(r.ProviderID)
}
