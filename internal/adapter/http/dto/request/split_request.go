package request

type SplitShareRequest struct {
	Subaccount string  `json:"subaccount" binding:"required"`
	Share      float64 `json:"share" binding:"required"`
}

type SplitGroupRequest struct {
	Name             string              `json:"name" binding:"required"`
	Type             string              `json:"type" binding:"required"`
	Currency         string              `json:"currency"`
	BearerType       string              `json:"bearer_type"`
	BearerSubaccount string              `json:"bearer_subaccount"`
	Subaccounts      []SplitShareRequest `json:"subaccounts" binding:"required,dive"`
}
