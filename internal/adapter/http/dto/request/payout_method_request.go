package request

type PayoutMethodRequest struct {
	Type          string `json:"type" binding:"required"`
	AccountNumber string `json:"account_number" binding:"required"`
	BankCode      string `json:"bank_code"`
	AccountName   string `json:"account_name"`
	MakeDefault   bool   `json:"make_default"`
}
