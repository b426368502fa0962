package handler

// addTransactionRequest records one balance movement. Transactions are
// append-only: there is no update or delete endpoint for them.
type addTransactionRequest struct {
	ID          string  `json:"id"`
	CustomerID  string  `json:"customerId" validate:"required"`
	Type        string  `json:"type" validate:"required,oneof=TOPUP SPEND"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description"`
	Date        string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
}
