package domain

// TransactionType is the kind of balance movement.
type TransactionType string

const (
	TypeTopup TransactionType = "TOPUP"
	TypeSpend TransactionType = "SPEND"
)

// Valid reports whether t is one of the two known kinds.
func (t TransactionType) Valid() bool {
	return t == TypeTopup || t == TypeSpend
}

// Apply returns the balance after a movement of amount in direction t.
func (t TransactionType) Apply(balance, amount float64) float64 {
	if t == TypeTopup {
		return balance + amount
	}
	return balance - amount
}

// Transaction is a single balance movement. Transactions are append-only:
// once recorded they are never edited or deleted.
type Transaction struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customerId"`
	Type        TransactionType `json:"type"`
	Amount      float64         `json:"amount"` // unsigned; Type carries the sign
	Description string          `json:"description"`
	Date        string          `json:"date"` // calendar date, YYYY-MM-DD
}
