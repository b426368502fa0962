package domain

// Customer is a workshop account holder with a stored-value balance.
//
// Balance is the sum of signed transaction amounts since creation (top-ups
// add, spends subtract). It can go negative. When a remote balance write
// fails in the background the remote copy may lag behind this value; the
// local figure stays authoritative for the running process.
type Customer struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email"`
	Balance   float64 `json:"balance"`
	CreatedAt string  `json:"createdAt"` // calendar date, YYYY-MM-DD
}
