package handler

// saveCustomerRequest carries a full customer record. An empty id means
// create (the service assigns a UUID); resubmitting an id replaces the
// record. Balance is accepted on upsert because the form edits it directly;
// transactions are the normal way to move it afterwards.
type saveCustomerRequest struct {
	ID        string  `json:"id"`
	Name      string  `json:"name" validate:"required"`
	Phone     string  `json:"phone" validate:"required"`
	Email     string  `json:"email" validate:"omitempty,email"`
	Balance   float64 `json:"balance"`
	CreatedAt string  `json:"createdAt" validate:"omitempty,datetime=2006-01-02"`
}
