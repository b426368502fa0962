package domain

// Vehicle is a registered car. CustomerID is a weak reference: the owner may
// have been deleted, in which case lookups report the owner as absent and
// consumers render an unknown-owner marker. Nothing cascades.
type Vehicle struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customerId"`
	PlateNumber string `json:"plateNumber"`
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	Year        string `json:"year"` // free text, not validated as a number
	VIN         string `json:"vin,omitempty"`
	LastService string `json:"lastService"` // calendar date, YYYY-MM-DD
}
