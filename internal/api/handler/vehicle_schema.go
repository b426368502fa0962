package handler

// saveVehicleRequest carries a full vehicle record. CustomerID is a weak
// reference and is not checked against the customer list: the owner may be
// deleted later anyway, and consumers handle the unknown-owner case.
type saveVehicleRequest struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customerId" validate:"required"`
	PlateNumber string `json:"plateNumber" validate:"required"`
	Brand       string `json:"brand" validate:"required"`
	Model       string `json:"model" validate:"required"`
	Year        string `json:"year"`
	VIN         string `json:"vin"`
	LastService string `json:"lastService" validate:"omitempty,datetime=2006-01-02"`
}
