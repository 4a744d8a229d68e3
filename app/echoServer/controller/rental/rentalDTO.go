package rental

type RentReq struct {
	RentalPeriod string `json:"rentalPeriod" validate:"required,oneof=2weeks 1month 3months"`
}
