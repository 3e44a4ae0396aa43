package request

import (
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type CreateReservationRequest struct {
	CourtID         uuid.UUID `json:"court_id" binding:"required"`
	Date            string    `json:"date" binding:"required"`
	Slots           []int     `json:"slots" binding:"required,min=1"`
	PaymentMethodID uuid.UUID `json:"payment_method_id" binding:"required"`
	CustomerName    string    `json:"customer_name"`
	CustomerEmail   string    `json:"customer_email" binding:"omitempty,email"`
}

// ParseDate interprets the calendar day at midnight in the booking
// timezone; court days do not follow the server clock.
func (r CreateReservationRequest) ParseDate(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dateLayout, r.Date, loc)
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func ParseDateParam(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dateLayout, value, loc)
}
