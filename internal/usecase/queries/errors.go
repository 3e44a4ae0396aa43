package queries

import "errors"

var (
	ErrCourtNotFound       = errors.New("court not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrForbidden           = errors.New("not allowed to view this reservation")
)
