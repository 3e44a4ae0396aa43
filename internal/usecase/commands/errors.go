package commands

import "errors"

var (
	ErrCourtNotFound         = errors.New("court not found")
	ErrReservationNotFound   = errors.New("reservation not found")
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrPaymentMethodNotFound = errors.New("payment method not found")
	ErrPaymentMethodInactive = errors.New("payment method is inactive")
	ErrRuleNotFound          = errors.New("pricing rule not found")
	ErrSlotAlreadyBooked     = errors.New("one or more slots are already booked")
	ErrAdminOnly             = errors.New("admin role required")
)
