package booking

import "errors"

var (
	// ErrBookingNotFound is returned when no booking matches a lookup.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrPendingExists is returned when a user who already holds a pending
	// booking tries to book again.
	ErrPendingExists = errors.New("a pending booking already exists")

	// ErrInvalidCoupon is returned for codes not in the coupon table.
	ErrInvalidCoupon = errors.New("invalid coupon code")

	// ErrIncompleteDetails is returned when a booking request is missing
	// required fields.
	ErrIncompleteDetails = errors.New("name and date of birth are required")
)
