package schedule

import "errors"

var (
	// ErrEventNotFound is returned when no event exists for an id.
	ErrEventNotFound = errors.New("event not found")

	// ErrEventFull is returned when slots are requested for a full event.
	ErrEventFull = errors.New("event is fully booked")

	// ErrAppointmentNotFound is returned for ids that resolve to no slot.
	ErrAppointmentNotFound = errors.New("appointment not found")
)
