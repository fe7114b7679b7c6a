package create_appointment

import "errors"

var (
	// ErrInvalidInput is returned when a required field is missing or malformed.
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrOutOfHours is returned when the requested time is not one of the
	// date's bookable slots.
	ErrOutOfHours = errors.New("create_appointment: time is outside opening hours")

	// ErrSlotFull is returned when the (date, time) pair already holds the
	// configured maximum of appointments.
	ErrSlotFull = errors.New("create_appointment: slot is full")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("create_appointment: internal error")
)
