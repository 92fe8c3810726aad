package services

import "errors"

// Sentinel errors for the recoverable, user-facing outcomes. The error
// text doubles as the machine-readable code controllers put on the wire;
// anything else bubbling out of a service is a system fault and maps to
// a 500.
var (
	// ErrDuplicateRoom: the (building, room number) pair is already taken.
	ErrDuplicateRoom = errors.New("duplicate_room_number")

	// ErrInvalidRange: check-out is not strictly after check-in, or the
	// dates could not be parsed.
	ErrInvalidRange = errors.New("invalid_date_range")

	// ErrNoAvailability: no free room for the requested range. Not a
	// system fault; the caller should re-query and pick different dates.
	ErrNoAvailability = errors.New("no_availability")

	// ErrInvalidState: a lifecycle transition was attempted from a state
	// that forbids it (stale client or double submission).
	ErrInvalidState = errors.New("invalid_state")

	// ErrInvalidInput: a field constraint was violated (headcount, nights,
	// capacity, room number length, rate...).
	ErrInvalidInput = errors.New("invalid_input")

	// ErrNotFound: the referenced record does not exist.
	ErrNotFound = errors.New("not_found")

	// ErrConflict: the record cannot be removed or changed while other
	// records still reference it.
	ErrConflict = errors.New("still_referenced")
)
