package schedule

import "errors"

var (
	// ErrMalformedInput is returned when the notes are missing a line or
	// the timestamp line is not an integer.
	ErrMalformedInput = errors.New("malformed input")

	// ErrNoSolution is returned when no timestamp can satisfy the
	// departure offsets of every bus.
	ErrNoSolution = errors.New("no solution")

	// ErrNoBuses is returned by EarliestDeparture for an empty schedule.
	ErrNoBuses = errors.New("no buses in service")
)
