package bored

import "errors"

var (
	// ErrUnavailable is returned when the upstream could not produce an
	// activity: transport failure, non-success status or an error payload.
	ErrUnavailable = errors.New("bored api unavailable")
	// ErrMalformed is returned when the response body is not a valid activity.
	ErrMalformed = errors.New("bored api response malformed")
	// ErrInvalidParticipants is returned before any request is made when the
	// participant count is below one.
	ErrInvalidParticipants = errors.New("invalid participant count")
)

// IsAbsent reports whether err means the upstream had no usable activity,
// as opposed to a fault in the caller or a cancelled context.
func IsAbsent(err error) bool {
	return errors.Is(err, ErrUnavailable) || errors.Is(err, ErrMalformed)
}
