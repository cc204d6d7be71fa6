package domain

import "errors"

var (
	// ErrPrimaryAdmin is returned when removal of the primary admin is attempted
	ErrPrimaryAdmin = errors.New("primary admin cannot be removed")

	// ErrInvalidUserID is returned when admin input is not a numeric user ID
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrInvalidChannel is returned when a channel handle does not start with @
	ErrInvalidChannel = errors.New("channel handle must start with @")

	// ErrEmptyBroadcast is returned when the broadcast text is empty
	ErrEmptyBroadcast = errors.New("broadcast text is empty")

	// ErrUnknownToken is returned for callback data outside the token grammar
	ErrUnknownToken = errors.New("unknown callback token")
)
