package service

import "errors"

var (
	// ErrNotLoggedIn is returned when an operation requires an
	// authenticated session and none is present.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrAlreadyRenting is returned when a user with an open rental tries
	// to rent another bike.
	ErrAlreadyRenting = errors.New("user already has an active rental")

	// ErrBikeNotFound is returned when the requested bike is not in the
	// user's current candidate set.
	ErrBikeNotFound = errors.New("bike not found")

	// ErrNoActiveRental is returned when returning an invalid rental
	// index or a rental that was already closed.
	ErrNoActiveRental = errors.New("no active rental found")

	// ErrTooFarFromBike is returned when the rider's known position is
	// beyond the rental radius of the requested bike.
	ErrTooFarFromBike = errors.New("too far from bike")

	// ErrValidation is returned (wrapped, with detail) when a profile
	// field fails validation.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateAccount is returned when registering an email that
	// already has an account.
	ErrDuplicateAccount = errors.New("email already registered")

	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
