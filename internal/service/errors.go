package service

import "errors"

var (
	// ErrInvalidCredentials covers every authentication failure: missing
	// header, unknown email, wrong password. Callers translate it into a
	// single uniform denial so the response never leaks which part failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmptyUpdate is returned when a course update carries no
	// recognised fields at all.
	ErrEmptyUpdate = errors.New("no course values provided for update")
)
