package user

import "errors"

var (
	ErrNotFound = errors.New("user not found")
	// ErrPhoneTaken is the single validated business error at
	// registration time: normalized phone must be unique.
	ErrPhoneTaken = errors.New("a user with this phone number already exists")
)
