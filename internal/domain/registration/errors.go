package registration

import "errors"

var (
	ErrInvalidOrExpiredCode = errors.New("registration code is invalid or has expired")
	ErrEmailAlreadyUsed     = errors.New("email already in use")
)
