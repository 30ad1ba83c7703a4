package activity

import "errors"

var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrActivityFull     = errors.New("activity has reached its capacity")
)
