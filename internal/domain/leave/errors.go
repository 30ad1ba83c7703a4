package leave

import "errors"

var (
	ErrRequestNotFound  = errors.New("leave request not found")
	ErrAlreadyProcessed = errors.New("leave request already processed")
	ErrInvalidDecision  = errors.New("leave decision must be APPROVED or REJECTED")
)
