package loan

import (
	"errors"
	"fmt"
)

var (
	ErrRequestNotFound  = errors.New("loan request not found")
	ErrAlreadyProcessed = errors.New("loan request already processed")
	ErrInvalidDecision  = errors.New("loan decision must be SUCCESS or REJECTED")
)

// ItemConflictError reports that a requested item is already reserved for an
// overlapping window.
type ItemConflictError struct {
	ItemID   string
	ItemName string
}

func (e *ItemConflictError) Error() string {
	name := e.ItemName
	if name == "" {
		name = e.ItemID
	}
	return fmt.Sprintf("item %s is already borrowed for the requested window", name)
}
