package registration

import "time"

// Code is a registration code an admin hands out. It is valid until its
// expiry; there is no consumed flag, so an unexpired code can register more
// than one account. Known gap.
type Code struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedBy string    `json:"createdBy"`
}

// IsValid reports whether the code can still be redeemed at the given time
func (c *Code) IsValid(now time.Time) bool {
	return c.ExpiresAt.After(now)
}
