package remittance

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/mikropanel/internal/period"
)

// State tracks how much of a month's closing net is still to be sent.
type State struct {
	Month     period.Month
	Total     int64
	Remaining int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Sent is the amount already sent.
func (s *State) Sent() int64 {
	return max(0, s.Total-s.Remaining)
}

// Send is one delivery of money against a month's remittance.
type Send struct {
	ID        uuid.UUID
	Month     period.Month
	Amount    int64
	Note      string
	Actor     string
	CreatedAt time.Time
}
