package adjustment

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/mikropanel/internal/period"
)

// Kind tells where an adjustment came from.
type Kind string

const (
	// KindAuto is the fixed fee recorded when a router assignment is paid.
	KindAuto Kind = "auto"
	// KindManual is a one-off gain registered on a sale movement.
	KindManual Kind = "manual"
	// KindExpense mirrors an expense as a negative entry.
	KindExpense Kind = "gasto"
	// KindProration is the partial first charge of a new client.
	KindProration Kind = "instalacion"
	// KindCustom is entered by hand on the closing screen.
	KindCustom Kind = "custom"
)

// Adjustment is a signed correction to a month's net figure. Amount is in cents.
type Adjustment struct {
	ID        uuid.UUID
	Month     period.Month
	Amount    int64
	Label     string
	Kind      Kind
	OriginRef string // movement, expense or client id; empty for custom entries
	Actor     string
	CreatedAt time.Time
}

// Archive is the snapshot kept when a month's adjustments are reset.
type Archive struct {
	Month   period.Month
	Items   []*Adjustment
	Total   int64
	SavedBy string
	SavedAt time.Time
}

// Sum adds up the amounts of adjs.
func Sum(adjs []*Adjustment) int64 {
	var total int64
	for _, a := range adjs {
		total += a.Amount
	}

	return total
}
