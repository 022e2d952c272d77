package expense

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/mikropanel/internal/adjustment"
	"github.com/MrJamesThe3rd/mikropanel/internal/period"
)

// Expense is money spent by the business. Amount is positive, in cents.
type Expense struct {
	ID        uuid.UUID
	Date      time.Time
	Reason    string
	Amount    int64
	User      string
	CreatedAt time.Time
}

// Adjustment is the negative ledger entry mirroring e in the month of its date.
func (e *Expense) Adjustment() *adjustment.Adjustment {
	amount := e.Amount
	if amount > 0 {
		amount = -amount
	}

	return &adjustment.Adjustment{
		Month:     period.Of(e.Date),
		Amount:    amount,
		Label:     "Gasto: " + e.Reason,
		Kind:      adjustment.KindExpense,
		OriginRef: e.ID.String(),
		Actor:     e.User,
	}
}

func Total(expenses []*Expense) int64 {
	var total int64
	for _, e := range expenses {
		total += e.Amount
	}

	return total
}
