package collection

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/mikropanel/internal/client"
	"github.com/MrJamesThe3rd/mikropanel/internal/period"
	"github.com/MrJamesThe3rd/mikropanel/internal/zone"
)

// Item is what one client owes for a month. Amount is Units x Tariff, in cents.
type Item struct {
	ID         string
	Month      period.Month
	ClientID   uuid.UUID
	ClientName string
	ZoneID     string
	Units      int
	Tariff     int64
	Amount     int64
	Paid       bool
	PaidAt     *time.Time
	PaidBy     string
}

// ItemID is the stable id of a client's item within a month.
func ItemID(month period.Month, clientID uuid.UUID) string {
	return month.String() + "-" + clientID.String()
}

// Build produces the unpaid batch for month from the active clients. A zone
// without a tariff bills zero.
func Build(month period.Month, clients []*client.Client, tariffs zone.Tariffs) []*Item {
	items := make([]*Item, 0, len(clients))

	for _, c := range clients {
		if !c.Active {
			continue
		}

		tariff := tariffs.Of(c.ZoneID)

		items = append(items, &Item{
			ID:         ItemID(month, c.ID),
			Month:      month,
			ClientID:   c.ID,
			ClientName: c.Name,
			ZoneID:     c.ZoneID,
			Units:      c.ServiceUnits,
			Tariff:     tariff,
			Amount:     c.MonthlyFee(tariffs),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToLower(items[i].ClientName) < strings.ToLower(items[j].ClientName)
	})

	return items
}

// Totals counts items and amounts, split by paid state.
type Totals struct {
	Count     int
	Paid      int
	Amount    int64
	Collected int64
}

func (t *Totals) add(it *Item) {
	t.Count++
	t.Amount += it.Amount

	if it.Paid {
		t.Paid++
		t.Collected += it.Amount
	}
}

type ZoneTotals struct {
	ZoneID string
	Totals
}

type Summary struct {
	Month period.Month
	Totals
	Zones []ZoneTotals
}

// Complete reports whether every item of a non-empty batch is paid.
func (s *Summary) Complete() bool {
	return s.Count > 0 && s.Paid == s.Count
}

func Summarize(month period.Month, items []*Item) *Summary {
	sum := &Summary{Month: month}
	byZone := make(map[string]*ZoneTotals)

	for _, it := range items {
		sum.add(it)

		z, ok := byZone[it.ZoneID]
		if !ok {
			z = &ZoneTotals{ZoneID: it.ZoneID}
			byZone[it.ZoneID] = z
		}

		z.add(it)
	}

	sum.Zones = make([]ZoneTotals, 0, len(byZone))
	for _, z := range byZone {
		sum.Zones = append(sum.Zones, *z)
	}

	sort.Slice(sum.Zones, func(i, j int) bool { return sum.Zones[i].ZoneID < sum.Zones[j].ZoneID })

	return sum
}
