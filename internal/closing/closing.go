package closing

import (
	"sort"
	"time"

	"github.com/MrJamesThe3rd/mikropanel/internal/client"
	"github.com/MrJamesThe3rd/mikropanel/internal/inventory"
	"github.com/MrJamesThe3rd/mikropanel/internal/money"
	"github.com/MrJamesThe3rd/mikropanel/internal/period"
	"github.com/MrJamesThe3rd/mikropanel/internal/zone"
)

// Params are the business figures the closing arithmetic runs on, in cents.
// Margins are per service unit.
type Params struct {
	FixedCost      int64
	MarginStandard int64
	MarginPremium  int64
	PremiumTariff  int64
}

// Figures is a month's closing. Technicians is what is left of gross after
// the margin; Net is the margin minus fixed cost plus the month's adjustments.
type Figures struct {
	Month       period.Month
	Gross       int64
	Margin      int64
	Technicians int64
	NetBase     int64
	Adjustments int64
	Net         int64
	ClosedBy    string
	ClosedAt    *time.Time
}

// Saved reports whether the figures come from a stored closing.
func (f *Figures) Saved() bool {
	return f.ClosedAt != nil
}

func (p Params) marginPerUnit(tariff int64) int64 {
	if tariff == p.PremiumTariff {
		return p.MarginPremium
	}

	return p.MarginStandard
}

// Compute runs the closing arithmetic over the active clients.
func Compute(month period.Month, clients []*client.Client, tariffs zone.Tariffs, adjustments int64, p Params) *Figures {
	f := &Figures{Month: month, Adjustments: adjustments}

	for _, c := range clients {
		if !c.Active {
			continue
		}

		tariff := tariffs.Of(c.ZoneID)

		f.Gross += money.MulUnits(tariff, c.ServiceUnits)
		f.Margin += money.MulUnits(p.marginPerUnit(tariff), c.ServiceUnits)
	}

	f.Technicians = max(0, f.Gross-f.Margin)
	f.NetBase = f.Margin - p.FixedCost
	f.Net = f.NetBase + f.Adjustments

	return f
}

type ZoneIncome struct {
	ZoneID  string
	Name    string
	Units   int
	Tariff  int64
	Income  int64
	Clients int
}

// Overview is the live business dashboard.
type Overview struct {
	Units       int
	Clients     int
	TargetUnits int
	Progress    float64
	Income      int64
	Margin      int64
	Net         int64
	Technicians int64
	Zones       []ZoneIncome
}

// Missing is how many units are left to reach the target.
func (o *Overview) Missing() int {
	return max(0, o.TargetUnits-o.Units)
}

// Summarize builds the dashboard. Only listed zones contribute to Units and
// Income; the margin figures cover every active client.
func Summarize(zones []*zone.Zone, clients []*client.Client, tariffs zone.Tariffs, target int, p Params) *Overview {
	byZone := make(map[string]*ZoneIncome, len(zones))
	for _, z := range zones {
		byZone[z.ID] = &ZoneIncome{ZoneID: z.ID, Name: z.Name, Tariff: tariffs.Of(z.ID)}
	}

	ov := &Overview{TargetUnits: target}

	for _, c := range clients {
		if !c.Active {
			continue
		}

		ov.Clients++

		if z, ok := byZone[c.ZoneID]; ok {
			z.Units += c.ServiceUnits
			z.Clients++
		}
	}

	ov.Zones = make([]ZoneIncome, 0, len(zones))

	for _, z := range zones {
		zi := byZone[z.ID]
		zi.Income = money.MulUnits(zi.Tariff, zi.Units)

		ov.Units += zi.Units
		ov.Income += zi.Income
		ov.Zones = append(ov.Zones, *zi)
	}

	sort.SliceStable(ov.Zones, func(i, j int) bool { return ov.Zones[i].Income > ov.Zones[j].Income })

	if target > 0 {
		ov.Progress = min(1, float64(ov.Units)/float64(target))
	}

	f := Compute(period.Month{}, clients, tariffs, 0, p)
	ov.Margin = f.Margin
	ov.Net = f.NetBase
	ov.Technicians = max(0, ov.Income-f.Margin)

	return ov
}

// NanoLabel is the sale that earns the per-unit sales gain.
const NanoLabel = "nano ac"

// SalesBonus is what sales and paid router installations earned since Since.
type SalesBonus struct {
	Since      time.Time
	NanoSales  int
	PaidRouter int
	Total      int64
}

// CountBonus tallies sale movements of NanoLabel and paid router assignments
// made at or after since.
func CountBonus(since time.Time, movements []*inventory.Movement, nanoGain, routerFee int64) *SalesBonus {
	b := &SalesBonus{Since: since}

	for _, mv := range movements {
		if mv.At.Before(since) {
			continue
		}

		switch {
		case mv.Kind == inventory.KindSale && inventory.Key(mv.Label) == NanoLabel:
			b.NanoSales++
		case mv.IsRouterAssignment() && mv.Paid != nil && *mv.Paid:
			b.PaidRouter++
		}
	}

	b.Total = int64(b.NanoSales)*nanoGain + int64(b.PaidRouter)*routerFee

	return b
}
