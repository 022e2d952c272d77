package shipment

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/mikropanel/internal/inventory"
	"github.com/MrJamesThe3rd/mikropanel/internal/validation"
)

type Status string

const (
	StatusInTransit Status = "en_camino"
	StatusAvailable Status = "disponible"
	StatusPickedUp  Status = "recogido"
)

// Item is a quantity of one equipment group. Key is the group key of Display.
type Item struct {
	Key     string
	Display string
	Qty     int
}

type Shipment struct {
	ID               uuid.UUID
	CreatedAt        time.Time
	CreatedBy        string
	Note             string
	Items            []Item
	Status           Status
	ArrivedAt        *time.Time
	PickedAt         *time.Time
	PickedBy         string
	InventoryApplied bool
}

// Units is the total quantity carried.
func (s *Shipment) Units() int {
	n := 0
	for _, it := range s.Items {
		n += it.Qty
	}

	return n
}

// NormalizeItems merges items sharing a group key, keeping the first display
// name, and rejects empty labels, quantities below one and empty lists.
func NormalizeItems(items []Item) ([]Item, error) {
	var verr validation.Error

	merged := make(map[string]*Item)
	order := make([]string, 0, len(items))

	for _, it := range items {
		display := strings.TrimSpace(it.Display)
		if display == "" {
			display = strings.TrimSpace(it.Key)
		}

		key := inventory.Key(display)

		if key == "" {
			verr.Add("items", "every item needs a label")
			continue
		}

		if it.Qty < 1 {
			verr.Add("items", "quantities must be at least 1")
			continue
		}

		if m, ok := merged[key]; ok {
			m.Qty += it.Qty
			continue
		}

		merged[key] = &Item{Key: key, Display: display, Qty: it.Qty}
		order = append(order, key)
	}

	if err := verr.Err(); err != nil {
		return nil, err
	}

	if len(order) == 0 {
		return nil, validation.Single("items", "at least one item is required")
	}

	out := make([]Item, len(order))
	for i, k := range order {
		out[i] = *merged[k]
	}

	return out, nil
}

// Diff compares two item lists by key: surplus holds what next adds over
// prev, deficit what it takes away. Both are sorted by key.
func Diff(prev, next []Item) (surplus, deficit []Item) {
	before := make(map[string]Item, len(prev))
	for _, it := range prev {
		before[it.Key] = it
	}

	after := make(map[string]Item, len(next))
	for _, it := range next {
		after[it.Key] = it
	}

	for k, n := range after {
		if d := n.Qty - before[k].Qty; d > 0 {
			surplus = append(surplus, Item{Key: k, Display: n.Display, Qty: d})
		}
	}

	for k, p := range before {
		if d := p.Qty - after[k].Qty; d > 0 {
			deficit = append(deficit, Item{Key: k, Display: p.Display, Qty: d})
		}
	}

	sort.Slice(surplus, func(i, j int) bool { return surplus[i].Key < surplus[j].Key })
	sort.Slice(deficit, func(i, j int) bool { return deficit[i].Key < deficit[j].Key })

	return surplus, deficit
}
