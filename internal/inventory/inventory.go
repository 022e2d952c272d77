package inventory

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// State is the lifecycle state of a physical unit.
type State string

const (
	StateAvailable State = "disponible"
	StateSold      State = "vendido"
	StateAssigned  State = "asignado"
)

// Kind is the type of a movement in the ledger.
type Kind string

const (
	KindSale       Kind = "venta"
	KindAssignment Kind = "asignacion"
	KindAdd        Kind = "alta"
	KindRemove     Kind = "baja"
	KindReturn     Kind = "devolucion"
	KindAdjust     Kind = "ajuste"
)

func (k Kind) Valid() bool {
	switch k {
	case KindSale, KindAssignment, KindAdd, KindRemove, KindReturn, KindAdjust:
		return true
	}

	return false
}

// Labels that can be assigned to a client.
const (
	LabelRouter = "router"
	LabelSwitch = "switch"
)

// Equipment is one physical unit. Price is in cents and optional.
// A placeholder keeps its label visible while there is no stock.
type Equipment struct {
	ID          uuid.UUID
	Label       string
	Price       *int64
	State       State
	Placeholder bool
	SoldAt      *time.Time
	AssignedAt  *time.Time
	ClientID    *uuid.UUID
	ClientName  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Movement is an entry of the movement ledger.
type Movement struct {
	ID          uuid.UUID
	At          time.Time
	EquipmentID *uuid.UUID
	Label       string
	Actor       string
	Kind        Kind
	ClientID    *uuid.UUID
	ClientName  string
	Paid        *bool // router assignments only
	Detail      map[string]any
	Amount      *int64
}

// IsRouterAssignment reports whether m carries a paid flag.
func (m *Movement) IsRouterAssignment() bool {
	return m.Kind == KindAssignment && Key(m.Label) == LabelRouter
}

// Group is the inventory view of all units sharing a label.
type Group struct {
	Key      string
	Display  string
	Quantity int
	Assigned int
	Price    *int64
	LastAt   time.Time
}

// Key normalizes a label into its group key.
func Key(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// Aggregate groups units by key. Quantity counts available non-placeholder
// units, Assigned counts assigned ones, and Price comes from the most recently
// updated non-sold, non-placeholder unit that has one.
func Aggregate(units []*Equipment) []Group {
	type acc struct {
		group   Group
		priceAt time.Time
		nameAt  time.Time
	}

	byKey := make(map[string]*acc)

	for _, u := range units {
		k := Key(u.Label)
		if k == "" {
			continue
		}

		a, ok := byKey[k]
		if !ok {
			a = &acc{group: Group{Key: k, Display: strings.TrimSpace(u.Label)}, nameAt: u.UpdatedAt}
			byKey[k] = a
		}

		if u.UpdatedAt.After(a.group.LastAt) {
			a.group.LastAt = u.UpdatedAt
		}

		if u.UpdatedAt.After(a.nameAt) {
			a.group.Display = strings.TrimSpace(u.Label)
			a.nameAt = u.UpdatedAt
		}

		if u.Placeholder {
			continue
		}

		switch u.State {
		case StateAvailable:
			a.group.Quantity++
		case StateAssigned:
			a.group.Assigned++
		}

		if u.State != StateSold && u.Price != nil && (a.group.Price == nil || !u.UpdatedAt.Before(a.priceAt)) {
			a.group.Price = new(*u.Price)
			a.priceAt = u.UpdatedAt
		}
	}

	groups := make([]Group, 0, len(byKey))
	for _, a := range byKey {
		groups = append(groups, a.group)
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })

	return groups
}

// StockError lists the group keys that lack available units and by how much.
type StockError struct {
	Missing map[string]int
}

func (e *StockError) Error() string {
	keys := make([]string, 0, len(e.Missing))
	for k := range e.Missing {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s (faltan %d)", k, e.Missing[k])
	}

	return fmt.Sprintf("%s: %s", ErrOutOfStock, strings.Join(parts, ", "))
}

func (e *StockError) Unwrap() error {
	return ErrOutOfStock
}

func shortage(key string, n int) error {
	return &StockError{Missing: map[string]int{key: n}}
}
