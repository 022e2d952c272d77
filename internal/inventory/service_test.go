package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/mikropanel/internal/adjustment"
	"github.com/MrJamesThe3rd/mikropanel/internal/inventory"
	"github.com/MrJamesThe3rd/mikropanel/internal/validation"
)

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newService(repo inventory.Repository) *inventory.Service {
	return inventory.NewService(repo, 1500).WithClock(func() time.Time { return fixedNow })
}

func TestAggregate(t *testing.T) {
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	units := []*inventory.Equipment{
		{Label: "Router", State: inventory.StateAvailable, Price: new(int64(3000)), UpdatedAt: t0.Add(2 * time.Hour)},
		{Label: " router ", State: inventory.StateAvailable, Price: new(int64(2500)), UpdatedAt: t0},
		{Label: "ROUTER", State: inventory.StateAssigned, UpdatedAt: t0.Add(time.Hour)},
		{Label: "Router", State: inventory.StateSold, Price: new(int64(9900)), UpdatedAt: t0.Add(5 * time.Hour)},
		{Label: "Nano AC", State: inventory.StateAvailable, Placeholder: true, UpdatedAt: t0},
		{Label: "Switch", State: inventory.StateAvailable, UpdatedAt: t0},
	}

	groups := inventory.Aggregate(units)
	require.Len(t, groups, 3)

	byKey := make(map[string]inventory.Group)
	for _, g := range groups {
		byKey[g.Key] = g
	}

	router := byKey["router"]
	assert.Equal(t, 2, router.Quantity)
	assert.Equal(t, 1, router.Assigned)
	require.NotNil(t, router.Price)
	assert.Equal(t, int64(3000), *router.Price, "sold units never set the price, newest non-sold does")
	assert.Equal(t, t0.Add(5*time.Hour), router.LastAt)

	nano := byKey["nano ac"]
	assert.Zero(t, nano.Quantity, "placeholder keeps the group visible without stock")
	assert.Nil(t, nano.Price)

	assert.Equal(t, 1, byKey["switch"].Quantity)
	assert.Nil(t, byKey["switch"].Price)
}

func TestService_Sell(t *testing.T) {
	unitA := &inventory.Equipment{ID: uuid.New(), Label: "Nano AC", Price: new(int64(14000))}
	unitB := &inventory.Equipment{ID: uuid.New(), Label: "Nano AC", Price: new(int64(14000))}

	type testCase struct {
		name      string
		params    inventory.SellParams
		setupMock func(repo *inventory.MockRepository, tx *inventory.MockTx)
		wantLen   int
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "Success",
			params: inventory.SellParams{Label: " nano ac", Qty: 2, Actor: "gaby"},
			setupMock: func(repo *inventory.MockRepository, tx *inventory.MockTx) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().TakeAvailable(gomock.Any(), "nano ac", 2).Return([]*inventory.Equipment{unitA, unitB}, nil)
				tx.EXPECT().MarkSold(gomock.Any(), []uuid.UUID{unitA.ID, unitB.ID}, fixedNow).Return(nil)
				tx.EXPECT().CreateMovement(gomock.Any(), gomock.Any()).Times(2).
					DoAndReturn(func(_ context.Context, mv *inventory.Movement) error {
						assert.Equal(t, inventory.KindSale, mv.Kind)
						assert.Equal(t, "gaby", mv.Actor)
						mv.ID = uuid.New()

						return nil
					})
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantLen: 2,
		},
		{
			name:   "NotEnoughStock",
			params: inventory.SellParams{Label: "Nano AC", Qty: 3},
			setupMock: func(repo *inventory.MockRepository, tx *inventory.MockTx) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().TakeAvailable(gomock.Any(), "nano ac", 3).Return([]*inventory.Equipment{unitA}, nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: inventory.ErrOutOfStock,
		},
		{
			name:    "ZeroQty",
			params:  inventory.SellParams{Label: "Nano AC", Qty: 0},
			wantErr: validation.ErrInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := inventory.NewMockRepository(ctrl)
			tx := inventory.NewMockTx(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo, tx)
			}

			got, err := newService(repo).Sell(context.Background(), tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestService_Sell_ReportsMissingQuantity(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := inventory.NewMockRepository(ctrl)
	tx := inventory.NewMockTx(ctrl)

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().TakeAvailable(gomock.Any(), "router", 3).Return([]*inventory.Equipment{{ID: uuid.New(), Label: "Router"}}, nil)
	tx.EXPECT().Rollback().Return(nil)

	_, err := newService(repo).Sell(context.Background(), inventory.SellParams{Label: "Router", Qty: 3})

	var stockErr *inventory.StockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, map[string]int{"router": 2}, stockErr.Missing)
}

func TestService_Assign(t *testing.T) {
	clientID := uuid.New()
	unit := &inventory.Equipment{ID: uuid.New(), Label: "Router"}

	t.Run("PaidRouterCreditsFee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := inventory.NewMockRepository(ctrl)
		tx := inventory.NewMockTx(ctrl)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().ClientName(gomock.Any(), clientID).Return("Ana", nil)
		tx.EXPECT().TakeAvailable(gomock.Any(), "router", 1).Return([]*inventory.Equipment{unit}, nil)
		tx.EXPECT().MarkAssigned(gomock.Any(), unit.ID, clientID, "Ana", fixedNow).Return(nil)
		tx.EXPECT().CreateMovement(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, mv *inventory.Movement) error {
				mv.ID = uuid.New()
				return nil
			})
		tx.EXPECT().InsertAdjustment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, adj *adjustment.Adjustment) (bool, error) {
				assert.Equal(t, adjustment.KindAuto, adj.Kind)
				assert.Equal(t, int64(1500), adj.Amount)
				assert.Equal(t, "2025-03", adj.Month.String())
				assert.Equal(t, "Pago instalación Router (+15)", adj.Label)

				return true, nil
			})
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		mv, err := newService(repo).Assign(context.Background(), inventory.AssignParams{
			Label: "router", ClientID: clientID, Paid: true, Actor: "misael",
		})
		require.NoError(t, err)
		require.NotNil(t, mv.Paid)
		assert.True(t, *mv.Paid)
		assert.Equal(t, "Ana", mv.ClientName)
	})

	t.Run("SwitchHasNoPaidFlag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := inventory.NewMockRepository(ctrl)
		tx := inventory.NewMockTx(ctrl)
		sw := &inventory.Equipment{ID: uuid.New(), Label: "Switch"}

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().ClientName(gomock.Any(), clientID).Return("Ana", nil)
		tx.EXPECT().TakeAvailable(gomock.Any(), "switch", 1).Return([]*inventory.Equipment{sw}, nil)
		tx.EXPECT().MarkAssigned(gomock.Any(), sw.ID, clientID, "Ana", fixedNow).Return(nil)
		tx.EXPECT().CreateMovement(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		mv, err := newService(repo).Assign(context.Background(), inventory.AssignParams{
			Label: "Switch", ClientID: clientID, Paid: true,
		})
		require.NoError(t, err)
		assert.Nil(t, mv.Paid)
	})

	t.Run("OnlyRouterOrSwitch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := inventory.NewMockRepository(ctrl)

		_, err := newService(repo).Assign(context.Background(), inventory.AssignParams{Label: "Nano AC", ClientID: clientID})
		assert.ErrorIs(t, err, inventory.ErrNotAssignable)
	})

	t.Run("ClientRequired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := inventory.NewMockRepository(ctrl)

		_, err := newService(repo).Assign(context.Background(), inventory.AssignParams{Label: "Router"})
		assert.ErrorIs(t, err, validation.ErrInvalid)
	})
}

// ledger mimics the adjustments table with its (origin_ref, kind) unique index.
type ledger map[string]*adjustment.Adjustment

func (l ledger) insert(_ context.Context, adj *adjustment.Adjustment) (bool, error) {
	key := adj.OriginRef + "/" + string(adj.Kind)
	if _, ok := l[key]; ok {
		return false, nil
	}

	l[key] = adj

	return true, nil
}

func (l ledger) deleteByOrigin(_ context.Context, ref string, kinds []adjustment.Kind) (int64, error) {
	var n int64

	for key, adj := range l {
		if adj.OriginRef != ref {
			continue
		}

		match := len(kinds) == 0
		for _, k := range kinds {
			match = match || adj.Kind == k
		}

		if match {
			delete(l, key)
			n++
		}
	}

	return n, nil
}

func TestService_SetPaid_ToggleKeepsSingleAdjustment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := inventory.NewMockRepository(ctrl)
	tx := inventory.NewMockTx(ctrl)
	book := ledger{}

	mv := &inventory.Movement{ID: uuid.New(), At: fixedNow, Label: "Router", Kind: inventory.KindAssignment, Paid: new(false)}

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil).AnyTimes()
	tx.EXPECT().GetMovementForUpdate(gomock.Any(), mv.ID).Return(mv, nil).AnyTimes()
	tx.EXPECT().SetMovementPaid(gomock.Any(), mv.ID, gomock.Any()).Return(nil).AnyTimes()
	tx.EXPECT().InsertAdjustment(gomock.Any(), gomock.Any()).DoAndReturn(book.insert).AnyTimes()
	tx.EXPECT().DeleteAdjustments(gomock.Any(), mv.ID.String(), []adjustment.Kind{adjustment.KindAuto}).
		DoAndReturn(book.deleteByOrigin).AnyTimes()
	tx.EXPECT().Commit().Return(nil).AnyTimes()
	tx.EXPECT().Rollback().Return(nil).AnyTimes()

	svc := newService(repo)
	ctx := context.Background()

	for _, paid := range []bool{true, true, false, true} {
		_, err := svc.SetPaid(ctx, mv.ID, paid, "misael")
		require.NoError(t, err)
	}

	require.Len(t, book, 1)
	assert.Equal(t, adjustment.KindAuto, book[mv.ID.String()+"/auto"].Kind)

	_, err := svc.SetPaid(ctx, mv.ID, false, "misael")
	require.NoError(t, err)
	assert.Empty(t, book)
}

func TestService_SetPaid_RejectsNonRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := inventory.NewMockRepository(ctrl)
	tx := inventory.NewMockTx(ctrl)
	mv := &inventory.Movement{ID: uuid.New(), Label: "Switch", Kind: inventory.KindAssignment}

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().GetMovementForUpdate(gomock.Any(), mv.ID).Return(mv, nil)
	tx.EXPECT().Rollback().Return(nil)

	_, err := newService(repo).SetPaid(context.Background(), mv.ID, true, "misael")
	assert.ErrorIs(t, err, inventory.ErrNotRouterMovement)
}

func TestService_RegisterGain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := inventory.NewMockRepository(ctrl)
	tx := inventory.NewMockTx(ctrl)
	book := ledger{}
	sale := &inventory.Movement{ID: uuid.New(), At: fixedNow, Label: "Nano AC", Kind: inventory.KindSale}

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil).Times(2)
	tx.EXPECT().GetMovementForUpdate(gomock.Any(), sale.ID).Return(sale, nil).Times(2)
	tx.EXPECT().InsertAdjustment(gomock.Any(), gomock.Any()).DoAndReturn(book.insert).Times(2)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil).Times(2)

	svc := newService(repo)

	adj, err := svc.RegisterGain(context.Background(), sale.ID, 2500, "misael")
	require.NoError(t, err)
	assert.Equal(t, "Ganancia venta Nano AC", adj.Label)
	assert.Equal(t, adjustment.KindManual, adj.Kind)

	_, err = svc.RegisterGain(context.Background(), sale.ID, 1000, "misael")
	assert.ErrorIs(t, err, inventory.ErrDuplicateGain)

	require.Len(t, book, 1)
	assert.Equal(t, int64(2500), book[sale.ID.String()+"/manual"].Amount)
}

func TestService_RegisterGain_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := inventory.NewMockRepository(ctrl)

	_, err := newService(repo).RegisterGain(context.Background(), uuid.New(), -1, "misael")
	assert.ErrorIs(t, err, validation.ErrInvalid)
}

func TestService_DeleteMovement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := inventory.NewMockRepository(ctrl)
	tx := inventory.NewMockTx(ctrl)
	unitID := uuid.New()
	mv := &inventory.Movement{ID: uuid.New(), EquipmentID: &unitID, Label: "Router", Kind: inventory.KindAssignment}

	gomock.InOrder(
		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil),
		tx.EXPECT().GetMovementForUpdate(gomock.Any(), mv.ID).Return(mv, nil),
		tx.EXPECT().Release(gomock.Any(), unitID).Return(nil),
		tx.EXPECT().DeleteMovement(gomock.Any(), mv.ID).Return(nil),
		tx.EXPECT().DeleteAdjustments(gomock.Any(), mv.ID.String(), nil).Return(int64(2), nil),
		tx.EXPECT().Commit().Return(nil),
	)
	tx.EXPECT().Rollback().Return(nil)

	require.NoError(t, newService(repo).DeleteMovement(context.Background(), mv.ID))
}

func TestService_SetGroupQuantity(t *testing.T) {
	units := []*inventory.Equipment{{ID: uuid.New()}, {ID: uuid.New()}, {ID: uuid.New()}}

	t.Run("ShrinkToZeroLeavesPlaceholder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := inventory.NewMockRepository(ctrl)
		tx := inventory.NewMockTx(ctrl)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().TakeAvailable(gomock.Any(), "nano ac", 0).Return(units, nil)
		tx.EXPECT().DeleteUnits(gomock.Any(), []uuid.UUID{units[0].ID, units[1].ID, units[2].ID}).Return(nil)
		tx.EXPECT().EnsurePlaceholder(gomock.Any(), "Nano AC").Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		err := newService(repo).SetGroupQuantity(context.Background(), inventory.GroupQuantityParams{Label: "Nano AC", Qty: 0})
		require.NoError(t, err)
	})

	t.Run("GrowAndReprice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := inventory.NewMockRepository(ctrl)
		tx := inventory.NewMockTx(ctrl)
		price := int64(4500)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().TakeAvailable(gomock.Any(), "router", 0).Return(units[:1], nil)
		tx.EXPECT().AddUnits(gomock.Any(), "Router", &price, 4).Return(nil, nil)
		tx.EXPECT().UpdatePrice(gomock.Any(), "router", price).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		err := newService(repo).SetGroupQuantity(context.Background(), inventory.GroupQuantityParams{Label: "Router", Qty: 5, Price: &price})
		require.NoError(t, err)
	})
}

func TestService_Record(t *testing.T) {
	t.Run("RequiresEquipmentAndKind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := inventory.NewMockRepository(ctrl)

		_, err := newService(repo).Record(context.Background(), inventory.RecordParams{Kind: "robo"})

		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "equipo_id")
		assert.Contains(t, verr.Fields, "tipo")
	})

	t.Run("DefaultsActorToSystem", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := inventory.NewMockRepository(ctrl)
		tx := inventory.NewMockTx(ctrl)
		unit := &inventory.Equipment{ID: uuid.New(), Label: "Router "}

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().GetEquipment(gomock.Any(), unit.ID).Return(unit, nil)
		tx.EXPECT().CreateMovement(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, mv *inventory.Movement) error {
				assert.Equal(t, "system", mv.Actor)
				assert.Equal(t, "Router", mv.Label)
				assert.Equal(t, inventory.KindReturn, mv.Kind)

				return nil
			})
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		_, err := newService(repo).Record(context.Background(), inventory.RecordParams{
			EquipmentID: unit.ID,
			Kind:        inventory.KindReturn,
		})
		require.NoError(t, err)
	})
}
