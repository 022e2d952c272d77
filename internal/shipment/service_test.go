package shipment_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/mikropanel/internal/inventory"
	"github.com/MrJamesThe3rd/mikropanel/internal/lock"
	"github.com/MrJamesThe3rd/mikropanel/internal/shipment"
	"github.com/MrJamesThe3rd/mikropanel/internal/validation"
)

func units(n int) []*inventory.Equipment {
	out := make([]*inventory.Equipment, n)
	for i := range out {
		out[i] = &inventory.Equipment{ID: uuid.New(), State: inventory.StateAvailable}
	}

	return out
}

func newService(repo shipment.Repository) *shipment.Service {
	return shipment.NewService(repo, lock.NewLocal(time.Second))
}

func TestNormalizeItems(t *testing.T) {
	items, err := shipment.NormalizeItems([]shipment.Item{
		{Display: "Router ", Qty: 2},
		{Display: "Nano AC", Qty: 1},
		{Display: "router", Qty: 3},
	})

	require.NoError(t, err)
	assert.Equal(t, []shipment.Item{
		{Key: "router", Display: "Router", Qty: 5},
		{Key: "nano ac", Display: "Nano AC", Qty: 1},
	}, items)

	for _, bad := range [][]shipment.Item{
		nil,
		{{Display: "Router", Qty: 0}},
		{{Display: "  ", Qty: 1}},
	} {
		_, err := shipment.NormalizeItems(bad)
		assert.ErrorIs(t, err, validation.ErrInvalid)
	}
}

func TestDiff(t *testing.T) {
	prev := []shipment.Item{
		{Key: "router", Display: "Router", Qty: 5},
		{Key: "switch", Display: "Switch", Qty: 2},
	}
	next := []shipment.Item{
		{Key: "router", Display: "Router", Qty: 3},
		{Key: "nano ac", Display: "Nano AC", Qty: 4},
	}

	surplus, deficit := shipment.Diff(prev, next)

	assert.Equal(t, []shipment.Item{{Key: "nano ac", Display: "Nano AC", Qty: 4}}, surplus)
	assert.Equal(t, []shipment.Item{
		{Key: "router", Display: "Router", Qty: 2},
		{Key: "switch", Display: "Switch", Qty: 2},
	}, deficit)
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := shipment.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateShipment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sh *shipment.Shipment) error {
			assert.Equal(t, shipment.StatusInTransit, sh.Status)
			assert.Len(t, sh.Items, 1)
			sh.ID = uuid.New()

			return nil
		})

	sh, err := newService(repo).Create(context.Background(), shipment.CreateParams{
		Items: []shipment.Item{{Display: "Router", Qty: 1}, {Display: "ROUTER", Qty: 2}},
		Actor: "envios",
	})

	require.NoError(t, err)
	assert.Equal(t, 3, sh.Units())
}

func TestService_MarkAvailable(t *testing.T) {
	id := uuid.New()

	type testCase struct {
		name    string
		status  shipment.Status
		wantErr error
	}

	tests := []testCase{
		{name: "FromInTransit", status: shipment.StatusInTransit},
		{name: "FromAvailable", status: shipment.StatusAvailable, wantErr: shipment.ErrInvalidTransition},
		{name: "FromPickedUp", status: shipment.StatusPickedUp, wantErr: shipment.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := shipment.NewMockRepository(ctrl)
			tx := shipment.NewMockTx(ctrl)

			repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
			tx.EXPECT().GetShipmentForUpdate(gomock.Any(), id).Return(&shipment.Shipment{ID: id, Status: tt.status}, nil)
			tx.EXPECT().Rollback().Return(nil)

			if tt.wantErr == nil {
				tx.EXPECT().MarkArrived(gomock.Any(), id, gomock.Any()).Return(nil)
				tx.EXPECT().Commit().Return(nil)
			}

			sh, err := newService(repo).MarkAvailable(context.Background(), id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, shipment.StatusAvailable, sh.Status)
			assert.NotNil(t, sh.ArrivedAt)
		})
	}
}

// storedShipment plays the shipments row across transactions so that a second
// pickup sees the first one's writes.
type storedShipment struct {
	sh    shipment.Shipment
	added map[string]int
}

func (s *storedShipment) expectTx(ctrl *gomock.Controller, repo *shipment.MockRepository) {
	tx := shipment.NewMockTx(ctrl)

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().
		GetShipmentForUpdate(gomock.Any(), s.sh.ID).
		DoAndReturn(func(context.Context, uuid.UUID) (*shipment.Shipment, error) {
			cp := s.sh
			return &cp, nil
		})
	tx.EXPECT().
		MarkPickedUp(gomock.Any(), s.sh.ID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, uuid.UUID, string, time.Time) (bool, error) {
			if s.sh.InventoryApplied {
				return false, nil
			}

			s.sh.InventoryApplied = true
			s.sh.Status = shipment.StatusPickedUp

			return true, nil
		}).
		AnyTimes()
	tx.EXPECT().
		AddUnits(gomock.Any(), gomock.Any(), nil, gomock.Any()).
		DoAndReturn(func(_ context.Context, label string, _ *int64, qty int) ([]*inventory.Equipment, error) {
			s.added[inventory.Key(label)] += qty
			return units(qty), nil
		}).
		AnyTimes()
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)
}

func TestService_PickUp_AppliesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stored := &storedShipment{
		sh: shipment.Shipment{
			ID:     uuid.New(),
			Status: shipment.StatusAvailable,
			Items: []shipment.Item{
				{Key: "router", Display: "Router", Qty: 3},
				{Key: "nano ac", Display: "Nano AC", Qty: 2},
			},
		},
		added: make(map[string]int),
	}

	repo := shipment.NewMockRepository(ctrl)
	stored.expectTx(ctrl, repo)
	stored.expectTx(ctrl, repo)

	svc := newService(repo)

	first, applied, err := svc.PickUp(context.Background(), stored.sh.ID, "tecnico")
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, shipment.StatusPickedUp, first.Status)
	assert.Equal(t, "tecnico", first.PickedBy)

	second, applied, err := svc.PickUp(context.Background(), stored.sh.ID, "tecnico")
	require.NoError(t, err)
	assert.False(t, applied)
	assert.True(t, second.InventoryApplied)

	assert.Equal(t, map[string]int{"router": 3, "nano ac": 2}, stored.added)
}

func TestService_PickUp_RequiresAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	repo := shipment.NewMockRepository(ctrl)
	tx := shipment.NewMockTx(ctrl)

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().GetShipmentForUpdate(gomock.Any(), id).Return(&shipment.Shipment{ID: id, Status: shipment.StatusInTransit}, nil)
	tx.EXPECT().Rollback().Return(nil)

	_, _, err := newService(repo).PickUp(context.Background(), id, "tecnico")
	assert.ErrorIs(t, err, shipment.ErrInvalidTransition)
}

func TestService_UpdateItems(t *testing.T) {
	id := uuid.New()
	applied := &shipment.Shipment{
		ID:               id,
		Status:           shipment.StatusPickedUp,
		InventoryApplied: true,
		Items: []shipment.Item{
			{Key: "router", Display: "Router", Qty: 5},
			{Key: "switch", Display: "Switch", Qty: 1},
		},
	}
	newItems := []shipment.Item{
		{Display: "Router", Qty: 2},
		{Display: "Switch", Qty: 4},
	}

	type testCase struct {
		name      string
		current   *shipment.Shipment
		setupMock func(tx *shipment.MockTx)
		wantErr   error
		wantMiss  map[string]int
	}

	tests := []testCase{
		{
			name:    "NotAppliedOnlyReplaces",
			current: &shipment.Shipment{ID: id, Status: shipment.StatusInTransit},
			setupMock: func(tx *shipment.MockTx) {
				tx.EXPECT().ReplaceItems(gomock.Any(), id, gomock.Len(2), "").Return(nil)
				tx.EXPECT().Commit().Return(nil)
			},
		},
		{
			name:    "AppliedMovesTheDifference",
			current: applied,
			setupMock: func(tx *shipment.MockTx) {
				taken := units(3)

				gomock.InOrder(
					tx.EXPECT().TakeAvailable(gomock.Any(), "router", 3).Return(taken, nil),
					tx.EXPECT().DeleteUnits(gomock.Any(), []uuid.UUID{taken[0].ID, taken[1].ID, taken[2].ID}).Return(nil),
					tx.EXPECT().AddUnits(gomock.Any(), "Switch", nil, 3).Return(units(3), nil),
					tx.EXPECT().ReplaceItems(gomock.Any(), id, gomock.Len(2), "").Return(nil),
					tx.EXPECT().Commit().Return(nil),
				)
			},
		},
		{
			name:    "AppliedShortfallChangesNothing",
			current: applied,
			setupMock: func(tx *shipment.MockTx) {
				tx.EXPECT().TakeAvailable(gomock.Any(), "router", 3).Return(units(1), nil)
			},
			wantErr:  inventory.ErrOutOfStock,
			wantMiss: map[string]int{"router": 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := shipment.NewMockRepository(ctrl)
			tx := shipment.NewMockTx(ctrl)

			cur := *tt.current
			repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
			tx.EXPECT().GetShipmentForUpdate(gomock.Any(), id).Return(&cur, nil)
			tx.EXPECT().Rollback().Return(nil)
			tt.setupMock(tx)

			sh, err := newService(repo).UpdateItems(context.Background(), id, shipment.UpdateParams{Items: newItems})

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				var stockErr *inventory.StockError
				require.ErrorAs(t, err, &stockErr)
				assert.Equal(t, tt.wantMiss, stockErr.Missing)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, 6, sh.Units())
		})
	}
}

func TestService_Delete(t *testing.T) {
	id := uuid.New()
	items := []shipment.Item{{Key: "router", Display: "Router", Qty: 2}}

	t.Run("AppliedSubtractsFirst", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := shipment.NewMockRepository(ctrl)
		tx := shipment.NewMockTx(ctrl)
		taken := units(2)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		gomock.InOrder(
			tx.EXPECT().GetShipmentForUpdate(gomock.Any(), id).Return(&shipment.Shipment{ID: id, Items: items, InventoryApplied: true}, nil),
			tx.EXPECT().TakeAvailable(gomock.Any(), "router", 2).Return(taken, nil),
			tx.EXPECT().DeleteUnits(gomock.Any(), []uuid.UUID{taken[0].ID, taken[1].ID}).Return(nil),
			tx.EXPECT().DeleteShipment(gomock.Any(), id).Return(nil),
			tx.EXPECT().Commit().Return(nil),
		)
		tx.EXPECT().Rollback().Return(nil)

		require.NoError(t, newService(repo).Delete(context.Background(), id))
	})

	t.Run("ShortfallBlocksDeletion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := shipment.NewMockRepository(ctrl)
		tx := shipment.NewMockTx(ctrl)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().GetShipmentForUpdate(gomock.Any(), id).Return(&shipment.Shipment{ID: id, Items: items, InventoryApplied: true}, nil)
		tx.EXPECT().TakeAvailable(gomock.Any(), "router", 2).Return(nil, nil)
		tx.EXPECT().Rollback().Return(nil)

		err := newService(repo).Delete(context.Background(), id)
		assert.ErrorIs(t, err, inventory.ErrOutOfStock)
	})

	t.Run("NotAppliedDeletesDirectly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := shipment.NewMockRepository(ctrl)
		tx := shipment.NewMockTx(ctrl)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().GetShipmentForUpdate(gomock.Any(), id).Return(&shipment.Shipment{ID: id, Items: items}, nil)
		tx.EXPECT().DeleteShipment(gomock.Any(), id).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		require.NoError(t, newService(repo).Delete(context.Background(), id))
	})
}
