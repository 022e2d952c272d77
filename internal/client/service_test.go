package client_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/mikropanel/internal/adjustment"
	"github.com/MrJamesThe3rd/mikropanel/internal/client"
	"github.com/MrJamesThe3rd/mikropanel/internal/inventory"
	"github.com/MrJamesThe3rd/mikropanel/internal/validation"
	"github.com/MrJamesThe3rd/mikropanel/internal/zone"
)

func TestProrate(t *testing.T) {
	type args struct {
		now time.Time
		fee int64
	}

	type testCase struct {
		name string
		args args
		want int64
	}

	tests := []testCase{
		{
			name: "CycleStartChargesFullFee",
			args: args{now: time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC), fee: 10000},
			want: 10000,
		},
		{
			name: "LastDayChargesOneDay",
			args: args{now: time.Date(2025, 5, 4, 23, 0, 0, 0, time.UTC), fee: 10000},
			want: 333,
		},
		{
			name: "BeforeAnchorUsesPreviousCycle",
			args: args{now: time.Date(2025, 4, 3, 8, 0, 0, 0, time.UTC), fee: 10000},
			want: 645,
		},
		{
			name: "ZeroFee",
			args: args{now: time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC), fee: 0},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, client.Prorate(tt.args.now, 5, tt.args.fee))
		})
	}
}

func TestValidIP(t *testing.T) {
	assert.True(t, client.ValidIP("192.168.10.1"))
	assert.True(t, client.ValidIP(" 192.168.10.254 "))
	assert.False(t, client.ValidIP("192.168.10.0"))
	assert.False(t, client.ValidIP("192.168.10.255"))
	assert.False(t, client.ValidIP("192.168.1.20"))
	assert.False(t, client.ValidIP("192.168.10.x"))
}

func TestValidMAC(t *testing.T) {
	assert.True(t, client.ValidMAC("aa:bb:cc:dd:ee:ff"))
	assert.True(t, client.ValidMAC("AA-BB-CC-DD-EE-01"))
	assert.False(t, client.ValidMAC("AABBCCDDEEFF"))
	assert.False(t, client.ValidMAC("AA:BB:CC:DD:EE"))
}

var fixedNow = time.Date(2025, 4, 5, 9, 0, 0, 0, time.UTC)

func newService(repo client.Repository) *client.Service {
	return client.NewService(repo, 5).WithClock(func() time.Time { return fixedNow })
}

func validParams() client.Params {
	return client.Params{
		Name:         " Ana ",
		IP:           "192.168.10.20",
		MAC:          "aa:bb:cc:dd:ee:ff",
		ServiceUnits: 10,
		ZoneID:       "north",
	}
}

func TestService_Create(t *testing.T) {
	clientID := uuid.New()
	router := &inventory.Equipment{ID: uuid.New(), Label: "Router"}

	type testCase struct {
		name       string
		params     client.CreateParams
		setupMock  func(repo *client.MockRepository, tx *client.MockTx)
		wantErr    error
		wantFields []string
	}

	tests := []testCase{
		{
			name: "WithRouterAndProration",
			params: func() client.CreateParams {
				p := validParams()
				p.Router = true

				return client.CreateParams{Params: p, ApplyProration: true, Actor: "gaby"}
			}(),
			setupMock: func(repo *client.MockRepository, tx *client.MockTx) {
				repo.EXPECT().ZoneExists(gomock.Any(), "north").Return(true, nil)
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().CreateClient(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *client.Client) error {
						assert.Equal(t, "Ana", c.Name)
						assert.Equal(t, "AA:BB:CC:DD:EE:FF", c.MAC)
						assert.True(t, c.Active)
						c.ID = clientID

						return nil
					})
				tx.EXPECT().TakeAvailable(gomock.Any(), "router", 1).Return([]*inventory.Equipment{router}, nil)
				tx.EXPECT().MarkAssigned(gomock.Any(), router.ID, clientID, "Ana", fixedNow).Return(nil)
				tx.EXPECT().CreateMovement(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, mv *inventory.Movement) error {
						require.NotNil(t, mv.Paid)
						assert.False(t, *mv.Paid)
						assert.Equal(t, client.ViaCreate, mv.Detail["via"])

						return nil
					})
				tx.EXPECT().Tariffs(gomock.Any()).Return(zone.Tariffs{"north": 500}, nil)
				tx.EXPECT().InsertAdjustment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, adj *adjustment.Adjustment) (bool, error) {
						assert.Equal(t, int64(5000), adj.Amount)
						assert.Equal(t, adjustment.KindProration, adj.Kind)
						assert.Equal(t, clientID.String(), adj.OriginRef)
						assert.Equal(t, "Ajuste prorrateo (Ana) hasta día 5", adj.Label)
						assert.Equal(t, "2025-04", adj.Month.String())

						return true, nil
					})
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil)
			},
		},
		{
			name: "NoRouterInStock",
			params: func() client.CreateParams {
				p := validParams()
				p.Router = true

				return client.CreateParams{Params: p}
			}(),
			setupMock: func(repo *client.MockRepository, tx *client.MockTx) {
				repo.EXPECT().ZoneExists(gomock.Any(), "north").Return(true, nil)
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().CreateClient(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().TakeAvailable(gomock.Any(), "router", 1).Return(nil, nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: inventory.ErrOutOfStock,
		},
		{
			name:       "EveryFieldInvalid",
			params:     client.CreateParams{Params: client.Params{IP: "10.0.0.1", MAC: "nope", ServiceUnits: 51}},
			wantErr:    validation.ErrInvalid,
			wantFields: []string{"name", "ip", "mac", "service_units", "zone_id"},
		},
		{
			name:   "UnknownZone",
			params: client.CreateParams{Params: validParams()},
			setupMock: func(repo *client.MockRepository, _ *client.MockTx) {
				repo.EXPECT().ZoneExists(gomock.Any(), "north").Return(false, nil)
			},
			wantErr:    validation.ErrInvalid,
			wantFields: []string{"zone_id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := client.NewMockRepository(ctrl)
			tx := client.NewMockTx(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo, tx)
			}

			got, err := newService(repo).Create(context.Background(), tt.params)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				if len(tt.wantFields) > 0 {
					var verr *validation.Error
					require.ErrorAs(t, err, &verr)
					assert.Len(t, verr.Fields, len(tt.wantFields))

					for _, f := range tt.wantFields {
						assert.Contains(t, verr.Fields, f)
					}
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, clientID, got.ID)
		})
	}
}

func TestService_Create_ProrationSkippedWhenNothingOwed(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := client.NewMockRepository(ctrl)
	tx := client.NewMockTx(ctrl)

	repo.EXPECT().ZoneExists(gomock.Any(), "north").Return(true, nil)
	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().CreateClient(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().Tariffs(gomock.Any()).Return(zone.Tariffs{}, nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	_, err := newService(repo).Create(context.Background(), client.CreateParams{Params: validParams(), ApplyProration: true})
	require.NoError(t, err)
}

func TestService_Update(t *testing.T) {
	id := uuid.New()
	sw := &inventory.Equipment{ID: uuid.New(), Label: "switch"}

	t.Run("SwitchTurnedOnIsAssigned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := client.NewMockRepository(ctrl)
		tx := client.NewMockTx(ctrl)

		current := &client.Client{ID: id, Name: "Ana", Router: true, Active: true}

		repo.EXPECT().ZoneExists(gomock.Any(), "north").Return(true, nil)
		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().GetClientForUpdate(gomock.Any(), id).Return(current, nil)
		tx.EXPECT().UpdateClient(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().TakeAvailable(gomock.Any(), "switch", 1).Return([]*inventory.Equipment{sw}, nil)
		tx.EXPECT().MarkAssigned(gomock.Any(), sw.ID, id, "Ana", fixedNow).Return(nil)
		tx.EXPECT().CreateMovement(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, mv *inventory.Movement) error {
				assert.Nil(t, mv.Paid)
				assert.Equal(t, client.ViaUpdate, mv.Detail["via"])

				return nil
			})
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		p := validParams()
		p.Router = true
		p.Switch = true

		got, err := newService(repo).Update(context.Background(), id, client.UpdateParams{Params: p, Active: new(false)})
		require.NoError(t, err)
		assert.True(t, got.Switch)
		assert.False(t, got.Active)
	})

	t.Run("FlagTurnedOffOnlyUpdates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := client.NewMockRepository(ctrl)
		tx := client.NewMockTx(ctrl)

		current := &client.Client{ID: id, Name: "Ana", Router: true, Active: true}

		repo.EXPECT().ZoneExists(gomock.Any(), "north").Return(true, nil)
		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().GetClientForUpdate(gomock.Any(), id).Return(current, nil)
		tx.EXPECT().UpdateClient(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		got, err := newService(repo).Update(context.Background(), id, client.UpdateParams{Params: validParams()})
		require.NoError(t, err)
		assert.False(t, got.Router)
		assert.True(t, got.Active)
	})

	t.Run("NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := client.NewMockRepository(ctrl)
		tx := client.NewMockTx(ctrl)

		repo.EXPECT().ZoneExists(gomock.Any(), "north").Return(true, nil)
		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().GetClientForUpdate(gomock.Any(), id).Return(nil, client.ErrNotFound)
		tx.EXPECT().Rollback().Return(nil)

		_, err := newService(repo).Update(context.Background(), id, client.UpdateParams{Params: validParams()})
		assert.ErrorIs(t, err, client.ErrNotFound)
	})
}

func TestService_List_BlankSearchIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := client.NewMockRepository(ctrl)

	repo.EXPECT().ListClients(gomock.Any(), client.ListFilter{}).Return(nil, nil)

	_, err := newService(repo).List(context.Background(), client.ListFilter{Search: new("  ")})
	require.NoError(t, err)
}
