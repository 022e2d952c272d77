package collection_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/mikropanel/internal/client"
	"github.com/MrJamesThe3rd/mikropanel/internal/collection"
	"github.com/MrJamesThe3rd/mikropanel/internal/period"
	"github.com/MrJamesThe3rd/mikropanel/internal/zone"
)

var march = period.Month{Year: 2025, Month: time.March}

func clients() []*client.Client {
	return []*client.Client{
		{ID: uuid.New(), Name: "bruno", ServiceUnits: 5, ZoneID: "centro", Active: true},
		{ID: uuid.New(), Name: "Ana", ServiceUnits: 10, ZoneID: "norte", Active: true},
		{ID: uuid.New(), Name: "Carla", ServiceUnits: 3, ZoneID: "norte", Active: false},
		{ID: uuid.New(), Name: "Dario", ServiceUnits: 4, ZoneID: "sin-tarifa", Active: true},
	}
}

func tariffs() zone.Tariffs {
	return zone.Tariffs{"norte": 500, "centro": 700}
}

func TestBuild(t *testing.T) {
	items := collection.Build(march, clients(), tariffs())

	require.Len(t, items, 3)

	assert.Equal(t, "Ana", items[0].ClientName)
	assert.Equal(t, int64(500), items[0].Tariff)
	assert.Equal(t, int64(5000), items[0].Amount)
	assert.Equal(t, "2025-03-"+items[0].ClientID.String(), items[0].ID)
	assert.False(t, items[0].Paid)

	assert.Equal(t, "bruno", items[1].ClientName)
	assert.Equal(t, int64(3500), items[1].Amount)

	assert.Equal(t, "Dario", items[2].ClientName)
	assert.Zero(t, items[2].Amount)
}

func TestSummarize(t *testing.T) {
	items := collection.Build(march, clients(), tariffs())
	items[0].Paid = true

	sum := collection.Summarize(march, items)

	assert.Equal(t, 3, sum.Count)
	assert.Equal(t, 1, sum.Paid)
	assert.Equal(t, int64(8500), sum.Amount)
	assert.Equal(t, int64(5000), sum.Collected)
	assert.False(t, sum.Complete())

	require.Len(t, sum.Zones, 3)
	assert.Equal(t, "centro", sum.Zones[0].ZoneID)
	assert.Equal(t, "norte", sum.Zones[1].ZoneID)
	assert.Equal(t, 1, sum.Zones[1].Paid)
	assert.Equal(t, int64(5000), sum.Zones[1].Collected)

	for _, it := range items {
		it.Paid = true
	}

	assert.True(t, collection.Summarize(march, items).Complete())
	assert.False(t, collection.Summarize(march, nil).Complete())
}

func TestService_Get(t *testing.T) {
	stored := []*collection.Item{{ID: "2025-03-x", Month: march, ClientName: "Ana", Amount: 5000}}

	type testCase struct {
		name      string
		setupMock func(m *collection.MockRepository)
		wantLen   int
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "ExistingBatchIsNotRebuilt",
			setupMock: func(m *collection.MockRepository) {
				m.EXPECT().ListItems(gomock.Any(), march).Return(stored, nil)
			},
			wantLen: 1,
		},
		{
			name: "EmptyMonthIsBuiltAndStored",
			setupMock: func(m *collection.MockRepository) {
				gomock.InOrder(
					m.EXPECT().ListItems(gomock.Any(), march).Return(nil, nil),
					m.EXPECT().ActiveClients(gomock.Any()).Return(clients(), nil),
					m.EXPECT().Tariffs(gomock.Any()).Return(tariffs(), nil),
					m.EXPECT().
						InsertItems(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, items []*collection.Item) error {
							assert.Len(t, items, 3)
							return nil
						}),
					m.EXPECT().ListItems(gomock.Any(), march).Return(stored, nil),
				)
			},
			wantLen: 1,
		},
		{
			name: "NoClientsStoresNothing",
			setupMock: func(m *collection.MockRepository) {
				m.EXPECT().ListItems(gomock.Any(), march).Return(nil, nil)
				m.EXPECT().ActiveClients(gomock.Any()).Return(nil, nil)
				m.EXPECT().Tariffs(gomock.Any()).Return(tariffs(), nil)
			},
			wantLen: 0,
		},
		{
			name: "RepoError",
			setupMock: func(m *collection.MockRepository) {
				m.EXPECT().ListItems(gomock.Any(), march).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := collection.NewMockRepository(ctrl)
			tt.setupMock(repo)

			got, err := collection.NewService(repo).Get(context.Background(), march)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestService_Force(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := collection.NewMockRepository(ctrl)

	var replaced [][]*collection.Item

	repo.EXPECT().ActiveClients(gomock.Any()).Return(clients(), nil).Times(2)
	repo.EXPECT().Tariffs(gomock.Any()).Return(tariffs(), nil).Times(2)
	repo.EXPECT().
		ReplaceItems(gomock.Any(), march, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ period.Month, items []*collection.Item) error {
			replaced = append(replaced, items)
			return nil
		}).
		Times(2)

	svc := collection.NewService(repo)

	first, err := svc.Force(context.Background(), march)
	require.NoError(t, err)

	second, err := svc.Force(context.Background(), march)
	require.NoError(t, err)

	require.Len(t, replaced, 2)
	assert.Equal(t, first, second)

	for _, it := range second {
		assert.False(t, it.Paid)
	}
}

func TestService_SetPaid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC)
	repo := collection.NewMockRepository(ctrl)

	repo.EXPECT().
		SetPaid(gomock.Any(), "2025-03-x", true, "misael", now).
		Return(&collection.Item{ID: "2025-03-x", Paid: true, PaidAt: &now, PaidBy: "misael"}, nil)
	repo.EXPECT().
		SetPaid(gomock.Any(), "missing", false, "misael", now).
		Return(nil, collection.ErrNotFound)

	svc := collection.NewService(repo).WithClock(func() time.Time { return now })

	it, err := svc.SetPaid(context.Background(), "2025-03-x", true, "misael")
	require.NoError(t, err)
	assert.True(t, it.Paid)

	_, err = svc.SetPaid(context.Background(), "missing", false, "misael")
	assert.ErrorIs(t, err, collection.ErrNotFound)
}
