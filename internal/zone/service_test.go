package zone_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/mikropanel/internal/validation"
	"github.com/MrJamesThe3rd/mikropanel/internal/zone"
)

func TestSlug(t *testing.T) {
	type testCase struct {
		name string
		in   string
		want string
	}

	tests := []testCase{
		{name: "Accents", in: "Santo Suárez", want: "santo-suarez"},
		{name: "Spaces", in: "  San   Francisco ", want: "san-francisco"},
		{name: "Punctuation", in: "Buenos Aires (norte)!", want: "buenos-aires-norte"},
		{name: "Empty", in: "  ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, zone.Slug(tt.in))
		})
	}
}

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    zone.CreateParams
		setupMock func(m *zone.MockRepository)
		wantID    string
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "Success",
			params: zone.CreateParams{Name: "Santo Suárez", Tariff: 700},
			setupMock: func(m *zone.MockRepository) {
				m.EXPECT().CreateZone(gomock.Any(), &zone.Zone{ID: "santo-suarez", Name: "Santo Suárez", Tariff: 700}).Return(nil)
			},
			wantID: "santo-suarez",
		},
		{
			name:    "ZeroTariff",
			params:  zone.CreateParams{Name: "Norte", Tariff: 0},
			wantErr: validation.ErrInvalid,
		},
		{
			name:    "BlankName",
			params:  zone.CreateParams{Name: " ", Tariff: 500},
			wantErr: validation.ErrInvalid,
		},
		{
			name:   "Duplicate",
			params: zone.CreateParams{Name: "Carbajal", Tariff: 500},
			setupMock: func(m *zone.MockRepository) {
				m.EXPECT().CreateZone(gomock.Any(), gomock.Any()).Return(zone.ErrDuplicate)
			},
			wantErr: zone.ErrDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := zone.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := zone.NewService(repo).Create(context.Background(), tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestService_Delete(t *testing.T) {
	t.Run("BlockedWhileClientsReferenceZone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := zone.NewMockRepository(ctrl)
		repo.EXPECT().CountClients(gomock.Any(), "carbajal").Return(3, nil)

		err := zone.NewService(repo).Delete(context.Background(), "carbajal")
		assert.ErrorIs(t, err, zone.ErrInUse)
	})

	t.Run("Deletes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := zone.NewMockRepository(ctrl)
		repo.EXPECT().CountClients(gomock.Any(), "norte").Return(0, nil)
		repo.EXPECT().DeleteZone(gomock.Any(), "norte").Return(nil)

		assert.NoError(t, zone.NewService(repo).Delete(context.Background(), "norte"))
	})

	t.Run("CountError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := zone.NewMockRepository(ctrl)
		repo.EXPECT().CountClients(gomock.Any(), "norte").Return(0, errors.New("db down"))

		assert.Error(t, zone.NewService(repo).Delete(context.Background(), "norte"))
	})
}

func TestService_SaveTariffs(t *testing.T) {
	zones := []*zone.Zone{{ID: "carbajal"}, {ID: "santo-suarez"}}

	t.Run("RejectsUnknownZoneAndNonPositive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := zone.NewMockRepository(ctrl)
		repo.EXPECT().ListZones(gomock.Any()).Return(zones, nil)

		err := zone.NewService(repo).SaveTariffs(context.Background(), zone.Tariffs{"carbajal": 0, "luna": 500})

		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "carbajal")
		assert.Contains(t, verr.Fields, "luna")
	})

	t.Run("Overwrites", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := zone.NewMockRepository(ctrl)
		tariffs := zone.Tariffs{"carbajal": 600, "santo-suarez": 700}
		repo.EXPECT().ListZones(gomock.Any()).Return(zones, nil)
		repo.EXPECT().ReplaceTariffs(gomock.Any(), tariffs).Return(nil)

		assert.NoError(t, zone.NewService(repo).SaveTariffs(context.Background(), tariffs))
	})
}

func TestTariffs_Of(t *testing.T) {
	tariffs := zone.Tariffs{"carbajal": 500}

	assert.Equal(t, int64(500), tariffs.Of("carbajal"))
	assert.Zero(t, tariffs.Of("unknown"))
}
