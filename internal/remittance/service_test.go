package remittance_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/mikropanel/internal/period"
	"github.com/MrJamesThe3rd/mikropanel/internal/remittance"
	"github.com/MrJamesThe3rd/mikropanel/internal/validation"
)

func TestService_Send(t *testing.T) {
	month := period.Month{Year: 2025, Month: time.April}

	type args struct {
		params remittance.SendParams
	}

	type testCase struct {
		name          string
		args          args
		remaining     int64
		setupMock     func(m *remittance.MockTx)
		wantRemaining int64
		wantErr       error
	}

	tests := []testCase{
		{
			name:      "PartialSend",
			args:      args{params: remittance.SendParams{Month: month, Amount: 10000, Note: " efectivo ", Actor: "misael"}},
			remaining: 50000,
			setupMock: func(m *remittance.MockTx) {
				m.EXPECT().
					InsertSend(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, send *remittance.Send) error {
						assert.Equal(t, "efectivo", send.Note)
						send.ID = uuid.New()

						return nil
					})
				m.EXPECT().SetRemaining(gomock.Any(), month, int64(40000)).Return(nil)
				m.EXPECT().Commit().Return(nil)
			},
			wantRemaining: 40000,
		},
		{
			name:      "ExcessWithoutConfirmation",
			args:      args{params: remittance.SendParams{Month: month, Amount: 60000, Actor: "misael"}},
			remaining: 50000,
			wantErr:   remittance.ErrExceedsRemaining,
		},
		{
			name:      "ExcessConfirmedClampsToZero",
			args:      args{params: remittance.SendParams{Month: month, Amount: 60000, Actor: "misael", AllowExcess: true}},
			remaining: 50000,
			setupMock: func(m *remittance.MockTx) {
				m.EXPECT().InsertSend(gomock.Any(), gomock.Any()).Return(nil)
				m.EXPECT().SetRemaining(gomock.Any(), month, int64(0)).Return(nil)
				m.EXPECT().Commit().Return(nil)
			},
			wantRemaining: 0,
		},
		{
			name:      "InsertFails",
			args:      args{params: remittance.SendParams{Month: month, Amount: 100, Actor: "misael"}},
			remaining: 50000,
			setupMock: func(m *remittance.MockTx) {
				m.EXPECT().InsertSend(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := remittance.NewMockRepository(ctrl)
			tx := remittance.NewMockTx(ctrl)

			repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
			tx.EXPECT().
				GetStateForUpdate(gomock.Any(), month).
				Return(&remittance.State{Month: month, Total: 50000, Remaining: tt.remaining}, nil)
			tx.EXPECT().Rollback().Return(nil)

			if tt.setupMock != nil {
				tt.setupMock(tx)
			}

			state, send, err := remittance.NewService(repo).Send(context.Background(), tt.args.params)

			if tt.wantErr != nil {
				require.Error(t, err)

				if errors.Is(tt.wantErr, remittance.ErrExceedsRemaining) {
					assert.ErrorIs(t, err, remittance.ErrExceedsRemaining)
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantRemaining, state.Remaining)
			assert.Equal(t, tt.args.params.Amount, send.Amount)
		})
	}
}

func TestService_Send_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := remittance.NewService(remittance.NewMockRepository(ctrl))

	for _, amount := range []int64{0, -500} {
		_, _, err := svc.Send(context.Background(), remittance.SendParams{Amount: amount})
		assert.ErrorIs(t, err, validation.ErrInvalid)
	}
}

func TestService_Send_NoState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	month := period.Month{Year: 2025, Month: time.April}
	repo := remittance.NewMockRepository(ctrl)
	tx := remittance.NewMockTx(ctrl)

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().GetStateForUpdate(gomock.Any(), month).Return(nil, remittance.ErrNotFound)
	tx.EXPECT().Rollback().Return(nil)

	_, _, err := remittance.NewService(repo).Send(context.Background(), remittance.SendParams{Month: month, Amount: 100})
	assert.ErrorIs(t, err, remittance.ErrNotFound)
}

func TestState_Sent(t *testing.T) {
	assert.Equal(t, int64(15000), (&remittance.State{Total: 50000, Remaining: 35000}).Sent())
	assert.Equal(t, int64(0), (&remittance.State{Total: -100, Remaining: 0}).Sent())
}
