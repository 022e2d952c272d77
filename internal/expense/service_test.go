package expense_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/mikropanel/internal/adjustment"
	"github.com/MrJamesThe3rd/mikropanel/internal/expense"
	"github.com/MrJamesThe3rd/mikropanel/internal/period"
	"github.com/MrJamesThe3rd/mikropanel/internal/validation"
)

func TestService_Create(t *testing.T) {
	now := time.Date(2025, time.March, 31, 18, 30, 0, 0, time.UTC)

	type args struct {
		params expense.CreateParams
	}

	type testCase struct {
		name       string
		args       args
		setupMock  func(repo *expense.MockRepository, tx *expense.MockTx)
		wantFields []string
		wantErr    bool
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{params: expense.CreateParams{Reason: " Combustible ", Amount: 2550, Actor: "tecnico"}},
			setupMock: func(repo *expense.MockRepository, tx *expense.MockTx) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)

				var expenseID uuid.UUID

				gomock.InOrder(
					tx.EXPECT().
						CreateExpense(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, e *expense.Expense) error {
							assert.Equal(t, "Combustible", e.Reason)
							assert.Equal(t, time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC), e.Date)
							e.ID = uuid.New()
							expenseID = e.ID

							return nil
						}),
					tx.EXPECT().
						InsertAdjustment(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, adj *adjustment.Adjustment) (bool, error) {
							assert.Equal(t, adjustment.KindExpense, adj.Kind)
							assert.Equal(t, int64(-2550), adj.Amount)
							assert.Equal(t, "Gasto: Combustible", adj.Label)
							assert.Equal(t, period.Month{Year: 2025, Month: time.March}, adj.Month)
							assert.Equal(t, expenseID.String(), adj.OriginRef)

							return true, nil
						}),
					tx.EXPECT().Commit().Return(nil),
				)
				tx.EXPECT().Rollback().Return(nil)
			},
		},
		{
			name:       "Invalid",
			args:       args{params: expense.CreateParams{Reason: "  ", Amount: 0}},
			wantFields: []string{"reason", "amount"},
			wantErr:    true,
		},
		{
			name: "AdjustmentFailureRollsBack",
			args: args{params: expense.CreateParams{Reason: "Cable", Amount: 100}},
			setupMock: func(repo *expense.MockRepository, tx *expense.MockTx) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().CreateExpense(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().InsertAdjustment(gomock.Any(), gomock.Any()).Return(false, errors.New("db error"))
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := expense.NewMockRepository(ctrl)
			tx := expense.NewMockTx(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo, tx)
			}

			svc := expense.NewService(repo).WithClock(func() time.Time { return now })
			got, err := svc.Create(context.Background(), tt.args.params)

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)

				if len(tt.wantFields) > 0 {
					var verr *validation.Error
					require.ErrorAs(t, err, &verr)

					for _, f := range tt.wantFields {
						assert.Contains(t, verr.Fields, f)
					}
				}

				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, got.ID)
		})
	}
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	repo := expense.NewMockRepository(ctrl)
	tx := expense.NewMockTx(ctrl)

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	gomock.InOrder(
		tx.EXPECT().DeleteExpense(gomock.Any(), id).Return(nil),
		tx.EXPECT().DeleteAdjustments(gomock.Any(), id.String(), []adjustment.Kind{adjustment.KindExpense}).Return(int64(1), nil),
		tx.EXPECT().Commit().Return(nil),
	)
	tx.EXPECT().Rollback().Return(nil)

	require.NoError(t, expense.NewService(repo).Delete(context.Background(), id))
}

func TestService_Reconcile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	month := period.Month{Year: 2025, Month: time.March}
	date := month.Start(time.UTC).AddDate(0, 0, 9)

	synced := &expense.Expense{ID: uuid.New(), Date: date, Reason: "Cable", Amount: 1000}
	missing := &expense.Expense{ID: uuid.New(), Date: date, Reason: "Conectores", Amount: 300}
	orphan := uuid.New().String()

	repo := expense.NewMockRepository(ctrl)
	tx := expense.NewMockTx(ctrl)

	repo.EXPECT().ListExpenses(gomock.Any(), expense.ListFilter{Month: &month}).Return([]*expense.Expense{synced, missing}, nil)
	repo.EXPECT().ListExpenseAdjustments(gomock.Any(), month).Return([]*adjustment.Adjustment{
		{OriginRef: synced.ID.String(), Kind: adjustment.KindExpense},
		{OriginRef: orphan, Kind: adjustment.KindExpense},
	}, nil)
	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)

	tx.EXPECT().
		InsertAdjustment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, adj *adjustment.Adjustment) (bool, error) {
			assert.Equal(t, missing.ID.String(), adj.OriginRef)
			assert.Equal(t, int64(-300), adj.Amount)

			return true, nil
		})
	tx.EXPECT().DeleteAdjustments(gomock.Any(), orphan, []adjustment.Kind{adjustment.KindExpense}).Return(int64(1), nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	res, err := expense.NewService(repo).Reconcile(context.Background(), month)

	require.NoError(t, err)
	assert.Equal(t, &expense.ReconcileResult{Created: 1, Removed: 1}, res)
}

func TestTotal(t *testing.T) {
	assert.Equal(t, int64(1300), expense.Total([]*expense.Expense{{Amount: 1000}, {Amount: 300}}))
	assert.Zero(t, expense.Total(nil))
}
