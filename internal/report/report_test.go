package report_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/MrJamesThe3rd/mikropanel/internal/adjustment"
	"github.com/MrJamesThe3rd/mikropanel/internal/closing"
	"github.com/MrJamesThe3rd/mikropanel/internal/collection"
	"github.com/MrJamesThe3rd/mikropanel/internal/period"
	"github.com/MrJamesThe3rd/mikropanel/internal/report"
)

type fakeCollection struct {
	items []*collection.Item
	err   error
}

func (f fakeCollection) Get(context.Context, period.Month) ([]*collection.Item, error) {
	return f.items, f.err
}

type fakeAdjustments struct {
	adjs []*adjustment.Adjustment
}

func (f fakeAdjustments) List(_ context.Context, filter adjustment.ListFilter) ([]*adjustment.Adjustment, error) {
	return f.adjs, nil
}

type fakeClosing struct {
	saved   *closing.Figures
	preview *closing.Figures
}

func (f fakeClosing) Get(context.Context, period.Month) (*closing.Figures, error) {
	if f.saved == nil {
		return nil, closing.ErrNotFound
	}

	return f.saved, nil
}

func (f fakeClosing) Preview(context.Context, period.Month) (*closing.Figures, error) {
	return f.preview, nil
}

func assertCells(t *testing.T, f *excelize.File, sheet string, want map[string]string) {
	t.Helper()

	for cell, v := range want {
		got, err := f.GetCellValue(sheet, cell)
		require.NoError(t, err)
		assert.Equal(t, v, got, "%s!%s", sheet, cell)
	}
}

func mustMonth(t *testing.T, s string) period.Month {
	t.Helper()

	m, err := period.Parse(s)
	require.NoError(t, err)

	return m
}

func TestService_Build(t *testing.T) {
	month := mustMonth(t, "2025-04")
	paidAt := time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)

	items := []*collection.Item{
		{ClientName: "Ana", ZoneID: "carbajal", Units: 10, Tariff: 500, Amount: 5000, Paid: true, PaidAt: &paidAt, PaidBy: "admin"},
		{ClientName: "Luis", ZoneID: "santo-suarez", Units: 4, Tariff: 700, Amount: 2800},
	}
	adjs := []*adjustment.Adjustment{
		{Label: "Gasto: cable", Kind: adjustment.KindExpense, Amount: -1250, Actor: "pedro", CreatedAt: paidAt},
		{Label: "Pago router", Kind: adjustment.KindAuto, Amount: 1500, Actor: "admin", CreatedAt: paidAt},
	}

	type testCase struct {
		name      string
		closing   fakeClosing
		wantState string
		wantNet   string
	}

	tests := []testCase{
		{
			name:      "PreviewWhenOpen",
			closing:   fakeClosing{preview: &closing.Figures{Month: month, Gross: 7800, Net: -5650}},
			wantState: "Vista previa",
			wantNet:   "-56.5",
		},
		{
			name: "StoredClosing",
			closing: fakeClosing{saved: &closing.Figures{
				Month: month, Gross: 7800, Net: 12850, ClosedBy: "system", ClosedAt: &paidAt,
			}},
			wantState: "Cerrado por system el 2025-04-10",
			wantNet:   "128.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := report.NewService(fakeCollection{items: items}, fakeAdjustments{adjs: adjs}, tt.closing)

			f, err := svc.Build(context.Background(), month)
			require.NoError(t, err)
			defer f.Close()

			assert.Equal(t, []string{report.SheetCollection, report.SheetAdjustments, report.SheetClosing}, f.GetSheetList())

			rows, err := f.GetRows(report.SheetCollection)
			require.NoError(t, err)
			require.GreaterOrEqual(t, len(rows), 3)
			assert.Equal(t, []string{"Ana", "carbajal", "10", "5", "50", "Sí", "2025-04-10", "admin"}, rows[1])
			assert.Equal(t, "No", rows[2][5])
			assertCells(t, f, report.SheetCollection, map[string]string{
				"A5": "Total", "E5": "78", "F5": "1/2", "G5": "50",
			})

			assertCells(t, f, report.SheetAdjustments, map[string]string{
				"B2": "Gasto: cable", "C2": "gasto", "D2": "-12.5", "A5": "Total", "D5": "2.5",
			})

			state, err := f.GetCellValue(report.SheetClosing, "B2")
			require.NoError(t, err)
			assert.Equal(t, tt.wantState, state)

			net, err := f.GetCellValue(report.SheetClosing, "B8")
			require.NoError(t, err)
			assert.Equal(t, tt.wantNet, net)
		})
	}
}

func TestService_Write(t *testing.T) {
	month := mustMonth(t, "2025-04")
	svc := report.NewService(fakeCollection{}, fakeAdjustments{}, fakeClosing{preview: &closing.Figures{Month: month}})

	var buf bytes.Buffer
	require.NoError(t, svc.Write(context.Background(), month, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue(report.SheetClosing, "B1")
	require.NoError(t, err)
	assert.Equal(t, "2025-04", v)
}

func TestService_Build_SourceError(t *testing.T) {
	month := mustMonth(t, "2025-04")
	svc := report.NewService(fakeCollection{err: errors.New("db down")}, fakeAdjustments{}, fakeClosing{})

	_, err := svc.Build(context.Background(), month)
	assert.ErrorContains(t, err, "loading collection")
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "mikropanel_2025-04.xlsx", report.Filename(mustMonth(t, "2025-04")))
}
