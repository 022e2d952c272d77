// Package report renders a month of billing as an XLSX workbook.
package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/MrJamesThe3rd/mikropanel/internal/adjustment"
	"github.com/MrJamesThe3rd/mikropanel/internal/closing"
	"github.com/MrJamesThe3rd/mikropanel/internal/collection"
	"github.com/MrJamesThe3rd/mikropanel/internal/money"
	"github.com/MrJamesThe3rd/mikropanel/internal/period"
)

const (
	SheetCollection  = "Cobranza"
	SheetAdjustments = "Ajustes"
	SheetClosing     = "Corte"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type CollectionSource interface {
	Get(ctx context.Context, month period.Month) ([]*collection.Item, error)
}

type AdjustmentSource interface {
	List(ctx context.Context, filter adjustment.ListFilter) ([]*adjustment.Adjustment, error)
}

type ClosingSource interface {
	Get(ctx context.Context, month period.Month) (*closing.Figures, error)
	Preview(ctx context.Context, month period.Month) (*closing.Figures, error)
}

// Service assembles the monthly workbook from the collection batch, the
// adjustment ledger and the closing.
type Service struct {
	collection  CollectionSource
	adjustments AdjustmentSource
	closing     ClosingSource
}

func NewService(collection CollectionSource, adjustments AdjustmentSource, closing ClosingSource) *Service {
	return &Service{collection: collection, adjustments: adjustments, closing: closing}
}

// Filename is the attachment name used for month's workbook.
func Filename(month period.Month) string {
	return fmt.Sprintf("mikropanel_%s.xlsx", month)
}

// Build returns the workbook for month. The Corte sheet holds the stored
// closing, or a live preview when the month is not closed yet.
func (s *Service) Build(ctx context.Context, month period.Month) (*excelize.File, error) {
	items, err := s.collection.Get(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("loading collection: %w", err)
	}

	adjs, err := s.adjustments.List(ctx, adjustment.ListFilter{Month: &month})
	if err != nil {
		return nil, fmt.Errorf("loading adjustments: %w", err)
	}

	figures, err := s.closing.Get(ctx, month)
	if errors.Is(err, closing.ErrNotFound) {
		figures, err = s.closing.Preview(ctx, month)
	}

	if err != nil {
		return nil, fmt.Errorf("loading closing: %w", err)
	}

	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetCollection); err != nil {
		f.Close()
		return nil, fmt.Errorf("naming sheet: %w", err)
	}

	for _, write := range []func(*excelize.File) error{
		func(f *excelize.File) error { return writeCollection(f, items) },
		func(f *excelize.File) error { return writeAdjustments(f, adjs) },
		func(f *excelize.File) error { return writeClosing(f, figures) },
	} {
		if err := write(f); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

// Write streams month's workbook to w.
func (s *Service) Write(ctx context.Context, month period.Month, w io.Writer) error {
	f, err := s.Build(ctx, month)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}

	return nil
}

func amount(cents int64) float64 {
	return money.ToDecimal(cents).InexactFloat64()
}

func setRow(f *excelize.File, sheet string, row int, values ...any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}

	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("writing %s row %d: %w", sheet, row, err)
	}

	return nil
}

func boldHeader(f *excelize.File, sheet string, cols int) error {
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating style: %w", err)
	}

	last, err := excelize.CoordinatesToCellName(cols, 1)
	if err != nil {
		return err
	}

	return f.SetCellStyle(sheet, "A1", last, style)
}

func writeCollection(f *excelize.File, items []*collection.Item) error {
	headers := []any{"Cliente", "Zona", "Mb", "Tarifa", "Importe", "Pagado", "Fecha de pago", "Cobrado por"}
	if err := setRow(f, SheetCollection, 1, headers...); err != nil {
		return err
	}

	for i, it := range items {
		paid := "No"

		var paidAt string

		if it.Paid {
			paid = "Sí"
		}

		if it.PaidAt != nil {
			paidAt = it.PaidAt.Format(time.DateOnly)
		}

		if err := setRow(f, SheetCollection, i+2,
			it.ClientName, it.ZoneID, it.Units, amount(it.Tariff), amount(it.Amount), paid, paidAt, it.PaidBy,
		); err != nil {
			return err
		}
	}

	sum := collection.Summarize(period.Month{}, items)

	if err := setRow(f, SheetCollection, len(items)+3,
		"Total", "", "", "", amount(sum.Amount), fmt.Sprintf("%d/%d", sum.Paid, sum.Count), amount(sum.Collected),
	); err != nil {
		return err
	}

	return boldHeader(f, SheetCollection, len(headers))
}

func writeAdjustments(f *excelize.File, adjs []*adjustment.Adjustment) error {
	if _, err := f.NewSheet(SheetAdjustments); err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}

	headers := []any{"Fecha", "Concepto", "Tipo", "Importe", "Usuario"}
	if err := setRow(f, SheetAdjustments, 1, headers...); err != nil {
		return err
	}

	for i, a := range adjs {
		if err := setRow(f, SheetAdjustments, i+2,
			a.CreatedAt.Format(time.DateOnly), a.Label, string(a.Kind), amount(a.Amount), a.Actor,
		); err != nil {
			return err
		}
	}

	if err := setRow(f, SheetAdjustments, len(adjs)+3, "Total", "", "", amount(adjustment.Sum(adjs))); err != nil {
		return err
	}

	return boldHeader(f, SheetAdjustments, len(headers))
}

func writeClosing(f *excelize.File, fig *closing.Figures) error {
	if _, err := f.NewSheet(SheetClosing); err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}

	state := "Vista previa"
	if fig.Saved() {
		state = fmt.Sprintf("Cerrado por %s el %s", fig.ClosedBy, fig.ClosedAt.Format(time.DateOnly))
	}

	rows := [][]any{
		{"Mes", fig.Month.String()},
		{"Estado", state},
		{"Bruto", amount(fig.Gross)},
		{"Margen", amount(fig.Margin)},
		{"Técnicos", amount(fig.Technicians)},
		{"Neto base", amount(fig.NetBase)},
		{"Ajustes", amount(fig.Adjustments)},
		{"Neto", amount(fig.Net)},
	}

	for i, row := range rows {
		if err := setRow(f, SheetClosing, i+1, row...); err != nil {
			return err
		}
	}

	return nil
}
