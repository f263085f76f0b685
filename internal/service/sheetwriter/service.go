// Package sheetwriter appends finished records to the vocabulary sheet.
package sheetwriter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/daily-vocab/internal/domain"
)

type sheet interface {
	AppendRows(ctx context.Context, rows [][]string) (int, error)
	RowCount(ctx context.Context) (int, error)
	FormatRows(ctx context.Context, start, end, heightPx int) error
}

// AppendResult reports what AppendRecords did.
type AppendResult struct {
	Written int
	Invalid int // records dropped by validation before the write
}

// Service writes rows and keeps their format.
type Service struct {
	log       *slog.Logger
	sheet     sheet
	rowHeight int
}

// NewService creates a new sheet writer. rowHeight is the fixed data-row height in pixels.
func NewService(log *slog.Logger, sheet sheet, rowHeight int) *Service {
	return &Service{
		log:       log.With("service", "sheetwriter"),
		sheet:     sheet,
		rowHeight: rowHeight,
	}
}

// AppendRecords validates records and appends the valid ones, in order, in a
// single call. Records failing validation are dropped and counted. An append
// error is returned unchanged in meaning; nothing is retried.
func (s *Service) AppendRecords(ctx context.Context, records []domain.Record) (AppendResult, error) {
	var res AppendResult

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		if err := domain.ValidateRecord(r); err != nil {
			res.Invalid++
			s.log.WarnContext(ctx, "dropping invalid record",
				slog.String("word", r.FinnishWord),
				slog.String("error", err.Error()),
			)
			continue
		}
		rows = append(rows, r.Row())
	}

	if len(rows) == 0 {
		return res, nil
	}

	n, err := s.sheet.AppendRows(ctx, rows)
	if err != nil {
		return res, fmt.Errorf("sheetwriter: append: %w", err)
	}
	res.Written = n

	s.log.InfoContext(ctx, "records appended", slog.Int("count", n))
	return res, nil
}

// ApplyRowFormat sets the fixed height and clipped, top-aligned cells on
// every data row. Only formatting changes; applying it twice is a no-op.
func (s *Service) ApplyRowFormat(ctx context.Context) error {
	rows, err := s.sheet.RowCount(ctx)
	if err != nil {
		return fmt.Errorf("sheetwriter: count rows: %w", err)
	}
	if rows <= 1 {
		return nil
	}

	if err := s.sheet.FormatRows(ctx, 1, rows, s.rowHeight); err != nil {
		return fmt.Errorf("sheetwriter: format rows: %w", err)
	}
	s.log.DebugContext(ctx, "row format applied",
		slog.Int("rows", rows-1),
		slog.Int("height_px", s.rowHeight),
	)
	return nil
}
