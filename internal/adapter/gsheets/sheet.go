package gsheets

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"google.golang.org/api/sheets/v4"

	"github.com/heartmarshall/daily-vocab/internal/domain"
)

const (
	inputRaw         = "RAW"
	inputUserEntered = "USER_ENTERED"
	insertRows       = "INSERT_ROWS"
)

// Sheet is one worksheet of an opened spreadsheet.
type Sheet struct {
	client        *Client
	spreadsheetID string
	sheetID       int64
	title         string
}

// SpreadsheetID returns the ID of the spreadsheet the worksheet belongs to.
func (s *Sheet) SpreadsheetID() string { return s.spreadsheetID }

// EnsureHeader writes header into row 1 unless row 1 already equals it.
// Reports whether row 1 was rewritten. Other rows are never touched.
func (s *Sheet) EnsureHeader(ctx context.Context, header []string) (bool, error) {
	rng := s.a1(fmt.Sprintf("A1:%s1", domain.ColumnLetter(len(header)-1)))

	resp, err := s.client.sheets.Spreadsheets.Values.Get(s.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return false, fmt.Errorf("gsheets: read header: %w", err)
	}

	var current []string
	if len(resp.Values) > 0 {
		current = cellsToStrings(resp.Values[0])
	}
	if slices.Equal(current, header) {
		return false, nil
	}

	_, err = s.client.sheets.Spreadsheets.Values.Update(s.spreadsheetID, rng, &sheets.ValueRange{
		MajorDimension: "ROWS",
		Values:         [][]any{stringsToCells(header)},
	}).ValueInputOption(inputUserEntered).Context(ctx).Do()
	if err != nil {
		return false, fmt.Errorf("gsheets: write header: %w", err)
	}

	s.client.log.InfoContext(ctx, "header row written",
		slog.String("spreadsheet_id", s.spreadsheetID),
		slog.Int("previous_cells", len(current)),
	)
	return true, nil
}

// ReadColumn returns every value of the 0-based column, header included.
// Trailing empty cells are not returned.
func (s *Sheet) ReadColumn(ctx context.Context, index int) ([]string, error) {
	col := domain.ColumnLetter(index)

	resp, err := s.client.sheets.Spreadsheets.Values.Get(s.spreadsheetID, s.a1(col+":"+col)).
		MajorDimension("COLUMNS").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("gsheets: read column %s: %w", col, err)
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}
	return cellsToStrings(resp.Values[0]), nil
}

// RowCount returns the number of used rows, measured on column A.
func (s *Sheet) RowCount(ctx context.Context) (int, error) {
	values, err := s.ReadColumn(ctx, 0)
	if err != nil {
		return 0, err
	}
	return len(values), nil
}

// AppendRows appends rows after the last used row in a single call.
// Values are stored as entered (RAW), so cell text is never evaluated as a formula.
func (s *Sheet) AppendRows(ctx context.Context, rows [][]string) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	values := make([][]any, 0, len(rows))
	for _, r := range rows {
		values = append(values, stringsToCells(r))
	}

	resp, err := s.client.sheets.Spreadsheets.Values.Append(s.spreadsheetID, s.a1("A1"), &sheets.ValueRange{
		MajorDimension: "ROWS",
		Values:         values,
	}).
		ValueInputOption(inputRaw).
		InsertDataOption(insertRows).
		Context(ctx).
		Do()
	if err != nil {
		return 0, fmt.Errorf("gsheets: append %d rows: %w", len(rows), err)
	}

	appended := len(rows)
	if resp.Updates != nil {
		appended = int(resp.Updates.UpdatedRows)
	}
	return appended, nil
}

// FormatRows sets a fixed pixel height, clipped wrapping and top alignment
// on rows [start, end), 0-based. Values are not modified.
func (s *Sheet) FormatRows(ctx context.Context, start, end, heightPx int) error {
	if end <= start {
		return nil
	}

	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				UpdateDimensionProperties: &sheets.UpdateDimensionPropertiesRequest{
					Range: &sheets.DimensionRange{
						SheetId:    s.sheetID,
						Dimension:  "ROWS",
						StartIndex: int64(start),
						EndIndex:   int64(end),
					},
					Properties: &sheets.DimensionProperties{PixelSize: int64(heightPx)},
					Fields:     "pixelSize",
				},
			},
			{
				RepeatCell: &sheets.RepeatCellRequest{
					Range: &sheets.GridRange{
						SheetId:       s.sheetID,
						StartRowIndex: int64(start),
						EndRowIndex:   int64(end),
					},
					Cell: &sheets.CellData{
						UserEnteredFormat: &sheets.CellFormat{
							WrapStrategy:      "CLIP",
							VerticalAlignment: "TOP",
						},
					},
					Fields: "userEnteredFormat(wrapStrategy,verticalAlignment)",
				},
			},
		},
	}

	if _, err := s.client.sheets.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("gsheets: format rows %d-%d: %w", start, end, err)
	}
	return nil
}

// a1 prefixes a range with the quoted worksheet title.
func (s *Sheet) a1(rng string) string {
	return "'" + strings.ReplaceAll(s.title, "'", "''") + "'!" + rng
}

func cellsToStrings(cells []any) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		if c != nil {
			out[i] = fmt.Sprint(c)
		}
	}
	return out
}

func stringsToCells(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
