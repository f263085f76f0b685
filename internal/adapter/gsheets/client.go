package gsheets

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const spreadsheetMIMEType = "application/vnd.google-apps.spreadsheet"

// Client talks to the Sheets and Drive APIs on behalf of a service account.
type Client struct {
	sheets *sheets.Service
	drive  *drive.Service
	log    *slog.Logger
}

// Connect authenticates with the service-account credentials file and
// builds the Sheets and Drive services.
func Connect(ctx context.Context, credentialsFile string, logger *slog.Logger) (*Client, error) {
	opts := []option.ClientOption{
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope, drive.DriveScope),
	}

	sheetsSvc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gsheets: connect sheets: %w", err)
	}
	driveSvc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gsheets: connect drive: %w", err)
	}
	return NewClient(sheetsSvc, driveSvc, logger), nil
}

// NewClient wraps already-built services.
func NewClient(sheetsSvc *sheets.Service, driveSvc *drive.Service, logger *slog.Logger) *Client {
	return &Client{
		sheets: sheetsSvc,
		drive:  driveSvc,
		log:    logger.With("adapter", "gsheets"),
	}
}

// Open returns the first worksheet of the spreadsheet titled name,
// creating the spreadsheet when no such file is visible to the account.
func (c *Client) Open(ctx context.Context, name string) (*Sheet, error) {
	id, err := c.findSpreadsheet(ctx, name)
	if err != nil {
		return nil, err
	}

	if id == "" {
		created, err := c.sheets.Spreadsheets.Create(&sheets.Spreadsheet{
			Properties: &sheets.SpreadsheetProperties{Title: name},
		}).Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("gsheets: create spreadsheet %q: %w", name, err)
		}
		id = created.SpreadsheetId
		c.log.InfoContext(ctx, "spreadsheet created",
			slog.String("name", name),
			slog.String("spreadsheet_id", id),
		)
	} else {
		c.log.InfoContext(ctx, "spreadsheet opened",
			slog.String("name", name),
			slog.String("spreadsheet_id", id),
		)
	}

	ss, err := c.sheets.Spreadsheets.Get(id).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("gsheets: get spreadsheet %s: %w", id, err)
	}
	if len(ss.Sheets) == 0 || ss.Sheets[0].Properties == nil {
		return nil, fmt.Errorf("gsheets: spreadsheet %s has no worksheets", id)
	}
	props := ss.Sheets[0].Properties

	return &Sheet{
		client:        c,
		spreadsheetID: id,
		sheetID:       props.SheetId,
		title:         props.Title,
	}, nil
}

func (c *Client) findSpreadsheet(ctx context.Context, name string) (string, error) {
	q := fmt.Sprintf("mimeType='%s' and trashed=false and name='%s'", spreadsheetMIMEType, escapeQuery(name))

	list, err := c.drive.Files.List().
		Q(q).
		Fields("files(id, name)").
		PageSize(10).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("gsheets: find spreadsheet %q: %w", name, err)
	}
	for _, f := range list.Files {
		if f.Name == name {
			return f.Id, nil
		}
	}
	return "", nil
}

// escapeQuery escapes a value for a Drive query string literal.
func escapeQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}
