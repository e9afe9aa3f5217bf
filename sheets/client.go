// Package sheets wraps the Google Sheets append API used to persist
// completed intake forms.
package sheets

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	coreconfig "github.com/solomat-bot/DemoProBot/core/config"
	"github.com/solomat-bot/DemoProBot/core/logger"
)

// Client appends rows to a fixed spreadsheet range.
type Client struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	appendRange   string
}

// NewClient authenticates with the service-account credential blob and
// binds the client to the configured spreadsheet.
func NewClient(ctx context.Context, cfg coreconfig.SheetsConfig) (*Client, error) {
	svc, err := sheetsapi.NewService(ctx,
		option.WithCredentialsJSON([]byte(cfg.ServiceAccountJSON)),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets: service init failed: %w", err)
	}

	appendRange := cfg.Range
	if appendRange == "" {
		appendRange = coreconfig.DefaultSheetsRange
	}

	logger.Info(ctx, "sheets", "client.ready",
		slog.String("status", "ok"),
		slog.String("spreadsheet_id", cfg.SpreadsheetID),
		slog.String("sheet_range", appendRange),
	)

	return &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		appendRange:   appendRange,
	}, nil
}

// AppendRow appends a single row to the spreadsheet.
func (c *Client) AppendRow(ctx context.Context, row []interface{}) error {
	start := time.Now()
	body := &sheetsapi.ValueRange{
		Values: [][]interface{}{row},
	}

	_, err := c.svc.Spreadsheets.Values.
		Append(c.spreadsheetID, c.appendRange, body).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		logger.Error(ctx, "sheets", "append.fail",
			slog.String("status", "fail"),
			slog.String("spreadsheet_id", c.spreadsheetID),
			slog.String("sheet_range", c.appendRange),
			slog.Int("cells", len(row)),
			slog.Duration("duration", logger.Took(start)),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("sheets: append failed: %w", err)
	}

	logger.Debug(ctx, "sheets", "append.ok",
		slog.String("status", "ok"),
		slog.String("spreadsheet_id", c.spreadsheetID),
		slog.String("sheet_range", c.appendRange),
		slog.Int("cells", len(row)),
		slog.Duration("duration", logger.Took(start)),
	)
	return nil
}
