package client

import (
	"context"
	"fmt"
	"log"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/slipsense/slip-ocr-service/dto"
)

// SheetsClient appends parsed slips to a Google Sheet. It is a consumer of the
// structured record only: one row per slip, retries are the caller's business.
type SheetsClient struct {
	service       *sheets.Service
	spreadsheetID string
	writeRange    string
}

func NewSheetsClient(ctx context.Context, credentialsFile, spreadsheetID, writeRange string) (*SheetsClient, error) {
	service, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &SheetsClient{
		service:       service,
		spreadsheetID: spreadsheetID,
		writeRange:    writeRange,
	}, nil
}

// AppendSlip writes one row for the parsed slip. Absent fields become "-" so
// columns stay aligned for whoever reads the sheet.
func (sc *SheetsClient) AppendSlip(ctx context.Context, slip dto.ParsedSlip) error {
	if slip.IsError() {
		return fmt.Errorf("refusing to log error record: %s", slip.Error)
	}

	row := []interface{}{
		time.Now().Format("02/01/2006 15:04:05"),
		cell(slip.Bank),
		cell(slip.Amount),
		cell(slip.Date),
		cell(slip.Time),
		cell(slip.Sender),
		cell(slip.Recipient),
		cell(slip.Reference),
	}

	values := &sheets.ValueRange{Values: [][]interface{}{row}}

	_, err := sc.service.Spreadsheets.Values.
		Append(sc.spreadsheetID, sc.writeRange, values).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append row: %w", err)
	}

	log.Printf("Logged slip to sheet %s (ref=%s)", sc.spreadsheetID, cell(slip.Reference))
	return nil
}

func cell(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
