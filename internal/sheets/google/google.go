package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"dompet/internal/core"
	ports "dompet/internal/sheets"
)

// Client mirrors derived finance reports to a Google spreadsheet. Each
// export rewrites its sheet wholesale; the spreadsheet is a read-only copy
// of tracker state, never a source of truth.
type Client struct {
	svc             *gsheet.Service
	spreadsheetID   string
	recapSheet      string
	allocationSheet string
}

var (
	_ ports.RecapWriter      = (*Client)(nil)
	_ ports.AllocationWriter = (*Client)(nil)
)

// NewFromEnv creates a Sheets client from environment variables.
// Required: GOOGLE_SPREADSHEET_ID.
// Optional sheet names: GOOGLE_RECAP_SHEET_NAME (default "Recap"),
// GOOGLE_ALLOCATIONS_SHEET_NAME (default "Allocations"); both get the
// current year prefixed unless they already carry one.
func NewFromEnv(ctx context.Context) (*Client, error) {
	spreadsheetID := strings.TrimSpace(os.Getenv("GOOGLE_SPREADSHEET_ID"))
	if spreadsheetID == "" {
		return nil, errors.New("missing GOOGLE_SPREADSHEET_ID")
	}

	recapBase := strings.TrimSpace(os.Getenv("GOOGLE_RECAP_SHEET_NAME"))
	if recapBase == "" {
		recapBase = "Recap"
	}
	allocationBase := strings.TrimSpace(os.Getenv("GOOGLE_ALLOCATIONS_SHEET_NAME"))
	if allocationBase == "" {
		allocationBase = "Allocations"
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	currentYear := time.Now().Year()
	return &Client{
		svc:             svc,
		spreadsheetID:   spreadsheetID,
		recapSheet:      yearPrefixedName(recapBase, currentYear),
		allocationSheet: yearPrefixedName(allocationBase, currentYear),
	}, nil
}

// newSheetsService initializes a Sheets Service using Service Account
// credentials from GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE,
// or GOOGLE_APPLICATION_CREDENTIALS.
func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))

	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	var err error

	switch {
	case serviceAccountJSON != "":
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		credentialsJSON, err = os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	service, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	slog.InfoContext(ctx, "Google Sheets service created")
	return service, nil
}

// WriteRecaps rewrites the recap sheet with one row per month.
func (c *Client) WriteRecaps(ctx context.Context, recaps []core.MonthlyRecap) error {
	if c.svc == nil {
		return errors.New("sheets service not initialized")
	}
	return c.rewriteSheet(ctx, c.recapSheet, recapRows(recaps))
}

// WriteAllocations rewrites the allocations sheet with one row per target.
func (c *Client) WriteAllocations(ctx context.Context, views []core.AllocationView) error {
	if c.svc == nil {
		return errors.New("sheets service not initialized")
	}
	return c.rewriteSheet(ctx, c.allocationSheet, allocationRows(views))
}

func (c *Client) rewriteSheet(ctx context.Context, sheetName string, rows [][]any) error {
	clearRange := fmt.Sprintf("%s!A:Z", sheetName)
	_, err := c.svc.Spreadsheets.Values.Clear(c.spreadsheetID, clearRange, &gsheet.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("clear %s: %w", clearRange, err)
	}

	writeRange := fmt.Sprintf("%s!A1", sheetName)
	vr := &gsheet.ValueRange{Values: rows}
	_, err = c.svc.Spreadsheets.Values.Update(c.spreadsheetID, writeRange, vr).
		ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("write %s: %w", writeRange, err)
	}

	slog.InfoContext(ctx, "Rewrote sheet", "sheet", sheetName, "rows", len(rows)-1)
	return nil
}

// recapRows builds the header plus one row per month.
func recapRows(recaps []core.MonthlyRecap) [][]any {
	rows := make([][]any, 0, len(recaps)+1)
	rows = append(rows, []any{
		"Month", "Initial Balance", "Income (Side Job)", "Income (Studio)",
		"Expense", "Investment", "Final Balance",
	})
	for _, r := range recaps {
		rows = append(rows, []any{
			r.Month.Label(), r.InitialBalance, r.TotalIncomeSideJob, r.TotalIncomeStudio,
			r.TotalExpense, r.Investment, r.FinalBalance,
		})
	}
	return rows
}

// allocationRows builds the header plus one row per allocation target.
func allocationRows(views []core.AllocationView) [][]any {
	rows := make([][]any, 0, len(views)+1)
	rows = append(rows, []any{
		"Category", "Target %", "Specific Target", "Nominal Target",
		"Actual Balance", "Realization %", "Band",
	})
	for _, v := range views {
		specific := any("")
		if v.SpecificTarget != nil {
			specific = *v.SpecificTarget
		}
		rows = append(rows, []any{
			v.Category, v.TargetPercentage, specific, v.NominalTarget,
			v.ActualBalance, v.Realization, string(v.Band),
		})
	}
	return rows
}

// yearPrefixedName returns "<year> <base>" unless base already starts with
// a 4-digit year.
func yearPrefixedName(base string, year int) string {
	base = strings.TrimSpace(base)
	if base == "" {
		return base
	}
	if len(base) >= 5 {
		if y, err := strconv.Atoi(base[0:4]); err == nil && base[4] == ' ' && y > 1900 && y < 3000 {
			return base
		}
	}
	return fmt.Sprintf("%d %s", year, base)
}
