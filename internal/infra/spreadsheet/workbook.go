// Package spreadsheet parses bulk-import workbooks into typed rows.
package spreadsheet

import (
	"fmt"
	"io"
	"strings"

	"retailpos/internal/domain/service"
	"retailpos/internal/errors"

	"github.com/araddon/dateparse"
	"github.com/spf13/cast"
	"github.com/xuri/excelize/v2"
)

// RowError ties a parse failure to the sheet row it came from.
type RowError struct {
	RowNumber int
	Reason    string
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.RowNumber, e.Reason)
}

// ParseError aggregates every row that failed to parse. No rows from a
// workbook carrying a ParseError are ever applied.
type ParseError struct {
	Rows []RowError
}

func (e *ParseError) Error() string {
	reasons := make([]string, 0, len(e.Rows))
	for _, rowErr := range e.Rows {
		reasons = append(reasons, rowErr.Error())
	}

	return "workbook parse failed: " + strings.Join(reasons, "; ")
}

// required column headers, matched after normalization
const (
	columnName             = "name"
	columnCode             = "code"
	columnQuantity         = "quantity"
	columnCriticalQuantity = "criticalquantity"
	columnPrice            = "price"
	columnSalesCount       = "salescount"
	columnDate             = "date"
	columnDescription      = "description"
)

var requiredColumns = []string{
	columnName,
	columnCode,
	columnQuantity,
	columnCriticalQuantity,
	columnPrice,
	columnSalesCount,
	columnDate,
}

// Parser implements the service.WorkbookParser interface over xlsx files.
type Parser struct{}

// NewParser is the constructor for Parser.
func NewParser() service.WorkbookParser {
	return Parser{}
}

// Parse implements service.WorkbookParser.
func (Parser) Parse(reader io.Reader) ([]service.WorkbookRow, error) {
	return Parse(reader)
}

// Parse reads the first sheet of an xlsx workbook. The header row maps columns
// by name, so column order does not matter. Every malformed row is collected
// before returning, giving the operator the full list in one pass.
func Parse(reader io.Reader) ([]service.WorkbookRow, error) {
	workbook, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open workbook")
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rawRows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %s", sheets[0])
	}
	if len(rawRows) < 2 {
		return nil, errors.New("workbook has a header but no data rows")
	}

	columns, err := mapColumns(rawRows[0])
	if err != nil {
		return nil, err
	}

	rows := make([]service.WorkbookRow, 0, len(rawRows)-1)
	var rowErrors []RowError

	for i, rawRow := range rawRows[1:] {
		rowNumber := i + 2

		if isBlankRow(rawRow) {
			continue
		}

		row, parseErr := parseRow(rowNumber, rawRow, columns)
		if parseErr != nil {
			rowErrors = append(rowErrors, *parseErr)

			continue
		}

		rows = append(rows, row)
	}

	if len(rowErrors) > 0 {
		return nil, &ParseError{Rows: rowErrors}
	}
	if len(rows) == 0 {
		return nil, errors.New("workbook has no data rows")
	}

	return rows, nil
}

// mapColumns resolves header names to column indexes.
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for idx, cell := range header {
		key := normalizeHeader(cell)
		if key == "" {
			continue
		}
		if _, exists := columns[key]; !exists {
			columns[key] = idx
		}
	}

	var missing []string
	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, errors.Errorf("workbook is missing required columns: %s", strings.Join(missing, ", "))
	}

	return columns, nil
}

func parseRow(rowNumber int, rawRow []string, columns map[string]int) (service.WorkbookRow, *RowError) {
	row := service.WorkbookRow{RowNumber: rowNumber}

	row.Name = cellAt(rawRow, columns[columnName])
	if row.Name == "" {
		return row, &RowError{RowNumber: rowNumber, Reason: "name is empty"}
	}

	row.Code = cellAt(rawRow, columns[columnCode])
	if row.Code == "" {
		return row, &RowError{RowNumber: rowNumber, Reason: "code is empty"}
	}

	var err error
	if row.Quantity, err = parseIntCell(rawRow, columns[columnQuantity]); err != nil {
		return row, &RowError{RowNumber: rowNumber, Reason: "quantity is not a number"}
	}
	if row.Quantity < 0 {
		return row, &RowError{RowNumber: rowNumber, Reason: "quantity is negative"}
	}

	if row.CriticalQuantity, err = parseIntCell(rawRow, columns[columnCriticalQuantity]); err != nil {
		return row, &RowError{RowNumber: rowNumber, Reason: "critical quantity is not a number"}
	}

	if row.Price, err = parseFloatCell(rawRow, columns[columnPrice]); err != nil {
		return row, &RowError{RowNumber: rowNumber, Reason: "price is not a number"}
	}
	if row.Price < 0 {
		return row, &RowError{RowNumber: rowNumber, Reason: "price is negative"}
	}

	if row.SalesCount, err = parseIntCell(rawRow, columns[columnSalesCount]); err != nil {
		return row, &RowError{RowNumber: rowNumber, Reason: "sales count is not a number"}
	}

	dateCell := cellAt(rawRow, columns[columnDate])
	if dateCell == "" {
		return row, &RowError{RowNumber: rowNumber, Reason: "date is empty"}
	}
	if row.Date, err = dateparse.ParseAny(dateCell); err != nil {
		return row, &RowError{RowNumber: rowNumber, Reason: "date is not parseable"}
	}

	if idx, ok := columns[columnDescription]; ok {
		row.Description = cellAt(rawRow, idx)
	}

	return row, nil
}

func isBlankRow(rawRow []string) bool {
	for _, cell := range rawRow {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}

func cellAt(rawRow []string, idx int) string {
	if idx < 0 || idx >= len(rawRow) {
		return ""
	}

	return strings.TrimSpace(rawRow[idx])
}

func parseIntCell(rawRow []string, idx int) (int, error) {
	return cast.ToIntE(cellAt(rawRow, idx))
}

func parseFloatCell(rawRow []string, idx int) (float64, error) {
	return cast.ToFloat64E(cellAt(rawRow, idx))
}

// normalizeHeader lowercases and strips separators so "Critical-Quantity",
// "critical quantity" and "critical_quantity" all match.
func normalizeHeader(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if r == ' ' || r == '-' || r == '_' {
			continue
		}
		normalized.WriteRune(r)
	}

	return normalized.String()
}
