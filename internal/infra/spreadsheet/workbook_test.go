package spreadsheet

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()

	workbook := excelize.NewFile()
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, workbook.SetSheetRow(sheet, cell, &row))
	}

	buf, err := workbook.WriteToBuffer()
	require.NoError(t, err)

	return buf
}

func TestParse_ReadsHeaderKeyedRows(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"Name", "Code", "Quantity", "Critical-Quantity", "Price", "Sales-Count", "Date", "Description"},
		{"Espresso Beans", "A1", 10, 2, 5.00, 3, "2026-01-15", "dark roast"},
		{"Filter Paper", "B2", 40, 5, 1.25, 12, "2026-01-16", ""},
	})

	rows, err := Parse(buf)

	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].RowNumber)
	assert.Equal(t, "Espresso Beans", rows[0].Name)
	assert.Equal(t, "A1", rows[0].Code)
	assert.Equal(t, 10, rows[0].Quantity)
	assert.Equal(t, 2, rows[0].CriticalQuantity)
	assert.InDelta(t, 5.00, rows[0].Price, 0.0001)
	assert.Equal(t, 3, rows[0].SalesCount)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), rows[0].Date)
	assert.Equal(t, "dark roast", rows[0].Description)

	assert.Equal(t, "B2", rows[1].Code)
	assert.Empty(t, rows[1].Description)
}

func TestParse_ColumnOrderDoesNotMatter(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"code", "price", "name", "date", "sales_count", "critical quantity", "quantity"},
		{"A1", 9.90, "Grinder", "2026-02-01", 1, 1, 4},
	})

	rows, err := Parse(buf)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Grinder", rows[0].Name)
	assert.Equal(t, 4, rows[0].Quantity)
	assert.InDelta(t, 9.90, rows[0].Price, 0.0001)
}

func TestParse_CollectsAllMalformedRows(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"Name", "Code", "Quantity", "Critical-Quantity", "Price", "Sales-Count", "Date"},
		{"Valid", "A1", 10, 2, 5.00, 3, "2026-01-15"},
		{"", "B2", 1, 1, 1.00, 0, "2026-01-15"},
		{"Bad Qty", "C3", "lots", 1, 1.00, 0, "2026-01-15"},
		{"Bad Date", "D4", 1, 1, 1.00, 0, "someday"},
	})

	_, err := Parse(buf)

	require.Error(t, err)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Len(t, parseErr.Rows, 3)
	assert.Equal(t, 3, parseErr.Rows[0].RowNumber)
	assert.Equal(t, 4, parseErr.Rows[1].RowNumber)
	assert.Equal(t, 5, parseErr.Rows[2].RowNumber)
	assert.Contains(t, err.Error(), "row 4: quantity is not a number")
}

func TestParse_RejectsMissingColumns(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"Name", "Code", "Quantity"},
		{"Espresso Beans", "A1", 10},
	})

	_, err := Parse(buf)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required columns")
	assert.Contains(t, err.Error(), "price")
}

func TestParse_SkipsBlankRows(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"Name", "Code", "Quantity", "Critical-Quantity", "Price", "Sales-Count", "Date"},
		{"Espresso Beans", "A1", 10, 2, 5.00, 3, "2026-01-15"},
		{"", "", "", "", "", "", ""},
		{"Filter Paper", "B2", 40, 5, 1.25, 12, "2026-01-16"},
	})

	rows, err := Parse(buf)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 4, rows[1].RowNumber)
}
