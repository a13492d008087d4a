package service

import (
	"io"
	"time"
)

// WorkbookRow is one spreadsheet line parsed for bulk import. RowNumber is the
// 1-based sheet position, header included, so errors name the row the operator
// sees.
type WorkbookRow struct {
	RowNumber        int
	Name             string
	Code             string
	Quantity         int
	CriticalQuantity int
	Price            float64
	SalesCount       int
	Date             time.Time
	Description      string
}

// WorkbookParser turns an uploaded workbook into typed rows. Implementations
// must collect every malformed row before failing, so one upload surfaces the
// full list of problems.
type WorkbookParser interface {
	Parse(reader io.Reader) ([]WorkbookRow, error)
}
