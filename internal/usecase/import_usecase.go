package usecase

import (
	"context"
	"io"
	"time"

	"retailpos/internal/domain/entity"

	"github.com/google/uuid"
)

// ImportRow is one validated spreadsheet line ready to be applied.
type ImportRow struct {
	RowNumber        int       `json:"row_number"`
	Name             string    `json:"name"`
	Code             string    `json:"code"`
	Quantity         int       `json:"quantity"`
	CriticalQuantity int       `json:"critical_quantity"`
	Price            float64   `json:"price"`
	SalesCount       int       `json:"sales_count"`
	Date             time.Time `json:"date"`
	Description      string    `json:"description"`
}

// ImportSummary reports exactly what an import applied.
type ImportSummary struct {
	Created     int `json:"created"`
	Updated     int `json:"updated"`
	Predictions int `json:"predictions"`
}

// ImportUsecase defines the interface for spreadsheet bulk import
type ImportUsecase interface {
	// ImportWorkbook parses the first sheet of an xlsx workbook and applies
	// its rows. Parsing or validation failure of any row rejects the whole
	// batch before a single write.
	ImportWorkbook(ctx context.Context, reader io.Reader) (*ImportSummary, error)

	// ImportRows applies pre-parsed rows in input order inside one
	// transaction: upsert each product by code and append one price
	// prediction per row. Partial application never happens.
	ImportRows(ctx context.Context, rows []ImportRow) (*ImportSummary, error)

	// PredictionHistory retrieves a product's recorded history, oldest first.
	PredictionHistory(ctx context.Context, productID uuid.UUID) ([]*entity.PricePrediction, error)
}
