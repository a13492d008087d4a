package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"retailpos/internal/domain/entity"
	domainerrors "retailpos/internal/domain/errors"
	"retailpos/internal/domain/repository"
	"retailpos/internal/domain/service"
	"retailpos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// importService implements the ImportUsecase interface.
type importService struct {
	txManager      repository.TransactionManager
	predictionRepo repository.PredictionRepository
	parser         service.WorkbookParser
	maxRows        int
	logger         *slog.Logger
}

// NewImportService is the constructor for importService. maxRows bounds a
// single import; zero means unbounded.
func NewImportService(
	txManager repository.TransactionManager,
	predictionRepo repository.PredictionRepository,
	parser service.WorkbookParser,
	maxRows int,
	logger *slog.Logger,
) usecase.ImportUsecase {
	return &importService{
		txManager:      txManager,
		predictionRepo: predictionRepo,
		parser:         parser,
		maxRows:        maxRows,
		logger:         logger,
	}
}

// ImportWorkbook parses the first sheet of an xlsx workbook and applies its
// rows. A parse failure of any row rejects the whole upload.
func (srv *importService) ImportWorkbook(ctx context.Context, reader io.Reader) (*usecase.ImportSummary, error) {
	parsed, err := srv.parser.Parse(reader)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	rows := make([]usecase.ImportRow, 0, len(parsed))
	for _, row := range parsed {
		rows = append(rows, usecase.ImportRow{
			RowNumber:        row.RowNumber,
			Name:             row.Name,
			Code:             row.Code,
			Quantity:         row.Quantity,
			CriticalQuantity: row.CriticalQuantity,
			Price:            row.Price,
			SalesCount:       row.SalesCount,
			Date:             row.Date,
			Description:      row.Description,
		})
	}

	return srv.ImportRows(ctx, rows)
}

// ImportRows applies pre-validated rows in input order inside one transaction.
// Every row upserts a product by code and appends one price prediction; any
// failure rolls the whole batch back.
func (srv *importService) ImportRows(ctx context.Context, rows []usecase.ImportRow) (*usecase.ImportSummary, error) {
	if len(rows) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("import contains no rows")
	}
	if srv.maxRows > 0 && len(rows) > srv.maxRows {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("import of %d rows exceeds the limit of %d", len(rows), srv.maxRows))
	}
	if err := validateRows(rows); err != nil {
		return nil, err
	}

	summary := &usecase.ImportSummary{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()
		predictionRepo := repoFactory.NewPredictionRepository()

		for _, row := range rows {
			product, err := productRepo.FindByCode(ctx, row.Code)
			switch {
			case err == nil:
				product.Name = row.Name
				product.Quantity = row.Quantity
				product.CriticalQuantity = row.CriticalQuantity
				product.Price = row.Price
				if row.Description != "" {
					product.Description = row.Description
				}
				if err := productRepo.Update(ctx, product); err != nil {
					return errors.Wrapf(err, "failed to update product %s", row.Code)
				}
				summary.Updated++

			case errors.Is(err, repository.ErrProductNotFound):
				product = &entity.Product{
					Name:             row.Name,
					Code:             row.Code,
					Quantity:         row.Quantity,
					CriticalQuantity: row.CriticalQuantity,
					Price:            row.Price,
					Description:      row.Description,
				}
				if err := productRepo.Create(ctx, product); err != nil {
					return errors.Wrapf(err, "failed to create product %s", row.Code)
				}
				summary.Created++

			default:
				return errors.Wrapf(err, "failed to find product %s", row.Code)
			}

			prediction := &entity.PricePrediction{
				ProductID:  product.ID,
				Date:       row.Date,
				Price:      row.Price,
				SalesCount: row.SalesCount,
			}
			if err := predictionRepo.Append(ctx, prediction); err != nil {
				return errors.Wrapf(err, "failed to append prediction for %s", row.Code)
			}
			summary.Predictions++
		}

		return nil
	})
	if err != nil {
		srv.logger.Warn("import rolled back", "rows", len(rows), "error", err)

		return nil, err
	}

	srv.logger.Info("import applied",
		"created", summary.Created,
		"updated", summary.Updated,
		"predictions", summary.Predictions)

	return summary, nil
}

// PredictionHistory retrieves a product's recorded history, oldest first.
func (srv *importService) PredictionHistory(ctx context.Context, productID uuid.UUID) ([]*entity.PricePrediction, error) {
	predictions, err := srv.predictionRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find prediction history")
	}

	return predictions, nil
}

// validateRows checks every row before any write and names each bad one.
func validateRows(rows []usecase.ImportRow) error {
	var problems []string

	for _, row := range rows {
		switch {
		case strings.TrimSpace(row.Name) == "":
			problems = append(problems, fmt.Sprintf("row %d: name is empty", row.RowNumber))
		case strings.TrimSpace(row.Code) == "":
			problems = append(problems, fmt.Sprintf("row %d: code is empty", row.RowNumber))
		case row.Quantity < 0:
			problems = append(problems, fmt.Sprintf("row %d: quantity is negative", row.RowNumber))
		case row.Price < 0:
			problems = append(problems, fmt.Sprintf("row %d: price is negative", row.RowNumber))
		case row.Date.IsZero():
			problems = append(problems, fmt.Sprintf("row %d: date is missing", row.RowNumber))
		}
	}

	if len(problems) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails(strings.Join(problems, "; "))
	}

	return nil
}
