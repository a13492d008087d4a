package postgres

import (
	"context"

	"retailpos/internal/domain/entity"
	domainerrors "retailpos/internal/domain/errors"
	"retailpos/internal/domain/repository"
	"retailpos/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// predictionRepository implements the repository.PredictionRepository interface.
type predictionRepository struct {
	db *gorm.DB
}

// NewPredictionRepository is the constructor for predictionRepository.
func NewPredictionRepository(db *gorm.DB) repository.PredictionRepository {
	return &predictionRepository{
		db: db,
	}
}

// Append inserts one history row.
func (repo *predictionRepository) Append(ctx context.Context, prediction *entity.PricePrediction) error {
	predictionM := fromPredictionDomain(prediction)

	if err := repo.db.WithContext(ctx).Create(predictionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append price prediction")
	}

	prediction.ID = predictionM.ID
	prediction.CreatedAt = predictionM.CreatedAt

	return nil
}

// FindByProduct retrieves the history of one product, oldest first.
func (repo *predictionRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.PricePrediction, error) {
	var predictionModels []*model.PricePredictionModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("date ASC").
		Find(&predictionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find predictions by product")
	}

	predictions := make([]*entity.PricePrediction, 0, len(predictionModels))
	for _, predictionM := range predictionModels {
		predictions = append(predictions, toPredictionDomain(predictionM))
	}

	return predictions, nil
}

// --- Mapper Functions ---

// toPredictionDomain converts a GORM PricePredictionModel to a domain entity.
func toPredictionDomain(data *model.PricePredictionModel) *entity.PricePrediction {
	if data == nil {
		return nil
	}

	return &entity.PricePrediction{
		ID:         data.ID,
		ProductID:  data.ProductID,
		Date:       data.Date,
		Price:      data.Price,
		SalesCount: data.SalesCount,
		CreatedAt:  data.CreatedAt,
	}
}

// fromPredictionDomain converts a domain PricePrediction to a GORM model.
func fromPredictionDomain(data *entity.PricePrediction) *model.PricePredictionModel {
	if data == nil {
		return nil
	}

	return &model.PricePredictionModel{
		ID:         data.ID,
		ProductID:  data.ProductID,
		Date:       data.Date,
		Price:      data.Price,
		SalesCount: data.SalesCount,
	}
}
