package postgres

import (
	"context"
	"time"

	"retailpos/internal/domain/entity"
	domainerrors "retailpos/internal/domain/errors"
	"retailpos/internal/domain/repository"
	"retailpos/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// vatRateRepository implements the repository.VatRateRepository interface.
type vatRateRepository struct {
	db *gorm.DB
}

// NewVatRateRepository is the constructor for vatRateRepository.
func NewVatRateRepository(db *gorm.DB) repository.VatRateRepository {
	return &vatRateRepository{
		db: db,
	}
}

// Create persists a new rate.
func (repo *vatRateRepository) Create(ctx context.Context, rate *entity.VatRate) error {
	rateM := fromVatRateDomain(rate)

	if err := repo.db.WithContext(ctx).Create(rateM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create vat rate")
	}

	rate.ID = rateM.ID
	rate.CreatedAt = rateM.CreatedAt

	return nil
}

// List retrieves all rates, newest effective date first.
func (repo *vatRateRepository) List(ctx context.Context) ([]*entity.VatRate, error) {
	var rateModels []*model.VatRateModel

	if err := repo.db.WithContext(ctx).
		Order("effective_date DESC").
		Find(&rateModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list vat rates")
	}

	rates := make([]*entity.VatRate, 0, len(rateModels))
	for _, rateM := range rateModels {
		rates = append(rates, toVatRateDomain(rateM))
	}

	return rates, nil
}

// FindApplicable returns the most recent rate whose effective date is not
// after the given instant.
func (repo *vatRateRepository) FindApplicable(ctx context.Context, at time.Time) (*entity.VatRate, error) {
	var rateM model.VatRateModel

	if err := repo.db.WithContext(ctx).
		Where("effective_date <= ?", at).
		Order("effective_date DESC").
		First(&rateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVatRateNotFound
		}

		return nil, errors.Wrap(err, "failed to find applicable vat rate")
	}

	return toVatRateDomain(&rateM), nil
}

// --- Mapper Functions ---

// toVatRateDomain converts a GORM VatRateModel to a domain VatRate entity.
func toVatRateDomain(data *model.VatRateModel) *entity.VatRate {
	if data == nil {
		return nil
	}

	return &entity.VatRate{
		ID:            data.ID,
		EffectiveDate: data.EffectiveDate,
		Percentage:    data.Percentage,
		CreatedAt:     data.CreatedAt,
	}
}

// fromVatRateDomain converts a domain VatRate entity to a GORM VatRateModel.
func fromVatRateDomain(data *entity.VatRate) *model.VatRateModel {
	if data == nil {
		return nil
	}

	return &model.VatRateModel{
		ID:            data.ID,
		EffectiveDate: data.EffectiveDate,
		Percentage:    data.Percentage,
	}
}
