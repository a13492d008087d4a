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

// purchaseRepository implements the repository.PurchaseRepository interface.
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository is the constructor for purchaseRepository.
func NewPurchaseRepository(db *gorm.DB) repository.PurchaseRepository {
	return &purchaseRepository{
		db: db,
	}
}

// CreatePurchase inserts the purchase header row. Lines are inserted
// separately so checkout controls the write order inside its transaction.
func (repo *purchaseRepository) CreatePurchase(ctx context.Context, purchase *entity.Purchase) error {
	purchaseM := fromPurchaseDomain(purchase)

	if err := repo.db.WithContext(ctx).Omit("Lines").Create(purchaseM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create purchase")
	}

	purchase.ID = purchaseM.ID
	purchase.CreatedAt = purchaseM.CreatedAt

	return nil
}

// CreateLines inserts all line items referencing an existing header.
func (repo *purchaseRepository) CreateLines(ctx context.Context, lines []*entity.PurchaseLine) error {
	if len(lines) == 0 {
		return nil
	}

	lineModels := make([]*model.PurchaseLineModel, 0, len(lines))
	for _, line := range lines {
		lineModels = append(lineModels, fromPurchaseLineDomain(line))
	}

	if err := repo.db.WithContext(ctx).Create(&lineModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPurchaseNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create purchase lines")
	}

	for i, lineM := range lineModels {
		lines[i].ID = lineM.ID
	}

	return nil
}

// FindByID retrieves one purchase with its lines preloaded.
func (repo *purchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	var purchaseM model.PurchaseModel

	if err := repo.db.WithContext(ctx).
		Preload("Lines").
		Where("id = ?", id).
		First(&purchaseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPurchaseNotFound
		}

		return nil, errors.Wrap(err, "failed to find purchase by ID")
	}

	return toPurchaseDomain(&purchaseM), nil
}

// List retrieves all purchases, newest first, lines preloaded.
func (repo *purchaseRepository) List(ctx context.Context) ([]*entity.Purchase, error) {
	var purchaseModels []*model.PurchaseModel

	if err := repo.db.WithContext(ctx).
		Preload("Lines").
		Order("created_at DESC").
		Find(&purchaseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list purchases")
	}

	purchases := make([]*entity.Purchase, 0, len(purchaseModels))
	for _, purchaseM := range purchaseModels {
		purchases = append(purchases, toPurchaseDomain(purchaseM))
	}

	return purchases, nil
}

// --- Mapper Functions ---

// toPurchaseDomain converts a GORM PurchaseModel to a domain Purchase entity.
func toPurchaseDomain(data *model.PurchaseModel) *entity.Purchase {
	if data == nil {
		return nil
	}

	lines := make([]*entity.PurchaseLine, 0, len(data.Lines))
	for _, lineM := range data.Lines {
		lines = append(lines, toPurchaseLineDomain(lineM))
	}

	return &entity.Purchase{
		ID:          data.ID,
		PaymentMode: entity.PaymentMode(data.PaymentMode),
		Total:       data.Total,
		VatRate:     data.VatRate,
		Lines:       lines,
		CreatedAt:   data.CreatedAt,
	}
}

// fromPurchaseDomain converts a domain Purchase entity to a GORM PurchaseModel.
func fromPurchaseDomain(data *entity.Purchase) *model.PurchaseModel {
	if data == nil {
		return nil
	}

	return &model.PurchaseModel{
		ID:          data.ID,
		PaymentMode: string(data.PaymentMode),
		Total:       data.Total,
		VatRate:     data.VatRate,
		CreatedAt:   data.CreatedAt,
	}
}

// toPurchaseLineDomain converts a GORM PurchaseLineModel to a domain PurchaseLine.
func toPurchaseLineDomain(data *model.PurchaseLineModel) *entity.PurchaseLine {
	if data == nil {
		return nil
	}

	return &entity.PurchaseLine{
		ID:         data.ID,
		PurchaseID: data.PurchaseID,
		ProductID:  data.ProductID,
		Quantity:   data.Quantity,
		UnitPrice:  data.UnitPrice,
	}
}

// fromPurchaseLineDomain converts a domain PurchaseLine to a GORM PurchaseLineModel.
func fromPurchaseLineDomain(data *entity.PurchaseLine) *model.PurchaseLineModel {
	if data == nil {
		return nil
	}

	return &model.PurchaseLineModel{
		ID:         data.ID,
		PurchaseID: data.PurchaseID,
		ProductID:  data.ProductID,
		Quantity:   data.Quantity,
		UnitPrice:  data.UnitPrice,
	}
}
