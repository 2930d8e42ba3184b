package postgres

import (
	"context"

	"github.com/dom/debt-ledger/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type debtRepository struct {
	db *gorm.DB
}

func NewDebtRepository(db *gorm.DB) *debtRepository {
	return &debtRepository{db: db}
}

func (r *debtRepository) Create(ctx context.Context, debt *domain.Debt) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(debt).Error
}

func (r *debtRepository) GetByID(ctx context.Context, userID uuid.UUID, id uint) (*domain.Debt, error) {
	var debt domain.Debt
	err := r.db.WithContext(ctx).
		Preload("Name").
		First(&debt, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &debt, nil
}

func (r *debtRepository) Update(ctx context.Context, debt *domain.Debt) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(debt).Error
}

func (r *debtRepository) Delete(ctx context.Context, userID uuid.UUID, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Debt{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *debtRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Debt, error) {
	return r.list(ctx, "user_id = ?", userID)
}

func (r *debtRepository) ListByDirection(ctx context.Context, userID uuid.UUID, direction domain.Direction) ([]domain.Debt, error) {
	return r.list(ctx, "user_id = ? AND debt_type = ?", userID, direction)
}

func (r *debtRepository) ListByNameID(ctx context.Context, userID uuid.UUID, nameID uint) ([]domain.Debt, error) {
	return r.list(ctx, "user_id = ? AND name_id = ?", userID, nameID)
}

func (r *debtRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Debt, error) {
	var debts []domain.Debt
	err := r.db.WithContext(ctx).Preload("Name").Where(query, args...).Order("id ASC").Find(&debts).Error
	if err != nil {
		return nil, err
	}
	return debts, nil
}
