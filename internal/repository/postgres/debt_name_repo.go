package postgres

import (
	"context"
	"fmt"

	"github.com/dom/debt-ledger/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type debtNameRepository struct {
	db *gorm.DB
}

func NewDebtNameRepository(db *gorm.DB) *debtNameRepository {
	return &debtNameRepository{db: db}
}

// GetOrCreate relies on the (user_id, name) unique index, so two concurrent
// callers end up with the same row.
func (r *debtNameRepository) GetOrCreate(ctx context.Context, userID uuid.UUID, name string) (*domain.DebtName, error) {
	dn := domain.DebtName{UserID: userID, Name: name}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "name"}},
		DoNothing: true,
	}).Create(&dn).Error
	if err != nil {
		return nil, fmt.Errorf("insert debt name: %w", err)
	}
	if dn.ID != 0 {
		return &dn, nil
	}

	var existing domain.DebtName
	err = r.db.WithContext(ctx).First(&existing, "user_id = ? AND name = ?", userID, name).Error
	if err != nil {
		return nil, fmt.Errorf("load debt name: %w", err)
	}
	return &existing, nil
}

func (r *debtNameRepository) GetByID(ctx context.Context, userID uuid.UUID, id uint) (*domain.DebtName, error) {
	var dn domain.DebtName
	err := r.db.WithContext(ctx).First(&dn, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &dn, nil
}

func (r *debtNameRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.DebtName, error) {
	var names []domain.DebtName
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (r *debtNameRepository) DeleteIfOrphaned(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Exec(
		`DELETE FROM debt_names WHERE id = ? AND NOT EXISTS (SELECT 1 FROM debts WHERE debts.name_id = debt_names.id)`,
		id,
	)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
