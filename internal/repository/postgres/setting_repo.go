package postgres

import (
	"context"

	"github.com/dom/debt-ledger/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type settingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *settingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Setting, error) {
	var setting domain.Setting
	err := r.db.WithContext(ctx).First(&setting, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// Update writes every column so a zero reminder interval is persisted too.
func (r *settingRepository) Update(ctx context.Context, setting *domain.Setting) error {
	return r.db.WithContext(ctx).Save(setting).Error
}
