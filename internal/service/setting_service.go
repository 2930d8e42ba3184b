package service

import (
	"context"
	"errors"

	"github.com/dom/debt-ledger/internal/domain"
	"github.com/dom/debt-ledger/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrSettingNotFound = errors.New("user setting not found")

type SettingService struct {
	settingRepo repository.SettingRepository
}

func NewSettingService(settingRepo repository.SettingRepository) *SettingService {
	return &SettingService{settingRepo: settingRepo}
}

// UpdateSettingInput carries the fields to change; nil leaves a field as is.
type UpdateSettingInput struct {
	Currency     *domain.Currency
	ReminderDays *int
}

func (s *SettingService) Get(ctx context.Context, userID uuid.UUID) (*domain.Setting, error) {
	setting, err := s.settingRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, err
	}
	return setting, nil
}

func (s *SettingService) Update(ctx context.Context, userID uuid.UUID, input UpdateSettingInput) (*domain.Setting, error) {
	setting, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Currency != nil {
		setting.Currency = *input.Currency
	}
	if input.ReminderDays != nil {
		setting.ReminderDays = *input.ReminderDays
	}

	if err := setting.Validate(); err != nil {
		return nil, err
	}

	if err := s.settingRepo.Update(ctx, setting); err != nil {
		return nil, err
	}

	return setting, nil
}
