package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dom/debt-ledger/internal/domain"
	"github.com/dom/debt-ledger/internal/logger"
	"github.com/dom/debt-ledger/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrDebtNotFound = errors.New("debt not found")

// DebtService owns the write side of the ledger: debts, the reminder date
// resolution and the debt name lifecycle.
type DebtService struct {
	repos *repository.Repositories
	now   func() time.Time
}

func NewDebtService(repos *repository.Repositories) *DebtService {
	return &DebtService{
		repos: repos,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

type CreateDebtInput struct {
	Name               string
	Direction          domain.Direction
	Amount             decimal.Decimal
	Currency           domain.Currency
	Description        string
	ReceivedAt         *time.Time
	ReturnTime         *time.Time
	UseDefaultReminder bool
}

// UpdateDebtInput carries the fields to change; nil leaves a field as is.
type UpdateDebtInput struct {
	Name               *string
	Direction          *domain.Direction
	Amount             *decimal.Decimal
	Currency           *domain.Currency
	Description        *string
	ReceivedAt         *time.Time
	ReturnTime         *time.Time
	UseDefaultReminder *bool
}

func (s *DebtService) Create(ctx context.Context, userID uuid.UUID, input CreateDebtInput) (*domain.Debt, error) {
	name, err := domain.NormalizeDebtName(input.Name)
	if err != nil {
		return nil, err
	}

	now := s.now()
	debt := &domain.Debt{
		UserID:             userID,
		Direction:          input.Direction,
		Amount:             input.Amount,
		Currency:           input.Currency,
		Description:        input.Description,
		ReceivedAt:         now,
		UseDefaultReminder: input.UseDefaultReminder,
	}
	if debt.Direction == "" {
		debt.Direction = domain.OwedTo
	}
	if debt.Currency == "" {
		debt.Currency = domain.DefaultCurrency
	}
	if input.ReceivedAt != nil {
		debt.ReceivedAt = *input.ReceivedAt
	}
	if err := debt.Validate(); err != nil {
		return nil, err
	}

	err = s.repos.Tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		setting, err := repos.Setting.GetByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSettingNotFound
			}
			return err
		}
		debt.ReturnTime = domain.ResolveReturnTime(input.ReturnTime, input.UseDefaultReminder, setting.ReminderDays, now)

		debtName, err := repos.DebtName.GetOrCreate(ctx, userID, name)
		if err != nil {
			return err
		}
		debt.NameID = debtName.ID

		if err := repos.Debt.Create(ctx, debt); err != nil {
			return fmt.Errorf("create debt: %w", err)
		}
		debt.Name = debtName
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Debug().
		Uint("debt_id", debt.ID).
		Uint("name_id", debt.NameID).
		Str("debt_type", string(debt.Direction)).
		Msg("debt created")

	return debt, nil
}

func (s *DebtService) Get(ctx context.Context, userID uuid.UUID, id uint) (*domain.Debt, error) {
	debt, err := s.repos.Debt.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDebtNotFound
		}
		return nil, err
	}
	return debt, nil
}

// Update applies the given fields. Renaming moves the debt onto the name
// matching the new string and never rewrites a name other debts may share;
// the previous name is dropped if nothing references it anymore.
func (s *DebtService) Update(ctx context.Context, userID uuid.UUID, id uint, input UpdateDebtInput) (*domain.Debt, error) {
	var newName string
	if input.Name != nil {
		n, err := domain.NormalizeDebtName(*input.Name)
		if err != nil {
			return nil, err
		}
		newName = n
	}

	var updated *domain.Debt
	err := s.repos.Tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		debt, err := repos.Debt.GetByID(ctx, userID, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDebtNotFound
			}
			return err
		}

		if input.Direction != nil {
			debt.Direction = *input.Direction
		}
		if input.Amount != nil {
			debt.Amount = *input.Amount
		}
		if input.Currency != nil {
			debt.Currency = *input.Currency
		}
		if input.Description != nil {
			debt.Description = *input.Description
		}
		if input.ReceivedAt != nil {
			debt.ReceivedAt = *input.ReceivedAt
		}
		if err := debt.Validate(); err != nil {
			return err
		}

		if input.ReturnTime != nil || (input.UseDefaultReminder != nil && *input.UseDefaultReminder) {
			setting, err := repos.Setting.GetByUserID(ctx, userID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrSettingNotFound
				}
				return err
			}
			debt.ReturnTime = domain.ResolveUpdatedReturnTime(debt.ReturnTime, input.ReturnTime, input.UseDefaultReminder, setting.ReminderDays, s.now())
		}
		if input.UseDefaultReminder != nil {
			debt.UseDefaultReminder = *input.UseDefaultReminder
		}

		oldNameID := debt.NameID
		if input.Name != nil && (debt.Name == nil || debt.Name.Name != newName) {
			debtName, err := repos.DebtName.GetOrCreate(ctx, userID, newName)
			if err != nil {
				return err
			}
			debt.NameID = debtName.ID
			debt.Name = debtName
		}

		if err := repos.Debt.Update(ctx, debt); err != nil {
			return fmt.Errorf("update debt: %w", err)
		}

		if debt.NameID != oldNameID {
			if _, err := repos.DebtName.DeleteIfOrphaned(ctx, oldNameID); err != nil {
				return fmt.Errorf("collect debt name: %w", err)
			}
		}

		updated = debt
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes the debt and, in the same transaction, its name if that was
// the last debt using it.
func (s *DebtService) Delete(ctx context.Context, userID uuid.UUID, id uint) error {
	return s.repos.Tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		debt, err := repos.Debt.GetByID(ctx, userID, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDebtNotFound
			}
			return err
		}

		if err := repos.Debt.Delete(ctx, userID, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDebtNotFound
			}
			return err
		}

		removed, err := repos.DebtName.DeleteIfOrphaned(ctx, debt.NameID)
		if err != nil {
			return fmt.Errorf("collect debt name: %w", err)
		}
		if removed {
			logger.Log.Debug().Uint("name_id", debt.NameID).Msg("debt name collected")
		}
		return nil
	})
}
