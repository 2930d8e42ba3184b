package service

import (
	"context"
	"errors"

	"github.com/dom/debt-ledger/internal/domain"
	"github.com/dom/debt-ledger/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrDebtNameNotFound = errors.New("debt name not found")

// ReportService answers read-only questions about a user's debt position.
// Empty results are returned as empty slices or zero totals; only unknown
// ids are reported as not found.
type ReportService struct {
	debtRepo     repository.DebtRepository
	debtNameRepo repository.DebtNameRepository
}

func NewReportService(debtRepo repository.DebtRepository, debtNameRepo repository.DebtNameRepository) *ReportService {
	return &ReportService{
		debtRepo:     debtRepo,
		debtNameRepo: debtNameRepo,
	}
}

// TotalsByUser sums every debt of the user.
func (s *ReportService) TotalsByUser(ctx context.Context, userID uuid.UUID) (domain.Totals, error) {
	debts, err := s.debtRepo.ListByUserID(ctx, userID)
	if err != nil {
		return domain.Totals{}, err
	}
	return domain.SumDebts(debts), nil
}

func (s *ReportService) DebtsByDirection(ctx context.Context, userID uuid.UUID, direction domain.Direction) ([]domain.Debt, error) {
	if !direction.IsValid() {
		return nil, domain.ErrInvalidDirection
	}
	return s.debtRepo.ListByDirection(ctx, userID, direction)
}

// TotalsByCounterparty reports one entry per debt name of the user, in
// creation order.
func (s *ReportService) TotalsByCounterparty(ctx context.Context, userID uuid.UUID) ([]domain.CounterpartyTotals, error) {
	names, err := s.debtNameRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	debts, err := s.debtRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return domain.TotalsByName(names, debts), nil
}

func (s *ReportService) DebtsForCounterparty(ctx context.Context, userID uuid.UUID, nameID uint) (*domain.DebtName, []domain.Debt, error) {
	name, err := s.debtNameRepo.GetByID(ctx, userID, nameID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrDebtNameNotFound
		}
		return nil, nil, err
	}

	debts, err := s.debtRepo.ListByNameID(ctx, userID, nameID)
	if err != nil {
		return nil, nil, err
	}
	return name, debts, nil
}
