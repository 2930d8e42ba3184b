package service

import (
	"github.com/dom/debt-ledger/internal/config"
	"github.com/dom/debt-ledger/internal/repository"
)

type Services struct {
	Auth    *AuthService
	Setting *SettingService
	Debt    *DebtService
	Report  *ReportService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:    NewAuthService(repos.User, repos.Session, cfg),
		Setting: NewSettingService(repos.Setting),
		Debt:    NewDebtService(repos),
		Report:  NewReportService(repos.Debt, repos.DebtName),
	}
}
