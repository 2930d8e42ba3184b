package repository

import (
	"context"

	"github.com/dom/debt-ledger/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	// Create inserts the user together with its Setting, if set.
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsernameOrEmail(ctx context.Context, login string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.UserSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.UserSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

type SettingRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Setting, error)
	Update(ctx context.Context, setting *domain.Setting) error
}

type DebtNameRepository interface {
	// GetOrCreate returns the user's name matching exactly, creating it if absent.
	GetOrCreate(ctx context.Context, userID uuid.UUID, name string) (*domain.DebtName, error)
	GetByID(ctx context.Context, userID uuid.UUID, id uint) (*domain.DebtName, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.DebtName, error)
	// DeleteIfOrphaned removes the name when no debt references it and
	// reports whether it did.
	DeleteIfOrphaned(ctx context.Context, id uint) (bool, error)
}

type DebtRepository interface {
	Create(ctx context.Context, debt *domain.Debt) error
	GetByID(ctx context.Context, userID uuid.UUID, id uint) (*domain.Debt, error)
	Update(ctx context.Context, debt *domain.Debt) error
	Delete(ctx context.Context, userID uuid.UUID, id uint) error
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Debt, error)
	ListByDirection(ctx context.Context, userID uuid.UUID, direction domain.Direction) ([]domain.Debt, error)
	ListByNameID(ctx context.Context, userID uuid.UUID, nameID uint) ([]domain.Debt, error)
}

// Transactor runs fn against repositories bound to a single database
// transaction. Returning an error from fn rolls the transaction back.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(repos *Repositories) error) error
}

type Repositories struct {
	User     UserRepository
	Session  SessionRepository
	Setting  SettingRepository
	DebtName DebtNameRepository
	Debt     DebtRepository
	Tx       Transactor
}
