package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	IsActive     bool      `json:"isActive" gorm:"not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// Owned rows; removing the user removes all of them.
	Setting   *Setting      `json:"setting,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	DebtNames []DebtName    `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Debts     []Debt        `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Sessions  []UserSession `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// UserSession is a refresh token issued at login. The session ID doubles as
// the signed token's jti claim, so a refresh token is valid only while its row
// exists.
type UserSession struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;not null;index"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}

// Expired reports whether the session can no longer be used to refresh tokens.
func (s *UserSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
