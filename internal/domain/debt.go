package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Direction says who owes whom
type Direction string

const (
	// OwedTo: the counterparty owes the user.
	OwedTo Direction = "OWED_TO"
	// OwedBy: the user owes the counterparty.
	OwedBy Direction = "OWED_BY"
)

// IsValid checks if a direction is valid
func (d Direction) IsValid() bool {
	switch d {
	case OwedTo, OwedBy:
		return true
	}
	return false
}

// ParseDirection accepts "OWED_TO"/"owed_to" style spellings.
func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ToUpper(strings.TrimSpace(s)))
	if !d.IsValid() {
		return "", ErrInvalidDirection
	}
	return d, nil
}

// DebtName is a counterparty in one user's namespace. It exists only while at
// least one of the user's debts references it.
type DebtName struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_debt_names_user_name"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex:idx_debt_names_user_name"`
	CreatedAt time.Time `json:"createdAt"`
}

type Debt struct {
	ID                 uint            `json:"id" gorm:"primaryKey"`
	UserID             uuid.UUID       `json:"userId" gorm:"type:uuid;not null;index"`
	NameID             uint            `json:"nameId" gorm:"not null;index"`
	Direction          Direction       `json:"debtType" gorm:"column:debt_type;type:varchar(7);not null;default:'OWED_TO';check:chk_debts_debt_type,debt_type IN ('OWED_TO','OWED_BY')"`
	Amount             decimal.Decimal `json:"amount" gorm:"type:numeric(18,2);not null;check:chk_debts_amount,amount >= 0"`
	Currency           Currency        `json:"currency" gorm:"type:varchar(3);not null;default:'UZS';check:chk_debts_currency,currency IN ('UZS','USD','EUR')"`
	Description        string          `json:"description"`
	ReceivedAt         time.Time       `json:"receivedOrGivenTime" gorm:"column:received_or_given_time;not null"`
	ReturnTime         *time.Time      `json:"returnTime"`
	UseDefaultReminder bool            `json:"useDefaultReminder" gorm:"not null"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`

	Name *DebtName `json:"name,omitempty" gorm:"foreignKey:NameID"`
}

// Validate checks the fields a caller controls
func (d *Debt) Validate() error {
	if !d.Direction.IsValid() {
		return ErrInvalidDirection
	}
	if !d.Currency.IsValid() {
		return ErrInvalidCurrency
	}
	return ValidateAmount(d.Amount)
}

// amountLimit is the first value that no longer fits numeric(18,2).
var amountLimit = decimal.New(1, 16)

// ValidateAmount rejects values the amount column would round or overflow.
func ValidateAmount(a decimal.Decimal) error {
	if a.IsNegative() {
		return ErrNegativeAmount
	}
	if !a.Equal(a.Truncate(2)) {
		return ErrAmountPrecision
	}
	if a.GreaterThanOrEqual(amountLimit) {
		return ErrAmountTooLarge
	}
	return nil
}

// NormalizeDebtName trims surrounding whitespace; matching stays case-sensitive.
func NormalizeDebtName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyDebtName
	}
	return name, nil
}
