package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Currency is an ISO code accepted for settings and debts
type Currency string

const (
	CurrencyUZS Currency = "UZS"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// DefaultCurrency is used when neither the request nor the setting names one.
const DefaultCurrency = CurrencyUZS

// DefaultReminderDays is the reminder interval given to new users.
const DefaultReminderDays = 1

// MaxReminderDays bounds the interval so resolved due dates stay storable.
const MaxReminderDays = 3650

// AllCurrencies contains all valid currencies in order
var AllCurrencies = []Currency{CurrencyUZS, CurrencyUSD, CurrencyEUR}

// IsValid checks if a currency is valid
func (c Currency) IsValid() bool {
	switch c {
	case CurrencyUZS, CurrencyUSD, CurrencyEUR:
		return true
	}
	return false
}

// ParseCurrency accepts upper or lower case codes.
func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", ErrInvalidCurrency
	}
	return c, nil
}

// Setting holds a user's preferences. Exactly one exists per user.
type Setting struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uuid.UUID `json:"userId" gorm:"type:uuid;not null;uniqueIndex"`
	Currency     Currency  `json:"currency" gorm:"type:varchar(3);not null;default:'UZS';check:chk_settings_currency,currency IN ('UZS','USD','EUR')"`
	ReminderDays int       `json:"reminderDays" gorm:"not null;check:chk_settings_reminder_days,reminder_days BETWEEN 0 AND 3650"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewDefaultSetting returns the setting every user starts with.
func NewDefaultSetting() *Setting {
	return &Setting{
		Currency:     DefaultCurrency,
		ReminderDays: DefaultReminderDays,
	}
}

// Validate checks if the setting has valid values
func (s *Setting) Validate() error {
	if !s.Currency.IsValid() {
		return ErrInvalidCurrency
	}
	if s.ReminderDays < 0 || s.ReminderDays > MaxReminderDays {
		return ErrInvalidReminderDays
	}
	return nil
}
