package domain

import "errors"

// Validation errors
var (
	ErrInvalidCurrency     = errors.New("invalid currency")
	ErrInvalidDirection    = errors.New("invalid debt type")
	ErrNegativeAmount      = errors.New("amount must be non-negative")
	ErrInvalidReminderDays = errors.New("reminder interval must be between 0 and 3650 days")
	ErrAmountPrecision     = errors.New("amount must have at most 2 decimal places")
	ErrAmountTooLarge      = errors.New("amount is too large")
	ErrEmptyDebtName       = errors.New("debt name is required")
)
