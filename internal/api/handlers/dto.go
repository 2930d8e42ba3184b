package handlers

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/dom/debt-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

var errInvalidDatetime = errors.New("invalid datetime format")

// Layouts accepted for dates in request bodies. Single-digit months and days
// are allowed, so "2024-04-2" parses.
var datetimeLayouts = []string{
	time.RFC3339Nano,
	"2006-1-2",
	"2006-1-2 15:04:05",
	"2/1/2006",
	"1-2-2006",
}

// flexibleTime is a request timestamp in any of datetimeLayouts.
type flexibleTime struct {
	time.Time
}

func (f *flexibleTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errInvalidDatetime
	}
	s = strings.TrimSpace(s)
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			f.Time = t.UTC()
			return nil
		}
	}
	return errInvalidDatetime
}

func (f *flexibleTime) ptr() *time.Time {
	if f == nil {
		return nil
	}
	t := f.Time
	return &t
}

type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type SettingResponse struct {
	ID           uint   `json:"id"`
	Currency     string `json:"currency"`
	ReminderTime int    `json:"reminder_time"`
}

type DebtResponse struct {
	ID                         uint            `json:"id"`
	DebtType                   string          `json:"debt_type"`
	NameID                     uint            `json:"name_id"`
	Name                       string          `json:"name"`
	Amount                     decimal.Decimal `json:"amount"`
	Currency                   string          `json:"currency"`
	Description                string          `json:"description"`
	ReceivedOrGivenTime        time.Time       `json:"received_or_given_time"`
	ReturnTime                 *time.Time      `json:"return_time"`
	SettingReminderTimeDefault bool            `json:"setting_reminder_time_default"`
}

// UserDebtResponse pairs a debt with its owner, as returned by the listings.
type UserDebtResponse struct {
	User UserSummary  `json:"user"`
	Debt DebtResponse `json:"debt"`
}

type UserDebtDetail struct {
	ID       string       `json:"id"`
	Username string       `json:"username"`
	Debt     DebtResponse `json:"debt"`
}

func newUserSummary(user *domain.User) UserSummary {
	return UserSummary{ID: user.ID.String(), Username: user.Username}
}

func newSettingResponse(s *domain.Setting) SettingResponse {
	return SettingResponse{
		ID:           s.ID,
		Currency:     string(s.Currency),
		ReminderTime: s.ReminderDays,
	}
}

func newDebtResponse(d *domain.Debt) DebtResponse {
	resp := DebtResponse{
		ID:                         d.ID,
		DebtType:                   string(d.Direction),
		NameID:                     d.NameID,
		Amount:                     d.Amount,
		Currency:                   string(d.Currency),
		Description:                d.Description,
		ReceivedOrGivenTime:        d.ReceivedAt,
		ReturnTime:                 d.ReturnTime,
		SettingReminderTimeDefault: d.UseDefaultReminder,
	}
	if d.Name != nil {
		resp.Name = d.Name.Name
	}
	return resp
}

func newUserDebtResponses(user *domain.User, debts []domain.Debt) []UserDebtResponse {
	out := make([]UserDebtResponse, 0, len(debts))
	for i := range debts {
		out = append(out, UserDebtResponse{
			User: newUserSummary(user),
			Debt: newDebtResponse(&debts[i]),
		})
	}
	return out
}
