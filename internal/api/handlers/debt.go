package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dom/debt-ledger/internal/api/middleware"
	"github.com/dom/debt-ledger/internal/api/respond"
	"github.com/dom/debt-ledger/internal/domain"
	"github.com/dom/debt-ledger/internal/logger"
	"github.com/dom/debt-ledger/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type DebtHandler struct {
	debtService *service.DebtService
}

func NewDebtHandler(debtService *service.DebtService) *DebtHandler {
	return &DebtHandler{debtService: debtService}
}

type CreateDebtRequest struct {
	DebtType                   *string          `json:"debt_type"`
	Name                       string           `json:"name" validate:"required,notblank"`
	Amount                     *decimal.Decimal `json:"amount" validate:"required,gte=0"`
	Currency                   *string          `json:"currency"`
	Description                string           `json:"description"`
	ReceivedOrGivenTime        *flexibleTime    `json:"received_or_given_time"`
	ReturnTime                 *flexibleTime    `json:"return_time"`
	SettingReminderTimeDefault bool             `json:"setting_reminder_time_default"`
}

type UpdateDebtRequest struct {
	DebtType                   *string          `json:"debt_type"`
	Name                       *string          `json:"name"`
	Amount                     *decimal.Decimal `json:"amount" validate:"omitempty,gte=0"`
	Currency                   *string          `json:"currency"`
	Description                *string          `json:"description"`
	ReceivedOrGivenTime        *flexibleTime    `json:"received_or_given_time"`
	ReturnTime                 *flexibleTime    `json:"return_time"`
	SettingReminderTimeDefault *bool            `json:"setting_reminder_time_default"`
}

func (h *DebtHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateDebtRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if !validateBody(w, &req) {
		return
	}

	input := service.CreateDebtInput{
		Name:               req.Name,
		Amount:             *req.Amount,
		Description:        req.Description,
		ReceivedAt:         req.ReceivedOrGivenTime.ptr(),
		ReturnTime:         req.ReturnTime.ptr(),
		UseDefaultReminder: req.SettingReminderTimeDefault,
	}
	if req.DebtType != nil {
		direction, err := domain.ParseDirection(*req.DebtType)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "Invalid debt_type")
			return
		}
		input.Direction = direction
	}
	if req.Currency != nil {
		currency, err := domain.ParseCurrency(*req.Currency)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "Invalid currency")
			return
		}
		input.Currency = currency
	}

	debt, err := h.debtService.Create(r.Context(), user.ID, input)
	if err != nil {
		writeDebtError(w, "Create", err)
		return
	}

	respond.JSON(w, http.StatusCreated, "Debt is created successfully", UserDebtDetail{
		ID:       user.ID.String(),
		Username: user.Username,
		Debt:     newDebtResponse(debt),
	})
}

func (h *DebtHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	debt, err := h.debtService.Get(r.Context(), user.ID, id)
	if err != nil {
		writeDebtError(w, "Get", err)
		return
	}

	respond.JSON(w, http.StatusOK, fmt.Sprintf("Debt with ID %d retrieved", id), UserDebtDetail{
		ID:       user.ID.String(),
		Username: user.Username,
		Debt:     newDebtResponse(debt),
	})
}

func (h *DebtHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateDebtRequest
	if !decodeBody(w, r, &req) || !validateBody(w, &req) {
		return
	}

	input := service.UpdateDebtInput{
		Name:               req.Name,
		Amount:             req.Amount,
		Description:        req.Description,
		ReceivedAt:         req.ReceivedOrGivenTime.ptr(),
		ReturnTime:         req.ReturnTime.ptr(),
		UseDefaultReminder: req.SettingReminderTimeDefault,
	}
	if req.DebtType != nil {
		direction, err := domain.ParseDirection(*req.DebtType)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "Invalid debt_type")
			return
		}
		input.Direction = &direction
	}
	if req.Currency != nil {
		currency, err := domain.ParseCurrency(*req.Currency)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "Invalid currency")
			return
		}
		input.Currency = &currency
	}

	debt, err := h.debtService.Update(r.Context(), user.ID, id, input)
	if err != nil {
		writeDebtError(w, "Update", err)
		return
	}

	respond.JSON(w, http.StatusOK, fmt.Sprintf("Debt with ID %d has been updated", id), UserDebtDetail{
		ID:       user.ID.String(),
		Username: user.Username,
		Debt:     newDebtResponse(debt),
	})
}

func (h *DebtHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	if err := h.debtService.Delete(r.Context(), userID, id); err != nil {
		writeDebtError(w, "Delete", err)
		return
	}

	respond.JSONWithCode(w, http.StatusOK, http.StatusNoContent, fmt.Sprintf("Debt with ID %d has been deleted", id))
}

func writeDebtError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrDebtNotFound):
		respond.Error(w, http.StatusNotFound, "Debt not found")
	case errors.Is(err, service.ErrDebtNameNotFound):
		respond.Error(w, http.StatusNotFound, "Debt name not found")
	case errors.Is(err, service.ErrSettingNotFound):
		respond.Error(w, http.StatusNotFound, "User setting not found")
	case errors.Is(err, domain.ErrInvalidDirection),
		errors.Is(err, domain.ErrInvalidCurrency),
		errors.Is(err, domain.ErrNegativeAmount),
		errors.Is(err, domain.ErrAmountPrecision),
		errors.Is(err, domain.ErrAmountTooLarge),
		errors.Is(err, domain.ErrEmptyDebtName):
		respond.Error(w, http.StatusBadRequest, err.Error())
	default:
		logger.Log.Error().Err(err).Str("op", op).Msg("[debt] request failed")
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeBody reports false after answering 400 when the body is not valid JSON
// for v.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, errInvalidDatetime) {
			respond.Error(w, http.StatusBadRequest, "Invalid datetime format")
			return false
		}
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

func parseID(w http.ResponseWriter, r *http.Request, param string) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, param), 10, 32)
	if err != nil || id == 0 {
		respond.Error(w, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}
