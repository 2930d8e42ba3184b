package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dom/debt-ledger/internal/api/middleware"
	"github.com/dom/debt-ledger/internal/api/respond"
	"github.com/dom/debt-ledger/internal/domain"
	"github.com/dom/debt-ledger/internal/logger"
	"github.com/dom/debt-ledger/internal/service"
)

type SettingHandler struct {
	settingService *service.SettingService
}

func NewSettingHandler(settingService *service.SettingService) *SettingHandler {
	return &SettingHandler{settingService: settingService}
}

// UpdateSettingRequest is the request body for updating settings
type UpdateSettingRequest struct {
	Currency     *string `json:"currency"`
	ReminderTime *int    `json:"reminder_time" validate:"omitempty,gte=0,lte=3650"`
}

type UserSettingResponse struct {
	ID       string          `json:"id"`
	Username string          `json:"username"`
	Setting  SettingResponse `json:"setting"`
}

func (h *SettingHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	setting, err := h.settingService.Get(r.Context(), user.ID)
	if err != nil {
		h.writeError(w, "Get", err)
		return
	}

	respond.JSON(w, http.StatusOK, "User setting", UserSettingResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Setting:  newSettingResponse(setting),
	})
}

func (h *SettingHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req UpdateSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validateBody(w, &req) {
		return
	}

	input := service.UpdateSettingInput{ReminderDays: req.ReminderTime}
	if req.Currency != nil {
		currency, err := domain.ParseCurrency(*req.Currency)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "Invalid currency")
			return
		}
		input.Currency = &currency
	}

	setting, err := h.settingService.Update(r.Context(), user.ID, input)
	if err != nil {
		h.writeError(w, "Update", err)
		return
	}

	respond.JSON(w, http.StatusOK, fmt.Sprintf("%s with setting update", user.Username), UserSettingResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Setting:  newSettingResponse(setting),
	})
}

func (h *SettingHandler) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrSettingNotFound):
		respond.Error(w, http.StatusNotFound, "User setting not found")
	case errors.Is(err, domain.ErrInvalidCurrency), errors.Is(err, domain.ErrInvalidReminderDays):
		respond.Error(w, http.StatusBadRequest, err.Error())
	default:
		logger.Log.Error().Err(err).Str("op", op).Msg("[setting] request failed")
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
