package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dom/debt-ledger/internal/api/middleware"
	"github.com/dom/debt-ledger/internal/api/respond"
	"github.com/dom/debt-ledger/internal/domain"
	"github.com/dom/debt-ledger/internal/logger"
	"github.com/dom/debt-ledger/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type SignupRequest struct {
	Username string `json:"username" validate:"required,notblank"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	IsActive *bool  `json:"is_active"`
}

type LoginRequest struct {
	UsernameOrEmail string `json:"username_or_email"`
	Password        string `json:"password"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

type TokenResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type UserResponse struct {
	ID          string           `json:"id"`
	Username    string           `json:"username"`
	Email       string           `json:"email"`
	IsActive    bool             `json:"is_active"`
	UserSetting *SettingResponse `json:"user_setting,omitempty"`
}

func newUserResponse(user *domain.User) UserResponse {
	resp := UserResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		IsActive: user.IsActive,
	}
	if user.Setting != nil {
		s := newSettingResponse(user.Setting)
		resp.UserSetting = &s
	}
	return resp
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !validateBody(w, &req) {
		return
	}

	user, err := h.authService.Signup(r.Context(), service.SignupInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		IsActive: req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailExists),
			errors.Is(err, service.ErrUsernameExists),
			errors.Is(err, service.ErrUserExists):
			respond.Error(w, http.StatusBadRequest, err.Error())
		default:
			logger.Log.Error().Err(err).Msg("[auth.Signup] failed to create user")
			respond.Error(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respond.JSON(w, http.StatusCreated, "User is created successfully", newUserResponse(user))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.UsernameOrEmail == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "Username or email and password are required")
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		UsernameOrEmail: req.UsernameOrEmail,
		Password:        req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respond.Error(w, http.StatusBadRequest, "Invalid username or password")
			return
		}
		logger.Log.Error().Err(err).Msg("[auth.Login] failed to log in")
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respond.JSON(w, http.StatusOK, "User successfully login", TokenResponse{
		Access:  result.AccessToken,
		Refresh: result.RefreshToken,
	})
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Refresh == "" {
		respond.Error(w, http.StatusBadRequest, "Refresh token is required")
		return
	}

	result, err := h.authService.Refresh(r.Context(), req.Refresh)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) || errors.Is(err, service.ErrUserNotFound) {
			respond.Error(w, http.StatusUnauthorized, "Invalid token")
			return
		}
		logger.Log.Error().Err(err).Msg("[auth.Refresh] failed to refresh tokens")
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respond.JSON(w, http.StatusOK, "Tokens refreshed", TokenResponse{
		Access:  result.AccessToken,
		Refresh: result.RefreshToken,
	})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	respond.JSON(w, http.StatusOK, "Current user", newUserResponse(user))
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.authService.Logout(r.Context(), userID); err != nil {
		logger.Log.Error().Err(err).Msg("[auth.Logout] failed to drop sessions")
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respond.JSON(w, http.StatusOK, "User logged out", nil)
}
