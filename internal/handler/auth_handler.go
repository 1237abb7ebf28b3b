package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/superengulfing/site-backend/internal/middleware"
	"github.com/superengulfing/site-backend/internal/model"
	"github.com/superengulfing/site-backend/internal/response"
	"github.com/superengulfing/site-backend/internal/service"
	"github.com/superengulfing/site-backend/internal/validator"
)

// AuthHandler handles member authentication endpoints.
type AuthHandler struct {
	authService *service.AuthService
	userService *service.UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, userService *service.UserService) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService}
}

// Login godoc
// POST /api/v1/auth/login
// Validates email + password, returns JWT and the profile.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user, err := h.userService.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	if user.PasswordHash == "" {
		// Account created by access approval but password never set.
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	if err := h.authService.CheckPassword(user.PasswordHash, req.Password); err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	token, err := h.authService.GenerateUserToken(c.Request.Context(), user.ID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, model.LoginResponse{Token: token, User: *user})
}

// Logout godoc
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	if err := h.authService.Logout(c.Request.Context(), claims.UserID); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

// Me godoc
// GET /api/v1/me
// Returns the profile of the currently authenticated member. The site
// layer reads only the locale field; the rest feeds the dashboard UI.
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// UpdateLocale godoc
// PUT /api/v1/me/locale
func (h *AuthHandler) UpdateLocale(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.UpdateLocaleRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.userService.UpdateLocale(c.Request.Context(), claims.UserID, req.Locale); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"locale": req.Locale})
}

// CompleteOnboarding godoc
// PUT /api/v1/me/onboarding
// Marks the onboarding/certificate flow as completed.
func (h *AuthHandler) CompleteOnboarding(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	if err := h.userService.MarkOnboardingCompleted(c.Request.Context(), claims.UserID); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"onboarding_completed": true})
}

// Confirm godoc
// POST /api/v1/auth/confirm
// Exchanges a one-time thank-you token. Approved-member tokens open a
// session; subscriber tokens only yield the locale.
func (h *AuthHandler) Confirm(c *gin.Context) {
	var req model.ConfirmRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result, err := h.authService.ExchangeConfirmToken(c.Request.Context(), req.Token)
	if err != nil {
		if errors.Is(err, service.ErrTokenNotFound) {
			response.Fail(c, http.StatusUnauthorized, response.ErrConfirmTokenBad)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"locale": result.Locale,
		"token":  result.Token,
	})
}

// SetPassword godoc
// POST /api/v1/auth/set-password
// Sets the initial password using the token from the approval email,
// then opens a session.
func (h *AuthHandler) SetPassword(c *gin.Context) {
	var req model.SetPasswordRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	userID, err := h.authService.ConsumeSetPasswordToken(c.Request.Context(), req.Token)
	if err != nil {
		if errors.Is(err, service.ErrTokenNotFound) {
			response.Fail(c, http.StatusUnauthorized, response.ErrSetPasswordToken)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	hash, err := h.authService.HashPassword(req.Password)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if err := h.userService.SetPassword(c.Request.Context(), userID, hash); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	token, err := h.authService.GenerateUserToken(c.Request.Context(), userID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, model.LoginResponse{Token: token, User: *user})
}
