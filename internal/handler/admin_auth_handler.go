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

// AdminAuthHandler implements the two-step admin gate behind the
// disguised admin path: shared secret first, then a TOTP code.
type AdminAuthHandler struct {
	adminAuthService *service.AdminAuthService
}

// NewAdminAuthHandler creates a new AdminAuthHandler.
func NewAdminAuthHandler(adminAuthService *service.AdminAuthService) *AdminAuthHandler {
	return &AdminAuthHandler{adminAuthService: adminAuthService}
}

// VerifySecret godoc
// POST /api/v1/admin/auth/password
// Step 1: checks the shared secret. A wrong secret gets a plain 401
// with no hint about which part failed.
func (h *AdminAuthHandler) VerifySecret(c *gin.Context) {
	var req model.AdminPasswordRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	resp, err := h.adminAuthService.VerifySecret(c.Request.Context(), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSecret) {
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidSecret)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// VerifyCode godoc
// POST /api/v1/admin/auth/code
// Step 2: validates the 6-digit TOTP code against the pending
// verification and issues the admin JWT. Remember-me stretches the
// token lifetime; it never skips the code.
func (h *AdminAuthHandler) VerifyCode(c *gin.Context) {
	var req model.AdminCodeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	resp, err := h.adminAuthService.VerifyCode(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPendingNotFound):
			response.Fail(c, http.StatusUnauthorized, response.ErrPendingNotFound)
		case errors.Is(err, service.ErrInvalidCode):
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCode)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Me godoc
// GET /api/v1/admin/me
func (h *AdminAuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	admin, err := h.adminAuthService.GetAdmin(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"admin": admin})
}
