package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/superengulfing/site-backend/internal/locale"
	"github.com/superengulfing/site-backend/internal/model"
	"github.com/superengulfing/site-backend/internal/response"
	"github.com/superengulfing/site-backend/internal/service"
	"github.com/superengulfing/site-backend/internal/validator"
)

// SettingHandler serves the locale-scoped site settings (affiliate
// link, PDF link, video embed URL) and the admin update endpoint.
type SettingHandler struct {
	settingService *service.SettingService
}

// NewSettingHandler creates a new SettingHandler.
func NewSettingHandler(settingService *service.SettingService) *SettingHandler {
	return &SettingHandler{settingService: settingService}
}

// GetSettings godoc
// GET /api/v1/settings?locale=en
// Public: the landing pages read affiliate and media links from here.
func (h *SettingHandler) GetSettings(c *gin.Context) {
	l := locale.Locale(c.DefaultQuery("locale", string(locale.LocaleEN)))
	if !locale.Valid(l) {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidLocale)
		return
	}

	settings, err := h.settingService.GetAllSettings(c.Request.Context(), l)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"locale": l, "settings": settings})
}

// UpdateSettings godoc
// PUT /api/v1/admin/settings
func (h *SettingHandler) UpdateSettings(c *gin.Context) {
	var req model.UpdateSettingsRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.settingService.UpdateSettings(c.Request.Context(), req.Locale, req.Settings); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	settings, err := h.settingService.GetAllSettings(c.Request.Context(), req.Locale)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"locale": req.Locale, "settings": settings})
}
