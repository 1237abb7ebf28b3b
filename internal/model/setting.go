package model

import (
	"time"

	"github.com/superengulfing/site-backend/internal/locale"
)

// Known site setting keys. Values are rendered verbatim by the site.
const (
	SettingAffiliateLink  = "affiliate_link"
	SettingAffiliateLabel = "affiliate_label"
	SettingPDFLink        = "pdf_link"
	SettingVideoEmbedURL  = "video_embed_url"
)

// SiteSetting is a locale-scoped key-value record (affiliate link,
// PDF link, video embed URL).
type SiteSetting struct {
	Key       string        `json:"key"`
	Locale    locale.Locale `json:"locale"`
	Value     string        `json:"value"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// UpdateSettingsRequest is the payload for bulk updating settings for
// one locale.
type UpdateSettingsRequest struct {
	Locale   locale.Locale     `json:"locale" binding:"required,oneof=en am"`
	Settings map[string]string `json:"settings" binding:"required"`
}
