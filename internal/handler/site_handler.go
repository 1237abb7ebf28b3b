package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/superengulfing/site-backend/internal/config"
	"github.com/superengulfing/site-backend/internal/gate"
	"github.com/superengulfing/site-backend/internal/locale"
	"github.com/superengulfing/site-backend/internal/middleware"
	"github.com/superengulfing/site-backend/internal/routes"
	"github.com/superengulfing/site-backend/internal/service"
)

// SiteHandler serves the localized page tree: for every route in the
// table it returns a page descriptor (page ID, locale, canonical URL)
// or an HTTP redirect computed by the gate. The front end hydrates the
// descriptor into the actual markup.
type SiteHandler struct {
	cfg                 *config.Config
	authService         *service.AuthService
	userService         *service.UserService
	subscriptionService *service.SubscriptionService
	log                 zerolog.Logger
}

// NewSiteHandler creates a new SiteHandler.
func NewSiteHandler(cfg *config.Config, authService *service.AuthService, userService *service.UserService, subscriptionService *service.SubscriptionService, log zerolog.Logger) *SiteHandler {
	return &SiteHandler{
		cfg:                 cfg,
		authService:         authService,
		userService:         userService,
		subscriptionService: subscriptionService,
		log:                 log.With().Str("component", "site_handler").Logger(),
	}
}

// Page returns the handler for one route-table entry.
func (h *SiteHandler) Page(route routes.Route) gin.HandlerFunc {
	return func(c *gin.Context) {
		if route.Page == routes.PageThankYou {
			h.thankYou(c, route)
			return
		}
		if route.Gated {
			h.dashboard(c, route)
			return
		}
		h.render(c, route.Page, route.Locale, nil)
	}
}

// dashboard runs the auth gate before serving a dashboard descriptor.
// Once a redirect is decided nothing else is served; a token whose
// profile cannot be loaded yields an empty response rather than a
// redirect, so a flaky lookup can never cause a redirect storm.
func (h *SiteHandler) dashboard(c *gin.Context, route routes.Route) {
	path := c.Request.URL.Path
	token := middleware.BearerToken(c)

	var profile *gate.Profile
	if token != "" {
		if claims, err := h.authService.ValidateToken(token); err == nil {
			if u, err := h.userService.GetByID(c.Request.Context(), claims.UserID); err == nil {
				profile = &gate.Profile{Locale: u.Locale}
			}
		}
	}

	d := gate.Dashboard(path, token != "", profile)
	switch {
	case d.RedirectTo != "":
		c.Redirect(http.StatusFound, d.RedirectTo)
	case !d.Render:
		c.Status(http.StatusNoContent)
	default:
		h.render(c, route.Page, route.Locale, nil)
	}
}

// thankYou gates the thank-you page. A token query param is exchanged
// for a confirmation result whose locale overrides the path locale;
// otherwise confirmed=1 must be present. Every failure bounces to the
// locale's landing page.
func (h *SiteHandler) thankYou(c *gin.Context, route routes.Route) {
	path := c.Request.URL.Path

	if token := c.Query("token"); token != "" {
		result, err := h.authService.ExchangeConfirmToken(c.Request.Context(), token)
		if err != nil {
			h.log.Debug().Err(err).Msg("Confirmation token exchange failed")
			c.Redirect(http.StatusFound, locale.Localize("/", locale.Resolve(path)))
			return
		}
		if result.SubscriberID > 0 {
			if err := h.subscriptionService.ConfirmSubscriber(c.Request.Context(), result.SubscriberID); err != nil {
				h.log.Warn().Err(err).Int("subscriber_id", result.SubscriberID).Msg("Confirm subscriber failed")
			}
		}
		extra := gin.H{}
		if result.Token != "" {
			extra["token"] = result.Token
		}
		h.render(c, route.Page, result.Locale, extra)
		return
	}

	d := gate.ThankYou(path, c.Query("confirmed"), false)
	if d.RedirectTo != "" {
		c.Redirect(http.StatusFound, d.RedirectTo)
		return
	}
	h.render(c, route.Page, route.Locale, nil)
}

// LegacyAdminRedirect handles the retired /am/admin alias: a fixed,
// unconditional redirect to /am that never exposes the disguised admin
// path.
func (h *SiteHandler) LegacyAdminRedirect(c *gin.Context) {
	c.Redirect(http.StatusMovedPermanently, "/am")
}

// Robots serves robots.txt.
func (h *SiteHandler) Robots(c *gin.Context) {
	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.String(http.StatusOK, routes.RenderRobots(h.cfg.SiteURL))
}

// Sitemap serves sitemap.xml.
func (h *SiteHandler) Sitemap(c *gin.Context) {
	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.String(http.StatusOK, routes.RenderSitemap(h.cfg.SiteURL))
}

func (h *SiteHandler) render(c *gin.Context, page routes.PageID, l locale.Locale, extra gin.H) {
	body := gin.H{
		"page":      page,
		"locale":    l,
		"path":      c.Request.URL.Path,
		"canonical": h.cfg.SiteURL + c.Request.URL.Path,
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}
