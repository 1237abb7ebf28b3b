package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/superengulfing/site-backend/internal/config"
	"github.com/superengulfing/site-backend/internal/handler"
	"github.com/superengulfing/site-backend/internal/middleware"
	"github.com/superengulfing/site-backend/internal/response"
	"github.com/superengulfing/site-backend/internal/routes"
	"github.com/superengulfing/site-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Site         *handler.SiteHandler
	Auth         *handler.AuthHandler
	Subscription *handler.SubscriptionHandler
	Access       *handler.AccessHandler
	Course       *handler.CourseHandler
	Setting      *handler.SettingHandler
	AdminAuth    *handler.AdminAuthHandler
	Events       *handler.EventsHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// ─── Site Routes ───────────────────────────────────────────────────
	// One GET route per (page, locale) pair from the static table. Each
	// sets the canonical Link header for its own URL.
	canonical := middleware.Canonical(cfg.SiteURL)
	for _, route := range routes.Table() {
		router.GET(route.Pattern, canonical, handlers.Site.Page(route))
	}

	// The admin panel lives only at the disguised path; the guessable
	// localized alias is permanently redirected.
	router.GET("/am/admin", handlers.Site.LegacyAdminRedirect)

	// Crawler endpoints, cached for an hour.
	router.GET("/robots.txt", middleware.CacheControl(3600), handlers.Site.Robots)
	router.GET("/sitemap.xml", middleware.CacheControl(3600), handlers.Site.Sitemap)

	// Rate limiter for unauthenticated form endpoints (30 req/min per IP).
	formLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── Public API ────────────────────────────────────────────────────
	public := router.Group("/api/v1")
	{
		public.GET("/settings", handlers.Setting.GetSettings)

		limited := public.Group("")
		limited.Use(formLimiter.Middleware())
		{
			limited.POST("/subscribe", handlers.Subscription.Subscribe)
			limited.POST("/access-requests", handlers.Access.Create)
			limited.POST("/auth/login", handlers.Auth.Login)
			limited.POST("/auth/confirm", handlers.Auth.Confirm)
			limited.POST("/auth/set-password", handlers.Auth.SetPassword)
		}
	}

	// ─── Member API (JWT + Session) ────────────────────────────────────
	member := router.Group("/api/v1")
	member.Use(
		middleware.RequireUserJWT(authService),
		middleware.CheckUserSession(authService),
	)
	{
		member.POST("/auth/logout", handlers.Auth.Logout)
		member.GET("/me", handlers.Auth.Me)
		member.PUT("/me/locale", handlers.Auth.UpdateLocale)
		member.PUT("/me/onboarding", handlers.Auth.CompleteOnboarding)
		member.GET("/me/progress", handlers.Course.ListProgress)
		member.GET("/courses", handlers.Course.ListCourses)
		member.GET("/courses/:id", handlers.Course.GetCourse)
		member.POST("/lessons/:id/progress", handlers.Course.MarkWatched)
	}

	// ─── Admin API ─────────────────────────────────────────────────────
	// The two-step gate endpoints are public (they are the gate); the
	// rest requires the admin JWT the gate issued.
	adminAuth := router.Group("/api/v1/admin/auth")
	adminAuth.Use(formLimiter.Middleware())
	{
		adminAuth.POST("/password", handlers.AdminAuth.VerifySecret)
		adminAuth.POST("/code", handlers.AdminAuth.VerifyCode)
	}

	admin := router.Group("/api/v1/admin")
	admin.Use(middleware.RequireAdminJWT(authService))
	{
		admin.GET("/me", handlers.AdminAuth.Me)
		admin.GET("/access-requests", handlers.Access.List)
		admin.POST("/access-requests/:id/approve", handlers.Access.Approve)
		admin.POST("/access-requests/:id/reject", handlers.Access.Reject)
		admin.PUT("/settings", handlers.Setting.UpdateSettings)
		admin.GET("/events", handlers.Events.AccessRequestStream)
	}

	return router
}
