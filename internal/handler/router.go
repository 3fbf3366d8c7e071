package handler

import (
	"net/http"

	"nagoyameshi/internal/domain/access"
	"nagoyameshi/internal/handler/api"
	"nagoyameshi/internal/handler/httperr"
	"nagoyameshi/internal/handler/middleware"
	"nagoyameshi/internal/pkg/config"

	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// WebhookPath is exempt from cross-origin checks; the provider signs its payloads instead.
const WebhookPath = "/stripe/webhook"

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Restaurant   *api.RestaurantHandler
	User         *api.UserHandler
	Review       *api.ReviewHandler
	Reservation  *api.ReservationHandler
	Favorite     *api.FavoriteHandler
	Subscription *api.SubscriptionHandler
	Admin        *api.AdminHandler
	Catalog      *api.CatalogHandler
}

func NewHandlers(
	auth *api.AuthHandler,
	restaurant *api.RestaurantHandler,
	user *api.UserHandler,
	review *api.ReviewHandler,
	reservation *api.ReservationHandler,
	favorite *api.FavoriteHandler,
	subscription *api.SubscriptionHandler,
	admin *api.AdminHandler,
	catalog *api.CatalogHandler,
) *Handlers {
	return &Handlers{
		Auth:         auth,
		Restaurant:   restaurant,
		User:         user,
		Review:       review,
		Reservation:  reservation,
		Favorite:     favorite,
		Subscription: subscription,
		Admin:        admin,
		Catalog:      catalog,
	}
}

type Middlewares struct {
	Identity  *middleware.IdentityMiddleware
	Guard     *middleware.GuardMiddleware
	RateLimit *middleware.LoginRateLimiter
	Logger    *middleware.Logger
}

func NewMiddlewares(identity *middleware.IdentityMiddleware, guard *middleware.GuardMiddleware, rateLimit *middleware.LoginRateLimiter, logger *middleware.Logger) *Middlewares {
	return &Middlewares{Identity: identity, Guard: guard, RateLimit: rateLimit, Logger: logger}
}

func NewRouter(engine *gin.Engine, cfg config.Config, h *Handlers, mw *Middlewares) {
	httperr.UseJSONFieldNames()
	setupMiddleware(engine, cfg, mw)
	setupRoutes(engine, h, mw)
}

// NewHTTPHandler puts cross-origin protection and session loading in front of the engine.
func NewHTTPHandler(engine *gin.Engine, sessions *scs.SessionManager, cfg config.Config) http.Handler {
	protect := middleware.NewCrossOriginProtection(cfg.Session, WebhookPath)
	return protect(sessions.LoadAndSave(engine))
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, mw *Middlewares) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.Recovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(mw.Logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
	engine.Use(mw.Identity.Resolve())
}

func setupRoutes(engine *gin.Engine, h *Handlers, mw *Middlewares) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	engine.POST(WebhookPath, h.Subscription.Webhook)

	guard := mw.Guard.Require
	public := guard(access.MemberPublic)
	guestOnly := guard(access.GuestOnly)
	authenticated := guard(access.MemberAuthenticated)
	premium := guard(access.MemberPremium)
	onboarding := guard(access.SubscriptionOnboarding)
	management := guard(access.SubscriptionManagement)
	adminOnly := guard(access.AdminOnly)
	adminGuest := guard(access.AdminGuestOnly)
	throttle := mw.RateLimit.Limit()

	root := engine.Group("")
	addRoutes(root, []route{
		{Method: http.MethodGet, Path: "/", Handler: h.Restaurant.Home, Mw: mws(public)},
		{Method: http.MethodGet, Path: "/restaurants", Handler: h.Restaurant.Index, Mw: mws(public)},
		{Method: http.MethodGet, Path: "/restaurants/:id", Handler: h.Restaurant.Show, Mw: mws(public)},
		{Method: http.MethodGet, Path: "/company", Handler: h.Restaurant.Company, Mw: mws(public)},
		{Method: http.MethodGet, Path: "/terms", Handler: h.Restaurant.Terms, Mw: mws(public)},

		{Method: http.MethodGet, Path: "/login", Handler: h.Auth.LoginPage, Mw: mws(guestOnly)},
		{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: mws(throttle, guestOnly)},
		{Method: http.MethodGet, Path: "/register", Handler: h.Auth.RegisterPage, Mw: mws(guestOnly)},
		{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register, Mw: mws(throttle, guestOnly)},
		{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout, Mw: mws(authenticated)},

		{Method: http.MethodGet, Path: "/user", Handler: h.User.Index, Mw: mws(authenticated)},
		{Method: http.MethodGet, Path: "/user/:id/edit", Handler: h.User.Edit, Mw: mws(authenticated)},
		{Method: http.MethodPatch, Path: "/user/:id", Handler: h.User.Update, Mw: mws(authenticated)},

		{Method: http.MethodGet, Path: "/restaurants/:id/reviews", Handler: h.Review.Index, Mw: mws(authenticated)},
		{Method: http.MethodGet, Path: "/restaurants/:id/reviews/create", Handler: h.Review.Create, Mw: mws(premium)},
		{Method: http.MethodPost, Path: "/restaurants/:id/reviews", Handler: h.Review.Store, Mw: mws(premium)},
		{Method: http.MethodGet, Path: "/restaurants/:id/reviews/:review_id/edit", Handler: h.Review.Edit, Mw: mws(premium)},
		{Method: http.MethodPatch, Path: "/restaurants/:id/reviews/:review_id", Handler: h.Review.Update, Mw: mws(premium)},
		{Method: http.MethodDelete, Path: "/restaurants/:id/reviews/:review_id", Handler: h.Review.Destroy, Mw: mws(premium)},

		{Method: http.MethodGet, Path: "/reservations", Handler: h.Reservation.Index, Mw: mws(premium)},
		{Method: http.MethodGet, Path: "/restaurants/:id/reservations/create", Handler: h.Reservation.Create, Mw: mws(premium)},
		{Method: http.MethodPost, Path: "/restaurants/:id/reservations", Handler: h.Reservation.Store, Mw: mws(premium)},
		{Method: http.MethodDelete, Path: "/reservations/:id", Handler: h.Reservation.Destroy, Mw: mws(premium)},

		{Method: http.MethodGet, Path: "/favorites", Handler: h.Favorite.Index, Mw: mws(premium)},
		{Method: http.MethodPost, Path: "/favorites/:restaurant_id", Handler: h.Favorite.Store, Mw: mws(premium)},
		{Method: http.MethodDelete, Path: "/favorites/:restaurant_id", Handler: h.Favorite.Destroy, Mw: mws(premium)},

		{Method: http.MethodGet, Path: "/subscription/create", Handler: h.Subscription.Create, Mw: mws(onboarding)},
		{Method: http.MethodPost, Path: "/subscription", Handler: h.Subscription.Store, Mw: mws(onboarding)},
		{Method: http.MethodGet, Path: "/subscription/edit", Handler: h.Subscription.Edit, Mw: mws(management)},
		{Method: http.MethodPatch, Path: "/subscription", Handler: h.Subscription.Update, Mw: mws(management)},
		{Method: http.MethodGet, Path: "/subscription/cancel", Handler: h.Subscription.Cancel, Mw: mws(management)},
		{Method: http.MethodDelete, Path: "/subscription", Handler: h.Subscription.Destroy, Mw: mws(management)},
	})

	admin := engine.Group("/admin")
	addRoutes(admin, []route{
		{Method: http.MethodGet, Path: "/login", Handler: h.Auth.AdminLoginPage, Mw: mws(adminGuest)},
		{Method: http.MethodPost, Path: "/login", Handler: h.Auth.AdminLogin, Mw: mws(throttle, adminGuest)},
		{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.AdminLogout, Mw: mws(adminOnly)},
	})

	adminArea := admin.Group("")
	adminArea.Use(adminOnly)
	addRoutes(adminArea, []route{
		{Method: http.MethodGet, Path: "/home", Handler: h.Admin.Home},
		{Method: http.MethodGet, Path: "/users", Handler: h.Admin.Users},
		{Method: http.MethodGet, Path: "/users/:id", Handler: h.Admin.User},

		{Method: http.MethodGet, Path: "/restaurants", Handler: h.Catalog.Restaurants},
		{Method: http.MethodGet, Path: "/restaurants/create", Handler: h.Catalog.NewRestaurant},
		{Method: http.MethodGet, Path: "/restaurants/:id", Handler: h.Catalog.Restaurant},
		{Method: http.MethodGet, Path: "/restaurants/:id/edit", Handler: h.Catalog.Restaurant},
		{Method: http.MethodPost, Path: "/restaurants", Handler: h.Catalog.StoreRestaurant},
		{Method: http.MethodPatch, Path: "/restaurants/:id", Handler: h.Catalog.UpdateRestaurant},
		{Method: http.MethodDelete, Path: "/restaurants/:id", Handler: h.Catalog.DestroyRestaurant},

		{Method: http.MethodGet, Path: "/categories", Handler: h.Catalog.Categories},
		{Method: http.MethodPost, Path: "/categories", Handler: h.Catalog.StoreCategory},
		{Method: http.MethodPatch, Path: "/categories/:id", Handler: h.Catalog.UpdateCategory},
		{Method: http.MethodDelete, Path: "/categories/:id", Handler: h.Catalog.DestroyCategory},

		{Method: http.MethodGet, Path: "/company", Handler: h.Catalog.Company},
		{Method: http.MethodGet, Path: "/company/edit", Handler: h.Catalog.Company},
		{Method: http.MethodPatch, Path: "/company", Handler: h.Catalog.UpdateCompany},
		{Method: http.MethodGet, Path: "/terms", Handler: h.Catalog.Terms},
		{Method: http.MethodGet, Path: "/terms/edit", Handler: h.Catalog.Terms},
		{Method: http.MethodPatch, Path: "/terms", Handler: h.Catalog.UpdateTerms},
	})

	apiGroup := engine.Group("/api")
	addRoutes(apiGroup, []route{
		{Method: http.MethodPost, Path: "/token", Handler: h.Auth.IssueMemberToken, Mw: mws(throttle, guestOnly)},
		{Method: http.MethodPost, Path: "/admin/token", Handler: h.Auth.IssueAdminToken, Mw: mws(throttle, adminGuest)},
	})
}

func mws(hs ...gin.HandlerFunc) []gin.HandlerFunc {
	return hs
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
