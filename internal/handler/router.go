package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"stablebook/internal/domain/account"
	"stablebook/internal/handler/api"
	"stablebook/internal/handler/middleware"
	"stablebook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Account  *api.AccountHandler
	Booking  *api.BookingHandler
	Calendar *api.CalendarHandler
	Loyalty  *api.LoyaltyHandler
	Reward   *api.RewardHandler
	Horse    *api.HorseHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, auth *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	staffOnly := auth.RequireRoleAtLeast(account.RoleStaff)

	apiGroup := engine.Group("/api")
	{
		authGroup := apiGroup.Group("/auth")
		{
			addRoutes(authGroup, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: h.Auth.Signup},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})
		}

		accounts := apiGroup.Group("/accounts")
		accounts.Use(auth.RequireAuth())
		{
			addRoutes(accounts, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Account.Me},
				{Method: http.MethodGet, Path: "/me/points", Handler: h.Account.PointHistory},
				{Method: http.MethodGet, Path: "/me/grants", Handler: h.Account.Grants},
				{Method: http.MethodGet, Path: "/me/bookings", Handler: h.Account.Bookings},
				{Method: http.MethodPost, Path: "/:id/points/adjust", Handler: h.Loyalty.Adjust, Mw: []gin.HandlerFunc{staffOnly}},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				// Walk-ins submit without an account; a valid token links one.
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Submit, Mw: []gin.HandlerFunc{auth.OptionalAuth()}},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List, Mw: []gin.HandlerFunc{auth.RequireAuth(), staffOnly}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get, Mw: []gin.HandlerFunc{auth.RequireAuth()}},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Booking.UpdateStatus, Mw: []gin.HandlerFunc{auth.RequireAuth()}},
				{Method: http.MethodPost, Path: "/:id/grant", Handler: h.Booking.ApplyGrant, Mw: []gin.HandlerFunc{auth.RequireAuth()}},
				{Method: http.MethodPost, Path: "/:id/award", Handler: h.Loyalty.AwardCompletion, Mw: []gin.HandlerFunc{auth.RequireAuth(), staffOnly}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.Delete, Mw: []gin.HandlerFunc{auth.RequireAuth(), staffOnly}},
			})
		}

		calendar := apiGroup.Group("/calendar")
		{
			addRoutes(calendar, []route{
				{Method: http.MethodGet, Path: "/:date/availability", Handler: h.Calendar.Availability},
				{Method: http.MethodGet, Path: "/:date", Handler: h.Calendar.GetDay, Mw: []gin.HandlerFunc{auth.RequireAuth(), staffOnly}},
				{Method: http.MethodGet, Path: "", Handler: h.Calendar.ListDays, Mw: []gin.HandlerFunc{auth.RequireAuth(), staffOnly}},
				{Method: http.MethodPut, Path: "", Handler: h.Calendar.UpsertDay, Mw: []gin.HandlerFunc{auth.RequireAuth(), staffOnly}},
			})
		}

		rewards := apiGroup.Group("/rewards")
		{
			addRoutes(rewards, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Reward.List},
				{Method: http.MethodGet, Path: "/admin", Handler: h.Reward.ListAdmin, Mw: []gin.HandlerFunc{auth.RequireAuth(), staffOnly}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reward.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Reward.Create, Mw: []gin.HandlerFunc{auth.RequireAuth(), staffOnly}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Reward.Update, Mw: []gin.HandlerFunc{auth.RequireAuth(), staffOnly}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Reward.Delete, Mw: []gin.HandlerFunc{auth.RequireAuth(), staffOnly}},
			})
		}

		loyalty := apiGroup.Group("/loyalty")
		loyalty.Use(auth.RequireAuth())
		{
			addRoutes(loyalty, []route{
				{Method: http.MethodPost, Path: "/redeem", Handler: h.Loyalty.Redeem},
			})
		}

		horses := apiGroup.Group("/horses")
		{
			addRoutes(horses, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Horse.List},
				{Method: http.MethodPost, Path: "", Handler: h.Horse.Create, Mw: []gin.HandlerFunc{auth.RequireAuth(), staffOnly}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Horse.Update, Mw: []gin.HandlerFunc{auth.RequireAuth(), staffOnly}},
			})
		}
	}
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
