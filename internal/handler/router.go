package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gin-order-service/internal/domain/user"
	"gin-order-service/internal/handler/api"
	"gin-order-service/internal/handler/middleware"
	"gin-order-service/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Timeslot *api.TimeslotHandler
	Order    *api.OrderHandler
	Payment  *api.PaymentHandler
}

func NewHandlers(auth *api.AuthHandler, timeslot *api.TimeslotHandler, order *api.OrderHandler, payment *api.PaymentHandler) Handlers {
	return Handlers{Auth: auth, Timeslot: timeslot, Order: order, Payment: payment}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	staff := authMiddleware.RequireRoleAtLeast(user.RoleStaff)
	admin := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		timeslots := apiGroup.Group("/timeslots")
		{
			addRoutes(timeslots, []route{
				{Method: http.MethodGet, Path: "/available", Handler: h.Timeslot.ListAvailable},
				{Method: http.MethodGet, Path: "/weekly", Handler: h.Timeslot.Weekly},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Timeslot.Get},
			})

			managed := timeslots.Group("")
			managed.Use(authMiddleware.RequireAuth())
			addRoutes(managed, []route{
				{Method: http.MethodPost, Path: "/generate", Handler: h.Timeslot.Generate, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Timeslot.Update, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodPost, Path: "/:id/reserve", Handler: h.Timeslot.Reserve, Mw: []gin.HandlerFunc{staff}},
				{Method: http.MethodPost, Path: "/:id/release", Handler: h.Timeslot.Release, Mw: []gin.HandlerFunc{staff}},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Order.PlaceOrder},
				{Method: http.MethodGet, Path: "", Handler: h.Order.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Order.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Order.Cancel},
				{Method: http.MethodPost, Path: "/:id/refund", Handler: h.Order.Refund, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Order.AdvanceStatus, Mw: []gin.HandlerFunc{staff}},
			})
		}

		payments := apiGroup.Group("/payments")
		{
			// authenticated by the provider signature, not a user token
			payments.POST("/webhook", h.Payment.Webhook)

			authed := payments.Group("")
			authed.Use(authMiddleware.RequireAuth())
			addRoutes(authed, []route{
				{Method: http.MethodGet, Path: "/methods", Handler: h.Payment.ListMethods},
				{Method: http.MethodPut, Path: "/methods/:id/default", Handler: h.Payment.SetDefaultMethod},
				{Method: http.MethodGet, Path: "/:id/status", Handler: h.Payment.Status},
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
