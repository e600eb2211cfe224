package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/notfound999/reservations/internal/handler/api"
	"github.com/notfound999/reservations/internal/handler/middleware"
	"github.com/notfound999/reservations/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	availabilityHandler *api.AvailabilityHandler,
	reservationHandler *api.ReservationHandler,
	scheduleHandler *api.ScheduleHandler,
	notificationHandler *api.NotificationHandler,
	authMiddleware *middleware.AuthMiddleware,
	bookingLimiter *middleware.RedisRateLimiter,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, availabilityHandler, reservationHandler, scheduleHandler, notificationHandler, authMiddleware, bookingLimiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	availabilityHandler *api.AvailabilityHandler,
	reservationHandler *api.ReservationHandler,
	scheduleHandler *api.ScheduleHandler,
	notificationHandler *api.NotificationHandler,
	authMiddleware *middleware.AuthMiddleware,
	bookingLimiter *middleware.RedisRateLimiter,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	var createMw []gin.HandlerFunc
	if bookingLimiter != nil {
		createMw = append(createMw, bookingLimiter.Middleware())
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/availabilities/:businessId", Handler: availabilityHandler.GetBusyBlocks},
		})

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.Create, Mw: createMw},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: reservationHandler.Cancel},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: reservationHandler.Confirm},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: reservationHandler.Reject},
			})
		}

		businesses := apiGroup.Group("/businesses")
		{
			addRoutes(businesses, []route{
				{Method: http.MethodGet, Path: "/:businessId/schedule", Handler: scheduleHandler.Get},
				{Method: http.MethodGet, Path: "/:businessId/time-off", Handler: scheduleHandler.ListTimeOff},
			})

			authRequired := businesses.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/:businessId/reservations", Handler: reservationHandler.ListByBusiness},
				{Method: http.MethodPost, Path: "/:businessId/schedule", Handler: scheduleHandler.CreateDefault},
				{Method: http.MethodPut, Path: "/:businessId/schedule", Handler: scheduleHandler.Update},
				{Method: http.MethodPost, Path: "/:businessId/time-off", Handler: scheduleHandler.AddTimeOff},
			})
		}

		timeOff := apiGroup.Group("/time-off")
		timeOff.Use(authMiddleware.RequireAuth())
		{
			addRoutes(timeOff, []route{
				{Method: http.MethodDelete, Path: "/:id", Handler: scheduleHandler.DeleteTimeOff},
			})
		}

		notifications := apiGroup.Group("/notifications")
		notifications.Use(authMiddleware.RequireAuth())
		{
			addRoutes(notifications, []route{
				{Method: http.MethodGet, Path: "", Handler: notificationHandler.Latest},
				{Method: http.MethodGet, Path: "/unread-count", Handler: notificationHandler.UnreadCount},
				{Method: http.MethodPost, Path: "/:id/read", Handler: notificationHandler.MarkRead},
				{Method: http.MethodPost, Path: "/read-all", Handler: notificationHandler.MarkAllRead},
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
