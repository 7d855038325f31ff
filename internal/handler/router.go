package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"roombook/internal/handler/api"
	"roombook/internal/handler/middleware"
	"roombook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Booking      *api.BookingHandler
	Room         *api.RoomHandler
	Notification *api.NotificationHandler
	User         *api.UserHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	requireAdmin := authMiddleware.RequireAdmin()

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireAuth)
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		bookings := apiGroup.Group("/booking-requests")
		bookings.Use(requireAuth)
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.ListAll, Mw: []gin.HandlerFunc{requireAdmin}},
				{Method: http.MethodGet, Path: "/pending", Handler: h.Booking.ListPending, Mw: []gin.HandlerFunc{requireAdmin}},
				{Method: http.MethodGet, Path: "/my-requests", Handler: h.Booking.ListMine},
				{Method: http.MethodGet, Path: "/check-availability", Handler: h.Booking.CheckAvailability},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Booking.Confirm, Mw: []gin.HandlerFunc{requireAdmin}},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: h.Booking.Reject, Mw: []gin.HandlerFunc{requireAdmin}},
			})
		}

		rooms := apiGroup.Group("/rooms")
		rooms.Use(requireAuth)
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Room.List},
				{Method: http.MethodGet, Path: "/schedule", Handler: h.Room.Schedule},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Room.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Room.Create, Mw: []gin.HandlerFunc{requireAdmin}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Room.Update, Mw: []gin.HandlerFunc{requireAdmin}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Room.Delete, Mw: []gin.HandlerFunc{requireAdmin}},
			})
		}

		notifications := apiGroup.Group("/notifications")
		notifications.Use(requireAuth)
		{
			addRoutes(notifications, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Notification.List},
				{Method: http.MethodGet, Path: "/unread-count", Handler: h.Notification.UnreadCount},
				{Method: http.MethodPut, Path: "/mark-all-read", Handler: h.Notification.MarkAllRead},
				{Method: http.MethodPut, Path: "/:id/mark-read", Handler: h.Notification.MarkRead},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Notification.Delete},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(requireAuth)
		{
			addRoutes(users, []route{
				{Method: http.MethodPost, Path: "", Handler: h.User.Create, Mw: []gin.HandlerFunc{requireAdmin}},
				{Method: http.MethodGet, Path: "", Handler: h.User.List, Mw: []gin.HandlerFunc{requireAdmin}},
				{Method: http.MethodGet, Path: "/profile", Handler: h.User.Profile},
				{Method: http.MethodPost, Path: "/:id/change-password", Handler: h.User.ChangePassword},
				{Method: http.MethodPost, Path: "/:id/deactivate", Handler: h.User.Deactivate, Mw: []gin.HandlerFunc{requireAdmin}},
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
