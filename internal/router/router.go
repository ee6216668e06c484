package router

import (
	"time"

	"rentdesk/internal/documents"
	"rentdesk/internal/handlers"
	"rentdesk/internal/hub"
	"rentdesk/internal/middleware"
	"rentdesk/internal/services"
	"rentdesk/internal/store"
	"rentdesk/pkg/config"
	"rentdesk/pkg/jwt"
	"rentdesk/pkg/response"

	"github.com/gin-gonic/gin"
)

// Dependencies 路由依赖的服务
type Dependencies struct {
	Store      *store.Store
	Sessions   *services.SessionService
	Tenants    *services.TenantService
	Rooms      *services.RoomService
	Payments   *services.PaymentService
	Bills      *services.BillService
	Reports    *services.ReportService
	Settings   *services.SettingsService
	Documents  *documents.Service
	Hub        *hub.Hub
	JWTManager *jwt.JWTManager
	CORS       config.CORSConfig
}

// SetupRouter 设置路由
func SetupRouter(deps Dependencies) *gin.Engine {
	router := gin.New()

	// 中间件
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.SetupCORS(deps.CORS))

	handlers.RegisterValidators()

	registerRoutes(router, deps)
	return router
}

// 注册所有路由
func registerRoutes(router *gin.Engine, deps Dependencies) {
	auth := middleware.NewAuthMiddleware(deps.JWTManager, func() bool {
		return deps.Store.Snapshot().Navigation.IsAuthenticated
	})
	login := auth.RequireLogin()

	api := router.Group("/api/v1")
	{
		// 健康检查接口
		api.GET("/health", healthCheck)
		api.GET("/ping", ping)

		authHandler := handlers.NewAuthHandler(deps.Sessions)
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/logout", login, authHandler.Logout)
		}

		// 页面导航
		api.GET("/navigation", login, authHandler.Navigation)
		api.PUT("/navigation", login, authHandler.Navigate)

		reportHandler := handlers.NewReportHandler(deps.Reports)
		api.GET("/dashboard", login, reportHandler.Dashboard)
		reportGroup := api.Group("/reports", login)
		{
			reportGroup.GET("", reportHandler.Reports)
			reportGroup.GET("/export", reportHandler.Export)
			reportGroup.POST("/snapshots", reportHandler.Snapshot)
		}

		tenantHandler := handlers.NewTenantHandler(deps.Tenants)
		documentHandler := handlers.NewDocumentHandler(deps.Documents, deps.Tenants)
		tenants := api.Group("/tenants", login)
		{
			tenants.GET("", tenantHandler.List)
			tenants.POST("", tenantHandler.Create)
			tenants.GET("/left", tenantHandler.Left)
			tenants.GET("/:id", tenantHandler.Details)
			tenants.PUT("/:id", tenantHandler.Update)
			tenants.POST("/:id/open", tenantHandler.Open)
			tenants.POST("/:id/leave", tenantHandler.MarkLeft)

			// 身份证明文件
			tenants.GET("/:id/documents", documentHandler.List)
			tenants.POST("/:id/documents", documentHandler.Upload)
		}
		docs := api.Group("/documents", login)
		{
			docs.GET("/:docId", documentHandler.Download)
			docs.DELETE("/:docId", documentHandler.Delete)
		}

		roomHandler := handlers.NewRoomHandler(deps.Rooms)
		rooms := api.Group("/rooms", login)
		{
			rooms.GET("", roomHandler.List)
			rooms.POST("/:id/assign", roomHandler.Assign)
			rooms.POST("/:id/vacate", roomHandler.Vacate)
		}

		paymentHandler := handlers.NewPaymentHandler(deps.Payments)
		payments := api.Group("/payments", login)
		{
			payments.GET("", paymentHandler.List)
			payments.POST("", paymentHandler.Create)
			payments.PUT("/:id/status", paymentHandler.SetStatus)
		}

		billHandler := handlers.NewBillHandler(deps.Bills)
		bills := api.Group("/bills", login)
		{
			bills.GET("", billHandler.List)
			bills.POST("", billHandler.Create)
			bills.PUT("/:id/status", billHandler.SetStatus)
		}

		settingsHandler := handlers.NewSettingsHandler(deps.Settings)
		settings := api.Group("/settings", login)
		{
			settings.GET("", settingsHandler.Get)
			settings.POST("/dark-mode/toggle", settingsHandler.ToggleDarkMode)
			settings.PUT("/language", settingsHandler.SetLanguage)
			settings.PUT("/profile", settingsHandler.UpdateProfile)
			settings.POST("/password", settingsHandler.ChangePassword)
			settings.GET("/notices", settingsHandler.Notices)
		}

		// 语言和翻译（登录页也需要）
		api.GET("/languages", settingsHandler.Languages)
		api.GET("/translations", settingsHandler.Translations)
		api.GET("/translations/coverage", settingsHandler.Coverage)

		// WebSocket 使用查询参数中的token认证
		wsHandler := handlers.NewWebSocketHandler(deps.Hub, deps.JWTManager, deps.CORS.AllowOrigins)
		api.GET("/ws", wsHandler.Events)
	}
}

func healthCheck(c *gin.Context) {
	data := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now(),
		"service":   "RENTDESK",
		"version":   "1.0.0",
	}
	response.Success(c, data)
}

func ping(c *gin.Context) {
	response.SuccessWithMessage(c, "pong", nil)
}
