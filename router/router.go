package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/bar-api/config"
	"github.com/yeremiapane/bar-api/controllers"
	"github.com/yeremiapane/bar-api/events"
	"github.com/yeremiapane/bar-api/kds"
	"github.com/yeremiapane/bar-api/middlewares"
	"github.com/yeremiapane/bar-api/repository"
	"github.com/yeremiapane/bar-api/services"
	"github.com/yeremiapane/bar-api/utils"
	"gorm.io/gorm"
)

// SetupRouter wires repositories, controllers and middlewares into a gin
// engine. publisher receives every committed change; hub serves /ws/orders
// and should normally be one of publisher's targets.
func SetupRouter(db *gorm.DB, cfg *config.Config, publisher events.Publisher, hub *kds.Hub) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORSAllowedOrigin))
	r.Use(middlewares.LoggerMiddleware())

	jwt := utils.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
	limiter := middlewares.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	// Repositories
	tableRepo := repository.NewTableRepository(db, services.NewWelcomeQRCode(cfg.WelcomeBaseURL, cfg.QRCodeSize))
	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Controllers
	tableCtrl := controllers.NewTableController(tableRepo, publisher)
	customerCtrl := controllers.NewCustomerController(customerRepo, productRepo, publisher)
	productCtrl := controllers.NewProductController(productRepo)
	orderCtrl := controllers.NewOrderController(orderRepo, publisher)
	reportCtrl := controllers.NewReportController(reportRepo)
	authCtrl := controllers.NewAuthController(cfg.AdminUsername, cfg.AdminPasswordHash, jwt)
	kdsCtrl := controllers.NewKDSController(hub)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.GET("/products", productCtrl.GetAllProducts)
	r.GET("/products/:product_id", productCtrl.GetProduct)
	r.GET("/orders/:order_id", orderCtrl.GetOrder)
	r.GET("/tables/:identifier/qrcode", tableCtrl.GetQRCode)
	r.GET("/tables/:identifier/qrcode/image", tableCtrl.GetQRCodeImage)

	// Everything that writes on behalf of an anonymous customer is rate limited.
	limited := r.Group("/")
	limited.Use(limiter.RateLimit())
	{
		limited.GET("/welcome/:identifier", customerCtrl.Welcome)
		limited.POST("/customers", customerCtrl.CreateCustomer)
		limited.POST("/orders", orderCtrl.CreateOrder)
		limited.POST("/admin/login", authCtrl.Login)
	}

	r.GET("/ws/orders", middlewares.WebSocketAuthMiddleware(jwt), kdsCtrl.Stream)

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(jwt), middlewares.RequireRole(controllers.RoleAdmin))
	{
		admin.POST("/tables/batch", tableCtrl.CreateBatch)
		admin.GET("/tables", tableCtrl.GetAllTables)
		admin.GET("/tables/:identifier", tableCtrl.GetTable)

		admin.GET("/customers", customerCtrl.GetAllCustomers)

		admin.POST("/products/batch", productCtrl.CreateBatch)

		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)

		admin.GET("/reports/customers", reportCtrl.CustomerTotals)
	}

	return r
}
