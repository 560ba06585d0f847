package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"naoh-aquatics/controllers"
	"naoh-aquatics/middleware"
	"naoh-aquatics/services"
)

func SetupRoutes(router *gin.Engine) {
	cartService := services.NewCartService()

	authCtrl := controllers.NewAuthController()
	menuCtrl := controllers.NewMenuController()
	cartCtrl := controllers.NewCartController(cartService)
	orderCtrl := controllers.NewOrderController(cartService)
	settingsCtrl := controllers.NewSettingsController()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)

	router.GET("/settings", settingsCtrl.GetSettings)
	router.GET("/categories", menuCtrl.GetCategories)
	router.GET("/menu", menuCtrl.GetMenu)
	router.GET("/menu/:id", menuCtrl.GetMenuItem)

	router.GET("/cart", cartCtrl.GetCart)
	router.POST("/cart/items", cartCtrl.AddItem)
	router.PATCH("/cart/items/:lineId", cartCtrl.UpdateItem)
	router.DELETE("/cart/items/:lineId", cartCtrl.RemoveItem)
	router.DELETE("/cart", cartCtrl.ClearCart)
	router.POST("/checkout", orderCtrl.Checkout)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/auth/profile", authCtrl.GetProfile)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("/categories", menuCtrl.CreateCategory)
		admin.PATCH("/categories/:id", menuCtrl.UpdateCategory)
		admin.DELETE("/categories/:id", menuCtrl.DeleteCategory)

		admin.POST("/menu", menuCtrl.CreateMenuItem)
		admin.POST("/menu/image", menuCtrl.UploadItemImage)
		admin.PATCH("/menu/:id", menuCtrl.UpdateMenuItem)
		admin.DELETE("/menu/:id", menuCtrl.DeleteMenuItem)

		admin.PATCH("/settings", settingsCtrl.UpdateSettings)

		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.GET("/orders/:id", orderCtrl.GetOrderByID)
		admin.PATCH("/orders/:id/status", orderCtrl.UpdateOrderStatus)
	}

	router.Static("/uploads", "./uploads")
}
