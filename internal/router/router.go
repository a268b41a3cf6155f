// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/config"
	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/handlers"
	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/middleware"
	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/services"
	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	cacheService := services.NewCacheService(cfg.Redis)
	storageService, _ := services.NewStorageService(cfg)

	authService := services.NewAuthService(db, cfg)
	productService := services.NewProductService(db, cacheService)
	cartService := services.NewCartService(db)
	favoriteService := services.NewFavoriteService(db)
	addressService := services.NewAddressService(db)
	orderService := services.NewOrderService(db)
	adminService := services.NewAdminService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService, storageService)
	cartHandler := handlers.NewCartHandler(cartService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	addressHandler := handlers.NewAddressHandler(addressService)
	orderHandler := handlers.NewOrderHandler(orderService)
	adminHandler := handlers.NewAdminHandler(adminService, orderService)
	contactHandler := handlers.NewContactHandler(adminService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	limiters := middleware.NewRateLimiters(cfg.RateLimit)
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(limiters.General)
	r.Use(middleware.AuditLogMiddleware(db))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(limiters.Auth)
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/me", middleware.AuthRequired(), authHandler.Me)
		}

		// Catalog routes (public)
		products := v1.Group("/products")
		{
			products.GET("", middleware.OptionalAuth(), productHandler.List)
			products.GET("/:id", middleware.OptionalAuth(), productHandler.Get)
		}

		// Contact form (public)
		v1.POST("/contact", contactHandler.Create)

		// Cart routes
		cart := v1.Group("/cart")
		cart.Use(middleware.AuthRequired())
		{
			cart.GET("", cartHandler.Get)
			cart.DELETE("", cartHandler.Clear)
			cart.POST("/items", cartHandler.AddItem)
			cart.PUT("/items/:productId", cartHandler.UpdateItem)
			cart.DELETE("/items/:productId", cartHandler.RemoveItem)
		}

		// Favorite routes
		favorites := v1.Group("/favorites")
		favorites.Use(middleware.AuthRequired())
		{
			favorites.GET("", favoriteHandler.List)
			favorites.POST("", favoriteHandler.Add)
			favorites.DELETE("/:productId", favoriteHandler.Remove)
		}

		// Address routes
		addresses := v1.Group("/addresses")
		addresses.Use(middleware.AuthRequired())
		{
			addresses.GET("", addressHandler.List)
			addresses.POST("", addressHandler.Create)
			addresses.PUT("/:id", addressHandler.Update)
			addresses.DELETE("/:id", addressHandler.Delete)
		}

		// Order routes
		orders := v1.Group("/orders")
		orders.Use(middleware.AuthRequired())
		{
			orders.POST("", orderHandler.Create)
			orders.GET("", orderHandler.List)
			orders.GET("/:id", orderHandler.Get)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			admin.GET("/dashboard/stats", adminHandler.Dashboard)
			admin.GET("/users", adminHandler.Users)
			admin.GET("/messages", adminHandler.Messages)

			adminOrders := admin.Group("/orders")
			{
				adminOrders.GET("", adminHandler.Orders)
				adminOrders.PUT("/:id/status", adminHandler.UpdateOrderStatus)
			}

			adminProducts := admin.Group("/products")
			{
				adminProducts.POST("", productHandler.Create)
				adminProducts.PUT("/:id", productHandler.Update)
				adminProducts.DELETE("/:id", productHandler.Delete)
				adminProducts.POST("/upload-image", limiters.Upload, productHandler.UploadImage)
			}
		}
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", "./uploads")
	}

	return r
}
