package routes

import (
	"net/http"
	"time"

	"storefront/controllers"
	"storefront/libs"
	"storefront/repositories"
	"storefront/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are constructed once at start-up and shared by every request.
type Dependencies struct {
	Store     repositories.Store
	Cache     *redis.Client
	CacheTTL  time.Duration
	Uploader  libs.ImageUploader
	UploadDir string
}

// cacheScope gives every in-memory store its own product cache key. Those
// stores are reseeded on start, so a list cached by an earlier process or by
// another serverless instance does not describe them.
func cacheScope(store repositories.Store) string {
	if _, ok := store.(*repositories.MemoryStore); ok {
		return uuid.NewString()
	}
	return ""
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	productCtrl := controllers.NewProductController(
		services.NewProductService(deps.Store), deps.Cache, cacheScope(deps.Store), deps.CacheTTL, deps.Uploader,
	)
	cartCtrl := controllers.NewCartController(services.NewCartService(deps.Store))
	favoriteCtrl := controllers.NewFavoriteController(services.NewFavoriteService(deps.Store))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	api := router.Group("/api")
	{
		api.GET("/products", productCtrl.GetAllProducts)
		api.GET("/products/:id", productCtrl.GetProductByID)
		api.POST("/products", productCtrl.CreateProduct)
		api.DELETE("/products/:id", productCtrl.DeleteProduct)
		api.GET("/categories", productCtrl.GetAllCategories)

		api.GET("/cart", cartCtrl.GetCart)
		api.GET("/cart/summary", cartCtrl.GetSummary)
		api.POST("/cart", cartCtrl.AddToCart)
		api.PUT("/cart/:productId", cartCtrl.UpdateQuantity)
		api.DELETE("/cart/:productId", cartCtrl.RemoveFromCart)
		api.DELETE("/cart", cartCtrl.ClearCart)

		api.GET("/favorites", favoriteCtrl.GetFavorites)
		api.POST("/favorites", favoriteCtrl.AddToFavorites)
		api.DELETE("/favorites/:productId", favoriteCtrl.RemoveFromFavorites)
	}

	if deps.UploadDir != "" {
		router.Static("/uploads", deps.UploadDir)
	}
}
