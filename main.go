package main

import (
	"context"
	"log"
	"os"

	"storefront/config"
	_ "storefront/docs"
	"storefront/libs"
	"storefront/middleware"
	"storefront/models"
	"storefront/repositories"
	"storefront/routes"

	"github.com/gin-gonic/gin"
)

// @title Storefront API
// @version 1.0
// @description Product catalog, cart and favorites.
// @BasePath /api
func main() {
	cfg := config.LoadConfig()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	store, closeStore, err := repositories.NewStore(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize %s store: %v", cfg.StorageDriver, err)
	}
	defer closeStore()

	cache := models.NewRedisClient(cfg.RedisURL, cfg.RedisAddr, cfg.RedisPassword)
	if cache != nil {
		defer cache.Close()
	}

	if err := os.MkdirAll(cfg.UploadDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg.OriginURL))
	routes.SetupRoutes(router, routes.Dependencies{
		Store:     store,
		Cache:     cache,
		CacheTTL:  cfg.ProductCacheTTL,
		Uploader:  libs.NewImageUploader(cfg),
		UploadDir: cfg.UploadDir,
	})

	port := ":" + cfg.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", cfg.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
