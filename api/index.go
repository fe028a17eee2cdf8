package api

import (
	"context"
	"log"
	"net/http"
	"sync"

	"storefront/config"
	"storefront/libs"
	"storefront/middleware"
	"storefront/models"
	"storefront/repositories"
	"storefront/routes"

	"github.com/gin-gonic/gin"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		cfg := config.FromEnv()

		store, _, err := repositories.NewStore(context.Background(), cfg)
		if err != nil {
			log.Printf("Falling back to memory store: %v", err)
			store = repositories.NewMemoryStore()
			if err := repositories.Seed(context.Background(), store); err != nil {
				log.Printf("Failed to seed catalog: %v", err)
			}
		}

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware(cfg.OriginURL))

		routes.SetupRoutes(router, routes.Dependencies{
			Store:     store,
			Cache:     models.NewRedisClient(cfg.RedisURL, cfg.RedisAddr, cfg.RedisPassword),
			CacheTTL:  cfg.ProductCacheTTL,
			Uploader:  libs.NewImageUploader(cfg),
			UploadDir: cfg.UploadDir,
		})
	})
}

// Handler is the serverless entrypoint. The router and its store live as
// long as the function instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
