package main

import (
	"fmt"
	"log"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func setupRouter(cfg *config.Config, cache *services.CatalogCache) *gin.Engine {
	router := gin.New()

	// Initialize repositories against the injected client
	articlesRepo := repository.GetArticlesRepo(utils.MongoClient, cfg.MongoDB)
	techniquesRepo := repository.GetTechniquesRepo(utils.MongoClient, cfg.MongoDB)
	toolsRepo := repository.GetToolsRepo(utils.MongoClient, cfg.MongoDB)
	resourcesRepo := repository.GetResourcesRepo(utils.MongoClient, cfg.MongoDB)

	// Initialize services
	articlesService := &usecase.ArticlesService{
		ArticlesRepo: articlesRepo,
		Cache:        cache,
	}
	techniquesService := &usecase.TechniquesService{
		TechniquesRepo: techniquesRepo,
		Cache:          cache,
	}
	toolsService := &usecase.ToolsService{
		ToolsRepo: toolsRepo,
		Cache:     cache,
	}
	resourcesService := &usecase.ResourcesService{
		ResourcesRepo: resourcesRepo,
		Cache:         cache,
	}

	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestSizeLimiter(cfg.MaxRequestBody))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			handler.HealthHandler(c, utils.MongoClient)
		})

		articles := api.Group("/articles")
		{
			articles.GET("", middleware.CacheControlMiddleware("60"), func(c *gin.Context) {
				handler.GetArticlesHandler(c, articlesService)
			})
			articles.GET("/slug/:slug", func(c *gin.Context) {
				handler.GetArticleBySlugHandler(c, articlesService)
			})
			articles.GET("/:id", func(c *gin.Context) {
				handler.GetArticleHandler(c, articlesService)
			})
			articles.POST("", func(c *gin.Context) {
				handler.CreateArticleHandler(c, articlesService)
			})
			articles.PUT("/:id", func(c *gin.Context) {
				handler.UpdateArticleHandler(c, articlesService)
			})
			articles.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteArticleHandler(c, articlesService)
			})
		}

		techniques := api.Group("/techniques")
		{
			techniques.GET("", middleware.CacheControlMiddleware("60"), func(c *gin.Context) {
				handler.GetTechniquesHandler(c, techniquesService)
			})
			techniques.GET("/slug/:slug", func(c *gin.Context) {
				handler.GetTechniqueBySlugHandler(c, techniquesService)
			})
			techniques.GET("/:id", func(c *gin.Context) {
				handler.GetTechniqueCategoryHandler(c, techniquesService)
			})
			techniques.POST("", func(c *gin.Context) {
				handler.CreateTechniqueCategoryHandler(c, techniquesService)
			})
			techniques.POST("/:id/entries", func(c *gin.Context) {
				handler.AddTechniqueEntryHandler(c, techniquesService)
			})
			techniques.DELETE("/entries/:entryId", func(c *gin.Context) {
				handler.RemoveTechniqueEntryHandler(c, techniquesService)
			})
			techniques.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteTechniqueCategoryHandler(c, techniquesService)
			})
		}

		tools := api.Group("/tools")
		{
			tools.GET("", middleware.CacheControlMiddleware("60"), func(c *gin.Context) {
				handler.GetToolsHandler(c, toolsService)
			})
			tools.GET("/slug/:slug", func(c *gin.Context) {
				handler.GetToolBySlugHandler(c, toolsService)
			})
			tools.GET("/:id", func(c *gin.Context) {
				handler.GetToolHandler(c, toolsService)
			})
			tools.POST("", func(c *gin.Context) {
				handler.CreateToolHandler(c, toolsService)
			})
			tools.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteToolHandler(c, toolsService)
			})
		}

		resources := api.Group("/resources")
		{
			resources.GET("", func(c *gin.Context) {
				handler.GetResourcesHandler(c, resourcesService)
			})
			resources.GET("/:id", func(c *gin.Context) {
				handler.GetResourceHandler(c, resourcesService)
			})
			resources.POST("", func(c *gin.Context) {
				handler.CreateResourceHandler(c, resourcesService)
			})
			resources.PUT("/:id", func(c *gin.Context) {
				handler.UpdateResourceHandler(c, resourcesService)
			})
			resources.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteResourceHandler(c, resourcesService)
			})
		}
	}

	return router
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	utils.InitLogger()
	defer utils.Logger.Sync()

	gin.SetMode(utils.GetEnvAsString("GIN_MODE", gin.ReleaseMode))

	utils.InitValidator()
	utils.InitMongoClient(cfg)

	if err := repository.SetupIndexes(utils.MongoClient.Database(cfg.MongoDB)); err != nil {
		utils.Logger.Fatal("Failed to set up indexes", zap.Error(err))
	}

	// Catalog cache is optional; run without it when Redis is not configured.
	var cache *services.CatalogCache
	if cfg.RedisURL != "" {
		cache, err = services.NewCatalogCache(cfg.RedisURL, cfg.CatalogCacheTTL)
		if err != nil {
			utils.Logger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		utils.Logger.Info("Catalog cache enabled", zap.Duration("ttl", cfg.CatalogCacheTTL))
	}

	router := setupRouter(cfg, cache)

	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	utils.Logger.Info("Server starting", zap.String("addr", serverAddr))
	if err := router.Run(serverAddr); err != nil {
		utils.Logger.Fatal("Failed to start server", zap.Error(err))
	}
}
