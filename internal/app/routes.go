package app

import (
	"github.com/egonzalezhe/techflow/internal/auth"
	"github.com/egonzalezhe/techflow/internal/cache"
	"github.com/egonzalezhe/techflow/internal/config"
	"github.com/egonzalezhe/techflow/internal/handlers"
	"github.com/egonzalezhe/techflow/internal/repo"
	"github.com/egonzalezhe/techflow/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))

	sessionStore := auth.NewStore(rdb, cfg.Redis.SessionTTL.Duration())
	accountRepo := repo.NewPGAccountRepo(db)
	authSvc := service.NewAuthService(accountRepo)
	authHandler := handlers.NewAuthHandler(sessionStore, authSvc)

	serviceRepo := repo.NewPGServiceRepo(db)
	catalogCache := cache.NewCatalogCache(rdb, cfg.Redis.CacheTTL.Duration())
	catalogSvc := service.NewCatalogService(serviceRepo, catalogCache)

	catalogHandler := handlers.NewCatalogHandler(catalogSvc)
	r.GET("/", catalogHandler.Home)
	r.GET("/servicios", catalogHandler.List)
	r.GET("/detalle/:id", catalogHandler.Detail)

	r.GET("/login", authHandler.LoginForm)
	r.POST("/login", authHandler.LoginSubmit)
	r.GET("/logout", authHandler.Logout)

	apiHandler := handlers.NewAPIHandler(catalogSvc)
	r.GET("/api/servicios", apiHandler.Services)

	adminHandler := handlers.NewAdminHandler(catalogSvc)
	admin := r.Group("/admin", auth.RequireSession(sessionStore))
	admin.GET("", adminHandler.Dashboard)
	admin.GET("/agregar", adminHandler.AddForm)
	admin.POST("/agregar", adminHandler.AddSubmit)
	admin.GET("/eliminar/:id", adminHandler.Delete)
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}
