package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/marketboost/core/internal/config"
	"github.com/marketboost/core/internal/middleware"
	"github.com/marketboost/core/internal/pkg/limiter"
	pkgredis "github.com/marketboost/core/internal/pkg/redis"
	"github.com/marketboost/core/internal/seed"
	"github.com/marketboost/core/internal/store"
	"github.com/marketboost/core/internal/store/memory"
	"github.com/marketboost/core/internal/store/mongodb"
	"github.com/marketboost/core/internal/store/mysql"
	"go.uber.org/zap"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	st     store.Store
	logger *zap.Logger
	cancel context.CancelFunc
}

// New wires the full application: it opens the content store, connects
// Redis when configured, registers routes, and seeds default content.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	st, err := openStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	var rc *pkgredis.Client
	if cfg.RedisURL != "" {
		rc, err = pkgredis.Connect(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("redis: %w", err)
		}
		logger.Info("rate limit window backed by redis")
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.Use(cors.New(corsConfig(cfg)))

	ctx, cancel := context.WithCancel(context.Background())

	win := limiter.New(cfg.RateLimit.Max, cfg.RateLimit.Window.Std())
	win.StartJanitor(ctx, cfg.RateLimit.Window.Std())

	app := &App{cfg: cfg, router: router, st: st, logger: logger, cancel: cancel}
	app.registerRoutes(rc, win)

	seedCtx, seedCancel := context.WithTimeout(ctx, 30*time.Second)
	defer seedCancel()
	seed.Run(seedCtx, st, logger)

	return app, nil
}

// openStore picks the backend by configuration presence: MySQL DSN first,
// then Mongo URI, then the in-memory store.
func openStore(cfg *config.AppConfig, logger *zap.Logger) (store.Store, error) {
	switch {
	case cfg.DSN != "":
		st, err := mysql.Connect(cfg.DSN, cfg.IsDev())
		if err != nil {
			return nil, fmt.Errorf("mysql: %w", err)
		}
		logger.Info("content store: mysql")
		return st, nil
	case cfg.MongoURI != "":
		st, err := mongodb.Connect(context.Background(), cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, fmt.Errorf("mongodb: %w", err)
		}
		logger.Info("content store: mongodb", zap.String("database", cfg.MongoDatabase))
		return st, nil
	default:
		logger.Info("content store: in-memory (no connection string configured)")
		return memory.New(), nil
	}
}

func corsConfig(cfg *config.AppConfig) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Retry-After"},
		AllowCredentials: true,
	}
	if len(cfg.AllowedOrigins) > 0 && !cfg.IsDev() {
		patterns := cfg.AllowedOrigins
		c.AllowOriginFunc = func(origin string) bool {
			host := extractOriginHost(origin)
			for _, pattern := range patterns {
				if matchOriginPattern(pattern, host) {
					return true
				}
			}
			return false
		}
	} else {
		c.AllowOriginFunc = func(origin string) bool { return true }
	}
	return c
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// Shutdown cleans up background goroutines.
func (a *App) Shutdown() { a.cancel() }
