package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marketboost/core/internal/middleware"
	"github.com/marketboost/core/internal/modules/cms/feature"
	"github.com/marketboost/core/internal/modules/cms/hero"
	"github.com/marketboost/core/internal/modules/cms/pricing"
	"github.com/marketboost/core/internal/modules/cms/testimonial"
	"github.com/marketboost/core/internal/modules/contact"
	"github.com/marketboost/core/internal/pkg/limiter"
	pkgredis "github.com/marketboost/core/internal/pkg/redis"
	"github.com/marketboost/core/internal/pkg/response"
	"github.com/redis/go-redis/v9"
)

func (a *App) registerRoutes(rc *pkgredis.Client, win *limiter.Window) {
	r := a.router

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "not found")
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	appInfo := gin.H{
		"name":    "marketboost-core",
		"version": "1.0.0",
	}

	// The rate limiter guards every API-prefixed path; traffic outside
	// /api is never counted.
	var rdb *redis.Client
	if rc != nil {
		rdb = rc.Raw()
	}
	api := r.Group("/api")
	api.Use(middleware.RateLimit(rdb, win, a.cfg.RateLimit.Max, a.cfg.RateLimit.Window.Std(), a.logger))

	api.GET("/info", func(c *gin.Context) { c.JSON(http.StatusOK, appInfo) })
	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"data": "pong"}) })

	contact.NewHandler(a.st).RegisterRoutes(api)

	cms := api.Group("/cms")
	hero.NewHandler(a.st).RegisterRoutes(cms)
	feature.NewHandler(a.st).RegisterRoutes(cms)
	testimonial.NewHandler(a.st).RegisterRoutes(cms)
	pricing.NewHandler(a.st).RegisterRoutes(cms)
}
