package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jengzang/voyager-backend-go/internal/config"
	"github.com/jengzang/voyager-backend-go/internal/handler"
	"github.com/jengzang/voyager-backend-go/internal/middleware"
)

// Handlers 路由依赖的处理器
type Handlers struct {
	Trips   *handler.TripHandler
	Audit   *handler.AuditHandler
	Limiter *middleware.RateLimiter // 生成接口限流, nil 表示不限流
}

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	// CORS 中间件
	r.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Voyager Backend API is running",
		})
	})

	// 转发接口与生成接口共用同一个限流器, 但错误体格式不同
	limit := func(c *gin.Context) { c.Next() }
	limitForward := limit
	if h.Limiter != nil {
		limit = middleware.RateLimit(h.Limiter, middleware.EnvelopeRejection)
		limitForward = middleware.RateLimit(h.Limiter, middleware.ErrorRejection)
	}

	// 旧版前端直接调用的转发接口
	r.POST("/api/trip", limitForward, h.Trips.Forward)

	// API 路由组
	api := r.Group("/api/v1")
	{
		// 行程接口
		trips := api.Group("/trips")
		{
			trips.POST("/generate", limit, h.Trips.Generate)
			trips.POST("/replan", h.Trips.Replan)
			trips.POST("/day-view", h.Trips.DayView)
		}

		api.GET("/presets", h.Trips.GetPresets)

		// 审计日志
		api.GET("/generations", h.Audit.GetGenerations)
		api.GET("/generations/stats", h.Audit.GetGenerationStats)
		api.GET("/replans", h.Audit.GetReplans)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}

	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}

	cfg.AllowOrigins = origins
	return cfg
}
