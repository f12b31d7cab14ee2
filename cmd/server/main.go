package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jengzang/voyager-backend-go/internal/api"
	"github.com/jengzang/voyager-backend-go/internal/config"
	"github.com/jengzang/voyager-backend-go/internal/database"
	"github.com/jengzang/voyager-backend-go/internal/generator"
	"github.com/jengzang/voyager-backend-go/internal/handler"
	"github.com/jengzang/voyager-backend-go/internal/middleware"
	"github.com/jengzang/voyager-backend-go/internal/repository"
	"github.com/jengzang/voyager-backend-go/internal/service"
)

func main() {
	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// 初始化数据库
	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 初始化服务
	client := generator.NewClient(cfg.GeneratorURL, cfg.GeneratorTimeout)
	svc := service.NewTripService(
		client,
		repository.NewGenerationRepository(db),
		repository.NewReplanRepository(db),
	)

	limiter := middleware.NewRateLimiter(cfg.GenerateRateLimit, time.Minute)
	go limiter.Run(ctx.Done())

	// 初始化路由
	router := api.SetupRouter(cfg, api.Handlers{
		Trips:   handler.NewTripHandler(svc),
		Audit:   handler.NewAuditHandler(svc),
		Limiter: limiter,
	})

	// 写超时要覆盖生成器的超时
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: client.Timeout() + 15*time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s (generator %s)", cfg.Port, client.Endpoint())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server:", err)
		}
	}()

	<-ctx.Done()
	log.Printf("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown failed: %v", err)
	}
}
