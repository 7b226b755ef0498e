package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/davidly-empire/security-verifier-server/config"
	"github.com/davidly-empire/security-verifier-server/internal/api/handler"
	"github.com/davidly-empire/security-verifier-server/internal/api/router"
	"github.com/davidly-empire/security-verifier-server/internal/repository"
	"github.com/davidly-empire/security-verifier-server/internal/service"
	"github.com/davidly-empire/security-verifier-server/pkg/database"
	"github.com/davidly-empire/security-verifier-server/pkg/jwt"
	applogger "github.com/davidly-empire/security-verifier-server/pkg/logger"
	"github.com/davidly-empire/security-verifier-server/pkg/redis"
)

func main() {
	// 1. load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// 2. logging
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting patrol verification server",
		zap.Int("port", cfg.Server.Port),
		zap.String("site_timezone", cfg.Patrol.SiteTimezone),
	)

	// 3. database
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	// 3.1 run embedded migrations
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("unwrap sql.DB failed", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("database migration failed", zap.Error(err))
	}

	// 4. redis (optional: the server degrades without blacklist and cache)
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis unavailable, token blacklist and report cache disabled", zap.Error(err))
		rdb = nil
	}

	// 5. JWT manager
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 6. dependency wiring: repository → service → handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, logger)
	h := handler.NewHandler(svc, logger)

	// 7. routes
	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// 8. HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	// 9. wait for termination signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutdown signal received", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}

	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("server stopped")
}
