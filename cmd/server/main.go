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

	"github.com/dotblog/internal/config"
	"github.com/dotblog/internal/db"
	"github.com/dotblog/internal/handler"
	"github.com/dotblog/internal/logging"
	"github.com/dotblog/internal/router"
	"github.com/dotblog/internal/token"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logging.New(cfg.LogLevel, cfg.IsRelease())
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	gdb, err := db.Init(db.Options{
		Driver:   cfg.DBDriver,
		Path:     cfg.DatabasePath,
		DSN:      cfg.DatabaseDSN,
		LogLevel: gormLogLevel(cfg),
	})
	if err != nil {
		zlog.Fatal("failed to initialize database", zap.Error(err))
	}

	api := handler.NewAPI(gdb, token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL), zlog)

	if cfg.AdminPassword == "" {
		zlog.Warn("ADMIN_PASSWORD is empty, skipping default admin seeding")
	} else if created, err := api.Auth().SeedDefaultAdmin(cfg.AdminUsername, cfg.AdminPassword); err != nil {
		zlog.Fatal("failed to seed default admin", zap.Error(err))
	} else if created {
		zlog.Info("default admin created", zap.String("username", cfg.AdminUsername))
	}

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router.SetupRouter(api, router.Options{AllowedOrigins: cfg.AllowedOrigins, Logger: zlog}),
	}

	go func() {
		zlog.Info("server starting", zap.String("addr", srv.Addr), zap.String("db_driver", cfg.DBDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("forced shutdown", zap.Error(err))
	}

	if sqlDB, err := gdb.DB(); err == nil {
		sqlDB.Close()
	}
	zlog.Info("server exited")
}

// debug 级别下打印 SQL，其余只记录慢查询和错误
func gormLogLevel(cfg config.AppConfig) logger.LogLevel {
	if cfg.LogLevel == "debug" {
		return logger.Info
	}
	return logger.Warn
}
