// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal services.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	attendanceHandler "hrms/internal/attendance/handler"
	attendanceService "hrms/internal/attendance/service"
	dashboardCache "hrms/internal/dashboard/cache"
	dashboardHandler "hrms/internal/dashboard/handler"
	dashboardService "hrms/internal/dashboard/service"
	employeeHandler "hrms/internal/employee/handler"
	employeeService "hrms/internal/employee/service"
	"hrms/internal/platform/config"
	"hrms/internal/platform/httpserver"
	"hrms/internal/platform/logger"
	"hrms/internal/platform/metrics"
	platformpg "hrms/internal/platform/postgres"
	platformredis "hrms/internal/platform/redis"
	"hrms/internal/store/postgres"
	httptransport "hrms/internal/transport/http"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := platformpg.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Error("database connection failed", "error", err.Error())
		os.Exit(1)
	}
	defer db.Close()

	initCtx, initCancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = platformpg.EnsureSchema(initCtx, db)
	initCancel()
	if err != nil {
		log.Error("schema bootstrap failed", "error", err.Error())
		os.Exit(1)
	}

	store := postgres.New(db)
	m := metrics.New()

	dashboardOpts := []dashboardService.Option{dashboardService.WithLogger(log)}
	if redisClient, err := platformredis.New(cfg.RedisURL); err != nil {
		log.Warn("redis unavailable, dashboard cache runs in-memory", "error", err.Error())
		dashboardOpts = append(dashboardOpts,
			dashboardService.WithCache(dashboardCache.NewInMemory(cfg.StatsCacheTTL)))
	} else if redisClient != nil {
		defer redisClient.Close()
		dashboardOpts = append(dashboardOpts,
			dashboardService.WithCache(dashboardCache.NewRedis(redisClient.Client, cfg.StatsCacheTTL)))
	} else {
		dashboardOpts = append(dashboardOpts,
			dashboardService.WithCache(dashboardCache.NewInMemory(cfg.StatsCacheTTL)))
	}

	employees := employeeService.New(store,
		employeeService.WithLogger(log),
		employeeService.WithMetrics(m),
	)
	attendance := attendanceService.New(store,
		attendanceService.WithLogger(log),
		attendanceService.WithMetrics(m),
	)
	dashboard := dashboardService.New(store, dashboardOpts...)

	router := httptransport.NewRouter(httptransport.Options{
		Logger:         log,
		Metrics:        m,
		AllowedOrigins: cfg.AllowedOrigins,
		Store:          store,
		Handlers: []httptransport.Registrar{
			employeeHandler.New(employees, log),
			attendanceHandler.New(attendance, log),
			dashboardHandler.New(dashboard, log),
		},
	})

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting hrms-lite", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err.Error())
		os.Exit(1)
	}
}
