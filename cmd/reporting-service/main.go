package main

import (
	"fmt"
	"os"

	"github.com/stevenmunoz/wego-sub001/internal/auth"
	"github.com/stevenmunoz/wego-sub001/internal/config"
	"github.com/stevenmunoz/wego-sub001/internal/db"
	httphandler "github.com/stevenmunoz/wego-sub001/internal/http"
	"github.com/stevenmunoz/wego-sub001/internal/http/middleware"
	"github.com/stevenmunoz/wego-sub001/internal/logger"
	"github.com/stevenmunoz/wego-sub001/internal/repository"
	"github.com/stevenmunoz/wego-sub001/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	database, err := db.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect database")
	}

	rideRepo := repository.NewRideRepository(database)
	financeRepo := repository.NewFinanceRepository(database)
	reportService := service.NewReportService(rideRepo, financeRepo, cfg.Reports.DefaultRangeDays, cfg.Reports.MaxRangeDays)
	importService := service.NewImportService(rideRepo)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)

	handler := httphandler.NewHandler(reportService, importService, appLogger)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLogger.Info().Str("addr", addr).Msg("starting reporting service")

	if err := router.Run(addr); err != nil {
		appLogger.Error().Err(err).Msg("failed to start server")
		os.Exit(1)
	}
}
