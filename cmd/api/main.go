package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"smart-daily-planner/config"
	_ "smart-daily-planner/docs" // Swagger docs
	calRepo "smart-daily-planner/internal/calendar/repository"
	calGoogle "smart-daily-planner/internal/calendar/repository/google"
	calMock "smart-daily-planner/internal/calendar/repository/mockfile"
	calUC "smart-daily-planner/internal/calendar/usecase"
	emailRepo "smart-daily-planner/internal/email/repository"
	emailGmail "smart-daily-planner/internal/email/repository/gmail"
	emailMock "smart-daily-planner/internal/email/repository/mockfile"
	emailUC "smart-daily-planner/internal/email/usecase"
	"smart-daily-planner/internal/httpserver"
	"smart-daily-planner/internal/middleware"
	planHTTP "smart-daily-planner/internal/plan/delivery/http"
	planUC "smart-daily-planner/internal/plan/usecase"
	recRepo "smart-daily-planner/internal/recommendation/repository"
	recUC "smart-daily-planner/internal/recommendation/usecase"
	"smart-daily-planner/pkg/gcalendar"
	"smart-daily-planner/pkg/gmail"
	"smart-daily-planner/pkg/gmaps"
	"smart-daily-planner/pkg/log"
	"smart-daily-planner/pkg/openweather"
)

// @title       Smart Daily Planner API
// @description Consolidates calendar events, email tasks and contextual recommendations into one daily plan.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Smart Daily Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Calendar source
	var eventRepo calRepo.EventRepository
	if cfg.MockData.Enabled {
		logger.Infof(ctx, "Calendar source: mock file %s", cfg.MockData.CalendarPath)
		eventRepo = calMock.New(logger, cfg.MockData.CalendarPath)
	} else {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.Google.CredentialsPath)
		if calErr != nil {
			logger.Errorf(ctx, "Google Calendar not available: %v", calErr)
			logger.Error(ctx, "→ Run `go run scripts/google-auth/main.go` to generate token.json")
			return
		}
		logger.Info(ctx, "Calendar source: Google Calendar")
		eventRepo = calGoogle.New(logger, calendarClient, cfg.Google.CalendarID)
	}
	calendarUsecase := calUC.New(logger, eventRepo)

	// 4. Email source
	var mailRepo emailRepo.EmailRepository
	if cfg.MockData.Enabled {
		logger.Infof(ctx, "Email source: mock file %s", cfg.MockData.EmailPath)
		mailRepo = emailMock.New(logger, cfg.MockData.EmailPath)
	} else {
		gmailClient, gmErr := gmail.NewClientFromCredentialsFile(ctx, cfg.Google.CredentialsPath)
		if gmErr != nil {
			logger.Errorf(ctx, "Gmail not available: %v", gmErr)
			return
		}
		logger.Info(ctx, "Email source: Gmail")
		mailRepo = emailGmail.New(logger, gmailClient)
	}
	emailUsecase := emailUC.New(logger, mailRepo, cfg.Planner.EmailLimit)

	// 5. Contextual recommendations (each provider is optional)
	var weatherRepo recRepo.WeatherRepository
	if cfg.OpenWeather.APIKey != "" {
		weatherRepo = openweather.NewClient(cfg.OpenWeather.APIKey)
	} else {
		logger.Warn(ctx, "OpenWeather API key not configured, weather recommendations disabled")
	}
	var trafficRepo recRepo.TrafficRepository
	if cfg.GoogleMaps.APIKey != "" {
		trafficRepo = gmaps.NewClient(cfg.GoogleMaps.APIKey)
	} else {
		logger.Warn(ctx, "Google Maps API key not configured, traffic recommendations disabled")
	}
	recUsecase := recUC.New(logger, recUC.Config{
		HomeLocation: cfg.Planner.HomeLocation,
		WorkLocation: cfg.Planner.WorkLocation,
	}, weatherRepo, trafficRepo)

	// 6. Plan engine
	planUsecase := planUC.New(logger, planUC.Config{
		CommuteHour: cfg.Planner.CommuteHour,
	}, calendarUsecase, emailUsecase, recUsecase)

	// 7. HTTP Server
	planHandler := planHTTP.New(logger, planUsecase)
	mw := middleware.New(logger, cfg.Planner.RateLimitPerMin)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		PlanHandler: planHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
