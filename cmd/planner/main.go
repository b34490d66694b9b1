package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

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
	"smart-daily-planner/internal/model"
	"smart-daily-planner/internal/plan"
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

var (
	flagAPI    bool
	flagOutput string
	flagDebug  bool
)

var rootCmd = &cobra.Command{
	Use:   "planner [date]",
	Short: "Generate the consolidated daily plan",
	Long: `Generates one consolidated daily plan from calendar events, email-derived
tasks and contextual weather/traffic recommendations, and prints it as JSON.

With --api the command serves the plan over HTTP instead of a one-shot run.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if flagDebug {
			cfg.Logger.Level = "debug"
		}

		logger := log.Init(log.ZapConfig{
			Level:        cfg.Logger.Level,
			Mode:         cfg.Logger.Mode,
			Encoding:     cfg.Logger.Encoding,
			ColorEnabled: cfg.Logger.ColorEnabled,
		})

		ctx := cmd.Context()
		uc, err := buildPlanUseCase(ctx, logger, cfg)
		if err != nil {
			return err
		}

		if flagAPI {
			return serveAPI(logger, cfg, uc)
		}

		now := time.Now()
		date := model.NewDate(now.Year(), now.Month(), now.Day())
		if len(args) == 1 {
			date, err = model.ParseDate(args[0])
			if err != nil {
				return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", args[0])
			}
		}

		output, err := uc.Generate(ctx, plan.GenerateInput{Date: date})
		if err != nil {
			return fmt.Errorf("generate plan: %w", err)
		}

		for _, rej := range output.Rejections {
			logger.Warnf(ctx, "skipped %s record %d: %s", rej.Source, rej.Index, rej.Reason)
		}

		data, err := json.MarshalIndent(output.Plan, "", "  ")
		if err != nil {
			return fmt.Errorf("encode plan: %w", err)
		}

		if flagOutput != "" {
			if err := os.WriteFile(flagOutput, append(data, '\n'), 0o644); err != nil {
				return fmt.Errorf("write plan to %s: %w", flagOutput, err)
			}
			logger.Infof(ctx, "plan written to %s", flagOutput)
			return nil
		}

		fmt.Println(string(data))
		return nil
	},
}

// buildPlanUseCase wires the collaborator sources per config: mock fixtures
// when mock data is enabled, live Google APIs otherwise.
func buildPlanUseCase(ctx context.Context, logger log.Logger, cfg *config.Config) (plan.UseCase, error) {
	var eventRepo calRepo.EventRepository
	if cfg.MockData.Enabled {
		eventRepo = calMock.New(logger, cfg.MockData.CalendarPath)
	} else {
		calendarClient, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.Google.CredentialsPath)
		if err != nil {
			return nil, fmt.Errorf("google calendar: %w", err)
		}
		eventRepo = calGoogle.New(logger, calendarClient, cfg.Google.CalendarID)
	}
	calendarUsecase := calUC.New(logger, eventRepo)

	var mailRepo emailRepo.EmailRepository
	if cfg.MockData.Enabled {
		mailRepo = emailMock.New(logger, cfg.MockData.EmailPath)
	} else {
		gmailClient, err := gmail.NewClientFromCredentialsFile(ctx, cfg.Google.CredentialsPath)
		if err != nil {
			return nil, fmt.Errorf("gmail: %w", err)
		}
		mailRepo = emailGmail.New(logger, gmailClient)
	}
	emailUsecase := emailUC.New(logger, mailRepo, cfg.Planner.EmailLimit)

	var weatherRepo recRepo.WeatherRepository
	if cfg.OpenWeather.APIKey != "" {
		weatherRepo = openweather.NewClient(cfg.OpenWeather.APIKey)
	}
	var trafficRepo recRepo.TrafficRepository
	if cfg.GoogleMaps.APIKey != "" {
		trafficRepo = gmaps.NewClient(cfg.GoogleMaps.APIKey)
	}
	recUsecase := recUC.New(logger, recUC.Config{
		HomeLocation: cfg.Planner.HomeLocation,
		WorkLocation: cfg.Planner.WorkLocation,
	}, weatherRepo, trafficRepo)

	return planUC.New(logger, planUC.Config{
		CommuteHour: cfg.Planner.CommuteHour,
	}, calendarUsecase, emailUsecase, recUsecase), nil
}

func serveAPI(logger log.Logger, cfg *config.Config, uc plan.UseCase) error {
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  middleware.New(logger, cfg.Planner.RateLimitPerMin),
		PlanHandler: planHTTP.New(logger, uc),
	})
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}
	return httpServer.Run()
}

func main() {
	rootCmd.Flags().BoolVar(&flagAPI, "api", false, "serve the plan over HTTP instead of a one-shot run")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "write the plan JSON to a file instead of stdout")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
