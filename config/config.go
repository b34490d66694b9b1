package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Planning policy
	Planner PlannerConfig

	// Data sources
	MockData    MockDataConfig
	Google      GoogleConfig
	OpenWeather OpenWeatherConfig
	GoogleMaps  GoogleMapsConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PlannerConfig carries the planning policy knobs.
type PlannerConfig struct {
	CommuteHour     int
	HomeLocation    string // "lat,lon"
	WorkLocation    string // "lat,lon"
	EmailLimit      int
	RateLimitPerMin int
}

// MockDataConfig points the planner at JSON fixtures instead of live Google
// APIs. Useful for local runs without credentials.
type MockDataConfig struct {
	Enabled      bool
	CalendarPath string
	EmailPath    string
}

type GoogleConfig struct {
	CredentialsPath string
	CalendarID      string
}

type OpenWeatherConfig struct {
	APIKey string
}

type GoogleMapsConfig struct {
	APIKey string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Planning policy
	cfg.Planner.CommuteHour = viper.GetInt("planner.commute_hour")
	cfg.Planner.HomeLocation = viper.GetString("planner.home_location")
	cfg.Planner.WorkLocation = viper.GetString("planner.work_location")
	cfg.Planner.EmailLimit = viper.GetInt("planner.email_limit")
	cfg.Planner.RateLimitPerMin = viper.GetInt("planner.rate_limit_per_min")

	// Mock data fixtures
	cfg.MockData.Enabled = viper.GetBool("mock_data.enabled")
	cfg.MockData.CalendarPath = viper.GetString("mock_data.calendar_path")
	cfg.MockData.EmailPath = viper.GetString("mock_data.email_path")

	// Google Calendar & Gmail
	cfg.Google.CredentialsPath = viper.GetString("google.credentials_path")
	cfg.Google.CalendarID = viper.GetString("google.calendar_id")
	if googleCreds := viper.GetString("google_credentials"); googleCreds != "" {
		cfg.Google.CredentialsPath = googleCreds
	}

	// Weather & traffic providers
	cfg.OpenWeather.APIKey = viper.GetString("openweather.api_key")
	if owKey := viper.GetString("openweather_api_key"); owKey != "" {
		cfg.OpenWeather.APIKey = owKey
	}
	cfg.GoogleMaps.APIKey = viper.GetString("google_maps.api_key")
	if gmKey := viper.GetString("google_maps_api_key"); gmKey != "" {
		cfg.GoogleMaps.APIKey = gmKey
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("planner.commute_hour", 8)
	viper.SetDefault("planner.email_limit", 20)
	viper.SetDefault("planner.rate_limit_per_min", 60)
	viper.SetDefault("mock_data.enabled", true)
	viper.SetDefault("mock_data.calendar_path", "mock_data/calendar.json")
	viper.SetDefault("mock_data.email_path", "mock_data/emails.json")
	viper.SetDefault("google.calendar_id", "primary")
}
