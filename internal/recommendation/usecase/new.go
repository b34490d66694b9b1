package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"smart-daily-planner/internal/model"
	"smart-daily-planner/internal/recommendation/repository"
	pkgLog "smart-daily-planner/pkg/log"
)

const (
	weatherCacheTTL  = 15 * time.Minute
	trafficCacheTTL  = 5 * time.Minute
	cacheSize        = 32
	retryAttempts    = 3
	defaultRetryWait = 2 * time.Second
)

// Config carries the location settings for the recommendation usecase.
type Config struct {
	// HomeLocation is the "lat,lon" pair weather is fetched for and commute
	// routes start from.
	HomeLocation string

	// WorkLocation is the "lat,lon" fallback commute destination for events
	// whose location is not a coordinate pair.
	WorkLocation string

	// RetryWait is the pause between failed lookup attempts. Zero means the
	// default of two seconds.
	RetryWait time.Duration
}

type implUseCase struct {
	l       pkgLog.Logger
	cfg     Config
	weather repository.WeatherRepository
	traffic repository.TrafficRepository

	weatherCache *expirable.LRU[string, model.WeatherDetail]
	trafficCache *expirable.LRU[string, model.TrafficDetail]
}

// New creates a new recommendation UseCase instance.
func New(l pkgLog.Logger, cfg Config, weather repository.WeatherRepository, traffic repository.TrafficRepository) *implUseCase {
	if cfg.RetryWait <= 0 {
		cfg.RetryWait = defaultRetryWait
	}
	return &implUseCase{
		l:            l,
		cfg:          cfg,
		weather:      weather,
		traffic:      traffic,
		weatherCache: expirable.NewLRU[string, model.WeatherDetail](cacheSize, nil, weatherCacheTTL),
		trafficCache: expirable.NewLRU[string, model.TrafficDetail](cacheSize, nil, trafficCacheTTL),
	}
}
