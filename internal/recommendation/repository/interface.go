package repository

import (
	"context"

	"smart-daily-planner/pkg/gmaps"
	"smart-daily-planner/pkg/openweather"
)

// WeatherRepository fetches current conditions for a coordinate pair.
// *openweather.Client satisfies it.
type WeatherRepository interface {
	CurrentWeather(ctx context.Context, lat, lon float64) (*openweather.CurrentConditions, error)
}

// TrafficRepository fetches a driving route with a live traffic estimate.
// *gmaps.Client satisfies it.
type TrafficRepository interface {
	Directions(ctx context.Context, req gmaps.DirectionsRequest) (*gmaps.Route, error)
}
