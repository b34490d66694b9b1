package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"smart-daily-planner/internal/model"
	"smart-daily-planner/internal/recommendation"
	"smart-daily-planner/pkg/gmaps"
	"smart-daily-planner/pkg/openweather"
)

// Commute window: traffic is only checked for the first event starting
// between these hours.
const (
	commuteWindowStartHour = 8
	commuteWindowEndHour   = 12
)

// umbrellaConditions are the OpenWeatherMap main groups that warrant packing
// an umbrella.
var umbrellaConditions = map[string]bool{
	"Rain":         true,
	"Drizzle":      true,
	"Snow":         true,
	"Thunderstorm": true,
}

// Recommendations builds the weather and traffic recommendations for a date.
// Each lookup degrades independently: a failed or unavailable source is
// logged and its recommendation skipped.
func (uc *implUseCase) Recommendations(ctx context.Context, date model.Date, events []model.RawEvent) ([]model.RawRecommendation, error) {
	recs := make([]model.RawRecommendation, 0, 2)

	if weather, err := uc.morningWeather(ctx); err != nil {
		uc.l.Warnf(ctx, "recommendation: weather lookup skipped: %v", err)
	} else {
		recs = append(recs, model.RawRecommendation{
			Kind:        model.RecommendationWeather,
			Detail:      weather,
			ImpactLabel: model.ImpactMorning,
		})
	}

	if event, ok := firstCommuteEvent(events); ok {
		traffic, err := uc.commuteTraffic(ctx, event)
		switch {
		case err != nil:
			uc.l.Warnf(ctx, "recommendation: traffic lookup skipped: %v", err)
		case traffic.Condition == model.TrafficLight:
			uc.l.Debugf(ctx, "recommendation: traffic light on route to %q, nothing to flag", event.Summary)
		default:
			recs = append(recs, model.RawRecommendation{
				Kind:        model.RecommendationTraffic,
				Detail:      traffic,
				ImpactLabel: model.ImpactCommute,
			})
		}
	}

	uc.l.Infof(ctx, "recommendation: produced %d recommendations for %s", len(recs), date)
	return recs, nil
}

// morningWeather fetches the current conditions at the home location,
// caching results for the cache TTL.
func (uc *implUseCase) morningWeather(ctx context.Context) (model.WeatherDetail, error) {
	if uc.weather == nil {
		return model.WeatherDetail{}, fmt.Errorf("no weather source configured")
	}

	lat, lon, err := parseLatLon(uc.cfg.HomeLocation)
	if err != nil {
		return model.WeatherDetail{}, fmt.Errorf("home location: %w", err)
	}

	key := uc.cfg.HomeLocation
	if cached, ok := uc.weatherCache.Get(key); ok {
		return cached, nil
	}

	conditions, err := retry(ctx, retryAttempts, uc.cfg.RetryWait, func() (*openweather.CurrentConditions, error) {
		return uc.weather.CurrentWeather(ctx, lat, lon)
	})
	if err != nil {
		return model.WeatherDetail{}, fmt.Errorf("current weather: %w", err)
	}

	description := conditions.Weather[0].Description
	if umbrellaConditions[conditions.Weather[0].Main] {
		description += "; bring an umbrella"
	}

	temp := conditions.Main.Temp
	observed := time.Unix(conditions.Dt, 0)
	detail := model.WeatherDetail{
		Description:        description,
		TemperatureCelsius: &temp,
		Location:           conditions.Name,
		ObservedAt:         &observed,
	}

	uc.weatherCache.Add(key, detail)
	return detail, nil
}

// parseLatLon splits a "lat,lon" string into coordinates.
func parseLatLon(s string) (float64, float64, error) {
	rawLat, rawLon, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", recommendation.ErrInvalidLocation, s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(rawLat), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", recommendation.ErrInvalidLocation, s)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(rawLon), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", recommendation.ErrInvalidLocation, s)
	}
	return lat, lon, nil
}

// firstCommuteEvent returns the earliest event starting inside the commute
// window that has a destination.
func firstCommuteEvent(events []model.RawEvent) (model.RawEvent, bool) {
	for _, e := range events {
		if e.Start.IsZero() || e.Location == "" {
			continue
		}
		hour := e.Start.Hour()
		if hour >= commuteWindowStartHour && hour < commuteWindowEndHour {
			return e, true
		}
	}
	return model.RawEvent{}, false
}

// commuteTraffic fetches the home-to-event route and grades its delay.
func (uc *implUseCase) commuteTraffic(ctx context.Context, event model.RawEvent) (model.TrafficDetail, error) {
	if uc.traffic == nil {
		return model.TrafficDetail{}, fmt.Errorf("no traffic source configured")
	}

	destination := event.Location
	if _, _, err := parseLatLon(destination); err != nil {
		destination = uc.cfg.WorkLocation
	}

	key := uc.cfg.HomeLocation + "|" + destination
	if cached, ok := uc.trafficCache.Get(key); ok {
		return cached, nil
	}

	route, err := retry(ctx, retryAttempts, uc.cfg.RetryWait, func() (*gmaps.Route, error) {
		return uc.traffic.Directions(ctx, gmaps.DirectionsRequest{
			Origin:      uc.cfg.HomeLocation,
			Destination: destination,
		})
	})
	if err != nil {
		return model.TrafficDetail{}, fmt.Errorf("directions to %q: %w", event.Summary, err)
	}

	delay := route.DelayMinutes()
	detail := model.TrafficDetail{
		RouteDescription: routeDescription(event.Summary, route.Summary),
		DelayMinutes:     delay,
		Condition:        conditionForDelay(delay),
	}
	if delay > 0 {
		detail.Recommendation = fmt.Sprintf("Leave about %d minutes earlier.", delay)
	}

	uc.trafficCache.Add(key, detail)
	return detail, nil
}

func routeDescription(eventSummary, routeSummary string) string {
	if routeSummary == "" {
		return fmt.Sprintf("Route to %q", eventSummary)
	}
	return fmt.Sprintf("Route to %q via %s", eventSummary, routeSummary)
}

// conditionForDelay grades a traffic delay in minutes.
func conditionForDelay(delay int) model.TrafficCondition {
	switch {
	case delay > 30:
		return model.TrafficSevere
	case delay > 15:
		return model.TrafficHeavy
	case delay > 5:
		return model.TrafficModerate
	default:
		return model.TrafficLight
	}
}

// retry runs fn up to attempts times, pausing between failures. It returns
// early when the context is done.
func retry[T any](ctx context.Context, attempts int, wait time.Duration, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(wait):
			}
		}
		v, err := fn()
		if err == nil {
			return v, nil
		}
		lastErr = err
	}
	return zero, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}
