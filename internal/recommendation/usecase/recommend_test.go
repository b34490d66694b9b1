package usecase_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"smart-daily-planner/internal/model"
	"smart-daily-planner/internal/recommendation"
	"smart-daily-planner/internal/recommendation/usecase"
	"smart-daily-planner/pkg/gmaps"
	"smart-daily-planner/pkg/openweather"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type fixture struct {
	uc              recommendation.UseCase
	weatherRequests *atomic.Int64
	trafficRequests *atomic.Int64
	lastDestination *atomic.Value
}

func mustDate(t *testing.T, s string) model.Date {
	t.Helper()
	d, err := model.ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

// newFixture spins up fake weather and directions backends and wires real
// clients against them.
func newFixture(t *testing.T, weatherFails bool, trafficDelaySeconds int) fixture {
	t.Helper()

	var weatherRequests, trafficRequests atomic.Int64
	var lastDestination atomic.Value

	weatherSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		weatherRequests.Add(1)
		if weatherFails {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{
			"weather": [{"main": "Rain", "description": "light rain"}],
			"main": {"temp": 12.5, "feels_like": 11.0, "humidity": 80},
			"dt": 1741600800,
			"name": "New York"
		}`))
	}))
	t.Cleanup(weatherSrv.Close)

	trafficSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		trafficRequests.Add(1)
		lastDestination.Store(r.URL.Query().Get("destination"))
		fmt.Fprintf(w, `{
			"status": "OK",
			"routes": [{
				"summary": "I-280 N",
				"legs": [{
					"duration": {"value": 1800},
					"duration_in_traffic": {"value": %d}
				}]
			}]
		}`, 1800+trafficDelaySeconds)
	}))
	t.Cleanup(trafficSrv.Close)

	weatherClient := openweather.NewClient("test-key")
	weatherClient.SetAPIURL(weatherSrv.URL)
	trafficClient := gmaps.NewClient("test-key")
	trafficClient.SetAPIURL(trafficSrv.URL)

	uc := usecase.New(&mockLogger{}, usecase.Config{
		HomeLocation: "40.7128,-74.0060",
		WorkLocation: "40.7484,-73.9857",
		RetryWait:    time.Millisecond,
	}, weatherClient, trafficClient)

	return fixture{
		uc:              uc,
		weatherRequests: &weatherRequests,
		trafficRequests: &trafficRequests,
		lastDestination: &lastDestination,
	}
}

func commuteEvent(location string) model.RawEvent {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	return model.RawEvent{
		Start:    start,
		End:      start.Add(time.Hour),
		Summary:  "Client meeting",
		Location: location,
	}
}

func TestRecommendationsWeatherAndTraffic(t *testing.T) {
	fx := newFixture(t, false, 20*60)
	date := mustDate(t, "2025-03-10")

	recs, err := fx.uc.Recommendations(context.Background(), date, []model.RawEvent{
		commuteEvent("40.7580,-73.9855"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}

	weather, ok := recs[0].Detail.(model.WeatherDetail)
	if !ok {
		t.Fatalf("expected weather detail first, got %T", recs[0].Detail)
	}
	if recs[0].Kind != model.RecommendationWeather || recs[0].ImpactLabel != model.ImpactMorning {
		t.Errorf("unexpected weather record: kind=%s impact=%s", recs[0].Kind, recs[0].ImpactLabel)
	}
	if !strings.Contains(weather.Description, "bring an umbrella") {
		t.Errorf("rainy conditions should carry an umbrella hint, got %q", weather.Description)
	}
	if weather.TemperatureCelsius == nil || *weather.TemperatureCelsius != 12.5 {
		t.Errorf("unexpected temperature: %v", weather.TemperatureCelsius)
	}

	traffic, ok := recs[1].Detail.(model.TrafficDetail)
	if !ok {
		t.Fatalf("expected traffic detail second, got %T", recs[1].Detail)
	}
	if recs[1].Kind != model.RecommendationTraffic || recs[1].ImpactLabel != model.ImpactCommute {
		t.Errorf("unexpected traffic record: kind=%s impact=%s", recs[1].Kind, recs[1].ImpactLabel)
	}
	if traffic.DelayMinutes != 20 {
		t.Errorf("expected 20 minute delay, got %d", traffic.DelayMinutes)
	}
	if traffic.Condition != model.TrafficHeavy {
		t.Errorf("expected heavy traffic, got %s", traffic.Condition)
	}
	if traffic.Recommendation == "" {
		t.Error("expected a leave-earlier recommendation")
	}
}

func TestRecommendationsLightTrafficSkipped(t *testing.T) {
	fx := newFixture(t, false, 2*60)
	date := mustDate(t, "2025-03-10")

	recs, err := fx.uc.Recommendations(context.Background(), date, []model.RawEvent{
		commuteEvent("40.7580,-73.9855"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected only the weather recommendation, got %d records", len(recs))
	}
	if recs[0].Kind != model.RecommendationWeather {
		t.Errorf("expected weather record, got %s", recs[0].Kind)
	}
}

func TestRecommendationsNoCommuteEvent(t *testing.T) {
	fx := newFixture(t, false, 20*60)
	date := mustDate(t, "2025-03-10")

	afternoon := commuteEvent("40.7580,-73.9855")
	afternoon.Start = time.Date(2025, 3, 10, 14, 0, 0, 0, time.Local)
	noLocation := commuteEvent("")

	recs, err := fx.uc.Recommendations(context.Background(), date, []model.RawEvent{afternoon, noLocation})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 || recs[0].Kind != model.RecommendationWeather {
		t.Fatalf("expected only the weather recommendation, got %v", recs)
	}
	if fx.trafficRequests.Load() != 0 {
		t.Errorf("directions should not be called without a commute event")
	}
}

func TestRecommendationsWeatherFailureDegrades(t *testing.T) {
	fx := newFixture(t, true, 20*60)
	date := mustDate(t, "2025-03-10")

	recs, err := fx.uc.Recommendations(context.Background(), date, []model.RawEvent{
		commuteEvent("40.7580,-73.9855"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 || recs[0].Kind != model.RecommendationTraffic {
		t.Fatalf("expected only the traffic recommendation, got %v", recs)
	}
	if got := fx.weatherRequests.Load(); got != 3 {
		t.Errorf("expected 3 weather attempts, got %d", got)
	}
}

func TestRecommendationsWorkLocationFallback(t *testing.T) {
	fx := newFixture(t, false, 20*60)
	date := mustDate(t, "2025-03-10")

	if _, err := fx.uc.Recommendations(context.Background(), date, []model.RawEvent{
		commuteEvent("Conference Room B, Downtown Office"),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := fx.lastDestination.Load(); got != "40.7484,-73.9857" {
		t.Errorf("expected fallback to the work location, got %v", got)
	}
}

func TestRecommendationsCaching(t *testing.T) {
	fx := newFixture(t, false, 20*60)
	date := mustDate(t, "2025-03-10")
	events := []model.RawEvent{commuteEvent("40.7580,-73.9855")}

	for i := 0; i < 3; i++ {
		if _, err := fx.uc.Recommendations(context.Background(), date, events); err != nil {
			t.Fatalf("unexpected error on run %d: %v", i, err)
		}
	}

	if got := fx.weatherRequests.Load(); got != 1 {
		t.Errorf("expected 1 weather request across runs, got %d", got)
	}
	if got := fx.trafficRequests.Load(); got != 1 {
		t.Errorf("expected 1 directions request across runs, got %d", got)
	}
}
