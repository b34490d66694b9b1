package openweather_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"smart-daily-planner/pkg/openweather"
)

func TestCurrentWeather(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/weather" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		q := r.URL.Query()
		if q.Get("appid") != "test-key" || q.Get("units") != "metric" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if q.Get("lat") == "0" {
			w.Write([]byte(`{"weather": [], "main": {"temp": 0}}`))
			return
		}
		w.Write([]byte(`{
			"weather": [{"main": "Rain", "description": "light rain"}],
			"main": {"temp": 12.5, "feels_like": 11.0, "humidity": 80},
			"dt": 1741600800,
			"name": "New York"
		}`))
	}))
	defer ts.Close()

	client := openweather.NewClient("test-key")
	client.SetAPIURL(ts.URL)

	t.Run("Success", func(t *testing.T) {
		conditions, err := client.CurrentWeather(context.Background(), 40.7128, -74.006)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if conditions.Weather[0].Description != "light rain" {
			t.Errorf("unexpected description: %s", conditions.Weather[0].Description)
		}
		if conditions.Main.Temp != 12.5 {
			t.Errorf("unexpected temperature: %f", conditions.Main.Temp)
		}
		if conditions.Name != "New York" {
			t.Errorf("unexpected location name: %s", conditions.Name)
		}
	})

	t.Run("Empty Conditions", func(t *testing.T) {
		if _, err := client.CurrentWeather(context.Background(), 0, 0); err == nil {
			t.Error("expected error for response without conditions")
		}
	})

	t.Run("Bad Key", func(t *testing.T) {
		badClient := openweather.NewClient("wrong-key")
		badClient.SetAPIURL(ts.URL)
		if _, err := badClient.CurrentWeather(context.Background(), 40.7128, -74.006); err == nil {
			t.Error("expected error for bad API key")
		}
	})
}
