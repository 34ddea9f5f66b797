package models

import (
	"time"

	"github.com/google/uuid"
)

// Coords is a latitude/longitude pair
type Coords struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// CurrentWeather is the reshaped current-conditions view served to clients
type CurrentWeather struct {
	Temp        int      `json:"temp"`
	FeelsLike   int      `json:"feels_like"`
	Humidity    int      `json:"humidity"`
	WindSpeed   float64  `json:"wind_speed"`
	Pressure    int      `json:"pressure"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Location    string   `json:"location"`
	UVIndex     *float64 `json:"uv_index"`
	AirQuality  *int     `json:"air_quality"`
}

// ForecastDay is one aggregated day of forecast
type ForecastDay struct {
	Date        string `json:"date"`
	TempMax     int    `json:"temp_max"`
	TempMin     int    `json:"temp_min"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Humidity    int    `json:"humidity"`
}

// WeatherResponse bundles current conditions with the daily forecast
type WeatherResponse struct {
	Current  CurrentWeather `json:"current"`
	Forecast []ForecastDay  `json:"forecast"`
	Coords   Coords         `json:"coords"`
}

// WeatherObservation is one append-only weather history record
type WeatherObservation struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Location      string    `json:"location" db:"location"`
	ObservedAt    time.Time `json:"date" db:"observed_at"`
	Temperature   float64   `json:"temperature" db:"temperature"`
	Conditions    string    `json:"conditions" db:"conditions"`
	Precipitation float64   `json:"precipitation" db:"precipitation"`
}

// RouteResponse is the reshaped driving-route view served to clients
type RouteResponse struct {
	Coordinates [][]float64 `json:"coordinates"`
	Distance    string      `json:"distance"`
	Duration    string      `json:"duration"`
	Source      Coords      `json:"source"`
	Destination Coords      `json:"destination"`
}
