package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/skycast/api/internal/models"
)

// defaultWeatherBaseURL is the OpenWeatherMap API root.
const defaultWeatherBaseURL = "https://api.openweathermap.org/data/2.5"

// forecastDays caps the aggregated daily forecast length.
const forecastDays = 7

// WeatherService fetches current conditions and forecasts from the weather
// provider and reshapes them into the client-facing view.
type WeatherService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewWeatherService creates a new weather service
func NewWeatherService(apiKey string, logger *zap.Logger) *WeatherService {
	return &WeatherService{
		apiKey:     apiKey,
		baseURL:    defaultWeatherBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

// Provider response shapes; only the fields the reshaping needs.

type owmWeather struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type owmCurrent struct {
	Coord   models.Coords `json:"coord"`
	Weather []owmWeather  `json:"weather"`
	Main    struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Pressure  int     `json:"pressure"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Rain map[string]float64 `json:"rain"`
	Name string             `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
}

type owmForecastItem struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Weather []owmWeather `json:"weather"`
}

type owmForecast struct {
	List []owmForecastItem `json:"list"`
}

type owmAir struct {
	List []struct {
		Main struct {
			AQI int `json:"aqi"`
		} `json:"main"`
	} `json:"list"`
}

// ByCoords returns current conditions and forecast for a coordinate pair,
// plus the observation to append to weather history.
func (s *WeatherService) ByCoords(ctx context.Context, lat, lon string) (*models.WeatherResponse, *models.WeatherObservation, error) {
	if s.apiKey == "" {
		return nil, nil, fmt.Errorf("%w: weather API key not configured", ErrUpstream)
	}

	params := url.Values{}
	params.Set("lat", lat)
	params.Set("lon", lon)
	params.Set("appid", s.apiKey)
	params.Set("units", "metric")

	var current owmCurrent
	if err := s.getJSON(ctx, "/weather", params, &current); err != nil {
		return nil, nil, err
	}

	var forecast owmForecast
	if err := s.getJSON(ctx, "/forecast", params, &forecast); err != nil {
		return nil, nil, err
	}

	resp := s.assemble(ctx, &current, &forecast, "Unknown")
	obs := observationFrom(&current, resp.Current)
	return resp, obs, nil
}

// ByLocation geocodes a location name through the weather provider, then
// returns the same view as ByCoords.
func (s *WeatherService) ByLocation(ctx context.Context, location string) (*models.WeatherResponse, *models.WeatherObservation, error) {
	if s.apiKey == "" {
		return nil, nil, fmt.Errorf("%w: weather API key not configured", ErrUpstream)
	}

	params := url.Values{}
	params.Set("q", location)
	params.Set("appid", s.apiKey)
	params.Set("units", "metric")

	var current owmCurrent
	if err := s.getJSON(ctx, "/weather", params, &current); err != nil {
		return nil, nil, err
	}

	forecastParams := url.Values{}
	forecastParams.Set("lat", fmt.Sprintf("%g", current.Coord.Lat))
	forecastParams.Set("lon", fmt.Sprintf("%g", current.Coord.Lon))
	forecastParams.Set("appid", s.apiKey)
	forecastParams.Set("units", "metric")

	var forecast owmForecast
	if err := s.getJSON(ctx, "/forecast", forecastParams, &forecast); err != nil {
		return nil, nil, err
	}

	resp := s.assemble(ctx, &current, &forecast, location)
	obs := observationFrom(&current, resp.Current)
	return resp, obs, nil
}

// Geocode resolves a location name to coordinates via the weather provider
func (s *WeatherService) Geocode(ctx context.Context, location string) (models.Coords, error) {
	if s.apiKey == "" {
		return models.Coords{}, fmt.Errorf("%w: weather API key not configured", ErrUpstream)
	}

	params := url.Values{}
	params.Set("q", location)
	params.Set("appid", s.apiKey)

	var current owmCurrent
	if err := s.getJSON(ctx, "/weather", params, &current); err != nil {
		return models.Coords{}, err
	}

	return current.Coord, nil
}

// assemble builds the client view from raw provider responses. Air quality
// is fetched best-effort; a failure there leaves the field null.
func (s *WeatherService) assemble(ctx context.Context, current *owmCurrent, forecast *owmForecast, fallbackName string) *models.WeatherResponse {
	cw := models.CurrentWeather{
		Temp:        round(current.Main.Temp),
		FeelsLike:   round(current.Main.FeelsLike),
		Humidity:    current.Main.Humidity,
		WindSpeed:   current.Wind.Speed,
		Pressure:    current.Main.Pressure,
		Description: firstDescription(current.Weather),
		Icon:        iconFor(firstIcon(current.Weather)),
		Location:    locationLabel(current.Name, current.Sys.Country, fallbackName),
		UVIndex:     nil, // not available on the provider's free tier
	}

	if aqi, ok := s.airQuality(ctx, current.Coord); ok {
		cw.AirQuality = &aqi
	}

	return &models.WeatherResponse{
		Current:  cw,
		Forecast: buildForecast(forecast.List),
		Coords:   current.Coord,
	}
}

// airQuality fetches the air pollution index. Unavailable on some plans, so
// any failure is tolerated.
func (s *WeatherService) airQuality(ctx context.Context, coords models.Coords) (int, bool) {
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%g", coords.Lat))
	params.Set("lon", fmt.Sprintf("%g", coords.Lon))
	params.Set("appid", s.apiKey)

	var air owmAir
	if err := s.getJSON(ctx, "/air_pollution", params, &air); err != nil {
		s.logger.Debug("Air quality lookup failed", zap.Error(err))
		return 0, false
	}

	if len(air.List) == 0 {
		return 0, false
	}

	return air.List[0].Main.AQI, true
}

// getJSON performs a provider GET and decodes the JSON body into dest
func (s *WeatherService) getJSON(ctx context.Context, path string, params url.Values, dest any) error {
	reqURL := s.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Warn("Weather provider request failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("Weather provider returned non-OK status",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return fmt.Errorf("%w: weather provider status %d", ErrUpstream, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}

	return nil
}

// buildForecast groups 3-hourly forecast points into daily rows: max/min
// temperature, average humidity, and the day's first description and icon.
func buildForecast(items []owmForecastItem) []models.ForecastDay {
	type dayAgg struct {
		temps       []float64
		humidity    []float64
		description string
		icon        string
		date        time.Time
	}

	var order []string
	days := map[string]*dayAgg{}

	for _, item := range items {
		t := time.Unix(item.Dt, 0).UTC()
		key := t.Format(dateLayout)

		agg, ok := days[key]
		if !ok {
			agg = &dayAgg{
				description: firstDescription(item.Weather),
				icon:        iconFor(firstIcon(item.Weather)),
				date:        t,
			}
			days[key] = agg
			order = append(order, key)
		}
		agg.temps = append(agg.temps, item.Main.Temp)
		agg.humidity = append(agg.humidity, item.Main.Humidity)
	}

	if len(order) > forecastDays {
		order = order[:forecastDays]
	}

	forecast := make([]models.ForecastDay, 0, len(order))
	for _, key := range order {
		agg := days[key]

		max, min := agg.temps[0], agg.temps[0]
		for _, v := range agg.temps[1:] {
			if v > max {
				max = v
			}
			if v < min {
				min = v
			}
		}

		var humiditySum float64
		for _, v := range agg.humidity {
			humiditySum += v
		}

		forecast = append(forecast, models.ForecastDay{
			Date:        agg.date.Format("Mon, Jan 2"),
			TempMax:     round(max),
			TempMin:     round(min),
			Description: agg.description,
			Icon:        agg.icon,
			Humidity:    round(humiditySum / float64(len(agg.humidity))),
		})
	}

	return forecast
}

// iconFor maps a provider icon code (e.g. "01d", "10n") to a UI icon name
// keyed on the code's leading digits.
func iconFor(icon string) string {
	if len(icon) < 2 {
		return "cloud"
	}

	switch icon[:2] {
	case "01":
		return "sun"
	case "02":
		return "cloud-sun"
	case "03", "04":
		return "cloud"
	case "09", "10":
		return "cloud-rain"
	case "11":
		return "cloud-lightning"
	case "13":
		return "cloud-snow"
	case "50":
		return "cloud-fog"
	default:
		return "cloud"
	}
}

// observationFrom builds the history record for a successful lookup
func observationFrom(current *owmCurrent, cw models.CurrentWeather) *models.WeatherObservation {
	return &models.WeatherObservation{
		Location:      cw.Location,
		ObservedAt:    time.Now(),
		Temperature:   float64(cw.Temp),
		Conditions:    cw.Description,
		Precipitation: current.Rain["1h"],
	}
}

func locationLabel(name, country, fallback string) string {
	if name == "" {
		name = fallback
	}
	return fmt.Sprintf("%s, %s", name, country)
}

func firstDescription(weather []owmWeather) string {
	if len(weather) == 0 {
		return ""
	}
	return weather[0].Description
}

func firstIcon(weather []owmWeather) string {
	if len(weather) == 0 {
		return ""
	}
	return weather[0].Icon
}

func round(v float64) int {
	return int(math.Round(v))
}
