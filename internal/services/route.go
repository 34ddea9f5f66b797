package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/skycast/api/internal/models"
)

// defaultRouteBaseURL is the OpenRouteService API root.
const defaultRouteBaseURL = "https://api.openrouteservice.org"

// geocoder resolves a location name to coordinates. Satisfied by
// WeatherService; the routing provider has no geocoder of its own.
type geocoder interface {
	Geocode(ctx context.Context, location string) (models.Coords, error)
}

// RouteService calculates driving routes between two locations
type RouteService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	geocoder   geocoder
	logger     *zap.Logger
}

// NewRouteService creates a new route service
func NewRouteService(apiKey string, geocoder geocoder, logger *zap.Logger) *RouteService {
	return &RouteService{
		apiKey:     apiKey,
		baseURL:    defaultRouteBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		geocoder:   geocoder,
		logger:     logger,
	}
}

// orsRequest is the directions request body
type orsRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
}

// orsResponse holds the slice of the directions response we consume
type orsResponse struct {
	Routes []struct {
		Summary struct {
			Distance float64 `json:"distance"` // meters
			Duration float64 `json:"duration"` // seconds
		} `json:"summary"`
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

// Calculate resolves both endpoints to coordinates and fetches a driving
// route. The source is either an explicit coordinate pair or a location name;
// exactly one of the two must be provided.
func (s *RouteService) Calculate(ctx context.Context, source, sourceLat, sourceLon, destination string) (*models.RouteResponse, error) {
	if destination == "" {
		return nil, fmt.Errorf("%w: destination is required", ErrValidation)
	}
	if s.apiKey == "" {
		return nil, fmt.Errorf("%w: route API key not configured", ErrUpstream)
	}

	var sourceCoords models.Coords
	switch {
	case sourceLat != "" && sourceLon != "":
		lat, err := strconv.ParseFloat(sourceLat, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: sourceLat must be a number", ErrValidation)
		}
		lon, err := strconv.ParseFloat(sourceLon, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: sourceLon must be a number", ErrValidation)
		}
		sourceCoords = models.Coords{Lat: lat, Lon: lon}
	case source != "":
		coords, err := s.geocoder.Geocode(ctx, source)
		if err != nil {
			return nil, err
		}
		sourceCoords = coords
	default:
		return nil, fmt.Errorf("%w: either source or sourceLat & sourceLon must be provided", ErrValidation)
	}

	destCoords, err := s.geocoder.Geocode(ctx, destination)
	if err != nil {
		return nil, err
	}

	route, err := s.directions(ctx, sourceCoords, destCoords)
	if err != nil {
		return nil, err
	}

	route.Source = sourceCoords
	route.Destination = destCoords
	return route, nil
}

// directions calls the routing provider's driving-car profile
func (s *RouteService) directions(ctx context.Context, from, to models.Coords) (*models.RouteResponse, error) {
	// The provider expects lon/lat order.
	body, err := json.Marshal(orsRequest{
		Coordinates: [][]float64{{from.Lon, from.Lat}, {to.Lon, to.Lat}},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.baseURL+"/v2/directions/driving-car", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	req.Header.Set("Authorization", s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Warn("Route provider request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("Route provider returned non-OK status", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: route provider status %d", ErrUpstream, resp.StatusCode)
	}

	var parsed orsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}

	if len(parsed.Routes) == 0 {
		return nil, fmt.Errorf("%w: route provider returned no routes", ErrUpstream)
	}

	r := parsed.Routes[0]
	return &models.RouteResponse{
		Coordinates: r.Geometry.Coordinates,
		Distance:    fmt.Sprintf("%.2f km", r.Summary.Distance/1000),
		Duration:    fmt.Sprintf("%d minutes", int(math.Round(r.Summary.Duration/60))),
	}, nil
}
