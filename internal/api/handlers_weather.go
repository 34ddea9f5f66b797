package api

import (
	"strconv"

	"github.com/skycast/api/internal/models"
	"github.com/valyala/fasthttp"
)

// weatherByCoordsHandler proxies current weather and forecast for a lat/lon pair
func (s *Server) weatherByCoordsHandler(ctx *fasthttp.RequestCtx) {
	lat := string(ctx.QueryArgs().Peek("lat"))
	lon := string(ctx.QueryArgs().Peek("lon"))
	if lat == "" || lon == "" {
		s.sendError(ctx, fasthttp.StatusBadRequest, "lat and lon query params are required")
		return
	}

	weather, obs, err := s.weatherService.ByCoords(ctx, lat, lon)
	if err != nil {
		s.handleServiceError(ctx, err)
		return
	}

	if obs != nil {
		s.historyService.RecordAsync(*obs)
	}

	s.sendJSON(ctx, fasthttp.StatusOK, weather)
}

// weatherByLocationHandler proxies current weather and forecast for a place name
func (s *Server) weatherByLocationHandler(ctx *fasthttp.RequestCtx) {
	location := string(ctx.QueryArgs().Peek("location"))
	if location == "" {
		s.sendError(ctx, fasthttp.StatusBadRequest, "location query param is required")
		return
	}

	weather, obs, err := s.weatherService.ByLocation(ctx, location)
	if err != nil {
		s.handleServiceError(ctx, err)
		return
	}

	if obs != nil {
		s.historyService.RecordAsync(*obs)
	}

	s.sendJSON(ctx, fasthttp.StatusOK, weather)
}

// weatherHistoryHandler lists recorded observations matching a location
func (s *Server) weatherHistoryHandler(ctx *fasthttp.RequestCtx) {
	location := string(ctx.QueryArgs().Peek("location"))

	days := 30
	if raw := string(ctx.QueryArgs().Peek("days")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			s.sendError(ctx, fasthttp.StatusBadRequest, "days must be a number")
			return
		}
		days = parsed
	}

	history, err := s.historyService.Query(ctx, location, days)
	if err != nil {
		s.handleServiceError(ctx, err)
		return
	}

	s.sendJSON(ctx, fasthttp.StatusOK, map[string][]models.WeatherObservation{"history": history})
}

// routeHandler calculates a driving route between two places
func (s *Server) routeHandler(ctx *fasthttp.RequestCtx) {
	args := ctx.QueryArgs()
	source := string(args.Peek("source"))
	sourceLat := string(args.Peek("sourceLat"))
	sourceLon := string(args.Peek("sourceLon"))
	destination := string(args.Peek("destination"))

	route, err := s.routeService.Calculate(ctx, source, sourceLat, sourceLon, destination)
	if err != nil {
		s.handleServiceError(ctx, err)
		return
	}

	s.sendJSON(ctx, fasthttp.StatusOK, route)
}
