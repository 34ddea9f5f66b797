package api

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/skycast/api/internal/models"
	"github.com/skycast/api/internal/services"
	"github.com/valyala/fasthttp"
)

// createTripHandler creates a trip owned by the caller
func (s *Server) createTripHandler(ctx *fasthttp.RequestCtx) {
	userID, ok := s.userID(ctx)
	if !ok {
		s.sendError(ctx, fasthttp.StatusUnauthorized, "Invalid user context")
		return
	}

	var input models.TripInput
	if err := s.parseJSONBody(ctx, &input); err != nil {
		s.sendError(ctx, fasthttp.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	trip, err := s.tripService.Create(ctx, userID, input)
	if err != nil {
		s.handleServiceError(ctx, err)
		return
	}

	s.sendJSON(ctx, fasthttp.StatusOK, map[string]*models.Trip{"trip": trip})
}

// listTripsHandler lists the caller's trips, newest first
func (s *Server) listTripsHandler(ctx *fasthttp.RequestCtx) {
	userID, ok := s.userID(ctx)
	if !ok {
		s.sendError(ctx, fasthttp.StatusUnauthorized, "Invalid user context")
		return
	}

	trips, err := s.tripService.List(ctx, userID)
	if err != nil {
		s.handleServiceError(ctx, err)
		return
	}

	s.sendJSON(ctx, fasthttp.StatusOK, map[string][]*models.Trip{"trips": trips})
}

// getTripHandler fetches a single trip owned by the caller
func (s *Server) getTripHandler(ctx *fasthttp.RequestCtx) {
	userID, ok := s.userID(ctx)
	if !ok {
		s.sendError(ctx, fasthttp.StatusUnauthorized, "Invalid user context")
		return
	}

	tripID, ok := s.tripIDParam(ctx)
	if !ok {
		return
	}

	trip, err := s.tripService.GetByID(ctx, userID, tripID)
	if err != nil {
		s.handleTripError(ctx, err)
		return
	}

	s.sendJSON(ctx, fasthttp.StatusOK, map[string]*models.Trip{"trip": trip})
}

// updateTripHandler replaces a trip owned by the caller
func (s *Server) updateTripHandler(ctx *fasthttp.RequestCtx) {
	userID, ok := s.userID(ctx)
	if !ok {
		s.sendError(ctx, fasthttp.StatusUnauthorized, "Invalid user context")
		return
	}

	tripID, ok := s.tripIDParam(ctx)
	if !ok {
		return
	}

	var input models.TripInput
	if err := s.parseJSONBody(ctx, &input); err != nil {
		s.sendError(ctx, fasthttp.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	trip, err := s.tripService.Update(ctx, userID, tripID, input)
	if err != nil {
		s.handleTripError(ctx, err)
		return
	}

	s.sendJSON(ctx, fasthttp.StatusOK, map[string]*models.Trip{"trip": trip})
}

// deleteTripHandler deletes a trip owned by the caller
func (s *Server) deleteTripHandler(ctx *fasthttp.RequestCtx) {
	userID, ok := s.userID(ctx)
	if !ok {
		s.sendError(ctx, fasthttp.StatusUnauthorized, "Invalid user context")
		return
	}

	tripID, ok := s.tripIDParam(ctx)
	if !ok {
		return
	}

	if err := s.tripService.Delete(ctx, userID, tripID); err != nil {
		s.handleTripError(ctx, err)
		return
	}

	s.sendJSON(ctx, fasthttp.StatusOK, map[string]string{"message": "Trip deleted"})
}

// tripIDParam parses the {id} path parameter, responding with 404 when it is
// not a valid id. A malformed id is indistinguishable from a missing trip.
func (s *Server) tripIDParam(ctx *fasthttp.RequestCtx) (uuid.UUID, bool) {
	raw, _ := ctx.UserValue("id").(string)
	tripID, err := uuid.Parse(raw)
	if err != nil {
		s.sendError(ctx, fasthttp.StatusNotFound, "Trip not found")
		return uuid.Nil, false
	}
	return tripID, true
}

// handleTripError maps not-found onto the trip-specific message
func (s *Server) handleTripError(ctx *fasthttp.RequestCtx, err error) {
	if errors.Is(err, services.ErrNotFound) {
		s.sendError(ctx, fasthttp.StatusNotFound, "Trip not found")
		return
	}
	s.handleServiceError(ctx, err)
}
