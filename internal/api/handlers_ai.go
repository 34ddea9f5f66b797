package api

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/skycast/api/internal/models"
	"github.com/valyala/fasthttp"
)

// packingListHandler generates a packing list from trip dates and weather
func (s *Server) packingListHandler(ctx *fasthttp.RequestCtx) {
	var req models.PackingRequest
	if err := s.parseJSONBody(ctx, &req); err != nil {
		s.sendError(ctx, fasthttp.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	items, conditions, err := s.suggestService.PackingList(req)
	if err != nil {
		s.handleServiceError(ctx, err)
		return
	}

	s.sendJSON(ctx, fasthttp.StatusOK, map[string]any{
		"packingList": items,
		"weatherInfo": conditions,
	})
}

// suggestHandler returns weather-aware activity suggestions
func (s *Server) suggestHandler(ctx *fasthttp.RequestCtx) {
	var req models.SuggestRequest
	if err := s.parseJSONBody(ctx, &req); err != nil {
		s.sendError(ctx, fasthttp.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	suggestions := s.suggestService.Suggestions(req.Destination, req.Weather)

	s.sendJSON(ctx, fasthttp.StatusOK, map[string][]models.Suggestion{
		"suggestions": suggestions,
	})
}

// chatHandler answers travel-assistant messages. Authentication is optional:
// a valid token attaches the caller's id to the reply, anything else is a guest.
func (s *Server) chatHandler(ctx *fasthttp.RequestCtx) {
	var userID *uuid.UUID
	if token, ok := bearerToken(ctx); ok && token != "guest" {
		if claims, err := s.authService.ValidateToken(token); err == nil {
			userID = &claims.UserID
		}
	}

	var req models.ChatRequest
	if err := s.parseJSONBody(ctx, &req); err != nil {
		s.sendError(ctx, fasthttp.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	if req.Message == "" {
		s.sendError(ctx, fasthttp.StatusBadRequest, "message is required")
		return
	}

	reply := s.suggestService.ChatReply(req.Message, req.Context)

	s.sendJSON(ctx, fasthttp.StatusOK, map[string]any{
		"response": reply,
		"userId":   userID,
	})
}
