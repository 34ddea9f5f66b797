package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/skycast/api/internal/services"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// loggingMiddleware logs HTTP requests (no sensitive data)
func (s *Server) loggingMiddleware(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()

		next(ctx)

		duration := time.Since(start)
		s.logger.Info("HTTP request",
			zap.String("method", string(ctx.Method())),
			zap.String("path", string(ctx.Path())),
			zap.Int("status", ctx.Response.StatusCode()),
			zap.Duration("duration", duration),
			zap.String("user_agent", string(ctx.UserAgent())),
		)
	}
}

// securityMiddleware adds security headers
func (s *Server) securityMiddleware(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		ctx.Response.Header.Set("X-Content-Type-Options", "nosniff")
		ctx.Response.Header.Set("X-Frame-Options", "DENY")
		ctx.Response.Header.Set("X-XSS-Protection", "1; mode=block")
		ctx.Response.Header.Set("Referrer-Policy", "strict-origin-when-cross-origin")

		ctx.Response.Header.Del("Server")

		next(ctx)
	}
}

// authMiddleware validates JWT tokens and stores the caller's user id in the
// request context under "user_id".
func (s *Server) authMiddleware(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		token, ok := bearerToken(ctx)
		if !ok {
			s.sendError(ctx, fasthttp.StatusUnauthorized, "Authorization header required")
			return
		}

		claims, err := s.authService.ValidateToken(token)
		if err != nil {
			s.sendError(ctx, fasthttp.StatusUnauthorized, "Invalid token")
			return
		}

		ctx.SetUserValue("user_id", claims.UserID)

		next(ctx)
	}
}

// bearerToken extracts the token from the Authorization header
func bearerToken(ctx *fasthttp.RequestCtx) (string, bool) {
	authHeader := string(ctx.Request.Header.Peek("Authorization"))
	if authHeader == "" {
		return "", false
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return "", false
	}

	return token, true
}

// userID returns the authenticated user's id set by authMiddleware
func (s *Server) userID(ctx *fasthttp.RequestCtx) (uuid.UUID, bool) {
	id, ok := ctx.UserValue("user_id").(uuid.UUID)
	return id, ok
}

// sendJSON sends a JSON response with the given status code
func (s *Server) sendJSON(ctx *fasthttp.RequestCtx, statusCode int, payload any) {
	s.setCORSHeaders(ctx)
	ctx.SetContentType("application/json")

	body, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("Failed to marshal response", zap.Error(err))
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}

	ctx.SetStatusCode(statusCode)
	ctx.SetBody(body)
}

// sendError sends a JSON error response
func (s *Server) sendError(ctx *fasthttp.RequestCtx, statusCode int, message string) {
	s.sendJSON(ctx, statusCode, map[string]string{"error": message})
}

// handleServiceError translates service errors into HTTP responses. This is
// the single place where the service error taxonomy meets status codes.
func (s *Server) handleServiceError(ctx *fasthttp.RequestCtx, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		s.sendError(ctx, fasthttp.StatusBadRequest, validationMessage(err))
	case errors.Is(err, services.ErrEmailTaken):
		s.sendError(ctx, fasthttp.StatusBadRequest, "Email already registered")
	case errors.Is(err, services.ErrInvalidCredentials):
		s.sendError(ctx, fasthttp.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, services.ErrInvalidToken):
		s.sendError(ctx, fasthttp.StatusUnauthorized, "Invalid token")
	case errors.Is(err, services.ErrNotFound):
		s.sendError(ctx, fasthttp.StatusNotFound, "Not found")
	case errors.Is(err, services.ErrUpstream):
		s.logger.Error("Upstream request failed", zap.Error(err))
		s.sendError(ctx, fasthttp.StatusInternalServerError, "Upstream service error")
	default:
		s.logger.Error("Unhandled service error", zap.Error(err))
		s.sendError(ctx, fasthttp.StatusInternalServerError, "Internal server error")
	}
}

// validationMessage strips the sentinel prefix so clients see only the
// field-specific part of a validation error.
func validationMessage(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx >= 0 {
		return msg[idx+2:]
	}
	return msg
}

// parseJSONBody parses a JSON request body
func (s *Server) parseJSONBody(ctx *fasthttp.RequestCtx, dest any) error {
	body := ctx.PostBody()
	if len(body) == 0 {
		return fmt.Errorf("request body is empty")
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	return nil
}
