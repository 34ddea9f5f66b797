package api

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/skycast/api/internal/models"
	"github.com/skycast/api/internal/services"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// signupHandler handles user registration
func (s *Server) signupHandler(ctx *fasthttp.RequestCtx) {
	var req models.UserSignup
	if err := s.parseJSONBody(ctx, &req); err != nil {
		s.sendError(ctx, fasthttp.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	if err := validateSignup(&req); err != nil {
		s.handleServiceError(ctx, err)
		return
	}

	passwordHash, err := s.authService.HashPassword(req.Password)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		s.sendError(ctx, fasthttp.StatusInternalServerError, "Internal server error")
		return
	}

	user, err := s.userService.CreateUser(ctx, req.Name, req.Email, passwordHash)
	if err != nil {
		s.handleServiceError(ctx, err)
		return
	}

	token, err := s.authService.GenerateToken(user.ID)
	if err != nil {
		s.logger.Error("Failed to generate token", zap.Error(err))
		s.sendError(ctx, fasthttp.StatusInternalServerError, "Internal server error")
		return
	}

	s.sendJSON(ctx, fasthttp.StatusOK, models.AuthResponse{
		Token: token,
		User:  s.userService.ToUserResponse(user),
	})
}

// loginHandler handles user login
func (s *Server) loginHandler(ctx *fasthttp.RequestCtx) {
	var req models.UserLogin
	if err := s.parseJSONBody(ctx, &req); err != nil {
		s.sendError(ctx, fasthttp.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	if req.Email == "" || req.Password == "" {
		s.sendError(ctx, fasthttp.StatusBadRequest, "Email and password required")
		return
	}

	user, err := s.userService.GetUserByEmail(ctx, req.Email)
	if err != nil {
		// An unknown email reads the same as a wrong password.
		if errors.Is(err, services.ErrNotFound) {
			s.sendError(ctx, fasthttp.StatusUnauthorized, "Invalid credentials")
			return
		}
		s.handleServiceError(ctx, err)
		return
	}

	if err := s.authService.VerifyPassword(req.Password, user.PasswordHash); err != nil {
		s.sendError(ctx, fasthttp.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := s.authService.GenerateToken(user.ID)
	if err != nil {
		s.logger.Error("Failed to generate token", zap.Error(err))
		s.sendError(ctx, fasthttp.StatusInternalServerError, "Internal server error")
		return
	}

	s.sendJSON(ctx, fasthttp.StatusOK, models.AuthResponse{
		Token: token,
		User:  s.userService.ToUserResponse(user),
	})
}

// meHandler returns the authenticated user's profile
func (s *Server) meHandler(ctx *fasthttp.RequestCtx) {
	userID, ok := s.userID(ctx)
	if !ok {
		s.sendError(ctx, fasthttp.StatusUnauthorized, "Invalid user context")
		return
	}

	user, err := s.userService.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			s.sendError(ctx, fasthttp.StatusNotFound, "User not found")
			return
		}
		s.handleServiceError(ctx, err)
		return
	}

	s.sendJSON(ctx, fasthttp.StatusOK, map[string]models.UserResponse{
		"user": s.userService.ToUserResponse(user),
	})
}

// validateSignup validates user registration input. Failures wrap
// services.ErrValidation so the shared error boundary translates them.
func validateSignup(req *models.UserSignup) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", services.ErrValidation)
	}

	if req.Email == "" {
		return fmt.Errorf("%w: email is required", services.ErrValidation)
	}

	if !emailRegex.MatchString(req.Email) {
		return fmt.Errorf("%w: invalid email format", services.ErrValidation)
	}

	if req.Password == "" {
		return fmt.Errorf("%w: password is required", services.ErrValidation)
	}

	if len(req.Password) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", services.ErrValidation)
	}

	return nil
}
