package api

import (
	"context"
	"time"

	"github.com/fasthttp/router"
	"github.com/google/uuid"
	"github.com/skycast/api/internal/config"
	"github.com/skycast/api/internal/models"
	"github.com/skycast/api/internal/services"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// userService is the slice of UserService the handlers consume
type userService interface {
	CreateUser(ctx context.Context, name, email, passwordHash string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
	ToUserResponse(user *models.User) models.UserResponse
}

type authService interface {
	GenerateToken(userID uuid.UUID) (string, error)
	ValidateToken(tokenString string) (*services.Claims, error)
	HashPassword(password string) (string, error)
	VerifyPassword(password, hash string) error
}

type tripService interface {
	Create(ctx context.Context, userID uuid.UUID, input models.TripInput) (*models.Trip, error)
	List(ctx context.Context, userID uuid.UUID) ([]*models.Trip, error)
	GetByID(ctx context.Context, userID, tripID uuid.UUID) (*models.Trip, error)
	Update(ctx context.Context, userID, tripID uuid.UUID, input models.TripInput) (*models.Trip, error)
	Delete(ctx context.Context, userID, tripID uuid.UUID) error
}

type weatherService interface {
	ByCoords(ctx context.Context, lat, lon string) (*models.WeatherResponse, *models.WeatherObservation, error)
	ByLocation(ctx context.Context, location string) (*models.WeatherResponse, *models.WeatherObservation, error)
}

type routeService interface {
	Calculate(ctx context.Context, source, sourceLat, sourceLon, destination string) (*models.RouteResponse, error)
}

type historyService interface {
	RecordAsync(obs models.WeatherObservation)
	Query(ctx context.Context, location string, days int) ([]models.WeatherObservation, error)
}

type suggestService interface {
	PackingList(req models.PackingRequest) ([]models.PackingListItem, models.PackingConditions, error)
	Suggestions(destination, weather string) []models.Suggestion
	ChatReply(message string, chatCtx *models.ChatContext) string
}

// pinger reports database liveness for the health endpoint
type pinger interface {
	Ping(ctx context.Context) error
}

// Server represents the API server
type Server struct {
	config         *config.Config
	logger         *zap.Logger
	userService    userService
	authService    authService
	tripService    tripService
	weatherService weatherService
	routeService   routeService
	historyService historyService
	suggestService suggestService
	db             pinger
	router         *router.Router
	server         *fasthttp.Server
}

// NewServer creates a new API server
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	userService userService,
	authService authService,
	tripService tripService,
	weatherService weatherService,
	routeService routeService,
	historyService historyService,
	suggestService suggestService,
	db pinger,
) *Server {
	s := &Server{
		config:         cfg,
		logger:         logger,
		userService:    userService,
		authService:    authService,
		tripService:    tripService,
		weatherService: weatherService,
		routeService:   routeService,
		historyService: historyService,
		suggestService: suggestService,
		db:             db,
		router:         router.New(),
	}

	s.setupRoutes()
	s.setupServer()

	return s
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	s.router.GlobalOPTIONS = s.corsHandler

	// Public routes (no authentication required)
	s.router.POST("/api/auth/signup", s.withMiddleware(s.signupHandler))
	s.router.POST("/api/auth/login", s.withMiddleware(s.loginHandler))

	s.router.GET("/api/weather/coords", s.withMiddleware(s.weatherByCoordsHandler))
	s.router.GET("/api/weather/location", s.withMiddleware(s.weatherByLocationHandler))
	s.router.GET("/api/weather/history", s.withMiddleware(s.weatherHistoryHandler))
	s.router.GET("/api/route", s.withMiddleware(s.routeHandler))

	s.router.POST("/api/ai/packing-list", s.withMiddleware(s.packingListHandler))
	s.router.POST("/api/ai/suggest", s.withMiddleware(s.suggestHandler))
	s.router.POST("/api/ai/chat", s.withMiddleware(s.chatHandler))

	s.router.GET("/api/places/accommodation", s.withMiddleware(s.accommodationHandler))
	s.router.GET("/api/places/restaurants", s.withMiddleware(s.restaurantsHandler))
	s.router.GET("/api/places/events", s.withMiddleware(s.eventsHandler))

	// Protected routes (authentication required)
	s.router.GET("/api/auth/me", s.withMiddleware(s.authMiddleware(s.meHandler)))
	s.router.POST("/api/trips", s.withMiddleware(s.authMiddleware(s.createTripHandler)))
	s.router.GET("/api/trips", s.withMiddleware(s.authMiddleware(s.listTripsHandler)))
	s.router.GET("/api/trips/{id}", s.withMiddleware(s.authMiddleware(s.getTripHandler)))
	s.router.PUT("/api/trips/{id}", s.withMiddleware(s.authMiddleware(s.updateTripHandler)))
	s.router.DELETE("/api/trips/{id}", s.withMiddleware(s.authMiddleware(s.deleteTripHandler)))

	// Health check endpoint
	s.router.GET("/api/health", s.withMiddleware(s.healthHandler))
}

// setupServer configures the FastHTTP server
func (s *Server) setupServer() {
	s.server = &fasthttp.Server{
		Handler:                       s.router.Handler,
		Name:                          "SkyCast-API",
		ReadTimeout:                   10 * time.Second,
		WriteTimeout:                  30 * time.Second,
		IdleTimeout:                   60 * time.Second,
		MaxRequestBodySize:            1024 * 1024, // 1MB
		DisableHeaderNamesNormalizing: true,
		NoDefaultServerHeader:         true,
		NoDefaultDate:                 true,
		NoDefaultContentType:          true,
	}
}

// Start starts the API server
func (s *Server) Start() error {
	s.logger.Info("Starting API server",
		zap.String("address", s.config.Server.Address),
		zap.String("environment", s.config.Server.Environment))

	return s.server.ListenAndServe(s.config.Server.Address)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server")
	return s.server.ShutdownWithContext(ctx)
}

// withMiddleware wraps handlers with common middleware
func (s *Server) withMiddleware(handler fasthttp.RequestHandler) fasthttp.RequestHandler {
	return s.loggingMiddleware(
		s.securityMiddleware(handler),
	)
}

// corsHandler handles CORS preflight requests
func (s *Server) corsHandler(ctx *fasthttp.RequestCtx) {
	s.setCORSHeaders(ctx)
	ctx.SetStatusCode(fasthttp.StatusOK)
}

// setCORSHeaders sets CORS headers for browser clients
func (s *Server) setCORSHeaders(ctx *fasthttp.RequestCtx) {
	ctx.Response.Header.Set("Access-Control-Allow-Origin", "*")
	ctx.Response.Header.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	ctx.Response.Header.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
	ctx.Response.Header.Set("Access-Control-Max-Age", "86400")
}

// healthHandler reports service and database status
func (s *Server) healthHandler(ctx *fasthttp.RequestCtx) {
	dbStatus := "connected"

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := s.db.Ping(pingCtx); err != nil {
		s.logger.Warn("Health check database ping failed", zap.Error(err))
		dbStatus = "disconnected"
	}

	s.sendJSON(ctx, fasthttp.StatusOK, map[string]any{
		"status":   "ok",
		"message":  "SkyCast API is running",
		"database": dbStatus,
	})
}
