package api

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/skycast/api/internal/config"
	"github.com/skycast/api/internal/models"
	"github.com/skycast/api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// Function-field mocks; a nil field means the test does not expect the call.

type mockUserService struct {
	createUserFn func(ctx context.Context, name, email, passwordHash string) (*models.User, error)
	getByEmailFn func(ctx context.Context, email string) (*models.User, error)
	getByIDFn    func(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

func (m *mockUserService) CreateUser(ctx context.Context, name, email, passwordHash string) (*models.User, error) {
	return m.createUserFn(ctx, name, email, passwordHash)
}

func (m *mockUserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.getByEmailFn(ctx, email)
}

func (m *mockUserService) GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return m.getByIDFn(ctx, userID)
}

func (m *mockUserService) ToUserResponse(user *models.User) models.UserResponse {
	return models.UserResponse{ID: user.ID, Name: user.Name, Email: user.Email}
}

type mockAuthService struct {
	generateTokenFn  func(userID uuid.UUID) (string, error)
	validateTokenFn  func(tokenString string) (*services.Claims, error)
	hashPasswordFn   func(password string) (string, error)
	verifyPasswordFn func(password, hash string) error
}

func (m *mockAuthService) GenerateToken(userID uuid.UUID) (string, error) {
	return m.generateTokenFn(userID)
}

func (m *mockAuthService) ValidateToken(tokenString string) (*services.Claims, error) {
	return m.validateTokenFn(tokenString)
}

func (m *mockAuthService) HashPassword(password string) (string, error) {
	if m.hashPasswordFn != nil {
		return m.hashPasswordFn(password)
	}
	return "$2a$04$test-hash", nil
}

func (m *mockAuthService) VerifyPassword(password, hash string) error {
	return m.verifyPasswordFn(password, hash)
}

type mockTripService struct {
	createFn  func(ctx context.Context, userID uuid.UUID, input models.TripInput) (*models.Trip, error)
	listFn    func(ctx context.Context, userID uuid.UUID) ([]*models.Trip, error)
	getByIDFn func(ctx context.Context, userID, tripID uuid.UUID) (*models.Trip, error)
	updateFn  func(ctx context.Context, userID, tripID uuid.UUID, input models.TripInput) (*models.Trip, error)
	deleteFn  func(ctx context.Context, userID, tripID uuid.UUID) error
}

func (m *mockTripService) Create(ctx context.Context, userID uuid.UUID, input models.TripInput) (*models.Trip, error) {
	return m.createFn(ctx, userID, input)
}

func (m *mockTripService) List(ctx context.Context, userID uuid.UUID) ([]*models.Trip, error) {
	return m.listFn(ctx, userID)
}

func (m *mockTripService) GetByID(ctx context.Context, userID, tripID uuid.UUID) (*models.Trip, error) {
	return m.getByIDFn(ctx, userID, tripID)
}

func (m *mockTripService) Update(ctx context.Context, userID, tripID uuid.UUID, input models.TripInput) (*models.Trip, error) {
	return m.updateFn(ctx, userID, tripID, input)
}

func (m *mockTripService) Delete(ctx context.Context, userID, tripID uuid.UUID) error {
	return m.deleteFn(ctx, userID, tripID)
}

type mockWeatherService struct {
	byCoordsFn   func(ctx context.Context, lat, lon string) (*models.WeatherResponse, *models.WeatherObservation, error)
	byLocationFn func(ctx context.Context, location string) (*models.WeatherResponse, *models.WeatherObservation, error)
}

func (m *mockWeatherService) ByCoords(ctx context.Context, lat, lon string) (*models.WeatherResponse, *models.WeatherObservation, error) {
	return m.byCoordsFn(ctx, lat, lon)
}

func (m *mockWeatherService) ByLocation(ctx context.Context, location string) (*models.WeatherResponse, *models.WeatherObservation, error) {
	return m.byLocationFn(ctx, location)
}

type mockRouteService struct {
	calculateFn func(ctx context.Context, source, sourceLat, sourceLon, destination string) (*models.RouteResponse, error)
}

func (m *mockRouteService) Calculate(ctx context.Context, source, sourceLat, sourceLon, destination string) (*models.RouteResponse, error) {
	return m.calculateFn(ctx, source, sourceLat, sourceLon, destination)
}

type mockHistoryService struct {
	recorded []models.WeatherObservation
	queryFn  func(ctx context.Context, location string, days int) ([]models.WeatherObservation, error)
}

func (m *mockHistoryService) RecordAsync(obs models.WeatherObservation) {
	m.recorded = append(m.recorded, obs)
}

func (m *mockHistoryService) Query(ctx context.Context, location string, days int) ([]models.WeatherObservation, error) {
	return m.queryFn(ctx, location, days)
}

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(ctx context.Context) error { return m.err }

func newTestServer() *Server {
	return &Server{
		config:         &config.Config{},
		logger:         zap.NewNop(),
		suggestService: services.NewSuggestService(),
		db:             &mockPinger{},
	}
}

func postCtx(path string, payload any) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&fasthttp.Request{}, nil, nil)
	ctx.Request.Header.SetMethod(fasthttp.MethodPost)
	ctx.Request.SetRequestURI(path)
	body, _ := json.Marshal(payload)
	ctx.Request.SetBody(body)
	return ctx
}

func getCtx(path string) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&fasthttp.Request{}, nil, nil)
	ctx.Request.Header.SetMethod(fasthttp.MethodGet)
	ctx.Request.SetRequestURI(path)
	return ctx
}

func decodeBody(t *testing.T, ctx *fasthttp.RequestCtx) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &body))
	return body
}

func TestHealthHandler(t *testing.T) {
	server := newTestServer()

	ctx := getCtx("/api/health")
	server.healthHandler(ctx)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	body := decodeBody(t, ctx)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "connected", body["database"])
}

func TestHealthHandlerDatabaseDown(t *testing.T) {
	server := newTestServer()
	server.db = &mockPinger{err: fmt.Errorf("connection refused")}

	ctx := getCtx("/api/health")
	server.healthHandler(ctx)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	body := decodeBody(t, ctx)
	assert.Equal(t, "disconnected", body["database"])
}

func TestSignupHandler(t *testing.T) {
	userID := uuid.New()

	server := newTestServer()
	server.userService = &mockUserService{
		createUserFn: func(_ context.Context, name, email, passwordHash string) (*models.User, error) {
			assert.Equal(t, "Ada", name)
			assert.Equal(t, "ada@example.com", email)
			assert.NotEqual(t, "secret-password", passwordHash)
			return &models.User{ID: userID, Name: name, Email: email}, nil
		},
	}
	server.authService = &mockAuthService{
		generateTokenFn: func(id uuid.UUID) (string, error) {
			assert.Equal(t, userID, id)
			return "signed-token", nil
		},
	}

	ctx := postCtx("/api/auth/signup", models.UserSignup{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "secret-password",
	})
	server.signupHandler(ctx)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	body := decodeBody(t, ctx)
	assert.Equal(t, "signed-token", body["token"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "ada@example.com", user["email"])
}

func TestSignupHandlerValidation(t *testing.T) {
	server := newTestServer()

	tests := []struct {
		name    string
		req     models.UserSignup
		wantMsg string
	}{
		{name: "missing name", req: models.UserSignup{Email: "a@b.co", Password: "longenough"}, wantMsg: "name is required"},
		{name: "missing email", req: models.UserSignup{Name: "Ada", Password: "longenough"}, wantMsg: "email is required"},
		{name: "bad email", req: models.UserSignup{Name: "Ada", Email: "not-an-email", Password: "longenough"}, wantMsg: "invalid email format"},
		{name: "short password", req: models.UserSignup{Name: "Ada", Email: "a@b.co", Password: "abc"}, wantMsg: "password must be at least 6 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := postCtx("/api/auth/signup", tt.req)
			server.signupHandler(ctx)

			assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
			body := decodeBody(t, ctx)
			// The client sees the field message, not the sentinel prefix.
			assert.Equal(t, tt.wantMsg, body["error"])
		})
	}
}

func TestSignupHandlerDuplicateEmail(t *testing.T) {
	server := newTestServer()
	server.userService = &mockUserService{
		createUserFn: func(_ context.Context, _, _, _ string) (*models.User, error) {
			return nil, services.ErrEmailTaken
		},
	}
	server.authService = &mockAuthService{}

	ctx := postCtx("/api/auth/signup", models.UserSignup{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "secret-password",
	})
	server.signupHandler(ctx)

	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
	body := decodeBody(t, ctx)
	assert.Equal(t, "Email already registered", body["error"])
}

func TestLoginHandler(t *testing.T) {
	userID := uuid.New()

	server := newTestServer()
	server.userService = &mockUserService{
		getByEmailFn: func(_ context.Context, email string) (*models.User, error) {
			return &models.User{ID: userID, Name: "Ada", Email: email, PasswordHash: "stored-hash"}, nil
		},
	}
	server.authService = &mockAuthService{
		verifyPasswordFn: func(password, hash string) error {
			assert.Equal(t, "stored-hash", hash)
			return nil
		},
		generateTokenFn: func(id uuid.UUID) (string, error) {
			return "signed-token", nil
		},
	}

	ctx := postCtx("/api/auth/login", models.UserLogin{Email: "ada@example.com", Password: "secret"})
	server.loginHandler(ctx)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	body := decodeBody(t, ctx)
	assert.Equal(t, "signed-token", body["token"])
}

func TestLoginHandlerRejections(t *testing.T) {
	server := newTestServer()
	server.userService = &mockUserService{
		getByEmailFn: func(_ context.Context, email string) (*models.User, error) {
			if email == "ghost@example.com" {
				return nil, services.ErrNotFound
			}
			return &models.User{ID: uuid.New(), Email: email, PasswordHash: "stored-hash"}, nil
		},
	}
	server.authService = &mockAuthService{
		verifyPasswordFn: func(password, hash string) error {
			return services.ErrInvalidCredentials
		},
	}

	t.Run("unknown email", func(t *testing.T) {
		ctx := postCtx("/api/auth/login", models.UserLogin{Email: "ghost@example.com", Password: "x"})
		server.loginHandler(ctx)

		assert.Equal(t, fasthttp.StatusUnauthorized, ctx.Response.StatusCode())
		assert.Equal(t, "Invalid credentials", decodeBody(t, ctx)["error"])
	})

	t.Run("wrong password", func(t *testing.T) {
		ctx := postCtx("/api/auth/login", models.UserLogin{Email: "ada@example.com", Password: "wrong"})
		server.loginHandler(ctx)

		assert.Equal(t, fasthttp.StatusUnauthorized, ctx.Response.StatusCode())
		assert.Equal(t, "Invalid credentials", decodeBody(t, ctx)["error"])
	})

	t.Run("missing fields", func(t *testing.T) {
		ctx := postCtx("/api/auth/login", models.UserLogin{})
		server.loginHandler(ctx)

		assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
	})
}

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()

	server := newTestServer()
	server.authService = &mockAuthService{
		validateTokenFn: func(token string) (*services.Claims, error) {
			if token != "good-token" {
				return nil, services.ErrInvalidToken
			}
			return &services.Claims{UserID: userID}, nil
		},
	}

	var nextCalled bool
	handler := server.authMiddleware(func(ctx *fasthttp.RequestCtx) {
		nextCalled = true
		id, ok := server.userID(ctx)
		assert.True(t, ok)
		assert.Equal(t, userID, id)
	})

	t.Run("missing header", func(t *testing.T) {
		ctx := getCtx("/api/auth/me")
		handler(ctx)

		assert.False(t, nextCalled)
		assert.Equal(t, fasthttp.StatusUnauthorized, ctx.Response.StatusCode())
	})

	t.Run("invalid token", func(t *testing.T) {
		ctx := getCtx("/api/auth/me")
		ctx.Request.Header.Set("Authorization", "Bearer bad-token")
		handler(ctx)

		assert.False(t, nextCalled)
		assert.Equal(t, fasthttp.StatusUnauthorized, ctx.Response.StatusCode())
	})

	t.Run("valid token", func(t *testing.T) {
		ctx := getCtx("/api/auth/me")
		ctx.Request.Header.Set("Authorization", "Bearer good-token")
		handler(ctx)

		assert.True(t, nextCalled)
	})
}

func TestMeHandler(t *testing.T) {
	userID := uuid.New()

	server := newTestServer()
	server.userService = &mockUserService{
		getByIDFn: func(_ context.Context, id uuid.UUID) (*models.User, error) {
			assert.Equal(t, userID, id)
			return &models.User{ID: userID, Name: "Ada", Email: "ada@example.com"}, nil
		},
	}

	ctx := getCtx("/api/auth/me")
	ctx.SetUserValue("user_id", userID)
	server.meHandler(ctx)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	body := decodeBody(t, ctx)
	user := body["user"].(map[string]any)
	assert.Equal(t, "Ada", user["name"])
}

func TestCreateTripHandler(t *testing.T) {
	userID := uuid.New()
	tripID := uuid.New()

	server := newTestServer()
	server.tripService = &mockTripService{
		createFn: func(_ context.Context, owner uuid.UUID, input models.TripInput) (*models.Trip, error) {
			assert.Equal(t, userID, owner)
			assert.Equal(t, "Lisbon", input.Destination)
			return &models.Trip{ID: tripID, UserID: owner, Destination: input.Destination}, nil
		},
	}

	ctx := postCtx("/api/trips", models.TripInput{
		Destination: "Lisbon",
		StartDate:   "2025-06-01",
		EndDate:     "2025-06-05",
	})
	ctx.SetUserValue("user_id", userID)
	server.createTripHandler(ctx)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	body := decodeBody(t, ctx)
	trip := body["trip"].(map[string]any)
	assert.Equal(t, tripID.String(), trip["id"])
}

func TestListTripsHandler(t *testing.T) {
	userID := uuid.New()

	server := newTestServer()
	server.tripService = &mockTripService{
		listFn: func(_ context.Context, owner uuid.UUID) ([]*models.Trip, error) {
			return []*models.Trip{
				{ID: uuid.New(), UserID: owner, Destination: "Lisbon"},
				{ID: uuid.New(), UserID: owner, Destination: "Porto"},
			}, nil
		},
	}

	ctx := getCtx("/api/trips")
	ctx.SetUserValue("user_id", userID)
	server.listTripsHandler(ctx)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	body := decodeBody(t, ctx)
	trips := body["trips"].([]any)
	assert.Len(t, trips, 2)
}

func TestGetTripHandlerNotFound(t *testing.T) {
	server := newTestServer()
	server.tripService = &mockTripService{
		getByIDFn: func(_ context.Context, _, _ uuid.UUID) (*models.Trip, error) {
			return nil, services.ErrNotFound
		},
	}

	ctx := getCtx("/api/trips/" + uuid.NewString())
	ctx.SetUserValue("user_id", uuid.New())
	ctx.SetUserValue("id", uuid.NewString())
	server.getTripHandler(ctx)

	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
	assert.Equal(t, "Trip not found", decodeBody(t, ctx)["error"])
}

func TestGetTripHandlerMalformedID(t *testing.T) {
	server := newTestServer()
	server.tripService = &mockTripService{
		getByIDFn: func(_ context.Context, _, _ uuid.UUID) (*models.Trip, error) {
			t.Fatal("service should not be called for a malformed id")
			return nil, nil
		},
	}

	ctx := getCtx("/api/trips/not-a-uuid")
	ctx.SetUserValue("user_id", uuid.New())
	ctx.SetUserValue("id", "not-a-uuid")
	server.getTripHandler(ctx)

	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
	assert.Equal(t, "Trip not found", decodeBody(t, ctx)["error"])
}

func TestDeleteTripHandler(t *testing.T) {
	server := newTestServer()
	server.tripService = &mockTripService{
		deleteFn: func(_ context.Context, _, _ uuid.UUID) error {
			return nil
		},
	}

	tripID := uuid.NewString()
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(fasthttp.MethodDelete)
	ctx.Request.SetRequestURI("/api/trips/" + tripID)
	ctx.SetUserValue("user_id", uuid.New())
	ctx.SetUserValue("id", tripID)
	server.deleteTripHandler(ctx)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "Trip deleted", decodeBody(t, ctx)["message"])
}

func TestWeatherByCoordsHandler(t *testing.T) {
	history := &mockHistoryService{}

	server := newTestServer()
	server.historyService = history
	server.weatherService = &mockWeatherService{
		byCoordsFn: func(_ context.Context, lat, lon string) (*models.WeatherResponse, *models.WeatherObservation, error) {
			assert.Equal(t, "38.72", lat)
			assert.Equal(t, "-9.14", lon)
			resp := &models.WeatherResponse{
				Current: models.CurrentWeather{Temp: 18, Location: "Lisbon, PT"},
			}
			obs := &models.WeatherObservation{Location: "Lisbon, PT", Temperature: 18}
			return resp, obs, nil
		},
	}

	ctx := getCtx("/api/weather/coords?lat=38.72&lon=-9.14")
	server.weatherByCoordsHandler(ctx)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	body := decodeBody(t, ctx)
	current := body["current"].(map[string]any)
	assert.Equal(t, "Lisbon, PT", current["location"])

	require.Len(t, history.recorded, 1)
	assert.Equal(t, "Lisbon, PT", history.recorded[0].Location)
}

func TestWeatherByCoordsHandlerMissingParams(t *testing.T) {
	server := newTestServer()

	ctx := getCtx("/api/weather/coords?lat=38.72")
	server.weatherByCoordsHandler(ctx)

	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestWeatherHistoryHandler(t *testing.T) {
	server := newTestServer()
	server.historyService = &mockHistoryService{
		queryFn: func(_ context.Context, location string, days int) ([]models.WeatherObservation, error) {
			assert.Equal(t, "Lisbon", location)
			assert.Equal(t, 7, days)
			return []models.WeatherObservation{{Location: "Lisbon, PT"}}, nil
		},
	}

	ctx := getCtx("/api/weather/history?location=Lisbon&days=7")
	server.weatherHistoryHandler(ctx)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	body := decodeBody(t, ctx)
	assert.Len(t, body["history"].([]any), 1)
}

func TestRouteHandler(t *testing.T) {
	server := newTestServer()
	server.routeService = &mockRouteService{
		calculateFn: func(_ context.Context, source, sourceLat, sourceLon, destination string) (*models.RouteResponse, error) {
			assert.Equal(t, "Lisbon", source)
			assert.Equal(t, "Porto", destination)
			return &models.RouteResponse{Distance: "313.40 km", Duration: "183 minutes"}, nil
		},
	}

	ctx := getCtx("/api/route?source=Lisbon&destination=Porto")
	server.routeHandler(ctx)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	body := decodeBody(t, ctx)
	assert.Equal(t, "313.40 km", body["distance"])
}

func TestRouteHandlerValidation(t *testing.T) {
	server := newTestServer()
	server.routeService = &mockRouteService{
		calculateFn: func(_ context.Context, _, _, _, _ string) (*models.RouteResponse, error) {
			return nil, fmt.Errorf("%w: destination is required", services.ErrValidation)
		},
	}

	ctx := getCtx("/api/route?source=Lisbon")
	server.routeHandler(ctx)

	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
	assert.Equal(t, "destination is required", decodeBody(t, ctx)["error"])
}

func TestPackingListHandler(t *testing.T) {
	server := newTestServer()

	ctx := postCtx("/api/ai/packing-list", models.PackingRequest{
		Destination: "Lisbon",
		StartDate:   "2025-06-01",
		EndDate:     "2025-06-05",
	})
	server.packingListHandler(ctx)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	body := decodeBody(t, ctx)
	assert.NotEmpty(t, body["packingList"])
	info := body["weatherInfo"].(map[string]any)
	assert.Equal(t, float64(25), info["temp"])
}

func TestPackingListHandlerValidation(t *testing.T) {
	server := newTestServer()

	ctx := postCtx("/api/ai/packing-list", models.PackingRequest{Destination: "Lisbon"})
	server.packingListHandler(ctx)

	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestSuggestHandler(t *testing.T) {
	server := newTestServer()

	ctx := postCtx("/api/ai/suggest", models.SuggestRequest{Destination: "Rome", Weather: "sunny"})
	server.suggestHandler(ctx)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	body := decodeBody(t, ctx)
	assert.Len(t, body["suggestions"].([]any), 4)
}

func TestChatHandler(t *testing.T) {
	userID := uuid.New()

	server := newTestServer()
	server.authService = &mockAuthService{
		validateTokenFn: func(token string) (*services.Claims, error) {
			if token != "good-token" {
				return nil, services.ErrInvalidToken
			}
			return &services.Claims{UserID: userID}, nil
		},
	}

	t.Run("guest", func(t *testing.T) {
		ctx := postCtx("/api/ai/chat", models.ChatRequest{Message: "hello"})
		server.chatHandler(ctx)

		require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
		body := decodeBody(t, ctx)
		assert.NotEmpty(t, body["response"])
		assert.Nil(t, body["userId"])
	})

	t.Run("authenticated", func(t *testing.T) {
		ctx := postCtx("/api/ai/chat", models.ChatRequest{Message: "hello"})
		ctx.Request.Header.Set("Authorization", "Bearer good-token")
		server.chatHandler(ctx)

		require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
		body := decodeBody(t, ctx)
		assert.Equal(t, userID.String(), body["userId"])
	})

	t.Run("missing message", func(t *testing.T) {
		ctx := postCtx("/api/ai/chat", models.ChatRequest{})
		server.chatHandler(ctx)

		assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
	})
}

func TestPlacesHandlers(t *testing.T) {
	server := newTestServer()

	t.Run("accommodation", func(t *testing.T) {
		ctx := getCtx("/api/places/accommodation?location=Lisbon")
		server.accommodationHandler(ctx)

		require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
		body := decodeBody(t, ctx)
		listings := body["accommodations"].([]any)
		require.Len(t, listings, 3)
		first := listings[0].(map[string]any)
		assert.Equal(t, "Grand Hotel Lisbon", first["name"])
	})

	t.Run("restaurants", func(t *testing.T) {
		ctx := getCtx("/api/places/restaurants?location=Lisbon")
		server.restaurantsHandler(ctx)

		require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
		body := decodeBody(t, ctx)
		assert.Len(t, body["restaurants"].([]any), 3)
	})

	t.Run("events default location", func(t *testing.T) {
		ctx := getCtx("/api/places/events")
		server.eventsHandler(ctx)

		require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
		body := decodeBody(t, ctx)
		events := body["events"].([]any)
		first := events[0].(map[string]any)
		assert.Equal(t, "Unknown Music Festival", first["name"])
	})
}
