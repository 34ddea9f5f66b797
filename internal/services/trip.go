package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/skycast/api/internal/models"
)

// dateLayout is the wire format for trip dates.
const dateLayout = "2006-01-02"

// TripService handles owner-scoped trip persistence. Every query filters on
// both trip id and user id, so "does not exist" and "belongs to someone else"
// are one code path and indistinguishable to callers.
type TripService struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

// NewTripService creates a new trip service
func NewTripService(db *pgxpool.Pool, logger *zap.Logger) *TripService {
	return &TripService{
		db:     db,
		logger: logger,
	}
}

// Create persists a new trip owned by userID
func (s *TripService) Create(ctx context.Context, userID uuid.UUID, input models.TripInput) (*models.Trip, error) {
	start, end, err := validateTripInput(&input)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO trips (user_id, destination, start_date, end_date, itinerary, packing_list, accommodation, restaurants, events)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, user_id, destination, start_date, end_date, itinerary, packing_list, accommodation, restaurants, events, created_at
	`

	row := s.db.QueryRow(ctx, query,
		userID, input.Destination, start, end,
		input.Itinerary, input.PackingList, input.Accommodation, input.Restaurants, input.Events)

	trip, err := scanTrip(row)
	if err != nil {
		s.logger.Error("Failed to create trip", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}

	s.logger.Info("Trip created",
		zap.String("trip_id", trip.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("destination", trip.Destination))

	return trip, nil
}

// List returns all trips owned by userID, newest-created first
func (s *TripService) List(ctx context.Context, userID uuid.UUID) ([]*models.Trip, error) {
	query := `
		SELECT id, user_id, destination, start_date, end_date, itinerary, packing_list, accommodation, restaurants, events, created_at
		FROM trips
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		s.logger.Error("Failed to query trips", zap.Error(err))
		return nil, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	trips := []*models.Trip{}
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			s.logger.Error("Failed to scan trip row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, trip)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trips: %w", err)
	}

	return trips, nil
}

// GetByID returns the trip if it exists and is owned by userID
func (s *TripService) GetByID(ctx context.Context, userID, tripID uuid.UUID) (*models.Trip, error) {
	query := `
		SELECT id, user_id, destination, start_date, end_date, itinerary, packing_list, accommodation, restaurants, events, created_at
		FROM trips
		WHERE id = $1 AND user_id = $2
	`

	trip, err := scanTrip(s.db.QueryRow(ctx, query, tripID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		s.logger.Error("Failed to query trip", zap.Error(err))
		return nil, fmt.Errorf("failed to query trip: %w", err)
	}

	return trip, nil
}

// Update replaces the caller-settable fields of an owned trip.
// Last write wins; a trip has a single owner and concurrent editing is not a
// supported scenario.
func (s *TripService) Update(ctx context.Context, userID, tripID uuid.UUID, input models.TripInput) (*models.Trip, error) {
	start, end, err := validateTripInput(&input)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE trips
		SET destination = $3, start_date = $4, end_date = $5, itinerary = $6,
		    packing_list = $7, accommodation = $8, restaurants = $9, events = $10
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, destination, start_date, end_date, itinerary, packing_list, accommodation, restaurants, events, created_at
	`

	row := s.db.QueryRow(ctx, query,
		tripID, userID, input.Destination, start, end,
		input.Itinerary, input.PackingList, input.Accommodation, input.Restaurants, input.Events)

	trip, err := scanTrip(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		s.logger.Error("Failed to update trip", zap.Error(err))
		return nil, fmt.Errorf("failed to update trip: %w", err)
	}

	return trip, nil
}

// Delete removes an owned trip
func (s *TripService) Delete(ctx context.Context, userID, tripID uuid.UUID) error {
	query := `DELETE FROM trips WHERE id = $1 AND user_id = $2`

	tag, err := s.db.Exec(ctx, query, tripID, userID)
	if err != nil {
		s.logger.Error("Failed to delete trip", zap.Error(err))
		return fmt.Errorf("failed to delete trip: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	s.logger.Info("Trip deleted",
		zap.String("trip_id", tripID.String()),
		zap.String("user_id", userID.String()))

	return nil
}

// validateTripInput checks required fields, parses the dates and fills the
// nil slice fields so stored documents always hold arrays.
func validateTripInput(input *models.TripInput) (start, end time.Time, err error) {
	if input.Destination == "" {
		return start, end, fmt.Errorf("%w: destination is required", ErrValidation)
	}

	start, err = time.Parse(dateLayout, input.StartDate)
	if err != nil {
		return start, end, fmt.Errorf("%w: startDate must be YYYY-MM-DD", ErrValidation)
	}

	end, err = time.Parse(dateLayout, input.EndDate)
	if err != nil {
		return start, end, fmt.Errorf("%w: endDate must be YYYY-MM-DD", ErrValidation)
	}

	if end.Before(start) {
		return start, end, fmt.Errorf("%w: endDate must not be before startDate", ErrValidation)
	}

	if input.Itinerary == nil {
		input.Itinerary = []models.ItineraryDay{}
	}
	if input.PackingList == nil {
		input.PackingList = []models.PackingItem{}
	}
	if input.Restaurants == nil {
		input.Restaurants = []models.Restaurant{}
	}
	if input.Events == nil {
		input.Events = []models.Event{}
	}

	return start, end, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps one trips row into a models.Trip. JSONB columns unmarshal
// directly into the nested document types.
func scanTrip(row scanner) (*models.Trip, error) {
	trip := &models.Trip{}
	var start, end time.Time

	err := row.Scan(
		&trip.ID,
		&trip.UserID,
		&trip.Destination,
		&start,
		&end,
		&trip.Itinerary,
		&trip.PackingList,
		&trip.Accommodation,
		&trip.Restaurants,
		&trip.Events,
		&trip.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	trip.StartDate = start.Format(dateLayout)
	trip.EndDate = end.Format(dateLayout)

	return trip, nil
}
