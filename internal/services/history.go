package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/skycast/api/internal/models"
)

// historyQueryLimit caps a history query result.
const historyQueryLimit = 100

// HistoryService appends and queries past weather observations. Records are
// never updated or deleted by the application.
type HistoryService struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

// NewHistoryService creates a new history service
func NewHistoryService(db *pgxpool.Pool, logger *zap.Logger) *HistoryService {
	return &HistoryService{
		db:     db,
		logger: logger,
	}
}

// Record appends one observation
func (s *HistoryService) Record(ctx context.Context, obs models.WeatherObservation) error {
	query := `
		INSERT INTO weather_history (location, observed_at, temperature, conditions, precipitation)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.db.Exec(ctx, query,
		obs.Location, obs.ObservedAt, obs.Temperature, obs.Conditions, obs.Precipitation)
	if err != nil {
		return fmt.Errorf("failed to record observation: %w", err)
	}

	return nil
}

// RecordAsync appends an observation in the background. Failures are logged
// and swallowed; a history write must never fail the primary request.
func (s *HistoryService) RecordAsync(obs models.WeatherObservation) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.Record(ctx, obs); err != nil {
			s.logger.Warn("Weather history save failed",
				zap.Error(err),
				zap.String("location", obs.Location))
		}
	}()
}

// Query returns observations whose location contains the given substring
// (case-insensitive) observed within the last `days` days, newest first.
func (s *HistoryService) Query(ctx context.Context, location string, days int) ([]models.WeatherObservation, error) {
	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)

	query := `
		SELECT id, location, observed_at, temperature, conditions, precipitation
		FROM weather_history
		WHERE location ILIKE '%' || $1 || '%' AND observed_at >= $2
		ORDER BY observed_at DESC
		LIMIT $3
	`

	rows, err := s.db.Query(ctx, query, location, since, historyQueryLimit)
	if err != nil {
		s.logger.Error("Failed to query weather history", zap.Error(err))
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	history := []models.WeatherObservation{}
	for rows.Next() {
		var obs models.WeatherObservation
		err := rows.Scan(
			&obs.ID,
			&obs.Location,
			&obs.ObservedAt,
			&obs.Temperature,
			&obs.Conditions,
			&obs.Precipitation,
		)
		if err != nil {
			s.logger.Error("Failed to scan history row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan history: %w", err)
		}
		history = append(history, obs)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history: %w", err)
	}

	return history, nil
}
