package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/tripstar/backend/internal/models"
)

type ItineraryRepository struct {
	db *pgxpool.Pool
}

// NewItineraryRepository создает репозиторий сохраненных маршрутов.
func NewItineraryRepository(db *pgxpool.Pool) *ItineraryRepository {
	return &ItineraryRepository{db: db}
}

// Save сохраняет сгенерированный маршрут пользователя.
func (r *ItineraryRepository) Save(ctx context.Context, itinerary models.SavedItinerary) (models.SavedItinerary, error) {
	if itinerary.ID == uuid.Nil {
		itinerary.ID = uuid.New()
	}

	err := r.db.QueryRow(ctx,
		`INSERT INTO saved_itineraries (id, user_id, destinations, start_date, end_date, plan, document)
		 VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb)
		 RETURNING created_at`,
		itinerary.ID,
		itinerary.UserID,
		itinerary.Destinations,
		itinerary.StartDate,
		itinerary.EndDate,
		itinerary.Plan,
		string(itinerary.Document),
	).Scan(&itinerary.CreatedAt)
	if err != nil {
		return itinerary, err
	}

	return itinerary, nil
}

// ListByUser возвращает сохраненные маршруты пользователя, новые первыми.
func (r *ItineraryRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.SavedItinerary, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, destinations, start_date, end_date, plan, document, created_at
		 FROM saved_itineraries
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	itineraries := make([]models.SavedItinerary, 0)
	for rows.Next() {
		var itinerary models.SavedItinerary

		err := rows.Scan(
			&itinerary.ID,
			&itinerary.UserID,
			&itinerary.Destinations,
			&itinerary.StartDate,
			&itinerary.EndDate,
			&itinerary.Plan,
			&itinerary.Document,
			&itinerary.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		itineraries = append(itineraries, itinerary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return itineraries, nil
}

// GetByID возвращает сохраненный маршрут пользователя.
func (r *ItineraryRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (models.SavedItinerary, error) {
	var itinerary models.SavedItinerary

	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, destinations, start_date, end_date, plan, document, created_at
		 FROM saved_itineraries
		 WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(
		&itinerary.ID,
		&itinerary.UserID,
		&itinerary.Destinations,
		&itinerary.StartDate,
		&itinerary.EndDate,
		&itinerary.Plan,
		&itinerary.Document,
		&itinerary.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return itinerary, ErrNotFound
		}
		return itinerary, err
	}

	return itinerary, nil
}

// Delete удаляет сохраненный маршрут пользователя.
func (r *ItineraryRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx,
		`DELETE FROM saved_itineraries
		 WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
