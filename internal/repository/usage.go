package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/tripstar/backend/internal/models"
)

type UsageRepository struct {
	db *pgxpool.Pool
}

// NewUsageRepository создает репозиторий учета генераций.
func NewUsageRepository(db *pgxpool.Pool) *UsageRepository {
	return &UsageRepository{db: db}
}

// Record фиксирует одну генерацию маршрута.
func (r *UsageRepository) Record(ctx context.Context, userID uuid.UUID, plan models.Plan) (models.UsageRecord, error) {
	var record models.UsageRecord

	err := r.db.QueryRow(ctx,
		`INSERT INTO usage_records (id, user_id, plan, used_at)
		 VALUES ($1, $2, $3, NOW())
		 RETURNING id, user_id, plan, used_at, created_at`,
		uuid.New(), userID, plan,
	).Scan(&record.ID, &record.UserID, &record.Plan, &record.UsedAt, &record.CreatedAt)
	if err != nil {
		return record, err
	}

	return record, nil
}

// CountForDay возвращает число генераций пользователя за календарные сутки UTC.
func (r *UsageRepository) CountForDay(ctx context.Context, userID uuid.UUID, day time.Time) (int, error) {
	start := time.Date(day.UTC().Year(), day.UTC().Month(), day.UTC().Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*)
		 FROM usage_records
		 WHERE user_id = $1 AND used_at >= $2 AND used_at < $3`,
		userID, start, end,
	).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// LastUsedAt возвращает время последней генерации пользователя.
func (r *UsageRepository) LastUsedAt(ctx context.Context, userID uuid.UUID) (*time.Time, error) {
	var usedAt time.Time
	err := r.db.QueryRow(ctx,
		`SELECT used_at
		 FROM usage_records
		 WHERE user_id = $1
		 ORDER BY used_at DESC
		 LIMIT 1`,
		userID,
	).Scan(&usedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &usedAt, nil
}
