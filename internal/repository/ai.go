package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AIRepository struct {
	db *pgxpool.Pool
}

type AIRequestLog struct {
	UserID       uuid.UUID
	Kind         string
	Provider     string
	Model        string
	Prompt       string
	RawResponse  string
	Success      bool
	DurationMS   int64
	ErrorMessage *string
}

// NewAIRepository создает репозиторий для AI-запросов.
func NewAIRepository(db *pgxpool.Pool) *AIRepository {
	return &AIRepository{db: db}
}

// LogRequest сохраняет лог AI-запроса.
func (r *AIRepository) LogRequest(ctx context.Context, log AIRequestLog) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO ai_requests
		 (user_id, kind, provider, model, prompt, raw_response, success, duration_ms, error_message)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		log.UserID,
		log.Kind,
		log.Provider,
		log.Model,
		log.Prompt,
		log.RawResponse,
		log.Success,
		log.DurationMS,
		log.ErrorMessage,
	)
	return err
}
