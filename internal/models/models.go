package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Plan string

const (
	PlanFree      Plan = "free"
	PlanPro       Plan = "pro"
	PlanPerExport Plan = "per_export"
)

// Valid сообщает, известен ли тарифный план.
func (p Plan) Valid() bool {
	switch p {
	case PlanFree, PlanPro, PlanPerExport:
		return true
	}
	return false
}

type User struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Plan         Plan       `json:"plan"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type RefreshToken struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	TokenHash  string     `json:"-"`
	ExpiresAt  time.Time  `json:"expires_at"`
	CreatedAt  time.Time  `json:"created_at"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
	ReplacedBy *uuid.UUID `json:"replaced_by,omitempty"`
}

// SavedItinerary хранит сгенерированный маршрут вместе с параметрами запроса.
type SavedItinerary struct {
	ID           uuid.UUID       `json:"id"`
	UserID       uuid.UUID       `json:"user_id"`
	Destinations []string        `json:"destinations"`
	StartDate    time.Time       `json:"start_date"`
	EndDate      time.Time       `json:"end_date"`
	Plan         Plan            `json:"plan"`
	Document     json.RawMessage `json:"document"`
	CreatedAt    time.Time       `json:"created_at"`
}

// UsageRecord фиксирует одно использование генерации для подсчета дневной квоты.
type UsageRecord struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Plan      Plan      `json:"plan"`
	UsedAt    time.Time `json:"used_at"`
	CreatedAt time.Time `json:"created_at"`
}
