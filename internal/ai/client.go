package ai

import "context"

// Роли сообщений в диалоге с генератором маршрутов.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Общие настройки генерации для всех провайдеров. Многодневный маршрут с
// pro-полями не помещается в стандартные лимиты, поэтому запас токенов
// выше обычного.
const (
	defaultMaxTokens   = 5500
	defaultTemperature = 0.7
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client абстрагирует LLM-провайдера: возвращает текст ответа и сырое тело
// для журнала запросов.
type Client interface {
	Chat(ctx context.Context, messages []Message) (string, []byte, error)
}

func resolveMaxTokens(value int) int {
	if value > 0 {
		return value
	}

	return defaultMaxTokens
}
