package server

import "github.com/go-playground/validator/v10"

type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator создает echo-валидатор на базе go-playground/validator.
// Проверяет структурные теги; порядковая валидация формы поездки живет
// в TripRequest.Validate.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate запускает проверку структуры по тегам.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
