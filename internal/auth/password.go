package auth

import "golang.org/x/crypto/bcrypt"

const passwordHashCost = bcrypt.DefaultCost

// HashPassword возвращает bcrypt-хэш пароля пользователя.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// ComparePassword проверяет пароль против сохраненного bcrypt-хэша.
func ComparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
