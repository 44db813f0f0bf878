package validation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRequired помечает отсутствующее обязательное поле
var ErrRequired = errors.New("is required")

// Required проверяет, что значение поля не пустое
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s %w", field, ErrRequired)
	}
	return nil
}

// ValidateSignup проверяет обязательные поля регистрации.
// Уникальность username и email проверяет хранилище.
func ValidateSignup(username, email, password string) error {
	return errors.Join(
		Required("username", username),
		Required("email", email),
		requiredPassword(password),
	)
}

// ValidateLogin проверяет наличие email и пароля
func ValidateLogin(email, password string) error {
	return errors.Join(
		Required("email", email),
		requiredPassword(password),
	)
}

// пароль не тримим: пробелы являются частью пароля
func requiredPassword(password string) error {
	if password == "" {
		return fmt.Errorf("password %w", ErrRequired)
	}
	return nil
}
