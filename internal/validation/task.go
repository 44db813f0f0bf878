package validation

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout формат даты без времени, например 2024-01-01
const DateLayout = "2006-01-02"

// ErrInvalidDate возвращается для dueDate, который не удалось разобрать
var ErrInvalidDate = errors.New("invalid date")

// ParseDueDate разбирает dueDate в формате YYYY-MM-DD или RFC 3339.
// Результат всегда в UTC.
func ParseDueDate(value string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("dueDate %q: %w", value, ErrInvalidDate)
}

// ValidateNewTask проверяет поля создаваемой задачи и возвращает разобранный dueDate
func ValidateNewTask(title, dueDate string) (time.Time, error) {
	if err := errors.Join(Required("title", title), Required("dueDate", dueDate)); err != nil {
		return time.Time{}, err
	}
	return ParseDueDate(dueDate)
}

// ParseOptionalDueDate разбирает dueDate при полной перезаписи задачи.
// Пустое значение означает "очистить" и возвращает nil.
func ParseOptionalDueDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := ParseDueDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
