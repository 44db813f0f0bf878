// Package password хеширует и проверяет пароли пользователей с помощью bcrypt.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost work factor bcrypt для новых хешей
const DefaultCost = 10

var (
	// ErrEmptyPassword возвращается при попытке захешировать пустой пароль
	ErrEmptyPassword = errors.New("password cannot be empty")

	// ErrPasswordTooLong возвращается для паролей длиннее 72 байт (ограничение bcrypt)
	ErrPasswordTooLong = errors.New("password must not exceed 72 bytes")
)

// Hasher вычисляет и проверяет bcrypt хеши
type Hasher struct {
	cost int
}

// NewHasher создает Hasher с указанным cost.
// Значения вне [bcrypt.MinCost, bcrypt.MaxCost] заменяются на DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash возвращает bcrypt хеш пароля, каждый раз с новой солью
func (h *Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// Compare сообщает, соответствует ли пароль хешу.
// Поврежденный хеш считается несовпадением.
func (h *Hasher) Compare(hash, password string) bool {
	if hash == "" || password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
