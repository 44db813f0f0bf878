package models

import "time"

// User представляет зарегистрированного пользователя
type User struct {
	CreatedAt    time.Time `json:"createdAt"` // время регистрации
	ID           string    `json:"id"`        // UUID пользователя
	Username     string    `json:"username"`  // уникальный username
	Email        string    `json:"email"`     // уникальный email
	PasswordHash string    `json:"-"`         // bcrypt хеш, plaintext никогда не хранится
}
