package api

// SignupRequest представляет запрос на регистрацию нового пользователя
type SignupRequest struct {
	Username string `json:"username"` // уникальный username
	Email    string `json:"email"`    // уникальный email
	Password string `json:"password"` // пароль в открытом виде, хранится только bcrypt хеш
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse представляет ответ с bearer токеном
type TokenResponse struct {
	Token string `json:"token"` // JWT, живет один час
}

// MessageResponse представляет ответ с сообщением об успехе
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Message string `json:"message"`         // короткое описание ошибки
	Error   string `json:"error,omitempty"` // исходная ошибка, если есть
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`            // ok или unavailable
	Version string `json:"version,omitempty"` // версия сервера
}
