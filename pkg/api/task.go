package api

import "time"

// Task представление задачи в API
type Task struct {
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	DueDate     *time.Time `json:"dueDate"`
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	UserID      string     `json:"userId"` // владелец задачи
	Completed   bool       `json:"completed"`
}

// TaskRequest тело запроса создания и полного редактирования задачи.
// dueDate передается строкой YYYY-MM-DD или RFC 3339.
type TaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	Completed   bool   `json:"completed"` // учитывается только при редактировании
}

// TaskResponse ответ на операцию над одной задачей
type TaskResponse struct {
	Task    *Task  `json:"task"`
	Message string `json:"message"`
}
