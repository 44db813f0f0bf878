package models

import "time"

// Task представляет задачу пользователя
type Task struct {
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	DueDate     *time.Time `json:"dueDate"` // nil после edit без dueDate
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	OwnerID     string     `json:"userId"`
	Completed   bool       `json:"completed"`
}

// NewTask создает задачу владельца ownerID.
// createdAt и updatedAt совпадают и дальше не обновляются.
// Время округляется до миллисекунд: с такой точностью его хранит sqlite.
func NewTask(id, ownerID, title, description string, dueDate time.Time, now time.Time) *Task {
	now = now.UTC().Truncate(time.Millisecond)
	due := dueDate.UTC()
	return &Task{
		ID:          id,
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		DueDate:     &due,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
