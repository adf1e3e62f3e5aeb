package model

import "time"

type Task struct {
	ID string `json:"id"`
	Title string `json:"title"`
	Description string `json:"description,omitempty"`
	Completed bool `json:"completed"`
	UserID string `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TaskUpdate - частичное обновление, nil-поля остаются как есть
type TaskUpdate struct {
	Title *string `json:"title"`
	Description *string `json:"description"`
	Completed *bool `json:"completed"`
}
