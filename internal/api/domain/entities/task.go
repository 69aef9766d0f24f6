// Package entities определяет доменные сущности сервиса.
package entities

import (
	"errors"
	"time"
)

// Ошибки домена задач.
var ErrTaskNotFound = errors.New("task not found")

// Task представляет собой задачу.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Done        bool      `json:"done"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
