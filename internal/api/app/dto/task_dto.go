// Package dto содержит объекты передачи данных HTTP API.
package dto

import (
	"time"

	"taskhub/internal/api/app/validation"
	"taskhub/internal/api/domain/entities"
)

// Сообщения валидации задач.
const (
	MsgTitleRequired      = "Title is required"
	MsgTitleTooLong       = "Keep the title under 80 characters"
	MsgDescriptionTooLong = "Description should be short"
)

// Границы длины полей задачи.
const (
	TitleMaxLen       = 80
	DescriptionMaxLen = 200
)

// CreateTaskRequest содержит данные для создания задачи.
// Указатели отличают отсутствующее поле от пустого значения.
type CreateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Done        *bool   `json:"done"`
}

// Validate проверяет запрос на создание задачи.
func (r *CreateTaskRequest) Validate() []validation.Violation {
	return validation.Schema{
		validation.String{
			Field:           "title",
			Value:           r.Title,
			Required:        true,
			RequiredMessage: MsgTitleRequired,
			MinLen:          1,
			MinMessage:      MsgTitleRequired,
			MaxLen:          TitleMaxLen,
			MaxMessage:      MsgTitleTooLong,
		},
		validation.String{
			Field:      "description",
			Value:      r.Description,
			MaxLen:     DescriptionMaxLen,
			MaxMessage: MsgDescriptionTooLong,
		},
	}.Validate()
}

// UpdateTaskRequest содержит данные для частичного обновления задачи.
// Все поля опциональны: пустое тело запроса - валидное no-op обновление.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Done        *bool   `json:"done"`
}

// Validate проверяет запрос на обновление задачи.
func (r *UpdateTaskRequest) Validate() []validation.Violation {
	return validation.Schema{
		validation.String{
			Field:      "title",
			Value:      r.Title,
			MinLen:     1,
			MinMessage: MsgTitleRequired,
			MaxLen:     TitleMaxLen,
			MaxMessage: MsgTitleTooLong,
		},
		validation.String{
			Field:      "description",
			Value:      r.Description,
			MaxLen:     DescriptionMaxLen,
			MaxMessage: MsgDescriptionTooLong,
		},
	}.Validate()
}

// TaskResponse содержит представление задачи в API.
type TaskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Done        bool      `json:"done"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewTaskResponse создает TaskResponse из доменной сущности.
func NewTaskResponse(task *entities.Task) *TaskResponse {
	return &TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Done:        task.Done,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// NewTaskListResponse создает список TaskResponse из доменных сущностей.
func NewTaskListResponse(tasks []*entities.Task) []*TaskResponse {
	responses := make([]*TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, NewTaskResponse(task))
	}
	return responses
}
