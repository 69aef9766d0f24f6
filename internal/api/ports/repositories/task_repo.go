// Package repositories определяет интерфейсы доступа к хранилищу.
package repositories

import (
	"context"

	"taskhub/internal/api/domain/entities"
)

// TaskRepository определяет операции хранилища над задачами.
// Методы, принимающие id несуществующей задачи, возвращают
// entities.ErrTaskNotFound.
type TaskRepository interface {
	List(ctx context.Context) ([]*entities.Task, error)

	GetByID(ctx context.Context, id string) (*entities.Task, error)

	Create(ctx context.Context, task *entities.Task) (*entities.Task, error)

	Update(ctx context.Context, task *entities.Task) (*entities.Task, error)

	Delete(ctx context.Context, id string) error
}
