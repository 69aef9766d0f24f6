package repositories

import (
	"context"

	"taskhub/internal/api/domain/entities"
)

// UserRepository определяет операции хранилища над пользователями.
type UserRepository interface {
	// Create сохраняет нового пользователя. Нарушение уникальности email
	// возвращается как entities.ErrEmailAlreadyExists.
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}
