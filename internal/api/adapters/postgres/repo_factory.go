package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"taskhub/internal/api/ports/repositories"
)

// RepositoryFactory создает все необходимые репозитории для работы с PostgreSQL.
type RepositoryFactory struct {
	taskRepo repositories.TaskRepository
	userRepo repositories.UserRepository
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool *pgxpool.Pool) *RepositoryFactory {
	return &RepositoryFactory{
		taskRepo: NewTaskRepository(pool),
		userRepo: NewUserRepository(pool),
	}
}

// TaskRepository возвращает репозиторий задач.
func (f *RepositoryFactory) TaskRepository() repositories.TaskRepository {
	return f.taskRepo
}

// UserRepository возвращает репозиторий пользователей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return f.userRepo
}
