// Package postgres реализует репозитории поверх PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"taskhub/internal/api/domain/entities"
	"taskhub/internal/api/ports/repositories"
	"taskhub/pkg/logger"
)

// PgxPoolInterface описывает используемое подмножество pgxpool.Pool.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

// TaskRepository реализует интерфейс repositories.TaskRepository.
type TaskRepository struct {
	pool PgxPoolInterface
}

// NewTaskRepository создает новый репозиторий задач.
func NewTaskRepository(pool PgxPoolInterface) repositories.TaskRepository {
	return &TaskRepository{pool: pool}
}

// List возвращает все задачи, отсортированные по updated_at по убыванию.
func (r *TaskRepository) List(ctx context.Context) ([]*entities.Task, error) {
	log := logger.Log(ctx).With(zap.String("repository", "task"), zap.String("method", "List"))

	query := `
        SELECT id, title, description, done, created_at, updated_at
        FROM tasks
        ORDER BY updated_at DESC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		log.Error(ctx, "error listing tasks", zap.Error(err))
		return nil, fmt.Errorf("error listing tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]*entities.Task, 0)
	for rows.Next() {
		var task entities.Task
		err := rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.Done,
			&task.CreatedAt,
			&task.UpdatedAt,
		)
		if err != nil {
			log.Error(ctx, "error scanning task row", zap.Error(err))
			return nil, fmt.Errorf("error scanning task row: %w", err)
		}
		tasks = append(tasks, &task)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating task rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}

	return tasks, nil
}

// GetByID находит задачу по ID.
func (r *TaskRepository) GetByID(ctx context.Context, id string) (*entities.Task, error) {
	log := logger.Log(ctx).With(zap.String("repository", "task"), zap.String("method", "GetByID"))

	query := `
        SELECT id, title, description, done, created_at, updated_at
        FROM tasks
        WHERE id = $1
    `

	var task entities.Task
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Done,
		&task.CreatedAt,
		&task.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "task not found", zap.String("id", id))
			return nil, entities.ErrTaskNotFound
		}
		log.Error(ctx, "error finding task by id", zap.Error(err))
		return nil, fmt.Errorf("error querying task by id: %w", err)
	}

	return &task, nil
}

// Create создает новую задачу. ID и временные метки назначает база.
func (r *TaskRepository) Create(ctx context.Context, task *entities.Task) (*entities.Task, error) {
	log := logger.Log(ctx).With(zap.String("repository", "task"), zap.String("method", "Create"))

	query := `
        INSERT INTO tasks (title, description, done)
        VALUES ($1, $2, $3)
        RETURNING id, title, description, done, created_at, updated_at
    `

	var createdTask entities.Task
	err := r.pool.QueryRow(ctx, query,
		task.Title,
		task.Description,
		task.Done,
	).Scan(
		&createdTask.ID,
		&createdTask.Title,
		&createdTask.Description,
		&createdTask.Done,
		&createdTask.CreatedAt,
		&createdTask.UpdatedAt,
	)

	if err != nil {
		log.Error(ctx, "error creating task", zap.Error(err))
		return nil, fmt.Errorf("error creating task: %w", err)
	}

	return &createdTask, nil
}

// Update перезаписывает поля задачи и обновляет updated_at.
func (r *TaskRepository) Update(ctx context.Context, task *entities.Task) (*entities.Task, error) {
	log := logger.Log(ctx).With(zap.String("repository", "task"), zap.String("method", "Update"))

	query := `
        UPDATE tasks
        SET title = $2, description = $3, done = $4, updated_at = now()
        WHERE id = $1
        RETURNING id, title, description, done, created_at, updated_at
    `

	var updatedTask entities.Task
	err := r.pool.QueryRow(ctx, query,
		task.ID,
		task.Title,
		task.Description,
		task.Done,
	).Scan(
		&updatedTask.ID,
		&updatedTask.Title,
		&updatedTask.Description,
		&updatedTask.Done,
		&updatedTask.CreatedAt,
		&updatedTask.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "task not found for update", zap.String("id", task.ID))
			return nil, entities.ErrTaskNotFound
		}
		log.Error(ctx, "error updating task", zap.Error(err))
		return nil, fmt.Errorf("error updating task: %w", err)
	}

	return &updatedTask, nil
}

// Delete удаляет задачу по ID.
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("repository", "task"), zap.String("method", "Delete"))

	query := `
        DELETE FROM tasks
        WHERE id = $1
    `

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		log.Error(ctx, "error deleting task", zap.Error(err))
		return fmt.Errorf("error deleting task: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "task not found for deletion", zap.String("id", id))
		return entities.ErrTaskNotFound
	}

	return nil
}
