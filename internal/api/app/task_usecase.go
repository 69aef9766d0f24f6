// Package app реализует бизнес-логику сервиса.
package app

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"taskhub/internal/api/app/dto"
	"taskhub/internal/api/domain/entities"
	"taskhub/internal/api/ports/cache"
	"taskhub/internal/api/ports/repositories"
	"taskhub/pkg/logger"
)

// TaskListCacheKey - ключ кэша списка задач.
const TaskListCacheKey = "tasks:all"

const (
	methodListTasks  = "ListTasks"
	methodGetTask    = "GetTask"
	methodCreateTask = "CreateTask"
	methodUpdateTask = "UpdateTask"
	methodDeleteTask = "DeleteTask"

	msgTaskListCacheHit   = "task list served from cache"
	msgTaskCreated        = "task created"
	msgTaskUpdated        = "task updated"
	msgTaskDeleted        = "task deleted"
	msgErrReadCache       = "failed to read task list cache"
	msgErrWriteCache      = "failed to write task list cache"
	msgErrInvalidateCache = "failed to invalidate task list cache"
	msgErrDecodeCache     = "failed to decode cached task list"

	errCtxListingTasks = "listing tasks"
	errCtxFetchingTask = "fetching task"
	errCtxCreatingTask = "creating task"
	errCtxUpdatingTask = "updating task"
	errCtxDeletingTask = "deleting task"
)

// TaskUseCase реализует операции над задачами.
// Кэш является необязательным ускорением: его ошибки логируются,
// но никогда не приводят к отказу запроса.
type TaskUseCase struct {
	taskRepo repositories.TaskRepository
	cache    cache.Cache
}

// NewTaskUseCase создает новый экземпляр TaskUseCase.
// Кэш может быть nil, тогда все чтения идут в базу.
func NewTaskUseCase(taskRepo repositories.TaskRepository, taskCache cache.Cache) *TaskUseCase {
	return &TaskUseCase{
		taskRepo: taskRepo,
		cache:    taskCache,
	}
}

// ListTasks возвращает все задачи, отсортированные по updated_at по убыванию.
func (uc *TaskUseCase) ListTasks(ctx context.Context) ([]*entities.Task, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListTasks))

	if cached, ok := uc.readCachedList(ctx); ok {
		log.Debug(ctx, msgTaskListCacheHit)
		return cached, nil
	}

	tasks, err := uc.taskRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingTasks, err)
	}

	uc.writeCachedList(ctx, tasks)
	return tasks, nil
}

// GetTask возвращает задачу по ID.
func (uc *TaskUseCase) GetTask(ctx context.Context, id string) (*entities.Task, error) {
	task, err := uc.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxFetchingTask, err)
	}
	return task, nil
}

// CreateTask создает новую задачу из валидированного запроса.
// Поле done по умолчанию false, если не передано.
func (uc *TaskUseCase) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*entities.Task, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateTask))

	task := &entities.Task{
		Title: *req.Title,
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Done != nil {
		task.Done = *req.Done
	}

	created, err := uc.taskRepo.Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCreatingTask, err)
	}

	uc.invalidateCache(ctx)
	log.Info(ctx, msgTaskCreated, zap.String("taskID", created.ID))
	return created, nil
}

// UpdateTask применяет частичное обновление к существующей задаче:
// меняются только переданные поля, после чего слитая запись сохраняется
// целиком. Пустой запрос - валидный no-op (updated_at все равно обновится).
func (uc *TaskUseCase) UpdateTask(ctx context.Context, id string, req *dto.UpdateTaskRequest) (*entities.Task, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateTask), zap.String("taskID", id))

	task, err := uc.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingTask, err)
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Done != nil {
		task.Done = *req.Done
	}

	updated, err := uc.taskRepo.Update(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingTask, err)
	}

	uc.invalidateCache(ctx)
	log.Info(ctx, msgTaskUpdated)
	return updated, nil
}

// DeleteTask удаляет задачу по ID.
func (uc *TaskUseCase) DeleteTask(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteTask), zap.String("taskID", id))

	if err := uc.taskRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", errCtxDeletingTask, err)
	}

	uc.invalidateCache(ctx)
	log.Info(ctx, msgTaskDeleted)
	return nil
}

func (uc *TaskUseCase) readCachedList(ctx context.Context) ([]*entities.Task, bool) {
	if uc.cache == nil {
		return nil, false
	}
	log := logger.Log(ctx)

	value, err := uc.cache.Get(ctx, TaskListCacheKey)
	if err != nil {
		log.Warn(ctx, msgErrReadCache, zap.Error(err))
		return nil, false
	}
	if value == "" {
		return nil, false
	}

	var tasks []*entities.Task
	if err := json.Unmarshal([]byte(value), &tasks); err != nil {
		log.Warn(ctx, msgErrDecodeCache, zap.Error(err))
		return nil, false
	}
	return tasks, true
}

func (uc *TaskUseCase) writeCachedList(ctx context.Context, tasks []*entities.Task) {
	if uc.cache == nil {
		return
	}
	log := logger.Log(ctx)

	payload, err := json.Marshal(tasks)
	if err != nil {
		log.Warn(ctx, msgErrWriteCache, zap.Error(err))
		return
	}
	if err := uc.cache.Set(ctx, TaskListCacheKey, string(payload), 0); err != nil {
		log.Warn(ctx, msgErrWriteCache, zap.Error(err))
	}
}

func (uc *TaskUseCase) invalidateCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Delete(ctx, TaskListCacheKey); err != nil {
		logger.Log(ctx).Warn(ctx, msgErrInvalidateCache, zap.Error(err))
	}
}
