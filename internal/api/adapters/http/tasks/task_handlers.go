// Package tasks содержит HTTP-обработчики для управления задачами.
package tasks

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"taskhub/internal/api/app/dto"
	"taskhub/internal/api/domain/entities"
	"taskhub/pkg/logger"
)

// Константы сообщений для логирования.
const (
	LogHandlerListTasks  = "handling list tasks request"
	LogHandlerGetTask    = "handling get task request"
	LogHandlerCreateTask = "handling create task request"
	LogHandlerUpdateTask = "handling update task request"
	LogHandlerDeleteTask = "handling delete task request"

	ErrMsgInvalidRequestBody = "invalid request body"
	ErrMsgInternal           = "internal server error"
)

// TaskService определяет операции, необходимые обработчикам задач.
type TaskService interface {
	ListTasks(ctx context.Context) ([]*entities.Task, error)
	GetTask(ctx context.Context, id string) (*entities.Task, error)
	CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*entities.Task, error)
	UpdateTask(ctx context.Context, id string, req *dto.UpdateTaskRequest) (*entities.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// Handler содержит HTTP-обработчики для работы с задачами.
type Handler struct {
	taskService TaskService
}

// NewHandler создает новый экземпляр обработчика задач.
func NewHandler(taskService TaskService) *Handler {
	return &Handler{
		taskService: taskService,
	}
}

// ListTasks обрабатывает запрос на получение списка задач.
func (h *Handler) ListTasks(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.ListTasks"))
	log.Debug(requestCtx, LogHandlerListTasks)

	tasks, err := h.taskService.ListTasks(requestCtx)
	if err != nil {
		log.Error(requestCtx, "failed to list tasks", zap.Error(err))
		return sendErrorResponse(ctx, fiber.StatusInternalServerError, ErrMsgInternal)
	}

	if err := ctx.JSON(dto.NewTaskListResponse(tasks)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// GetTask обрабатывает запрос на получение задачи по ID.
func (h *Handler) GetTask(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.GetTask"))
	log.Debug(requestCtx, LogHandlerGetTask)

	taskID := ctx.Params("task_id")

	task, err := h.taskService.GetTask(requestCtx, taskID)
	if err != nil {
		if errors.Is(err, entities.ErrTaskNotFound) {
			return sendErrorResponse(ctx, fiber.StatusNotFound, taskNotFoundMessage(taskID))
		}
		log.Error(requestCtx, "failed to get task", zap.Error(err))
		return sendErrorResponse(ctx, fiber.StatusInternalServerError, ErrMsgInternal)
	}

	if err := ctx.JSON(dto.NewTaskResponse(task)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// CreateTask обрабатывает запрос на создание новой задачи.
func (h *Handler) CreateTask(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.CreateTask"))
	log.Debug(requestCtx, LogHandlerCreateTask)

	var req dto.CreateTaskRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Error(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendErrorResponse(ctx, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	if violations := req.Validate(); len(violations) > 0 {
		return sendValidationResponse(ctx, violations)
	}

	task, err := h.taskService.CreateTask(requestCtx, &req)
	if err != nil {
		log.Error(requestCtx, "failed to create task", zap.Error(err))
		return sendErrorResponse(ctx, fiber.StatusInternalServerError, ErrMsgInternal)
	}

	if err := ctx.Status(fiber.StatusCreated).JSON(dto.NewTaskResponse(task)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// UpdateTask обрабатывает запрос на частичное обновление задачи.
func (h *Handler) UpdateTask(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.UpdateTask"))
	log.Debug(requestCtx, LogHandlerUpdateTask)

	taskID := ctx.Params("task_id")

	var req dto.UpdateTaskRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Error(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendErrorResponse(ctx, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	if violations := req.Validate(); len(violations) > 0 {
		return sendValidationResponse(ctx, violations)
	}

	task, err := h.taskService.UpdateTask(requestCtx, taskID, &req)
	if err != nil {
		if errors.Is(err, entities.ErrTaskNotFound) {
			return sendErrorResponse(ctx, fiber.StatusNotFound, taskNotFoundMessage(taskID))
		}
		log.Error(requestCtx, "failed to update task", zap.Error(err))
		return sendErrorResponse(ctx, fiber.StatusInternalServerError, ErrMsgInternal)
	}

	if err := ctx.JSON(dto.NewTaskResponse(task)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// DeleteTask обрабатывает запрос на удаление задачи.
func (h *Handler) DeleteTask(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.DeleteTask"))
	log.Debug(requestCtx, LogHandlerDeleteTask)

	taskID := ctx.Params("task_id")

	if err := h.taskService.DeleteTask(requestCtx, taskID); err != nil {
		if errors.Is(err, entities.ErrTaskNotFound) {
			return sendErrorResponse(ctx, fiber.StatusNotFound, taskNotFoundMessage(taskID))
		}
		log.Error(requestCtx, "failed to delete task", zap.Error(err))
		return sendErrorResponse(ctx, fiber.StatusInternalServerError, ErrMsgInternal)
	}

	if err := ctx.Status(fiber.StatusOK).Send(nil); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

func taskNotFoundMessage(id string) string {
	return fmt.Sprintf("Task %s not found", id)
}
