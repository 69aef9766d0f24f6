// Package users содержит HTTP-обработчики для работы с пользователями.
package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"taskhub/internal/api/app/dto"
	"taskhub/internal/api/app/validation"
	"taskhub/internal/api/domain/entities"
	"taskhub/pkg/logger"
)

// Константы сообщений.
const (
	LogHandlerRegister = "handling register user request"
	LogHandlerLogin    = "handling login user request"

	MsgUserCreated     = "User successfully created"
	MsgLoginSuccessful = "Login successful"

	ErrMsgInvalidRequestBody = "invalid request body"
	ErrMsgInternal           = "internal server error"
	ErrMsgEmailAlreadyInUse  = "user with this email already exists"
	ErrMsgInvalidCredentials = "invalid credentials"
)

// UserService определяет операции, необходимые обработчикам пользователей.
type UserService interface {
	Register(ctx context.Context, req *dto.CreateUserRequest) (*entities.User, error)
	Login(ctx context.Context, req *dto.LoginUserRequest) (*entities.User, error)
}

// Handler содержит HTTP-обработчики для пользователей.
type Handler struct {
	userService UserService
}

// NewHandler создает новый экземпляр обработчика пользователей.
func NewHandler(userService UserService) *Handler {
	return &Handler{
		userService: userService,
	}
}

// Register обрабатывает запрос на регистрацию нового пользователя.
// В ответ попадают только идентификатор и email: хэш пароля наружу
// не отдается.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Register"))
	log.Debug(requestCtx, LogHandlerRegister)

	var req dto.CreateUserRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Error(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendErrorResponse(ctx, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	if violations := req.Validate(); len(violations) > 0 {
		return sendValidationResponse(ctx, violations)
	}

	user, err := h.userService.Register(requestCtx, &req)
	if err != nil {
		if errors.Is(err, entities.ErrEmailAlreadyExists) {
			return sendErrorResponse(ctx, fiber.StatusConflict, ErrMsgEmailAlreadyInUse)
		}
		log.Error(requestCtx, "failed to register user", zap.Error(err))
		return sendErrorResponse(ctx, fiber.StatusInternalServerError, ErrMsgInternal)
	}

	if err := ctx.Status(fiber.StatusCreated).JSON(dto.NewUserResponse(user, MsgUserCreated)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Login обрабатывает запрос на вход пользователя. Проверяются только
// учетные данные; сессия или токен не выдаются.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Login"))
	log.Debug(requestCtx, LogHandlerLogin)

	var req dto.LoginUserRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Error(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendErrorResponse(ctx, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	if violations := req.Validate(); len(violations) > 0 {
		return sendValidationResponse(ctx, violations)
	}

	user, err := h.userService.Login(requestCtx, &req)
	if err != nil {
		if errors.Is(err, entities.ErrInvalidCredentials) {
			return sendErrorResponse(ctx, fiber.StatusUnauthorized, ErrMsgInvalidCredentials)
		}
		log.Error(requestCtx, "failed to login user", zap.Error(err))
		return sendErrorResponse(ctx, fiber.StatusInternalServerError, ErrMsgInternal)
	}

	if err := ctx.JSON(dto.NewUserResponse(user, MsgLoginSuccessful)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

func sendErrorResponse(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

func sendValidationResponse(ctx fiber.Ctx, violations []validation.Violation) error {
	if err := ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"errors": violations,
	}); err != nil {
		return fmt.Errorf("error sending validation response: %w", err)
	}
	return nil
}
