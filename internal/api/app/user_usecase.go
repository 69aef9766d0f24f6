package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"taskhub/internal/api/app/dto"
	"taskhub/internal/api/domain/entities"
	"taskhub/internal/api/ports/repositories"
	svc "taskhub/internal/api/ports/services"
	"taskhub/pkg/logger"
)

const (
	methodRegister = "Register"
	methodLogin    = "Login"

	msgStartRegistration = "starting user registration"
	msgEmailExists       = "user with this email already exists"
	msgUserRegistered    = "user registered successfully"
	msgLoginAttempt      = "login attempt"
	msgLoginNonExistent  = "login attempt with non-existent email"
	msgInvalidPassword   = "invalid password provided"
	msgUserLoggedIn      = "user logged in successfully"

	msgErrHashPassword      = "failed to hash password"
	msgErrCreateUser        = "failed to create user"
	msgErrFindingUser       = "error finding user by email"
	msgErrVerifyingPassword = "error verifying password"

	errCtxHashingPassword    = "hashing password"
	errCtxCreatingUser       = "creating user"
	errCtxEmailRegistered    = "email already registered"
	errCtxFindingUser        = "finding user"
	errCtxVerifyingPassword  = "verifying password"
	errCtxInvalidCredentials = "invalid credentials"
)

// UserUseCase реализует регистрацию и вход пользователей.
type UserUseCase struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
}

// NewUserUseCase создает новый экземпляр UserUseCase.
func NewUserUseCase(userRepo repositories.UserRepository, passwordSvc svc.PasswordService) *UserUseCase {
	return &UserUseCase{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
	}
}

// Register создает нового пользователя. Пароль хэшируется до обращения
// к хранилищу; в сущности сохраняется только хэш.
func (u *UserUseCase) Register(ctx context.Context, req *dto.CreateUserRequest) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("email", *req.Email))
	log.Debug(ctx, msgStartRegistration)

	hash, err := u.passwordSvc.Hash(ctx, *req.Password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	user := &entities.User{
		Email:        *req.Email,
		PasswordHash: hash,
	}

	created, err := u.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, entities.ErrEmailAlreadyExists) {
			log.Debug(ctx, msgEmailExists)
			return nil, fmt.Errorf("%s: %w", errCtxEmailRegistered, err)
		}
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserRegistered, zap.String("userID", created.ID))
	return created, nil
}

// Login проверяет учетные данные пользователя. Сессия или токен не
// выдаются: операция только подтверждает соответствие пароля.
// Несуществующий email и неверный пароль неразличимы для клиента.
func (u *UserUseCase) Login(ctx context.Context, req *dto.LoginUserRequest) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("email", *req.Email))
	log.Debug(ctx, msgLoginAttempt)

	user, err := u.userRepo.FindByEmail(ctx, *req.Email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginNonExistent)
			return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, entities.ErrInvalidCredentials)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	ok, err := u.passwordSvc.Verify(ctx, *req.Password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !ok {
		log.Debug(ctx, msgInvalidPassword)
		return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, entities.ErrInvalidCredentials)
	}

	log.Info(ctx, msgUserLoggedIn, zap.String("userID", user.ID))
	return user, nil
}
