package dto

import (
	"taskhub/internal/api/app/validation"
	"taskhub/internal/api/domain/entities"
)

// Сообщения валидации пользователей.
const (
	MsgEmailInvalid     = "Must be a valid email address."
	MsgPasswordTooShort = "Password must be at least 8 characters long."
	MsgPasswordRequired = "password must be a string"
)

// PasswordMinLen - минимальная длина пароля при регистрации.
const PasswordMinLen = 8

// CreateUserRequest содержит данные для регистрации пользователя.
type CreateUserRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// Validate проверяет запрос на регистрацию.
func (r *CreateUserRequest) Validate() []validation.Violation {
	return validation.Schema{
		validation.String{
			Field:           "email",
			Value:           r.Email,
			Required:        true,
			RequiredMessage: MsgEmailInvalid,
			Email:           true,
			EmailMessage:    MsgEmailInvalid,
		},
		validation.String{
			Field:           "password",
			Value:           r.Password,
			Required:        true,
			RequiredMessage: MsgPasswordTooShort,
			MinLen:          PasswordMinLen,
			MinMessage:      MsgPasswordTooShort,
		},
	}.Validate()
}

// UpdateUserRequest содержит данные для обновления пользователя.
// Обработчик для него не реализован, но форма запроса проверяется.
type UpdateUserRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// Validate проверяет запрос на обновление пользователя.
func (r *UpdateUserRequest) Validate() []validation.Violation {
	return validation.Schema{
		validation.String{
			Field:        "email",
			Value:        r.Email,
			Email:        true,
			EmailMessage: MsgEmailInvalid,
		},
		validation.String{
			Field:      "password",
			Value:      r.Password,
			MinLen:     PasswordMinLen,
			MinMessage: MsgPasswordTooShort,
		},
	}.Validate()
}

// LoginUserRequest содержит данные для входа пользователя.
type LoginUserRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// Validate проверяет запрос на вход. Длина пароля здесь не ограничена:
// проверяется только его наличие.
func (r *LoginUserRequest) Validate() []validation.Violation {
	return validation.Schema{
		validation.String{
			Field:           "email",
			Value:           r.Email,
			Required:        true,
			RequiredMessage: MsgEmailInvalid,
			Email:           true,
			EmailMessage:    MsgEmailInvalid,
		},
		validation.String{
			Field:           "password",
			Value:           r.Password,
			Required:        true,
			RequiredMessage: MsgPasswordRequired,
			MinLen:          1,
			MinMessage:      MsgPasswordRequired,
		},
	}.Validate()
}

// UserResponse содержит публичное представление пользователя.
// Хэш пароля в ответ не попадает никогда.
type UserResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// NewUserResponse создает UserResponse из доменной сущности.
func NewUserResponse(user *entities.User, message string) *UserResponse {
	return &UserResponse{
		ID:      user.ID,
		Email:   user.Email,
		Message: message,
	}
}
