// Package validation реализует декларативную проверку входных данных.
// Схема описывает правила для каждого поля; Validate возвращает список
// нарушений в порядке объявления полей. Схемы не обращаются к хранилищу.
package validation

import (
	"regexp"
	"unicode/utf8"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Violation описывает одно нарушение правила для поля.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Checker проверяет одно поле схемы.
type Checker interface {
	Check() []Violation
}

// Schema - упорядоченный набор проверок полей.
type Schema []Checker

// Validate выполняет все проверки схемы. Пустой результат означает успех.
// Нарушения нескольких полей возвращаются одновременно.
func (s Schema) Validate() []Violation {
	var violations []Violation
	for _, c := range s {
		violations = append(violations, c.Check()...)
	}
	return violations
}

// String описывает правила для строкового поля. Nil Value означает,
// что поле не было передано. Длины считаются в рунах.
type String struct {
	Field           string
	Value           *string
	Required        bool
	RequiredMessage string
	MinLen          int
	MinMessage      string
	MaxLen          int
	MaxMessage      string
	Email           bool
	EmailMessage    string
}

// Check проверяет строковое поле по заданным правилам.
func (f String) Check() []Violation {
	if f.Value == nil {
		if f.Required {
			return []Violation{{Field: f.Field, Message: f.RequiredMessage}}
		}
		return nil
	}

	var violations []Violation
	length := utf8.RuneCountInString(*f.Value)

	if f.MinLen > 0 && length < f.MinLen {
		violations = append(violations, Violation{Field: f.Field, Message: f.MinMessage})
	}
	if f.MaxLen > 0 && length > f.MaxLen {
		violations = append(violations, Violation{Field: f.Field, Message: f.MaxMessage})
	}
	if f.Email && !emailRegex.MatchString(*f.Value) {
		violations = append(violations, Violation{Field: f.Field, Message: f.EmailMessage})
	}

	return violations
}
