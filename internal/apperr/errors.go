// Package apperr содержит доменную таксономию ошибок:
// ValidationError, ConstraintViolation и NotFoundError.
package apperr

import "fmt"

// ValidationError означает отсутствующее или некорректное обязательное поле,
// либо неизвестное поле поиска/фильтрации
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on field %q: %s", e.Field, e.Reason)
}

// Validation создает ошибку валидации для конкретного поля
func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// ConstraintViolation означает нарушение ограничения уникальности
// или внешнего ключа; Constraint называет нарушенное ограничение
type ConstraintViolation struct {
	Constraint string
	Err        error
}

func (e *ConstraintViolation) Error() string {
	return fmt.Sprintf("constraint %q violated", e.Constraint)
}

func (e *ConstraintViolation) Unwrap() error { return e.Err }

// NotFoundError означает обращение к несуществующей записи
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// NotFound создает ошибку отсутствия записи
func NotFound(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}
