package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/raqazhet/informatics/internal/apperr"
	"github.com/raqazhet/informatics/internal/models"
)

// uniqueConstraints сопоставляет имена индексов (и их sqlite-представление)
// с понятным именем ограничения
var uniqueConstraints = map[string]string{
	"idx_users_username":      "users.username",
	"users.username":          "users.username",
	"idx_schools_name":        "schools.name",
	"schools.name":            "schools.name",
	"idx_class_students_pair": "class_students(class_group_id, student_id)",
	"class_students.class_group_id, class_students.student_id": "class_students(class_group_id, student_id)",
}

// constraintName определяет нарушенное ограничение по тексту ошибки драйвера
func constraintName(msg string) string {
	for needle, name := range uniqueConstraints {
		if strings.Contains(msg, needle) {
			return name
		}
	}
	return "unknown"
}

// translateError переводит ошибки GORM и драйвера в доменную таксономию;
// вызывающий код выше репозиториев видит только apperr-ошибки
func translateError(err error, entity, id string) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NotFound(entity, id)
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return &apperr.ConstraintViolation{Constraint: constraintName(err.Error()), Err: err}
	}
	// Текст ошибки драйвера сохраняет имя нарушенного ограничения
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"), // sqlite
		strings.Contains(msg, "FOREIGN KEY constraint failed"),
		strings.Contains(msg, "duplicate key value violates unique constraint"), // postgres
		strings.Contains(msg, "violates foreign key constraint"):
		return &apperr.ConstraintViolation{Constraint: constraintName(msg), Err: err}
	}
	return err
}

// translateErrorFK строит нарушение внешнего ключа с именем ограничения
func translateErrorFK(constraint string) error {
	return &apperr.ConstraintViolation{Constraint: constraint, Err: gorm.ErrForeignKeyViolated}
}

// NewRoleError строит ошибку валидации роле-ограниченного внешнего ключа
func NewRoleError(field string, want models.UserRole) error {
	return apperr.Validation(field, fmt.Sprintf("referenced user must have role %q", want))
}

// validate проверяет обязательные поля моделей перед записью
var validate = validator.New()

// checkModel прогоняет модель через validator и возвращает ValidationError
// с именем первого невалидного поля
func checkModel(m interface{}) error {
	if err := validate.Struct(m); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return apperr.Validation(verrs[0].Field(), verrs[0].Tag())
		}
		return err
	}
	return nil
}
