package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/raqazhet/informatics/internal/models"
)

// Правила удаления выполняются явно, одной транзакцией на операцию,
// чтобы поведение не зависело от включенности внешних ключей в драйвере.

// deleteAssignmentCascade удаляет задание вместе с решениями
func deleteAssignmentCascade(tx *gorm.DB, assignmentID uuid.UUID) error {
	if err := tx.Where("assignment_id = ?", assignmentID).Delete(&models.Submission{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Assignment{}, "id = ?", assignmentID).Error
}

// deleteLessonCascade удаляет урок вместе с заданиями и их решениями
func deleteLessonCascade(tx *gorm.DB, lessonID uuid.UUID) error {
	if err := tx.Where("assignment_id IN (SELECT id FROM assignments WHERE lesson_id = ?)", lessonID).
		Delete(&models.Submission{}).Error; err != nil {
		return err
	}
	if err := tx.Where("lesson_id = ?", lessonID).Delete(&models.Assignment{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Lesson{}, "id = ?", lessonID).Error
}

// deleteCourseCascade удаляет курс вместе с уроками, заданиями и решениями
func deleteCourseCascade(tx *gorm.DB, courseID uuid.UUID) error {
	if err := tx.Where(
		"assignment_id IN (SELECT id FROM assignments WHERE lesson_id IN (SELECT id FROM lessons WHERE course_id = ?))",
		courseID,
	).Delete(&models.Submission{}).Error; err != nil {
		return err
	}
	if err := tx.Where("lesson_id IN (SELECT id FROM lessons WHERE course_id = ?)", courseID).
		Delete(&models.Assignment{}).Error; err != nil {
		return err
	}
	if err := tx.Where("course_id = ?", courseID).Delete(&models.Lesson{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Course{}, "id = ?", courseID).Error
}

// deleteClassGroupCascade удаляет класс вместе со списком его учеников
func deleteClassGroupCascade(tx *gorm.DB, groupID uuid.UUID) error {
	if err := tx.Where("class_group_id = ?", groupID).Delete(&models.ClassStudent{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.ClassGroup{}, "id = ?", groupID).Error
}

// deleteUserCascade удаляет пользователя вместе с созданными им курсами,
// решениями, рекомендациями, классами и профилями
func deleteUserCascade(tx *gorm.DB, userID uuid.UUID) error {
	var courseIDs []uuid.UUID
	if err := tx.Model(&models.Course{}).Where("created_by_id = ?", userID).
		Pluck("id", &courseIDs).Error; err != nil {
		return err
	}
	for _, courseID := range courseIDs {
		if err := deleteCourseCascade(tx, courseID); err != nil {
			return err
		}
	}

	if err := tx.Where("student_id = ?", userID).Delete(&models.Submission{}).Error; err != nil {
		return err
	}
	if err := tx.Where("student_id = ?", userID).Delete(&models.Recommendation{}).Error; err != nil {
		return err
	}
	if err := tx.Where("student_id = ?", userID).Delete(&models.ClassStudent{}).Error; err != nil {
		return err
	}

	var groupIDs []uuid.UUID
	if err := tx.Model(&models.ClassGroup{}).Where("teacher_id = ?", userID).
		Pluck("id", &groupIDs).Error; err != nil {
		return err
	}
	for _, groupID := range groupIDs {
		if err := deleteClassGroupCascade(tx, groupID); err != nil {
			return err
		}
	}

	if err := tx.Where("user_id = ?", userID).Delete(&models.StudentProfile{}).Error; err != nil {
		return err
	}
	if err := tx.Where("user_id = ?", userID).Delete(&models.TeacherProfile{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.User{}, "id = ?", userID).Error
}

// ensureExists проверяет, что строка, на которую ссылается внешний ключ,
// существует; иначе — нарушение ограничения с именем ключа
func ensureExists(tx *gorm.DB, model interface{}, id uuid.UUID, constraint string) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return translateErrorFK(constraint)
	}
	return nil
}

// ensureRole проверяет роль пользователя у роле-ограниченного внешнего ключа
func ensureRole(tx *gorm.DB, userID uuid.UUID, role models.UserRole, field string) error {
	var user models.User
	if err := tx.First(&user, "id = ?", userID).Error; err != nil {
		return translateError(err, "user", userID.String())
	}
	if user.Role != role {
		return NewRoleError(field, role)
	}
	return nil
}
