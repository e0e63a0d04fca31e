package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/raqazhet/informatics/internal/models"
)

// AssignmentRepository интерфейс для работы с заданиями
type AssignmentRepository interface {
	Create(assignment *models.Assignment) error
	GetByID(id uuid.UUID) (*models.Assignment, error)
	Update(assignment *models.Assignment) error
	Delete(id uuid.UUID) error
	ListByLesson(lessonID uuid.UUID) ([]models.Assignment, error)
}

// assignmentRepository реализация репозитория заданий
type assignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository создает новый репозиторий заданий
func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

// Create создает задание
func (r *assignmentRepository) Create(assignment *models.Assignment) error {
	if err := checkModel(assignment); err != nil {
		return err
	}
	if assignment.ID == uuid.Nil {
		assignment.ID = uuid.New()
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.Lesson{}, assignment.LessonID, "assignments.lesson_id"); err != nil {
			return err
		}
		return translateError(tx.Create(assignment).Error, "assignment", assignment.ID.String())
	})
}

// GetByID получает задание по ID
func (r *assignmentRepository) GetByID(id uuid.UUID) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.db.Preload("Lesson").First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err, "assignment", id.String())
	}
	return &assignment, nil
}

// Update обновляет задание
func (r *assignmentRepository) Update(assignment *models.Assignment) error {
	if err := checkModel(assignment); err != nil {
		return err
	}
	var existing models.Assignment
	if err := r.db.First(&existing, "id = ?", assignment.ID).Error; err != nil {
		return translateError(err, "assignment", assignment.ID.String())
	}
	return translateError(r.db.Save(assignment).Error, "assignment", assignment.ID.String())
}

// Delete удаляет задание вместе с решениями
func (r *assignmentRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var assignment models.Assignment
		if err := tx.First(&assignment, "id = ?", id).Error; err != nil {
			return translateError(err, "assignment", id.String())
		}
		return translateError(deleteAssignmentCascade(tx, id), "assignment", id.String())
	})
}

// ListByLesson возвращает задания урока
func (r *assignmentRepository) ListByLesson(lessonID uuid.UUID) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.Where("lesson_id = ?", lessonID).Order("created_at").Find(&assignments).Error
	return assignments, err
}
