package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/raqazhet/informatics/internal/admin"
	"github.com/raqazhet/informatics/internal/models"
)

// SubmissionRepository интерфейс для работы с решениями заданий
type SubmissionRepository interface {
	Create(submission *models.Submission) error
	GetByID(id uuid.UUID) (*models.Submission, error)
	Update(submission *models.Submission) error
	Delete(id uuid.UUID) error
	List(req admin.ListRequest) ([]models.Submission, error)
	ListByAssignment(assignmentID uuid.UUID) ([]models.Submission, error)
	ListByStudent(studentID uuid.UUID) ([]models.Submission, error)
}

// submissionRepository реализация репозитория решений
type submissionRepository struct {
	db   *gorm.DB
	spec admin.EntitySpec
}

// NewSubmissionRepository создает новый репозиторий решений
func NewSubmissionRepository(db *gorm.DB, registry admin.Registry) SubmissionRepository {
	return &submissionRepository{db: db, spec: registry["submission"]}
}

// Create создает решение; автор обязан иметь роль student
func (r *submissionRepository) Create(submission *models.Submission) error {
	if err := checkModel(submission); err != nil {
		return err
	}
	if submission.ID == uuid.Nil {
		submission.ID = uuid.New()
	}
	if submission.Status == "" {
		submission.Status = models.SubmissionPending
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.Assignment{}, submission.AssignmentID, "submissions.assignment_id"); err != nil {
			return err
		}
		if err := ensureRole(tx, submission.StudentID, models.RoleStudent, "student_id"); err != nil {
			return err
		}
		return translateError(tx.Create(submission).Error, "submission", submission.ID.String())
	})
}

// GetByID получает решение по ID
func (r *submissionRepository) GetByID(id uuid.UUID) (*models.Submission, error) {
	var submission models.Submission
	err := r.db.Preload("Assignment").Preload("Student").First(&submission, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err, "submission", id.String())
	}
	return &submission, nil
}

// Update обновляет решение (оценку, статус, отзыв)
func (r *submissionRepository) Update(submission *models.Submission) error {
	if err := checkModel(submission); err != nil {
		return err
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Submission
		if err := tx.First(&existing, "id = ?", submission.ID).Error; err != nil {
			return translateError(err, "submission", submission.ID.String())
		}
		if submission.StudentID != existing.StudentID {
			if err := ensureRole(tx, submission.StudentID, models.RoleStudent, "student_id"); err != nil {
				return err
			}
		}
		return translateError(tx.Save(submission).Error, "submission", submission.ID.String())
	})
}

// Delete удаляет решение
func (r *submissionRepository) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.Submission{}, "id = ?", id)
	if res.Error != nil {
		return translateError(res.Error, "submission", id.String())
	}
	if res.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, "submission", id.String())
	}
	return nil
}

// List возвращает решения по списочному запросу админ-консоли
func (r *submissionRepository) List(req admin.ListRequest) ([]models.Submission, error) {
	q := r.db.Model(&models.Submission{}).Select("submissions.*")
	q, err := admin.ApplyListQuery(q, r.spec, req)
	if err != nil {
		return nil, err
	}
	var submissions []models.Submission
	if err := q.Preload("Assignment").Preload("Student").Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

// ListByAssignment возвращает решения задания
func (r *submissionRepository) ListByAssignment(assignmentID uuid.UUID) ([]models.Submission, error) {
	var submissions []models.Submission
	err := r.db.Preload("Student").Where("assignment_id = ?", assignmentID).
		Order("created_at").Find(&submissions).Error
	return submissions, err
}

// ListByStudent возвращает решения ученика
func (r *submissionRepository) ListByStudent(studentID uuid.UUID) ([]models.Submission, error) {
	var submissions []models.Submission
	err := r.db.Preload("Assignment").Where("student_id = ?", studentID).
		Order("created_at").Find(&submissions).Error
	return submissions, err
}
