package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/raqazhet/informatics/internal/apperr"
	"github.com/raqazhet/informatics/internal/models"
)

// AssignmentInline описывает изменение задания при встроенном
// редактировании урока
type AssignmentInline struct {
	Assignment models.Assignment `json:"assignment"`
	Delete     bool              `json:"delete"`
}

// LessonRepository интерфейс для работы с уроками
type LessonRepository interface {
	Create(lesson *models.Lesson) error
	GetByID(id uuid.UUID) (*models.Lesson, error)
	Update(lesson *models.Lesson) error
	Delete(id uuid.UUID) error
	ListByCourse(courseID uuid.UUID) ([]models.Lesson, error)
	// SaveWithAssignments атомарно сохраняет урок вместе с изменениями заданий
	SaveWithAssignments(lesson *models.Lesson, inlines []AssignmentInline) error
}

// lessonRepository реализация репозитория уроков
type lessonRepository struct {
	db *gorm.DB
}

// NewLessonRepository создает новый репозиторий уроков
func NewLessonRepository(db *gorm.DB) LessonRepository {
	return &lessonRepository{db: db}
}

// Create создает урок
func (r *lessonRepository) Create(lesson *models.Lesson) error {
	if err := checkModel(lesson); err != nil {
		return err
	}
	if lesson.ID == uuid.Nil {
		lesson.ID = uuid.New()
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.Course{}, lesson.CourseID, "lessons.course_id"); err != nil {
			return err
		}
		return translateError(tx.Create(lesson).Error, "lesson", lesson.ID.String())
	})
}

// GetByID получает урок вместе с заданиями
func (r *lessonRepository) GetByID(id uuid.UUID) (*models.Lesson, error) {
	var lesson models.Lesson
	err := r.db.Preload("Course").Preload("Assignments").First(&lesson, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err, "lesson", id.String())
	}
	return &lesson, nil
}

// Update обновляет урок
func (r *lessonRepository) Update(lesson *models.Lesson) error {
	if err := checkModel(lesson); err != nil {
		return err
	}
	var existing models.Lesson
	if err := r.db.First(&existing, "id = ?", lesson.ID).Error; err != nil {
		return translateError(err, "lesson", lesson.ID.String())
	}
	return translateError(r.db.Save(lesson).Error, "lesson", lesson.ID.String())
}

// Delete удаляет урок вместе с заданиями и их решениями
func (r *lessonRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var lesson models.Lesson
		if err := tx.First(&lesson, "id = ?", id).Error; err != nil {
			return translateError(err, "lesson", id.String())
		}
		return translateError(deleteLessonCascade(tx, id), "lesson", id.String())
	})
}

// ListByCourse возвращает уроки курса в порядке отображения;
// при равном порядке — в порядке создания
func (r *lessonRepository) ListByCourse(courseID uuid.UUID) ([]models.Lesson, error) {
	var lessons []models.Lesson
	err := r.db.Where("course_id = ?", courseID).
		Order("sort_order, created_at").Find(&lessons).Error
	return lessons, err
}

// SaveWithAssignments сохраняет урок и изменения его заданий одной
// транзакцией: при любой ошибке не сохраняется ничего
func (r *lessonRepository) SaveWithAssignments(lesson *models.Lesson, inlines []AssignmentInline) error {
	if err := checkModel(lesson); err != nil {
		return err
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if lesson.ID == uuid.Nil {
			lesson.ID = uuid.New()
		} else {
			var existing models.Lesson
			if err := tx.First(&existing, "id = ?", lesson.ID).Error; err != nil {
				return translateError(err, "lesson", lesson.ID.String())
			}
		}
		if err := ensureExists(tx, &models.Course{}, lesson.CourseID, "lessons.course_id"); err != nil {
			return err
		}
		if err := tx.Save(lesson).Error; err != nil {
			return translateError(err, "lesson", lesson.ID.String())
		}

		for i := range inlines {
			inline := &inlines[i]
			if inline.Delete {
				// Удалять можно только задание этого урока
				var n int64
				if err := tx.Model(&models.Assignment{}).
					Where("id = ? AND lesson_id = ?", inline.Assignment.ID, lesson.ID).
					Count(&n).Error; err != nil {
					return translateError(err, "assignment", inline.Assignment.ID.String())
				}
				if n == 0 {
					return apperr.NotFound("assignment", inline.Assignment.ID.String())
				}
				if err := deleteAssignmentCascade(tx, inline.Assignment.ID); err != nil {
					return translateError(err, "assignment", inline.Assignment.ID.String())
				}
				continue
			}
			inline.Assignment.LessonID = lesson.ID
			if err := checkModel(&inline.Assignment); err != nil {
				return err
			}
			if inline.Assignment.ID == uuid.Nil {
				inline.Assignment.ID = uuid.New()
				if err := tx.Create(&inline.Assignment).Error; err != nil {
					return translateError(err, "assignment", inline.Assignment.ID.String())
				}
				continue
			}
			if err := tx.Save(&inline.Assignment).Error; err != nil {
				return translateError(err, "assignment", inline.Assignment.ID.String())
			}
		}
		return nil
	})
}
