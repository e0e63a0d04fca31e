package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/raqazhet/informatics/internal/apperr"
	"github.com/raqazhet/informatics/internal/models"
)

// LessonInline описывает изменение урока при встроенном редактировании курса
type LessonInline struct {
	Lesson models.Lesson `json:"lesson"`
	Delete bool          `json:"delete"`
}

// CourseRepository интерфейс для работы с курсами
type CourseRepository interface {
	Create(course *models.Course) error
	GetByID(id uuid.UUID) (*models.Course, error)
	Update(course *models.Course) error
	Delete(id uuid.UUID) error
	// SaveWithLessons атомарно сохраняет курс вместе с изменениями его уроков
	SaveWithLessons(course *models.Course, inlines []LessonInline) error
}

// courseRepository реализация репозитория курсов
type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository создает новый репозиторий курсов
func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

// Create создает курс
func (r *courseRepository) Create(course *models.Course) error {
	if err := checkModel(course); err != nil {
		return err
	}
	if course.ID == uuid.Nil {
		course.ID = uuid.New()
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.User{}, course.CreatedByID, "courses.created_by_id"); err != nil {
			return err
		}
		return translateError(tx.Create(course).Error, "course", course.ID.String())
	})
}

// GetByID получает курс вместе с уроками в порядке отображения
func (r *courseRepository) GetByID(id uuid.UUID) (*models.Course, error) {
	var course models.Course
	err := r.db.Preload("CreatedBy").
		Preload("Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order, created_at")
		}).
		First(&course, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err, "course", id.String())
	}
	return &course, nil
}

// Update обновляет курс
func (r *courseRepository) Update(course *models.Course) error {
	if err := checkModel(course); err != nil {
		return err
	}
	var existing models.Course
	if err := r.db.First(&existing, "id = ?", course.ID).Error; err != nil {
		return translateError(err, "course", course.ID.String())
	}
	return translateError(r.db.Save(course).Error, "course", course.ID.String())
}

// Delete удаляет курс вместе с уроками, заданиями и решениями
func (r *courseRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var course models.Course
		if err := tx.First(&course, "id = ?", id).Error; err != nil {
			return translateError(err, "course", id.String())
		}
		return translateError(deleteCourseCascade(tx, id), "course", id.String())
	})
}

// SaveWithLessons сохраняет курс и изменения его уроков одной транзакцией:
// при любой ошибке не сохраняется ни курс, ни уроки
func (r *courseRepository) SaveWithLessons(course *models.Course, inlines []LessonInline) error {
	if err := checkModel(course); err != nil {
		return err
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if course.ID == uuid.Nil {
			course.ID = uuid.New()
		} else {
			var existing models.Course
			if err := tx.First(&existing, "id = ?", course.ID).Error; err != nil {
				return translateError(err, "course", course.ID.String())
			}
		}
		if err := ensureExists(tx, &models.User{}, course.CreatedByID, "courses.created_by_id"); err != nil {
			return err
		}
		if err := tx.Save(course).Error; err != nil {
			return translateError(err, "course", course.ID.String())
		}

		for i := range inlines {
			inline := &inlines[i]
			if inline.Delete {
				// Удалять можно только урок этого курса
				var n int64
				if err := tx.Model(&models.Lesson{}).
					Where("id = ? AND course_id = ?", inline.Lesson.ID, course.ID).
					Count(&n).Error; err != nil {
					return translateError(err, "lesson", inline.Lesson.ID.String())
				}
				if n == 0 {
					return apperr.NotFound("lesson", inline.Lesson.ID.String())
				}
				if err := deleteLessonCascade(tx, inline.Lesson.ID); err != nil {
					return translateError(err, "lesson", inline.Lesson.ID.String())
				}
				continue
			}
			inline.Lesson.CourseID = course.ID
			if err := checkModel(&inline.Lesson); err != nil {
				return err
			}
			if inline.Lesson.ID == uuid.Nil {
				inline.Lesson.ID = uuid.New()
				if err := tx.Create(&inline.Lesson).Error; err != nil {
					return translateError(err, "lesson", inline.Lesson.ID.String())
				}
				continue
			}
			if err := tx.Save(&inline.Lesson).Error; err != nil {
				return translateError(err, "lesson", inline.Lesson.ID.String())
			}
		}
		return nil
	})
}
