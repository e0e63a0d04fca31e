package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/raqazhet/informatics/internal/models"
)

// SchoolRepository интерфейс для работы со школами
type SchoolRepository interface {
	Create(school *models.School) error
	GetByID(id uuid.UUID) (*models.School, error)
	Update(school *models.School) error
	Delete(id uuid.UUID) error
}

// schoolRepository реализация репозитория школ
type schoolRepository struct {
	db *gorm.DB
}

// NewSchoolRepository создает новый репозиторий школ
func NewSchoolRepository(db *gorm.DB) SchoolRepository {
	return &schoolRepository{db: db}
}

// Create создает школу; название уникально
func (r *schoolRepository) Create(school *models.School) error {
	if err := checkModel(school); err != nil {
		return err
	}
	if school.ID == uuid.Nil {
		school.ID = uuid.New()
	}
	return translateError(r.db.Create(school).Error, "school", school.ID.String())
}

// GetByID получает школу по ID
func (r *schoolRepository) GetByID(id uuid.UUID) (*models.School, error) {
	var school models.School
	if err := r.db.First(&school, "id = ?", id).Error; err != nil {
		return nil, translateError(err, "school", id.String())
	}
	return &school, nil
}

// Update обновляет данные школы
func (r *schoolRepository) Update(school *models.School) error {
	if err := checkModel(school); err != nil {
		return err
	}
	var existing models.School
	if err := r.db.First(&existing, "id = ?", school.ID).Error; err != nil {
		return translateError(err, "school", school.ID.String())
	}
	return translateError(r.db.Save(school).Error, "school", school.ID.String())
}

// Delete удаляет школу; ссылки профилей на школу обнуляются,
// сами профили сохраняются
func (r *schoolRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var school models.School
		if err := tx.First(&school, "id = ?", id).Error; err != nil {
			return translateError(err, "school", id.String())
		}
		if err := tx.Model(&models.StudentProfile{}).Where("school_id = ?", id).
			Update("school_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.TeacherProfile{}).Where("school_id = ?", id).
			Update("school_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.School{}, "id = ?", id).Error
	})
}
