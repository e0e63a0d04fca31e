package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/raqazhet/informatics/internal/admin"
	"github.com/raqazhet/informatics/internal/models"
)

// RecommendationRepository интерфейс для работы с рекомендациями
type RecommendationRepository interface {
	Create(rec *models.Recommendation) error
	GetByID(id uuid.UUID) (*models.Recommendation, error)
	Update(rec *models.Recommendation) error
	Delete(id uuid.UUID) error
	List(req admin.ListRequest) ([]models.Recommendation, error)
	ListByStudent(studentID uuid.UUID) ([]models.Recommendation, error)
}

// recommendationRepository реализация репозитория рекомендаций
type recommendationRepository struct {
	db   *gorm.DB
	spec admin.EntitySpec
}

// NewRecommendationRepository создает новый репозиторий рекомендаций
func NewRecommendationRepository(db *gorm.DB, registry admin.Registry) RecommendationRepository {
	return &recommendationRepository{db: db, spec: registry["recommendation"]}
}

// Create создает рекомендацию; адресат обязан иметь роль student,
// generated_at выставляется один раз при создании
func (r *recommendationRepository) Create(rec *models.Recommendation) error {
	if err := checkModel(rec); err != nil {
		return err
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.GeneratedAt.IsZero() {
		rec.GeneratedAt = time.Now()
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureRole(tx, rec.StudentID, models.RoleStudent, "student_id"); err != nil {
			return err
		}
		return translateError(tx.Create(rec).Error, "recommendation", rec.ID.String())
	})
}

// GetByID получает рекомендацию по ID
func (r *recommendationRepository) GetByID(id uuid.UUID) (*models.Recommendation, error) {
	var rec models.Recommendation
	err := r.db.Preload("Student").First(&rec, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err, "recommendation", id.String())
	}
	return &rec, nil
}

// Update обновляет рекомендацию; generated_at не изменяется
func (r *recommendationRepository) Update(rec *models.Recommendation) error {
	if err := checkModel(rec); err != nil {
		return err
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Recommendation
		if err := tx.First(&existing, "id = ?", rec.ID).Error; err != nil {
			return translateError(err, "recommendation", rec.ID.String())
		}
		if rec.StudentID != existing.StudentID {
			if err := ensureRole(tx, rec.StudentID, models.RoleStudent, "student_id"); err != nil {
				return err
			}
		}
		rec.GeneratedAt = existing.GeneratedAt
		return translateError(tx.Save(rec).Error, "recommendation", rec.ID.String())
	})
}

// Delete удаляет рекомендацию
func (r *recommendationRepository) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.Recommendation{}, "id = ?", id)
	if res.Error != nil {
		return translateError(res.Error, "recommendation", id.String())
	}
	if res.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, "recommendation", id.String())
	}
	return nil
}

// List возвращает рекомендации по списочному запросу админ-консоли
func (r *recommendationRepository) List(req admin.ListRequest) ([]models.Recommendation, error) {
	q := r.db.Model(&models.Recommendation{}).Select("recommendations.*")
	q, err := admin.ApplyListQuery(q, r.spec, req)
	if err != nil {
		return nil, err
	}
	var recs []models.Recommendation
	if err := q.Preload("Student").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// ListByStudent возвращает рекомендации ученика
func (r *recommendationRepository) ListByStudent(studentID uuid.UUID) ([]models.Recommendation, error) {
	var recs []models.Recommendation
	err := r.db.Where("student_id = ?", studentID).
		Order("generated_at DESC").Find(&recs).Error
	return recs, err
}
