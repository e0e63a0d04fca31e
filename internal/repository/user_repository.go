package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/raqazhet/informatics/internal/admin"
	"github.com/raqazhet/informatics/internal/models"
)

// UserRepository интерфейс для работы с пользователями
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
	List(req admin.ListRequest) ([]models.User, error)
	ListByRole(role models.UserRole) ([]models.User, error)
}

// userRepository реализация репозитория пользователей
type userRepository struct {
	db   *gorm.DB
	spec admin.EntitySpec
}

// NewUserRepository создает новый репозиторий пользователей
func NewUserRepository(db *gorm.DB, registry admin.Registry) UserRepository {
	return &userRepository{db: db, spec: registry["user"]}
}

// Create создает нового пользователя
func (r *userRepository) Create(user *models.User) error {
	if err := checkModel(user); err != nil {
		return err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return translateError(r.db.Create(user).Error, "user", user.ID.String())
}

// GetByID получает пользователя по ID вместе с профилями
func (r *userRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.Preload("StudentProfile").Preload("TeacherProfile").
		First(&user, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err, "user", id.String())
	}
	return &user, nil
}

// GetByUsername получает пользователя по логину
func (r *userRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, translateError(err, "user", username)
	}
	return &user, nil
}

// Update обновляет данные пользователя
func (r *userRepository) Update(user *models.User) error {
	if err := checkModel(user); err != nil {
		return err
	}
	var existing models.User
	if err := r.db.First(&existing, "id = ?", user.ID).Error; err != nil {
		return translateError(err, "user", user.ID.String())
	}
	return translateError(r.db.Save(user).Error, "user", user.ID.String())
}

// Delete удаляет пользователя вместе с созданными им курсами,
// решениями, рекомендациями, классами и профилями
func (r *userRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			return translateError(err, "user", id.String())
		}
		return translateError(deleteUserCascade(tx, id), "user", id.String())
	})
}

// List возвращает пользователей по списочному запросу админ-консоли
func (r *userRepository) List(req admin.ListRequest) ([]models.User, error) {
	q := r.db.Model(&models.User{}).Select("users.*")
	q, err := admin.ApplyListQuery(q, r.spec, req)
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ListByRole возвращает пользователей с указанной ролью
func (r *userRepository) ListByRole(role models.UserRole) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("role = ?", role).Order("created_at").Find(&users).Error
	return users, err
}
