package services

import (
	"github.com/google/uuid"

	"github.com/raqazhet/informatics/internal/admin"
	"github.com/raqazhet/informatics/internal/models"
	"github.com/raqazhet/informatics/internal/repository"
)

// UserService интерфейс для работы с пользователями и их профилями
type UserService interface {
	CreateUser(user *models.User, password string) error
	GetUser(id uuid.UUID) (*models.User, error)
	UpdateUser(user *models.User) error
	DeleteUser(id uuid.UUID) error
	ListUsers(req admin.ListRequest) ([]models.User, error)

	CreateStudentProfile(profile *models.StudentProfile) error
	UpdateStudentProfile(profile *models.StudentProfile) error
	CreateTeacherProfile(profile *models.TeacherProfile) error
	UpdateTeacherProfile(profile *models.TeacherProfile) error
}

// userService реализация сервиса пользователей
type userService struct {
	users    repository.UserRepository
	profiles repository.ProfileRepository
}

// NewUserService создает новый сервис пользователей
func NewUserService(users repository.UserRepository, profiles repository.ProfileRepository) UserService {
	return &userService{users: users, profiles: profiles}
}

// CreateUser создает пользователя с хешированным паролем
func (s *userService) CreateUser(user *models.User, password string) error {
	if password != "" {
		hash, err := HashPassword(password)
		if err != nil {
			return err
		}
		user.PasswordHash = hash
	}
	return s.users.Create(user)
}

// GetUser получает пользователя вместе с профилями
func (s *userService) GetUser(id uuid.UUID) (*models.User, error) {
	return s.users.GetByID(id)
}

// UpdateUser обновляет данные пользователя
func (s *userService) UpdateUser(user *models.User) error {
	return s.users.Update(user)
}

// DeleteUser удаляет пользователя со всеми зависимыми записями
func (s *userService) DeleteUser(id uuid.UUID) error {
	return s.users.Delete(id)
}

// ListUsers возвращает пользователей по списочному запросу
func (s *userService) ListUsers(req admin.ListRequest) ([]models.User, error) {
	return s.users.List(req)
}

// CreateStudentProfile создает профиль ученика
func (s *userService) CreateStudentProfile(profile *models.StudentProfile) error {
	return s.profiles.CreateStudentProfile(profile)
}

// UpdateStudentProfile обновляет профиль ученика
func (s *userService) UpdateStudentProfile(profile *models.StudentProfile) error {
	return s.profiles.UpdateStudentProfile(profile)
}

// CreateTeacherProfile создает профиль преподавателя
func (s *userService) CreateTeacherProfile(profile *models.TeacherProfile) error {
	return s.profiles.CreateTeacherProfile(profile)
}

// UpdateTeacherProfile обновляет профиль преподавателя
func (s *userService) UpdateTeacherProfile(profile *models.TeacherProfile) error {
	return s.profiles.UpdateTeacherProfile(profile)
}
