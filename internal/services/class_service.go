package services

import (
	"github.com/google/uuid"

	"github.com/raqazhet/informatics/internal/admin"
	"github.com/raqazhet/informatics/internal/models"
	"github.com/raqazhet/informatics/internal/repository"
)

// ClassService интерфейс для работы с классами и их составом
type ClassService interface {
	CreateClassGroup(group *models.ClassGroup) error
	GetClassGroup(id uuid.UUID) (*models.ClassGroup, error)
	UpdateClassGroup(group *models.ClassGroup) error
	DeleteClassGroup(id uuid.UUID) error
	SaveClassGroupWithStudents(group *models.ClassGroup, inlines []repository.ClassStudentInline) error

	AddStudent(cs *models.ClassStudent) error
	RemoveStudent(groupID, studentID uuid.UUID) error
	ListStudents(groupID uuid.UUID) ([]models.ClassStudent, error)
	ListClassStudents(req admin.ListRequest) ([]models.ClassStudent, error)
}

// classService реализация сервиса классов
type classService struct {
	groups repository.ClassGroupRepository
}

// NewClassService создает новый сервис классов
func NewClassService(groups repository.ClassGroupRepository) ClassService {
	return &classService{groups: groups}
}

func (s *classService) CreateClassGroup(group *models.ClassGroup) error {
	return s.groups.Create(group)
}

func (s *classService) GetClassGroup(id uuid.UUID) (*models.ClassGroup, error) {
	return s.groups.GetByID(id)
}

func (s *classService) UpdateClassGroup(group *models.ClassGroup) error {
	return s.groups.Update(group)
}

func (s *classService) DeleteClassGroup(id uuid.UUID) error {
	return s.groups.Delete(id)
}

// SaveClassGroupWithStudents атомарно сохраняет класс с изменениями состава
func (s *classService) SaveClassGroupWithStudents(group *models.ClassGroup, inlines []repository.ClassStudentInline) error {
	return s.groups.SaveWithStudents(group, inlines)
}

func (s *classService) AddStudent(cs *models.ClassStudent) error {
	return s.groups.AddStudent(cs)
}

func (s *classService) RemoveStudent(groupID, studentID uuid.UUID) error {
	return s.groups.RemoveStudent(groupID, studentID)
}

func (s *classService) ListStudents(groupID uuid.UUID) ([]models.ClassStudent, error) {
	return s.groups.ListStudents(groupID)
}

func (s *classService) ListClassStudents(req admin.ListRequest) ([]models.ClassStudent, error) {
	return s.groups.ListClassStudents(req)
}
