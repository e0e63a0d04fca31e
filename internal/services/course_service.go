package services

import (
	"github.com/google/uuid"

	"github.com/raqazhet/informatics/internal/models"
	"github.com/raqazhet/informatics/internal/repository"
)

// CourseService интерфейс для работы с учебным содержимым:
// курсами, уроками и заданиями
type CourseService interface {
	CreateCourse(course *models.Course) error
	GetCourse(id uuid.UUID) (*models.Course, error)
	UpdateCourse(course *models.Course) error
	DeleteCourse(id uuid.UUID) error
	SaveCourseWithLessons(course *models.Course, inlines []repository.LessonInline) error

	CreateLesson(lesson *models.Lesson) error
	GetLesson(id uuid.UUID) (*models.Lesson, error)
	UpdateLesson(lesson *models.Lesson) error
	DeleteLesson(id uuid.UUID) error
	ListLessonsByCourse(courseID uuid.UUID) ([]models.Lesson, error)
	SaveLessonWithAssignments(lesson *models.Lesson, inlines []repository.AssignmentInline) error

	CreateAssignment(assignment *models.Assignment) error
	GetAssignment(id uuid.UUID) (*models.Assignment, error)
	UpdateAssignment(assignment *models.Assignment) error
	DeleteAssignment(id uuid.UUID) error
}

// courseService реализация сервиса учебного содержимого
type courseService struct {
	courses     repository.CourseRepository
	lessons     repository.LessonRepository
	assignments repository.AssignmentRepository
}

// NewCourseService создает новый сервис учебного содержимого
func NewCourseService(
	courses repository.CourseRepository,
	lessons repository.LessonRepository,
	assignments repository.AssignmentRepository,
) CourseService {
	return &courseService{courses: courses, lessons: lessons, assignments: assignments}
}

func (s *courseService) CreateCourse(course *models.Course) error { return s.courses.Create(course) }

func (s *courseService) GetCourse(id uuid.UUID) (*models.Course, error) {
	return s.courses.GetByID(id)
}

func (s *courseService) UpdateCourse(course *models.Course) error { return s.courses.Update(course) }

func (s *courseService) DeleteCourse(id uuid.UUID) error { return s.courses.Delete(id) }

// SaveCourseWithLessons атомарно сохраняет курс с изменениями уроков
func (s *courseService) SaveCourseWithLessons(course *models.Course, inlines []repository.LessonInline) error {
	return s.courses.SaveWithLessons(course, inlines)
}

func (s *courseService) CreateLesson(lesson *models.Lesson) error { return s.lessons.Create(lesson) }

func (s *courseService) GetLesson(id uuid.UUID) (*models.Lesson, error) {
	return s.lessons.GetByID(id)
}

func (s *courseService) UpdateLesson(lesson *models.Lesson) error { return s.lessons.Update(lesson) }

func (s *courseService) DeleteLesson(id uuid.UUID) error { return s.lessons.Delete(id) }

func (s *courseService) ListLessonsByCourse(courseID uuid.UUID) ([]models.Lesson, error) {
	return s.lessons.ListByCourse(courseID)
}

// SaveLessonWithAssignments атомарно сохраняет урок с изменениями заданий
func (s *courseService) SaveLessonWithAssignments(lesson *models.Lesson, inlines []repository.AssignmentInline) error {
	return s.lessons.SaveWithAssignments(lesson, inlines)
}

func (s *courseService) CreateAssignment(assignment *models.Assignment) error {
	return s.assignments.Create(assignment)
}

func (s *courseService) GetAssignment(id uuid.UUID) (*models.Assignment, error) {
	return s.assignments.GetByID(id)
}

func (s *courseService) UpdateAssignment(assignment *models.Assignment) error {
	return s.assignments.Update(assignment)
}

func (s *courseService) DeleteAssignment(id uuid.UUID) error {
	return s.assignments.Delete(id)
}
