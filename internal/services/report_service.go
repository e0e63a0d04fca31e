package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/raqazhet/informatics/internal/admin"
	"github.com/raqazhet/informatics/internal/models"
)

// Строки списочных представлений с вычисляемыми колонками.
// Агрегаты считаются одним запросом на страницу списка, а не
// отдельным запросом на строку.

// SchoolRow строка списка школ с количеством преподавателей и учеников
type SchoolRow struct {
	models.School `gorm:"embedded"`
	TeacherCount  int64 `json:"teacher_count"`
	StudentCount  int64 `json:"student_count"`
}

// CourseRow строка списка курсов с количеством уроков
type CourseRow struct {
	models.Course `gorm:"embedded"`
	CreatedByName string `json:"created_by_name"`
	LessonCount   int64  `json:"lesson_count"`
}

// LessonRow строка списка уроков с количеством заданий
type LessonRow struct {
	models.Lesson   `gorm:"embedded"`
	CourseTitle     string `json:"course_title"`
	AssignmentCount int64  `json:"assignment_count"`
}

// AssignmentRow строка списка заданий с количеством решений и средним баллом
type AssignmentRow struct {
	models.Assignment `gorm:"embedded"`
	SubmissionCount   int64    `json:"submission_count"`
	AvgScore          *float64 `json:"avg_score"`
}

// AvgScoreDisplay возвращает средний балл для отображения;
// при отсутствии оцененных решений — "N/A", а не ноль
func (r AssignmentRow) AvgScoreDisplay() string {
	if r.AvgScore == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *r.AvgScore)
}

// ClassGroupRow строка списка классов с количеством учеников
type ClassGroupRow struct {
	models.ClassGroup `gorm:"embedded"`
	TeacherName       string `json:"teacher_name"`
	StudentCount      int64  `json:"student_count"`
}

// ReportService отдает списочные представления родительских сущностей
// с агрегатными колонками
type ReportService interface {
	ListSchools(req admin.ListRequest) ([]SchoolRow, error)
	ListCourses(req admin.ListRequest) ([]CourseRow, error)
	ListLessons(req admin.ListRequest) ([]LessonRow, error)
	ListAssignments(req admin.ListRequest) ([]AssignmentRow, error)
	ListClassGroups(req admin.ListRequest) ([]ClassGroupRow, error)
}

// reportService реализация сервиса отчетов
type reportService struct {
	db       *gorm.DB
	registry admin.Registry
}

// NewReportService создает новый сервис отчетов
func NewReportService(db *gorm.DB, registry admin.Registry) ReportService {
	return &reportService{db: db, registry: registry}
}

// ListSchools возвращает школы с количеством привязанных профилей
// преподавателей и учеников
func (s *reportService) ListSchools(req admin.ListRequest) ([]SchoolRow, error) {
	q := s.db.Model(&models.School{}).
		Select("schools.*, COUNT(DISTINCT teacher_profiles.user_id) AS teacher_count, COUNT(DISTINCT student_profiles.user_id) AS student_count").
		Joins("LEFT JOIN teacher_profiles ON teacher_profiles.school_id = schools.id").
		Joins("LEFT JOIN student_profiles ON student_profiles.school_id = schools.id").
		Group("schools.id")
	q, err := admin.ApplyListQuery(q, s.registry["school"], req)
	if err != nil {
		return nil, err
	}
	var rows []SchoolRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListCourses возвращает курсы с количеством уроков
func (s *reportService) ListCourses(req admin.ListRequest) ([]CourseRow, error) {
	q := s.db.Model(&models.Course{}).
		Select("courses.*, users.full_name AS created_by_name, COUNT(DISTINCT lessons.id) AS lesson_count").
		Joins("LEFT JOIN users ON users.id = courses.created_by_id").
		Joins("LEFT JOIN lessons ON lessons.course_id = courses.id").
		Group("courses.id, users.full_name")
	q, err := admin.ApplyListQuery(q, s.registry["course"], req)
	if err != nil {
		return nil, err
	}
	var rows []CourseRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListLessons возвращает уроки с количеством заданий; порядок внутри
// курса — по sort_order, при равенстве по времени создания
func (s *reportService) ListLessons(req admin.ListRequest) ([]LessonRow, error) {
	q := s.db.Model(&models.Lesson{}).
		Select("lessons.*, courses.title AS course_title, COUNT(DISTINCT assignments.id) AS assignment_count").
		Joins("LEFT JOIN assignments ON assignments.lesson_id = lessons.id").
		Group("lessons.id, courses.title")
	q, err := admin.ApplyListQuery(q, s.registry["lesson"], req)
	if err != nil {
		return nil, err
	}
	var rows []LessonRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListAssignments возвращает задания с количеством решений и средним
// баллом по ненулевым оценкам; пустое множество решений дает NULL,
// а не ноль
func (s *reportService) ListAssignments(req admin.ListRequest) ([]AssignmentRow, error) {
	q := s.db.Model(&models.Assignment{}).
		Select("assignments.*, COUNT(DISTINCT submissions.id) AS submission_count, AVG(submissions.score) AS avg_score").
		Joins("LEFT JOIN submissions ON submissions.assignment_id = assignments.id").
		Group("assignments.id")
	q, err := admin.ApplyListQuery(q, s.registry["assignment"], req)
	if err != nil {
		return nil, err
	}
	var rows []AssignmentRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListClassGroups возвращает классы с количеством учеников
func (s *reportService) ListClassGroups(req admin.ListRequest) ([]ClassGroupRow, error) {
	q := s.db.Model(&models.ClassGroup{}).
		Select("class_groups.*, users.full_name AS teacher_name, COUNT(DISTINCT class_students.id) AS student_count").
		Joins("LEFT JOIN class_students ON class_students.class_group_id = class_groups.id").
		Group("class_groups.id, users.full_name")
	q, err := admin.ApplyListQuery(q, s.registry["class_group"], req)
	if err != nil {
		return nil, err
	}
	var rows []ClassGroupRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
