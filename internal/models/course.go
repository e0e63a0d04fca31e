package models

import (
	"time"

	"github.com/google/uuid"
)

// School представляет школу
type School struct {
	ID        uuid.UUID `json:"id" gorm:"type:text;primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex:idx_schools_name;not null" validate:"required"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Region    string    `json:"region"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Course представляет учебный курс
type Course struct {
	ID          uuid.UUID `json:"id" gorm:"type:text;primaryKey"`
	Title       string    `json:"title" gorm:"not null" validate:"required"`
	Description string    `json:"description"`
	Grade       int       `json:"grade" gorm:"not null" validate:"required,gt=0"`
	CreatedByID uuid.UUID `json:"created_by_id" gorm:"type:text;not null" validate:"required"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Связи
	CreatedBy User     `json:"created_by" gorm:"foreignKey:CreatedByID"`
	Lessons   []Lesson `json:"lessons,omitempty" gorm:"foreignKey:CourseID"`
}

// Lesson представляет урок внутри курса
type Lesson struct {
	ID        uuid.UUID `json:"id" gorm:"type:text;primaryKey"`
	CourseID  uuid.UUID `json:"course_id" gorm:"type:text;not null" validate:"required"`
	Title     string    `json:"title" gorm:"not null" validate:"required"`
	Content   string    `json:"content" gorm:"not null" validate:"required"`
	LessonURL string    `json:"lesson_url"`
	// Порядок отображения внутри курса; при равных значениях
	// уроки идут в порядке создания
	SortOrder int       `json:"order" gorm:"column:sort_order;not null" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Связи
	Course      Course       `json:"course" gorm:"foreignKey:CourseID"`
	Assignments []Assignment `json:"assignments,omitempty" gorm:"foreignKey:LessonID"`
}

// AssignmentType определяет тип задания
type AssignmentType string

const (
	AssignmentQuiz  AssignmentType = "quiz"
	AssignmentCode  AssignmentType = "code"
	AssignmentEssay AssignmentType = "essay"
)

// Assignment представляет задание к уроку
type Assignment struct {
	ID             uuid.UUID      `json:"id" gorm:"type:text;primaryKey"`
	LessonID       uuid.UUID      `json:"lesson_id" gorm:"type:text;not null" validate:"required"`
	Title          string         `json:"title" gorm:"not null" validate:"required"`
	Description    string         `json:"description"`
	AssignmentType AssignmentType `json:"assignment_type" gorm:"type:text;not null" validate:"required,oneof=quiz code essay"`
	MaxScore       int            `json:"max_score" gorm:"not null" validate:"required,gt=0"`
	AIAutocheck    bool           `json:"ai_autocheck" gorm:"default:false"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	// Связи
	Lesson      Lesson       `json:"lesson" gorm:"foreignKey:LessonID"`
	Submissions []Submission `json:"submissions,omitempty" gorm:"foreignKey:AssignmentID"`
}

// SubmissionStatus определяет статус проверки решения
type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionChecked  SubmissionStatus = "checked"
	SubmissionRejected SubmissionStatus = "rejected"
)

// Submission представляет решение задания от ученика
type Submission struct {
	ID           uuid.UUID        `json:"id" gorm:"type:text;primaryKey"`
	AssignmentID uuid.UUID        `json:"assignment_id" gorm:"type:text;not null" validate:"required"`
	StudentID    uuid.UUID        `json:"student_id" gorm:"type:text;not null" validate:"required"`
	AnswerText   string           `json:"answer_text"`
	Code         string           `json:"code"`
	FilePath     string           `json:"file_path"`
	Score        *float64         `json:"score"`
	CheckedByAI  bool             `json:"checked_by_ai" gorm:"default:false"`
	Feedback     string           `json:"feedback"`
	Status       SubmissionStatus `json:"status" gorm:"type:text;default:'pending'" validate:"omitempty,oneof=pending checked rejected"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`

	// Связи
	Assignment Assignment `json:"assignment" gorm:"foreignKey:AssignmentID"`
	Student    User       `json:"student" gorm:"foreignKey:StudentID"`
}

// RecommendationSource определяет источник рекомендации
type RecommendationSource string

const (
	SourceAI      RecommendationSource = "ai"
	SourceTeacher RecommendationSource = "teacher"
)

// Recommendation представляет рекомендацию для ученика
type Recommendation struct {
	ID          uuid.UUID            `json:"id" gorm:"type:text;primaryKey"`
	StudentID   uuid.UUID            `json:"student_id" gorm:"type:text;not null" validate:"required"`
	Text        string               `json:"text" gorm:"not null" validate:"required"`
	GeneratedAt time.Time            `json:"generated_at" gorm:"<-:create"`
	Source      RecommendationSource `json:"source" gorm:"type:text;not null" validate:"required,oneof=ai teacher"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`

	// Связи
	Student User `json:"student" gorm:"foreignKey:StudentID"`
}

// previewLimit ограничивает длину превью текста рекомендации
const previewLimit = 50

// TextPreview возвращает первые 50 символов текста рекомендации
func (r *Recommendation) TextPreview() string {
	runes := []rune(r.Text)
	if len(runes) > previewLimit {
		return string(runes[:previewLimit]) + "..."
	}
	return r.Text
}

// ClassGroup представляет учебный класс (например, "7A")
type ClassGroup struct {
	ID        uuid.UUID `json:"id" gorm:"type:text;primaryKey"`
	Name      string    `json:"name" gorm:"not null" validate:"required"`
	TeacherID uuid.UUID `json:"teacher_id" gorm:"type:text;not null" validate:"required"`

	// Связи
	Teacher  User           `json:"teacher" gorm:"foreignKey:TeacherID"`
	Students []ClassStudent `json:"students,omitempty" gorm:"foreignKey:ClassGroupID"`
}

// ClassStudent связывает ученика с классом; пара (класс, ученик) уникальна
type ClassStudent struct {
	ID           uuid.UUID `json:"id" gorm:"type:text;primaryKey"`
	ClassGroupID uuid.UUID `json:"class_group_id" gorm:"type:text;not null;uniqueIndex:idx_class_students_pair" validate:"required"`
	StudentID    uuid.UUID `json:"student_id" gorm:"type:text;not null;uniqueIndex:idx_class_students_pair" validate:"required"`

	// Связи
	ClassGroup ClassGroup `json:"class_group" gorm:"foreignKey:ClassGroupID"`
	Student    User       `json:"student" gorm:"foreignKey:StudentID"`
}
