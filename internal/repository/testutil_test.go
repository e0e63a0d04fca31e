package repository

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/raqazhet/informatics/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.StudentProfile{},
		&models.TeacherProfile{},
		&models.School{},
		&models.Course{},
		&models.Lesson{},
		&models.Assignment{},
		&models.Submission{},
		&models.Recommendation{},
		&models.ClassGroup{},
		&models.ClassStudent{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func newTestUser(t *testing.T, db *gorm.DB, username string, role models.UserRole) *models.User {
	t.Helper()
	user := &models.User{
		ID:       uuid.New(),
		Username: username,
		FullName: username,
		Role:     role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user %s: %v", username, err)
	}
	return user
}

func newTestSchool(t *testing.T, db *gorm.DB, name string) *models.School {
	t.Helper()
	school := &models.School{ID: uuid.New(), Name: name}
	if err := db.Create(school).Error; err != nil {
		t.Fatalf("failed to create test school %s: %v", name, err)
	}
	return school
}

func newTestCourse(t *testing.T, db *gorm.DB, title string, grade int, createdBy uuid.UUID) *models.Course {
	t.Helper()
	course := &models.Course{
		ID:          uuid.New(),
		Title:       title,
		Grade:       grade,
		CreatedByID: createdBy,
	}
	if err := db.Create(course).Error; err != nil {
		t.Fatalf("failed to create test course %s: %v", title, err)
	}
	return course
}

func newTestLesson(t *testing.T, db *gorm.DB, courseID uuid.UUID, title string, order int) *models.Lesson {
	t.Helper()
	lesson := &models.Lesson{
		ID:        uuid.New(),
		CourseID:  courseID,
		Title:     title,
		Content:   "content",
		SortOrder: order,
	}
	if err := db.Create(lesson).Error; err != nil {
		t.Fatalf("failed to create test lesson %s: %v", title, err)
	}
	return lesson
}

func newTestAssignment(t *testing.T, db *gorm.DB, lessonID uuid.UUID, title string) *models.Assignment {
	t.Helper()
	assignment := &models.Assignment{
		ID:             uuid.New(),
		LessonID:       lessonID,
		Title:          title,
		AssignmentType: models.AssignmentQuiz,
		MaxScore:       100,
	}
	if err := db.Create(assignment).Error; err != nil {
		t.Fatalf("failed to create test assignment %s: %v", title, err)
	}
	return assignment
}

func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("failed to create fixture %T: %v", value, err)
	}
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}
